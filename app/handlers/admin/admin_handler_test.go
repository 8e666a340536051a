package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"

	"github.com/zeylcoffee/qrmenu/app/models"
	"github.com/zeylcoffee/qrmenu/app/repositories"
	"github.com/zeylcoffee/qrmenu/app/repositories/jsonrepo"
	"github.com/zeylcoffee/qrmenu/app/services"
	"github.com/zeylcoffee/qrmenu/app/utils/sessions"
)

func newTestHandler(t *testing.T) (*AdminHandler, repositories.Store) {
	t.Helper()
	store := jsonrepo.NewStore(
		filepath.Join(t.TempDir(), "database.json"),
		models.Admin{Username: "admin", Password: "hash"},
	)
	h := NewAdminHandler(
		render.New(render.Options{}),
		store,
		sessions.NewCookieSessionStore([]byte("0123456789abcdef0123456789abcdef")),
		services.NewCatalogService(store),
		services.NewImageService(t.TempDir()),
		services.NewExportService(store.Statistics()),
		validator.New(),
	)
	return h, store
}

func postForm(handler http.HandlerFunc, values url.Values) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/admin/x", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	handler(w, r)
	return w
}

func postJSON(handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/admin/x", bytes.NewReader([]byte(body)))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, r)
	return w
}

func decodeAck(t *testing.T, w *httptest.ResponseRecorder) Ack {
	t.Helper()
	var ack Ack
	if err := json.Unmarshal(w.Body.Bytes(), &ack); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return ack
}

func TestAddCategoryAssignsSequentialIDs(t *testing.T) {
	h, store := newTestHandler(t)

	for _, name := range []string{"Kahveler", "Tatlılar"} {
		w := postForm(h.AddCategoryPost, url.Values{"name": {name}})
		if w.Code != http.StatusOK || !decodeAck(t, w).Success {
			t.Fatalf("AddCategoryPost(%q): status %d body %s", name, w.Code, w.Body.String())
		}
	}

	categories, err := store.Categories().GetAll(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(categories) != 2 {
		t.Fatalf("len = %d", len(categories))
	}
	if categories[0].ID != 1 || categories[1].ID != 2 {
		t.Errorf("ids = %d, %d", categories[0].ID, categories[1].ID)
	}
	if categories[0].DisplayOrder != 0 || categories[1].DisplayOrder != 1 {
		t.Errorf("orders = %d, %d", categories[0].DisplayOrder, categories[1].DisplayOrder)
	}
}

func TestAddCategoryRequiresName(t *testing.T) {
	h, _ := newTestHandler(t)
	w := postForm(h.AddCategoryPost, url.Values{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestReorderCategoriesSwapsNeighbors(t *testing.T) {
	h, store := newTestHandler(t)
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C"} {
		postForm(h.AddCategoryPost, url.Values{"name": {name}})
	}

	w := postForm(h.ReorderCategoriesPost, url.Values{
		"categoryId": {"2"}, "direction": {"up"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body %s", w.Code, w.Body.String())
	}

	categories, _ := store.Categories().GetAll(ctx)
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	if names[0] != "B" || names[1] != "A" || names[2] != "C" {
		t.Errorf("order after swap = %v", names)
	}

	// Moving the top category further up changes nothing.
	w = postForm(h.ReorderCategoriesPost, url.Values{
		"categoryId": {"2"}, "direction": {"up"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("edge reorder: status = %d", w.Code)
	}
	categories, _ = store.Categories().GetAll(ctx)
	if categories[0].Name != "B" {
		t.Errorf("edge reorder moved categories: %+v", categories)
	}
}

func TestDeleteCategoryCascadesToItems(t *testing.T) {
	h, store := newTestHandler(t)
	ctx := context.Background()

	postForm(h.AddCategoryPost, url.Values{"name": {"Kahveler"}})
	postForm(h.AddItemPost, url.Values{
		"category_id": {"1"}, "name": {"Latte"}, "price": {"100"},
	})

	w := postForm(h.DeleteCategoryPost, url.Values{"id": {"1"}})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body %s", w.Code, w.Body.String())
	}

	items, _ := store.MenuItems().GetAll(ctx)
	if len(items) != 0 {
		t.Errorf("items survived category deletion: %+v", items)
	}
}

func TestDeleteMissingCategoryReturns404(t *testing.T) {
	h, _ := newTestHandler(t)
	w := postForm(h.DeleteCategoryPost, url.Values{"id": {"42"}})
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
	if ack := decodeAck(t, w); ack.Success || ack.Error == "" {
		t.Errorf("ack = %+v", ack)
	}
}

func TestAddItemCoercesUnparsablePriceToNull(t *testing.T) {
	h, store := newTestHandler(t)

	postForm(h.AddCategoryPost, url.Values{"name": {"Kahveler"}})
	w := postForm(h.AddItemPost, url.Values{
		"category_id": {"1"}, "name": {"Oralet"}, "price": {"sorunuz"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body %s", w.Code, w.Body.String())
	}

	item, err := store.MenuItems().GetByID(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if item.Price.Valid {
		t.Errorf("price = %+v, want null", item.Price)
	}
	if !item.IsAvailable {
		t.Error("new items should start available")
	}
}

func TestUpdateItemTouchesOnlySentFields(t *testing.T) {
	h, store := newTestHandler(t)

	postForm(h.AddCategoryPost, url.Values{"name": {"Kahveler"}})
	postForm(h.AddItemPost, url.Values{
		"category_id": {"1"}, "name": {"Latte"}, "price": {"100"},
	})

	w := postJSON(h.UpdateItemPost, `{"id": 1, "is_available": false}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body %s", w.Code, w.Body.String())
	}

	item, _ := store.MenuItems().GetByID(context.Background(), 1)
	if item.IsAvailable {
		t.Error("is_available not updated")
	}
	if item.Name != "Latte" || !item.Price.Valid {
		t.Errorf("untouched fields changed: %+v", item)
	}
}

func TestUpdateItemJSONNullClearsPrice(t *testing.T) {
	h, store := newTestHandler(t)

	postForm(h.AddCategoryPost, url.Values{"name": {"Kahveler"}})
	postForm(h.AddItemPost, url.Values{
		"category_id": {"1"}, "name": {"Latte"}, "price": {"100"},
	})

	w := postJSON(h.UpdateItemPost, `{"id": 1, "price": null}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body %s", w.Code, w.Body.String())
	}

	item, _ := store.MenuItems().GetByID(context.Background(), 1)
	if item.Price.Valid {
		t.Errorf("price = %+v, want null", item.Price)
	}
}

func TestAddCampaignDerivesDiscount(t *testing.T) {
	h, store := newTestHandler(t)

	w := postForm(h.AddCampaignPost, url.Values{
		"name": {"Açılış"}, "old_price": {"200"}, "new_price": {"150"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body %s", w.Code, w.Body.String())
	}

	campaigns, _ := store.Campaigns().GetAll(context.Background())
	if len(campaigns) != 1 {
		t.Fatalf("len = %d", len(campaigns))
	}
	c := campaigns[0]
	if c.Discount == nil || *c.Discount != "200 TL -> 150 TL" {
		t.Errorf("Discount = %v", c.Discount)
	}
	if !c.IsActive || c.StartDate == nil {
		t.Errorf("campaign defaults wrong: %+v", c)
	}
}

func TestAddCampaignWithoutPricePairHasNoDiscount(t *testing.T) {
	h, store := newTestHandler(t)

	postForm(h.AddCampaignPost, url.Values{
		"name": {"Duyuru"}, "old_price": {"200"},
	})
	campaigns, _ := store.Campaigns().GetAll(context.Background())
	if campaigns[0].Discount != nil {
		t.Errorf("Discount = %v, want nil", *campaigns[0].Discount)
	}
}

func TestInstagramDeleteRenumbersOrders(t *testing.T) {
	h, store := newTestHandler(t)
	ctx := context.Background()

	for _, caption := range []string{"bir", "iki", "üç"} {
		postForm(h.AddInstagramPost, url.Values{"caption": {caption}})
	}

	w := postForm(h.DeleteInstagramPost, url.Values{"id": {"1"}})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body %s", w.Code, w.Body.String())
	}

	posts, _ := store.InstagramPosts().GetAll(ctx)
	if len(posts) != 2 {
		t.Fatalf("len = %d", len(posts))
	}
	for i, post := range posts {
		if post.DisplayOrder != i {
			t.Errorf("posts[%d].DisplayOrder = %d", i, post.DisplayOrder)
		}
	}
}

func TestChangePasswordRejectsWrongCurrent(t *testing.T) {
	h, _ := newTestHandler(t)

	// Stored hash is not a bcrypt hash of anything, so any current password
	// fails the comparison.
	w := postForm(h.ChangePasswordPost, url.Values{
		"currentPassword": {"yanlış"}, "newPassword": {"yeni"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	ack := decodeAck(t, w)
	if ack.Success || ack.Error != "Mevcut şifre hatalı!" {
		t.Errorf("ack = %+v", ack)
	}
}
