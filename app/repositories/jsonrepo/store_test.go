package jsonrepo

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/zeylcoffee/qrmenu/app/models"
	"github.com/zeylcoffee/qrmenu/app/repositories"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "database.json")
	return NewStore(path, models.Admin{Username: "admin", Password: "hash"})
}

func TestBootstrapCreatesFileWithAdmin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")
	store := NewStore(path, models.Admin{Username: "admin", Password: "hash"})

	admin, err := store.Admin().Get(context.Background())
	if err != nil {
		t.Fatalf("Get admin: %v", err)
	}
	if admin.Username != "admin" || admin.Password != "hash" {
		t.Errorf("unexpected admin record: %+v", admin)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("database file not created: %v", err)
	}
}

func TestCategoryCRUD(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	category := &models.Category{ID: 1, Name: "Sıcak İçecekler", DisplayOrder: 0}
	if err := store.Categories().Create(ctx, category); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := store.Categories().GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Sıcak İçecekler" {
		t.Errorf("Name = %q", got.Name)
	}

	newName := "Kahveler"
	if err := store.Categories().Update(ctx, 1, repositories.CategoryPatch{Name: &newName}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, _ = store.Categories().GetByID(ctx, 1)
	if got.Name != "Kahveler" {
		t.Errorf("after update Name = %q", got.Name)
	}

	if err := store.Categories().Delete(ctx, 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Categories().GetByID(ctx, 1); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("GetByID after delete: err = %v, want ErrNotFound", err)
	}
}

func TestUpdateMissingCategoryReturnsNotFound(t *testing.T) {
	store := newTestStore(t)
	name := "yok"
	err := store.Categories().Update(context.Background(), 99, repositories.CategoryPatch{Name: &name})
	if !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestMenuItemPartialUpdateLeavesOtherFields(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	item := &models.MenuItem{
		ID: 1, CategoryID: 1, Name: "Latte", Description: "sütlü",
		Price: models.NewPrice(100), IsAvailable: true,
	}
	if err := store.MenuItems().Create(ctx, item); err != nil {
		t.Fatalf("Create: %v", err)
	}

	price := models.NullPrice()
	if err := store.MenuItems().Update(ctx, 1, repositories.MenuItemPatch{Price: &price}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := store.MenuItems().GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Price.Valid {
		t.Error("Price still valid after clearing")
	}
	if got.Name != "Latte" || got.Description != "sütlü" || !got.IsAvailable {
		t.Errorf("untouched fields changed: %+v", got)
	}
}

func TestDeleteByCategoryRemovesOnlyThatCategory(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i, categoryID := range []int{1, 1, 2} {
		item := &models.MenuItem{ID: i + 1, CategoryID: categoryID, Name: "x", IsAvailable: true}
		if err := store.MenuItems().Create(ctx, item); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	if err := store.MenuItems().DeleteByCategory(ctx, 1); err != nil {
		t.Fatalf("DeleteByCategory: %v", err)
	}

	remaining, err := store.MenuItems().GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(remaining) != 1 || remaining[0].CategoryID != 2 {
		t.Errorf("remaining = %+v", remaining)
	}
}

func TestInstagramDeleteRepacksOrders(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		post := &models.InstagramPost{ID: i + 1, Caption: "p", DisplayOrder: i}
		if err := store.InstagramPosts().Create(ctx, post); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	if err := store.InstagramPosts().Delete(ctx, 2); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	posts, err := store.InstagramPosts().GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("len = %d", len(posts))
	}
	for i, post := range posts {
		if post.DisplayOrder != i {
			t.Errorf("posts[%d].DisplayOrder = %d, want %d", i, post.DisplayOrder, i)
		}
	}
}

func TestStatisticsTrackAndReset(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	at := time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)

	for i := 0; i < 2; i++ {
		if err := store.Statistics().TrackClick(ctx, 3, "Tatlılar", at); err != nil {
			t.Fatalf("TrackClick: %v", err)
		}
	}

	stats, err := store.Statistics().Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	clicks := stats.CategoryClicks["3"]
	if clicks == nil || clicks.TotalClicks != 2 || clicks.Name != "Tatlılar" {
		t.Errorf("CategoryClicks[3] = %+v", clicks)
	}
	day := stats.DailyClicks["2025-06-01"]
	if day == nil || day["3"] == nil || day["3"].Clicks != 2 {
		t.Errorf("DailyClicks = %+v", stats.DailyClicks)
	}

	if err := store.Statistics().Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	stats, _ = store.Statistics().Get(ctx)
	if len(stats.CategoryClicks) != 0 || len(stats.DailyClicks) != 0 {
		t.Errorf("statistics not empty after reset: %+v", stats)
	}
}

func TestPersistenceAcrossStores(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")
	ctx := context.Background()

	first := NewStore(path, models.Admin{Username: "admin", Password: "hash"})
	category := &models.Category{ID: 1, Name: "Tostlar"}
	if err := first.Categories().Create(ctx, category); err != nil {
		t.Fatalf("Create: %v", err)
	}

	second := NewStore(path, models.Admin{Username: "other", Password: "x"})
	got, err := second.Categories().GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("GetByID from second store: %v", err)
	}
	if got.Name != "Tostlar" {
		t.Errorf("Name = %q", got.Name)
	}
	admin, _ := second.Admin().Get(ctx)
	if admin.Username != "admin" {
		t.Errorf("admin overwritten on reopen: %+v", admin)
	}
}
