package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/zeylcoffee/qrmenu/app/models"
	"github.com/zeylcoffee/qrmenu/app/repositories"
	"github.com/zeylcoffee/qrmenu/app/repositories/jsonrepo"
)

func newCatalogFixture(t *testing.T) repositories.Store {
	t.Helper()
	store := jsonrepo.NewStore(
		filepath.Join(t.TempDir(), "database.json"),
		models.Admin{Username: "admin", Password: "hash"},
	)
	ctx := context.Background()

	categories := []models.Category{
		{ID: 1, Name: "Kahveler", DisplayOrder: 1},
		{ID: 2, Name: "Tatlılar", DisplayOrder: 0},
	}
	for i := range categories {
		if err := store.Categories().Create(ctx, &categories[i]); err != nil {
			t.Fatalf("Create category: %v", err)
		}
	}

	items := []models.MenuItem{
		{ID: 1, CategoryID: 1, Name: "Latte", IsAvailable: true},
		{ID: 2, CategoryID: 1, Name: "Salep", IsAvailable: false},
		{ID: 3, CategoryID: 2, Name: "Künefe", IsAvailable: true},
	}
	for i := range items {
		if err := store.MenuItems().Create(ctx, &items[i]); err != nil {
			t.Fatalf("Create item: %v", err)
		}
	}

	specials := []models.WeeklySpecial{
		{ID: 1, Name: "Serpme Kahvaltı", IsActive: true},
		{ID: 2, Name: "Eski Menü", IsActive: false},
	}
	for i := range specials {
		if err := store.WeeklySpecials().Create(ctx, &specials[i]); err != nil {
			t.Fatalf("Create special: %v", err)
		}
	}

	campaigns := []models.Campaign{
		{ID: 1, Title: "Açılış", IsActive: true},
		{ID: 2, Title: "Bitti", IsActive: false},
	}
	for i := range campaigns {
		if err := store.Campaigns().Create(ctx, &campaigns[i]); err != nil {
			t.Fatalf("Create campaign: %v", err)
		}
	}

	return store
}

func TestBuildPublicMenuFiltersHiddenRecords(t *testing.T) {
	store := newCatalogFixture(t)
	catalog, err := NewCatalogService(store).BuildPublicMenu(context.Background())
	if err != nil {
		t.Fatalf("BuildPublicMenu: %v", err)
	}

	if len(catalog.Menu) != 2 {
		t.Fatalf("len(Menu) = %d", len(catalog.Menu))
	}
	// Categories come back sorted by display order.
	if catalog.Menu[0].Category.Name != "Tatlılar" {
		t.Errorf("first category = %q", catalog.Menu[0].Category.Name)
	}

	for _, cm := range catalog.Menu {
		for _, item := range cm.Items {
			if !item.IsAvailable {
				t.Errorf("unavailable item %q in public menu", item.Name)
			}
		}
	}

	if len(catalog.WeeklySpecials) != 1 || catalog.WeeklySpecials[0].Name != "Serpme Kahvaltı" {
		t.Errorf("WeeklySpecials = %+v", catalog.WeeklySpecials)
	}
	if len(catalog.Campaigns) != 1 || catalog.Campaigns[0].Title != "Açılış" {
		t.Errorf("Campaigns = %+v", catalog.Campaigns)
	}
}

func TestBuildAdminMenuKeepsEverything(t *testing.T) {
	store := newCatalogFixture(t)
	catalog, err := NewCatalogService(store).BuildAdminMenu(context.Background())
	if err != nil {
		t.Fatalf("BuildAdminMenu: %v", err)
	}

	total := 0
	for _, cm := range catalog.Menu {
		total += len(cm.Items)
	}
	if total != 3 {
		t.Errorf("total items = %d, want 3", total)
	}
	if len(catalog.WeeklySpecials) != 2 {
		t.Errorf("len(WeeklySpecials) = %d", len(catalog.WeeklySpecials))
	}
	if len(catalog.Campaigns) != 2 {
		t.Errorf("len(Campaigns) = %d", len(catalog.Campaigns))
	}
}
