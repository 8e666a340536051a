package jsonrepo

import (
	"context"
	"sort"

	"github.com/zeylcoffee/qrmenu/app/models"
	"github.com/zeylcoffee/qrmenu/app/repositories"
)

type menuItemRepository struct {
	store *Store
}

func (r *menuItemRepository) GetAll(ctx context.Context) ([]models.MenuItem, error) {
	db, err := r.store.load()
	if err != nil {
		return nil, err
	}
	return db.MenuItems, nil
}

func (r *menuItemRepository) GetByCategory(ctx context.Context, categoryID int) ([]models.MenuItem, error) {
	db, err := r.store.load()
	if err != nil {
		return nil, err
	}
	items := []models.MenuItem{}
	for _, item := range db.MenuItems {
		if item.CategoryID == categoryID {
			items = append(items, item)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DisplayOrder < items[j].DisplayOrder
	})
	return items, nil
}

func (r *menuItemRepository) GetByID(ctx context.Context, id int) (*models.MenuItem, error) {
	db, err := r.store.load()
	if err != nil {
		return nil, err
	}
	for i := range db.MenuItems {
		if db.MenuItems[i].ID == id {
			return &db.MenuItems[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *menuItemRepository) Create(ctx context.Context, item *models.MenuItem) error {
	db, err := r.store.load()
	if err != nil {
		return err
	}
	db.MenuItems = append(db.MenuItems, *item)
	return r.store.save(db)
}

func (r *menuItemRepository) Update(ctx context.Context, id int, patch repositories.MenuItemPatch) error {
	db, err := r.store.load()
	if err != nil {
		return err
	}
	for i := range db.MenuItems {
		if db.MenuItems[i].ID != id {
			continue
		}
		if patch.Name != nil {
			db.MenuItems[i].Name = *patch.Name
		}
		if patch.Description != nil {
			db.MenuItems[i].Description = *patch.Description
		}
		if patch.Price != nil {
			db.MenuItems[i].Price = *patch.Price
		}
		if patch.IsAvailable != nil {
			db.MenuItems[i].IsAvailable = *patch.IsAvailable
		}
		return r.store.save(db)
	}
	return repositories.ErrNotFound
}

func (r *menuItemRepository) SetImage(ctx context.Context, id int, image *string) error {
	db, err := r.store.load()
	if err != nil {
		return err
	}
	for i := range db.MenuItems {
		if db.MenuItems[i].ID == id {
			db.MenuItems[i].Image = image
			return r.store.save(db)
		}
	}
	return repositories.ErrNotFound
}

func (r *menuItemRepository) Delete(ctx context.Context, id int) error {
	db, err := r.store.load()
	if err != nil {
		return err
	}
	kept := db.MenuItems[:0]
	found := false
	for _, item := range db.MenuItems {
		if item.ID == id {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return repositories.ErrNotFound
	}
	db.MenuItems = kept
	return r.store.save(db)
}

func (r *menuItemRepository) DeleteByCategory(ctx context.Context, categoryID int) error {
	db, err := r.store.load()
	if err != nil {
		return err
	}
	kept := db.MenuItems[:0]
	for _, item := range db.MenuItems {
		if item.CategoryID != categoryID {
			kept = append(kept, item)
		}
	}
	db.MenuItems = kept
	return r.store.save(db)
}
