package jsonrepo

import (
	"context"
	"sort"

	"github.com/zeylcoffee/qrmenu/app/models"
	"github.com/zeylcoffee/qrmenu/app/repositories"
)

type categoryRepository struct {
	store *Store
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	db, err := r.store.load()
	if err != nil {
		return nil, err
	}
	categories := db.Categories
	// Stable sort keeps insertion order for display_order ties.
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].DisplayOrder < categories[j].DisplayOrder
	})
	return categories, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id int) (*models.Category, error) {
	db, err := r.store.load()
	if err != nil {
		return nil, err
	}
	for i := range db.Categories {
		if db.Categories[i].ID == id {
			return &db.Categories[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	db, err := r.store.load()
	if err != nil {
		return err
	}
	db.Categories = append(db.Categories, *category)
	return r.store.save(db)
}

func (r *categoryRepository) Update(ctx context.Context, id int, patch repositories.CategoryPatch) error {
	db, err := r.store.load()
	if err != nil {
		return err
	}
	for i := range db.Categories {
		if db.Categories[i].ID != id {
			continue
		}
		if patch.Name != nil {
			db.Categories[i].Name = *patch.Name
		}
		if patch.DisplayOrder != nil {
			db.Categories[i].DisplayOrder = *patch.DisplayOrder
		}
		return r.store.save(db)
	}
	return repositories.ErrNotFound
}

func (r *categoryRepository) Delete(ctx context.Context, id int) error {
	db, err := r.store.load()
	if err != nil {
		return err
	}
	kept := db.Categories[:0]
	found := false
	for _, c := range db.Categories {
		if c.ID == id {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return repositories.ErrNotFound
	}
	db.Categories = kept
	return r.store.save(db)
}
