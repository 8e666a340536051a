package jsonrepo

import (
	"context"
	"sort"

	"github.com/zeylcoffee/qrmenu/app/models"
	"github.com/zeylcoffee/qrmenu/app/repositories"
)

type weeklySpecialRepository struct {
	store *Store
}

func (r *weeklySpecialRepository) GetAll(ctx context.Context) ([]models.WeeklySpecial, error) {
	db, err := r.store.load()
	if err != nil {
		return nil, err
	}
	specials := db.WeeklySpecials
	sort.SliceStable(specials, func(i, j int) bool {
		return specials[i].DisplayOrder < specials[j].DisplayOrder
	})
	return specials, nil
}

func (r *weeklySpecialRepository) GetByID(ctx context.Context, id int) (*models.WeeklySpecial, error) {
	db, err := r.store.load()
	if err != nil {
		return nil, err
	}
	for i := range db.WeeklySpecials {
		if db.WeeklySpecials[i].ID == id {
			return &db.WeeklySpecials[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *weeklySpecialRepository) Create(ctx context.Context, special *models.WeeklySpecial) error {
	db, err := r.store.load()
	if err != nil {
		return err
	}
	db.WeeklySpecials = append(db.WeeklySpecials, *special)
	return r.store.save(db)
}

func (r *weeklySpecialRepository) Update(ctx context.Context, id int, patch repositories.WeeklySpecialPatch) error {
	db, err := r.store.load()
	if err != nil {
		return err
	}
	for i := range db.WeeklySpecials {
		if db.WeeklySpecials[i].ID != id {
			continue
		}
		if patch.Name != nil {
			db.WeeklySpecials[i].Name = *patch.Name
		}
		if patch.Description != nil {
			db.WeeklySpecials[i].Description = *patch.Description
		}
		if patch.Price != nil {
			db.WeeklySpecials[i].Price = *patch.Price
		}
		if patch.IsActive != nil {
			db.WeeklySpecials[i].IsActive = *patch.IsActive
		}
		return r.store.save(db)
	}
	return repositories.ErrNotFound
}

func (r *weeklySpecialRepository) SetImage(ctx context.Context, id int, image *string) error {
	db, err := r.store.load()
	if err != nil {
		return err
	}
	for i := range db.WeeklySpecials {
		if db.WeeklySpecials[i].ID == id {
			db.WeeklySpecials[i].Image = image
			return r.store.save(db)
		}
	}
	return repositories.ErrNotFound
}

func (r *weeklySpecialRepository) Delete(ctx context.Context, id int) error {
	db, err := r.store.load()
	if err != nil {
		return err
	}
	kept := db.WeeklySpecials[:0]
	found := false
	for _, s := range db.WeeklySpecials {
		if s.ID == id {
			found = true
			continue
		}
		kept = append(kept, s)
	}
	if !found {
		return repositories.ErrNotFound
	}
	db.WeeklySpecials = kept
	return r.store.save(db)
}
