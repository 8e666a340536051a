package jsonrepo

import (
	"context"

	"github.com/zeylcoffee/qrmenu/app/models"
	"github.com/zeylcoffee/qrmenu/app/repositories"
)

type campaignRepository struct {
	store *Store
}

func (r *campaignRepository) GetAll(ctx context.Context) ([]models.Campaign, error) {
	db, err := r.store.load()
	if err != nil {
		return nil, err
	}
	return db.Campaigns, nil
}

func (r *campaignRepository) GetByID(ctx context.Context, id int) (*models.Campaign, error) {
	db, err := r.store.load()
	if err != nil {
		return nil, err
	}
	for i := range db.Campaigns {
		if db.Campaigns[i].ID == id {
			return &db.Campaigns[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *campaignRepository) Create(ctx context.Context, campaign *models.Campaign) error {
	db, err := r.store.load()
	if err != nil {
		return err
	}
	db.Campaigns = append(db.Campaigns, *campaign)
	return r.store.save(db)
}

func (r *campaignRepository) Update(ctx context.Context, id int, patch repositories.CampaignPatch) error {
	db, err := r.store.load()
	if err != nil {
		return err
	}
	for i := range db.Campaigns {
		if db.Campaigns[i].ID != id {
			continue
		}
		if patch.Title != nil {
			db.Campaigns[i].Title = *patch.Title
		}
		if patch.Description != nil {
			db.Campaigns[i].Description = *patch.Description
		}
		if patch.Discount != nil {
			db.Campaigns[i].Discount = *patch.Discount
		}
		if patch.IsActive != nil {
			db.Campaigns[i].IsActive = *patch.IsActive
		}
		if patch.EndDate != nil {
			db.Campaigns[i].EndDate = *patch.EndDate
		}
		return r.store.save(db)
	}
	return repositories.ErrNotFound
}

func (r *campaignRepository) SetImage(ctx context.Context, id int, image *string) error {
	db, err := r.store.load()
	if err != nil {
		return err
	}
	for i := range db.Campaigns {
		if db.Campaigns[i].ID == id {
			db.Campaigns[i].Image = image
			return r.store.save(db)
		}
	}
	return repositories.ErrNotFound
}

func (r *campaignRepository) Delete(ctx context.Context, id int) error {
	db, err := r.store.load()
	if err != nil {
		return err
	}
	kept := db.Campaigns[:0]
	found := false
	for _, c := range db.Campaigns {
		if c.ID == id {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return repositories.ErrNotFound
	}
	db.Campaigns = kept
	return r.store.save(db)
}
