package jsonrepo

import (
	"context"
	"time"

	"github.com/zeylcoffee/qrmenu/app/models"
)

type adminRepository struct {
	store *Store
}

func (r *adminRepository) Get(ctx context.Context) (*models.Admin, error) {
	db, err := r.store.load()
	if err != nil {
		return nil, err
	}
	return &db.Admin, nil
}

func (r *adminRepository) Ensure(ctx context.Context, admin models.Admin) error {
	db, err := r.store.load()
	if err != nil {
		return err
	}
	if db.Admin.Username != "" {
		return nil
	}
	db.Admin = admin
	return r.store.save(db)
}

func (r *adminRepository) UpdatePassword(ctx context.Context, passwordHash string) error {
	db, err := r.store.load()
	if err != nil {
		return err
	}
	db.Admin.Password = passwordHash
	return r.store.save(db)
}

type statisticsRepository struct {
	store *Store
}

func (r *statisticsRepository) Get(ctx context.Context) (*models.Statistics, error) {
	db, err := r.store.load()
	if err != nil {
		return nil, err
	}
	if db.Statistics == nil {
		return models.NewStatistics(), nil
	}
	if db.Statistics.CategoryClicks == nil {
		db.Statistics.CategoryClicks = make(map[string]*models.CategoryClicks)
	}
	if db.Statistics.DailyClicks == nil {
		db.Statistics.DailyClicks = make(map[string]map[string]*models.DailyCategoryClicks)
	}
	return db.Statistics, nil
}

func (r *statisticsRepository) TrackClick(ctx context.Context, categoryID int, categoryName string, at time.Time) error {
	db, err := r.store.load()
	if err != nil {
		return err
	}
	if db.Statistics == nil {
		db.Statistics = models.NewStatistics()
	}
	db.Statistics.Track(categoryID, categoryName, at)
	return r.store.save(db)
}

func (r *statisticsRepository) Reset(ctx context.Context) error {
	db, err := r.store.load()
	if err != nil {
		return err
	}
	db.Statistics = models.NewStatistics()
	return r.store.save(db)
}
