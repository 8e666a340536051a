package mongorepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zeylcoffee/qrmenu/app/models"
	"github.com/zeylcoffee/qrmenu/app/repositories"
)

type adminRepository struct {
	coll *mongo.Collection
}

func (r *adminRepository) Get(ctx context.Context) (*models.Admin, error) {
	var admin models.Admin
	err := r.coll.FindOne(ctx, bson.M{}).Decode(&admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) Ensure(ctx context.Context, admin models.Admin) error {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	_, err = r.coll.InsertOne(ctx, admin)
	return err
}

func (r *adminRepository) UpdatePassword(ctx context.Context, passwordHash string) error {
	result, err := r.coll.UpdateOne(ctx, bson.M{}, bson.M{"$set": bson.M{"password": passwordHash}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

type statisticsRepository struct {
	coll *mongo.Collection
}

// The statistics collection holds a single document; reads and writes go
// through a read-modify-write of the whole document, mirroring the JSON
// backend.
func (r *statisticsRepository) Get(ctx context.Context) (*models.Statistics, error) {
	var stats models.Statistics
	err := r.coll.FindOne(ctx, bson.M{}).Decode(&stats)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.NewStatistics(), nil
	}
	if err != nil {
		return nil, err
	}
	if stats.CategoryClicks == nil {
		stats.CategoryClicks = make(map[string]*models.CategoryClicks)
	}
	if stats.DailyClicks == nil {
		stats.DailyClicks = make(map[string]map[string]*models.DailyCategoryClicks)
	}
	return &stats, nil
}

func (r *statisticsRepository) TrackClick(ctx context.Context, categoryID int, categoryName string, at time.Time) error {
	stats, err := r.Get(ctx)
	if err != nil {
		return err
	}
	stats.Track(categoryID, categoryName, at)
	_, err = r.coll.ReplaceOne(ctx, bson.M{}, stats, options.Replace().SetUpsert(true))
	return err
}

func (r *statisticsRepository) Reset(ctx context.Context) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{}, models.NewStatistics(), options.Replace().SetUpsert(true))
	return err
}
