package mongorepo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zeylcoffee/qrmenu/app/models"
	"github.com/zeylcoffee/qrmenu/app/repositories"
)

type weeklySpecialRepository struct {
	coll *mongo.Collection
}

func (r *weeklySpecialRepository) GetAll(ctx context.Context) ([]models.WeeklySpecial, error) {
	cursor, err := r.coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "display_order", Value: 1}}))
	if err != nil {
		return nil, err
	}
	specials := []models.WeeklySpecial{}
	if err := cursor.All(ctx, &specials); err != nil {
		return nil, err
	}
	return specials, nil
}

func (r *weeklySpecialRepository) GetByID(ctx context.Context, id int) (*models.WeeklySpecial, error) {
	var special models.WeeklySpecial
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&special)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &special, nil
}

func (r *weeklySpecialRepository) Create(ctx context.Context, special *models.WeeklySpecial) error {
	_, err := r.coll.InsertOne(ctx, special)
	return err
}

func (r *weeklySpecialRepository) Update(ctx context.Context, id int, patch repositories.WeeklySpecialPatch) error {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.IsActive != nil {
		set["is_active"] = *patch.IsActive
	}
	if len(set) == 0 {
		_, err := r.GetByID(ctx, id)
		return err
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *weeklySpecialRepository) SetImage(ctx context.Context, id int, image *string) error {
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"image": image}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *weeklySpecialRepository) Delete(ctx context.Context, id int) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
