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

type menuItemRepository struct {
	coll *mongo.Collection
}

func (r *menuItemRepository) GetAll(ctx context.Context) ([]models.MenuItem, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	items := []models.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *menuItemRepository) GetByCategory(ctx context.Context, categoryID int) ([]models.MenuItem, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"category_id": categoryID},
		options.Find().SetSort(bson.D{{Key: "display_order", Value: 1}}))
	if err != nil {
		return nil, err
	}
	items := []models.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *menuItemRepository) GetByID(ctx context.Context, id int) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuItemRepository) Create(ctx context.Context, item *models.MenuItem) error {
	_, err := r.coll.InsertOne(ctx, item)
	return err
}

func (r *menuItemRepository) Update(ctx context.Context, id int, patch repositories.MenuItemPatch) error {
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
	if patch.IsAvailable != nil {
		set["is_available"] = *patch.IsAvailable
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

func (r *menuItemRepository) SetImage(ctx context.Context, id int, image *string) error {
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"image": image}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *menuItemRepository) Delete(ctx context.Context, id int) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *menuItemRepository) DeleteByCategory(ctx context.Context, categoryID int) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"category_id": categoryID})
	return err
}
