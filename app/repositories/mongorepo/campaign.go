package mongorepo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zeylcoffee/qrmenu/app/models"
	"github.com/zeylcoffee/qrmenu/app/repositories"
)

type campaignRepository struct {
	coll *mongo.Collection
}

func (r *campaignRepository) GetAll(ctx context.Context) ([]models.Campaign, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	campaigns := []models.Campaign{}
	if err := cursor.All(ctx, &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

func (r *campaignRepository) GetByID(ctx context.Context, id int) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&campaign)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

func (r *campaignRepository) Create(ctx context.Context, campaign *models.Campaign) error {
	_, err := r.coll.InsertOne(ctx, campaign)
	return err
}

func (r *campaignRepository) Update(ctx context.Context, id int, patch repositories.CampaignPatch) error {
	set := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Discount != nil {
		set["discount"] = *patch.Discount
	}
	if patch.IsActive != nil {
		set["is_active"] = *patch.IsActive
	}
	if patch.EndDate != nil {
		set["end_date"] = *patch.EndDate
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

func (r *campaignRepository) SetImage(ctx context.Context, id int, image *string) error {
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"image": image}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *campaignRepository) Delete(ctx context.Context, id int) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
