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

type instagramPostRepository struct {
	coll *mongo.Collection
}

func (r *instagramPostRepository) GetAll(ctx context.Context) ([]models.InstagramPost, error) {
	cursor, err := r.coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "display_order", Value: 1}}))
	if err != nil {
		return nil, err
	}
	posts := []models.InstagramPost{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *instagramPostRepository) GetByID(ctx context.Context, id int) (*models.InstagramPost, error) {
	var post models.InstagramPost
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *instagramPostRepository) Create(ctx context.Context, post *models.InstagramPost) error {
	_, err := r.coll.InsertOne(ctx, post)
	return err
}

func (r *instagramPostRepository) Update(ctx context.Context, id int, patch repositories.InstagramPostPatch) error {
	set := bson.M{}
	if patch.Caption != nil {
		set["caption"] = *patch.Caption
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

func (r *instagramPostRepository) SetImage(ctx context.Context, id int, image *string) error {
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"image": image}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *instagramPostRepository) Delete(ctx context.Context, id int) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repositories.ErrNotFound
	}

	// Renumber survivors so display orders stay dense.
	posts, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	for i, post := range posts {
		if post.DisplayOrder == i {
			continue
		}
		_, err := r.coll.UpdateOne(ctx, bson.M{"id": post.ID},
			bson.M{"$set": bson.M{"display_order": i}})
		if err != nil {
			return err
		}
	}
	return nil
}
