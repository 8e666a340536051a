package jsonrepo

import (
	"context"
	"sort"

	"github.com/zeylcoffee/qrmenu/app/models"
	"github.com/zeylcoffee/qrmenu/app/repositories"
)

type instagramPostRepository struct {
	store *Store
}

func (r *instagramPostRepository) GetAll(ctx context.Context) ([]models.InstagramPost, error) {
	db, err := r.store.load()
	if err != nil {
		return nil, err
	}
	posts := db.InstagramPosts
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].DisplayOrder < posts[j].DisplayOrder
	})
	return posts, nil
}

func (r *instagramPostRepository) GetByID(ctx context.Context, id int) (*models.InstagramPost, error) {
	db, err := r.store.load()
	if err != nil {
		return nil, err
	}
	for i := range db.InstagramPosts {
		if db.InstagramPosts[i].ID == id {
			return &db.InstagramPosts[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *instagramPostRepository) Create(ctx context.Context, post *models.InstagramPost) error {
	db, err := r.store.load()
	if err != nil {
		return err
	}
	db.InstagramPosts = append(db.InstagramPosts, *post)
	return r.store.save(db)
}

func (r *instagramPostRepository) Update(ctx context.Context, id int, patch repositories.InstagramPostPatch) error {
	db, err := r.store.load()
	if err != nil {
		return err
	}
	for i := range db.InstagramPosts {
		if db.InstagramPosts[i].ID != id {
			continue
		}
		if patch.Caption != nil {
			db.InstagramPosts[i].Caption = *patch.Caption
		}
		return r.store.save(db)
	}
	return repositories.ErrNotFound
}

func (r *instagramPostRepository) SetImage(ctx context.Context, id int, image *string) error {
	db, err := r.store.load()
	if err != nil {
		return err
	}
	for i := range db.InstagramPosts {
		if db.InstagramPosts[i].ID == id {
			db.InstagramPosts[i].Image = image
			return r.store.save(db)
		}
	}
	return repositories.ErrNotFound
}

func (r *instagramPostRepository) Delete(ctx context.Context, id int) error {
	db, err := r.store.load()
	if err != nil {
		return err
	}
	kept := db.InstagramPosts[:0]
	found := false
	for _, p := range db.InstagramPosts {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return repositories.ErrNotFound
	}
	// Re-pack display orders to 0..n-1.
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].DisplayOrder < kept[j].DisplayOrder
	})
	for i := range kept {
		kept[i].DisplayOrder = i
	}
	db.InstagramPosts = kept
	return r.store.save(db)
}
