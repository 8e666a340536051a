package services

import (
	"context"

	"github.com/zeylcoffee/qrmenu/app/models"
	"github.com/zeylcoffee/qrmenu/app/repositories"
)

// CatalogService assembles the nested category/item view consumed by the
// public menu and the admin dashboard. The public build filters on the
// visibility flags; the admin build shows everything.
type CatalogService struct {
	store repositories.Store
}

func NewCatalogService(store repositories.Store) *CatalogService {
	return &CatalogService{store: store}
}

func (s *CatalogService) BuildPublicMenu(ctx context.Context) (*models.Catalog, error) {
	return s.build(ctx, true)
}

func (s *CatalogService) BuildAdminMenu(ctx context.Context) (*models.Catalog, error) {
	return s.build(ctx, false)
}

func (s *CatalogService) build(ctx context.Context, publicOnly bool) (*models.Catalog, error) {
	categories, err := s.store.Categories().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	menu := make([]models.CategoryMenu, 0, len(categories))
	for _, category := range categories {
		items, err := s.store.MenuItems().GetByCategory(ctx, category.ID)
		if err != nil {
			return nil, err
		}
		if publicOnly {
			visible := items[:0]
			for _, item := range items {
				if item.IsAvailable {
					visible = append(visible, item)
				}
			}
			items = visible
		}
		menu = append(menu, models.CategoryMenu{Category: category, Items: items})
	}

	specials, err := s.store.WeeklySpecials().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if publicOnly {
		active := specials[:0]
		for _, special := range specials {
			if special.IsActive {
				active = append(active, special)
			}
		}
		specials = active
	}

	campaigns, err := s.store.Campaigns().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if publicOnly {
		active := campaigns[:0]
		for _, campaign := range campaigns {
			if campaign.IsActive {
				active = append(active, campaign)
			}
		}
		campaigns = active
	}

	posts, err := s.store.InstagramPosts().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return &models.Catalog{
		Menu:           menu,
		WeeklySpecials: specials,
		Campaigns:      campaigns,
		InstagramPosts: posts,
	}, nil
}
