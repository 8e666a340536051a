// Package repositories defines the storage contract shared by the JSON-file
// backend and the MongoDB backend. Handlers and services only ever see these
// interfaces, so the two backends stay interchangeable.
package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/zeylcoffee/qrmenu/app/models"
)

// ErrNotFound is returned by every update/delete whose target id does not
// exist. Both backends check existence before mutating.
var ErrNotFound = errors.New("record not found")

type CategoryPatch struct {
	Name         *string
	DisplayOrder *int
}

type MenuItemPatch struct {
	Name        *string
	Description *string
	Price       *models.Price
	IsAvailable *bool
}

type WeeklySpecialPatch struct {
	Name        *string
	Description *string
	Price       *models.Price
	IsActive    *bool
}

type CampaignPatch struct {
	Title       *string
	Description *string
	Discount    **string
	IsActive    *bool
	EndDate     **time.Time
}

type InstagramPostPatch struct {
	Caption *string
}

type CategoryRepository interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id int) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, id int, patch CategoryPatch) error
	Delete(ctx context.Context, id int) error
}

type MenuItemRepository interface {
	GetAll(ctx context.Context) ([]models.MenuItem, error)
	GetByCategory(ctx context.Context, categoryID int) ([]models.MenuItem, error)
	GetByID(ctx context.Context, id int) (*models.MenuItem, error)
	Create(ctx context.Context, item *models.MenuItem) error
	Update(ctx context.Context, id int, patch MenuItemPatch) error
	SetImage(ctx context.Context, id int, image *string) error
	Delete(ctx context.Context, id int) error
	DeleteByCategory(ctx context.Context, categoryID int) error
}

type WeeklySpecialRepository interface {
	GetAll(ctx context.Context) ([]models.WeeklySpecial, error)
	GetByID(ctx context.Context, id int) (*models.WeeklySpecial, error)
	Create(ctx context.Context, special *models.WeeklySpecial) error
	Update(ctx context.Context, id int, patch WeeklySpecialPatch) error
	SetImage(ctx context.Context, id int, image *string) error
	Delete(ctx context.Context, id int) error
}

type CampaignRepository interface {
	GetAll(ctx context.Context) ([]models.Campaign, error)
	GetByID(ctx context.Context, id int) (*models.Campaign, error)
	Create(ctx context.Context, campaign *models.Campaign) error
	Update(ctx context.Context, id int, patch CampaignPatch) error
	SetImage(ctx context.Context, id int, image *string) error
	Delete(ctx context.Context, id int) error
}

type InstagramPostRepository interface {
	// GetAll returns posts ordered by display_order ascending.
	GetAll(ctx context.Context) ([]models.InstagramPost, error)
	GetByID(ctx context.Context, id int) (*models.InstagramPost, error)
	Create(ctx context.Context, post *models.InstagramPost) error
	Update(ctx context.Context, id int, patch InstagramPostPatch) error
	SetImage(ctx context.Context, id int, image *string) error
	// Delete removes the post and renumbers the remaining display orders to
	// a dense 0..n-1 sequence.
	Delete(ctx context.Context, id int) error
}

type AdminRepository interface {
	Get(ctx context.Context) (*models.Admin, error)
	// Ensure stores the given credentials only when no admin exists yet.
	Ensure(ctx context.Context, admin models.Admin) error
	UpdatePassword(ctx context.Context, passwordHash string) error
}

type StatisticsRepository interface {
	Get(ctx context.Context) (*models.Statistics, error)
	TrackClick(ctx context.Context, categoryID int, categoryName string, at time.Time) error
	Reset(ctx context.Context) error
}

// Store aggregates the per-entity repositories of one backend.
type Store interface {
	Categories() CategoryRepository
	MenuItems() MenuItemRepository
	WeeklySpecials() WeeklySpecialRepository
	Campaigns() CampaignRepository
	InstagramPosts() InstagramPostRepository
	Admin() AdminRepository
	Statistics() StatisticsRepository
}
