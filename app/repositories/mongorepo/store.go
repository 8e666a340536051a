// Package mongorepo persists the catalog in MongoDB, one collection per
// record type. Records keep the integer id field as their lookup key so both
// backends expose the same identifier space.
package mongorepo

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zeylcoffee/qrmenu/app/repositories"
)

const (
	categoriesCollection     = "categories"
	menuItemsCollection      = "menu_items"
	weeklySpecialsCollection = "weekly_specials"
	campaignsCollection      = "campaigns"
	instagramPostsCollection = "instagram_posts"
	adminsCollection         = "admins"
	statisticsCollection     = "statistics"
)

type Store struct {
	db *mongo.Database
}

func NewStore(db *mongo.Database) *Store {
	return &Store{db: db}
}

func (s *Store) Categories() repositories.CategoryRepository {
	return &categoryRepository{coll: s.db.Collection(categoriesCollection)}
}

func (s *Store) MenuItems() repositories.MenuItemRepository {
	return &menuItemRepository{coll: s.db.Collection(menuItemsCollection)}
}

func (s *Store) WeeklySpecials() repositories.WeeklySpecialRepository {
	return &weeklySpecialRepository{coll: s.db.Collection(weeklySpecialsCollection)}
}

func (s *Store) Campaigns() repositories.CampaignRepository {
	return &campaignRepository{coll: s.db.Collection(campaignsCollection)}
}

func (s *Store) InstagramPosts() repositories.InstagramPostRepository {
	return &instagramPostRepository{coll: s.db.Collection(instagramPostsCollection)}
}

func (s *Store) Admin() repositories.AdminRepository {
	return &adminRepository{coll: s.db.Collection(adminsCollection)}
}

func (s *Store) Statistics() repositories.StatisticsRepository {
	return &statisticsRepository{coll: s.db.Collection(statisticsCollection)}
}
