// Package jsonrepo persists the whole catalog as a single JSON document.
// Every operation reads the current committed state fresh from disk and
// mutations write the full document back, so the file is always the single
// source of truth and nothing is cached between requests.
package jsonrepo

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/zeylcoffee/qrmenu/app/models"
	"github.com/zeylcoffee/qrmenu/app/repositories"
)

type database struct {
	Admin          models.Admin           `json:"admin"`
	Categories     []models.Category      `json:"categories"`
	MenuItems      []models.MenuItem      `json:"menuItems"`
	WeeklySpecials []models.WeeklySpecial `json:"weeklySpecials"`
	Campaigns      []models.Campaign      `json:"campaigns"`
	InstagramPosts []models.InstagramPost `json:"instagramPosts"`
	Statistics     *models.Statistics     `json:"statistics,omitempty"`
}

type Store struct {
	path         string
	defaultAdmin models.Admin
}

// NewStore opens the JSON database at path. defaultAdmin is written into a
// freshly bootstrapped file; its password must already be hashed.
func NewStore(path string, defaultAdmin models.Admin) *Store {
	return &Store{path: path, defaultAdmin: defaultAdmin}
}

func (s *Store) load() (*database, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		db := &database{
			Admin:          s.defaultAdmin,
			Categories:     []models.Category{},
			MenuItems:      []models.MenuItem{},
			WeeklySpecials: []models.WeeklySpecial{},
			Campaigns:      []models.Campaign{},
			InstagramPosts: []models.InstagramPost{},
		}
		if err := s.save(db); err != nil {
			return nil, err
		}
		log.Printf("jsonrepo: created new database at %s", s.path)
		return db, nil
	}
	if err != nil {
		return nil, fmt.Errorf("jsonrepo: read %s: %w", s.path, err)
	}

	var db database
	if err := json.Unmarshal(raw, &db); err != nil {
		return nil, fmt.Errorf("jsonrepo: parse %s: %w", s.path, err)
	}

	// Older database files predate some sections.
	if db.Categories == nil {
		db.Categories = []models.Category{}
	}
	if db.MenuItems == nil {
		db.MenuItems = []models.MenuItem{}
	}
	if db.WeeklySpecials == nil {
		db.WeeklySpecials = []models.WeeklySpecial{}
	}
	if db.Campaigns == nil {
		db.Campaigns = []models.Campaign{}
	}
	if db.InstagramPosts == nil {
		db.InstagramPosts = []models.InstagramPost{}
	}
	return &db, nil
}

func (s *Store) save(db *database) error {
	raw, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonrepo: marshal database: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0644); err != nil {
		return fmt.Errorf("jsonrepo: write %s: %w", s.path, err)
	}
	return nil
}

func (s *Store) Categories() repositories.CategoryRepository {
	return &categoryRepository{store: s}
}

func (s *Store) MenuItems() repositories.MenuItemRepository {
	return &menuItemRepository{store: s}
}

func (s *Store) WeeklySpecials() repositories.WeeklySpecialRepository {
	return &weeklySpecialRepository{store: s}
}

func (s *Store) Campaigns() repositories.CampaignRepository {
	return &campaignRepository{store: s}
}

func (s *Store) InstagramPosts() repositories.InstagramPostRepository {
	return &instagramPostRepository{store: s}
}

func (s *Store) Admin() repositories.AdminRepository {
	return &adminRepository{store: s}
}

func (s *Store) Statistics() repositories.StatisticsRepository {
	return &statisticsRepository{store: s}
}
