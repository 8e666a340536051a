// Package migrations moves a flat-file database into MongoDB collections so a
// deployment can switch storage drivers without losing its catalog.
package migrations

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zeylcoffee/qrmenu/app/models"
)

// fileDatabase mirrors the flat-file document layout.
type fileDatabase struct {
	Admin          *models.Admin          `json:"admin"`
	Categories     []models.Category      `json:"categories"`
	MenuItems      []models.MenuItem      `json:"menuItems"`
	WeeklySpecials []models.WeeklySpecial `json:"weeklySpecials"`
	Campaigns      []models.Campaign      `json:"campaigns"`
	InstagramPosts []models.InstagramPost `json:"instagramPosts"`
	Statistics     *models.Statistics     `json:"statistics"`
}

// MigrateJSONToMongo replaces the contents of the Mongo collections with the
// records in the JSON database at path. Existing collection contents are
// dropped first, so the migration is idempotent.
func MigrateJSONToMongo(ctx context.Context, db *mongo.Database, path string, defaultAdmin models.Admin) error {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("migrations: %s not found, nothing to migrate", path)
	}
	if err != nil {
		return fmt.Errorf("migrations: read %s: %w", path, err)
	}

	var data fileDatabase
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("migrations: parse %s: %w", path, err)
	}

	collections := []string{
		"categories", "menu_items", "weekly_specials",
		"campaigns", "instagram_posts", "admins", "statistics",
	}
	for _, name := range collections {
		if err := db.Collection(name).Drop(ctx); err != nil {
			return fmt.Errorf("migrations: drop %s: %w", name, err)
		}
	}

	admin := defaultAdmin
	if data.Admin != nil && data.Admin.Username != "" {
		admin = *data.Admin
	}
	if _, err := db.Collection("admins").InsertOne(ctx, admin); err != nil {
		return fmt.Errorf("migrations: insert admin: %w", err)
	}
	log.Println("✅ Admin bilgisi aktarıldı")

	if len(data.Categories) > 0 {
		docs := make([]interface{}, len(data.Categories))
		for i, c := range data.Categories {
			docs[i] = c
		}
		if _, err := db.Collection("categories").InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("migrations: insert categories: %w", err)
		}
		log.Printf("✅ %d kategori aktarıldı", len(docs))
	}

	// Records without a name are leftovers from interrupted writes; skip them.
	validItems := data.MenuItems[:0]
	for _, item := range data.MenuItems {
		if strings.TrimSpace(item.Name) == "" {
			log.Printf("⚠️  Atlanan ürün: id=%d", item.ID)
			continue
		}
		validItems = append(validItems, item)
	}
	if len(validItems) > 0 {
		docs := make([]interface{}, len(validItems))
		for i, item := range validItems {
			docs[i] = item
		}
		if _, err := db.Collection("menu_items").InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("migrations: insert menu items: %w", err)
		}
		log.Printf("✅ %d menü öğesi aktarıldı", len(docs))
	}

	if len(data.WeeklySpecials) > 0 {
		docs := make([]interface{}, len(data.WeeklySpecials))
		for i, s := range data.WeeklySpecials {
			docs[i] = s
		}
		if _, err := db.Collection("weekly_specials").InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("migrations: insert weekly specials: %w", err)
		}
		log.Printf("✅ %d haftalık özel ürün aktarıldı", len(docs))
	}

	if len(data.Campaigns) > 0 {
		docs := make([]interface{}, len(data.Campaigns))
		for i, c := range data.Campaigns {
			docs[i] = c
		}
		if _, err := db.Collection("campaigns").InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("migrations: insert campaigns: %w", err)
		}
		log.Printf("✅ %d kampanya aktarıldı", len(docs))
	}

	if len(data.InstagramPosts) > 0 {
		docs := make([]interface{}, len(data.InstagramPosts))
		for i, p := range data.InstagramPosts {
			docs[i] = p
		}
		if _, err := db.Collection("instagram_posts").InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("migrations: insert instagram posts: %w", err)
		}
		log.Printf("✅ %d Instagram gönderi aktarıldı", len(docs))
	}

	if data.Statistics != nil {
		if _, err := db.Collection("statistics").InsertOne(ctx, data.Statistics); err != nil {
			return fmt.Errorf("migrations: insert statistics: %w", err)
		}
		log.Println("✅ İstatistikler aktarıldı")
	}

	log.Println("🎉 Veri aktarımı başarıyla tamamlandı!")
	return nil
}
