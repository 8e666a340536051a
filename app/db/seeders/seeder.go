// Package seeders loads the initial menu into an empty store so a fresh
// deployment comes up with the full card instead of a blank page.
package seeders

import (
	"context"
	"log"

	"github.com/zeylcoffee/qrmenu/app/models"
	"github.com/zeylcoffee/qrmenu/app/repositories"
)

type seedItem struct {
	name  string
	price models.Price
}

func tl(v float64) models.Price { return models.NewPrice(v) }

var none = models.NullPrice()

type seedCategory struct {
	name  string
	items []seedItem
}

var menu = []seedCategory{
	{"Sıcak İçecekler", []seedItem{
		{"Çay", tl(5)}, {"Fincan Çay", tl(7)}, {"Türk Kahvesi", tl(65)},
		{"Double Kahve", tl(130)}, {"Menengiç Kahvesi", tl(100)},
		{"Dibek Kahvesi", tl(100)}, {"Damla Sakızlı", tl(65)},
		{"Sütlü Türk Kahvesi", tl(116)}, {"Latte", tl(100)},
		{"Americano", tl(132)}, {"Filtre Kahve", tl(125)},
		{"Cappucino", tl(95)}, {"Oralet", none},
	}},
	{"Soğuk İçecekler", []seedItem{
		{"Enerji İçeceği", tl(86)}, {"Coca Cola", tl(40)},
		{"Coca Cola Zero", none}, {"Ice Tea", none}, {"Meyve Suyu", none},
		{"Sprite", none}, {"Fanta", tl(95)}, {"Soda", tl(45)},
		{"Meyveli Soda", tl(70)}, {"Ayran", tl(35)}, {"Churchill", tl(13)},
		{"Su", tl(15)},
	}},
	{"Yaz Serinliği", []seedItem{
		{"Çilekli Milkshake", tl(15)}, {"Çikolatalı Milkshake", none},
		{"Orman Meyveleri Smoothie", none}, {"Çilek Smoothie", none},
		{"Frozen Çeşitleri", none}, {"Orman Meyveleri - Çilek", none},
		{"Ice Americano", none}, {"Ice Caramel Latte", none},
		{"Ice Coffe Latte", none}, {"Frappe Caramel - Vanilya", none},
		{"Majito", none}, {"Limonata", tl(55)},
		{"Dondurma Balbadem - Caramel", none}, {"Vanilya", none},
	}},
	{"Çay Yanı Lezzetler", []seedItem{
		{"Kurabiye Tabağı", tl(150)}, {"Dilim Kek", none}, {"Günün Tatlısı", none},
	}},
	{"Kış Vazgeçilmezi", []seedItem{
		{"Bici Çayları", none}, {"Kış Çayı", none}, {"Ihlamur", none},
		{"Adaçayı", none}, {"Salep", none}, {"Sıcak Çikolata", none},
		{"Taze Sıkılmış Portakal Suyu", none},
	}},
	{"Tatlı Çeşitleri", []seedItem{
		{"Sütlü", tl(150)}, {"Limonlu Cheescake", none},
		{"Frambuazlı Cheescake", none}, {"Waffle Mevsim Meyveleri ile", none},
		{"Künner Tatlısı", none}, {"Günün Tatlısı", none},
	}},
	{"Kahvaltılar", []seedItem{
		{"Hızlı Kahvaltı", tl(15)}, {"Serpme Kahvaltı", tl(96.5)},
	}},
	{"Special Lezzetler", []seedItem{
		{"Mac 8 Chese", tl(42)}, {"İsveç Köfte", tl(47)},
		{"Pesto Soslu Penne", tl(140)}, {"Körü Soslu Tavuk", tl(97)},
		{"Kremalı Mantar Soslu Tavuklu Penne", tl(215)},
		{"Paso Soslu Penne", none},
	}},
	{"Omletler", []seedItem{
		{"Sade Yumurta", tl(45)}, {"Peynirli Yumurta", tl(150)},
		{"Patatesli Yumurta", tl(150)}, {"Sucuklu Yumurta", tl(190)},
		{"Menemen", tl(145)}, {"Kaşarlı Menemen", tl(190)},
		{"Kaşarlı Omlet", tl(145)},
	}},
	{"Tostlar", []seedItem{
		{"Bazlama Kaşarlı", tl(120)}, {"Bazlama Sucuklu", tl(180)},
		{"Bazlama Karışık", tl(200)}, {"Sebzeli Beyaz, Peynirli Tost", tl(150)},
		{"(Beyaz Peynir, Biber, Domates)", none},
	}},
	{"Aperatifler", []seedItem{
		{"Patates Kızartması", tl(100)}, {"Karışık Sıcak Sepet", tl(250)},
		{"Paçanga Böreği", tl(225)}, {"Sucuk Tava", tl(45)},
		{"Soslu Sosis Tava", tl(150)},
	}},
	{"Gözlemeler", []seedItem{
		{"Peynirli Gözleme", tl(155)}, {"Kıymalı Gözleme", tl(190)},
		{"Ispanaklı Gözleme", tl(145)}, {"Patatesli Gözleme", tl(145)},
		{"Kaşarlı Gözleme", none},
	}},
	{"Doyurucu Lezzetler", []seedItem{
		{"Islak Hamburger", tl(55)}, {"Hamburger", tl(95)},
		{"Double Hamburger", tl(195)}, {"Pizza", tl(200)}, {"Maru", tl(145)},
		{"Ekmek Arası Sucuk", none}, {"Ekmek Arası Köfte", none},
		{"Yoğurtlu Salçalı Makarna", none}, {"Günün Çorbası", tl(75)},
		{"Izgara Köfte Tabağı", none},
	}},
}

// SeedAdmin stores the given credentials when no admin record exists yet.
func SeedAdmin(ctx context.Context, store repositories.Store, admin models.Admin) error {
	return store.Admin().Ensure(ctx, admin)
}

// SeedMenu inserts the default categories and items. It is a no-op when the
// store already has categories.
func SeedMenu(ctx context.Context, store repositories.Store) error {
	existing, err := store.Categories().GetAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	itemID := 1
	for i, sc := range menu {
		category := &models.Category{
			ID:           i + 1,
			Name:         sc.name,
			DisplayOrder: i,
		}
		if err := store.Categories().Create(ctx, category); err != nil {
			return err
		}
		for order, si := range sc.items {
			item := &models.MenuItem{
				ID:           itemID,
				CategoryID:   category.ID,
				Name:         si.name,
				Price:        si.price,
				IsAvailable:  true,
				DisplayOrder: order,
			}
			if err := store.MenuItems().Create(ctx, item); err != nil {
				return err
			}
			itemID++
		}
	}

	log.Println("✅ Menü başarıyla yüklendi!")
	return nil
}
