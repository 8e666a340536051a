// Package handlers serves the public side of the site: the menu page and the
// click-tracking endpoint the page calls when a visitor opens a category.
package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/unrolled/render"

	"github.com/zeylcoffee/qrmenu/app/repositories"
	"github.com/zeylcoffee/qrmenu/app/services"
	"github.com/zeylcoffee/qrmenu/app/utils/form"
)

type MenuHandler struct {
	render  *render.Render
	store   repositories.Store
	catalog *services.CatalogService
}

func NewMenuHandler(r *render.Render, store repositories.Store, catalog *services.CatalogService) *MenuHandler {
	return &MenuHandler{render: r, store: store, catalog: catalog}
}

func (h *MenuHandler) Index(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.catalog.BuildPublicMenu(r.Context())
	if err != nil {
		log.Printf("Index: build menu: %v", err)
		http.Error(w, "Menü yüklenemedi", http.StatusInternalServerError)
		return
	}

	_ = h.render.HTML(w, http.StatusOK, "menu", map[string]interface{}{
		"title":          "Menü",
		"menu":           catalog.Menu,
		"weeklySpecials": catalog.WeeklySpecials,
		"campaigns":      catalog.Campaigns,
		"instagramPosts": catalog.InstagramPosts,
	})
}

// TrackClick records one tap on a category from the public page. Unknown
// category ids are counted with an empty name rather than rejected.
func (h *MenuHandler) TrackClick(w http.ResponseWriter, r *http.Request) {
	body, err := form.Parse(r)
	if err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"success": false})
		return
	}
	categoryID, ok := body.Int("categoryId")
	if !ok {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"success": false})
		return
	}

	categoryName := body.Get("categoryName")
	if categoryName == "" {
		category, err := h.store.Categories().GetByID(r.Context(), categoryID)
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			log.Printf("TrackClick: lookup category %d: %v", categoryID, err)
			_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{"success": false})
			return
		}
		if category != nil {
			categoryName = category.Name
		}
	}

	if err := h.store.Statistics().TrackClick(r.Context(), categoryID, categoryName, time.Now()); err != nil {
		log.Printf("TrackClick: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{"success": false})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
