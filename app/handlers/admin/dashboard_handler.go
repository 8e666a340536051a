package admin

import (
	"log"
	"net/http"

	"github.com/gorilla/csrf"
)

func (h *AdminHandler) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.catalog.BuildAdminMenu(r.Context())
	if err != nil {
		log.Printf("DashboardHandler: error assembling catalog: %v", err)
		http.Error(w, "Sunucu hatası", http.StatusInternalServerError)
		return
	}

	_ = h.render.HTML(w, http.StatusOK, "admin/dashboard", map[string]interface{}{
		"title":     "Yönetim Paneli",
		"catalog":   catalog,
		"csrfField": csrf.TemplateField(r),
		"csrfToken": csrf.Token(r),
	})
}
