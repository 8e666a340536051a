// Package admin implements the password-protected panel: catalog mutations,
// image management, statistics and credentials. Every mutation answers with
// a JSON acknowledgement; page handlers render through the shared layout.
package admin

import (
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"

	"github.com/zeylcoffee/qrmenu/app/repositories"
	"github.com/zeylcoffee/qrmenu/app/services"
	"github.com/zeylcoffee/qrmenu/app/utils/sessions"
)

type AdminHandler struct {
	render       *render.Render
	store        repositories.Store
	sessionStore sessions.SessionStore
	catalog      *services.CatalogService
	images       *services.ImageService
	export       *services.ExportService
	validator    *validator.Validate
}

func NewAdminHandler(
	r *render.Render,
	store repositories.Store,
	sessionStore sessions.SessionStore,
	catalog *services.CatalogService,
	images *services.ImageService,
	export *services.ExportService,
	validator *validator.Validate,
) *AdminHandler {
	return &AdminHandler{
		render:       r,
		store:        store,
		sessionStore: sessionStore,
		catalog:      catalog,
		images:       images,
		export:       export,
		validator:    validator,
	}
}

// Ack is the uniform mutation response body.
type Ack struct {
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
	ImagePath string `json:"imagePath,omitempty"`
}

func (h *AdminHandler) ok(w http.ResponseWriter) {
	_ = h.render.JSON(w, http.StatusOK, Ack{Success: true})
}

func (h *AdminHandler) okWithImage(w http.ResponseWriter, imagePath string) {
	_ = h.render.JSON(w, http.StatusOK, Ack{Success: true, ImagePath: imagePath})
}

func (h *AdminHandler) fail(w http.ResponseWriter, status int, message string) {
	_ = h.render.JSON(w, status, Ack{Success: false, Error: message})
}

// serverError logs the underlying fault and answers with a generic message.
func (h *AdminHandler) serverError(w http.ResponseWriter, op string, err error) {
	log.Printf("%s: %v", op, err)
	h.fail(w, http.StatusInternalServerError, "Sunucu hatası, lütfen tekrar deneyin.")
}

func (h *AdminHandler) notFound(w http.ResponseWriter, message string) {
	h.fail(w, http.StatusNotFound, message)
}
