package routes

import (
	"net/http"
	"path/filepath"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"

	"github.com/zeylcoffee/qrmenu/app/configs"
	"github.com/zeylcoffee/qrmenu/app/handlers"
	adminhandlers "github.com/zeylcoffee/qrmenu/app/handlers/admin"
	"github.com/zeylcoffee/qrmenu/app/middlewares"
	"github.com/zeylcoffee/qrmenu/app/utils/sessions"
)

func NewRouter(
	env configs.ENV,
	keys *configs.SessionKeys,
	sessionStore sessions.SessionStore,
	menuHandler *handlers.MenuHandler,
	adminHandler *adminhandlers.AdminHandler,
) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/", menuHandler.Index).Methods("GET")
	router.HandleFunc("/api/track-click", menuHandler.TrackClick).Methods("POST")

	staticDir := http.Dir(filepath.Clean(env.PublicDir))
	router.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(staticDir)))

	adminRouter := router.PathPrefix("/admin").Subrouter()
	adminRouter.Use(csrf.Protect(
		keys.AuthKey,
		csrf.Secure(env.APP_ENV == "production"),
		csrf.Path("/"),
	))

	adminRouter.HandleFunc("/login", adminHandler.LoginGetHandler).Methods("GET")
	adminRouter.HandleFunc("/login", adminHandler.LoginPostHandler).Methods("POST")
	adminRouter.HandleFunc("/logout", adminHandler.LogoutHandler).Methods("GET")

	protected := adminRouter.NewRoute().Subrouter()
	protected.Use(middlewares.AdminAuthMiddleware(sessionStore))

	protected.HandleFunc("/dashboard", adminHandler.DashboardHandler).Methods("GET")
	protected.HandleFunc("/change-password", adminHandler.ChangePasswordPost).Methods("POST")

	protected.HandleFunc("/add-category", adminHandler.AddCategoryPost).Methods("POST")
	protected.HandleFunc("/delete-category", adminHandler.DeleteCategoryPost).Methods("POST")
	protected.HandleFunc("/reorder-categories", adminHandler.ReorderCategoriesPost).Methods("POST")

	protected.HandleFunc("/add-item", adminHandler.AddItemPost).Methods("POST")
	protected.HandleFunc("/update-item", adminHandler.UpdateItemPost).Methods("POST")
	protected.HandleFunc("/delete-item", adminHandler.DeleteItemPost).Methods("POST")
	protected.HandleFunc("/upload-image", adminHandler.UploadItemImagePost).Methods("POST")
	protected.HandleFunc("/delete-image", adminHandler.DeleteItemImagePost).Methods("POST")

	protected.HandleFunc("/add-weekly-special", adminHandler.AddWeeklySpecialPost).Methods("POST")
	protected.HandleFunc("/update-weekly-special", adminHandler.UpdateWeeklySpecialPost).Methods("POST")
	protected.HandleFunc("/delete-weekly-special", adminHandler.DeleteWeeklySpecialPost).Methods("POST")
	protected.HandleFunc("/upload-weekly-image", adminHandler.UploadWeeklyImagePost).Methods("POST")
	protected.HandleFunc("/delete-weekly-image", adminHandler.DeleteWeeklyImagePost).Methods("POST")

	protected.HandleFunc("/add-campaign", adminHandler.AddCampaignPost).Methods("POST")
	protected.HandleFunc("/update-campaign", adminHandler.UpdateCampaignPost).Methods("POST")
	protected.HandleFunc("/delete-campaign", adminHandler.DeleteCampaignPost).Methods("POST")
	protected.HandleFunc("/upload-campaign-image", adminHandler.UploadCampaignImagePost).Methods("POST")
	protected.HandleFunc("/delete-campaign-image", adminHandler.DeleteCampaignImagePost).Methods("POST")

	protected.HandleFunc("/add-instagram-post", adminHandler.AddInstagramPost).Methods("POST")
	protected.HandleFunc("/update-instagram-post", adminHandler.UpdateInstagramPost).Methods("POST")
	protected.HandleFunc("/delete-instagram-post", adminHandler.DeleteInstagramPost).Methods("POST")
	protected.HandleFunc("/upload-instagram-image", adminHandler.UploadInstagramImagePost).Methods("POST")
	protected.HandleFunc("/delete-instagram-image", adminHandler.DeleteInstagramImagePost).Methods("POST")

	protected.HandleFunc("/statistics", adminHandler.GetStatistics).Methods("GET")
	protected.HandleFunc("/reset-statistics", adminHandler.ResetStatisticsPost).Methods("POST")
	protected.HandleFunc("/export-statistics", adminHandler.ExportStatistics).Methods("GET")

	return router
}
