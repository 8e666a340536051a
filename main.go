package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/zeylcoffee/qrmenu/app/cmd"
	"github.com/zeylcoffee/qrmenu/app/configs"
	"github.com/zeylcoffee/qrmenu/app/db/seeders"
	"github.com/zeylcoffee/qrmenu/app/handlers"
	adminhandlers "github.com/zeylcoffee/qrmenu/app/handlers/admin"
	"github.com/zeylcoffee/qrmenu/app/routes"
	"github.com/zeylcoffee/qrmenu/app/services"
	"github.com/zeylcoffee/qrmenu/app/utils/renderer"
	"github.com/zeylcoffee/qrmenu/app/utils/sessions"
)

func main() {

	env := configs.LoadEnv()
	if len(os.Args) > 1 {
		cmd.RunCli(env)
		return
	}

	keys, err := configs.LoadSessionKeysFromEnv(env)
	if err != nil {
		log.Fatalf("Session keys not configured: %v. Run with 'generate-keys' to create them.", err)
	}

	store, err := configs.OpenStore(env)
	if err != nil {
		log.Fatal("Store connection failed:", err)
	}
	log.Printf("✅ Store ready (driver: %s)", env.StorageDriver)

	ctx := context.Background()
	admin, err := configs.DefaultAdmin(env)
	if err != nil {
		log.Fatal("Admin bootstrap failed:", err)
	}
	if err := seeders.SeedAdmin(ctx, store, admin); err != nil {
		log.Fatal("Admin bootstrap failed:", err)
	}
	if err := seeders.SeedMenu(ctx, store); err != nil {
		log.Fatal("Seeding failed:", err)
	}

	sessionStore := sessions.NewCookieSessionStore(keys.AuthKey, keys.EncKey)
	render := renderer.New()
	catalog := services.NewCatalogService(store)
	images := services.NewImageService(env.PublicDir)
	export := services.NewExportService(store.Statistics())
	validate := validator.New()

	menuHandler := handlers.NewMenuHandler(render, store, catalog)
	adminHandler := adminhandlers.NewAdminHandler(
		render, store, sessionStore, catalog, images, export, validate)

	router := routes.NewRouter(env, keys, sessionStore, menuHandler, adminHandler)

	server := http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Server stopped:", err)
	}
}
