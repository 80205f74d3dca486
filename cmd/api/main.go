package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/McFlayr/meal-planner/config"
	"github.com/McFlayr/meal-planner/internal/api"
	"github.com/McFlayr/meal-planner/internal/router"
	"github.com/McFlayr/meal-planner/internal/server"
	"github.com/McFlayr/meal-planner/internal/service"
	"github.com/McFlayr/meal-planner/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	var documentStore store.DocumentStore
	switch cfg.StorageDriver {
	case config.DriverSQLite:
		documentStore, err = store.NewSQLiteStore(cfg.SQLitePath)
	default:
		documentStore, err = store.NewFileStore(cfg.DataFile)
	}
	if err != nil {
		log.Fatalf("failed to open document store: %v", err)
	}

	session, err := store.Open(documentStore)
	if err != nil {
		log.Fatalf("failed to load document: %v", err)
	}

	s3Config, err := config.NewS3Config(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to set up S3 backups: %v", err)
	}

	ingredients := service.NewIngredientService(session)
	recipes := service.NewRecipeService(session)
	plan := service.NewPlanService(session)
	shopping := service.NewShoppingService(session)
	backup := service.NewBackupService(session, s3Config)

	engine := router.SetupRouter(
		api.NewIngredientHandler(ingredients),
		api.NewRecipeHandler(recipes, ingredients),
		api.NewPlanHandler(plan, recipes),
		api.NewShoppingHandler(shopping),
		api.NewBackupHandler(backup),
		cfg.CORSOrigins,
	)

	srv := server.New(cfg.Addr, engine)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("received signal: %v", sig)
	}

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown error: %v", err)
	}
	log.Println("server stopped")
}
