package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hms-backend/config"
	"hms-backend/controllers"
	"hms-backend/routes"
	"hms-backend/services"
	"hms-backend/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	db, err := config.ConnectDatabase()
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	log.Println("database connection established, migrations applied")

	if utils.EnvOrDefault("SEED_DEMO_DATA", "false") == "true" {
		if err := config.SeedDatabase(db); err != nil {
			log.Fatalf("demo seed failed: %v", err)
		}
	}

	// Initialize services
	catalogService := services.NewCatalogService(db)
	customerService := services.NewCustomerService(db)
	bookingService := services.NewBookingService(db)

	// Initialize controllers
	catalogController := controllers.NewCatalogController(catalogService)
	customerController := controllers.NewCustomerController(customerService)
	bookingController := controllers.NewBookingController(bookingService)

	router := routes.SetupRouter(catalogController, customerController, bookingController)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,

		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server stopped gracefully")
}
