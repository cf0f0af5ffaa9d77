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

	"fitcoach-backend/config"
	"fitcoach-backend/controllers"
	"fitcoach-backend/routes"
	"fitcoach-backend/services"
	"fitcoach-backend/store"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	// Connect database. A failed connection is not fatal: the API comes up
	// with an unavailable store and serves 503s until the database returns.
	var st store.Store
	if err := config.ConnectDatabase(); err != nil {
		log.Printf("⚠️  Database connect failed, serving without a store: %v", err)
		st = store.Unavailable{}
	} else {
		log.Println("✅ Database connection established and migrations applied")
		st = store.NewGorm(config.DB)
	}

	// Initialize services
	clientService := services.NewClientService(st)
	measurementService := services.NewMeasurementService(st)
	sessionService := services.NewSessionService(st)
	workoutService := services.NewWorkoutService(st)
	nutritionService := services.NewNutritionService(st)
	paymentService := services.NewPaymentService(st)
	consentService := services.NewConsentService(st)

	// Initialize controllers
	systemController := controllers.NewSystemController(st, config.DatabaseName)
	clientController := controllers.NewClientController(clientService)
	measurementController := controllers.NewMeasurementController(measurementService)
	sessionController := controllers.NewSessionController(sessionService)
	workoutController := controllers.NewWorkoutController(workoutService)
	nutritionController := controllers.NewNutritionController(nutritionService)
	paymentController := controllers.NewPaymentController(paymentService)
	consentController := controllers.NewConsentController(consentService)

	// Build router
	router := routes.SetupRouter(
		systemController,
		clientController,
		measurementController,
		sessionController,
		workoutController,
		nutritionController,
		paymentController,
		consentController,
	)

	// Port from env (prefer), fallback to 8000
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
