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

	"github.com/hackbits-tech/hackbits-backend/api/routes"
	"github.com/hackbits-tech/hackbits-backend/internal/config"
	"github.com/hackbits-tech/hackbits-backend/internal/handlers"
	"github.com/hackbits-tech/hackbits-backend/internal/repositories"
	mongorepo "github.com/hackbits-tech/hackbits-backend/internal/repositories/mongodb"
	"github.com/hackbits-tech/hackbits-backend/internal/services"
	"github.com/hackbits-tech/hackbits-backend/pkg/mailgateway"
	"github.com/hackbits-tech/hackbits-backend/pkg/mongodb"
	"github.com/hackbits-tech/hackbits-backend/pkg/payment"
)

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.JWT.Secret == "" {
		log.Fatal("[FATAL] JWT_SECRET is not configured")
	}

	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("[WARN] error disconnecting from MongoDB: %v", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	// Repositories
	var teamRepo repositories.TeamRepository = mongorepo.NewTeamRepository(db)
	var userRepo repositories.UserRepository = mongorepo.NewUserRepository(db)
	var adminRepo repositories.AdminUserRepository = mongorepo.NewAdminUserRepository(db)
	var orderRepo repositories.PaymentOrderRepository = mongorepo.NewPaymentOrderRepository(db)
	var notificationRepo repositories.NotificationRepository = mongorepo.NewNotificationRepository(db)
	var settingsRepo repositories.SettingsRepository = mongorepo.NewSettingsRepository(db)

	// External gateways
	mailGateway := mailgateway.NewGateway(cfg)
	paymentProvider := payment.NewProvider(cfg)

	// Services
	notificationService := services.NewNotificationService(notificationRepo, mailGateway)
	authService := services.NewAuthService(userRepo, adminRepo, cfg)
	teamService := services.NewTeamService(teamRepo, settingsRepo, notificationService, cfg)
	checkInService := services.NewCheckInService(teamRepo, settingsRepo)
	paymentService := services.NewPaymentService(orderRepo, paymentProvider, cfg)
	settingsService := services.NewSettingsService(settingsRepo)

	// Handlers
	handlerDeps := &routes.HandlerDependencies{
		AuthHandler:    handlers.NewAuthHandler(authService),
		TeamHandler:    handlers.NewTeamHandler(teamService, authService),
		AdminHandler:   handlers.NewAdminHandler(teamService, settingsService),
		CheckInHandler: handlers.NewCheckInHandler(checkInService),
		PaymentHandler: handlers.NewPaymentHandler(paymentService, teamService),
	}

	router := routes.SetupRouter(cfg, handlerDeps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Printf("[INFO] server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("[INFO] shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("[INFO] server exited")
}
