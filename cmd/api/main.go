package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"smm-panel/internal/config"
	"smm-panel/internal/controller"
	"smm-panel/internal/repository"
	"smm-panel/internal/service"
)

func main() {
	cfg := config.Load()

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting SMM panel service...")

	if cfg.Mongo.URL == "" {
		log.Println("WARNING: MONGO_URL is empty, running without persistence")
	}
	if cfg.Auth.TokenScheme == config.TokenSchemeEmail {
		log.Println("WARNING: admin tokens are plain emails (AUTH_TOKEN_SCHEME=email); set AUTH_TOKEN_SCHEME=hmac to sign them")
	}

	store, err := repository.NewStore(context.Background(), cfg.Mongo.URL, cfg.Mongo.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close(context.Background())

	adminRepo := repository.NewAdminRepository(store)
	serviceRepo := repository.NewServiceRepository(store)
	orderRepo := repository.NewOrderRepository(store)
	paymentRepo := repository.NewPaymentRepository(store)
	settingsRepo := repository.NewSettingsRepository(store)

	authService := service.NewAuthService(adminRepo, cfg.Auth)
	catalogService := service.NewCatalogService(serviceRepo)
	orderService := service.NewOrderService(orderRepo, serviceRepo)
	paymentService := service.NewPaymentService(paymentRepo)
	settingsService := service.NewSettingsService(settingsRepo)

	healthController := controller.NewHealthController(store)
	authController := controller.NewAuthController(authService)
	catalogController := controller.NewCatalogController(catalogService)
	orderController := controller.NewOrderController(orderService)
	paymentController := controller.NewPaymentController(paymentService)
	settingsController := controller.NewSettingsController(settingsService)

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}))

	adminGate := controller.AdminAuth(authService)

	healthController.RegisterRoutes(e)
	authController.RegisterRoutes(e)
	catalogController.RegisterRoutes(e, adminGate)
	orderController.RegisterRoutes(e, adminGate)
	paymentController.RegisterRoutes(e, adminGate)
	settingsController.RegisterRoutes(e, adminGate)

	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil && err != http.ErrServerClosed {
			log.Printf("Server shutdown: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
