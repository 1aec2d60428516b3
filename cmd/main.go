package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/MadanRavuri/pg-backend/internal/app"
	"github.com/MadanRavuri/pg-backend/internal/auth"
	"github.com/MadanRavuri/pg-backend/internal/config"
	"github.com/MadanRavuri/pg-backend/internal/constants"
	"github.com/MadanRavuri/pg-backend/internal/controllers"
	"github.com/MadanRavuri/pg-backend/internal/middleware"
	"github.com/MadanRavuri/pg-backend/internal/repositories"
	"github.com/MadanRavuri/pg-backend/internal/routes"
	"github.com/MadanRavuri/pg-backend/internal/services"
	"github.com/MadanRavuri/pg-backend/internal/utils"
)

const shutdownTimeout = 15 * time.Second

func main() {
	utils.InitLogger(constants.AppName)

	if err := godotenv.Load(); err != nil {
		utils.Logger.Info("No .env file found, reading config from environment")
	}

	cfg, err := config.Load()
	if err != nil {
		utils.Logger.Fatalf("Invalid configuration: %v", err)
	}

	ctx := context.Background()
	application, err := app.New(ctx, cfg.DatabaseURL)
	if err != nil {
		utils.Logger.Fatalf("Startup failed: %v", err)
	}
	defer application.Close()

	userRepo := repositories.NewUserRepository(application.Pool)
	roomRepo := repositories.NewRoomRepository(application.Pool)
	tenantRepo := repositories.NewTenantRepository(application.Pool)
	paymentRepo := repositories.NewPaymentRepository(application.Pool)
	expenseRepo := repositories.NewExpenseRepository(application.Pool)
	contactRepo := repositories.NewContactRepository(application.Pool)
	settingsRepo := repositories.NewSettingsRepository(application.Pool)

	paymentService := services.NewPaymentService(paymentRepo, tenantRepo, roomRepo)
	settingsService := services.NewSettingsService(settingsRepo)
	seedService := services.NewSeedService(userRepo, roomRepo, tenantRepo, paymentRepo, expenseRepo)

	if _, err := settingsService.GetOrCreate(ctx); err != nil {
		utils.Logger.Fatalf("Settings bootstrap failed: %v", err)
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)

	health := controllers.NewHealthController()
	rooms := controllers.NewRoomsController(roomRepo)
	tenants := controllers.NewTenantsController(tenantRepo)
	payments := controllers.NewPaymentsController(paymentService)
	expenses := controllers.NewExpensesController(expenseRepo)
	contacts := controllers.NewContactsController(contactRepo)
	settings := controllers.NewSettingsController(settingsService)
	admin := controllers.NewAdminController(seedService)
	authCtrl := controllers.NewAuthController(userRepo, tokens)

	router := mux.NewRouter()
	router.Use(middleware.Logging)

	router.HandleFunc(routes.Health, health.HealthCheckHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.AuthLogin, authCtrl.LoginHandler).Methods(http.MethodPost)

	router.HandleFunc(routes.Rooms, rooms.ListHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Rooms, rooms.CreateHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.RoomID, rooms.UpdateHandler).Methods(http.MethodPut)
	router.HandleFunc(routes.RoomID, rooms.DeleteHandler).Methods(http.MethodDelete)

	router.HandleFunc(routes.Tenants, tenants.ListHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Tenants, tenants.CreateHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.TenantID, tenants.UpdateHandler).Methods(http.MethodPut)
	router.HandleFunc(routes.TenantID, tenants.DeleteHandler).Methods(http.MethodDelete)

	router.HandleFunc(routes.RentPaymentStats, payments.StatsHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.RentPaymentsGenerate, payments.GenerateHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.RentPayments, payments.ListHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.RentPayments, payments.CreateHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.RentPaymentID, payments.UpdateHandler).Methods(http.MethodPut)
	router.HandleFunc(routes.RentPaymentID, payments.DeleteHandler).Methods(http.MethodDelete)

	router.HandleFunc(routes.Expenses, expenses.ListHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Expenses, expenses.CreateHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.ExpenseID, expenses.UpdateHandler).Methods(http.MethodPut)
	router.HandleFunc(routes.ExpenseID, expenses.DeleteHandler).Methods(http.MethodDelete)

	router.HandleFunc(routes.Contacts, contacts.ListHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Contacts, contacts.CreateHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.ContactMarkRead, contacts.MarkReadHandler).Methods(http.MethodPut)

	router.HandleFunc(routes.Settings, settings.GetHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Settings, settings.UpdateHandler).Methods(http.MethodPut)

	initDatabase := http.Handler(http.HandlerFunc(admin.InitDatabaseHandler))
	if cfg.RequireAuth {
		initDatabase = middleware.Auth(tokens)(initDatabase)
	}
	router.Handle(routes.InitDatabase, initDatabase).Methods(http.MethodPost)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: corsHandler.Handler(router),
	}

	go func() {
		utils.Logger.Infof("Server running on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Logger.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.Logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		utils.Logger.Errorf("Forced shutdown: %v", err)
	}
	utils.Logger.Info("Server stopped")
}
