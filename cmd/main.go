package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/microsoft/go-mssqldb"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	carTypesHandler "github.com/m04kA/SMC-CarwashService/internal/api/handlers/car_types"
	checkAppointmentsHandler "github.com/m04kA/SMC-CarwashService/internal/api/handlers/check_appointments"
	checkCarPhoneHandler "github.com/m04kA/SMC-CarwashService/internal/api/handlers/check_car_phone"
	createOrderHandler "github.com/m04kA/SMC-CarwashService/internal/api/handlers/create_order"
	customerListHandler "github.com/m04kA/SMC-CarwashService/internal/api/handlers/customer_list"
	customerNamesHandler "github.com/m04kA/SMC-CarwashService/internal/api/handlers/customer_names"
	guestFlowHandler "github.com/m04kA/SMC-CarwashService/internal/api/handlers/guest_flow"
	phonesByCarHandler "github.com/m04kA/SMC-CarwashService/internal/api/handlers/phones_by_car"
	registerClientHandler "github.com/m04kA/SMC-CarwashService/internal/api/handlers/register_client"
	snifListHandler "github.com/m04kA/SMC-CarwashService/internal/api/handlers/snif_list"
	worksByCarTypeHandler "github.com/m04kA/SMC-CarwashService/internal/api/handlers/works_by_car_type"
	"github.com/m04kA/SMC-CarwashService/internal/api/middleware"
	"github.com/m04kA/SMC-CarwashService/internal/config"
	"github.com/m04kA/SMC-CarwashService/internal/domain"
	"github.com/m04kA/SMC-CarwashService/internal/flow"
	"github.com/m04kA/SMC-CarwashService/internal/infra/sessions"
	appointmentsRepo "github.com/m04kA/SMC-CarwashService/internal/infra/storage/appointments"
	catalogRepo "github.com/m04kA/SMC-CarwashService/internal/infra/storage/catalog"
	customersRepo "github.com/m04kA/SMC-CarwashService/internal/infra/storage/customers"
	catalogService "github.com/m04kA/SMC-CarwashService/internal/service/catalog"
	customersService "github.com/m04kA/SMC-CarwashService/internal/service/customers"
	createOrderUC "github.com/m04kA/SMC-CarwashService/internal/usecase/create_order"
	identifyCustomerUC "github.com/m04kA/SMC-CarwashService/internal/usecase/identify_customer"
	registerClientUC "github.com/m04kA/SMC-CarwashService/internal/usecase/register_client"
	"github.com/m04kA/SMC-CarwashService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CarwashService/pkg/logger"
	"github.com/m04kA/SMC-CarwashService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-CarwashService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("sqlserver", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Репозитории работают через DBExecutor: с метриками или напрямую
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.Wrap(db, metricsCollector)
		log.Info("Database metrics collection enabled")
	}

	customersRepository := customersRepo.NewRepository(executor)
	catalogRepository := catalogRepo.NewRepository(executor)
	appointmentsRepository := appointmentsRepo.NewRepository(executor)

	// Окно записи из конфигурации
	window := domain.Window{
		StartHour:   cfg.Schedule.DayStartHour,
		EndHour:     cfg.Schedule.DayEndHour,
		StepMinutes: cfg.Schedule.StepMinutes,
	}
	log.Info("Booking window [%02d:00, %02d:00) step %d min",
		window.StartHour, window.EndHour, window.StepMinutes)

	// Инициализируем сервисы
	customersSvc := customersService.NewService(customersRepository, log)
	catalogSvc := catalogService.NewService(catalogRepository, log)

	// Инициализируем use cases
	identifyUseCase := identifyCustomerUC.NewUseCase(customersRepository, log)
	registerUseCase := registerClientUC.NewUseCase(appointmentsRepository, customersRepository, log)

	var orderMetrics createOrderUC.OrderMetrics
	if cfg.Metrics.Enabled {
		orderMetrics = metricsCollector
	}
	orderUseCase := createOrderUC.NewUseCase(appointmentsRepository, window, orderMetrics, log)

	// Инициализируем движок флоу и хранилище сессий
	sessionStore := sessions.NewStore(time.Duration(cfg.Session.TTLMinutes)*time.Minute, log)
	defer sessionStore.Close()

	flowEngine := flow.NewFlow(
		identifyUseCase,
		registerUseCase,
		orderUseCase,
		catalogSvc,
		sessions.Preference{},
		window,
		log,
	)

	// Инициализируем handlers
	checkCarPhone := checkCarPhoneHandler.NewHandler(customersSvc, log)
	customerList := customerListHandler.NewHandler(customersSvc, log)
	phonesByCar := phonesByCarHandler.NewHandler(customersSvc, log)
	customerNames := customerNamesHandler.NewHandler(customersSvc, log)
	checkAppointments := checkAppointmentsHandler.NewHandler(customersSvc, log)
	carTypes := carTypesHandler.NewHandler(catalogSvc, log)
	snifList := snifListHandler.NewHandler(catalogSvc, log)
	worksByCarType := worksByCarTypeHandler.NewHandler(catalogSvc, log)
	registerClient := registerClientHandler.NewHandler(registerUseCase, log)
	createOrder := createOrderHandler.NewHandler(orderUseCase, log)
	guestFlow := guestFlowHandler.NewHandler(flowEngine, sessionStore, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Клиенты и машины ---
	api.HandleFunc("/car/check-car-phone", checkCarPhone.Handle).Methods(http.MethodGet)
	api.HandleFunc("/car/customer-list", customerList.Handle).Methods(http.MethodGet)
	api.HandleFunc("/car/phones-by-car", phonesByCar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/car/customer-names", customerNames.Handle).Methods(http.MethodGet)
	api.HandleFunc("/car/check-appointments", checkAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/car/register-new-client", registerClient.Handle).Methods(http.MethodPost)

	// --- Справочники ---
	api.HandleFunc("/car/car-types", carTypes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/car/snif-list", snifList.Handle).Methods(http.MethodGet)
	api.HandleFunc("/works/by-car-type", worksByCarType.Handle).Methods(http.MethodGet)

	// --- Заказы ---
	api.HandleFunc("/orders", createOrder.Handle).Methods(http.MethodPost)

	// --- Гостевой флоу записи ---
	api.HandleFunc("/flow", guestFlow.CreateSession).Methods(http.MethodPost)
	api.HandleFunc("/flow/{sessionId}", guestFlow.GetState).Methods(http.MethodGet)
	api.HandleFunc("/flow/{sessionId}/identify", guestFlow.Identify).Methods(http.MethodPost)
	api.HandleFunc("/flow/{sessionId}/choose", guestFlow.Choose).Methods(http.MethodPost)
	api.HandleFunc("/flow/{sessionId}/register", guestFlow.Register).Methods(http.MethodPost)
	api.HandleFunc("/flow/{sessionId}/services", guestFlow.Services).Methods(http.MethodPost)
	api.HandleFunc("/flow/{sessionId}/schedule", guestFlow.Schedule).Methods(http.MethodPost)
	api.HandleFunc("/flow/{sessionId}/advance", guestFlow.Advance).Methods(http.MethodPost)
	api.HandleFunc("/flow/{sessionId}/back", guestFlow.Back).Methods(http.MethodPost)
	api.HandleFunc("/flow/{sessionId}/confirm", guestFlow.Confirm).Methods(http.MethodPost)
	api.HandleFunc("/flow/{sessionId}/restart", guestFlow.Restart).Methods(http.MethodPost)
	api.HandleFunc("/flow/{sessionId}/forget", guestFlow.Forget).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
