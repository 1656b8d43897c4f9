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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/m04kA/PGS-BookingService/internal/api/handlers/create_booking"
	createEmployeeHandler "github.com/m04kA/PGS-BookingService/internal/api/handlers/create_employee"
	createServiceHandler "github.com/m04kA/PGS-BookingService/internal/api/handlers/create_service"
	createSlotHandler "github.com/m04kA/PGS-BookingService/internal/api/handlers/create_slot"
	getBookingHandler "github.com/m04kA/PGS-BookingService/internal/api/handlers/get_booking"
	listBookingsHandler "github.com/m04kA/PGS-BookingService/internal/api/handlers/list_bookings"
	listEmployeesHandler "github.com/m04kA/PGS-BookingService/internal/api/handlers/list_employees"
	listServicesHandler "github.com/m04kA/PGS-BookingService/internal/api/handlers/list_services"
	listSlotsHandler "github.com/m04kA/PGS-BookingService/internal/api/handlers/list_slots"
	listUsersHandler "github.com/m04kA/PGS-BookingService/internal/api/handlers/list_users"
	loginUserHandler "github.com/m04kA/PGS-BookingService/internal/api/handlers/login_user"
	registerUserHandler "github.com/m04kA/PGS-BookingService/internal/api/handlers/register_user"
	"github.com/m04kA/PGS-BookingService/internal/api/middleware"
	"github.com/m04kA/PGS-BookingService/internal/config"
	bookingRepo "github.com/m04kA/PGS-BookingService/internal/infra/storage/booking"
	employeeRepo "github.com/m04kA/PGS-BookingService/internal/infra/storage/employee"
	serviceRepo "github.com/m04kA/PGS-BookingService/internal/infra/storage/service"
	slotRepo "github.com/m04kA/PGS-BookingService/internal/infra/storage/slot"
	userRepo "github.com/m04kA/PGS-BookingService/internal/infra/storage/user"
	bookingsService "github.com/m04kA/PGS-BookingService/internal/service/bookings"
	catalogService "github.com/m04kA/PGS-BookingService/internal/service/catalog"
	slotsService "github.com/m04kA/PGS-BookingService/internal/service/slots"
	usersService "github.com/m04kA/PGS-BookingService/internal/service/users"
	createBookingUC "github.com/m04kA/PGS-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/PGS-BookingService/migrations"
	"github.com/m04kA/PGS-BookingService/pkg/auth"
	"github.com/m04kA/PGS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/PGS-BookingService/pkg/logger"
	"github.com/m04kA/PGS-BookingService/pkg/metrics"
	"github.com/m04kA/PGS-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/PGS-BookingService/pkg/txmanager"
)

func main() {
	// Переменные окружения из .env (если файл есть)
	_ = godotenv.Load()

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

	log.Info("Starting PGS-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
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

	// Применяем миграции (если включено)
	if cfg.Database.Migrate {
		goose.SetBaseFS(migrations.FS)
		if err := goose.SetDialect("postgres"); err != nil {
			log.Fatal("Failed to set goose dialect: %v", err)
		}
		if err := goose.Up(db, "."); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Database migrations applied")
	}

	// Менеджер токенов доступа
	tokenManager := auth.NewManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)

	// Инициализируем репозитории (с метриками или без)
	var (
		slotRepository     *slotRepo.Repository
		bookingRepository  *bookingRepo.Repository
		userRepository     *userRepo.Repository
		employeeRepository *employeeRepo.Repository
		serviceRepository  *serviceRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = slotRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		employeeRepository = employeeRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		slotRepository = slotRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		employeeRepository = employeeRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	usersSvc := usersService.NewService(userRepository, tokenManager, log)
	catalogSvc := catalogService.NewService(employeeRepository, serviceRepository, log)
	slotsSvc := slotsService.NewService(slotRepository, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, slotRepository, serviceRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		slotRepository,
		bookingRepository,
		serviceRepository,
		employeeRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	registerUser := registerUserHandler.NewHandler(usersSvc, log)
	loginUser := loginUserHandler.NewHandler(usersSvc, log)
	listUsers := listUsersHandler.NewHandler(usersSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingsSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	listSlots := listSlotsHandler.NewHandler(slotsSvc, log)
	createSlot := createSlotHandler.NewHandler(slotsSvc, log)
	listEmployees := listEmployeesHandler.NewHandler(catalogSvc, log)
	createEmployee := createEmployeeHandler.NewHandler(catalogSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Регистрация и вход
	r.HandleFunc("/auth/register", registerUser.Handle).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", loginUser.Handle).Methods(http.MethodPost)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Справочник и расписание доступны без авторизации
	api.HandleFunc("/available-dates", listSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/employees", listEmployees.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokenManager, log))

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют права администратора)
	// ============================================================

	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminOnly)

	admin.HandleFunc("/available-dates", createSlot.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/employees", createEmployee.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/users", listUsers.Handle).Methods(http.MethodGet)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
