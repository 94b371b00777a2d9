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
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	adminGetBookingHandler "github.com/m04kA/LRB-BookingService/internal/api/handlers/admin_get_booking"
	adminListBookingsHandler "github.com/m04kA/LRB-BookingService/internal/api/handlers/admin_list_bookings"
	checkUserBookingsHandler "github.com/m04kA/LRB-BookingService/internal/api/handlers/check_user_bookings"
	createBookingHandler "github.com/m04kA/LRB-BookingService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/LRB-BookingService/internal/api/handlers/delete_booking"
	getAvailabilityHandler "github.com/m04kA/LRB-BookingService/internal/api/handlers/get_availability"
	getBookingsHandler "github.com/m04kA/LRB-BookingService/internal/api/handlers/get_bookings"
	getRoomsHandler "github.com/m04kA/LRB-BookingService/internal/api/handlers/get_rooms"
	healthHandler "github.com/m04kA/LRB-BookingService/internal/api/handlers/health"
	updateBookingStatusHandler "github.com/m04kA/LRB-BookingService/internal/api/handlers/update_booking_status"
	"github.com/m04kA/LRB-BookingService/internal/api/middleware"
	"github.com/m04kA/LRB-BookingService/internal/config"
	bookingRepo "github.com/m04kA/LRB-BookingService/internal/infra/storage/booking"
	memberRepo "github.com/m04kA/LRB-BookingService/internal/infra/storage/member"
	roomRepo "github.com/m04kA/LRB-BookingService/internal/infra/storage/room"
	timeslotRepo "github.com/m04kA/LRB-BookingService/internal/infra/storage/timeslot"
	directoryClient "github.com/m04kA/LRB-BookingService/internal/integrations/directory"
	bookingsService "github.com/m04kA/LRB-BookingService/internal/service/bookings"
	roomsService "github.com/m04kA/LRB-BookingService/internal/service/rooms"
	createBookingUC "github.com/m04kA/LRB-BookingService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/m04kA/LRB-BookingService/internal/usecase/get_availability"
	"github.com/m04kA/LRB-BookingService/pkg/dbmetrics"
	"github.com/m04kA/LRB-BookingService/pkg/logger"
	"github.com/m04kA/LRB-BookingService/pkg/metrics"
	"github.com/m04kA/LRB-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/LRB-BookingService/pkg/txmanager"
)

// TxManager — общий контракт транзакционных менеджеров, используемый
// usecase- и service-слоями.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

func main() {
	// Переменные окружения из .env (если есть) перекрывают config.toml
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

	log.Info("Starting LRB-BookingService...")
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

	// Клиент каталога студентов (опционален: пустой URL отключает проверку)
	var directory createBookingUC.DirectoryClient
	if cfg.Directory.URL != "" {
		directory = directoryClient.NewClient(
			cfg.Directory.URL,
			time.Duration(cfg.Directory.Timeout)*time.Second,
			log,
		)
		log.Info("Directory client initialized (URL=%s timeout=%ds)",
			cfg.Directory.URL, cfg.Directory.Timeout)
	} else {
		log.Info("Directory integration disabled")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		dbExecutor dbmetrics.DBExecutor = db
		txMgr      TxManager            = simpletxmanager.NewTransactionManager(db)
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		dbExecutor = wrappedDB
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		log.Info("Database metrics collection started")
	}

	bookingRepository := bookingRepo.NewRepository(dbExecutor)
	memberRepository := memberRepo.NewRepository(dbExecutor)
	slotRepository := timeslotRepo.NewRepository(dbExecutor)
	roomRepository := roomRepo.NewRepository(dbExecutor)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		memberRepository,
		slotRepository,
		txMgr,
		log,
	)
	roomSvc := roomsService.NewService(roomRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		memberRepository,
		slotRepository,
		roomRepository,
		directory,
		txMgr,
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		bookingRepository,
		slotRepository,
		roomRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	expose := cfg.Server.ExposeInternalErrors
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log, expose)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log, expose)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log, expose)
	checkUserBookings := checkUserBookingsHandler.NewHandler(bookingSvc, log, expose)
	getRooms := getRoomsHandler.NewHandler(roomSvc, log, expose)
	adminListBookings := adminListBookingsHandler.NewHandler(bookingSvc, log, expose)
	adminGetBooking := adminGetBookingHandler.NewHandler(bookingSvc, log, expose)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log, expose)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log, expose)
	health := healthHandler.NewHandler()

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.LoggingMiddleware(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (студенческий фронт)
	// ============================================================

	// Создание заявки на бронирование
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Заявки на дату (опционально по комнате)
	api.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)

	// Проверка заявок студента
	api.HandleFunc("/bookings/check-user", checkUserBookings.Handle).Methods(http.MethodGet)

	// Список комнат
	api.HandleFunc("/rooms", getRooms.Handle).Methods(http.MethodGet)

	// Доступность слотов комнаты на дату
	api.HandleFunc("/rooms/availability", getAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES
	// ============================================================

	// Все заявки
	api.HandleFunc("/admin/bookings", adminListBookings.Handle).Methods(http.MethodGet)

	// Заявка с участниками
	api.HandleFunc("/admin/bookings/{bookingId}", adminGetBooking.Handle).Methods(http.MethodGet)

	// Смена статуса заявки
	api.HandleFunc("/admin/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPut)

	// Удаление заявки вместе с участниками
	api.HandleFunc("/admin/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// Health check
	api.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// CORS для браузерных клиентов
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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
