package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	changeBookingHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/change_booking"
	createBookingHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_booking"
	getHotelRoomsHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_hotel_rooms"
	getHotelsHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_hotels"
	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBookingService/internal/config"
	bookingRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/booking"
	enrollmentRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/enrollment"
	hotelRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/hotel"
	ticketRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/ticket"
	bookingsService "github.com/m04kA/SMC-HotelBookingService/internal/service/bookings"
	hotelsService "github.com/m04kA/SMC-HotelBookingService/internal/service/hotels"
	changeBookingUC "github.com/m04kA/SMC-HotelBookingService/internal/usecase/change_booking"
	createBookingUC "github.com/m04kA/SMC-HotelBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-HotelBookingService/migrations"
	"github.com/m04kA/SMC-HotelBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelBookingService/pkg/jwtauth"
	"github.com/m04kA/SMC-HotelBookingService/pkg/logger"
	"github.com/m04kA/SMC-HotelBookingService/pkg/metrics"
	"github.com/m04kA/SMC-HotelBookingService/pkg/txmanager"
)

// executor источник запросов для репозиториев и транзакций
type executor interface {
	dbmetrics.DBExecutor
	dbmetrics.TxBeginner
}

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
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

	log.Info("Starting SMC-HotelBookingService...")
	log.Info("Configuration loaded from %s", *configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if cfg.Database.AutoMigrate {
		if err := migrations.Up(db); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Database migrations applied")
	}

	// С метриками или без
	var dbExec executor
	if cfg.Metrics.Enabled {
		dbExec = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		dbExec = dbmetrics.Plain(db)
	}

	txMgr := txmanager.NewTransactionManager(dbExec)

	tokens, err := jwtauth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, time.Duration(cfg.Auth.TokenTTL)*time.Second)
	if err != nil {
		log.Fatal("Failed to initialize token manager: %v", err)
	}

	// Репозитории
	enrollmentRepository := enrollmentRepo.NewRepository(dbExec)
	ticketRepository := ticketRepo.NewRepository(dbExec)
	hotelRepository := hotelRepo.NewRepository(dbExec)
	bookingRepository := bookingRepo.NewRepository(dbExec)

	// Сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	hotelSvc := hotelsService.NewService(enrollmentRepository, ticketRepository, hotelRepository, log)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		enrollmentRepository,
		ticketRepository,
		hotelRepository,
		bookingRepository,
		txMgr,
		metricsCollector,
		log,
	)
	changeBookingUseCase := changeBookingUC.NewUseCase(
		hotelRepository,
		bookingRepository,
		txMgr,
		metricsCollector,
		log,
	)

	// Handlers
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	changeBooking := changeBookingHandler.NewHandler(changeBookingUseCase, log)
	getHotels := getHotelsHandler.NewHandler(hotelSvc, log)
	getHotelRooms := getHotelRoomsHandler.NewHandler(hotelSvc, log)

	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestLogger(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (Authorization: Bearer <jwt>)
	// ============================================================

	protected := r.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokens, log))

	// --- Бронирования ---
	protected.HandleFunc("/booking", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/booking", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/booking/{bookingId}", changeBooking.Handle).Methods(http.MethodPut)

	// --- Каталог отелей ---
	protected.HandleFunc("/hotels", getHotels.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/hotels/{hotelId}", getHotelRooms.Handle).Methods(http.MethodGet)

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
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	close(stopMetricsCh)

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
