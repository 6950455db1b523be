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
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/d1mas/BC-SchedulingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/d1mas/BC-SchedulingService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/d1mas/BC-SchedulingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/d1mas/BC-SchedulingService/internal/api/handlers/get_booking"
	getBookingsHandler "github.com/d1mas/BC-SchedulingService/internal/api/handlers/get_bookings"
	getScheduleHandler "github.com/d1mas/BC-SchedulingService/internal/api/handlers/get_schedule"
	getSettingsHandler "github.com/d1mas/BC-SchedulingService/internal/api/handlers/get_settings"
	saveScheduleHandler "github.com/d1mas/BC-SchedulingService/internal/api/handlers/save_schedule"
	saveSettingsHandler "github.com/d1mas/BC-SchedulingService/internal/api/handlers/save_settings"
	"github.com/d1mas/BC-SchedulingService/internal/api/middleware"
	"github.com/d1mas/BC-SchedulingService/internal/config"
	bookingRepo "github.com/d1mas/BC-SchedulingService/internal/infra/storage/booking"
	eventRepo "github.com/d1mas/BC-SchedulingService/internal/infra/storage/event"
	scheduleRepo "github.com/d1mas/BC-SchedulingService/internal/infra/storage/schedule"
	settingsRepo "github.com/d1mas/BC-SchedulingService/internal/infra/storage/settings"
	bookingsService "github.com/d1mas/BC-SchedulingService/internal/service/bookings"
	scheduleService "github.com/d1mas/BC-SchedulingService/internal/service/schedule"
	settingsService "github.com/d1mas/BC-SchedulingService/internal/service/settings"
	createBookingUC "github.com/d1mas/BC-SchedulingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/d1mas/BC-SchedulingService/internal/usecase/get_available_slots"
	"github.com/d1mas/BC-SchedulingService/pkg/dbmetrics"
	"github.com/d1mas/BC-SchedulingService/pkg/logger"
	"github.com/d1mas/BC-SchedulingService/pkg/metrics"
	"github.com/d1mas/BC-SchedulingService/pkg/simpletxmanager"
	"github.com/d1mas/BC-SchedulingService/pkg/txmanager"
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

	log.Info("Starting BC-SchedulingService...")
	log.Info("Configuration loaded from config.toml")

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

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		eventRepository    *eventRepo.Repository
		bookingRepository  *bookingRepo.Repository
		scheduleRepository *scheduleRepo.Repository
		settingsRepository *settingsRepo.Repository
	)

	// Интерфейс transaction manager, общий для usecase и сервисов
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		eventRepository = eventRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		eventRepository = eventRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		eventRepository,
		txMgr,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		txMgr,
		log,
	)
	settingsSvc := settingsService.NewService(
		settingsRepository,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		eventRepository,
		scheduleRepository,
		settingsRepository,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		eventRepository,
		bookingRepository,
		scheduleRepository,
		settingsRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	saveSchedule := saveScheduleHandler.NewHandler(scheduleSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	saveSettings := saveSettingsHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Витрина слотов
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Текущее расписание и настройки
	api.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)

	// Бронирование и действия посетителя по коду подтверждения
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{reference}", getBooking.HandleByReference).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{reference}/cancel", cancelBooking.HandleByReference).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют токен администратора)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Auth.AdminToken))

	// Управление расписанием и настройками
	admin.HandleFunc("/schedule", saveSchedule.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/settings", saveSettings.Handle).Methods(http.MethodPut)

	// Управление бронированиями
	admin.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id}", getBooking.HandleByID).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id}/cancel", cancelBooking.HandleByID).Methods(http.MethodPost)

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
