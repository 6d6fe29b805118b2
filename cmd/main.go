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

	cancelReservationHandler "github.com/lepikeman/qrenoo-booking/internal/api/handlers/cancel_reservation"
	confirmReservationHandler "github.com/lepikeman/qrenoo-booking/internal/api/handlers/confirm_reservation"
	createReservationHandler "github.com/lepikeman/qrenoo-booking/internal/api/handlers/create_reservation"
	getAvailableSlotsHandler "github.com/lepikeman/qrenoo-booking/internal/api/handlers/get_available_slots"
	getReservationHandler "github.com/lepikeman/qrenoo-booking/internal/api/handlers/get_reservation"
	getScheduleHandler "github.com/lepikeman/qrenoo-booking/internal/api/handlers/get_schedule"
	listReservationsHandler "github.com/lepikeman/qrenoo-booking/internal/api/handlers/list_reservations"
	updateScheduleHandler "github.com/lepikeman/qrenoo-booking/internal/api/handlers/update_schedule"
	"github.com/lepikeman/qrenoo-booking/internal/api/middleware"
	"github.com/lepikeman/qrenoo-booking/internal/config"
	appointmentRepo "github.com/lepikeman/qrenoo-booking/internal/infra/storage/appointment"
	scheduleRepo "github.com/lepikeman/qrenoo-booking/internal/infra/storage/schedule"
	"github.com/lepikeman/qrenoo-booking/internal/notify"
	reservationsService "github.com/lepikeman/qrenoo-booking/internal/service/reservations"
	scheduleService "github.com/lepikeman/qrenoo-booking/internal/service/schedule"
	confirmReservationUC "github.com/lepikeman/qrenoo-booking/internal/usecase/confirm_reservation"
	createReservationUC "github.com/lepikeman/qrenoo-booking/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/lepikeman/qrenoo-booking/internal/usecase/get_available_slots"
	"github.com/lepikeman/qrenoo-booking/internal/worker/cleanup"
	"github.com/lepikeman/qrenoo-booking/pkg/dbmetrics"
	"github.com/lepikeman/qrenoo-booking/pkg/logger"
	"github.com/lepikeman/qrenoo-booking/pkg/metrics"
	"github.com/lepikeman/qrenoo-booking/pkg/simpletxmanager"
	"github.com/lepikeman/qrenoo-booking/pkg/txmanager"
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

	log.Info("Starting qrenoo-booking...")
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

	// Почтовый клиент для писем клиентам
	mailer := notify.NewMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.From, log)
	log.Info("Mailer initialized (smtp=%s:%d, from=%s)", cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.From)

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(appointmentRepository, mailer, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, txMgr, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		mailer,
		txMgr,
		log,
	)
	confirmReservationUseCase := confirmReservationUC.NewUseCase(appointmentRepository, mailer, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(appointmentRepository, scheduleRepository, log)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	confirmReservation := confirmReservationHandler.NewHandler(confirmReservationUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)

	// Фоновая очистка просроченных неподтверждённых записей
	cleanupWorker := cleanup.NewWorker(
		appointmentRepository,
		time.Duration(cfg.Booking.CleanupInterval)*time.Second,
		time.Duration(cfg.Booking.CleanupGrace)*time.Second,
		log,
	)
	workerCtx, stopWorker := context.WithCancel(context.Background())
	go cleanupWorker.Run(workerCtx)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

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

	// Создание записи (pre-validation проверяет X-Pro-ID внутри handler)
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Подтверждение записи кодом из письма
	api.HandleFunc("/reservations/{reservationId}/confirm", confirmReservation.Handle).Methods(http.MethodPost)

	// Отмена записи
	api.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPost)

	// Доступные слоты на дату
	api.HandleFunc("/professionals/{proId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Pro-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Записи профессионала на даты
	protected.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)

	// Запись по ID
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Расписание профессионала
	protected.HandleFunc("/professionals/{proId}/schedule", getSchedule.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/professionals/{proId}/schedule", updateSchedule.Handle).Methods(http.MethodPut)

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

	// Останавливаем фоновые задачи
	stopWorker()
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
