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

	availableSlotsHandler "github.com/autopilot-ai/AP-SchedulerService/internal/api/handlers/available_slots"
	cancelBookingHandler "github.com/autopilot-ai/AP-SchedulerService/internal/api/handlers/cancel_booking"
	completeBookingHandler "github.com/autopilot-ai/AP-SchedulerService/internal/api/handlers/complete_booking"
	createBookingHandler "github.com/autopilot-ai/AP-SchedulerService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/autopilot-ai/AP-SchedulerService/internal/api/handlers/get_booking"
	getBookingsHandler "github.com/autopilot-ai/AP-SchedulerService/internal/api/handlers/get_bookings"
	getStatsHandler "github.com/autopilot-ai/AP-SchedulerService/internal/api/handlers/get_stats"
	listCentersHandler "github.com/autopilot-ai/AP-SchedulerService/internal/api/handlers/list_centers"
	nlpHandler "github.com/autopilot-ai/AP-SchedulerService/internal/api/handlers/nlp"
	notificationsHandler "github.com/autopilot-ai/AP-SchedulerService/internal/api/handlers/notifications"
	scheduleAnalyticsHandler "github.com/autopilot-ai/AP-SchedulerService/internal/api/handlers/schedule_analytics"
	scheduleAppointmentHandler "github.com/autopilot-ai/AP-SchedulerService/internal/api/handlers/schedule_appointment"
	"github.com/autopilot-ai/AP-SchedulerService/internal/api/middleware"
	"github.com/autopilot-ai/AP-SchedulerService/internal/config"
	bookingRepo "github.com/autopilot-ai/AP-SchedulerService/internal/infra/storage/booking"
	centerRepo "github.com/autopilot-ai/AP-SchedulerService/internal/infra/storage/center"
	"github.com/autopilot-ai/AP-SchedulerService/internal/infra/storage/schema"
	userRepo "github.com/autopilot-ai/AP-SchedulerService/internal/infra/storage/user"
	vehicleRepo "github.com/autopilot-ai/AP-SchedulerService/internal/infra/storage/vehicle"
	bookingsService "github.com/autopilot-ai/AP-SchedulerService/internal/service/bookings"
	centersService "github.com/autopilot-ai/AP-SchedulerService/internal/service/centers"
	nlpService "github.com/autopilot-ai/AP-SchedulerService/internal/service/nlp"
	notificationsService "github.com/autopilot-ai/AP-SchedulerService/internal/service/notifications"
	schedulerService "github.com/autopilot-ai/AP-SchedulerService/internal/service/scheduler"
	createBookingUC "github.com/autopilot-ai/AP-SchedulerService/internal/usecase/create_booking"
	scheduleAppointmentUC "github.com/autopilot-ai/AP-SchedulerService/internal/usecase/schedule_appointment"
	"github.com/autopilot-ai/AP-SchedulerService/pkg/dbmetrics"
	"github.com/autopilot-ai/AP-SchedulerService/pkg/logger"
	"github.com/autopilot-ai/AP-SchedulerService/pkg/metrics"
	"github.com/autopilot-ai/AP-SchedulerService/pkg/simpletxmanager"
	"github.com/autopilot-ai/AP-SchedulerService/pkg/txmanager"
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

	log.Info("Starting AP-SchedulerService...")
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

	// Создаем схему БД (MVP-подход: идемпотентный bootstrap вместо миграций)
	initCtx, cancelInit := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelInit()
	if err := schema.Init(initCtx, db); err != nil {
		log.Fatal("Failed to initialize database schema: %v", err)
	}
	log.Info("Database schema initialized")

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		userRepository    *userRepo.Repository
		vehicleRepository *vehicleRepo.Repository
		centerRepository  *centerRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		vehicleRepository = vehicleRepo.NewRepository(wrappedDB)
		centerRepository = centerRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		vehicleRepository = vehicleRepo.NewRepository(db)
		centerRepository = centerRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Сеем дефолтные сервис-центры, если их еще нет
	if err := schema.SeedServiceCenters(initCtx, centerRepository); err != nil {
		log.Fatal("Failed to seed service centers: %v", err)
	}
	log.Info("Service centers ready")

	// Инициализируем сервисы
	schedulerSvc := schedulerService.NewService(bookingRepository, log)
	centersSvc := centersService.NewService(centerRepository, log)
	centerSelector := centersService.NewFirstAvailable(centerRepository, log)
	notificationsSvc := notificationsService.NewService(log)
	nlpParser := nlpService.NewParser()
	bookingsSvc := bookingsService.NewService(
		bookingRepository,
		userRepository,
		vehicleRepository,
		centerRepository,
		notificationsSvc,
		log,
	)

	// Инициализируем use cases
	scheduleAppointmentUseCase := scheduleAppointmentUC.NewUseCase(
		userRepository,
		vehicleRepository,
		bookingRepository,
		centerSelector,
		schedulerSvc,
		notificationsSvc,
		txMgr,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		userRepository,
		vehicleRepository,
		bookingRepository,
		centerSelector,
		txMgr,
		log,
	)

	// Инициализируем handlers
	scheduleAppointment := scheduleAppointmentHandler.NewHandler(scheduleAppointmentUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBookings := getBookingsHandler.NewHandler(bookingsSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingsSvc, log)
	completeBooking := completeBookingHandler.NewHandler(bookingsSvc, log)
	availableSlots := availableSlotsHandler.NewHandler(schedulerSvc, centerSelector, log)
	scheduleAnalytics := scheduleAnalyticsHandler.NewHandler(schedulerSvc, centerSelector, log)
	listCenters := listCentersHandler.NewHandler(centersSvc, log)
	getStats := getStatsHandler.NewHandler(bookingsSvc, log)
	nlp := nlpHandler.NewHandler(nlpParser, log)
	notifications := notificationsHandler.NewHandler(notificationsSvc, bookingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status":"operational","message":"AP-SchedulerService is running"}`)
	}).Methods(http.MethodGet)

	// --- Умное назначение визитов ---
	r.HandleFunc("/schedule-appointment", scheduleAppointment.Handle).Methods(http.MethodPost)
	r.HandleFunc("/available-slots/{date}", availableSlots.Handle).Methods(http.MethodGet)
	r.HandleFunc("/schedule-analytics", scheduleAnalytics.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	r.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	r.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	r.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	r.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPut)
	r.HandleFunc("/bookings/{bookingId}/complete", completeBooking.Handle).Methods(http.MethodPut)

	// --- Справочники и статистика ---
	r.HandleFunc("/service-centers", listCenters.Handle).Methods(http.MethodGet)
	r.HandleFunc("/stats", getStats.Handle).Methods(http.MethodGet)

	// --- NLP / голосовой ассистент ---
	r.HandleFunc("/nlp/parse", nlp.HandleParse).Methods(http.MethodPost)
	r.HandleFunc("/nlp/entities", nlp.HandleEntities).Methods(http.MethodGet)

	// --- Уведомления ---
	r.HandleFunc("/notifications", notifications.HandleList).Methods(http.MethodGet)
	r.HandleFunc("/notifications", notifications.HandleClear).Methods(http.MethodDelete)
	r.HandleFunc("/notifications/{bookingId}", notifications.HandleHistory).Methods(http.MethodGet)
	r.HandleFunc("/notifications/{bookingId}/reminder", notifications.HandleReminder).Methods(http.MethodPost)

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

	log.Info("Server exited")
}
