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

	assignBarberHandler "github.com/ThinhTran1001/barbershop-web-sub002/internal/api/handlers/assign_barber"
	cancelBookingHandler "github.com/ThinhTran1001/barbershop-web-sub002/internal/api/handlers/cancel_booking"
	confirmBookingsHandler "github.com/ThinhTran1001/barbershop-web-sub002/internal/api/handlers/confirm_bookings"
	getBookingHandler "github.com/ThinhTran1001/barbershop-web-sub002/internal/api/handlers/get_booking"
	getCompletionWindowHandler "github.com/ThinhTran1001/barbershop-web-sub002/internal/api/handlers/get_completion_window"
	updateBookingStatusHandler "github.com/ThinhTran1001/barbershop-web-sub002/internal/api/handlers/update_booking_status"
	"github.com/ThinhTran1001/barbershop-web-sub002/internal/api/middleware"
	"github.com/ThinhTran1001/barbershop-web-sub002/internal/config"
	bookingRepo "github.com/ThinhTran1001/barbershop-web-sub002/internal/infra/storage/booking"
	"github.com/ThinhTran1001/barbershop-web-sub002/internal/integrations/eventbus"
	scheduleServiceClient "github.com/ThinhTran1001/barbershop-web-sub002/internal/integrations/scheduleservice"
	bookingsService "github.com/ThinhTran1001/barbershop-web-sub002/internal/service/bookings"
	assignBarberUC "github.com/ThinhTran1001/barbershop-web-sub002/internal/usecase/assign_barber"
	changeStatusUC "github.com/ThinhTran1001/barbershop-web-sub002/internal/usecase/change_status"
	"github.com/ThinhTran1001/barbershop-web-sub002/pkg/dbmigrate"
	"github.com/ThinhTran1001/barbershop-web-sub002/pkg/logger"
	"github.com/ThinhTran1001/barbershop-web-sub002/pkg/metrics"
)

const defaultConfigPath = "config.toml"

type eventPublisher interface {
	Publish(ctx context.Context, event eventbus.Event) error
	Close()
}

func main() {
	configPath := defaultConfigPath
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting barbershop booking service...")
	log.Info("Configuration loaded from %s", configPath)

	// Metrics, a nil collector records nothing
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Database
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if cfg.Database.MigrationsPath != "" {
		if err := dbmigrate.Up(cfg.Database.MigrationsPath, cfg.Database.URL()); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Migrations applied from %s", cfg.Database.MigrationsPath)
	}

	// Integrations
	scheduleClient := scheduleServiceClient.NewClient(
		cfg.ScheduleService.URL,
		time.Duration(cfg.ScheduleService.Timeout)*time.Second,
		log,
	)
	log.Info("Schedule service client initialized (url=%s, timeout=%ds)",
		cfg.ScheduleService.URL, cfg.ScheduleService.Timeout)

	var publisher eventPublisher = eventbus.NopPublisher{}
	if cfg.Broker.Enabled {
		amqpPublisher, err := eventbus.NewPublisher(cfg.Broker.URL, cfg.Broker.Exchange, log)
		if err != nil {
			log.Fatal("Failed to connect to broker: %v", err)
		}
		publisher = amqpPublisher
		log.Info("Publishing booking events to exchange=%s", cfg.Broker.Exchange)
	} else {
		log.Warn("Broker disabled, booking events are not published")
	}
	defer publisher.Close()

	// Repositories, use cases and services
	bookingRepository := bookingRepo.NewRepository(db)

	assignBarberUseCase := assignBarberUC.NewUseCase(
		bookingRepository,
		scheduleClient,
		publisher,
		metricsCollector,
		log,
	)
	changeStatusUseCase := changeStatusUC.NewUseCase(
		bookingRepository,
		assignBarberUseCase,
		publisher,
		metricsCollector,
		cfg.Booking.GraceMinutes,
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		assignBarberUseCase,
		publisher,
		metricsCollector,
		cfg.Booking.GraceMinutes,
		log,
	)

	// Handlers
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(changeStatusUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	confirmBookings := confirmBookingsHandler.NewHandler(bookingSvc, log)
	getCompletionWindow := getCompletionWindowHandler.NewHandler(bookingSvc, log)
	assignBarber := assignBarberHandler.NewHandler(assignBarberUseCase, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("HTTP metrics middleware enabled")
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	// Every booking route requires X-User-ID and X-User-Role
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// Static path first so "confirm" is not taken for a booking id
	api.HandleFunc("/bookings/confirm", confirmBookings.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/completion-window", getCompletionWindow.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/assign-barber", assignBarber.Handle).Methods(http.MethodPost)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
