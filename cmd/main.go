package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	approveReservationHandler "github.com/m04kA/SFB-ReservationBroker/internal/api/handlers/approve_reservation"
	cancelReservationHandler "github.com/m04kA/SFB-ReservationBroker/internal/api/handlers/cancel_reservation"
	createMatchHandler "github.com/m04kA/SFB-ReservationBroker/internal/api/handlers/create_match"
	createReservationHandler "github.com/m04kA/SFB-ReservationBroker/internal/api/handlers/create_reservation"
	getAvailabilityHandler "github.com/m04kA/SFB-ReservationBroker/internal/api/handlers/get_availability"
	getReservationHandler "github.com/m04kA/SFB-ReservationBroker/internal/api/handlers/get_reservation"
	listReservationsHandler "github.com/m04kA/SFB-ReservationBroker/internal/api/handlers/list_reservations"
	rejectReservationHandler "github.com/m04kA/SFB-ReservationBroker/internal/api/handlers/reject_reservation"
	"github.com/m04kA/SFB-ReservationBroker/internal/api/middleware"
	"github.com/m04kA/SFB-ReservationBroker/internal/config"
	"github.com/m04kA/SFB-ReservationBroker/internal/infra/cache/userprofile"
	"github.com/m04kA/SFB-ReservationBroker/internal/integrations/datalayer"
	"github.com/m04kA/SFB-ReservationBroker/internal/rules"
	authzService "github.com/m04kA/SFB-ReservationBroker/internal/service/authz"
	conflictsService "github.com/m04kA/SFB-ReservationBroker/internal/service/conflicts"
	identityService "github.com/m04kA/SFB-ReservationBroker/internal/service/identity"
	reservationsService "github.com/m04kA/SFB-ReservationBroker/internal/service/reservations"
	approveReservationUC "github.com/m04kA/SFB-ReservationBroker/internal/usecase/approve_reservation"
	cancelReservationUC "github.com/m04kA/SFB-ReservationBroker/internal/usecase/cancel_reservation"
	createMatchUC "github.com/m04kA/SFB-ReservationBroker/internal/usecase/create_match"
	createReservationUC "github.com/m04kA/SFB-ReservationBroker/internal/usecase/create_reservation"
	getAvailabilityUC "github.com/m04kA/SFB-ReservationBroker/internal/usecase/get_availability"
	rejectReservationUC "github.com/m04kA/SFB-ReservationBroker/internal/usecase/reject_reservation"
	"github.com/m04kA/SFB-ReservationBroker/pkg/clientmetrics"
	"github.com/m04kA/SFB-ReservationBroker/pkg/logger"
	"github.com/m04kA/SFB-ReservationBroker/pkg/metrics"
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

	log.Info("Starting SFB-ReservationBroker...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Клиент Data Layer - единственный источник правды по резервациям,
	// полям, пользователям и сменам
	var transport http.RoundTripper
	if cfg.Metrics.Enabled {
		transport = clientmetrics.NewRoundTripper("datalayer", http.DefaultTransport, metricsCollector)
	}
	dataLayer := datalayer.NewClient(
		cfg.DataLayer.URL,
		time.Duration(cfg.DataLayer.Timeout)*time.Second,
		transport,
		log,
	)
	log.Info("Data Layer client initialized (url=%s, timeout=%ds)", cfg.DataLayer.URL, cfg.DataLayer.Timeout)

	// Кеш профилей пользователей: Redis или заглушка
	var userCache identityService.UserCache = identityService.NopCache{}
	if cfg.Cache.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		userCache = userprofile.New(redisClient, time.Duration(cfg.Cache.TTLSeconds)*time.Second)
		log.Info("User profile cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Cache.TTLSeconds)
	} else {
		log.Info("User profile cache disabled, resolving users directly")
	}

	// Валидатор бизнес-правил с заблокированными датами из конфигурации
	blockedDates := make(map[string]string)
	for _, d := range cfg.Rules.SpecialDates {
		if d.Blocked {
			blockedDates[d.Date] = d.Name
		}
	}
	validator := rules.NewValidator(blockedDates)
	log.Info("Rule validator initialized (%d blocked dates)", len(blockedDates))

	// Инициализируем сервисы
	identitySvc := identityService.NewService(dataLayer, userCache, log)
	conflictDetector := conflictsService.NewDetector(dataLayer, log)
	authorizer := authzService.NewService(dataLayer, log)
	reservationsSvc := reservationsService.NewService(dataLayer, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		validator,
		dataLayer,
		identitySvc,
		conflictDetector,
		dataLayer,
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(dataLayer, dataLayer, log)

	approveReservationUseCase := approveReservationUC.NewUseCase(
		dataLayer,
		dataLayer,
		conflictDetector,
		identitySvc,
		authorizer,
		log,
	)

	rejectReservationUseCase := rejectReservationUC.NewUseCase(
		dataLayer,
		dataLayer,
		identitySvc,
		authorizer,
		log,
	)

	cancelReservationUseCase := cancelReservationUC.NewUseCase(
		dataLayer,
		dataLayer,
		identitySvc,
		authorizer,
		log,
	)

	createMatchUseCase := createMatchUC.NewUseCase(
		dataLayer,
		createReservationUseCase,
		dataLayer,
		dataLayer,
		dataLayer,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	approveReservation := approveReservationHandler.NewHandler(approveReservationUseCase, log)
	rejectReservation := rejectReservationHandler.NewHandler(rejectReservationUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(cancelReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	createMatch := createMatchHandler.NewHandler(createMatchUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health check (публичный)
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступность поля на дату
	api.HandleFunc("/fields/{fieldId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Резервации ---
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{id}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{id}/approve", approveReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{id}/reject", rejectReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{id}/cancel", cancelReservation.Handle).Methods(http.MethodPost)

	// --- Матчи ---
	protected.HandleFunc("/matches", createMatch.Handle).Methods(http.MethodPost)

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
