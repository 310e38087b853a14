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
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-ProfileService/internal/api/handlers"
	closeDialogHandler "github.com/m04kA/SMC-ProfileService/internal/api/handlers/close_dialog"
	downloadReceiptHandler "github.com/m04kA/SMC-ProfileService/internal/api/handlers/download_receipt"
	getActivityHandler "github.com/m04kA/SMC-ProfileService/internal/api/handlers/get_activity"
	getProfileStateHandler "github.com/m04kA/SMC-ProfileService/internal/api/handlers/get_profile_state"
	healthHandler "github.com/m04kA/SMC-ProfileService/internal/api/handlers/health"
	openIncidentDialogHandler "github.com/m04kA/SMC-ProfileService/internal/api/handlers/open_incident_dialog"
	openPaymentDialogHandler "github.com/m04kA/SMC-ProfileService/internal/api/handlers/open_payment_dialog"
	showProfileHandler "github.com/m04kA/SMC-ProfileService/internal/api/handlers/show_profile"
	submitIncidentHandler "github.com/m04kA/SMC-ProfileService/internal/api/handlers/submit_incident"
	submitPaymentHandler "github.com/m04kA/SMC-ProfileService/internal/api/handlers/submit_payment"
	"github.com/m04kA/SMC-ProfileService/internal/api/middleware"
	"github.com/m04kA/SMC-ProfileService/internal/api/render"
	"github.com/m04kA/SMC-ProfileService/internal/config"
	"github.com/m04kA/SMC-ProfileService/internal/infra/storage/journal"
	"github.com/m04kA/SMC-ProfileService/internal/infra/storage/session"
	"github.com/m04kA/SMC-ProfileService/internal/integrations/hotelapi"
	"github.com/m04kA/SMC-ProfileService/internal/receipt"
	profileService "github.com/m04kA/SMC-ProfileService/internal/service/profile"
	declareIncidentUC "github.com/m04kA/SMC-ProfileService/internal/usecase/declare_incident"
	exportReceiptUC "github.com/m04kA/SMC-ProfileService/internal/usecase/export_receipt"
	loadProfileUC "github.com/m04kA/SMC-ProfileService/internal/usecase/load_profile"
	submitPaymentUC "github.com/m04kA/SMC-ProfileService/internal/usecase/submit_payment"
	"github.com/m04kA/SMC-ProfileService/pkg/logger"
	"github.com/m04kA/SMC-ProfileService/pkg/metrics"
)

// janitorInterval период очистки истёкших сессий в памяти
const janitorInterval = time.Minute

// activityJournal общий интерфейс журнала для postgres и заглушки
type activityJournal interface {
	Record(ctx context.Context, entry journal.Entry) error
	ListBySubject(ctx context.Context, subject string, limit uint64) ([]journal.Entry, error)
}

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

	log.Info("Starting SMC-ProfileService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Журнал действий в PostgreSQL (опционально)
	var activity activityJournal = journal.Nop{}
	if cfg.Database.Enabled {
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
		activity = journal.NewRepository(db)
		log.Info("Activity journal enabled (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	} else {
		log.Info("Activity journal disabled")
	}

	// Хранилище сессий страницы
	var store session.Store
	switch cfg.Session.Backend {
	case "redis":
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
		}
		store = session.NewRedisStore(redisClient, cfg.Redis.KeyPrefix, cfg.SessionTTL())
		log.Info("Session store: redis (addr=%s, ttl=%s)", cfg.Redis.Addr, cfg.SessionTTL())
	default:
		var gauge session.Gauge
		if metricsCollector != nil {
			gauge = metricsCollector
		}
		memoryStore := session.NewMemoryStore(cfg.SessionTTL(), gauge)
		janitor, err := session.NewJanitor(memoryStore, janitorInterval, log)
		if err != nil {
			log.Fatal("Failed to create session janitor: %v", err)
		}
		janitor.Start()
		defer func() {
			if err := janitor.Shutdown(); err != nil {
				log.Warn("Session janitor shutdown: %v", err)
			}
		}()
		store = memoryStore
		log.Info("Session store: memory (ttl=%s)", cfg.SessionTTL())
	}

	// Клиент hotel API
	hotelClient := hotelapi.NewClient(cfg.HotelAPI.URL, cfg.HotelAPITimeout(), log)
	if metricsCollector != nil {
		hotelClient = hotelClient.WithObserver(metricsCollector)
	}
	log.Info("Hotel API client initialized (url=%s, timeout=%ds)", cfg.HotelAPI.URL, cfg.HotelAPI.Timeout)

	// Квитанции
	receiptOpts := receipt.Options{
		Currency:     cfg.Receipt.Currency,
		SupportEmail: cfg.Receipt.SupportEmail,
		SupportPhone: cfg.Receipt.SupportPhone,
		Compress:     true,
	}
	if cfg.Receipt.LogoPath != "" {
		logo, err := receipt.LoadLogo(cfg.Receipt.LogoPath)
		if err != nil {
			log.Warn("Receipt logo not loaded, receipts will have no logo: %v", err)
		} else {
			receiptOpts.Logo = logo
		}
	}
	exporter := receipt.NewPDFExporter(receiptOpts)

	// Инициализируем сервисы и use cases
	profileSvc := profileService.NewService(store, log)
	loadProfileUseCase := loadProfileUC.NewUseCase(store, hotelClient, activity, log)
	declareIncidentUseCase := declareIncidentUC.NewUseCase(store, hotelClient, activity, metricsCollector, log)
	submitPaymentUseCase := submitPaymentUC.NewUseCase(store, hotelClient, activity, metricsCollector, log)
	exportReceiptUseCase := exportReceiptUC.NewUseCase(store, exporter, activity, metricsCollector, log)

	// Инициализируем handlers
	renderer, err := render.New()
	if err != nil {
		log.Fatal("Failed to parse templates: %v", err)
	}
	cookie := handlers.SessionCookie{
		Name:   cfg.Session.CookieName,
		TTL:    cfg.SessionTTL(),
		Secure: cfg.Session.Secure,
	}

	showProfile := showProfileHandler.NewHandler(profileSvc, loadProfileUseCase, renderer, cookie, log)
	openIncidentDialog := openIncidentDialogHandler.NewHandler(profileSvc, renderer, cookie, log)
	submitIncident := submitIncidentHandler.NewHandler(declareIncidentUseCase, renderer, cookie, log)
	openPaymentDialog := openPaymentDialogHandler.NewHandler(profileSvc, renderer, cookie, log)
	submitPayment := submitPaymentHandler.NewHandler(submitPaymentUseCase, renderer, cookie, log)
	closeDialog := closeDialogHandler.NewHandler(profileSvc, renderer, cookie, log)
	downloadReceipt := downloadReceiptHandler.NewHandler(exportReceiptUseCase, renderer, cookie, log)
	getProfileState := getProfileStateHandler.NewHandler(profileSvc, cookie, log)
	getActivity := getActivityHandler.NewHandler(activity, log)

	auth := middleware.NewAuth(cfg.Auth.CookieName, cfg.Auth.JWTSecret, log)
	if cfg.Auth.JWTSecret == "" {
		log.Warn("auth.jwt_secret is empty: token signatures are checked by hotel API only")
	}

	// Настраиваем роутер
	r := mux.NewRouter()

	if metricsCollector != nil {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", healthHandler.Handle).Methods(http.MethodGet)

	// ============================================================
	// HTML PAGE (требует токен пользователя)
	// ============================================================

	page := r.PathPrefix(handlers.PathProfile).Subrouter()
	page.Use(auth.Require(func(w http.ResponseWriter, r *http.Request) {
		handlers.RespondErrorPage(w, renderer, http.StatusUnauthorized, handlers.MsgSignIn)
	}))

	page.HandleFunc("", showProfile.HandleNew).Methods(http.MethodGet)
	page.HandleFunc("/current", showProfile.HandleCurrent).Methods(http.MethodGet)

	// --- Инциденты ---
	page.HandleFunc("/rooms/{roomId}/incident-dialog", openIncidentDialog.Handle).Methods(http.MethodPost)
	page.HandleFunc("/incidents", submitIncident.Handle).Methods(http.MethodPost)

	// --- Оплата и квитанции ---
	page.HandleFunc("/reservations/{reservationId}/payment-dialog", openPaymentDialog.Handle).Methods(http.MethodPost)
	page.HandleFunc("/payments", submitPayment.Handle).Methods(http.MethodPost)
	page.HandleFunc("/reservations/{reservationId}/receipt", downloadReceipt.Handle).Methods(http.MethodGet)

	page.HandleFunc("/dialogs/{dialog}/close", closeDialog.Handle).Methods(http.MethodPost)

	// ============================================================
	// JSON API
	// ============================================================

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(auth.Require(handlers.UnauthorizedJSON))
	api.HandleFunc("/profile/state", getProfileState.Handle).Methods(http.MethodGet)
	api.HandleFunc("/profile/activity", getActivity.Handle).Methods(http.MethodGet)

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
