package main

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
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
	"github.com/redis/go-redis/v9"

	addStaffHandler "github.com/mojtermin/MT-BookingPlatform/internal/api/handlers/add_staff"
	assistantChatHandler "github.com/mojtermin/MT-BookingPlatform/internal/api/handlers/assistant_chat"
	cancelBookingHandler "github.com/mojtermin/MT-BookingPlatform/internal/api/handlers/cancel_booking"
	chargePenaltyHandler "github.com/mojtermin/MT-BookingPlatform/internal/api/handlers/charge_penalty"
	completeBookingHandler "github.com/mojtermin/MT-BookingPlatform/internal/api/handlers/complete_booking"
	createBookingHandler "github.com/mojtermin/MT-BookingPlatform/internal/api/handlers/create_booking"
	createProformaHandler "github.com/mojtermin/MT-BookingPlatform/internal/api/handlers/create_proforma"
	getAvailableSlotsHandler "github.com/mojtermin/MT-BookingPlatform/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/mojtermin/MT-BookingPlatform/internal/api/handlers/get_booking"
	getBusinessHandler "github.com/mojtermin/MT-BookingPlatform/internal/api/handlers/get_business"
	getBusinessBookingsHandler "github.com/mojtermin/MT-BookingPlatform/internal/api/handlers/get_business_bookings"
	getOwnerSettingsHandler "github.com/mojtermin/MT-BookingPlatform/internal/api/handlers/get_owner_settings"
	getPlatformConfigHandler "github.com/mojtermin/MT-BookingPlatform/internal/api/handlers/get_platform_config"
	getProformaPDFHandler "github.com/mojtermin/MT-BookingPlatform/internal/api/handlers/get_proforma_pdf"
	getUserBookingsHandler "github.com/mojtermin/MT-BookingPlatform/internal/api/handlers/get_user_bookings"
	listBusinessesHandler "github.com/mojtermin/MT-BookingPlatform/internal/api/handlers/list_businesses"
	markNoShowHandler "github.com/mojtermin/MT-BookingPlatform/internal/api/handlers/mark_no_show"
	removeStaffHandler "github.com/mojtermin/MT-BookingPlatform/internal/api/handlers/remove_staff"
	updateOwnerSettingsHandler "github.com/mojtermin/MT-BookingPlatform/internal/api/handlers/update_owner_settings"
	updatePlatformConfigHandler "github.com/mojtermin/MT-BookingPlatform/internal/api/handlers/update_platform_config"
	"github.com/mojtermin/MT-BookingPlatform/internal/api/middleware"
	"github.com/mojtermin/MT-BookingPlatform/internal/config"
	"github.com/mojtermin/MT-BookingPlatform/internal/infra/queue"
	billingRepo "github.com/mojtermin/MT-BookingPlatform/internal/infra/storage/billing"
	bookingRepo "github.com/mojtermin/MT-BookingPlatform/internal/infra/storage/booking"
	catalogRepo "github.com/mojtermin/MT-BookingPlatform/internal/infra/storage/catalog"
	settingsStore "github.com/mojtermin/MT-BookingPlatform/internal/infra/storage/settings"
	assistantClient "github.com/mojtermin/MT-BookingPlatform/internal/integrations/assistant"
	cardVaultClient "github.com/mojtermin/MT-BookingPlatform/internal/integrations/cardvault"
	billingService "github.com/mojtermin/MT-BookingPlatform/internal/service/billing"
	bookingsService "github.com/mojtermin/MT-BookingPlatform/internal/service/bookings"
	catalogService "github.com/mojtermin/MT-BookingPlatform/internal/service/catalog"
	conciergeService "github.com/mojtermin/MT-BookingPlatform/internal/service/concierge"
	settingsService "github.com/mojtermin/MT-BookingPlatform/internal/service/settings"
	createBookingUC "github.com/mojtermin/MT-BookingPlatform/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/mojtermin/MT-BookingPlatform/internal/usecase/get_available_slots"
	"github.com/mojtermin/MT-BookingPlatform/pkg/dbmetrics"
	"github.com/mojtermin/MT-BookingPlatform/pkg/logger"
	"github.com/mojtermin/MT-BookingPlatform/pkg/metrics"
	"github.com/mojtermin/MT-BookingPlatform/pkg/simpletxmanager"
	"github.com/mojtermin/MT-BookingPlatform/pkg/txmanager"
)

func main() {
	// Подгружаем .env (секреты ассистента и Redis), отсутствие файла не ошибка
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

	log.Info("Starting MT-BookingPlatform...")
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

	// Применяем миграции
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("Failed to set goose dialect: %v", err)
	}
	if err := goose.Up(db, cfg.Database.MigrationsPath); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Database migrations applied (path=%s)", cfg.Database.MigrationsPath)

	// Подключаемся к Redis (settings store)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password(),
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to ping redis: %v", err)
	}
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	store := settingsStore.NewStore(redisClient)

	// Инициализируем издателя событий (если брокер включен)
	var (
		bookingEvents bookingsService.EventPublisher
		createEvents  createBookingUC.EventPublisher
	)
	if cfg.RabbitMQ.Enabled {
		publisher, err := queue.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, log)
		if err != nil {
			log.Fatal("Failed to connect to rabbitmq: %v", err)
		}
		defer publisher.Close()

		bookingEvents = publisher
		createEvents = publisher
		log.Info("Event publisher connected (exchange=%s)", cfg.RabbitMQ.Exchange)
	} else {
		log.Info("Event publisher disabled")
	}

	// Инициализируем интеграционных клиентов
	cardVault := cardVaultClient.NewClient(
		cfg.CardVault.URL,
		time.Duration(cfg.CardVault.Timeout)*time.Second,
		log,
	)
	assistant := assistantClient.NewClient(
		cfg.Assistant.URL,
		cfg.Assistant.APIKey(),
		cfg.Assistant.Model,
		time.Duration(cfg.Assistant.Timeout)*time.Second,
		cfg.Assistant.RateLimitRPS,
		cfg.Assistant.RateLimitBurst,
		log,
	)
	log.Info("Integration clients initialized (CardVault=%s timeout=%ds, Assistant=%s model=%s)",
		cfg.CardVault.URL, cfg.CardVault.Timeout, cfg.Assistant.URL, cfg.Assistant.Model)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		catalogRepository *catalogRepo.Repository
		billingRepository *billingRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		billingRepository = billingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		bookingRepository = bookingRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		billingRepository = billingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		catalogRepository,
		cardVault,
		bookingEvents,
		log,
	)
	catalogSvc := catalogService.NewService(catalogRepository, log)
	settingsSvc := settingsService.NewService(store, catalogRepository, log)
	billingSvc := billingService.NewService(
		billingRepository,
		store,
		&billingService.RealTimeProvider{},
		rand.New(rand.NewSource(time.Now().UnixNano())),
		log,
	)
	conciergeSvc := conciergeService.NewService(catalogRepository, assistant, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		cardVault,
		createEvents,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	completeBooking := completeBookingHandler.NewHandler(bookingSvc, log)
	markNoShow := markNoShowHandler.NewHandler(bookingSvc, log)
	chargePenalty := chargePenaltyHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getBusinessBookings := getBusinessBookingsHandler.NewHandler(bookingSvc, log)
	listBusinesses := listBusinessesHandler.NewHandler(catalogSvc, log)
	getBusiness := getBusinessHandler.NewHandler(catalogSvc, log)
	addStaff := addStaffHandler.NewHandler(catalogSvc, log)
	removeStaff := removeStaffHandler.NewHandler(catalogSvc, log)
	getOwnerSettings := getOwnerSettingsHandler.NewHandler(settingsSvc, log)
	updateOwnerSettings := updateOwnerSettingsHandler.NewHandler(settingsSvc, log)
	getPlatformConfig := getPlatformConfigHandler.NewHandler(settingsSvc, log)
	updatePlatformConfig := updatePlatformConfigHandler.NewHandler(settingsSvc, log)
	createProforma := createProformaHandler.NewHandler(billingSvc, log)
	getProformaPDF := getProformaPDFHandler.NewHandler(billingSvc, log)
	assistantChat := assistantChatHandler.NewHandler(conciergeSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Витрина каталога
	api.HandleFunc("/businesses", listBusinesses.Handle).Methods(http.MethodGet)
	api.HandleFunc("/businesses/{businessId}", getBusiness.Handle).Methods(http.MethodGet)

	// Доступные слоты для бронирования
	api.HandleFunc("/businesses/{businessId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// AI-консьерж (публичный, с лимитером по IP)
	chatLimiter := middleware.NewRateLimiter(cfg.Assistant.RateLimitRPS, cfg.Assistant.RateLimitBurst)
	api.Handle("/assistant/chat",
		chatLimiter.Middleware(http.HandlerFunc(assistantChat.Handle))).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/complete", completeBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/no-show", markNoShow.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/charge-penalty", chargePenalty.Handle).Methods(http.MethodPost)

	// История бронирований клиента
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Кабинет владельца ---
	protected.HandleFunc("/businesses/{businessId}/bookings", getBusinessBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/businesses/{businessId}/staff", addStaff.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/businesses/{businessId}/staff/{staffId}", removeStaff.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/businesses/{businessId}/settings", getOwnerSettings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/businesses/{businessId}/settings", updateOwnerSettings.Handle).Methods(http.MethodPut)

	// --- Платформа и биллинг ---
	protected.HandleFunc("/platform/config", getPlatformConfig.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/platform/config", updatePlatformConfig.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/billing/proformas", createProforma.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/billing/proformas/{invoiceId}/pdf", getProformaPDF.Handle).Methods(http.MethodGet)

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

	log.Info("Server stopped")
}
