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

	cancelBookingHandler "github.com/bookora/venue-booking-service/internal/api/handlers/cancel_booking"
	checkEligibilityHandler "github.com/bookora/venue-booking-service/internal/api/handlers/check_eligibility"
	createBookingHandler "github.com/bookora/venue-booking-service/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/bookora/venue-booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/bookora/venue-booking-service/internal/api/handlers/get_booking"
	getBookingQuoteHandler "github.com/bookora/venue-booking-service/internal/api/handlers/get_booking_quote"
	getCancellationPolicyHandler "github.com/bookora/venue-booking-service/internal/api/handlers/get_cancellation_policy"
	getUserBookingsHandler "github.com/bookora/venue-booking-service/internal/api/handlers/get_user_bookings"
	getVenueBookingsHandler "github.com/bookora/venue-booking-service/internal/api/handlers/get_venue_bookings"
	getVenueConfigHandler "github.com/bookora/venue-booking-service/internal/api/handlers/get_venue_config"
	getVenueSettingsHandler "github.com/bookora/venue-booking-service/internal/api/handlers/get_venue_settings"
	updateVenueConfigHandler "github.com/bookora/venue-booking-service/internal/api/handlers/update_venue_config"
	updateVenueSettingsHandler "github.com/bookora/venue-booking-service/internal/api/handlers/update_venue_settings"
	"github.com/bookora/venue-booking-service/internal/api/middleware"
	"github.com/bookora/venue-booking-service/internal/config"
	"github.com/bookora/venue-booking-service/internal/domain"
	availabilityCache "github.com/bookora/venue-booking-service/internal/infra/cache"
	availabilityRepo "github.com/bookora/venue-booking-service/internal/infra/storage/availability"
	bookingRepo "github.com/bookora/venue-booking-service/internal/infra/storage/booking"
	settingsRepo "github.com/bookora/venue-booking-service/internal/infra/storage/settings"
	directoryClient "github.com/bookora/venue-booking-service/internal/integrations/directory"
	bookingsService "github.com/bookora/venue-booking-service/internal/service/bookings"
	configService "github.com/bookora/venue-booking-service/internal/service/config"
	checkEligibilityUC "github.com/bookora/venue-booking-service/internal/usecase/check_eligibility"
	createBookingUC "github.com/bookora/venue-booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/bookora/venue-booking-service/internal/usecase/get_available_slots"
	getBookingQuoteUC "github.com/bookora/venue-booking-service/internal/usecase/get_booking_quote"
	"github.com/bookora/venue-booking-service/pkg/dbmetrics"
	"github.com/bookora/venue-booking-service/pkg/logger"
	"github.com/bookora/venue-booking-service/pkg/metrics"
	"github.com/bookora/venue-booking-service/pkg/simpletxmanager"
	"github.com/bookora/venue-booking-service/pkg/txmanager"
)

// AvailabilityProvider источник конфигурации доступности для read-path usecases
type AvailabilityProvider interface {
	GetByVenue(ctx context.Context, venueID int64) (*domain.BusinessAvailability, error)
}

// TxManager интерфейс transaction manager (используется в usecases и сервисах)
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// noopCache заглушка кэша при выключенном redis
type noopCache struct{}

func (noopCache) Invalidate(ctx context.Context, venueID int64) {}

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

	log.Info("Starting venue-booking-service...")
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

	// Инициализируем клиента каталога заведений
	directory := directoryClient.NewClient(
		cfg.Directory.URL,
		time.Duration(cfg.Directory.Timeout)*time.Second,
		log,
	)
	log.Info("Directory client initialized (url=%s, timeout=%ds)", cfg.Directory.URL, cfg.Directory.Timeout)

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		availabilityRepository *availabilityRepo.Repository
		settingsRepository     *settingsRepo.Repository
		bookingRepository      *bookingRepo.Repository
		txMgr                  TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		availabilityRepository = availabilityRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Кэш конфигурации доступности поверх redis (если включен)
	var availabilityProvider AvailabilityProvider = availabilityRepository
	var cacheInvalidator configService.AvailabilityCache = noopCache{}

	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		defer redisClient.Close()

		cache := availabilityCache.NewAvailabilityCache(
			availabilityRepository,
			redisClient,
			time.Duration(cfg.Redis.CacheTTL)*time.Second,
			log,
		)
		availabilityProvider = cache
		cacheInvalidator = cache
		log.Info("Availability cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.CacheTTL)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		settingsRepository,
		directory,
		log,
	)
	configSvc := configService.NewService(
		availabilityRepository,
		settingsRepository,
		cacheInvalidator,
		directory,
		txMgr,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		availabilityProvider,
		bookingRepository,
		directory,
		log,
	)
	checkEligibilityUseCase := checkEligibilityUC.NewUseCase(
		availabilityProvider,
		bookingRepository,
		directory,
		log,
	)
	getBookingQuoteUseCase := getBookingQuoteUC.NewUseCase(
		settingsRepository,
		directory,
		log,
	)
	// create_booking читает конфигурацию через репозиторий, минуя кэш:
	// проверка вместимости должна видеть данные внутри своей транзакции
	createBookingUseCase := createBookingUC.NewUseCase(
		availabilityRepository,
		bookingRepository,
		settingsRepository,
		directory,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	checkEligibility := checkEligibilityHandler.NewHandler(checkEligibilityUseCase, log)
	getBookingQuote := getBookingQuoteHandler.NewHandler(getBookingQuoteUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getCancellationPolicy := getCancellationPolicyHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getVenueBookings := getVenueBookingsHandler.NewHandler(bookingSvc, log)
	getVenueConfig := getVenueConfigHandler.NewHandler(configSvc, log)
	updateVenueConfig := updateVenueConfigHandler.NewHandler(configSvc, log)
	getVenueSettings := getVenueSettingsHandler.NewHandler(configSvc, log)
	updateVenueSettings := updateVenueSettingsHandler.NewHandler(configSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Ограничение частоты запросов
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		r.Use(limiter.Middleware)
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
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

	// Доступные слоты на дату
	api.HandleFunc("/venues/{venueId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Проверка возможности бронирования конкретного слота
	api.HandleFunc("/venues/{venueId}/booking-eligibility",
		checkEligibility.Handle).Methods(http.MethodGet)

	// Расчет платы за бронирование на дату
	api.HandleFunc("/venues/{venueId}/booking-quote",
		getBookingQuote.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Политика отмены бронирования (preview)
	protected.HandleFunc("/bookings/{bookingId}/cancellation-policy",
		getCancellationPolicy.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление заведением (для менеджеров) ---
	// Список бронирований заведения
	protected.HandleFunc("/venues/{venueId}/bookings", getVenueBookings.Handle).Methods(http.MethodGet)

	// Конфигурация доступности
	protected.HandleFunc("/venues/{venueId}/availability", getVenueConfig.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/venues/{venueId}/availability", updateVenueConfig.Handle).Methods(http.MethodPut)

	// Настройки платы и отмены
	protected.HandleFunc("/venues/{venueId}/settings", getVenueSettings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/venues/{venueId}/settings", updateVenueSettings.Handle).Methods(http.MethodPut)

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
