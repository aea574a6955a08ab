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

	aiChatHandler "github.com/m04kA/booking-platform/internal/api/handlers/ai_chat"
	blockDateHandler "github.com/m04kA/booking-platform/internal/api/handlers/block_date"
	cancelBookingHandler "github.com/m04kA/booking-platform/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/booking-platform/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/booking-platform/internal/api/handlers/create_booking"
	createFAQHandler "github.com/m04kA/booking-platform/internal/api/handlers/create_faq"
	createProviderHandler "github.com/m04kA/booking-platform/internal/api/handlers/create_provider"
	createReviewHandler "github.com/m04kA/booking-platform/internal/api/handlers/create_review"
	createServiceHandler "github.com/m04kA/booking-platform/internal/api/handlers/create_service"
	deleteFAQHandler "github.com/m04kA/booking-platform/internal/api/handlers/delete_faq"
	deleteReviewHandler "github.com/m04kA/booking-platform/internal/api/handlers/delete_review"
	deleteServiceHandler "github.com/m04kA/booking-platform/internal/api/handlers/delete_service"
	getAvailabilityHandler "github.com/m04kA/booking-platform/internal/api/handlers/get_availability"
	getAvailableSlotsHandler "github.com/m04kA/booking-platform/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/booking-platform/internal/api/handlers/get_booking"
	getBookingNotificationsHandler "github.com/m04kA/booking-platform/internal/api/handlers/get_booking_notifications"
	getBusinessInfoHandler "github.com/m04kA/booking-platform/internal/api/handlers/get_business_info"
	getEmailConfigHandler "github.com/m04kA/booking-platform/internal/api/handlers/get_email_config"
	getGuestBookingsHandler "github.com/m04kA/booking-platform/internal/api/handlers/get_guest_bookings"
	getProviderHandler "github.com/m04kA/booking-platform/internal/api/handlers/get_provider"
	getProviderBookingsHandler "github.com/m04kA/booking-platform/internal/api/handlers/get_provider_bookings"
	getRatingHandler "github.com/m04kA/booking-platform/internal/api/handlers/get_rating"
	getUserBookingsHandler "github.com/m04kA/booking-platform/internal/api/handlers/get_user_bookings"
	listBlockedDatesHandler "github.com/m04kA/booking-platform/internal/api/handlers/list_blocked_dates"
	listFAQsHandler "github.com/m04kA/booking-platform/internal/api/handlers/list_faqs"
	listReviewsHandler "github.com/m04kA/booking-platform/internal/api/handlers/list_reviews"
	listServicesHandler "github.com/m04kA/booking-platform/internal/api/handlers/list_services"
	setAvailabilityHandler "github.com/m04kA/booking-platform/internal/api/handlers/set_availability"
	unblockDateHandler "github.com/m04kA/booking-platform/internal/api/handlers/unblock_date"
	updateBookingStatusHandler "github.com/m04kA/booking-platform/internal/api/handlers/update_booking_status"
	updateEmailConfigHandler "github.com/m04kA/booking-platform/internal/api/handlers/update_email_config"
	updateFAQHandler "github.com/m04kA/booking-platform/internal/api/handlers/update_faq"
	updateProviderHandler "github.com/m04kA/booking-platform/internal/api/handlers/update_provider"
	updateReviewHandler "github.com/m04kA/booking-platform/internal/api/handlers/update_review"
	updateServiceHandler "github.com/m04kA/booking-platform/internal/api/handlers/update_service"
	upsertBusinessInfoHandler "github.com/m04kA/booking-platform/internal/api/handlers/upsert_business_info"
	"github.com/m04kA/booking-platform/internal/api/middleware"
	"github.com/m04kA/booking-platform/internal/config"
	availabilityRepo "github.com/m04kA/booking-platform/internal/infra/storage/availability"
	bookingRepo "github.com/m04kA/booking-platform/internal/infra/storage/booking"
	businessInfoRepo "github.com/m04kA/booking-platform/internal/infra/storage/businessinfo"
	catalogRepo "github.com/m04kA/booking-platform/internal/infra/storage/catalog"
	faqRepo "github.com/m04kA/booking-platform/internal/infra/storage/faq"
	notificationRepo "github.com/m04kA/booking-platform/internal/infra/storage/notification"
	providerRepo "github.com/m04kA/booking-platform/internal/infra/storage/provider"
	reviewRepo "github.com/m04kA/booking-platform/internal/infra/storage/review"
	userRepo "github.com/m04kA/booking-platform/internal/infra/storage/user"
	"github.com/m04kA/booking-platform/internal/integrations/llm"
	"github.com/m04kA/booking-platform/internal/integrations/mailer"
	"github.com/m04kA/booking-platform/internal/jobs/reminders"
	availabilityService "github.com/m04kA/booking-platform/internal/service/availability"
	bookingsService "github.com/m04kA/booking-platform/internal/service/bookings"
	businessInfoService "github.com/m04kA/booking-platform/internal/service/businessinfo"
	catalogService "github.com/m04kA/booking-platform/internal/service/catalog"
	faqsService "github.com/m04kA/booking-platform/internal/service/faqs"
	notificationsService "github.com/m04kA/booking-platform/internal/service/notifications"
	providersService "github.com/m04kA/booking-platform/internal/service/providers"
	reviewsService "github.com/m04kA/booking-platform/internal/service/reviews"
	aiChatUC "github.com/m04kA/booking-platform/internal/usecase/ai_chat"
	createBookingUC "github.com/m04kA/booking-platform/internal/usecase/create_booking"
	"github.com/m04kA/booking-platform/pkg/credvault"
	"github.com/m04kA/booking-platform/pkg/dbmetrics"
	"github.com/m04kA/booking-platform/pkg/logger"
	"github.com/m04kA/booking-platform/pkg/metrics"
	"github.com/m04kA/booking-platform/pkg/txmanager"
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

	log.Info("Starting booking-platform...")
	log.Info("Configuration loaded from config.toml")

	location, err := cfg.Server.Location()
	if err != nil {
		log.Fatal("Invalid platform timezone %q: %v", cfg.Server.Timezone, err)
	}
	log.Info("Platform timezone: %s", location)

	// Инициализируем метрики (если включены)
	// nil коллектор безопасен: все методы metrics.Metrics ничего не делают
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

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	availabilityRepository := availabilityRepo.NewRepository(wrappedDB)
	providerRepository := providerRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	userRepository := userRepo.NewRepository(wrappedDB)
	notificationRepository := notificationRepo.NewRepository(wrappedDB)
	faqRepository := faqRepo.NewRepository(wrappedDB)
	businessInfoRepository := businessInfoRepo.NewRepository(wrappedDB)
	reviewRepository := reviewRepo.NewRepository(wrappedDB)

	// Шифрование SMTP паролей провайдеров
	vault, err := credvault.New(cfg.Auth.EncryptionKey, cfg.Auth.JWTSecret)
	if err != nil {
		log.Fatal("Failed to initialize credential vault: %v", err)
	}

	// Платформенный отправитель писем
	var platformSender notificationsService.Sender
	if cfg.Email.ResendAPIKey != "" {
		platformSender = mailer.NewResendSender(cfg.Email.ResendAPIKey, cfg.Email.From)
		log.Info("Platform email sender: resend (from=%s)", cfg.Email.From)
	} else {
		log.Warn("RESEND_API_KEY is not set, emails without provider SMTP are only logged")
	}

	// Инициализируем сервисы
	notificationSvc := notificationsService.NewService(
		notificationRepository,
		userRepository,
		providerRepository,
		vault,
		platformSender,
		location,
		metricsCollector,
		log,
	)
	availabilitySvc := availabilityService.NewService(
		availabilityRepository,
		bookingRepository,
		providerRepository,
		txMgr,
		location,
		log,
	)
	providerSvc := providersService.NewService(providerRepository, vault, log)
	catalogSvc := catalogService.NewService(catalogRepository, providerRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, notificationSvc, log)
	faqSvc := faqsService.NewService(faqRepository, providerRepository, log)
	businessInfoSvc := businessInfoService.NewService(businessInfoRepository, providerRepository, log)
	reviewSvc := reviewsService.NewService(reviewRepository, bookingRepository, log)

	// Ассистент (опционально)
	var assistant aiChatUC.Assistant
	switch cfg.AI.Backend {
	case llm.BackendOpenAI:
		client, err := llm.NewOpenAIClient(cfg.AI.BaseURL, cfg.AI.APIKey(), cfg.AI.Model,
			time.Duration(cfg.AI.Timeout)*time.Second)
		if err != nil {
			log.Warn("AI chat disabled: %v", err)
			break
		}
		assistant = client
	case llm.BackendGemini:
		client, err := llm.NewGeminiClient(context.Background(), cfg.AI.APIKey(), cfg.AI.Model)
		if err != nil {
			log.Warn("AI chat disabled: %v", err)
			break
		}
		defer client.Close()
		assistant = client
	default:
		log.Info("AI chat backend is not configured")
	}
	if assistant != nil {
		log.Info("AI chat backend: %s", assistant.Name())
	}

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		availabilitySvc,
		notificationSvc,
		txMgr,
		metricsCollector,
		log,
	)
	aiChatUseCase := aiChatUC.NewUseCase(
		providerRepository,
		availabilityRepository,
		catalogRepository,
		businessInfoRepository,
		faqRepository,
		assistant,
		metricsCollector,
		log,
	)

	// Задача напоминаний
	var reminderJob *reminders.Job
	if cfg.Reminders.Enabled {
		reminderJob = reminders.NewJob(
			bookingRepository,
			notificationSvc,
			time.Duration(cfg.Reminders.LeadHours)*time.Hour,
			location,
			log,
		)
		if err := reminderJob.Start(cfg.Reminders.Schedule); err != nil {
			log.Fatal("Failed to start reminders job: %v", err)
		}
	}

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getProviderBookings := getProviderBookingsHandler.NewHandler(bookingSvc, location, log)
	getGuestBookings := getGuestBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getBookingNotifications := getBookingNotificationsHandler.NewHandler(bookingSvc, log)

	getAvailableSlots := getAvailableSlotsHandler.NewHandler(availabilitySvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(availabilitySvc, log)
	setAvailability := setAvailabilityHandler.NewHandler(availabilitySvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	blockDate := blockDateHandler.NewHandler(availabilitySvc, log)
	listBlockedDates := listBlockedDatesHandler.NewHandler(availabilitySvc, log)
	unblockDate := unblockDateHandler.NewHandler(availabilitySvc, log)

	createProvider := createProviderHandler.NewHandler(providerSvc, log)
	getProvider := getProviderHandler.NewHandler(providerSvc, log)
	updateProvider := updateProviderHandler.NewHandler(providerSvc, log)
	getEmailConfig := getEmailConfigHandler.NewHandler(providerSvc, log)
	updateEmailConfig := updateEmailConfigHandler.NewHandler(providerSvc, log)

	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)

	listFAQs := listFAQsHandler.NewHandler(faqSvc, log)
	createFAQ := createFAQHandler.NewHandler(faqSvc, log)
	updateFAQ := updateFAQHandler.NewHandler(faqSvc, log)
	deleteFAQ := deleteFAQHandler.NewHandler(faqSvc, log)
	getBusinessInfo := getBusinessInfoHandler.NewHandler(businessInfoSvc, log)
	upsertBusinessInfo := upsertBusinessInfoHandler.NewHandler(businessInfoSvc, log)

	createReview := createReviewHandler.NewHandler(reviewSvc, log)
	updateReview := updateReviewHandler.NewHandler(reviewSvc, log)
	deleteReview := deleteReviewHandler.NewHandler(reviewSvc, log)
	listReviews := listReviewsHandler.NewHandler(reviewSvc, log)
	getRating := getRatingHandler.NewHandler(reviewSvc, log)

	aiChat := aiChatHandler.NewHandler(aiChatUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Ограничение частоты для анонимных запросов, которые пишут или стоят денег
	limited := func(h http.HandlerFunc) http.Handler { return h }
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, cfg.RateLimit.TrustProxy, log)
		limited = func(h http.HandlerFunc) http.Handler { return limiter.Middleware(h) }
		log.Info("Rate limit enabled: %.0f req/min, burst=%d, trust_proxy=%t", cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, cfg.RateLimit.TrustProxy)
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступность провайдера
	api.HandleFunc("/availability/{providerId}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/{providerId}/check", checkAvailability.Handle).Methods(http.MethodGet)

	// Каталог и ассистент
	api.HandleFunc("/public/providers/{providerId}/services", listServices.HandlePublic).Methods(http.MethodGet)
	api.Handle("/public/providers/{providerId}/chat", limited(aiChat.Handle)).Methods(http.MethodPost)

	// Отзывы
	api.HandleFunc("/reviews/provider/{providerId}", listReviews.HandleProvider).Methods(http.MethodGet)
	api.HandleFunc("/reviews/provider/{providerId}/rating", getRating.HandleProvider).Methods(http.MethodGet)
	api.HandleFunc("/reviews/service/{serviceId}", listReviews.HandleService).Methods(http.MethodGet)
	api.HandleFunc("/reviews/service/{serviceId}/rating", getRating.HandleService).Methods(http.MethodGet)

	// Гостевые бронирования
	api.Handle("/public/bookings", limited(createBooking.HandleGuest)).Methods(http.MethodPost)
	api.Handle("/public/bookings", limited(getGuestBookings.Handle)).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (Authorization: Bearer <jwt>)
	// ============================================================

	auth := middleware.NewAuth(cfg.Auth.JWTSecret, log)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(auth.Authenticate)

	provider := func(h http.HandlerFunc) http.Handler { return middleware.RequireProvider(h) }
	customer := func(h http.HandlerFunc) http.Handler { return middleware.RequireCustomer(h) }

	// --- Бронирования ---
	protected.Handle("/bookings", customer(createBooking.HandleCustomer)).Methods(http.MethodPost)
	protected.Handle("/bookings/my", customer(getUserBookings.Handle)).Methods(http.MethodGet)
	protected.Handle("/bookings/provider", provider(getProviderBookings.Handle)).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.Handle("/bookings/{bookingId}/cancel", customer(cancelBooking.Handle)).Methods(http.MethodPut, http.MethodPatch)
	protected.Handle("/bookings/{bookingId}/status", provider(updateBookingStatus.Handle)).Methods(http.MethodPut)
	protected.Handle("/bookings/{bookingId}/notifications", provider(getBookingNotifications.Handle)).Methods(http.MethodGet)

	// --- Расписание провайдера ---
	protected.Handle("/availability", provider(getAvailability.Handle)).Methods(http.MethodGet)
	protected.Handle("/availability", provider(setAvailability.Handle)).Methods(http.MethodPut, http.MethodPost)
	protected.Handle("/availability/blocked", provider(listBlockedDates.Handle)).Methods(http.MethodGet)
	protected.Handle("/availability/blocked", provider(blockDate.Handle)).Methods(http.MethodPost)
	protected.Handle("/availability/block", provider(blockDate.Handle)).Methods(http.MethodPost)
	protected.Handle("/availability/blocked/{id}", provider(unblockDate.Handle)).Methods(http.MethodDelete)

	// --- Профиль провайдера ---
	protected.Handle("/providers", provider(createProvider.Handle)).Methods(http.MethodPost)
	protected.Handle("/providers/me", provider(getProvider.Handle)).Methods(http.MethodGet)
	protected.Handle("/providers/me", provider(updateProvider.Handle)).Methods(http.MethodPut)
	protected.Handle("/providers/me/email-config", provider(getEmailConfig.Handle)).Methods(http.MethodGet)
	protected.Handle("/providers/me/email-config", provider(updateEmailConfig.Handle)).Methods(http.MethodPut)

	// --- Каталог провайдера ---
	protected.Handle("/services", provider(listServices.HandleOwn)).Methods(http.MethodGet)
	protected.Handle("/services", provider(createService.Handle)).Methods(http.MethodPost)
	protected.Handle("/services/{serviceId}", provider(updateService.Handle)).Methods(http.MethodPut)
	protected.Handle("/services/{serviceId}", provider(deleteService.Handle)).Methods(http.MethodDelete)

	// --- FAQ и информация о бизнесе ---
	protected.Handle("/faqs", provider(listFAQs.Handle)).Methods(http.MethodGet)
	protected.Handle("/faqs", provider(createFAQ.Handle)).Methods(http.MethodPost)
	protected.Handle("/faqs/{id}", provider(updateFAQ.Handle)).Methods(http.MethodPut)
	protected.Handle("/faqs/{id}", provider(deleteFAQ.Handle)).Methods(http.MethodDelete)
	protected.Handle("/business-info/me", provider(getBusinessInfo.Handle)).Methods(http.MethodGet)
	protected.Handle("/business-info", provider(upsertBusinessInfo.Handle)).Methods(http.MethodPost, http.MethodPut)

	// --- Отзывы покупателя ---
	protected.Handle("/reviews", customer(createReview.Handle)).Methods(http.MethodPost)
	protected.Handle("/reviews/{id}", customer(updateReview.Handle)).Methods(http.MethodPut)
	protected.Handle("/reviews/{id}", customer(deleteReview.Handle)).Methods(http.MethodDelete)

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
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if reminderJob != nil {
		reminderJob.Stop(shutdownCtx)
		log.Info("Reminders job stopped")
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
