package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	acceptOrderHandler "github.com/m04kA/EuroAsia-BookingService/internal/api/handlers/accept_order"
	createNewsHandler "github.com/m04kA/EuroAsia-BookingService/internal/api/handlers/create_news"
	deleteCalendarDayHandler "github.com/m04kA/EuroAsia-BookingService/internal/api/handlers/delete_calendar_day"
	deleteHighlightHandler "github.com/m04kA/EuroAsia-BookingService/internal/api/handlers/delete_highlight"
	deleteNewsHandler "github.com/m04kA/EuroAsia-BookingService/internal/api/handlers/delete_news"
	getCalendarHandler "github.com/m04kA/EuroAsia-BookingService/internal/api/handlers/get_calendar"
	getCalendarRangeHandler "github.com/m04kA/EuroAsia-BookingService/internal/api/handlers/get_calendar_range"
	getHighlightHandler "github.com/m04kA/EuroAsia-BookingService/internal/api/handlers/get_highlight"
	getNewsHandler "github.com/m04kA/EuroAsia-BookingService/internal/api/handlers/get_news"
	getOrderHandler "github.com/m04kA/EuroAsia-BookingService/internal/api/handlers/get_order"
	getPastBusyHandler "github.com/m04kA/EuroAsia-BookingService/internal/api/handlers/get_past_busy"
	healthHandler "github.com/m04kA/EuroAsia-BookingService/internal/api/handlers/health"
	listAllNewsHandler "github.com/m04kA/EuroAsia-BookingService/internal/api/handlers/list_all_news"
	listNewsHandler "github.com/m04kA/EuroAsia-BookingService/internal/api/handlers/list_news"
	listOrdersHandler "github.com/m04kA/EuroAsia-BookingService/internal/api/handlers/list_orders"
	loginHandler "github.com/m04kA/EuroAsia-BookingService/internal/api/handlers/login"
	markBusyHandler "github.com/m04kA/EuroAsia-BookingService/internal/api/handlers/mark_busy"
	rejectOrderHandler "github.com/m04kA/EuroAsia-BookingService/internal/api/handlers/reject_order"
	submitOrderHandler "github.com/m04kA/EuroAsia-BookingService/internal/api/handlers/submit_order"
	toggleNewsPublishHandler "github.com/m04kA/EuroAsia-BookingService/internal/api/handlers/toggle_news_publish"
	updateNewsHandler "github.com/m04kA/EuroAsia-BookingService/internal/api/handlers/update_news"
	upsertHighlightHandler "github.com/m04kA/EuroAsia-BookingService/internal/api/handlers/upsert_highlight"
	verifyHandler "github.com/m04kA/EuroAsia-BookingService/internal/api/handlers/verify"
	"github.com/m04kA/EuroAsia-BookingService/internal/api/middleware"
	"github.com/m04kA/EuroAsia-BookingService/internal/config"
	"github.com/m04kA/EuroAsia-BookingService/internal/infra/filestore"
	adminRepo "github.com/m04kA/EuroAsia-BookingService/internal/infra/storage/admin"
	calendarRepo "github.com/m04kA/EuroAsia-BookingService/internal/infra/storage/calendar"
	highlightRepo "github.com/m04kA/EuroAsia-BookingService/internal/infra/storage/highlight"
	"github.com/m04kA/EuroAsia-BookingService/internal/infra/storage/migrations"
	newsRepo "github.com/m04kA/EuroAsia-BookingService/internal/infra/storage/news"
	orderRepo "github.com/m04kA/EuroAsia-BookingService/internal/infra/storage/order"
	"github.com/m04kA/EuroAsia-BookingService/internal/integrations/mailer"
	"github.com/m04kA/EuroAsia-BookingService/internal/integrations/telegram"
	"github.com/m04kA/EuroAsia-BookingService/internal/scheduler"
	authService "github.com/m04kA/EuroAsia-BookingService/internal/service/auth"
	authModels "github.com/m04kA/EuroAsia-BookingService/internal/service/auth/models"
	calendarService "github.com/m04kA/EuroAsia-BookingService/internal/service/calendar"
	highlightsService "github.com/m04kA/EuroAsia-BookingService/internal/service/highlights"
	newsService "github.com/m04kA/EuroAsia-BookingService/internal/service/news"
	"github.com/m04kA/EuroAsia-BookingService/internal/service/notifications"
	ordersService "github.com/m04kA/EuroAsia-BookingService/internal/service/orders"
	acceptOrderUC "github.com/m04kA/EuroAsia-BookingService/internal/usecase/accept_order"
	highlightsReminderUC "github.com/m04kA/EuroAsia-BookingService/internal/usecase/highlights_reminder"
	rejectOrderUC "github.com/m04kA/EuroAsia-BookingService/internal/usecase/reject_order"
	submitOrderUC "github.com/m04kA/EuroAsia-BookingService/internal/usecase/submit_order"
	"github.com/m04kA/EuroAsia-BookingService/pkg/dbmetrics"
	"github.com/m04kA/EuroAsia-BookingService/pkg/logger"
	"github.com/m04kA/EuroAsia-BookingService/pkg/metrics"
	"github.com/m04kA/EuroAsia-BookingService/pkg/token"
	"github.com/m04kA/EuroAsia-BookingService/pkg/txmanager"
)

const (
	configPath         = "config.toml"
	dbStatsInterval    = 15 * time.Second
	dispatcherDrainMax = 30 * time.Second
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting EuroAsia-BookingService...")
	log.Info("Configuration loaded from %s", configPath)

	// Коллектор метрик нужен всегда (БД, usecases, уведомления),
	// наружу /metrics отдаётся только при cfg.Metrics.Enabled
	metricsCollector := metrics.New(cfg.Metrics.ServiceName)
	stopMetricsCh := make(chan struct{})

	// Подключаемся к базе данных
	rawDB, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer rawDB.Close()

	// Настраиваем connection pool
	rawDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	rawDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	rawDB.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := rawDB.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	db := dbmetrics.Wrap(rawDB, metricsCollector)
	go db.CollectStats(dbStatsInterval, stopMetricsCh)

	// Применяем миграции
	migrateCtx, migrateCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := migrations.Apply(migrateCtx, db, log); err != nil {
		migrateCancel()
		log.Fatal("Failed to apply migrations: %v", err)
	}
	migrateCancel()

	// Инициализируем репозитории
	txMgr := txmanager.NewTransactionManager(db)
	orderRepository := orderRepo.NewRepository(db)
	calendarRepository := calendarRepo.NewRepository(db)
	highlightRepository := highlightRepo.NewRepository(db)
	newsRepository := newsRepo.NewRepository(db)
	adminRepository := adminRepo.NewRepository(db)

	// Хранилище загруженных файлов
	store, err := filestore.New(cfg.Uploads.Dir, cfg.Uploads.URLPrefix, cfg.Uploads.MaxSizeBytes())
	if err != nil {
		log.Fatal("Failed to initialize upload store: %v", err)
	}
	log.Info("Uploads stored in %s, served at %s", cfg.Uploads.Dir, store.URLPrefix())

	// Каналы уведомлений
	var sinks []notifications.Sink
	if cfg.Telegram.Enabled {
		sinks = append(sinks, telegram.NewClient(
			cfg.Telegram.APIURL,
			cfg.Telegram.BotToken,
			cfg.Telegram.ChatID,
			time.Duration(cfg.Telegram.Timeout)*time.Second,
		))
		log.Info("Telegram notifications enabled (chat=%s)", cfg.Telegram.ChatID)
	}
	if cfg.Mail.Enabled {
		sinks = append(sinks, mailer.NewMailer(
			cfg.Mail.Host,
			cfg.Mail.Port,
			cfg.Mail.User,
			cfg.Mail.Password,
			cfg.Mail.From,
			cfg.Mail.To,
		))
		log.Info("Email notifications enabled (host=%s, recipients=%d)", cfg.Mail.Host, len(cfg.Mail.To))
	}
	if len(sinks) == 0 {
		log.Warn("No notification sinks enabled, events will only be logged")
	}

	dispatcher := notifications.NewDispatcher(
		sinks,
		metricsCollector,
		log,
		notifications.DefaultBufferSize,
		notifications.DefaultSendTimeout,
	)
	go dispatcher.Run(context.Background())

	// Инициализируем сервисы
	tokens, err := token.NewManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)
	if err != nil {
		log.Fatal("Failed to initialize token manager: %v", err)
	}
	authSvc := authService.NewService(adminRepository, tokens, log)
	calendarSvc := calendarService.NewService(calendarRepository, highlightRepository, store, txMgr, log)
	highlightsSvc := highlightsService.NewService(highlightRepository, store, log)
	newsSvc := newsService.NewService(newsRepository, store, log)
	ordersSvc := ordersService.NewService(orderRepository, log)

	// Заводим администраторов из конфигурации
	seeds := make([]authModels.AdminSeed, 0, len(cfg.Auth.Admins))
	for _, admin := range cfg.Auth.Admins {
		seeds = append(seeds, authModels.AdminSeed{
			Username: admin.Username,
			Password: admin.Password,
			FullName: admin.FullName,
		})
	}
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := authSvc.EnsureAdmins(seedCtx, seeds); err != nil {
		seedCancel()
		log.Fatal("Failed to seed admins: %v", err)
	}
	seedCancel()

	// Инициализируем use cases
	submitOrderUseCase := submitOrderUC.NewUseCase(
		orderRepository,
		calendarRepository,
		txMgr,
		dispatcher,
		metricsCollector,
		log,
	)
	acceptOrderUseCase := acceptOrderUC.NewUseCase(
		orderRepository,
		calendarRepository,
		txMgr,
		dispatcher,
		metricsCollector,
		log,
	)
	rejectOrderUseCase := rejectOrderUC.NewUseCase(
		orderRepository,
		calendarRepository,
		txMgr,
		dispatcher,
		metricsCollector,
		log,
	)
	reminderUseCase := highlightsReminderUC.NewUseCase(
		calendarRepository,
		dispatcher,
		cfg.Reminder.Limit,
		log,
	)

	// Ежедневное напоминание о хайлайтах
	schedulerCtx, schedulerCancel := context.WithCancel(context.Background())
	var schedulerWG sync.WaitGroup
	if cfg.Reminder.Enabled {
		reminder, err := scheduler.NewDaily(
			"highlights-reminder",
			cfg.Reminder.Hour,
			cfg.Reminder.Minute,
			func(ctx context.Context) error {
				_, err := reminderUseCase.Execute(ctx)
				return err
			},
			log,
		)
		if err != nil {
			log.Fatal("Failed to schedule highlights reminder: %v", err)
		}
		schedulerWG.Add(1)
		go func() {
			defer schedulerWG.Done()
			reminder.Run(schedulerCtx)
		}()
		log.Info("Highlights reminder scheduled at %02d:%02d", cfg.Reminder.Hour, cfg.Reminder.Minute)
	}

	// Инициализируем handlers
	maxUpload := cfg.Uploads.MaxSizeBytes()

	health := healthHandler.NewHandler(rawDB, log)
	login := loginHandler.NewHandler(authSvc, log)
	verify := verifyHandler.NewHandler(log)

	submitOrder := submitOrderHandler.NewHandler(submitOrderUseCase, log)
	listOrders := listOrdersHandler.NewHandler(ordersSvc, log)
	getOrder := getOrderHandler.NewHandler(ordersSvc, log)
	acceptOrder := acceptOrderHandler.NewHandler(acceptOrderUseCase, log)
	rejectOrder := rejectOrderHandler.NewHandler(rejectOrderUseCase, log)

	getCalendar := getCalendarHandler.NewHandler(calendarSvc, log)
	getCalendarRange := getCalendarRangeHandler.NewHandler(calendarSvc, log)
	getPastBusy := getPastBusyHandler.NewHandler(calendarSvc, log)
	markBusy := markBusyHandler.NewHandler(calendarSvc, log)
	deleteCalendarDay := deleteCalendarDayHandler.NewHandler(calendarSvc, log)

	getHighlight := getHighlightHandler.NewHandler(highlightsSvc, log)
	upsertHighlight := upsertHighlightHandler.NewHandler(highlightsSvc, maxUpload, log)
	deleteHighlight := deleteHighlightHandler.NewHandler(highlightsSvc, log)

	listNews := listNewsHandler.NewHandler(newsSvc, log)
	listAllNews := listAllNewsHandler.NewHandler(newsSvc, log)
	getNews := getNewsHandler.NewHandler(newsSvc, log)
	createNews := createNewsHandler.NewHandler(newsSvc, maxUpload, log)
	updateNews := updateNewsHandler.NewHandler(newsSvc, maxUpload, log)
	deleteNews := deleteNewsHandler.NewHandler(newsSvc, log)
	toggleNewsPublish := toggleNewsPublishHandler.NewHandler(newsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Загруженные изображения
	r.PathPrefix(store.URLPrefix()+"/").Handler(store.Handler()).Methods(http.MethodGet, http.MethodHead)

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/health", health.Handle).Methods(http.MethodGet)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// Заявка на дату
	api.HandleFunc("/orders", submitOrder.Handle).Methods(http.MethodPost)

	// Календарь
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar/range", getCalendarRange.Handle).Methods(http.MethodGet)

	// Хайлайты дня
	api.HandleFunc("/highlights/{date}", getHighlight.Handle).Methods(http.MethodGet)

	// Опубликованные новости
	api.HandleFunc("/news", listNews.Handle).Methods(http.MethodGet)
	api.HandleFunc("/news/{id:[0-9]+}", getNews.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Authorization: Bearer <token>)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authSvc, log))

	protected.HandleFunc("/auth/verify", verify.Handle).Methods(http.MethodGet)

	// --- Заявки ---
	protected.HandleFunc("/orders", listOrders.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/orders/{id:[0-9]+}", getOrder.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/orders/{id:[0-9]+}/accept", acceptOrder.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/orders/{id:[0-9]+}/reject", rejectOrder.Handle).Methods(http.MethodPut)

	// --- Календарь ---
	protected.HandleFunc("/calendar/past-busy", getPastBusy.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/calendar/busy", markBusy.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/calendar/{id:[0-9]+}", deleteCalendarDay.Handle).Methods(http.MethodDelete)

	// --- Хайлайты ---
	protected.HandleFunc("/highlights", upsertHighlight.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/highlights/{id:[0-9]+}", deleteHighlight.Handle).Methods(http.MethodDelete)

	// --- Новости ---
	protected.HandleFunc("/news/all", listAllNews.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/news", createNews.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/news/{id:[0-9]+}", updateNews.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/news/{id:[0-9]+}", deleteNews.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/news/{id:[0-9]+}/toggle-publish", toggleNewsPublish.Handle).Methods(http.MethodPatch)

	// CORS и recovery оборачивают весь роутер, чтобы preflight не упирался в 405
	handler := middleware.Recovery(log)(middleware.CORS(cfg.Server.AllowedOrigins)(r))

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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

	// 1. HTTP: новых заявок больше не будет
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// 2. Планировщик
	schedulerCancel()
	schedulerWG.Wait()
	log.Info("Scheduler stopped")

	// 3. Диспетчер доставляет накопленные уведомления
	dispatcher.Close()
	select {
	case <-dispatcher.Done():
		log.Info("Notification queue drained")
	case <-time.After(dispatcherDrainMax):
		log.Warn("Notification queue drain timed out after %s", dispatcherDrainMax)
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
}
