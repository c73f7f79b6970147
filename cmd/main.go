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

	applyBlockHandler "github.com/fitbrawl/GMS-BookingService/internal/api/handlers/apply_block"
	cancelBookingHandler "github.com/fitbrawl/GMS-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/fitbrawl/GMS-BookingService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/fitbrawl/GMS-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/fitbrawl/GMS-BookingService/internal/api/handlers/get_booking"
	getTrainerBookingsHandler "github.com/fitbrawl/GMS-BookingService/internal/api/handlers/get_trainer_bookings"
	getUserBookingsHandler "github.com/fitbrawl/GMS-BookingService/internal/api/handlers/get_user_bookings"
	getWeeklyUsageHandler "github.com/fitbrawl/GMS-BookingService/internal/api/handlers/get_weekly_usage"
	previewBlockHandler "github.com/fitbrawl/GMS-BookingService/internal/api/handlers/preview_block"
	reconcileBlocksHandler "github.com/fitbrawl/GMS-BookingService/internal/api/handlers/reconcile_blocks"
	rescheduleBookingHandler "github.com/fitbrawl/GMS-BookingService/internal/api/handlers/reschedule_booking"
	"github.com/fitbrawl/GMS-BookingService/internal/api/middleware"
	"github.com/fitbrawl/GMS-BookingService/internal/config"
	bookingRepo "github.com/fitbrawl/GMS-BookingService/internal/infra/storage/booking"
	shiftRepo "github.com/fitbrawl/GMS-BookingService/internal/infra/storage/shift"
	trainerRepo "github.com/fitbrawl/GMS-BookingService/internal/infra/storage/trainer"
	notifierClient "github.com/fitbrawl/GMS-BookingService/internal/integrations/notifier"
	bookingsService "github.com/fitbrawl/GMS-BookingService/internal/service/bookings"
	reconcilerService "github.com/fitbrawl/GMS-BookingService/internal/service/reconciler"
	blockTrainerUC "github.com/fitbrawl/GMS-BookingService/internal/usecase/block_trainer"
	createBookingUC "github.com/fitbrawl/GMS-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/fitbrawl/GMS-BookingService/internal/usecase/get_available_slots"
	getWeeklyUsageUC "github.com/fitbrawl/GMS-BookingService/internal/usecase/get_weekly_usage"
	rescheduleBookingUC "github.com/fitbrawl/GMS-BookingService/internal/usecase/reschedule_booking"
	"github.com/fitbrawl/GMS-BookingService/pkg/dbmetrics"
	"github.com/fitbrawl/GMS-BookingService/pkg/logger"
	"github.com/fitbrawl/GMS-BookingService/pkg/metrics"
	"github.com/fitbrawl/GMS-BookingService/pkg/simpletxmanager"
	"github.com/fitbrawl/GMS-BookingService/pkg/txmanager"
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

	log.Info("Starting GMS-BookingService...")
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

	// Инициализируем клиент сервиса уведомлений
	notifier := notifierClient.NewClient(
		cfg.Notifier.URL,
		time.Duration(cfg.Notifier.Timeout)*time.Second,
		log,
	)
	log.Info("Notifier client initialized (url=%s, timeout=%ds)", cfg.Notifier.URL, cfg.Notifier.Timeout)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		shiftRepository   *shiftRepo.Repository
		trainerRepository *trainerRepo.Repository
		txMgr             TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		shiftRepository = shiftRepo.NewRepository(wrappedDB)
		trainerRepository = trainerRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		shiftRepository = shiftRepo.NewRepository(db)
		trainerRepository = trainerRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	timeProvider := &getAvailableSlotsUC.RealTimeProvider{}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	var reconcilerMetrics reconcilerService.MetricsRecorder
	if cfg.Metrics.Enabled {
		reconcilerMetrics = metricsCollector
	}
	reconcilerSvc := reconcilerService.NewService(
		bookingRepository,
		notifier,
		reconcilerMetrics,
		timeProvider,
		log,
		cfg.Booking.ReconcileBatchSize,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		shiftRepository,
		trainerRepository,
		timeProvider,
		log,
		cfg.Booking.SlotDurationMinutes,
	)

	getWeeklyUsageUseCase := getWeeklyUsageUC.NewUseCase(
		bookingRepository,
		log,
		cfg.Booking.WeeklyCapMinutes,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		shiftRepository,
		trainerRepository,
		txMgr,
		timeProvider,
		log,
		cfg.Booking.SlotDurationMinutes,
		cfg.Booking.WeeklyCapMinutes,
	)

	blockTrainerUseCase := blockTrainerUC.NewUseCase(
		bookingRepository,
		trainerRepository,
		notifier,
		timeProvider,
		log,
		cfg.Booking.BlockGracePeriodHours,
	)

	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		bookingRepository,
		shiftRepository,
		txMgr,
		timeProvider,
		log,
		cfg.Booking.SlotDurationMinutes,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getWeeklyUsage := getWeeklyUsageHandler.NewHandler(getWeeklyUsageUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	previewBlock := previewBlockHandler.NewHandler(blockTrainerUseCase, log)
	applyBlock := applyBlockHandler.NewHandler(blockTrainerUseCase, log)
	getTrainerBookings := getTrainerBookingsHandler.NewHandler(bookingSvc, log)
	reconcileBlocks := reconcileBlocksHandler.NewHandler(reconcilerSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
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

	// Доступные слоты тренера на дату
	api.HandleFunc("/trainers/{trainerId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

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

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Перенос заблокированного бронирования
	protected.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Недельная загрузка пользователя
	protected.HandleFunc("/users/{userId}/weekly-usage", getWeeklyUsage.Handle).Methods(http.MethodGet)

	// --- Управление тренерами (для администраторов) ---
	// Предпросмотр блокировки окна тренера
	protected.HandleFunc("/trainers/{trainerId}/block/preview", previewBlock.Handle).Methods(http.MethodPost)

	// Применение блокировки окна тренера
	protected.HandleFunc("/trainers/{trainerId}/block", applyBlock.Handle).Methods(http.MethodPost)

	// Расписание тренера за период
	protected.HandleFunc("/trainers/{trainerId}/bookings", getTrainerBookings.Handle).Methods(http.MethodGet)

	// Ручной запуск реконсилера просроченных блокировок
	protected.HandleFunc("/admin/reconcile-blocks", reconcileBlocks.Handle).Methods(http.MethodPost)

	// Запускаем фоновый реконсилер
	reconcilerCtx, stopReconciler := context.WithCancel(context.Background())
	go reconcilerSvc.Run(reconcilerCtx, time.Duration(cfg.Booking.ReconcileIntervalMinutes)*time.Minute)

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

	// Останавливаем фоновый реконсилер
	stopReconciler()

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
