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

	cancelBookingHandler "github.com/CSE-4113-IP-Lab/booking-service/internal/api/handlers/cancel_booking"
	createBatchBookingHandler "github.com/CSE-4113-IP-Lab/booking-service/internal/api/handlers/create_batch_booking"
	createBookingHandler "github.com/CSE-4113-IP-Lab/booking-service/internal/api/handlers/create_booking"
	createRoomHandler "github.com/CSE-4113-IP-Lab/booking-service/internal/api/handlers/create_room"
	deleteRoomHandler "github.com/CSE-4113-IP-Lab/booking-service/internal/api/handlers/delete_room"
	getBookingHandler "github.com/CSE-4113-IP-Lab/booking-service/internal/api/handlers/get_booking"
	getRoomHandler "github.com/CSE-4113-IP-Lab/booking-service/internal/api/handlers/get_room"
	getRoomScheduleHandler "github.com/CSE-4113-IP-Lab/booking-service/internal/api/handlers/get_room_schedule"
	getUserBookingsHandler "github.com/CSE-4113-IP-Lab/booking-service/internal/api/handlers/get_user_bookings"
	getWeekScheduleHandler "github.com/CSE-4113-IP-Lab/booking-service/internal/api/handlers/get_week_schedule"
	listRoomsHandler "github.com/CSE-4113-IP-Lab/booking-service/internal/api/handlers/list_rooms"
	searchRoomsHandler "github.com/CSE-4113-IP-Lab/booking-service/internal/api/handlers/search_rooms"
	updateRoomHandler "github.com/CSE-4113-IP-Lab/booking-service/internal/api/handlers/update_room"
	"github.com/CSE-4113-IP-Lab/booking-service/internal/api/middleware"
	"github.com/CSE-4113-IP-Lab/booking-service/internal/config"
	bookingRepo "github.com/CSE-4113-IP-Lab/booking-service/internal/infra/storage/booking"
	roomRepo "github.com/CSE-4113-IP-Lab/booking-service/internal/infra/storage/room"
	directoryClient "github.com/CSE-4113-IP-Lab/booking-service/internal/integrations/directory"
	bookingsService "github.com/CSE-4113-IP-Lab/booking-service/internal/service/bookings"
	roomsService "github.com/CSE-4113-IP-Lab/booking-service/internal/service/rooms"
	createBatchBookingUC "github.com/CSE-4113-IP-Lab/booking-service/internal/usecase/create_batch_booking"
	createBookingUC "github.com/CSE-4113-IP-Lab/booking-service/internal/usecase/create_booking"
	getDayScheduleUC "github.com/CSE-4113-IP-Lab/booking-service/internal/usecase/get_day_schedule"
	getWeekScheduleUC "github.com/CSE-4113-IP-Lab/booking-service/internal/usecase/get_week_schedule"
	searchRoomsUC "github.com/CSE-4113-IP-Lab/booking-service/internal/usecase/search_rooms"
	"github.com/CSE-4113-IP-Lab/booking-service/internal/worker"
	"github.com/CSE-4113-IP-Lab/booking-service/pkg/dbmetrics"
	"github.com/CSE-4113-IP-Lab/booking-service/pkg/logger"
	"github.com/CSE-4113-IP-Lab/booking-service/pkg/metrics"
	"github.com/CSE-4113-IP-Lab/booking-service/pkg/simpletxmanager"
	"github.com/CSE-4113-IP-Lab/booking-service/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting booking-service...")

	policy, err := cfg.Booking.SchedulePolicy()
	if err != nil {
		log.Fatal("Failed to build schedule policy: %v", err)
	}
	log.Info("Schedule policy: %d-minute slots, window %s-%s, %d-day horizon, timezone %s",
		policy.SlotMinutes, policy.WindowOpen, policy.WindowClose, policy.HorizonDays, cfg.Booking.Timezone)

	var metricsCollector *metrics.Metrics
	stopCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

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

	directory := directoryClient.NewClient(
		cfg.DirectoryService.URL,
		time.Duration(cfg.DirectoryService.Timeout)*time.Second,
		log,
	)
	log.Info("Directory client initialized (url=%s, timeout=%ds)",
		cfg.DirectoryService.URL, cfg.DirectoryService.Timeout)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	var (
		bookingRepository *bookingRepo.Repository
		roomRepository    *roomRepo.Repository
		txMgr             TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		roomRepository = roomRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		roomRepository = roomRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	bookingSvc := bookingsService.NewService(bookingRepository, directory, txMgr, log)
	roomSvc := roomsService.NewService(roomRepository, bookingRepository, directory, policy, log)

	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, roomRepository, txMgr, policy, log)
	createBatchBookingUseCase := createBatchBookingUC.NewUseCase(bookingRepository, roomRepository, txMgr, policy, log)
	getDayScheduleUseCase := getDayScheduleUC.NewUseCase(bookingRepository, roomRepository, policy, log)
	getWeekScheduleUseCase := getWeekScheduleUC.NewUseCase(bookingRepository, roomRepository, policy, log)
	searchRoomsUseCase := searchRoomsUC.NewUseCase(bookingRepository, roomRepository, policy, log)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	createBatchBooking := createBatchBookingHandler.NewHandler(createBatchBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getRoomSchedule := getRoomScheduleHandler.NewHandler(getDayScheduleUseCase, log)
	getWeekSchedule := getWeekScheduleHandler.NewHandler(getWeekScheduleUseCase, log)
	searchRooms := searchRoomsHandler.NewHandler(searchRoomsUseCase, log)
	getRoom := getRoomHandler.NewHandler(roomSvc, log)
	listRooms := listRoomsHandler.NewHandler(roomSvc, log)
	createRoom := createRoomHandler.NewHandler(roomSvc, log)
	updateRoom := updateRoomHandler.NewHandler(roomSvc, log)
	deleteRoom := deleteRoomHandler.NewHandler(roomSvc, log)

	sweeper := worker.NewCompletionSweeper(
		bookingRepository,
		policy,
		time.Duration(cfg.Booking.CompletionSweepInterval)*time.Second,
		log,
	)
	go sweeper.Run(stopCh)
	log.Info("Completion sweeper started (interval=%ds)", cfg.Booking.CompletionSweepInterval)

	r := mux.NewRouter()
	r.Use(middleware.Auth)

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Room catalog and schedules. The search route must precede the
	// {roomId} routes so "search" is not parsed as an id.
	api.HandleFunc("/rooms/search", searchRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms", createRoom.Handle).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{roomId}", getRoom.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}", updateRoom.Handle).Methods(http.MethodPut)
	api.HandleFunc("/rooms/{roomId}", deleteRoom.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/rooms/{roomId}/schedule", getRoomSchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}/week-schedule", getWeekSchedule.Handle).Methods(http.MethodGet)

	// Bookings.
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/batch", createBatchBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on :%d", cfg.Server.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down...")
	close(stopCh)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown: %v", err)
	}

	log.Info("Server stopped")
}
