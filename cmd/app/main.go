package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/roombooking/config"
	"github.com/Domenick1991/roombooking/internal/auth"
	"github.com/Domenick1991/roombooking/internal/bootstrap"
	"github.com/Domenick1991/roombooking/internal/cache"
	"github.com/Domenick1991/roombooking/internal/kafka"
	"github.com/Domenick1991/roombooking/internal/repository"
	"github.com/Domenick1991/roombooking/internal/service/booking"
	"github.com/Domenick1991/roombooking/internal/service/rooms"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := repository.Migrate(ctx, pool); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}

	bookingRepo := repository.NewBookingRepository(pool)
	roomRepo := repository.NewRoomRepository(pool)
	enrollmentRepo := repository.NewEnrollmentRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)

	var (
		roomCache rooms.RoomCache
		opts      []booking.BookingServiceOption
	)
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(cfg.Redis, cfg.Booking.RoomCacheTTL())
		defer redisCache.Close()
		roomCache = redisCache
		opts = append(opts, booking.WithRoomLock(redisCache, cfg.Booking.RoomLockTTL()))
	} else {
		log.Println("WARNING: redis is not configured, room capacity checks run without a lock")
	}
	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		if err := producer.CheckConnection(ctx); err != nil {
			log.Printf("WARNING: %v", err)
		}
		opts = append(opts,
			booking.WithEvents(producer, cfg.Kafka.BookingTopic),
			booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		)
	}

	roomService := rooms.NewRoomService(roomRepo, roomCache)
	bookingService := booking.NewBookingService(bookingRepo, enrollmentRepo, ticketRepo, roomService, opts...)

	if err := bootstrap.Run(ctx, cfg, auth.NewAuthenticator(cfg.Auth.JWTSecret), bookingService, roomService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
