package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/airlineops/config"
	"github.com/Domenick1991/airlineops/internal/bootstrap"
	"github.com/Domenick1991/airlineops/internal/cache"
	"github.com/Domenick1991/airlineops/internal/console"
	"github.com/Domenick1991/airlineops/internal/kafka"
	"github.com/Domenick1991/airlineops/internal/repository"
	"github.com/Domenick1991/airlineops/internal/service/booking"
	"github.com/Domenick1991/airlineops/internal/service/registry"
	"github.com/Domenick1991/airlineops/internal/service/reports"
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

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Reports.CacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	planeRepo := repository.NewPlaneRepository(pool)
	pilotRepo := repository.NewPilotRepository(pool)
	technicianRepo := repository.NewTechnicianRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)
	customerRepo := repository.NewCustomerRepository(pool)
	reservationRepo := repository.NewReservationRepository(pool)
	repairRepo := repository.NewRepairRepository(pool)

	registryService := registry.NewRegistryService(planeRepo, pilotRepo, technicianRepo, flightRepo)
	bookingService := booking.NewBookingService(
		reservationRepo,
		customerRepo,
		flightRepo,
		producer,
		cfg.Kafka.ReservationsTopic,
		booking.WithAuditTopic(cfg.Kafka.AuditTopic),
	)
	reportService := reports.NewReportService(repairRepo, reservationRepo, flightRepo, redisCache)

	menu := console.NewMenu(os.Stdin, os.Stdout, registryService, bookingService, reportService)

	if err := bootstrap.Run(ctx, menu); err != nil {
		log.Fatalf("console error: %v", err)
	}
}
