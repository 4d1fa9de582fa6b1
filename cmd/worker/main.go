package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airlineops/config"
	"github.com/Domenick1991/airlineops/internal/audit"
	"github.com/Domenick1991/airlineops/internal/kafka"
	kafkaGo "github.com/segmentio/kafka-go"
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

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.AuditTopic)
	defer consumer.Close()

	recorder := audit.NewRecorder()

	if err := consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
		var event kafka.ReservationEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Printf("decode event error: %v", err)
			return nil
		}
		return recorder.Record(ctx, event)
	}); err != nil && ctx.Err() == nil {
		log.Printf("consumer stopped: %v", err)
	}
}
