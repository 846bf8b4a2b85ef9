package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sdstrickland/buzzline/config"
	"github.com/sdstrickland/buzzline/internal/buzz"
	"github.com/sdstrickland/buzzline/internal/clients"
	"github.com/sdstrickland/buzzline/internal/logging"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	slog.Info("START producer")

	cfg, err := clients.GetKafkaConfig()
	if err != nil {
		slog.Error("Invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := clients.VerifyServices(cfg.Broker); err != nil {
		slog.Error("Service verification failed", slog.String("error", err.Error()))
		os.Exit(2)
	}

	producer, err := clients.NewKafkaProducer(cfg.Broker)
	if err != nil {
		slog.Error("Failed to create Kafka producer. Exiting...",
			slog.String("error", err.Error()))
		os.Exit(3)
	}

	topicCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
	err = producer.CreateTopic(topicCtx, cfg.Topic)
	cancel()
	if err != nil {
		slog.Error("Failed to create or verify topic",
			slog.String("topic", cfg.Topic),
			slog.String("error", err.Error()))
		producer.Close()
		os.Exit(1)
	}
	slog.Info("Kafka topic is ready", slog.String("topic", cfg.Topic))

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("Starting message production", slog.String("topic", cfg.Topic))
	emitter := buzz.NewEmitter(producer, cfg.Topic, cfg.Interval)
	if err := emitter.Run(ctx); err != nil {
		slog.Error("Message production stopped on error",
			slog.String("error", err.Error()))
	}

	slog.Info("END producer")
}
