package clients

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

const (
	DEFAULT_BROKER   = "localhost:9092"
	DEFAULT_TOPIC    = "buzz_topic"
	DEFAULT_INTERVAL = 10
)

type KafkaConfig struct {
	Broker   string
	Topic    string
	Interval time.Duration
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

// GetKafkaConfig resolves broker, topic and send interval from the
// environment. A non-integer or negative interval is a startup failure.
func GetKafkaConfig() (KafkaConfig, error) {
	broker := getEnv("KAFKA_BROKER", DEFAULT_BROKER)
	slog.Info("[Config] Kafka broker", slog.String("broker", broker))

	topic := getEnv("KAFKA_TOPIC", DEFAULT_TOPIC)
	slog.Info("[Config] Kafka topic", slog.String("topic", topic))

	raw := getEnv("MESSAGE_INTERVAL_SECONDS", strconv.Itoa(DEFAULT_INTERVAL))
	secs, err := strconv.Atoi(raw)
	if err != nil {
		return KafkaConfig{}, fmt.Errorf("[Config] invalid MESSAGE_INTERVAL_SECONDS %q: %w", raw, err)
	}
	if secs < 0 {
		return KafkaConfig{}, fmt.Errorf("[Config] MESSAGE_INTERVAL_SECONDS must be non-negative, got %d", secs)
	}
	slog.Info("[Config] Message interval", slog.Int("seconds", secs))

	return KafkaConfig{
		Broker:   broker,
		Topic:    topic,
		Interval: time.Duration(secs) * time.Second,
	}, nil
}
