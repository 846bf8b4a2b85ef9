package clients

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/confluentinc/confluent-kafka-go/kafka"
)

const METADATA_TIMEOUT_MS = 10000

// KafkaClient wraps a confluent producer plus the admin calls the
// producer binary needs. It is handed to the emitter, which owns it
// for the lifetime of the loop and closes it exactly once.
type KafkaClient struct {
	producer *kafka.Producer
	closed   bool
}

// VerifyServices checks that the broker answers a metadata request
// before anything else is attempted.
func VerifyServices(broker string) error {
	slog.Info("[KafkaClient] Verifying broker connectivity", slog.String("broker", broker))

	admin, err := kafka.NewAdminClient(&kafka.ConfigMap{"bootstrap.servers": broker})
	if err != nil {
		return fmt.Errorf("[KafkaClient] failed to create admin client: %w", err)
	}
	defer admin.Close()

	if _, err := admin.GetMetadata(nil, true, METADATA_TIMEOUT_MS); err != nil {
		return fmt.Errorf("[KafkaClient] broker %s unreachable: %w", broker, err)
	}

	slog.Info("[KafkaClient] Broker is reachable")
	return nil
}

func NewKafkaProducer(broker string) (*KafkaClient, error) {
	slog.Info("[KafkaClient] Initializing Kafka Producer...")

	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers":   broker,
		"security.protocol":   "PLAINTEXT",
		"api.version.request": "true",
	})
	if err != nil {
		return nil, fmt.Errorf("[KafkaClient] Failed to create producer: %w", err)
	}

	slog.Info("[KafkaClient] Kafka Producer initialized successfully")
	return &KafkaClient{producer: p}, nil
}

// CreateTopic ensures the topic exists; an already-existing topic is
// not an error.
func (c *KafkaClient) CreateTopic(ctx context.Context, topic string) error {
	admin, err := kafka.NewAdminClientFromProducer(c.producer)
	if err != nil {
		return fmt.Errorf("[KafkaClient] failed to create admin client: %w", err)
	}
	defer admin.Close()

	results, err := admin.CreateTopics(ctx, []kafka.TopicSpecification{{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	}})
	if err != nil {
		return fmt.Errorf("[KafkaClient] failed to create topic %q: %w", topic, err)
	}

	for _, result := range results {
		code := result.Error.Code()
		if code == kafka.ErrTopicAlreadyExists {
			slog.Info("[KafkaClient] Topic already exists", slog.String("topic", result.Topic))
			continue
		}
		if code != kafka.ErrNoError {
			return fmt.Errorf("[KafkaClient] failed to create topic %q: %w", result.Topic, result.Error)
		}
		slog.Info("[KafkaClient] Topic created", slog.String("topic", result.Topic))
	}
	return nil
}

// Publish sends one message and waits for its delivery report, so the
// caller sees real broker failures, not just local enqueue errors.
func (c *KafkaClient) Publish(topic string, value string) error {
	deliveryChan := make(chan kafka.Event, 1)

	err := c.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Value:          []byte(value),
	}, deliveryChan)
	if err != nil {
		return fmt.Errorf("[KafkaClient] failed to produce message: %w", err)
	}

	ev := <-deliveryChan
	msg, ok := ev.(*kafka.Message)
	if !ok {
		return fmt.Errorf("[KafkaClient] unexpected delivery event: %v", ev)
	}
	if msg.TopicPartition.Error != nil {
		return fmt.Errorf("[KafkaClient] delivery failed: %w", msg.TopicPartition.Error)
	}
	return nil
}

func (c *KafkaClient) Close() {
	if c.closed {
		return
	}
	c.closed = true

	slog.Info("[KafkaClient] Flushing Kafka producer before shutdown...")
	if remaining := c.producer.Flush(5000); remaining > 0 {
		slog.Warn("[KafkaClient] Not all messages were delivered before shutdown",
			slog.Int("remaining", remaining))
	}
	c.producer.Close()
	slog.Info("[KafkaClient] Kafka producer shut down")
}
