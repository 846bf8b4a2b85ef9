package buzz

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Sender is the publishing surface the emitter needs from the Kafka
// client.
type Sender interface {
	Publish(topic string, value string) error
	Close()
}

// Emitter cycles over a fixed message list, publishing each entry to
// one topic with a pause between sends. It owns the Sender and closes
// it when the loop exits.
type Emitter struct {
	sender   Sender
	topic    string
	interval time.Duration
	messages []string
}

func NewEmitter(sender Sender, topic string, interval time.Duration) *Emitter {
	return &Emitter{
		sender:   sender,
		topic:    topic,
		interval: interval,
		messages: Messages,
	}
}

// Run streams messages until ctx is canceled or a send fails. A
// canceled context is a controlled shutdown and returns nil; the first
// send error abandons the loop and is returned as-is. The sender is
// closed on every exit path.
func (e *Emitter) Run(ctx context.Context) error {
	defer e.sender.Close()

	if len(e.messages) == 0 {
		return errors.New("emitter has no messages to send")
	}

	for {
		for _, message := range e.messages {
			if ctx.Err() != nil {
				slog.Warn("[Emitter] Producer interrupted")
				return nil
			}

			slog.Info("[Emitter] Generated buzz", slog.String("message", message))
			if err := e.sender.Publish(e.topic, message); err != nil {
				slog.Error("[Emitter] Error sending message",
					slog.String("topic", e.topic),
					slog.String("error", err.Error()))
				return err
			}
			slog.Info("[Emitter] Sent message",
				slog.String("topic", e.topic),
				slog.String("message", message))

			if !e.wait(ctx) {
				slog.Warn("[Emitter] Producer interrupted")
				return nil
			}
		}
	}
}

// wait pauses for the configured interval, cutting the pause short if
// ctx is canceled. Reports whether the loop should continue.
func (e *Emitter) wait(ctx context.Context) bool {
	timer := time.NewTimer(e.interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
