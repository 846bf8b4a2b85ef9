package buzz

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeSender struct {
	sent   []string
	sentAt []time.Time
	topics []string
	closes int
	failOn int // 1-based send index that fails, 0 = never
	onSend func(n int)
}

func (f *fakeSender) Publish(topic string, value string) error {
	f.sent = append(f.sent, value)
	f.sentAt = append(f.sentAt, time.Now())
	f.topics = append(f.topics, topic)
	n := len(f.sent)
	if f.failOn != 0 && n == f.failOn {
		return errors.New("broker unavailable")
	}
	if f.onSend != nil {
		f.onSend(n)
	}
	return nil
}

func (f *fakeSender) Close() { f.closes++ }

func newTestEmitter(sender *fakeSender, topic string, interval time.Duration, messages []string) *Emitter {
	return &Emitter{
		sender:   sender,
		topic:    topic,
		interval: interval,
		messages: messages,
	}
}

func TestEmitterCyclicOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender := &fakeSender{}
	sender.onSend = func(n int) {
		if n == 7 {
			cancel()
		}
	}
	e := newTestEmitter(sender, "test-topic", 0, []string{"a", "b", "c"})

	if err := e.Run(ctx); err != nil {
		t.Fatalf("run: %v", err)
	}

	want := []string{"a", "b", "c", "a", "b", "c", "a"}
	if len(sender.sent) != len(want) {
		t.Fatalf("sent %d messages, want %d", len(sender.sent), len(want))
	}
	for i, v := range want {
		if sender.sent[i] != v {
			t.Fatalf("send %d: got %q, want %q", i, sender.sent[i], v)
		}
	}
	for i, topic := range sender.topics {
		if topic != "test-topic" {
			t.Fatalf("send %d went to topic %q", i, topic)
		}
	}
	if sender.closes != 1 {
		t.Fatalf("sender closed %d times, want 1", sender.closes)
	}
}

func TestEmitterStopsOnFirstSendError(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{failOn: 3}
	e := newTestEmitter(sender, "test-topic", 0, []string{"a", "b"})

	err := e.Run(context.Background())
	if err == nil {
		t.Fatalf("expected send error")
	}
	if len(sender.sent) != 3 {
		t.Fatalf("attempted %d sends, want 3 (no retry after failure)", len(sender.sent))
	}
	if sender.closes != 1 {
		t.Fatalf("sender closed %d times, want 1", sender.closes)
	}
}

func TestEmitterCancelCutsWaitShort(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender := &fakeSender{}
	sender.onSend = func(n int) { cancel() }
	e := newTestEmitter(sender, "test-topic", time.Hour, []string{"a", "b"})

	done := make(chan error, 1)
	go func() { done <- e.Run(ctx) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("cancellation did not cut the interval wait short")
	}

	if len(sender.sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(sender.sent))
	}
	if sender.closes != 1 {
		t.Fatalf("sender closed %d times, want 1", sender.closes)
	}
}

func TestEmitterWaitsIntervalBetweenSends(t *testing.T) {
	t.Parallel()

	const interval = 25 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender := &fakeSender{}
	sender.onSend = func(n int) {
		if n == 4 {
			cancel()
		}
	}
	e := newTestEmitter(sender, "test-topic", interval, []string{"a", "b"})

	if err := e.Run(ctx); err != nil {
		t.Fatalf("run: %v", err)
	}

	for i := 1; i < len(sender.sentAt); i++ {
		gap := sender.sentAt[i].Sub(sender.sentAt[i-1])
		if gap < interval {
			t.Fatalf("gap between send %d and %d was %v, want >= %v", i-1, i, gap, interval)
		}
	}
}

func TestEmitterEmptyListIsAnError(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{}
	e := newTestEmitter(sender, "test-topic", 0, nil)

	if err := e.Run(context.Background()); err == nil {
		t.Fatalf("expected error for empty message list")
	}
	if sender.closes != 1 {
		t.Fatalf("sender closed %d times, want 1", sender.closes)
	}
}
