package events

import (
	"testing"
	"time"

	"github.com/habit-tracker/backend/internal/application/adapter"
)

func receiveOrFail(t *testing.T, ch <-chan adapter.ChangeKind) adapter.ChangeKind {
	t.Helper()
	select {
	case kind, ok := <-ch:
		if !ok {
			t.Fatal("channel closed while waiting for an event")
		}
		return kind
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for an event")
		return ""
	}
}

func TestBusDeliversInPublishOrder(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	ch, cancel := bus.Subscribe()
	defer cancel()

	published := []adapter.ChangeKind{
		adapter.ChangeKindCategory,
		adapter.ChangeKindTracker,
		adapter.ChangeKindRecord,
		adapter.ChangeKindTracker,
	}
	for _, kind := range published {
		bus.Publish(kind)
	}

	for i, want := range published {
		if got := receiveOrFail(t, ch); got != want {
			t.Fatalf("event %d = %q, want %q", i, got, want)
		}
	}
}

func TestBusPublishDoesNotBlockOnSlowSubscriber(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	// Nobody ever reads this subscriber's channel.
	_, cancel := bus.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			bus.Publish(adapter.ChangeKindRecord)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a subscriber that never reads")
	}
}

func TestBusEachSubscriberSeesEveryEvent(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	first, cancelFirst := bus.Subscribe()
	defer cancelFirst()
	second, cancelSecond := bus.Subscribe()
	defer cancelSecond()

	bus.Publish(adapter.ChangeKindTracker)

	if got := receiveOrFail(t, first); got != adapter.ChangeKindTracker {
		t.Errorf("first subscriber got %q", got)
	}
	if got := receiveOrFail(t, second); got != adapter.ChangeKindTracker {
		t.Errorf("second subscriber got %q", got)
	}
}

func TestBusUnsubscribeClosesChannel(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	ch, cancel := bus.Subscribe()
	cancel()

	select {
	case _, ok := <-ch:
		if ok {
			// A buffered event may still arrive; the close must follow.
			_, ok = <-ch
			if ok {
				t.Fatal("channel still open after unsubscribe")
			}
		}
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after unsubscribe")
	}

	// Publishing after unsubscribe must not panic or block.
	bus.Publish(adapter.ChangeKindCategory)

	// cancel is idempotent.
	cancel()
}

func TestBusCloseReleasesSubscribers(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe()
	defer cancel()

	bus.Close()

	select {
	case _, ok := <-ch:
		if ok {
			t.Fatal("expected closed channel after bus close")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after bus close")
	}

	// A subscription after close is immediately closed.
	late, lateCancel := bus.Subscribe()
	defer lateCancel()
	if _, ok := <-late; ok {
		t.Fatal("subscription after close should be closed")
	}
}
