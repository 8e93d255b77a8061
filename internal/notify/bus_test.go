package notify

import (
	"testing"
	"time"
)

func TestBus_PublishAppearsInRecent(t *testing.T) {
	bus := NewBus(5 * time.Second)

	n := bus.Success("orders.status_updated", nil)
	if n.Level != LevelSuccess {
		t.Fatalf("level = %q", n.Level)
	}

	recent := bus.Recent()
	if len(recent) != 1 || recent[0].ID != n.ID {
		t.Fatalf("Recent() = %v, want the published notification", recent)
	}
}

func TestBus_RecentDropsExpired(t *testing.T) {
	bus := NewBus(5 * time.Second)
	current := time.Unix(1000, 0)
	bus.now = func() time.Time { return current }

	bus.Error("orders.update_failed", nil)
	current = current.Add(2 * time.Second)
	bus.Error("stores.update_failed", nil)

	if got := len(bus.Recent()); got != 2 {
		t.Fatalf("expected both toasts inside the window, got %d", got)
	}

	// Past the first toast's display window, inside the second's.
	current = current.Add(4 * time.Second)
	recent := bus.Recent()
	if len(recent) != 1 || recent[0].MessageKey != "stores.update_failed" {
		t.Fatalf("expected only the newer toast, got %v", recent)
	}

	current = current.Add(10 * time.Second)
	if got := len(bus.Recent()); got != 0 {
		t.Fatalf("expected everything expired, got %d", got)
	}
}

func TestBus_SubscribeReceivesAndCancelCloses(t *testing.T) {
	bus := NewBus(time.Second)
	ch, cancel := bus.Subscribe()

	bus.Info("inventory.updated", nil)
	select {
	case n := <-ch:
		if n.MessageKey != "inventory.updated" {
			t.Fatalf("got %q", n.MessageKey)
		}
	case <-time.After(time.Second):
		t.Fatalf("subscriber never received the notification")
	}

	cancel()
	if _, ok := <-ch; ok {
		t.Fatalf("channel should be closed after cancel")
	}
}

func TestBus_StalledSubscriberDoesNotBlockPublish(t *testing.T) {
	bus := NewBus(time.Second)
	_, cancel := bus.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBuffer*2; i++ {
			bus.Error("orders.update_failed", nil)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("publish blocked on a stalled subscriber")
	}
}
