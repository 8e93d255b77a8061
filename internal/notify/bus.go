package notify

import (
	"sync"
	"time"

	"github.com/cannahub/admin-console/pkg/i18n"
	"github.com/google/uuid"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Notification is one transient toast. Message is resolved from the i18n key
// at publish time so subscribers never need the translation layer.
type Notification struct {
	ID         string    `json:"id"`
	Level      Level     `json:"level"`
	MessageKey string    `json:"message_key"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

// Bus is the notification sink. It is constructed once and injected into
// every controller; messages are independent, so callers only ever append.
// Recent() drops messages older than the display duration, which stands in
// for the UI's auto-dismiss.
type Bus struct {
	mu      sync.Mutex
	recent  []Notification
	subs    map[string]chan Notification
	display time.Duration
	now     func() time.Time
}

const subscriberBuffer = 16

func NewBus(display time.Duration) *Bus {
	if display <= 0 {
		display = 5 * time.Second
	}
	return &Bus{
		subs:    make(map[string]chan Notification),
		display: display,
		now:     time.Now,
	}
}

func (b *Bus) Publish(level Level, messageKey string, data map[string]interface{}) Notification {
	n := Notification{
		ID:         uuid.New().String(),
		Level:      level,
		MessageKey: messageKey,
		Message:    i18n.T(messageKey, data),
		CreatedAt:  b.now(),
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.prune()
	b.recent = append(b.recent, n)
	for _, ch := range b.subs {
		select {
		case ch <- n:
		default:
			// A stalled subscriber must not block controllers.
		}
	}
	return n
}

func (b *Bus) Success(messageKey string, data map[string]interface{}) Notification {
	return b.Publish(LevelSuccess, messageKey, data)
}

func (b *Bus) Error(messageKey string, data map[string]interface{}) Notification {
	return b.Publish(LevelError, messageKey, data)
}

func (b *Bus) Info(messageKey string, data map[string]interface{}) Notification {
	return b.Publish(LevelInfo, messageKey, data)
}

// Recent returns the not-yet-dismissed notifications, oldest first.
func (b *Bus) Recent() []Notification {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.prune()
	out := make([]Notification, len(b.recent))
	copy(out, b.recent)
	return out
}

// Subscribe registers a push channel. Call the returned cancel func when the
// subscriber goes away.
func (b *Bus) Subscribe() (<-chan Notification, func()) {
	id := uuid.New().String()
	ch := make(chan Notification, subscriberBuffer)

	b.mu.Lock()
	b.subs[id] = ch
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if c, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(c)
		}
	}
	return ch, cancel
}

// prune drops expired messages; callers hold b.mu.
func (b *Bus) prune() {
	cutoff := b.now().Add(-b.display)
	idx := 0
	for ; idx < len(b.recent); idx++ {
		if b.recent[idx].CreatedAt.After(cutoff) {
			break
		}
	}
	if idx > 0 {
		b.recent = append([]Notification(nil), b.recent[idx:]...)
	}
}
