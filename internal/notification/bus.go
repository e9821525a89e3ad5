package notification

import (
	"sync"
	"time"

	"fitdesk/internal/metrics"

	"github.com/google/uuid"
)

const (
	MaxSubscribers = 32
	MaxRecent      = 50
	subscriberBuf  = 16
)

const (
	TypePaymentCreated = "payment_created"
	TypeClientCreated  = "client_created"
	TypeReminderSent   = "reminder_sent"
)

type Event struct {
	ID        string    `json:"id"`
	GymID     int       `json:"gym_id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type Subscription struct {
	ID    string
	GymID int
	C     <-chan Event

	ch chan Event
}

// Bus fans tenant events out to open streams and remembers the latest
// events per gym. Both lists are bounded and drop their oldest entry.
type Bus struct {
	mu          sync.Mutex
	subscribers []*Subscription
	recent      map[int][]Event
	now         func() time.Time
}

func NewBus() *Bus {
	return &Bus{
		recent: make(map[int][]Event),
		now:    time.Now,
	}
}

func (b *Bus) Publish(gymID int, eventType, message string) Event {
	ev := Event{
		ID:        uuid.NewString(),
		GymID:     gymID,
		Type:      eventType,
		Message:   message,
		CreatedAt: b.now(),
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	list := append(b.recent[gymID], ev)
	if len(list) > MaxRecent {
		list = append([]Event(nil), list[len(list)-MaxRecent:]...)
	}
	b.recent[gymID] = list

	for _, sub := range b.subscribers {
		if sub.GymID != gymID {
			continue
		}
		// slow readers lose events rather than block publishers
		select {
		case sub.ch <- ev:
		default:
		}
	}

	return ev
}

func (b *Bus) Subscribe(gymID int) *Subscription {
	ch := make(chan Event, subscriberBuf)
	sub := &Subscription{ID: uuid.NewString(), GymID: gymID, C: ch, ch: ch}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.subscribers = append(b.subscribers, sub)
	for len(b.subscribers) > MaxSubscribers {
		close(b.subscribers[0].ch)
		b.subscribers = b.subscribers[1:]
	}
	metrics.NotificationSubscribers.Set(float64(len(b.subscribers)))

	return sub
}

func (b *Bus) Unsubscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, s := range b.subscribers {
		if s == sub {
			close(s.ch)
			b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)
			break
		}
	}
	metrics.NotificationSubscribers.Set(float64(len(b.subscribers)))
}

// Recent returns the gym's events, newest first.
func (b *Bus) Recent(gymID int) []Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	list := b.recent[gymID]
	out := make([]Event, len(list))
	for i, ev := range list {
		out[len(list)-1-i] = ev
	}
	return out
}

func (b *Bus) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subscribers)
}
