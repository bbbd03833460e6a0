package events

import (
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/event"
	"github.com/google/uuid"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

const DefaultInboxSize = 100

type Notification struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	ProductID uint64    `json:"productId,omitempty"`
	TxHash    string    `json:"txHash,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// Inbox keeps the most recent notifications, newest first, and fans new
// ones out to subscribers.
type Inbox struct {
	mu    sync.Mutex
	items []Notification
	limit int
	feed  event.Feed
	now   func() time.Time
}

func NewInbox(limit int) *Inbox {
	if limit <= 0 {
		limit = DefaultInboxSize
	}
	return &Inbox{limit: limit, now: time.Now}
}

// Add stores n with a fresh id and timestamp and returns the stored value.
func (i *Inbox) Add(n Notification) Notification {
	n.ID = uuid.NewString()
	n.CreatedAt = i.now()
	n.Read = false

	i.mu.Lock()
	i.items = append([]Notification{n}, i.items...)
	if len(i.items) > i.limit {
		i.items = i.items[:i.limit]
	}
	i.mu.Unlock()

	i.feed.Send(n)
	return n
}

func (i *Inbox) List() []Notification {
	i.mu.Lock()
	defer i.mu.Unlock()
	return append([]Notification{}, i.items...)
}

func (i *Inbox) Unread() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	count := 0
	for _, n := range i.items {
		if !n.Read {
			count++
		}
	}
	return count
}

func (i *Inbox) MarkRead(id string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	for k := range i.items {
		if i.items[k].ID == id {
			i.items[k].Read = true
			return true
		}
	}
	return false
}

func (i *Inbox) MarkAllRead() {
	i.mu.Lock()
	defer i.mu.Unlock()
	for k := range i.items {
		i.items[k].Read = true
	}
}

func (i *Inbox) Dismiss(id string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	for k := range i.items {
		if i.items[k].ID == id {
			i.items = append(i.items[:k], i.items[k+1:]...)
			return true
		}
	}
	return false
}

// Subscribe delivers every notification added after the call.
func (i *Inbox) Subscribe(ch chan<- Notification) event.Subscription {
	return i.feed.Subscribe(ch)
}
