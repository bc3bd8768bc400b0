// Package notify delivers non-blocking user notifications.
//
// The clipboard bridge publishes here when an OS clipboard call fails; the
// embedding application subscribes to surface the message however it likes
// (status line, toast). Publishing never blocks and never fails: with an
// async buffer, notifications that do not fit are dropped rather than
// stalling a key dispatch. A nil *Notifier discards everything.
package notify

import "sync"

// Level classifies a notification.
type Level int

const (
	// Info is a neutral informational notice.
	Info Level = iota

	// Warn is a degraded-but-working notice.
	Warn

	// Error is a failed-operation notice.
	Error
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Notification is one user-facing message.
type Notification struct {
	Level   Level
	Message string
}

// Observer is called for each published notification.
type Observer func(n Notification)

// Subscription represents an active observer subscription.
type Subscription struct {
	id       uint64
	notifier *Notifier
}

// Unsubscribe removes this subscription.
func (s *Subscription) Unsubscribe() {
	if s.notifier != nil {
		s.notifier.unsubscribe(s.id)
	}
}

// Notifier fans notifications out to subscribed observers.
type Notifier struct {
	mu        sync.RWMutex
	observers map[uint64]Observer
	nextID    uint64

	async  bool
	buffer chan Notification
	done   chan struct{}
	wg     sync.WaitGroup
	closed bool
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithAsync enables asynchronous delivery through a buffer of the given
// size. Publishing drops notifications when the buffer is full.
func WithAsync(bufferSize int) Option {
	return func(n *Notifier) {
		if bufferSize > 0 {
			n.async = true
			n.buffer = make(chan Notification, bufferSize)
		}
	}
}

// New creates a Notifier.
func New(opts ...Option) *Notifier {
	n := &Notifier{
		observers: make(map[uint64]Observer),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.async {
		n.wg.Add(1)
		go n.deliver()
	}
	return n
}

// Subscribe registers an observer for all notifications.
func (n *Notifier) Subscribe(obs Observer) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.nextID++
	id := n.nextID
	n.observers[id] = obs
	return &Subscription{id: id, notifier: n}
}

func (n *Notifier) unsubscribe(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.observers, id)
}

// Publish sends a notification to all observers. It never blocks: async
// notifiers drop on a full buffer, synchronous ones call observers inline.
// A nil Notifier discards the notification.
func (n *Notifier) Publish(level Level, message string) {
	if n == nil {
		return
	}

	note := Notification{Level: level, Message: message}

	if n.async {
		select {
		case n.buffer <- note:
		default:
		}
		return
	}

	n.notifyAll(note)
}

func (n *Notifier) notifyAll(note Notification) {
	n.mu.RLock()
	observers := make([]Observer, 0, len(n.observers))
	for _, obs := range n.observers {
		observers = append(observers, obs)
	}
	n.mu.RUnlock()

	for _, obs := range observers {
		obs(note)
	}
}

func (n *Notifier) deliver() {
	defer n.wg.Done()
	for {
		select {
		case note := <-n.buffer:
			n.notifyAll(note)
		case <-n.done:
			// Drain anything already buffered before exiting.
			for {
				select {
				case note := <-n.buffer:
					n.notifyAll(note)
				default:
					return
				}
			}
		}
	}
}

// Close stops async delivery after draining the buffer. Close is
// idempotent and safe on a nil or synchronous Notifier.
func (n *Notifier) Close() {
	if n == nil {
		return
	}

	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.closed = true
	n.mu.Unlock()

	close(n.done)
	if n.async {
		n.wg.Wait()
	}
}
