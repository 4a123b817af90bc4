package page

import "sync"

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// User-facing notification texts.
const (
	MsgIncomplete   = "Please fill in all fields and select a rating"
	MsgSubmitted    = "Review submitted successfully!"
	MsgSubmitFailed = "Failed to submit review. Please try again."
)

// Notification is a transient message shown to the visitor.
type Notification struct {
	Level   Level
	Message string
}

type Notifier interface {
	Notify(n Notification)
}

type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

// Toasts collects the notifications raised while handling one request.
type Toasts struct {
	mu    sync.Mutex
	items []Notification
}

func (t *Toasts) Notify(n Notification) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.items = append(t.items, n)
}

func (t *Toasts) Items() []Notification {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Notification(nil), t.items...)
}
