// Package notify delivers short user-facing acknowledgements of store
// operations and failures.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Severity of a notice.
type Severity string

// Severities.
const (
	SeverityInfo  Severity = "info"
	SeverityError Severity = "error"
)

// Notice is a single acknowledgement.
type Notice struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Severity    Severity  `json:"severity"`
	Time        time.Time `json:"time"`
}

// Notifier receives notices. Implementations must not block for long; the
// store calls Notify while holding its lock.
type Notifier interface {
	Notify(n Notice)
}

// Func adapts a function to a Notifier.
type Func func(Notice)

func (f Func) Notify(n Notice) { f(n) }

// Discard drops every notice.
var Discard Notifier = Func(func(Notice) {})

// Multi fans a notice out to every notifier in order.
func Multi(notifiers ...Notifier) Notifier {
	return Func(func(n Notice) {
		for _, nt := range notifiers {
			nt.Notify(n)
		}
	})
}

// Log writes notices to a structured logger.
type Log struct {
	Logger *slog.Logger
}

func (l Log) Notify(n Notice) {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	level := slog.LevelInfo
	if n.Severity == SeverityError {
		level = slog.LevelError
	}
	logger.Log(context.Background(), level, n.Title, "description", n.Description)
}

// Recorder keeps the most recent notices in memory.
type Recorder struct {
	mu      sync.Mutex
	notices []Notice
	next    int
	full    bool
}

// NewRecorder returns a Recorder holding at most size notices.
func NewRecorder(size int) *Recorder {
	if size < 1 {
		size = 1
	}
	return &Recorder{notices: make([]Notice, size)}
}

func (r *Recorder) Notify(n Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices[r.next] = n
	r.next = (r.next + 1) % len(r.notices)
	if r.next == 0 {
		r.full = true
	}
}

// Recent returns the recorded notices, newest first.
func (r *Recorder) Recent() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := r.next
	if r.full {
		count = len(r.notices)
	}
	out := make([]Notice, 0, count)
	for i := 1; i <= count; i++ {
		idx := (r.next - i + len(r.notices)) % len(r.notices)
		out = append(out, r.notices[idx])
	}
	return out
}
