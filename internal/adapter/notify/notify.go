// Package notify delivers form notifications to the user.
package notify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/vadimbarashkov/url-shortener-web/internal/entity"
)

// Recorder collects notifications so they can be returned with a response.
type Recorder struct {
	mu            sync.Mutex
	notifications []entity.Notification
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Notify(_ context.Context, n entity.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notifications = append(r.notifications, n)
}

// Notifications returns the recorded notifications in the order they were sent.
func (r *Recorder) Notifications() []entity.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entity.Notification, len(r.notifications))
	copy(out, r.notifications)
	return out
}

// Writer prints one line per notification, e.g. "[error] Error: Please enter a URL".
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) Notify(_ context.Context, n entity.Notification) {
	w.mu.Lock()
	defer w.mu.Unlock()

	fmt.Fprintf(w.w, "[%s] %s: %s\n", n.Variant, n.Title, n.Description)
}

// Logger writes notifications to a structured log. Errors are logged at warn level.
type Logger struct {
	logger *slog.Logger
}

func NewLogger(logger *slog.Logger) *Logger {
	return &Logger{logger: logger}
}

func (l *Logger) Notify(ctx context.Context, n entity.Notification) {
	level := slog.LevelInfo
	if n.Variant == entity.VariantError {
		level = slog.LevelWarn
	}

	l.logger.LogAttrs(ctx, level, "notification",
		slog.String("variant", string(n.Variant)),
		slog.String("title", n.Title),
		slog.String("description", n.Description),
	)
}

// Multi fans a notification out to every notifier.
type Multi []interface {
	Notify(ctx context.Context, n entity.Notification)
}

func (m Multi) Notify(ctx context.Context, n entity.Notification) {
	for _, notifier := range m {
		notifier.Notify(ctx, n)
	}
}
