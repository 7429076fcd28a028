package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/metrics"
	"github.com/oshokin/alarm-clock/internal/version"
)

const (
	defaultQueueSize      = 64
	defaultRequestTimeout = 10 * time.Second
)

var errEmptyURL = errors.New("webhook: empty url")

// Payload is the JSON body posted for every transition.
type Payload struct {
	AlarmID int       `json:"alarm_id"`
	Event   string    `json:"event"`
	At      time.Time `json:"at"`
}

// Webhook posts transitions to an HTTP endpoint from a background goroutine.
// Notify never blocks: when the queue is full the notification is dropped.
type Webhook struct {
	url    string
	client *http.Client
	now    func() time.Time

	queue chan Payload
	done  chan struct{}

	mu     sync.RWMutex
	closed bool
}

// WebhookOption configures the Webhook.
type WebhookOption func(*Webhook)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) WebhookOption {
	return func(w *Webhook) {
		if client != nil {
			w.client = client
		}
	}
}

// WithQueueSize sets how many notifications may wait for delivery.
func WithQueueSize(size int) WebhookOption {
	return func(w *Webhook) {
		if size > 0 {
			w.queue = make(chan Payload, size)
		}
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) WebhookOption {
	return func(w *Webhook) {
		if now != nil {
			w.now = now
		}
	}
}

// NewWebhook starts a webhook notifier posting to url.
func NewWebhook(url string, opts ...WebhookOption) (*Webhook, error) {
	if url == "" {
		return nil, errEmptyURL
	}

	w := &Webhook{
		url:    url,
		client: &http.Client{Timeout: defaultRequestTimeout},
		now:    time.Now,
		queue:  make(chan Payload, defaultQueueSize),
		done:   make(chan struct{}),
	}

	for _, opt := range opts {
		opt(w)
	}

	go w.run()

	return w, nil
}

// Notify implements Notifier.
func (w *Webhook) Notify(ctx context.Context, id domain.ID, kind domain.EventKind) {
	payload := Payload{
		AlarmID: int(id),
		Event:   kind.String(),
		At:      w.now().UTC(),
	}

	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.closed {
		return
	}

	select {
	case w.queue <- payload:
	default:
		metrics.IncWebhookDropped()
		logger.WarnKV(ctx, "Webhook queue is full, dropping notification", "alarm_id", id, "event", payload.Event)
	}
}

// Close stops accepting notifications and waits until queued ones are delivered.
func (w *Webhook) Close(ctx context.Context) error {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.queue)
	}
	w.mu.Unlock()

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("close webhook: %w", ctx.Err())
	}
}

func (w *Webhook) run() {
	defer close(w.done)

	ctx := logger.WithName(context.Background(), "webhook")

	for payload := range w.queue {
		if err := w.send(ctx, payload); err != nil {
			logger.ErrorKV(ctx, "Failed to deliver webhook", "alarm_id", payload.AlarmID, "event", payload.Event, "error", err)
		}
	}
}

func (w *Webhook) send(ctx context.Context, payload Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", version.UserAgent("webhook"))

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("post: %w", err)
	}

	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("webhook: non-2xx response %d", resp.StatusCode)
	}

	return nil
}
