package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
)

type recordingNotifier struct {
	mu    sync.Mutex
	kinds []domain.EventKind
}

func (r *recordingNotifier) Notify(_ context.Context, _ domain.ID, kind domain.EventKind) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.kinds = append(r.kinds, kind)
}

// TestMulti_FansOut forwards to every non-nil notifier.
func TestMulti_FansOut(t *testing.T) {
	t.Parallel()

	var (
		first  = &recordingNotifier{}
		second = &recordingNotifier{}
		multi  = NewMulti(first, nil, second, LogNotifier{})
	)

	multi.Notify(context.Background(), 1, domain.EventRinging)
	multi.Notify(context.Background(), 1, domain.EventDismissed)

	require.Equal(t, []domain.EventKind{domain.EventRinging, domain.EventDismissed}, first.kinds)
	require.Equal(t, first.kinds, second.kinds)
}

// TestLogNotifier_UnmappedKind panics on a kind outside the enumeration.
func TestLogNotifier_UnmappedKind(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		LogNotifier{}.Notify(context.Background(), 1, domain.EventKind(99))
	})
}

// TestWebhook_Delivers posts JSON payloads and drains on Close.
func TestWebhook_Delivers(t *testing.T) {
	t.Parallel()

	var (
		mu       sync.Mutex
		received []Payload
		at       = time.Date(2026, time.October, 21, 8, 30, 0, 0, time.UTC)
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload Payload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			w.WriteHeader(http.StatusBadRequest)

			return
		}

		mu.Lock()
		received = append(received, payload)
		mu.Unlock()

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	webhook, err := NewWebhook(server.URL, WithClock(func() time.Time { return at }))
	require.NoError(t, err)

	webhook.Notify(context.Background(), 3, domain.EventRinging)
	webhook.Notify(context.Background(), 3, domain.EventSnoozed)

	require.NoError(t, webhook.Close(context.Background()))

	// Notifications after Close are ignored.
	webhook.Notify(context.Background(), 3, domain.EventDismissed)

	mu.Lock()
	defer mu.Unlock()

	require.Equal(t, []Payload{
		{AlarmID: 3, Event: "ringing", At: at},
		{AlarmID: 3, Event: "snoozed", At: at},
	}, received)
}

// TestWebhook_DropsWhenFull never blocks the caller.
func TestWebhook_DropsWhenFull(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	webhook, err := NewWebhook(server.URL, WithQueueSize(1))
	require.NoError(t, err)

	for range 10 {
		webhook.Notify(context.Background(), 1, domain.EventRinging)
	}

	close(release)
	require.NoError(t, webhook.Close(context.Background()))
}

// TestNewWebhook_EmptyURL rejects a missing endpoint.
func TestNewWebhook_EmptyURL(t *testing.T) {
	t.Parallel()

	_, err := NewWebhook("")
	require.ErrorIs(t, err, errEmptyURL)
}
