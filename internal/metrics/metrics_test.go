package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

// TestMetrics_Init registers collectors and records through every helper.
func TestMetrics_Init(t *testing.T) {
	Init()
	Init()

	IncAlarmEvent("ringing")
	IncTransition("armed", "firing")
	IncTransition("armed", "armed")
	AddArmed(2)
	AddArmed(-1)
	SetSchedulerPending(3)
	ObserveStoreWrite(nil, 5*time.Millisecond)
	ObserveStoreWrite(errors.New("disk full"), time.Millisecond)
	IncMigratedRow(nil)
	IncWebhookDropped()

	require.InDelta(t, 1, testutil.ToFloat64(alarmEventsTotal.WithLabelValues("ringing")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(transitionsTotal.WithLabelValues("armed", "firing")), 0)
	require.InDelta(t, 0, testutil.ToFloat64(transitionsTotal.WithLabelValues("armed", "armed")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(armedAlarms), 0)
	require.InDelta(t, 3, testutil.ToFloat64(schedulerPending), 0)
	require.InDelta(t, 1, testutil.ToFloat64(storeWritesTotal.WithLabelValues(resultError)), 0)

	recorder := httptest.NewRecorder()
	Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	require.True(t, strings.Contains(recorder.Body.String(), "alarmclock_events_total"))
}
