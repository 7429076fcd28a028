// Package metrics exposes Prometheus collectors for the alarm daemon.
//
// Collectors are registered once by Init. The recording helpers are safe to
// call before Init (or without it, e.g. in tests): they do nothing then.
package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricPrefix = "alarmclock_"

	resultSuccess = "success"
	resultError   = "error"
)

var (
	registerOnce sync.Once

	alarmEventsTotal  *prometheus.CounterVec
	transitionsTotal  *prometheus.CounterVec
	armedAlarms       prometheus.Gauge
	schedulerPending  prometheus.Gauge
	storeWritesTotal  *prometheus.CounterVec
	storeWriteLatency *prometheus.HistogramVec
	migratedRowsTotal *prometheus.CounterVec
	webhookDropsTotal prometheus.Counter
)

// Init registers the collectors with the default Prometheus registry.
func Init() {
	registerOnce.Do(func() {
		alarmEventsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "events_total",
				Help: "Total alarm lifecycle notifications by kind",
			},
			[]string{"kind"},
		)
		transitionsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "transitions_total",
				Help: "Total state machine transitions by source and target state",
			},
			[]string{"from", "to"},
		)
		armedAlarms = prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: metricPrefix + "armed_alarms",
				Help: "Alarms waiting on a scheduled trigger",
			},
		)
		schedulerPending = prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: metricPrefix + "scheduler_pending",
				Help: "Wake-up registrations held by the scheduler",
			},
		)
		storeWritesTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "store_writes_total",
				Help: "Total store snapshot writes by result",
			},
			[]string{"result"},
		)
		storeWriteLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "store_write_latency_seconds",
				Help:    "Store snapshot write latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)
		migratedRowsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "migrated_rows_total",
				Help: "Total legacy rows processed by migration by result",
			},
			[]string{"result"},
		)
		webhookDropsTotal = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "webhook_dropped_total",
				Help: "Total webhook notifications dropped because the queue was full",
			},
		)

		prometheus.MustRegister(
			alarmEventsTotal,
			transitionsTotal,
			armedAlarms,
			schedulerPending,
			storeWritesTotal,
			storeWriteLatency,
			migratedRowsTotal,
			webhookDropsTotal,
		)
	})
}

// Handler returns the HTTP handler serving the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// IncAlarmEvent counts a lifecycle notification.
func IncAlarmEvent(kind string) {
	if kind == "" {
		kind = "unknown"
	}
	if alarmEventsTotal != nil {
		alarmEventsTotal.WithLabelValues(kind).Inc()
	}
}

// IncTransition counts a state change. Self-transitions are not recorded.
func IncTransition(from, to string) {
	if from == to {
		return
	}
	if transitionsTotal != nil {
		transitionsTotal.WithLabelValues(from, to).Inc()
	}
}

// AddArmed adjusts the armed alarms gauge.
func AddArmed(delta int) {
	if delta == 0 {
		return
	}
	if armedAlarms != nil {
		armedAlarms.Add(float64(delta))
	}
}

// SetSchedulerPending sets the number of pending scheduler registrations.
func SetSchedulerPending(n int) {
	if n < 0 {
		n = 0
	}
	if schedulerPending != nil {
		schedulerPending.Set(float64(n))
	}
}

// ObserveStoreWrite records a store snapshot write.
func ObserveStoreWrite(err error, duration time.Duration) {
	result := resultOf(err)
	if storeWritesTotal != nil {
		storeWritesTotal.WithLabelValues(result).Inc()
	}
	if storeWriteLatency != nil {
		storeWriteLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
}

// IncMigratedRow counts a processed legacy row.
func IncMigratedRow(err error) {
	if migratedRowsTotal != nil {
		migratedRowsTotal.WithLabelValues(resultOf(err)).Inc()
	}
}

// IncWebhookDropped counts a notification the webhook queue had no room for.
func IncWebhookDropped() {
	if webhookDropsTotal != nil {
		webhookDropsTotal.Inc()
	}
}

func resultOf(err error) string {
	if err != nil {
		return resultError
	}

	return resultSuccess
}
