package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"explorerCache/internal/domain"
)

// CacheMetrics реализует ports.ICacheMetrics поверх Prometheus.
type CacheMetrics struct {
	refreshes       prometheus.Counter
	refreshDuration prometheus.Histogram
	fetches         *prometheus.CounterVec
	fetchDuration   *prometheus.HistogramVec
	warm            *prometheus.GaugeVec
}

// NewCacheMetrics регистрирует метрики кэша в reg. Для глобального реестра передай prometheus.DefaultRegisterer.
func NewCacheMetrics(reg prometheus.Registerer) *CacheMetrics {
	f := promauto.With(reg)
	return &CacheMetrics{
		refreshes: f.NewCounter(prometheus.CounterOpts{
			Name: "explorer_cache_refreshes_total",
			Help: "Total number of completed cache refresh cycles",
		}),
		refreshDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "explorer_cache_refresh_duration_seconds",
			Help:    "Duration of a full cache refresh cycle in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		fetches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "explorer_cache_upstream_fetches_total",
			Help: "Total number of upstream fetches by slot and result",
		}, []string{"slot", "result"}),
		fetchDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "explorer_cache_upstream_fetch_duration_seconds",
			Help:    "Upstream fetch duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"slot"}),
		warm: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "explorer_cache_slot_warm",
			Help: "1 once the slot holds a value",
		}, []string{"slot"}),
	}
}

func (m *CacheMetrics) RefreshCompleted(d time.Duration) {
	m.refreshes.Inc()
	m.refreshDuration.Observe(d.Seconds())
}

func (m *CacheMetrics) FetchObserved(slot domain.Slot, ok bool, d time.Duration) {
	result := "ok"
	if !ok {
		result = "error"
	}
	m.fetches.WithLabelValues(string(slot), result).Inc()
	m.fetchDuration.WithLabelValues(string(slot)).Observe(d.Seconds())
}

func (m *CacheMetrics) SlotWarmed(slot domain.Slot) {
	m.warm.WithLabelValues(string(slot)).Set(1)
}
