// metrics.go instruments the codec for a caller-supplied Prometheus
// registry: encode/decode call counters, decode error counts by kind, a
// hash-tree-root duration histogram, and the root cache's hit ratio as a
// gauge. The codec itself never registers against the default registry
// and never starts an HTTP server; embedding applications decide how
// (and whether) to expose these metrics.
package ssz

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the codec's Prometheus collectors.
type Metrics struct {
	encodeTotal        prometheus.Counter
	decodeTotal        prometheus.Counter
	decodeErrorsTotal  *prometheus.CounterVec
	hashTreeRootSecs   prometheus.Histogram
	rootCacheHitRatio  prometheus.Gauge
}

// NewMetrics constructs and registers the codec's collectors against reg.
// Passing a nil registry is valid; the collectors are then created and
// updated but registered nowhere. Recording calls on a nil *Metrics are
// no-ops.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		encodeTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ssz_encode_total",
			Help: "Total number of SSZ MarshalSSZ calls.",
		}),
		decodeTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ssz_decode_total",
			Help: "Total number of SSZ UnmarshalSSZ calls.",
		}),
		decodeErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ssz_decode_errors_total",
			Help: "Total number of SSZ decode failures, labeled by DeserializeErrorKind.",
		}, []string{"kind"}),
		hashTreeRootSecs: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ssz_hash_tree_root_seconds",
			Help:    "Time spent computing SSZ hash tree roots.",
			Buckets: prometheus.DefBuckets,
		}),
		rootCacheHitRatio: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ssz_merkle_cache_hit_ratio",
			Help: "Current hit ratio of the root cache, in [0,1].",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.encodeTotal, m.decodeTotal, m.decodeErrorsTotal, m.hashTreeRootSecs, m.rootCacheHitRatio)
	}
	return m
}

// ObserveEncode records one MarshalSSZ call.
func (m *Metrics) ObserveEncode() {
	if m == nil {
		return
	}
	m.encodeTotal.Inc()
}

// ObserveDecode records one UnmarshalSSZ call, and on failure increments
// the error counter labeled by the DeserializeError's Kind.
func (m *Metrics) ObserveDecode(err error) {
	if m == nil {
		return
	}
	m.decodeTotal.Inc()
	if err == nil {
		return
	}
	if de, ok := err.(*DeserializeError); ok {
		m.decodeErrorsTotal.WithLabelValues(de.Kind.String()).Inc()
		return
	}
	m.decodeErrorsTotal.WithLabelValues("unknown").Inc()
}

// TimeHashTreeRoot returns a function to be called when a HashTreeRoot
// computation completes, recording its duration:
//
//	defer m.TimeHashTreeRoot()()
func (m *Metrics) TimeHashTreeRoot() func() {
	if m == nil {
		return func() {}
	}
	start := time.Now()
	return func() {
		m.hashTreeRootSecs.Observe(time.Since(start).Seconds())
	}
}

// SetRootCacheHitRatio reports the root cache's current hit ratio.
func (m *Metrics) SetRootCacheHitRatio(cache *MerkleCache) {
	if m == nil || cache == nil {
		return
	}
	m.rootCacheHitRatio.Set(cache.HitRate())
}
