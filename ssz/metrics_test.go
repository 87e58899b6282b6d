package ssz

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("Write: %v", err)
	}
	return m.GetCounter().GetValue()
}

func TestMetricsNilIsNoOp(t *testing.T) {
	var m *Metrics
	m.ObserveEncode()
	m.ObserveDecode(nil)
	m.ObserveDecode(newDeserializeError(InvalidBool, "flag", 0))
	m.TimeHashTreeRoot()()
	m.SetRootCacheHitRatio(NewMerkleCache(8))
}

func TestMetricsObserveEncode(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	m.ObserveEncode()
	m.ObserveEncode()
	if got := counterValue(t, m.encodeTotal); got != 2 {
		t.Errorf("encodeTotal = %v, want 2", got)
	}
}

func TestMetricsObserveDecodeSuccess(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	m.ObserveDecode(nil)
	if got := counterValue(t, m.decodeTotal); got != 1 {
		t.Errorf("decodeTotal = %v, want 1", got)
	}
}

func TestMetricsObserveDecodeError(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	m.ObserveDecode(newDeserializeError(OffsetOutOfBounds, "offsets", 4))

	got := counterValue(t, m.decodeErrorsTotal.WithLabelValues(OffsetOutOfBounds.String()))
	if got != 1 {
		t.Errorf("decodeErrorsTotal[offset out of bounds] = %v, want 1", got)
	}
}

func TestMetricsObserveDecodeUnknownError(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	m.ObserveDecode(ErrUnionNilValue)

	got := counterValue(t, m.decodeErrorsTotal.WithLabelValues("unknown"))
	if got != 1 {
		t.Errorf("decodeErrorsTotal[unknown] = %v, want 1", got)
	}
}

func TestMetricsTimeHashTreeRoot(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	stop := m.TimeHashTreeRoot()
	stop()

	var hist dto.Metric
	if err := m.hashTreeRootSecs.Write(&hist); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if hist.GetHistogram().GetSampleCount() != 1 {
		t.Errorf("histogram sample count = %d, want 1", hist.GetHistogram().GetSampleCount())
	}
}

func TestMetricsSetRootCacheHitRatio(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	cache := NewMerkleCache(4)
	cache.PutHash([32]byte{1}, [32]byte{2})
	cache.GetHash([32]byte{1})
	cache.GetHash([32]byte{9}) // miss

	m.SetRootCacheHitRatio(cache)

	var g dto.Metric
	if err := m.rootCacheHitRatio.Write(&g); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := g.GetGauge().GetValue(); got != cache.HitRate() {
		t.Errorf("gauge = %v, want %v", got, cache.HitRate())
	}
}
