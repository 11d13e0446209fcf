package pagination_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagination-helper/pkg/pagination"
)

// Compile-time interface checks
var (
	_ pagination.Recorder = (*pagination.NoOpRecorder)(nil)
	_ pagination.Recorder = (*pagination.PrometheusRecorder)(nil)
)

// counterValue returns the value of the counter name whose labels match
// labels exactly, or 0 if there is none.
func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			if labelsMatch(metric, labels) {
				return metric.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func labelsMatch(metric *dto.Metric, labels map[string]string) bool {
	if len(metric.GetLabel()) != len(labels) {
		return false
	}
	for _, pair := range metric.GetLabel() {
		if labels[pair.GetName()] != pair.GetValue() {
			return false
		}
	}
	return true
}

func TestPrometheusRecorder_Clamps(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	recorder, err := pagination.NewPrometheusRecorder(reg)
	require.NoError(t, err)

	h := newHelper(1).WithRecorder(recorder)
	h.SetLimit(-1).SetLimit(10).SetLimit(-3)
	h.SetOffset(-1)
	h.SetTotal(-10)
	h.SetOffset(40)

	assert.Equal(t, 2.0, counterValue(t, reg, "pagination_clamps_total", map[string]string{"field": pagination.FieldLimit}))
	assert.Equal(t, 1.0, counterValue(t, reg, "pagination_clamps_total", map[string]string{"field": pagination.FieldOffset}))
	assert.Equal(t, 1.0, counterValue(t, reg, "pagination_clamps_total", map[string]string{"field": pagination.FieldTotal}))
}

func TestPrometheusRecorder_Navigation(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	recorder, err := pagination.NewPrometheusRecorder(reg)
	require.NoError(t, err)

	last := newHelper(10).WithRecorder(recorder)
	last.Next()
	last.Previous()

	first := newHelper(1).WithRecorder(recorder)
	first.Previous()
	first.Next()

	assert.Equal(t, 1.0, counterValue(t, reg, "pagination_navigations_total",
		map[string]string{"direction": pagination.DirectionNext, "moved": "false"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "pagination_navigations_total",
		map[string]string{"direction": pagination.DirectionNext, "moved": "true"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "pagination_navigations_total",
		map[string]string{"direction": pagination.DirectionPrevious, "moved": "true"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "pagination_navigations_total",
		map[string]string{"direction": pagination.DirectionPrevious, "moved": "false"}))
}

func TestNewPrometheusRecorder_DuplicateRegistration(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	_, err := pagination.NewPrometheusRecorder(reg)
	require.NoError(t, err)

	_, err = pagination.NewPrometheusRecorder(reg)
	assert.Error(t, err)
}

func TestHelper_WithNilRecorder(t *testing.T) {
	t.Parallel()

	h := newHelper(1).WithRecorder(nil)

	assert.NotPanics(t, func() {
		h.SetLimit(-1).SetOffset(-1).Next().Previous()
	})
}
