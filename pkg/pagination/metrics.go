package pagination

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Fields reported by Recorder.RecordClamp.
const (
	FieldLimit  = "limit"
	FieldOffset = "offset"
	FieldTotal  = "total"
)

// Directions reported by Recorder.RecordNavigation.
const (
	DirectionNext     = "next"
	DirectionPrevious = "previous"
)

// Recorder receives pagination events. Implementations must be safe for
// concurrent use since one Recorder is usually shared by many Helpers.
type Recorder interface {
	// RecordClamp is called when an input value was normalized.
	RecordClamp(field string)

	// RecordNavigation is called on Next and Previous. moved is false when
	// the call was a no-op at the first or last page.
	RecordNavigation(direction string, moved bool)

	// RecordPage is called when a page is resolved into a query.
	RecordPage(page int)
}

// NoOpRecorder discards every event.
type NoOpRecorder struct{}

// NewNoOpRecorder creates a new NoOpRecorder instance.
func NewNoOpRecorder() *NoOpRecorder {
	return &NoOpRecorder{}
}

// RecordClamp is a no-op implementation.
func (r *NoOpRecorder) RecordClamp(field string) {}

// RecordNavigation is a no-op implementation.
func (r *NoOpRecorder) RecordNavigation(direction string, moved bool) {}

// RecordPage is a no-op implementation.
func (r *NoOpRecorder) RecordPage(page int) {}

// PrometheusRecorder implements Recorder using Prometheus counters.
type PrometheusRecorder struct {
	// clampsTotal counts normalized inputs.
	// Labels: field (limit, offset, total)
	clampsTotal *prometheus.CounterVec

	// navigationsTotal counts Next/Previous calls.
	// Labels: direction (next, previous), moved (true, false)
	navigationsTotal *prometheus.CounterVec

	// pagesTotal counts resolved pages.
	// Labels: page_range (1-10, 11-50, 51-100, 100+)
	pagesTotal *prometheus.CounterVec
}

// NewPrometheusRecorder creates the collectors and registers them with reg.
// Pass a dedicated prometheus.NewRegistry() in tests to keep them isolated.
func NewPrometheusRecorder(reg prometheus.Registerer) (*PrometheusRecorder, error) {
	r := &PrometheusRecorder{
		clampsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pagination_clamps_total",
				Help: "Total number of pagination inputs normalized into range",
			},
			[]string{"field"},
		),
		navigationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pagination_navigations_total",
				Help: "Total number of next/previous page navigations",
			},
			[]string{"direction", "moved"},
		),
		pagesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pagination_pages_total",
				Help: "Total number of pages resolved into queries",
			},
			[]string{"page_range"},
		),
	}

	for _, c := range []prometheus.Collector{r.clampsTotal, r.navigationsTotal, r.pagesTotal} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// RecordClamp increments the clamp counter for field.
func (r *PrometheusRecorder) RecordClamp(field string) {
	r.clampsTotal.WithLabelValues(field).Inc()
}

// RecordNavigation increments the navigation counter.
func (r *PrometheusRecorder) RecordNavigation(direction string, moved bool) {
	m := "false"
	if moved {
		m = "true"
	}
	r.navigationsTotal.WithLabelValues(direction, m).Inc()
}

// RecordPage increments the page counter for the bucket page falls in.
func (r *PrometheusRecorder) RecordPage(page int) {
	r.pagesTotal.WithLabelValues(getPageRangeBucket(page)).Inc()
}

// getPageRangeBucket returns the page range bucket for a given page number.
func getPageRangeBucket(page int) string {
	switch {
	case page <= 10:
		return "1-10"
	case page <= 50:
		return "11-50"
	case page <= 100:
		return "51-100"
	default:
		return "100+"
	}
}
