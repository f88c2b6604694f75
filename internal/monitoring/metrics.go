package monitoring

import (
	"net/http"
	"time"

	astar "github.com/pdrpinto/gridastar"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	searchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridastar_searches_total",
		Help: "Completed searches by outcome.",
	}, []string{"outcome"})

	searchExpandedCells = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gridastar_search_expanded_cells",
		Help:    "Cells expanded per search.",
		Buckets: prometheus.ExponentialBuckets(1, 2, 16), // 1 to ~32k cells
	})

	searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gridastar_search_duration_seconds",
		Help:    "Wall time per search, render checkpoints included.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 18), // 0.1ms to ~13s
	})
)

// ObserveSearch records one finished search.
func ObserveSearch(result astar.Result, elapsed time.Duration) {
	searchesTotal.WithLabelValues(result.Outcome.String()).Inc()
	searchExpandedCells.Observe(float64(result.Expanded))
	searchDuration.Observe(elapsed.Seconds())
}

// Handler serves the default registry.
func Handler() http.Handler { return promhttp.Handler() }
