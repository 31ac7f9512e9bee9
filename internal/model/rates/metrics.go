package rates

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var histogramFetchTime = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "rub_converter",
		Subsystem: "rates",
		Name:      "histogram_fetch_time_seconds",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	},
	[]string{"error"},
)

func observeFetch(elapsed time.Duration, err bool) {
	histogramFetchTime.
		WithLabelValues(strconv.FormatBool(err)).
		Observe(elapsed.Seconds())
}
