package conversion

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var conversionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "rub_converter",
		Subsystem: "form",
		Name:      "conversions_total",
	},
	[]string{"success"},
)

func observeConversion(success bool) {
	conversionsTotal.WithLabelValues(strconv.FormatBool(success)).Inc()
}
