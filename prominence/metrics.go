package prominence

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/biblepay/go-gsc/metrics"
)

const namespace = "prominence"

var (
	assessLatency = metrics.NewHistogramWithBuckets(
		"assess_seconds",
		namespace,
		"time to assess a window in seconds",
		[]string{"creating"},
		prometheus.ExponentialBuckets(0.01, 2, 12),
	)
	transmissions = metrics.NewCounter(
		"transmissions",
		namespace,
		"number of campaign transmissions scanned",
		[]string{"campaign"},
	)
	assessErrors = metrics.NewCounter(
		"errors",
		namespace,
		"number of failed assessments",
		[]string{"error"},
	)
	windowErrors = assessErrors.WithLabelValues("window")
	budgetErrors = assessErrors.WithLabelValues("budget")
)
