package health

import (
	"github.com/biblepay/go-gsc/metrics"
)

const namespace = "health"

var (
	checks = metrics.NewCounter(
		"checks",
		namespace,
		"number of health checks by status",
		[]string{"status"},
	)
	resyncs = metrics.NewSimpleCounter(
		"resyncs",
		namespace,
		"number of resynchronization requests",
	)
)
