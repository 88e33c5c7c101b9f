package watchman

import (
	"github.com/biblepay/go-gsc/metrics"
)

const namespace = "watchman"

var (
	runs = metrics.NewCounter(
		"runs",
		namespace,
		"number of watchman runs by status",
		[]string{"status"},
	)
	proposalsSeen = metrics.NewCounter(
		"proposals",
		namespace,
		"number of proposals evaluated by state",
		[]string{"state"},
	)
	seenPaid      = proposalsSeen.WithLabelValues("paid")
	seenPassing   = proposalsSeen.WithLabelValues("passing")
	seenFailing   = proposalsSeen.WithLabelValues("failing")
	seenMalformed = proposalsSeen.WithLabelValues("malformed")
	budgeted      = metrics.NewSimpleGauge(
		"budgeted",
		namespace,
		"coins allocated to proposals in the last contract",
	)
)
