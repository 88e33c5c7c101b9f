package quorum

import (
	"github.com/biblepay/go-gsc/metrics"
)

const namespace = "quorum"

var (
	cycles = metrics.NewCounter(
		"cycles",
		namespace,
		"number of consensus cycles by status",
		[]string{"status"},
	)
	votesCast = metrics.NewCounter(
		"votes",
		namespace,
		"number of votes cast",
		[]string{"signal", "outcome"},
	)
	triggersSubmitted = metrics.NewSimpleCounter(
		"triggers_submitted",
		namespace,
		"number of triggers created by this node",
	)
	invalidTriggers = metrics.NewSimpleCounter(
		"invalid_triggers",
		namespace,
		"number of triggers skipped for a malformed payload",
	)
	overBudget = metrics.NewSimpleCounter(
		"over_budget",
		namespace,
		"number of matching triggers voted down for exceeding the budget",
	)
	distress = metrics.NewSimpleCounter(
		"distress",
		namespace,
		"number of cycles without a winning trigger late in the cycle",
	)
	leadingVotes = metrics.NewSimpleGauge(
		"leading_votes",
		namespace,
		"yes votes of the leading matching trigger",
	)
)
