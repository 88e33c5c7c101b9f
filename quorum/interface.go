package quorum

import (
	"context"

	"github.com/biblepay/go-gsc/common/types"
	"github.com/biblepay/go-gsc/contract"
)

//go:generate mockgen -typed -package=mocks -destination=./mocks/mocks.go -source=./interface.go

// Assessor computes the contract of a window.
type Assessor interface {
	Assess(ctx context.Context, target types.Height, creating bool) (*contract.Contract, error)
}

// Watchman runs the proposal funding flow.
type Watchman interface {
	Watch(ctx context.Context) error
}

// Exporter publishes the contract for external consumers.
type Exporter interface {
	Export(ctx context.Context, height types.Height) error
}
