package health

import (
	"context"

	"github.com/biblepay/go-gsc/common/types"
	"github.com/biblepay/go-gsc/quorum"
)

//go:generate mockgen -typed -package=mocks -destination=./mocks/mocks.go -source=./interface.go

// TriggerSource lists triggers for a superblock, all of them for an empty fingerprint.
type TriggerSource interface {
	Pending(ctx context.Context, height types.Height, fp types.Hash32) ([]*quorum.Candidate, error)
}
