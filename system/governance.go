package system

import (
	"context"
	"time"

	"github.com/biblepay/go-gsc/common/types"
)

//go:generate mockgen -typed -package=mocks -destination=./mocks/governance.go -source=./governance.go

// GovernanceStore persists governance objects and relays votes.
type GovernanceStore interface {
	FindByHash(ctx context.Context, hash types.Hash32) (*types.GovernanceObject, error)
	AllNewerThan(ctx context.Context, t time.Time) ([]*types.GovernanceObject, error)
	Submit(ctx context.Context, obj *types.GovernanceObject) error
	Vote(ctx context.Context, vote *types.Vote) error
}

// MasternodeList exposes the deterministic masternode list.
type MasternodeList interface {
	ValidCount() (int, error)
	FindByCollateral(collateral types.Outpoint) (*types.Masternode, error)
}

// Signer signs on behalf of the local masternode.
type Signer interface {
	Collateral() types.Outpoint
	SignObject(obj *types.GovernanceObject) error
	SignVote(vote *types.Vote) error
}

// Resyncer restarts chain synchronization.
type Resyncer interface {
	Reset()
	SwitchToNextAsset()
}
