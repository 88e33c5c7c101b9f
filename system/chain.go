// Package system defines the interfaces through which consensus components reach the node.
package system

import (
	"context"
	"time"

	"github.com/biblepay/go-gsc/common/types"
)

//go:generate mockgen -typed -package=mocks -destination=./mocks/chain.go -source=./chain.go

// Chain gives read access to the active chain.
type Chain interface {
	Tip() (types.BlockHeader, error)
	BlockAt(ctx context.Context, height types.Height) (*types.Block, error)
	// PaymentsLimit is the gross superblock budget at height.
	PaymentsLimit(height types.Height) (types.Amount, error)
	HeightByTime(t time.Time) (types.Height, error)
}

// TxEvaluator computes the evidence backing a campaign transmission.
type TxEvaluator interface {
	CoinAge(block *types.Block, tx *types.Transaction) float64
	Tithe(block *types.Block, tx *types.Transaction) types.Amount
	AntiBotNetSigned(tx *types.Transaction) bool
}
