package signing

import (
	"github.com/biblepay/go-gsc/common/types"
)

// Operator signs governance objects and votes on behalf of the local masternode.
type Operator struct {
	signer     *EdSigner
	collateral types.Outpoint
}

// NewOperator binds a signer to the collateral of the masternode it operates.
func NewOperator(signer *EdSigner, collateral types.Outpoint) *Operator {
	return &Operator{signer: signer, collateral: collateral}
}

// Collateral returns the outpoint identifying the local masternode.
func (o *Operator) Collateral() types.Outpoint {
	return o.collateral
}

// SignObject stamps the local collateral on the object and signs it.
func (o *Operator) SignObject(obj *types.GovernanceObject) error {
	obj.Collateral = o.collateral
	obj.Signature = o.signer.Sign(GOVOBJECT, obj.SignedBytes())
	return nil
}

// SignVote stamps the local collateral on the vote and signs it.
func (o *Operator) SignVote(vote *types.Vote) error {
	vote.Voter = o.collateral
	vote.Signature = o.signer.Sign(VOTE, vote.SignedBytes())
	return nil
}
