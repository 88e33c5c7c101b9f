package govstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/biblepay/go-gsc/common/types"
	"github.com/biblepay/go-gsc/contract"
	"github.com/biblepay/go-gsc/signing"
	"github.com/biblepay/go-gsc/sql"
	"github.com/biblepay/go-gsc/system"
)

var (
	_ system.GovernanceStore = (*Store)(nil)
	_ system.MasternodeList  = (*Masternodes)(nil)
)

type fixture struct {
	store       *Store
	masternodes *Masternodes
	operator    *signing.Operator
	collateral  types.Outpoint
	now         time.Time
}

func newFixture(tb testing.TB) *fixture {
	tb.Helper()
	db := sql.InMemory()
	signer, err := signing.NewEdSigner()
	require.NoError(tb, err)
	f := &fixture{
		store:       New(db, signing.NewEdVerifier(), WithLogger(zaptest.NewLogger(tb))),
		masternodes: NewMasternodes(db),
		collateral:  types.Outpoint{TxID: types.Hash32{0xaa}, Index: 1},
		now:         time.Unix(1_700_000_000, 0),
	}
	f.operator = signing.NewOperator(signer, f.collateral)
	require.NoError(tb, f.masternodes.Register(&types.Masternode{
		Collateral:  f.collateral,
		OperatorKey: signer.PublicKey(),
		Valid:       true,
	}))
	return f
}

func (f *fixture) trigger(tb testing.TB, height types.Height) *types.GovernanceObject {
	tb.Helper()
	c := &contract.Contract{}
	c.Set(contract.TagAddresses, types.EncodeAddress([20]byte{1}, 25).String()).
		Set(contract.TagPayments, "10.00")
	payload, err := contract.NewTrigger(c, height, 100*types.Coin, f.now)
	require.NoError(tb, err)
	data, err := contract.EncodePayload(payload)
	require.NoError(tb, err)
	return f.sign(tb, &types.GovernanceObject{Type: types.TriggerObject, CreationTime: f.now, Data: data})
}

func (f *fixture) sign(tb testing.TB, obj *types.GovernanceObject) *types.GovernanceObject {
	tb.Helper()
	obj.Collateral = f.collateral
	obj.Hash = obj.ID()
	require.NoError(tb, f.operator.SignObject(obj))
	return obj
}

func TestSubmit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	obj := f.trigger(t, 1025)
	require.NoError(t, f.store.Submit(ctx, obj))
	require.ErrorIs(t, f.store.Submit(ctx, obj), sql.ErrObjectExists)

	got, err := f.store.FindByHash(ctx, obj.Hash)
	require.NoError(t, err)
	require.Equal(t, obj.Data, got.Data)
	require.Equal(t, obj.Collateral, got.Collateral)

	all, err := f.store.AllNewerThan(ctx, f.now.Add(-time.Minute))
	require.NoError(t, err)
	require.Len(t, all, 1)

	data, err := contract.EncodeProposal(contract.NewProposalPayload(
		"outreach", f.now.Unix(), f.now.Unix()+86400, types.EncodeAddress([20]byte{2}, 25), 50))
	require.NoError(t, err)
	proposal := f.sign(t, &types.GovernanceObject{Type: types.ProposalObject, CreationTime: f.now, Data: data})
	require.NoError(t, f.store.Submit(ctx, proposal))
}

func TestSubmitRejects(t *testing.T) {
	for _, tc := range []struct {
		desc   string
		mutate func(*fixture, *types.GovernanceObject)
	}{
		{
			desc: "hash mismatch",
			mutate: func(_ *fixture, obj *types.GovernanceObject) {
				obj.Hash = types.Hash32{1}
			},
		},
		{
			desc: "bad signature",
			mutate: func(_ *fixture, obj *types.GovernanceObject) {
				obj.Signature[0] ^= 0xff
			},
		},
		{
			desc: "malformed payload",
			mutate: func(f *fixture, obj *types.GovernanceObject) {
				obj.Data = []byte("7b7d")
				obj.Hash = obj.ID()
				f.operator.SignObject(obj)
			},
		},
		{
			desc: "unknown type",
			mutate: func(f *fixture, obj *types.GovernanceObject) {
				obj.Type = 9
				obj.Hash = obj.ID()
				f.operator.SignObject(obj)
			},
		},
		{
			desc: "unknown masternode",
			mutate: func(f *fixture, obj *types.GovernanceObject) {
				obj.Collateral = types.Outpoint{Index: 7}
				obj.Hash = obj.ID()
			},
		},
		{
			desc: "invalid masternode",
			mutate: func(f *fixture, _ *types.GovernanceObject) {
				mn, err := f.masternodes.FindByCollateral(f.collateral)
				if err == nil {
					mn.Valid = false
					f.masternodes.Register(mn)
				}
			},
		},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			f := newFixture(t)
			obj := f.trigger(t, 1025)
			tc.mutate(f, obj)
			require.ErrorIs(t, f.store.Submit(context.Background(), obj), ErrInvalidObject)
		})
	}
}

func TestVote(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	obj := f.trigger(t, 1025)
	require.NoError(t, f.store.Submit(ctx, obj))

	vote := &types.Vote{Object: obj.Hash, Signal: types.SignalFunding, Outcome: types.OutcomeYes, Time: f.now}
	require.NoError(t, f.operator.SignVote(vote))
	require.NoError(t, f.store.Vote(ctx, vote))
	got, err := f.store.FindByHash(ctx, obj.Hash)
	require.NoError(t, err)
	require.Equal(t, 1, got.YesCount)

	// a newer vote replaces the outcome
	vote = &types.Vote{Object: obj.Hash, Signal: types.SignalFunding, Outcome: types.OutcomeNo, Time: f.now.Add(time.Minute)}
	require.NoError(t, f.operator.SignVote(vote))
	require.NoError(t, f.store.Vote(ctx, vote))
	got, err = f.store.FindByHash(ctx, obj.Hash)
	require.NoError(t, err)
	require.Equal(t, 0, got.YesCount)
	require.Equal(t, 1, got.NoCount)
	require.Equal(t, -1, got.AbsoluteYes())

	forged := &types.Vote{Object: obj.Hash, Signal: types.SignalDelete, Outcome: types.OutcomeYes, Time: f.now}
	require.NoError(t, f.operator.SignVote(forged))
	forged.Outcome = types.OutcomeNo
	require.ErrorIs(t, f.store.Vote(ctx, forged), ErrInvalidVote)

	unknown := &types.Vote{Object: types.Hash32{9}, Signal: types.SignalFunding, Outcome: types.OutcomeYes, Time: f.now}
	require.NoError(t, f.operator.SignVote(unknown))
	require.ErrorIs(t, f.store.Vote(ctx, unknown), ErrInvalidVote)
}

func TestPrune(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	obj := f.trigger(t, 1025)
	require.NoError(t, f.store.Submit(ctx, obj))

	n, err := f.store.Prune(f.now)
	require.NoError(t, err)
	require.Zero(t, n)
	n, err = f.store.Prune(f.now.Add(time.Second))
	require.NoError(t, err)
	require.Equal(t, 1, n)
	_, err = f.store.FindByHash(ctx, obj.Hash)
	require.ErrorIs(t, err, sql.ErrNotFound)
}

func TestMasternodes(t *testing.T) {
	f := newFixture(t)
	count, err := f.masternodes.ValidCount()
	require.NoError(t, err)
	require.Equal(t, 1, count)
	require.NoError(t, f.masternodes.Register(&types.Masternode{Collateral: types.Outpoint{Index: 2}, OperatorKey: []byte{1}}))
	count, err = f.masternodes.ValidCount()
	require.NoError(t, err)
	require.Equal(t, 1, count)
}
