package quorum

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"github.com/biblepay/go-gsc/common/types"
	"github.com/biblepay/go-gsc/contract"
	"github.com/biblepay/go-gsc/prominence"
	"github.com/biblepay/go-gsc/quorum/mocks"
	"github.com/biblepay/go-gsc/spork"
	smocks "github.com/biblepay/go-gsc/system/mocks"
)

const (
	testTip        types.Height = 900
	testLast       types.Height = 820
	testNext       types.Height = 1025
	testMasternode              = 20
)

type castVote struct {
	Object  types.Hash32
	Signal  types.VoteSignal
	Outcome types.VoteOutcome
}

type testController struct {
	*Controller
	sanctuary   *Sanctuary
	clock       *clockwork.FakeClock
	chain       *smocks.MockChain
	assessor    *mocks.MockAssessor
	store       *smocks.MockGovernanceStore
	masternodes *smocks.MockMasternodeList
	signer      *smocks.MockSigner

	tip       types.BlockHeader
	tipErr    error
	objects   []*types.GovernanceObject
	votes     []castVote
	submitted []*types.GovernanceObject
	limits    map[types.Height]types.Amount
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Enable = true
	cfg.ProtocolVersion = 1
	cfg.WarmingBlocks = 0
	cfg.MinimumQuorum = 3
	cfg.Seed = 1
	return cfg
}

func newTestController(tb testing.TB, sporks map[string]float64, opts ...Opt) *testController {
	tb.Helper()
	ctrl := gomock.NewController(tb)
	clock := clockwork.NewFakeClockAt(time.Unix(1_700_000_000, 0))
	tc := &testController{
		clock:       clock,
		chain:       smocks.NewMockChain(ctrl),
		assessor:    mocks.NewMockAssessor(ctrl),
		store:       smocks.NewMockGovernanceStore(ctrl),
		masternodes: smocks.NewMockMasternodeList(ctrl),
		signer:      smocks.NewMockSigner(ctrl),
		tip:         types.BlockHeader{Height: testTip, Time: clock.Now()},
		limits:      make(map[types.Height]types.Amount),
	}
	collateral := types.Outpoint{TxID: types.Hash32{0xaa}, Index: 1}
	features := spork.DefaultFeatureFlags()
	features.CreateAnywhere = true
	tc.sanctuary = NewSanctuary(tc.chain, tc.store, tc.masternodes, tc.signer,
		WithSanctuaryLogger(zaptest.NewLogger(tb)),
		WithSanctuaryWallclock(clock),
		WithSubmitInterval(testConfig().SubmitInterval),
	)
	tc.Controller = New(
		tc.chain,
		tc.assessor,
		tc.sanctuary,
		tc.masternodes,
		spork.New(nil, spork.WithOverrides(sporks)),
		append([]Opt{
			WithLogger(zaptest.NewLogger(tb)),
			WithConfig(testConfig()),
			WithFeatures(features),
			WithWallclock(clock),
		}, opts...)...,
	)

	tc.chain.EXPECT().Tip().DoAndReturn(func() (types.BlockHeader, error) {
		return tc.tip, tc.tipErr
	}).AnyTimes()
	tc.chain.EXPECT().PaymentsLimit(gomock.Any()).DoAndReturn(func(h types.Height) (types.Amount, error) {
		if limit, ok := tc.limits[h]; ok {
			return limit, nil
		}
		return 100_000 * types.Coin, nil
	}).AnyTimes()
	tc.store.EXPECT().AllNewerThan(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, time.Time) ([]*types.GovernanceObject, error) {
			return tc.objects, nil
		}).AnyTimes()
	tc.store.EXPECT().Vote(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, v *types.Vote) error {
			require.Equal(tb, collateral, v.Voter)
			tc.votes = append(tc.votes, castVote{Object: v.Object, Signal: v.Signal, Outcome: v.Outcome})
			return nil
		}).AnyTimes()
	tc.store.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, obj *types.GovernanceObject) error {
			tc.submitted = append(tc.submitted, obj)
			return nil
		}).AnyTimes()
	tc.masternodes.EXPECT().ValidCount().Return(testMasternode, nil).AnyTimes()
	tc.masternodes.EXPECT().FindByCollateral(collateral).Return(
		&types.Masternode{Collateral: collateral, Valid: true}, nil).AnyTimes()
	tc.signer.EXPECT().Collateral().Return(collateral).AnyTimes()
	tc.signer.EXPECT().SignObject(gomock.Any()).DoAndReturn(func(obj *types.GovernanceObject) error {
		obj.Signature = []byte("sig")
		return nil
	}).AnyTimes()
	tc.signer.EXPECT().SignVote(gomock.Any()).Return(nil).AnyTimes()
	return tc
}

func newContract(payees ...contract.Payee) *contract.Contract {
	addresses, amounts := contract.JoinPayees(payees)
	c := &contract.Contract{}
	c.Set(contract.TagAddresses, addresses).
		Set(contract.TagPayments, amounts).
		Set(contract.TagDetails, "informational")
	return c
}

func payee(b byte, amount string) contract.Payee {
	return contract.Payee{Address: types.EncodeAddress([20]byte{b}, 25), Amount: amount}
}

func trigger(tb testing.TB, id byte, height types.Height, c *contract.Contract, yes int, created time.Time) *types.GovernanceObject {
	tb.Helper()
	payload, err := contract.NewTrigger(c, height, 1_000_000*types.Coin, created)
	require.NoError(tb, err)
	data, err := contract.EncodePayload(payload)
	require.NoError(tb, err)
	return &types.GovernanceObject{
		Hash:         types.Hash32{id},
		Type:         types.TriggerObject,
		CreationTime: created,
		Data:         data,
		YesCount:     yes,
	}
}

var (
	local   = newContract(payee(1, "100.00"), payee(2, "50.00"))
	foreign = newContract(payee(3, "150.00"))
)

func TestRunCycleGates(t *testing.T) {
	for _, tc := range []struct {
		desc   string
		setup  func(*testController)
		sporks map[string]float64
		cfg    func(*Config)
		status Status
		err    error
	}{
		{
			desc:   "no tip",
			setup:  func(tc *testController) { tc.tipErr = errors.New("no blocks") },
			status: InvalidChain,
			err:    ErrInvalidChain,
		},
		{
			desc:   "genesis",
			setup:  func(tc *testController) { tc.tip.Height = 0 },
			status: InvalidChain,
			err:    ErrInvalidChain,
		},
		{
			desc:   "stale tip",
			setup:  func(tc *testController) { tc.clock.Advance(2 * time.Hour) },
			status: NotSynced,
			err:    ErrNotSynced,
		},
		{
			desc:   "not a sanctuary",
			cfg:    func(cfg *Config) { cfg.Enable = false },
			status: NotASanctuary,
		},
		{
			desc:   "protocol upgrade",
			sporks: map[string]float64{spork.KeyMinProtocol: 2},
			status: ProtocolUpgradeRequired,
		},
		{
			desc:   "not a quorum height",
			setup:  func(tc *testController) { tc.tip.Height = testTip + 1 },
			status: NotThisCycle,
		},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			cfg := testConfig()
			if tc.cfg != nil {
				tc.cfg(&cfg)
			}
			ctrl := newTestController(t, tc.sporks, WithConfig(cfg))
			if tc.setup != nil {
				tc.setup(ctrl)
			}
			status, err := ctrl.RunCycle(context.Background())
			require.Equal(t, tc.status, status)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
			} else {
				require.NoError(t, err)
			}
			require.Empty(t, ctrl.votes)
			require.Empty(t, ctrl.submitted)
		})
	}
}

func TestCreate(t *testing.T) {
	tc := newTestController(t, nil)
	tc.assessor.EXPECT().Assess(gomock.Any(), testLast, true).Return(local, nil).AnyTimes()
	// malformed triggers are ignored
	tc.objects = []*types.GovernanceObject{{
		Hash:         types.Hash32{9},
		Type:         types.TriggerObject,
		CreationTime: tc.clock.Now(),
		Data:         []byte("zz"),
		YesCount:     100,
	}}

	status, err := tc.RunCycle(context.Background())
	require.NoError(t, err)
	require.Equal(t, CreatingContract, status)
	require.Len(t, tc.submitted, 1)
	obj := tc.submitted[0]
	require.Equal(t, types.TriggerObject, obj.Type)
	require.Equal(t, obj.ID(), obj.Hash)
	require.Equal(t, []byte("sig"), obj.Signature)
	payload, err := contract.DecodePayload(obj.Data)
	require.NoError(t, err)
	require.Equal(t, testNext, payload.EventBlockHeight)
	require.Equal(t, local.Fingerprint(), payload.Fingerprint())
	require.Equal(t, tc.clock.Now().Unix(), payload.StartEpoch)

	status, err = tc.RunCycle(context.Background())
	require.ErrorIs(t, err, ErrSubmissionRateLimited)
	require.Equal(t, CreatingContract, status)
	require.Len(t, tc.submitted, 1)

	tc.clock.Advance(15 * time.Minute)
	tc.tip.Time = tc.clock.Now()
	status, err = tc.RunCycle(context.Background())
	require.NoError(t, err)
	require.Equal(t, CreatingContract, status)
	require.Len(t, tc.submitted, 2)
}

func TestCreateFailedSubmissionIsNotRateLimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	tc := newTestController(t, nil)
	store := smocks.NewMockGovernanceStore(ctrl)
	tc.sanctuary.store = store
	store.EXPECT().AllNewerThan(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	gomock.InOrder(
		store.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(errors.New("relay failed")),
		store.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil),
	)
	tc.assessor.EXPECT().Assess(gomock.Any(), testLast, true).Return(local, nil).Times(2)

	status, err := tc.RunCycle(context.Background())
	require.Error(t, err)
	require.Equal(t, CreatingContract, status)
	status, err = tc.RunCycle(context.Background())
	require.NoError(t, err)
	require.Equal(t, CreatingContract, status)
}

func TestCreateRejected(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		tc := newTestController(t, nil)
		tc.assessor.EXPECT().Assess(gomock.Any(), testLast, true).Return(newContract(), nil)
		status, err := tc.RunCycle(context.Background())
		require.NoError(t, err)
		require.Equal(t, EmptyContract, status)
		require.Empty(t, tc.submitted)
	})
	t.Run("over budget", func(t *testing.T) {
		tc := newTestController(t, nil)
		tc.limits[testLast] = 120 * types.Coin
		tc.assessor.EXPECT().Assess(gomock.Any(), testLast, true).Return(local, nil)
		status, err := tc.RunCycle(context.Background())
		require.ErrorIs(t, err, contract.ErrBudgetExceeded)
		require.Equal(t, EmptyContract, status)
		require.Empty(t, tc.submitted)
	})
	t.Run("budget unavailable", func(t *testing.T) {
		tc := newTestController(t, nil)
		tc.assessor.EXPECT().Assess(gomock.Any(), testLast, true).Return(nil, prominence.ErrBudgetUnavailable)
		status, err := tc.RunCycle(context.Background())
		require.ErrorIs(t, err, prominence.ErrBudgetUnavailable)
		require.Equal(t, EmptyContract, status)
	})
	t.Run("window unavailable", func(t *testing.T) {
		tc := newTestController(t, nil)
		tc.assessor.EXPECT().Assess(gomock.Any(), testLast, true).Return(nil, prominence.ErrWindowUnavailable)
		status, err := tc.RunCycle(context.Background())
		require.ErrorIs(t, err, prominence.ErrWindowUnavailable)
		require.Equal(t, InvalidChain, status)
	})
	t.Run("unregistered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tc := newTestController(t, nil)
		masternodes := smocks.NewMockMasternodeList(ctrl)
		tc.Controller.masternodes = masternodes
		tc.sanctuary.masternodes = masternodes
		masternodes.EXPECT().ValidCount().Return(testMasternode, nil)
		masternodes.EXPECT().FindByCollateral(gomock.Any()).Return(nil, errors.New("not found"))
		tc.assessor.EXPECT().Assess(gomock.Any(), testLast, true).Return(local, nil)
		status, err := tc.RunCycle(context.Background())
		require.ErrorIs(t, err, ErrNotASanctuary)
		require.Equal(t, NotASanctuary, status)
	})
}

func TestNoPrivilege(t *testing.T) {
	cfg := testConfig()
	cfg.CreateFraction = 0
	tc := newTestController(t, nil, WithConfig(cfg), WithFeatures(spork.DefaultFeatureFlags()))
	tc.assessor.EXPECT().Assess(gomock.Any(), testLast, true).Return(local, nil)

	status, err := tc.RunCycle(context.Background())
	require.NoError(t, err)
	require.Equal(t, NoChosenNode, status)
	require.Empty(t, tc.submitted)
}

func TestForeignQuorumBlocksCreation(t *testing.T) {
	tc := newTestController(t, nil)
	tc.assessor.EXPECT().Assess(gomock.Any(), testLast, true).Return(local, nil)
	tc.objects = []*types.GovernanceObject{trigger(t, 1, testNext, foreign, 5, tc.clock.Now())}

	status, err := tc.RunCycle(context.Background())
	require.NoError(t, err)
	require.Equal(t, NoChosenNode, status)
	require.Empty(t, tc.submitted)
	require.Empty(t, tc.votes)
}

func TestVoteTieBreak(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	objects := func(tb testing.TB) []*types.GovernanceObject {
		// the later object has the lower hash
		return []*types.GovernanceObject{
			trigger(tb, 0x20, testNext, local, 4, now.Add(-time.Minute)),
			trigger(tb, 0x10, testNext, local, 4, now),
		}
	}
	expect := []castVote{
		{Object: types.Hash32{0x10}, Signal: types.SignalFunding, Outcome: types.OutcomeYes},
		{Object: types.Hash32{0x10}, Signal: types.SignalDelete, Outcome: types.OutcomeNo},
	}
	for range 2 {
		tc := newTestController(t, nil)
		tc.assessor.EXPECT().Assess(gomock.Any(), testLast, true).Return(local, nil).AnyTimes()
		tc.objects = objects(t)

		status, err := tc.RunCycle(context.Background())
		require.NoError(t, err)
		require.Equal(t, VotedForContract, status)
		require.Equal(t, expect, tc.votes)

		// votes are not repeated
		status, err = tc.RunCycle(context.Background())
		require.NoError(t, err)
		require.Equal(t, VotedForContract, status)
		require.Equal(t, expect, tc.votes)
	}
}

func TestVoteDownNonMatching(t *testing.T) {
	for _, tc := range []struct {
		desc    string
		enabled bool
		expect  []castVote
	}{
		{
			desc:    "enabled",
			enabled: true,
			expect: []castVote{
				{Object: types.Hash32{0x30}, Signal: types.SignalFunding, Outcome: types.OutcomeYes},
				{Object: types.Hash32{0x30}, Signal: types.SignalDelete, Outcome: types.OutcomeNo},
				{Object: types.Hash32{0x05}, Signal: types.SignalFunding, Outcome: types.OutcomeNo},
			},
		},
		{
			desc: "disabled",
			expect: []castVote{
				{Object: types.Hash32{0x30}, Signal: types.SignalFunding, Outcome: types.OutcomeYes},
				{Object: types.Hash32{0x30}, Signal: types.SignalDelete, Outcome: types.OutcomeNo},
			},
		},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			features := spork.DefaultFeatureFlags()
			features.VoteDownNonMatching = tc.enabled
			ctrl := newTestController(t, nil, WithFeatures(features))
			ctrl.assessor.EXPECT().Assess(gomock.Any(), testLast, true).Return(local, nil)
			now := ctrl.clock.Now()
			ctrl.objects = []*types.GovernanceObject{
				trigger(t, 0x40, testNext, foreign, 2, now),
				trigger(t, 0x30, testNext, local, 1, now),
				trigger(t, 0x05, testNext, newContract(payee(4, "10")), 0, now),
				// other heights are ignored
				trigger(t, 0x01, testNext+205, foreign, 0, now),
			}

			status, err := ctrl.RunCycle(context.Background())
			require.NoError(t, err)
			require.Equal(t, VotedForContract, status)
			require.Equal(t, tc.expect, ctrl.votes)
		})
	}
}

func TestOverBudgetVotedDown(t *testing.T) {
	tc := newTestController(t, nil)
	tc.limits[testNext] = 149 * types.Coin
	tc.assessor.EXPECT().Assess(gomock.Any(), testLast, true).Return(local, nil)
	tc.objects = []*types.GovernanceObject{trigger(t, 0x10, testNext, local, 10, tc.clock.Now())}

	// ten votes are below the quorum of a hundred masternodes
	tc.masternodes = smocks.NewMockMasternodeList(gomock.NewController(t))
	tc.Controller.masternodes = tc.masternodes
	tc.sanctuary.masternodes = tc.masternodes
	tc.masternodes.EXPECT().ValidCount().Return(100, nil)
	tc.masternodes.EXPECT().FindByCollateral(gomock.Any()).Return(&types.Masternode{Valid: true}, nil).AnyTimes()

	status, err := tc.RunCycle(context.Background())
	require.NoError(t, err)
	require.Equal(t, VotedForContract, status)
	require.Equal(t, []castVote{
		{Object: types.Hash32{0x10}, Signal: types.SignalFunding, Outcome: types.OutcomeNo},
		{Object: types.Hash32{0x10}, Signal: types.SignalDelete, Outcome: types.OutcomeNo},
	}, tc.votes)
}

func TestDeleteStale(t *testing.T) {
	tc := newTestController(t, nil)
	tc.assessor.EXPECT().Assess(gomock.Any(), testLast, true).Return(local, nil)
	now := tc.clock.Now()
	tc.objects = []*types.GovernanceObject{
		trigger(t, 0x10, testNext, local, 1, now),
		trigger(t, 0x21, testLast, foreign, 0, now.Add(-25*time.Hour)),
		trigger(t, 0x22, testLast, foreign, 0, now.Add(-time.Hour)),
		trigger(t, 0x23, testLast, foreign, 1, now.Add(-25*time.Hour)),
	}

	status, err := tc.RunCycle(context.Background())
	require.NoError(t, err)
	require.Equal(t, VotedForContract, status)
	require.Equal(t, []castVote{
		{Object: types.Hash32{0x10}, Signal: types.SignalFunding, Outcome: types.OutcomeYes},
		{Object: types.Hash32{0x10}, Signal: types.SignalDelete, Outcome: types.OutcomeNo},
		{Object: types.Hash32{0x21}, Signal: types.SignalDelete, Outcome: types.OutcomeYes},
	}, tc.votes)
}

func TestPendingSupermajority(t *testing.T) {
	tc := newTestController(t, nil)
	tc.assessor.EXPECT().Assess(gomock.Any(), testLast, true).Return(local, nil).Times(1)
	tc.objects = []*types.GovernanceObject{trigger(t, 0x10, testNext, local, 5, tc.clock.Now())}

	status, err := tc.RunCycle(context.Background())
	require.NoError(t, err)
	require.Equal(t, PendingSupermajority, status)

	// once won the height stays pending even if votes disappear
	tc.objects = nil
	tc.tip.Height = testTip + 10
	status, err = tc.RunCycle(context.Background())
	require.NoError(t, err)
	require.Equal(t, PendingSupermajority, status)
	require.Empty(t, tc.votes)
	require.Empty(t, tc.submitted)

	// the next cycle starts over
	tc.tip.Height = testNext + 5
	tc.assessor.EXPECT().Assess(gomock.Any(), testNext, true).Return(newContract(), nil)
	status, err = tc.RunCycle(context.Background())
	require.NoError(t, err)
	require.Equal(t, EmptyContract, status)
}

func TestRequiredVotes(t *testing.T) {
	for _, tc := range []struct {
		count, minimum, expect int
	}{
		{count: 100, minimum: 10, expect: 20},
		{count: 49, minimum: 10, expect: 10},
		{count: 49, minimum: 3, expect: 9},
		{count: 0, minimum: 3, expect: 3},
	} {
		cfg := testConfig()
		cfg.MinimumQuorum = tc.minimum
		c := New(nil, nil, nil, nil, nil, WithConfig(cfg))
		require.Equal(t, tc.expect, c.requiredVotes(tc.count), "count %d", tc.count)
	}
}

func TestPending(t *testing.T) {
	tc := newTestController(t, nil)
	now := tc.clock.Now()
	tc.objects = []*types.GovernanceObject{
		trigger(t, 0x20, testNext, local, 3, now),
		trigger(t, 0x10, testNext, local, 1, now),
		trigger(t, 0x30, testNext, foreign, 7, now),
	}
	pending, err := tc.Pending(context.Background(), testNext, local.Fingerprint())
	require.NoError(t, err)
	require.Len(t, pending, 2)
	require.Equal(t, types.Hash32{0x10}, pending[0].Object.Hash)
	require.Equal(t, 3, pending[1].Votes())
	require.Contains(t, pending[1].String(), "votes=3")

	all, err := tc.Pending(context.Background(), testNext, types.EmptyHash32)
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestSideDuties(t *testing.T) {
	ctrl := gomock.NewController(t)
	watchman := mocks.NewMockWatchman(ctrl)
	exporter := mocks.NewMockExporter(ctrl)
	tc := newTestController(t, nil, WithWatchman(watchman), WithExporter(exporter))
	tc.tip.Height = 2050

	watchman.EXPECT().Watch(gomock.Any()).Return(errors.New("no proposals"))
	exporter.EXPECT().Export(gomock.Any(), types.Height(2050)).Return(nil)
	tc.assessor.EXPECT().Assess(gomock.Any(), types.Height(2050), true).Return(newContract(), nil)

	status, err := tc.RunCycle(context.Background())
	require.NoError(t, err)
	require.Equal(t, EmptyContract, status)
}

func TestStatusString(t *testing.T) {
	require.Equal(t, "PENDING_SUPERBLOCK", PendingSupermajority.String())
	require.Equal(t, "NOT_A_CHOSEN_SANCTUARY", NoChosenNode.String())
	require.Equal(t, "UNKNOWN", Status(0).String())
}
