package campaign

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"github.com/biblepay/go-gsc/common/types"
	"github.com/biblepay/go-gsc/spork"
	"github.com/biblepay/go-gsc/system/mocks"
)

func defaultParams(tb testing.TB, overrides map[string]float64) *spork.Params {
	tb.Helper()
	params, err := spork.Resolve(spork.New(nil, spork.WithOverrides(overrides)), DefaultCampaigns())
	require.NoError(tb, err)
	return params
}

type testRules struct {
	*Rules
	directory *mocks.MockIdentityDirectory
	ledger    *mocks.MockChildLedger
}

func newTestRules(t *testing.T, opts ...Opt) *testRules {
	ctrl := gomock.NewController(t)
	tr := &testRules{
		directory: mocks.NewMockIdentityDirectory(ctrl),
		ledger:    mocks.NewMockChildLedger(ctrl),
	}
	tr.Rules = New(tr.directory, tr.ledger, append(opts, WithLogger(zaptest.NewLogger(t)))...)
	return tr
}

func TestScore(t *testing.T) {
	params := defaultParams(t, map[string]float64{spork.KeyTitheFactor: 2})
	for _, tc := range []struct {
		desc     string
		campaign string
		diary    string
		coinAge  float64
		donation types.Amount
		expect   float64
	}{
		{desc: "wcg is coin age", campaign: "WCG", coinAge: 1234.5, expect: 1234.5},
		{desc: "lowercase name", campaign: "wcg", coinAge: 10, expect: 10},
		{desc: "pog", campaign: POG, coinAge: 3000, donation: 8 * types.Coin, expect: 3000 * 2 * 2 / 1000.0},
		{desc: "pog small tithe", campaign: POG, coinAge: 3000, donation: types.Coin / 5},
		{desc: "healing with diary", campaign: Healing, diary: "prayed", coinAge: 5000, expect: 5},
		{desc: "healing without diary", campaign: Healing, coinAge: 5000},
		{desc: "unknown", campaign: "MINING", coinAge: 5000},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			tr := newTestRules(t)
			points, err := tr.Score(context.Background(), params, tc.campaign, tc.diary, tc.coinAge, tc.donation, "addr")
			require.NoError(t, err)
			require.InDelta(t, tc.expect, points, 1e-9)
		})
	}
}

func TestSponsorCredit(t *testing.T) {
	params := defaultParams(t, map[string]float64{"KAIROSmonthlyrate": 60})
	tr := newTestRules(t)
	cpk := types.Address("sponsor")
	tr.directory.EXPECT().Sponsorships(Kairos, cpk).Return([]types.Sponsorship{
		{Charity: Kairos, SponsorCPK: cpk, ChildID: "c1"},
		{Charity: Kairos, SponsorCPK: cpk, ChildID: "c2"},
		{Charity: Kairos, SponsorCPK: cpk, ChildID: "c3"},
		{Charity: Kairos, SponsorCPK: cpk, ChildID: ""},
		{Charity: Kairos, SponsorCPK: "other", ChildID: "c4"},
	}, nil)
	tr.ledger.EXPECT().Balance(gomock.Any(), Kairos, "c1").Return(-10.0, true, nil)
	tr.ledger.EXPECT().Balance(gomock.Any(), Kairos, "c2").Return(5.0, true, nil)
	tr.ledger.EXPECT().Balance(gomock.Any(), Kairos, "c3").Return(0.0, false, nil)

	points, err := tr.Score(context.Background(), params, "kairos", "", 0, 0, cpk)
	require.NoError(t, err)
	require.InDelta(t, 60.0/30*1000, points, 1e-9)
}

func TestSponsorCreditLedgerFailure(t *testing.T) {
	params := defaultParams(t, nil)
	tr := newTestRules(t)
	errUnavailable := errors.New("unavailable")
	tr.directory.EXPECT().Sponsorships(CameroonOne, types.Address("a")).Return([]types.Sponsorship{
		{Charity: CameroonOne, SponsorCPK: "a", ChildID: "c1"},
	}, nil)
	tr.ledger.EXPECT().Balance(gomock.Any(), CameroonOne, "c1").Return(0.0, false, errUnavailable)

	_, err := tr.SponsorCredit(context.Background(), params, CameroonOne, "a")
	require.ErrorIs(t, err, errUnavailable)
}

func TestKnown(t *testing.T) {
	tr := newTestRules(t, WithCampaigns([]string{"wcg", "Healing"}))
	require.True(t, tr.Known("WCG"))
	require.True(t, tr.Known("healing"))
	require.False(t, tr.Known("POG"))
	require.Equal(t, []string{"HEALING", "WCG"}, tr.Campaigns())

	require.True(t, IsCharity("kairos"))
	require.False(t, IsCharity(WCG))
}

func TestRequiredCoinAge(t *testing.T) {
	for _, tc := range []struct {
		desc   string
		config float64
		rac    float64
		team   int
		expect float64
	}{
		{desc: "primary team", rac: 1000, team: spork.DefaultPrimaryTeam, expect: math.Pow(1000, 1.3)},
		{desc: "unbanked", rac: 250, team: spork.DefaultPrimaryTeam, expect: 0},
		{desc: "unbanked only primary", rac: 100, team: 1, expect: math.Pow(100, 1.6)},
		{desc: "other team", rac: 1000, team: 1, expect: math.Pow(1000, 1.6)},
		{desc: "config 1 secondary", config: 1, rac: 1000, team: spork.DefaultSecondaryTeam, expect: math.Pow(1000, 1.6)},
		{desc: "config 1 other", config: 1, rac: 1000, team: 1, expect: Unreachable},
		{desc: "config 2 primary", config: 2, rac: 1000, team: spork.DefaultPrimaryTeam, expect: math.Pow(1000, 1.3)},
		{desc: "config 2 secondary", config: 2, rac: 1000, team: spork.DefaultSecondaryTeam, expect: Unreachable},
		{desc: "unknown config", config: 7, rac: 10, team: spork.DefaultPrimaryTeam, expect: Unreachable},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			params := defaultParams(t, map[string]float64{spork.KeyTeamConfiguration: tc.config})
			require.InDelta(t, tc.expect, RequiredCoinAge(tc.rac, tc.team, params), 1e-6)
		})
	}
}

func TestRequiredCoinAgeSporkOverrides(t *testing.T) {
	params := defaultParams(t, map[string]float64{
		spork.KeyTeamConfiguration: 2,
		spork.KeyPrimaryTeam:       7,
		spork.KeyPrimaryExponent:   1.1,
		spork.KeySecondaryExponent: 2,
	})
	require.InDelta(t, math.Pow(1000, 1.1), RequiredCoinAge(1000, 7, params), 1e-6)
	require.Zero(t, RequiredCoinAge(100, 7, params))
	require.Equal(t, Unreachable, RequiredCoinAge(1000, spork.DefaultPrimaryTeam, params))

	params = defaultParams(t, map[string]float64{spork.KeySecondaryExponent: 2})
	require.InDelta(t, 1e6, RequiredCoinAge(1000, spork.DefaultSecondaryTeam, params), 1e-6)

	r := &types.Researcher{
		CPID:    "0123456789abcdef0123456789abcdef",
		RAC:     1000,
		TeamID:  spork.DefaultSecondaryTeam,
		CoinAge: 1e6,
		Found:   true,
	}
	points, ok := Credit(r, params)
	require.True(t, ok)
	require.Equal(t, 1000.0, points)
}

func TestCredit(t *testing.T) {
	const cpid = "0123456789abcdef0123456789abcdef"
	t.Run("sufficient coin age", func(t *testing.T) {
		r := &types.Researcher{CPID: cpid, RAC: 1000, TeamID: spork.DefaultPrimaryTeam, CoinAge: 1e6, Found: true}
		points, ok := Credit(r, defaultParams(t, nil))
		require.True(t, ok)
		require.Equal(t, 1000.0, points)
	})
	t.Run("unbanked", func(t *testing.T) {
		r := &types.Researcher{CPID: cpid, RAC: 100, TeamID: spork.DefaultPrimaryTeam, Found: true}
		points, ok := Credit(r, defaultParams(t, nil))
		require.True(t, ok)
		require.Equal(t, 100.0, points)
	})
	t.Run("reduced once", func(t *testing.T) {
		rac := 1000.0
		reduced := math.Pow(rac-1, 1/1.3)
		r := &types.Researcher{CPID: cpid, RAC: rac, TeamID: 1, CoinAge: math.Pow(reduced, 1.6) + 1, Found: true}
		points, ok := Credit(r, defaultParams(t, nil))
		require.True(t, ok)
		require.InDelta(t, reduced, points, 1e-9)
	})
	t.Run("reduced to stake", func(t *testing.T) {
		r := &types.Researcher{CPID: cpid, RAC: 5000, TeamID: 1, CoinAge: 10001, Found: true}
		points, ok := Credit(r, defaultParams(t, map[string]float64{spork.KeyMandatory1485: 1}))
		require.True(t, ok)
		require.InDelta(t, math.Pow(10000, 1/1.6), points, 1e-9)
	})
	t.Run("insufficient after reduction", func(t *testing.T) {
		r := &types.Researcher{CPID: cpid, RAC: 100000, TeamID: 1, CoinAge: 10, Found: true}
		_, ok := Credit(r, defaultParams(t, nil))
		require.False(t, ok)
	})
	t.Run("negative stake", func(t *testing.T) {
		r := &types.Researcher{CPID: cpid, RAC: 5000, TeamID: 1, CoinAge: 0, Found: true}
		_, ok := Credit(r, defaultParams(t, map[string]float64{spork.KeyMandatory1485: 1}))
		require.False(t, ok)
	})
	t.Run("team not accepted", func(t *testing.T) {
		r := &types.Researcher{CPID: cpid, RAC: 10, TeamID: 1, CoinAge: 1e9, Found: true}
		_, ok := Credit(r, defaultParams(t, map[string]float64{spork.KeyTeamConfiguration: 2}))
		require.False(t, ok)
	})
	t.Run("invalid cpid", func(t *testing.T) {
		r := &types.Researcher{CPID: "short", RAC: 10, TeamID: spork.DefaultPrimaryTeam, CoinAge: 1e9, Found: true}
		_, ok := Credit(r, defaultParams(t, nil))
		require.False(t, ok)
	})
}
