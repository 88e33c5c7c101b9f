package spork

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/biblepay/go-gsc/sql"
	"github.com/biblepay/go-gsc/sql/kvstore"
)

func TestStoreLookupOrder(t *testing.T) {
	db := sql.InMemory()
	require.NoError(t, kvstore.SetSpork(db, "pogtithefactor", 2))
	require.NoError(t, kvstore.SetSpork(db, "GSC_CONTRACT_TYPE", 1))

	store := New(db,
		WithLogger(zaptest.NewLogger(t)),
		WithOverrides(map[string]float64{"gsc_contract_type": 0}),
	)
	require.Equal(t, 2.0, store.Get("PogTitheFactor", 1))
	require.Equal(t, 0.0, store.Get(KeyContractType, 1))
	require.Equal(t, 250.0, store.Get(KeyUnbankedThreshold, 250))

	require.NoError(t, store.Set(KeyUnbankedThreshold, 100))
	require.Equal(t, 100.0, store.Get(KeyUnbankedThreshold, 250))
}

func TestStoreWithoutDatabase(t *testing.T) {
	store := New(nil)
	require.Equal(t, 7.0, store.Get("missing", 7))
	require.NoError(t, store.Set("Missing", 3))
	require.Equal(t, 3.0, store.Get("MISSING", 7))
}

func TestResolveDefaults(t *testing.T) {
	params, err := Resolve(New(nil), []string{"wcg", "KAIROS"})
	require.NoError(t, err)
	require.Equal(t, 0, params.TeamConfiguration)
	require.Equal(t, 250.0, params.UnbankedThreshold)
	require.False(t, params.Mandatory1485)
	require.Equal(t, 1.0, params.TitheFactor)
	require.Equal(t, ContractWholeCoins, params.ContractType)
	require.Equal(t, 0.25, params.MinPayment())
	require.Zero(t, params.CampaignPercentage("WCG"))
	require.Equal(t, 40.0, params.MonthlyRate("kairos"))
	require.Equal(t, 40.0, params.MonthlyRate("unknown"))
	require.Zero(t, params.MinProtocolVersion)
	require.False(t, params.HealthDisabled)
	require.Equal(t, DefaultPrimaryTeam, params.PrimaryTeam)
	require.Equal(t, DefaultSecondaryTeam, params.SecondaryTeam)
	require.Equal(t, 1.3, params.Exponent(DefaultPrimaryTeam))
	require.Equal(t, 1.6, params.Exponent(DefaultSecondaryTeam))
	require.Equal(t, 1.6, params.Exponent(1))
}

func TestResolveOverrides(t *testing.T) {
	store := New(nil, WithOverrides(map[string]float64{
		"WCGcampaignpercentage":     0.7,
		"HEALINGcampaignpercentage": -1,
		"KAIROSmonthlyrate":         60,
		KeyContractType:             1,
		KeyMandatory1485:            1,
		KeyMinProtocol:              70780,
		KeyDisableHealth:            1,
		KeyPaymentBuffer:            500,
		KeyMinPaymentFractional:     0.5,
		KeyPrimaryTeam:              11,
		KeyPrimaryExponent:          1.2,
	}))
	params, err := Resolve(store, []string{"WCG", "HEALING", "KAIROS"})
	require.NoError(t, err)
	require.Equal(t, 0.7, params.CampaignPercentage("wcg"))
	require.Zero(t, params.CampaignPercentage("HEALING"))
	require.Equal(t, 60.0, params.MonthlyRate("KAIROS"))
	require.Equal(t, 0.5, params.MinPayment())
	require.Equal(t, 11, params.PrimaryTeam)
	require.Equal(t, 1.2, params.Exponent(11))
	require.Equal(t, 1.6, params.Exponent(DefaultPrimaryTeam))
	require.True(t, params.Mandatory1485)
	require.Equal(t, uint32(70780), params.MinProtocolVersion)
	require.True(t, params.HealthDisabled)
	require.Equal(t, int64(500), params.PaymentBuffer)
}

func TestResolveInvalidContractType(t *testing.T) {
	store := New(nil, WithOverrides(map[string]float64{KeyContractType: 3}))
	_, err := Resolve(store, nil)
	require.ErrorIs(t, err, ErrInvalidParam)
}

func TestResolveInvalidExponent(t *testing.T) {
	store := New(nil, WithOverrides(map[string]float64{KeySecondaryExponent: 0}))
	_, err := Resolve(store, nil)
	require.ErrorIs(t, err, ErrInvalidParam)
}
