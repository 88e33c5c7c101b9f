package kvstore

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/biblepay/go-gsc/sql"
)

func TestSpork(t *testing.T) {
	db := sql.InMemory()
	_, err := Spork(db, "PODCTeamConfiguration")
	require.ErrorIs(t, err, sql.ErrNotFound)

	require.NoError(t, SetSpork(db, "PODCTeamConfiguration", 1))
	require.NoError(t, SetSpork(db, "podcteamconfiguration", 2))
	require.NoError(t, SetSpork(db, "WCGCampaignPercentage", 0.25))

	val, err := Spork(db, "PODCTEAMCONFIGURATION")
	require.NoError(t, err)
	require.Equal(t, 2.0, val)

	all, err := Sporks(db)
	require.NoError(t, err)
	require.Equal(t, map[string]float64{
		"podcteamconfiguration": 2,
		"wcgcampaignpercentage": 0.25,
	}, all)

	require.NoError(t, ClearSpork(db, "WCGCampaignPercentage"))
	_, err = Spork(db, "wcgcampaignpercentage")
	require.ErrorIs(t, err, sql.ErrNotFound)
}
