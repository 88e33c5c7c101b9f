package researchers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/biblepay/go-gsc/common/types"
	"github.com/biblepay/go-gsc/sql"
)

func TestResearchers(t *testing.T) {
	db := sql.InMemory()
	all, err := All(db)
	require.NoError(t, err)
	require.Empty(t, all)

	r := &types.Researcher{CPID: "0123456789abcdef0123456789abcdef", CPK: "Baddr", RAC: 120.5, TeamID: 35006}
	require.NoError(t, Add(db, r))
	r.RAC = 130
	require.NoError(t, Add(db, r))

	all, err = All(db)
	require.NoError(t, err)
	require.Len(t, all, 1)
	got := all[r.CPID]
	require.True(t, got.Found)
	require.Equal(t, 130.0, got.RAC)
	require.Equal(t, r.CPK, got.CPK)
	require.Equal(t, 35006, got.TeamID)
	require.Zero(t, got.CoinAge)
}
