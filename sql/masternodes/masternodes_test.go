package masternodes

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/biblepay/go-gsc/common/types"
	"github.com/biblepay/go-gsc/sql"
)

func TestMasternodes(t *testing.T) {
	db := sql.InMemory()
	count, err := CountValid(db)
	require.NoError(t, err)
	require.Zero(t, count)

	valid := &types.Masternode{Collateral: types.Outpoint{TxID: types.RandomHash()}, OperatorKey: []byte{1}, Valid: true}
	banned := &types.Masternode{Collateral: types.Outpoint{TxID: types.RandomHash(), Index: 3}, OperatorKey: []byte{2}}
	require.NoError(t, Add(db, valid))
	require.NoError(t, Add(db, banned))

	count, err = CountValid(db)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	got, err := Get(db, banned.Collateral)
	require.NoError(t, err)
	require.Equal(t, banned, got)

	banned.Valid = true
	require.NoError(t, Add(db, banned))
	count, err = CountValid(db)
	require.NoError(t, err)
	require.Equal(t, 2, count)

	_, err = Get(db, types.Outpoint{})
	require.ErrorIs(t, err, sql.ErrNotFound)
}
