package whales

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/biblepay/go-gsc/common/types"
	"github.com/biblepay/go-gsc/sql"
)

func TestMatured(t *testing.T) {
	db := sql.InMemory()
	require.NoError(t, Add(db, 100, types.WhaleStake{ReturnAddress: "Ba", TotalOwed: 10}))
	require.NoError(t, Add(db, 150, types.WhaleStake{ReturnAddress: "Bb", TotalOwed: 20.5}))
	require.NoError(t, Add(db, 200, types.WhaleStake{ReturnAddress: "Bc", TotalOwed: 30}))

	rst, err := Matured(db, 100, 200)
	require.NoError(t, err)
	require.Equal(t, []types.WhaleStake{
		{ReturnAddress: "Ba", TotalOwed: 10, Found: true},
		{ReturnAddress: "Bb", TotalOwed: 20.5, Found: true},
	}, rst)

	rst, err = Matured(db, 201, 300)
	require.NoError(t, err)
	require.Empty(t, rst)
}
