package govobjects

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/biblepay/go-gsc/common/types"
	"github.com/biblepay/go-gsc/sql"
)

func newObject(created time.Time) *types.GovernanceObject {
	return &types.GovernanceObject{
		Hash:         types.RandomHash(),
		Type:         types.TriggerObject,
		CreationTime: created,
		Collateral:   types.Outpoint{TxID: types.RandomHash(), Index: 1},
		Data:         []byte(`[["trigger",{}]]`),
		Signature:    []byte{1, 2, 3},
	}
}

func TestAddGet(t *testing.T) {
	db := sql.InMemory()
	obj := newObject(time.Unix(1000, 0))
	require.NoError(t, Add(db, obj, 200))
	require.ErrorIs(t, Add(db, obj, 200), sql.ErrObjectExists)

	got, err := Get(db, obj.Hash)
	require.NoError(t, err)
	require.Equal(t, obj, got)

	_, err = Get(db, types.RandomHash())
	require.ErrorIs(t, err, sql.ErrNotFound)
}

func TestVoteTallies(t *testing.T) {
	db := sql.InMemory()
	obj := newObject(time.Unix(1000, 0))
	require.NoError(t, Add(db, obj, 200))

	voters := []types.Outpoint{{Index: 1}, {Index: 2}, {Index: 3}, {Index: 4}}
	outcomes := []types.VoteOutcome{types.OutcomeYes, types.OutcomeYes, types.OutcomeNo, types.OutcomeAbstain}
	for i, voter := range voters {
		require.NoError(t, AddVote(db, &types.Vote{
			Object: obj.Hash, Voter: voter, Signal: types.SignalFunding,
			Outcome: outcomes[i], Time: time.Unix(2000, 0),
		}))
	}
	require.NoError(t, AddVote(db, &types.Vote{
		Object: obj.Hash, Voter: voters[0], Signal: types.SignalDelete,
		Outcome: types.OutcomeYes, Time: time.Unix(2000, 0),
	}))

	got, err := Get(db, obj.Hash)
	require.NoError(t, err)
	require.Equal(t, 2, got.YesCount)
	require.Equal(t, 1, got.NoCount)
	require.Equal(t, 1, got.AbstainCount)
	require.Equal(t, 1, got.DeleteYesCount)

	// newer vote replaces, older is ignored
	require.NoError(t, AddVote(db, &types.Vote{
		Object: obj.Hash, Voter: voters[2], Signal: types.SignalFunding,
		Outcome: types.OutcomeYes, Time: time.Unix(3000, 0),
	}))
	require.NoError(t, AddVote(db, &types.Vote{
		Object: obj.Hash, Voter: voters[2], Signal: types.SignalFunding,
		Outcome: types.OutcomeNo, Time: time.Unix(2500, 0),
	}))
	outcome, err := Vote(db, obj.Hash, voters[2], types.SignalFunding)
	require.NoError(t, err)
	require.Equal(t, types.OutcomeYes, outcome)

	got, err = Get(db, obj.Hash)
	require.NoError(t, err)
	require.Equal(t, 3, got.YesCount)
	require.Zero(t, got.NoCount)

	_, err = Vote(db, obj.Hash, voters[3], types.SignalDelete)
	require.ErrorIs(t, err, sql.ErrNotFound)
}

func TestNewerThanAndDelete(t *testing.T) {
	db := sql.InMemory()
	old := newObject(time.Unix(1000, 0))
	fresh := newObject(time.Unix(5000, 0))
	require.NoError(t, Add(db, old, 100))
	require.NoError(t, Add(db, fresh, 200))
	require.NoError(t, AddVote(db, &types.Vote{Object: old.Hash, Signal: types.SignalFunding, Outcome: types.OutcomeYes}))

	objs, err := NewerThan(db, time.Unix(2000, 0))
	require.NoError(t, err)
	require.Len(t, objs, 1)
	require.Equal(t, fresh.Hash, objs[0].Hash)

	objs, err = NewerThan(db, time.Unix(0, 0))
	require.NoError(t, err)
	require.Len(t, objs, 2)
	require.Negative(t, objs[0].Hash.Compare(objs[1].Hash))

	n, err := DeleteOlderThan(db, time.Unix(2000, 0))
	require.NoError(t, err)
	require.Equal(t, 1, n)
	_, err = Get(db, old.Hash)
	require.ErrorIs(t, err, sql.ErrNotFound)
	_, err = Vote(db, old.Hash, types.Outpoint{}, types.SignalFunding)
	require.ErrorIs(t, err, sql.ErrNotFound)
}
