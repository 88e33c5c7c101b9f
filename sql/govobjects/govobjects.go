package govobjects

import (
	"fmt"
	"time"

	"github.com/biblepay/go-gsc/common/types"
	"github.com/biblepay/go-gsc/sql"
)

const fullQuery = `select g.hash, g.type, g.created, g.collateral, g.data, g.signature,
	(select count(*) from votes v where v.object = g.hash and v.signal = 1 and v.outcome = 1),
	(select count(*) from votes v where v.object = g.hash and v.signal = 1 and v.outcome = 2),
	(select count(*) from votes v where v.object = g.hash and v.signal = 1 and v.outcome = 3),
	(select count(*) from votes v where v.object = g.hash and v.signal = 2 and v.outcome = 1)
	from govobjects g`

// Add a governance object. Triggers are indexed by the superblock height they pay at.
func Add(db sql.Executor, obj *types.GovernanceObject, eventHeight types.Height) error {
	if _, err := db.Exec(`insert into govobjects
		(hash, type, created, collateral, data, signature, event_height)
		values (?1, ?2, ?3, ?4, ?5, ?6, ?7);`,
		func(stmt *sql.Statement) {
			stmt.BindBytes(1, obj.Hash[:])
			stmt.BindInt64(2, int64(obj.Type))
			stmt.BindInt64(3, obj.CreationTime.Unix())
			stmt.BindBytes(4, obj.Collateral.Bytes())
			stmt.BindBytes(5, obj.Data)
			stmt.BindBytes(6, obj.Signature)
			if obj.Type == types.TriggerObject {
				stmt.BindInt64(7, int64(eventHeight))
			} else {
				stmt.BindNull(7)
			}
		}, nil); err != nil {
		return fmt.Errorf("insert govobject %s: %w", obj.Hash.ShortString(), err)
	}
	return nil
}

func decodeObject(stmt *sql.Statement) (*types.GovernanceObject, error) {
	obj := &types.GovernanceObject{
		Type:           types.GovObjectType(stmt.ColumnInt64(1)),
		CreationTime:   time.Unix(stmt.ColumnInt64(2), 0),
		Data:           sql.ColumnBytes(stmt, 4),
		Signature:      sql.ColumnBytes(stmt, 5),
		YesCount:       stmt.ColumnInt(6),
		NoCount:        stmt.ColumnInt(7),
		AbstainCount:   stmt.ColumnInt(8),
		DeleteYesCount: stmt.ColumnInt(9),
	}
	stmt.ColumnBytes(0, obj.Hash[:])
	collateral, err := types.OutpointFromBytes(sql.ColumnBytes(stmt, 3))
	if err != nil {
		return nil, fmt.Errorf("object %s: %w", obj.Hash.ShortString(), err)
	}
	obj.Collateral = collateral
	return obj, nil
}

// Get returns the object with its current vote tallies.
func Get(db sql.Executor, hash types.Hash32) (obj *types.GovernanceObject, err error) {
	var derr error
	rows, err := db.Exec(fullQuery+" where g.hash = ?1;",
		func(stmt *sql.Statement) {
			stmt.BindBytes(1, hash[:])
		}, func(stmt *sql.Statement) bool {
			obj, derr = decodeObject(stmt)
			return false
		})
	if err != nil {
		return nil, fmt.Errorf("get govobject %s: %w", hash.ShortString(), err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("get govobject %s: %w", hash.ShortString(), sql.ErrNotFound)
	}
	return obj, derr
}

// NewerThan returns objects created after t, ordered by hash.
func NewerThan(db sql.Executor, t time.Time) (rst []*types.GovernanceObject, err error) {
	var derr error
	if _, err := db.Exec(fullQuery+" where g.created > ?1 order by g.hash;",
		func(stmt *sql.Statement) {
			stmt.BindInt64(1, t.Unix())
		}, func(stmt *sql.Statement) bool {
			var obj *types.GovernanceObject
			obj, derr = decodeObject(stmt)
			if derr != nil {
				return false
			}
			rst = append(rst, obj)
			return true
		}); err != nil {
		return nil, fmt.Errorf("govobjects newer than %s: %w", t, err)
	}
	return rst, derr
}

// AddVote records a vote. A later vote from the same voter on the same signal replaces the earlier one.
func AddVote(db sql.Executor, vote *types.Vote) error {
	if _, err := db.Exec(`insert into votes (object, voter, signal, outcome, timestamp, signature)
		values (?1, ?2, ?3, ?4, ?5, ?6)
		on conflict (object, voter, signal) do update
		set outcome = ?4, timestamp = ?5, signature = ?6
		where ?5 > timestamp;`,
		func(stmt *sql.Statement) {
			stmt.BindBytes(1, vote.Object[:])
			stmt.BindBytes(2, vote.Voter.Bytes())
			stmt.BindInt64(3, int64(vote.Signal))
			stmt.BindInt64(4, int64(vote.Outcome))
			stmt.BindInt64(5, vote.Time.Unix())
			stmt.BindBytes(6, vote.Signature)
		}, nil); err != nil {
		return fmt.Errorf("insert vote on %s: %w", vote.Object.ShortString(), err)
	}
	return nil
}

// Vote returns the outcome recorded by voter for an object and signal.
func Vote(db sql.Executor, object types.Hash32, voter types.Outpoint, signal types.VoteSignal) (types.VoteOutcome, error) {
	var outcome types.VoteOutcome
	rows, err := db.Exec(`select outcome from votes where object = ?1 and voter = ?2 and signal = ?3;`,
		func(stmt *sql.Statement) {
			stmt.BindBytes(1, object[:])
			stmt.BindBytes(2, voter.Bytes())
			stmt.BindInt64(3, int64(signal))
		}, func(stmt *sql.Statement) bool {
			outcome = types.VoteOutcome(stmt.ColumnInt64(0))
			return false
		})
	if err != nil {
		return 0, fmt.Errorf("vote on %s: %w", object.ShortString(), err)
	}
	if rows == 0 {
		return 0, fmt.Errorf("vote on %s: %w", object.ShortString(), sql.ErrNotFound)
	}
	return outcome, nil
}

// DeleteOlderThan removes objects created before t together with their votes.
func DeleteOlderThan(db sql.Executor, t time.Time) (int, error) {
	if _, err := db.Exec(`delete from votes where object in
		(select hash from govobjects where created < ?1);`,
		func(stmt *sql.Statement) {
			stmt.BindInt64(1, t.Unix())
		}, nil); err != nil {
		return 0, fmt.Errorf("delete votes before %s: %w", t, err)
	}
	n, err := db.Exec(`delete from govobjects where created < ?1 returning hash;`,
		func(stmt *sql.Statement) {
			stmt.BindInt64(1, t.Unix())
		}, nil)
	if err != nil {
		return 0, fmt.Errorf("delete govobjects before %s: %w", t, err)
	}
	return n, nil
}
