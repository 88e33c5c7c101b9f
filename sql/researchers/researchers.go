package researchers

import (
	"fmt"

	"github.com/biblepay/go-gsc/common/types"
	"github.com/biblepay/go-gsc/sql"
)

// Add inserts or updates a researcher registration.
func Add(db sql.Executor, r *types.Researcher) error {
	if _, err := db.Exec(`insert into researchers (cpid, cpk, rac, team) values (?1, ?2, ?3, ?4)
		on conflict (cpid) do update set cpk = ?2, rac = ?3, team = ?4;`,
		func(stmt *sql.Statement) {
			stmt.BindText(1, r.CPID)
			stmt.BindText(2, string(r.CPK))
			stmt.BindFloat(3, r.RAC)
			stmt.BindInt64(4, int64(r.TeamID))
		}, nil); err != nil {
		return fmt.Errorf("insert researcher %s: %w", r.CPID, err)
	}
	return nil
}

// All returns every registered researcher keyed by CPID. Accumulated coin age starts at zero.
func All(db sql.Executor) (map[string]*types.Researcher, error) {
	rst := make(map[string]*types.Researcher)
	if _, err := db.Exec("select cpid, cpk, rac, team from researchers;", nil,
		func(stmt *sql.Statement) bool {
			r := &types.Researcher{
				CPID:   stmt.ColumnText(0),
				CPK:    types.Address(stmt.ColumnText(1)),
				RAC:    stmt.ColumnFloat(2),
				TeamID: stmt.ColumnInt(3),
				Found:  true,
			}
			rst[r.CPID] = r
			return true
		}); err != nil {
		return nil, fmt.Errorf("researchers: %w", err)
	}
	return rst, nil
}
