package masternodes

import (
	"fmt"

	"github.com/biblepay/go-gsc/common/types"
	"github.com/biblepay/go-gsc/sql"
)

// Add inserts or updates a masternode list entry.
func Add(db sql.Executor, mn *types.Masternode) error {
	if _, err := db.Exec(`insert into masternodes (collateral, operator_key, valid) values (?1, ?2, ?3)
		on conflict (collateral) do update set operator_key = ?2, valid = ?3;`,
		func(stmt *sql.Statement) {
			stmt.BindBytes(1, mn.Collateral.Bytes())
			stmt.BindBytes(2, mn.OperatorKey)
			stmt.BindBool(3, mn.Valid)
		}, nil); err != nil {
		return fmt.Errorf("insert masternode %s: %w", mn.Collateral, err)
	}
	return nil
}

// Get returns the masternode with the given collateral.
func Get(db sql.Executor, collateral types.Outpoint) (*types.Masternode, error) {
	var mn *types.Masternode
	rows, err := db.Exec("select operator_key, valid from masternodes where collateral = ?1;",
		func(stmt *sql.Statement) {
			stmt.BindBytes(1, collateral.Bytes())
		}, func(stmt *sql.Statement) bool {
			mn = &types.Masternode{
				Collateral:  collateral,
				OperatorKey: sql.ColumnBytes(stmt, 0),
				Valid:       stmt.ColumnInt(1) != 0,
			}
			return false
		})
	if err != nil {
		return nil, fmt.Errorf("get masternode %s: %w", collateral, err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("get masternode %s: %w", collateral, sql.ErrNotFound)
	}
	return mn, nil
}

// CountValid returns the number of valid masternodes.
func CountValid(db sql.Executor) (int, error) {
	var count int
	if _, err := db.Exec("select count(*) from masternodes where valid = 1;", nil,
		func(stmt *sql.Statement) bool {
			count = stmt.ColumnInt(0)
			return false
		}); err != nil {
		return 0, fmt.Errorf("count masternodes: %w", err)
	}
	return count, nil
}
