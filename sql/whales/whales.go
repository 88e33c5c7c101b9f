package whales

import (
	"fmt"

	"github.com/biblepay/go-gsc/common/types"
	"github.com/biblepay/go-gsc/sql"
)

// Add records a stake that matures at the given height.
func Add(db sql.Executor, maturity types.Height, stake types.WhaleStake) error {
	if _, err := db.Exec(`insert into whale_stakes (maturity, return_address, total_owed) values (?1, ?2, ?3);`,
		func(stmt *sql.Statement) {
			stmt.BindInt64(1, int64(maturity))
			stmt.BindText(2, string(stake.ReturnAddress))
			stmt.BindFloat(3, stake.TotalOwed)
		}, nil); err != nil {
		return fmt.Errorf("add whale stake %s: %w", stake.ReturnAddress, err)
	}
	return nil
}

// Matured returns stakes maturing in [from, to) in insertion order.
func Matured(db sql.Executor, from, to types.Height) (rst []types.WhaleStake, err error) {
	if _, err := db.Exec(`select return_address, total_owed from whale_stakes
		where maturity >= ?1 and maturity < ?2 order by id;`,
		func(stmt *sql.Statement) {
			stmt.BindInt64(1, int64(from))
			stmt.BindInt64(2, int64(to))
		}, func(stmt *sql.Statement) bool {
			rst = append(rst, types.WhaleStake{
				ReturnAddress: types.Address(stmt.ColumnText(0)),
				TotalOwed:     stmt.ColumnFloat(1),
				Found:         true,
			})
			return true
		}); err != nil {
		return nil, fmt.Errorf("matured stakes [%d, %d): %w", from, to, err)
	}
	return rst, nil
}
