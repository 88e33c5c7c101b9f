package blocks

import (
	"fmt"
	"time"

	"github.com/biblepay/go-gsc/common/types"
	"github.com/biblepay/go-gsc/sql"
)

// Add block with its transactions to the index.
func Add(db sql.Executor, block *types.Block) error {
	if _, err := db.Exec(`insert into blocks (height, hash, timestamp) values (?1, ?2, ?3);`,
		func(stmt *sql.Statement) {
			stmt.BindInt64(1, int64(block.Height))
			stmt.BindBytes(2, block.Hash[:])
			stmt.BindInt64(3, block.Time.Unix())
		}, nil); err != nil {
		return fmt.Errorf("insert block %d: %w", block.Height, err)
	}
	for i, tx := range block.Txs {
		if _, err := db.Exec(`insert into transactions
			(id, height, idx, gsc, message, coin_age, tithe, abn)
			values (?1, ?2, ?3, ?4, ?5, ?6, ?7, ?8);`,
			func(stmt *sql.Statement) {
				stmt.BindBytes(1, tx.ID[:])
				stmt.BindInt64(2, int64(block.Height))
				stmt.BindInt64(3, int64(i))
				stmt.BindBool(4, tx.GSCTransmission)
				stmt.BindText(5, tx.Message)
				stmt.BindFloat(6, tx.CoinAge)
				stmt.BindInt64(7, int64(tx.Tithe))
				stmt.BindBool(8, tx.AntiBotNet)
			}, nil); err != nil {
			return fmt.Errorf("insert tx %s at %d: %w", tx.ID.ShortString(), block.Height, err)
		}
	}
	return nil
}

func decodeHeader(stmt *sql.Statement) types.BlockHeader {
	header := types.BlockHeader{
		Height: types.Height(stmt.ColumnInt64(0)),
		Time:   time.Unix(stmt.ColumnInt64(2), 0),
	}
	stmt.ColumnBytes(1, header.Hash[:])
	return header
}

// Tip returns the header of the highest indexed block.
func Tip(db sql.Executor) (header types.BlockHeader, err error) {
	rows, err := db.Exec("select height, hash, timestamp from blocks order by height desc limit 1;", nil,
		func(stmt *sql.Statement) bool {
			header = decodeHeader(stmt)
			return false
		})
	if err != nil {
		return types.BlockHeader{}, fmt.Errorf("tip: %w", err)
	}
	if rows == 0 {
		return types.BlockHeader{}, fmt.Errorf("tip: %w", sql.ErrNotFound)
	}
	return header, nil
}

// Header returns the header of the block at height.
func Header(db sql.Executor, height types.Height) (header types.BlockHeader, err error) {
	rows, err := db.Exec("select height, hash, timestamp from blocks where height = ?1;",
		func(stmt *sql.Statement) {
			stmt.BindInt64(1, int64(height))
		}, func(stmt *sql.Statement) bool {
			header = decodeHeader(stmt)
			return false
		})
	if err != nil {
		return types.BlockHeader{}, fmt.Errorf("header %d: %w", height, err)
	}
	if rows == 0 {
		return types.BlockHeader{}, fmt.Errorf("header %d: %w", height, sql.ErrNotFound)
	}
	return header, nil
}

// Get returns the block at height with its transactions in block order.
func Get(db sql.Executor, height types.Height) (*types.Block, error) {
	header, err := Header(db, height)
	if err != nil {
		return nil, err
	}
	block := &types.Block{BlockHeader: header}
	if _, err := db.Exec(`select id, gsc, message, coin_age, tithe, abn
		from transactions where height = ?1 order by idx asc;`,
		func(stmt *sql.Statement) {
			stmt.BindInt64(1, int64(height))
		}, func(stmt *sql.Statement) bool {
			tx := &types.Transaction{
				GSCTransmission: stmt.ColumnInt(1) != 0,
				Message:         stmt.ColumnText(2),
				CoinAge:         stmt.ColumnFloat(3),
				Tithe:           types.Amount(stmt.ColumnInt64(4)),
				AntiBotNet:      stmt.ColumnInt(5) != 0,
			}
			stmt.ColumnBytes(0, tx.ID[:])
			block.Txs = append(block.Txs, tx)
			return true
		}); err != nil {
		return nil, fmt.Errorf("transactions %d: %w", height, err)
	}
	return block, nil
}

// HeightByTime returns the highest block with a timestamp not after t.
func HeightByTime(db sql.Executor, t time.Time) (types.Height, error) {
	var height types.Height
	rows, err := db.Exec("select height from blocks where timestamp <= ?1 order by height desc limit 1;",
		func(stmt *sql.Statement) {
			stmt.BindInt64(1, t.Unix())
		}, func(stmt *sql.Statement) bool {
			height = types.Height(stmt.ColumnInt64(0))
			return false
		})
	if err != nil {
		return 0, fmt.Errorf("height by time %s: %w", t, err)
	}
	if rows == 0 {
		return 0, fmt.Errorf("height by time %s: %w", t, sql.ErrNotFound)
	}
	return height, nil
}

// SetBudget records the superblock payments limit effective from height.
func SetBudget(db sql.Executor, from types.Height, limit types.Amount) error {
	if _, err := db.Exec(`insert into budgets (height, payments_limit) values (?1, ?2)
		on conflict (height) do update set payments_limit = ?2;`,
		func(stmt *sql.Statement) {
			stmt.BindInt64(1, int64(from))
			stmt.BindInt64(2, int64(limit))
		}, nil); err != nil {
		return fmt.Errorf("set budget %d: %w", from, err)
	}
	return nil
}

// Budget returns the payments limit effective at height.
func Budget(db sql.Executor, height types.Height) (types.Amount, error) {
	var limit types.Amount
	rows, err := db.Exec(`select payments_limit from budgets where height <= ?1
		order by height desc limit 1;`,
		func(stmt *sql.Statement) {
			stmt.BindInt64(1, int64(height))
		}, func(stmt *sql.Statement) bool {
			limit = types.Amount(stmt.ColumnInt64(0))
			return false
		})
	if err != nil {
		return 0, fmt.Errorf("budget %d: %w", height, err)
	}
	if rows == 0 {
		return 0, fmt.Errorf("budget %d: %w", height, sql.ErrNotFound)
	}
	return limit, nil
}
