package kvstore

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/biblepay/go-gsc/sql"
)

const sporkPrefix = "spork/"

func put(db sql.Executor, key string, value []byte) error {
	if _, err := db.Exec(`
		insert into kvstore (id, value) values (?1, ?2)
		on conflict (id) do
		update set value = ?2;`,
		func(stmt *sql.Statement) {
			stmt.BindText(1, key)
			stmt.BindBytes(2, value)
		}, nil); err != nil {
		return fmt.Errorf("failed to insert value: %w", err)
	}
	return nil
}

func get(db sql.Executor, key string) (val []byte, err error) {
	if rows, err := db.Exec("select value from kvstore where id = ?1;", func(stmt *sql.Statement) {
		stmt.BindText(1, key)
	}, func(stmt *sql.Statement) bool {
		val = sql.ColumnBytes(stmt, 0)
		return true
	}); err != nil {
		return nil, fmt.Errorf("failed to get value: %w", err)
	} else if rows == 0 {
		return nil, fmt.Errorf("failed to get value: %w", sql.ErrNotFound)
	}
	return val, nil
}

func remove(db sql.Executor, key string) error {
	if _, err := db.Exec("delete from kvstore where id = ?1;", func(stmt *sql.Statement) {
		stmt.BindText(1, key)
	}, nil); err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}
	return nil
}

func sporkKey(name string) string {
	return sporkPrefix + strings.ToLower(name)
}

// SetSpork stores a network parameter. Names are case-insensitive.
func SetSpork(db sql.Executor, name string, value float64) error {
	return put(db, sporkKey(name), []byte(strconv.FormatFloat(value, 'g', -1, 64)))
}

// Spork returns a network parameter or sql.ErrNotFound.
func Spork(db sql.Executor, name string) (float64, error) {
	raw, err := get(db, sporkKey(name))
	if err != nil {
		return 0, err
	}
	val, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("spork %s: %w", name, err)
	}
	return val, nil
}

// ClearSpork removes a network parameter.
func ClearSpork(db sql.Executor, name string) error {
	return remove(db, sporkKey(name))
}

// Sporks returns all stored network parameters keyed by lowercase name.
func Sporks(db sql.Executor) (map[string]float64, error) {
	rst := make(map[string]float64)
	var perr error
	if _, err := db.Exec("select id, value from kvstore where id like ?1;",
		func(stmt *sql.Statement) {
			stmt.BindText(1, sporkPrefix+"%")
		}, func(stmt *sql.Statement) bool {
			name := strings.TrimPrefix(stmt.ColumnText(0), sporkPrefix)
			val, err := strconv.ParseFloat(string(sql.ColumnBytes(stmt, 1)), 64)
			if err != nil {
				perr = fmt.Errorf("spork %s: %w", name, err)
				return false
			}
			rst[name] = val
			return true
		}); err != nil {
		return nil, fmt.Errorf("sporks: %w", err)
	}
	return rst, perr
}
