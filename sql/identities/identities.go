package identities

import (
	"fmt"

	"github.com/biblepay/go-gsc/common/types"
	"github.com/biblepay/go-gsc/sql"
)

// Projects identities register with.
const (
	ProjectCPK  = "cpk"
	ProjectNode = "node"
)

// Register records the nickname cpk registered with in project.
func Register(db sql.Executor, project string, cpk types.Address, nickname string) error {
	if _, err := db.Exec(`insert into registrations (project, cpk, nickname) values (?1, ?2, ?3)
		on conflict (project, cpk) do update set nickname = ?3;`,
		func(stmt *sql.Statement) {
			stmt.BindText(1, project)
			stmt.BindText(2, string(cpk))
			stmt.BindText(3, nickname)
		}, nil); err != nil {
		return fmt.Errorf("register %s/%s: %w", project, cpk, err)
	}
	return nil
}

// Nickname returns the nickname of a campaign identity, or an empty string when none is registered.
func Nickname(db sql.Executor, cpk types.Address) (string, error) {
	var nickname string
	if _, err := db.Exec("select nickname from registrations where project = ?1 and cpk = ?2;",
		func(stmt *sql.Statement) {
			stmt.BindText(1, ProjectCPK)
			stmt.BindText(2, string(cpk))
		}, func(stmt *sql.Statement) bool {
			nickname = stmt.ColumnText(0)
			return false
		}); err != nil {
		return "", fmt.Errorf("nickname %s: %w", cpk, err)
	}
	return nickname, nil
}

// Members lists the identities registered in project ordered by cpk.
func Members(db sql.Executor, project string) (rst []types.Member, err error) {
	if _, err := db.Exec(`select cpk, nickname from registrations where project = ?1 order by cpk;`,
		func(stmt *sql.Statement) {
			stmt.BindText(1, project)
		}, func(stmt *sql.Statement) bool {
			rst = append(rst, types.Member{
				CPK:      types.Address(stmt.ColumnText(0)),
				NickName: stmt.ColumnText(1),
			})
			return true
		}); err != nil {
		return nil, fmt.Errorf("members of %s: %w", project, err)
	}
	return rst, nil
}

// AddSponsorship records that cpk sponsors childID through charity.
func AddSponsorship(db sql.Executor, s types.Sponsorship) error {
	if _, err := db.Exec(`insert into sponsorships (charity, cpk, child_id) values (?1, ?2, ?3);`,
		func(stmt *sql.Statement) {
			stmt.BindText(1, s.Charity)
			stmt.BindText(2, string(s.SponsorCPK))
			stmt.BindText(3, s.ChildID)
		}, nil); err != nil {
		return fmt.Errorf("add sponsorship %s/%s: %w", s.Charity, s.ChildID, err)
	}
	return nil
}

// Sponsorships returns the children sponsored by cpk through charity, ordered by child id.
func Sponsorships(db sql.Executor, charity string, cpk types.Address) (rst []types.Sponsorship, err error) {
	if _, err := db.Exec(`select child_id from sponsorships where charity = ?1 and cpk = ?2
		order by child_id;`,
		func(stmt *sql.Statement) {
			stmt.BindText(1, charity)
			stmt.BindText(2, string(cpk))
		}, func(stmt *sql.Statement) bool {
			rst = append(rst, types.Sponsorship{
				Charity:    charity,
				SponsorCPK: cpk,
				ChildID:    stmt.ColumnText(0),
			})
			return true
		}); err != nil {
		return nil, fmt.Errorf("sponsorships %s/%s: %w", charity, cpk, err)
	}
	return rst, nil
}
