// Package registry exposes campaign identities, researchers and whale
// stakes recorded in the local database to the prominence engine.
package registry

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/biblepay/go-gsc/common/types"
	"github.com/biblepay/go-gsc/sql"
	"github.com/biblepay/go-gsc/sql/identities"
	"github.com/biblepay/go-gsc/sql/researchers"
	"github.com/biblepay/go-gsc/sql/whales"
)

const (
	nickCacheSize = 4096
	nickCacheTTL  = 10 * time.Minute
)

// Directory implements system.IdentityDirectory.
type Directory struct {
	db    sql.Executor
	nicks *expirable.LRU[types.Address, string]
}

func NewDirectory(db sql.Executor) *Directory {
	return &Directory{
		db:    db,
		nicks: expirable.NewLRU[types.Address, string](nickCacheSize, nil, nickCacheTTL),
	}
}

func (d *Directory) NickName(cpk types.Address) (string, error) {
	if nick, ok := d.nicks.Get(cpk); ok {
		return nick, nil
	}
	nick, err := identities.Nickname(d.db, cpk)
	if err != nil {
		return "", err
	}
	d.nicks.Add(cpk, nick)
	return nick, nil
}

func (d *Directory) Sponsorships(charity string, cpk types.Address) ([]types.Sponsorship, error) {
	return identities.Sponsorships(d.db, charity, cpk)
}

func (d *Directory) Members(project string) ([]types.Member, error) {
	return identities.Members(d.db, project)
}

// Register records a nickname for cpk in project.
func (d *Directory) Register(project string, cpk types.Address, nickname string) error {
	if err := identities.Register(d.db, project, cpk, nickname); err != nil {
		return err
	}
	d.nicks.Remove(cpk)
	return nil
}

// Researchers implements system.ResearcherRegistry.
type Researchers struct {
	db sql.Executor
}

func NewResearchers(db sql.Executor) *Researchers {
	return &Researchers{db: db}
}

func (r *Researchers) Researchers(ctx context.Context) (map[string]*types.Researcher, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return researchers.All(r.db)
}

// Whales implements system.WhaleStakes. Stakes maturing during the day
// before a superblock are payable in it.
type Whales struct {
	db           sql.Executor
	blocksPerDay uint32
}

func NewWhales(db sql.Executor, blocksPerDay uint32) *Whales {
	return &Whales{db: db, blocksPerDay: blocksPerDay}
}

func (w *Whales) Payable(ctx context.Context, height types.Height) ([]types.WhaleStake, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return whales.Matured(w.db, height.Sub(w.blocksPerDay), height)
}
