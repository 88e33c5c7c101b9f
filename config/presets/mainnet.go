package presets

import (
	"github.com/biblepay/go-gsc/config"
)

func init() {
	register("mainnet", mainnet())
}

// mainnet leaves the ledger sources and the price feed to the operator's config file.
func mainnet() config.Config {
	conf := config.DefaultConfig()
	conf.Network = "main"
	conf.Export.Suffix = "prod"
	conf.Features.RelayWinningTrigger = true
	conf.ApplyChain()
	return conf
}
