package presets

import (
	"time"

	"github.com/biblepay/go-gsc/common/types"
	"github.com/biblepay/go-gsc/config"
)

func init() {
	register("testnet", testnet())
}

func testnet() config.Config {
	conf := config.DefaultConfig()
	conf.Network = "test"
	conf.Export.Suffix = "testnet"

	conf.Chain.GovernanceSchedule = types.Schedule{Cycle: 1435}
	conf.Chain.Addresses = types.AddressVersions{PubKeyHash: 140, ScriptHash: 19}

	conf.Quorum.MinimumQuorum = 3
	conf.Quorum.SubmitInterval = 5 * time.Minute
	conf.Features.CreateAnywhere = true
	conf.Features.FoundationQTPayment = false

	conf.Oracle.Price = 0.0004
	conf.Oracle.BTCPrice = 60_000
	conf.ApplyChain()
	return conf
}
