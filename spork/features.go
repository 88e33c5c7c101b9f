package spork

import "go.uber.org/zap/zapcore"

// FeatureFlags toggle behaviors that the network switches on and off as a whole.
type FeatureFlags struct {
	// VoteDownNonMatching casts a funding-no vote on one trigger per cycle
	// whose payments differ from the locally computed contract.
	VoteDownNonMatching bool `mapstructure:"vote-down-non-matching"`
	// RelayWinningTrigger re-broadcasts the leading trigger every quorum cycle.
	RelayWinningTrigger bool `mapstructure:"relay-winning-trigger"`
	// FoundationQTPayment appends the foundation price-phase payment.
	FoundationQTPayment bool   `mapstructure:"foundation-qt-payment"`
	FoundationAddress   string `mapstructure:"foundation-address"`
	ExportIdentityList  bool   `mapstructure:"export-identity-list"`
	ExportNodeList      bool   `mapstructure:"export-node-list"`
	// CreateAnywhere lets every sanctuary create triggers regardless of the cascade draw.
	CreateAnywhere bool `mapstructure:"create-anywhere"`
}

func DefaultFeatureFlags() FeatureFlags {
	return FeatureFlags{
		VoteDownNonMatching: true,
	}
}

func (f *FeatureFlags) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddBool("vote down non matching", f.VoteDownNonMatching)
	encoder.AddBool("relay winning trigger", f.RelayWinningTrigger)
	encoder.AddBool("foundation qt payment", f.FoundationQTPayment)
	encoder.AddBool("export identity list", f.ExportIdentityList)
	encoder.AddBool("export node list", f.ExportNodeList)
	encoder.AddBool("create anywhere", f.CreateAnywhere)
	return nil
}
