package spork

import (
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/biblepay/go-gsc/system"
)

// Parameter keys.
const (
	KeyTeamConfiguration = "PODCTeamConfiguration"
	KeyUnbankedThreshold = "PODCUNBANKEDTHRESHHOLD"
	KeyMandatory1485     = "mandatory1485"
	KeyTitheFactor       = "pogtithefactor"
	KeyContractType      = "GSC_CONTRACT_TYPE"
	KeyPaymentBuffer     = "gscbuffer"
	KeyMinProtocol       = "MIN_GSC_PROTO_VERSION"
	KeyDisableHealth     = "disablegschealthcheck"

	KeyPrimaryTeam          = "PODCPrimaryTeam"
	KeySecondaryTeam        = "PODCSecondaryTeam"
	KeyPrimaryExponent      = "PODCPrimaryExponent"
	KeySecondaryExponent    = "PODCSecondaryExponent"
	KeyMinPaymentWhole      = "gscminpayment0"
	KeyMinPaymentFractional = "gscminpayment1"

	suffixPercentage  = "campaignpercentage"
	suffixMonthlyRate = "monthlyrate"
)

// Default research team identifiers and the coin-age exponents applied to them.
const (
	DefaultPrimaryTeam       = 35006
	DefaultSecondaryTeam     = 30513
	DefaultPrimaryExponent   = 1.3
	DefaultSecondaryExponent = 1.6
)

const (
	ContractWholeCoins = 0
	ContractFractional = 1
)

// Params is a snapshot of the network parameters used by one assessment.
type Params struct {
	TeamConfiguration  int
	UnbankedThreshold  float64
	Mandatory1485      bool
	TitheFactor        float64
	ContractType       int
	PaymentBuffer      int64
	MinProtocolVersion uint32
	HealthDisabled     bool

	PrimaryTeam       int
	SecondaryTeam     int
	PrimaryExponent   float64
	SecondaryExponent float64

	minPayment  [2]float64
	percentage  map[string]float64
	monthlyRate map[string]float64
}

// Resolve reads all parameters once so that a single assessment sees a consistent view.
func Resolve(store system.ParameterStore, campaigns []string) (*Params, error) {
	p := &Params{
		TeamConfiguration: int(store.Get(KeyTeamConfiguration, 0)),
		UnbankedThreshold: store.Get(KeyUnbankedThreshold, 250),
		Mandatory1485:     store.Get(KeyMandatory1485, 0) == 1,
		TitheFactor:       store.Get(KeyTitheFactor, 1),
		ContractType:      int(store.Get(KeyContractType, 0)),
		PaymentBuffer:     int64(store.Get(KeyPaymentBuffer, 0)),
		HealthDisabled:    store.Get(KeyDisableHealth, 0) == 1,
		PrimaryTeam:       int(store.Get(KeyPrimaryTeam, DefaultPrimaryTeam)),
		SecondaryTeam:     int(store.Get(KeySecondaryTeam, DefaultSecondaryTeam)),
		PrimaryExponent:   store.Get(KeyPrimaryExponent, DefaultPrimaryExponent),
		SecondaryExponent: store.Get(KeySecondaryExponent, DefaultSecondaryExponent),
		minPayment: [2]float64{
			ContractWholeCoins: store.Get(KeyMinPaymentWhole, 0.25),
			ContractFractional: store.Get(KeyMinPaymentFractional, 1),
		},
		percentage:  make(map[string]float64, len(campaigns)),
		monthlyRate: make(map[string]float64, len(campaigns)),
	}
	if v := store.Get(KeyMinProtocol, 0); v > 0 {
		p.MinProtocolVersion = uint32(v)
	}
	if p.ContractType != ContractWholeCoins && p.ContractType != ContractFractional {
		return nil, fmt.Errorf("%w: %s=%d", ErrInvalidParam, KeyContractType, p.ContractType)
	}
	if p.PrimaryExponent <= 0 || p.SecondaryExponent <= 0 {
		return nil, fmt.Errorf("%w: exponents must be positive: %v, %v",
			ErrInvalidParam, p.PrimaryExponent, p.SecondaryExponent)
	}
	for _, name := range campaigns {
		name = strings.ToUpper(name)
		pct := store.Get(name+suffixPercentage, 0)
		if pct < 0 {
			pct = 0
		}
		p.percentage[name] = pct
		p.monthlyRate[name] = store.Get(name+suffixMonthlyRate, 40)
	}
	return p, nil
}

// CampaignPercentage is the share of the budget allotted to a campaign.
func (p *Params) CampaignPercentage(name string) float64 {
	return p.percentage[strings.ToUpper(name)]
}

// MonthlyRate is the monthly sponsorship charge of a charity campaign.
func (p *Params) MonthlyRate(name string) float64 {
	if rate, ok := p.monthlyRate[strings.ToUpper(name)]; ok {
		return rate
	}
	return 40
}

// MinPayment is the smallest payment in coins that is included in a contract
// of the resolved contract type.
func (p *Params) MinPayment() float64 {
	return p.minPayment[p.ContractType]
}

// Exponent is the coin-age exponent of team: the primary exponent for the
// primary team and the secondary one for everybody else.
func (p *Params) Exponent(team int) float64 {
	if team == p.PrimaryTeam {
		return p.PrimaryExponent
	}
	return p.SecondaryExponent
}

func (p *Params) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddInt("team configuration", p.TeamConfiguration)
	encoder.AddFloat64("unbanked threshold", p.UnbankedThreshold)
	encoder.AddBool("mandatory 1485", p.Mandatory1485)
	encoder.AddFloat64("tithe factor", p.TitheFactor)
	encoder.AddInt("contract type", p.ContractType)
	encoder.AddInt64("payment buffer", p.PaymentBuffer)
	encoder.AddUint32("min protocol version", p.MinProtocolVersion)
	encoder.AddInt("primary team", p.PrimaryTeam)
	encoder.AddInt("secondary team", p.SecondaryTeam)
	encoder.AddFloat64("primary exponent", p.PrimaryExponent)
	encoder.AddFloat64("secondary exponent", p.SecondaryExponent)
	encoder.AddFloat64("min payment", p.MinPayment())
	return nil
}
