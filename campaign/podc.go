package campaign

import (
	"math"

	"github.com/biblepay/go-gsc/common/types"
	"github.com/biblepay/go-gsc/spork"
)

// Unreachable is the coin age required from researchers whose team is not accepted.
const Unreachable = 9999999999.0

// ResearchIDLength is the length of a valid research identifier.
const ResearchIDLength = 32

// RequiredCoinAge returns the coin age a researcher must stake to be credited with rac.
func RequiredCoinAge(rac float64, team int, p *spork.Params) float64 {
	switch p.TeamConfiguration {
	case 0:
		// every team qualifies
	case 1:
		if team != p.PrimaryTeam && team != p.SecondaryTeam {
			return Unreachable
		}
	case 2:
		if team != p.PrimaryTeam {
			return Unreachable
		}
	default:
		return Unreachable
	}
	exp := p.Exponent(team)
	if rac <= p.UnbankedThreshold && team == p.PrimaryTeam {
		return 0
	}
	return math.Pow(rac, exp)
}

// Credit returns the points a researcher earns for the window. The researcher's
// RAC is reduced once when the staked coin age falls short of the requirement.
// A second shortfall after the reduction earns nothing.
func Credit(r *types.Researcher, p *spork.Params) (float64, bool) {
	if !r.Found || len(r.CPID) != ResearchIDLength {
		return 0, false
	}
	rac := r.RAC
	required := RequiredCoinAge(rac, r.TeamID, p)
	if required > r.CoinAge && required != Unreachable {
		if p.Mandatory1485 {
			rac = math.Pow(r.CoinAge-1, 1/p.Exponent(r.TeamID))
		} else {
			rac = math.Pow(rac-1, 1/p.PrimaryExponent)
		}
		required = RequiredCoinAge(rac, r.TeamID, p)
	}
	// a reduction below zero yields NaN, which never qualifies
	if !(r.CoinAge >= required) {
		return 0, false
	}
	return rac, true
}
