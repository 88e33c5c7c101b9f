package types

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidAmount is returned for decimal amounts that cannot be represented in units.
var ErrInvalidAmount = errors.New("invalid amount")

// Coin is the number of smallest currency units in one coin.
const Coin Amount = 100_000_000

// Amount is a value in the smallest currency unit.
type Amount int64

// AmountFromCoins converts a coin value into units, truncating towards zero.
func AmountFromCoins(c float64) Amount {
	return Amount(c * float64(Coin))
}

// Coins returns the amount as a fractional coin value.
func (a Amount) Coins() float64 {
	return float64(a) / float64(Coin)
}

// WholeCoins returns the amount in coins with the fractional part discarded.
func (a Amount) WholeCoins() int64 {
	return int64(a / Coin)
}

// String renders the amount in coins with 8 decimal places.
func (a Amount) String() string {
	return RoundToString(a.Coins(), 8)
}

// RoundToString formats x with exactly places decimal digits.
func RoundToString(x float64, places int) string {
	return strconv.FormatFloat(x, 'f', places, 64)
}

// ParseAmount parses a non-negative decimal coin value with at most 8
// fractional digits into units without going through floating point.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" && frac == "" || len(frac) > 8 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	var units int64
	if whole != "" {
		w, err := strconv.ParseUint(whole, 10, 63)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
		}
		if w > uint64(maxCoins) {
			return 0, fmt.Errorf("%w: %q out of range", ErrInvalidAmount, s)
		}
		units = int64(w) * int64(Coin)
	}
	if frac != "" {
		f, err := strconv.ParseUint(frac+strings.Repeat("0", 8-len(frac)), 10, 63)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
		}
		units += int64(f)
	}
	return Amount(units), nil
}

const maxCoins = math.MaxInt64 / int64(Coin)
