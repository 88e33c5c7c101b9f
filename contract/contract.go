// Package contract renders, parses and fingerprints the canonical payment
// contract that sanctuaries agree on each cycle.
package contract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/biblepay/go-gsc/common/types"
	"github.com/biblepay/go-gsc/hash"
)

// Section tags.
const (
	TagAddresses       = "ADDRESSES"
	TagPayments        = "PAYMENTS"
	TagData            = "DATA"
	TagDetails         = "DETAILS"
	TagDiaries         = "DIARIES"
	TagMetrics         = "METRICS"
	TagLimit           = "LIMIT"
	TagTotalProminence = "TOTALPROMINENCE"
	TagTotalPayout     = "TOTALPAYOUT"
	TagTotalPoints     = "TOTALPOINTS"
	TagQTData          = "QTDATA"
	TagPrice           = "PRICE"
	TagBTCPrice        = "BTCPRICE"
	TagQTPhase         = "QTPHASE"
	TagDWSData         = "DWSDATA"
	TagDWSAddress      = "DWSADDR"
	TagDWSAmount       = "DWSAMT"
	TagDWSTotal        = "DWSTOTAL"
	TagProminence      = "PROMINENCE"
	TagCPK             = "CPK"
	TagCPKList         = "CPKLIST"
	TagIdentity        = "C"
	TagNodes           = "NODES"
	TagNode            = "NODE"

	TagProposals      = "PROPOSALS"
	TagVotes          = "VOTES"
	TagHash           = "HASH"
	TagPAMHash        = "PAMHASH"
	TagSanctuaryCount = "SANCTUARYCOUNT"
	TagVoteData       = "VOTEDATA"
	TagAction         = "ACTION"
)

const separator = "|"

var (
	ErrMalformed      = errors.New("malformed contract")
	ErrEmptyPayments  = errors.New("contract pays less than one coin")
	ErrBudgetExceeded = errors.New("contract exceeds payments limit")
)

// Section is a tagged part of a contract.
type Section struct {
	Tag  string
	Body string
}

// Contract is an ordered list of tagged sections.
type Contract struct {
	sections []Section
}

// Set replaces the body of tag, appending the section if it is missing.
func (c *Contract) Set(tag, body string) *Contract {
	for i := range c.sections {
		if c.sections[i].Tag == tag {
			c.sections[i].Body = body
			return c
		}
	}
	c.sections = append(c.sections, Section{Tag: tag, Body: body})
	return c
}

// Get returns the body of tag or an empty string.
func (c *Contract) Get(tag string) string {
	for _, s := range c.sections {
		if s.Tag == tag {
			return s.Body
		}
	}
	return ""
}

func (c *Contract) Has(tag string) bool {
	for _, s := range c.sections {
		if s.Tag == tag {
			return true
		}
	}
	return false
}

func (c *Contract) Sections() []Section {
	return c.sections
}

func (c *Contract) String() string {
	var sb strings.Builder
	for _, s := range c.sections {
		sb.WriteString(Wrap(s.Tag, s.Body))
	}
	return sb.String()
}

// Payee is one address and the rendered amount it is paid.
type Payee struct {
	Address types.Address
	Amount  string
}

// Payees pairs the addresses with the payments section.
func (c *Contract) Payees() ([]Payee, error) {
	return SplitPayees(c.Get(TagAddresses), c.Get(TagPayments))
}

// Empty returns true if the contract pays nobody.
func (c *Contract) Empty() bool {
	return c.Get(TagPayments) == ""
}

// Fingerprint identifies the contract by its addresses and payments only.
func (c *Contract) Fingerprint() types.Hash32 {
	return Fingerprint(c.Get(TagAddresses), c.Get(TagPayments))
}

// Wrap encloses body in tag.
func Wrap(tag, body string) string {
	return "<" + tag + ">" + body + "</" + tag + ">"
}

// Extract returns the body of the first tag in s, or an empty string.
func Extract(s, tag string) string {
	open := "<" + tag + ">"
	start := strings.Index(s, open)
	if start < 0 {
		return ""
	}
	start += len(open)
	end := strings.Index(s[start:], "</"+tag+">")
	if end < 0 {
		return ""
	}
	return s[start : start+end]
}

// Parse splits a rendered contract into its top-level sections.
func Parse(s string) (*Contract, error) {
	c := &Contract{}
	for len(s) > 0 {
		if s[0] != '<' {
			return nil, fmt.Errorf("%w: expected section at %q", ErrMalformed, abbrev(s))
		}
		end := strings.IndexByte(s, '>')
		if end < 0 {
			return nil, fmt.Errorf("%w: unterminated tag at %q", ErrMalformed, abbrev(s))
		}
		tag := s[1:end]
		if tag == "" || strings.HasPrefix(tag, "/") {
			return nil, fmt.Errorf("%w: unexpected tag %q", ErrMalformed, tag)
		}
		rest := s[end+1:]
		closing := "</" + tag + ">"
		stop := strings.Index(rest, closing)
		if stop < 0 {
			return nil, fmt.Errorf("%w: section %s is not closed", ErrMalformed, tag)
		}
		c.sections = append(c.sections, Section{Tag: tag, Body: rest[:stop]})
		s = rest[stop+len(closing):]
	}
	return c, nil
}

func abbrev(s string) string {
	if len(s) > 16 {
		return s[:16] + "..."
	}
	return s
}

// SplitPayees pairs pipe separated addresses and amounts.
func SplitPayees(addresses, amounts string) ([]Payee, error) {
	if addresses == "" && amounts == "" {
		return nil, nil
	}
	addrs := strings.Split(addresses, separator)
	amts := strings.Split(amounts, separator)
	if len(addrs) != len(amts) {
		return nil, fmt.Errorf("%w: %d addresses and %d amounts", ErrMalformed, len(addrs), len(amts))
	}
	payees := make([]Payee, len(addrs))
	for i := range addrs {
		payees[i] = Payee{Address: types.Address(addrs[i]), Amount: amts[i]}
	}
	return payees, nil
}

// JoinPayees renders payees into the addresses and payments sections.
func JoinPayees(payees []Payee) (addresses, amounts string) {
	addrs := make([]string, len(payees))
	amts := make([]string, len(payees))
	for i, p := range payees {
		addrs[i] = string(p.Address)
		amts[i] = p.Amount
	}
	return strings.Join(addrs, separator), strings.Join(amts, separator)
}

// Fingerprint hashes the concatenation of the addresses and payments sections.
// Empty sections produce the empty hash.
func Fingerprint(addresses, amounts string) types.Hash32 {
	if addresses == "" && amounts == "" {
		return types.EmptyHash32
	}
	return types.Hash32(hash.SumStrings(addresses, amounts))
}

// FingerprintOf fingerprints a rendered contract.
func FingerprintOf(s string) types.Hash32 {
	return Fingerprint(Extract(s, TagAddresses), Extract(s, TagPayments))
}

// Total sums rendered amounts.
func Total(amounts string) (types.Amount, error) {
	if amounts == "" {
		return 0, nil
	}
	var total types.Amount
	for _, a := range strings.Split(amounts, separator) {
		v, err := types.ParseAmount(a)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		total += v
	}
	return total, nil
}

// CheckBudget rejects payment lists that pay less than a coin or more than limit.
func CheckBudget(amounts string, limit types.Amount) (types.Amount, error) {
	total, err := Total(amounts)
	if err != nil {
		return 0, err
	}
	if total < types.Coin {
		return total, fmt.Errorf("%w: %s", ErrEmptyPayments, total)
	}
	if total > limit {
		return total, fmt.Errorf("%w: total %s limit %s", ErrBudgetExceeded, total, limit)
	}
	return total, nil
}

// OverBudget reports whether amounts exceed limit. Unparseable amounts are over budget.
func OverBudget(amounts string, limit types.Amount) bool {
	total, err := Total(amounts)
	return err != nil || total > limit
}
