package contract

import (
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/biblepay/go-gsc/common/types"
)

// ProposalType is the governance payload type of a funding proposal.
const ProposalType = 1

const (
	proposalLabel      = "proposal"
	proposalSchemaFile = "proposal.schema.json"
)

var ErrInvalidProposal = errors.New("invalid proposal payload")

//go:embed proposal.schema.json
var proposalSchema string

var compileProposalSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return jsonschema.CompileString(proposalSchemaFile, proposalSchema)
})

// number decodes both JSON numbers and numeric strings, proposal tooling
// emits either.
type number string

func (n *number) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = number(strings.TrimSpace(s))
		return nil
	}
	*n = number(b)
	return nil
}

func (n number) MarshalJSON() ([]byte, error) {
	if n == "" {
		return []byte("0"), nil
	}
	return []byte(n), nil
}

func (n number) float() (float64, error) {
	if n == "" {
		return 0, nil
	}
	return strconv.ParseFloat(string(n), 64)
}

// ProposalPayload is the content of a funding proposal governance object.
type ProposalPayload struct {
	Name           string `json:"name"`
	StartEpoch     number `json:"start_epoch"`
	EndEpoch       number `json:"end_epoch"`
	URL            string `json:"url,omitempty"`
	ExpenseType    string `json:"expensetype,omitempty"`
	PaymentAddress string `json:"payment_address"`
	PaymentAmount  number `json:"payment_amount"`
	Type           int    `json:"type,omitempty"`
}

// NewProposalPayload fills a payload with numeric fields.
func NewProposalPayload(name string, start, end int64, address types.Address, amount float64) *ProposalPayload {
	return &ProposalPayload{
		Name:           name,
		StartEpoch:     number(strconv.FormatInt(start, 10)),
		EndEpoch:       number(strconv.FormatInt(end, 10)),
		PaymentAddress: address.String(),
		PaymentAmount:  number(strconv.FormatFloat(amount, 'f', -1, 64)),
		Type:           ProposalType,
	}
}

// Proposal converts the payload into the proposal view used for funding
// decisions. The amount is rounded to cents.
func (p *ProposalPayload) Proposal() (*types.Proposal, error) {
	start, err := p.StartEpoch.float()
	if err != nil {
		return nil, fmt.Errorf("%w: start epoch: %w", ErrInvalidProposal, err)
	}
	end, err := p.EndEpoch.float()
	if err != nil {
		return nil, fmt.Errorf("%w: end epoch: %w", ErrInvalidProposal, err)
	}
	amount, err := p.PaymentAmount.float()
	if err != nil {
		return nil, fmt.Errorf("%w: amount: %w", ErrInvalidProposal, err)
	}
	rounded, err := strconv.ParseFloat(types.RoundToString(amount, 2), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: amount: %w", ErrInvalidProposal, err)
	}
	return &types.Proposal{
		Name:        p.Name,
		StartEpoch:  int64(start),
		EndEpoch:    int64(end),
		URL:         p.URL,
		ExpenseType: p.ExpenseType,
		Amount:      rounded,
		Address:     types.Address(p.PaymentAddress),
	}, nil
}

// EncodeProposal renders the payload as hex encoded [["proposal", {...}]].
func EncodeProposal(p *ProposalPayload) ([]byte, error) {
	raw, err := json.Marshal([][]any{{proposalLabel, p}})
	if err != nil {
		return nil, fmt.Errorf("marshal proposal: %w", err)
	}
	out := make([]byte, hex.EncodedLen(len(raw)))
	hex.Encode(out, raw)
	return out, nil
}

// DecodeProposal parses and validates a hex encoded proposal.
func DecodeProposal(data []byte) (*ProposalPayload, error) {
	raw := make([]byte, hex.DecodedLen(len(data)))
	if _, err := hex.Decode(raw, data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProposal, err)
	}
	sch, err := compileProposalSchema()
	if err != nil {
		return nil, fmt.Errorf("compile proposal schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProposal, err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProposal, err)
	}
	var envelope [][]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProposal, err)
	}
	var p ProposalPayload
	if err := json.Unmarshal(envelope[0][1], &p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProposal, err)
	}
	return &p, nil
}
