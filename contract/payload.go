package contract

import (
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/biblepay/go-gsc/common/types"
)

// TriggerType is the governance payload type of a superblock trigger.
const TriggerType = 2

const (
	triggerLabel = "trigger"
	schemaFile   = "payload.schema.json"
)

var ErrInvalidPayload = errors.New("invalid trigger payload")

//go:embed payload.schema.json
var payloadSchema string

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return jsonschema.CompileString(schemaFile, payloadSchema)
})

// Payload is the content of a superblock trigger governance object.
type Payload struct {
	EventBlockHeight types.Height `json:"event_block_height"`
	StartEpoch       int64        `json:"start_epoch"`
	PaymentAddresses string       `json:"payment_addresses"`
	PaymentAmounts   string       `json:"payment_amounts"`
	ProposalHashes   string       `json:"proposal_hashes"`
	VoteData         string       `json:"vote_data,omitempty"`
	Price            string       `json:"price,omitempty"`
	QTPhase          string       `json:"qtphase,omitempty"`
	BTCPrice         string       `json:"btcprice,omitempty"`
	Type             int          `json:"type"`
}

// Fingerprint of the payments carried by the trigger.
func (p *Payload) Fingerprint() types.Hash32 {
	return Fingerprint(p.PaymentAddresses, p.PaymentAmounts)
}

func (p *Payload) Payees() ([]Payee, error) {
	return SplitPayees(p.PaymentAddresses, p.PaymentAmounts)
}

// NewTrigger builds the payload for contract c paid at eventHeight.
// The payments must fit limit, the budget of the assessed height.
func NewTrigger(c *Contract, eventHeight types.Height, limit types.Amount, now time.Time) (*Payload, error) {
	if _, err := CheckBudget(c.Get(TagPayments), limit); err != nil {
		return nil, err
	}
	p := &Payload{
		EventBlockHeight: eventHeight,
		StartEpoch:       now.Unix(),
		PaymentAddresses: c.Get(TagAddresses),
		PaymentAmounts:   c.Get(TagPayments),
		ProposalHashes:   c.Get(TagProposals),
		VoteData:         c.Get(TagVoteData),
		Type:             TriggerType,
	}
	if p.ProposalHashes == "" {
		p.ProposalHashes = c.Fingerprint().Hex()
	}
	if qt := c.Get(TagQTData); qt != "" {
		p.Price = Extract(qt, TagPrice)
		p.QTPhase = Extract(qt, TagQTPhase)
		p.BTCPrice = Extract(qt, TagBTCPrice)
	}
	return p, nil
}

// EncodePayload renders the payload as hex encoded [["trigger", {...}]].
func EncodePayload(p *Payload) ([]byte, error) {
	raw, err := json.Marshal([][]any{{triggerLabel, p}})
	if err != nil {
		return nil, fmt.Errorf("marshal trigger: %w", err)
	}
	out := make([]byte, hex.EncodedLen(len(raw)))
	hex.Encode(out, raw)
	return out, nil
}

// DecodePayload parses and validates a hex encoded trigger. Anything that does
// not match the trigger schema is rejected.
func DecodePayload(data []byte) (*Payload, error) {
	raw := make([]byte, hex.DecodedLen(len(data)))
	if _, err := hex.Decode(raw, data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	sch, err := compileSchema()
	if err != nil {
		return nil, fmt.Errorf("compile trigger schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	var envelope [][]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	var p Payload
	if err := json.Unmarshal(envelope[0][1], &p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	if strings.Count(p.PaymentAddresses, separator) != strings.Count(p.PaymentAmounts, separator) {
		return nil, fmt.Errorf("%w: addresses and amounts differ in length", ErrInvalidPayload)
	}
	return &p, nil
}
