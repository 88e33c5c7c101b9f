package types

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/biblepay/go-gsc/hash"
)

// GovObjectType is the kind of a governance object.
type GovObjectType uint8

const (
	// ProposalObject is a community funding proposal.
	ProposalObject GovObjectType = 1
	// TriggerObject is a superblock payment candidate.
	TriggerObject GovObjectType = 2
)

func (t GovObjectType) String() string {
	switch t {
	case ProposalObject:
		return "proposal"
	case TriggerObject:
		return "trigger"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// Outpoint references the collateral output of a masternode.
type Outpoint struct {
	TxID  Hash32
	Index uint32
}

// String implements fmt.Stringer.
func (o Outpoint) String() string {
	return fmt.Sprintf("%s-%d", o.TxID.Hex(), o.Index)
}

// ParseOutpoint parses the txid-index form produced by String.
func ParseOutpoint(s string) (Outpoint, error) {
	txid, index, ok := strings.Cut(s, "-")
	if !ok {
		return Outpoint{}, fmt.Errorf("outpoint %q: missing index", s)
	}
	id, err := HexToHash32(txid)
	if err != nil {
		return Outpoint{}, fmt.Errorf("outpoint %q: %w", s, err)
	}
	n, err := strconv.ParseUint(index, 10, 32)
	if err != nil {
		return Outpoint{}, fmt.Errorf("outpoint %q: %w", s, err)
	}
	return Outpoint{TxID: id, Index: uint32(n)}, nil
}

func (o Outpoint) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

func (o *Outpoint) UnmarshalText(input []byte) error {
	parsed, err := ParseOutpoint(string(input))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// Bytes returns txid followed by the little-endian index.
func (o Outpoint) Bytes() []byte {
	buf := make([]byte, Hash32Length+4)
	copy(buf, o.TxID[:])
	binary.LittleEndian.PutUint32(buf[Hash32Length:], o.Index)
	return buf
}

// Masternode is an entry of the deterministic masternode list.
type Masternode struct {
	Collateral  Outpoint
	OperatorKey []byte
	Valid       bool
}

// GovernanceObject is a proposal or a trigger stored by the governance layer.
type GovernanceObject struct {
	Hash         Hash32
	Type         GovObjectType
	CreationTime time.Time
	Collateral   Outpoint
	// Data is the JSON payload of the object.
	Data      []byte
	Signature []byte

	YesCount       int
	NoCount        int
	AbstainCount   int
	DeleteYesCount int
}

// AbsoluteYes is the funding yes count net of no votes.
func (o *GovernanceObject) AbsoluteYes() int {
	return o.YesCount - o.NoCount
}

// SignedBytes is the content covered by the object hash and signature.
func (o *GovernanceObject) SignedBytes() []byte {
	buf := make([]byte, 0, 1+8+Hash32Length+4+len(o.Data))
	buf = append(buf, byte(o.Type))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(o.CreationTime.Unix()))
	buf = append(buf, o.Collateral.Bytes()...)
	return append(buf, o.Data...)
}

// ID is the object hash derived from its signed content.
func (o *GovernanceObject) ID() Hash32 {
	return hash.Sum(o.SignedBytes())
}

// VoteSignal selects the aspect of an object a vote applies to.
type VoteSignal uint8

const (
	SignalFunding VoteSignal = 1
	SignalDelete  VoteSignal = 2
)

func (s VoteSignal) String() string {
	switch s {
	case SignalFunding:
		return "funding"
	case SignalDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// VoteOutcome is the direction of a vote.
type VoteOutcome uint8

const (
	OutcomeYes     VoteOutcome = 1
	OutcomeNo      VoteOutcome = 2
	OutcomeAbstain VoteOutcome = 3
)

func (o VoteOutcome) String() string {
	switch o {
	case OutcomeYes:
		return "yes"
	case OutcomeNo:
		return "no"
	case OutcomeAbstain:
		return "abstain"
	default:
		return "unknown"
	}
}

// Vote is a masternode vote on a governance object.
type Vote struct {
	Object    Hash32
	Voter     Outpoint
	Signal    VoteSignal
	Outcome   VoteOutcome
	Time      time.Time
	Signature []byte
}

// SignedBytes is the content covered by the vote signature.
func (v *Vote) SignedBytes() []byte {
	buf := make([]byte, 0, Hash32Length*2+4+2+8)
	buf = append(buf, v.Object[:]...)
	buf = append(buf, v.Voter.Bytes()...)
	buf = append(buf, byte(v.Signal), byte(v.Outcome))
	return binary.LittleEndian.AppendUint64(buf, uint64(v.Time.Unix()))
}

// OutpointFromBytes decodes an outpoint produced by Outpoint.Bytes.
func OutpointFromBytes(b []byte) (Outpoint, error) {
	if len(b) != Hash32Length+4 {
		return Outpoint{}, fmt.Errorf("invalid outpoint length %d", len(b))
	}
	var o Outpoint
	copy(o.TxID[:], b[:Hash32Length])
	o.Index = binary.LittleEndian.Uint32(b[Hash32Length:])
	return o, nil
}
