package quorum

import "errors"

var (
	ErrNotASanctuary         = errors.New("not a sanctuary")
	ErrInvalidChain          = errors.New("invalid chain")
	ErrNotSynced             = errors.New("chain not synced")
	ErrSignFailure           = errors.New("failed to sign")
	ErrSubmissionRateLimited = errors.New("submission rate limited")
)

// Status is the outcome of a consensus cycle.
type Status uint8

const (
	NotASanctuary Status = iota + 1
	InvalidChain
	NotSynced
	ProtocolUpgradeRequired
	NotThisCycle
	PendingSupermajority
	CreatingContract
	VotedForContract
	UnableToVote
	EmptyContract
	NoChosenNode
)

func (s Status) String() string {
	switch s {
	case NotASanctuary:
		return "NOT_A_SANCTUARY"
	case InvalidChain:
		return "INVALID_CHAIN"
	case NotSynced:
		return "CHAIN_NOT_SYNCED"
	case ProtocolUpgradeRequired:
		return "GSC_PROTOCOL_REQUIRES_UPGRADE"
	case NotThisCycle:
		return "NOT_THIS_CYCLE"
	case PendingSupermajority:
		return "PENDING_SUPERBLOCK"
	case CreatingContract:
		return "CREATING_CONTRACT"
	case VotedForContract:
		return "VOTED_FOR_GSC_CONTRACT"
	case UnableToVote:
		return "UNABLE_TO_VOTE_FOR_GSC_CONTRACT"
	case EmptyContract:
		return "EMPTY_CONTRACT"
	case NoChosenNode:
		return "NOT_A_CHOSEN_SANCTUARY"
	default:
		return "UNKNOWN"
	}
}
