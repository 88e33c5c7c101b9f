package watchman

// Status is the outcome of a watchman run.
type Status uint8

const (
	NotAWatchman Status = iota + 1
	InvalidChain
	NotSynced
	LowHeight
	TooEarlyForComing
	EmptyContract
	CreatingContract
	Voting
	Success
)

func (s Status) String() string {
	switch s {
	case NotAWatchman:
		return "NOT_A_WATCHMAN_SANCTUARY"
	case InvalidChain:
		return "WATCHMAN_INVALID_CHAIN"
	case NotSynced:
		return "WATCHMAN_CHAIN_NOT_SYNCED"
	case LowHeight:
		return "WATCHMAN_LOW_HEIGHT"
	case TooEarlyForComing:
		return "WATCHMAN_TOO_EARLY_FOR_COMING"
	case EmptyContract:
		return "EMPTY_CONTRACT"
	case CreatingContract:
		return "WATCHMAN_CREATING_CONTRACT"
	case Voting:
		return "WATCHMAN_VOTING"
	case Success:
		return "WATCHMAN_SUCCESS"
	default:
		return "UNKNOWN"
	}
}
