package types

// Proposal is a funding proposal decoded from a governance object.
type Proposal struct {
	Name            string
	StartEpoch      int64
	EndEpoch        int64
	URL             string
	ExpenseType     string
	Amount          float64
	Address         Address
	Hash            Hash32
	Height          Height
	MinPassingVotes int
	YesVotes        int
	NoVotes         int
	AbstainVotes    int
	NetYesVotes     int
	LastSuperblock  Height
	Passing         bool
	Paid            bool
}
