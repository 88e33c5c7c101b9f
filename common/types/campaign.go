package types

// Researcher is a participant of the research campaign, keyed by its CPID.
type Researcher struct {
	CPID    string
	CPK     Address
	RAC     float64
	TeamID  int
	CoinAge float64
	Found   bool
}

// Member is an identity registered with a project.
type Member struct {
	CPK      Address
	NickName string
}

// Sponsorship links a sponsor identity with a child sponsored through a charity.
type Sponsorship struct {
	Charity    string
	SponsorCPK Address
	ChildID    string
}

// WhaleStake is a matured stake payable in the next contract.
type WhaleStake struct {
	ReturnAddress Address
	TotalOwed     float64
	Found         bool
}

// Quote is a price oracle reading.
type Quote struct {
	Price    float64
	BTCPrice float64
	Phase    float64
}
