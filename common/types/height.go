package types

import "strconv"

// Height is a block height.
type Height uint32

// Uint32 returns the height as uint32.
func (h Height) Uint32() uint32 { return uint32(h) }

// Add returns h + n.
func (h Height) Add(n uint32) Height { return Height(uint32(h) + n) }

// Sub returns h - n, saturating at zero.
func (h Height) Sub(n uint32) Height {
	if uint32(h) < n {
		return 0
	}
	return Height(uint32(h) - n)
}

// String implements fmt.Stringer.
func (h Height) String() string { return strconv.FormatUint(uint64(h), 10) }

// Schedule describes a superblock cycle: superblocks happen at every height
// that is a multiple of Cycle, starting at Start.
type Schedule struct {
	Start Height `mapstructure:"start"`
	Cycle uint32 `mapstructure:"cycle"`
}

// Last returns the latest superblock height not above h.
func (s Schedule) Last(h Height) Height {
	if s.Cycle == 0 || h < s.Start {
		return s.Start
	}
	return h - Height(uint32(h-s.Start)%s.Cycle)
}

// Next returns the first superblock height strictly above h.
func (s Schedule) Next(h Height) Height {
	if s.Cycle == 0 {
		return s.Start
	}
	if h < s.Start {
		return s.Start
	}
	return s.Last(h).Add(s.Cycle)
}

// IsSuperblock returns true if h is a superblock height.
func (s Schedule) IsSuperblock(h Height) bool {
	return s.Cycle != 0 && h >= s.Start && uint32(h-s.Start)%s.Cycle == 0
}
