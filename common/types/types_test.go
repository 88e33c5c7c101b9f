package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAmountFromCoinsTruncates(t *testing.T) {
	require.Equal(t, Amount(49_000_000_000), AmountFromCoins(490))
	require.Equal(t, Amount(12_345_678), AmountFromCoins(0.123456789))
	require.Equal(t, "490.00000000", AmountFromCoins(490).String())
	require.Equal(t, int64(1), Amount(199_999_999).WholeCoins())
}

func TestParseAmount(t *testing.T) {
	for _, tc := range []struct {
		in     string
		expect Amount
		err    bool
	}{
		{in: "1", expect: Coin},
		{in: "490.00", expect: 490 * Coin},
		{in: "0.25", expect: Coin / 4},
		{in: ".5", expect: Coin / 2},
		{in: "12.3456", expect: 12*Coin + 34_560_000},
		{in: "0.00000001", expect: 1},
		{in: " 3.10 ", expect: 3*Coin + Coin/10},
		{in: "", err: true},
		{in: ".", err: true},
		{in: "-1", err: true},
		{in: "1e3", err: true},
		{in: "0.000000001", err: true},
		{in: "92233720369", err: true},
	} {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseAmount(tc.in)
			if tc.err {
				require.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expect, got)
		})
	}
}

func TestRoundToString(t *testing.T) {
	require.Equal(t, "0.01", RoundToString(0.005000001, 2))
	require.Equal(t, "3", RoundToString(3.4, 0))
	require.Equal(t, "0.50000000", RoundToString(0.5, 8))
}

func TestHash32Hex(t *testing.T) {
	h := RandomHash()
	parsed, err := HexToHash32(h.Hex())
	require.NoError(t, err)
	require.Equal(t, h, parsed)

	_, err = HexToHash32("abcd")
	require.Error(t, err)
	_, err = HexToHash32("zz")
	require.Error(t, err)

	require.True(t, EmptyHash32.Empty())
	require.Len(t, h.ShortString(), 10)
}

func TestHash32Compare(t *testing.T) {
	a := Hash32{1}
	b := Hash32{2}
	require.Negative(t, a.Compare(b))
	require.Positive(t, b.Compare(a))
	require.Zero(t, a.Compare(a))
}

func TestSchedule(t *testing.T) {
	s := Schedule{Start: 100, Cycle: 205}
	for _, tc := range []struct {
		desc       string
		h          Height
		last, next Height
	}{
		{"before start", 50, 100, 100},
		{"at start", 100, 100, 305},
		{"mid cycle", 200, 100, 305},
		{"at superblock", 305, 305, 510},
		{"after superblock", 306, 305, 510},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			require.Equal(t, tc.last, s.Last(tc.h))
			require.Equal(t, tc.next, s.Next(tc.h))
		})
	}
	require.True(t, s.IsSuperblock(510))
	require.False(t, s.IsSuperblock(511))
	require.False(t, s.IsSuperblock(99))
}

func TestValidateAddress(t *testing.T) {
	versions := AddressVersions{PubKeyHash: 25, ScriptHash: 16}
	valid := EncodeAddress([20]byte{1, 2, 3}, 25)
	require.NoError(t, ValidateAddress(valid, versions))
	require.NoError(t, ValidateAddress(EncodeAddress([20]byte{9}, 16), versions))

	require.ErrorIs(t, ValidateAddress("", versions), ErrInvalidAddress)
	require.ErrorIs(t, ValidateAddress(EncodeAddress([20]byte{1}, 140), versions), ErrInvalidAddress)
	corrupted := []byte(valid)
	corrupted[len(corrupted)-1]++
	require.ErrorIs(t, ValidateAddress(Address(corrupted), versions), ErrInvalidAddress)
}

func TestGovernanceObjectSignedBytes(t *testing.T) {
	obj := &GovernanceObject{Type: TriggerObject, Data: []byte("x")}
	other := *obj
	other.Data = []byte("y")
	require.NotEqual(t, obj.SignedBytes(), other.SignedBytes())
	obj.YesCount, obj.NoCount = 5, 2
	require.Equal(t, 3, obj.AbsoluteYes())
}

func TestOutpointText(t *testing.T) {
	o := Outpoint{TxID: Hash32{0xab, 0xcd}, Index: 7}
	text, err := o.MarshalText()
	require.NoError(t, err)

	var parsed Outpoint
	require.NoError(t, parsed.UnmarshalText(text))
	require.Equal(t, o, parsed)

	for _, bad := range []string{"", "abcd", o.TxID.Hex() + "-x", "zz-1", o.TxID.Hex() + "-4294967296"} {
		_, err := ParseOutpoint(bad)
		require.Error(t, err, bad)
	}
}
