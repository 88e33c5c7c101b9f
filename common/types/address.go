package types

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cosmos/btcutil/base58"
)

// ErrInvalidAddress is returned when an address fails base58check validation.
var ErrInvalidAddress = errors.New("invalid address")

// Address is a base58check encoded payment address.
type Address string

// String implements fmt.Stringer.
func (a Address) String() string { return string(a) }

// AddressVersions lists version bytes accepted by the network.
type AddressVersions struct {
	PubKeyHash byte `mapstructure:"pubkey-hash"`
	ScriptHash byte `mapstructure:"script-hash"`
}

// ValidateAddress checks the checksum, payload length and version byte of an address.
func ValidateAddress(addr Address, versions AddressVersions) error {
	if addr == "" {
		return fmt.Errorf("%w: empty", ErrInvalidAddress)
	}
	payload, version, err := base58.CheckDecode(string(addr))
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidAddress, addr, err)
	}
	if len(payload) != 20 {
		return fmt.Errorf("%w: %s: payload length %d", ErrInvalidAddress, addr, len(payload))
	}
	if !slices.Contains([]byte{versions.PubKeyHash, versions.ScriptHash}, version) {
		return fmt.Errorf("%w: %s: unexpected version %d", ErrInvalidAddress, addr, version)
	}
	return nil
}

// EncodeAddress builds a base58check address from a 20-byte hash.
func EncodeAddress(hash [20]byte, version byte) Address {
	return Address(base58.CheckEncode(hash[:], version))
}
