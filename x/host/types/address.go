package types

import (
	"bytes"
	"crypto/rand"
	"fmt"

	"github.com/cometbft/cometbft/crypto/tmhash"
	"github.com/cosmos/cosmos-sdk/types/bech32"
)

// AddressKind distinguishes externally owned accounts from deployed contracts.
type AddressKind byte

const (
	AccountAddress  AddressKind = 0
	ContractAddress AddressKind = 1
)

const (
	// AccountHRP is the bech32 prefix of account addresses.
	AccountHRP = "gacct"
	// ContractHRP is the bech32 prefix of contract addresses.
	ContractHRP = "ccntr"

	// AddressLen is the length of the canonical address encoding.
	AddressLen = 33
)

// Address identifies an account or a contract on the ledger.
// The zero value is the empty address and is never a valid party.
type Address struct {
	kind AddressKind
	key  [32]byte
	set  bool
}

// NewAccountAddress wraps a 32 byte account key.
func NewAccountAddress(key [32]byte) Address {
	return Address{kind: AccountAddress, key: key, set: true}
}

// NewContractAddress wraps a 32 byte contract id.
func NewContractAddress(id [32]byte) Address {
	return Address{kind: ContractAddress, key: id, set: true}
}

// GenerateAccount returns a fresh random account address.
func GenerateAccount() Address {
	var key [32]byte
	if _, err := rand.Read(key[:]); err != nil {
		panic(fmt.Sprintf("failed to read random bytes: %v", err))
	}
	return NewAccountAddress(key)
}

// AccountFromSeed derives a stable account address from a seed string.
func AccountFromSeed(seed string) Address {
	var key [32]byte
	copy(key[:], tmhash.Sum([]byte(seed)))
	return NewAccountAddress(key)
}

// AddressFromBytes decodes the canonical 33 byte encoding.
func AddressFromBytes(bz []byte) (Address, error) {
	if len(bz) != AddressLen {
		return Address{}, ErrInvalidAddress.Wrapf("expected %d bytes, got %d", AddressLen, len(bz))
	}
	kind := AddressKind(bz[0])
	if kind != AccountAddress && kind != ContractAddress {
		return Address{}, ErrInvalidAddress.Wrapf("unknown address kind %d", bz[0])
	}
	var key [32]byte
	copy(key[:], bz[1:])
	return Address{kind: kind, key: key, set: true}, nil
}

// ParseAddress decodes a bech32 account or contract address.
func ParseAddress(s string) (Address, error) {
	hrp, data, err := bech32.DecodeAndConvert(s)
	if err != nil {
		return Address{}, ErrInvalidAddress.Wrapf("%s: %v", s, err)
	}
	if len(data) != 32 {
		return Address{}, ErrInvalidAddress.Wrapf("%s: expected 32 byte key, got %d", s, len(data))
	}
	var key [32]byte
	copy(key[:], data)
	switch hrp {
	case AccountHRP:
		return NewAccountAddress(key), nil
	case ContractHRP:
		return NewContractAddress(key), nil
	default:
		return Address{}, ErrInvalidAddress.Wrapf("%s: unknown prefix %q", s, hrp)
	}
}

// MustParseAddress is ParseAddress that panics on error.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Kind returns the address kind.
func (a Address) Kind() AddressKind { return a.kind }

// Key returns the 32 byte key or contract id.
func (a Address) Key() [32]byte { return a.key }

// Empty reports whether a is the zero address.
func (a Address) Empty() bool { return !a.set }

// IsContract reports whether a names a contract.
func (a Address) IsContract() bool { return a.set && a.kind == ContractAddress }

// Bytes returns the canonical encoding: kind byte followed by the key.
// This is the encoding hashed into pair salts, so it must stay stable.
func (a Address) Bytes() []byte {
	bz := make([]byte, AddressLen)
	bz[0] = byte(a.kind)
	copy(bz[1:], a.key[:])
	return bz
}

// Compare orders addresses by their canonical encoding.
func (a Address) Compare(b Address) int {
	return bytes.Compare(a.Bytes(), b.Bytes())
}

// Less reports whether a sorts before b.
func (a Address) Less(b Address) bool { return a.Compare(b) < 0 }

// Equals reports whether a and b are the same address.
func (a Address) Equals(b Address) bool { return a == b }

func (a Address) String() string {
	if !a.set {
		return ""
	}
	hrp := AccountHRP
	if a.kind == ContractAddress {
		hrp = ContractHRP
	}
	s, err := bech32.ConvertAndEncode(hrp, a.key[:])
	if err != nil {
		panic(err)
	}
	return s
}
