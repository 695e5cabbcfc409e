package types

import (
	"encoding/binary"

	"cosmossdk.io/math"

	hosttypes "github.com/soroswap/core/x/host/types"
)

const (
	// ModuleName is the codespace of token errors.
	ModuleName = "token"

	// EventModule is the topic of events emitted by standalone tokens.
	EventModule = "SoroswapToken"

	// MaxDecimals bounds the metadata decimals.
	MaxDecimals = 18
)

// Storage keys inside the token holder's contract storage. Balances live in
// persistent storage, allowances in temporary storage, supply, admin and
// metadata in instance storage.
var (
	AdminKey       = []byte("Admin")
	TotalSupplyKey = []byte("TotalSupply")
	DecimalsKey    = []byte("Decimals")
	NameKey        = []byte("Name")
	SymbolKey      = []byte("Symbol")

	BalanceKeyPrefix   = []byte("Balance")
	AllowanceKeyPrefix = []byte("Allowance")
)

// BalanceKey returns the storage key of id's balance.
func BalanceKey(id hosttypes.Address) []byte {
	return append(append([]byte{}, BalanceKeyPrefix...), id.Bytes()...)
}

// AllowanceKey returns the storage key of the allowance from grants spender.
func AllowanceKey(from, spender hosttypes.Address) []byte {
	key := append([]byte{}, AllowanceKeyPrefix...)
	key = append(key, from.Bytes()...)
	return append(key, spender.Bytes()...)
}

// AllowanceValue is a spendable amount valid up to and including an
// expiration ledger.
type AllowanceValue struct {
	Amount           math.Int
	ExpirationLedger uint32
}

// Marshal encodes the expiration ledger followed by the amount.
func (a AllowanceValue) Marshal() ([]byte, error) {
	amt, err := a.Amount.Marshal()
	if err != nil {
		return nil, err
	}
	return append(binary.BigEndian.AppendUint32(nil, a.ExpirationLedger), amt...), nil
}

// UnmarshalAllowanceValue decodes the Marshal encoding.
func UnmarshalAllowanceValue(bz []byte) (AllowanceValue, error) {
	if len(bz) < 4 {
		return AllowanceValue{}, hosttypes.ErrStorageCorrupted.Wrapf("allowance has %d bytes", len(bz))
	}
	var a AllowanceValue
	a.ExpirationLedger = binary.BigEndian.Uint32(bz[:4])
	if err := a.Amount.Unmarshal(bz[4:]); err != nil {
		return AllowanceValue{}, hosttypes.ErrStorageCorrupted.Wrapf("allowance amount: %v", err)
	}
	return a, nil
}
