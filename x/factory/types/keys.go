package types

import (
	"encoding/binary"

	hosttypes "github.com/soroswap/core/x/host/types"
)

const (
	// ModuleName is the codespace of factory errors and the logger module name.
	ModuleName = "factory"

	// EventModule is the topic of every factory event.
	EventModule = "SoroswapFactory"

	// WasmName names the factory code.
	WasmName = "soroswap_factory"
)

// Instance storage keys.
var (
	FeeToKey       = []byte("FeeTo")
	FeeToSetterKey = []byte("FeeToSetter")
	FeesEnabledKey = []byte("FeesEnabled")
	TotalPairsKey  = []byte("TotalPairs")
)

// Persistent storage keys.
var (
	PairWasmHashKey = []byte("PairWasmHash")

	PairAddressesByTokensPrefix = []byte("PairAddressesByTokens")
	PairAddressesNIndexedPrefix = []byte("PairAddressesNIndexed")
)

// PairAddressesByTokensKey returns the registry key of an ordered token pair.
func PairAddressesByTokensKey(token0, token1 hosttypes.Address) []byte {
	key := append([]byte{}, PairAddressesByTokensPrefix...)
	key = append(key, token0.Bytes()...)
	return append(key, token1.Bytes()...)
}

// PairAddressesNIndexedKey returns the key of the n-th created pair.
func PairAddressesNIndexedKey(n uint32) []byte {
	return binary.BigEndian.AppendUint32(append([]byte{}, PairAddressesNIndexedPrefix...), n)
}
