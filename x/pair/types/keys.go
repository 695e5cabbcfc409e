package types

import (
	"cosmossdk.io/math"
)

const (
	// ModuleName is the codespace of pair errors and the logger module name.
	ModuleName = "pair"

	// EventModule is the topic of every pair event.
	EventModule = "SoroswapPair"

	// WasmName names the pair code.
	WasmName = "soroswap_pair"
)

// LP share token metadata.
const (
	ShareDecimals = 7
	ShareName     = "Soroswap LP Token"
	ShareSymbol   = "SOROSWAP-LP"
)

// MinimumLiquidity is locked in the pair's own share balance on the first
// deposit.
var MinimumLiquidity = math.NewInt(1000)

// Instance storage keys of a pair.
var (
	FactoryKey              = []byte("Factory")
	Token0Key               = []byte("Token0")
	Token1Key               = []byte("Token1")
	Reserve0Key             = []byte("Reserve0")
	Reserve1Key             = []byte("Reserve1")
	BlockTimestampLastKey   = []byte("BlockTimestampLast")
	Price0CumulativeLastKey = []byte("Price0CumulativeLast")
	Price1CumulativeLastKey = []byte("Price1CumulativeLast")
	KLastKey                = []byte("KLast")
)
