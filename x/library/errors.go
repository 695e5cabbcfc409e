package library

import (
	"cosmossdk.io/errors"
)

// ModuleName is the codespace of library errors.
const ModuleName = "library"

// Library sentinel errors
var (
	ErrSortIdenticalTokens      = errors.Register(ModuleName, 501, "token_a and token_b have identical addresses")
	ErrInsufficientAmount       = errors.Register(ModuleName, 502, "insufficient amount")
	ErrInsufficientLiquidity    = errors.Register(ModuleName, 503, "insufficient liquidity")
	ErrInsufficientOutputAmount = errors.Register(ModuleName, 504, "insufficient output amount")
	ErrInsufficientInputAmount  = errors.Register(ModuleName, 505, "insufficient input amount")
	ErrInvalidPath              = errors.Register(ModuleName, 506, "invalid path")
	ErrArithmeticOverflow       = errors.Register(ModuleName, 507, "arithmetic overflow")
)
