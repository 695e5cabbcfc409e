package types

import (
	"cosmossdk.io/errors"
)

// Pair sentinel errors
var (
	ErrNotInitialized                      = errors.Register(ModuleName, 101, "pair not yet initialized")
	ErrInitializeAlreadyInitialized        = errors.Register(ModuleName, 102, "pair already initialized")
	ErrInitializeTokenOrderInvalid         = errors.Register(ModuleName, 103, "token_0 must be less than token_1")
	ErrDepositInsufficientAmountToken0     = errors.Register(ModuleName, 104, "insufficient amount of token 0 sent")
	ErrDepositInsufficientAmountToken1     = errors.Register(ModuleName, 105, "insufficient amount of token 1 sent")
	ErrDepositInsufficientFirstLiquidity   = errors.Register(ModuleName, 106, "insufficient first liquidity minted")
	ErrDepositInsufficientLiquidityMinted  = errors.Register(ModuleName, 107, "insufficient liquidity minted")
	ErrSwapInsufficientOutputAmount        = errors.Register(ModuleName, 108, "insufficient output amount")
	ErrSwapNegativesOutNotSupported        = errors.Register(ModuleName, 109, "negative output amounts are not supported")
	ErrSwapInsufficientLiquidity           = errors.Register(ModuleName, 110, "insufficient liquidity")
	ErrSwapInvalidTo                       = errors.Register(ModuleName, 111, "invalid to address")
	ErrSwapInsufficientInputAmount         = errors.Register(ModuleName, 112, "insufficient input amount")
	ErrSwapNegativesInNotSupported         = errors.Register(ModuleName, 113, "negative input amounts are not supported")
	ErrSwapKConstantNotMet                 = errors.Register(ModuleName, 114, "constant product invariant not met")
	ErrWithdrawLiquidityNotInitialized     = errors.Register(ModuleName, 115, "liquidity was never provided")
	ErrWithdrawInsufficientSentShares      = errors.Register(ModuleName, 116, "insufficient shares sent")
	ErrWithdrawInsufficientLiquidityBurned = errors.Register(ModuleName, 117, "insufficient liquidity burned")
	ErrUpdateOverflow                      = errors.Register(ModuleName, 118, "balance overflows u64")
	ErrArithmeticOverflow                  = errors.Register(ModuleName, 119, "arithmetic overflow")
)
