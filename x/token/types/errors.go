package types

import (
	"cosmossdk.io/errors"
)

// Token sentinel errors
var (
	ErrNegativeAmountNotAllowed              = errors.Register(ModuleName, 301, "negative amount is not allowed")
	ErrWriteAllowanceExpirationLedgerExpired = errors.Register(ModuleName, 302, "allowance expiration ledger is in the past")
	ErrSpendAllowanceInsufficientAllowance   = errors.Register(ModuleName, 303, "insufficient allowance")
	ErrSpendBalanceInsufficient              = errors.Register(ModuleName, 304, "insufficient balance")
	ErrTotalSupplyIncreaseOverflow           = errors.Register(ModuleName, 305, "total supply overflow")
	ErrTotalSupplyDecreaseUnderflow          = errors.Register(ModuleName, 306, "total supply underflow")
	ErrTotalSupplyInsufficient               = errors.Register(ModuleName, 307, "total supply is smaller than the burnt amount")
	ErrReceiveBalanceOverflow                = errors.Register(ModuleName, 308, "balance overflow")
	ErrInitializeAlreadyInitialized          = errors.Register(ModuleName, 309, "token already initialized")
	ErrNotInitialized                        = errors.Register(ModuleName, 310, "token not initialized")
	ErrInvalidDecimals                       = errors.Register(ModuleName, 311, "decimals above the maximum")
	ErrWriteAllowanceExpirationLedgerTooFar  = errors.Register(ModuleName, 312, "allowance expiration ledger is beyond the maximum entry ttl")
)
