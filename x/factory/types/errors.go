package types

import (
	"cosmossdk.io/errors"
)

// Factory sentinel errors
var (
	ErrNotInitialized               = errors.Register(ModuleName, 201, "factory not yet initialized")
	ErrInitializeAlreadyInitialized = errors.Register(ModuleName, 202, "factory already initialized")
	ErrPairDoesNotExist             = errors.Register(ModuleName, 203, "pair does not exist")
	ErrIndexDoesNotExist            = errors.Register(ModuleName, 204, "index does not exist")
	ErrCreatePairIdenticalTokens    = errors.Register(ModuleName, 205, "token_a and token_b have identical addresses")
	ErrCreatePairAlreadyExists      = errors.Register(ModuleName, 206, "pair already exists between token_0 and token_1")
	ErrTotalPairsOverflow           = errors.Register(ModuleName, 207, "total pairs overflow")
)
