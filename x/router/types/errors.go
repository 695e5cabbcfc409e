package types

import (
	"cosmossdk.io/errors"

	"github.com/soroswap/core/x/library"
)

// Router sentinel errors
var (
	ErrNotInitialized               = errors.Register(ModuleName, 401, "router not yet initialized")
	ErrNegativeNotAllowed           = errors.Register(ModuleName, 402, "negative amounts are not allowed")
	ErrDeadlineExpired              = errors.Register(ModuleName, 403, "deadline expired")
	ErrInitializeAlreadyInitialized = errors.Register(ModuleName, 404, "router already initialized")
	ErrInsufficientAAmount          = errors.Register(ModuleName, 405, "insufficient a amount")
	ErrInsufficientBAmount          = errors.Register(ModuleName, 406, "insufficient b amount")
	ErrInsufficientOutputAmount     = errors.Register(ModuleName, 407, "insufficient output amount")
	ErrExcessiveInputAmount         = errors.Register(ModuleName, 408, "excessive input amount")
	ErrPairDoesNotExist             = errors.Register(ModuleName, 409, "pair does not exist")
)

// Library failures surfacing through the router
var (
	ErrLibrarySortIdenticalTokens      = errors.Register(ModuleName, 501, "token_a and token_b have identical addresses")
	ErrLibraryInsufficientAmount       = errors.Register(ModuleName, 502, "insufficient amount")
	ErrLibraryInsufficientLiquidity    = errors.Register(ModuleName, 503, "insufficient liquidity")
	ErrLibraryInsufficientOutputAmount = errors.Register(ModuleName, 504, "insufficient output amount")
	ErrLibraryInsufficientInputAmount  = errors.Register(ModuleName, 505, "insufficient input amount")
	ErrLibraryInvalidPath              = errors.Register(ModuleName, 506, "invalid path")
	ErrLibraryArithmeticOverflow       = errors.Register(ModuleName, 507, "arithmetic overflow")
)

var libraryErrors = []struct {
	from, to *errors.Error
}{
	{library.ErrSortIdenticalTokens, ErrLibrarySortIdenticalTokens},
	{library.ErrInsufficientAmount, ErrLibraryInsufficientAmount},
	{library.ErrInsufficientLiquidity, ErrLibraryInsufficientLiquidity},
	{library.ErrInsufficientOutputAmount, ErrLibraryInsufficientOutputAmount},
	{library.ErrInsufficientInputAmount, ErrLibraryInsufficientInputAmount},
	{library.ErrInvalidPath, ErrLibraryInvalidPath},
	{library.ErrArithmeticOverflow, ErrLibraryArithmeticOverflow},
}

// FromLibraryError re-registers a library error under the router codespace.
// Any other error is returned unchanged.
func FromLibraryError(err error) error {
	if err == nil {
		return nil
	}
	for _, m := range libraryErrors {
		if errors.IsOf(err, m.from) {
			return m.to.Wrap(err.Error())
		}
	}
	return err
}
