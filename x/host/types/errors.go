package types

import (
	"cosmossdk.io/errors"
)

// Host sentinel errors
var (
	ErrUnauthorized       = errors.Register(ModuleName, 2, "authorization required")
	ErrContractNotFound   = errors.Register(ModuleName, 3, "contract not found")
	ErrContractExists     = errors.Register(ModuleName, 4, "contract already exists")
	ErrCodeNotFound       = errors.Register(ModuleName, 5, "contract code not uploaded")
	ErrEntryArchived      = errors.Register(ModuleName, 6, "storage entry archived")
	ErrInvalidAddress     = errors.Register(ModuleName, 7, "invalid address")
	ErrContractInterface  = errors.Register(ModuleName, 8, "contract does not implement the requested interface")
	ErrInvalidTTL         = errors.Register(ModuleName, 9, "invalid ttl extension")
	ErrStorageCorrupted   = errors.Register(ModuleName, 10, "storage value could not be decoded")
	ErrNoFrame            = errors.Register(ModuleName, 11, "no contract frame on context")
	ErrInvalidContractKey = errors.Register(ModuleName, 12, "invalid contract storage key")
	ErrReentrancy         = errors.Register(ModuleName, 13, "contract re-entry is not allowed")
	ErrCallDepth          = errors.Register(ModuleName, 14, "maximum call depth exceeded")
	ErrContractPanic      = errors.Register(ModuleName, 15, "contract execution panicked")
)
