package host

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/soroswap/core/x/host/types"
)

type frameKey struct{}

// frame is one entry of the invocation stack.
type frame struct {
	contract types.Address
	invoker  types.Address
	fn       string
	parent   *frame
	depth    int
}

func frameFrom(ctx context.Context) *frame {
	f, _ := sdk.UnwrapSDKContext(ctx).Value(frameKey{}).(*frame)
	return f
}

func (f *frame) onStack(contract types.Address) bool {
	for cur := f; cur != nil; cur = cur.parent {
		if cur.contract == contract {
			return true
		}
	}
	return false
}

// CurrentContract returns the address of the executing contract.
func CurrentContract(ctx context.Context) (types.Address, error) {
	f := frameFrom(ctx)
	if f == nil {
		return types.Address{}, types.ErrNoFrame
	}
	return f.contract, nil
}

// MustCurrentContract is CurrentContract for code that only runs inside Invoke.
func MustCurrentContract(ctx context.Context) types.Address {
	addr, err := CurrentContract(ctx)
	if err != nil {
		panic(err)
	}
	return addr
}

// Invoker returns the contract that invoked the current frame, or the
// transaction source account for a top level invocation. The empty address
// is returned when neither is known.
func Invoker(ctx context.Context) types.Address {
	if f := frameFrom(ctx); f != nil {
		return f.invoker
	}
	if tx := txFrom(ctx); tx != nil {
		return tx.source
	}
	return types.Address{}
}
