package keeper

import (
	"context"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/soroswap/core/x/host"
	hosttypes "github.com/soroswap/core/x/host/types"
	"github.com/soroswap/core/x/library"
	"github.com/soroswap/core/x/router/types"
)

// Keeper is the router contract. It holds no funds: every transfer goes from
// the user straight to a pair and pairs pay out to the next pair or the user.
type Keeper struct {
	host    *host.Host
	metrics *RouterMetrics
}

var _ types.RouterInterface = Keeper{}

// NewKeeper creates the router contract code.
func NewKeeper(h *host.Host) Keeper {
	return Keeper{host: h, metrics: NewRouterMetrics()}
}

// WasmName implements host.Contract.
func (k Keeper) WasmName() string { return types.WasmName }

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// observe records the outcome and latency of operation.
func (k Keeper) observe(operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "failed"
	}
	k.metrics.OperationsTotal.WithLabelValues(operation, status).Inc()
	k.metrics.OperationLatency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// factory returns the factory address, failing before Initialize, and
// extends the instance.
func (k Keeper) factory(ctx context.Context) (hosttypes.Address, error) {
	factory, found, err := k.host.Instance(ctx).GetAddress(types.FactoryKey)
	if err != nil {
		return hosttypes.Address{}, err
	}
	if !found {
		return hosttypes.Address{}, types.ErrNotInitialized
	}
	if err := k.host.ExtendInstanceTTL(ctx, hosttypes.InstanceLifetimeThreshold, hosttypes.InstanceBumpAmount); err != nil {
		return hosttypes.Address{}, err
	}
	return factory, nil
}

// admit runs the checks every mutating entry starts with, in order: the
// router is initialized, no amount is negative, to authorized the call and
// the deadline has not passed. It returns the factory.
func (k Keeper) admit(ctx context.Context, to hosttypes.Address, deadline uint64, amounts ...math.Int) (hosttypes.Address, error) {
	factory, err := k.factory(ctx)
	if err != nil {
		return hosttypes.Address{}, err
	}
	for _, amount := range amounts {
		if amount.IsNil() || amount.IsNegative() {
			return hosttypes.Address{}, types.ErrNegativeNotAllowed.Wrapf("%s", amount)
		}
	}
	if err := k.host.RequireAuth(ctx, to); err != nil {
		return hosttypes.Address{}, err
	}
	if now := host.LedgerTimestamp(ctx); now >= deadline {
		return hosttypes.Address{}, types.ErrDeadlineExpired.Wrapf("ledger time %d, deadline %d", now, deadline)
	}
	return factory, nil
}

// Initialize binds the router to factory.
func (k Keeper) Initialize(ctx context.Context, factory hosttypes.Address) error {
	st := k.host.Instance(ctx)
	found, err := st.Has(types.FactoryKey)
	if err != nil {
		return err
	}
	if found {
		return types.ErrInitializeAlreadyInitialized
	}
	if err := st.SetAddress(types.FactoryKey, factory); err != nil {
		return err
	}
	k.host.PublishEvent(ctx, types.EventModule, types.EventTypeInit,
		host.Attr(types.AttributeKeyFactory, factory.String()),
	)
	return k.host.ExtendInstanceTTL(ctx, hosttypes.InstanceLifetimeThreshold, hosttypes.InstanceBumpAmount)
}

func (k Keeper) GetFactory(ctx context.Context) (hosttypes.Address, error) {
	return k.factory(ctx)
}

// RouterPairFor returns the address of the pair of tokenA and tokenB,
// whether or not it has been created.
func (k Keeper) RouterPairFor(ctx context.Context, tokenA, tokenB hosttypes.Address) (hosttypes.Address, error) {
	factory, err := k.factory(ctx)
	if err != nil {
		return hosttypes.Address{}, err
	}
	pair, err := library.PairFor(k.host, factory, tokenA, tokenB)
	return pair, types.FromLibraryError(err)
}

func (k Keeper) RouterQuote(ctx context.Context, amountA, reserveA, reserveB math.Int) (math.Int, error) {
	amountB, err := library.Quote(amountA, reserveA, reserveB)
	return amountB, types.FromLibraryError(err)
}

func (k Keeper) RouterGetAmountOut(ctx context.Context, amountIn, reserveIn, reserveOut math.Int) (math.Int, error) {
	amountOut, err := library.GetAmountOut(amountIn, reserveIn, reserveOut)
	return amountOut, types.FromLibraryError(err)
}

func (k Keeper) RouterGetAmountIn(ctx context.Context, amountOut, reserveIn, reserveOut math.Int) (math.Int, error) {
	amountIn, err := library.GetAmountIn(amountOut, reserveIn, reserveOut)
	return amountIn, types.FromLibraryError(err)
}

func (k Keeper) RouterGetAmountsOut(ctx context.Context, amountIn math.Int, path []hosttypes.Address) ([]math.Int, error) {
	factory, err := k.factory(ctx)
	if err != nil {
		return nil, err
	}
	amounts, err := library.GetAmountsOut(ctx, k.host, factory, amountIn, path)
	return amounts, types.FromLibraryError(err)
}

func (k Keeper) RouterGetAmountsIn(ctx context.Context, amountOut math.Int, path []hosttypes.Address) ([]math.Int, error) {
	factory, err := k.factory(ctx)
	if err != nil {
		return nil, err
	}
	amounts, err := library.GetAmountsIn(ctx, k.host, factory, amountOut, path)
	return amounts, types.FromLibraryError(err)
}
