package keeper

import (
	"context"
	"time"

	"cosmossdk.io/math"

	factorytypes "github.com/soroswap/core/x/factory/types"
	"github.com/soroswap/core/x/host"
	hosttypes "github.com/soroswap/core/x/host/types"
	"github.com/soroswap/core/x/library"
	pairtypes "github.com/soroswap/core/x/pair/types"
	"github.com/soroswap/core/x/router/types"
	tokentypes "github.com/soroswap/core/x/token/types"
)

// optimalAmounts sizes a deposit to the current price of the pair: it keeps
// one desired amount and quotes the other, never going below its minimum.
func optimalAmounts(reserveA, reserveB, desiredA, desiredB, minA, minB math.Int) (math.Int, math.Int, error) {
	if reserveA.IsZero() && reserveB.IsZero() {
		return desiredA, desiredB, nil
	}

	optimalB, err := library.Quote(desiredA, reserveA, reserveB)
	if err != nil {
		return math.Int{}, math.Int{}, types.FromLibraryError(err)
	}
	if optimalB.LTE(desiredB) {
		if optimalB.LT(minB) {
			return math.Int{}, math.Int{}, types.ErrInsufficientBAmount.Wrapf("optimal %s < min %s", optimalB, minB)
		}
		return desiredA, optimalB, nil
	}

	optimalA, err := library.Quote(desiredB, reserveB, reserveA)
	if err != nil {
		return math.Int{}, math.Int{}, types.FromLibraryError(err)
	}
	if optimalA.GT(desiredA) {
		// quote is monotonic, so this cannot happen with consistent reserves
		return math.Int{}, math.Int{}, types.ErrInsufficientAAmount.Wrapf("optimal %s > desired %s", optimalA, desiredA)
	}
	if optimalA.LT(minA) {
		return math.Int{}, math.Int{}, types.ErrInsufficientAAmount.Wrapf("optimal %s < min %s", optimalA, minA)
	}
	return optimalA, desiredB, nil
}

// AddLiquidity deposits tokenA and tokenB from to into their pair at the
// current price, creating the pair first when needed, and mints the LP
// shares to to.
func (k Keeper) AddLiquidity(
	ctx context.Context,
	tokenA, tokenB hosttypes.Address,
	amountADesired, amountBDesired, amountAMin, amountBMin math.Int,
	to hosttypes.Address,
	deadline uint64,
) (amountA, amountB, liquidity math.Int, err error) {
	defer func(start time.Time) { k.observe("add_liquidity", start, err) }(time.Now())
	factoryAddr, err := k.admit(ctx, to, deadline, amountADesired, amountBDesired, amountAMin, amountBMin)
	if err != nil {
		return amountA, amountB, liquidity, err
	}
	pair, err := library.PairFor(k.host, factoryAddr, tokenA, tokenB)
	if err != nil {
		return amountA, amountB, liquidity, types.FromLibraryError(err)
	}

	factory := factorytypes.NewClient(k.host, factoryAddr)
	exists, err := factory.PairExists(ctx, tokenA, tokenB)
	if err != nil {
		return amountA, amountB, liquidity, err
	}
	if !exists {
		if _, err := factory.CreatePair(ctx, tokenA, tokenB); err != nil {
			return amountA, amountB, liquidity, err
		}
	}

	reserveA, reserveB, err := library.GetReserves(ctx, k.host, factoryAddr, tokenA, tokenB)
	if err != nil {
		return amountA, amountB, liquidity, types.FromLibraryError(err)
	}
	amountA, amountB, err = optimalAmounts(reserveA, reserveB, amountADesired, amountBDesired, amountAMin, amountBMin)
	if err != nil {
		return amountA, amountB, liquidity, err
	}

	if err := tokentypes.NewClient(k.host, tokenA).Transfer(ctx, to, pair, amountA); err != nil {
		return amountA, amountB, liquidity, err
	}
	if err := tokentypes.NewClient(k.host, tokenB).Transfer(ctx, to, pair, amountB); err != nil {
		return amountA, amountB, liquidity, err
	}
	liquidity, err = pairtypes.NewClient(k.host, pair).Deposit(ctx, to)
	if err != nil {
		return amountA, amountB, liquidity, err
	}

	k.host.PublishEvent(ctx, types.EventModule, types.EventTypeAddLiquidity,
		host.Attr(types.AttributeKeyTokenA, tokenA.String()),
		host.Attr(types.AttributeKeyTokenB, tokenB.String()),
		host.Attr(types.AttributeKeyPair, pair.String()),
		host.Attr(types.AttributeKeyAmountA, amountA.String()),
		host.Attr(types.AttributeKeyAmountB, amountB.String()),
		host.Attr(types.AttributeKeyLiquidity, liquidity.String()),
		host.Attr(types.AttributeKeyTo, to.String()),
	)
	return amountA, amountB, liquidity, nil
}

// RemoveLiquidity sends liquidity shares from to back to their pair and pays
// out the underlying tokens to to.
func (k Keeper) RemoveLiquidity(
	ctx context.Context,
	tokenA, tokenB hosttypes.Address,
	liquidity, amountAMin, amountBMin math.Int,
	to hosttypes.Address,
	deadline uint64,
) (amountA, amountB math.Int, err error) {
	defer func(start time.Time) { k.observe("remove_liquidity", start, err) }(time.Now())
	factoryAddr, err := k.admit(ctx, to, deadline, liquidity, amountAMin, amountBMin)
	if err != nil {
		return amountA, amountB, err
	}
	token0, _, err := library.SortTokens(tokenA, tokenB)
	if err != nil {
		return amountA, amountB, types.FromLibraryError(err)
	}
	exists, err := factorytypes.NewClient(k.host, factoryAddr).PairExists(ctx, tokenA, tokenB)
	if err != nil {
		return amountA, amountB, err
	}
	if !exists {
		return amountA, amountB, types.ErrPairDoesNotExist.Wrapf("%s/%s", tokenA, tokenB)
	}
	pairAddr, err := library.PairFor(k.host, factoryAddr, tokenA, tokenB)
	if err != nil {
		return amountA, amountB, types.FromLibraryError(err)
	}

	pair := pairtypes.NewClient(k.host, pairAddr)
	if err := pair.Transfer(ctx, to, pairAddr, liquidity); err != nil {
		return amountA, amountB, err
	}
	amount0, amount1, err := pair.Withdraw(ctx, to)
	if err != nil {
		return amountA, amountB, err
	}
	amountA, amountB = amount0, amount1
	if tokenA != token0 {
		amountA, amountB = amount1, amount0
	}
	if amountA.LT(amountAMin) {
		return amountA, amountB, types.ErrInsufficientAAmount.Wrapf("%s < min %s", amountA, amountAMin)
	}
	if amountB.LT(amountBMin) {
		return amountA, amountB, types.ErrInsufficientBAmount.Wrapf("%s < min %s", amountB, amountBMin)
	}

	k.host.PublishEvent(ctx, types.EventModule, types.EventTypeRemoveLiquidity,
		host.Attr(types.AttributeKeyTokenA, tokenA.String()),
		host.Attr(types.AttributeKeyTokenB, tokenB.String()),
		host.Attr(types.AttributeKeyPair, pairAddr.String()),
		host.Attr(types.AttributeKeyAmountA, amountA.String()),
		host.Attr(types.AttributeKeyAmountB, amountB.String()),
		host.Attr(types.AttributeKeyLiquidity, liquidity.String()),
		host.Attr(types.AttributeKeyTo, to.String()),
	)
	return amountA, amountB, nil
}
