package keeper

import (
	"context"
	"strings"
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

// requirePairs checks that every hop of path has a pair.
func (k Keeper) requirePairs(ctx context.Context, factoryAddr hosttypes.Address, path []hosttypes.Address) error {
	if len(path) < 2 {
		return types.ErrLibraryInvalidPath.Wrapf("path of length %d", len(path))
	}
	factory := factorytypes.NewClient(k.host, factoryAddr)
	for i := 0; i < len(path)-1; i++ {
		if path[i] == path[i+1] {
			return types.ErrLibrarySortIdenticalTokens.Wrapf("hop %d: %s", i, path[i])
		}
		exists, err := factory.PairExists(ctx, path[i], path[i+1])
		if err != nil {
			return err
		}
		if !exists {
			return types.ErrPairDoesNotExist.Wrapf("hop %d: %s/%s", i, path[i], path[i+1])
		}
	}
	return nil
}

// swap runs the hops of path. The input of the first hop must already sit
// in the first pair; every pair pays its output to the next pair, and the
// last one pays to.
func (k Keeper) swap(ctx context.Context, factory hosttypes.Address, amounts []math.Int, path []hosttypes.Address, to hosttypes.Address) error {
	for i := 0; i < len(path)-1; i++ {
		input, output := path[i], path[i+1]
		token0, _, err := library.SortTokens(input, output)
		if err != nil {
			return types.FromLibraryError(err)
		}

		amount0Out, amount1Out := math.ZeroInt(), amounts[i+1]
		if input != token0 {
			amount0Out, amount1Out = amounts[i+1], math.ZeroInt()
		}

		destination := to
		if i < len(path)-2 {
			if destination, err = library.PairFor(k.host, factory, output, path[i+2]); err != nil {
				return types.FromLibraryError(err)
			}
		}
		pair, err := library.PairFor(k.host, factory, input, output)
		if err != nil {
			return types.FromLibraryError(err)
		}
		if err := pairtypes.NewClient(k.host, pair).Swap(ctx, amount0Out, amount1Out, destination); err != nil {
			return err
		}
	}
	k.metrics.SwapHops.Observe(float64(len(path) - 1))
	return nil
}

// execute moves amounts[0] of path[0] from to into the first pair and runs
// the swap.
func (k Keeper) execute(ctx context.Context, factory hosttypes.Address, amounts []math.Int, path []hosttypes.Address, to hosttypes.Address) error {
	first, err := library.PairFor(k.host, factory, path[0], path[1])
	if err != nil {
		return types.FromLibraryError(err)
	}
	if err := tokentypes.NewClient(k.host, path[0]).Transfer(ctx, to, first, amounts[0]); err != nil {
		return err
	}
	if err := k.swap(ctx, factory, amounts, path, to); err != nil {
		return err
	}

	k.host.PublishEvent(ctx, types.EventModule, types.EventTypeSwap,
		host.Attr(types.AttributeKeyPath, joinAddresses(path)),
		host.Attr(types.AttributeKeyAmounts, joinAmounts(amounts)),
		host.Attr(types.AttributeKeyTo, to.String()),
	)
	k.Logger(ctx).Debug("routed swap",
		"hops", len(path)-1,
		"amount_in", amounts[0].String(),
		"amount_out", amounts[len(amounts)-1].String(),
		"to", to.String(),
	)
	return nil
}

// SwapExactTokensForTokens swaps exactly amountIn of path[0] for as much of
// the last token of path as the pairs give, failing below amountOutMin.
func (k Keeper) SwapExactTokensForTokens(
	ctx context.Context,
	amountIn, amountOutMin math.Int,
	path []hosttypes.Address,
	to hosttypes.Address,
	deadline uint64,
) (amounts []math.Int, err error) {
	defer func(start time.Time) { k.observe("swap_exact_tokens_for_tokens", start, err) }(time.Now())
	factory, err := k.admit(ctx, to, deadline, amountIn, amountOutMin)
	if err != nil {
		return nil, err
	}
	if err := k.requirePairs(ctx, factory, path); err != nil {
		return nil, err
	}

	amounts, err = library.GetAmountsOut(ctx, k.host, factory, amountIn, path)
	if err != nil {
		return nil, types.FromLibraryError(err)
	}
	if out := amounts[len(amounts)-1]; out.LT(amountOutMin) {
		return nil, types.ErrInsufficientOutputAmount.Wrapf("%s < min %s", out, amountOutMin)
	}
	if err := k.execute(ctx, factory, amounts, path, to); err != nil {
		return nil, err
	}
	return amounts, nil
}

// SwapTokensForExactTokens swaps as little of path[0] as needed to receive
// exactly amountOut of the last token of path, failing above amountInMax.
func (k Keeper) SwapTokensForExactTokens(
	ctx context.Context,
	amountOut, amountInMax math.Int,
	path []hosttypes.Address,
	to hosttypes.Address,
	deadline uint64,
) (amounts []math.Int, err error) {
	defer func(start time.Time) { k.observe("swap_tokens_for_exact_tokens", start, err) }(time.Now())
	factory, err := k.admit(ctx, to, deadline, amountOut, amountInMax)
	if err != nil {
		return nil, err
	}
	if err := k.requirePairs(ctx, factory, path); err != nil {
		return nil, err
	}

	amounts, err = library.GetAmountsIn(ctx, k.host, factory, amountOut, path)
	if err != nil {
		return nil, types.FromLibraryError(err)
	}
	if amounts[0].GT(amountInMax) {
		return nil, types.ErrExcessiveInputAmount.Wrapf("%s > max %s", amounts[0], amountInMax)
	}
	if err := k.execute(ctx, factory, amounts, path, to); err != nil {
		return nil, err
	}
	return amounts, nil
}

func joinAddresses(path []hosttypes.Address) string {
	parts := make([]string, len(path))
	for i, addr := range path {
		parts[i] = addr.String()
	}
	return strings.Join(parts, ",")
}

func joinAmounts(amounts []math.Int) string {
	parts := make([]string, len(amounts))
	for i, amount := range amounts {
		parts[i] = amount.String()
	}
	return strings.Join(parts, ",")
}
