package library

import (
	"context"

	"cosmossdk.io/math"

	"github.com/soroswap/core/x/host"
	hosttypes "github.com/soroswap/core/x/host/types"
	pairtypes "github.com/soroswap/core/x/pair/types"
)

// GetReserves returns the reserves of the pair of a and b, ordered as
// (a, b).
func GetReserves(ctx context.Context, h *host.Host, factory, a, b hosttypes.Address) (math.Int, math.Int, error) {
	token0, _, err := SortTokens(a, b)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	pair, err := PairFor(h, factory, a, b)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	reserve0, reserve1, _, err := pairtypes.NewClient(h, pair).GetReserves(ctx)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if a == token0 {
		return reserve0, reserve1, nil
	}
	return reserve1, reserve0, nil
}

// GetAmountsOut chains GetAmountOut along path. amounts[0] is amountIn and
// amounts[i+1] is the output of the hop from path[i] to path[i+1].
func GetAmountsOut(ctx context.Context, h *host.Host, factory hosttypes.Address, amountIn math.Int, path []hosttypes.Address) ([]math.Int, error) {
	if len(path) < 2 {
		return nil, ErrInvalidPath.Wrapf("path of length %d", len(path))
	}
	amounts := make([]math.Int, len(path))
	amounts[0] = amountIn
	for i := 0; i < len(path)-1; i++ {
		reserveIn, reserveOut, err := GetReserves(ctx, h, factory, path[i], path[i+1])
		if err != nil {
			return nil, err
		}
		amounts[i+1], err = GetAmountOut(amounts[i], reserveIn, reserveOut)
		if err != nil {
			return nil, err
		}
	}
	return amounts, nil
}

// GetAmountsIn chains GetAmountIn backwards along path. amounts[len-1] is
// amountOut and amounts[i-1] is the input the hop from path[i-1] to path[i]
// needs.
func GetAmountsIn(ctx context.Context, h *host.Host, factory hosttypes.Address, amountOut math.Int, path []hosttypes.Address) ([]math.Int, error) {
	if len(path) < 2 {
		return nil, ErrInvalidPath.Wrapf("path of length %d", len(path))
	}
	amounts := make([]math.Int, len(path))
	amounts[len(amounts)-1] = amountOut
	for i := len(path) - 1; i > 0; i-- {
		reserveIn, reserveOut, err := GetReserves(ctx, h, factory, path[i-1], path[i])
		if err != nil {
			return nil, err
		}
		amounts[i-1], err = GetAmountIn(amounts[i], reserveIn, reserveOut)
		if err != nil {
			return nil, err
		}
	}
	return amounts, nil
}
