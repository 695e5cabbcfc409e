package types

import (
	"context"

	"cosmossdk.io/math"

	"github.com/soroswap/core/x/host"
	hosttypes "github.com/soroswap/core/x/host/types"
)

// RouterInterface is the surface of a deployed router.
type RouterInterface interface {
	host.Contract

	Initialize(ctx context.Context, factory hosttypes.Address) error
	AddLiquidity(
		ctx context.Context,
		tokenA, tokenB hosttypes.Address,
		amountADesired, amountBDesired, amountAMin, amountBMin math.Int,
		to hosttypes.Address,
		deadline uint64,
	) (amountA, amountB, liquidity math.Int, err error)
	RemoveLiquidity(
		ctx context.Context,
		tokenA, tokenB hosttypes.Address,
		liquidity, amountAMin, amountBMin math.Int,
		to hosttypes.Address,
		deadline uint64,
	) (amountA, amountB math.Int, err error)
	SwapExactTokensForTokens(
		ctx context.Context,
		amountIn, amountOutMin math.Int,
		path []hosttypes.Address,
		to hosttypes.Address,
		deadline uint64,
	) ([]math.Int, error)
	SwapTokensForExactTokens(
		ctx context.Context,
		amountOut, amountInMax math.Int,
		path []hosttypes.Address,
		to hosttypes.Address,
		deadline uint64,
	) ([]math.Int, error)

	GetFactory(ctx context.Context) (hosttypes.Address, error)
	RouterPairFor(ctx context.Context, tokenA, tokenB hosttypes.Address) (hosttypes.Address, error)
	RouterQuote(ctx context.Context, amountA, reserveA, reserveB math.Int) (math.Int, error)
	RouterGetAmountOut(ctx context.Context, amountIn, reserveIn, reserveOut math.Int) (math.Int, error)
	RouterGetAmountIn(ctx context.Context, amountOut, reserveIn, reserveOut math.Int) (math.Int, error)
	RouterGetAmountsOut(ctx context.Context, amountIn math.Int, path []hosttypes.Address) ([]math.Int, error)
	RouterGetAmountsIn(ctx context.Context, amountOut math.Int, path []hosttypes.Address) ([]math.Int, error)
}

// Client invokes a deployed router.
type Client struct {
	Host    *host.Host
	Address hosttypes.Address
}

// NewClient returns a client for the router at addr.
func NewClient(h *host.Host, addr hosttypes.Address) Client {
	return Client{Host: h, Address: addr}
}

func (c Client) call(ctx context.Context, fn string, call func(ctx context.Context, r RouterInterface) error) error {
	return host.Call(ctx, c.Host, c.Address, fn, call)
}

func (c Client) Initialize(ctx context.Context, factory hosttypes.Address) error {
	return c.call(ctx, "initialize", func(ctx context.Context, r RouterInterface) error {
		return r.Initialize(ctx, factory)
	})
}

func (c Client) AddLiquidity(
	ctx context.Context,
	tokenA, tokenB hosttypes.Address,
	amountADesired, amountBDesired, amountAMin, amountBMin math.Int,
	to hosttypes.Address,
	deadline uint64,
) (amountA, amountB, liquidity math.Int, err error) {
	err = c.call(ctx, "add_liquidity", func(ctx context.Context, r RouterInterface) error {
		amountA, amountB, liquidity, err = r.AddLiquidity(ctx, tokenA, tokenB, amountADesired, amountBDesired, amountAMin, amountBMin, to, deadline)
		return err
	})
	return amountA, amountB, liquidity, err
}

func (c Client) RemoveLiquidity(
	ctx context.Context,
	tokenA, tokenB hosttypes.Address,
	liquidity, amountAMin, amountBMin math.Int,
	to hosttypes.Address,
	deadline uint64,
) (amountA, amountB math.Int, err error) {
	err = c.call(ctx, "remove_liquidity", func(ctx context.Context, r RouterInterface) error {
		amountA, amountB, err = r.RemoveLiquidity(ctx, tokenA, tokenB, liquidity, amountAMin, amountBMin, to, deadline)
		return err
	})
	return amountA, amountB, err
}

func (c Client) SwapExactTokensForTokens(
	ctx context.Context,
	amountIn, amountOutMin math.Int,
	path []hosttypes.Address,
	to hosttypes.Address,
	deadline uint64,
) (amounts []math.Int, err error) {
	err = c.call(ctx, "swap_exact_tokens_for_tokens", func(ctx context.Context, r RouterInterface) error {
		amounts, err = r.SwapExactTokensForTokens(ctx, amountIn, amountOutMin, path, to, deadline)
		return err
	})
	return amounts, err
}

func (c Client) SwapTokensForExactTokens(
	ctx context.Context,
	amountOut, amountInMax math.Int,
	path []hosttypes.Address,
	to hosttypes.Address,
	deadline uint64,
) (amounts []math.Int, err error) {
	err = c.call(ctx, "swap_tokens_for_exact_tokens", func(ctx context.Context, r RouterInterface) error {
		amounts, err = r.SwapTokensForExactTokens(ctx, amountOut, amountInMax, path, to, deadline)
		return err
	})
	return amounts, err
}

func (c Client) GetFactory(ctx context.Context) (factory hosttypes.Address, err error) {
	err = c.call(ctx, "get_factory", func(ctx context.Context, r RouterInterface) error {
		factory, err = r.GetFactory(ctx)
		return err
	})
	return factory, err
}

func (c Client) RouterPairFor(ctx context.Context, tokenA, tokenB hosttypes.Address) (pair hosttypes.Address, err error) {
	err = c.call(ctx, "router_pair_for", func(ctx context.Context, r RouterInterface) error {
		pair, err = r.RouterPairFor(ctx, tokenA, tokenB)
		return err
	})
	return pair, err
}

func (c Client) RouterQuote(ctx context.Context, amountA, reserveA, reserveB math.Int) (amountB math.Int, err error) {
	err = c.call(ctx, "router_quote", func(ctx context.Context, r RouterInterface) error {
		amountB, err = r.RouterQuote(ctx, amountA, reserveA, reserveB)
		return err
	})
	return amountB, err
}

func (c Client) RouterGetAmountOut(ctx context.Context, amountIn, reserveIn, reserveOut math.Int) (amountOut math.Int, err error) {
	err = c.call(ctx, "router_get_amount_out", func(ctx context.Context, r RouterInterface) error {
		amountOut, err = r.RouterGetAmountOut(ctx, amountIn, reserveIn, reserveOut)
		return err
	})
	return amountOut, err
}

func (c Client) RouterGetAmountIn(ctx context.Context, amountOut, reserveIn, reserveOut math.Int) (amountIn math.Int, err error) {
	err = c.call(ctx, "router_get_amount_in", func(ctx context.Context, r RouterInterface) error {
		amountIn, err = r.RouterGetAmountIn(ctx, amountOut, reserveIn, reserveOut)
		return err
	})
	return amountIn, err
}

func (c Client) RouterGetAmountsOut(ctx context.Context, amountIn math.Int, path []hosttypes.Address) (amounts []math.Int, err error) {
	err = c.call(ctx, "router_get_amounts_out", func(ctx context.Context, r RouterInterface) error {
		amounts, err = r.RouterGetAmountsOut(ctx, amountIn, path)
		return err
	})
	return amounts, err
}

func (c Client) RouterGetAmountsIn(ctx context.Context, amountOut math.Int, path []hosttypes.Address) (amounts []math.Int, err error) {
	err = c.call(ctx, "router_get_amounts_in", func(ctx context.Context, r RouterInterface) error {
		amounts, err = r.RouterGetAmountsIn(ctx, amountOut, path)
		return err
	})
	return amounts, err
}
