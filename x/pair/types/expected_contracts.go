package types

import (
	"context"

	"cosmossdk.io/math"

	"github.com/soroswap/core/x/host"
	hosttypes "github.com/soroswap/core/x/host/types"
	tokentypes "github.com/soroswap/core/x/token/types"
)

// PairInterface is the surface of a deployed pair. The embedded token
// surface is the pair's LP share token.
type PairInterface interface {
	tokentypes.TokenInterface

	InitializePair(ctx context.Context, factory, token0, token1 hosttypes.Address) error
	Token0(ctx context.Context) (hosttypes.Address, error)
	Token1(ctx context.Context) (hosttypes.Address, error)
	Factory(ctx context.Context) (hosttypes.Address, error)

	Deposit(ctx context.Context, to hosttypes.Address) (math.Int, error)
	Swap(ctx context.Context, amount0Out, amount1Out math.Int, to hosttypes.Address) error
	Withdraw(ctx context.Context, to hosttypes.Address) (math.Int, math.Int, error)
	Skim(ctx context.Context, to hosttypes.Address) error
	Sync(ctx context.Context) error

	GetReserves(ctx context.Context) (reserve0, reserve1 math.Int, blockTimestampLast uint64, err error)
	KLast(ctx context.Context) (math.Int, error)
	Price0CumulativeLast(ctx context.Context) (math.Uint, error)
	Price1CumulativeLast(ctx context.Context) (math.Uint, error)
	TotalShares(ctx context.Context) (math.Int, error)
}

// Client invokes a deployed pair. Its embedded token client reaches the LP
// share token.
type Client struct {
	tokentypes.Client
}

// NewClient returns a client for the pair at addr.
func NewClient(h *host.Host, addr hosttypes.Address) Client {
	return Client{Client: tokentypes.NewClient(h, addr)}
}

func (c Client) call(ctx context.Context, fn string, call func(ctx context.Context, p PairInterface) error) error {
	return host.Call(ctx, c.Host, c.Address, fn, call)
}

func (c Client) InitializePair(ctx context.Context, factory, token0, token1 hosttypes.Address) error {
	return c.call(ctx, "initialize_pair", func(ctx context.Context, p PairInterface) error {
		return p.InitializePair(ctx, factory, token0, token1)
	})
}

func (c Client) Token0(ctx context.Context) (token hosttypes.Address, err error) {
	err = c.call(ctx, "token_0", func(ctx context.Context, p PairInterface) error {
		token, err = p.Token0(ctx)
		return err
	})
	return token, err
}

func (c Client) Token1(ctx context.Context) (token hosttypes.Address, err error) {
	err = c.call(ctx, "token_1", func(ctx context.Context, p PairInterface) error {
		token, err = p.Token1(ctx)
		return err
	})
	return token, err
}

func (c Client) Factory(ctx context.Context) (factory hosttypes.Address, err error) {
	err = c.call(ctx, "factory", func(ctx context.Context, p PairInterface) error {
		factory, err = p.Factory(ctx)
		return err
	})
	return factory, err
}

func (c Client) Deposit(ctx context.Context, to hosttypes.Address) (liquidity math.Int, err error) {
	err = c.call(ctx, "deposit", func(ctx context.Context, p PairInterface) error {
		liquidity, err = p.Deposit(ctx, to)
		return err
	})
	return liquidity, err
}

func (c Client) Swap(ctx context.Context, amount0Out, amount1Out math.Int, to hosttypes.Address) error {
	return c.call(ctx, "swap", func(ctx context.Context, p PairInterface) error {
		return p.Swap(ctx, amount0Out, amount1Out, to)
	})
}

func (c Client) Withdraw(ctx context.Context, to hosttypes.Address) (amount0, amount1 math.Int, err error) {
	err = c.call(ctx, "withdraw", func(ctx context.Context, p PairInterface) error {
		amount0, amount1, err = p.Withdraw(ctx, to)
		return err
	})
	return amount0, amount1, err
}

func (c Client) Skim(ctx context.Context, to hosttypes.Address) error {
	return c.call(ctx, "skim", func(ctx context.Context, p PairInterface) error {
		return p.Skim(ctx, to)
	})
}

func (c Client) Sync(ctx context.Context) error {
	return c.call(ctx, "sync", func(ctx context.Context, p PairInterface) error {
		return p.Sync(ctx)
	})
}

func (c Client) GetReserves(ctx context.Context) (reserve0, reserve1 math.Int, blockTimestampLast uint64, err error) {
	err = c.call(ctx, "get_reserves", func(ctx context.Context, p PairInterface) error {
		reserve0, reserve1, blockTimestampLast, err = p.GetReserves(ctx)
		return err
	})
	return reserve0, reserve1, blockTimestampLast, err
}

func (c Client) KLast(ctx context.Context) (kLast math.Int, err error) {
	err = c.call(ctx, "k_last", func(ctx context.Context, p PairInterface) error {
		kLast, err = p.KLast(ctx)
		return err
	})
	return kLast, err
}

func (c Client) Price0CumulativeLast(ctx context.Context) (price math.Uint, err error) {
	err = c.call(ctx, "price_0_cumulative_last", func(ctx context.Context, p PairInterface) error {
		price, err = p.Price0CumulativeLast(ctx)
		return err
	})
	return price, err
}

func (c Client) Price1CumulativeLast(ctx context.Context) (price math.Uint, err error) {
	err = c.call(ctx, "price_1_cumulative_last", func(ctx context.Context, p PairInterface) error {
		price, err = p.Price1CumulativeLast(ctx)
		return err
	})
	return price, err
}

func (c Client) TotalShares(ctx context.Context) (shares math.Int, err error) {
	err = c.call(ctx, "total_shares", func(ctx context.Context, p PairInterface) error {
		shares, err = p.TotalShares(ctx)
		return err
	})
	return shares, err
}
