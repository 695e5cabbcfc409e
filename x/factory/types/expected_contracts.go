package types

import (
	"context"

	"github.com/soroswap/core/x/host"
	hosttypes "github.com/soroswap/core/x/host/types"
)

// FactoryInterface is the surface of a deployed factory.
type FactoryInterface interface {
	host.Contract

	Initialize(ctx context.Context, setter hosttypes.Address, pairWasmHash [32]byte) error
	FeeTo(ctx context.Context) (hosttypes.Address, error)
	FeeToSetter(ctx context.Context) (hosttypes.Address, error)
	FeesEnabled(ctx context.Context) (bool, error)
	AllPairsLength(ctx context.Context) (uint32, error)
	GetPair(ctx context.Context, tokenA, tokenB hosttypes.Address) (hosttypes.Address, error)
	AllPairs(ctx context.Context, n uint32) (hosttypes.Address, error)
	PairExists(ctx context.Context, tokenA, tokenB hosttypes.Address) (bool, error)

	SetFeeTo(ctx context.Context, to hosttypes.Address) error
	SetFeeToSetter(ctx context.Context, newSetter hosttypes.Address) error
	SetFeesEnabled(ctx context.Context, isEnabled bool) error
	CreatePair(ctx context.Context, tokenA, tokenB hosttypes.Address) (hosttypes.Address, error)
}

// Client invokes a deployed factory.
type Client struct {
	Host    *host.Host
	Address hosttypes.Address
}

// NewClient returns a client for the factory at addr.
func NewClient(h *host.Host, addr hosttypes.Address) Client {
	return Client{Host: h, Address: addr}
}

func (c Client) call(ctx context.Context, fn string, call func(ctx context.Context, f FactoryInterface) error) error {
	return host.Call(ctx, c.Host, c.Address, fn, call)
}

func (c Client) Initialize(ctx context.Context, setter hosttypes.Address, pairWasmHash [32]byte) error {
	return c.call(ctx, "initialize", func(ctx context.Context, f FactoryInterface) error {
		return f.Initialize(ctx, setter, pairWasmHash)
	})
}

func (c Client) FeeTo(ctx context.Context) (feeTo hosttypes.Address, err error) {
	err = c.call(ctx, "fee_to", func(ctx context.Context, f FactoryInterface) error {
		feeTo, err = f.FeeTo(ctx)
		return err
	})
	return feeTo, err
}

func (c Client) FeeToSetter(ctx context.Context) (setter hosttypes.Address, err error) {
	err = c.call(ctx, "fee_to_setter", func(ctx context.Context, f FactoryInterface) error {
		setter, err = f.FeeToSetter(ctx)
		return err
	})
	return setter, err
}

func (c Client) FeesEnabled(ctx context.Context) (enabled bool, err error) {
	err = c.call(ctx, "fees_enabled", func(ctx context.Context, f FactoryInterface) error {
		enabled, err = f.FeesEnabled(ctx)
		return err
	})
	return enabled, err
}

func (c Client) AllPairsLength(ctx context.Context) (n uint32, err error) {
	err = c.call(ctx, "all_pairs_length", func(ctx context.Context, f FactoryInterface) error {
		n, err = f.AllPairsLength(ctx)
		return err
	})
	return n, err
}

func (c Client) GetPair(ctx context.Context, tokenA, tokenB hosttypes.Address) (pair hosttypes.Address, err error) {
	err = c.call(ctx, "get_pair", func(ctx context.Context, f FactoryInterface) error {
		pair, err = f.GetPair(ctx, tokenA, tokenB)
		return err
	})
	return pair, err
}

func (c Client) AllPairs(ctx context.Context, n uint32) (pair hosttypes.Address, err error) {
	err = c.call(ctx, "all_pairs", func(ctx context.Context, f FactoryInterface) error {
		pair, err = f.AllPairs(ctx, n)
		return err
	})
	return pair, err
}

func (c Client) PairExists(ctx context.Context, tokenA, tokenB hosttypes.Address) (exists bool, err error) {
	err = c.call(ctx, "pair_exists", func(ctx context.Context, f FactoryInterface) error {
		exists, err = f.PairExists(ctx, tokenA, tokenB)
		return err
	})
	return exists, err
}

func (c Client) SetFeeTo(ctx context.Context, to hosttypes.Address) error {
	return c.call(ctx, "set_fee_to", func(ctx context.Context, f FactoryInterface) error {
		return f.SetFeeTo(ctx, to)
	})
}

func (c Client) SetFeeToSetter(ctx context.Context, newSetter hosttypes.Address) error {
	return c.call(ctx, "set_fee_to_setter", func(ctx context.Context, f FactoryInterface) error {
		return f.SetFeeToSetter(ctx, newSetter)
	})
}

func (c Client) SetFeesEnabled(ctx context.Context, isEnabled bool) error {
	return c.call(ctx, "set_fees_enabled", func(ctx context.Context, f FactoryInterface) error {
		return f.SetFeesEnabled(ctx, isEnabled)
	})
}

func (c Client) CreatePair(ctx context.Context, tokenA, tokenB hosttypes.Address) (pair hosttypes.Address, err error) {
	err = c.call(ctx, "create_pair", func(ctx context.Context, f FactoryInterface) error {
		pair, err = f.CreatePair(ctx, tokenA, tokenB)
		return err
	})
	return pair, err
}
