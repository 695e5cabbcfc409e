package keeper

import (
	"context"

	"cosmossdk.io/math"

	hosttypes "github.com/soroswap/core/x/host/types"
)

// The LP share token surface. Minting and burning without authorization stay
// private to the pair.

func (k Keeper) Allowance(ctx context.Context, from, spender hosttypes.Address) (math.Int, error) {
	if err := k.ready(ctx); err != nil {
		return math.Int{}, err
	}
	return k.shares.Allowance(ctx, from, spender)
}

func (k Keeper) Approve(ctx context.Context, from, spender hosttypes.Address, amount math.Int, expirationLedger uint32) error {
	if err := k.ready(ctx); err != nil {
		return err
	}
	return k.shares.Approve(ctx, from, spender, amount, expirationLedger)
}

func (k Keeper) Balance(ctx context.Context, id hosttypes.Address) (math.Int, error) {
	if err := k.ready(ctx); err != nil {
		return math.Int{}, err
	}
	return k.shares.Balance(ctx, id)
}

func (k Keeper) Transfer(ctx context.Context, from, to hosttypes.Address, amount math.Int) error {
	if err := k.ready(ctx); err != nil {
		return err
	}
	return k.shares.Transfer(ctx, from, to, amount)
}

func (k Keeper) TransferFrom(ctx context.Context, spender, from, to hosttypes.Address, amount math.Int) error {
	if err := k.ready(ctx); err != nil {
		return err
	}
	return k.shares.TransferFrom(ctx, spender, from, to, amount)
}

func (k Keeper) Burn(ctx context.Context, from hosttypes.Address, amount math.Int) error {
	if err := k.ready(ctx); err != nil {
		return err
	}
	return k.shares.Burn(ctx, from, amount)
}

func (k Keeper) BurnFrom(ctx context.Context, spender, from hosttypes.Address, amount math.Int) error {
	if err := k.ready(ctx); err != nil {
		return err
	}
	return k.shares.BurnFrom(ctx, spender, from, amount)
}

func (k Keeper) Decimals(ctx context.Context) (uint32, error) {
	if err := k.ready(ctx); err != nil {
		return 0, err
	}
	return k.shares.Decimals(ctx)
}

func (k Keeper) Name(ctx context.Context) (string, error) {
	if err := k.ready(ctx); err != nil {
		return "", err
	}
	return k.shares.Name(ctx)
}

func (k Keeper) Symbol(ctx context.Context) (string, error) {
	if err := k.ready(ctx); err != nil {
		return "", err
	}
	return k.shares.Symbol(ctx)
}
