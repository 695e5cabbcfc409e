package keeper

import (
	"context"

	"cosmossdk.io/math"

	factorytypes "github.com/soroswap/core/x/factory/types"
	"github.com/soroswap/core/x/host"
	hosttypes "github.com/soroswap/core/x/host/types"
	"github.com/soroswap/core/x/pair/types"
	"github.com/soroswap/core/x/shared/safemath"
)

// mintFee mints the protocol's share of the growth of sqrt(k) since the last
// liquidity event to the factory's fee recipient. It reports whether the
// protocol fee is switched on.
func (k Keeper) mintFee(ctx context.Context, s pairState) (bool, error) {
	factory := factorytypes.NewClient(k.host, s.factory)
	feeOn, err := factory.FeesEnabled(ctx)
	if err != nil {
		return false, err
	}

	st := k.host.Instance(ctx)
	kLast, _, err := st.GetInt(types.KLastKey)
	if err != nil {
		return false, err
	}

	if !feeOn {
		if !kLast.IsZero() {
			return false, st.SetInt(types.KLastKey, math.ZeroInt())
		}
		return false, nil
	}
	if kLast.IsZero() {
		return true, nil
	}

	// reserves fit u64, so every intermediate stays well inside 256 bits
	rootK := safemath.Sqrt(s.reserve0.Mul(s.reserve1))
	rootKLast := safemath.Sqrt(kLast)
	if !rootK.GT(rootKLast) {
		return true, nil
	}
	supply, err := k.shares.TotalSupply(ctx)
	if err != nil {
		return false, err
	}
	numerator := supply.Mul(rootK.Sub(rootKLast))
	denominator := rootK.MulRaw(5).Add(rootKLast)
	liquidity := numerator.Quo(denominator)
	if !liquidity.IsPositive() {
		return true, nil
	}

	feeTo, err := factory.FeeTo(ctx)
	if err != nil {
		return false, err
	}
	if err := k.shares.Mint(ctx, feeTo, liquidity); err != nil {
		return false, err
	}
	k.metrics.ProtocolFeeMints.WithLabelValues(s.self.String()).Inc()
	k.Logger(ctx).Info("protocol fee minted",
		"pair", s.self.String(),
		"fee_to", feeTo.String(),
		"shares", liquidity.String(),
	)
	return true, nil
}

func (k Keeper) setKLast(ctx context.Context, reserve0, reserve1 math.Int) error {
	kLast, ok := safemath.Mul(reserve0, reserve1)
	if !ok {
		return types.ErrArithmeticOverflow.Wrapf("k_last = %s * %s", reserve0, reserve1)
	}
	return k.host.Instance(ctx).SetInt(types.KLastKey, kLast)
}

// Deposit mints LP shares to to for the tokens sent to the pair since the
// reserves were last committed.
func (k Keeper) Deposit(ctx context.Context, to hosttypes.Address) (math.Int, error) {
	s, err := k.load(ctx)
	if err != nil {
		return math.Int{}, err
	}
	b0, b1, err := k.balances(ctx, s)
	if err != nil {
		return math.Int{}, err
	}
	amount0, amount1 := b0.Sub(s.reserve0), b1.Sub(s.reserve1)
	if !amount0.IsPositive() {
		return math.Int{}, types.ErrDepositInsufficientAmountToken0.Wrapf("balance %s, reserve %s", b0, s.reserve0)
	}
	if !amount1.IsPositive() {
		return math.Int{}, types.ErrDepositInsufficientAmountToken1.Wrapf("balance %s, reserve %s", b1, s.reserve1)
	}

	feeOn, err := k.mintFee(ctx, s)
	if err != nil {
		return math.Int{}, err
	}
	supply, err := k.shares.TotalSupply(ctx)
	if err != nil {
		return math.Int{}, err
	}

	var liquidity math.Int
	if supply.IsZero() {
		product, ok := safemath.Mul(amount0, amount1)
		if !ok {
			return math.Int{}, types.ErrArithmeticOverflow.Wrapf("%s * %s", amount0, amount1)
		}
		root := safemath.Sqrt(product)
		if root.LTE(types.MinimumLiquidity) {
			return math.Int{}, types.ErrDepositInsufficientFirstLiquidity.Wrapf("sqrt(k) = %s", root)
		}
		if err := k.shares.Mint(ctx, s.self, types.MinimumLiquidity); err != nil {
			return math.Int{}, err
		}
		liquidity = root.Sub(types.MinimumLiquidity)
	} else {
		if !s.reserve0.IsPositive() || !s.reserve1.IsPositive() {
			return math.Int{}, types.ErrDepositInsufficientLiquidityMinted.Wrapf("reserves %s, %s", s.reserve0, s.reserve1)
		}
		// amounts and supply are i128, so the products fit 256 bits
		liquidity = safemath.Min(
			amount0.Mul(supply).Quo(s.reserve0),
			amount1.Mul(supply).Quo(s.reserve1),
		)
	}
	if !liquidity.IsPositive() {
		return math.Int{}, types.ErrDepositInsufficientLiquidityMinted.Wrapf("%s", liquidity)
	}
	if err := k.shares.Mint(ctx, to, liquidity); err != nil {
		return math.Int{}, err
	}

	if err := k.update(ctx, s, b0, b1); err != nil {
		return math.Int{}, err
	}
	if feeOn {
		if err := k.setKLast(ctx, b0, b1); err != nil {
			return math.Int{}, err
		}
	}

	k.host.PublishEvent(ctx, types.EventModule, types.EventTypeDeposit,
		host.Attr(types.AttributeKeySender, host.Invoker(ctx).String()),
		host.Attr(types.AttributeKeyTo, to.String()),
		host.Attr(types.AttributeKeyAmount0, amount0.String()),
		host.Attr(types.AttributeKeyAmount1, amount1.String()),
		host.Attr(types.AttributeKeyLiquidity, liquidity.String()),
		host.Attr(types.AttributeKeyNewReserve0, b0.String()),
		host.Attr(types.AttributeKeyNewReserve1, b1.String()),
	)
	k.metrics.DepositsTotal.WithLabelValues(s.self.String()).Inc()
	k.observeSupply(ctx, s)
	return liquidity, nil
}

// Withdraw burns the shares sent to the pair, less the locked minimum
// liquidity, and pays out the proportional amount of both tokens to to.
func (k Keeper) Withdraw(ctx context.Context, to hosttypes.Address) (math.Int, math.Int, error) {
	s, err := k.load(ctx)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	supply, err := k.shares.TotalSupply(ctx)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if supply.IsZero() {
		return math.Int{}, math.Int{}, types.ErrWithdrawLiquidityNotInitialized
	}
	held, err := k.shares.Balance(ctx, s.self)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	liquidity := held.Sub(types.MinimumLiquidity)
	if !liquidity.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrWithdrawInsufficientSentShares.Wrapf("pair holds %s shares", held)
	}

	b0, b1, err := k.balances(ctx, s)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	feeOn, err := k.mintFee(ctx, s)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if supply, err = k.shares.TotalSupply(ctx); err != nil {
		return math.Int{}, math.Int{}, err
	}

	amount0 := b0.Mul(liquidity).Quo(supply)
	amount1 := b1.Mul(liquidity).Quo(supply)
	if !amount0.IsPositive() || !amount1.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrWithdrawInsufficientLiquidityBurned.Wrapf("%s, %s", amount0, amount1)
	}

	if err := k.shares.BurnInternal(ctx, s.self, liquidity); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if err := k.send(ctx, s, s.token0, to, amount0); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if err := k.send(ctx, s, s.token1, to, amount1); err != nil {
		return math.Int{}, math.Int{}, err
	}

	b0, b1, err = k.balances(ctx, s)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if err := k.update(ctx, s, b0, b1); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if feeOn {
		if err := k.setKLast(ctx, b0, b1); err != nil {
			return math.Int{}, math.Int{}, err
		}
	}

	k.host.PublishEvent(ctx, types.EventModule, types.EventTypeWithdraw,
		host.Attr(types.AttributeKeySender, host.Invoker(ctx).String()),
		host.Attr(types.AttributeKeySharesBurnt, liquidity.String()),
		host.Attr(types.AttributeKeyAmount0, amount0.String()),
		host.Attr(types.AttributeKeyAmount1, amount1.String()),
		host.Attr(types.AttributeKeyTo, to.String()),
	)
	k.metrics.WithdrawalsTotal.WithLabelValues(s.self.String()).Inc()
	k.observeSupply(ctx, s)
	return amount0, amount1, nil
}

func (k Keeper) observeSupply(ctx context.Context, s pairState) {
	supply, err := k.shares.TotalSupply(ctx)
	if err != nil {
		return
	}
	k.metrics.SharesSupply.WithLabelValues(s.self.String()).Set(gaugeValue(supply))
}
