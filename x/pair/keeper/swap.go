package keeper

import (
	"context"
	"math/big"

	"cosmossdk.io/math"

	"github.com/soroswap/core/x/host"
	hosttypes "github.com/soroswap/core/x/host/types"
	"github.com/soroswap/core/x/pair/types"
	"github.com/soroswap/core/x/shared/safemath"
)

var (
	feeScale   = big.NewInt(1000)
	feeCharged = big.NewInt(3)
	kScale     = big.NewInt(1_000_000)
)

// constantProductHolds checks the fee adjusted invariant
// (b0*1000 - in0*3) * (b1*1000 - in1*3) >= r0 * r1 * 1000^2.
// Balances are i128, so the products are computed without a width bound.
func constantProductHolds(b0, b1, in0, in1, r0, r1 math.Int) bool {
	adjusted0 := new(big.Int).Mul(b0.BigInt(), feeScale)
	adjusted0.Sub(adjusted0, new(big.Int).Mul(in0.BigInt(), feeCharged))
	adjusted1 := new(big.Int).Mul(b1.BigInt(), feeScale)
	adjusted1.Sub(adjusted1, new(big.Int).Mul(in1.BigInt(), feeCharged))

	lhs := new(big.Int).Mul(adjusted0, adjusted1)
	rhs := new(big.Int).Mul(r0.BigInt(), r1.BigInt())
	rhs.Mul(rhs, kScale)
	return lhs.Cmp(rhs) >= 0
}

// amountIn is what arrived above the reserve left after paying out.
func amountIn(balance, reserve, out math.Int) math.Int {
	return safemath.Max(balance.Sub(reserve.Sub(out)), math.ZeroInt())
}

// Swap pays out amount0Out and amount1Out to to and checks that tokens sent
// to the pair beforehand keep the constant product, net of the 0.3% fee.
func (k Keeper) Swap(ctx context.Context, amount0Out, amount1Out math.Int, to hosttypes.Address) (err error) {
	s, err := k.load(ctx)
	if err != nil {
		return err
	}
	defer func() {
		status := "success"
		if err != nil {
			status = "failed"
		}
		k.metrics.SwapsTotal.WithLabelValues(s.self.String(), status).Inc()
	}()

	if amount0Out.IsZero() && amount1Out.IsZero() {
		return types.ErrSwapInsufficientOutputAmount
	}
	if amount0Out.IsNegative() || amount1Out.IsNegative() {
		return types.ErrSwapNegativesOutNotSupported.Wrapf("%s, %s", amount0Out, amount1Out)
	}
	if amount0Out.GTE(s.reserve0) || amount1Out.GTE(s.reserve1) {
		return types.ErrSwapInsufficientLiquidity.Wrapf("out %s, %s; reserves %s, %s", amount0Out, amount1Out, s.reserve0, s.reserve1)
	}
	if to == s.token0 || to == s.token1 {
		return types.ErrSwapInvalidTo.Wrapf("%s", to)
	}

	if err := k.send(ctx, s, s.token0, to, amount0Out); err != nil {
		return err
	}
	if err := k.send(ctx, s, s.token1, to, amount1Out); err != nil {
		return err
	}

	b0, b1, err := k.balances(ctx, s)
	if err != nil {
		return err
	}
	amount0In := amountIn(b0, s.reserve0, amount0Out)
	amount1In := amountIn(b1, s.reserve1, amount1Out)
	if amount0In.IsZero() && amount1In.IsZero() {
		return types.ErrSwapInsufficientInputAmount
	}
	if !constantProductHolds(b0, b1, amount0In, amount1In, s.reserve0, s.reserve1) {
		return types.ErrSwapKConstantNotMet.Wrapf("balances %s, %s; reserves %s, %s", b0, b1, s.reserve0, s.reserve1)
	}

	if err := k.update(ctx, s, b0, b1); err != nil {
		return err
	}

	k.host.PublishEvent(ctx, types.EventModule, types.EventTypeSwap,
		host.Attr(types.AttributeKeySender, host.Invoker(ctx).String()),
		host.Attr(types.AttributeKeyAmount0In, amount0In.String()),
		host.Attr(types.AttributeKeyAmount1In, amount1In.String()),
		host.Attr(types.AttributeKeyAmount0Out, amount0Out.String()),
		host.Attr(types.AttributeKeyAmount1Out, amount1Out.String()),
		host.Attr(types.AttributeKeyTo, to.String()),
	)
	if amount0In.IsPositive() {
		k.metrics.SwapVolume.WithLabelValues(s.self.String(), s.token0.String()).Add(gaugeValue(amount0In))
	}
	if amount1In.IsPositive() {
		k.metrics.SwapVolume.WithLabelValues(s.self.String(), s.token1.String()).Add(gaugeValue(amount1In))
	}
	k.Logger(ctx).Debug("swap settled",
		"pair", s.self.String(),
		"amount0_in", amount0In.String(),
		"amount1_in", amount1In.String(),
		"amount0_out", amount0Out.String(),
		"amount1_out", amount1Out.String(),
	)
	return nil
}
