package keeper

import (
	"context"

	"cosmossdk.io/math"

	"github.com/soroswap/core/x/host"
	hosttypes "github.com/soroswap/core/x/host/types"
	"github.com/soroswap/core/x/pair/types"
	"github.com/soroswap/core/x/shared/safemath"
)

// update commits balance0 and balance1 as the new reserves and, on the first
// call of a ledger with non-empty reserves, accumulates the time weighted
// prices of the previous reserves.
func (k Keeper) update(ctx context.Context, s pairState, balance0, balance1 math.Int) error {
	if !safemath.FitsUint64(balance0) || !safemath.FitsUint64(balance1) {
		return types.ErrUpdateOverflow.Wrapf("balances %s, %s", balance0, balance1)
	}

	st := k.host.Instance(ctx)
	now := host.LedgerTimestamp(ctx)
	last, _, err := st.GetUint64(types.BlockTimestampLastKey)
	if err != nil {
		return err
	}

	if now > last && s.reserve0.IsPositive() && s.reserve1.IsPositive() {
		elapsed := math.NewUint(now - last)
		price0, ok0 := safemath.UQ64x64(s.reserve1, s.reserve0)
		price1, ok1 := safemath.UQ64x64(s.reserve0, s.reserve1)
		if !ok0 || !ok1 {
			return types.ErrUpdateOverflow.Wrapf("reserves %s, %s", s.reserve0, s.reserve1)
		}

		cum0, _, err := st.GetUint(types.Price0CumulativeLastKey)
		if err != nil {
			return err
		}
		cum1, _, err := st.GetUint(types.Price1CumulativeLastKey)
		if err != nil {
			return err
		}
		cum0 = safemath.WrappingAddUint128(cum0, safemath.WrappingMulUint128(price0, elapsed))
		cum1 = safemath.WrappingAddUint128(cum1, safemath.WrappingMulUint128(price1, elapsed))
		if err := st.SetUint(types.Price0CumulativeLastKey, cum0); err != nil {
			return err
		}
		if err := st.SetUint(types.Price1CumulativeLastKey, cum1); err != nil {
			return err
		}
	}

	if err := st.SetInt(types.Reserve0Key, balance0); err != nil {
		return err
	}
	if err := st.SetInt(types.Reserve1Key, balance1); err != nil {
		return err
	}
	if err := st.SetUint64(types.BlockTimestampLastKey, now); err != nil {
		return err
	}

	k.metrics.Reserves.WithLabelValues(s.self.String(), s.token0.String()).Set(gaugeValue(balance0))
	k.metrics.Reserves.WithLabelValues(s.self.String(), s.token1.String()).Set(gaugeValue(balance1))

	k.host.PublishEvent(ctx, types.EventModule, types.EventTypeSync,
		host.Attr(types.AttributeKeyReserve0, balance0.String()),
		host.Attr(types.AttributeKeyReserve1, balance1.String()),
	)
	return nil
}

// Skim sends any balance held above the reserves to to.
func (k Keeper) Skim(ctx context.Context, to hosttypes.Address) error {
	s, err := k.load(ctx)
	if err != nil {
		return err
	}
	b0, b1, err := k.balances(ctx, s)
	if err != nil {
		return err
	}
	excess0, excess1 := b0.Sub(s.reserve0), b1.Sub(s.reserve1)
	if err := k.send(ctx, s, s.token0, to, excess0); err != nil {
		return err
	}
	if err := k.send(ctx, s, s.token1, to, excess1); err != nil {
		return err
	}

	k.host.PublishEvent(ctx, types.EventModule, types.EventTypeSkim,
		host.Attr(types.AttributeKeyTo, to.String()),
		host.Attr(types.AttributeKeyAmount0, safemath.Max(excess0, math.ZeroInt()).String()),
		host.Attr(types.AttributeKeyAmount1, safemath.Max(excess1, math.ZeroInt()).String()),
	)
	return nil
}

// Sync forces the reserves to match the balances.
func (k Keeper) Sync(ctx context.Context) error {
	s, err := k.load(ctx)
	if err != nil {
		return err
	}
	b0, b1, err := k.balances(ctx, s)
	if err != nil {
		return err
	}
	return k.update(ctx, s, b0, b1)
}
