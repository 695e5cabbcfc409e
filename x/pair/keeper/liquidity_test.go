package keeper_test

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/soroswap/core/x/library"
	"github.com/soroswap/core/x/pair/types"
	"github.com/soroswap/core/x/shared/safemath"
)

// lastEvent returns the attributes of the last event of type name.
func (s *PairTestSuite) lastEvent(name string) map[string]string {
	events := s.env.Ctx.EventManager().Events()
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Type != name {
			continue
		}
		attrs := make(map[string]string, len(events[i].Attributes))
		for _, attr := range events[i].Attributes {
			attrs[attr.Key] = attr.Value
		}
		return attrs
	}
	s.Require().FailNow("event not found: " + name)
	return nil
}

func (s *PairTestSuite) TestFirstDeposit() {
	s.env.Ctx = s.env.Ctx.WithEventManager(sdk.NewEventManager())

	liquidity, err := s.deposit(math.NewInt(1_000_000), math.NewInt(4_000_000))
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(1_999_000), liquidity)
	s.Require().Equal(math.NewInt(1_999_000), s.shares(s.user))
	s.Require().Equal(types.MinimumLiquidity, s.shares(s.pair.Address))

	r0, r1, ts := s.reserves()
	s.Require().Equal(math.NewInt(1_000_000), r0)
	s.Require().Equal(math.NewInt(4_000_000), r1)
	s.Require().Equal(uint64(s.env.Ctx.BlockTime().Unix()), ts)

	supply, err := s.pair.TotalShares(s.env.Ctx)
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(2_000_000), supply)

	event := s.lastEvent(types.EventTypeDeposit)
	s.Require().Equal(s.user.String(), event[types.AttributeKeyTo])
	s.Require().Equal("1000000", event[types.AttributeKeyAmount0])
	s.Require().Equal("4000000", event[types.AttributeKeyAmount1])
	s.Require().Equal("1999000", event[types.AttributeKeyLiquidity])
	s.Require().Equal("4000000", event[types.AttributeKeyNewReserve1])

	sync := s.lastEvent(types.EventTypeSync)
	s.Require().Equal("1000000", sync[types.AttributeKeyReserve0])
}

func (s *PairTestSuite) TestSubsequentDepositIsProportional() {
	_, err := s.deposit(math.NewInt(1_000_000), math.NewInt(4_000_000))
	s.Require().NoError(err)

	liquidity, err := s.deposit(math.NewInt(500_000), math.NewInt(2_000_000))
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(1_000_000), liquidity)

	// the smaller side sets the shares, the surplus is donated
	liquidity, err = s.deposit(math.NewInt(300_000), math.NewInt(600_000))
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(300_000), liquidity)
	s.Require().Equal(types.MinimumLiquidity, s.shares(s.pair.Address))
	s.requireSynced()
}

func (s *PairTestSuite) TestDepositErrors() {
	_, err := s.deposit(math.ZeroInt(), math.ZeroInt())
	s.Require().ErrorIs(err, types.ErrDepositInsufficientAmountToken0)

	_, err = s.deposit(math.NewInt(5_000), math.ZeroInt())
	s.Require().ErrorIs(err, types.ErrDepositInsufficientAmountToken1)

	_, err = s.deposit(math.NewInt(1_000), math.NewInt(1_000))
	s.Require().ErrorIs(err, types.ErrDepositInsufficientFirstLiquidity)

	// a failed deposit leaves nothing behind
	s.Require().True(s.env.Balance(s.token0.Address, s.pair.Address).IsZero())

	_, err = s.deposit(math.NewInt(1_000_000), math.NewInt(4_000_000))
	s.Require().NoError(err)
	_, err = s.deposit(math.NewInt(1), math.NewInt(1))
	s.Require().ErrorIs(err, types.ErrDepositInsufficientLiquidityMinted)
}

func (s *PairTestSuite) TestWithdrawErrors() {
	err := s.env.Tx(s.user, func(ctx context.Context) error {
		_, _, err := s.pair.Withdraw(ctx, s.user)
		return err
	})
	s.Require().ErrorIs(err, types.ErrWithdrawLiquidityNotInitialized)

	_, err = s.deposit(math.NewInt(1_000_000), math.NewInt(4_000_000))
	s.Require().NoError(err)

	err = s.env.Tx(s.user, func(ctx context.Context) error {
		_, _, err := s.pair.Withdraw(ctx, s.user)
		return err
	})
	s.Require().ErrorIs(err, types.ErrWithdrawInsufficientSentShares)

	// one share of a 1:4 pool is worth nothing of token0
	_, _, err = s.withdraw(math.NewInt(1))
	s.Require().ErrorIs(err, types.ErrWithdrawInsufficientLiquidityBurned)
}

func (s *PairTestSuite) TestRoundTripWithoutProtocolFee() {
	before0 := s.env.Balance(s.token0.Address, s.user)
	before1 := s.env.Balance(s.token1.Address, s.user)

	deposit0, deposit1 := math.NewInt(50_000_000), math.NewInt(100_000_000)
	liquidity, err := s.deposit(deposit0, deposit1)
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(70_709_678), liquidity)

	in0 := math.NewInt(1_000_000)
	out1, err := library.GetAmountOut(in0, deposit0, deposit1)
	s.Require().NoError(err)
	s.Require().NoError(s.swap(in0, math.ZeroInt(), math.ZeroInt(), out1))

	kLast, err := s.pair.KLast(s.env.Ctx)
	s.Require().NoError(err)
	s.Require().True(kLast.IsZero())

	supply := math.NewInt(70_710_678)
	b0, b1 := deposit0.Add(in0), deposit1.Sub(out1)
	want0, want1 := b0.Mul(liquidity).Quo(supply), b1.Mul(liquidity).Quo(supply)

	amount0, amount1, err := s.withdraw(liquidity)
	s.Require().NoError(err)
	s.Require().Equal(want0, amount0)
	s.Require().Equal(want1, amount1)

	s.Require().Equal(before0.Sub(deposit0).Sub(in0).Add(want0), s.env.Balance(s.token0.Address, s.user))
	s.Require().Equal(before1.Sub(deposit1).Add(out1).Add(want1), s.env.Balance(s.token1.Address, s.user))
	s.Require().True(s.shares(s.user).IsZero())
	s.Require().Equal(types.MinimumLiquidity, s.shares(s.pair.Address))

	kLast, err = s.pair.KLast(s.env.Ctx)
	s.Require().NoError(err)
	s.Require().True(kLast.IsZero())
	s.requireSynced()

	event := s.lastEvent(types.EventTypeWithdraw)
	s.Require().Equal(liquidity.String(), event[types.AttributeKeySharesBurnt])
}

func (s *PairTestSuite) enableProtocolFee() {
	s.Require().NoError(s.env.Tx(s.env.Admin, func(ctx context.Context) error {
		if err := s.env.Factory.SetFeeTo(ctx, s.other); err != nil {
			return err
		}
		return s.env.Factory.SetFeesEnabled(ctx, true)
	}))
}

func (s *PairTestSuite) TestProtocolFee() {
	s.enableProtocolFee()

	liquidity, err := s.deposit(math.NewInt(50_000_000), math.NewInt(100_000_000))
	s.Require().NoError(err)
	k1 := math.NewInt(50_000_000).Mul(math.NewInt(100_000_000))
	kLast, err := s.pair.KLast(s.env.Ctx)
	s.Require().NoError(err)
	s.Require().Equal(k1, kLast)
	s.Require().True(s.shares(s.other).IsZero())

	in0 := math.NewInt(5_000_000)
	out1, err := library.GetAmountOut(in0, math.NewInt(50_000_000), math.NewInt(100_000_000))
	s.Require().NoError(err)
	s.Require().NoError(s.swap(in0, math.ZeroInt(), math.ZeroInt(), out1))

	r0, r1, _ := s.reserves()
	rootK2, rootK1 := safemath.Sqrt(r0.Mul(r1)), safemath.Sqrt(k1)
	supply, err := s.pair.TotalShares(s.env.Ctx)
	s.Require().NoError(err)
	fee := supply.Mul(rootK2.Sub(rootK1)).Quo(rootK2.MulRaw(5).Add(rootK1))
	s.Require().True(fee.IsPositive())

	_, _, err = s.withdraw(liquidity)
	s.Require().NoError(err)
	s.Require().Equal(fee, s.shares(s.other))

	r0, r1, _ = s.reserves()
	kLast, err = s.pair.KLast(s.env.Ctx)
	s.Require().NoError(err)
	s.Require().Equal(r0.Mul(r1), kLast)
}

func (s *PairTestSuite) TestProtocolFeeSwitchedOffResetsKLast() {
	s.enableProtocolFee()
	_, err := s.deposit(math.NewInt(50_000_000), math.NewInt(100_000_000))
	s.Require().NoError(err)

	s.Require().NoError(s.env.Tx(s.env.Admin, func(ctx context.Context) error {
		return s.env.Factory.SetFeesEnabled(ctx, false)
	}))
	_, err = s.deposit(math.NewInt(5_000_000), math.NewInt(10_000_000))
	s.Require().NoError(err)

	kLast, err := s.pair.KLast(s.env.Ctx)
	s.Require().NoError(err)
	s.Require().True(kLast.IsZero())
	s.Require().True(s.shares(s.other).IsZero())
}
