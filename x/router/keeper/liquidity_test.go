package keeper_test

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/soroswap/core/x/router/types"
	tokentypes "github.com/soroswap/core/x/token/types"
)

type addLiquidityResult struct {
	amountA, amountB, liquidity math.Int
}

func (s *RouterTestSuite) addLiquidity(a, b tokentypes.AdminClient, desiredA, desiredB, minA, minB math.Int, deadline uint64) (res addLiquidityResult, err error) {
	err = s.env.Tx(s.user, func(ctx context.Context) error {
		res.amountA, res.amountB, res.liquidity, err = s.env.Router.AddLiquidity(ctx, a.Address, b.Address,
			desiredA, desiredB, minA, minB, s.user, deadline)
		return err
	})
	return res, err
}

func (s *RouterTestSuite) removeLiquidity(a, b tokentypes.AdminClient, liquidity, minA, minB math.Int, deadline uint64) (amountA, amountB math.Int, err error) {
	err = s.env.Tx(s.provider, func(ctx context.Context) error {
		amountA, amountB, err = s.env.Router.RemoveLiquidity(ctx, a.Address, b.Address,
			liquidity, minA, minB, s.provider, deadline)
		return err
	})
	return amountA, amountB, err
}

func (s *RouterTestSuite) lastEvent(name string) map[string]string {
	events := s.env.Ctx.EventManager().Events()
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Type == name {
			attrs := make(map[string]string)
			for _, attr := range events[i].Attributes {
				attrs[attr.Key] = attr.Value
			}
			return attrs
		}
	}
	s.Require().FailNow("event not found: " + name)
	return nil
}

func (s *RouterTestSuite) TestAddLiquidityCreatesPair() {
	exists, err := s.env.Factory.PairExists(s.env.Ctx, s.tokenA.Address, s.tokenB.Address)
	s.Require().NoError(err)
	s.Require().False(exists)

	s.env.Ctx = s.env.Ctx.WithEventManager(sdk.NewEventManager())
	res, err := s.addLiquidity(s.tokenA, s.tokenB,
		math.NewInt(1_000_000_000), math.NewInt(4_000_000_000), math.ZeroInt(), math.ZeroInt(), s.env.Deadline())
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(1_000_000_000), res.amountA)
	s.Require().Equal(math.NewInt(4_000_000_000), res.amountB)
	s.Require().Equal(math.NewInt(2_000_000_000-1_000), res.liquidity)

	pair := s.env.Pair(s.tokenA.Address, s.tokenB.Address)
	predicted, err := s.env.Router.RouterPairFor(s.env.Ctx, s.tokenB.Address, s.tokenA.Address)
	s.Require().NoError(err)
	s.Require().Equal(predicted, pair.Address)
	s.Require().Equal(res.liquidity, s.env.Balance(pair.Address, s.user))

	rA, rB := s.reserves(s.tokenA, s.tokenB)
	s.Require().Equal(res.amountA, rA)
	s.Require().Equal(res.amountB, rB)
	s.requireRouterEmpty()

	event := s.lastEvent(types.EventTypeAddLiquidity)
	s.Require().Equal(s.tokenA.Address.String(), event[types.AttributeKeyTokenA])
	s.Require().Equal(pair.Address.String(), event[types.AttributeKeyPair])
	s.Require().Equal("1000000000", event[types.AttributeKeyAmountA])
	s.Require().Equal(res.liquidity.String(), event[types.AttributeKeyLiquidity])
}

func (s *RouterTestSuite) TestAddLiquidityAtCurrentPrice() {
	s.seedPools()

	res, err := s.addLiquidity(s.tokenA, s.tokenB,
		math.NewInt(1_000_000), math.NewInt(8_000_000), math.ZeroInt(), math.ZeroInt(), s.env.Deadline())
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(1_000_000), res.amountA)
	s.Require().Equal(math.NewInt(4_000_000), res.amountB)

	// reversed token order quotes from the other side
	res, err = s.addLiquidity(s.tokenB, s.tokenA,
		math.NewInt(3_000_000), math.NewInt(1_000_000), math.ZeroInt(), math.ZeroInt(), s.env.Deadline())
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(3_000_000), res.amountA)
	s.Require().Equal(math.NewInt(750_000), res.amountB)

	res, err = s.addLiquidity(s.tokenA, s.tokenB,
		math.NewInt(1_000_000), math.NewInt(3_000_000), math.ZeroInt(), math.ZeroInt(), s.env.Deadline())
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(750_000), res.amountA)
	s.Require().Equal(math.NewInt(3_000_000), res.amountB)
	s.requireRouterEmpty()
}

func (s *RouterTestSuite) TestAddLiquidityMinimums() {
	s.seedPools()
	before := s.balances(s.user)

	_, err := s.addLiquidity(s.tokenA, s.tokenB,
		math.NewInt(1_000_000), math.NewInt(8_000_000), math.ZeroInt(), math.NewInt(5_000_000), s.env.Deadline())
	s.Require().ErrorIs(err, types.ErrInsufficientBAmount)

	_, err = s.addLiquidity(s.tokenA, s.tokenB,
		math.NewInt(1_000_000), math.NewInt(3_000_000), math.NewInt(800_000), math.ZeroInt(), s.env.Deadline())
	s.Require().ErrorIs(err, types.ErrInsufficientAAmount)

	s.requireBalances(s.user, before)
}

func (s *RouterTestSuite) TestRemoveLiquidity() {
	s.seedPools()
	pair := s.env.Pair(s.tokenA.Address, s.tokenB.Address)
	shares := s.env.Balance(pair.Address, s.provider)
	s.Require().Equal(math.NewInt(2_000_000_000-1_000), shares)

	_, _, err := s.removeLiquidity(s.tokenA, s.tokenB, math.NewInt(1_000_000_000),
		math.NewInt(500_000_001), math.ZeroInt(), s.env.Deadline())
	s.Require().ErrorIs(err, types.ErrInsufficientAAmount)
	_, _, err = s.removeLiquidity(s.tokenA, s.tokenB, math.NewInt(1_000_000_000),
		math.ZeroInt(), math.NewInt(2_000_000_001), s.env.Deadline())
	s.Require().ErrorIs(err, types.ErrInsufficientBAmount)
	s.Require().Equal(shares, s.env.Balance(pair.Address, s.provider))

	s.env.Ctx = s.env.Ctx.WithEventManager(sdk.NewEventManager())
	amountB, amountA, err := s.removeLiquidity(s.tokenB, s.tokenA, math.NewInt(1_000_000_000),
		math.NewInt(2_000_000_000), math.NewInt(500_000_000), s.env.Deadline())
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(500_000_000), amountA)
	s.Require().Equal(math.NewInt(2_000_000_000), amountB)

	s.Require().Equal(amountA, s.env.Balance(s.tokenA.Address, s.provider))
	s.Require().Equal(amountB, s.env.Balance(s.tokenB.Address, s.provider))
	s.Require().Equal(shares.SubRaw(1_000_000_000), s.env.Balance(pair.Address, s.provider))
	s.requireRouterEmpty()

	event := s.lastEvent(types.EventTypeRemoveLiquidity)
	s.Require().Equal(s.tokenB.Address.String(), event[types.AttributeKeyTokenA])
	s.Require().Equal("2000000000", event[types.AttributeKeyAmountA])
	s.Require().Equal(s.provider.String(), event[types.AttributeKeyTo])

	_, _, err = s.removeLiquidity(s.tokenA, s.tokenC, math.NewInt(1),
		math.ZeroInt(), math.ZeroInt(), s.env.Deadline())
	s.Require().ErrorIs(err, types.ErrPairDoesNotExist)
}
