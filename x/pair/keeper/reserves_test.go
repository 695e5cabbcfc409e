package keeper_test

import (
	"context"

	"cosmossdk.io/math"

	"github.com/soroswap/core/x/pair/types"
	"github.com/soroswap/core/x/shared/safemath"
)

func (s *PairTestSuite) donate(amount0, amount1 math.Int) {
	s.Require().NoError(s.env.Tx(s.user, func(ctx context.Context) error {
		return s.send(ctx, amount0, amount1)
	}))
}

func (s *PairTestSuite) TestSkim() {
	_, err := s.deposit(math.NewInt(1_000_000), math.NewInt(4_000_000))
	s.Require().NoError(err)
	s.donate(math.NewInt(100), math.NewInt(50))

	s.Require().NoError(s.env.Tx(s.other, func(ctx context.Context) error {
		return s.pair.Skim(ctx, s.other)
	}))
	s.Require().Equal(math.NewInt(100), s.env.Balance(s.token0.Address, s.other))
	s.Require().Equal(math.NewInt(50), s.env.Balance(s.token1.Address, s.other))

	r0, r1, _ := s.reserves()
	s.Require().Equal(math.NewInt(1_000_000), r0)
	s.Require().Equal(math.NewInt(4_000_000), r1)
	s.requireSynced()

	event := s.lastEvent(types.EventTypeSkim)
	s.Require().Equal("100", event[types.AttributeKeyAmount0])
	s.Require().Equal("50", event[types.AttributeKeyAmount1])
}

func (s *PairTestSuite) TestSync() {
	_, err := s.deposit(math.NewInt(1_000_000), math.NewInt(4_000_000))
	s.Require().NoError(err)
	s.donate(math.NewInt(100), math.ZeroInt())

	s.Require().NoError(s.env.Tx(s.other, func(ctx context.Context) error {
		return s.pair.Sync(ctx)
	}))
	r0, r1, _ := s.reserves()
	s.Require().Equal(math.NewInt(1_000_100), r0)
	s.Require().Equal(math.NewInt(4_000_000), r1)
}

func (s *PairTestSuite) TestSyncRejectsBalancesAboveU64() {
	s.env.Mint(s.pair.Address, safemath.MaxUint64().AddRaw(1), s.token0)
	err := s.env.Tx(s.other, func(ctx context.Context) error {
		return s.pair.Sync(ctx)
	})
	s.Require().ErrorIs(err, types.ErrUpdateOverflow)
}

func (s *PairTestSuite) TestCumulativePrices() {
	_, err := s.deposit(math.NewInt(1_000_000), math.NewInt(4_000_000))
	s.Require().NoError(err)
	sync := func() {
		s.Require().NoError(s.env.Tx(s.other, func(ctx context.Context) error {
			return s.pair.Sync(ctx)
		}))
	}

	// nothing accrues within the ledger of the deposit
	sync()
	price0, err := s.pair.Price0CumulativeLast(s.env.Ctx)
	s.Require().NoError(err)
	s.Require().True(price0.IsZero())

	s.env.AdvanceLedger(2, 10)
	sync()

	unit0, ok := safemath.UQ64x64(math.NewInt(4_000_000), math.NewInt(1_000_000))
	s.Require().True(ok)
	unit1, ok := safemath.UQ64x64(math.NewInt(1_000_000), math.NewInt(4_000_000))
	s.Require().True(ok)

	price0, err = s.pair.Price0CumulativeLast(s.env.Ctx)
	s.Require().NoError(err)
	s.Require().True(unit0.MulUint64(10).Equal(price0))
	price1, err := s.pair.Price1CumulativeLast(s.env.Ctx)
	s.Require().NoError(err)
	s.Require().True(unit1.MulUint64(10).Equal(price1))

	_, _, ts := s.reserves()
	s.Require().Equal(uint64(s.env.Ctx.BlockTime().Unix()), ts)
}
