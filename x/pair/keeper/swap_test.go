package keeper_test

import (
	"context"

	"cosmossdk.io/math"

	hosttypes "github.com/soroswap/core/x/host/types"
	"github.com/soroswap/core/x/library"
	"github.com/soroswap/core/x/pair/types"
)

func (s *PairTestSuite) TestSwapErrors() {
	_, err := s.deposit(math.NewInt(1_000_000), math.NewInt(4_000_000))
	s.Require().NoError(err)

	exact, err := library.GetAmountOut(math.NewInt(10_000), math.NewInt(1_000_000), math.NewInt(4_000_000))
	s.Require().NoError(err)

	tests := []struct {
		name        string
		in0         math.Int
		out0, out1  math.Int
		expectedErr error
	}{
		{"no output", math.ZeroInt(), math.ZeroInt(), math.ZeroInt(), types.ErrSwapInsufficientOutputAmount},
		{"negative output", math.ZeroInt(), math.NewInt(-1), math.NewInt(5), types.ErrSwapNegativesOutNotSupported},
		{"output drains reserve", math.ZeroInt(), math.NewInt(1_000_000), math.ZeroInt(), types.ErrSwapInsufficientLiquidity},
		{"output above reserve", math.ZeroInt(), math.ZeroInt(), math.NewInt(4_000_001), types.ErrSwapInsufficientLiquidity},
		{"no input", math.ZeroInt(), math.ZeroInt(), math.NewInt(100), types.ErrSwapInsufficientInputAmount},
		{"constant product broken", math.NewInt(10_000), math.ZeroInt(), exact.AddRaw(1), types.ErrSwapKConstantNotMet},
	}
	for _, tc := range tests {
		s.Run(tc.name, func() {
			err := s.swap(tc.in0, math.ZeroInt(), tc.out0, tc.out1)
			s.Require().ErrorIs(err, tc.expectedErr)
			s.requireSynced()
		})
	}

	for _, recipient := range []hosttypes.Address{s.token0.Address, s.token1.Address} {
		err = s.env.Tx(s.user, func(ctx context.Context) error {
			if err := s.send(ctx, math.NewInt(10_000), math.ZeroInt()); err != nil {
				return err
			}
			return s.pair.Swap(ctx, math.ZeroInt(), exact, recipient)
		})
		s.Require().ErrorIs(err, types.ErrSwapInvalidTo)
	}
}

func (s *PairTestSuite) TestSwapPaysExactOutput() {
	_, err := s.deposit(math.NewInt(1_000_000), math.NewInt(4_000_000))
	s.Require().NoError(err)

	in0 := math.NewInt(10_000)
	out1, err := library.GetAmountOut(in0, math.NewInt(1_000_000), math.NewInt(4_000_000))
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(39_486), out1)

	before := s.env.Balance(s.token1.Address, s.user)
	s.Require().NoError(s.swap(in0, math.ZeroInt(), math.ZeroInt(), out1))
	s.Require().Equal(before.Add(out1), s.env.Balance(s.token1.Address, s.user))

	r0, r1, _ := s.reserves()
	s.Require().Equal(math.NewInt(1_010_000), r0)
	s.Require().Equal(math.NewInt(4_000_000).Sub(out1), r1)

	event := s.lastEvent(types.EventTypeSwap)
	s.Require().Equal("10000", event[types.AttributeKeyAmount0In])
	s.Require().Equal("0", event[types.AttributeKeyAmount1In])
	s.Require().Equal(out1.String(), event[types.AttributeKeyAmount1Out])
	s.Require().Equal(s.user.String(), event[types.AttributeKeyTo])

	// and back the other way
	in1 := math.NewInt(40_000)
	out0, err := library.GetAmountOut(in1, r1, r0)
	s.Require().NoError(err)
	s.Require().NoError(s.swap(math.ZeroInt(), in1, out0, math.ZeroInt()))
	s.requireSynced()
}

func (s *PairTestSuite) TestSwapRepaidInSameToken() {
	_, err := s.deposit(math.NewInt(1_000_000), math.NewInt(4_000_000))
	s.Require().NoError(err)

	// take token1 out against token1 in, covering the 0.3% fee rounded up
	borrowed := math.NewInt(100_000)
	repaid := borrowed.MulRaw(1000).QuoRaw(997).AddRaw(1)
	s.Require().NoError(s.swap(math.ZeroInt(), repaid, math.ZeroInt(), borrowed))
	s.requireSynced()

	r0, r1, _ := s.reserves()
	s.Require().Equal(math.NewInt(1_000_000), r0)
	s.Require().Equal(math.NewInt(4_000_000).Add(repaid).Sub(borrowed), r1)

	// one unit short of the fee breaks the invariant
	err = s.swap(math.ZeroInt(), repaid.SubRaw(1), math.ZeroInt(), borrowed)
	s.Require().ErrorIs(err, types.ErrSwapKConstantNotMet)
}
