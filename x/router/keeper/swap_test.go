package keeper_test

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/soroswap/core/x/host"
	hosttypes "github.com/soroswap/core/x/host/types"
	"github.com/soroswap/core/x/router/types"
)

var multiHopAmounts = []math.Int{
	math.NewInt(123_456_789),
	math.NewInt(438_386_277),
	math.NewInt(788_035_362),
}

func (s *RouterTestSuite) TestSwapExactTokensForTokensMultiHop() {
	s.seedPools()
	before := s.balances(s.user)

	s.env.Ctx = s.env.Ctx.WithEventManager(sdk.NewEventManager())
	amounts, err := s.swapExact(multiHopAmounts[0], math.ZeroInt(), s.path(s.tokenA, s.tokenB, s.tokenC), s.env.Deadline())
	s.Require().NoError(err)
	s.Require().Equal(multiHopAmounts, amounts)

	after := s.balances(s.user)
	s.Require().Equal(before[0].Sub(amounts[0]), after[0])
	s.Require().Equal(before[1], after[1])
	s.Require().Equal(before[2].Add(amounts[2]), after[2])
	s.requireRouterEmpty()

	rA, rB := s.reserves(s.tokenA, s.tokenB)
	s.Require().Equal(math.NewInt(1_000_000_000).Add(amounts[0]), rA)
	s.Require().Equal(math.NewInt(4_000_000_000).Sub(amounts[1]), rB)
	rB, rC := s.reserves(s.tokenB, s.tokenC)
	s.Require().Equal(math.NewInt(4_000_000_000).Add(amounts[1]), rB)
	s.Require().Equal(math.NewInt(8_000_000_000).Sub(amounts[2]), rC)

	event := s.lastEvent(types.EventTypeSwap)
	s.Require().Equal("123456789,438386277,788035362", event[types.AttributeKeyAmounts])
	s.Require().Equal(s.user.String(), event[types.AttributeKeyTo])
}

func (s *RouterTestSuite) TestSwapExactTokensForTokensMinimum() {
	s.seedPools()
	before := s.balances(s.user)

	_, err := s.swapExact(multiHopAmounts[0], multiHopAmounts[2].AddRaw(1),
		s.path(s.tokenA, s.tokenB, s.tokenC), s.env.Deadline())
	s.Require().ErrorIs(err, types.ErrInsufficientOutputAmount)
	s.requireBalances(s.user, before)

	amounts, err := s.swapExact(multiHopAmounts[0], multiHopAmounts[2],
		s.path(s.tokenA, s.tokenB, s.tokenC), s.env.Deadline())
	s.Require().NoError(err)
	s.Require().Equal(multiHopAmounts, amounts)
}

func (s *RouterTestSuite) TestSwapTokensForExactTokens() {
	s.seedPools()
	before := s.balances(s.user)
	path := s.path(s.tokenA, s.tokenB, s.tokenC)

	quoted, err := s.env.Router.RouterGetAmountsIn(s.env.Ctx, multiHopAmounts[2], path)
	s.Require().NoError(err)
	s.Require().Equal(multiHopAmounts, quoted)

	_, err = s.swapForExact(multiHopAmounts[2], multiHopAmounts[0].SubRaw(1), path, s.env.Deadline())
	s.Require().ErrorIs(err, types.ErrExcessiveInputAmount)
	s.requireBalances(s.user, before)

	amounts, err := s.swapForExact(multiHopAmounts[2], multiHopAmounts[0], path, s.env.Deadline())
	s.Require().NoError(err)
	s.Require().Equal(multiHopAmounts, amounts)

	after := s.balances(s.user)
	s.Require().Equal(before[0].Sub(amounts[0]), after[0])
	s.Require().Equal(before[1], after[1])
	s.Require().Equal(before[2].Add(multiHopAmounts[2]), after[2])
	s.requireRouterEmpty()
}

func (s *RouterTestSuite) TestSingleHopBothDirections() {
	s.seedPools()
	before := s.balances(s.user)

	out, err := s.env.Router.RouterGetAmountOut(s.env.Ctx, math.NewInt(1_000_000),
		math.NewInt(4_000_000_000), math.NewInt(1_000_000_000))
	s.Require().NoError(err)

	amounts, err := s.swapExact(math.NewInt(1_000_000), math.ZeroInt(), s.path(s.tokenB, s.tokenA), s.env.Deadline())
	s.Require().NoError(err)
	s.Require().Equal([]math.Int{math.NewInt(1_000_000), out}, amounts)

	after := s.balances(s.user)
	s.Require().Equal(before[0].Add(out), after[0])
	s.Require().Equal(before[1].SubRaw(1_000_000), after[1])
	s.requireRouterEmpty()
}

func (s *RouterTestSuite) TestExpiredDeadline() {
	s.seedPools()
	now := host.LedgerTimestamp(s.env.Ctx)
	user, provider := s.balances(s.user), s.balances(s.provider)
	rA, rB := s.reserves(s.tokenA, s.tokenB)

	for _, deadline := range []uint64{now - 1, now} {
		_, err := s.addLiquidity(s.tokenA, s.tokenB,
			math.NewInt(1_000), math.NewInt(4_000), math.ZeroInt(), math.ZeroInt(), deadline)
		s.Require().ErrorIs(err, types.ErrDeadlineExpired)
		_, _, err = s.removeLiquidity(s.tokenA, s.tokenB, math.NewInt(1_000),
			math.ZeroInt(), math.ZeroInt(), deadline)
		s.Require().ErrorIs(err, types.ErrDeadlineExpired)
		_, err = s.swapExact(math.NewInt(1_000), math.ZeroInt(), s.path(s.tokenA, s.tokenB), deadline)
		s.Require().ErrorIs(err, types.ErrDeadlineExpired)
		_, err = s.swapForExact(math.NewInt(1_000), userFunds, s.path(s.tokenA, s.tokenB), deadline)
		s.Require().ErrorIs(err, types.ErrDeadlineExpired)
	}

	s.requireBalances(s.user, user)
	s.requireBalances(s.provider, provider)
	gotA, gotB := s.reserves(s.tokenA, s.tokenB)
	s.Require().Equal(rA, gotA)
	s.Require().Equal(rB, gotB)

	_, err := s.swapExact(math.NewInt(1_000), math.ZeroInt(), s.path(s.tokenA, s.tokenB), now+1)
	s.Require().NoError(err)
}

func (s *RouterTestSuite) TestNegativeAmounts() {
	s.seedPools()
	negative := math.NewInt(-1)

	_, err := s.addLiquidity(s.tokenA, s.tokenB,
		negative, math.NewInt(4_000), math.ZeroInt(), math.ZeroInt(), s.env.Deadline())
	s.Require().ErrorIs(err, types.ErrNegativeNotAllowed)
	_, err = s.addLiquidity(s.tokenA, s.tokenB,
		math.NewInt(1_000), math.NewInt(4_000), math.ZeroInt(), negative, s.env.Deadline())
	s.Require().ErrorIs(err, types.ErrNegativeNotAllowed)
	_, _, err = s.removeLiquidity(s.tokenA, s.tokenB, negative, math.ZeroInt(), math.ZeroInt(), s.env.Deadline())
	s.Require().ErrorIs(err, types.ErrNegativeNotAllowed)
	_, err = s.swapExact(negative, math.ZeroInt(), s.path(s.tokenA, s.tokenB), s.env.Deadline())
	s.Require().ErrorIs(err, types.ErrNegativeNotAllowed)
	_, err = s.swapExact(math.NewInt(1_000), negative, s.path(s.tokenA, s.tokenB), s.env.Deadline())
	s.Require().ErrorIs(err, types.ErrNegativeNotAllowed)
	_, err = s.swapForExact(negative, userFunds, s.path(s.tokenA, s.tokenB), s.env.Deadline())
	s.Require().ErrorIs(err, types.ErrNegativeNotAllowed)
}

func (s *RouterTestSuite) TestInvalidPaths() {
	s.seedPools()
	before := s.balances(s.user)

	cases := []struct {
		name string
		path []hosttypes.Address
		err  error
	}{
		{"single token", s.path(s.tokenA), types.ErrLibraryInvalidPath},
		{"empty", nil, types.ErrLibraryInvalidPath},
		{"repeated token", s.path(s.tokenA, s.tokenA), types.ErrLibrarySortIdenticalTokens},
		{"missing pair", s.path(s.tokenA, s.tokenC), types.ErrPairDoesNotExist},
		{"missing second hop", s.path(s.tokenB, s.tokenA, s.tokenC), types.ErrPairDoesNotExist},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.swapExact(math.NewInt(1_000), math.ZeroInt(), tc.path, s.env.Deadline())
			s.Require().ErrorIs(err, tc.err)
			_, err = s.swapForExact(math.NewInt(1_000), userFunds, tc.path, s.env.Deadline())
			s.Require().ErrorIs(err, tc.err)
		})
	}
	s.requireBalances(s.user, before)
}

func (s *RouterTestSuite) TestSwapRequiresRecipientAuth() {
	s.seedPools()
	other := hosttypes.AccountFromSeed("other")

	err := s.env.Tx(other, func(ctx context.Context) error {
		_, err := s.env.Router.SwapExactTokensForTokens(ctx, math.NewInt(1_000), math.ZeroInt(),
			s.path(s.tokenA, s.tokenB), s.user, s.env.Deadline())
		return err
	})
	s.Require().ErrorIs(err, hosttypes.ErrUnauthorized)

	err = s.env.Tx(other, func(ctx context.Context) error {
		_, _, _, err := s.env.Router.AddLiquidity(ctx, s.tokenA.Address, s.tokenB.Address,
			math.NewInt(1_000), math.NewInt(4_000), math.ZeroInt(), math.ZeroInt(), s.user, s.env.Deadline())
		return err
	})
	s.Require().ErrorIs(err, hosttypes.ErrUnauthorized)
}

// The input quoted for an exact output always buys at least that output.
func (s *RouterTestSuite) TestQuotedInputCoversOutput() {
	s.seedPools()
	path := s.path(s.tokenA, s.tokenB, s.tokenC)

	rapid.Check(s.T(), func(t *rapid.T) {
		out := math.NewInt(rapid.Int64Range(1, 700_000_000).Draw(t, "out"))

		in, err := s.env.Router.RouterGetAmountsIn(s.env.Ctx, out, path)
		require.NoError(t, err)
		require.Len(t, in, len(path))
		require.Equal(t, out, in[len(in)-1])
		for i := 0; i < len(in)-1; i++ {
			require.True(t, in[i].IsPositive())
		}

		got, err := s.env.Router.RouterGetAmountsOut(s.env.Ctx, in[0], path)
		require.NoError(t, err)
		require.True(t, got[len(got)-1].GTE(out), "%s buys %s < %s", in[0], got[len(got)-1], out)
	})
}
