package keeper_test

import (
	"context"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/suite"

	keepertest "github.com/soroswap/core/testutil/keeper"
	"github.com/soroswap/core/x/host"
	hosttypes "github.com/soroswap/core/x/host/types"
	"github.com/soroswap/core/x/shared/safemath"
	"github.com/soroswap/core/x/token/types"
)

type TokenTestSuite struct {
	suite.Suite
	host  *host.Host
	ctx   sdk.Context
	admin hosttypes.Address
	alice hosttypes.Address
	bob   hosttypes.Address
	token types.AdminClient
}

func (s *TokenTestSuite) SetupTest() {
	s.host, s.ctx = keepertest.HostKeeper(s.T())
	s.admin = hosttypes.AccountFromSeed("admin")
	s.alice = hosttypes.AccountFromSeed("alice")
	s.bob = hosttypes.AccountFromSeed("bob")
	s.token = keepertest.DeployToken(s.T(), s.host, s.ctx, s.admin, "USDC")
}

func TestTokenTestSuite(t *testing.T) {
	suite.Run(t, new(TokenTestSuite))
}

func (s *TokenTestSuite) tx(signer hosttypes.Address, fn func(ctx context.Context) error) error {
	return s.host.Transact(s.ctx, []hosttypes.Address{signer}, fn)
}

func (s *TokenTestSuite) balance(addr hosttypes.Address) math.Int {
	b, err := s.token.Balance(s.ctx, addr)
	s.Require().NoError(err)
	return b
}

// supply reads the recorded total supply from the token's own storage.
func (s *TokenTestSuite) supply() math.Int {
	var supply math.Int
	err := s.host.Invoke(s.ctx, s.token.Address, "supply", func(ctx context.Context, _ host.Contract) error {
		var err error
		supply, _, err = s.host.Instance(ctx).GetInt(types.TotalSupplyKey)
		return err
	})
	s.Require().NoError(err)
	return supply
}

func (s *TokenTestSuite) TestMetadata() {
	decimals, err := s.token.Decimals(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(uint32(keepertest.TokenDecimals), decimals)

	name, err := s.token.Name(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal("USDC token", name)

	symbol, err := s.token.Symbol(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal("USDC", symbol)

	admin, err := s.token.Admin(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(s.admin, admin)

	err = s.tx(s.admin, func(ctx context.Context) error {
		return s.token.Initialize(ctx, s.alice, 7, "again", "AGN")
	})
	s.Require().ErrorIs(err, types.ErrInitializeAlreadyInitialized)
}

func (s *TokenTestSuite) TestMintRequiresAdmin() {
	err := s.tx(s.alice, func(ctx context.Context) error {
		return s.token.Mint(ctx, s.alice, math.NewInt(10))
	})
	s.Require().ErrorIs(err, hosttypes.ErrUnauthorized)

	keepertest.MintTo(s.T(), s.host, s.ctx, s.token, s.admin, math.NewInt(10), s.alice, s.bob)
	s.Require().Equal(math.NewInt(10), s.balance(s.alice))
	s.Require().Equal(math.NewInt(10), s.balance(s.bob))

	err = s.tx(s.admin, func(ctx context.Context) error {
		return s.token.SetAdmin(ctx, s.alice)
	})
	s.Require().NoError(err)
	keepertest.MintTo(s.T(), s.host, s.ctx, s.token, s.alice, math.NewInt(5), s.alice)
	s.Require().Equal(math.NewInt(15), s.balance(s.alice))
}

func (s *TokenTestSuite) TestTransfer() {
	keepertest.MintTo(s.T(), s.host, s.ctx, s.token, s.admin, math.NewInt(100), s.alice)

	s.Require().NoError(s.tx(s.alice, func(ctx context.Context) error {
		return s.token.Transfer(ctx, s.alice, s.bob, math.NewInt(40))
	}))
	s.Require().Equal(math.NewInt(60), s.balance(s.alice))
	s.Require().Equal(math.NewInt(40), s.balance(s.bob))

	auths := s.host.Authorizations()
	s.Require().Len(auths, 1)
	s.Require().Equal(s.alice, auths[0].Address)
	s.Require().Equal("transfer", auths[0].Function)

	tests := []struct {
		name   string
		signer hosttypes.Address
		amount math.Int
		err    error
	}{
		{"not signed by sender", s.bob, math.NewInt(1), hosttypes.ErrUnauthorized},
		{"negative amount", s.alice, math.NewInt(-1), types.ErrNegativeAmountNotAllowed},
		{"insufficient balance", s.alice, math.NewInt(61), types.ErrSpendBalanceInsufficient},
	}
	for _, tc := range tests {
		s.Run(tc.name, func() {
			err := s.tx(tc.signer, func(ctx context.Context) error {
				return s.token.Transfer(ctx, s.alice, s.bob, tc.amount)
			})
			s.Require().ErrorIs(err, tc.err)
			s.Require().Equal(math.NewInt(60), s.balance(s.alice))
		})
	}
}

func (s *TokenTestSuite) TestAllowance() {
	keepertest.MintTo(s.T(), s.host, s.ctx, s.token, s.admin, math.NewInt(100), s.alice)
	expiration := host.LedgerSequence(s.ctx) + 100

	s.Require().NoError(s.tx(s.alice, func(ctx context.Context) error {
		return s.token.Approve(ctx, s.alice, s.bob, math.NewInt(30), expiration)
	}))
	allowance, err := s.token.Allowance(s.ctx, s.alice, s.bob)
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(30), allowance)

	err = s.tx(s.bob, func(ctx context.Context) error {
		return s.token.TransferFrom(ctx, s.bob, s.alice, s.bob, math.NewInt(31))
	})
	s.Require().ErrorIs(err, types.ErrSpendAllowanceInsufficientAllowance)

	s.Require().NoError(s.tx(s.bob, func(ctx context.Context) error {
		return s.token.TransferFrom(ctx, s.bob, s.alice, s.bob, math.NewInt(20))
	}))
	s.Require().Equal(math.NewInt(80), s.balance(s.alice))
	s.Require().Equal(math.NewInt(20), s.balance(s.bob))

	allowance, err = s.token.Allowance(s.ctx, s.alice, s.bob)
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(10), allowance)

	s.Require().NoError(s.tx(s.bob, func(ctx context.Context) error {
		return s.token.BurnFrom(ctx, s.bob, s.alice, math.NewInt(10))
	}))
	s.Require().Equal(math.NewInt(70), s.balance(s.alice))

	allowance, err = s.token.Allowance(s.ctx, s.alice, s.bob)
	s.Require().NoError(err)
	s.Require().True(allowance.IsZero())
}

func (s *TokenTestSuite) TestAllowanceExpires() {
	keepertest.MintTo(s.T(), s.host, s.ctx, s.token, s.admin, math.NewInt(100), s.alice)
	expiration := host.LedgerSequence(s.ctx) + 50

	s.Require().NoError(s.tx(s.alice, func(ctx context.Context) error {
		return s.token.Approve(ctx, s.alice, s.bob, math.NewInt(30), expiration)
	}))

	s.ctx = keepertest.AdvanceLedger(s.ctx, 50, 250)
	allowance, err := s.token.Allowance(s.ctx, s.alice, s.bob)
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(30), allowance)

	s.ctx = keepertest.AdvanceLedger(s.ctx, 1, 5)
	allowance, err = s.token.Allowance(s.ctx, s.alice, s.bob)
	s.Require().NoError(err)
	s.Require().True(allowance.IsZero())

	err = s.tx(s.alice, func(ctx context.Context) error {
		return s.token.Approve(ctx, s.alice, s.bob, math.NewInt(1), host.LedgerSequence(ctx)-1)
	})
	s.Require().ErrorIs(err, types.ErrWriteAllowanceExpirationLedgerExpired)

	// a zero allowance may carry any expiration
	s.Require().NoError(s.tx(s.alice, func(ctx context.Context) error {
		return s.token.Approve(ctx, s.alice, s.bob, math.ZeroInt(), 0)
	}))
}

func (s *TokenTestSuite) TestBurn() {
	keepertest.MintTo(s.T(), s.host, s.ctx, s.token, s.admin, math.NewInt(100), s.alice)

	s.Require().NoError(s.tx(s.alice, func(ctx context.Context) error {
		return s.token.Burn(ctx, s.alice, math.NewInt(25))
	}))
	s.Require().Equal(math.NewInt(75), s.balance(s.alice))

	err := s.tx(s.alice, func(ctx context.Context) error {
		return s.token.Burn(ctx, s.alice, math.NewInt(76))
	})
	s.Require().ErrorIs(err, types.ErrSpendBalanceInsufficient)

	err = s.tx(s.bob, func(ctx context.Context) error {
		return s.token.Burn(ctx, s.alice, math.NewInt(1))
	})
	s.Require().ErrorIs(err, hosttypes.ErrUnauthorized)
}

func (s *TokenTestSuite) TestSupplyOverflow() {
	keepertest.MintTo(s.T(), s.host, s.ctx, s.token, s.admin, safemath.MaxInt128(), s.alice)
	err := s.tx(s.admin, func(ctx context.Context) error {
		return s.token.Mint(ctx, s.bob, math.OneInt())
	})
	s.Require().ErrorIs(err, types.ErrTotalSupplyIncreaseOverflow)
}

func (s *TokenTestSuite) TestBurnBeyondSupply() {
	keepertest.MintTo(s.T(), s.host, s.ctx, s.token, s.admin, math.NewInt(100), s.bob)
	// a balance written behind the ledger's back is not backed by supply
	err := s.host.Invoke(s.ctx, s.token.Address, "seed", func(ctx context.Context, _ host.Contract) error {
		return s.host.Persistent(ctx).SetInt(types.BalanceKey(s.alice), math.NewInt(500))
	})
	s.Require().NoError(err)

	err = s.tx(s.alice, func(ctx context.Context) error {
		return s.token.Burn(ctx, s.alice, math.NewInt(200))
	})
	s.Require().ErrorIs(err, types.ErrTotalSupplyInsufficient)

	s.Require().Equal(math.NewInt(100), s.supply())
	s.Require().Equal(math.NewInt(500), s.balance(s.alice))

	err = s.tx(s.alice, func(ctx context.Context) error {
		return s.token.Burn(ctx, s.alice, math.NewInt(100))
	})
	s.Require().NoError(err)
	s.Require().True(s.supply().IsZero())
}

func (s *TokenTestSuite) TestEvents() {
	em := sdk.NewEventManager()
	ctx := s.ctx.WithEventManager(em)
	keepertest.MintTo(s.T(), s.host, ctx, s.token, s.admin, math.NewInt(5), s.alice)

	var found bool
	for _, ev := range em.Events() {
		if ev.Type != types.EventTypeMint {
			continue
		}
		found = true
		s.Require().Equal(hosttypes.AttributeKeyModule, ev.Attributes[0].Key)
		s.Require().Equal(types.EventModule, ev.Attributes[0].Value)
	}
	s.Require().True(found)
}
