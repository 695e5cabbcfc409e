package keeper

import (
	"context"
	"fmt"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/soroswap/core/app"
	factorytypes "github.com/soroswap/core/x/factory/types"
	"github.com/soroswap/core/x/host"
	hosttypes "github.com/soroswap/core/x/host/types"
	pairtypes "github.com/soroswap/core/x/pair/types"
	routertypes "github.com/soroswap/core/x/router/types"
	tokentypes "github.com/soroswap/core/x/token/types"
)

// DeadlineWindow is how far in the future Deadline lies.
const DeadlineWindow = 3600

// SoroswapEnv is a ledger with a factory and a router deployed by Admin.
// Admin is also the admin of every token it deploys and the fee setter.
type SoroswapEnv struct {
	T       testing.TB
	Host    *host.Host
	Ctx     sdk.Context
	Codes   app.Codes
	Admin   hosttypes.Address
	Factory factorytypes.Client
	Router  routertypes.Client

	tokens int
}

// SoroswapKeeper deploys a factory and a router bound to it on a fresh host.
func SoroswapKeeper(t testing.TB, opts ...host.Option) *SoroswapEnv {
	h, ctx := HostKeeper(t, opts...)
	env := &SoroswapEnv{
		T:     t,
		Host:  h,
		Ctx:   ctx,
		Codes: app.RegisterContracts(h),
		Admin: hosttypes.AccountFromSeed("admin"),
	}

	err := env.Tx(env.Admin, func(ctx context.Context) error {
		factory, err := h.DeployContract(ctx, env.Admin, env.Codes.Factory, app.Salt(factorytypes.WasmName))
		if err != nil {
			return err
		}
		router, err := h.DeployContract(ctx, env.Admin, env.Codes.Router, app.Salt(routertypes.WasmName))
		if err != nil {
			return err
		}
		env.Factory = factorytypes.NewClient(h, factory)
		env.Router = routertypes.NewClient(h, router)
		if err := env.Factory.Initialize(ctx, env.Admin, env.Codes.Pair); err != nil {
			return err
		}
		return env.Router.Initialize(ctx, factory)
	})
	require.NoError(t, err)
	return env
}

// Tx runs fn as a transaction signed by signer.
func (e *SoroswapEnv) Tx(signer hosttypes.Address, fn func(ctx context.Context) error) error {
	return e.Host.Transact(e.Ctx, []hosttypes.Address{signer}, fn)
}

// AdvanceLedger closes ledgers ledgers spanning seconds seconds.
func (e *SoroswapEnv) AdvanceLedger(ledgers, seconds int64) {
	e.Ctx = AdvanceLedger(e.Ctx, ledgers, seconds)
}

// Deadline returns a router deadline DeadlineWindow seconds from now.
func (e *SoroswapEnv) Deadline() uint64 {
	return host.LedgerTimestamp(e.Ctx) + DeadlineWindow
}

// Token deploys a fresh token administered by Admin.
func (e *SoroswapEnv) Token() tokentypes.AdminClient {
	e.tokens++
	return DeployToken(e.T, e.Host, e.Ctx, e.Admin, fmt.Sprintf("TK%d", e.tokens))
}

// SortedTokens deploys two tokens and returns them in pair order.
func (e *SoroswapEnv) SortedTokens() (tokentypes.AdminClient, tokentypes.AdminClient) {
	a, b := e.Token(), e.Token()
	if b.Address.Less(a.Address) {
		return b, a
	}
	return a, b
}

// Mint mints amount of every token in tokens to to.
func (e *SoroswapEnv) Mint(to hosttypes.Address, amount math.Int, tokens ...tokentypes.AdminClient) {
	for _, token := range tokens {
		MintTo(e.T, e.Host, e.Ctx, token, e.Admin, amount, to)
	}
}

// Balance returns the balance of id in the token or pair at token.
func (e *SoroswapEnv) Balance(token, id hosttypes.Address) math.Int {
	balance, err := tokentypes.NewClient(e.Host, token).Balance(e.Ctx, id)
	require.NoError(e.T, err)
	return balance
}

// Pair returns a client for the registered pair of a and b.
func (e *SoroswapEnv) Pair(a, b hosttypes.Address) pairtypes.Client {
	addr, err := e.Factory.GetPair(e.Ctx, a, b)
	require.NoError(e.T, err)
	return pairtypes.NewClient(e.Host, addr)
}

// CreatePair registers the pair of a and b with the factory.
func (e *SoroswapEnv) CreatePair(a, b hosttypes.Address) pairtypes.Client {
	var addr hosttypes.Address
	require.NoError(e.T, e.Tx(e.Admin, func(ctx context.Context) error {
		var err error
		addr, err = e.Factory.CreatePair(ctx, a, b)
		return err
	}))
	return pairtypes.NewClient(e.Host, addr)
}

// AddLiquidity deposits exactly amountA and amountB from user through the
// router, minting both first, and returns the shares minted.
func (e *SoroswapEnv) AddLiquidity(user hosttypes.Address, a, b tokentypes.AdminClient, amountA, amountB math.Int) math.Int {
	e.Mint(user, amountA, a)
	e.Mint(user, amountB, b)

	var liquidity math.Int
	require.NoError(e.T, e.Tx(user, func(ctx context.Context) error {
		var err error
		_, _, liquidity, err = e.Router.AddLiquidity(ctx, a.Address, b.Address,
			amountA, amountB, math.ZeroInt(), math.ZeroInt(), user, e.Deadline())
		return err
	}))
	return liquidity
}
