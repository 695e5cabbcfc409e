package types

import (
	"context"

	"cosmossdk.io/math"

	"github.com/soroswap/core/x/host"
	hosttypes "github.com/soroswap/core/x/host/types"
)

// TokenInterface is the fungible token surface every token contract serves.
// Pairs only rely on Balance and Transfer.
type TokenInterface interface {
	host.Contract

	Allowance(ctx context.Context, from, spender hosttypes.Address) (math.Int, error)
	Approve(ctx context.Context, from, spender hosttypes.Address, amount math.Int, expirationLedger uint32) error
	Balance(ctx context.Context, id hosttypes.Address) (math.Int, error)
	Transfer(ctx context.Context, from, to hosttypes.Address, amount math.Int) error
	TransferFrom(ctx context.Context, spender, from, to hosttypes.Address, amount math.Int) error
	Burn(ctx context.Context, from hosttypes.Address, amount math.Int) error
	BurnFrom(ctx context.Context, spender, from hosttypes.Address, amount math.Int) error
	Decimals(ctx context.Context) (uint32, error)
	Name(ctx context.Context) (string, error)
	Symbol(ctx context.Context) (string, error)
}

// AdminInterface is served by standalone tokens with a minting admin.
type AdminInterface interface {
	TokenInterface

	Initialize(ctx context.Context, admin hosttypes.Address, decimals uint32, name, symbol string) error
	Mint(ctx context.Context, to hosttypes.Address, amount math.Int) error
	SetAdmin(ctx context.Context, newAdmin hosttypes.Address) error
	Admin(ctx context.Context) (hosttypes.Address, error)
}

// Client invokes a deployed token contract.
type Client struct {
	Host    *host.Host
	Address hosttypes.Address
}

// NewClient returns a client for the token at addr.
func NewClient(h *host.Host, addr hosttypes.Address) Client {
	return Client{Host: h, Address: addr}
}

func (c Client) Allowance(ctx context.Context, from, spender hosttypes.Address) (amount math.Int, err error) {
	err = host.Call(ctx, c.Host, c.Address, "allowance", func(ctx context.Context, t TokenInterface) error {
		amount, err = t.Allowance(ctx, from, spender)
		return err
	})
	return amount, err
}

func (c Client) Approve(ctx context.Context, from, spender hosttypes.Address, amount math.Int, expirationLedger uint32) error {
	return host.Call(ctx, c.Host, c.Address, "approve", func(ctx context.Context, t TokenInterface) error {
		return t.Approve(ctx, from, spender, amount, expirationLedger)
	})
}

func (c Client) Balance(ctx context.Context, id hosttypes.Address) (balance math.Int, err error) {
	err = host.Call(ctx, c.Host, c.Address, "balance", func(ctx context.Context, t TokenInterface) error {
		balance, err = t.Balance(ctx, id)
		return err
	})
	return balance, err
}

func (c Client) Transfer(ctx context.Context, from, to hosttypes.Address, amount math.Int) error {
	return host.Call(ctx, c.Host, c.Address, "transfer", func(ctx context.Context, t TokenInterface) error {
		return t.Transfer(ctx, from, to, amount)
	})
}

func (c Client) TransferFrom(ctx context.Context, spender, from, to hosttypes.Address, amount math.Int) error {
	return host.Call(ctx, c.Host, c.Address, "transfer_from", func(ctx context.Context, t TokenInterface) error {
		return t.TransferFrom(ctx, spender, from, to, amount)
	})
}

func (c Client) Burn(ctx context.Context, from hosttypes.Address, amount math.Int) error {
	return host.Call(ctx, c.Host, c.Address, "burn", func(ctx context.Context, t TokenInterface) error {
		return t.Burn(ctx, from, amount)
	})
}

func (c Client) BurnFrom(ctx context.Context, spender, from hosttypes.Address, amount math.Int) error {
	return host.Call(ctx, c.Host, c.Address, "burn_from", func(ctx context.Context, t TokenInterface) error {
		return t.BurnFrom(ctx, spender, from, amount)
	})
}

func (c Client) Decimals(ctx context.Context) (decimals uint32, err error) {
	err = host.Call(ctx, c.Host, c.Address, "decimals", func(ctx context.Context, t TokenInterface) error {
		decimals, err = t.Decimals(ctx)
		return err
	})
	return decimals, err
}

func (c Client) Name(ctx context.Context) (name string, err error) {
	err = host.Call(ctx, c.Host, c.Address, "name", func(ctx context.Context, t TokenInterface) error {
		name, err = t.Name(ctx)
		return err
	})
	return name, err
}

func (c Client) Symbol(ctx context.Context) (symbol string, err error) {
	err = host.Call(ctx, c.Host, c.Address, "symbol", func(ctx context.Context, t TokenInterface) error {
		symbol, err = t.Symbol(ctx)
		return err
	})
	return symbol, err
}

// AdminClient invokes the admin surface of a standalone token.
type AdminClient struct {
	Client
}

// NewAdminClient returns an admin client for the token at addr.
func NewAdminClient(h *host.Host, addr hosttypes.Address) AdminClient {
	return AdminClient{Client: NewClient(h, addr)}
}

func (c AdminClient) Initialize(ctx context.Context, admin hosttypes.Address, decimals uint32, name, symbol string) error {
	return host.Call(ctx, c.Host, c.Address, "initialize", func(ctx context.Context, t AdminInterface) error {
		return t.Initialize(ctx, admin, decimals, name, symbol)
	})
}

func (c AdminClient) Mint(ctx context.Context, to hosttypes.Address, amount math.Int) error {
	return host.Call(ctx, c.Host, c.Address, "mint", func(ctx context.Context, t AdminInterface) error {
		return t.Mint(ctx, to, amount)
	})
}

func (c AdminClient) SetAdmin(ctx context.Context, newAdmin hosttypes.Address) error {
	return host.Call(ctx, c.Host, c.Address, "set_admin", func(ctx context.Context, t AdminInterface) error {
		return t.SetAdmin(ctx, newAdmin)
	})
}

func (c AdminClient) Admin(ctx context.Context) (admin hosttypes.Address, err error) {
	err = host.Call(ctx, c.Host, c.Address, "admin", func(ctx context.Context, t AdminInterface) error {
		admin, err = t.Admin(ctx)
		return err
	})
	return admin, err
}
