package keeper

import (
	"context"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/soroswap/core/x/host"
	hosttypes "github.com/soroswap/core/x/host/types"
	"github.com/soroswap/core/x/token/types"
)

// WasmName names the standalone token code.
const WasmName = "soroswap_token"

// Keeper is the standalone token contract: a Ledger plus an admin allowed
// to mint.
type Keeper struct {
	Ledger
	host *host.Host
}

var _ types.AdminInterface = Keeper{}

// NewKeeper creates the token contract code.
func NewKeeper(h *host.Host) Keeper {
	return Keeper{Ledger: NewLedger(h, types.EventModule), host: h}
}

// WasmName implements host.Contract.
func (k Keeper) WasmName() string { return WasmName }

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// Initialize sets the admin and the metadata of a fresh token.
func (k Keeper) Initialize(ctx context.Context, admin hosttypes.Address, decimals uint32, name, symbol string) error {
	st := k.host.Instance(ctx)
	found, err := st.Has(types.AdminKey)
	if err != nil {
		return err
	}
	if found {
		return types.ErrInitializeAlreadyInitialized
	}
	if err := st.SetAddress(types.AdminKey, admin); err != nil {
		return err
	}
	if err := k.SetMetadata(ctx, decimals, name, symbol); err != nil {
		return err
	}
	k.Logger(ctx).Debug("token initialized", "token", host.MustCurrentContract(ctx).String(), "symbol", symbol)
	return k.bumpInstance(ctx)
}

// Admin returns the address allowed to mint.
func (k Keeper) Admin(ctx context.Context) (hosttypes.Address, error) {
	admin, found, err := k.host.Instance(ctx).GetAddress(types.AdminKey)
	if err != nil {
		return hosttypes.Address{}, err
	}
	if !found {
		return hosttypes.Address{}, types.ErrNotInitialized
	}
	return admin, nil
}

// Mint credits amount to to. The admin must authorize.
func (k Keeper) Mint(ctx context.Context, to hosttypes.Address, amount math.Int) error {
	admin, err := k.Admin(ctx)
	if err != nil {
		return err
	}
	if err := k.host.RequireAuth(ctx, admin); err != nil {
		return err
	}
	if err := k.bumpInstance(ctx); err != nil {
		return err
	}
	return k.Ledger.Mint(ctx, to, amount)
}

// SetAdmin hands minting rights to newAdmin. The current admin must authorize.
func (k Keeper) SetAdmin(ctx context.Context, newAdmin hosttypes.Address) error {
	admin, err := k.Admin(ctx)
	if err != nil {
		return err
	}
	if err := k.host.RequireAuth(ctx, admin); err != nil {
		return err
	}
	if err := k.host.Instance(ctx).SetAddress(types.AdminKey, newAdmin); err != nil {
		return err
	}
	k.host.PublishEvent(ctx, types.EventModule, types.EventTypeSetAdmin,
		host.Attr(types.AttributeKeyAdmin, admin.String()),
		host.Attr(types.AttributeKeyNewAdmin, newAdmin.String()),
	)
	return k.bumpInstance(ctx)
}
