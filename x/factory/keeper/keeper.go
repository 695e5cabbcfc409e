package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/soroswap/core/x/factory/types"
	"github.com/soroswap/core/x/host"
	hosttypes "github.com/soroswap/core/x/host/types"
)

// Keeper is the factory contract: the registry that deploys one pair per
// unordered token couple and holds the protocol fee settings.
type Keeper struct {
	host *host.Host
}

var _ types.FactoryInterface = Keeper{}

// NewKeeper creates the factory contract code.
func NewKeeper(h *host.Host) Keeper {
	return Keeper{host: h}
}

// WasmName implements host.Contract.
func (k Keeper) WasmName() string { return types.WasmName }

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

func (k Keeper) bumpInstance(ctx context.Context) error {
	return k.host.ExtendInstanceTTL(ctx, hosttypes.InstanceLifetimeThreshold, hosttypes.InstanceBumpAmount)
}

// ready fails before Initialize and extends the instance otherwise.
func (k Keeper) ready(ctx context.Context) error {
	found, err := k.host.Instance(ctx).Has(types.FeeToSetterKey)
	if err != nil {
		return err
	}
	if !found {
		return types.ErrNotInitialized
	}
	return k.bumpInstance(ctx)
}

func (k Keeper) instanceAddress(ctx context.Context, key []byte) (hosttypes.Address, error) {
	addr, found, err := k.host.Instance(ctx).GetAddress(key)
	if err != nil {
		return hosttypes.Address{}, err
	}
	if !found {
		return hosttypes.Address{}, types.ErrNotInitialized
	}
	return addr, nil
}

// Initialize records the fee setter and the code pairs are deployed from.
// The setter also receives protocol fees until told otherwise.
func (k Keeper) Initialize(ctx context.Context, setter hosttypes.Address, pairWasmHash [32]byte) error {
	st := k.host.Instance(ctx)
	found, err := st.Has(types.FeeToSetterKey)
	if err != nil {
		return err
	}
	if found {
		return types.ErrInitializeAlreadyInitialized
	}

	if err := st.SetAddress(types.FeeToSetterKey, setter); err != nil {
		return err
	}
	if err := st.SetAddress(types.FeeToKey, setter); err != nil {
		return err
	}
	if err := st.SetBool(types.FeesEnabledKey, false); err != nil {
		return err
	}
	if err := st.SetUint32(types.TotalPairsKey, 0); err != nil {
		return err
	}
	if err := k.putPersistentHash(ctx, types.PairWasmHashKey, pairWasmHash); err != nil {
		return err
	}

	k.host.PublishEvent(ctx, types.EventModule, types.EventTypeInit,
		host.Attr(types.AttributeKeySetter, setter.String()),
	)
	k.Logger(ctx).Info("factory initialized",
		"factory", host.MustCurrentContract(ctx).String(),
		"setter", setter.String(),
	)
	return k.bumpInstance(ctx)
}

func (k Keeper) FeeTo(ctx context.Context) (hosttypes.Address, error) {
	if err := k.ready(ctx); err != nil {
		return hosttypes.Address{}, err
	}
	return k.instanceAddress(ctx, types.FeeToKey)
}

func (k Keeper) FeeToSetter(ctx context.Context) (hosttypes.Address, error) {
	if err := k.ready(ctx); err != nil {
		return hosttypes.Address{}, err
	}
	return k.instanceAddress(ctx, types.FeeToSetterKey)
}

func (k Keeper) FeesEnabled(ctx context.Context) (bool, error) {
	if err := k.ready(ctx); err != nil {
		return false, err
	}
	enabled, _, err := k.host.Instance(ctx).GetBool(types.FeesEnabledKey)
	return enabled, err
}

func (k Keeper) AllPairsLength(ctx context.Context) (uint32, error) {
	if err := k.ready(ctx); err != nil {
		return 0, err
	}
	n, _, err := k.host.Instance(ctx).GetUint32(types.TotalPairsKey)
	return n, err
}

// requireSetter checks that the current fee setter authorized the call and
// returns it.
func (k Keeper) requireSetter(ctx context.Context) (hosttypes.Address, error) {
	if err := k.ready(ctx); err != nil {
		return hosttypes.Address{}, err
	}
	setter, err := k.instanceAddress(ctx, types.FeeToSetterKey)
	if err != nil {
		return hosttypes.Address{}, err
	}
	if err := k.host.RequireAuth(ctx, setter); err != nil {
		return hosttypes.Address{}, err
	}
	return setter, nil
}

// SetFeeTo changes the protocol fee recipient.
func (k Keeper) SetFeeTo(ctx context.Context, to hosttypes.Address) error {
	setter, err := k.requireSetter(ctx)
	if err != nil {
		return err
	}
	old, err := k.instanceAddress(ctx, types.FeeToKey)
	if err != nil {
		return err
	}
	if err := k.host.Instance(ctx).SetAddress(types.FeeToKey, to); err != nil {
		return err
	}
	k.host.PublishEvent(ctx, types.EventModule, types.EventTypeFeeTo,
		host.Attr(types.AttributeKeySetter, setter.String()),
		host.Attr(types.AttributeKeyOldFeeTo, old.String()),
		host.Attr(types.AttributeKeyNewFeeTo, to.String()),
	)
	return nil
}

// SetFeeToSetter hands the fee settings over to newSetter.
func (k Keeper) SetFeeToSetter(ctx context.Context, newSetter hosttypes.Address) error {
	old, err := k.requireSetter(ctx)
	if err != nil {
		return err
	}
	if err := k.host.Instance(ctx).SetAddress(types.FeeToSetterKey, newSetter); err != nil {
		return err
	}
	k.host.PublishEvent(ctx, types.EventModule, types.EventTypeSetter,
		host.Attr(types.AttributeKeyOldSetter, old.String()),
		host.Attr(types.AttributeKeyNewSetter, newSetter.String()),
	)
	k.Logger(ctx).Info("fee setter changed", "old", old.String(), "new", newSetter.String())
	return nil
}

// SetFeesEnabled switches the protocol fee on or off for every pair.
func (k Keeper) SetFeesEnabled(ctx context.Context, isEnabled bool) error {
	if _, err := k.requireSetter(ctx); err != nil {
		return err
	}
	if err := k.host.Instance(ctx).SetBool(types.FeesEnabledKey, isEnabled); err != nil {
		return err
	}
	k.host.PublishEvent(ctx, types.EventModule, types.EventTypeFeesEnabled,
		host.Attr(types.AttributeKeyFeesEnabled, fmt.Sprintf("%t", isEnabled)),
	)
	return nil
}
