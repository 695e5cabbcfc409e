package keeper

import (
	"context"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/soroswap/core/x/host"
	hosttypes "github.com/soroswap/core/x/host/types"
	"github.com/soroswap/core/x/pair/types"
	tokenkeeper "github.com/soroswap/core/x/token/keeper"
	tokentypes "github.com/soroswap/core/x/token/types"
)

// Keeper is the pair contract: a constant product pool over two tokens whose
// LP shares are a token ledger kept in the pair's own storage.
type Keeper struct {
	host    *host.Host
	shares  tokenkeeper.Ledger
	metrics *PairMetrics
}

var _ types.PairInterface = Keeper{}

// NewKeeper creates the pair contract code.
func NewKeeper(h *host.Host) Keeper {
	return Keeper{
		host:    h,
		shares:  tokenkeeper.NewLedger(h, types.EventModule),
		metrics: NewPairMetrics(),
	}
}

// WasmName implements host.Contract.
func (k Keeper) WasmName() string { return types.WasmName }

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// pairState is the committed state of an initialized pair.
type pairState struct {
	self     hosttypes.Address
	factory  hosttypes.Address
	token0   hosttypes.Address
	token1   hosttypes.Address
	reserve0 math.Int
	reserve1 math.Int
}

// ready fails on an uninitialized pair and extends the instance otherwise.
func (k Keeper) ready(ctx context.Context) error {
	found, err := k.host.Instance(ctx).Has(types.FactoryKey)
	if err != nil {
		return err
	}
	if !found {
		return types.ErrNotInitialized
	}
	return k.host.ExtendInstanceTTL(ctx, hosttypes.InstanceLifetimeThreshold, hosttypes.InstanceBumpAmount)
}

func (k Keeper) address(ctx context.Context, key []byte) (hosttypes.Address, error) {
	addr, found, err := k.host.Instance(ctx).GetAddress(key)
	if err != nil {
		return hosttypes.Address{}, err
	}
	if !found {
		return hosttypes.Address{}, types.ErrNotInitialized
	}
	return addr, nil
}

func (k Keeper) load(ctx context.Context) (pairState, error) {
	if err := k.ready(ctx); err != nil {
		return pairState{}, err
	}
	st := k.host.Instance(ctx)
	s := pairState{self: host.MustCurrentContract(ctx)}
	var err error
	if s.factory, err = k.address(ctx, types.FactoryKey); err != nil {
		return pairState{}, err
	}
	if s.token0, err = k.address(ctx, types.Token0Key); err != nil {
		return pairState{}, err
	}
	if s.token1, err = k.address(ctx, types.Token1Key); err != nil {
		return pairState{}, err
	}
	if s.reserve0, _, err = st.GetInt(types.Reserve0Key); err != nil {
		return pairState{}, err
	}
	if s.reserve1, _, err = st.GetInt(types.Reserve1Key); err != nil {
		return pairState{}, err
	}
	return s, nil
}

// balances reads what the pair holds of each of its tokens.
func (k Keeper) balances(ctx context.Context, s pairState) (math.Int, math.Int, error) {
	b0, err := tokentypes.NewClient(k.host, s.token0).Balance(ctx, s.self)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	b1, err := tokentypes.NewClient(k.host, s.token1).Balance(ctx, s.self)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	return b0, b1, nil
}

func (k Keeper) send(ctx context.Context, s pairState, token hosttypes.Address, to hosttypes.Address, amount math.Int) error {
	if !amount.IsPositive() {
		return nil
	}
	return tokentypes.NewClient(k.host, token).Transfer(ctx, s.self, to, amount)
}

// InitializePair binds a freshly deployed pair to its factory and its two
// ordered tokens.
func (k Keeper) InitializePair(ctx context.Context, factory, token0, token1 hosttypes.Address) error {
	st := k.host.Instance(ctx)
	found, err := st.Has(types.FactoryKey)
	if err != nil {
		return err
	}
	if found {
		return types.ErrInitializeAlreadyInitialized
	}
	if !token0.Less(token1) {
		return types.ErrInitializeTokenOrderInvalid.Wrapf("%s >= %s", token0, token1)
	}

	if err := k.shares.SetMetadata(ctx, types.ShareDecimals, types.ShareName, types.ShareSymbol); err != nil {
		return err
	}
	if err := st.SetAddress(types.FactoryKey, factory); err != nil {
		return err
	}
	if err := st.SetAddress(types.Token0Key, token0); err != nil {
		return err
	}
	if err := st.SetAddress(types.Token1Key, token1); err != nil {
		return err
	}
	for _, key := range [][]byte{types.Reserve0Key, types.Reserve1Key, types.KLastKey} {
		if err := st.SetInt(key, math.ZeroInt()); err != nil {
			return err
		}
	}
	for _, key := range [][]byte{types.Price0CumulativeLastKey, types.Price1CumulativeLastKey} {
		if err := st.SetUint(key, math.ZeroUint()); err != nil {
			return err
		}
	}
	if err := st.SetUint64(types.BlockTimestampLastKey, 0); err != nil {
		return err
	}

	k.Logger(ctx).Debug("pair initialized",
		"pair", host.MustCurrentContract(ctx).String(),
		"token0", token0.String(),
		"token1", token1.String(),
	)
	return k.host.ExtendInstanceTTL(ctx, hosttypes.InstanceLifetimeThreshold, hosttypes.InstanceBumpAmount)
}

func (k Keeper) Token0(ctx context.Context) (hosttypes.Address, error) {
	if err := k.ready(ctx); err != nil {
		return hosttypes.Address{}, err
	}
	return k.address(ctx, types.Token0Key)
}

func (k Keeper) Token1(ctx context.Context) (hosttypes.Address, error) {
	if err := k.ready(ctx); err != nil {
		return hosttypes.Address{}, err
	}
	return k.address(ctx, types.Token1Key)
}

func (k Keeper) Factory(ctx context.Context) (hosttypes.Address, error) {
	if err := k.ready(ctx); err != nil {
		return hosttypes.Address{}, err
	}
	return k.address(ctx, types.FactoryKey)
}

// GetReserves returns the committed reserves and the ledger timestamp of
// their last update.
func (k Keeper) GetReserves(ctx context.Context) (math.Int, math.Int, uint64, error) {
	s, err := k.load(ctx)
	if err != nil {
		return math.Int{}, math.Int{}, 0, err
	}
	ts, _, err := k.host.Instance(ctx).GetUint64(types.BlockTimestampLastKey)
	if err != nil {
		return math.Int{}, math.Int{}, 0, err
	}
	return s.reserve0, s.reserve1, ts, nil
}

func (k Keeper) KLast(ctx context.Context) (math.Int, error) {
	if err := k.ready(ctx); err != nil {
		return math.Int{}, err
	}
	kLast, _, err := k.host.Instance(ctx).GetInt(types.KLastKey)
	return kLast, err
}

func (k Keeper) Price0CumulativeLast(ctx context.Context) (math.Uint, error) {
	return k.cumulativePrice(ctx, types.Price0CumulativeLastKey)
}

func (k Keeper) Price1CumulativeLast(ctx context.Context) (math.Uint, error) {
	return k.cumulativePrice(ctx, types.Price1CumulativeLastKey)
}

func (k Keeper) cumulativePrice(ctx context.Context, key []byte) (math.Uint, error) {
	if err := k.ready(ctx); err != nil {
		return math.Uint{}, err
	}
	price, _, err := k.host.Instance(ctx).GetUint(key)
	return price, err
}

// TotalShares returns the outstanding LP shares, including the locked
// minimum liquidity.
func (k Keeper) TotalShares(ctx context.Context) (math.Int, error) {
	if err := k.ready(ctx); err != nil {
		return math.Int{}, err
	}
	return k.shares.TotalSupply(ctx)
}
