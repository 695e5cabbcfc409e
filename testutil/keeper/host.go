package keeper

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/soroswap/core/x/host"
	"github.com/soroswap/core/x/host/types"
)

// GenesisTime is the close time of the first ledger in test environments.
var GenesisTime = time.Unix(1_700_000_000, 0).UTC()

// HostKeeper creates a ledger host over an in-memory store. The returned
// context sits at ledger sequence 1, closed at GenesisTime.
func HostKeeper(t testing.TB, opts ...host.Option) (*host.Host, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	h := host.NewHost(storeKey, opts...)
	ctx := sdk.NewContext(stateStore, cmtproto.Header{Height: 1, Time: GenesisTime}, false, log.NewNopLogger())
	return h, ctx
}

// AdvanceLedger moves ctx forward by ledgers sequence numbers and seconds.
func AdvanceLedger(ctx sdk.Context, ledgers int64, seconds int64) sdk.Context {
	return ctx.
		WithBlockHeight(ctx.BlockHeight() + ledgers).
		WithBlockTime(ctx.BlockTime().Add(time.Duration(seconds) * time.Second))
}
