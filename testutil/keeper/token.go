package keeper

import (
	"context"
	"testing"

	"cosmossdk.io/math"
	"github.com/cometbft/cometbft/crypto/tmhash"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/soroswap/core/x/host"
	hosttypes "github.com/soroswap/core/x/host/types"
	tokenkeeper "github.com/soroswap/core/x/token/keeper"
	tokentypes "github.com/soroswap/core/x/token/types"
)

// TokenDecimals is the precision of test tokens.
const TokenDecimals = 7

// DeployToken deploys and initializes a standalone token administered by admin.
func DeployToken(t testing.TB, h *host.Host, ctx sdk.Context, admin hosttypes.Address, symbol string) tokentypes.AdminClient {
	hash := h.UploadContractWasm(tokenkeeper.NewKeeper(h))

	var salt [32]byte
	copy(salt[:], tmhash.Sum([]byte(symbol)))

	var client tokentypes.AdminClient
	err := h.Transact(ctx, []hosttypes.Address{admin}, func(ctx context.Context) error {
		addr, err := h.DeployContract(ctx, admin, hash, salt)
		if err != nil {
			return err
		}
		client = tokentypes.NewAdminClient(h, addr)
		return client.Initialize(ctx, admin, TokenDecimals, symbol+" token", symbol)
	})
	require.NoError(t, err)
	return client
}

// MintTo mints amount of token to each of to on behalf of admin.
func MintTo(t testing.TB, h *host.Host, ctx sdk.Context, token tokentypes.AdminClient, admin hosttypes.Address, amount math.Int, to ...hosttypes.Address) {
	err := h.Transact(ctx, []hosttypes.Address{admin}, func(ctx context.Context) error {
		for _, addr := range to {
			if err := token.Mint(ctx, addr, amount); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
}
