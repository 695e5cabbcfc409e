package keeper

import (
	"context"
	"fmt"

	"github.com/soroswap/core/x/factory/types"
	"github.com/soroswap/core/x/host"
	hosttypes "github.com/soroswap/core/x/host/types"
	"github.com/soroswap/core/x/library"
	pairtypes "github.com/soroswap/core/x/pair/types"
)

// Persistent entries are extended on every read and write.

func (k Keeper) extendPersistent(ctx context.Context, key []byte) error {
	return k.host.Persistent(ctx).ExtendTTL(key, hosttypes.PersistentLifetimeThreshold, hosttypes.PersistentBumpAmount)
}

func (k Keeper) putPersistentHash(ctx context.Context, key []byte, hash [32]byte) error {
	if err := k.host.Persistent(ctx).SetHash(key, hash); err != nil {
		return err
	}
	return k.extendPersistent(ctx, key)
}

func (k Keeper) putPersistentAddress(ctx context.Context, key []byte, addr hosttypes.Address) error {
	if err := k.host.Persistent(ctx).SetAddress(key, addr); err != nil {
		return err
	}
	return k.extendPersistent(ctx, key)
}

func (k Keeper) persistentAddress(ctx context.Context, key []byte) (hosttypes.Address, bool, error) {
	addr, found, err := k.host.Persistent(ctx).GetAddress(key)
	if err != nil || !found {
		return hosttypes.Address{}, false, err
	}
	return addr, true, k.extendPersistent(ctx, key)
}

func (k Keeper) pairWasmHash(ctx context.Context) ([32]byte, error) {
	hash, found, err := k.host.Persistent(ctx).GetHash(types.PairWasmHashKey)
	if err != nil {
		return [32]byte{}, err
	}
	if !found {
		return [32]byte{}, types.ErrNotInitialized
	}
	return hash, k.extendPersistent(ctx, types.PairWasmHashKey)
}

func sortTokens(a, b hosttypes.Address) (hosttypes.Address, hosttypes.Address, error) {
	token0, token1, err := library.SortTokens(a, b)
	if err != nil {
		return hosttypes.Address{}, hosttypes.Address{}, types.ErrCreatePairIdenticalTokens.Wrapf("%s", a)
	}
	return token0, token1, nil
}

// GetPair returns the pair of tokenA and tokenB in either order.
func (k Keeper) GetPair(ctx context.Context, tokenA, tokenB hosttypes.Address) (hosttypes.Address, error) {
	if err := k.ready(ctx); err != nil {
		return hosttypes.Address{}, err
	}
	token0, token1, err := sortTokens(tokenA, tokenB)
	if err != nil {
		return hosttypes.Address{}, err
	}
	pair, found, err := k.persistentAddress(ctx, types.PairAddressesByTokensKey(token0, token1))
	if err != nil {
		return hosttypes.Address{}, err
	}
	if !found {
		return hosttypes.Address{}, types.ErrPairDoesNotExist.Wrapf("%s/%s", token0, token1)
	}
	return pair, nil
}

// PairExists reports whether the pair of tokenA and tokenB was created.
func (k Keeper) PairExists(ctx context.Context, tokenA, tokenB hosttypes.Address) (bool, error) {
	if err := k.ready(ctx); err != nil {
		return false, err
	}
	token0, token1, err := sortTokens(tokenA, tokenB)
	if err != nil {
		return false, err
	}
	_, found, err := k.persistentAddress(ctx, types.PairAddressesByTokensKey(token0, token1))
	return found, err
}

// AllPairs returns the n-th created pair, counting from zero.
func (k Keeper) AllPairs(ctx context.Context, n uint32) (hosttypes.Address, error) {
	if err := k.ready(ctx); err != nil {
		return hosttypes.Address{}, err
	}
	pair, found, err := k.persistentAddress(ctx, types.PairAddressesNIndexedKey(n))
	if err != nil {
		return hosttypes.Address{}, err
	}
	if !found {
		return hosttypes.Address{}, types.ErrIndexDoesNotExist.Wrapf("%d", n)
	}
	return pair, nil
}

// CreatePair deploys and initializes the pair of tokenA and tokenB at its
// deterministic address and registers it.
func (k Keeper) CreatePair(ctx context.Context, tokenA, tokenB hosttypes.Address) (hosttypes.Address, error) {
	if err := k.ready(ctx); err != nil {
		return hosttypes.Address{}, err
	}
	token0, token1, err := sortTokens(tokenA, tokenB)
	if err != nil {
		return hosttypes.Address{}, err
	}
	byTokens := types.PairAddressesByTokensKey(token0, token1)
	if _, found, err := k.persistentAddress(ctx, byTokens); err != nil {
		return hosttypes.Address{}, err
	} else if found {
		return hosttypes.Address{}, types.ErrCreatePairAlreadyExists.Wrapf("%s/%s", token0, token1)
	}

	st := k.host.Instance(ctx)
	total, _, err := st.GetUint32(types.TotalPairsKey)
	if err != nil {
		return hosttypes.Address{}, err
	}
	if total == ^uint32(0) {
		return hosttypes.Address{}, types.ErrTotalPairsOverflow
	}

	hash, err := k.pairWasmHash(ctx)
	if err != nil {
		return hosttypes.Address{}, err
	}
	self := host.MustCurrentContract(ctx)
	pair, err := k.host.DeployContract(ctx, self, hash, library.PairSalt(token0, token1))
	if err != nil {
		return hosttypes.Address{}, err
	}
	if err := pairtypes.NewClient(k.host, pair).InitializePair(ctx, self, token0, token1); err != nil {
		return hosttypes.Address{}, err
	}

	if err := k.putPersistentAddress(ctx, byTokens, pair); err != nil {
		return hosttypes.Address{}, err
	}
	if err := k.putPersistentAddress(ctx, types.PairAddressesNIndexedKey(total), pair); err != nil {
		return hosttypes.Address{}, err
	}
	if err := st.SetUint32(types.TotalPairsKey, total+1); err != nil {
		return hosttypes.Address{}, err
	}

	k.host.PublishEvent(ctx, types.EventModule, types.EventTypeNewPair,
		host.Attr(types.AttributeKeyToken0, token0.String()),
		host.Attr(types.AttributeKeyToken1, token1.String()),
		host.Attr(types.AttributeKeyPair, pair.String()),
		host.Attr(types.AttributeKeyNewPairsLength, fmt.Sprintf("%d", total+1)),
	)
	k.Logger(ctx).Info("pair created",
		"pair", pair.String(),
		"token0", token0.String(),
		"token1", token1.String(),
		"pairs", total+1,
	)
	return pair, nil
}
