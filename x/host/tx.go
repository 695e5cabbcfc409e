package host

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/soroswap/core/x/host/types"
)

type txKey struct{}

// txState tracks the signers and the authorizations consumed by one
// transaction.
type txState struct {
	source  types.Address
	signers map[types.Address]bool
	auths   []Authorization
}

func txFrom(ctx context.Context) *txState {
	tx, _ := sdk.UnwrapSDKContext(ctx).Value(txKey{}).(*txState)
	return tx
}

// Transact runs fn as a single transaction signed by signers. The first
// signer is the transaction source. State written by fn and the events it
// emits reach ctx only when fn returns nil; a panic inside fn is converted
// into an error and discards the transaction like any other failure.
func (h *Host) Transact(ctx sdk.Context, signers []types.Address, fn func(ctx context.Context) error) (err error) {
	tx := &txState{signers: make(map[types.Address]bool, len(signers))}
	for i, s := range signers {
		if i == 0 {
			tx.source = s
		}
		tx.signers[s] = true
	}

	cms := ctx.MultiStore().CacheMultiStore()
	em := sdk.NewEventManager()
	txCtx := ctx.WithMultiStore(cms).WithEventManager(em).WithValue(txKey{}, tx)

	defer func() {
		if r := recover(); r != nil {
			err = types.ErrContractPanic.Wrap(fmt.Sprint(r))
		}
		if err != nil {
			h.Logger(ctx).Debug("transaction reverted", "source", tx.source.String(), "error", err)
			h.setLastAuths(nil)
		}
	}()

	if err := fn(txCtx); err != nil {
		return err
	}

	cms.Write()
	ctx.EventManager().EmitEvents(em.Events())
	h.setLastAuths(tx.auths)
	return nil
}

func (h *Host) setLastAuths(auths []Authorization) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lastAuths = auths
}

// Authorizations returns the authorizations consumed by the last successful
// transaction, in the order they were required.
func (h *Host) Authorizations() []Authorization {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]Authorization(nil), h.lastAuths...)
}
