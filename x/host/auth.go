package host

import (
	"context"

	"github.com/soroswap/core/x/host/types"
)

// Authorization records one successful RequireAuth check.
type Authorization struct {
	Address  types.Address
	Contract types.Address
	Function string
}

// RequireAuth checks that addr authorized the current invocation. A contract
// is authorized for calls it makes directly; any other address must have
// signed the transaction, which authorizes it for the whole call tree.
func (h *Host) RequireAuth(ctx context.Context, addr types.Address) error {
	if addr.Empty() {
		return types.ErrUnauthorized.Wrap("empty address")
	}

	f := frameFrom(ctx)
	tx := txFrom(ctx)

	authorized := false
	switch {
	case f != nil && addr.IsContract() && f.invoker == addr:
		authorized = true
	case tx != nil && tx.signers[addr]:
		authorized = true
	}
	if !authorized {
		return types.ErrUnauthorized.Wrapf("%s did not authorize the call", addr)
	}

	if tx != nil {
		auth := Authorization{Address: addr}
		if f != nil {
			auth.Contract = f.contract
			auth.Function = f.fn
		}
		tx.auths = append(tx.auths, auth)
	}
	return nil
}
