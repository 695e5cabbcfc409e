package host

import (
	"context"
	"encoding/binary"
	"encoding/hex"

	"github.com/soroswap/core/x/host/types"
)

// instance is the record of a deployed contract: the code it runs and the
// last ledger its instance storage is live for.
type instance struct {
	wasmHash  [32]byte
	liveUntil uint32
}

func (i instance) marshal() []byte {
	bz := make([]byte, 36)
	copy(bz[:32], i.wasmHash[:])
	binary.BigEndian.PutUint32(bz[32:], i.liveUntil)
	return bz
}

func unmarshalInstance(bz []byte) (instance, error) {
	if len(bz) != 36 {
		return instance{}, types.ErrStorageCorrupted.Wrapf("instance record has %d bytes", len(bz))
	}
	var i instance
	copy(i.wasmHash[:], bz[:32])
	i.liveUntil = binary.BigEndian.Uint32(bz[32:])
	return i, nil
}

func (h *Host) getInstance(ctx context.Context, contract types.Address) (instance, bool, error) {
	bz := h.kvStore(ctx).Get(types.ContractInstanceKey(contract))
	if bz == nil {
		return instance{}, false, nil
	}
	i, err := unmarshalInstance(bz)
	if err != nil {
		return instance{}, false, err
	}
	return i, true, nil
}

func (h *Host) setInstance(ctx context.Context, contract types.Address, i instance) {
	h.kvStore(ctx).Set(types.ContractInstanceKey(contract), i.marshal())
}

// DeployContract creates an instance of the uploaded code wasmHash at the
// address derived from deployer and salt. A contract may deploy on its own
// behalf; any other deployer must authorize the deployment.
func (h *Host) DeployContract(ctx context.Context, deployer types.Address, wasmHash [32]byte, salt [32]byte) (types.Address, error) {
	if deployer.Empty() {
		return types.Address{}, types.ErrInvalidAddress.Wrap("empty deployer")
	}
	if cur, err := CurrentContract(ctx); err != nil || cur != deployer {
		if err := h.RequireAuth(ctx, deployer); err != nil {
			return types.Address{}, err
		}
	}
	if _, ok := h.code(wasmHash); !ok {
		return types.Address{}, types.ErrCodeNotFound.Wrapf("wasm hash %x", wasmHash)
	}

	addr := h.ContractAddress(deployer, salt)
	if _, found, err := h.getInstance(ctx, addr); err != nil {
		return types.Address{}, err
	} else if found {
		return types.Address{}, types.ErrContractExists.Wrapf("%s", addr)
	}

	h.setInstance(ctx, addr, instance{
		wasmHash:  wasmHash,
		liveUntil: LedgerSequence(ctx) + h.policy.MinPersistentTTL - 1,
	})

	h.PublishEvent(ctx, types.ModuleName, types.EventTypeContractDeployed,
		Attr(types.AttributeKeyDeployer, deployer.String()),
		Attr(types.AttributeKeyWasmHash, hex.EncodeToString(wasmHash[:])),
		Attr(types.AttributeKeyDeployed, addr.String()),
	)
	h.Logger(ctx).Info("contract deployed", "contract", addr.String(), "deployer", deployer.String())
	return addr, nil
}

// ContractExists reports whether an instance lives at addr, archived or not.
func (h *Host) ContractExists(ctx context.Context, addr types.Address) (bool, error) {
	_, found, err := h.getInstance(ctx, addr)
	return found, err
}

// ContractWasmHash returns the code hash of the instance at addr.
func (h *Host) ContractWasmHash(ctx context.Context, addr types.Address) ([32]byte, error) {
	i, found, err := h.getInstance(ctx, addr)
	if err != nil {
		return [32]byte{}, err
	}
	if !found {
		return [32]byte{}, types.ErrContractNotFound.Wrapf("%s", addr)
	}
	return i.wasmHash, nil
}

// ExtendInstanceTTL extends the instance of the executing contract so it
// stays live for extendTo ledgers when fewer than threshold ledgers remain.
func (h *Host) ExtendInstanceTTL(ctx context.Context, threshold, extendTo uint32) error {
	if err := validateExtension(h.policy, threshold, extendTo); err != nil {
		return err
	}
	contract, err := CurrentContract(ctx)
	if err != nil {
		return err
	}
	i, found, err := h.getInstance(ctx, contract)
	if err != nil {
		return err
	}
	if !found {
		return types.ErrContractNotFound.Wrapf("%s", contract)
	}
	seq := LedgerSequence(ctx)
	if i.liveUntil-seq < threshold {
		i.liveUntil = seq + extendTo
		h.setInstance(ctx, contract, i)
	}
	return nil
}

// InstanceTTL returns the number of ledgers the instance at addr stays live for.
func (h *Host) InstanceTTL(ctx context.Context, addr types.Address) (uint32, error) {
	i, found, err := h.getInstance(ctx, addr)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, types.ErrContractNotFound.Wrapf("%s", addr)
	}
	seq := LedgerSequence(ctx)
	if i.liveUntil < seq {
		return 0, types.ErrEntryArchived.Wrapf("instance %s expired at ledger %d", addr, i.liveUntil)
	}
	return i.liveUntil - seq, nil
}
