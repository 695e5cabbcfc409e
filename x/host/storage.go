package host

import (
	"context"
	"encoding/binary"

	"cosmossdk.io/store/prefix"
	storetypes "cosmossdk.io/store/types"

	"github.com/soroswap/core/x/host/types"
)

// Storage is one storage domain of the executing contract.
//
// Persistent and temporary entries carry their own live-until ledger in a
// four byte header. Instance entries share the lifetime of the contract
// instance, which Invoke checks before any code runs.
type Storage struct {
	kv         storetypes.KVStore
	durability types.Durability
	seq        uint32
	policy     types.TTLPolicy
}

func (h *Host) storage(ctx context.Context, d types.Durability) Storage {
	contract := MustCurrentContract(ctx)
	return Storage{
		kv:         prefix.NewStore(h.kvStore(ctx), types.ContractDataKey(contract, d)),
		durability: d,
		seq:        LedgerSequence(ctx),
		policy:     h.policy,
	}
}

// Instance returns the instance storage of the executing contract.
func (h *Host) Instance(ctx context.Context) Storage {
	return h.storage(ctx, types.Instance)
}

// Persistent returns the persistent storage of the executing contract.
func (h *Host) Persistent(ctx context.Context) Storage {
	return h.storage(ctx, types.Persistent)
}

// Temporary returns the temporary storage of the executing contract.
func (h *Host) Temporary(ctx context.Context) Storage {
	return h.storage(ctx, types.Temporary)
}

func (s Storage) hasTTL() bool { return s.durability != types.Instance }

func (s Storage) minTTL() uint32 {
	if s.durability == types.Temporary {
		return s.policy.MinTemporaryTTL
	}
	return s.policy.MinPersistentTTL
}

// read returns the stored value and its live-until ledger.
func (s Storage) read(key []byte) (value []byte, liveUntil uint32, found bool, err error) {
	if len(key) == 0 {
		return nil, 0, false, types.ErrInvalidContractKey
	}
	bz := s.kv.Get(key)
	if bz == nil {
		return nil, 0, false, nil
	}
	if !s.hasTTL() {
		return bz, 0, true, nil
	}
	if len(bz) < 4 {
		return nil, 0, false, types.ErrStorageCorrupted.Wrapf("%s entry shorter than ttl header", s.durability)
	}
	liveUntil = binary.BigEndian.Uint32(bz[:4])
	if liveUntil < s.seq {
		if s.durability == types.Temporary {
			return nil, 0, false, nil
		}
		return nil, 0, false, types.ErrEntryArchived.Wrapf("%s entry %x expired at ledger %d", s.durability, key, liveUntil)
	}
	return bz[4:], liveUntil, true, nil
}

func (s Storage) write(key, value []byte, liveUntil uint32) {
	if !s.hasTTL() {
		s.kv.Set(key, value)
		return
	}
	bz := make([]byte, 4+len(value))
	binary.BigEndian.PutUint32(bz[:4], liveUntil)
	copy(bz[4:], value)
	s.kv.Set(key, bz)
}

// Has reports whether a live entry exists under key.
func (s Storage) Has(key []byte) (bool, error) {
	_, _, found, err := s.read(key)
	return found, err
}

// Get returns the value stored under key.
func (s Storage) Get(key []byte) ([]byte, bool, error) {
	v, _, found, err := s.read(key)
	return v, found, err
}

// Set stores value under key. A live entry keeps its lifetime; a new or
// expired entry starts with the minimum TTL of its domain.
func (s Storage) Set(key, value []byte) error {
	_, liveUntil, found, err := s.read(key)
	if err != nil && !types.ErrEntryArchived.Is(err) {
		return err
	}
	if !found {
		liveUntil = s.seq + s.minTTL() - 1
	}
	s.write(key, value, liveUntil)
	return nil
}

// Remove deletes the entry under key.
func (s Storage) Remove(key []byte) {
	s.kv.Delete(key)
}

// TTL returns the number of ledgers the entry under key stays live for.
func (s Storage) TTL(key []byte) (uint32, error) {
	if !s.hasTTL() {
		return 0, types.ErrInvalidTTL.Wrap("instance entries share the instance ttl")
	}
	_, liveUntil, found, err := s.read(key)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, types.ErrEntryArchived.Wrapf("no live %s entry %x", s.durability, key)
	}
	return liveUntil - s.seq, nil
}

// ExtendTTL extends the entry under key so it stays live for extendTo
// ledgers when fewer than threshold ledgers remain.
func (s Storage) ExtendTTL(key []byte, threshold, extendTo uint32) error {
	if !s.hasTTL() {
		return types.ErrInvalidTTL.Wrap("use ExtendInstanceTTL for instance storage")
	}
	if err := validateExtension(s.policy, threshold, extendTo); err != nil {
		return err
	}
	value, liveUntil, found, err := s.read(key)
	if err != nil {
		return err
	}
	if !found {
		return types.ErrEntryArchived.Wrapf("no live %s entry %x", s.durability, key)
	}
	if liveUntil-s.seq < threshold {
		s.write(key, value, s.seq+extendTo)
	}
	return nil
}

func validateExtension(p types.TTLPolicy, threshold, extendTo uint32) error {
	if threshold > extendTo {
		return types.ErrInvalidTTL.Wrapf("threshold %d above extend_to %d", threshold, extendTo)
	}
	if extendTo > p.MaxEntryTTL {
		return types.ErrInvalidTTL.Wrapf("extend_to %d above max entry ttl %d", extendTo, p.MaxEntryTTL)
	}
	return nil
}
