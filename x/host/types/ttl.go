package types

// LedgersPerDay assumes five second ledgers.
const LedgersPerDay uint32 = 17280

// Contract instances are kept alive for a week and topped up once less than
// six days remain.
const (
	InstanceBumpAmount        = 7 * LedgersPerDay
	InstanceLifetimeThreshold = InstanceBumpAmount - LedgersPerDay
)

// Persistent entries (pair registry, code hashes) are kept alive for sixty
// days and topped up once less than fifty nine days remain.
const (
	PersistentBumpAmount        = 60 * LedgersPerDay
	PersistentLifetimeThreshold = PersistentBumpAmount - LedgersPerDay
)

// TTLPolicy bounds the lifetime of storage entries.
type TTLPolicy struct {
	MinPersistentTTL uint32 `mapstructure:"min_persistent_ttl"`
	MinTemporaryTTL  uint32 `mapstructure:"min_temporary_ttl"`
	MaxEntryTTL      uint32 `mapstructure:"max_entry_ttl"`
}

// DefaultTTLPolicy mirrors the public network settings.
func DefaultTTLPolicy() TTLPolicy {
	return TTLPolicy{
		MinPersistentTTL: 4096,
		MinTemporaryTTL:  16,
		MaxEntryTTL:      3110400,
	}
}

// Validate checks the policy is usable.
func (p TTLPolicy) Validate() error {
	if p.MinPersistentTTL == 0 || p.MinTemporaryTTL == 0 {
		return ErrInvalidTTL.Wrap("minimum ttl must be positive")
	}
	if p.MaxEntryTTL < PersistentBumpAmount {
		return ErrInvalidTTL.Wrapf("max entry ttl %d below persistent bump amount %d", p.MaxEntryTTL, PersistentBumpAmount)
	}
	if p.MinPersistentTTL > p.MaxEntryTTL || p.MinTemporaryTTL > p.MaxEntryTTL {
		return ErrInvalidTTL.Wrap("minimum ttl exceeds max entry ttl")
	}
	return nil
}
