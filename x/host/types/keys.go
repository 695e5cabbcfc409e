package types

const (
	// ModuleName is the codespace of host errors and the logger module name.
	ModuleName = "host"

	// StoreKey is the KV store every contract's storage is namespaced in.
	StoreKey = "ledger"
)

// Store layout. Every contract owns the sub-space
// ContractDataPrefix | address | durability | key.
var (
	ContractDataPrefix     = []byte{0x01}
	ContractInstancePrefix = []byte{0x02}
)

// Durability selects one of the three storage domains.
type Durability byte

const (
	Instance   Durability = 0x01
	Persistent Durability = 0x02
	Temporary  Durability = 0x03
)

func (d Durability) String() string {
	switch d {
	case Instance:
		return "instance"
	case Persistent:
		return "persistent"
	case Temporary:
		return "temporary"
	default:
		return "unknown"
	}
}

// ContractDataKey returns the prefix for one storage domain of a contract.
func ContractDataKey(contract Address, d Durability) []byte {
	key := append([]byte{}, ContractDataPrefix...)
	key = append(key, contract.Bytes()...)
	return append(key, byte(d))
}

// ContractInstanceKey returns the key of a deployed contract instance record.
func ContractInstanceKey(contract Address) []byte {
	return append(append([]byte{}, ContractInstancePrefix...), contract.Bytes()...)
}
