package host

import (
	"encoding/binary"

	"cosmossdk.io/math"

	"github.com/soroswap/core/x/host/types"
)

// Typed accessors over Storage. A missing entry yields the zero value and
// found == false.

func (s Storage) GetInt(key []byte) (math.Int, bool, error) {
	bz, found, err := s.Get(key)
	if err != nil || !found {
		return math.ZeroInt(), false, err
	}
	var v math.Int
	if err := v.Unmarshal(bz); err != nil {
		return math.ZeroInt(), false, types.ErrStorageCorrupted.Wrapf("int at %x: %v", key, err)
	}
	return v, true, nil
}

func (s Storage) SetInt(key []byte, v math.Int) error {
	bz, err := v.Marshal()
	if err != nil {
		return types.ErrStorageCorrupted.Wrapf("int at %x: %v", key, err)
	}
	return s.Set(key, bz)
}

func (s Storage) GetUint(key []byte) (math.Uint, bool, error) {
	bz, found, err := s.Get(key)
	if err != nil || !found {
		return math.ZeroUint(), false, err
	}
	var v math.Uint
	if err := v.Unmarshal(bz); err != nil {
		return math.ZeroUint(), false, types.ErrStorageCorrupted.Wrapf("uint at %x: %v", key, err)
	}
	return v, true, nil
}

func (s Storage) SetUint(key []byte, v math.Uint) error {
	bz, err := v.Marshal()
	if err != nil {
		return types.ErrStorageCorrupted.Wrapf("uint at %x: %v", key, err)
	}
	return s.Set(key, bz)
}

func (s Storage) GetUint64(key []byte) (uint64, bool, error) {
	bz, found, err := s.Get(key)
	if err != nil || !found {
		return 0, false, err
	}
	if len(bz) != 8 {
		return 0, false, types.ErrStorageCorrupted.Wrapf("u64 at %x has %d bytes", key, len(bz))
	}
	return binary.BigEndian.Uint64(bz), true, nil
}

func (s Storage) SetUint64(key []byte, v uint64) error {
	return s.Set(key, binary.BigEndian.AppendUint64(nil, v))
}

func (s Storage) GetUint32(key []byte) (uint32, bool, error) {
	bz, found, err := s.Get(key)
	if err != nil || !found {
		return 0, false, err
	}
	if len(bz) != 4 {
		return 0, false, types.ErrStorageCorrupted.Wrapf("u32 at %x has %d bytes", key, len(bz))
	}
	return binary.BigEndian.Uint32(bz), true, nil
}

func (s Storage) SetUint32(key []byte, v uint32) error {
	return s.Set(key, binary.BigEndian.AppendUint32(nil, v))
}

func (s Storage) GetBool(key []byte) (bool, bool, error) {
	bz, found, err := s.Get(key)
	if err != nil || !found {
		return false, false, err
	}
	if len(bz) != 1 {
		return false, false, types.ErrStorageCorrupted.Wrapf("bool at %x has %d bytes", key, len(bz))
	}
	return bz[0] == 1, true, nil
}

func (s Storage) SetBool(key []byte, v bool) error {
	bz := []byte{0}
	if v {
		bz[0] = 1
	}
	return s.Set(key, bz)
}

func (s Storage) GetAddress(key []byte) (types.Address, bool, error) {
	bz, found, err := s.Get(key)
	if err != nil || !found {
		return types.Address{}, false, err
	}
	addr, err := types.AddressFromBytes(bz)
	if err != nil {
		return types.Address{}, false, types.ErrStorageCorrupted.Wrapf("address at %x: %v", key, err)
	}
	return addr, true, nil
}

func (s Storage) SetAddress(key []byte, addr types.Address) error {
	if addr.Empty() {
		return types.ErrInvalidAddress.Wrapf("cannot store empty address at %x", key)
	}
	return s.Set(key, addr.Bytes())
}

func (s Storage) GetHash(key []byte) ([32]byte, bool, error) {
	var h [32]byte
	bz, found, err := s.Get(key)
	if err != nil || !found {
		return h, false, err
	}
	if len(bz) != 32 {
		return h, false, types.ErrStorageCorrupted.Wrapf("hash at %x has %d bytes", key, len(bz))
	}
	copy(h[:], bz)
	return h, true, nil
}

func (s Storage) SetHash(key []byte, h [32]byte) error {
	return s.Set(key, h[:])
}
