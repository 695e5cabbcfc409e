package library

import (
	"github.com/cometbft/cometbft/crypto/tmhash"

	"github.com/soroswap/core/x/host"
	hosttypes "github.com/soroswap/core/x/host/types"
)

// SortTokens returns a and b in ascending address order.
func SortTokens(a, b hosttypes.Address) (hosttypes.Address, hosttypes.Address, error) {
	if a == b {
		return hosttypes.Address{}, hosttypes.Address{}, ErrSortIdenticalTokens.Wrapf("%s", a)
	}
	if a.Less(b) {
		return a, b, nil
	}
	return b, a, nil
}

// PairSalt is the deployment salt of the pair of two sorted tokens:
// sha256 of their canonical encodings concatenated.
func PairSalt(token0, token1 hosttypes.Address) [32]byte {
	preimage := append(token0.Bytes(), token1.Bytes()...)
	var salt [32]byte
	copy(salt[:], tmhash.Sum(preimage))
	return salt
}

// PairFor returns the address factory deploys the pair of a and b to,
// whether or not the pair exists.
func PairFor(h *host.Host, factory, a, b hosttypes.Address) (hosttypes.Address, error) {
	token0, token1, err := SortTokens(a, b)
	if err != nil {
		return hosttypes.Address{}, err
	}
	return h.ContractAddress(factory, PairSalt(token0, token1)), nil
}
