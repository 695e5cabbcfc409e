// Package host implements the ledger runtime the AMM contracts execute on.
//
// Contract code is uploaded as a Go value implementing Contract and is
// addressed by its wasm hash. Deployed instances are an address plus a
// private storage namespace inside a single KV store; every call into an
// instance goes through Invoke, which pushes an invocation frame carrying the
// callee and its invoker on the sdk.Context. Transact wraps a whole call tree
// in a cache multistore so a failing call leaves no trace.
//
// Authorization is scoped to the whole transaction. A signer passed to
// Transact satisfies RequireAuth in every contract reached by the call tree,
// at any depth, so a signer trusts every contract its transaction invokes. A
// contract address is authorized only for calls it makes directly.
package host

import (
	"context"
	"fmt"
	"sync"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cometbft/cometbft/crypto/tmhash"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/soroswap/core/x/host/types"
)

// DefaultNetworkPassphrase identifies the local network when none is configured.
const DefaultNetworkPassphrase = "Soroswap Local Network ; 2024"

// MaxCallDepth bounds nested cross-contract invocations.
const MaxCallDepth = 16

// Contract is uploadable contract code.
type Contract interface {
	// WasmName names the code blob; its hash is the wasm hash.
	WasmName() string
}

// Host is the ledger runtime shared by every contract instance.
type Host struct {
	storeKey  storetypes.StoreKey
	networkID [32]byte
	policy    types.TTLPolicy
	tracer    trace.Tracer

	mu        sync.RWMutex
	codes     map[[32]byte]Contract
	lastAuths []Authorization
}

// Option configures a Host.
type Option func(*Host)

// WithNetworkPassphrase sets the passphrase hashed into every contract address.
func WithNetworkPassphrase(passphrase string) Option {
	return func(h *Host) {
		copy(h.networkID[:], tmhash.Sum([]byte(passphrase)))
	}
}

// WithTTLPolicy overrides the default storage lifetime bounds.
func WithTTLPolicy(p types.TTLPolicy) Option {
	return func(h *Host) { h.policy = p }
}

// WithTracerProvider traces every invocation with spans from tp.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(h *Host) { h.tracer = tp.Tracer("github.com/soroswap/core/x/host") }
}

// NewHost creates a host storing contract data under key.
func NewHost(key storetypes.StoreKey, opts ...Option) *Host {
	h := &Host{
		storeKey: key,
		policy:   types.DefaultTTLPolicy(),
		tracer:   noop.NewTracerProvider().Tracer("github.com/soroswap/core/x/host"),
		codes:    make(map[[32]byte]Contract),
	}
	WithNetworkPassphrase(DefaultNetworkPassphrase)(h)
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Logger returns a host scoped logger.
func (h *Host) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// NetworkID returns the hash of the network passphrase.
func (h *Host) NetworkID() [32]byte { return h.networkID }

// TTLPolicy returns the storage lifetime bounds in force.
func (h *Host) TTLPolicy() types.TTLPolicy { return h.policy }

// UploadContractWasm registers code and returns its wasm hash. Uploading the
// same code twice is a no-op.
func (h *Host) UploadContractWasm(code Contract) [32]byte {
	var hash [32]byte
	copy(hash[:], tmhash.Sum([]byte(code.WasmName())))

	h.mu.Lock()
	defer h.mu.Unlock()
	h.codes[hash] = code
	return hash
}

func (h *Host) code(hash [32]byte) (Contract, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	c, ok := h.codes[hash]
	return c, ok
}

// ContractAddress derives the address a deployer gets for salt. The result
// does not depend on whether the contract has been deployed.
func (h *Host) ContractAddress(deployer types.Address, salt [32]byte) types.Address {
	preimage := make([]byte, 0, 32+len("contract")+types.AddressLen+32)
	preimage = append(preimage, h.networkID[:]...)
	preimage = append(preimage, "contract"...)
	preimage = append(preimage, deployer.Bytes()...)
	preimage = append(preimage, salt[:]...)

	var id [32]byte
	copy(id[:], tmhash.Sum(preimage))
	return types.NewContractAddress(id)
}

func (h *Host) kvStore(ctx context.Context) storetypes.KVStore {
	return sdk.UnwrapSDKContext(ctx).KVStore(h.storeKey)
}

// LedgerTimestamp returns the close time of the current ledger in seconds.
func LedgerTimestamp(ctx context.Context) uint64 {
	ts := sdk.UnwrapSDKContext(ctx).BlockTime().Unix()
	if ts < 0 {
		return 0
	}
	return uint64(ts)
}

// LedgerSequence returns the sequence number of the current ledger.
func LedgerSequence(ctx context.Context) uint32 {
	height := sdk.UnwrapSDKContext(ctx).BlockHeight()
	if height < 0 {
		return 0
	}
	if height > int64(^uint32(0)) {
		panic(fmt.Sprintf("ledger sequence %d overflows uint32", height))
	}
	return uint32(height)
}
