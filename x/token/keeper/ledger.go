package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/soroswap/core/x/host"
	hosttypes "github.com/soroswap/core/x/host/types"
	"github.com/soroswap/core/x/shared/safemath"
	"github.com/soroswap/core/x/token/types"
)

// Ledger keeps fungible balances, allowances and supply in the storage of
// the executing contract. It has two surfaces: Mint and BurnInternal skip
// authorization and are meant for the contract that owns the ledger; the
// remaining operations check the authorization of the spending party.
type Ledger struct {
	host   *host.Host
	module string
}

// NewLedger returns a ledger publishing events under module.
func NewLedger(h *host.Host, module string) Ledger {
	return Ledger{host: h, module: module}
}

func checkNonNegative(amount math.Int) error {
	if amount.IsNil() || amount.IsNegative() {
		return types.ErrNegativeAmountNotAllowed.Wrapf("%s", amount)
	}
	return nil
}

func (l Ledger) bumpInstance(ctx context.Context) error {
	return l.host.ExtendInstanceTTL(ctx, hosttypes.InstanceLifetimeThreshold, hosttypes.InstanceBumpAmount)
}

// SetMetadata writes the immutable token metadata.
func (l Ledger) SetMetadata(ctx context.Context, decimals uint32, name, symbol string) error {
	if decimals > types.MaxDecimals {
		return types.ErrInvalidDecimals.Wrapf("%d", decimals)
	}
	st := l.host.Instance(ctx)
	if err := st.SetUint32(types.DecimalsKey, decimals); err != nil {
		return err
	}
	if err := st.Set(types.NameKey, []byte(name)); err != nil {
		return err
	}
	return st.Set(types.SymbolKey, []byte(symbol))
}

func (l Ledger) Decimals(ctx context.Context) (uint32, error) {
	d, found, err := l.host.Instance(ctx).GetUint32(types.DecimalsKey)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, types.ErrNotInitialized
	}
	return d, nil
}

func (l Ledger) Name(ctx context.Context) (string, error) {
	return l.metadataString(ctx, types.NameKey)
}

func (l Ledger) Symbol(ctx context.Context) (string, error) {
	return l.metadataString(ctx, types.SymbolKey)
}

func (l Ledger) metadataString(ctx context.Context, key []byte) (string, error) {
	bz, found, err := l.host.Instance(ctx).Get(key)
	if err != nil {
		return "", err
	}
	if !found {
		return "", types.ErrNotInitialized
	}
	return string(bz), nil
}

// TotalSupply returns the sum of all balances.
func (l Ledger) TotalSupply(ctx context.Context) (math.Int, error) {
	supply, _, err := l.host.Instance(ctx).GetInt(types.TotalSupplyKey)
	return supply, err
}

func (l Ledger) increaseSupply(ctx context.Context, amount math.Int) error {
	supply, err := l.TotalSupply(ctx)
	if err != nil {
		return err
	}
	next, ok := safemath.Add(supply, amount)
	if !ok {
		return types.ErrTotalSupplyIncreaseOverflow.Wrapf("%s + %s", supply, amount)
	}
	return l.host.Instance(ctx).SetInt(types.TotalSupplyKey, next)
}

func (l Ledger) decreaseSupply(ctx context.Context, amount math.Int) error {
	supply, err := l.TotalSupply(ctx)
	if err != nil {
		return err
	}
	if supply.LT(amount) {
		return types.ErrTotalSupplyInsufficient.Wrapf("supply %s, burning %s", supply, amount)
	}
	return l.host.Instance(ctx).SetInt(types.TotalSupplyKey, supply.Sub(amount))
}

// readBalance returns the balance of id, extending the entry when it exists.
func (l Ledger) readBalance(ctx context.Context, id hosttypes.Address) (math.Int, error) {
	st := l.host.Persistent(ctx)
	key := types.BalanceKey(id)
	balance, found, err := st.GetInt(key)
	if err != nil {
		return math.Int{}, err
	}
	if !found {
		return math.ZeroInt(), nil
	}
	if err := st.ExtendTTL(key, hosttypes.PersistentLifetimeThreshold, hosttypes.PersistentBumpAmount); err != nil {
		return math.Int{}, err
	}
	return balance, nil
}

func (l Ledger) writeBalance(ctx context.Context, id hosttypes.Address, amount math.Int) error {
	st := l.host.Persistent(ctx)
	key := types.BalanceKey(id)
	if err := st.SetInt(key, amount); err != nil {
		return err
	}
	return st.ExtendTTL(key, hosttypes.PersistentLifetimeThreshold, hosttypes.PersistentBumpAmount)
}

func (l Ledger) receiveBalance(ctx context.Context, id hosttypes.Address, amount math.Int) error {
	balance, err := l.readBalance(ctx, id)
	if err != nil {
		return err
	}
	next, ok := safemath.Add(balance, amount)
	if !ok {
		return types.ErrReceiveBalanceOverflow.Wrapf("%s: %s + %s", id, balance, amount)
	}
	return l.writeBalance(ctx, id, next)
}

func (l Ledger) spendBalance(ctx context.Context, id hosttypes.Address, amount math.Int) error {
	balance, err := l.readBalance(ctx, id)
	if err != nil {
		return err
	}
	if balance.LT(amount) {
		return types.ErrSpendBalanceInsufficient.Wrapf("%s holds %s, needs %s", id, balance, amount)
	}
	return l.writeBalance(ctx, id, balance.Sub(amount))
}

// readAllowance returns the live allowance from grants spender. An allowance
// past its expiration ledger is worth zero.
func (l Ledger) readAllowance(ctx context.Context, from, spender hosttypes.Address) (types.AllowanceValue, error) {
	bz, found, err := l.host.Temporary(ctx).Get(types.AllowanceKey(from, spender))
	if err != nil {
		return types.AllowanceValue{}, err
	}
	if !found {
		return types.AllowanceValue{Amount: math.ZeroInt()}, nil
	}
	a, err := types.UnmarshalAllowanceValue(bz)
	if err != nil {
		return types.AllowanceValue{}, err
	}
	if a.ExpirationLedger < host.LedgerSequence(ctx) {
		a.Amount = math.ZeroInt()
	}
	return a, nil
}

func (l Ledger) writeAllowance(ctx context.Context, from, spender hosttypes.Address, amount math.Int, expirationLedger uint32) error {
	seq := host.LedgerSequence(ctx)
	if amount.IsPositive() && expirationLedger < seq {
		return types.ErrWriteAllowanceExpirationLedgerExpired.Wrapf("expiration %d, current ledger %d", expirationLedger, seq)
	}
	if amount.IsPositive() && expirationLedger-seq > l.host.TTLPolicy().MaxEntryTTL {
		return types.ErrWriteAllowanceExpirationLedgerTooFar.Wrapf("expiration %d, current ledger %d", expirationLedger, seq)
	}

	bz, err := types.AllowanceValue{Amount: amount, ExpirationLedger: expirationLedger}.Marshal()
	if err != nil {
		return err
	}
	st := l.host.Temporary(ctx)
	key := types.AllowanceKey(from, spender)
	if err := st.Set(key, bz); err != nil {
		return err
	}
	if amount.IsPositive() {
		liveFor := expirationLedger - seq
		return st.ExtendTTL(key, liveFor, liveFor)
	}
	return nil
}

func (l Ledger) spendAllowance(ctx context.Context, from, spender hosttypes.Address, amount math.Int) error {
	a, err := l.readAllowance(ctx, from, spender)
	if err != nil {
		return err
	}
	if a.Amount.LT(amount) {
		return types.ErrSpendAllowanceInsufficientAllowance.Wrapf("%s may spend %s of %s, needs %s", spender, a.Amount, from, amount)
	}
	if amount.IsZero() {
		return nil
	}
	return l.writeAllowance(ctx, from, spender, a.Amount.Sub(amount), a.ExpirationLedger)
}

func (l Ledger) publish(ctx context.Context, name string, attrs ...sdk.Attribute) {
	l.host.PublishEvent(ctx, l.module, name, attrs...)
}

// Mint credits amount to to without any authorization check.
func (l Ledger) Mint(ctx context.Context, to hosttypes.Address, amount math.Int) error {
	if err := checkNonNegative(amount); err != nil {
		return err
	}
	if err := l.increaseSupply(ctx, amount); err != nil {
		return err
	}
	if err := l.receiveBalance(ctx, to, amount); err != nil {
		return err
	}
	l.publish(ctx, types.EventTypeMint,
		host.Attr(types.AttributeKeyTo, to.String()),
		host.Attr(types.AttributeKeyAmount, amount.String()),
	)
	return nil
}

// BurnInternal debits amount from from without any authorization check.
func (l Ledger) BurnInternal(ctx context.Context, from hosttypes.Address, amount math.Int) error {
	if err := checkNonNegative(amount); err != nil {
		return err
	}
	if err := l.spendBalance(ctx, from, amount); err != nil {
		return err
	}
	if err := l.decreaseSupply(ctx, amount); err != nil {
		return err
	}
	l.publish(ctx, types.EventTypeBurn,
		host.Attr(types.AttributeKeyFrom, from.String()),
		host.Attr(types.AttributeKeyAmount, amount.String()),
	)
	return nil
}

func (l Ledger) Allowance(ctx context.Context, from, spender hosttypes.Address) (math.Int, error) {
	if err := l.bumpInstance(ctx); err != nil {
		return math.Int{}, err
	}
	a, err := l.readAllowance(ctx, from, spender)
	if err != nil {
		return math.Int{}, err
	}
	return a.Amount, nil
}

func (l Ledger) Approve(ctx context.Context, from, spender hosttypes.Address, amount math.Int, expirationLedger uint32) error {
	if err := l.host.RequireAuth(ctx, from); err != nil {
		return err
	}
	if err := checkNonNegative(amount); err != nil {
		return err
	}
	if err := l.bumpInstance(ctx); err != nil {
		return err
	}
	if err := l.writeAllowance(ctx, from, spender, amount, expirationLedger); err != nil {
		return err
	}
	l.publish(ctx, types.EventTypeApprove,
		host.Attr(types.AttributeKeyFrom, from.String()),
		host.Attr(types.AttributeKeySpender, spender.String()),
		host.Attr(types.AttributeKeyAmount, amount.String()),
		host.Attr(types.AttributeKeyExpirationLedger, fmt.Sprintf("%d", expirationLedger)),
	)
	return nil
}

func (l Ledger) Balance(ctx context.Context, id hosttypes.Address) (math.Int, error) {
	if err := l.bumpInstance(ctx); err != nil {
		return math.Int{}, err
	}
	return l.readBalance(ctx, id)
}

func (l Ledger) Transfer(ctx context.Context, from, to hosttypes.Address, amount math.Int) error {
	if err := l.host.RequireAuth(ctx, from); err != nil {
		return err
	}
	if err := checkNonNegative(amount); err != nil {
		return err
	}
	if err := l.bumpInstance(ctx); err != nil {
		return err
	}
	return l.move(ctx, from, to, amount)
}

func (l Ledger) TransferFrom(ctx context.Context, spender, from, to hosttypes.Address, amount math.Int) error {
	if err := l.host.RequireAuth(ctx, spender); err != nil {
		return err
	}
	if err := checkNonNegative(amount); err != nil {
		return err
	}
	if err := l.bumpInstance(ctx); err != nil {
		return err
	}
	if err := l.spendAllowance(ctx, from, spender, amount); err != nil {
		return err
	}
	return l.move(ctx, from, to, amount)
}

func (l Ledger) move(ctx context.Context, from, to hosttypes.Address, amount math.Int) error {
	if err := l.spendBalance(ctx, from, amount); err != nil {
		return err
	}
	if err := l.receiveBalance(ctx, to, amount); err != nil {
		return err
	}
	l.publish(ctx, types.EventTypeTransfer,
		host.Attr(types.AttributeKeyFrom, from.String()),
		host.Attr(types.AttributeKeyTo, to.String()),
		host.Attr(types.AttributeKeyAmount, amount.String()),
	)
	return nil
}

func (l Ledger) Burn(ctx context.Context, from hosttypes.Address, amount math.Int) error {
	if err := l.host.RequireAuth(ctx, from); err != nil {
		return err
	}
	if err := l.bumpInstance(ctx); err != nil {
		return err
	}
	return l.BurnInternal(ctx, from, amount)
}

func (l Ledger) BurnFrom(ctx context.Context, spender, from hosttypes.Address, amount math.Int) error {
	if err := l.host.RequireAuth(ctx, spender); err != nil {
		return err
	}
	if err := checkNonNegative(amount); err != nil {
		return err
	}
	if err := l.bumpInstance(ctx); err != nil {
		return err
	}
	if err := l.spendAllowance(ctx, from, spender, amount); err != nil {
		return err
	}
	return l.BurnInternal(ctx, from, amount)
}
