package host

import (
	"context"
	"fmt"
	"time"

	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/hashicorp/go-metrics"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/soroswap/core/x/host/types"
)

// Invoke calls fn on the contract deployed at addr. The instance must exist
// and be live, and must not already be executing further up the call stack.
// call receives the contract code and a context whose frame names addr as
// the executing contract and the caller as its invoker.
func (h *Host) Invoke(ctx context.Context, addr types.Address, fn string, call func(ctx context.Context, code Contract) error) (err error) {
	start := time.Now()
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	inst, found, err := h.getInstance(sdkCtx, addr)
	if err != nil {
		return err
	}
	if !found {
		return types.ErrContractNotFound.Wrapf("%s", addr)
	}
	seq := LedgerSequence(sdkCtx)
	if inst.liveUntil < seq {
		return types.ErrEntryArchived.Wrapf("instance %s expired at ledger %d", addr, inst.liveUntil)
	}
	code, ok := h.code(inst.wasmHash)
	if !ok {
		return types.ErrCodeNotFound.Wrapf("wasm hash %x of %s", inst.wasmHash, addr)
	}

	parent := frameFrom(sdkCtx)
	depth := 1
	invoker := Invoker(sdkCtx)
	if parent != nil {
		if parent.onStack(addr) {
			return types.ErrReentrancy.Wrapf("%s.%s", addr, fn)
		}
		depth = parent.depth + 1
		invoker = parent.contract
	}
	if depth > MaxCallDepth {
		return types.ErrCallDepth.Wrapf("%s.%s at depth %d", addr, fn, depth)
	}

	spanCtx, span := h.tracer.Start(sdkCtx.Context(), fmt.Sprintf("contract.%s", fn),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("contract.address", addr.String()),
			attribute.String("contract.code", code.WasmName()),
			attribute.Int("contract.depth", depth),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()

		telemetry.IncrCounterWithLabels(
			[]string{types.ModuleName, "invoke"},
			1,
			[]metrics.Label{
				telemetry.NewLabel("code", code.WasmName()),
				telemetry.NewLabel("fn", fn),
				telemetry.NewLabel("ok", fmt.Sprintf("%t", err == nil)),
			},
		)
		telemetry.MeasureSince(start, types.ModuleName, "invoke", code.WasmName())
	}()

	f := &frame{contract: addr, invoker: invoker, fn: fn, parent: parent, depth: depth}
	callCtx := sdkCtx.WithContext(spanCtx).WithValue(frameKey{}, f)

	h.Logger(sdkCtx).Debug("invoke", "contract", addr.String(), "fn", fn, "depth", depth)
	return call(callCtx, code)
}

// Call invokes fn on addr and hands call the contract code as T. It fails
// with ErrContractInterface when the deployed code does not implement T.
func Call[T any](ctx context.Context, h *Host, addr types.Address, fn string, call func(ctx context.Context, c T) error) error {
	return h.Invoke(ctx, addr, fn, func(ctx context.Context, code Contract) error {
		c, ok := code.(T)
		if !ok {
			return types.ErrContractInterface.Wrapf("%s (%s) cannot serve %s", addr, code.WasmName(), fn)
		}
		return call(ctx, c)
	})
}
