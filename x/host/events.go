package host

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/soroswap/core/x/host/types"
)

// Attr is shorthand for sdk.NewAttribute.
func Attr(key, value string) sdk.Attribute {
	return sdk.NewAttribute(key, value)
}

// PublishEvent emits an event of type name on behalf of the executing
// contract. module is the stable topic identifying the emitting contract
// family; it is attached as the first attribute, followed by the emitting
// contract and attrs in order.
func (h *Host) PublishEvent(ctx context.Context, module, name string, attrs ...sdk.Attribute) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	all := make([]sdk.Attribute, 0, len(attrs)+2)
	all = append(all, sdk.NewAttribute(types.AttributeKeyModule, module))
	if contract, err := CurrentContract(ctx); err == nil {
		all = append(all, sdk.NewAttribute(types.AttributeKeyContract, contract.String()))
	}
	all = append(all, attrs...)

	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(name, all...))
}
