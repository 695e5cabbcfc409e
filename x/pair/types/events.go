package types

// Pair event types
const (
	EventTypeDeposit  = "deposit"
	EventTypeSwap     = "swap"
	EventTypeWithdraw = "withdraw"
	EventTypeSync     = "sync"
	EventTypeSkim     = "skim"
)

// Pair event attribute keys
const (
	AttributeKeySender      = "sender"
	AttributeKeyTo          = "to"
	AttributeKeyAmount0     = "amount0"
	AttributeKeyAmount1     = "amount1"
	AttributeKeyLiquidity   = "liquidity"
	AttributeKeyNewReserve0 = "new_reserve0"
	AttributeKeyNewReserve1 = "new_reserve1"
	AttributeKeyAmount0In   = "amount0_in"
	AttributeKeyAmount1In   = "amount1_in"
	AttributeKeyAmount0Out  = "amount0_out"
	AttributeKeyAmount1Out  = "amount1_out"
	AttributeKeySharesBurnt = "shares_burnt"
	AttributeKeyReserve0    = "reserve0"
	AttributeKeyReserve1    = "reserve1"
)
