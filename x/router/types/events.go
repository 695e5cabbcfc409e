package types

// Router event types
const (
	EventTypeInit            = "init"
	EventTypeAddLiquidity    = "add_liq"
	EventTypeRemoveLiquidity = "remove"
	EventTypeSwap            = "swap"
)

// Router event attribute keys
const (
	AttributeKeyFactory   = "factory"
	AttributeKeyTokenA    = "token_a"
	AttributeKeyTokenB    = "token_b"
	AttributeKeyPair      = "pair"
	AttributeKeyAmountA   = "amount_a"
	AttributeKeyAmountB   = "amount_b"
	AttributeKeyLiquidity = "liquidity"
	AttributeKeyTo        = "to"
	AttributeKeyPath      = "path"
	AttributeKeyAmounts   = "amounts"
)
