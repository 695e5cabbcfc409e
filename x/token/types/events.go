package types

// Token event types
const (
	EventTypeTransfer = "transfer"
	EventTypeApprove  = "approve"
	EventTypeMint     = "mint"
	EventTypeBurn     = "burn"
	EventTypeSetAdmin = "set_admin"
)

// Token event attribute keys
const (
	AttributeKeyFrom             = "from"
	AttributeKeyTo               = "to"
	AttributeKeySpender          = "spender"
	AttributeKeyAmount           = "amount"
	AttributeKeyExpirationLedger = "expiration_ledger"
	AttributeKeyAdmin            = "admin"
	AttributeKeyNewAdmin         = "new_admin"
)
