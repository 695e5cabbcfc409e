package types

// Factory event types
const (
	EventTypeInit        = "init"
	EventTypeNewPair     = "new_pair"
	EventTypeFeeTo       = "fee_to"
	EventTypeSetter      = "setter"
	EventTypeFeesEnabled = "fees"
)

// Factory event attribute keys
const (
	AttributeKeySetter         = "setter"
	AttributeKeyOldSetter      = "old"
	AttributeKeyNewSetter      = "new"
	AttributeKeyOldFeeTo       = "old"
	AttributeKeyNewFeeTo       = "new"
	AttributeKeyFeesEnabled    = "fees_enabled"
	AttributeKeyToken0         = "token_0"
	AttributeKeyToken1         = "token_1"
	AttributeKeyPair           = "pair"
	AttributeKeyNewPairsLength = "new_pairs_length"
)
