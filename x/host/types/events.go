package types

// Attribute keys attached to every contract event.
const (
	AttributeKeyModule   = "module"
	AttributeKeyContract = "contract"
	AttributeKeySender   = "sender"
)

// Event types emitted by the host itself.
const (
	EventTypeContractDeployed = "contract_deployed"

	AttributeKeyDeployer = "deployer"
	AttributeKeyWasmHash = "wasm_hash"
	AttributeKeyDeployed = "deployed"
)
