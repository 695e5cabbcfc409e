package types

const (
	// ModuleName is the codespace of router errors and the logger module name.
	ModuleName = "router"

	// EventModule is the topic of every router event.
	EventModule = "SoroswapRouter"

	// WasmName names the router code.
	WasmName = "soroswap_router"
)

// FactoryKey holds the factory address in instance storage.
var FactoryKey = []byte("Factory")
