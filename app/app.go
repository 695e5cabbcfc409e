// Package app assembles the Soroswap ledger: a committed multistore, the
// contract host running on it and the uploaded token, pair, factory and
// router code.
//
// The App keeps a single ledger header. Transactions run against it through
// Transact; Commit persists their writes and closes the ledger, opening the
// next one.
package app

import (
	"context"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	"github.com/cometbft/cometbft/crypto/tmhash"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"

	factorykeeper "github.com/soroswap/core/x/factory/keeper"
	factorytypes "github.com/soroswap/core/x/factory/types"
	"github.com/soroswap/core/x/host"
	hosttypes "github.com/soroswap/core/x/host/types"
	pairkeeper "github.com/soroswap/core/x/pair/keeper"
	routerkeeper "github.com/soroswap/core/x/router/keeper"
	routertypes "github.com/soroswap/core/x/router/types"
	tokenkeeper "github.com/soroswap/core/x/token/keeper"
	tokentypes "github.com/soroswap/core/x/token/types"
)

const Name = "soroswap"

// LedgerCloseTime is the nominal time between two ledgers.
const LedgerCloseTime = 5 * time.Second

// Codes holds the wasm hashes of the uploaded contract code.
type Codes struct {
	Token   [32]byte
	Pair    [32]byte
	Factory [32]byte
	Router  [32]byte
}

// RegisterContracts uploads every contract the protocol is made of to h.
func RegisterContracts(h *host.Host) Codes {
	return Codes{
		Token:   h.UploadContractWasm(tokenkeeper.NewKeeper(h)),
		Pair:    h.UploadContractWasm(pairkeeper.NewKeeper(h)),
		Factory: h.UploadContractWasm(factorykeeper.NewKeeper(h)),
		Router:  h.UploadContractWasm(routerkeeper.NewKeeper(h)),
	}
}

// Salt derives a deployment salt from a label.
func Salt(label string) [32]byte {
	var salt [32]byte
	copy(salt[:], tmhash.Sum([]byte(label)))
	return salt
}

// Deployment is a factory and the router bound to it.
type Deployment struct {
	Factory factorytypes.Client
	Router  routertypes.Client
}

// App is the Soroswap ledger.
type App struct {
	logger    log.Logger
	db        dbm.DB
	cms       storetypes.CommitMultiStore
	host      *host.Host
	telemetry *Telemetry
	codes     Codes
	header    cmtproto.Header
}

// New opens the ledger stored in db. Spans are exported to exporters when
// telemetry is enabled in cfg.
func New(logger log.Logger, db dbm.DB, cfg Config, exporters ...tracesdk.SpanExporter) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	storeKey := storetypes.NewKVStoreKey(hosttypes.StoreKey)
	cms := store.NewCommitMultiStore(db, logger, metrics.NewNoOpMetrics())
	cms.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, nil)
	if err := cms.LoadLatestVersion(); err != nil {
		return nil, err
	}

	tel, err := InitTelemetry(cfg.Telemetry, cfg.Network.Passphrase, exporters...)
	if err != nil {
		return nil, err
	}

	h := host.NewHost(storeKey,
		host.WithNetworkPassphrase(cfg.Network.Passphrase),
		host.WithTTLPolicy(cfg.Ledger),
		host.WithTracerProvider(tel.TracerProvider()),
	)

	app := &App{
		logger:    logger,
		db:        db,
		cms:       cms,
		host:      h,
		telemetry: tel,
		codes:     RegisterContracts(h),
		header: cmtproto.Header{
			ChainID: Name,
			Height:  cms.LastCommitID().Version + 1,
			Time:    time.Now().UTC(),
		},
	}
	logger.Info("ledger opened", "sequence", app.header.Height, "network", cfg.Network.Passphrase)
	return app, nil
}

// Host returns the contract runtime.
func (app *App) Host() *host.Host { return app.host }

// Telemetry returns the tracing setup of the ledger.
func (app *App) Telemetry() *Telemetry { return app.telemetry }

// Codes returns the hashes of the uploaded contract code.
func (app *App) Codes() Codes { return app.codes }

// Context returns a context on the open ledger.
func (app *App) Context() sdk.Context {
	return sdk.NewContext(app.cms, app.header, false, app.logger)
}

// SetLedgerTime sets the close time of the open ledger.
func (app *App) SetLedgerTime(t time.Time) {
	app.header.Time = t.UTC()
}

// Transact runs fn as one transaction signed by signers on the open ledger.
func (app *App) Transact(signers []hosttypes.Address, fn func(ctx context.Context) error) error {
	return app.host.Transact(app.Context(), signers, fn)
}

// Commit persists the open ledger and opens the next one, LedgerCloseTime
// later.
func (app *App) Commit() storetypes.CommitID {
	id := app.cms.Commit()
	app.header.Height++
	app.header.Time = app.header.Time.Add(LedgerCloseTime)
	return id
}

// DeployToken deploys a token administered by admin.
func (app *App) DeployToken(admin hosttypes.Address, decimals uint32, name, symbol string) (tokentypes.AdminClient, error) {
	var token tokentypes.AdminClient
	err := app.Transact([]hosttypes.Address{admin}, func(ctx context.Context) error {
		addr, err := app.host.DeployContract(ctx, admin, app.codes.Token, Salt("token/"+symbol))
		if err != nil {
			return err
		}
		token = tokentypes.NewAdminClient(app.host, addr)
		return token.Initialize(ctx, admin, decimals, name, symbol)
	})
	return token, err
}

// DeploySoroswap deploys a factory with admin as fee setter and a router
// bound to it.
func (app *App) DeploySoroswap(admin hosttypes.Address) (Deployment, error) {
	var d Deployment
	err := app.Transact([]hosttypes.Address{admin}, func(ctx context.Context) error {
		factoryAddr, err := app.host.DeployContract(ctx, admin, app.codes.Factory, Salt(factorytypes.WasmName))
		if err != nil {
			return err
		}
		routerAddr, err := app.host.DeployContract(ctx, admin, app.codes.Router, Salt(routertypes.WasmName))
		if err != nil {
			return err
		}

		d.Factory = factorytypes.NewClient(app.host, factoryAddr)
		d.Router = routertypes.NewClient(app.host, routerAddr)
		if err := d.Factory.Initialize(ctx, admin, app.codes.Pair); err != nil {
			return err
		}
		return d.Router.Initialize(ctx, factoryAddr)
	})
	if err != nil {
		return Deployment{}, err
	}
	app.logger.Info("soroswap deployed",
		"factory", d.Factory.Address.String(),
		"router", d.Router.Address.String(),
		"admin", admin.String(),
	)
	return d, nil
}

// Close flushes telemetry and closes the database.
func (app *App) Close() error {
	if err := app.telemetry.Shutdown(context.Background()); err != nil {
		return err
	}
	return app.db.Close()
}
