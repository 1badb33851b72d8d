package cmd

import (
	"redbank/core"
	"redbank/pkg/resthttp"
	"redbank/service/address"
	"redbank/service/incentives"
	"redbank/service/ledger"
	"redbank/service/oracle"
	addressstore "redbank/store/address"
	"redbank/store/event"
	ledgerstore "redbank/store/ledger"
	"redbank/store/price"
	"time"

	"github.com/fox-one/pkg/store/db"
	// postgres driver
	_ "github.com/lib/pq"
)

func provideDatabase() *db.DB {
	return db.MustOpen(cfg.DB)
}

func provideConfig() *core.Config {
	return &cfg
}

func provideSystem() *core.System {
	c := provideConfig()
	return &core.System{
		Owner:          c.App.Owner,
		EmergencyOwner: c.App.EmergencyOwner,
		Admins:         c.Admins,
		BaseDenom:      c.App.BaseDenom,
		CloseFactor:    c.App.CloseFactor,
		ClampPolicy:    core.ClampPolicy(c.App.LiquidationClampPolicy),
		Location:       c.App.Location,
		Version:        version,
	}
}

// ---------------store-----------------------------------------

func provideLedgerStore(db *db.DB) core.ILedgerStore {
	return ledgerstore.New(db)
}

func provideEventStore(db *db.DB) core.IEventStore {
	return event.New(db)
}

func providePriceStore(db *db.DB) core.IPriceStore {
	return price.New(db)
}

func provideAddressStore(db *db.DB) core.IAddressStore {
	return addressstore.Cache(addressstore.New(db), time.Minute)
}

// ------------------service------------------------------------

func provideAddressRegistry(system *core.System, addresses core.IAddressStore) *address.Registry {
	return address.New(system, addresses)
}

func provideRemoteOracle(addresses core.IAddressProvider) *oracle.Remote {
	resthttp.SetTimeout(time.Duration(cfg.Oracle.Timeout) * time.Second)
	return oracle.NewRemote(cfg.Oracle.EndPoint, addresses)
}

func provideOracle(system *core.System, prices core.IPriceStore, addresses core.IAddressProvider) core.IOracle {
	if cfg.Oracle.Source == "remote" {
		return provideRemoteOracle(addresses)
	}

	return oracle.NewFixed(system.BaseDenom, prices)
}

func provideIncentivesService(addresses core.IAddressProvider) core.IIncentivesService {
	return incentives.New(addresses)
}

func provideLedger(system *core.System, store core.ILedgerStore, oracle core.IOracle, addresses core.IAddressProvider) core.ILedger {
	return ledger.New(system, store, oracle, addresses)
}

// ledger wired against the database with the configured oracle
func provideLedgerService(database *db.DB) (core.ILedger, *address.Registry) {
	system := provideSystem()
	registry := provideAddressRegistry(system, provideAddressStore(database))
	prices := providePriceStore(database)

	return provideLedger(system, provideLedgerStore(database), provideOracle(system, prices, registry), registry), registry
}
