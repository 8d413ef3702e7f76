package bootstrap

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/osse101/Minefut_Go/internal/catalog"
	"github.com/osse101/Minefut_Go/internal/concurrency"
	"github.com/osse101/Minefut_Go/internal/config"
	"github.com/osse101/Minefut_Go/internal/daily"
	"github.com/osse101/Minefut_Go/internal/defi"
	"github.com/osse101/Minefut_Go/internal/engine"
	"github.com/osse101/Minefut_Go/internal/event"
	"github.com/osse101/Minefut_Go/internal/gametime"
	"github.com/osse101/Minefut_Go/internal/inventory"
	"github.com/osse101/Minefut_Go/internal/lootbox"
	"github.com/osse101/Minefut_Go/internal/repository"
	"github.com/osse101/Minefut_Go/internal/reward"
	"github.com/osse101/Minefut_Go/internal/sbc"
	"github.com/osse101/Minefut_Go/internal/seasonpass"
	"github.com/osse101/Minefut_Go/internal/shop"
	"github.com/osse101/Minefut_Go/internal/wallet"
	"github.com/osse101/Minefut_Go/internal/xp"
)

// App is the wired engine and what it was built from
type App struct {
	Engine  *engine.Engine
	Catalog *catalog.Catalog
	Store   repository.DocumentStore
	Bus     event.Bus
}

// AppOptions overrides the runtime sources of an App
type AppOptions struct {
	// Clock defaults to the wall clock
	Clock gametime.Clock
	// Rand seeds pack generation; nil uses a random seed
	Rand *rand.Rand
}

// LoadCatalog loads and validates the embedded game content
func LoadCatalog() (*catalog.Catalog, error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	slog.Info(LogMsgCatalogLoaded,
		LogFieldPlayers, cat.Players().Len(),
		LogFieldChallenges, len(cat.Challenges()),
		LogFieldTasks, len(cat.Tasks()),
		LogFieldPasses, len(cat.Passes()))
	return cat, nil
}

// BuildApp wires every service over store and returns the engine facade
func BuildApp(cfg *config.Config, store repository.DocumentStore, opts AppOptions) (*App, error) {
	cat, err := LoadCatalog()
	if err != nil {
		return nil, err
	}
	cal, err := gametime.LoadCalendar(cfg.GameTimezone, cfg.DefiResetHour)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCalendar, err)
	}
	clock := opts.Clock
	if clock == nil {
		clock = gametime.NewRealClock()
	}

	bus := InitializeEventSystem()
	locks := concurrency.NewLockManager()

	var packOpts []lootbox.Option
	if opts.Rand != nil {
		packOpts = append(packOpts, lootbox.WithRand(opts.Rand))
	}
	packs := lootbox.NewService(cat, cat.Players(), packOpts...)

	var svc engine.Services
	svc.Inventory = inventory.NewService(store, locks, bus)
	svc.Wallet = wallet.NewService(store, locks, bus, wallet.WithStartingBalance(cfg.StartingBalance))
	svc.XP = xp.NewService(store, locks, bus)
	rewards := reward.NewApplier(svc.Inventory, svc.Wallet, svc.XP)

	svc.SBC = sbc.NewService(store, locks, cat, svc.Inventory, packs, bus)
	svc.SeasonPass = seasonpass.NewService(store, locks, cat, svc.XP, rewards, bus)
	svc.Defi = defi.NewService(store, locks, cat,
		defi.Resolvers{Collection: svc.Inventory, Passes: svc.SeasonPass, Challenges: svc.SBC},
		rewards, clock, cal, bus)
	svc.Daily = daily.NewService(store, locks, cat, rewards, clock, cal, bus)
	svc.Shop = shop.NewService(cat, svc.Wallet, svc.Inventory, svc.XP, packs, bus)

	RegisterEventHandlers(EventHandlerDependencies{EventBus: bus, DefiService: svc.Defi})

	eng := engine.New(store, locks, svc, bus, engine.WithFeatureGates(cfg.EnforceFeatureGates))
	return &App{Engine: eng, Catalog: cat, Store: store, Bus: bus}, nil
}
