package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"dockyard/internal/adapters/out/eventbus"
	"dockyard/internal/adapters/out/postgres"
	"dockyard/internal/core/application/policy"
	"dockyard/internal/core/application/usecases/commands"
	"dockyard/internal/core/application/usecases/queries"
	"dockyard/internal/core/ports"
	"dockyard/internal/pkg/cache"
	"dockyard/internal/pkg/inflight"

	"gorm.io/gorm"
)

const defaultCacheTTL = 30 * time.Second

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	procedures *postgres.GormStoreProcedures
	queryCache *cache.QueryCache
	bus        *eventbus.InMemoryEventBus
	tracker    *inflight.Tracker
	policy     policy.Policy
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	ttl := defaultCacheTTL
	if config.CacheTTL != "" {
		if parsed, err := time.ParseDuration(config.CacheTTL); err == nil {
			ttl = parsed
		}
	}

	root := CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		procedures: postgres.NewGormStoreProcedures(gormDB),
		queryCache: cache.NewQueryCache(ttl),
		bus:        eventbus.NewInMemoryEventBus(),
		tracker:    inflight.NewTracker(),
		policy:     policy.NewPolicy(),
		logger:     logger,
	}

	// Store change notifications drop the cached views for the changed
	// collection.
	root.bus.Subscribe(ports.EntityKindTruck, func(ports.ChangeEvent) {
		root.queryCache.InvalidatePattern("trucks:")
	})
	root.bus.Subscribe(ports.EntityKindException, func(ports.ChangeEvent) {
		root.queryCache.InvalidatePattern("exceptions:")
	})

	return root
}

// QueryCache exposes the shared read-model cache, used by the fallback
// refresh job.
func (c *CompositionRoot) QueryCache() *cache.QueryCache {
	return c.queryCache
}

// EventBus exposes the change event bus the postgres listener publishes to.
func (c *CompositionRoot) EventBus() ports.EventBus {
	return c.bus
}

// CreateChangeListener builds the NOTIFY bridge for the given database
// configuration.
func (c *CompositionRoot) CreateChangeListener(config Config) *postgres.ChangeListener {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser,
		config.DBPassword, config.DBName, config.DBSslMode,
	)
	return postgres.NewChangeListener(dsn, c.bus, c.logger)
}

func (c *CompositionRoot) CreateScheduleTruckCommandHandler() commands.ScheduleTruckCommandHandler {
	var f commands.TruckUoWFactory = FuncTruckUoWFactory(func() commands.TruckUoW {
		return c.uowFactory.Create()
	})
	return commands.NewScheduleTruckCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignRampCommandHandler() commands.AssignRampCommandHandler {
	var f commands.TruckUoWFactory = FuncTruckUoWFactory(func() commands.TruckUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignRampCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateMarkArrivedCommandHandler() commands.MarkArrivedCommandHandler {
	var f commands.TruckUoWFactory = FuncTruckUoWFactory(func() commands.TruckUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkArrivedCommandHandler(f, c.procedures, c.tracker, c.policy)
}

func (c *CompositionRoot) CreateStartWorkCommandHandler() commands.StartWorkCommandHandler {
	var f commands.TruckUoWFactory = FuncTruckUoWFactory(func() commands.TruckUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartWorkCommandHandler(f, c.tracker, c.policy)
}

func (c *CompositionRoot) CreateMarkDoneCommandHandler() commands.MarkDoneCommandHandler {
	var f commands.CompletionUoWFactory = FuncCompletionUoWFactory(func() commands.CompletionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkDoneCommandHandler(f, c.procedures, c.tracker, c.policy, c.logger)
}

func (c *CompositionRoot) CreateRescheduleTruckCommandHandler() commands.RescheduleTruckCommandHandler {
	var f commands.TruckUoWFactory = FuncTruckUoWFactory(func() commands.TruckUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRescheduleTruckCommandHandler(f, c.procedures, c.policy)
}

func (c *CompositionRoot) CreateDeleteTruckCommandHandler() commands.DeleteTruckCommandHandler {
	var f commands.TruckUoWFactory = FuncTruckUoWFactory(func() commands.TruckUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteTruckCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateReportExceptionCommandHandler() commands.ReportExceptionCommandHandler {
	var f commands.ExceptionUoWFactory = FuncExceptionUoWFactory(func() commands.ExceptionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReportExceptionCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateUpdateExceptionStatusCommandHandler() commands.UpdateExceptionStatusCommandHandler {
	var f commands.ExceptionUoWFactory = FuncExceptionUoWFactory(func() commands.ExceptionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateExceptionStatusCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateSweepOverdueTrucksCommandHandler() commands.SweepOverdueTrucksCommandHandler {
	var f commands.TruckUoWFactory = FuncTruckUoWFactory(func() commands.TruckUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSweepOverdueTrucksCommandHandler(f)
}

func (c *CompositionRoot) CreateGetRampBoardQueryHandler() queries.GetRampBoardQueryHandler {
	return queries.NewGetRampBoardQueryHandler(c.gormDB, c.queryCache)
}

func (c *CompositionRoot) CreateGetTrucksForDateQueryHandler() queries.GetTrucksForDateQueryHandler {
	return queries.NewGetTrucksForDateQueryHandler(c.gormDB, c.queryCache)
}

func (c *CompositionRoot) CreateGetExceptionSummaryQueryHandler() queries.GetExceptionSummaryQueryHandler {
	return queries.NewGetExceptionSummaryQueryHandler(c.gormDB, c.queryCache)
}

func (c *CompositionRoot) CreateGetTruckPhotoComplianceQueryHandler() queries.GetTruckPhotoComplianceQueryHandler {
	return queries.NewGetTruckPhotoComplianceQueryHandler(c.procedures)
}

type FuncTruckUoWFactory func() commands.TruckUoW

func (f FuncTruckUoWFactory) Create() commands.TruckUoW {
	return f()
}

type FuncExceptionUoWFactory func() commands.ExceptionUoW

func (f FuncExceptionUoWFactory) Create() commands.ExceptionUoW {
	return f()
}

type FuncCompletionUoWFactory func() commands.CompletionUoW

func (f FuncCompletionUoWFactory) Create() commands.CompletionUoW {
	return f()
}
