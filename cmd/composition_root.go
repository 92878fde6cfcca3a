package cmd

import (
	"log/slog"
	"time"

	"dietboard/internal/adapters/out/postgres"
	"dietboard/internal/adapters/out/postgres/orderrepo"
	"dietboard/internal/core/application/usecases/commands"
	"dietboard/internal/core/application/usecases/queries"
	"dietboard/internal/core/domain/model/kernel"
	"dietboard/internal/core/ports"
	"dietboard/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into application handlers. Handlers are
// created per call; the root only holds the shared connections.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.OrderEventPublisher
}

// NewCompositionRoot builds the root from the shared database connection
// and the change-notification publisher. The publisher may be nil when no
// broker is configured; commands then skip notification.
func NewCompositionRoot(_ Config, gormDB *gorm.DB, publisher ports.OrderEventPublisher) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
	}
}

func (c *CompositionRoot) CreateCreatePrescriptionCommandHandler() commands.CreatePrescriptionCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePrescriptionCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateGetBoardQueryHandler() queries.GetBoardQueryHandler {
	return queries.NewGetBoardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryQueueQueryHandler() queries.GetDeliveryQueueQueryHandler {
	return queries.NewGetDeliveryQueueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPatientsQueryHandler() queries.GetPatientsQueryHandler {
	return queries.NewGetPatientsQueryHandler(c.gormDB)
}

// CreateJobManager builds the background job manager. The overdue sweep
// reads through a repository outside any unit of work; it never writes.
func (c *CompositionRoot) CreateJobManager(overdueThreshold time.Duration, logger *slog.Logger) *jobs.JobManager {
	repo := orderrepo.NewGormOrderRepository(c.gormDB, noopTracker{})
	return jobs.NewJobManager(repo, overdueThreshold, logger)
}

// noopTracker satisfies the repositories' tracking dependency for reads
// that happen outside a unit of work.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
