package queries_test

import (
	"context"
	"testing"
	"time"

	"dockyard/internal/adapters/out/postgres/exceptionrepo"
	"dockyard/internal/core/application/usecases/queries"
	"dockyard/internal/core/domain/model/exception"
	"dockyard/internal/core/domain/model/kernel"
	"dockyard/internal/core/domain/model/truck"
	"dockyard/internal/pkg/cache"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetExceptionSummaryQueryHandlerTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	queryCache *cache.QueryCache
	repository *exceptionrepo.GormExceptionRepository
}

func (suite *GetExceptionSummaryQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&exceptionrepo.ExceptionDTO{}))

	suite.repository = exceptionrepo.NewGormExceptionRepository(db, nopTracker{})
}

func (suite *GetExceptionSummaryQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE truck_exceptions").Error)
	suite.queryCache = cache.NewQueryCache(time.Minute)
}

func (suite *GetExceptionSummaryQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetExceptionSummaryQueryHandlerTestSuite) seedException(status exception.Status) {
	record, err := exception.NewException(
		kernel.NewUUID(), kernel.NewUUID(), exception.TypeDelay,
		"driver delayed at the border", truck.PriorityNormal, nil, kernel.NewUUID())
	suite.Require().NoError(err)

	if status != exception.StatusPending {
		var resolvedBy *kernel.UUID
		if status == exception.StatusResolved {
			resolver := kernel.NewUUID()
			resolvedBy = &resolver
		}
		suite.Require().NoError(record.TransitionTo(
			status, resolvedBy, time.Date(2026, 1, 30, 12, 0, 0, 0, time.UTC)))
	}

	suite.Require().NoError(suite.repository.Add(context.Background(), record))
}

func (suite *GetExceptionSummaryQueryHandlerTestSuite) TestHandle_EmptyTable_AllZero() {
	handler := queries.NewGetExceptionSummaryQueryHandler(suite.db, suite.queryCache)

	summary, err := handler.Handle(context.Background(), queries.NewGetExceptionSummaryQuery())

	suite.Require().NoError(err)
	suite.Equal(queries.GetExceptionSummaryQueryResponse{}, summary)
}

func (suite *GetExceptionSummaryQueryHandlerTestSuite) TestHandle_CountsPerStatus() {
	suite.seedException(exception.StatusPending)
	suite.seedException(exception.StatusPending)
	suite.seedException(exception.StatusInProgress)
	suite.seedException(exception.StatusEscalated)
	suite.seedException(exception.StatusResolved)

	handler := queries.NewGetExceptionSummaryQueryHandler(suite.db, suite.queryCache)
	summary, err := handler.Handle(context.Background(), queries.NewGetExceptionSummaryQuery())

	suite.Require().NoError(err)
	suite.Equal(2, summary.Pending)
	suite.Equal(1, summary.InProgress)
	suite.Equal(1, summary.Escalated)
	suite.Equal(1, summary.Resolved)
	suite.Equal(4, summary.Open)
}

func (suite *GetExceptionSummaryQueryHandlerTestSuite) TestHandle_SecondCallServedFromCache() {
	suite.seedException(exception.StatusPending)

	handler := queries.NewGetExceptionSummaryQueryHandler(suite.db, suite.queryCache)

	first, err := handler.Handle(context.Background(), queries.NewGetExceptionSummaryQuery())
	suite.Require().NoError(err)
	suite.Equal(1, first.Pending)

	suite.seedException(exception.StatusPending)

	cached, err := handler.Handle(context.Background(), queries.NewGetExceptionSummaryQuery())
	suite.Require().NoError(err)
	suite.Equal(1, cached.Pending, "second read comes from the cached summary")

	suite.queryCache.InvalidatePattern("exceptions:")

	refreshed, err := handler.Handle(context.Background(), queries.NewGetExceptionSummaryQuery())
	suite.Require().NoError(err)
	suite.Equal(2, refreshed.Pending)
}

func TestGetExceptionSummaryQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetExceptionSummaryQueryHandlerTestSuite))
}
