package postgres_test

import (
	"context"
	"testing"
	"time"

	"castlecare/internal/adapters/out/postgres"
	"castlecare/internal/adapters/out/postgres/customerrepo"
	"castlecare/internal/adapters/out/postgres/orderrepo"
	"castlecare/internal/adapters/out/postgres/pricingrepo"
	"castlecare/internal/adapters/out/postgres/workerrepo"
	"castlecare/internal/core/domain/model/customer"
	"castlecare/internal/core/domain/model/kernel"
	"castlecare/internal/core/domain/model/pricing"
	"castlecare/internal/core/domain/model/worker"
	"castlecare/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction boundary behavior
// across all aggregate repositories using a PostgreSQL container.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&customerrepo.AddressDTO{},
		&workerrepo.WorkerDTO{},
		&pricingrepo.PricingOptionDTO{},
		&orderrepo.OrderDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE orders, addresses, customers, workers, pricing_options").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testCustomer := suite.createTestCustomer()
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, testCustomer))

	testWorker := suite.createTestWorker()
	suite.Require().NoError(uow.WorkerRepository().Add(ctx, testWorker))

	suite.Require().NoError(uow.Commit(ctx))

	// Both writes are visible outside the transaction.
	verify := suite.factory.Create()
	loadedCustomer, err := verify.CustomerRepository().Get(ctx, testCustomer.ID())
	suite.Require().NoError(err)
	suite.Equal(testCustomer.Email(), loadedCustomer.Email())
	suite.Require().Len(loadedCustomer.Addresses(), 1)

	loadedWorker, err := verify.WorkerRepository().Get(ctx, testWorker.ID())
	suite.Require().NoError(err)
	suite.Equal(testWorker.Email(), loadedWorker.Email())
	suite.Equal(testWorker.Roles(), loadedWorker.Roles())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testCustomer := suite.createTestCustomer()
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, testCustomer))

	suite.Require().NoError(uow.Rollback(ctx))

	verify := suite.factory.Create()
	_, err := verify.CustomerRepository().Get(ctx, testCustomer.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_Fails() {
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRemoveAddress_DeletesRow() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testCustomer := suite.createTestCustomer()
	second, err := customer.NewAddress(
		kernel.NewUUID(), testCustomer.ID(), "12 Oak Ln", "Springfield", "IL", "62704")
	suite.Require().NoError(err)
	suite.Require().NoError(testCustomer.AddAddress(second))

	suite.Require().NoError(uow.CustomerRepository().Add(ctx, testCustomer))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(testCustomer.RemoveAddress(second.ID()))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.CustomerRepository().Update(ctx, testCustomer))
	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()
	loaded, err := verify.CustomerRepository().Get(ctx, testCustomer.ID())
	suite.Require().NoError(err)
	suite.Require().Len(loaded.Addresses(), 1)
	suite.False(loaded.Addresses()[0].ID().IsEqual(second.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestGetAddress_ReportsOwner() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testCustomer := suite.createTestCustomer()
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, testCustomer))
	suite.Require().NoError(uow.Commit(ctx))

	addressID := testCustomer.Addresses()[0].ID()

	verify := suite.factory.Create()
	loaded, err := verify.CustomerRepository().GetAddress(ctx, addressID)
	suite.Require().NoError(err)
	suite.True(loaded.BelongsTo(testCustomer.ID()))
	suite.False(loaded.BelongsTo(kernel.NewUUID()))

	_, err = verify.CustomerRepository().GetAddress(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestGetAllAvailable_FiltersByRoleAndApproval() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	qualified := suite.createTestWorker()
	qualified.Approve()
	suite.Require().NoError(qualified.SetAvailability(true))
	suite.Require().NoError(uow.WorkerRepository().Add(ctx, qualified))

	unapproved := suite.createTestWorker()
	suite.Require().NoError(uow.WorkerRepository().Add(ctx, unapproved))

	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()
	available, err := verify.WorkerRepository().GetAllAvailable(ctx, pricing.Lawncare)
	suite.Require().NoError(err)
	suite.Require().Len(available, 1)
	suite.True(available[0].ID().IsEqual(qualified.ID()))

	none, err := verify.WorkerRepository().GetAllAvailable(ctx, pricing.Laundry)
	suite.Require().NoError(err)
	suite.Empty(none)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestPricingOptions_RoundTripFeatures() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	plan, err := pricing.NewPricingOption(
		kernel.NewUUID(),
		pricing.Lighting,
		"Holiday Premium",
		"Full roofline and trees",
		decimal.NewFromInt(499),
		pricing.OneTime,
		[]string{"Roofline", "Trees", "Takedown included"},
		pricing.SizeRangeLightingMedium,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.PricingRepository().Add(ctx, plan))
	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()
	plans, err := verify.PricingRepository().GetAllByServiceTypeAndBillingPeriod(
		ctx, pricing.Lighting, pricing.OneTime)
	suite.Require().NoError(err)
	suite.Require().Len(plans, 1)
	suite.Equal([]string{"Roofline", "Trees", "Takedown included"}, plans[0].Features())
	suite.Equal(pricing.SizeRangeLightingMedium, plans[0].SizeRange())
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestCustomer() *customer.Customer {
	id := kernel.NewUUID()
	c, err := customer.NewCustomer(id, "Jane", "Doe", uniqueEmail(), "+15551234567")
	suite.Require().NoError(err)

	address, err := customer.NewAddress(
		kernel.NewUUID(), id, "42 Main St", "Springfield", "IL", "62701")
	suite.Require().NoError(err)
	suite.Require().NoError(c.AddAddress(address))
	return c
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestWorker() *worker.Worker {
	w, err := worker.NewWorker(
		kernel.NewUUID(),
		"Sam", "Smith",
		29,
		"7 Elm St", "Springfield", "IL", "62702",
		"+15557654321",
		uniqueEmail(),
		[]pricing.ServiceType{pricing.Lawncare, pricing.Lighting},
	)
	suite.Require().NoError(err)
	return w
}

func uniqueEmail() string {
	return kernel.NewUUID().String() + "@example.com"
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
