// Package postgres provides the GORM-backed unit of work that binds all
// aggregate repositories to a shared transaction.
package postgres

import (
	"context"

	"castlecare/internal/adapters/out/postgres/customerrepo"
	"castlecare/internal/adapters/out/postgres/orderrepo"
	"castlecare/internal/adapters/out/postgres/pricingrepo"
	"castlecare/internal/adapters/out/postgres/workerrepo"
	"castlecare/internal/core/domain/model/kernel"
	"castlecare/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates units of work bound to a shared database connection.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a new unit of work factory.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a fresh unit of work with no active transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// trackedAggregate pairs an aggregate with its identifier for change tracking.
type trackedAggregate struct {
	id        kernel.UUID
	aggregate any
}

// GormUnitOfWork implements the unit of work pattern using GORM transactions.
// Repository accessors bind to the active transaction when one exists,
// otherwise to the plain connection.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts a new transaction. Calling Begin on a unit of work with an
// active transaction is a no-op.
func (u *GormUnitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return nil
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	u.tx = tx
	return nil
}

// Commit commits the active transaction.
func (u *GormUnitOfWork) Commit(_ context.Context) error {
	if u.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := u.tx.Commit().Error
	u.tx = nil
	u.trackedAggregates = nil
	return err
}

// Rollback aborts the active transaction.
func (u *GormUnitOfWork) Rollback(_ context.Context) error {
	if u.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := u.tx.Rollback().Error
	u.tx = nil
	u.trackedAggregates = nil
	return err
}

// TrackAggregate records an aggregate that was written through this unit of work.
func (u *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	u.trackedAggregates = append(u.trackedAggregates, trackedAggregate{id: id, aggregate: aggregate})
}

// OrderRepository returns an order repository bound to this unit of work.
func (u *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(u.conn(), u)
}

// CustomerRepository returns a customer repository bound to this unit of work.
func (u *GormUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return customerrepo.NewGormCustomerRepository(u.conn(), u)
}

// WorkerRepository returns a worker repository bound to this unit of work.
func (u *GormUnitOfWork) WorkerRepository() ports.WorkerRepository {
	return workerrepo.NewGormWorkerRepository(u.conn(), u)
}

// PricingRepository returns a pricing repository bound to this unit of work.
func (u *GormUnitOfWork) PricingRepository() ports.PricingRepository {
	return pricingrepo.NewGormPricingRepository(u.conn(), u)
}

func (u *GormUnitOfWork) conn() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}
