package order

import (
	"errors"
	"time"

	"castlecare/internal/core/domain/model/kernel"
	"castlecare/internal/core/domain/model/pricing"
	"castlecare/internal/core/domain/model/worker"
	"castlecare/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root for a booked service.
//
// Invariants:
//   - the referenced address belongs to the referencing customer (checked by
//     the lifecycle engine, which resolves both entities)
//   - serviceType equals the referenced plan's service type
//   - price and billing period are snapshots taken from the plan at creation
//     and never change afterwards
//   - a worker reference, once set, is never cleared
//   - COMPLETED is terminal
//
// The version field is an optimistic-concurrency token: concurrent writes to
// the same order are serialized by the repository, and the loser receives a
// version conflict instead of silently overwriting.
type Order struct {
	id              kernel.UUID
	customerID      kernel.UUID
	addressID       kernel.UUID
	pricingOptionID kernel.UUID
	workerID        *kernel.UUID
	serviceType     pricing.ServiceType
	date            time.Time
	timeSlot        string
	price           decimal.Decimal
	billingPeriod   pricing.BillingPeriod
	status          Status
	proofRef        *string
	createdAt       time.Time
	version         int64

	isConstructed bool
}

// NewOrder creates a new PENDING order booking the given plan. The price and
// billing period are copied from the plan so later plan edits do not affect
// this order. The requested service type must match the plan's.
func NewOrder(
	id, customerID, addressID kernel.UUID,
	plan *pricing.PricingOption,
	serviceType pricing.ServiceType,
	date time.Time,
	timeSlot string,
) (*Order, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		status:        StatusPending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setAddressID(addressID),
		o.setServiceType(serviceType),
		o.setDate(date),
		o.setTimeSlot(timeSlot),
	); err != nil {
		return nil, err
	}

	if serviceType != plan.ServiceType() {
		return nil, errs.NewValueIsInvalidErrorWithCause("serviceType",
			errors.New("service type does not match pricing option"))
	}

	o.pricingOptionID = plan.ID()
	o.price = plan.Price()
	o.billingPeriod = plan.BillingPeriod()
	return o, nil
}

// RestoreOrder reconstructs an order from persistence.
func RestoreOrder(
	id, customerID, addressID, pricingOptionID kernel.UUID,
	workerID *kernel.UUID,
	serviceType pricing.ServiceType,
	date time.Time,
	timeSlot string,
	price decimal.Decimal,
	billingPeriod pricing.BillingPeriod,
	status Status,
	proofRef *string,
	createdAt time.Time,
	version int64,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setAddressID(addressID),
		o.setServiceType(serviceType),
		o.setDate(date),
		o.setTimeSlot(timeSlot),
		pricingOptionID.Validate(),
		status.Validate(),
		billingPeriod.Validate(),
	); err != nil {
		return nil, err
	}

	if workerID != nil {
		if err := workerID.Validate(); err != nil {
			return nil, err
		}
	}

	o.pricingOptionID = pricingOptionID
	o.workerID = workerID
	o.price = price
	o.billingPeriod = billingPeriod
	o.status = status
	o.proofRef = proofRef
	o.createdAt = createdAt
	o.version = version
	return o, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) AddressID() kernel.UUID {
	return o.addressID
}

func (o *Order) PricingOptionID() kernel.UUID {
	return o.pricingOptionID
}

// WorkerID returns the assigned worker's id, or nil if no worker is assigned.
func (o *Order) WorkerID() *kernel.UUID {
	return o.workerID
}

func (o *Order) ServiceType() pricing.ServiceType {
	return o.serviceType
}

func (o *Order) Date() time.Time {
	return o.date
}

func (o *Order) TimeSlot() string {
	return o.timeSlot
}

// Price returns the price snapshot taken from the plan at creation.
func (o *Order) Price() decimal.Decimal {
	return o.price
}

// BillingPeriod returns the billing-period snapshot taken at creation.
func (o *Order) BillingPeriod() pricing.BillingPeriod {
	return o.billingPeriod
}

func (o *Order) Status() Status {
	return o.status
}

// ProofRef returns the proof-of-completion reference, or nil if none attached.
func (o *Order) ProofRef() *string {
	return o.proofRef
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Version returns the optimistic-concurrency token as last loaded.
func (o *Order) Version() int64 {
	return o.version
}

// Accept transitions the order to ACCEPTED, assigning the given worker when
// one is provided. Accepting without a worker is permitted and leaves the
// worker reference unset.
//
// With a worker the preconditions are: the worker is APPROVED, currently
// available, and qualified for the order's service type; and the order does
// not already reference a different worker (assignment is one-way and never
// cleared). On any precondition failure the order is left unchanged.
func (o *Order) Accept(w *worker.Worker) error {
	if err := o.status.ValidateTransition(StatusAccepted); err != nil {
		return err
	}

	if w == nil {
		o.status = StatusAccepted
		return nil
	}

	if err := w.Validate(); err != nil {
		return err
	}
	if err := w.EnsureCanAccept(o.serviceType); err != nil {
		return err
	}
	if o.workerID != nil && !o.workerID.IsEqual(w.ID()) {
		return errs.NewIllegalStateError("order already has a worker assigned")
	}

	id := w.ID()
	o.workerID = &id
	o.status = StatusAccepted
	return nil
}

// ChangeStatus moves the order to the caller-specified target status without
// touching the worker reference. Used for IN_PROGRESS and COMPLETED, which
// carry no precondition beyond the order existing and not being terminal.
func (o *Order) ChangeStatus(target Status) error {
	if err := o.status.ValidateTransition(target); err != nil {
		return err
	}
	o.status = target
	return nil
}

// AddProof attaches a proof-of-completion reference. The order must currently
// be IN_PROGRESS.
func (o *Order) AddProof(proofRef string) error {
	if proofRef == "" {
		return errs.NewValueIsRequiredError("proofRef")
	}
	if o.status != StatusInProgress {
		return errs.NewIllegalStateError("order must be in progress to add proof")
	}
	o.proofRef = &proofRef
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}
	o.addressID = addressID
	return nil
}

func (o *Order) setServiceType(serviceType pricing.ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}
	o.serviceType = serviceType
	return nil
}

func (o *Order) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	o.date = date
	return nil
}

func (o *Order) setTimeSlot(timeSlot string) error {
	if timeSlot == "" {
		return errs.NewValueIsRequiredError("timeSlot")
	}
	o.timeSlot = timeSlot
	return nil
}
