// Package worker contains the Worker aggregate: a service provider with a set
// of qualification roles, an approval lifecycle and an availability flag.
package worker

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"castlecare/internal/core/domain/model/kernel"
	"castlecare/internal/core/domain/model/pricing"
	"castlecare/internal/pkg/errs"
)

// ErrWorkerIsNotConstructed is returned when a Worker instance was not created
// through NewWorker or RestoreWorker.
var ErrWorkerIsNotConstructed = errors.New("Worker must be created via NewWorker constructor")

const minWorkerAge = 18

// Status is the worker's lifecycle state. Workers start PENDING and must be
// APPROVED before they can set availability or accept orders.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
)

// Validate checks that the status is one of the supported values.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusApproved:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("workerStatus",
			fmt.Errorf("%q is not a valid worker status", string(s)))
	}
}

func (s Status) String() string {
	return string(s)
}

// Worker is a service provider.
//
// Invariants:
//   - age is at least 18
//   - the role set is non-empty; roles are service types the worker may serve
//   - availability can only be toggled once the worker is APPROVED
//   - email uniqueness across all workers is enforced by the repository
type Worker struct {
	id              kernel.UUID
	firstName       string
	lastName        string
	age             int
	street          string
	city            string
	state           string
	zip             string
	phone           string
	email           string
	roles           map[pricing.ServiceType]struct{}
	availability    bool
	status          Status
	payoutAccountID *string
	createdAt       time.Time

	isConstructed bool
}

// NewWorker creates a validated worker in PENDING status with availability
// off. Availability stays off until the worker is approved.
func NewWorker(
	id kernel.UUID,
	firstName, lastName string,
	age int,
	street, city, state, zip string,
	phone, email string,
	roles []pricing.ServiceType,
) (*Worker, error) {
	w := &Worker{
		status:        StatusPending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		w.setID(id),
		w.setName(firstName, lastName),
		w.setAge(age),
		w.setAddress(street, city, state, zip),
		w.setPhone(phone),
		w.setEmail(email),
		w.setRoles(roles),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// RestoreWorker reconstructs a worker from persistence.
func RestoreWorker(
	id kernel.UUID,
	firstName, lastName string,
	age int,
	street, city, state, zip string,
	phone, email string,
	roles []pricing.ServiceType,
	availability bool,
	status Status,
	payoutAccountID *string,
	createdAt time.Time,
) (*Worker, error) {
	w, err := NewWorker(id, firstName, lastName, age, street, city, state, zip, phone, email, roles)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	w.availability = availability
	w.status = status
	w.payoutAccountID = payoutAccountID
	w.createdAt = createdAt
	return w, nil
}

// Validate ensures the worker was created through a constructor.
func (w *Worker) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWorkerIsNotConstructed
	}
	return nil
}

func (w *Worker) ID() kernel.UUID {
	return w.id
}

func (w *Worker) FirstName() string {
	return w.firstName
}

func (w *Worker) LastName() string {
	return w.lastName
}

func (w *Worker) Age() int {
	return w.age
}

func (w *Worker) Street() string {
	return w.street
}

func (w *Worker) City() string {
	return w.city
}

func (w *Worker) State() string {
	return w.state
}

func (w *Worker) Zip() string {
	return w.zip
}

func (w *Worker) Phone() string {
	return w.phone
}

func (w *Worker) Email() string {
	return w.email
}

// Roles returns the worker's qualification roles in a stable, sorted order.
func (w *Worker) Roles() []pricing.ServiceType {
	roles := make([]pricing.ServiceType, 0, len(w.roles))
	for role := range w.roles {
		roles = append(roles, role)
	}
	for i := 0; i < len(roles); i++ {
		for j := i + 1; j < len(roles); j++ {
			if roles[j] < roles[i] {
				roles[i], roles[j] = roles[j], roles[i]
			}
		}
	}
	return roles
}

// HasRole reports whether the worker is qualified for the given service type.
func (w *Worker) HasRole(serviceType pricing.ServiceType) bool {
	_, ok := w.roles[serviceType]
	return ok
}

func (w *Worker) Availability() bool {
	return w.availability
}

func (w *Worker) Status() Status {
	return w.status
}

func (w *Worker) PayoutAccountID() *string {
	return w.payoutAccountID
}

func (w *Worker) CreatedAt() time.Time {
	return w.createdAt
}

// Approve moves the worker to APPROVED. Approving an already approved worker
// is a no-op.
func (w *Worker) Approve() {
	w.status = StatusApproved
}

// SetAvailability toggles the availability flag. Only approved workers may
// set availability.
func (w *Worker) SetAvailability(available bool) error {
	if w.status != StatusApproved {
		return errs.NewIllegalStateError("worker must be approved to update availability")
	}
	w.availability = available
	return nil
}

// SetPayoutAccountID attaches the worker's payout account identifier.
func (w *Worker) SetPayoutAccountID(accountID string) error {
	if accountID == "" {
		return errs.NewValueIsRequiredError("payoutAccountId")
	}
	w.payoutAccountID = &accountID
	return nil
}

// EnsureCanAccept checks the assignment preconditions for an order of the
// given service type: the worker must be APPROVED, currently available, and
// qualified for the service type. Approval and availability violations are
// illegal-state errors; a missing qualification is an invalid argument.
func (w *Worker) EnsureCanAccept(serviceType pricing.ServiceType) error {
	if w.status != StatusApproved {
		return errs.NewIllegalStateError("worker must be approved to accept orders")
	}
	if !w.availability {
		return errs.NewIllegalStateError("worker must be available to accept orders")
	}
	if !w.HasRole(serviceType) {
		return errs.NewValueIsInvalidErrorWithCause("workerId",
			fmt.Errorf("worker does not have the %s role", serviceType))
	}
	return nil
}

func (w *Worker) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Worker) setName(firstName, lastName string) error {
	if firstName == "" {
		return errs.NewValueIsRequiredError("firstName")
	}
	if lastName == "" {
		return errs.NewValueIsRequiredError("lastName")
	}
	w.firstName = firstName
	w.lastName = lastName
	return nil
}

func (w *Worker) setAge(age int) error {
	if age < minWorkerAge {
		return errs.NewValueIsOutOfRangeError("age", age, minWorkerAge, 120)
	}
	w.age = age
	return nil
}

func (w *Worker) setAddress(street, city, state, zip string) error {
	switch {
	case street == "":
		return errs.NewValueIsRequiredError("street")
	case city == "":
		return errs.NewValueIsRequiredError("city")
	case state == "":
		return errs.NewValueIsRequiredError("state")
	case zip == "":
		return errs.NewValueIsRequiredError("zip")
	}

	w.street = street
	w.city = city
	w.state = state
	w.zip = zip
	return nil
}

func (w *Worker) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	w.phone = phone
	return nil
}

func (w *Worker) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause("email",
			errors.New("email must contain @"))
	}
	w.email = strings.ToLower(email)
	return nil
}

func (w *Worker) setRoles(roles []pricing.ServiceType) error {
	if len(roles) == 0 {
		return errs.NewValueIsRequiredError("roles")
	}

	set := make(map[pricing.ServiceType]struct{}, len(roles))
	for _, role := range roles {
		if err := role.Validate(); err != nil {
			return err
		}
		set[role] = struct{}{}
	}

	w.roles = set
	return nil
}
