package pricing

import (
	"fmt"
	"strings"

	"castlecare/internal/pkg/errs"
)

// ServiceType identifies the kind of home service a plan covers.
// It is stored as its string representation and doubles as a worker
// qualification role.
type ServiceType string

const (
	Lawncare ServiceType = "LAWNCARE"
	Laundry  ServiceType = "LAUNDRY"
	Lighting ServiceType = "LIGHTING"
)

// ServiceTypeFromString parses a service type from external input,
// case-insensitively. Returns a ValueIsInvalidError for anything outside the
// supported set.
func ServiceTypeFromString(s string) (ServiceType, error) {
	st := ServiceType(strings.ToUpper(strings.TrimSpace(s)))
	if err := st.Validate(); err != nil {
		return "", err
	}
	return st, nil
}

// Validate checks that the service type is one of the supported values.
// An unsupported service type is always a hard failure, never silently
// accepted.
func (s ServiceType) Validate() error {
	switch s {
	case Lawncare, Laundry, Lighting:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("serviceType",
			fmt.Errorf("%q is not a supported service type", string(s)))
	}
}

func (s ServiceType) String() string {
	return string(s)
}
