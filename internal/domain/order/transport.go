package order

import (
	"strings"

	"github.com/agrox/backend/internal/domain/shared"
)

// TransportType represents how an order is delivered
type TransportType string

const (
	TransportPickup  TransportType = "PICKUP"
	TransportTruck   TransportType = "TRUCK"
	TransportCourier TransportType = "COURIER"
)

// allTransportTypes is the closed set, in declaration order
var allTransportTypes = []TransportType{
	TransportPickup,
	TransportTruck,
	TransportCourier,
}

// IsValid checks if the value is a member of the enumeration
func (t TransportType) IsValid() bool {
	switch t {
	case TransportPickup, TransportTruck, TransportCourier:
		return true
	}
	return false
}

// String returns the string representation of TransportType
func (t TransportType) String() string {
	return string(t)
}

// TransportTypeValues returns the valid transport type strings
func TransportTypeValues() []string {
	values := make([]string, len(allTransportTypes))
	for i, t := range allTransportTypes {
		values[i] = string(t)
	}
	return values
}

// ParseTransportType converts an input string into a TransportType.
// The error message enumerates the valid values.
func ParseTransportType(input string) (TransportType, error) {
	t := TransportType(input)
	if !t.IsValid() {
		return "", shared.NewDomainError("INVALID_INPUT",
			"Invalid transport type. Allowed: "+strings.Join(TransportTypeValues(), ", "))
	}
	return t, nil
}
