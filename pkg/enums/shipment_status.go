package enums

import "fmt"

// ShipmentStatus tracks a booked shipment through delivery.
type ShipmentStatus string

const (
	ShipmentStatusChecking         ShipmentStatus = "checking"
	ShipmentStatusPendingApproval  ShipmentStatus = "pending_approval"
	ShipmentStatusPendingChange    ShipmentStatus = "pending_change"
	ShipmentStatusInTransit        ShipmentStatus = "in_transit"
	ShipmentStatusArtworkCollected ShipmentStatus = "artwork_collected"
	ShipmentStatusSecurityCheck    ShipmentStatus = "security_check"
	ShipmentStatusLocalDelivery    ShipmentStatus = "local_delivery"
	ShipmentStatusDelivered        ShipmentStatus = "delivered"
	ShipmentStatusCancelled        ShipmentStatus = "cancelled"

	// ShipmentStatusPending predates the checking/pending_approval split and
	// still exists on old rows.
	ShipmentStatusPending ShipmentStatus = "pending"
)

var validShipmentStatuses = []ShipmentStatus{
	ShipmentStatusChecking,
	ShipmentStatusPendingApproval,
	ShipmentStatusPendingChange,
	ShipmentStatusInTransit,
	ShipmentStatusArtworkCollected,
	ShipmentStatusSecurityCheck,
	ShipmentStatusLocalDelivery,
	ShipmentStatusDelivered,
	ShipmentStatusCancelled,
	ShipmentStatusPending,
}

// String implements fmt.Stringer.
func (s ShipmentStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known ShipmentStatus.
func (s ShipmentStatus) IsValid() bool {
	for _, candidate := range validShipmentStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the shipment can no longer change state.
func (s ShipmentStatus) IsTerminal() bool {
	return s == ShipmentStatusDelivered || s == ShipmentStatusCancelled
}

// ParseShipmentStatus converts raw input into a ShipmentStatus.
func ParseShipmentStatus(value string) (ShipmentStatus, error) {
	for _, candidate := range validShipmentStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid shipment status %q", value)
}
