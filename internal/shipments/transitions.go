package shipments

import "github.com/artmovehq/artmove-backend/pkg/enums"

// cancellation is not listed here; CancelShipment is the only path into the
// cancelled state so that a reason is always recorded.
var allowedTransitions = map[enums.ShipmentStatus][]enums.ShipmentStatus{
	enums.ShipmentStatusChecking: {
		enums.ShipmentStatusPendingApproval,
		enums.ShipmentStatusPendingChange,
		enums.ShipmentStatusInTransit,
	},
	enums.ShipmentStatusPending: {
		enums.ShipmentStatusPendingApproval,
		enums.ShipmentStatusPendingChange,
		enums.ShipmentStatusInTransit,
	},
	enums.ShipmentStatusPendingApproval: {
		enums.ShipmentStatusPendingChange,
		enums.ShipmentStatusInTransit,
	},
	enums.ShipmentStatusPendingChange: {
		enums.ShipmentStatusPendingApproval,
		enums.ShipmentStatusInTransit,
	},
	enums.ShipmentStatusInTransit: {
		enums.ShipmentStatusArtworkCollected,
		enums.ShipmentStatusSecurityCheck,
		enums.ShipmentStatusLocalDelivery,
		enums.ShipmentStatusDelivered,
	},
	enums.ShipmentStatusArtworkCollected: {
		enums.ShipmentStatusSecurityCheck,
		enums.ShipmentStatusLocalDelivery,
		enums.ShipmentStatusDelivered,
	},
	enums.ShipmentStatusSecurityCheck: {
		enums.ShipmentStatusLocalDelivery,
		enums.ShipmentStatusDelivered,
	},
	enums.ShipmentStatusLocalDelivery: {
		enums.ShipmentStatusDelivered,
	},
}

// CanTransition reports whether a shipment may move directly between the two
// statuses. Terminal statuses allow nothing.
func CanTransition(from, to enums.ShipmentStatus) bool {
	for _, candidate := range allowedTransitions[from] {
		if candidate == to {
			return true
		}
	}
	return false
}
