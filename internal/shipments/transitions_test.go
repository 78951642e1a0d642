package shipments

import (
	"testing"

	"github.com/artmovehq/artmove-backend/pkg/enums"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name    string
		from    enums.ShipmentStatus
		to      enums.ShipmentStatus
		allowed bool
	}{
		{"checking to in transit", enums.ShipmentStatusChecking, enums.ShipmentStatusInTransit, true},
		{"pending to pending approval", enums.ShipmentStatusPending, enums.ShipmentStatusPendingApproval, true},
		{"pending change back to approval", enums.ShipmentStatusPendingChange, enums.ShipmentStatusPendingApproval, true},
		{"in transit to delivered", enums.ShipmentStatusInTransit, enums.ShipmentStatusDelivered, true},
		{"security check to local delivery", enums.ShipmentStatusSecurityCheck, enums.ShipmentStatusLocalDelivery, true},
		{"delivered is terminal", enums.ShipmentStatusDelivered, enums.ShipmentStatusInTransit, false},
		{"cancelled is terminal", enums.ShipmentStatusCancelled, enums.ShipmentStatusPending, false},
		{"no skipping into local delivery from pending", enums.ShipmentStatusPending, enums.ShipmentStatusLocalDelivery, false},
		{"no direct cancellation via status update", enums.ShipmentStatusInTransit, enums.ShipmentStatusCancelled, false},
		{"no moving backwards from delivered", enums.ShipmentStatusDelivered, enums.ShipmentStatusLocalDelivery, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanTransition(tc.from, tc.to); got != tc.allowed {
				t.Fatalf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.allowed)
			}
		})
	}
}
