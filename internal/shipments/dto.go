package shipments

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/artmovehq/artmove-backend/pkg/enums"
)

// ListFilters describe the inputs supported by the shipments list.
type ListFilters struct {
	Status   *enums.ShipmentStatus
	DateFrom *time.Time
	DateTo   *time.Time
	Query    string
}

// ShipmentSummary exposes the aggregated fields returned in the list.
type ShipmentSummary struct {
	ID             uuid.UUID            `json:"id"`
	Code           string               `json:"code"`
	Name           string               `json:"name"`
	QuoteID        uuid.UUID            `json:"quote_id"`
	Status         enums.ShipmentStatus `json:"status"`
	Amount         decimal.Decimal      `json:"amount"`
	Currency       string               `json:"currency"`
	IsConsolidated bool                 `json:"is_consolidated"`
	ShipDate       *time.Time           `json:"ship_date,omitempty"`
	DeliveryDate   *time.Time           `json:"delivery_date,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
}

// ShipmentList wraps the paginated shipments plus the next page cursor.
type ShipmentList struct {
	Shipments  []ShipmentSummary `json:"shipments"`
	NextCursor string            `json:"next_cursor,omitempty"`
}

// UpdateStatusInput moves a shipment along its delivery pipeline.
type UpdateStatusInput struct {
	ShipmentID uuid.UUID            `json:"-"`
	Status     enums.ShipmentStatus `json:"status" validate:"required"`

	ActorOrgID  uuid.UUID `json:"-"`
	ActorUserID uuid.UUID `json:"-"`
	ActorRole   string    `json:"-"`
}

// CancelShipmentInput soft-cancels a shipment with a stored reason.
type CancelShipmentInput struct {
	ShipmentID uuid.UUID `json:"-"`
	Reason     string    `json:"reason" validate:"required"`

	ActorOrgID  uuid.UUID `json:"-"`
	ActorUserID uuid.UUID `json:"-"`
	ActorRole   string    `json:"-"`
}

// UnassignShipmentInput cancels the shipment and reopens the origin quote so
// bidding can resume.
type UnassignShipmentInput struct {
	ShipmentID uuid.UUID `json:"-"`
	Reason     string    `json:"reason,omitempty"`

	ActorOrgID  uuid.UUID `json:"-"`
	ActorUserID uuid.UUID `json:"-"`
	ActorRole   string    `json:"-"`
}

// ShipmentCancelledEvent is emitted on cancellation and unassignment.
type ShipmentCancelledEvent struct {
	ShipmentID    uuid.UUID `json:"shipment_id"`
	QuoteID       uuid.UUID `json:"quote_id"`
	ClientOrgID   uuid.UUID `json:"client_org_id"`
	PartnerID     uuid.UUID `json:"partner_id"`
	Reason        string    `json:"reason,omitempty"`
	QuoteReopened bool      `json:"quote_reopened"`
}
