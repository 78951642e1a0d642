package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/artmovehq/artmove-backend/pkg/enums"
	"github.com/artmovehq/artmove-backend/pkg/types"
)

// ShipmentChangeRequest is a proposed post-acceptance modification to a
// shipment's dates or locations. The counterparty approves, rejects, or
// answers with a counter-offer bid referenced by CounterBidID.
type ShipmentChangeRequest struct {
	ID         uuid.UUID                 `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ShipmentID uuid.UUID                 `gorm:"column:shipment_id;type:uuid;not null;index"`
	Status     enums.ChangeRequestStatus `gorm:"column:status;type:change_request_status;not null;default:'pending'"`

	RequestedByOrgID uuid.UUID `gorm:"column:requested_by_org_id;type:uuid;not null"`

	// Shipment status at the moment the request was raised; resolution
	// restores it so a request never strands the shipment in pending_change.
	PreviousShipmentStatus *enums.ShipmentStatus `gorm:"column:previous_shipment_status;type:shipment_status"`

	ProposedShipDate     *time.Time      `gorm:"column:proposed_ship_date"`
	ProposedDeliveryDate *time.Time      `gorm:"column:proposed_delivery_date"`
	Proposal             *types.Proposal `gorm:"column:proposal;type:jsonb"`

	Notes  *string `gorm:"column:notes"`
	Reason *string `gorm:"column:reason"`

	CounterBidID   *uuid.UUID       `gorm:"column:counter_bid_id;type:uuid"`
	ProposedAmount *decimal.Decimal `gorm:"column:proposed_amount;type:numeric(14,2)"`

	RespondedBy *uuid.UUID `gorm:"column:responded_by;type:uuid"`
	RespondedAt *time.Time `gorm:"column:responded_at"`

	CounterBid *Bid `gorm:"foreignKey:CounterBidID"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
