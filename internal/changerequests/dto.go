package changerequests

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/artmovehq/artmove-backend/pkg/enums"
	"github.com/artmovehq/artmove-backend/pkg/types"
)

// CreateInput opens a change request against a shipment.
type CreateInput struct {
	ShipmentID           uuid.UUID       `json:"-"`
	ProposedShipDate     *time.Time      `json:"proposed_ship_date,omitempty"`
	ProposedDeliveryDate *time.Time      `json:"proposed_delivery_date,omitempty"`
	Proposal             *types.Proposal `json:"proposal,omitempty"`
	Notes                *string         `json:"notes,omitempty"`

	ActorOrgID  uuid.UUID `json:"-"`
	ActorUserID uuid.UUID `json:"-"`
	ActorRole   string    `json:"-"`
}

// ApproveInput accepts a change request's original proposal as-is.
type ApproveInput struct {
	ChangeRequestID uuid.UUID `json:"-"`

	ActorOrgID  uuid.UUID `json:"-"`
	ActorUserID uuid.UUID `json:"-"`
	ActorRole   string    `json:"-"`
}

// RejectInput declines a pending change request.
type RejectInput struct {
	ChangeRequestID uuid.UUID `json:"-"`
	Reason          *string   `json:"reason,omitempty"`

	ActorOrgID  uuid.UUID `json:"-"`
	ActorUserID uuid.UUID `json:"-"`
	ActorRole   string    `json:"-"`
}

// CounterLineItemInput is one priced row of a counter-offer, chained to the
// line item it replaces via SupersedesID.
type CounterLineItemInput struct {
	Position     int              `json:"position"`
	Category     string           `json:"category" validate:"required"`
	Description  *string          `json:"description,omitempty"`
	Quantity     decimal.Decimal  `json:"quantity"`
	UnitPrice    decimal.Decimal  `json:"unit_price"`
	TotalAmount  *decimal.Decimal `json:"total_amount,omitempty"`
	IsOptional   bool             `json:"is_optional"`
	SupersedesID *uuid.UUID       `json:"supersedes_id,omitempty"`
}

// CounterInput answers a change request with a counter-offer bid.
type CounterInput struct {
	ChangeRequestID       uuid.UUID              `json:"-"`
	Amount                decimal.Decimal        `json:"amount" validate:"required"`
	Notes                 *string                `json:"notes,omitempty"`
	LineItems             []CounterLineItemInput `json:"line_items,omitempty" validate:"dive"`
	EstimatedShipDate     *time.Time             `json:"estimated_ship_date,omitempty"`
	EstimatedDeliveryDate *time.Time             `json:"estimated_delivery_date,omitempty"`

	ActorOrgID  uuid.UUID `json:"-"`
	ActorUserID uuid.UUID `json:"-"`
	ActorRole   string    `json:"-"`
}

// ResolveCounterInput accepts or rejects a counter-offer. ChangeRequestID and
// BidID may be omitted; the service resolves them from the shipment's open
// requests. A branch context that cannot be resolved is a hard failure.
type ResolveCounterInput struct {
	ShipmentID      uuid.UUID  `json:"-"`
	ChangeRequestID *uuid.UUID `json:"change_request_id,omitempty"`
	BidID           *uuid.UUID `json:"bid_id,omitempty"`
	Reason          *string    `json:"reason,omitempty"`

	ActorOrgID  uuid.UUID `json:"-"`
	ActorUserID uuid.UUID `json:"-"`
	ActorRole   string    `json:"-"`
}

// ChangeRequestCreatedEvent is emitted when a change request opens.
type ChangeRequestCreatedEvent struct {
	ChangeRequestID uuid.UUID `json:"change_request_id"`
	ShipmentID      uuid.UUID `json:"shipment_id"`
	RequestedBy     uuid.UUID `json:"requested_by_org_id"`
	ClientOrgID     uuid.UUID `json:"client_org_id"`
	PartnerID       uuid.UUID `json:"partner_id"`
}

// ChangeRequestCounteredEvent is emitted when a partner counters.
type ChangeRequestCounteredEvent struct {
	ChangeRequestID uuid.UUID       `json:"change_request_id"`
	ShipmentID      uuid.UUID       `json:"shipment_id"`
	CounterBidID    uuid.UUID       `json:"counter_bid_id"`
	ProposedAmount  decimal.Decimal `json:"proposed_amount"`
	ClientOrgID     uuid.UUID       `json:"client_org_id"`
}

// ChangeRequestResolvedEvent is emitted when a request reaches a terminal
// status.
type ChangeRequestResolvedEvent struct {
	ChangeRequestID uuid.UUID                 `json:"change_request_id"`
	ShipmentID      uuid.UUID                 `json:"shipment_id"`
	Outcome         enums.ChangeRequestStatus `json:"outcome"`
	CounterBidID    *uuid.UUID                `json:"counter_bid_id,omitempty"`
	PartnerID       uuid.UUID                 `json:"partner_id"`
}
