package bids

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/artmovehq/artmove-backend/pkg/db/models"
	"github.com/artmovehq/artmove-backend/pkg/enums"
)

// LineItemInput carries one priced row of a bid's breakdown.
type LineItemInput struct {
	Position     int              `json:"position"`
	Category     string           `json:"category" validate:"required"`
	Description  *string          `json:"description,omitempty"`
	Quantity     decimal.Decimal  `json:"quantity"`
	UnitPrice    decimal.Decimal  `json:"unit_price"`
	TotalAmount  *decimal.Decimal `json:"total_amount,omitempty"`
	IsOptional   bool             `json:"is_optional"`
	SupersedesID *uuid.UUID       `json:"supersedes_id,omitempty"`
}

// UpsertBidInput creates or updates the partner's draft bid for a quote.
// The (quote, partner, branch) key decides whether an existing row wins.
type UpsertBidInput struct {
	QuoteID               uuid.UUID        `json:"-"`
	BranchOrgID           *uuid.UUID       `json:"branch_org_id,omitempty"`
	Amount                *decimal.Decimal `json:"amount,omitempty"`
	Currency              string           `json:"currency,omitempty"`
	Notes                 *string          `json:"notes,omitempty"`
	ShowBreakdown         *bool            `json:"show_breakdown,omitempty"`
	EstimatedShipDate     *time.Time       `json:"estimated_ship_date,omitempty"`
	EstimatedDeliveryDate *time.Time       `json:"estimated_delivery_date,omitempty"`
	LineItems             []LineItemInput  `json:"line_items,omitempty" validate:"dive"`

	PartnerOrgID uuid.UUID `json:"-"`
	ActorUserID  uuid.UUID `json:"-"`
	ActorRole    string    `json:"-"`
}

// SubmitBidInput finalizes a draft bid.
type SubmitBidInput struct {
	BidID        uuid.UUID
	PartnerOrgID uuid.UUID
	ActorUserID  uuid.UUID
	ActorRole    string
}

// WithdrawBidInput retracts a live bid before acceptance.
type WithdrawBidInput struct {
	BidID        uuid.UUID
	PartnerOrgID uuid.UUID
	ActorUserID  uuid.UUID
}

// AcceptBidInput books a shipment from the chosen bid. BranchOrgID is
// mandatory; acceptance without a branch context is a hard failure.
type AcceptBidInput struct {
	QuoteID          uuid.UUID  `json:"quote_id" validate:"required"`
	BidID            uuid.UUID  `json:"-"`
	BranchOrgID      *uuid.UUID `json:"branch_org_id" validate:"required"`
	TermsDocumentID  *uuid.UUID `json:"terms_document_id,omitempty"`
	TermsDocumentURL *string    `json:"terms_document_url,omitempty"`

	ClientOrgID uuid.UUID `json:"-"`
	ActorUserID uuid.UUID `json:"-"`
	ActorRole   string    `json:"-"`
}

// ConsolidateInput merges several quotes into one shipment anchored on the
// primary bid.
type ConsolidateInput struct {
	QuoteIDs     []uuid.UUID `json:"quote_ids" validate:"min=2"`
	PrimaryBidID uuid.UUID   `json:"primary_bid_id" validate:"required"`

	ClientOrgID uuid.UUID `json:"-"`
	ActorUserID uuid.UUID `json:"-"`
	ActorRole   string    `json:"-"`
}

// BidSubmittedEvent is emitted when a partner finalizes a bid.
type BidSubmittedEvent struct {
	BidID       uuid.UUID        `json:"bid_id"`
	QuoteID     uuid.UUID        `json:"quote_id"`
	PartnerID   uuid.UUID        `json:"partner_id"`
	BranchOrgID *uuid.UUID       `json:"branch_org_id,omitempty"`
	ClientOrgID uuid.UUID        `json:"client_org_id"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
}

// BidAcceptedEvent is emitted when a client accepts a bid and books the
// shipment.
type BidAcceptedEvent struct {
	BidID       uuid.UUID       `json:"bid_id"`
	QuoteID     uuid.UUID       `json:"quote_id"`
	ShipmentID  uuid.UUID       `json:"shipment_id"`
	PartnerID   uuid.UUID       `json:"partner_id"`
	BranchOrgID uuid.UUID       `json:"branch_org_id"`
	ClientOrgID uuid.UUID       `json:"client_org_id"`
	Amount      decimal.Decimal `json:"amount"`
}

// QuotesConsolidatedEvent is emitted when several quotes merge into one
// shipment.
type QuotesConsolidatedEvent struct {
	ShipmentID   uuid.UUID   `json:"shipment_id"`
	PrimaryBidID uuid.UUID   `json:"primary_bid_id"`
	QuoteIDs     []uuid.UUID `json:"quote_ids"`
	ClientOrgID  uuid.UUID   `json:"client_org_id"`
	PartnerID    uuid.UUID   `json:"partner_id"`
}

func buildLineItems(bidID uuid.UUID, inputs []LineItemInput) []models.BidLineItem {
	items := make([]models.BidLineItem, 0, len(inputs))
	for i, in := range inputs {
		quantity := in.Quantity
		if quantity.IsZero() {
			quantity = decimal.NewFromInt(1)
		}
		position := in.Position
		if position == 0 {
			position = i
		}
		items = append(items, models.BidLineItem{
			BidID:        bidID,
			Position:     position,
			Category:     in.Category,
			Description:  in.Description,
			Quantity:     quantity,
			UnitPrice:    in.UnitPrice,
			TotalAmount:  in.TotalAmount,
			IsOptional:   in.IsOptional,
			SupersedesID: in.SupersedesID,
		})
	}
	return items
}

func bidIsLive(status enums.BidStatus) bool {
	return status == enums.BidStatusPending || status == enums.BidStatusSubmitted
}
