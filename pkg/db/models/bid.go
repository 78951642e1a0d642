package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/artmovehq/artmove-backend/pkg/enums"
)

// Bid is a logistics partner's priced offer against a quote. At most one live
// bid exists per (quote, partner, branch); upserts land on that key. A bid in
// status counter_offer is the partner's counter to a pending change request.
type Bid struct {
	ID                 uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	QuoteID            uuid.UUID  `gorm:"column:quote_id;type:uuid;not null;index"`
	LogisticsPartnerID uuid.UUID  `gorm:"column:logistics_partner_id;type:uuid;not null"`
	BranchOrgID        *uuid.UUID `gorm:"column:branch_org_id;type:uuid"`

	Status   enums.BidStatus  `gorm:"column:status;type:bid_status;not null;default:'pending'"`
	IsDraft  bool             `gorm:"column:is_draft;not null;default:true"`
	Amount   *decimal.Decimal `gorm:"column:amount;type:numeric(14,2)"`
	Currency string           `gorm:"column:currency;not null;default:'EUR'"`
	Notes    *string          `gorm:"column:notes"`

	// ShowBreakdown false with no line items means the itemization is hidden
	// from the client.
	ShowBreakdown bool `gorm:"column:show_breakdown;not null;default:true"`

	EstimatedShipDate     *time.Time `gorm:"column:estimated_ship_date"`
	EstimatedDeliveryDate *time.Time `gorm:"column:estimated_delivery_date"`

	SubmittedAt         *time.Time `gorm:"column:submitted_at"`
	AcceptedAt          *time.Time `gorm:"column:accepted_at"`
	NeedsConfirmationAt *time.Time `gorm:"column:needs_confirmation_at"`

	// CounterForChangeRequestID ties a counter-offer bid to the change request
	// it answers.
	CounterForChangeRequestID *uuid.UUID `gorm:"column:counter_for_change_request_id;type:uuid"`

	TermsDocumentID  *uuid.UUID `gorm:"column:terms_document_id;type:uuid"`
	TermsDocumentURL *string    `gorm:"column:terms_document_url"`

	Partner   *Organization `gorm:"foreignKey:LogisticsPartnerID"`
	Branch    *Organization `gorm:"foreignKey:BranchOrgID"`
	LineItems []BidLineItem `gorm:"foreignKey:BidID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// HiddenBreakdown reports whether the itemization is locked away from the
// client view.
func (b *Bid) HiddenBreakdown() bool {
	return !b.ShowBreakdown && len(b.LineItems) == 0
}
