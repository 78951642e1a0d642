package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/artmovehq/artmove-backend/pkg/enums"
	"github.com/artmovehq/artmove-backend/pkg/types"
)

// Shipment is the booked, trackable artifact created when a bid is accepted.
// It is never hard-deleted; cancellation is a terminal status with a reason.
type Shipment struct {
	ID      uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Code    string    `gorm:"column:code;not null;uniqueIndex"`
	Name    string    `gorm:"column:name;not null"`
	QuoteID uuid.UUID `gorm:"column:quote_id;type:uuid;not null;index"`
	BidID   uuid.UUID `gorm:"column:bid_id;type:uuid;not null"`

	ClientOrgID        uuid.UUID `gorm:"column:client_org_id;type:uuid;not null;index"`
	LogisticsPartnerID uuid.UUID `gorm:"column:logistics_partner_id;type:uuid;not null;index"`
	BranchOrgID        uuid.UUID `gorm:"column:branch_org_id;type:uuid;not null"`

	Status enums.ShipmentStatus `gorm:"column:status;type:shipment_status;not null;default:'checking'"`

	Amount   decimal.Decimal `gorm:"column:amount;type:numeric(14,2);not null;default:0"`
	Currency string          `gorm:"column:currency;not null;default:'EUR'"`

	OriginLocation      *types.Location `gorm:"column:origin_location;type:jsonb"`
	DestinationLocation *types.Location `gorm:"column:destination_location;type:jsonb"`

	ShipDate     *time.Time `gorm:"column:ship_date"`
	DeliveryDate *time.Time `gorm:"column:delivery_date"`

	IsConsolidated   bool       `gorm:"column:is_consolidated;not null;default:false"`
	ParentShipmentID *uuid.UUID `gorm:"column:parent_shipment_id;type:uuid"`

	TermsDocumentID  *uuid.UUID `gorm:"column:terms_document_id;type:uuid"`
	TermsDocumentURL *string    `gorm:"column:terms_document_url"`

	CancelledAt  *time.Time `gorm:"column:cancelled_at"`
	CancelReason *string    `gorm:"column:cancel_reason"`

	QuoteMaps      []QuoteShipmentMap      `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
	ChangeRequests []ShipmentChangeRequest `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
