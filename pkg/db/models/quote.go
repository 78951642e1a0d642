package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/artmovehq/artmove-backend/pkg/enums"
	"github.com/artmovehq/artmove-backend/pkg/types"
)

// Quote is a gallery's negotiable shipping request. Draft quotes are mutable;
// once submitted (active) the attached artworks are locked.
type Quote struct {
	ID              uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Code            string            `gorm:"column:code;not null;uniqueIndex"`
	Title           string            `gorm:"column:title;not null"`
	ClientOrgID     uuid.UUID         `gorm:"column:client_org_id;type:uuid;not null;index"`
	Type            enums.QuoteType   `gorm:"column:type;type:quote_type;not null;default:'requested'"`
	Status          enums.QuoteStatus `gorm:"column:status;type:quote_status;not null;default:'draft'"`
	ClientReference *string           `gorm:"column:client_reference"`

	OriginLocation      *types.Location `gorm:"column:origin_location;type:jsonb"`
	DestinationLocation *types.Location `gorm:"column:destination_location;type:jsonb"`
	OriginContact       *types.Contact  `gorm:"column:origin_contact;type:jsonb"`
	DestinationContact  *types.Contact  `gorm:"column:destination_contact;type:jsonb"`

	TargetDateStart *time.Time       `gorm:"column:target_date_start"`
	TargetDateEnd   *time.Time       `gorm:"column:target_date_end"`
	Value           *decimal.Decimal `gorm:"column:value;type:numeric(14,2)"`
	Currency        string           `gorm:"column:currency;not null;default:'EUR'"`

	BiddingDeadline   *time.Time      `gorm:"column:bidding_deadline"`
	AutoCloseBidding  bool            `gorm:"column:auto_close_bidding;not null;default:false"`
	DeliverySpecifics types.StringSet `gorm:"column:delivery_specifics;type:jsonb"`
	Notes             *string         `gorm:"column:notes"`

	SubmittedAt *time.Time `gorm:"column:submitted_at"`
	SubmittedBy *uuid.UUID `gorm:"column:submitted_by;type:uuid"`
	CancelledAt *time.Time `gorm:"column:cancelled_at"`
	CancelReason *string   `gorm:"column:cancel_reason"`

	Artworks []QuoteArtwork `gorm:"foreignKey:QuoteID;constraint:OnDelete:CASCADE"`
	Invites  []QuoteInvite  `gorm:"foreignKey:QuoteID;constraint:OnDelete:CASCADE"`
	Bids     []Bid          `gorm:"foreignKey:QuoteID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
