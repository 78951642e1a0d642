package models

import (
	"time"

	"github.com/google/uuid"
)

// QuoteInvite records that a {partner, branch} pair was solicited for a quote.
// The partner columns are nullable for invites sent before the partner was
// registered; participant resolution then falls back to the invite id as key.
type QuoteInvite struct {
	ID                 uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	QuoteID            uuid.UUID  `gorm:"column:quote_id;type:uuid;not null;index"`
	LogisticsPartnerID *uuid.UUID `gorm:"column:logistics_partner_id;type:uuid"`
	BranchOrgID        *uuid.UUID `gorm:"column:branch_org_id;type:uuid"`
	InvitedAt          time.Time  `gorm:"column:invited_at;not null"`

	// resolved display metadata, denormalized at invite time
	PartnerName  *string `gorm:"column:partner_name"`
	BranchName   *string `gorm:"column:branch_name"`
	Abbreviation *string `gorm:"column:abbreviation"`
	BrandColor   *string `gorm:"column:brand_color"`
	LogoURL      *string `gorm:"column:logo_url"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
