package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/artmovehq/artmove-backend/pkg/enums"
)

// Organization is a tenant: a gallery requesting shipping or a logistics
// partner submitting bids. Shipper branches are organizations whose
// ParentOrgID points at the partner's head organization.
type Organization struct {
	ID           uuid.UUID     `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name         string        `gorm:"column:name;not null"`
	Type         enums.OrgType `gorm:"column:type;type:org_type;not null"`
	ParentOrgID  *uuid.UUID    `gorm:"column:parent_org_id;type:uuid"`
	Abbreviation *string       `gorm:"column:abbreviation"`
	BrandColor   *string       `gorm:"column:brand_color"`
	LogoURL      *string       `gorm:"column:logo_url"`
	CreatedAt    time.Time     `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time     `gorm:"column:updated_at;autoUpdateTime"`
}
