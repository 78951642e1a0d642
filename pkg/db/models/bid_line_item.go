package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BidLineItem is one priced row of a bid's breakdown. SupersedesID links a
// counter-offer's item to the item it replaces, forming the version chain the
// diff view walks.
type BidLineItem struct {
	ID          uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	BidID       uuid.UUID  `gorm:"column:bid_id;type:uuid;not null;index"`
	Position    int        `gorm:"column:position;not null;default:0"`
	Category    string     `gorm:"column:category;not null"`
	Description *string    `gorm:"column:description"`

	Quantity    decimal.Decimal  `gorm:"column:quantity;type:numeric(12,3);not null;default:1"`
	UnitPrice   decimal.Decimal  `gorm:"column:unit_price;type:numeric(14,2);not null;default:0"`
	TotalAmount *decimal.Decimal `gorm:"column:total_amount;type:numeric(14,2)"`

	IsOptional   bool       `gorm:"column:is_optional;not null;default:false"`
	IsActive     *bool      `gorm:"column:is_active"`
	SupersedesID *uuid.UUID `gorm:"column:supersedes_id;type:uuid"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// Total resolves the effective amount: the explicit total when present,
// otherwise quantity times unit price.
func (i BidLineItem) Total() decimal.Decimal {
	if i.TotalAmount != nil {
		return *i.TotalAmount
	}
	return i.Quantity.Mul(i.UnitPrice)
}

// Inactive reports whether the row was explicitly deactivated.
func (i BidLineItem) Inactive() bool {
	return i.IsActive != nil && !*i.IsActive
}
