package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/artmovehq/artmove-backend/pkg/types"
)

// QuoteArtwork is descriptive artwork data owned by a quote. Once LockedAt is
// set the row is immutable; updates and deletes carry a `locked_at IS NULL`
// guard and report zero affected rows when the lock already holds.
type QuoteArtwork struct {
	ID      uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	QuoteID uuid.UUID `gorm:"column:quote_id;type:uuid;not null;index"`

	Name       string  `gorm:"column:name;not null"`
	Artist     *string `gorm:"column:artist"`
	Year       *string `gorm:"column:year"`
	Medium     *string `gorm:"column:medium"`
	Dimensions *string `gorm:"column:dimensions"`

	WeightRaw   string   `gorm:"column:weight_raw"`
	WeightValue *float64 `gorm:"column:weight_value"`
	WeightUnit  *string  `gorm:"column:weight_unit"`

	DeclaredValue       *decimal.Decimal `gorm:"column:declared_value;type:numeric(14,2)"`
	Crating             *string          `gorm:"column:crating"`
	SpecialRequirements types.StringSet  `gorm:"column:special_requirements;type:jsonb"`
	TariffCode          *string          `gorm:"column:tariff_code"`
	CountryOfOrigin     *string          `gorm:"column:country_of_origin"`

	LockedAt *time.Time `gorm:"column:locked_at"`
	LockedBy *uuid.UUID `gorm:"column:locked_by;type:uuid"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// SetWeight stores both the raw text and the parsed value/unit pair.
func (a *QuoteArtwork) SetWeight(raw string) {
	parsed := types.ParseWeight(raw)
	a.WeightRaw = parsed.Raw
	if parsed.Unit == "" {
		a.WeightValue = nil
		a.WeightUnit = nil
		return
	}
	value := parsed.Value
	unit := parsed.Unit
	a.WeightValue = &value
	a.WeightUnit = &unit
}
