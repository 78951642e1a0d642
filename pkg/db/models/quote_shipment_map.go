package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/artmovehq/artmove-backend/pkg/db/dbtypes"
	"github.com/artmovehq/artmove-backend/pkg/enums"
)

// QuoteShipmentMap records which quotes feed a shipment and with which
// artworks, so consolidation and splits stay reconstructable.
type QuoteShipmentMap struct {
	ID           uuid.UUID                       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	QuoteID      uuid.UUID                       `gorm:"column:quote_id;type:uuid;not null;index"`
	ShipmentID   uuid.UUID                       `gorm:"column:shipment_id;type:uuid;not null;index"`
	BidID        uuid.UUID                       `gorm:"column:bid_id;type:uuid;not null"`
	Relationship enums.QuoteShipmentRelationship `gorm:"column:relationship;type:quote_shipment_relationship;not null"`

	IncludedArtworkIDs dbtypes.UUIDArray `gorm:"column:included_artwork_ids;type:uuid[]"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
