package shipments

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/artmovehq/artmove-backend/pkg/db/models"
	"github.com/artmovehq/artmove-backend/pkg/enums"
	"github.com/artmovehq/artmove-backend/pkg/pagination"
)

// Repository defines persistence operations for shipments plus the quote and
// bid touches unassignment needs.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindShipment(ctx context.Context, id uuid.UUID) (*models.Shipment, error)
	FindShipmentDetail(ctx context.Context, id uuid.UUID) (*models.Shipment, error)
	ListByOrg(ctx context.Context, orgID uuid.UUID, params pagination.Params, filters ListFilters) (*ShipmentList, error)
	UpdateShipmentStatus(ctx context.Context, id uuid.UUID, from []enums.ShipmentStatus, updates map[string]any) (int64, error)
	UpdateQuoteStatus(ctx context.Context, id uuid.UUID, from []enums.QuoteStatus, updates map[string]any) (int64, error)
	UpdateBidStatus(ctx context.Context, id uuid.UUID, status enums.BidStatus) (int64, error)
	FindMapsByShipment(ctx context.Context, shipmentID uuid.UUID) ([]models.QuoteShipmentMap, error)
}
