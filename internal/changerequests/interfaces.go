package changerequests

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/artmovehq/artmove-backend/pkg/db/models"
	"github.com/artmovehq/artmove-backend/pkg/enums"
)

// Repository defines persistence operations for change requests, the counter
// bids they spawn, and the shipment fields resolution applies.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateChangeRequest(ctx context.Context, request *models.ShipmentChangeRequest) (*models.ShipmentChangeRequest, error)
	FindChangeRequest(ctx context.Context, id uuid.UUID) (*models.ShipmentChangeRequest, error)
	FindChangeRequestsByShipment(ctx context.Context, shipmentID uuid.UUID) ([]models.ShipmentChangeRequest, error)
	UpdateChangeRequest(ctx context.Context, id uuid.UUID, from []enums.ChangeRequestStatus, updates map[string]any) (int64, error)
	FindShipment(ctx context.Context, id uuid.UUID) (*models.Shipment, error)
	UpdateShipment(ctx context.Context, id uuid.UUID, updates map[string]any) (int64, error)
	UpdateShipmentStatus(ctx context.Context, id uuid.UUID, from []enums.ShipmentStatus, updates map[string]any) (int64, error)
	CreateCounterBid(ctx context.Context, bid *models.Bid, items []models.BidLineItem) (*models.Bid, error)
	FindBid(ctx context.Context, id uuid.UUID) (*models.Bid, error)
	UpdateBid(ctx context.Context, id uuid.UUID, updates map[string]any) (int64, error)
}
