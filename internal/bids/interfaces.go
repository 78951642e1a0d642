package bids

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/artmovehq/artmove-backend/pkg/db/models"
	"github.com/artmovehq/artmove-backend/pkg/enums"
)

// Repository defines persistence operations for bids, their line items, and
// the shipment rows acceptance produces.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindBid(ctx context.Context, id uuid.UUID) (*models.Bid, error)
	FindBidByKey(ctx context.Context, quoteID, partnerID uuid.UUID, branchOrgID *uuid.UUID) (*models.Bid, error)
	FindBidsByQuote(ctx context.Context, quoteID uuid.UUID) ([]models.Bid, error)
	CreateBid(ctx context.Context, bid *models.Bid) (*models.Bid, error)
	UpdateBid(ctx context.Context, bidID uuid.UUID, updates map[string]any) (int64, error)
	MarkSubmitted(ctx context.Context, bidID uuid.UUID) (int64, error)
	RejectSiblingBids(ctx context.Context, quoteID, acceptedBidID uuid.UUID) (int64, error)
	ReplaceLineItems(ctx context.Context, bidID uuid.UUID, items []models.BidLineItem) error
	FindLineItems(ctx context.Context, bidID uuid.UUID) ([]models.BidLineItem, error)
	FindQuote(ctx context.Context, id uuid.UUID) (*models.Quote, error)
	FindArtworkIDs(ctx context.Context, quoteID uuid.UUID) ([]uuid.UUID, error)
	UpdateQuoteStatus(ctx context.Context, id uuid.UUID, from []enums.QuoteStatus, updates map[string]any) (int64, error)
	CreateShipment(ctx context.Context, shipment *models.Shipment) (*models.Shipment, error)
	CreateQuoteShipmentMaps(ctx context.Context, maps []models.QuoteShipmentMap) error
}
