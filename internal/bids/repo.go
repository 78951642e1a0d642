package bids

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/artmovehq/artmove-backend/pkg/db/models"
	"github.com/artmovehq/artmove-backend/pkg/enums"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a bids repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) FindBid(ctx context.Context, id uuid.UUID) (*models.Bid, error) {
	var bid models.Bid
	err := r.db.WithContext(ctx).
		Preload("Partner").
		Preload("Branch").
		Preload("LineItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC, created_at ASC")
		}).
		Where("id = ?", id).
		First(&bid).Error
	if err != nil {
		return nil, err
	}
	return &bid, nil
}

// FindBidByKey resolves the partner's live regular bid for a quote.
// Counter-offer rows sit outside the upsert key, and withdrawn or
// shipper-cancelled rows have dropped out of it, so both are excluded.
func (r *repository) FindBidByKey(ctx context.Context, quoteID, partnerID uuid.UUID, branchOrgID *uuid.UUID) (*models.Bid, error) {
	query := r.db.WithContext(ctx).
		Where("quote_id = ? AND logistics_partner_id = ? AND counter_for_change_request_id IS NULL", quoteID, partnerID).
		Where("status NOT IN ?", []enums.BidStatus{enums.BidStatusWithdrawn, enums.BidStatusCancelledByShipper})
	if branchOrgID != nil {
		query = query.Where("branch_org_id = ?", *branchOrgID)
	} else {
		query = query.Where("branch_org_id IS NULL")
	}

	var bid models.Bid
	if err := query.First(&bid).Error; err != nil {
		return nil, err
	}
	return &bid, nil
}

func (r *repository) FindBidsByQuote(ctx context.Context, quoteID uuid.UUID) ([]models.Bid, error) {
	var rows []models.Bid
	err := r.db.WithContext(ctx).
		Preload("Partner").
		Preload("Branch").
		Preload("LineItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC, created_at ASC")
		}).
		Where("quote_id = ?", quoteID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) CreateBid(ctx context.Context, bid *models.Bid) (*models.Bid, error) {
	if err := r.db.WithContext(ctx).Omit("Partner", "Branch", "LineItems").Create(bid).Error; err != nil {
		return nil, err
	}
	return bid, nil
}

func (r *repository) UpdateBid(ctx context.Context, bidID uuid.UUID, updates map[string]any) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Bid{}).
		Where("id = ?", bidID).
		Updates(updates)
	return res.RowsAffected, res.Error
}

// MarkSubmitted finalizes a draft bid. Zero affected rows means the bid does
// not exist or was already submitted.
func (r *repository) MarkSubmitted(ctx context.Context, bidID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Bid{}).
		Where("id = ? AND is_draft = TRUE", bidID).
		Updates(map[string]any{
			"is_draft":     false,
			"status":       enums.BidStatusSubmitted,
			"submitted_at": gorm.Expr("CURRENT_TIMESTAMP"),
		})
	return res.RowsAffected, res.Error
}

// RejectSiblingBids closes every other live bid on the quote once one is
// accepted.
func (r *repository) RejectSiblingBids(ctx context.Context, quoteID, acceptedBidID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Bid{}).
		Where("quote_id = ? AND id <> ? AND status IN ?", quoteID, acceptedBidID,
			[]enums.BidStatus{enums.BidStatusPending, enums.BidStatusSubmitted}).
		Update("status", enums.BidStatusRejected)
	return res.RowsAffected, res.Error
}

func (r *repository) ReplaceLineItems(ctx context.Context, bidID uuid.UUID, items []models.BidLineItem) error {
	if err := r.db.WithContext(ctx).
		Where("bid_id = ?", bidID).
		Delete(&models.BidLineItem{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *repository) FindLineItems(ctx context.Context, bidID uuid.UUID) ([]models.BidLineItem, error) {
	var items []models.BidLineItem
	err := r.db.WithContext(ctx).
		Where("bid_id = ?", bidID).
		Order("position ASC, created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) FindQuote(ctx context.Context, id uuid.UUID) (*models.Quote, error) {
	var quote models.Quote
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&quote).Error
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

func (r *repository) FindArtworkIDs(ctx context.Context, quoteID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&models.QuoteArtwork{}).
		Where("quote_id = ?", quoteID).
		Order("created_at ASC").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *repository) UpdateQuoteStatus(ctx context.Context, id uuid.UUID, from []enums.QuoteStatus, updates map[string]any) (int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Quote{}).Where("id = ?", id)
	if len(from) > 0 {
		query = query.Where("status IN ?", from)
	}
	res := query.Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *repository) CreateShipment(ctx context.Context, shipment *models.Shipment) (*models.Shipment, error) {
	if err := r.db.WithContext(ctx).Omit("QuoteMaps", "ChangeRequests").Create(shipment).Error; err != nil {
		return nil, err
	}
	return shipment, nil
}

func (r *repository) CreateQuoteShipmentMaps(ctx context.Context, maps []models.QuoteShipmentMap) error {
	if len(maps) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&maps).Error
}
