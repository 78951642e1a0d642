package changerequests

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

// NewRepository builds a change-requests repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) CreateChangeRequest(ctx context.Context, request *models.ShipmentChangeRequest) (*models.ShipmentChangeRequest, error) {
	if err := r.db.WithContext(ctx).Omit("CounterBid").Create(request).Error; err != nil {
		return nil, err
	}
	return request, nil
}

func (r *repository) FindChangeRequest(ctx context.Context, id uuid.UUID) (*models.ShipmentChangeRequest, error) {
	var request models.ShipmentChangeRequest
	err := r.db.WithContext(ctx).
		Preload("CounterBid.LineItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC, created_at ASC")
		}).
		Where("id = ?", id).
		First(&request).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *repository) FindChangeRequestsByShipment(ctx context.Context, shipmentID uuid.UUID) ([]models.ShipmentChangeRequest, error) {
	var requests []models.ShipmentChangeRequest
	err := r.db.WithContext(ctx).
		Preload("CounterBid.LineItems").
		Where("shipment_id = ?", shipmentID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *repository) UpdateChangeRequest(ctx context.Context, id uuid.UUID, from []enums.ChangeRequestStatus, updates map[string]any) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.ShipmentChangeRequest{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *repository) FindShipment(ctx context.Context, id uuid.UUID) (*models.Shipment, error) {
	var shipment models.Shipment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&shipment).Error
	if err != nil {
		return nil, err
	}
	return &shipment, nil
}

func (r *repository) UpdateShipment(ctx context.Context, id uuid.UUID, updates map[string]any) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Shipment{}).
		Where("id = ?", id).
		Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *repository) UpdateShipmentStatus(ctx context.Context, id uuid.UUID, from []enums.ShipmentStatus, updates map[string]any) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Shipment{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *repository) CreateCounterBid(ctx context.Context, bid *models.Bid, items []models.BidLineItem) (*models.Bid, error) {
	if err := r.db.WithContext(ctx).Omit("Partner", "Branch", "LineItems").Create(bid).Error; err != nil {
		return nil, err
	}
	if len(items) > 0 {
		for i := range items {
			items[i].BidID = bid.ID
		}
		if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
			return nil, err
		}
		bid.LineItems = items
	}
	return bid, nil
}

func (r *repository) FindBid(ctx context.Context, id uuid.UUID) (*models.Bid, error) {
	var bid models.Bid
	err := r.db.WithContext(ctx).
		Preload("LineItems").
		Where("id = ?", id).
		First(&bid).Error
	if err != nil {
		return nil, err
	}
	return &bid, nil
}

func (r *repository) UpdateBid(ctx context.Context, id uuid.UUID, updates map[string]any) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Bid{}).
		Where("id = ?", id).
		Updates(updates)
	return result.RowsAffected, result.Error
}
