package shipments

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/artmovehq/artmove-backend/pkg/db/models"
	"github.com/artmovehq/artmove-backend/pkg/enums"
	"github.com/artmovehq/artmove-backend/pkg/pagination"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a shipments repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) FindShipment(ctx context.Context, id uuid.UUID) (*models.Shipment, error) {
	var shipment models.Shipment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&shipment).Error
	if err != nil {
		return nil, err
	}
	return &shipment, nil
}

func (r *repository) FindShipmentDetail(ctx context.Context, id uuid.UUID) (*models.Shipment, error) {
	var shipment models.Shipment
	err := r.db.WithContext(ctx).
		Preload("QuoteMaps").
		Preload("ChangeRequests", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("ChangeRequests.CounterBid.LineItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC, created_at ASC")
		}).
		Where("id = ?", id).
		First(&shipment).Error
	if err != nil {
		return nil, err
	}
	return &shipment, nil
}

func (r *repository) ListByOrg(ctx context.Context, orgID uuid.UUID, params pagination.Params, filters ListFilters) (*ShipmentList, error) {
	cursor, err := pagination.Decode(params.Cursor)
	if err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Model(&models.Shipment{}).
		Where("client_org_id = ? OR logistics_partner_id = ? OR branch_org_id = ?", orgID, orgID, orgID)
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.DateFrom != nil {
		query = query.Where("created_at >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("created_at <= ?", *filters.DateTo)
	}
	if filters.Query != "" {
		like := "%" + filters.Query + "%"
		query = query.Where("name ILIKE ? OR code ILIKE ?", like, like)
	}
	if cursor != nil {
		query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
	}

	var rows []models.Shipment
	if err := query.
		Order("created_at DESC, id DESC").
		Limit(pagination.FetchLimit(params.Limit)).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	page, hasMore := pagination.TrimPage(rows, params.Limit)
	list := &ShipmentList{Shipments: make([]ShipmentSummary, 0, len(page))}
	for _, s := range page {
		list.Shipments = append(list.Shipments, ShipmentSummary{
			ID:             s.ID,
			Code:           s.Code,
			Name:           s.Name,
			QuoteID:        s.QuoteID,
			Status:         s.Status,
			Amount:         s.Amount,
			Currency:       s.Currency,
			IsConsolidated: s.IsConsolidated,
			ShipDate:       s.ShipDate,
			DeliveryDate:   s.DeliveryDate,
			CreatedAt:      s.CreatedAt,
		})
	}
	if hasMore && len(page) > 0 {
		last := page[len(page)-1]
		list.NextCursor = pagination.Encode(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}
	return list, nil
}

func (r *repository) UpdateShipmentStatus(ctx context.Context, id uuid.UUID, from []enums.ShipmentStatus, updates map[string]any) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Shipment{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *repository) UpdateQuoteStatus(ctx context.Context, id uuid.UUID, from []enums.QuoteStatus, updates map[string]any) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Quote{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *repository) UpdateBidStatus(ctx context.Context, id uuid.UUID, status enums.BidStatus) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Bid{}).
		Where("id = ?", id).
		Update("status", status)
	return result.RowsAffected, result.Error
}

func (r *repository) FindMapsByShipment(ctx context.Context, shipmentID uuid.UUID) ([]models.QuoteShipmentMap, error) {
	var maps []models.QuoteShipmentMap
	err := r.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID).
		Order("created_at ASC").
		Find(&maps).Error
	if err != nil {
		return nil, err
	}
	return maps, nil
}
