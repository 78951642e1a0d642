package quotes

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/artmovehq/artmove-backend/pkg/db/models"
	"github.com/artmovehq/artmove-backend/pkg/enums"
	"github.com/artmovehq/artmove-backend/pkg/pagination"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a quotes repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) CreateQuote(ctx context.Context, quote *models.Quote) (*models.Quote, error) {
	if err := r.db.WithContext(ctx).Omit("Artworks", "Invites", "Bids").Create(quote).Error; err != nil {
		return nil, err
	}
	return quote, nil
}

func (r *repository) CreateArtworks(ctx context.Context, artworks []models.QuoteArtwork) error {
	if len(artworks) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&artworks).Error
}

func (r *repository) CreateInvites(ctx context.Context, invites []models.QuoteInvite) error {
	if len(invites) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&invites).Error
}

func (r *repository) FindQuote(ctx context.Context, id uuid.UUID) (*models.Quote, error) {
	var quote models.Quote
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&quote).Error
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

func (r *repository) FindQuoteDetail(ctx context.Context, id uuid.UUID) (*models.Quote, error) {
	var quote models.Quote
	err := r.db.WithContext(ctx).
		Preload("Artworks", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Invites").
		Preload("Bids.Partner").
		Preload("Bids.Branch").
		Preload("Bids.LineItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC, created_at ASC")
		}).
		Where("id = ?", id).
		First(&quote).Error
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

func (r *repository) ListByClientOrg(ctx context.Context, clientOrgID uuid.UUID, params pagination.Params, filters ListFilters) (*QuoteList, error) {
	cursor, err := pagination.Decode(params.Cursor)
	if err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Model(&models.Quote{}).
		Where("client_org_id = ?", clientOrgID)
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.Type != nil {
		query = query.Where("type = ?", *filters.Type)
	}
	if filters.DateFrom != nil {
		query = query.Where("created_at >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("created_at <= ?", *filters.DateTo)
	}
	if filters.Query != "" {
		like := "%" + filters.Query + "%"
		query = query.Where("title ILIKE ? OR code ILIKE ?", like, like)
	}
	if cursor != nil {
		query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
	}

	var rows []models.Quote
	if err := query.
		Preload("Artworks").
		Preload("Bids").
		Order("created_at DESC, id DESC").
		Limit(pagination.FetchLimit(params.Limit)).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	page, hasMore := pagination.TrimPage(rows, params.Limit)
	list := &QuoteList{Quotes: make([]QuoteSummary, 0, len(page))}
	for _, q := range page {
		list.Quotes = append(list.Quotes, QuoteSummary{
			ID:              q.ID,
			Code:            q.Code,
			Title:           q.Title,
			Type:            q.Type,
			Status:          q.Status,
			ArtworkCount:    len(q.Artworks),
			BidCount:        len(q.Bids),
			BiddingDeadline: q.BiddingDeadline,
			TargetDateStart: q.TargetDateStart,
			TargetDateEnd:   q.TargetDateEnd,
			CreatedAt:       q.CreatedAt,
		})
	}
	if hasMore && len(page) > 0 {
		last := page[len(page)-1]
		list.NextCursor = pagination.Encode(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}
	return list, nil
}

// UpdateQuoteStatus applies updates only when the quote sits in one of the
// from statuses. Zero affected rows means the guard lost.
func (r *repository) UpdateQuoteStatus(ctx context.Context, id uuid.UUID, from []enums.QuoteStatus, updates map[string]any) (int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Quote{}).Where("id = ?", id)
	if len(from) > 0 {
		query = query.Where("status IN ?", from)
	}
	res := query.Updates(updates)
	return res.RowsAffected, res.Error
}

// UpdateArtwork mutates an artwork only while it is unlocked.
func (r *repository) UpdateArtwork(ctx context.Context, artworkID uuid.UUID, updates map[string]any) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.QuoteArtwork{}).
		Where("id = ? AND locked_at IS NULL", artworkID).
		Updates(updates)
	return res.RowsAffected, res.Error
}

// DeleteArtwork removes an artwork only while it is unlocked.
func (r *repository) DeleteArtwork(ctx context.Context, artworkID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND locked_at IS NULL", artworkID).
		Delete(&models.QuoteArtwork{})
	return res.RowsAffected, res.Error
}

// LockArtworks freezes every still-unlocked artwork of the quote. Re-running
// only touches rows the first pass missed.
func (r *repository) LockArtworks(ctx context.Context, quoteID, lockedBy uuid.UUID, at time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.QuoteArtwork{}).
		Where("quote_id = ? AND locked_at IS NULL", quoteID).
		Updates(map[string]any{
			"locked_at": at,
			"locked_by": lockedBy,
		})
	return res.RowsAffected, res.Error
}

func (r *repository) FindArtwork(ctx context.Context, artworkID uuid.UUID) (*models.QuoteArtwork, error) {
	var artwork models.QuoteArtwork
	err := r.db.WithContext(ctx).Where("id = ?", artworkID).First(&artwork).Error
	if err != nil {
		return nil, err
	}
	return &artwork, nil
}

func (r *repository) FindArtworksByQuote(ctx context.Context, quoteID uuid.UUID) ([]models.QuoteArtwork, error) {
	var artworks []models.QuoteArtwork
	err := r.db.WithContext(ctx).
		Where("quote_id = ?", quoteID).
		Order("created_at ASC").
		Find(&artworks).Error
	if err != nil {
		return nil, err
	}
	return artworks, nil
}

func (r *repository) FindInvitesByQuote(ctx context.Context, quoteID uuid.UUID) ([]models.QuoteInvite, error) {
	var invites []models.QuoteInvite
	err := r.db.WithContext(ctx).
		Where("quote_id = ?", quoteID).
		Order("invited_at ASC").
		Find(&invites).Error
	if err != nil {
		return nil, err
	}
	return invites, nil
}

// FindExpiredAuctionQuotes returns active auto-close quotes whose bidding
// deadline passed before the cutoff.
func (r *repository) FindExpiredAuctionQuotes(ctx context.Context, cutoff time.Time, limit int) ([]models.Quote, error) {
	var rows []models.Quote
	err := r.db.WithContext(ctx).
		Where("status = ? AND auto_close_bidding = TRUE AND bidding_deadline IS NOT NULL AND bidding_deadline < ?",
			enums.QuoteStatusActive, cutoff).
		Order("bidding_deadline ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
