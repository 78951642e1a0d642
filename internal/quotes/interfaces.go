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

// Repository defines persistence operations for quotes, their artworks, and
// invites.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateQuote(ctx context.Context, quote *models.Quote) (*models.Quote, error)
	CreateArtworks(ctx context.Context, artworks []models.QuoteArtwork) error
	CreateInvites(ctx context.Context, invites []models.QuoteInvite) error
	FindQuote(ctx context.Context, id uuid.UUID) (*models.Quote, error)
	FindQuoteDetail(ctx context.Context, id uuid.UUID) (*models.Quote, error)
	ListByClientOrg(ctx context.Context, clientOrgID uuid.UUID, params pagination.Params, filters ListFilters) (*QuoteList, error)
	UpdateQuoteStatus(ctx context.Context, id uuid.UUID, from []enums.QuoteStatus, updates map[string]any) (int64, error)
	UpdateArtwork(ctx context.Context, artworkID uuid.UUID, updates map[string]any) (int64, error)
	DeleteArtwork(ctx context.Context, artworkID uuid.UUID) (int64, error)
	LockArtworks(ctx context.Context, quoteID, lockedBy uuid.UUID, at time.Time) (int64, error)
	FindArtwork(ctx context.Context, artworkID uuid.UUID) (*models.QuoteArtwork, error)
	FindArtworksByQuote(ctx context.Context, quoteID uuid.UUID) ([]models.QuoteArtwork, error)
	FindInvitesByQuote(ctx context.Context, quoteID uuid.UUID) ([]models.QuoteInvite, error)
	FindExpiredAuctionQuotes(ctx context.Context, cutoff time.Time, limit int) ([]models.Quote, error)
}
