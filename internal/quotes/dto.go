package quotes

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/artmovehq/artmove-backend/pkg/db/models"
	"github.com/artmovehq/artmove-backend/pkg/enums"
	"github.com/artmovehq/artmove-backend/pkg/types"
)

// ListFilters describe the inputs supported by the quotes list.
type ListFilters struct {
	Status   *enums.QuoteStatus
	Type     *enums.QuoteType
	DateFrom *time.Time
	DateTo   *time.Time
	Query    string
}

// QuoteSummary exposes the aggregated fields returned in the quotes list.
type QuoteSummary struct {
	ID              uuid.UUID         `json:"id"`
	Code            string            `json:"code"`
	Title           string            `json:"title"`
	Type            enums.QuoteType   `json:"type"`
	Status          enums.QuoteStatus `json:"status"`
	ArtworkCount    int               `json:"artwork_count"`
	BidCount        int               `json:"bid_count"`
	BiddingDeadline *time.Time        `json:"bidding_deadline,omitempty"`
	TargetDateStart *time.Time        `json:"target_date_start,omitempty"`
	TargetDateEnd   *time.Time        `json:"target_date_end,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}

// QuoteList wraps the paginated quotes plus the next page cursor.
type QuoteList struct {
	Quotes     []QuoteSummary `json:"quotes"`
	NextCursor string         `json:"next_cursor,omitempty"`
}

// ArtworkInput carries one artwork's descriptive fields for create/update.
type ArtworkInput struct {
	Name                string           `json:"name" validate:"required"`
	Artist              *string          `json:"artist,omitempty"`
	Year                *string          `json:"year,omitempty"`
	Medium              *string          `json:"medium,omitempty"`
	Dimensions          *string          `json:"dimensions,omitempty"`
	Weight              string           `json:"weight,omitempty"`
	DeclaredValue       *decimal.Decimal `json:"declared_value,omitempty"`
	Crating             *string          `json:"crating,omitempty"`
	SpecialRequirements []string         `json:"special_requirements,omitempty"`
	TariffCode          *string          `json:"tariff_code,omitempty"`
	CountryOfOrigin     *string          `json:"country_of_origin,omitempty"`
}

// InviteInput solicits one partner/branch pair for a quote.
type InviteInput struct {
	LogisticsPartnerID *uuid.UUID `json:"logistics_partner_id,omitempty"`
	BranchOrgID        *uuid.UUID `json:"branch_org_id,omitempty"`
}

// CreateQuoteInput is the full create payload: the quote, its artworks, and
// the solicited partners.
type CreateQuoteInput struct {
	Title               string           `json:"title" validate:"required"`
	Type                enums.QuoteType  `json:"type" validate:"required"`
	ClientReference     *string          `json:"client_reference,omitempty"`
	OriginLocation      *types.Location  `json:"origin_location,omitempty"`
	DestinationLocation *types.Location  `json:"destination_location,omitempty"`
	OriginContact       *types.Contact   `json:"origin_contact,omitempty"`
	DestinationContact  *types.Contact   `json:"destination_contact,omitempty"`
	TargetDateStart     *time.Time       `json:"target_date_start,omitempty"`
	TargetDateEnd       *time.Time       `json:"target_date_end,omitempty"`
	Value               *decimal.Decimal `json:"value,omitempty"`
	Currency            string           `json:"currency,omitempty"`
	BiddingDeadline     *time.Time       `json:"bidding_deadline,omitempty"`
	AutoCloseBidding    bool             `json:"auto_close_bidding"`
	DeliverySpecifics   []string         `json:"delivery_specifics,omitempty"`
	Notes               *string          `json:"notes,omitempty"`
	Artworks            []ArtworkInput   `json:"artworks" validate:"min=1,dive"`
	Invites             []InviteInput    `json:"invites,omitempty"`

	ClientOrgID uuid.UUID `json:"-"`
	ActorUserID uuid.UUID `json:"-"`
	ActorRole   string    `json:"-"`
}

// QuoteSubmittedEvent is emitted when a quote opens for bidding.
type QuoteSubmittedEvent struct {
	QuoteID         uuid.UUID       `json:"quote_id"`
	Code            string          `json:"code"`
	ClientOrgID     uuid.UUID       `json:"client_org_id"`
	Type            enums.QuoteType `json:"type"`
	BiddingDeadline *time.Time      `json:"bidding_deadline,omitempty"`
	InvitedOrgIDs   []uuid.UUID     `json:"invited_org_ids,omitempty"`
}

// QuoteExpiredEvent is emitted when the expiry job closes a stale auction.
type QuoteExpiredEvent struct {
	QuoteID     uuid.UUID `json:"quote_id"`
	Code        string    `json:"code"`
	ClientOrgID uuid.UUID `json:"client_org_id"`
}

func buildArtwork(quoteID uuid.UUID, in ArtworkInput) models.QuoteArtwork {
	artwork := models.QuoteArtwork{
		QuoteID:             quoteID,
		Name:                in.Name,
		Artist:              in.Artist,
		Year:                in.Year,
		Medium:              in.Medium,
		Dimensions:          in.Dimensions,
		DeclaredValue:       in.DeclaredValue,
		Crating:             in.Crating,
		SpecialRequirements: types.StringSet(in.SpecialRequirements),
		TariffCode:          in.TariffCode,
		CountryOfOrigin:     in.CountryOfOrigin,
	}
	artwork.SetWeight(in.Weight)
	return artwork
}
