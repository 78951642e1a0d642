package quotes

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/artmovehq/artmove-backend/pkg/config"
	"github.com/artmovehq/artmove-backend/pkg/db"
	"github.com/artmovehq/artmove-backend/pkg/db/models"
	"github.com/artmovehq/artmove-backend/pkg/enums"
	pkgerrors "github.com/artmovehq/artmove-backend/pkg/errors"
	"github.com/artmovehq/artmove-backend/pkg/metrics"
	"github.com/artmovehq/artmove-backend/pkg/outbox"
	"github.com/artmovehq/artmove-backend/pkg/pagination"
	"github.com/artmovehq/artmove-backend/pkg/refcode"
	"github.com/artmovehq/artmove-backend/pkg/types"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type outboxPublisher interface {
	Emit(ctx context.Context, tx *gorm.DB, event outbox.DomainEvent) error
}

type orgDirectory interface {
	FindOrganizations(ctx context.Context, ids []uuid.UUID) ([]models.Organization, error)
}

// Service defines quote lifecycle operations.
type Service interface {
	CreateQuoteWithArtworks(ctx context.Context, input CreateQuoteInput) (*models.Quote, error)
	GetQuote(ctx context.Context, quoteID, actorOrgID uuid.UUID) (*models.Quote, error)
	ListQuotes(ctx context.Context, clientOrgID uuid.UUID, params pagination.Params, filters ListFilters) (*QuoteList, error)
	AddArtworks(ctx context.Context, input AddArtworksInput) ([]models.QuoteArtwork, error)
	UpdateArtwork(ctx context.Context, input UpdateArtworkInput) error
	DeleteArtwork(ctx context.Context, input DeleteArtworkInput) error
	SubmitQuote(ctx context.Context, input SubmitQuoteInput) error
	ReopenQuote(ctx context.Context, input ReopenQuoteInput) error
	CancelQuote(ctx context.Context, input CancelQuoteInput) error
	ExpireQuotes(ctx context.Context, batchSize int) (int, error)
}

type service struct {
	repo    Repository
	tx      txRunner
	outbox  outboxPublisher
	orgs    orgDirectory
	metrics *metrics.Metrics
	cfg     config.QuotesConfig
}

// AddArtworksInput appends artworks to a draft quote.
type AddArtworksInput struct {
	QuoteID     uuid.UUID
	Artworks    []ArtworkInput
	ActorUserID uuid.UUID
	ActorOrgID  uuid.UUID
}

// UpdateArtworkInput mutates a still-unlocked artwork.
type UpdateArtworkInput struct {
	QuoteID     uuid.UUID
	ArtworkID   uuid.UUID
	Fields      ArtworkInput
	ActorUserID uuid.UUID
	ActorOrgID  uuid.UUID
}

// DeleteArtworkInput removes a still-unlocked artwork.
type DeleteArtworkInput struct {
	QuoteID     uuid.UUID
	ArtworkID   uuid.UUID
	ActorUserID uuid.UUID
	ActorOrgID  uuid.UUID
}

// SubmitQuoteInput publishes a draft quote for bidding.
type SubmitQuoteInput struct {
	QuoteID     uuid.UUID
	ActorUserID uuid.UUID
	ActorOrgID  uuid.UUID
	ActorRole   string
}

// ReopenQuoteInput reverts a quote to active so bids can be solicited again.
type ReopenQuoteInput struct {
	QuoteID     uuid.UUID
	ActorUserID uuid.UUID
	ActorOrgID  uuid.UUID
}

// CancelQuoteInput soft-cancels a quote with a stored reason.
type CancelQuoteInput struct {
	QuoteID     uuid.UUID
	Reason      *string
	ActorUserID uuid.UUID
	ActorOrgID  uuid.UUID
}

// NewService builds a quotes service with the required dependencies.
func NewService(repo Repository, tx txRunner, ob outboxPublisher, orgs orgDirectory, m *metrics.Metrics, cfg config.QuotesConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("quotes repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if ob == nil {
		return nil, fmt.Errorf("outbox publisher required")
	}
	if orgs == nil {
		return nil, fmt.Errorf("org directory required")
	}
	return &service{
		repo:    repo,
		tx:      tx,
		outbox:  ob,
		orgs:    orgs,
		metrics: m,
		cfg:     cfg,
	}, nil
}

// CreateQuoteWithArtworks inserts the quote and its invites first, then the
// artworks in a second transaction. When the artwork insert fails the quote
// survives in draft and the error carries the new quote id so the caller can
// retry the artwork step without re-creating the quote.
func (s *service) CreateQuoteWithArtworks(ctx context.Context, input CreateQuoteInput) (*models.Quote, error) {
	if input.ClientOrgID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "organization context missing")
	}
	if input.ActorUserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	if input.Title == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quote title required")
	}
	if !input.Type.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid quote type")
	}
	if len(input.Artworks) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "at least one artwork required")
	}
	if input.AutoCloseBidding {
		if err := s.validateDeadline(input.BiddingDeadline, input.TargetDateStart, input.TargetDateEnd); err != nil {
			return nil, err
		}
	}

	currency := input.Currency
	if currency == "" {
		currency = "EUR"
	}
	quote := &models.Quote{
		Code:                refcode.New("Q"),
		Title:               input.Title,
		ClientOrgID:         input.ClientOrgID,
		Type:                input.Type,
		Status:              enums.QuoteStatusDraft,
		ClientReference:     input.ClientReference,
		OriginLocation:      input.OriginLocation,
		DestinationLocation: input.DestinationLocation,
		OriginContact:       input.OriginContact,
		DestinationContact:  input.DestinationContact,
		TargetDateStart:     input.TargetDateStart,
		TargetDateEnd:       input.TargetDateEnd,
		Value:               input.Value,
		Currency:            currency,
		BiddingDeadline:     input.BiddingDeadline,
		AutoCloseBidding:    input.AutoCloseBidding,
		DeliverySpecifics:   types.StringSet(input.DeliverySpecifics),
		Notes:               input.Notes,
	}

	invites, err := s.resolveInvites(ctx, input.Invites)
	if err != nil {
		return nil, err
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if _, err := repo.CreateQuote(ctx, quote); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create quote")
		}
		for i := range invites {
			invites[i].QuoteID = quote.ID
		}
		if err := repo.CreateInvites(ctx, invites); err != nil {
			if db.IsForeignKeyViolation(err) {
				return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invited partner or branch does not exist")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create quote invites")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	artworks := make([]models.QuoteArtwork, 0, len(input.Artworks))
	for _, in := range input.Artworks {
		if in.Name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "artwork name required").
				WithDetails(map[string]any{"quote_id": quote.ID, "step": "artworks"})
		}
		artworks = append(artworks, buildArtwork(quote.ID, in))
	}
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).CreateArtworks(ctx, artworks)
	})
	if err != nil {
		// quote row exists; surface the id so callers retry only the artworks
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create quote artworks").
			WithDetails(map[string]any{"quote_id": quote.ID, "step": "artworks"})
	}

	quote.Artworks = artworks
	quote.Invites = invites
	return quote, nil
}

func (s *service) GetQuote(ctx context.Context, quoteID, actorOrgID uuid.UUID) (*models.Quote, error) {
	if quoteID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quote id required")
	}
	quote, err := s.repo.FindQuoteDetail(ctx, quoteID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "quote not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load quote")
	}
	if !s.canView(quote, actorOrgID) {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "quote does not belong to organization")
	}
	for i := range quote.Bids {
		if quote.Bids[i].HiddenBreakdown() {
			quote.Bids[i].LineItems = nil
		}
	}
	return quote, nil
}

func (s *service) ListQuotes(ctx context.Context, clientOrgID uuid.UUID, params pagination.Params, filters ListFilters) (*QuoteList, error) {
	if clientOrgID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "organization context missing")
	}
	list, err := s.repo.ListByClientOrg(ctx, clientOrgID, params, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list quotes")
	}
	return list, nil
}

func (s *service) AddArtworks(ctx context.Context, input AddArtworksInput) ([]models.QuoteArtwork, error) {
	if input.QuoteID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quote id required")
	}
	if len(input.Artworks) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "at least one artwork required")
	}

	quote, err := s.loadOwnedQuote(ctx, input.QuoteID, input.ActorOrgID)
	if err != nil {
		return nil, err
	}
	if quote.Status != enums.QuoteStatusDraft {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "artworks can only be added to a draft quote")
	}

	artworks := make([]models.QuoteArtwork, 0, len(input.Artworks))
	for _, in := range input.Artworks {
		if in.Name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "artwork name required")
		}
		artworks = append(artworks, buildArtwork(quote.ID, in))
	}
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).CreateArtworks(ctx, artworks)
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create artworks")
	}
	return artworks, nil
}

func (s *service) UpdateArtwork(ctx context.Context, input UpdateArtworkInput) error {
	if input.ArtworkID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "artwork id required")
	}
	if _, err := s.loadOwnedQuote(ctx, input.QuoteID, input.ActorOrgID); err != nil {
		return err
	}

	updates := artworkUpdates(input.Fields)
	if len(updates) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "no artwork fields to update")
	}

	affected, err := s.repo.UpdateArtwork(ctx, input.ArtworkID, updates)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update artwork")
	}
	if affected == 0 {
		return s.classifyArtworkMiss(ctx, input.ArtworkID)
	}
	return nil
}

func (s *service) DeleteArtwork(ctx context.Context, input DeleteArtworkInput) error {
	if input.ArtworkID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "artwork id required")
	}
	if _, err := s.loadOwnedQuote(ctx, input.QuoteID, input.ActorOrgID); err != nil {
		return err
	}

	affected, err := s.repo.DeleteArtwork(ctx, input.ArtworkID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete artwork")
	}
	if affected == 0 {
		return s.classifyArtworkMiss(ctx, input.ArtworkID)
	}
	return nil
}

// SubmitQuote publishes a draft quote: the status flips to active under a
// draft-only guard and every unlocked artwork is frozen. Locking is
// idempotent so a retry after partial failure finishes the job.
func (s *service) SubmitQuote(ctx context.Context, input SubmitQuoteInput) error {
	if input.QuoteID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "quote id required")
	}
	if input.ActorUserID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}

	quote, err := s.loadOwnedQuote(ctx, input.QuoteID, input.ActorOrgID)
	if err != nil {
		return err
	}
	if quote.Status != enums.QuoteStatusDraft {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "only draft quotes can be submitted")
	}
	if quote.AutoCloseBidding {
		if err := s.validateDeadline(quote.BiddingDeadline, quote.TargetDateStart, quote.TargetDateEnd); err != nil {
			return err
		}
	}

	now := time.Now().UTC()
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		affected, err := repo.UpdateQuoteStatus(ctx, quote.ID,
			[]enums.QuoteStatus{enums.QuoteStatusDraft},
			map[string]any{
				"status":       enums.QuoteStatusActive,
				"submitted_at": now,
				"submitted_by": input.ActorUserID,
			})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "activate quote")
		}
		if affected == 0 {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "quote is no longer in draft")
		}

		if _, err := repo.LockArtworks(ctx, quote.ID, input.ActorUserID, now); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lock artworks")
		}

		invites, err := repo.FindInvitesByQuote(ctx, quote.ID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load invites")
		}
		invitedOrgIDs := make([]uuid.UUID, 0, len(invites))
		for _, invite := range invites {
			if invite.LogisticsPartnerID != nil {
				invitedOrgIDs = append(invitedOrgIDs, *invite.LogisticsPartnerID)
			}
		}

		return s.outbox.Emit(ctx, tx, outbox.DomainEvent{
			EventType:     enums.EventQuoteSubmitted,
			AggregateType: enums.AggregateQuote,
			AggregateID:   quote.ID,
			Version:       1,
			Actor:         buildActor(input.ActorUserID, input.ActorOrgID, input.ActorRole),
			Data: QuoteSubmittedEvent{
				QuoteID:         quote.ID,
				Code:            quote.Code,
				ClientOrgID:     quote.ClientOrgID,
				Type:            quote.Type,
				BiddingDeadline: quote.BiddingDeadline,
				InvitedOrgIDs:   invitedOrgIDs,
			},
		})
	})
	if err != nil {
		return err
	}
	s.metrics.IncQuotesSubmitted()
	return nil
}

func (s *service) ReopenQuote(ctx context.Context, input ReopenQuoteInput) error {
	if input.QuoteID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "quote id required")
	}
	if _, err := s.loadOwnedQuote(ctx, input.QuoteID, input.ActorOrgID); err != nil {
		return err
	}

	affected, err := s.repo.UpdateQuoteStatus(ctx, input.QuoteID,
		[]enums.QuoteStatus{enums.QuoteStatusPendingApproval, enums.QuoteStatusClosed},
		map[string]any{"status": enums.QuoteStatusActive})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reopen quote")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "quote cannot be reopened from its current state")
	}
	return nil
}

func (s *service) CancelQuote(ctx context.Context, input CancelQuoteInput) error {
	if input.QuoteID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "quote id required")
	}
	quote, err := s.loadOwnedQuote(ctx, input.QuoteID, input.ActorOrgID)
	if err != nil {
		return err
	}
	if quote.Status.IsTerminal() {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "quote is already in a terminal state")
	}

	affected, err := s.repo.UpdateQuoteStatus(ctx, input.QuoteID,
		[]enums.QuoteStatus{enums.QuoteStatusDraft, enums.QuoteStatusActive, enums.QuoteStatusPendingApproval},
		map[string]any{
			"status":        enums.QuoteStatusCancelled,
			"cancelled_at":  time.Now().UTC(),
			"cancel_reason": input.Reason,
		})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "cancel quote")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "quote cannot be cancelled from its current state")
	}
	return nil
}

// ExpireQuotes closes active auto-close auctions whose deadline passed. Runs
// from the cron worker; each quote is expired in its own transaction so one
// failure does not hold the batch.
func (s *service) ExpireQuotes(ctx context.Context, batchSize int) (int, error) {
	if batchSize <= 0 {
		batchSize = 100
	}
	stale, err := s.repo.FindExpiredAuctionQuotes(ctx, time.Now().UTC(), batchSize)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find expired quotes")
	}

	expired := 0
	for _, quote := range stale {
		quote := quote
		err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
			repo := s.repo.WithTx(tx)
			affected, err := repo.UpdateQuoteStatus(ctx, quote.ID,
				[]enums.QuoteStatus{enums.QuoteStatusActive},
				map[string]any{"status": enums.QuoteStatusExpired})
			if err != nil {
				return err
			}
			if affected == 0 {
				return nil
			}
			return s.outbox.Emit(ctx, tx, outbox.DomainEvent{
				EventType:     enums.EventQuoteExpired,
				AggregateType: enums.AggregateQuote,
				AggregateID:   quote.ID,
				Version:       1,
				Data: QuoteExpiredEvent{
					QuoteID:     quote.ID,
					Code:        quote.Code,
					ClientOrgID: quote.ClientOrgID,
				},
			})
		})
		if err != nil {
			return expired, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "expire quote")
		}
		expired++
	}
	s.metrics.AddQuotesExpired(expired)
	return expired, nil
}

func (s *service) loadOwnedQuote(ctx context.Context, quoteID, actorOrgID uuid.UUID) (*models.Quote, error) {
	quote, err := s.repo.FindQuote(ctx, quoteID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "quote not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load quote")
	}
	if actorOrgID != uuid.Nil && quote.ClientOrgID != actorOrgID {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "quote does not belong to organization")
	}
	return quote, nil
}

func (s *service) canView(quote *models.Quote, actorOrgID uuid.UUID) bool {
	if actorOrgID == uuid.Nil || quote.ClientOrgID == actorOrgID {
		return true
	}
	for _, invite := range quote.Invites {
		if invite.LogisticsPartnerID != nil && *invite.LogisticsPartnerID == actorOrgID {
			return true
		}
		if invite.BranchOrgID != nil && *invite.BranchOrgID == actorOrgID {
			return true
		}
	}
	for _, bid := range quote.Bids {
		if bid.LogisticsPartnerID == actorOrgID {
			return true
		}
		if bid.BranchOrgID != nil && *bid.BranchOrgID == actorOrgID {
			return true
		}
	}
	return false
}

func (s *service) classifyArtworkMiss(ctx context.Context, artworkID uuid.UUID) error {
	artwork, err := s.repo.FindArtwork(ctx, artworkID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return pkgerrors.New(pkgerrors.CodeNotFound, "artwork not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load artwork")
	}
	if artwork.LockedAt != nil {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "artwork is locked and cannot be modified")
	}
	return pkgerrors.New(pkgerrors.CodeStateConflict, "artwork could not be updated")
}

func (s *service) validateDeadline(deadline, targetStart, targetEnd *time.Time) error {
	if deadline == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "bidding deadline required when auto-close is enabled")
	}
	now := time.Now().UTC()
	if deadline.Before(now.Add(s.cfg.MinDeadlineLead)) {
		return pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("bidding deadline must be at least %s from now", s.cfg.MinDeadlineLead))
	}
	target := targetStart
	if target == nil {
		target = targetEnd
	}
	if target != nil && deadline.After(target.Add(-s.cfg.DeadlineToArrival)) {
		return pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("bidding deadline must be at least %s before the target date", s.cfg.DeadlineToArrival))
	}
	return nil
}

func (s *service) resolveInvites(ctx context.Context, inputs []InviteInput) ([]models.QuoteInvite, error) {
	if len(inputs) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(inputs)*2)
	for _, in := range inputs {
		if in.LogisticsPartnerID != nil {
			ids = append(ids, *in.LogisticsPartnerID)
		}
		if in.BranchOrgID != nil {
			ids = append(ids, *in.BranchOrgID)
		}
	}
	orgsByID := map[uuid.UUID]models.Organization{}
	if len(ids) > 0 {
		orgs, err := s.orgs.FindOrganizations(ctx, ids)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve invited organizations")
		}
		for _, org := range orgs {
			orgsByID[org.ID] = org
		}
	}

	now := time.Now().UTC()
	seen := map[string]bool{}
	invites := make([]models.QuoteInvite, 0, len(inputs))
	for _, in := range inputs {
		key := inviteKey(in.LogisticsPartnerID, in.BranchOrgID)
		if seen[key] {
			continue
		}
		seen[key] = true

		invite := models.QuoteInvite{
			LogisticsPartnerID: in.LogisticsPartnerID,
			BranchOrgID:        in.BranchOrgID,
			InvitedAt:          now,
		}
		if in.LogisticsPartnerID != nil {
			partner, ok := orgsByID[*in.LogisticsPartnerID]
			if !ok {
				return nil, pkgerrors.New(pkgerrors.CodeValidation, "invited partner does not exist")
			}
			if partner.Type != enums.OrgTypeShipper {
				return nil, pkgerrors.New(pkgerrors.CodeValidation, "invited organization is not a logistics partner")
			}
			invite.PartnerName = &partner.Name
			invite.Abbreviation = partner.Abbreviation
			invite.BrandColor = partner.BrandColor
			invite.LogoURL = partner.LogoURL
		}
		if in.BranchOrgID != nil {
			branch, ok := orgsByID[*in.BranchOrgID]
			if !ok {
				return nil, pkgerrors.New(pkgerrors.CodeValidation, "invited branch does not exist")
			}
			invite.BranchName = &branch.Name
			if invite.LogoURL == nil {
				invite.LogoURL = branch.LogoURL
			}
		}
		invites = append(invites, invite)
	}
	return invites, nil
}

func inviteKey(partnerID, branchID *uuid.UUID) string {
	key := ""
	if partnerID != nil {
		key = partnerID.String()
	}
	key += "|"
	if branchID != nil {
		key += branchID.String()
	}
	return key
}

func artworkUpdates(in ArtworkInput) map[string]any {
	updates := map[string]any{}
	if in.Name != "" {
		updates["name"] = in.Name
	}
	if in.Artist != nil {
		updates["artist"] = in.Artist
	}
	if in.Year != nil {
		updates["year"] = in.Year
	}
	if in.Medium != nil {
		updates["medium"] = in.Medium
	}
	if in.Dimensions != nil {
		updates["dimensions"] = in.Dimensions
	}
	if in.Weight != "" {
		parsed := types.ParseWeight(in.Weight)
		updates["weight_raw"] = parsed.Raw
		if parsed.Unit != "" {
			updates["weight_value"] = parsed.Value
			updates["weight_unit"] = parsed.Unit
		}
	}
	if in.DeclaredValue != nil {
		updates["declared_value"] = in.DeclaredValue
	}
	if in.Crating != nil {
		updates["crating"] = in.Crating
	}
	if in.SpecialRequirements != nil {
		updates["special_requirements"] = types.StringSet(in.SpecialRequirements)
	}
	if in.TariffCode != nil {
		updates["tariff_code"] = in.TariffCode
	}
	if in.CountryOfOrigin != nil {
		updates["country_of_origin"] = in.CountryOfOrigin
	}
	return updates
}

func buildActor(userID, orgID uuid.UUID, role string) *outbox.ActorRef {
	actor := &outbox.ActorRef{UserID: userID, Role: role}
	if orgID != uuid.Nil {
		org := orgID
		actor.OrgID = &org
	}
	return actor
}
