package bids

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/artmovehq/artmove-backend/pkg/db"
	"github.com/artmovehq/artmove-backend/pkg/db/dbtypes"
	"github.com/artmovehq/artmove-backend/pkg/db/models"
	"github.com/artmovehq/artmove-backend/pkg/enums"
	pkgerrors "github.com/artmovehq/artmove-backend/pkg/errors"
	"github.com/artmovehq/artmove-backend/pkg/metrics"
	"github.com/artmovehq/artmove-backend/pkg/outbox"
	"github.com/artmovehq/artmove-backend/pkg/refcode"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type outboxPublisher interface {
	Emit(ctx context.Context, tx *gorm.DB, event outbox.DomainEvent) error
}

// Service defines the bid engine operations.
type Service interface {
	UpsertBid(ctx context.Context, input UpsertBidInput) (*models.Bid, error)
	SubmitBid(ctx context.Context, input SubmitBidInput) (*models.Bid, error)
	WithdrawBid(ctx context.Context, input WithdrawBidInput) error
	AcceptBid(ctx context.Context, input AcceptBidInput) (*models.Shipment, error)
	ConsolidateQuotes(ctx context.Context, input ConsolidateInput) (*models.Shipment, error)
	GetBid(ctx context.Context, bidID, actorOrgID uuid.UUID) (*models.Bid, error)
	ListBidsForQuote(ctx context.Context, quoteID, actorOrgID uuid.UUID) ([]models.Bid, error)
	DiffAgainstPrevious(ctx context.Context, bidID, previousBidID uuid.UUID) ([]LineItemDiff, error)
}

type service struct {
	repo    Repository
	tx      txRunner
	outbox  outboxPublisher
	metrics *metrics.Metrics
}

// NewService builds a bids service with the required dependencies.
func NewService(repo Repository, tx txRunner, ob outboxPublisher, m *metrics.Metrics) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("bids repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if ob == nil {
		return nil, fmt.Errorf("outbox publisher required")
	}
	return &service{repo: repo, tx: tx, outbox: ob, metrics: m}, nil
}

// UpsertBid lands on the partner's live (quote, partner, branch) row when
// one exists; the incoming fields win. Withdrawn and shipper-cancelled
// rows no longer occupy the key, so a partner who pulled out can bid
// again with a fresh draft. Line items are replaced wholesale. The
// partial unique index backs this up under concurrency.
func (s *service) UpsertBid(ctx context.Context, input UpsertBidInput) (*models.Bid, error) {
	if input.QuoteID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quote id required")
	}
	if input.PartnerOrgID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "partner organization context missing")
	}
	if input.ActorUserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	if input.Amount != nil && input.Amount.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "bid amount cannot be negative")
	}

	quote, err := s.repo.FindQuote(ctx, input.QuoteID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "quote not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load quote")
	}
	if quote.Status != enums.QuoteStatusActive {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "quote is not open for bidding")
	}
	if quote.AutoCloseBidding && quote.BiddingDeadline != nil && time.Now().UTC().After(*quote.BiddingDeadline) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "bidding deadline has passed")
	}

	var bidID uuid.UUID
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		existing, err := repo.FindBidByKey(ctx, input.QuoteID, input.PartnerOrgID, input.BranchOrgID)
		if err != nil && err != gorm.ErrRecordNotFound {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find existing bid")
		}

		if existing != nil {
			if !existing.IsDraft && !bidIsLive(existing.Status) {
				return pkgerrors.New(pkgerrors.CodeStateConflict, "bid can no longer be edited")
			}
			updates := bidUpdates(input)
			if _, err := repo.UpdateBid(ctx, existing.ID, updates); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update bid")
			}
			bidID = existing.ID
		} else {
			bid := &models.Bid{
				QuoteID:               input.QuoteID,
				LogisticsPartnerID:    input.PartnerOrgID,
				BranchOrgID:           input.BranchOrgID,
				Status:                enums.BidStatusPending,
				IsDraft:               true,
				Amount:                input.Amount,
				Currency:              currencyOrDefault(input.Currency),
				Notes:                 input.Notes,
				EstimatedShipDate:     input.EstimatedShipDate,
				EstimatedDeliveryDate: input.EstimatedDeliveryDate,
			}
			if input.ShowBreakdown != nil {
				bid.ShowBreakdown = *input.ShowBreakdown
			} else {
				bid.ShowBreakdown = true
			}
			if _, err := repo.CreateBid(ctx, bid); err != nil {
				if db.IsUniqueViolation(err) {
					return pkgerrors.Wrap(pkgerrors.CodeConflict, err, "bid already exists for this quote and branch")
				}
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create bid")
			}
			bidID = bid.ID
		}

		if input.LineItems != nil {
			if err := repo.ReplaceLineItems(ctx, bidID, buildLineItems(bidID, input.LineItems)); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "replace line items")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	bid, err := s.repo.FindBid(ctx, bidID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload bid")
	}
	return bid, nil
}

// SubmitBid finalizes a draft. The draft-only guard means a repeat call
// touches zero rows and reports not found rather than resubmitting.
func (s *service) SubmitBid(ctx context.Context, input SubmitBidInput) (*models.Bid, error) {
	if input.BidID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "bid id required")
	}
	if input.PartnerOrgID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "partner organization context missing")
	}

	var submitted *models.Bid
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		bid, err := repo.FindBid(ctx, input.BidID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return pkgerrors.New(pkgerrors.CodeNotFound, "bid not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load bid")
		}
		if bid.LogisticsPartnerID != input.PartnerOrgID {
			return pkgerrors.New(pkgerrors.CodeForbidden, "bid does not belong to organization")
		}

		quote, err := repo.FindQuote(ctx, bid.QuoteID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load quote")
		}

		affected, err := repo.MarkSubmitted(ctx, input.BidID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "submit bid")
		}
		if affected == 0 {
			return pkgerrors.New(pkgerrors.CodeNotFound, "no draft bid to submit")
		}

		bid.IsDraft = false
		bid.Status = enums.BidStatusSubmitted
		submitted = bid

		return s.outbox.Emit(ctx, tx, outbox.DomainEvent{
			EventType:     enums.EventBidSubmitted,
			AggregateType: enums.AggregateBid,
			AggregateID:   bid.ID,
			Version:       1,
			Actor:         buildActor(input.ActorUserID, input.PartnerOrgID, input.ActorRole),
			Data: BidSubmittedEvent{
				BidID:       bid.ID,
				QuoteID:     bid.QuoteID,
				PartnerID:   bid.LogisticsPartnerID,
				BranchOrgID: bid.BranchOrgID,
				ClientOrgID: quote.ClientOrgID,
				Amount:      bid.Amount,
			},
		})
	})
	if err != nil {
		return nil, err
	}
	s.metrics.IncBidsSubmitted()
	return submitted, nil
}

func (s *service) WithdrawBid(ctx context.Context, input WithdrawBidInput) error {
	if input.BidID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "bid id required")
	}
	bid, err := s.repo.FindBid(ctx, input.BidID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return pkgerrors.New(pkgerrors.CodeNotFound, "bid not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load bid")
	}
	if bid.LogisticsPartnerID != input.PartnerOrgID {
		return pkgerrors.New(pkgerrors.CodeForbidden, "bid does not belong to organization")
	}
	if !bidIsLive(bid.Status) {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "only live bids can be withdrawn")
	}

	affected, err := s.repo.UpdateBid(ctx, input.BidID, map[string]any{
		"status": enums.BidStatusWithdrawn,
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "withdraw bid")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "bid could not be withdrawn")
	}
	return nil
}

// AcceptBid books the shipment. The quote's active-to-closed transition is
// the exclusivity gate: whichever acceptance wins the guarded update books
// the shipment, every later attempt sees zero rows and fails.
func (s *service) AcceptBid(ctx context.Context, input AcceptBidInput) (*models.Shipment, error) {
	if input.QuoteID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quote id required")
	}
	if input.BidID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "bid id required")
	}
	if input.BranchOrgID == nil || *input.BranchOrgID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cannot accept bid without branch_org_id")
	}
	if input.ActorUserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}

	var shipment *models.Shipment
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		quote, err := repo.FindQuote(ctx, input.QuoteID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return pkgerrors.New(pkgerrors.CodeNotFound, "quote not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load quote")
		}
		if input.ClientOrgID != uuid.Nil && quote.ClientOrgID != input.ClientOrgID {
			return pkgerrors.New(pkgerrors.CodeForbidden, "quote does not belong to organization")
		}

		bid, err := repo.FindBid(ctx, input.BidID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return pkgerrors.New(pkgerrors.CodeNotFound, "bid not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load bid")
		}
		if bid.QuoteID != quote.ID {
			return pkgerrors.New(pkgerrors.CodeValidation, "bid does not belong to quote")
		}
		if bid.IsDraft || bid.Status != enums.BidStatusSubmitted {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "only submitted bids can be accepted")
		}
		if bid.BranchOrgID != nil && *bid.BranchOrgID != *input.BranchOrgID {
			return pkgerrors.New(pkgerrors.CodeValidation, "branch_org_id does not match the bid's branch")
		}

		affected, err := repo.UpdateQuoteStatus(ctx, quote.ID,
			[]enums.QuoteStatus{enums.QuoteStatusActive},
			map[string]any{"status": enums.QuoteStatusClosed})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "close quote")
		}
		if affected == 0 {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "quote already has an accepted bid or is not active")
		}

		now := time.Now().UTC()
		if _, err := repo.UpdateBid(ctx, bid.ID, map[string]any{
			"status":             enums.BidStatusAccepted,
			"accepted_at":        now,
			"branch_org_id":      *input.BranchOrgID,
			"terms_document_id":  input.TermsDocumentID,
			"terms_document_url": input.TermsDocumentURL,
		}); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "accept bid")
		}

		if _, err := repo.RejectSiblingBids(ctx, quote.ID, bid.ID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reject sibling bids")
		}

		shipment, err = s.buildShipment(ctx, repo, quote, bid, *input.BranchOrgID, input.TermsDocumentID, input.TermsDocumentURL, false)
		if err != nil {
			return err
		}

		artworkIDs, err := repo.FindArtworkIDs(ctx, quote.ID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load artwork ids")
		}
		if err := repo.CreateQuoteShipmentMaps(ctx, []models.QuoteShipmentMap{{
			QuoteID:            quote.ID,
			ShipmentID:         shipment.ID,
			BidID:              bid.ID,
			Relationship:       enums.RelationshipPrimary,
			IncludedArtworkIDs: dbtypes.UUIDArray(artworkIDs),
		}}); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "map quote to shipment")
		}

		return s.outbox.Emit(ctx, tx, outbox.DomainEvent{
			EventType:     enums.EventBidAccepted,
			AggregateType: enums.AggregateBid,
			AggregateID:   bid.ID,
			Version:       1,
			Actor:         buildActor(input.ActorUserID, input.ClientOrgID, input.ActorRole),
			Data: BidAcceptedEvent{
				BidID:       bid.ID,
				QuoteID:     quote.ID,
				ShipmentID:  shipment.ID,
				PartnerID:   bid.LogisticsPartnerID,
				BranchOrgID: *input.BranchOrgID,
				ClientOrgID: quote.ClientOrgID,
				Amount:      shipment.Amount,
			},
		})
	})
	if err != nil {
		return nil, err
	}
	s.metrics.IncBidsAccepted()
	return shipment, nil
}

// ConsolidateQuotes merges the artworks of several quotes into one shipment
// anchored on the primary bid. Every quote is closed under the same
// active-only guard acceptance uses.
func (s *service) ConsolidateQuotes(ctx context.Context, input ConsolidateInput) (*models.Shipment, error) {
	if len(input.QuoteIDs) < 2 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "consolidation requires at least two quotes")
	}
	if input.PrimaryBidID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "primary bid id required")
	}
	if input.ActorUserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}

	var shipment *models.Shipment
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		bid, err := repo.FindBid(ctx, input.PrimaryBidID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return pkgerrors.New(pkgerrors.CodeNotFound, "primary bid not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load primary bid")
		}
		if bid.BranchOrgID == nil || *bid.BranchOrgID == uuid.Nil {
			return pkgerrors.New(pkgerrors.CodeValidation, "cannot consolidate without the primary bid's branch_org_id")
		}
		if bid.IsDraft || bid.Status != enums.BidStatusSubmitted {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "primary bid must be submitted")
		}

		primaryInSet := false
		for _, id := range input.QuoteIDs {
			if id == bid.QuoteID {
				primaryInSet = true
				break
			}
		}
		if !primaryInSet {
			return pkgerrors.New(pkgerrors.CodeValidation, "primary bid's quote must be part of the consolidation")
		}

		primaryQuote, err := repo.FindQuote(ctx, bid.QuoteID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load primary quote")
		}
		if input.ClientOrgID != uuid.Nil && primaryQuote.ClientOrgID != input.ClientOrgID {
			return pkgerrors.New(pkgerrors.CodeForbidden, "quote does not belong to organization")
		}

		quotes := make([]*models.Quote, 0, len(input.QuoteIDs))
		for _, id := range input.QuoteIDs {
			quote, err := repo.FindQuote(ctx, id)
			if err != nil {
				if err == gorm.ErrRecordNotFound {
					return pkgerrors.New(pkgerrors.CodeNotFound, "quote not found").
						WithDetails(map[string]any{"quote_id": id})
				}
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load quote")
			}
			if quote.ClientOrgID != primaryQuote.ClientOrgID {
				return pkgerrors.New(pkgerrors.CodeValidation, "all quotes must belong to the same client organization")
			}
			quotes = append(quotes, quote)
		}

		for _, quote := range quotes {
			affected, err := repo.UpdateQuoteStatus(ctx, quote.ID,
				[]enums.QuoteStatus{enums.QuoteStatusActive},
				map[string]any{"status": enums.QuoteStatusClosed})
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "close quote")
			}
			if affected == 0 {
				return pkgerrors.New(pkgerrors.CodeStateConflict, "quote is not active").
					WithDetails(map[string]any{"quote_id": quote.ID})
			}
		}

		now := time.Now().UTC()
		if _, err := repo.UpdateBid(ctx, bid.ID, map[string]any{
			"status":      enums.BidStatusAccepted,
			"accepted_at": now,
		}); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "accept primary bid")
		}
		for _, quote := range quotes {
			if _, err := repo.RejectSiblingBids(ctx, quote.ID, bid.ID); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reject sibling bids")
			}
		}

		shipment, err = s.buildShipment(ctx, repo, primaryQuote, bid, *bid.BranchOrgID, bid.TermsDocumentID, bid.TermsDocumentURL, true)
		if err != nil {
			return err
		}

		maps := make([]models.QuoteShipmentMap, 0, len(quotes))
		for _, quote := range quotes {
			artworkIDs, err := repo.FindArtworkIDs(ctx, quote.ID)
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load artwork ids")
			}
			relationship := enums.RelationshipConsolidated
			if quote.ID == primaryQuote.ID {
				relationship = enums.RelationshipPrimary
			}
			maps = append(maps, models.QuoteShipmentMap{
				QuoteID:            quote.ID,
				ShipmentID:         shipment.ID,
				BidID:              bid.ID,
				Relationship:       relationship,
				IncludedArtworkIDs: dbtypes.UUIDArray(artworkIDs),
			})
		}
		if err := repo.CreateQuoteShipmentMaps(ctx, maps); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "map quotes to shipment")
		}

		return s.outbox.Emit(ctx, tx, outbox.DomainEvent{
			EventType:     enums.EventQuotesConsolidated,
			AggregateType: enums.AggregateShipment,
			AggregateID:   shipment.ID,
			Version:       1,
			Actor:         buildActor(input.ActorUserID, input.ClientOrgID, input.ActorRole),
			Data: QuotesConsolidatedEvent{
				ShipmentID:   shipment.ID,
				PrimaryBidID: bid.ID,
				QuoteIDs:     input.QuoteIDs,
				ClientOrgID:  primaryQuote.ClientOrgID,
				PartnerID:    bid.LogisticsPartnerID,
			},
		})
	})
	if err != nil {
		return nil, err
	}
	s.metrics.IncBidsAccepted()
	return shipment, nil
}

func (s *service) GetBid(ctx context.Context, bidID, actorOrgID uuid.UUID) (*models.Bid, error) {
	if bidID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "bid id required")
	}
	bid, err := s.repo.FindBid(ctx, bidID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "bid not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load bid")
	}
	if bid.HiddenBreakdown() && bid.LogisticsPartnerID != actorOrgID {
		bid.LineItems = nil
	}
	return bid, nil
}

func (s *service) ListBidsForQuote(ctx context.Context, quoteID, actorOrgID uuid.UUID) ([]models.Bid, error) {
	if quoteID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quote id required")
	}
	rows, err := s.repo.FindBidsByQuote(ctx, quoteID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list bids")
	}
	for i := range rows {
		if rows[i].HiddenBreakdown() && rows[i].LogisticsPartnerID != actorOrgID {
			rows[i].LineItems = nil
		}
	}
	return rows, nil
}

// DiffAgainstPrevious resolves both bids' line items and walks the
// supersedes chain.
func (s *service) DiffAgainstPrevious(ctx context.Context, bidID, previousBidID uuid.UUID) ([]LineItemDiff, error) {
	if bidID == uuid.Nil || previousBidID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "both bid ids required")
	}
	current, err := s.repo.FindLineItems(ctx, bidID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load current line items")
	}
	previous, err := s.repo.FindLineItems(ctx, previousBidID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load previous line items")
	}
	return DiffLineItems(current, previous), nil
}

func (s *service) buildShipment(ctx context.Context, repo Repository, quote *models.Quote, bid *models.Bid, branchOrgID uuid.UUID, termsDocID *uuid.UUID, termsDocURL *string, consolidated bool) (*models.Shipment, error) {
	amount := decimal.Zero
	if bid.Amount != nil {
		amount = *bid.Amount
	}
	shipment := &models.Shipment{
		Code:                refcode.New("S"),
		Name:                quote.Title,
		QuoteID:             quote.ID,
		BidID:               bid.ID,
		ClientOrgID:         quote.ClientOrgID,
		LogisticsPartnerID:  bid.LogisticsPartnerID,
		BranchOrgID:         branchOrgID,
		Status:              enums.ShipmentStatusChecking,
		Amount:              amount,
		Currency:            currencyOrDefault(bid.Currency),
		OriginLocation:      quote.OriginLocation,
		DestinationLocation: quote.DestinationLocation,
		ShipDate:            bid.EstimatedShipDate,
		DeliveryDate:        bid.EstimatedDeliveryDate,
		IsConsolidated:      consolidated,
		TermsDocumentID:     termsDocID,
		TermsDocumentURL:    termsDocURL,
	}
	if shipment.ShipDate == nil {
		shipment.ShipDate = quote.TargetDateStart
	}
	if shipment.DeliveryDate == nil {
		shipment.DeliveryDate = quote.TargetDateEnd
	}
	if _, err := repo.CreateShipment(ctx, shipment); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create shipment")
	}
	return shipment, nil
}

func bidUpdates(input UpsertBidInput) map[string]any {
	updates := map[string]any{}
	if input.Amount != nil {
		updates["amount"] = input.Amount
	}
	if input.Currency != "" {
		updates["currency"] = input.Currency
	}
	if input.Notes != nil {
		updates["notes"] = input.Notes
	}
	if input.ShowBreakdown != nil {
		updates["show_breakdown"] = *input.ShowBreakdown
	}
	if input.EstimatedShipDate != nil {
		updates["estimated_ship_date"] = input.EstimatedShipDate
	}
	if input.EstimatedDeliveryDate != nil {
		updates["estimated_delivery_date"] = input.EstimatedDeliveryDate
	}
	return updates
}

func currencyOrDefault(currency string) string {
	if currency == "" {
		return "EUR"
	}
	return currency
}

func buildActor(userID, orgID uuid.UUID, role string) *outbox.ActorRef {
	actor := &outbox.ActorRef{UserID: userID, Role: role}
	if orgID != uuid.Nil {
		org := orgID
		actor.OrgID = &org
	}
	return actor
}
