package changerequests

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/artmovehq/artmove-backend/pkg/db/models"
	"github.com/artmovehq/artmove-backend/pkg/enums"
	pkgerrors "github.com/artmovehq/artmove-backend/pkg/errors"
	"github.com/artmovehq/artmove-backend/pkg/metrics"
	"github.com/artmovehq/artmove-backend/pkg/outbox"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type outboxPublisher interface {
	Emit(ctx context.Context, tx *gorm.DB, event outbox.DomainEvent) error
}

// Service drives the post-acceptance negotiation: change requests, counter
// offers, and their resolution against the shipment.
type Service interface {
	CreateChangeRequest(ctx context.Context, input CreateInput) (*models.ShipmentChangeRequest, error)
	ApproveChangeRequest(ctx context.Context, input ApproveInput) error
	RejectChangeRequest(ctx context.Context, input RejectInput) error
	CounterChangeRequest(ctx context.Context, input CounterInput) (*models.Bid, error)
	AcceptCounterOffer(ctx context.Context, input ResolveCounterInput) error
	RejectCounterOffer(ctx context.Context, input ResolveCounterInput) error
	ListChangeRequests(ctx context.Context, shipmentID, actorOrgID uuid.UUID) ([]models.ShipmentChangeRequest, error)
}

type service struct {
	repo    Repository
	tx      txRunner
	outbox  outboxPublisher
	metrics *metrics.Metrics
}

// NewService builds a change-requests service with the required dependencies.
func NewService(repo Repository, tx txRunner, ob outboxPublisher, m *metrics.Metrics) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("change requests repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if ob == nil {
		return nil, fmt.Errorf("outbox publisher required")
	}
	return &service{repo: repo, tx: tx, outbox: ob, metrics: m}, nil
}

// CreateChangeRequest opens a request against a live shipment. The proposal
// is sanitized before it is stored so an empty location stub never survives
// into the row.
func (s *service) CreateChangeRequest(ctx context.Context, input CreateInput) (*models.ShipmentChangeRequest, error) {
	if input.ShipmentID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "shipment id required")
	}
	if input.ActorOrgID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "organization context missing")
	}
	input.Proposal.Sanitize()
	if input.ProposedShipDate == nil && input.ProposedDeliveryDate == nil && input.Proposal.IsEmpty() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "change request must propose at least one change")
	}

	var request *models.ShipmentChangeRequest
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		shipment, err := s.loadShipment(ctx, repo, input.ShipmentID)
		if err != nil {
			return err
		}
		if shipment.Status.IsTerminal() {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "shipment is in a terminal state")
		}
		if !orgOnShipment(shipment, input.ActorOrgID) {
			return pkgerrors.New(pkgerrors.CodeForbidden, "shipment is not visible to this organization")
		}

		priorStatus := shipment.Status
		request = &models.ShipmentChangeRequest{
			ShipmentID:             shipment.ID,
			Status:                 enums.ChangeRequestStatusPending,
			RequestedByOrgID:       input.ActorOrgID,
			PreviousShipmentStatus: &priorStatus,
			ProposedShipDate:       input.ProposedShipDate,
			ProposedDeliveryDate:   input.ProposedDeliveryDate,
			Proposal:               input.Proposal,
			Notes:                  input.Notes,
		}
		if _, err := repo.CreateChangeRequest(ctx, request); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create change request")
		}

		if _, err := repo.UpdateShipmentStatus(ctx, shipment.ID,
			[]enums.ShipmentStatus{enums.ShipmentStatusChecking, enums.ShipmentStatusPending, enums.ShipmentStatusPendingApproval},
			map[string]any{"status": enums.ShipmentStatusPendingChange}); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "flag shipment pending change")
		}

		return s.outbox.Emit(ctx, tx, outbox.DomainEvent{
			EventType:     enums.EventChangeRequestCreated,
			AggregateType: enums.AggregateChangeRequest,
			AggregateID:   request.ID,
			Version:       1,
			Actor:         buildActor(input.ActorUserID, input.ActorOrgID, input.ActorRole),
			Data: ChangeRequestCreatedEvent{
				ChangeRequestID: request.ID,
				ShipmentID:      shipment.ID,
				RequestedBy:     input.ActorOrgID,
				ClientOrgID:     shipment.ClientOrgID,
				PartnerID:       shipment.LogisticsPartnerID,
			},
		})
	})
	if err != nil {
		return nil, err
	}
	return request, nil
}

// ApproveChangeRequest accepts the original proposal and applies it to the
// shipment.
func (s *service) ApproveChangeRequest(ctx context.Context, input ApproveInput) error {
	if input.ChangeRequestID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "change request id required")
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		request, err := s.loadChangeRequest(ctx, repo, input.ChangeRequestID)
		if err != nil {
			return err
		}
		if request.Status != enums.ChangeRequestStatusPending {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "only pending change requests can be approved directly")
		}
		shipment, err := s.loadShipment(ctx, repo, request.ShipmentID)
		if err != nil {
			return err
		}
		if !orgOnShipment(shipment, input.ActorOrgID) {
			return pkgerrors.New(pkgerrors.CodeForbidden, "shipment is not visible to this organization")
		}
		request.Proposal.Sanitize()

		now := time.Now().UTC()
		affected, err := repo.UpdateChangeRequest(ctx, request.ID,
			[]enums.ChangeRequestStatus{enums.ChangeRequestStatusPending},
			map[string]any{
				"status":       enums.ChangeRequestStatusApproved,
				"responded_by": input.ActorUserID,
				"responded_at": now,
			})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "approve change request")
		}
		if affected == 0 {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "change request was resolved concurrently")
		}

		updates := proposalUpdates(request)
		if len(updates) > 0 {
			if _, err := repo.UpdateShipment(ctx, request.ShipmentID, updates); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "apply proposal to shipment")
			}
		}
		if err := s.releasePendingChange(ctx, repo, request); err != nil {
			return err
		}

		return s.emitResolved(ctx, tx, request, shipment, enums.ChangeRequestStatusApproved, nil, input.ActorUserID, input.ActorOrgID, input.ActorRole)
	})
	if err != nil {
		return err
	}
	s.metrics.IncChangeRequests("approved")
	return nil
}

// RejectChangeRequest declines the proposal. Nothing is applied to the
// shipment.
func (s *service) RejectChangeRequest(ctx context.Context, input RejectInput) error {
	if input.ChangeRequestID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "change request id required")
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		request, err := s.loadChangeRequest(ctx, repo, input.ChangeRequestID)
		if err != nil {
			return err
		}
		if !request.Status.IsOpen() {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "change request is already resolved")
		}
		shipment, err := s.loadShipment(ctx, repo, request.ShipmentID)
		if err != nil {
			return err
		}
		if !orgOnShipment(shipment, input.ActorOrgID) {
			return pkgerrors.New(pkgerrors.CodeForbidden, "shipment is not visible to this organization")
		}

		now := time.Now().UTC()
		affected, err := repo.UpdateChangeRequest(ctx, request.ID,
			[]enums.ChangeRequestStatus{enums.ChangeRequestStatusPending, enums.ChangeRequestStatusCountered},
			map[string]any{
				"status":       enums.ChangeRequestStatusRejected,
				"reason":       input.Reason,
				"responded_by": input.ActorUserID,
				"responded_at": now,
			})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reject change request")
		}
		if affected == 0 {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "change request was resolved concurrently")
		}

		if err := s.releasePendingChange(ctx, repo, request); err != nil {
			return err
		}

		return s.emitResolved(ctx, tx, request, shipment, enums.ChangeRequestStatusRejected, nil, input.ActorUserID, input.ActorOrgID, input.ActorRole)
	})
	if err != nil {
		return err
	}
	s.metrics.IncChangeRequests("rejected")
	return nil
}

// CounterChangeRequest answers a pending request with a counter-offer bid.
// The counter bid chains its line items to the accepted bid's items via
// supersedes_id and carries the change request it answers.
func (s *service) CounterChangeRequest(ctx context.Context, input CounterInput) (*models.Bid, error) {
	if input.ChangeRequestID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "change request id required")
	}
	if input.Amount.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "counter amount cannot be negative")
	}

	var counter *models.Bid
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		request, err := s.loadChangeRequest(ctx, repo, input.ChangeRequestID)
		if err != nil {
			return err
		}
		if request.Status != enums.ChangeRequestStatusPending {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "only pending change requests can be countered")
		}

		shipment, err := s.loadShipment(ctx, repo, request.ShipmentID)
		if err != nil {
			return err
		}
		if shipment.LogisticsPartnerID != input.ActorOrgID && shipment.BranchOrgID != input.ActorOrgID {
			return pkgerrors.New(pkgerrors.CodeForbidden, "only the logistics partner can counter")
		}

		now := time.Now().UTC()
		amount := input.Amount
		branch := shipment.BranchOrgID
		counter = &models.Bid{
			QuoteID:                   shipment.QuoteID,
			LogisticsPartnerID:        shipment.LogisticsPartnerID,
			BranchOrgID:               &branch,
			Status:                    enums.BidStatusCounterOffer,
			IsDraft:                   false,
			Amount:                    &amount,
			Currency:                  shipment.Currency,
			Notes:                     input.Notes,
			EstimatedShipDate:         input.EstimatedShipDate,
			EstimatedDeliveryDate:     input.EstimatedDeliveryDate,
			SubmittedAt:               &now,
			NeedsConfirmationAt:       &now,
			CounterForChangeRequestID: &request.ID,
		}
		if _, err := repo.CreateCounterBid(ctx, counter, buildCounterItems(input.LineItems)); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create counter bid")
		}

		affected, err := repo.UpdateChangeRequest(ctx, request.ID,
			[]enums.ChangeRequestStatus{enums.ChangeRequestStatusPending},
			map[string]any{
				"status":          enums.ChangeRequestStatusCountered,
				"counter_bid_id":  counter.ID,
				"proposed_amount": amount,
			})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "mark change request countered")
		}
		if affected == 0 {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "change request was resolved concurrently")
		}

		return s.outbox.Emit(ctx, tx, outbox.DomainEvent{
			EventType:     enums.EventChangeRequestCounter,
			AggregateType: enums.AggregateChangeRequest,
			AggregateID:   request.ID,
			Version:       1,
			Actor:         buildActor(input.ActorUserID, input.ActorOrgID, input.ActorRole),
			Data: ChangeRequestCounteredEvent{
				ChangeRequestID: request.ID,
				ShipmentID:      request.ShipmentID,
				CounterBidID:    counter.ID,
				ProposedAmount:  amount,
				ClientOrgID:     shipment.ClientOrgID,
			},
		})
	})
	if err != nil {
		return nil, err
	}
	s.metrics.IncCounterOffers()
	return counter, nil
}

// AcceptCounterOffer applies the counter bid to the shipment. All three
// pieces of context, a resolvable change request, the counter bid, and the
// counter bid's branch, must be present before anything persists.
func (s *service) AcceptCounterOffer(ctx context.Context, input ResolveCounterInput) error {
	err := s.resolveCounter(ctx, input, true)
	if err != nil {
		return err
	}
	s.metrics.IncChangeRequests("counter_accepted")
	return nil
}

// RejectCounterOffer closes the negotiation without touching the shipment's
// amount, dates, or locations.
func (s *service) RejectCounterOffer(ctx context.Context, input ResolveCounterInput) error {
	err := s.resolveCounter(ctx, input, false)
	if err != nil {
		return err
	}
	s.metrics.IncChangeRequests("counter_rejected")
	return nil
}

func (s *service) ListChangeRequests(ctx context.Context, shipmentID, actorOrgID uuid.UUID) ([]models.ShipmentChangeRequest, error) {
	if shipmentID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "shipment id required")
	}
	shipment, err := s.loadShipment(ctx, s.repo, shipmentID)
	if err != nil {
		return nil, err
	}
	if !orgOnShipment(shipment, actorOrgID) {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "shipment is not visible to this organization")
	}
	requests, err := s.repo.FindChangeRequestsByShipment(ctx, shipmentID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list change requests")
	}
	return requests, nil
}

func (s *service) resolveCounter(ctx context.Context, input ResolveCounterInput, accept bool) error {
	if input.ShipmentID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "shipment id required")
	}

	return s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		shipment, err := s.loadShipment(ctx, repo, input.ShipmentID)
		if err != nil {
			return err
		}
		if shipment.ClientOrgID != input.ActorOrgID {
			return pkgerrors.New(pkgerrors.CodeForbidden, "only the client can resolve a counter offer")
		}

		request, err := s.resolveChangeRequest(ctx, repo, shipment.ID, input.ChangeRequestID)
		if err != nil {
			return err
		}
		if request.ShipmentID != shipment.ID {
			return pkgerrors.New(pkgerrors.CodeValidation, "change request does not belong to shipment")
		}
		// Sanitize runs on every resolution, even for stored proposals; a
		// stale empty-location payload must never reach the shipment row.
		request.Proposal.Sanitize()

		bidID := request.CounterBidID
		if input.BidID != nil {
			bidID = input.BidID
		}
		if bidID == nil || *bidID == uuid.Nil {
			return pkgerrors.New(pkgerrors.CodeValidation, "cannot resolve counter offer without bid_id")
		}
		counter, err := repo.FindBid(ctx, *bidID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return pkgerrors.New(pkgerrors.CodeNotFound, "counter bid not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load counter bid")
		}
		if counter.CounterForChangeRequestID == nil || *counter.CounterForChangeRequestID != request.ID {
			return pkgerrors.New(pkgerrors.CodeValidation, "bid is not the counter offer for this change request")
		}
		if counter.BranchOrgID == nil || *counter.BranchOrgID == uuid.Nil {
			return pkgerrors.New(pkgerrors.CodeValidation, "cannot resolve counter offer without branch_org_id")
		}

		now := time.Now().UTC()
		if accept {
			affected, err := repo.UpdateChangeRequest(ctx, request.ID,
				[]enums.ChangeRequestStatus{enums.ChangeRequestStatusCountered},
				map[string]any{
					"status":       enums.ChangeRequestStatusApproved,
					"responded_by": input.ActorUserID,
					"responded_at": now,
				})
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "approve counter offer")
			}
			if affected == 0 {
				return pkgerrors.New(pkgerrors.CodeStateConflict, "change request is not awaiting a counter decision")
			}

			if _, err := repo.UpdateBid(ctx, counter.ID, map[string]any{
				"status":      enums.BidStatusAccepted,
				"accepted_at": now,
			}); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "accept counter bid")
			}

			updates := proposalUpdates(request)
			if counter.Amount != nil {
				updates["amount"] = counter.Amount
			}
			updates["bid_id"] = counter.ID
			if counter.EstimatedShipDate != nil {
				updates["ship_date"] = counter.EstimatedShipDate
			}
			if counter.EstimatedDeliveryDate != nil {
				updates["delivery_date"] = counter.EstimatedDeliveryDate
			}
			if _, err := repo.UpdateShipment(ctx, shipment.ID, updates); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "apply counter offer to shipment")
			}
		} else {
			affected, err := repo.UpdateChangeRequest(ctx, request.ID,
				[]enums.ChangeRequestStatus{enums.ChangeRequestStatusCountered},
				map[string]any{
					"status":       enums.ChangeRequestStatusRejected,
					"reason":       input.Reason,
					"responded_by": input.ActorUserID,
					"responded_at": now,
				})
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reject counter offer")
			}
			if affected == 0 {
				return pkgerrors.New(pkgerrors.CodeStateConflict, "change request is not awaiting a counter decision")
			}

			if _, err := repo.UpdateBid(ctx, counter.ID, map[string]any{
				"status": enums.BidStatusRejected,
			}); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reject counter bid")
			}
		}

		if err := s.releasePendingChange(ctx, repo, request); err != nil {
			return err
		}

		outcome := enums.ChangeRequestStatusRejected
		if accept {
			outcome = enums.ChangeRequestStatusApproved
		}
		return s.emitResolved(ctx, tx, request, shipment, outcome, &counter.ID, input.ActorUserID, input.ActorOrgID, input.ActorRole)
	})
}

// resolveChangeRequest picks the request to act on: the explicit id when
// given, otherwise the most recent open request, otherwise the oldest request
// on the shipment.
func (s *service) resolveChangeRequest(ctx context.Context, repo Repository, shipmentID uuid.UUID, explicit *uuid.UUID) (*models.ShipmentChangeRequest, error) {
	if explicit != nil && *explicit != uuid.Nil {
		return s.loadChangeRequest(ctx, repo, *explicit)
	}

	requests, err := repo.FindChangeRequestsByShipment(ctx, shipmentID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list change requests")
	}
	if len(requests) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cannot resolve counter offer without change_request_id")
	}
	for i := range requests {
		if requests[i].Status.IsOpen() {
			return &requests[i], nil
		}
	}
	return &requests[len(requests)-1], nil
}

func (s *service) loadChangeRequest(ctx context.Context, repo Repository, id uuid.UUID) (*models.ShipmentChangeRequest, error) {
	request, err := repo.FindChangeRequest(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "change request not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load change request")
	}
	return request, nil
}

func (s *service) loadShipment(ctx context.Context, repo Repository, id uuid.UUID) (*models.Shipment, error) {
	shipment, err := repo.FindShipment(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "shipment not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load shipment")
	}
	return shipment, nil
}

// releasePendingChange puts the shipment back where the request found it. A
// request raised while the shipment was already pending_change (or a legacy
// row without the recorded status) falls back to checking.
func (s *service) releasePendingChange(ctx context.Context, repo Repository, request *models.ShipmentChangeRequest) error {
	restored := enums.ShipmentStatusChecking
	if prior := request.PreviousShipmentStatus; prior != nil && *prior != enums.ShipmentStatusPendingChange {
		restored = *prior
	}
	if _, err := repo.UpdateShipmentStatus(ctx, request.ShipmentID,
		[]enums.ShipmentStatus{enums.ShipmentStatusPendingChange},
		map[string]any{"status": restored}); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "release shipment from pending change")
	}
	return nil
}

func (s *service) emitResolved(ctx context.Context, tx *gorm.DB, request *models.ShipmentChangeRequest, shipment *models.Shipment, outcome enums.ChangeRequestStatus, counterBidID *uuid.UUID, userID, orgID uuid.UUID, role string) error {
	return s.outbox.Emit(ctx, tx, outbox.DomainEvent{
		EventType:     enums.EventChangeRequestResolved,
		AggregateType: enums.AggregateChangeRequest,
		AggregateID:   request.ID,
		Version:       1,
		Actor:         buildActor(userID, orgID, role),
		Data: ChangeRequestResolvedEvent{
			ChangeRequestID: request.ID,
			ShipmentID:      request.ShipmentID,
			Outcome:         outcome,
			CounterBidID:    counterBidID,
			PartnerID:       shipment.LogisticsPartnerID,
		},
	})
}

// proposalUpdates maps a sanitized request onto shipment column updates.
func proposalUpdates(request *models.ShipmentChangeRequest) map[string]any {
	updates := map[string]any{}
	if request.ProposedShipDate != nil {
		updates["ship_date"] = request.ProposedShipDate
	}
	if request.ProposedDeliveryDate != nil {
		updates["delivery_date"] = request.ProposedDeliveryDate
	}
	if request.Proposal != nil {
		if request.Proposal.OriginLocation != nil {
			updates["origin_location"] = request.Proposal.OriginLocation
		}
		if request.Proposal.DestinationLocation != nil {
			updates["destination_location"] = request.Proposal.DestinationLocation
		}
	}
	return updates
}

func buildCounterItems(inputs []CounterLineItemInput) []models.BidLineItem {
	items := make([]models.BidLineItem, 0, len(inputs))
	for i, in := range inputs {
		quantity := in.Quantity
		if quantity.IsZero() {
			quantity = decimal.NewFromInt(1)
		}
		position := in.Position
		if position == 0 {
			position = i
		}
		items = append(items, models.BidLineItem{
			Position:     position,
			Category:     in.Category,
			Description:  in.Description,
			Quantity:     quantity,
			UnitPrice:    in.UnitPrice,
			TotalAmount:  in.TotalAmount,
			IsOptional:   in.IsOptional,
			SupersedesID: in.SupersedesID,
		})
	}
	return items
}

func orgOnShipment(shipment *models.Shipment, orgID uuid.UUID) bool {
	return shipment.ClientOrgID == orgID ||
		shipment.LogisticsPartnerID == orgID ||
		shipment.BranchOrgID == orgID
}

func buildActor(userID, orgID uuid.UUID, role string) *outbox.ActorRef {
	actor := &outbox.ActorRef{UserID: userID, Role: role}
	if orgID != uuid.Nil {
		org := orgID
		actor.OrgID = &org
	}
	return actor
}
