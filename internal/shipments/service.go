package shipments

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/artmovehq/artmove-backend/pkg/db/models"
	"github.com/artmovehq/artmove-backend/pkg/enums"
	pkgerrors "github.com/artmovehq/artmove-backend/pkg/errors"
	"github.com/artmovehq/artmove-backend/pkg/outbox"
	"github.com/artmovehq/artmove-backend/pkg/pagination"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type outboxPublisher interface {
	Emit(ctx context.Context, tx *gorm.DB, event outbox.DomainEvent) error
}

// Service defines shipment tracking and cancellation operations.
type Service interface {
	GetShipment(ctx context.Context, shipmentID, actorOrgID uuid.UUID) (*models.Shipment, error)
	ListShipments(ctx context.Context, orgID uuid.UUID, params pagination.Params, filters ListFilters) (*ShipmentList, error)
	UpdateStatus(ctx context.Context, input UpdateStatusInput) error
	CancelShipment(ctx context.Context, input CancelShipmentInput) error
	UnassignShipment(ctx context.Context, input UnassignShipmentInput) error
}

type service struct {
	repo   Repository
	tx     txRunner
	outbox outboxPublisher
}

// NewService builds a shipments service with the required dependencies.
func NewService(repo Repository, tx txRunner, ob outboxPublisher) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("shipments repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if ob == nil {
		return nil, fmt.Errorf("outbox publisher required")
	}
	return &service{repo: repo, tx: tx, outbox: ob}, nil
}

func (s *service) GetShipment(ctx context.Context, shipmentID, actorOrgID uuid.UUID) (*models.Shipment, error) {
	if shipmentID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "shipment id required")
	}
	shipment, err := s.repo.FindShipmentDetail(ctx, shipmentID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "shipment not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load shipment")
	}
	if !canView(shipment, actorOrgID) {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "shipment is not visible to this organization")
	}
	return shipment, nil
}

func (s *service) ListShipments(ctx context.Context, orgID uuid.UUID, params pagination.Params, filters ListFilters) (*ShipmentList, error) {
	if orgID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "organization context missing")
	}
	list, err := s.repo.ListByOrg(ctx, orgID, params, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list shipments")
	}
	return list, nil
}

// UpdateStatus moves the shipment one step along the delivery pipeline. The
// transition table gates the move and the guarded update makes it race-safe.
func (s *service) UpdateStatus(ctx context.Context, input UpdateStatusInput) error {
	if input.ShipmentID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "shipment id required")
	}
	if !input.Status.IsValid() || input.Status == enums.ShipmentStatusCancelled {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid target status")
	}

	shipment, err := s.repo.FindShipment(ctx, input.ShipmentID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return pkgerrors.New(pkgerrors.CodeNotFound, "shipment not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load shipment")
	}
	if shipment.LogisticsPartnerID != input.ActorOrgID && shipment.BranchOrgID != input.ActorOrgID {
		return pkgerrors.New(pkgerrors.CodeForbidden, "only the logistics partner can update shipment status")
	}
	if shipment.Status.IsTerminal() {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "shipment is in a terminal state")
	}
	if !CanTransition(shipment.Status, input.Status) {
		return pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("cannot move shipment from %s to %s", shipment.Status, input.Status))
	}

	affected, err := s.repo.UpdateShipmentStatus(ctx, shipment.ID,
		[]enums.ShipmentStatus{shipment.Status},
		map[string]any{"status": input.Status})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update shipment status")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "shipment status changed concurrently")
	}
	return nil
}

// CancelShipment is the only path into the cancelled state. Soft only; the
// row is kept with the reason and timestamp.
func (s *service) CancelShipment(ctx context.Context, input CancelShipmentInput) error {
	if input.ShipmentID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "shipment id required")
	}
	if input.Reason == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "cancellation reason required")
	}

	return s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		shipment, err := repo.FindShipment(ctx, input.ShipmentID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return pkgerrors.New(pkgerrors.CodeNotFound, "shipment not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load shipment")
		}
		if !canView(shipment, input.ActorOrgID) {
			return pkgerrors.New(pkgerrors.CodeForbidden, "shipment is not visible to this organization")
		}

		if err := s.cancel(ctx, repo, shipment, input.Reason); err != nil {
			return err
		}

		return s.outbox.Emit(ctx, tx, outbox.DomainEvent{
			EventType:     enums.EventShipmentCancelled,
			AggregateType: enums.AggregateShipment,
			AggregateID:   shipment.ID,
			Version:       1,
			Actor:         buildActor(input.ActorUserID, input.ActorOrgID, input.ActorRole),
			Data: ShipmentCancelledEvent{
				ShipmentID:  shipment.ID,
				QuoteID:     shipment.QuoteID,
				ClientOrgID: shipment.ClientOrgID,
				PartnerID:   shipment.LogisticsPartnerID,
				Reason:      input.Reason,
			},
		})
	})
}

// UnassignShipment cancels the shipment, releases the winning bid, and
// reopens every mapped quote so the client can solicit new bids.
func (s *service) UnassignShipment(ctx context.Context, input UnassignShipmentInput) error {
	if input.ShipmentID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "shipment id required")
	}
	reason := input.Reason
	if reason == "" {
		reason = "unassigned"
	}

	return s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		shipment, err := repo.FindShipment(ctx, input.ShipmentID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return pkgerrors.New(pkgerrors.CodeNotFound, "shipment not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load shipment")
		}
		if !canView(shipment, input.ActorOrgID) {
			return pkgerrors.New(pkgerrors.CodeForbidden, "shipment is not visible to this organization")
		}

		if err := s.cancel(ctx, repo, shipment, reason); err != nil {
			return err
		}

		if _, err := repo.UpdateBidStatus(ctx, shipment.BidID, enums.BidStatusCancelledByShipper); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "release bid")
		}

		maps, err := repo.FindMapsByShipment(ctx, shipment.ID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load quote maps")
		}
		quoteIDs := []uuid.UUID{shipment.QuoteID}
		for _, m := range maps {
			if m.QuoteID != shipment.QuoteID {
				quoteIDs = append(quoteIDs, m.QuoteID)
			}
		}
		for _, quoteID := range quoteIDs {
			if _, err := repo.UpdateQuoteStatus(ctx, quoteID,
				[]enums.QuoteStatus{enums.QuoteStatusClosed, enums.QuoteStatusPendingApproval},
				map[string]any{"status": enums.QuoteStatusActive}); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reopen quote")
			}
		}

		return s.outbox.Emit(ctx, tx, outbox.DomainEvent{
			EventType:     enums.EventShipmentCancelled,
			AggregateType: enums.AggregateShipment,
			AggregateID:   shipment.ID,
			Version:       1,
			Actor:         buildActor(input.ActorUserID, input.ActorOrgID, input.ActorRole),
			Data: ShipmentCancelledEvent{
				ShipmentID:    shipment.ID,
				QuoteID:       shipment.QuoteID,
				ClientOrgID:   shipment.ClientOrgID,
				PartnerID:     shipment.LogisticsPartnerID,
				Reason:        reason,
				QuoteReopened: true,
			},
		})
	})
}

func (s *service) cancel(ctx context.Context, repo Repository, shipment *models.Shipment, reason string) error {
	if shipment.Status.IsTerminal() {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "shipment is already in a terminal state")
	}
	nonTerminal := []enums.ShipmentStatus{
		enums.ShipmentStatusChecking,
		enums.ShipmentStatusPending,
		enums.ShipmentStatusPendingApproval,
		enums.ShipmentStatusPendingChange,
		enums.ShipmentStatusInTransit,
		enums.ShipmentStatusArtworkCollected,
		enums.ShipmentStatusSecurityCheck,
		enums.ShipmentStatusLocalDelivery,
	}
	affected, err := repo.UpdateShipmentStatus(ctx, shipment.ID, nonTerminal, map[string]any{
		"status":        enums.ShipmentStatusCancelled,
		"cancelled_at":  time.Now().UTC(),
		"cancel_reason": reason,
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "cancel shipment")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "shipment is already in a terminal state")
	}
	return nil
}

func canView(shipment *models.Shipment, orgID uuid.UUID) bool {
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
