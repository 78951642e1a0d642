package shipments

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/artmovehq/artmove-backend/pkg/db/models"
	"github.com/artmovehq/artmove-backend/pkg/enums"
	pkgerrors "github.com/artmovehq/artmove-backend/pkg/errors"
	"github.com/artmovehq/artmove-backend/pkg/outbox"
	"github.com/artmovehq/artmove-backend/pkg/pagination"
)

type stubShipmentsRepo struct {
	shipment  *models.Shipment
	quotes    map[uuid.UUID]*models.Quote
	bidStatus map[uuid.UUID]enums.BidStatus
	maps      []models.QuoteShipmentMap
}

func (s *stubShipmentsRepo) WithTx(tx *gorm.DB) Repository { return s }

func (s *stubShipmentsRepo) FindShipment(ctx context.Context, id uuid.UUID) (*models.Shipment, error) {
	if s.shipment == nil || s.shipment.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return s.shipment, nil
}

func (s *stubShipmentsRepo) FindShipmentDetail(ctx context.Context, id uuid.UUID) (*models.Shipment, error) {
	return s.FindShipment(ctx, id)
}

func (s *stubShipmentsRepo) ListByOrg(ctx context.Context, orgID uuid.UUID, params pagination.Params, filters ListFilters) (*ShipmentList, error) {
	return &ShipmentList{}, nil
}

func (s *stubShipmentsRepo) UpdateShipmentStatus(ctx context.Context, id uuid.UUID, from []enums.ShipmentStatus, updates map[string]any) (int64, error) {
	if s.shipment == nil || s.shipment.ID != id {
		return 0, nil
	}
	allowed := false
	for _, status := range from {
		if s.shipment.Status == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return 0, nil
	}
	if status, ok := updates["status"].(enums.ShipmentStatus); ok {
		s.shipment.Status = status
	}
	if reason, ok := updates["cancel_reason"].(string); ok {
		s.shipment.CancelReason = &reason
	}
	return 1, nil
}

func (s *stubShipmentsRepo) UpdateQuoteStatus(ctx context.Context, id uuid.UUID, from []enums.QuoteStatus, updates map[string]any) (int64, error) {
	quote, ok := s.quotes[id]
	if !ok {
		return 0, nil
	}
	allowed := false
	for _, status := range from {
		if quote.Status == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return 0, nil
	}
	if status, ok := updates["status"].(enums.QuoteStatus); ok {
		quote.Status = status
	}
	return 1, nil
}

func (s *stubShipmentsRepo) UpdateBidStatus(ctx context.Context, id uuid.UUID, status enums.BidStatus) (int64, error) {
	if s.bidStatus == nil {
		s.bidStatus = make(map[uuid.UUID]enums.BidStatus)
	}
	s.bidStatus[id] = status
	return 1, nil
}

func (s *stubShipmentsRepo) FindMapsByShipment(ctx context.Context, shipmentID uuid.UUID) ([]models.QuoteShipmentMap, error) {
	return s.maps, nil
}

type stubTxRunner struct{}

func (stubTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(&gorm.DB{})
}

type stubOutboxPublisher struct {
	events []outbox.DomainEvent
}

func (s *stubOutboxPublisher) Emit(ctx context.Context, tx *gorm.DB, event outbox.DomainEvent) error {
	s.events = append(s.events, event)
	return nil
}

func assertCode(t *testing.T, err error, want pkgerrors.Code) {
	t.Helper()
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != want {
		t.Fatalf("expected %s error, got %v", want, err)
	}
}

func newTestService(t *testing.T, repo *stubShipmentsRepo, ob *stubOutboxPublisher) Service {
	t.Helper()
	svc, err := NewService(repo, stubTxRunner{}, ob)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func testShipment(status enums.ShipmentStatus) *models.Shipment {
	return &models.Shipment{
		ID:                 uuid.New(),
		Code:               "S-TEST01",
		Name:               "Basel crate run",
		QuoteID:            uuid.New(),
		BidID:              uuid.New(),
		ClientOrgID:        uuid.New(),
		LogisticsPartnerID: uuid.New(),
		BranchOrgID:        uuid.New(),
		Status:             status,
	}
}

func TestUpdateStatusFollowsTransitionTable(t *testing.T) {
	repo := &stubShipmentsRepo{shipment: testShipment(enums.ShipmentStatusInTransit)}
	svc := newTestService(t, repo, &stubOutboxPublisher{})

	err := svc.UpdateStatus(context.Background(), UpdateStatusInput{
		ShipmentID: repo.shipment.ID,
		Status:     enums.ShipmentStatusArtworkCollected,
		ActorOrgID: repo.shipment.LogisticsPartnerID,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if repo.shipment.Status != enums.ShipmentStatusArtworkCollected {
		t.Fatalf("expected artwork_collected, got %s", repo.shipment.Status)
	}
}

func TestUpdateStatusRejectsBackwardsMove(t *testing.T) {
	repo := &stubShipmentsRepo{shipment: testShipment(enums.ShipmentStatusDelivered)}
	svc := newTestService(t, repo, &stubOutboxPublisher{})

	err := svc.UpdateStatus(context.Background(), UpdateStatusInput{
		ShipmentID: repo.shipment.ID,
		Status:     enums.ShipmentStatusInTransit,
		ActorOrgID: repo.shipment.LogisticsPartnerID,
	})
	assertCode(t, err, pkgerrors.CodeStateConflict)
}

func TestUpdateStatusRejectsCancelledTarget(t *testing.T) {
	repo := &stubShipmentsRepo{shipment: testShipment(enums.ShipmentStatusChecking)}
	svc := newTestService(t, repo, &stubOutboxPublisher{})

	err := svc.UpdateStatus(context.Background(), UpdateStatusInput{
		ShipmentID: repo.shipment.ID,
		Status:     enums.ShipmentStatusCancelled,
		ActorOrgID: repo.shipment.LogisticsPartnerID,
	})
	assertCode(t, err, pkgerrors.CodeValidation)
}

func TestUpdateStatusRequiresPartner(t *testing.T) {
	repo := &stubShipmentsRepo{shipment: testShipment(enums.ShipmentStatusChecking)}
	svc := newTestService(t, repo, &stubOutboxPublisher{})

	err := svc.UpdateStatus(context.Background(), UpdateStatusInput{
		ShipmentID: repo.shipment.ID,
		Status:     enums.ShipmentStatusInTransit,
		ActorOrgID: repo.shipment.ClientOrgID,
	})
	assertCode(t, err, pkgerrors.CodeForbidden)
}

func TestCancelShipmentStoresReasonAndEmits(t *testing.T) {
	repo := &stubShipmentsRepo{shipment: testShipment(enums.ShipmentStatusChecking)}
	ob := &stubOutboxPublisher{}
	svc := newTestService(t, repo, ob)

	err := svc.CancelShipment(context.Background(), CancelShipmentInput{
		ShipmentID:  repo.shipment.ID,
		Reason:      "client postponed the exhibition",
		ActorOrgID:  repo.shipment.ClientOrgID,
		ActorUserID: uuid.New(),
	})
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if repo.shipment.Status != enums.ShipmentStatusCancelled {
		t.Fatalf("expected cancelled, got %s", repo.shipment.Status)
	}
	if repo.shipment.CancelReason == nil || *repo.shipment.CancelReason != "client postponed the exhibition" {
		t.Fatal("cancellation reason must be stored")
	}
	if len(ob.events) != 1 || ob.events[0].EventType != enums.EventShipmentCancelled {
		t.Fatalf("expected one shipment.cancelled event, got %+v", ob.events)
	}
}

func TestCancelShipmentTerminalIsRejected(t *testing.T) {
	repo := &stubShipmentsRepo{shipment: testShipment(enums.ShipmentStatusCancelled)}
	svc := newTestService(t, repo, &stubOutboxPublisher{})

	err := svc.CancelShipment(context.Background(), CancelShipmentInput{
		ShipmentID: repo.shipment.ID,
		Reason:     "again",
		ActorOrgID: repo.shipment.ClientOrgID,
	})
	assertCode(t, err, pkgerrors.CodeStateConflict)
}

func TestUnassignShipmentReopensMappedQuotes(t *testing.T) {
	shipment := testShipment(enums.ShipmentStatusChecking)
	otherQuoteID := uuid.New()
	repo := &stubShipmentsRepo{
		shipment: shipment,
		quotes: map[uuid.UUID]*models.Quote{
			shipment.QuoteID: {ID: shipment.QuoteID, Status: enums.QuoteStatusClosed},
			otherQuoteID:     {ID: otherQuoteID, Status: enums.QuoteStatusClosed},
		},
		maps: []models.QuoteShipmentMap{
			{QuoteID: shipment.QuoteID, ShipmentID: shipment.ID, Relationship: enums.RelationshipPrimary},
			{QuoteID: otherQuoteID, ShipmentID: shipment.ID, Relationship: enums.RelationshipConsolidated},
		},
	}
	ob := &stubOutboxPublisher{}
	svc := newTestService(t, repo, ob)

	err := svc.UnassignShipment(context.Background(), UnassignShipmentInput{
		ShipmentID:  shipment.ID,
		Reason:      "partner lost capacity",
		ActorOrgID:  shipment.LogisticsPartnerID,
		ActorUserID: uuid.New(),
	})
	if err != nil {
		t.Fatalf("unassign: %v", err)
	}

	if shipment.Status != enums.ShipmentStatusCancelled {
		t.Fatalf("shipment must be cancelled, got %s", shipment.Status)
	}
	if repo.bidStatus[shipment.BidID] != enums.BidStatusCancelledByShipper {
		t.Fatalf("bid must be released, got %s", repo.bidStatus[shipment.BidID])
	}
	for id, quote := range repo.quotes {
		if quote.Status != enums.QuoteStatusActive {
			t.Fatalf("quote %s must reopen, got %s", id, quote.Status)
		}
	}
	if len(ob.events) != 1 {
		t.Fatalf("expected one event, got %d", len(ob.events))
	}
	payload, ok := ob.events[0].Data.(ShipmentCancelledEvent)
	if !ok || !payload.QuoteReopened {
		t.Fatalf("event must flag the reopened quote, got %+v", ob.events[0].Data)
	}
}
