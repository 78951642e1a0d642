package changerequests

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/artmovehq/artmove-backend/pkg/db/models"
	"github.com/artmovehq/artmove-backend/pkg/enums"
	pkgerrors "github.com/artmovehq/artmove-backend/pkg/errors"
	"github.com/artmovehq/artmove-backend/pkg/outbox"
	"github.com/artmovehq/artmove-backend/pkg/types"
)

type stubChangeRequestsRepo struct {
	requests        map[uuid.UUID]*models.ShipmentChangeRequest
	shipment        *models.Shipment
	bids            map[uuid.UUID]*models.Bid
	counterItems    map[uuid.UUID][]models.BidLineItem
	shipmentUpdates []map[string]any
}

func newStubChangeRequestsRepo() *stubChangeRequestsRepo {
	return &stubChangeRequestsRepo{
		requests:     make(map[uuid.UUID]*models.ShipmentChangeRequest),
		bids:         make(map[uuid.UUID]*models.Bid),
		counterItems: make(map[uuid.UUID][]models.BidLineItem),
	}
}

func (s *stubChangeRequestsRepo) WithTx(tx *gorm.DB) Repository { return s }

func (s *stubChangeRequestsRepo) CreateChangeRequest(ctx context.Context, request *models.ShipmentChangeRequest) (*models.ShipmentChangeRequest, error) {
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	request.CreatedAt = time.Now().UTC()
	s.requests[request.ID] = request
	return request, nil
}

func (s *stubChangeRequestsRepo) FindChangeRequest(ctx context.Context, id uuid.UUID) (*models.ShipmentChangeRequest, error) {
	request, ok := s.requests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return request, nil
}

func (s *stubChangeRequestsRepo) FindChangeRequestsByShipment(ctx context.Context, shipmentID uuid.UUID) ([]models.ShipmentChangeRequest, error) {
	var out []models.ShipmentChangeRequest
	for _, request := range s.requests {
		if request.ShipmentID == shipmentID {
			out = append(out, *request)
		}
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].CreatedAt.After(out[i].CreatedAt) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (s *stubChangeRequestsRepo) UpdateChangeRequest(ctx context.Context, id uuid.UUID, from []enums.ChangeRequestStatus, updates map[string]any) (int64, error) {
	request, ok := s.requests[id]
	if !ok {
		return 0, nil
	}
	allowed := false
	for _, status := range from {
		if request.Status == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return 0, nil
	}
	if status, ok := updates["status"].(enums.ChangeRequestStatus); ok {
		request.Status = status
	}
	if counterBidID, ok := updates["counter_bid_id"].(uuid.UUID); ok {
		id := counterBidID
		request.CounterBidID = &id
	}
	if amount, ok := updates["proposed_amount"].(decimal.Decimal); ok {
		a := amount
		request.ProposedAmount = &a
	}
	if reason, ok := updates["reason"].(*string); ok {
		request.Reason = reason
	}
	return 1, nil
}

func (s *stubChangeRequestsRepo) FindShipment(ctx context.Context, id uuid.UUID) (*models.Shipment, error) {
	if s.shipment == nil || s.shipment.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return s.shipment, nil
}

func (s *stubChangeRequestsRepo) UpdateShipment(ctx context.Context, id uuid.UUID, updates map[string]any) (int64, error) {
	if s.shipment == nil || s.shipment.ID != id {
		return 0, nil
	}
	s.shipmentUpdates = append(s.shipmentUpdates, updates)
	if amount, ok := updates["amount"].(*decimal.Decimal); ok {
		s.shipment.Amount = *amount
	}
	if shipDate, ok := updates["ship_date"].(*time.Time); ok {
		s.shipment.ShipDate = shipDate
	}
	if deliveryDate, ok := updates["delivery_date"].(*time.Time); ok {
		s.shipment.DeliveryDate = deliveryDate
	}
	if origin, ok := updates["origin_location"].(*types.Location); ok {
		s.shipment.OriginLocation = origin
	}
	if destination, ok := updates["destination_location"].(*types.Location); ok {
		s.shipment.DestinationLocation = destination
	}
	return 1, nil
}

func (s *stubChangeRequestsRepo) UpdateShipmentStatus(ctx context.Context, id uuid.UUID, from []enums.ShipmentStatus, updates map[string]any) (int64, error) {
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
	return 1, nil
}

func (s *stubChangeRequestsRepo) CreateCounterBid(ctx context.Context, bid *models.Bid, items []models.BidLineItem) (*models.Bid, error) {
	if bid.ID == uuid.Nil {
		bid.ID = uuid.New()
	}
	s.bids[bid.ID] = bid
	s.counterItems[bid.ID] = items
	return bid, nil
}

func (s *stubChangeRequestsRepo) FindBid(ctx context.Context, id uuid.UUID) (*models.Bid, error) {
	bid, ok := s.bids[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return bid, nil
}

func (s *stubChangeRequestsRepo) UpdateBid(ctx context.Context, id uuid.UUID, updates map[string]any) (int64, error) {
	bid, ok := s.bids[id]
	if !ok {
		return 0, nil
	}
	if status, ok := updates["status"].(enums.BidStatus); ok {
		bid.Status = status
	}
	return 1, nil
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

func newTestService(t *testing.T, repo *stubChangeRequestsRepo, ob *stubOutboxPublisher) Service {
	t.Helper()
	svc, err := NewService(repo, stubTxRunner{}, ob, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func testShipment() *models.Shipment {
	return &models.Shipment{
		ID:                 uuid.New(),
		Code:               "S-TEST01",
		Name:               "Marble torso transfer",
		QuoteID:            uuid.New(),
		BidID:              uuid.New(),
		ClientOrgID:        uuid.New(),
		LogisticsPartnerID: uuid.New(),
		BranchOrgID:        uuid.New(),
		Status:             enums.ShipmentStatusChecking,
		Amount:             decimal.NewFromInt(4000),
		Currency:           "EUR",
	}
}

func dateOf(value string) *time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return &parsed
}

func TestCreateChangeRequestSanitizesEmptyLocation(t *testing.T) {
	repo := newStubChangeRequestsRepo()
	repo.shipment = testShipment()
	svc := newTestService(t, repo, &stubOutboxPublisher{})

	request, err := svc.CreateChangeRequest(context.Background(), CreateInput{
		ShipmentID:       repo.shipment.ID,
		ProposedShipDate: dateOf("2025-03-01"),
		Proposal: &types.Proposal{
			OriginLocation: &types.Location{},
			ModifiedFields: []string{types.ProposalFieldOriginLocation},
		},
		ActorOrgID:  repo.shipment.ClientOrgID,
		ActorUserID: uuid.New(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if request.Proposal.OriginLocation != nil {
		t.Fatal("empty origin location must be dropped before persisting")
	}
	if len(request.Proposal.ModifiedFields) != 0 {
		t.Fatalf("modified_fields must drop the sanitized entry, got %v", request.Proposal.ModifiedFields)
	}
	if repo.shipment.Status != enums.ShipmentStatusPendingChange {
		t.Fatalf("shipment must flag pending change, got %s", repo.shipment.Status)
	}
}

func TestCreateChangeRequestRequiresSomeChange(t *testing.T) {
	repo := newStubChangeRequestsRepo()
	repo.shipment = testShipment()
	svc := newTestService(t, repo, &stubOutboxPublisher{})

	_, err := svc.CreateChangeRequest(context.Background(), CreateInput{
		ShipmentID: repo.shipment.ID,
		Proposal: &types.Proposal{
			OriginLocation: &types.Location{},
			ModifiedFields: []string{types.ProposalFieldOriginLocation},
		},
		ActorOrgID:  repo.shipment.ClientOrgID,
		ActorUserID: uuid.New(),
	})
	assertCode(t, err, pkgerrors.CodeValidation)
}

func TestApproveChangeRequestAppliesProposedDates(t *testing.T) {
	repo := newStubChangeRequestsRepo()
	repo.shipment = testShipment()
	repo.shipment.Status = enums.ShipmentStatusPendingChange

	request := &models.ShipmentChangeRequest{
		ID:               uuid.New(),
		ShipmentID:       repo.shipment.ID,
		Status:           enums.ChangeRequestStatusPending,
		RequestedByOrgID: repo.shipment.ClientOrgID,
		ProposedShipDate: dateOf("2025-03-01"),
	}
	repo.requests[request.ID] = request

	ob := &stubOutboxPublisher{}
	svc := newTestService(t, repo, ob)

	err := svc.ApproveChangeRequest(context.Background(), ApproveInput{
		ChangeRequestID: request.ID,
		ActorOrgID:      repo.shipment.LogisticsPartnerID,
		ActorUserID:     uuid.New(),
	})
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if request.Status != enums.ChangeRequestStatusApproved {
		t.Fatalf("expected approved, got %s", request.Status)
	}
	if repo.shipment.ShipDate == nil || !repo.shipment.ShipDate.Equal(*dateOf("2025-03-01")) {
		t.Fatalf("ship date must follow the proposal, got %v", repo.shipment.ShipDate)
	}
	if repo.shipment.Status != enums.ShipmentStatusChecking {
		t.Fatalf("shipment must leave pending change, got %s", repo.shipment.Status)
	}
	if len(ob.events) != 1 || ob.events[0].EventType != enums.EventChangeRequestResolved {
		t.Fatalf("expected one resolved event, got %+v", ob.events)
	}
}

func TestCounterChangeRequestCreatesCounterBid(t *testing.T) {
	repo := newStubChangeRequestsRepo()
	repo.shipment = testShipment()
	repo.shipment.Status = enums.ShipmentStatusPendingChange

	request := &models.ShipmentChangeRequest{
		ID:               uuid.New(),
		ShipmentID:       repo.shipment.ID,
		Status:           enums.ChangeRequestStatusPending,
		RequestedByOrgID: repo.shipment.ClientOrgID,
	}
	repo.requests[request.ID] = request

	supersededID := uuid.New()
	ob := &stubOutboxPublisher{}
	svc := newTestService(t, repo, ob)

	counter, err := svc.CounterChangeRequest(context.Background(), CounterInput{
		ChangeRequestID: request.ID,
		Amount:          decimal.NewFromInt(5000),
		LineItems: []CounterLineItemInput{
			{Category: "packing", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(5000), SupersedesID: &supersededID},
		},
		ActorOrgID:  repo.shipment.LogisticsPartnerID,
		ActorUserID: uuid.New(),
	})
	if err != nil {
		t.Fatalf("counter: %v", err)
	}

	if counter.Status != enums.BidStatusCounterOffer {
		t.Fatalf("counter bid status must be counter_offer, got %s", counter.Status)
	}
	if counter.CounterForChangeRequestID == nil || *counter.CounterForChangeRequestID != request.ID {
		t.Fatal("counter bid must reference the change request")
	}
	if counter.NeedsConfirmationAt == nil {
		t.Fatal("counter bid must carry needs_confirmation_at")
	}
	if counter.BranchOrgID == nil || *counter.BranchOrgID != repo.shipment.BranchOrgID {
		t.Fatal("counter bid must inherit the shipment's branch")
	}
	items := repo.counterItems[counter.ID]
	if len(items) != 1 || items[0].SupersedesID == nil || *items[0].SupersedesID != supersededID {
		t.Fatalf("counter items must chain via supersedes_id, got %+v", items)
	}
	if request.Status != enums.ChangeRequestStatusCountered {
		t.Fatalf("request must be countered, got %s", request.Status)
	}
	if request.CounterBidID == nil || *request.CounterBidID != counter.ID {
		t.Fatal("request must record the counter bid id")
	}
	if request.ProposedAmount == nil || !request.ProposedAmount.Equal(decimal.NewFromInt(5000)) {
		t.Fatalf("request must record the proposed amount, got %v", request.ProposedAmount)
	}
}

func TestAcceptCounterOfferAppliesAmount(t *testing.T) {
	repo := newStubChangeRequestsRepo()
	repo.shipment = testShipment()
	repo.shipment.Status = enums.ShipmentStatusPendingChange

	branchID := repo.shipment.BranchOrgID
	request := &models.ShipmentChangeRequest{
		ID:               uuid.New(),
		ShipmentID:       repo.shipment.ID,
		Status:           enums.ChangeRequestStatusCountered,
		RequestedByOrgID: repo.shipment.ClientOrgID,
	}
	amount := decimal.NewFromInt(5000)
	counter := &models.Bid{
		ID:                        uuid.New(),
		QuoteID:                   repo.shipment.QuoteID,
		LogisticsPartnerID:        repo.shipment.LogisticsPartnerID,
		BranchOrgID:               &branchID,
		Status:                    enums.BidStatusCounterOffer,
		Amount:                    &amount,
		CounterForChangeRequestID: &request.ID,
	}
	request.CounterBidID = &counter.ID
	repo.requests[request.ID] = request
	repo.bids[counter.ID] = counter

	ob := &stubOutboxPublisher{}
	svc := newTestService(t, repo, ob)

	err := svc.AcceptCounterOffer(context.Background(), ResolveCounterInput{
		ShipmentID:  repo.shipment.ID,
		ActorOrgID:  repo.shipment.ClientOrgID,
		ActorUserID: uuid.New(),
	})
	if err != nil {
		t.Fatalf("accept counter: %v", err)
	}

	if request.Status != enums.ChangeRequestStatusApproved {
		t.Fatalf("request must be approved, got %s", request.Status)
	}
	if counter.Status != enums.BidStatusAccepted {
		t.Fatalf("counter bid must be accepted, got %s", counter.Status)
	}
	if !repo.shipment.Amount.Equal(amount) {
		t.Fatalf("shipment must reflect the counter amount, got %s", repo.shipment.Amount)
	}
	if repo.shipment.Status != enums.ShipmentStatusChecking {
		t.Fatalf("shipment must leave pending change, got %s", repo.shipment.Status)
	}
}

func TestAcceptCounterOfferWithoutBranchIsHardFailure(t *testing.T) {
	repo := newStubChangeRequestsRepo()
	repo.shipment = testShipment()

	request := &models.ShipmentChangeRequest{
		ID:               uuid.New(),
		ShipmentID:       repo.shipment.ID,
		Status:           enums.ChangeRequestStatusCountered,
		RequestedByOrgID: repo.shipment.ClientOrgID,
	}
	counter := &models.Bid{
		ID:                        uuid.New(),
		QuoteID:                   repo.shipment.QuoteID,
		LogisticsPartnerID:        repo.shipment.LogisticsPartnerID,
		Status:                    enums.BidStatusCounterOffer,
		CounterForChangeRequestID: &request.ID,
	}
	request.CounterBidID = &counter.ID
	repo.requests[request.ID] = request
	repo.bids[counter.ID] = counter

	svc := newTestService(t, repo, &stubOutboxPublisher{})
	err := svc.AcceptCounterOffer(context.Background(), ResolveCounterInput{
		ShipmentID:  repo.shipment.ID,
		ActorOrgID:  repo.shipment.ClientOrgID,
		ActorUserID: uuid.New(),
	})
	assertCode(t, err, pkgerrors.CodeValidation)
	if request.Status != enums.ChangeRequestStatusCountered {
		t.Fatal("request must stay countered when the branch cannot be resolved")
	}
	if counter.Status != enums.BidStatusCounterOffer {
		t.Fatal("counter bid must stay untouched when the branch cannot be resolved")
	}
}

func TestAcceptCounterOfferWithoutAnyRequestIsHardFailure(t *testing.T) {
	repo := newStubChangeRequestsRepo()
	repo.shipment = testShipment()

	svc := newTestService(t, repo, &stubOutboxPublisher{})
	err := svc.AcceptCounterOffer(context.Background(), ResolveCounterInput{
		ShipmentID:  repo.shipment.ID,
		ActorOrgID:  repo.shipment.ClientOrgID,
		ActorUserID: uuid.New(),
	})
	assertCode(t, err, pkgerrors.CodeValidation)
}

func TestRejectCounterOfferLeavesShipmentUntouched(t *testing.T) {
	repo := newStubChangeRequestsRepo()
	repo.shipment = testShipment()
	repo.shipment.Status = enums.ShipmentStatusPendingChange
	originalAmount := repo.shipment.Amount

	branchID := repo.shipment.BranchOrgID
	request := &models.ShipmentChangeRequest{
		ID:               uuid.New(),
		ShipmentID:       repo.shipment.ID,
		Status:           enums.ChangeRequestStatusCountered,
		RequestedByOrgID: repo.shipment.ClientOrgID,
		ProposedShipDate: dateOf("2025-04-10"),
	}
	amount := decimal.NewFromInt(9000)
	counter := &models.Bid{
		ID:                        uuid.New(),
		QuoteID:                   repo.shipment.QuoteID,
		LogisticsPartnerID:        repo.shipment.LogisticsPartnerID,
		BranchOrgID:               &branchID,
		Status:                    enums.BidStatusCounterOffer,
		Amount:                    &amount,
		CounterForChangeRequestID: &request.ID,
	}
	request.CounterBidID = &counter.ID
	repo.requests[request.ID] = request
	repo.bids[counter.ID] = counter

	svc := newTestService(t, repo, &stubOutboxPublisher{})
	reason := "price too high"
	err := svc.RejectCounterOffer(context.Background(), ResolveCounterInput{
		ShipmentID:  repo.shipment.ID,
		Reason:      &reason,
		ActorOrgID:  repo.shipment.ClientOrgID,
		ActorUserID: uuid.New(),
	})
	if err != nil {
		t.Fatalf("reject counter: %v", err)
	}

	if request.Status != enums.ChangeRequestStatusRejected {
		t.Fatalf("request must be rejected, got %s", request.Status)
	}
	if counter.Status != enums.BidStatusRejected {
		t.Fatalf("counter bid must be rejected, got %s", counter.Status)
	}
	if !repo.shipment.Amount.Equal(originalAmount) {
		t.Fatalf("shipment amount must stay %s, got %s", originalAmount, repo.shipment.Amount)
	}
	if repo.shipment.ShipDate != nil {
		t.Fatal("proposed dates must not apply on rejection")
	}
	if len(repo.shipmentUpdates) != 0 {
		t.Fatalf("no shipment field updates may run on rejection, got %d", len(repo.shipmentUpdates))
	}
	if repo.shipment.Status != enums.ShipmentStatusChecking {
		t.Fatalf("shipment must leave pending change, got %s", repo.shipment.Status)
	}
}

func TestRejectCounterOfferRestoresPreChangeStatus(t *testing.T) {
	repo := newStubChangeRequestsRepo()
	repo.shipment = testShipment()
	repo.shipment.Status = enums.ShipmentStatusPendingApproval

	svc := newTestService(t, repo, &stubOutboxPublisher{})

	request, err := svc.CreateChangeRequest(context.Background(), CreateInput{
		ShipmentID:       repo.shipment.ID,
		ProposedShipDate: dateOf("2025-05-01"),
		ActorOrgID:       repo.shipment.ClientOrgID,
		ActorUserID:      uuid.New(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if repo.shipment.Status != enums.ShipmentStatusPendingChange {
		t.Fatalf("shipment must flag pending change, got %s", repo.shipment.Status)
	}

	_, err = svc.CounterChangeRequest(context.Background(), CounterInput{
		ChangeRequestID: request.ID,
		Amount:          decimal.NewFromInt(6000),
		ActorOrgID:      repo.shipment.LogisticsPartnerID,
		ActorUserID:     uuid.New(),
	})
	if err != nil {
		t.Fatalf("counter: %v", err)
	}

	err = svc.RejectCounterOffer(context.Background(), ResolveCounterInput{
		ShipmentID:  repo.shipment.ID,
		ActorOrgID:  repo.shipment.ClientOrgID,
		ActorUserID: uuid.New(),
	})
	if err != nil {
		t.Fatalf("reject counter: %v", err)
	}

	if repo.shipment.Status != enums.ShipmentStatusPendingApproval {
		t.Fatalf("shipment must revert to its pre-change status, got %s", repo.shipment.Status)
	}
}

func TestApproveChangeRequestRestoresPreChangeStatus(t *testing.T) {
	repo := newStubChangeRequestsRepo()
	repo.shipment = testShipment()
	repo.shipment.Status = enums.ShipmentStatusPendingChange

	prior := enums.ShipmentStatusPendingApproval
	request := &models.ShipmentChangeRequest{
		ID:                     uuid.New(),
		ShipmentID:             repo.shipment.ID,
		Status:                 enums.ChangeRequestStatusPending,
		RequestedByOrgID:       repo.shipment.ClientOrgID,
		PreviousShipmentStatus: &prior,
		ProposedShipDate:       dateOf("2025-05-01"),
	}
	repo.requests[request.ID] = request

	svc := newTestService(t, repo, &stubOutboxPublisher{})
	err := svc.ApproveChangeRequest(context.Background(), ApproveInput{
		ChangeRequestID: request.ID,
		ActorOrgID:      repo.shipment.LogisticsPartnerID,
		ActorUserID:     uuid.New(),
	})
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if repo.shipment.Status != enums.ShipmentStatusPendingApproval {
		t.Fatalf("shipment must revert to its pre-change status, got %s", repo.shipment.Status)
	}
}

func TestResolveCounterPicksMostRecentOpenRequest(t *testing.T) {
	repo := newStubChangeRequestsRepo()
	repo.shipment = testShipment()

	resolved := &models.ShipmentChangeRequest{
		ID:         uuid.New(),
		ShipmentID: repo.shipment.ID,
		Status:     enums.ChangeRequestStatusApproved,
		CreatedAt:  time.Now().UTC().Add(-2 * time.Hour),
	}
	branchID := repo.shipment.BranchOrgID
	open := &models.ShipmentChangeRequest{
		ID:         uuid.New(),
		ShipmentID: repo.shipment.ID,
		Status:     enums.ChangeRequestStatusCountered,
		CreatedAt:  time.Now().UTC().Add(-time.Hour),
	}
	amount := decimal.NewFromInt(100)
	counter := &models.Bid{
		ID:                        uuid.New(),
		QuoteID:                   repo.shipment.QuoteID,
		LogisticsPartnerID:        repo.shipment.LogisticsPartnerID,
		BranchOrgID:               &branchID,
		Status:                    enums.BidStatusCounterOffer,
		Amount:                    &amount,
		CounterForChangeRequestID: &open.ID,
	}
	open.CounterBidID = &counter.ID
	repo.requests[resolved.ID] = resolved
	repo.requests[open.ID] = open
	repo.bids[counter.ID] = counter

	svc := newTestService(t, repo, &stubOutboxPublisher{})
	err := svc.AcceptCounterOffer(context.Background(), ResolveCounterInput{
		ShipmentID:  repo.shipment.ID,
		ActorOrgID:  repo.shipment.ClientOrgID,
		ActorUserID: uuid.New(),
	})
	if err != nil {
		t.Fatalf("accept counter: %v", err)
	}
	if open.Status != enums.ChangeRequestStatusApproved {
		t.Fatalf("the open request must be the one resolved, got %s", open.Status)
	}
	if resolved.Status != enums.ChangeRequestStatusApproved {
		t.Fatal("the already-resolved request must stay approved")
	}
}
