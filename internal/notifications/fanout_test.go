package notifications

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/artmovehq/artmove-backend/pkg/db/models"
	"github.com/artmovehq/artmove-backend/pkg/enums"
	"github.com/artmovehq/artmove-backend/pkg/outbox"
)

func makeEvent(t *testing.T, eventType enums.EventType, data any, actorOrg *uuid.UUID) models.OutboxEvent {
	t.Helper()

	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal data: %v", err)
	}
	envelope := outbox.PayloadEnvelope{
		Version:    1,
		EventID:    uuid.NewString(),
		OccurredAt: time.Now().UTC(),
		Data:       raw,
	}
	if actorOrg != nil {
		envelope.Actor = &outbox.ActorRef{UserID: uuid.New(), OrgID: actorOrg}
	}
	payload, err := json.Marshal(envelope)
	if err != nil {
		t.Fatalf("marshal envelope: %v", err)
	}
	return models.OutboxEvent{
		ID:        uuid.New(),
		EventType: eventType,
		Payload:   payload,
	}
}

func TestFanoutQuoteSubmittedNotifiesEveryInvitedPartner(t *testing.T) {
	partnerA := uuid.New()
	partnerB := uuid.New()
	quoteID := uuid.New()

	event := makeEvent(t, enums.EventQuoteSubmitted, map[string]any{
		"quote_id":        quoteID,
		"code":            "Q-A1B2C3",
		"invited_org_ids": []uuid.UUID{partnerA, partnerB, uuid.Nil},
	}, nil)

	out, err := Fanout(event)
	if err != nil {
		t.Fatalf("fanout: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(out))
	}
	if out[0].OrgID != partnerA || out[1].OrgID != partnerB {
		t.Fatalf("unexpected targets: %s, %s", out[0].OrgID, out[1].OrgID)
	}
	for _, n := range out {
		if n.Type != enums.NotificationQuoteSubmitted {
			t.Fatalf("expected type %s, got %s", enums.NotificationQuoteSubmitted, n.Type)
		}
		if n.Link == nil || *n.Link != "/quotes/"+quoteID.String() {
			t.Fatalf("unexpected link: %v", n.Link)
		}
	}
}

func TestFanoutBidAcceptedNotifiesPartnerAndBranch(t *testing.T) {
	partnerID := uuid.New()
	branchID := uuid.New()

	event := makeEvent(t, enums.EventBidAccepted, map[string]any{
		"shipment_id":   uuid.New(),
		"partner_id":    partnerID,
		"branch_org_id": branchID,
		"amount":        decimal.NewFromInt(7500),
	}, nil)

	out, err := Fanout(event)
	if err != nil {
		t.Fatalf("fanout: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected partner and branch notifications, got %d", len(out))
	}
	if out[0].OrgID != partnerID || out[1].OrgID != branchID {
		t.Fatalf("unexpected targets: %s, %s", out[0].OrgID, out[1].OrgID)
	}
}

func TestFanoutBidAcceptedSkipsBranchEqualToPartner(t *testing.T) {
	partnerID := uuid.New()

	event := makeEvent(t, enums.EventBidAccepted, map[string]any{
		"shipment_id":   uuid.New(),
		"partner_id":    partnerID,
		"branch_org_id": partnerID,
		"amount":        decimal.NewFromInt(100),
	}, nil)

	out, err := Fanout(event)
	if err != nil {
		t.Fatalf("fanout: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected a single notification, got %d", len(out))
	}
}

func TestFanoutChangeRequestCreatedNotifiesCounterparty(t *testing.T) {
	clientID := uuid.New()
	partnerID := uuid.New()

	clientRaised := makeEvent(t, enums.EventChangeRequestCreated, map[string]any{
		"shipment_id":         uuid.New(),
		"requested_by_org_id": clientID,
		"client_org_id":       clientID,
		"partner_id":          partnerID,
	}, nil)
	out, err := Fanout(clientRaised)
	if err != nil {
		t.Fatalf("fanout: %v", err)
	}
	if len(out) != 1 || out[0].OrgID != partnerID {
		t.Fatalf("client-raised request should notify the partner, got %+v", out)
	}

	partnerRaised := makeEvent(t, enums.EventChangeRequestCreated, map[string]any{
		"shipment_id":         uuid.New(),
		"requested_by_org_id": partnerID,
		"client_org_id":       clientID,
		"partner_id":          partnerID,
	}, nil)
	out, err = Fanout(partnerRaised)
	if err != nil {
		t.Fatalf("fanout: %v", err)
	}
	if len(out) != 1 || out[0].OrgID != clientID {
		t.Fatalf("partner-raised request should notify the client, got %+v", out)
	}
}

func TestFanoutShipmentCancelledSkipsActingOrg(t *testing.T) {
	clientID := uuid.New()
	partnerID := uuid.New()

	event := makeEvent(t, enums.EventShipmentCancelled, map[string]any{
		"shipment_id":   uuid.New(),
		"client_org_id": clientID,
		"partner_id":    partnerID,
		"reason":        "artwork withdrawn from sale",
	}, &clientID)

	out, err := Fanout(event)
	if err != nil {
		t.Fatalf("fanout: %v", err)
	}
	if len(out) != 1 || out[0].OrgID != partnerID {
		t.Fatalf("expected only the partner notification, got %+v", out)
	}
	if out[0].Message != "Shipment cancelled: artwork withdrawn from sale" {
		t.Fatalf("unexpected message: %q", out[0].Message)
	}
}

func TestFanoutCounterOfferNotifiesClientWithAmount(t *testing.T) {
	clientID := uuid.New()

	event := makeEvent(t, enums.EventChangeRequestCounter, map[string]any{
		"shipment_id":     uuid.New(),
		"proposed_amount": decimal.NewFromInt(5000),
		"client_org_id":   clientID,
	}, nil)

	out, err := Fanout(event)
	if err != nil {
		t.Fatalf("fanout: %v", err)
	}
	if len(out) != 1 || out[0].OrgID != clientID {
		t.Fatalf("expected the client notification, got %+v", out)
	}
	if out[0].Message != "Your change request was answered with a counter offer of 5000.00." {
		t.Fatalf("unexpected message: %q", out[0].Message)
	}
}

func TestFanoutUnknownEventProducesNothing(t *testing.T) {
	event := makeEvent(t, enums.EventType("audit.snapshot"), map[string]any{}, nil)

	out, err := Fanout(event)
	if err != nil {
		t.Fatalf("fanout: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected no notifications, got %d", len(out))
	}
}

func TestFanoutRejectsMalformedPayload(t *testing.T) {
	event := models.OutboxEvent{
		ID:        uuid.New(),
		EventType: enums.EventQuoteSubmitted,
		Payload:   json.RawMessage(`{"version":`),
	}

	if _, err := Fanout(event); err == nil {
		t.Fatal("expected a decode error")
	}
}
