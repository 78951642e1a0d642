package notifications

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/artmovehq/artmove-backend/pkg/db/models"
	"github.com/artmovehq/artmove-backend/pkg/enums"
	"github.com/artmovehq/artmove-backend/pkg/outbox"
)

// The fanout decodes only the fields it targets notifications by, so the
// structs here stay local and deliberately smaller than the emitted payloads.
type quoteSubmittedPayload struct {
	QuoteID       uuid.UUID   `json:"quote_id"`
	Code          string      `json:"code"`
	InvitedOrgIDs []uuid.UUID `json:"invited_org_ids"`
}

type quoteExpiredPayload struct {
	QuoteID     uuid.UUID `json:"quote_id"`
	Code        string    `json:"code"`
	ClientOrgID uuid.UUID `json:"client_org_id"`
}

type bidSubmittedPayload struct {
	BidID       uuid.UUID        `json:"bid_id"`
	QuoteID     uuid.UUID        `json:"quote_id"`
	ClientOrgID uuid.UUID        `json:"client_org_id"`
	Amount      *decimal.Decimal `json:"amount"`
}

type bidAcceptedPayload struct {
	QuoteID     uuid.UUID       `json:"quote_id"`
	ShipmentID  uuid.UUID       `json:"shipment_id"`
	PartnerID   uuid.UUID       `json:"partner_id"`
	BranchOrgID uuid.UUID       `json:"branch_org_id"`
	Amount      decimal.Decimal `json:"amount"`
}

type quotesConsolidatedPayload struct {
	ShipmentID uuid.UUID   `json:"shipment_id"`
	QuoteIDs   []uuid.UUID `json:"quote_ids"`
	PartnerID  uuid.UUID   `json:"partner_id"`
}

type changeRequestCreatedPayload struct {
	ShipmentID  uuid.UUID `json:"shipment_id"`
	RequestedBy uuid.UUID `json:"requested_by_org_id"`
	ClientOrgID uuid.UUID `json:"client_org_id"`
	PartnerID   uuid.UUID `json:"partner_id"`
}

type changeRequestCounteredPayload struct {
	ShipmentID     uuid.UUID       `json:"shipment_id"`
	ProposedAmount decimal.Decimal `json:"proposed_amount"`
	ClientOrgID    uuid.UUID       `json:"client_org_id"`
}

type changeRequestResolvedPayload struct {
	ShipmentID uuid.UUID                 `json:"shipment_id"`
	Outcome    enums.ChangeRequestStatus `json:"outcome"`
	PartnerID  uuid.UUID                 `json:"partner_id"`
}

type shipmentCancelledPayload struct {
	ShipmentID  uuid.UUID `json:"shipment_id"`
	ClientOrgID uuid.UUID `json:"client_org_id"`
	PartnerID   uuid.UUID `json:"partner_id"`
	Reason      string    `json:"reason"`
}

// Fanout translates one outbox event into the notifications it should
// produce. An event type with no notification mapping yields an empty slice
// so the caller can still mark the row published.
func Fanout(event models.OutboxEvent) ([]models.Notification, error) {
	var envelope outbox.PayloadEnvelope
	if err := json.Unmarshal(event.Payload, &envelope); err != nil {
		return nil, fmt.Errorf("decode payload envelope: %w", err)
	}

	switch event.EventType {
	case enums.EventQuoteSubmitted:
		var p quoteSubmittedPayload
		if err := json.Unmarshal(envelope.Data, &p); err != nil {
			return nil, fmt.Errorf("decode %s payload: %w", event.EventType, err)
		}
		link := quoteLink(p.QuoteID)
		out := make([]models.Notification, 0, len(p.InvitedOrgIDs))
		for _, orgID := range p.InvitedOrgIDs {
			if orgID == uuid.Nil {
				continue
			}
			out = append(out, models.Notification{
				OrgID:   orgID,
				Type:    enums.NotificationQuoteSubmitted,
				Title:   "New quote request",
				Message: fmt.Sprintf("Quote %s is open for bidding.", p.Code),
				Link:    &link,
			})
		}
		return out, nil

	case enums.EventQuoteExpired:
		var p quoteExpiredPayload
		if err := json.Unmarshal(envelope.Data, &p); err != nil {
			return nil, fmt.Errorf("decode %s payload: %w", event.EventType, err)
		}
		link := quoteLink(p.QuoteID)
		return notify(p.ClientOrgID, models.Notification{
			Type:    enums.NotificationQuoteExpired,
			Title:   "Quote expired",
			Message: fmt.Sprintf("Quote %s expired without an accepted bid.", p.Code),
			Link:    &link,
		}), nil

	case enums.EventBidSubmitted:
		var p bidSubmittedPayload
		if err := json.Unmarshal(envelope.Data, &p); err != nil {
			return nil, fmt.Errorf("decode %s payload: %w", event.EventType, err)
		}
		link := quoteLink(p.QuoteID)
		message := "A logistics partner submitted a bid on your quote."
		if p.Amount != nil {
			message = fmt.Sprintf("A logistics partner submitted a bid of %s on your quote.", p.Amount.StringFixed(2))
		}
		return notify(p.ClientOrgID, models.Notification{
			Type:    enums.NotificationBidSubmitted,
			Title:   "New bid received",
			Message: message,
			Link:    &link,
		}), nil

	case enums.EventBidAccepted:
		var p bidAcceptedPayload
		if err := json.Unmarshal(envelope.Data, &p); err != nil {
			return nil, fmt.Errorf("decode %s payload: %w", event.EventType, err)
		}
		link := shipmentLink(p.ShipmentID)
		out := notify(p.PartnerID, models.Notification{
			Type:    enums.NotificationBidAccepted,
			Title:   "Bid accepted",
			Message: fmt.Sprintf("Your bid of %s was accepted and a shipment was booked.", p.Amount.StringFixed(2)),
			Link:    &link,
		})
		if p.BranchOrgID != uuid.Nil && p.BranchOrgID != p.PartnerID {
			out = append(out, models.Notification{
				OrgID:   p.BranchOrgID,
				Type:    enums.NotificationBidAccepted,
				Title:   "Shipment assigned",
				Message: "A shipment was booked against your branch.",
				Link:    &link,
			})
		}
		return out, nil

	case enums.EventQuotesConsolidated:
		var p quotesConsolidatedPayload
		if err := json.Unmarshal(envelope.Data, &p); err != nil {
			return nil, fmt.Errorf("decode %s payload: %w", event.EventType, err)
		}
		link := shipmentLink(p.ShipmentID)
		return notify(p.PartnerID, models.Notification{
			Type:    enums.NotificationBidAccepted,
			Title:   "Bid accepted",
			Message: fmt.Sprintf("Your bid was accepted and %d quotes were consolidated into one shipment.", len(p.QuoteIDs)),
			Link:    &link,
		}), nil

	case enums.EventChangeRequestCreated:
		var p changeRequestCreatedPayload
		if err := json.Unmarshal(envelope.Data, &p); err != nil {
			return nil, fmt.Errorf("decode %s payload: %w", event.EventType, err)
		}
		// The counterparty gets notified, never the org that raised the
		// request.
		target := p.PartnerID
		if p.RequestedBy != p.ClientOrgID {
			target = p.ClientOrgID
		}
		link := shipmentLink(p.ShipmentID)
		return notify(target, models.Notification{
			Type:    enums.NotificationChangeRequestCreated,
			Title:   "Change requested",
			Message: "A change was requested on one of your shipments.",
			Link:    &link,
		}), nil

	case enums.EventChangeRequestCounter:
		var p changeRequestCounteredPayload
		if err := json.Unmarshal(envelope.Data, &p); err != nil {
			return nil, fmt.Errorf("decode %s payload: %w", event.EventType, err)
		}
		link := shipmentLink(p.ShipmentID)
		return notify(p.ClientOrgID, models.Notification{
			Type:    enums.NotificationChangeRequestCounter,
			Title:   "Counter offer received",
			Message: fmt.Sprintf("Your change request was answered with a counter offer of %s.", p.ProposedAmount.StringFixed(2)),
			Link:    &link,
		}), nil

	case enums.EventChangeRequestResolved:
		var p changeRequestResolvedPayload
		if err := json.Unmarshal(envelope.Data, &p); err != nil {
			return nil, fmt.Errorf("decode %s payload: %w", event.EventType, err)
		}
		link := shipmentLink(p.ShipmentID)
		message := "A change request on your shipment was rejected."
		if p.Outcome == enums.ChangeRequestStatusApproved {
			message = "A change request on your shipment was approved."
		}
		return notify(p.PartnerID, models.Notification{
			Type:    enums.NotificationChangeRequestResolved,
			Title:   "Change request resolved",
			Message: message,
			Link:    &link,
		}), nil

	case enums.EventShipmentCancelled:
		var p shipmentCancelledPayload
		if err := json.Unmarshal(envelope.Data, &p); err != nil {
			return nil, fmt.Errorf("decode %s payload: %w", event.EventType, err)
		}
		link := shipmentLink(p.ShipmentID)
		notification := models.Notification{
			Type:    enums.NotificationShipmentCancelled,
			Title:   "Shipment cancelled",
			Message: fmt.Sprintf("Shipment cancelled: %s", p.Reason),
			Link:    &link,
		}
		out := make([]models.Notification, 0, 2)
		for _, orgID := range []uuid.UUID{p.ClientOrgID, p.PartnerID} {
			if orgID == uuid.Nil || actorOrg(envelope.Actor) == orgID {
				continue
			}
			n := notification
			n.OrgID = orgID
			out = append(out, n)
		}
		return out, nil
	}

	return nil, nil
}

func notify(orgID uuid.UUID, notification models.Notification) []models.Notification {
	if orgID == uuid.Nil {
		return nil
	}
	notification.OrgID = orgID
	return []models.Notification{notification}
}

func actorOrg(actor *outbox.ActorRef) uuid.UUID {
	if actor == nil || actor.OrgID == nil {
		return uuid.Nil
	}
	return *actor.OrgID
}

func quoteLink(id uuid.UUID) string {
	return "/quotes/" + id.String()
}

func shipmentLink(id uuid.UUID) string {
	return "/shipments/" + id.String()
}
