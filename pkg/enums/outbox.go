package enums

// EventType names the domain events emitted through the transactional outbox.
type EventType string

const (
	EventQuoteSubmitted        EventType = "quote.submitted"
	EventQuoteExpired          EventType = "quote.expired"
	EventBidSubmitted          EventType = "bid.submitted"
	EventBidAccepted           EventType = "bid.accepted"
	EventQuotesConsolidated    EventType = "quotes.consolidated"
	EventChangeRequestCreated  EventType = "change_request.created"
	EventChangeRequestCounter  EventType = "change_request.countered"
	EventChangeRequestResolved EventType = "change_request.resolved"
	EventShipmentCancelled     EventType = "shipment.cancelled"
)

// AggregateType names the aggregate an outbox event belongs to.
type AggregateType string

const (
	AggregateQuote         AggregateType = "quote"
	AggregateBid           AggregateType = "bid"
	AggregateShipment      AggregateType = "shipment"
	AggregateChangeRequest AggregateType = "change_request"
)
