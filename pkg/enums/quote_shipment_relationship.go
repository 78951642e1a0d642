package enums

import "fmt"

// QuoteShipmentRelationship records how a quote feeds a shipment.
type QuoteShipmentRelationship string

const (
	// RelationshipPrimary marks the quote whose accepted bid created the shipment.
	RelationshipPrimary QuoteShipmentRelationship = "primary"
	// RelationshipConsolidated marks a quote merged into another quote's shipment.
	RelationshipConsolidated QuoteShipmentRelationship = "consolidated"
	// RelationshipSplit marks a quote whose artworks ship on multiple shipments.
	RelationshipSplit QuoteShipmentRelationship = "split"
	// RelationshipPartial marks a quote with only some artworks on the shipment.
	RelationshipPartial QuoteShipmentRelationship = "partial"
)

var validQuoteShipmentRelationships = []QuoteShipmentRelationship{
	RelationshipPrimary,
	RelationshipConsolidated,
	RelationshipSplit,
	RelationshipPartial,
}

// String implements fmt.Stringer.
func (r QuoteShipmentRelationship) String() string {
	return string(r)
}

// IsValid reports whether the value is a known QuoteShipmentRelationship.
func (r QuoteShipmentRelationship) IsValid() bool {
	for _, candidate := range validQuoteShipmentRelationships {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseQuoteShipmentRelationship converts raw input into a QuoteShipmentRelationship.
func ParseQuoteShipmentRelationship(value string) (QuoteShipmentRelationship, error) {
	for _, candidate := range validQuoteShipmentRelationships {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid quote shipment relationship %q", value)
}
