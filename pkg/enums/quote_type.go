package enums

import "fmt"

// QuoteType distinguishes direct requests from open auctions.
type QuoteType string

const (
	// QuoteTypeRequested targets a single invited logistics partner.
	QuoteTypeRequested QuoteType = "requested"
	// QuoteTypeAuction opens bidding to every invited partner until a deadline.
	QuoteTypeAuction QuoteType = "auction"
)

var validQuoteTypes = []QuoteType{
	QuoteTypeRequested,
	QuoteTypeAuction,
}

// String implements fmt.Stringer.
func (q QuoteType) String() string {
	return string(q)
}

// IsValid reports whether the value is a known QuoteType.
func (q QuoteType) IsValid() bool {
	for _, candidate := range validQuoteTypes {
		if candidate == q {
			return true
		}
	}
	return false
}

// ParseQuoteType converts raw input into a QuoteType.
func ParseQuoteType(value string) (QuoteType, error) {
	for _, candidate := range validQuoteTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid quote type %q", value)
}
