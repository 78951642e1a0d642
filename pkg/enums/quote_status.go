package enums

import "fmt"

// QuoteStatus tracks the lifecycle of a shipping quote.
type QuoteStatus string

const (
	QuoteStatusDraft           QuoteStatus = "draft"
	QuoteStatusActive          QuoteStatus = "active"
	QuoteStatusPendingApproval QuoteStatus = "pending_approval"
	QuoteStatusClosed          QuoteStatus = "closed"
	QuoteStatusExpired         QuoteStatus = "expired"
	QuoteStatusCancelled       QuoteStatus = "cancelled"
)

var validQuoteStatuses = []QuoteStatus{
	QuoteStatusDraft,
	QuoteStatusActive,
	QuoteStatusPendingApproval,
	QuoteStatusClosed,
	QuoteStatusExpired,
	QuoteStatusCancelled,
}

// String implements fmt.Stringer.
func (q QuoteStatus) String() string {
	return string(q)
}

// IsValid reports whether the value is a known QuoteStatus.
func (q QuoteStatus) IsValid() bool {
	for _, candidate := range validQuoteStatuses {
		if candidate == q {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed.
func (q QuoteStatus) IsTerminal() bool {
	return q == QuoteStatusCancelled || q == QuoteStatusExpired
}

// ParseQuoteStatus converts raw input into a QuoteStatus.
func ParseQuoteStatus(value string) (QuoteStatus, error) {
	for _, candidate := range validQuoteStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid quote status %q", value)
}
