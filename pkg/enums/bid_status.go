package enums

import "fmt"

// BidStatus tracks the lifecycle of a partner's bid on a quote.
//
// A counter offer raised against a change request is a bid in status
// counter_offer; a pending shipper confirmation is the same status with
// NeedsConfirmationAt set on the bid row.
type BidStatus string

const (
	BidStatusPending            BidStatus = "pending"
	BidStatusSubmitted          BidStatus = "submitted"
	BidStatusAccepted           BidStatus = "accepted"
	BidStatusRejected           BidStatus = "rejected"
	BidStatusWithdrawn          BidStatus = "withdrawn"
	BidStatusCancelledByShipper BidStatus = "cancelled_by_shipper"
	BidStatusCounterOffer       BidStatus = "counter_offer"
)

var validBidStatuses = []BidStatus{
	BidStatusPending,
	BidStatusSubmitted,
	BidStatusAccepted,
	BidStatusRejected,
	BidStatusWithdrawn,
	BidStatusCancelledByShipper,
	BidStatusCounterOffer,
}

// String implements fmt.Stringer.
func (b BidStatus) String() string {
	return string(b)
}

// IsValid reports whether the value is a known BidStatus.
func (b BidStatus) IsValid() bool {
	for _, candidate := range validBidStatuses {
		if candidate == b {
			return true
		}
	}
	return false
}

// IsLive reports whether the bid still participates in the quote's uniqueness
// key, i.e. it has not been withdrawn or cancelled by the shipper.
func (b BidStatus) IsLive() bool {
	return b != BidStatusWithdrawn && b != BidStatusCancelledByShipper
}

// ParseBidStatus converts raw input into a BidStatus. The legacy
// "needs_confirmation" value maps onto counter_offer.
func ParseBidStatus(value string) (BidStatus, error) {
	if value == "needs_confirmation" {
		return BidStatusCounterOffer, nil
	}
	for _, candidate := range validBidStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid bid status %q", value)
}
