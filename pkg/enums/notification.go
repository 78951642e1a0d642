package enums

import "fmt"

// NotificationType classifies negotiation milestone notifications.
type NotificationType string

const (
	NotificationQuoteSubmitted        NotificationType = "quote_submitted"
	NotificationQuoteExpired          NotificationType = "quote_expired"
	NotificationBidSubmitted          NotificationType = "bid_submitted"
	NotificationBidAccepted           NotificationType = "bid_accepted"
	NotificationChangeRequestCreated  NotificationType = "change_request_created"
	NotificationChangeRequestCounter  NotificationType = "change_request_countered"
	NotificationChangeRequestResolved NotificationType = "change_request_resolved"
	NotificationShipmentCancelled     NotificationType = "shipment_cancelled"
)

var validNotificationTypes = []NotificationType{
	NotificationQuoteSubmitted,
	NotificationQuoteExpired,
	NotificationBidSubmitted,
	NotificationBidAccepted,
	NotificationChangeRequestCreated,
	NotificationChangeRequestCounter,
	NotificationChangeRequestResolved,
	NotificationShipmentCancelled,
}

// String implements fmt.Stringer.
func (n NotificationType) String() string {
	return string(n)
}

// IsValid reports whether the value is a known NotificationType.
func (n NotificationType) IsValid() bool {
	for _, candidate := range validNotificationTypes {
		if candidate == n {
			return true
		}
	}
	return false
}

// ParseNotificationType converts raw input into a NotificationType.
func ParseNotificationType(value string) (NotificationType, error) {
	for _, candidate := range validNotificationTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid notification type %q", value)
}
