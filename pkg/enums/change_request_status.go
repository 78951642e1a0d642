package enums

import "fmt"

// ChangeRequestStatus tracks the negotiation state of a shipment change request.
type ChangeRequestStatus string

const (
	ChangeRequestStatusPending   ChangeRequestStatus = "pending"
	ChangeRequestStatusCountered ChangeRequestStatus = "countered"
	ChangeRequestStatusApproved  ChangeRequestStatus = "approved"
	ChangeRequestStatusRejected  ChangeRequestStatus = "rejected"
)

var validChangeRequestStatuses = []ChangeRequestStatus{
	ChangeRequestStatusPending,
	ChangeRequestStatusCountered,
	ChangeRequestStatusApproved,
	ChangeRequestStatusRejected,
}

// String implements fmt.Stringer.
func (c ChangeRequestStatus) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ChangeRequestStatus.
func (c ChangeRequestStatus) IsValid() bool {
	for _, candidate := range validChangeRequestStatuses {
		if candidate == c {
			return true
		}
	}
	return false
}

// IsOpen reports whether the request can still be resolved.
func (c ChangeRequestStatus) IsOpen() bool {
	return c == ChangeRequestStatusPending || c == ChangeRequestStatusCountered
}

// ParseChangeRequestStatus converts raw input into a ChangeRequestStatus.
func ParseChangeRequestStatus(value string) (ChangeRequestStatus, error) {
	for _, candidate := range validChangeRequestStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid change request status %q", value)
}
