package enums

import "fmt"

// OrgType splits the marketplace into galleries (clients) and shippers
// (logistics partners). Shipper branches are organizations with a parent.
type OrgType string

const (
	OrgTypeGallery OrgType = "gallery"
	OrgTypeShipper OrgType = "shipper"
)

var validOrgTypes = []OrgType{
	OrgTypeGallery,
	OrgTypeShipper,
}

// String implements fmt.Stringer.
func (o OrgType) String() string {
	return string(o)
}

// IsValid reports whether the value is a known OrgType.
func (o OrgType) IsValid() bool {
	for _, candidate := range validOrgTypes {
		if candidate == o {
			return true
		}
	}
	return false
}

// ParseOrgType converts raw input into an OrgType.
func ParseOrgType(value string) (OrgType, error) {
	for _, candidate := range validOrgTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid org type %q", value)
}
