package types

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
)

// Location describes a pickup or delivery point attached to a quote or
// shipment. AddressFull is the canonical display address; the structured
// fields are best-effort and may be empty for legacy rows.
type Location struct {
	AddressFull string  `json:"address_full"`
	Line1       string  `json:"line1,omitempty"`
	City        string  `json:"city,omitempty"`
	PostalCode  string  `json:"postal_code,omitempty"`
	Country     string  `json:"country,omitempty"`
	Lat         float64 `json:"lat,omitempty"`
	Lng         float64 `json:"lng,omitempty"`
}

// HasAddress reports whether the location carries a usable address.
func (l *Location) HasAddress() bool {
	return l != nil && strings.TrimSpace(l.AddressFull) != ""
}

// Value serializes the location to JSON.
func (l *Location) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan decodes JSONB into the location.
func (l *Location) Scan(value interface{}) error {
	if value == nil {
		*l = Location{}
		return nil
	}
	raw, err := asJSON(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, l)
}

// Contact holds the on-site contact for a quote's origin or destination.
type Contact struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Value serializes the contact to JSON.
func (c *Contact) Value() (driver.Value, error) {
	if c == nil {
		return nil, nil
	}
	return json.Marshal(c)
}

// Scan decodes JSONB into the contact.
func (c *Contact) Scan(value interface{}) error {
	if value == nil {
		*c = Contact{}
		return nil
	}
	raw, err := asJSON(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, c)
}
