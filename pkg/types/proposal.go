package types

import (
	"database/sql/driver"
	"encoding/json"
)

const (
	ProposalFieldOriginLocation      = "origin_location"
	ProposalFieldDestinationLocation = "destination_location"
)

// Proposal is the payload of a change request: optional location overrides plus
// the list of shipment fields the requester wants changed.
type Proposal struct {
	OriginLocation      *Location `json:"origin_location,omitempty"`
	DestinationLocation *Location `json:"destination_location,omitempty"`
	ModifiedFields      []string  `json:"modified_fields,omitempty"`
}

// Sanitize drops location overrides that carry no usable address and removes
// them from ModifiedFields. Stored proposals from older clients can hold empty
// location stubs or list a location in ModifiedFields without carrying one;
// applying either would wipe the shipment's real location, so this runs
// immediately before every accept/reject persists.
func (p *Proposal) Sanitize() {
	if p == nil {
		return
	}
	if p.OriginLocation != nil && !p.OriginLocation.HasAddress() {
		p.OriginLocation = nil
	}
	if p.OriginLocation == nil {
		p.ModifiedFields = removeField(p.ModifiedFields, ProposalFieldOriginLocation)
	}
	if p.DestinationLocation != nil && !p.DestinationLocation.HasAddress() {
		p.DestinationLocation = nil
	}
	if p.DestinationLocation == nil {
		p.ModifiedFields = removeField(p.ModifiedFields, ProposalFieldDestinationLocation)
	}
}

// IsEmpty reports whether the proposal carries no overrides at all.
func (p *Proposal) IsEmpty() bool {
	return p == nil || (p.OriginLocation == nil && p.DestinationLocation == nil && len(p.ModifiedFields) == 0)
}

func removeField(fields []string, name string) []string {
	if len(fields) == 0 {
		return fields
	}
	kept := fields[:0]
	for _, field := range fields {
		if field != name {
			kept = append(kept, field)
		}
	}
	return kept
}

// Value serializes the proposal to JSON.
func (p *Proposal) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	return json.Marshal(p)
}

// Scan decodes JSONB into the proposal.
func (p *Proposal) Scan(value interface{}) error {
	if value == nil {
		*p = Proposal{}
		return nil
	}
	raw, err := asJSON(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, p)
}
