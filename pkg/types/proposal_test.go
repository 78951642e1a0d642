package types

import "testing"

func TestSanitizeDropsEmptyLocationStub(t *testing.T) {
	proposal := Proposal{
		OriginLocation: &Location{AddressFull: "  "},
		ModifiedFields: []string{ProposalFieldOriginLocation, "notes"},
	}
	proposal.Sanitize()

	if proposal.OriginLocation != nil {
		t.Fatalf("expected empty origin stub to be dropped")
	}
	if len(proposal.ModifiedFields) != 1 || proposal.ModifiedFields[0] != "notes" {
		t.Fatalf("expected origin_location removed from modified fields, got %v", proposal.ModifiedFields)
	}
}

func TestSanitizeRemovesModifiedFieldsForAbsentLocations(t *testing.T) {
	proposal := Proposal{
		ModifiedFields: []string{ProposalFieldOriginLocation, ProposalFieldDestinationLocation, "notes"},
	}
	proposal.Sanitize()

	if len(proposal.ModifiedFields) != 1 || proposal.ModifiedFields[0] != "notes" {
		t.Fatalf("expected absent locations removed from modified fields, got %v", proposal.ModifiedFields)
	}
}

func TestSanitizeKeepsUsableOverride(t *testing.T) {
	proposal := Proposal{
		DestinationLocation: &Location{AddressFull: "12 Rue de Seine, Paris"},
		ModifiedFields:      []string{ProposalFieldDestinationLocation},
	}
	proposal.Sanitize()

	if proposal.DestinationLocation == nil {
		t.Fatalf("expected usable destination override to survive")
	}
	if len(proposal.ModifiedFields) != 1 || proposal.ModifiedFields[0] != ProposalFieldDestinationLocation {
		t.Fatalf("expected destination_location to stay in modified fields, got %v", proposal.ModifiedFields)
	}
}
