package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readMigration(t *testing.T, pattern string) string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join("migrations", pattern))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no migration matching %q", pattern)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	return string(data)
}

func TestQuotesMigrationContainsConstraints(t *testing.T) {
	content := readMigration(t, "*_create_quotes.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS quotes",
		"CONSTRAINT uq_quotes_code UNIQUE (code)",
		"FOREIGN KEY (quote_id) REFERENCES quotes(id) ON DELETE CASCADE",
		"locked_at TIMESTAMPTZ",
		"DROP TABLE IF EXISTS quote_artworks",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestBidsMigrationEnforcesUpsertKey(t *testing.T) {
	content := readMigration(t, "*_create_bids.sql")

	checks := []string{
		"CREATE UNIQUE INDEX uq_bids_quote_partner_branch",
		"WHERE counter_for_change_request_id IS NULL",
		"supersedes_id UUID REFERENCES bid_line_items(id)",
		"CHECK (unit_price >= 0)",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestShipmentsMigrationKeepsMapUnique(t *testing.T) {
	content := readMigration(t, "*_create_shipments.sql")

	checks := []string{
		"CONSTRAINT uq_quote_shipment UNIQUE (quote_id, shipment_id)",
		"included_artwork_ids UUID[]",
		"counter_bid_id UUID REFERENCES bids(id)",
		"WHERE status IN ('pending', 'countered')",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}
