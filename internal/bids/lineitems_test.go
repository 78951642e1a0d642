package bids

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/artmovehq/artmove-backend/pkg/db/models"
)

func lineItem(category string, quantity, unitPrice int64, supersedes *uuid.UUID) models.BidLineItem {
	return models.BidLineItem{
		ID:           uuid.New(),
		Category:     category,
		Quantity:     decimal.NewFromInt(quantity),
		UnitPrice:    decimal.NewFromInt(unitPrice),
		SupersedesID: supersedes,
	}
}

func TestDiffLineItemsUnchangedItemHasNoChanges(t *testing.T) {
	prev := lineItem("packing", 2, 150, nil)
	curr := lineItem("packing", 2, 150, &prev.ID)

	diffs := DiffLineItems([]models.BidLineItem{curr}, []models.BidLineItem{prev})
	if len(diffs) != 1 {
		t.Fatalf("expected one diff, got %d", len(diffs))
	}
	if diffs[0].HasChanges {
		t.Fatal("identical quantities and prices must not count as changed")
	}
	if !diffs[0].Delta.IsZero() {
		t.Fatalf("expected zero delta, got %s", diffs[0].Delta)
	}
	if diffs[0].Previous == nil || diffs[0].Previous.ID != prev.ID {
		t.Fatal("predecessor must be resolved through supersedes_id")
	}
}

func TestDiffLineItemsPriceChangeCarriesDelta(t *testing.T) {
	prev := lineItem("climate crate", 1, 400, nil)
	curr := lineItem("climate crate", 1, 500, &prev.ID)

	diffs := DiffLineItems([]models.BidLineItem{curr}, []models.BidLineItem{prev})
	if len(diffs) != 1 {
		t.Fatalf("expected one diff, got %d", len(diffs))
	}
	if !diffs[0].HasChanges {
		t.Fatal("price change must count as changed")
	}
	if !diffs[0].Delta.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected delta 100, got %s", diffs[0].Delta)
	}
	if !TotalDelta(diffs).Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected total delta 100, got %s", TotalDelta(diffs))
	}
}

func TestDiffLineItemsMissingPredecessorAlwaysChanged(t *testing.T) {
	orphanRef := uuid.New()
	curr := lineItem("courier", 1, 250, &orphanRef)
	fresh := lineItem("insurance", 1, 90, nil)

	diffs := DiffLineItems([]models.BidLineItem{curr, fresh}, nil)
	if len(diffs) != 2 {
		t.Fatalf("expected two diffs, got %d", len(diffs))
	}
	for _, diff := range diffs {
		if !diff.HasChanges {
			t.Fatalf("item %q without predecessor must count as changed", diff.Current.Category)
		}
		if !diff.Delta.Equal(diff.Total) {
			t.Fatalf("delta must equal the full total, got %s vs %s", diff.Delta, diff.Total)
		}
	}
}

func TestDiffLineItemsSkipsDeactivated(t *testing.T) {
	inactive := false
	item := lineItem("storage", 1, 80, nil)
	item.IsActive = &inactive

	diffs := DiffLineItems([]models.BidLineItem{item}, nil)
	if len(diffs) != 0 {
		t.Fatalf("deactivated items must be skipped, got %d diffs", len(diffs))
	}
}

func TestDiffLineItemsDescriptionChangeCounts(t *testing.T) {
	oldDesc := "ground transport"
	newDesc := "ground transport with escort"
	prev := lineItem("transport", 1, 300, nil)
	prev.Description = &oldDesc
	curr := lineItem("transport", 1, 300, &prev.ID)
	curr.Description = &newDesc

	diffs := DiffLineItems([]models.BidLineItem{curr}, []models.BidLineItem{prev})
	if len(diffs) != 1 || !diffs[0].HasChanges {
		t.Fatal("description change must count as changed")
	}
	if !diffs[0].Delta.IsZero() {
		t.Fatalf("text-only change carries no delta, got %s", diffs[0].Delta)
	}
}

func TestDiffLineItemsExplicitTotalWins(t *testing.T) {
	explicit := decimal.NewFromInt(999)
	prev := lineItem("handling", 2, 100, nil)
	curr := lineItem("handling", 2, 100, &prev.ID)
	curr.TotalAmount = &explicit

	diffs := DiffLineItems([]models.BidLineItem{curr}, []models.BidLineItem{prev})
	if len(diffs) != 1 {
		t.Fatalf("expected one diff, got %d", len(diffs))
	}
	if !diffs[0].Total.Equal(explicit) {
		t.Fatalf("explicit total must win, got %s", diffs[0].Total)
	}
	if !diffs[0].Delta.Equal(decimal.NewFromInt(799)) {
		t.Fatalf("expected delta 799, got %s", diffs[0].Delta)
	}
}
