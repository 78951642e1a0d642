package bids

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/artmovehq/artmove-backend/pkg/db/models"
)

// LineItemDiff compares one current line item against the predecessor it
// supersedes.
type LineItemDiff struct {
	Current       models.BidLineItem  `json:"current"`
	Previous      *models.BidLineItem `json:"previous,omitempty"`
	Total         decimal.Decimal     `json:"total"`
	PreviousTotal *decimal.Decimal    `json:"previous_total,omitempty"`
	Delta         decimal.Decimal     `json:"delta"`
	HasChanges    bool                `json:"has_changes"`
}

// DiffLineItems walks the supersedes chain from a counter-offer's items back
// to the prior version. Explicitly deactivated items are skipped. An item
// without a resolvable predecessor always counts as changed.
func DiffLineItems(current, previous []models.BidLineItem) []LineItemDiff {
	prevByID := make(map[string]*models.BidLineItem, len(previous))
	for i := range previous {
		item := &previous[i]
		prevByID[item.ID.String()] = item
	}

	diffs := make([]LineItemDiff, 0, len(current))
	for _, item := range current {
		if item.Inactive() {
			continue
		}

		diff := LineItemDiff{
			Current: item,
			Total:   item.Total(),
		}
		if item.SupersedesID != nil {
			diff.Previous = prevByID[item.SupersedesID.String()]
		}

		if diff.Previous == nil {
			diff.HasChanges = true
			diff.Delta = diff.Total
			diffs = append(diffs, diff)
			continue
		}

		prevTotal := diff.Previous.Total()
		diff.PreviousTotal = &prevTotal
		diff.Delta = diff.Total.Sub(prevTotal)
		diff.HasChanges = !item.Quantity.Equal(diff.Previous.Quantity) ||
			!item.UnitPrice.Equal(diff.Previous.UnitPrice) ||
			!diff.Total.Equal(prevTotal) ||
			item.IsOptional != diff.Previous.IsOptional ||
			itemText(item) != itemText(*diff.Previous)
		diffs = append(diffs, diff)
	}
	return diffs
}

// TotalDelta sums the per-item deltas of a diff.
func TotalDelta(diffs []LineItemDiff) decimal.Decimal {
	delta := decimal.Zero
	for _, diff := range diffs {
		delta = delta.Add(diff.Delta)
	}
	return delta
}

func itemText(item models.BidLineItem) string {
	parts := []string{item.Category}
	if item.Description != nil {
		parts = append(parts, *item.Description)
	}
	return strings.Join(parts, " ")
}
