package types

import (
	"strconv"
	"strings"
)

// Weight keeps the raw user-entered weight alongside a parsed value/unit pair.
// Artwork weights arrive as free text ("12.5 kg", "30lbs", "45"); the parsed
// form is what pricing and customs logic consume.
type Weight struct {
	Raw   string  `json:"raw"`
	Value float64 `json:"value,omitempty"`
	Unit  string  `json:"unit,omitempty"`
}

var knownWeightUnits = map[string]string{
	"kg":  "kg",
	"kgs": "kg",
	"lb":  "lb",
	"lbs": "lb",
	"g":   "g",
	"t":   "t",
}

// ParseWeight extracts a numeric value and normalized unit from raw text.
// Unparseable input yields a Weight holding only the raw string.
func ParseWeight(raw string) Weight {
	w := Weight{Raw: raw}

	trimmed := strings.TrimSpace(strings.ToLower(raw))
	if trimmed == "" {
		return w
	}

	numEnd := 0
	for numEnd < len(trimmed) {
		c := trimmed[numEnd]
		if (c >= '0' && c <= '9') || c == '.' || c == ',' {
			numEnd++
			continue
		}
		break
	}
	if numEnd == 0 {
		return w
	}

	value, err := strconv.ParseFloat(strings.ReplaceAll(trimmed[:numEnd], ",", "."), 64)
	if err != nil {
		return w
	}

	unit := strings.TrimSpace(trimmed[numEnd:])
	if normalized, ok := knownWeightUnits[unit]; ok {
		unit = normalized
	} else if unit == "" {
		unit = "kg"
	} else {
		// unknown unit text, keep the number but leave the unit raw
		w.Value = value
		w.Unit = unit
		return w
	}

	w.Value = value
	w.Unit = unit
	return w
}
