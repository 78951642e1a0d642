package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Params carries the cursor inputs a list endpoint accepts.
type Params struct {
	Limit  int
	Cursor string
}

// Cursor is the decoded keyset position: rows strictly after
// (CreatedAt, ID) in descending order belong to the next page.
type Cursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// Page describes the metadata returned alongside a page of rows.
type Page struct {
	NextCursor string `json:"next_cursor,omitempty"`
	HasMore    bool   `json:"has_more"`
}

func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// FetchLimit returns the clamped limit plus one sentinel row so repositories
// can detect whether another page exists without a count query.
func FetchLimit(limit int) int {
	return ClampLimit(limit) + 1
}

func Encode(c Cursor) string {
	raw := fmt.Sprintf("%s|%s", c.CreatedAt.UTC().Format(time.RFC3339Nano), c.ID)
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// Decode parses an opaque cursor. An empty value means first page and
// returns a nil cursor without error.
func Decode(value string) (*Cursor, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	raw, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("decode cursor: %w", err)
	}
	parts := strings.SplitN(string(raw), "|", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("malformed cursor")
	}
	at, err := time.Parse(time.RFC3339Nano, parts[0])
	if err != nil {
		return nil, fmt.Errorf("malformed cursor timestamp: %w", err)
	}
	id, err := uuid.Parse(parts[1])
	if err != nil {
		return nil, fmt.Errorf("malformed cursor id: %w", err)
	}
	return &Cursor{CreatedAt: at, ID: id}, nil
}

// TrimPage drops the sentinel row fetched beyond the requested limit and
// reports whether more rows remain.
func TrimPage[T any](rows []T, limit int) ([]T, bool) {
	limit = ClampLimit(limit)
	if len(rows) > limit {
		return rows[:limit], true
	}
	return rows, false
}
