package notifications

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/artmovehq/artmove-backend/pkg/db/models"
	pkgerrors "github.com/artmovehq/artmove-backend/pkg/errors"
)

type stubNotificationsRepo struct {
	rows []models.Notification
}

func (s *stubNotificationsRepo) WithTx(tx *gorm.DB) Repository { return s }

func (s *stubNotificationsRepo) Create(ctx context.Context, notifications []models.Notification) error {
	s.rows = append(s.rows, notifications...)
	return nil
}

func (s *stubNotificationsRepo) List(ctx context.Context, params listParams) ([]models.Notification, string, error) {
	var out []models.Notification
	for _, row := range s.rows {
		if row.OrgID != params.OrgID {
			continue
		}
		if params.UnreadOnly && row.ReadAt != nil {
			continue
		}
		out = append(out, row)
	}
	return out, "", nil
}

func (s *stubNotificationsRepo) MarkRead(ctx context.Context, orgID, notificationID uuid.UUID, now time.Time) (markResult, error) {
	for i := range s.rows {
		if s.rows[i].ID != notificationID || s.rows[i].OrgID != orgID {
			continue
		}
		if s.rows[i].ReadAt != nil {
			return markResult{Found: true}, nil
		}
		s.rows[i].ReadAt = &now
		return markResult{Updated: true, Found: true}, nil
	}
	return markResult{}, nil
}

func (s *stubNotificationsRepo) MarkAllRead(ctx context.Context, orgID uuid.UUID, now time.Time) (int64, error) {
	var count int64
	for i := range s.rows {
		if s.rows[i].OrgID == orgID && s.rows[i].ReadAt == nil {
			s.rows[i].ReadAt = &now
			count++
		}
	}
	return count, nil
}

func assertCode(t *testing.T, err error, want pkgerrors.Code) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	appErr := pkgerrors.As(err)
	if appErr == nil {
		t.Fatalf("expected an application error, got %v", err)
	}
	if appErr.Code() != want {
		t.Fatalf("expected code %s, got %s (%v)", want, appErr.Code(), err)
	}
}

func seeded(orgID uuid.UUID, read bool) models.Notification {
	n := models.Notification{
		ID:        uuid.New(),
		OrgID:     orgID,
		Type:      "bid_submitted",
		Title:     "New bid received",
		Message:   "A logistics partner submitted a bid on your quote.",
		CreatedAt: time.Now().UTC(),
	}
	if read {
		at := time.Now().UTC()
		n.ReadAt = &at
	}
	return n
}

func TestListFiltersUnread(t *testing.T) {
	orgID := uuid.New()
	repo := &stubNotificationsRepo{rows: []models.Notification{
		seeded(orgID, false),
		seeded(orgID, true),
		seeded(uuid.New(), false),
	}}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	result, err := svc.List(context.Background(), ListParams{OrgID: orgID, UnreadOnly: true})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(result.Items) != 1 {
		t.Fatalf("expected 1 unread notification, got %d", len(result.Items))
	}
}

func TestMarkReadUnknownNotificationReportsNotFound(t *testing.T) {
	orgID := uuid.New()
	repo := &stubNotificationsRepo{}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	err = svc.MarkRead(context.Background(), orgID, uuid.New())
	assertCode(t, err, pkgerrors.CodeNotFound)
}

func TestMarkReadTwiceStaysIdempotent(t *testing.T) {
	orgID := uuid.New()
	row := seeded(orgID, false)
	repo := &stubNotificationsRepo{rows: []models.Notification{row}}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	if err := svc.MarkRead(context.Background(), orgID, row.ID); err != nil {
		t.Fatalf("first mark: %v", err)
	}
	if err := svc.MarkRead(context.Background(), orgID, row.ID); err != nil {
		t.Fatalf("second mark: %v", err)
	}
}

func TestMarkReadScopedToOwningOrg(t *testing.T) {
	row := seeded(uuid.New(), false)
	repo := &stubNotificationsRepo{rows: []models.Notification{row}}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	err = svc.MarkRead(context.Background(), uuid.New(), row.ID)
	assertCode(t, err, pkgerrors.CodeNotFound)
	if repo.rows[0].ReadAt != nil {
		t.Fatal("notification should stay unread")
	}
}

func TestMarkAllReadReturnsCount(t *testing.T) {
	orgID := uuid.New()
	repo := &stubNotificationsRepo{rows: []models.Notification{
		seeded(orgID, false),
		seeded(orgID, false),
		seeded(orgID, true),
	}}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	count, err := svc.MarkAllRead(context.Background(), orgID)
	if err != nil {
		t.Fatalf("mark all read: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 marked, got %d", count)
	}
}
