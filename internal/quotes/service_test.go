package quotes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/artmovehq/artmove-backend/pkg/config"
	"github.com/artmovehq/artmove-backend/pkg/db/models"
	"github.com/artmovehq/artmove-backend/pkg/enums"
	pkgerrors "github.com/artmovehq/artmove-backend/pkg/errors"
	"github.com/artmovehq/artmove-backend/pkg/outbox"
	"github.com/artmovehq/artmove-backend/pkg/pagination"
)

type stubQuotesRepo struct {
	quote          *models.Quote
	artworks       map[uuid.UUID]*models.QuoteArtwork
	invites        []models.QuoteInvite
	expiredQuotes  []models.Quote
	lockedCount    int64
	statusUpdates  []map[string]any
	createArtworks func(ctx context.Context, artworks []models.QuoteArtwork) error
	updateStatus   func(from []enums.QuoteStatus, updates map[string]any) (int64, error)
	updateArtwork  func(artworkID uuid.UUID, updates map[string]any) (int64, error)
}

func (s *stubQuotesRepo) WithTx(tx *gorm.DB) Repository { return s }

func (s *stubQuotesRepo) CreateQuote(ctx context.Context, quote *models.Quote) (*models.Quote, error) {
	if quote.ID == uuid.Nil {
		quote.ID = uuid.New()
	}
	s.quote = quote
	return quote, nil
}

func (s *stubQuotesRepo) CreateArtworks(ctx context.Context, artworks []models.QuoteArtwork) error {
	if s.createArtworks != nil {
		return s.createArtworks(ctx, artworks)
	}
	if s.artworks == nil {
		s.artworks = make(map[uuid.UUID]*models.QuoteArtwork)
	}
	for i := range artworks {
		artwork := artworks[i]
		if artwork.ID == uuid.Nil {
			artwork.ID = uuid.New()
		}
		s.artworks[artwork.ID] = &artwork
	}
	return nil
}

func (s *stubQuotesRepo) CreateInvites(ctx context.Context, invites []models.QuoteInvite) error {
	s.invites = append(s.invites, invites...)
	return nil
}

func (s *stubQuotesRepo) FindQuote(ctx context.Context, id uuid.UUID) (*models.Quote, error) {
	if s.quote == nil || s.quote.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return s.quote, nil
}

func (s *stubQuotesRepo) FindQuoteDetail(ctx context.Context, id uuid.UUID) (*models.Quote, error) {
	return s.FindQuote(ctx, id)
}

func (s *stubQuotesRepo) ListByClientOrg(ctx context.Context, clientOrgID uuid.UUID, params pagination.Params, filters ListFilters) (*QuoteList, error) {
	return &QuoteList{}, nil
}

func (s *stubQuotesRepo) UpdateQuoteStatus(ctx context.Context, id uuid.UUID, from []enums.QuoteStatus, updates map[string]any) (int64, error) {
	if s.updateStatus != nil {
		return s.updateStatus(from, updates)
	}
	s.statusUpdates = append(s.statusUpdates, updates)
	return 1, nil
}

func (s *stubQuotesRepo) UpdateArtwork(ctx context.Context, artworkID uuid.UUID, updates map[string]any) (int64, error) {
	if s.updateArtwork != nil {
		return s.updateArtwork(artworkID, updates)
	}
	artwork, ok := s.artworks[artworkID]
	if !ok || artwork.LockedAt != nil {
		return 0, nil
	}
	return 1, nil
}

func (s *stubQuotesRepo) DeleteArtwork(ctx context.Context, artworkID uuid.UUID) (int64, error) {
	artwork, ok := s.artworks[artworkID]
	if !ok || artwork.LockedAt != nil {
		return 0, nil
	}
	delete(s.artworks, artworkID)
	return 1, nil
}

func (s *stubQuotesRepo) LockArtworks(ctx context.Context, quoteID, lockedBy uuid.UUID, at time.Time) (int64, error) {
	var locked int64
	for _, artwork := range s.artworks {
		if artwork.QuoteID == quoteID && artwork.LockedAt == nil {
			ts := at
			by := lockedBy
			artwork.LockedAt = &ts
			artwork.LockedBy = &by
			locked++
		}
	}
	s.lockedCount += locked
	return locked, nil
}

func (s *stubQuotesRepo) FindArtwork(ctx context.Context, artworkID uuid.UUID) (*models.QuoteArtwork, error) {
	artwork, ok := s.artworks[artworkID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return artwork, nil
}

func (s *stubQuotesRepo) FindArtworksByQuote(ctx context.Context, quoteID uuid.UUID) ([]models.QuoteArtwork, error) {
	var out []models.QuoteArtwork
	for _, artwork := range s.artworks {
		if artwork.QuoteID == quoteID {
			out = append(out, *artwork)
		}
	}
	return out, nil
}

func (s *stubQuotesRepo) FindInvitesByQuote(ctx context.Context, quoteID uuid.UUID) ([]models.QuoteInvite, error) {
	return s.invites, nil
}

func (s *stubQuotesRepo) FindExpiredAuctionQuotes(ctx context.Context, cutoff time.Time, limit int) ([]models.Quote, error) {
	return s.expiredQuotes, nil
}

type stubTxRunner struct{}

func (stubTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(&gorm.DB{})
}

type stubOutboxPublisher struct {
	events []outbox.DomainEvent
	err    error
}

func (s *stubOutboxPublisher) Emit(ctx context.Context, tx *gorm.DB, event outbox.DomainEvent) error {
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, event)
	return nil
}

type stubOrgDirectory struct {
	orgs map[uuid.UUID]models.Organization
}

func (s *stubOrgDirectory) FindOrganizations(ctx context.Context, ids []uuid.UUID) ([]models.Organization, error) {
	var out []models.Organization
	for _, id := range ids {
		if org, ok := s.orgs[id]; ok {
			out = append(out, org)
		}
	}
	return out, nil
}

func testConfig() config.QuotesConfig {
	return config.QuotesConfig{
		MinDeadlineLead:   time.Hour,
		DeadlineToArrival: 48 * time.Hour,
	}
}

func newTestService(t *testing.T, repo *stubQuotesRepo, ob *stubOutboxPublisher, orgs *stubOrgDirectory) Service {
	t.Helper()
	if orgs == nil {
		orgs = &stubOrgDirectory{}
	}
	svc, err := NewService(repo, stubTxRunner{}, ob, orgs, nil, testConfig())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestCreateQuoteWithArtworksPartialFailureKeepsQuote(t *testing.T) {
	repo := &stubQuotesRepo{
		createArtworks: func(ctx context.Context, artworks []models.QuoteArtwork) error {
			return errors.New("insert failed")
		},
	}
	svc := newTestService(t, repo, &stubOutboxPublisher{}, nil)

	_, err := svc.CreateQuoteWithArtworks(context.Background(), CreateQuoteInput{
		Title:       "Venice to Basel",
		Type:        enums.QuoteTypeRequested,
		ClientOrgID: uuid.New(),
		ActorUserID: uuid.New(),
		Artworks:    []ArtworkInput{{Name: "Untitled", Weight: "12kg"}},
	})
	if err == nil {
		t.Fatal("expected error when artwork insert fails")
	}
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
	details, ok := appErr.Details().(map[string]any)
	if !ok {
		t.Fatalf("expected details map, got %T", appErr.Details())
	}
	if details["step"] != "artworks" {
		t.Errorf("expected step=artworks, got %v", details["step"])
	}
	if repo.quote == nil {
		t.Fatal("quote row should survive the artwork failure")
	}
	if details["quote_id"] != repo.quote.ID {
		t.Errorf("details should carry the surviving quote id")
	}
	if repo.quote.Status != enums.QuoteStatusDraft {
		t.Errorf("quote should remain draft, got %s", repo.quote.Status)
	}
}

func TestSubmitQuoteLocksArtworks(t *testing.T) {
	quoteID := uuid.New()
	orgID := uuid.New()
	repo := &stubQuotesRepo{
		quote: &models.Quote{
			ID:          quoteID,
			Code:        "Q-TEST01",
			ClientOrgID: orgID,
			Status:      enums.QuoteStatusDraft,
			Type:        enums.QuoteTypeRequested,
		},
		artworks: map[uuid.UUID]*models.QuoteArtwork{},
	}
	for i := 0; i < 2; i++ {
		id := uuid.New()
		repo.artworks[id] = &models.QuoteArtwork{ID: id, QuoteID: quoteID, Name: "Piece"}
	}
	ob := &stubOutboxPublisher{}
	svc := newTestService(t, repo, ob, nil)

	err := svc.SubmitQuote(context.Background(), SubmitQuoteInput{
		QuoteID:     quoteID,
		ActorUserID: uuid.New(),
		ActorOrgID:  orgID,
	})
	if err != nil {
		t.Fatalf("SubmitQuote: %v", err)
	}
	if repo.lockedCount != 2 {
		t.Errorf("expected 2 artworks locked, got %d", repo.lockedCount)
	}
	for _, artwork := range repo.artworks {
		if artwork.LockedAt == nil {
			t.Error("artwork should be locked after submit")
		}
	}
	if len(ob.events) != 1 || ob.events[0].EventType != enums.EventQuoteSubmitted {
		t.Fatalf("expected one quote.submitted event, got %+v", ob.events)
	}
}

func TestSubmitQuoteRejectsNonDraft(t *testing.T) {
	quoteID := uuid.New()
	orgID := uuid.New()
	repo := &stubQuotesRepo{
		quote: &models.Quote{ID: quoteID, ClientOrgID: orgID, Status: enums.QuoteStatusActive},
	}
	svc := newTestService(t, repo, &stubOutboxPublisher{}, nil)

	err := svc.SubmitQuote(context.Background(), SubmitQuoteInput{
		QuoteID:     quoteID,
		ActorUserID: uuid.New(),
		ActorOrgID:  orgID,
	})
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}
}

func TestSubmitQuoteValidatesDeadline(t *testing.T) {
	quoteID := uuid.New()
	orgID := uuid.New()
	soon := time.Now().UTC().Add(10 * time.Minute)
	repo := &stubQuotesRepo{
		quote: &models.Quote{
			ID:               quoteID,
			ClientOrgID:      orgID,
			Status:           enums.QuoteStatusDraft,
			AutoCloseBidding: true,
			BiddingDeadline:  &soon,
		},
	}
	svc := newTestService(t, repo, &stubOutboxPublisher{}, nil)

	err := svc.SubmitQuote(context.Background(), SubmitQuoteInput{
		QuoteID:     quoteID,
		ActorUserID: uuid.New(),
		ActorOrgID:  orgID,
	})
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for near deadline, got %v", err)
	}

	// deadline too close to the target date
	deadline := time.Now().UTC().Add(72 * time.Hour)
	target := deadline.Add(24 * time.Hour)
	repo.quote.BiddingDeadline = &deadline
	repo.quote.TargetDateStart = &target
	err = svc.SubmitQuote(context.Background(), SubmitQuoteInput{
		QuoteID:     quoteID,
		ActorUserID: uuid.New(),
		ActorOrgID:  orgID,
	})
	appErr = pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for deadline near target, got %v", err)
	}
}

func TestUpdateArtworkRejectedWhenLocked(t *testing.T) {
	quoteID := uuid.New()
	orgID := uuid.New()
	artworkID := uuid.New()
	lockedAt := time.Now().UTC()
	repo := &stubQuotesRepo{
		quote: &models.Quote{ID: quoteID, ClientOrgID: orgID, Status: enums.QuoteStatusActive},
		artworks: map[uuid.UUID]*models.QuoteArtwork{
			artworkID: {ID: artworkID, QuoteID: quoteID, Name: "Piece", LockedAt: &lockedAt},
		},
	}
	svc := newTestService(t, repo, &stubOutboxPublisher{}, nil)

	err := svc.UpdateArtwork(context.Background(), UpdateArtworkInput{
		QuoteID:    quoteID,
		ArtworkID:  artworkID,
		Fields:     ArtworkInput{Name: "Renamed"},
		ActorOrgID: orgID,
	})
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict for locked artwork, got %v", err)
	}

	err = svc.DeleteArtwork(context.Background(), DeleteArtworkInput{
		QuoteID:    quoteID,
		ArtworkID:  artworkID,
		ActorOrgID: orgID,
	})
	appErr = pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict for locked artwork delete, got %v", err)
	}
	if _, ok := repo.artworks[artworkID]; !ok {
		t.Fatal("locked artwork must not be removed")
	}
}

func TestCancelQuoteTerminalStateRejected(t *testing.T) {
	quoteID := uuid.New()
	orgID := uuid.New()
	repo := &stubQuotesRepo{
		quote: &models.Quote{ID: quoteID, ClientOrgID: orgID, Status: enums.QuoteStatusCancelled},
	}
	svc := newTestService(t, repo, &stubOutboxPublisher{}, nil)

	err := svc.CancelQuote(context.Background(), CancelQuoteInput{
		QuoteID:    quoteID,
		ActorOrgID: orgID,
	})
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict for cancelled quote, got %v", err)
	}
}

func TestExpireQuotesEmitsEvents(t *testing.T) {
	repo := &stubQuotesRepo{
		expiredQuotes: []models.Quote{
			{ID: uuid.New(), Code: "Q-OLD001", ClientOrgID: uuid.New(), Status: enums.QuoteStatusActive},
			{ID: uuid.New(), Code: "Q-OLD002", ClientOrgID: uuid.New(), Status: enums.QuoteStatusActive},
		},
	}
	ob := &stubOutboxPublisher{}
	svc := newTestService(t, repo, ob, nil)

	expired, err := svc.ExpireQuotes(context.Background(), 10)
	if err != nil {
		t.Fatalf("ExpireQuotes: %v", err)
	}
	if expired != 2 {
		t.Errorf("expected 2 expired, got %d", expired)
	}
	if len(ob.events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(ob.events))
	}
	for _, event := range ob.events {
		if event.EventType != enums.EventQuoteExpired {
			t.Errorf("unexpected event type %s", event.EventType)
		}
	}
}

func TestCreateQuoteDedupesInvites(t *testing.T) {
	partnerID := uuid.New()
	orgs := &stubOrgDirectory{orgs: map[uuid.UUID]models.Organization{
		partnerID: {ID: partnerID, Name: "Crated & Co", Type: enums.OrgTypeShipper},
	}}
	repo := &stubQuotesRepo{}
	svc := newTestService(t, repo, &stubOutboxPublisher{}, orgs)

	quote, err := svc.CreateQuoteWithArtworks(context.Background(), CreateQuoteInput{
		Title:       "Twin invites",
		Type:        enums.QuoteTypeRequested,
		ClientOrgID: uuid.New(),
		ActorUserID: uuid.New(),
		Artworks:    []ArtworkInput{{Name: "Piece"}},
		Invites: []InviteInput{
			{LogisticsPartnerID: &partnerID},
			{LogisticsPartnerID: &partnerID},
		},
	})
	if err != nil {
		t.Fatalf("CreateQuoteWithArtworks: %v", err)
	}
	if len(quote.Invites) != 1 {
		t.Fatalf("expected deduplicated invites, got %d", len(quote.Invites))
	}
	if quote.Invites[0].PartnerName == nil || *quote.Invites[0].PartnerName != "Crated & Co" {
		t.Errorf("invite should carry the partner display name")
	}
}
