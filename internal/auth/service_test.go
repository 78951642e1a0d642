package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgauth "github.com/artmovehq/artmove-backend/pkg/auth"
	"github.com/artmovehq/artmove-backend/pkg/config"
	"github.com/artmovehq/artmove-backend/pkg/db/models"
	"github.com/artmovehq/artmove-backend/pkg/enums"
	pkgerrors "github.com/artmovehq/artmove-backend/pkg/errors"
	"github.com/artmovehq/artmove-backend/pkg/security"
)

type stubAuthRepo struct {
	user *models.User
}

func (s *stubAuthRepo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.user == nil || s.user.Email != email {
		return nil, gorm.ErrRecordNotFound
	}
	return s.user, nil
}

func (s *stubAuthRepo) FindUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if s.user == nil || s.user.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return s.user, nil
}

func (s *stubAuthRepo) FindMembership(ctx context.Context, userID, orgID uuid.UUID) (*models.Membership, error) {
	if s.user == nil || s.user.ID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	for i := range s.user.Memberships {
		if s.user.Memberships[i].OrgID == orgID {
			return &s.user.Memberships[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type stubSessionManager struct {
	refreshToken string
	created      []string
	revoked      []string
	rotateErr    error
}

func (s *stubSessionManager) Create(ctx context.Context, userID, orgID, jti string) (string, error) {
	s.created = append(s.created, userID+":"+orgID)
	return s.refreshToken, nil
}

func (s *stubSessionManager) Rotate(ctx context.Context, userID, orgID, presented string) (string, string, error) {
	if s.rotateErr != nil {
		return "", "", s.rotateErr
	}
	if presented != s.refreshToken {
		return "", "", gorm.ErrRecordNotFound
	}
	return "rotated-token", uuid.NewString(), nil
}

func (s *stubSessionManager) Revoke(ctx context.Context, userID, orgID string) error {
	s.revoked = append(s.revoked, userID+":"+orgID)
	return nil
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "artmove-test",
		ExpirationMinutes: 15,
	}
}

func testUser(t *testing.T, password string, memberships ...models.Membership) *models.User {
	t.Helper()
	hash, err := security.HashPassword(password, config.PasswordConfig{})
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return &models.User{
		ID:           uuid.New(),
		Email:        "ana@gallery.test",
		PasswordHash: hash,
		FullName:     "Ana Duarte",
		Memberships:  memberships,
	}
}

func membershipFor(userID uuid.UUID, orgType enums.OrgType, role enums.MemberRole) models.Membership {
	orgID := uuid.New()
	return models.Membership{
		ID:     uuid.New(),
		UserID: userID,
		OrgID:  orgID,
		Role:   role,
		Org:    &models.Organization{ID: orgID, Name: "Org", Type: orgType},
	}
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

func TestLoginReturnsTokensAndOrgs(t *testing.T) {
	user := testUser(t, "correct horse")
	user.Memberships = []models.Membership{
		membershipFor(user.ID, enums.OrgTypeGallery, enums.MemberRoleOwner),
		membershipFor(user.ID, enums.OrgTypeShipper, enums.MemberRoleMember),
	}
	for i := range user.Memberships {
		user.Memberships[i].UserID = user.ID
	}
	session := &stubSessionManager{refreshToken: "refresh-token"}
	svc, err := NewService(ServiceParams{
		Repo:           &stubAuthRepo{user: user},
		SessionManager: session,
		JWTConfig:      testJWTConfig(),
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	resp, err := svc.Login(context.Background(), LoginRequest{Email: user.Email, Password: "correct horse"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.RefreshToken != "refresh-token" {
		t.Fatalf("unexpected refresh token %q", resp.RefreshToken)
	}
	if len(resp.Orgs) != 2 {
		t.Fatalf("expected 2 orgs, got %d", len(resp.Orgs))
	}
	if resp.ActiveOrgID == nil || *resp.ActiveOrgID != user.Memberships[0].OrgID {
		t.Fatalf("expected active org %s, got %v", user.Memberships[0].OrgID, resp.ActiveOrgID)
	}

	claims, err := pkgauth.ParseAccessToken(testJWTConfig(), resp.AccessToken)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("expected user %s in claims, got %s", user.ID, claims.UserID)
	}
	if claims.ActiveOrgID == nil || *claims.ActiveOrgID != user.Memberships[0].OrgID {
		t.Fatalf("expected active org in claims")
	}
}

func TestLoginWrongPasswordIsUnauthorized(t *testing.T) {
	user := testUser(t, "correct horse", models.Membership{OrgID: uuid.New(), Role: enums.MemberRoleOwner})
	svc, err := NewService(ServiceParams{
		Repo:           &stubAuthRepo{user: user},
		SessionManager: &stubSessionManager{},
		JWTConfig:      testJWTConfig(),
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = svc.Login(context.Background(), LoginRequest{Email: user.Email, Password: "battery staple"})
	assertCode(t, err, pkgerrors.CodeUnauthorized)
}

func TestLoginWithoutMembershipsIsUnauthorized(t *testing.T) {
	user := testUser(t, "correct horse")
	svc, err := NewService(ServiceParams{
		Repo:           &stubAuthRepo{user: user},
		SessionManager: &stubSessionManager{},
		JWTConfig:      testJWTConfig(),
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = svc.Login(context.Background(), LoginRequest{Email: user.Email, Password: "correct horse"})
	assertCode(t, err, pkgerrors.CodeUnauthorized)
}

func TestRefreshRotatesPair(t *testing.T) {
	user := testUser(t, "correct horse")
	user.Memberships = []models.Membership{membershipFor(user.ID, enums.OrgTypeGallery, enums.MemberRoleOwner)}
	user.Memberships[0].UserID = user.ID
	session := &stubSessionManager{refreshToken: "refresh-token"}
	svc, err := NewService(ServiceParams{
		Repo:           &stubAuthRepo{user: user},
		SessionManager: session,
		JWTConfig:      testJWTConfig(),
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	pair, err := svc.Refresh(context.Background(), RefreshRequest{
		UserID:       user.ID,
		OrgID:        user.Memberships[0].OrgID,
		RefreshToken: "refresh-token",
	})
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if pair.RefreshToken != "rotated-token" {
		t.Fatalf("expected rotated token, got %q", pair.RefreshToken)
	}
	if pair.AccessToken == "" {
		t.Fatal("expected a fresh access token")
	}
}

func TestRefreshWithStaleTokenIsUnauthorized(t *testing.T) {
	user := testUser(t, "correct horse")
	user.Memberships = []models.Membership{membershipFor(user.ID, enums.OrgTypeGallery, enums.MemberRoleOwner)}
	user.Memberships[0].UserID = user.ID
	svc, err := NewService(ServiceParams{
		Repo:           &stubAuthRepo{user: user},
		SessionManager: &stubSessionManager{refreshToken: "refresh-token"},
		JWTConfig:      testJWTConfig(),
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = svc.Refresh(context.Background(), RefreshRequest{
		UserID:       user.ID,
		OrgID:        user.Memberships[0].OrgID,
		RefreshToken: "stolen-or-stale",
	})
	assertCode(t, err, pkgerrors.CodeUnauthorized)
}

func TestSwitchOrgRequiresMembership(t *testing.T) {
	user := testUser(t, "correct horse")
	user.Memberships = []models.Membership{membershipFor(user.ID, enums.OrgTypeGallery, enums.MemberRoleOwner)}
	user.Memberships[0].UserID = user.ID
	svc, err := NewService(ServiceParams{
		Repo:           &stubAuthRepo{user: user},
		SessionManager: &stubSessionManager{refreshToken: "refresh-token"},
		JWTConfig:      testJWTConfig(),
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = svc.SwitchOrg(context.Background(), SwitchOrgRequest{UserID: user.ID, OrgID: uuid.New()})
	assertCode(t, err, pkgerrors.CodeForbidden)
}

func TestSwitchOrgMintsTokenForNewOrg(t *testing.T) {
	user := testUser(t, "correct horse")
	user.Memberships = []models.Membership{
		membershipFor(user.ID, enums.OrgTypeGallery, enums.MemberRoleOwner),
		membershipFor(user.ID, enums.OrgTypeShipper, enums.MemberRoleMember),
	}
	for i := range user.Memberships {
		user.Memberships[i].UserID = user.ID
	}
	session := &stubSessionManager{refreshToken: "refresh-token"}
	svc, err := NewService(ServiceParams{
		Repo:           &stubAuthRepo{user: user},
		SessionManager: session,
		JWTConfig:      testJWTConfig(),
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	target := user.Memberships[1].OrgID
	resp, err := svc.SwitchOrg(context.Background(), SwitchOrgRequest{UserID: user.ID, OrgID: target})
	if err != nil {
		t.Fatalf("switch org: %v", err)
	}

	claims, err := pkgauth.ParseAccessToken(testJWTConfig(), resp.AccessToken)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}
	if claims.ActiveOrgID == nil || *claims.ActiveOrgID != target {
		t.Fatalf("expected claims scoped to %s, got %v", target, claims.ActiveOrgID)
	}
	if claims.OrgType == nil || *claims.OrgType != enums.OrgTypeShipper {
		t.Fatalf("expected shipper org type in claims, got %v", claims.OrgType)
	}
}
