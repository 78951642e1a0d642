package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgauth "github.com/artmovehq/artmove-backend/pkg/auth"
	"github.com/artmovehq/artmove-backend/pkg/config"
	"github.com/artmovehq/artmove-backend/pkg/db/models"
	pkgerrors "github.com/artmovehq/artmove-backend/pkg/errors"
	"github.com/artmovehq/artmove-backend/pkg/security"
)

const invalidCredentialsMessage = "invalid credentials"

type sessionManager interface {
	Create(ctx context.Context, userID, orgID, jti string) (string, error)
	Rotate(ctx context.Context, userID, orgID, presented string) (string, string, error)
	Revoke(ctx context.Context, userID, orgID string) error
}

// Service defines the behavior needed by the auth controller.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Refresh(ctx context.Context, req RefreshRequest) (*TokenPair, error)
	SwitchOrg(ctx context.Context, req SwitchOrgRequest) (*LoginResponse, error)
	Logout(ctx context.Context, userID, orgID uuid.UUID) error
}

type service struct {
	repo    Repository
	session sessionManager
	jwtCfg  config.JWTConfig
}

// ServiceParams bundles the dependencies required to build an auth service.
type ServiceParams struct {
	Repo           Repository
	SessionManager sessionManager
	JWTConfig      config.JWTConfig
}

// NewService constructs a login service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("auth repository is required")
	}
	if params.SessionManager == nil {
		return nil, fmt.Errorf("session manager is required")
	}
	return &service{
		repo:    params.Repo,
		session: params.SessionManager,
		jwtCfg:  params.JWTConfig,
	}, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	if len(user.Memberships) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}

	active := user.Memberships[0]
	pair, err := s.openSession(ctx, user, active)
	if err != nil {
		return nil, err
	}

	activeOrgID := active.OrgID
	return &LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ActiveOrgID:  &activeOrgID,
		Orgs:         orgSummaries(user.Memberships),
		User:         userDTO(user),
	}, nil
}

// Refresh rotates the presented refresh token into a fresh pair. The
// membership is re-read so revoked access dies at the next rotation.
func (s *service) Refresh(ctx context.Context, req RefreshRequest) (*TokenPair, error) {
	membership, err := s.loadMembership(ctx, req.UserID, req.OrgID, pkgerrors.CodeUnauthorized)
	if err != nil {
		return nil, err
	}

	refreshToken, jti, err := s.session.Rotate(ctx, req.UserID.String(), req.OrgID.String(), req.RefreshToken)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "refresh session expired")
	}

	accessToken, err := s.mintToken(membership, jti)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// SwitchOrg re-scopes the session to another organization the user belongs
// to. Sessions are keyed per user and org pair, so opening the new one
// replaces any earlier session for that pair without touching the old org's.
func (s *service) SwitchOrg(ctx context.Context, req SwitchOrgRequest) (*LoginResponse, error) {
	membership, err := s.loadMembership(ctx, req.UserID, req.OrgID, pkgerrors.CodeForbidden)
	if err != nil {
		return nil, err
	}
	user, err := s.repo.FindUser(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup user")
	}

	pair, err := s.openSession(ctx, user, *membership)
	if err != nil {
		return nil, err
	}

	activeOrgID := membership.OrgID
	return &LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ActiveOrgID:  &activeOrgID,
		Orgs:         orgSummaries(user.Memberships),
		User:         userDTO(user),
	}, nil
}

func (s *service) Logout(ctx context.Context, userID, orgID uuid.UUID) error {
	if err := s.session.Revoke(ctx, userID.String(), orgID.String()); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "revoke session")
	}
	return nil
}

func (s *service) authenticate(ctx context.Context, email, password string) (*models.User, error) {
	input := strings.TrimSpace(email)
	if input == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}
	user, err := s.repo.FindUserByEmail(ctx, input)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup user")
	}

	valid, err := security.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !valid {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}
	return user, nil
}

func (s *service) loadMembership(ctx context.Context, userID, orgID uuid.UUID, missingCode pkgerrors.Code) (*models.Membership, error) {
	membership, err := s.repo.FindMembership(ctx, userID, orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(missingCode, "no membership for organization")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup membership")
	}
	return membership, nil
}

func (s *service) openSession(ctx context.Context, user *models.User, membership models.Membership) (*TokenPair, error) {
	jti := uuid.NewString()
	accessToken, err := s.mintToken(&membership, jti)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.session.Create(ctx, user.ID.String(), membership.OrgID.String(), jti)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store refresh session")
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *service) mintToken(membership *models.Membership, jti string) (string, error) {
	orgID := membership.OrgID
	payload := pkgauth.AccessTokenPayload{
		UserID:      membership.UserID,
		ActiveOrgID: &orgID,
		Role:        membership.Role,
		JTI:         jti,
	}
	if membership.Org != nil {
		orgType := membership.Org.Type
		payload.OrgType = &orgType
	}
	accessToken, err := pkgauth.MintAccessToken(s.jwtCfg, time.Now().UTC(), payload)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint jwt")
	}
	return accessToken, nil
}

func orgSummaries(memberships []models.Membership) []OrgSummary {
	orgs := make([]OrgSummary, 0, len(memberships))
	for _, m := range memberships {
		summary := OrgSummary{ID: m.OrgID, Role: m.Role}
		if m.Org != nil {
			summary.Name = m.Org.Name
			summary.Type = m.Org.Type
		}
		orgs = append(orgs, summary)
	}
	return orgs
}
