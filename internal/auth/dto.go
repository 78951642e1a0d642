package auth

import (
	"time"

	"github.com/google/uuid"

	"github.com/artmovehq/artmove-backend/pkg/db/models"
	"github.com/artmovehq/artmove-backend/pkg/enums"
)

// LoginRequest captures the credentials sent to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest rotates a refresh session into a fresh token pair.
type RefreshRequest struct {
	UserID       uuid.UUID `json:"user_id" validate:"required"`
	OrgID        uuid.UUID `json:"org_id" validate:"required"`
	RefreshToken string    `json:"refresh_token" validate:"required"`
}

// SwitchOrgRequest moves an authenticated user's session to another
// organization they belong to.
type SwitchOrgRequest struct {
	UserID uuid.UUID `json:"-"`
	OrgID  uuid.UUID `json:"org_id" validate:"required"`
}

// OrgSummary describes an organization the user can act for.
type OrgSummary struct {
	ID   uuid.UUID        `json:"id"`
	Name string           `json:"name"`
	Type enums.OrgType    `json:"type"`
	Role enums.MemberRole `json:"role"`
}

// UserDTO is the user shape returned by auth endpoints.
type UserDTO struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenPair is an access token plus the refresh token that renews it.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// LoginResponse contains the tokens, user, and organization list produced by
// a successful login.
type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ActiveOrgID  *uuid.UUID   `json:"active_org_id,omitempty"`
	Orgs         []OrgSummary `json:"orgs"`
	User         *UserDTO     `json:"user"`
}

func userDTO(user *models.User) *UserDTO {
	if user == nil {
		return nil
	}
	return &UserDTO{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		CreatedAt: user.CreatedAt,
	}
}
