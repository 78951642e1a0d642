package controllers

import (
	"context"

	"github.com/google/uuid"

	"github.com/artmovehq/artmove-backend/api/middleware"
	pkgerrors "github.com/artmovehq/artmove-backend/pkg/errors"
)

// actor is the authenticated identity every org-scoped controller works with.
type actor struct {
	UserID uuid.UUID
	OrgID  uuid.UUID
	Role   string
}

func actorFromContext(ctx context.Context) (actor, error) {
	raw := middleware.UserIDFromContext(ctx)
	if raw == "" {
		return actor{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return actor{}, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid user identity")
	}

	rawOrg := middleware.OrgIDFromContext(ctx)
	if rawOrg == "" {
		return actor{}, pkgerrors.New(pkgerrors.CodeForbidden, "organization context missing")
	}
	orgID, err := uuid.Parse(rawOrg)
	if err != nil {
		return actor{}, pkgerrors.Wrap(pkgerrors.CodeForbidden, err, "invalid organization context")
	}

	return actor{
		UserID: userID,
		OrgID:  orgID,
		Role:   middleware.RoleFromContext(ctx),
	}, nil
}
