package controllers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/artmovehq/artmove-backend/api/responses"
	"github.com/artmovehq/artmove-backend/api/validators"
	"github.com/artmovehq/artmove-backend/internal/orgs"
	pkgerrors "github.com/artmovehq/artmove-backend/pkg/errors"
	"github.com/artmovehq/artmove-backend/pkg/logger"
)

// GetOrganization returns one organization's directory entry.
func GetOrganization(repo orgs.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "organizations repository unavailable"))
			return
		}

		orgID, err := validators.ParsePathUUID(chi.URLParam(r, "orgID"), "orgID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		org, err := repo.FindOrganization(r.Context(), orgID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "organization not found"))
				return
			}
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load organization"))
			return
		}

		responses.WriteSuccess(w, org)
	}
}

// ListBranches returns the active organization's branch offices.
func ListBranches(repo orgs.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "organizations repository unavailable"))
			return
		}

		act, err := actorFromContext(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		branches, err := repo.FindBranches(r.Context(), act.OrgID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load branches"))
			return
		}

		responses.WriteSuccess(w, branches)
	}
}

// ListShippers returns the logistics partner directory used to build quote
// invites.
func ListShippers(repo orgs.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "organizations repository unavailable"))
			return
		}

		shippers, err := repo.FindShippers(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load shippers"))
			return
		}

		responses.WriteSuccess(w, shippers)
	}
}
