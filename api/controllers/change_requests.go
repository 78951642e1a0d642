package controllers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/artmovehq/artmove-backend/api/responses"
	"github.com/artmovehq/artmove-backend/api/validators"
	"github.com/artmovehq/artmove-backend/internal/changerequests"
	pkgerrors "github.com/artmovehq/artmove-backend/pkg/errors"
	"github.com/artmovehq/artmove-backend/pkg/logger"
)

// CreateChangeRequest opens a change request against a booked shipment.
func CreateChangeRequest(svc changerequests.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "change requests service unavailable"))
			return
		}

		act, err := actorFromContext(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		shipmentID, err := validators.ParsePathUUID(chi.URLParam(r, "shipmentID"), "shipmentID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body changerequests.CreateInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		body.ShipmentID = shipmentID
		body.ActorOrgID = act.OrgID
		body.ActorUserID = act.UserID
		body.ActorRole = act.Role

		request, err := svc.CreateChangeRequest(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, request)
	}
}

// ListChangeRequests returns a shipment's change requests, newest first.
func ListChangeRequests(svc changerequests.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "change requests service unavailable"))
			return
		}

		act, err := actorFromContext(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		shipmentID, err := validators.ParsePathUUID(chi.URLParam(r, "shipmentID"), "shipmentID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.ListChangeRequests(r.Context(), shipmentID, act.OrgID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}

// ApproveChangeRequest accepts the original proposal as-is.
func ApproveChangeRequest(svc changerequests.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "change requests service unavailable"))
			return
		}

		act, err := actorFromContext(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		requestID, err := validators.ParsePathUUID(chi.URLParam(r, "changeRequestID"), "changeRequestID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		err = svc.ApproveChangeRequest(r.Context(), changerequests.ApproveInput{
			ChangeRequestID: requestID,
			ActorOrgID:      act.OrgID,
			ActorUserID:     act.UserID,
			ActorRole:       act.Role,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "approved"})
	}
}

// RejectChangeRequest declines a pending change request.
func RejectChangeRequest(svc changerequests.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "change requests service unavailable"))
			return
		}

		act, err := actorFromContext(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		requestID, err := validators.ParsePathUUID(chi.URLParam(r, "changeRequestID"), "changeRequestID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body changerequests.RejectInput
		if r.ContentLength > 0 {
			if err := validators.DecodeJSONBody(r, &body); err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
		}
		body.ChangeRequestID = requestID
		body.ActorOrgID = act.OrgID
		body.ActorUserID = act.UserID
		body.ActorRole = act.Role

		if err := svc.RejectChangeRequest(r.Context(), body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "rejected"})
	}
}

// CounterChangeRequest answers a change request with a counter-offer bid.
func CounterChangeRequest(svc changerequests.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "change requests service unavailable"))
			return
		}

		act, err := actorFromContext(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		requestID, err := validators.ParsePathUUID(chi.URLParam(r, "changeRequestID"), "changeRequestID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body changerequests.CounterInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		body.ChangeRequestID = requestID
		body.ActorOrgID = act.OrgID
		body.ActorUserID = act.UserID
		body.ActorRole = act.Role

		counterBid, err := svc.CounterChangeRequest(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, counterBid)
	}
}

// AcceptCounterOffer books a shipment's open counter-offer.
func AcceptCounterOffer(svc changerequests.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "change requests service unavailable"))
			return
		}
		resolveCounterOffer(w, r, logg, "accepted", svc.AcceptCounterOffer)
	}
}

// RejectCounterOffer declines a shipment's open counter-offer, keeping the
// booked terms.
func RejectCounterOffer(svc changerequests.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "change requests service unavailable"))
			return
		}
		resolveCounterOffer(w, r, logg, "rejected", svc.RejectCounterOffer)
	}
}

func resolveCounterOffer(
	w http.ResponseWriter,
	r *http.Request,
	logg *logger.Logger,
	status string,
	resolve func(context.Context, changerequests.ResolveCounterInput) error,
) {
	act, err := actorFromContext(r.Context())
	if err != nil {
		responses.WriteError(r.Context(), logg, w, err)
		return
	}

	shipmentID, err := validators.ParsePathUUID(chi.URLParam(r, "shipmentID"), "shipmentID")
	if err != nil {
		responses.WriteError(r.Context(), logg, w, err)
		return
	}

	var body changerequests.ResolveCounterInput
	if r.ContentLength > 0 {
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
	}
	body.ShipmentID = shipmentID
	body.ActorOrgID = act.OrgID
	body.ActorUserID = act.UserID
	body.ActorRole = act.Role

	if err := resolve(r.Context(), body); err != nil {
		responses.WriteError(r.Context(), logg, w, err)
		return
	}

	responses.WriteSuccess(w, map[string]string{"status": status})
}
