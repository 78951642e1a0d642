package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/artmovehq/artmove-backend/api/responses"
	"github.com/artmovehq/artmove-backend/api/validators"
	"github.com/artmovehq/artmove-backend/internal/bids"
	pkgerrors "github.com/artmovehq/artmove-backend/pkg/errors"
	"github.com/artmovehq/artmove-backend/pkg/logger"
)

// UpsertBid creates or updates the partner's draft bid for a quote.
func UpsertBid(svc bids.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "bids service unavailable"))
			return
		}

		act, err := actorFromContext(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		quoteID, err := validators.ParsePathUUID(chi.URLParam(r, "quoteID"), "quoteID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body bids.UpsertBidInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		body.QuoteID = quoteID
		body.PartnerOrgID = act.OrgID
		body.ActorUserID = act.UserID

		bid, err := svc.UpsertBid(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, bid)
	}
}

// SubmitBid finalizes a draft bid so the client can see it.
func SubmitBid(svc bids.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "bids service unavailable"))
			return
		}

		act, err := actorFromContext(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		bidID, err := validators.ParsePathUUID(chi.URLParam(r, "bidID"), "bidID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		bid, err := svc.SubmitBid(r.Context(), bids.SubmitBidInput{
			BidID:        bidID,
			PartnerOrgID: act.OrgID,
			ActorUserID:  act.UserID,
			ActorRole:    act.Role,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, bid)
	}
}

// WithdrawBid retracts a live bid before acceptance.
func WithdrawBid(svc bids.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "bids service unavailable"))
			return
		}

		act, err := actorFromContext(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		bidID, err := validators.ParsePathUUID(chi.URLParam(r, "bidID"), "bidID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		err = svc.WithdrawBid(r.Context(), bids.WithdrawBidInput{
			BidID:        bidID,
			PartnerOrgID: act.OrgID,
			ActorUserID:  act.UserID,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "withdrawn"})
	}
}

// AcceptBid books a shipment from the chosen bid.
func AcceptBid(svc bids.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "bids service unavailable"))
			return
		}

		act, err := actorFromContext(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		bidID, err := validators.ParsePathUUID(chi.URLParam(r, "bidID"), "bidID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body bids.AcceptBidInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		body.BidID = bidID
		body.ClientOrgID = act.OrgID
		body.ActorUserID = act.UserID
		body.ActorRole = act.Role

		shipment, err := svc.AcceptBid(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, shipment)
	}
}

// ConsolidateQuotes merges several quotes into one shipment anchored on a
// primary bid.
func ConsolidateQuotes(svc bids.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "bids service unavailable"))
			return
		}

		act, err := actorFromContext(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body bids.ConsolidateInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		body.ClientOrgID = act.OrgID
		body.ActorUserID = act.UserID
		body.ActorRole = act.Role

		shipment, err := svc.ConsolidateQuotes(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, shipment)
	}
}

// GetBid returns one bid with its line items.
func GetBid(svc bids.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "bids service unavailable"))
			return
		}

		act, err := actorFromContext(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		bidID, err := validators.ParsePathUUID(chi.URLParam(r, "bidID"), "bidID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		bid, err := svc.GetBid(r.Context(), bidID, act.OrgID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, bid)
	}
}

// ListQuoteBids returns the bids visible to the caller for one quote.
func ListQuoteBids(svc bids.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "bids service unavailable"))
			return
		}

		act, err := actorFromContext(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		quoteID, err := validators.ParsePathUUID(chi.URLParam(r, "quoteID"), "quoteID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.ListBidsForQuote(r.Context(), quoteID, act.OrgID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}

// BidDiff compares a bid's line items against a previous revision.
func BidDiff(svc bids.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "bids service unavailable"))
			return
		}

		bidID, err := validators.ParsePathUUID(chi.URLParam(r, "bidID"), "bidID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		previousID, err := validators.ParsePathUUID(r.URL.Query().Get("previous_bid_id"), "previous_bid_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		diff, err := svc.DiffAgainstPrevious(r.Context(), bidID, previousID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, diff)
	}
}
