package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/artmovehq/artmove-backend/api/controllers"
	"github.com/artmovehq/artmove-backend/api/middleware"
	"github.com/artmovehq/artmove-backend/internal/auth"
	"github.com/artmovehq/artmove-backend/internal/bids"
	"github.com/artmovehq/artmove-backend/internal/changerequests"
	"github.com/artmovehq/artmove-backend/internal/notifications"
	"github.com/artmovehq/artmove-backend/internal/orgs"
	"github.com/artmovehq/artmove-backend/internal/quotes"
	"github.com/artmovehq/artmove-backend/internal/shipments"
	"github.com/artmovehq/artmove-backend/pkg/auth/session"
	"github.com/artmovehq/artmove-backend/pkg/config"
	"github.com/artmovehq/artmove-backend/pkg/db"
	"github.com/artmovehq/artmove-backend/pkg/logger"
	"github.com/artmovehq/artmove-backend/pkg/redis"
)

// RouterParams bundles everything the HTTP surface depends on.
type RouterParams struct {
	Config         *config.Config
	Logger         *logger.Logger
	DB             db.Pinger
	Redis          *redis.Client
	Sessions       session.AccessSessionChecker
	Registry       prometheus.Gatherer
	Auth           auth.Service
	Quotes         quotes.Service
	Bids           bids.Service
	Shipments      shipments.Service
	ChangeRequests changerequests.Service
	Notifications  notifications.Service
	Orgs           orgs.Repository
}

// NewRouter wires every endpoint behind the shared middleware chain.
func NewRouter(p RouterParams) http.Handler {
	cfg := p.Config
	logg := p.Logger

	var redisPinger redis.Pinger
	var idempotencyStore middleware.IdempotencyStore
	var limiterStore middleware.RateLimiterStore
	if p.Redis != nil {
		redisPinger = p.Redis
		idempotencyStore = p.Redis
		limiterStore = p.Redis
	}

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, p.DB, redisPinger))
	})

	if p.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{}))
	}

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, limiterStore, logg)).Post("/login", controllers.AuthLogin(p.Auth, logg))
		r.Post("/refresh", controllers.AuthRefresh(p.Auth, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, p.Sessions, logg))
			r.Post("/logout", controllers.AuthLogout(p.Auth, logg))
			r.Post("/switch-org", controllers.AuthSwitchOrg(p.Auth, logg))
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, p.Sessions, logg))
		r.Use(middleware.RequireOrg(logg))
		r.Use(middleware.Idempotency(idempotencyStore, logg))

		r.Route("/quotes", func(r chi.Router) {
			r.Post("/", controllers.CreateQuote(p.Quotes, logg))
			r.Get("/", controllers.ListQuotes(p.Quotes, logg))
			r.Post("/consolidate", controllers.ConsolidateQuotes(p.Bids, logg))
			r.Route("/{quoteID}", func(r chi.Router) {
				r.Get("/", controllers.GetQuote(p.Quotes, logg))
				r.Get("/participants", controllers.ListQuoteParticipants(p.Quotes, logg))
				r.Post("/submit", controllers.SubmitQuote(p.Quotes, logg))
				r.Post("/reopen", controllers.ReopenQuote(p.Quotes, logg))
				r.Post("/cancel", controllers.CancelQuote(p.Quotes, logg))
				r.Post("/artworks", controllers.AddQuoteArtworks(p.Quotes, logg))
				r.Patch("/artworks/{artworkID}", controllers.UpdateQuoteArtwork(p.Quotes, logg))
				r.Delete("/artworks/{artworkID}", controllers.DeleteQuoteArtwork(p.Quotes, logg))
				r.Post("/bids", controllers.UpsertBid(p.Bids, logg))
				r.Get("/bids", controllers.ListQuoteBids(p.Bids, logg))
			})
		})

		r.Route("/bids/{bidID}", func(r chi.Router) {
			r.Get("/", controllers.GetBid(p.Bids, logg))
			r.Get("/diff", controllers.BidDiff(p.Bids, logg))
			r.Post("/submit", controllers.SubmitBid(p.Bids, logg))
			r.Post("/withdraw", controllers.WithdrawBid(p.Bids, logg))
			r.Post("/accept", controllers.AcceptBid(p.Bids, logg))
		})

		r.Route("/shipments", func(r chi.Router) {
			r.Get("/", controllers.ListShipments(p.Shipments, logg))
			r.Route("/{shipmentID}", func(r chi.Router) {
				r.Get("/", controllers.GetShipment(p.Shipments, logg))
				r.Patch("/status", controllers.UpdateShipmentStatus(p.Shipments, logg))
				r.Post("/cancel", controllers.CancelShipment(p.Shipments, logg))
				r.Post("/unassign", controllers.UnassignShipment(p.Shipments, logg))
				r.Post("/change-requests", controllers.CreateChangeRequest(p.ChangeRequests, logg))
				r.Get("/change-requests", controllers.ListChangeRequests(p.ChangeRequests, logg))
				r.Post("/counter-offer/accept", controllers.AcceptCounterOffer(p.ChangeRequests, logg))
				r.Post("/counter-offer/reject", controllers.RejectCounterOffer(p.ChangeRequests, logg))
			})
		})

		r.Route("/change-requests/{changeRequestID}", func(r chi.Router) {
			r.Post("/approve", controllers.ApproveChangeRequest(p.ChangeRequests, logg))
			r.Post("/reject", controllers.RejectChangeRequest(p.ChangeRequests, logg))
			r.Post("/counter", controllers.CounterChangeRequest(p.ChangeRequests, logg))
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", controllers.ListNotifications(p.Notifications, logg))
			r.Post("/{notificationID}/read", controllers.MarkNotificationRead(p.Notifications, logg))
			r.Post("/read-all", controllers.MarkAllNotificationsRead(p.Notifications, logg))
		})

		r.Route("/orgs", func(r chi.Router) {
			r.Get("/branches", controllers.ListBranches(p.Orgs, logg))
			r.Get("/shippers", controllers.ListShippers(p.Orgs, logg))
			r.Get("/{orgID}", controllers.GetOrganization(p.Orgs, logg))
		})
	})

	return r
}
