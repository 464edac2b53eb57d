package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/fleetops/fleetcmd/internal/fleet/service"
	"github.com/fleetops/fleetcmd/internal/fleet/store"
	"github.com/fleetops/fleetcmd/pkg/fleetsdk"
	"github.com/fleetops/fleetcmd/pkg/httpx"
	"github.com/fleetops/fleetcmd/pkg/jwtx"
	"github.com/fleetops/fleetcmd/pkg/slogx"

	_ "github.com/fleetops/fleetcmd/api/fleet" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	UserService    *service.UserService
	DeviceService  *service.DeviceService
	CommandService *service.CommandService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerUsers()
	r.registerDevices()
	r.registerCommands()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			FleetCmd API
//	@version		0.1.0
//	@description	Multi-tenant device command and control service. Users register accounts
//	@description	and devices, issue asynchronous commands, and devices poll for pending work.
//
//	@contact.name	FleetOps Team
//	@contact.url	https://github.com/fleetops/fleetcmd
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@schemes	http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT bearer token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	// Credential endpoints - strict rate limit by IP (brute force prevention)
	r.Mux.Handle("POST /users/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /users/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("GET /users/get",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.AuthnMiddleware(r.verifier),
			r.requireCaller(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerDevices() {
	h := &DevicesHandler{DeviceService: r.DeviceService}

	// POST /devices/register also checks the device-secret token in the
	// service layer; the bearer token alone is not enough.
	r.Mux.Handle("POST /devices/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.AuthnMiddleware(r.verifier),
			r.requireCaller(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /devices/get",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.AuthnMiddleware(r.verifier),
			r.requireCaller(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /devices/get/all",
		httpx.Chain(http.HandlerFunc(h.HandleGetAll),
			httpx.AuthnMiddleware(r.verifier),
			r.requireCaller(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerCommands() {
	h := &CommandsHandler{CommandService: r.CommandService}

	r.Mux.Handle("POST /commands/create",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
			r.requireCaller(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /commands/batch/create",
		httpx.Chain(http.HandlerFunc(h.HandleBatchCreate),
			httpx.AuthnMiddleware(r.verifier),
			r.requireCaller(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /commands/get",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.AuthnMiddleware(r.verifier),
			r.requireCaller(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /commands/batch/get",
		httpx.Chain(http.HandlerFunc(h.HandleBatchGet),
			httpx.AuthnMiddleware(r.verifier),
			r.requireCaller(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// Device polling endpoint: no bearer token, devices call it on a loop.
	// Limited by IP + device_id so one noisy device cannot starve a NAT.
	r.Mux.Handle("GET /commands/recent",
		httpx.Chain(http.HandlerFunc(h.HandleRecent),
			httpx.RateLimitByIPAndQueryParam(httpx.PublicLimit, "device_id"),
		),
	)

	r.Mux.Handle("PATCH /commands/update/status",
		httpx.Chain(http.HandlerFunc(h.HandleUpdateStatus),
			httpx.AuthnMiddleware(r.verifier),
			r.requireCaller(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

// requireCaller completes the auth gate: the bearer token's subject must
// still exist. A token for a deleted user is a 404, not a 401, matching the
// caller-resolution contract.
func (r *Router) requireCaller() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := req.Context()

			userID, ok := httpx.UserIDFromContext(ctx)
			if !ok {
				fleetsdk.ErrUnauthorized.WriteError(w)
				return
			}

			exists, err := r.UserService.Exists(ctx, userID)
			if err != nil {
				slogx.FromContext(ctx).Error("caller resolution failed", "err", err)
				fleetsdk.ErrServerError.WriteError(w)
				return
			}
			if !exists {
				fleetsdk.ErrNotFound.WithDetail("user not found").WriteError(w)
				return
			}

			next.ServeHTTP(w, req)
		})
	}
}

// writeServiceError maps layered errors onto the wire taxonomy.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		fleetsdk.ErrNotFound.WriteError(w)
	case errors.Is(err, store.ErrNotModified):
		fleetsdk.ErrNotModified.WriteError(w)
	case errors.Is(err, service.ErrEmailTaken):
		fleetsdk.ErrConflict.WithDetail("email already registered").WriteError(w)
	case errors.Is(err, service.ErrInvalidData):
		fleetsdk.ErrInvalidData.WriteError(w)
	case errors.Is(err, service.ErrInvalidPassword):
		fleetsdk.ErrInvalidData.WithDetail("invalid password provided").WriteError(w)
	case errors.Is(err, service.ErrInvalidUserSecret):
		fleetsdk.ErrUnauthorized.WithDetail("invalid user secret").WriteError(w)
	default:
		fleetsdk.ErrServerError.WriteError(w)
	}
}
