package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/teamhaven/haven/internal/service"
	"github.com/teamhaven/haven/internal/store"
	"github.com/teamhaven/haven/pkg/httpx"
	"github.com/teamhaven/haven/pkg/jwtx"
	"github.com/teamhaven/haven/pkg/slogx"

	_ "github.com/teamhaven/haven/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	codec        *jwtx.Codec
	headers      TokenHeaders
	passwordMode service.PasswordMode
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	AuthService       *service.AuthService
	RegisterService   *service.RegisterService
	BackOfficeService *service.BackOfficeService
	RecordService     *service.RecordService
}

func NewRouter(
	codec *jwtx.Codec,
	headers TokenHeaders,
	passwordMode service.PasswordMode,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		codec:        codec,
		headers:      headers,
		passwordMode: passwordMode,
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
	r.registerAuth()
	r.registerSignup()
	r.registerBackOffice()
	r.registerRecords()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Haven Service API
//	@version		0.1.0
//	@description	Authentication, registration, and encrypted record storage for the
//	@description	Haven safety reporting platform. Access and refresh tokens are
//	@description	HS512-signed JWTs carried in response headers.
//
//	@contact.name				Team Haven
//	@contact.url				https://github.com/teamhaven/haven
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) authn() httpx.Middleware {
	return httpx.AuthnMiddleware(r.codec, r.headers.Access, r.headers.Prefix)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		AuthService: r.AuthService,
		Mode:        r.passwordMode,
		Headers:     r.headers,
	}

	// POST /login - strict rate limit (authentication attempts)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /refresh - strict rate limit; a stolen refresh token is as good
	// as a password here
	r.Mux.Handle("POST /v1/auth/refresh",
		httpx.Chain(http.HandlerFunc(h.HandleRefresh),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// GET /check-login-id - moderate rate limit (signup form polls this)
	r.Mux.Handle("GET /v1/auth/check-login-id",
		httpx.Chain(http.HandlerFunc(h.HandleCheckLoginID),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSignup() {
	h := &RegisterHandler{RegisterService: r.RegisterService}

	// All public signup endpoints get the strict limit by IP
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegisterEndUser),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/register/manage-person",
		httpx.Chain(http.HandlerFunc(h.HandleRegisterManagePerson),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/register/admin",
		httpx.Chain(http.HandlerFunc(h.HandleRegisterAdmin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerBackOffice() {
	h := &BackOfficeHandler{BackOfficeService: r.BackOfficeService}

	// Every back-office route requires the admin role - moderate rate limit by user
	secure := func(handler http.HandlerFunc) http.Handler {
		return httpx.Chain(handler,
			r.authn(),
			httpx.RequireAnyRole(r.AuthService.RoleOf, "BACK_OFFICE_ADMIN"),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("GET /v1/bo/registrations", secure(h.HandleListPending))
	r.Mux.Handle("GET /v1/bo/registrations/{id}", secure(h.HandleGetRegistration))
	r.Mux.Handle("POST /v1/bo/registrations/{id}/approve", secure(h.HandleApprove))
	r.Mux.Handle("POST /v1/bo/institutions", secure(h.HandleCreateInstitution))
	r.Mux.Handle("GET /v1/bo/institutions", secure(h.HandleListInstitutions))
}

func (r *Router) registerRecords() {
	h := &RecordsHandler{RecordService: r.RecordService}

	// Authenticated endpoints - lenient rate limit by user
	secure := func(handler http.HandlerFunc) http.Handler {
		return httpx.Chain(handler,
			r.authn(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		)
	}

	r.Mux.Handle("POST /v1/records/pictures", secure(h.HandleUploadPicture))
	r.Mux.Handle("POST /v1/records/diaries", secure(h.HandleUploadDiary))
	r.Mux.Handle("GET /v1/records", secure(h.HandleList))
	r.Mux.Handle("POST /v1/records/{id}/open", secure(h.HandleOpen))
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
