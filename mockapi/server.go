package mockapi

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jrsteele09/go-social-client/gateway"
	"github.com/jrsteele09/go-social-client/internal/config"
	"github.com/jrsteele09/go-social-client/token/jwt"
	"github.com/jrsteele09/go-social-client/token/keys"
	"github.com/jrsteele09/go-social-client/users"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Server is an in-memory stand-in for the remote social API
type Server struct {
	env          string // Environment (e.g., "development", "production")
	router       chi.Router
	routes       []string
	users        users.UserRepo
	usersLock    sync.RWMutex // Guards follow lists and profile fields
	posts        *postStore
	apiKeys      *apiKeyStore
	creator      *jwt.Creator
	inspector    *jwt.Inspector
	apiKeyHeader string
	nowTime      func() time.Time
}

// Option defines a function type to modify the Server instance
type Option func(*Server)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) Option {
	return func(s *Server) {
		s.nowTime = nowFunc
	}
}

func New(cfg config.Config, userRepo users.UserRepo, options ...Option) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("[mockapi.New] config is required")
	}
	if userRepo == nil {
		return nil, errors.New("[mockapi.New] user repo is required")
	}

	signer, err := keys.NewHMACSigner(cfg.GetJWTSecret())
	if err != nil {
		return nil, errors.Wrap(err, "[mockapi.New] creating signer")
	}

	s := &Server{
		env:          cfg.GetEnv(),
		users:        userRepo,
		apiKeys:      newAPIKeyStore(),
		creator:      jwt.NewCreator(signer, cfg.GetAccessTokenExpiry()),
		inspector:    jwt.NewInspector(signer),
		apiKeyHeader: cfg.GetAPIKeyHeader(),
		nowTime:      time.Now,
	}
	for _, opt := range options {
		opt(s)
	}
	s.posts = newPostStore(s.nowTime)

	s.initRoutes(cfg)
	s.logRoutes()
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) initRoutes(cfg config.MockAPIConfig) {
	r := chi.NewRouter()
	r.Use(s.RecoverMiddleware, s.LoggingMiddleware)

	r.Get(RouteHealth, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// AUTH
	r.Group(func(r chi.Router) {
		r.Use(s.RateLimitMiddleware(cfg.GetAuthRateLimit()))
		r.Post(RouteAuthRegister, s.RegisterHandler())
		r.Post(RouteAuthLogin, s.LoginHandler())
		r.With(s.RequireToken).Post(RouteAuthCreateAPIKey, s.CreateAPIKeyHandler())
	})

	// SOCIAL (bearer token and API key)
	r.Group(func(r chi.Router) {
		r.Use(s.RequireToken, s.RequireAPIKey)

		r.Get(RoutePosts, s.ListPostsHandler())
		r.Post(RoutePosts, s.CreatePostHandler())
		r.Get(RoutePost, s.GetPostHandler())
		r.Put(RoutePost, s.UpdatePostHandler())
		r.Delete(RoutePost, s.DeletePostHandler())

		r.Get(RouteProfile, s.GetProfileHandler())
		r.Put(RouteProfile, s.UpdateProfileHandler())
		r.Get(RouteProfilePosts, s.ProfilePostsHandler())
		r.Put(RouteProfileFollow, s.FollowHandler(true))
		r.Put(RouteProfileUnfollow, s.FollowHandler(false))
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Route not found")
	})

	s.router = r
	_ = chi.Walk(r, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		s.routes = append(s.routes, method+" "+route)
		return nil
	})
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		method, path, _ := strings.Cut(route, " ")
		log.Info().Msgf("[%s] %s", colouredMethod(method), path)
	}
}

// SeedUser creates an account directly, bypassing registration checks
func (s *Server) SeedUser(user users.User, password string) error {
	hash, err := users.HashPassword(password)
	if err != nil {
		return errors.Wrap(err, "[SeedUser] hashing password")
	}
	user.PasswordHash = hash
	user.DateJoined = s.nowTime()
	return s.users.Upsert(&user)
}

// SeedPost creates a post owned by the named profile and returns its id
func (s *Server) SeedPost(owner string, in gateway.PostInput) int {
	return s.posts.Create(owner, in).ID
}

// RevokeAPIKey invalidates an API key while its access token stays valid
func (s *Server) RevokeAPIKey(key string) {
	s.apiKeys.Revoke(key)
}
