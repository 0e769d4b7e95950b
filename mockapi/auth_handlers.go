package mockapi

import (
	"net/http"
	"strings"

	"github.com/jrsteele09/go-social-client/gateway"
	"github.com/jrsteele09/go-social-client/session"
	"github.com/jrsteele09/go-social-client/users"
	"github.com/rs/zerolog/log"
)

// RegisterHandler creates an account. It does not log the user in.
func (s *Server) RegisterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in gateway.RegisterRequest
		if err := decodeBody(r, &in); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		var problems []string
		for _, err := range []error{
			session.ValidateName(in.Name),
			session.ValidateEmail(in.Email),
			session.ValidatePassword(in.Password),
			session.ValidateBio(in.Bio),
		} {
			if err != nil {
				problems = append(problems, err.Error())
			}
		}
		if in.Avatar != nil {
			if err := session.ValidateURL("avatar", in.Avatar.URL); err != nil {
				problems = append(problems, err.Error())
			}
		}
		if len(problems) > 0 {
			writeError(w, http.StatusBadRequest, problems...)
			return
		}

		s.usersLock.Lock()
		defer s.usersLock.Unlock()

		_, nameErr := s.users.GetByName(in.Name)
		_, emailErr := s.users.GetByEmail(in.Email)
		if nameErr == nil || emailErr == nil {
			writeError(w, http.StatusBadRequest, "Profile already exists")
			return
		}

		hash, err := users.HashPassword(in.Password)
		if err != nil {
			log.Err(err).Msg("Hashing password")
			writeError(w, http.StatusInternalServerError, "Registration failed")
			return
		}

		user := &users.User{
			Name:         in.Name,
			Email:        strings.TrimSpace(in.Email),
			PasswordHash: hash,
			Bio:          in.Bio,
			DateJoined:   s.nowTime(),
		}
		if in.Avatar != nil && in.Avatar.URL != "" {
			user.Avatar = &users.Media{URL: in.Avatar.URL, Alt: in.Avatar.Alt}
		}
		if err := s.users.Upsert(user); err != nil {
			log.Err(err).Msg("Saving user")
			writeError(w, http.StatusInternalServerError, "Registration failed")
			return
		}

		writeData(w, http.StatusCreated, s.profileOf(user, profileExpansions{}))
	}
}

// LoginHandler exchanges email and password for an access token
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := decodeBody(r, &in); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		s.usersLock.Lock()
		defer s.usersLock.Unlock()

		user, err := s.users.GetByEmail(in.Email)
		if err != nil || !user.CheckPassword(in.Password) {
			writeError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}

		token, err := s.creator.CreateAccessToken(user)
		if err != nil {
			log.Err(err).Msg("Creating access token")
			writeError(w, http.StatusInternalServerError, "Login failed")
			return
		}
		user.LastLogin = s.nowTime()

		writeData(w, http.StatusOK, gateway.LoginResult{
			AccessToken: token,
			Name:        user.Name,
			Email:       user.Email,
			Bio:         user.Bio,
			Avatar:      wireMedia(user.Avatar),
			Banner:      wireMedia(user.Banner),
		})
	}
}

// CreateAPIKeyHandler issues an API key to the bearer of the token
func (s *Server) CreateAPIKeyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := userFromContext(r.Context())
		writeData(w, http.StatusCreated, gateway.APIKey{
			Name:   "API Key",
			Status: "ACTIVE",
			Key:    s.apiKeys.Create(user.Name),
		})
	}
}
