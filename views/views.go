package views

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/jrsteele09/go-social-client/credentials"
	"github.com/jrsteele09/go-social-client/gateway"
	apperrors "github.com/jrsteele09/go-social-client/internal/errors"
	"github.com/jrsteele09/go-social-client/router"
	"github.com/jrsteele09/go-social-client/session"
	"github.com/pkg/errors"
)

const defaultProfilePostsLimit = 20

// ParamRegistered marks the login location reached after a successful registration
const ParamRegistered = "registered"

// API is the part of the remote gateway the views call
type API interface {
	ListPosts(ctx context.Context, opts gateway.ListPostsOptions) ([]gateway.Post, error)
	GetPost(ctx context.Context, id string, expansions gateway.PostExpansions) (*gateway.Post, error)
	CreatePost(ctx context.Context, in gateway.PostInput) (*gateway.Post, error)
	UpdatePost(ctx context.Context, id string, in gateway.PostInput) (*gateway.Post, error)
	DeletePost(ctx context.Context, id string) error
	GetProfile(ctx context.Context, name string, expansions gateway.ProfileExpansions) (*gateway.Profile, error)
	ListProfilePosts(ctx context.Context, name string, limit, page int) ([]gateway.Post, error)
	FollowProfile(ctx context.Context, name string) (*gateway.FollowResult, error)
	UnfollowProfile(ctx context.Context, name string) (*gateway.FollowResult, error)
	UpdateProfile(ctx context.Context, name string, update gateway.ProfileUpdate) (*gateway.Profile, error)
}

// Session is the part of the session policy the views call
type Session interface {
	Login(ctx context.Context, email, password string) (*credentials.User, error)
	Register(ctx context.Context, in session.RegisterInput) (*gateway.Profile, error)
	CurrentUser() *credentials.User
	IsCurrentUser(name string) bool
	UpdateCachedUser(user credentials.User) error
}

type deps struct {
	api               API
	session           Session
	profilePostsLimit int
}

// getPost fetches a post. An empty success response is reported like any other API failure.
func (d *deps) getPost(ctx context.Context, id string, expansions gateway.PostExpansions) (*gateway.Post, error) {
	post, err := d.api.GetPost(ctx, id, expansions)
	if err == nil && post == nil {
		err = &apperrors.ResponseError{Reason: apperrors.ErrPostNotFound}
	}
	return post, err
}

// getProfile fetches a profile, treating an empty success response as an error
func (d *deps) getProfile(ctx context.Context, name string, expansions gateway.ProfileExpansions) (*gateway.Profile, error) {
	profile, err := d.api.GetProfile(ctx, name, expansions)
	if err == nil && profile == nil {
		err = &apperrors.ResponseError{Reason: apperrors.ErrProfileNotFound}
	}
	return profile, err
}

// Option defines a function type to modify the views
type Option func(*deps)

// WithProfilePostsLimit sets the page size of the profile post list
func WithProfilePostsLimit(limit int) Option {
	return func(d *deps) {
		if limit > 0 {
			d.profilePostsLimit = limit
		}
	}
}

// New builds the view for every renderable route
func New(api API, sess Session, options ...Option) (map[router.Path]router.View, error) {
	if api == nil {
		return nil, errors.New("[views.New] api is required")
	}
	if sess == nil {
		return nil, errors.New("[views.New] session is required")
	}

	d := &deps{api: api, session: sess, profilePostsLimit: defaultProfilePostsLimit}
	for _, opt := range options {
		opt(d)
	}

	return map[router.Path]router.View{
		router.PathLogin:    &loginView{d},
		router.PathRegister: &registerView{d},
		router.PathFeed:     &feedView{d},
		router.PathCreate:   &createView{d},
		router.PathPost:     &postView{d},
		router.PathProfile:  &profileView{d},
	}, nil
}

// userFacing reports whether err is meant to be shown on the screen rather than
// handed to the router as a failure of the view
func userFacing(err error) bool {
	var apiErr *apperrors.APIError
	var netErr *apperrors.NetworkError
	var valErr *apperrors.ValidationError
	var respErr *apperrors.ResponseError
	return errors.As(err, &apiErr) || errors.As(err, &netErr) || errors.As(err, &valErr) || errors.As(err, &respErr)
}

// showError puts a user facing error on the screen, or returns it for the router
func showError(screen *router.Screen, err error) (*router.Screen, error) {
	if !userFacing(err) {
		return nil, err
	}

	var valErr *apperrors.ValidationError
	if screen.Form != nil && errors.As(err, &valErr) && valErr.Field != "" {
		screen.Form.FieldError(valErr.Field, valErr.Message)
	}
	screen.Error = clean(err.Error())
	return screen, nil
}

// clean strips control characters and escape sequences from remote text
func clean(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) || r == unicode.ReplacementChar {
			return -1
		}
		return r
	}, s)
}

func orDefault(s, fallback string) string {
	if s = strings.TrimSpace(clean(s)); s == "" {
		return fallback
	}
	return s
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("2006-01-02 15:04")
}

func authorName(p gateway.Post) string {
	if p.Author == nil {
		return ""
	}
	return p.Author.Name
}

func postLocation(id int) string {
	return router.Location(router.PathPost, map[string]string{router.ParamID: itoa(id)})
}

func profileLocation(name string) string {
	return router.Location(router.PathProfile, map[string]string{router.ParamName: name})
}

// writePost appends a post summary to the screen
func writePost(screen *router.Screen, p gateway.Post, full bool) {
	screen.Text(router.StyleHeading, "["+itoa(p.ID)+"] "+orDefault(p.Title, "Untitled"))

	meta := []string{}
	if name := authorName(p); name != "" {
		meta = append(meta, "by "+clean(name))
	}
	if created := formatTime(p.Created); created != "" {
		meta = append(meta, created)
	}
	if p.Count != nil {
		meta = append(meta, itoa(p.Count.Comments)+" comments", itoa(p.Count.Reactions)+" reactions")
	}
	if len(meta) > 0 {
		screen.Text(router.StyleMuted, strings.Join(meta, " · "))
	}

	if body := strings.TrimSpace(clean(p.Body)); body != "" {
		if !full {
			body = truncate(body, 280)
		}
		screen.Text(router.StyleText, body)
	}
	if len(p.Tags) > 0 {
		tags := make([]string, 0, len(p.Tags))
		for _, t := range p.Tags {
			tags = append(tags, "#"+clean(t))
		}
		screen.Text(router.StyleMuted, strings.Join(tags, " "))
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}
