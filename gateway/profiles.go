package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	apperrors "github.com/jrsteele09/go-social-client/internal/errors"
)

// Route path of the profile endpoints
const (
	PathProfiles = "/social/profiles"
)

// ProfileExpansions selects the related data embedded in a profile response
type ProfileExpansions struct {
	Posts     bool
	Followers bool
	Following bool
}

// AllProfileExpansions embeds posts, followers and following
var AllProfileExpansions = ProfileExpansions{Posts: true, Followers: true, Following: true}

func (e ProfileExpansions) values() url.Values {
	v := url.Values{}
	if e.Posts {
		v.Set("_posts", "true")
	}
	if e.Followers {
		v.Set("_followers", "true")
	}
	if e.Following {
		v.Set("_following", "true")
	}
	return v
}

func profilePath(name string, suffix string) (string, error) {
	safeName, err := escapeSegment("name", name, apperrors.ErrMissingProfileName)
	if err != nil {
		return "", err
	}
	return PathProfiles + "/" + safeName + suffix, nil
}

// GetProfile fetches a profile by name
func (g *Gateway) GetProfile(ctx context.Context, name string, expansions ProfileExpansions) (*Profile, error) {
	path, err := profilePath(name, "")
	if err != nil {
		return nil, err
	}
	raw, err := g.do(ctx, request{
		method:   http.MethodGet,
		path:     path,
		query:    expansions.values(),
		auth:     authFull,
		fallback: "Failed to fetch profile",
	})
	if err != nil {
		return nil, err
	}
	return decode[Profile](raw, "GetProfile")
}

// ListProfilePosts fetches one page of a profile's posts
func (g *Gateway) ListProfilePosts(ctx context.Context, name string, limit, page int) ([]Post, error) {
	path, err := profilePath(name, "/posts")
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}

	query := AllPostExpansions.values()
	query.Set("_limit", strconv.Itoa(limit))
	query.Set("_page", strconv.Itoa(page))

	raw, err := g.do(ctx, request{
		method:   http.MethodGet,
		path:     path,
		query:    query,
		auth:     authFull,
		fallback: "Failed to fetch profile posts",
	})
	if err != nil {
		return nil, err
	}
	posts, err := decode[[]Post](raw, "ListProfilePosts")
	if err != nil || posts == nil {
		return nil, err
	}
	return *posts, nil
}

// FollowProfile follows the named profile
func (g *Gateway) FollowProfile(ctx context.Context, name string) (*FollowResult, error) {
	return g.follow(ctx, name, "/follow", "Failed to follow profile")
}

// UnfollowProfile unfollows the named profile
func (g *Gateway) UnfollowProfile(ctx context.Context, name string) (*FollowResult, error) {
	return g.follow(ctx, name, "/unfollow", "Failed to unfollow profile")
}

func (g *Gateway) follow(ctx context.Context, name, suffix, fallback string) (*FollowResult, error) {
	path, err := profilePath(name, suffix)
	if err != nil {
		return nil, err
	}
	raw, err := g.do(ctx, request{
		method:   http.MethodPut,
		path:     path,
		auth:     authFull,
		fallback: fallback,
	})
	if err != nil {
		return nil, err
	}
	return decode[FollowResult](raw, "Follow")
}

// UpdateProfile changes bio, avatar or banner
func (g *Gateway) UpdateProfile(ctx context.Context, name string, update ProfileUpdate) (*Profile, error) {
	path, err := profilePath(name, "")
	if err != nil {
		return nil, err
	}
	if update.Bio == nil && update.Avatar == nil && update.Banner == nil {
		return nil, apperrors.NewValidationError("profile", apperrors.ErrInvalidProfileData.Error())
	}
	raw, err := g.do(ctx, request{
		method:   http.MethodPut,
		path:     path,
		body:     update,
		auth:     authFull,
		fallback: "Failed to update profile",
	})
	if err != nil {
		return nil, err
	}
	return decode[Profile](raw, "UpdateProfile")
}
