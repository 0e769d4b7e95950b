package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	apperrors "github.com/jrsteele09/go-social-client/internal/errors"
)

// Route path of the posts endpoints
const (
	PathPosts = "/social/posts"
)

// PostExpansions selects the related data embedded in post responses
type PostExpansions struct {
	Author    bool
	Comments  bool
	Reactions bool
}

// AllPostExpansions embeds author, comments and reactions
var AllPostExpansions = PostExpansions{Author: true, Comments: true, Reactions: true}

func (e PostExpansions) values() url.Values {
	v := url.Values{}
	if e.Author {
		v.Set("_author", "true")
	}
	if e.Comments {
		v.Set("_comments", "true")
	}
	if e.Reactions {
		v.Set("_reactions", "true")
	}
	return v
}

// ListPostsOptions filters and pages the feed
type ListPostsOptions struct {
	PostExpansions
	Tag   string
	Limit int
	Page  int
}

func (o ListPostsOptions) values() url.Values {
	v := o.PostExpansions.values()
	if o.Tag != "" {
		v.Set("_tag", o.Tag)
	}
	if o.Limit > 0 {
		v.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Page > 0 {
		v.Set("page", strconv.Itoa(o.Page))
	}
	return v
}

// ListPosts fetches the feed
func (g *Gateway) ListPosts(ctx context.Context, opts ListPostsOptions) ([]Post, error) {
	raw, err := g.do(ctx, request{
		method:   http.MethodGet,
		path:     PathPosts,
		query:    opts.values(),
		auth:     authFull,
		fallback: "Failed to fetch posts",
	})
	if err != nil {
		return nil, err
	}
	posts, err := decode[[]Post](raw, "ListPosts")
	if err != nil || posts == nil {
		return nil, err
	}
	return *posts, nil
}

// GetPost fetches a single post
func (g *Gateway) GetPost(ctx context.Context, id string, expansions PostExpansions) (*Post, error) {
	safeID, err := escapeSegment("id", id, apperrors.ErrMissingPostID)
	if err != nil {
		return nil, err
	}
	raw, err := g.do(ctx, request{
		method:   http.MethodGet,
		path:     PathPosts + "/" + safeID,
		query:    expansions.values(),
		auth:     authFull,
		fallback: "Failed to fetch post",
	})
	if err != nil {
		return nil, err
	}
	return decode[Post](raw, "GetPost")
}

// CreatePost publishes a new post
func (g *Gateway) CreatePost(ctx context.Context, in PostInput) (*Post, error) {
	raw, err := g.do(ctx, request{
		method:   http.MethodPost,
		path:     PathPosts,
		body:     in,
		auth:     authFull,
		fallback: "Failed to create post",
	})
	if err != nil {
		return nil, err
	}
	return decode[Post](raw, "CreatePost")
}

// UpdatePost replaces the editable fields of a post
func (g *Gateway) UpdatePost(ctx context.Context, id string, in PostInput) (*Post, error) {
	safeID, err := escapeSegment("id", id, apperrors.ErrMissingPostID)
	if err != nil {
		return nil, err
	}
	raw, err := g.do(ctx, request{
		method:   http.MethodPut,
		path:     PathPosts + "/" + safeID,
		body:     in,
		auth:     authFull,
		fallback: "Failed to update post",
	})
	if err != nil {
		return nil, err
	}
	return decode[Post](raw, "UpdatePost")
}

// DeletePost removes a post. A nil error means the post is gone.
func (g *Gateway) DeletePost(ctx context.Context, id string) error {
	safeID, err := escapeSegment("id", id, apperrors.ErrMissingPostID)
	if err != nil {
		return err
	}
	_, err = g.do(ctx, request{
		method:   http.MethodDelete,
		path:     PathPosts + "/" + safeID,
		auth:     authFull,
		fallback: "Failed to delete post",
	})
	return err
}
