package mockapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/jrsteele09/go-social-client/gateway"
)

// postExpansions mirrors the `_author`, `_comments` and `_reactions` query flags
type postExpansions struct {
	author    bool
	comments  bool
	reactions bool
}

func postExpansionsFrom(r *http.Request) postExpansions {
	q := r.URL.Query()
	return postExpansions{
		author:    q.Get("_author") == "true",
		comments:  q.Get("_comments") == "true",
		reactions: q.Get("_reactions") == "true",
	}
}

func queryInt(r *http.Request, names ...string) int {
	for _, name := range names {
		if v, err := strconv.Atoi(r.URL.Query().Get(name)); err == nil && v > 0 {
			return v
		}
	}
	return 0
}

func (s *Server) wirePost(p post, exp postExpansions) gateway.Post {
	out := gateway.Post{
		ID:      p.ID,
		Title:   p.Title,
		Body:    p.Body,
		Tags:    p.Tags,
		Media:   p.Media,
		Created: p.Created,
		Updated: p.Updated,
		Count:   &gateway.PostCount{Comments: len(p.Comments), Reactions: len(p.Reactions)},
	}
	if out.Tags == nil {
		out.Tags = []string{}
	}
	if exp.author {
		out.Author = s.authorOf(p.Owner)
	}
	if exp.comments {
		out.Comments = p.Comments
	}
	if exp.reactions {
		out.Reactions = p.Reactions
	}
	return out
}

func (s *Server) wirePosts(posts []post, exp postExpansions) []gateway.Post {
	out := make([]gateway.Post, 0, len(posts))
	for _, p := range posts {
		out = append(out, s.wirePost(p, exp))
	}
	return out
}

func hasTag(p post, tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

func readPostInput(w http.ResponseWriter, r *http.Request) (gateway.PostInput, bool) {
	var in gateway.PostInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return in, false
	}
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		writeError(w, http.StatusBadRequest, "Title is required")
		return in, false
	}
	return in, true
}

// ownedPost loads the post in the URL and checks that the caller wrote it
func (s *Server) ownedPost(w http.ResponseWriter, r *http.Request) (post, bool) {
	p, ok := s.postFromURL(w, r)
	if !ok {
		return p, false
	}
	if p.Owner != userFromContext(r.Context()).Name {
		writeError(w, http.StatusForbidden, "You are not the owner of this post")
		return p, false
	}
	return p, true
}

func (s *Server) postFromURL(w http.ResponseWriter, r *http.Request) (post, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "ID must be a number")
		return post{}, false
	}
	p, ok := s.posts.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "No post with such ID")
		return post{}, false
	}
	return p, true
}

func (s *Server) ListPostsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var filter func(post) bool
		if tag := strings.TrimSpace(r.URL.Query().Get("_tag")); tag != "" {
			filter = func(p post) bool { return hasTag(p, tag) }
		}
		posts := page(s.posts.List(filter), queryInt(r, "limit", "_limit"), queryInt(r, "page", "_page"))
		writeData(w, http.StatusOK, s.wirePosts(posts, postExpansionsFrom(r)))
	}
}

func (s *Server) GetPostHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := s.postFromURL(w, r)
		if !ok {
			return
		}
		writeData(w, http.StatusOK, s.wirePost(p, postExpansionsFrom(r)))
	}
}

func (s *Server) CreatePostHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := readPostInput(w, r)
		if !ok {
			return
		}
		p := s.posts.Create(userFromContext(r.Context()).Name, in)
		writeData(w, http.StatusCreated, s.wirePost(p, postExpansions{}))
	}
}

func (s *Server) UpdatePostHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := s.ownedPost(w, r)
		if !ok {
			return
		}
		in, ok := readPostInput(w, r)
		if !ok {
			return
		}
		updated, ok := s.posts.Update(p.ID, in)
		if !ok {
			writeError(w, http.StatusNotFound, "No post with such ID")
			return
		}
		writeData(w, http.StatusOK, s.wirePost(updated, postExpansions{}))
	}
}

func (s *Server) DeletePostHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := s.ownedPost(w, r)
		if !ok {
			return
		}
		s.posts.Delete(p.ID)
		w.WriteHeader(http.StatusNoContent)
	}
}
