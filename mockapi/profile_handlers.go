package mockapi

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/jrsteele09/go-social-client/gateway"
	"github.com/jrsteele09/go-social-client/session"
	"github.com/jrsteele09/go-social-client/users"
)

// profileExpansions mirrors the `_posts`, `_followers` and `_following` query flags
type profileExpansions struct {
	posts     bool
	followers bool
	following bool
}

func profileExpansionsFrom(r *http.Request) profileExpansions {
	q := r.URL.Query()
	return profileExpansions{
		posts:     q.Get("_posts") == "true",
		followers: q.Get("_followers") == "true",
		following: q.Get("_following") == "true",
	}
}

func wireMedia(m *users.Media) *gateway.Media {
	if m == nil {
		return nil
	}
	return &gateway.Media{URL: m.URL, Alt: m.Alt}
}

func summaryOf(u *users.User) gateway.Author {
	return gateway.Author{Name: u.Name, Email: u.Email, Bio: u.Bio, Avatar: wireMedia(u.Avatar), Banner: wireMedia(u.Banner)}
}

// authorOf returns the embedded author of a post
func (s *Server) authorOf(name string) *gateway.Author {
	s.usersLock.RLock()
	defer s.usersLock.RUnlock()

	u, err := s.users.GetByName(name)
	if err != nil {
		return &gateway.Author{Name: name}
	}
	a := summaryOf(u)
	return &a
}

// followersOf lists the users following name. The caller holds usersLock.
func (s *Server) followersOf(name string) []gateway.Author {
	all, _ := s.users.List()
	out := []gateway.Author{}
	for _, u := range all {
		if u.IsFollowing(name) {
			out = append(out, summaryOf(u))
		}
	}
	return out
}

// followingOf lists the profiles u follows. The caller holds usersLock.
func (s *Server) followingOf(u *users.User) []gateway.Author {
	out := []gateway.Author{}
	for _, name := range u.Following {
		if f, err := s.users.GetByName(name); err == nil {
			out = append(out, summaryOf(f))
		}
	}
	return out
}

// profileOf builds the wire profile. The caller holds usersLock.
func (s *Server) profileOf(u *users.User, exp profileExpansions) gateway.Profile {
	followers := s.followersOf(u.Name)
	following := s.followingOf(u)
	posts := s.posts.List(func(p post) bool { return p.Owner == u.Name })

	out := gateway.Profile{
		Name:   u.Name,
		Email:  u.Email,
		Bio:    u.Bio,
		Avatar: wireMedia(u.Avatar),
		Banner: wireMedia(u.Banner),
		Count:  &gateway.ProfileCount{Posts: len(posts), Followers: len(followers), Following: len(following)},
	}
	if exp.posts {
		out.Posts = make([]gateway.Post, 0, len(posts))
		for _, p := range posts {
			out.Posts = append(out.Posts, gateway.Post{ID: p.ID, Title: p.Title, Body: p.Body, Tags: p.Tags, Created: p.Created, Updated: p.Updated})
		}
	}
	if exp.followers {
		out.Followers = followers
	}
	if exp.following {
		out.Following = following
	}
	return out
}

// userFromURL loads the profile named in the URL. The caller holds usersLock.
func (s *Server) userFromURL(w http.ResponseWriter, r *http.Request) (*users.User, bool) {
	u, err := s.users.GetByName(chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, http.StatusNotFound, "No profile with this name")
		return nil, false
	}
	return u, true
}

func (s *Server) GetProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.usersLock.RLock()
		defer s.usersLock.RUnlock()

		u, ok := s.userFromURL(w, r)
		if !ok {
			return
		}
		writeData(w, http.StatusOK, s.profileOf(u, profileExpansionsFrom(r)))
	}
}

func (s *Server) ProfilePostsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.usersLock.RLock()
		u, ok := s.userFromURL(w, r)
		s.usersLock.RUnlock()
		if !ok {
			return
		}

		posts := s.posts.List(func(p post) bool { return p.Owner == u.Name })
		posts = page(posts, queryInt(r, "_limit", "limit"), queryInt(r, "_page", "page"))
		writeData(w, http.StatusOK, s.wirePosts(posts, postExpansionsFrom(r)))
	}
}

// FollowHandler follows (follow=true) or unfollows the profile in the URL
func (s *Server) FollowHandler(follow bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.usersLock.Lock()
		defer s.usersLock.Unlock()

		target, ok := s.userFromURL(w, r)
		if !ok {
			return
		}
		me, err := s.users.GetByName(userFromContext(r.Context()).Name)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Invalid authorization token")
			return
		}
		if me.Name == target.Name {
			writeError(w, http.StatusBadRequest, "You can't follow yourself")
			return
		}

		if follow && !me.Follow(target.Name) {
			writeError(w, http.StatusBadRequest, "You are already following this profile")
			return
		}
		if !follow && !me.Unfollow(target.Name) {
			writeError(w, http.StatusBadRequest, "You are not following this profile")
			return
		}

		writeData(w, http.StatusOK, gateway.FollowResult{
			Followers: s.followersOf(target.Name),
			Following: s.followingOf(target),
		})
	}
}

func (s *Server) UpdateProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.usersLock.Lock()
		defer s.usersLock.Unlock()

		u, ok := s.userFromURL(w, r)
		if !ok {
			return
		}
		if u.Name != userFromContext(r.Context()).Name {
			writeError(w, http.StatusForbidden, "You can only update your own profile")
			return
		}

		var in gateway.ProfileUpdate
		if err := decodeBody(r, &in); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if in.Bio == nil && in.Avatar == nil && in.Banner == nil {
			writeError(w, http.StatusBadRequest, "You must provide at least one of bio, avatar or banner")
			return
		}

		var problems []string
		if in.Bio != nil {
			if err := session.ValidateBio(*in.Bio); err != nil {
				problems = append(problems, err.Error())
			}
		}
		for _, m := range []struct {
			field string
			media *gateway.Media
		}{{"avatar", in.Avatar}, {"banner", in.Banner}} {
			if m.media == nil {
				continue
			}
			if err := session.ValidateURL(m.field, m.media.URL); err != nil || strings.TrimSpace(m.media.URL) == "" {
				problems = append(problems, "Please enter a valid http(s) URL for the "+m.field+".")
			}
		}
		if len(problems) > 0 {
			writeError(w, http.StatusBadRequest, problems...)
			return
		}

		if in.Bio != nil {
			u.Bio = *in.Bio
		}
		if in.Avatar != nil {
			u.Avatar = &users.Media{URL: in.Avatar.URL, Alt: in.Avatar.Alt}
		}
		if in.Banner != nil {
			u.Banner = &users.Media{URL: in.Banner.URL, Alt: in.Banner.Alt}
		}

		writeData(w, http.StatusOK, s.profileOf(u, profileExpansions{}))
	}
}
