package views

import (
	"context"
	"strings"

	"github.com/jrsteele09/go-social-client/credentials"
	"github.com/jrsteele09/go-social-client/gateway"
	apperrors "github.com/jrsteele09/go-social-client/internal/errors"
	"github.com/jrsteele09/go-social-client/router"
	"github.com/jrsteele09/go-social-client/session"
)

var followExpansions = gateway.ProfileExpansions{Followers: true, Following: true}

type profileView struct{ *deps }

// Counts are the profile statistics shown in the header
type Counts struct {
	Posts     int
	Followers int
	Following int
}

// ProfileCounts prefers the `_count` block and falls back to list lengths
func ProfileCounts(p *gateway.Profile) Counts {
	if p == nil {
		return Counts{}
	}
	if p.Count != nil {
		return Counts{Posts: p.Count.Posts, Followers: p.Count.Followers, Following: p.Count.Following}
	}
	return Counts{Posts: len(p.Posts), Followers: len(p.Followers), Following: len(p.Following)}
}

func isFollowedBy(p *gateway.Profile, viewer string) bool {
	if viewer == "" {
		return false
	}
	for _, f := range p.Followers {
		if f.Name == viewer {
			return true
		}
	}
	return false
}

// target returns the profile the route points at: the name parameter or the logged in user
func (v *profileView) target(route router.Route) (string, *credentials.User, error) {
	viewer := v.session.CurrentUser()
	if name := route.Param(router.ParamName); name != "" {
		return name, viewer, nil
	}
	if viewer == nil || viewer.Name == "" {
		return "", nil, &apperrors.SessionError{Reason: apperrors.ErrNotLoggedIn}
	}
	return viewer.Name, viewer, nil
}

func (v *profileView) Load(ctx context.Context, route router.Route) (*router.Screen, error) {
	name, viewer, err := v.target(route)
	if err != nil {
		return nil, err
	}

	screen := &router.Screen{Title: "My Profile"}
	if route.Param(router.ParamName) != "" {
		screen.Title = "Profile"
	}
	screen.Navigate("b", "Back", string(router.PathFeed))

	profile, err := v.getProfile(ctx, name, followExpansions)
	if err != nil {
		return showError(screen, err)
	}

	isMe := viewer != nil && viewer.Name != "" && profile.Name == viewer.Name
	v.writeHeader(screen, profile, isMe)

	if isMe {
		screen.Form = profileForm(profile)
	} else {
		label := "Follow"
		if isFollowedBy(profile, nameOf(viewer)) {
			label = "Unfollow"
		}
		screen.Offer("f", label, router.IntentToggleFollow)
	}

	page := atoi(route.Param(router.ParamPage), 1)
	posts, err := v.api.ListProfilePosts(ctx, profile.Name, v.profilePostsLimit, page)
	if err != nil {
		return showError(screen, err)
	}
	v.writePosts(screen, profile, posts, isMe, page)
	return screen, nil
}

func (v *profileView) writeHeader(screen *router.Screen, profile *gateway.Profile, isMe bool) {
	screen.Text(router.StyleHeading, orDefault(profile.Name, "Unnamed User"))
	if isMe && profile.Email != "" {
		screen.Text(router.StyleMuted, clean(profile.Email))
	}
	if profile.Avatar != nil && profile.Avatar.URL != "" {
		screen.Text(router.StyleMuted, "Avatar: "+clean(profile.Avatar.URL))
	}
	if profile.Banner != nil && profile.Banner.URL != "" {
		screen.Text(router.StyleMuted, "Banner: "+clean(profile.Banner.URL))
	}
	screen.Text(router.StyleText, orDefault(profile.Bio, "No bio yet."))

	counts := ProfileCounts(profile)
	screen.Text(router.StyleMuted, "Posts "+itoa(counts.Posts)+" · Followers "+itoa(counts.Followers)+" · Following "+itoa(counts.Following))
}

func (v *profileView) writePosts(screen *router.Screen, profile *gateway.Profile, posts []gateway.Post, isMe bool, page int) {
	heading := "Posts"
	if isMe {
		heading = "My Posts"
	}
	screen.Text(router.StyleHeading, heading)

	if len(posts) == 0 {
		screen.Text(router.StyleMuted, "No posts yet.")
	}
	for _, p := range posts {
		writePost(screen, p, false)
		screen.Navigate(itoa(p.ID), "Open "+orDefault(p.Title, "Untitled"), postLocation(p.ID))
	}

	pageLocation := func(page int) string {
		return router.Location(router.PathProfile, map[string]string{
			router.ParamName: profile.Name,
			router.ParamPage: itoa(page),
		})
	}
	if page > 1 {
		screen.Navigate("[", "Previous page", pageLocation(page-1))
	}
	if len(posts) >= v.profilePostsLimit {
		screen.Navigate("]", "Next page", pageLocation(page+1))
	}
}

func profileForm(p *gateway.Profile) *router.Form {
	var avatar, banner string
	if p.Avatar != nil {
		avatar = p.Avatar.URL
	}
	if p.Banner != nil {
		banner = p.Banner.URL
	}
	return &router.Form{
		Submit: "Update profile",
		Fields: []router.Field{
			{Name: "bio", Label: "Bio", Value: p.Bio, Multiline: true},
			{Name: "avatar", Label: "Avatar URL", Value: avatar},
			{Name: "banner", Label: "Banner URL", Value: banner},
		},
	}
}

// readProfileForm builds an update from the changed fields of the profile form
func readProfileForm(values map[string]string, current *gateway.Profile) (gateway.ProfileUpdate, error) {
	var update gateway.ProfileUpdate

	bio := strings.TrimSpace(values["bio"])
	if err := session.ValidateBio(bio); err != nil {
		return update, err
	}
	if bio != current.Bio {
		update.Bio = &bio
	}

	media := func(field string, existing *gateway.Media) (*gateway.Media, error) {
		raw := strings.TrimSpace(values[field])
		if err := session.ValidateURL(field, raw); err != nil {
			return nil, err
		}
		if raw == "" || (existing != nil && existing.URL == raw) {
			return nil, nil
		}
		return &gateway.Media{URL: raw, Alt: current.Name + "'s " + field}, nil
	}

	var err error
	if update.Avatar, err = media("avatar", current.Avatar); err != nil {
		return update, err
	}
	if update.Banner, err = media("banner", current.Banner); err != nil {
		return update, err
	}
	return update, nil
}

func (v *profileView) Handle(ctx context.Context, route router.Route, intent router.Intent) (*router.Result, error) {
	switch intent.Kind {
	case router.IntentToggleFollow:
		return v.toggleFollow(ctx, route)
	case router.IntentSubmit:
		return v.update(ctx, route, intent.Values)
	}
	return nil, nil
}

func (v *profileView) toggleFollow(ctx context.Context, route router.Route) (*router.Result, error) {
	name, viewer, err := v.target(route)
	if err != nil {
		return nil, err
	}

	screen := &router.Screen{Title: "Profile"}
	screen.Navigate("b", "Back", string(router.PathFeed))
	screen.Navigate("r", "Retry", route.String())

	profile, err := v.getProfile(ctx, name, followExpansions)
	if err == nil {
		if isFollowedBy(profile, nameOf(viewer)) {
			_, err = v.api.UnfollowProfile(ctx, profile.Name)
		} else {
			_, err = v.api.FollowProfile(ctx, profile.Name)
		}
	}
	if err != nil {
		failed, err := showError(screen, err)
		if err != nil {
			return nil, err
		}
		return &router.Result{Screen: failed}, nil
	}
	return &router.Result{Reload: true}, nil
}

func (v *profileView) update(ctx context.Context, route router.Route, values map[string]string) (*router.Result, error) {
	name, viewer, err := v.target(route)
	if err != nil {
		return nil, err
	}
	if viewer == nil || viewer.Name != name {
		return nil, nil
	}

	screen := &router.Screen{Title: "My Profile"}
	screen.Navigate("b", "Back", string(router.PathFeed))

	profile, err := v.getProfile(ctx, name, gateway.ProfileExpansions{})
	if err != nil {
		failed, err := showError(screen, err)
		if err != nil {
			return nil, err
		}
		return &router.Result{Screen: failed}, nil
	}
	screen.Form = profileForm(profile)
	for i := range screen.Form.Fields {
		screen.Form.Fields[i].Value = values[screen.Form.Fields[i].Name]
	}

	update, err := readProfileForm(values, profile)
	if err == nil {
		var updated *gateway.Profile
		if updated, err = v.api.UpdateProfile(ctx, name, update); err == nil {
			if updated != nil && updated.Name != "" {
				err = v.session.UpdateCachedUser(credentials.User{Name: updated.Name, Email: orDefault(updated.Email, viewer.Email)})
			}
		}
	}
	if err != nil {
		failed, err := showError(screen, err)
		if err != nil {
			return nil, err
		}
		return &router.Result{Screen: failed}, nil
	}
	return &router.Result{Reload: true}, nil
}

func nameOf(u *credentials.User) string {
	if u == nil {
		return ""
	}
	return u.Name
}
