package views

import (
	"context"

	"github.com/jrsteele09/go-social-client/gateway"
	"github.com/jrsteele09/go-social-client/router"
)

type feedView struct{ *deps }

func (v *feedView) Load(ctx context.Context, route router.Route) (*router.Screen, error) {
	tag := route.Param(router.ParamTag)

	screen := &router.Screen{Title: "Feed"}
	if tag != "" {
		screen.Title = "Feed #" + clean(tag)
	}
	screen.Navigate("n", "New post", string(router.PathCreate))
	screen.Navigate("p", "My profile", string(router.PathProfile))
	if tag != "" {
		screen.Navigate("a", "All posts", string(router.PathFeed))
	}
	screen.Navigate("x", "Logout", string(router.PathLogout))

	posts, err := v.api.ListPosts(ctx, gateway.ListPostsOptions{
		PostExpansions: gateway.AllPostExpansions,
		Tag:            tag,
	})
	if err != nil {
		failed, err := showError(screen, err)
		if err != nil {
			return nil, err
		}
		failed.Error = "Error loading posts: " + failed.Error
		return failed, nil
	}

	if len(posts) == 0 {
		screen.Text(router.StyleMuted, "No posts available.")
		return screen, nil
	}
	for _, p := range posts {
		writePost(screen, p, false)
		screen.Navigate(itoa(p.ID), "Open "+orDefault(p.Title, "Untitled"), postLocation(p.ID))
	}
	return screen, nil
}

func (v *feedView) Handle(context.Context, router.Route, router.Intent) (*router.Result, error) {
	return nil, nil
}
