package views

import (
	"context"

	"github.com/jrsteele09/go-social-client/gateway"
	"github.com/jrsteele09/go-social-client/router"
)

type postView struct{ *deps }

func (v *postView) Load(ctx context.Context, route router.Route) (*router.Screen, error) {
	id := route.Param(router.ParamID)

	screen := &router.Screen{Title: "Post"}
	screen.Navigate("b", "Back", string(router.PathFeed))

	post, err := v.getPost(ctx, id, gateway.AllPostExpansions)
	if err != nil {
		failed, err := showError(screen, err)
		if err != nil {
			return nil, err
		}
		failed.Error = "Error loading post: " + failed.Error
		return failed, nil
	}

	owner := v.session.IsCurrentUser(authorName(*post))
	if route.Param(router.ParamEdit) == "true" {
		if owner {
			return v.editScreen(post), nil
		}
		screen.Error = "You can only edit your own posts."
	}

	writePost(screen, *post, true)
	for _, c := range post.Comments {
		screen.Text(router.StyleItem, orDefault(c.Owner, "Unknown")+": "+clean(c.Body))
	}
	for _, r := range post.Reactions {
		screen.Text(router.StyleMuted, clean(r.Symbol)+" "+itoa(r.Count))
	}

	if name := authorName(*post); name != "" {
		screen.Navigate("a", "View "+clean(name), profileLocation(name))
	}
	if owner {
		screen.Navigate("e", "Edit", router.Location(router.PathPost, map[string]string{router.ParamID: id, router.ParamEdit: "true"}))
		screen.Offer("d", "Delete", router.IntentConfirmDelete)
	}
	return screen, nil
}

func (v *postView) editScreen(post *gateway.Post) *router.Screen {
	screen := &router.Screen{
		Title: "Edit Post",
		Form:  postForm("Save", gateway.PostInput{Title: post.Title, Body: post.Body, Tags: post.Tags}),
	}
	screen.Navigate("c", "Cancel", postLocation(post.ID))
	return screen
}

func (v *postView) Handle(ctx context.Context, route router.Route, intent router.Intent) (*router.Result, error) {
	id := route.Param(router.ParamID)

	switch intent.Kind {
	case router.IntentConfirmDelete:
		if err := v.api.DeletePost(ctx, id); err != nil {
			screen := &router.Screen{Title: "Post"}
			screen.Navigate("b", "Back", string(router.PathFeed))
			failed, err := showError(screen, err)
			if err != nil {
				return nil, err
			}
			return &router.Result{Screen: failed}, nil
		}
		return &router.Result{Navigate: string(router.PathFeed)}, nil

	case router.IntentSubmit:
		in, err := readPostForm(intent.Values)
		if err == nil {
			_, err = v.api.UpdatePost(ctx, id, in)
		}
		if err != nil {
			screen := &router.Screen{Title: "Edit Post", Form: postForm("Save", in)}
			screen.Navigate("c", "Cancel", router.Location(router.PathPost, map[string]string{router.ParamID: id}))
			failed, err := showError(screen, err)
			if err != nil {
				return nil, err
			}
			return &router.Result{Screen: failed}, nil
		}
		return &router.Result{Navigate: router.Location(router.PathPost, map[string]string{router.ParamID: id})}, nil
	}
	return nil, nil
}
