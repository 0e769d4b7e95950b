package views

import (
	"context"
	"strings"

	"github.com/jrsteele09/go-social-client/gateway"
	apperrors "github.com/jrsteele09/go-social-client/internal/errors"
	"github.com/jrsteele09/go-social-client/router"
)

// postForm is shared by the create and edit screens
func postForm(submit string, in gateway.PostInput) *router.Form {
	return &router.Form{
		Submit: submit,
		Fields: []router.Field{
			{Name: "title", Label: "Title", Value: in.Title},
			{Name: "body", Label: "What's on your mind?", Value: in.Body, Multiline: true},
			{Name: "tags", Label: "Tags (comma separated, optional)", Value: strings.Join(in.Tags, ", ")},
		},
	}
}

// readPostForm trims and checks the post form
func readPostForm(values map[string]string) (gateway.PostInput, error) {
	in := gateway.PostInput{
		Title: strings.TrimSpace(values["title"]),
		Body:  strings.TrimSpace(values["body"]),
	}
	for _, t := range strings.Split(values["tags"], ",") {
		if t = strings.TrimSpace(t); t != "" {
			in.Tags = append(in.Tags, t)
		}
	}

	if in.Title == "" {
		return in, apperrors.NewValidationError("title", "Title cannot be empty.")
	}
	if in.Body == "" {
		return in, apperrors.NewValidationError("body", "Post cannot be empty.")
	}
	return in, nil
}

type createView struct{ *deps }

func createScreen(in gateway.PostInput) *router.Screen {
	screen := &router.Screen{
		Title: "Create New Post",
		Form:  postForm("Publish", in),
	}
	screen.Navigate("c", "Cancel", string(router.PathFeed))
	return screen
}

func (v *createView) Load(context.Context, router.Route) (*router.Screen, error) {
	return createScreen(gateway.PostInput{}), nil
}

func (v *createView) Handle(ctx context.Context, _ router.Route, intent router.Intent) (*router.Result, error) {
	if intent.Kind != router.IntentSubmit {
		return nil, nil
	}

	in, err := readPostForm(intent.Values)
	if err == nil {
		_, err = v.api.CreatePost(ctx, in)
	}
	if err != nil {
		screen, err := showError(createScreen(in), err)
		if err != nil {
			return nil, err
		}
		return &router.Result{Screen: screen}, nil
	}
	return &router.Result{Navigate: string(router.PathFeed)}, nil
}
