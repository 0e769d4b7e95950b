package views

import (
	"context"

	"github.com/jrsteele09/go-social-client/router"
	"github.com/jrsteele09/go-social-client/session"
)

type loginView struct{ *deps }

func loginScreen(email string) *router.Screen {
	screen := &router.Screen{
		Title: "Login",
		Form: &router.Form{
			Submit: "Login",
			Fields: []router.Field{
				{Name: "email", Label: "Email", Value: email},
				{Name: "password", Label: "Password", Secret: true},
			},
		},
	}
	screen.Navigate("r", "Register", string(router.PathRegister))
	return screen
}

func (v *loginView) Load(_ context.Context, route router.Route) (*router.Screen, error) {
	screen := loginScreen("")
	if route.Param(ParamRegistered) != "" {
		screen.Notice = "Registration successful. Please log in."
	}
	return screen, nil
}

func (v *loginView) Handle(ctx context.Context, _ router.Route, intent router.Intent) (*router.Result, error) {
	if intent.Kind != router.IntentSubmit {
		return nil, nil
	}

	email := intent.Values["email"]
	if _, err := v.session.Login(ctx, email, intent.Values["password"]); err != nil {
		screen, err := showError(loginScreen(email), err)
		if err != nil {
			return nil, err
		}
		return &router.Result{Screen: screen}, nil
	}
	return &router.Result{Navigate: string(router.PathFeed)}, nil
}

type registerView struct{ *deps }

func registerScreen(in session.RegisterInput) *router.Screen {
	screen := &router.Screen{
		Title: "Register",
		Form: &router.Form{
			Submit: "Register",
			Fields: []router.Field{
				{Name: "name", Label: "Name", Value: in.Name},
				{Name: "email", Label: "Email (@stud.noroff.no)", Value: in.Email},
				{Name: "password", Label: "Password", Secret: true},
				{Name: "bio", Label: "Bio (optional)", Value: in.Bio, Multiline: true},
				{Name: "avatar", Label: "Avatar URL (optional)", Value: in.AvatarURL},
			},
		},
	}
	screen.Navigate("l", "Back to login", string(router.PathLogin))
	return screen
}

func (v *registerView) Load(context.Context, router.Route) (*router.Screen, error) {
	return registerScreen(session.RegisterInput{}), nil
}

func (v *registerView) Handle(ctx context.Context, _ router.Route, intent router.Intent) (*router.Result, error) {
	if intent.Kind != router.IntentSubmit {
		return nil, nil
	}

	in := session.RegisterInput{
		Name:      intent.Values["name"],
		Email:     intent.Values["email"],
		Password:  intent.Values["password"],
		Bio:       intent.Values["bio"],
		AvatarURL: intent.Values["avatar"],
	}
	if _, err := v.session.Register(ctx, in); err != nil {
		screen, err := showError(registerScreen(in), err)
		if err != nil {
			return nil, err
		}
		return &router.Result{Screen: screen}, nil
	}
	return &router.Result{Navigate: router.Location(router.PathLogin, map[string]string{ParamRegistered: "true"})}, nil
}
