package terminal_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/jrsteele09/go-social-client/internal/terminal"
	"github.com/jrsteele09/go-social-client/router"
	"github.com/stretchr/testify/require"
)

type staticSession struct{ valid bool }

func (s *staticSession) HasValidSession() bool { return s.valid }
func (s *staticSession) Logout() { s.valid = false }

// echoView renders its path and records submitted values
type echoView struct {
	path      router.Path
	submitted map[string]string
}

func (v *echoView) Load(context.Context, router.Route) (*router.Screen, error) {
	s := &router.Screen{Title: string(v.path)}
	s.Text(router.StyleHeading, "Heading")
	s.Text(router.StyleItem, "an item")
	if v.path == router.PathCreate {
		s.Form = &router.Form{Submit: "Publish", Fields: []router.Field{
			{Name: "title", Label: "Title"},
			{Name: "body", Label: "Body", Multiline: true},
			{Name: "secret", Label: "Secret", Secret: true},
		}}
	}
	s.Navigate("n", "New post", string(router.PathCreate))
	return s, nil
}

func (v *echoView) Handle(_ context.Context, _ router.Route, intent router.Intent) (*router.Result, error) {
	v.submitted = intent.Values
	return &router.Result{Navigate: string(router.PathFeed)}, nil
}

type testFixture struct {
	out      *bytes.Buffer
	views    map[router.Path]*echoView
	router   *router.Router
	renderer *terminal.Renderer
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()
	color.NoColor = true

	views := map[router.Path]*echoView{}
	asViews := map[router.Path]router.View{}
	for _, p := range []router.Path{router.PathLogin, router.PathRegister, router.PathFeed, router.PathCreate, router.PathPost, router.PathProfile} {
		v := &echoView{path: p}
		views[p] = v
		asViews[p] = v
	}

	out := &bytes.Buffer{}
	renderer := terminal.NewRenderer(out)
	r, err := router.New(&staticSession{valid: true}, asViews, renderer)
	require.NoError(t, err)

	return &testFixture{out: out, views: views, router: r, renderer: renderer}
}

func (f *testFixture) run(t *testing.T, input string) {
	t.Helper()
	host := terminal.NewHost(f.router, f.renderer, terminal.NewPrompter(strings.NewReader(input), f.out), f.out)
	require.NoError(t, host.Run(context.Background()))
}

// TestRenderer prints title, lines and actions
func TestRenderer(t *testing.T) {
	f := setupTestFixture(t)
	f.router.Start(context.Background(), "#/feed")

	out := f.out.String()
	require.Contains(t, out, "== #/feed ==")
	require.Contains(t, out, "  - an item")
	require.Contains(t, out, "[n] New post")
	require.Equal(t, "#/feed", f.renderer.Last().Location)
}

// TestHost_ActionAndSubmit runs an action key then fills and submits a form
func TestHost_ActionAndSubmit(t *testing.T) {
	f := setupTestFixture(t)
	f.router.Start(context.Background(), "#/feed")

	f.run(t, "n\ns\nMy title\nline one\nline two\n\nhunter22\nq\n")

	require.Equal(t, map[string]string{
		"title":  "My title",
		"body":   "line one\nline two",
		"secret": "hunter22",
	}, f.views[router.PathCreate].submitted)
	require.Equal(t, "#/feed", f.renderer.Last().Location)
}

// TestHost_GoAndUnknown navigates by location and reports unknown commands
func TestHost_GoAndUnknown(t *testing.T) {
	f := setupTestFixture(t)
	f.router.Start(context.Background(), "#/feed")

	f.run(t, "go #/profile?name=ola\nzzz\n")

	require.Equal(t, "#/profile?name=ola", f.renderer.Last().Location)
	require.Contains(t, f.out.String(), `Unknown command "zzz"`)
}

// TestHost_Command runs registered commands
func TestHost_Command(t *testing.T) {
	f := setupTestFixture(t)
	f.router.Start(context.Background(), "#/feed")

	called := false
	host := terminal.NewHost(f.router, f.renderer, terminal.NewPrompter(strings.NewReader("whoami\n"), f.out), f.out)
	host.Command("whoami", func(context.Context) { called = true })
	require.NoError(t, host.Run(context.Background()))
	require.True(t, called)
}

// TestFillForm keeps current values on empty answers
func TestFillForm(t *testing.T) {
	out := &bytes.Buffer{}
	p := terminal.NewPrompter(strings.NewReader("\nnew\n"), out)

	values, err := p.FillForm(&router.Form{Fields: []router.Field{
		{Name: "bio", Label: "Bio", Value: "old bio"},
		{Name: "avatar", Label: "Avatar", Value: "x"},
	}})
	require.NoError(t, err)
	require.Equal(t, map[string]string{"bio": "old bio", "avatar": "new"}, values)
	require.Contains(t, out.String(), "Bio [old bio]: ")
}
