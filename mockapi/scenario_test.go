package mockapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/jrsteele09/go-social-client/credentials"
	fakecredentialsrepo "github.com/jrsteele09/go-social-client/credentials/repofake"
	"github.com/jrsteele09/go-social-client/gateway"
	"github.com/jrsteele09/go-social-client/internal/config"
	"github.com/jrsteele09/go-social-client/mockapi"
	"github.com/jrsteele09/go-social-client/router"
	"github.com/jrsteele09/go-social-client/session"
	"github.com/jrsteele09/go-social-client/users"
	fakeuserrepo "github.com/jrsteele09/go-social-client/users/repofake"
	"github.com/jrsteele09/go-social-client/views"
	"github.com/stretchr/testify/require"
)

type recordingRenderer struct {
	lock    sync.Mutex
	screens []*router.Screen
}

func (r *recordingRenderer) Render(screen *router.Screen) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.screens = append(r.screens, screen)
}

func (r *recordingRenderer) last() *router.Screen {
	r.lock.Lock()
	defer r.lock.Unlock()
	if len(r.screens) == 0 {
		return nil
	}
	return r.screens[len(r.screens)-1]
}

type scenarioFixture struct {
	ctx      context.Context
	server   *mockapi.Server
	repo     *fakecredentialsrepo.FakeCredentialsRepo
	store    *credentials.Store
	router   *router.Router
	renderer *recordingRenderer
	postID   int
}

// setupTestFixture wires the whole client against a mock API served over HTTP
func setupTestFixture(t *testing.T) *scenarioFixture {
	t.Helper()
	return setupTestFixtureWith(t, nil)
}

// setupTestFixtureWith is setupTestFixture with the mock API wrapped by override
func setupTestFixtureWith(t *testing.T, override func(http.Handler) http.Handler) *scenarioFixture {
	t.Helper()

	server, err := mockapi.New(config.New(), fakeuserrepo.NewFakeUserRepo())
	require.NoError(t, err)
	require.NoError(t, server.SeedUser(users.User{Name: "kari", Email: "kari@stud.noroff.no"}, testPassword))
	require.NoError(t, server.SeedUser(users.User{Name: "ola", Email: "ola@stud.noroff.no"}, testPassword))
	postID := server.SeedPost("kari", gateway.PostInput{Title: "Hello", Body: "First post from the mock API", Tags: []string{"intro"}})

	var handler http.Handler = server
	if override != nil {
		handler = override(server)
	}
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	repo := fakecredentialsrepo.NewFakeCredentialsRepo()
	store, err := credentials.New(repo)
	require.NoError(t, err)
	gw, err := gateway.New(ts.URL, store)
	require.NoError(t, err)
	manager, err := session.New(store, gw)
	require.NoError(t, err)
	viewSet, err := views.New(gw, manager)
	require.NoError(t, err)

	renderer := &recordingRenderer{}
	r, err := router.New(manager, viewSet, renderer)
	require.NoError(t, err)

	return &scenarioFixture{
		ctx:      context.Background(),
		server:   server,
		repo:     repo,
		store:    store,
		router:   r,
		renderer: renderer,
		postID:   postID,
	}
}

func (f *scenarioFixture) goTo(location string) *router.Screen {
	f.router.Navigate(location)
	f.router.Dispatch(f.ctx)
	return f.renderer.last()
}

func (f *scenarioFixture) raise(kind router.IntentKind, values map[string]string) *router.Screen {
	f.router.Handle(f.ctx, router.Intent{Kind: kind, Values: values, Generation: f.renderer.last().Generation})
	return f.renderer.last()
}

func (f *scenarioFixture) login(t *testing.T) {
	t.Helper()

	screen := f.goTo(string(router.PathLogin))
	require.Equal(t, "#/login", screen.Location)
	screen = f.raise(router.IntentSubmit, map[string]string{"email": "kari@stud.noroff.no", "password": testPassword})
	require.Equal(t, "#/feed", screen.Location, screen.Error)
}

func hasLine(screen *router.Screen, text string) bool {
	for _, l := range screen.Lines {
		if strings.Contains(l.Text, text) {
			return true
		}
	}
	return false
}

func actionLabel(screen *router.Screen, key string) string {
	for _, a := range screen.Actions {
		if a.Key == key {
			return a.Label
		}
	}
	return ""
}

// TestScenario_LoginBrowseLogout walks a fresh client through login, reading a post and logout
func TestScenario_LoginBrowseLogout(t *testing.T) {
	f := setupTestFixture(t)

	f.router.Start(f.ctx, string(router.PathFeed))
	require.Equal(t, "#/login", f.renderer.last().Location)

	f.login(t)
	apiKey, err := f.store.GetAPIKey()
	require.NoError(t, err)
	require.NotNil(t, apiKey)
	require.True(t, hasLine(f.renderer.last(), "First post from the mock API"))

	screen := f.goTo(router.Location(router.PathPost, map[string]string{router.ParamID: strconv.Itoa(f.postID)}))
	require.Empty(t, screen.Error)
	require.True(t, hasLine(screen, "First post from the mock API"))
	require.Equal(t, "Edit", actionLabel(screen, "e"))

	screen = f.goTo(string(router.PathLogout))
	require.Equal(t, "#/login", screen.Location)
	require.Equal(t, 0, f.repo.Len())

	screen = f.goTo(string(router.PathFeed))
	require.Equal(t, "#/login", screen.Location)
}

// TestScenario_WrongPassword stays on the login screen with the server's message
func TestScenario_WrongPassword(t *testing.T) {
	f := setupTestFixture(t)

	f.router.Start(f.ctx, "")
	screen := f.raise(router.IntentSubmit, map[string]string{"email": "kari@stud.noroff.no", "password": "wrong-password"})
	require.Equal(t, "#/login", screen.Location)
	require.Equal(t, "Invalid email or password", screen.Error)
	require.Equal(t, 0, f.repo.Len())
}

// TestScenario_RevokedAPIKey shows the API error on the feed without ending the session
func TestScenario_RevokedAPIKey(t *testing.T) {
	f := setupTestFixture(t)
	f.login(t)

	apiKey, err := f.store.GetAPIKey()
	require.NoError(t, err)
	f.server.RevokeAPIKey(*apiKey)

	screen := f.goTo(string(router.PathFeed))
	require.Equal(t, "#/feed", screen.Location)
	require.Equal(t, "Error loading posts: Invalid API key", screen.Error)
}

// TestScenario_CreatePost publishes a post and finds it on the feed
func TestScenario_CreatePost(t *testing.T) {
	f := setupTestFixture(t)
	f.login(t)

	f.goTo(string(router.PathCreate))
	screen := f.raise(router.IntentSubmit, map[string]string{"title": "Second", "body": ""})
	require.Equal(t, "#/create", screen.Location)
	require.Equal(t, "Post cannot be empty.", screen.Error)

	screen = f.raise(router.IntentSubmit, map[string]string{"title": "Second", "body": "Written from the terminal", "tags": "go, cli"})
	require.Equal(t, "#/feed", screen.Location)
	require.True(t, hasLine(screen, "Written from the terminal"))

	screen = f.goTo(router.Location(router.PathFeed, map[string]string{router.ParamTag: "cli"}))
	require.True(t, hasLine(screen, "Written from the terminal"))
	require.False(t, hasLine(screen, "First post from the mock API"))
}

// TestScenario_FollowAndUpdateProfile toggles a follow and edits the own profile
func TestScenario_FollowAndUpdateProfile(t *testing.T) {
	f := setupTestFixture(t)
	f.login(t)

	screen := f.goTo(router.Location(router.PathProfile, map[string]string{router.ParamName: "ola"}))
	require.Equal(t, "Follow", actionLabel(screen, "f"))

	screen = f.raise(router.IntentToggleFollow, nil)
	require.Equal(t, "Unfollow", actionLabel(screen, "f"))
	require.True(t, hasLine(screen, "Followers 1"))

	screen = f.raise(router.IntentToggleFollow, nil)
	require.Equal(t, "Follow", actionLabel(screen, "f"))

	screen = f.goTo(string(router.PathProfile))
	require.NotNil(t, screen.Form)
	screen = f.raise(router.IntentSubmit, map[string]string{"bio": "Go and coffee"})
	require.Empty(t, screen.Error)
	require.True(t, hasLine(screen, "Go and coffee"))
}

// TestScenario_OthersPostIsReadOnly refuses the edit form on a post the user did not write
func TestScenario_OthersPostIsReadOnly(t *testing.T) {
	f := setupTestFixture(t)
	id := f.server.SeedPost("ola", gateway.PostInput{Title: "Ola's", Body: "Not yours"})
	f.login(t)

	screen := f.goTo(router.Location(router.PathPost, map[string]string{router.ParamID: strconv.Itoa(id), router.ParamEdit: "true"}))
	require.Equal(t, "You can only edit your own posts.", screen.Error)
	require.Nil(t, screen.Form)
	require.Empty(t, actionLabel(screen, "d"))
}

// emptyReply answers requests to path with a bare body and passes everything else through
func emptyReply(path string, status int, body string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != path {
				next.ServeHTTP(w, r)
				return
			}
			w.WriteHeader(status)
			_, _ = w.Write([]byte(body))
		})
	}
}

// TestScenario_APIKeyMissingFromResponse keeps the user on the login form with the reason
func TestScenario_APIKeyMissingFromResponse(t *testing.T) {
	f := setupTestFixtureWith(t, emptyReply(mockapi.RouteAuthCreateAPIKey, http.StatusCreated, `{"data":{}}`))

	f.router.Start(f.ctx, "")
	screen := f.raise(router.IntentSubmit, map[string]string{"email": "kari@stud.noroff.no", "password": testPassword})
	require.Equal(t, "#/login", screen.Location)
	require.Equal(t, "API key not found in response.", screen.Error)
	require.NotNil(t, screen.Form)
	require.Equal(t, "kari@stud.noroff.no", screen.Form.Fields[0].Value)
	require.Equal(t, 0, f.repo.Len())
}

// TestScenario_EmptyPostResponse shows an error and keeps the session
func TestScenario_EmptyPostResponse(t *testing.T) {
	f := setupTestFixtureWith(t, emptyReply("/social/posts/42", http.StatusOK, ""))
	f.login(t)

	screen := f.goTo(router.Location(router.PathPost, map[string]string{router.ParamID: "42"}))
	require.Equal(t, "#/post?id=42", screen.Location)
	require.Equal(t, "Error loading post: Post not found.", screen.Error)

	token, err := f.store.GetToken()
	require.NoError(t, err)
	require.NotNil(t, token)
}

// TestScenario_EmptyProfileResponse shows an error and keeps the session
func TestScenario_EmptyProfileResponse(t *testing.T) {
	f := setupTestFixtureWith(t, emptyReply("/social/profiles/ola", http.StatusOK, "not json"))
	f.login(t)

	screen := f.goTo(router.Location(router.PathProfile, map[string]string{router.ParamName: "ola"}))
	require.Equal(t, "#/profile?name=ola", screen.Location)
	require.Equal(t, "Profile not found.", screen.Error)

	token, err := f.store.GetToken()
	require.NoError(t, err)
	require.NotNil(t, token)
}
