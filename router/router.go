package router

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// MaxRedirects bounds a single redirect chain
const MaxRedirects = 8

// Session is the session policy the guards consult
type Session interface {
	HasValidSession() bool
	Logout()
}

// View loads the screen for a route and handles intents raised on it
type View interface {
	Load(ctx context.Context, route Route) (*Screen, error)
	Handle(ctx context.Context, route Route, intent Intent) (*Result, error)
}

// Renderer presents screens to the user
type Renderer interface {
	Render(screen *Screen)
}

// Router maps locations to views, enforces the guards and runs navigation effects
type Router struct {
	session  Session
	views    map[Path]View
	renderer Renderer

	queueMu sync.Mutex
	queue   []string

	dispatchMu sync.Mutex
	current    Route
	screen     *Screen
	generation uint64
}

// New creates a router. Every renderable path needs a view.
func New(session Session, views map[Path]View, renderer Renderer) (*Router, error) {
	if session == nil {
		return nil, errors.New("[router.New] session is required")
	}
	if renderer == nil {
		return nil, errors.New("[router.New] renderer is required")
	}
	for path, access := range pathAccess {
		if access == AccessUnconditional {
			continue
		}
		if views[path] == nil {
			return nil, errors.Errorf("[router.New] no view for %s", path)
		}
	}

	return &Router{
		session:  session,
		views:    views,
		renderer: renderer,
	}, nil
}

// Navigate queues a location change. It never runs a view directly;
// the next Dispatch picks it up.
func (r *Router) Navigate(location string) {
	r.queueMu.Lock()
	defer r.queueMu.Unlock()
	r.queue = append(r.queue, location)
}

func (r *Router) next() (string, bool) {
	r.queueMu.Lock()
	defer r.queueMu.Unlock()
	if len(r.queue) == 0 {
		return "", false
	}
	location := r.queue[0]
	r.queue = r.queue[1:]
	return location, true
}

func (r *Router) dropQueue() {
	r.queueMu.Lock()
	defer r.queueMu.Unlock()
	r.queue = nil
}

// Start performs the initial load
func (r *Router) Start(ctx context.Context, location string) {
	r.Navigate(location)
	r.Dispatch(ctx)
}

// Dispatch drains the navigation queue, rendering the screen of the last location reached
func (r *Router) Dispatch(ctx context.Context) {
	r.dispatchMu.Lock()
	defer r.dispatchMu.Unlock()
	r.dispatch(ctx)
}

func (r *Router) dispatch(ctx context.Context) {
	hops := 0
	for {
		location, ok := r.next()
		if !ok {
			return
		}

		route := Parse(location)
		decision := Resolve(route, r.session.HasValidSession())
		if decision.ClearSession {
			r.session.Logout()
		}

		if decision.Outcome == OutcomeRedirect {
			hops++
			if hops > MaxRedirects {
				log.Error().Str("location", location).Int("hops", hops).Msg("Redirect loop")
				r.dropQueue()
				r.session.Logout()
				r.load(ctx, Route{Path: PathLogin, Params: map[string]string{}})
				return
			}
			log.Debug().Str("from", location).Str("to", decision.Target.String()).Msg("Redirect")
			r.Navigate(decision.Target.String())
			continue
		}

		if !r.load(ctx, route) {
			hops++
			if hops > MaxRedirects {
				log.Error().Str("location", location).Msg("Views keep failing, giving up")
				r.dropQueue()
				return
			}
		}
	}
}

// load runs the view for route and renders its screen. A failing view clears the
// session and queues the login route.
func (r *Router) load(ctx context.Context, route Route) bool {
	view := r.views[route.Path]

	var screen *Screen
	err := protect(func() error {
		var err error
		screen, err = view.Load(ctx, route)
		return err
	})
	if err == nil && screen == nil {
		err = errors.Errorf("[load] view for %s returned no screen", route.Path)
	}
	if err != nil {
		r.fail(route, err)
		return false
	}

	r.show(route, screen)
	return true
}

func (r *Router) show(route Route, screen *Screen) {
	r.generation++
	r.current = route
	screen.Location = route.String()
	screen.Generation = r.generation
	r.screen = screen
	r.renderer.Render(screen)
}

func (r *Router) fail(route Route, err error) {
	log.Err(err).Str("location", route.String()).Msg("View failed, returning to login")
	r.session.Logout()
	r.dropQueue()
	r.Navigate(string(PathLogin))
}

// Handle applies an intent raised on the current screen. Intents from a screen that
// has since been replaced are discarded.
func (r *Router) Handle(ctx context.Context, intent Intent) {
	r.dispatchMu.Lock()
	defer r.dispatchMu.Unlock()

	if r.screen == nil || intent.Generation != r.generation {
		log.Debug().Str("intent", string(intent.Kind)).Uint64("generation", intent.Generation).Msg("Discarding stale intent")
		return
	}

	if intent.Kind == IntentNavigate {
		r.Navigate(intent.Target)
		r.dispatch(ctx)
		return
	}

	route := r.current
	view := r.views[route.Path]

	var result *Result
	err := protect(func() error {
		var err error
		result, err = view.Handle(ctx, route, intent)
		return err
	})
	if err != nil {
		r.fail(route, err)
		r.dispatch(ctx)
		return
	}

	switch {
	case result == nil:
	case result.Navigate != "":
		r.Navigate(result.Navigate)
	case result.Screen != nil:
		r.show(route, result.Screen)
	case result.Reload:
		r.Navigate(route.String())
	}
	r.dispatch(ctx)
}

// Current returns the route and generation of the screen on display
func (r *Router) Current() (Route, uint64) {
	r.dispatchMu.Lock()
	defer r.dispatchMu.Unlock()
	return r.current, r.generation
}

// protect converts a panic in fn into an error
func protect(fn func() error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v\n%s", rec, debug.Stack())
		}
	}()
	return fn()
}
