package terminal

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jrsteele09/go-social-client/router"
	"github.com/rs/zerolog/log"
)

// Host is the read-eval-print loop that turns typed commands into router intents
type Host struct {
	router   *router.Router
	renderer *Renderer
	prompter *Prompter
	out      io.Writer
	commands map[string]func(ctx context.Context)
}

// NewHost creates a host around a router and the renderer it draws with
func NewHost(r *router.Router, renderer *Renderer, prompter *Prompter, out io.Writer) *Host {
	return &Host{
		router:   r,
		renderer: renderer,
		prompter: prompter,
		out:      out,
		commands: map[string]func(ctx context.Context){},
	}
}

// Command registers an extra command, e.g. "whoami"
func (h *Host) Command(name string, fn func(ctx context.Context)) {
	h.commands[name] = fn
}

func (h *Host) help() {
	fmt.Fprintln(h.out, "Commands: <key> run an action, s submit the form, go <location>, ? redraw, q quit")
	for name := range h.commands {
		fmt.Fprintf(h.out, "  %s\n", name)
	}
}

// Run reads commands until EOF, "q" or ctx is done
func (h *Host) Run(ctx context.Context) error {
	for ctx.Err() == nil {
		line, err := h.prompter.ReadLine("> ")
		if err == io.EOF {
			fmt.Fprintln(h.out)
			return nil
		}
		if err != nil {
			return err
		}
		if !h.execute(ctx, strings.TrimSpace(line)) {
			return nil
		}
	}
	return ctx.Err()
}

// execute runs one command. It returns false when the host should stop.
func (h *Host) execute(ctx context.Context, cmd string) bool {
	screen := h.renderer.Last()

	switch {
	case cmd == "":
	case cmd == "q" || cmd == "quit":
		return false
	case cmd == "h" || cmd == "help":
		h.help()
	case cmd == "?":
		if screen != nil {
			h.renderer.Render(screen)
		}
	case strings.HasPrefix(cmd, "go "):
		h.router.Handle(ctx, router.Intent{
			Kind:       router.IntentNavigate,
			Target:     strings.TrimSpace(strings.TrimPrefix(cmd, "go ")),
			Generation: generation(screen),
		})
	case cmd == "s" && screen != nil && screen.Form != nil:
		values, err := h.prompter.FillForm(screen.Form)
		if err != nil {
			log.Err(err).Msg("Reading form")
			return err != io.EOF
		}
		h.router.Handle(ctx, router.Intent{Kind: router.IntentSubmit, Values: values, Generation: screen.Generation})
	default:
		if fn, ok := h.commands[cmd]; ok {
			fn(ctx)
			return true
		}
		if screen != nil {
			for _, a := range screen.Actions {
				if a.Key == cmd {
					intent := a.Intent
					intent.Generation = screen.Generation
					h.router.Handle(ctx, intent)
					return true
				}
			}
		}
		errorColour.Fprintf(h.out, "Unknown command %q, type h for help\n", cmd)
	}
	return true
}

func generation(s *router.Screen) uint64 {
	if s == nil {
		return 0
	}
	return s.Generation
}
