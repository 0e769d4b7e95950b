package terminal

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/jrsteele09/go-social-client/router"
)

// Renderer prints screens as coloured text
type Renderer struct {
	out  io.Writer
	lock sync.Mutex
	last *router.Screen
}

// NewRenderer creates a renderer writing to out
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Render implements router.Renderer
func (r *Renderer) Render(screen *router.Screen) {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.last = screen

	fmt.Fprintln(r.out)
	titleColour.Fprintf(r.out, "== %s ==", screen.Title)
	fmt.Fprintf(r.out, "  %s\n", screen.Location)

	if screen.Notice != "" {
		noticeColour.Fprintln(r.out, screen.Notice)
	}
	if screen.Error != "" {
		errorColour.Fprintln(r.out, screen.Error)
	}

	for _, line := range screen.Lines {
		c := lineColours[line.Style]
		for _, text := range strings.Split(line.Text, "\n") {
			if line.Style == router.StyleItem {
				text = "  - " + text
			}
			c.Fprintln(r.out, text)
		}
	}

	if screen.Form != nil {
		fmt.Fprintln(r.out)
		for _, f := range screen.Form.Fields {
			value := f.Value
			if f.Secret && value != "" {
				value = "********"
			}
			fmt.Fprintf(r.out, "  %s: %s\n", f.Label, value)
			if f.Error != "" {
				fieldErrorColour.Fprintf(r.out, "    %s\n", f.Error)
			}
		}
		actionColour.Fprintf(r.out, "[s] %s\n", screen.Form.Submit)
	}

	for _, a := range screen.Actions {
		actionColour.Fprintf(r.out, "[%s] %s\n", a.Key, a.Label)
	}
}

// Last returns the screen most recently rendered
func (r *Renderer) Last() *router.Screen {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.last
}
