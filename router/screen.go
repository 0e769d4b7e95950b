package router

// LineStyle tells the renderer how to present a line of body text
type LineStyle int

const (
	StyleText LineStyle = iota
	StyleHeading
	StyleMuted
	StyleItem
	StyleSuccess
	StyleError
)

// Line is one line of rendered body content
type Line struct {
	Style LineStyle
	Text  string
}

// Field is a form input
type Field struct {
	Name      string
	Label     string
	Value     string
	Secret    bool // Input must not be echoed
	Multiline bool
	Error     string
}

// Form is a set of fields submitted together with a submit intent
type Form struct {
	Submit string // Submit button label
	Fields []Field
}

// FieldError attaches a message to the named field
func (f *Form) FieldError(name, message string) {
	for i := range f.Fields {
		if f.Fields[i].Name == name {
			f.Fields[i].Error = message
			return
		}
	}
}

// IntentKind names a user action the host sends back to the router
type IntentKind string

const (
	IntentNavigate      IntentKind = "navigate"
	IntentSubmit        IntentKind = "submit"
	IntentConfirmDelete IntentKind = "confirm-delete"
	IntentToggleFollow  IntentKind = "toggle-follow"
)

// Intent is a user action raised on a rendered screen
type Intent struct {
	Kind       IntentKind
	Target     string            // Location for IntentNavigate
	Values     map[string]string // Form values for IntentSubmit
	Generation uint64            // Generation of the screen the intent came from
}

// Action is a control offered by a screen
type Action struct {
	Key    string // Shortcut the host binds the action to
	Label  string
	Intent Intent
}

// Screen is the render instruction produced by a view
type Screen struct {
	Title   string
	Notice  string
	Error   string
	Lines   []Line
	Form    *Form
	Actions []Action

	// Set by the router when the screen is rendered
	Location   string
	Generation uint64
}

// Text appends a line of body content
func (s *Screen) Text(style LineStyle, text string) {
	s.Lines = append(s.Lines, Line{Style: style, Text: text})
}

// Navigate offers an action that moves to location
func (s *Screen) Navigate(key, label, location string) {
	s.Actions = append(s.Actions, Action{Key: key, Label: label, Intent: Intent{Kind: IntentNavigate, Target: location}})
}

// Offer adds a non-navigation action
func (s *Screen) Offer(key, label string, kind IntentKind) {
	s.Actions = append(s.Actions, Action{Key: key, Label: label, Intent: Intent{Kind: kind}})
}

// Result is returned by a view after handling an intent.
// At most one of Navigate, Screen or Reload is used, in that order.
type Result struct {
	Navigate string  // Location to move to
	Screen   *Screen // Replacement screen, e.g. a form with errors
	Reload   bool    // Load the current route again
}
