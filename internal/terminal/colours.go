package terminal

import (
	"github.com/fatih/color"
	"github.com/jrsteele09/go-social-client/router"
)

var (
	titleColour      = color.New(color.FgCyan, color.Bold)
	noticeColour     = color.New(color.FgGreen)
	errorColour      = color.New(color.FgRed)
	actionColour     = color.New(color.FgYellow)
	promptColour     = color.New(color.FgGreen)
	fieldErrorColour = color.New(color.FgRed, color.Italic)
)

var lineColours = map[router.LineStyle]*color.Color{
	router.StyleText:    color.New(color.Reset),
	router.StyleHeading: color.New(color.FgBlue, color.Bold),
	router.StyleMuted:   color.New(color.Faint),
	router.StyleItem:    color.New(color.FgMagenta),
	router.StyleSuccess: noticeColour,
	router.StyleError:   errorColour,
}
