package ui

import (
	"os"
	"sync"

	"github.com/jedib0t/go-pretty/v6/text"
)

var initColors sync.Once

var colorDisabled = sync.OnceValue(func() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
})

func ensureColors() {
	initColors.Do(func() {
		if colorDisabled() {
			text.DisableColors()
		}
	})
}

// SetNoColor overrides the color-disabled flag for testing.
func SetNoColor(disabled bool) {
	colorDisabled = func() bool { return disabled }
	if disabled {
		text.DisableColors()
	} else {
		text.EnableColors()
	}
}

func paint(c text.Colors, s string) string {
	ensureColors()
	if colorDisabled() {
		return s
	}
	return c.Sprint(s)
}

// Green formats text in green.
func Green(s string) string { return paint(text.Colors{text.FgGreen}, s) }

// Yellow formats text in yellow.
func Yellow(s string) string { return paint(text.Colors{text.FgYellow}, s) }

// Faint formats text dimmed.
func Faint(s string) string { return paint(text.Colors{text.Faint}, s) }

// typeColors keys are git-flow branch type names.
var typeColors = map[string]text.Colors{
	"feature": {text.FgCyan},
	"bugfix":  {text.FgYellow},
	"hotfix":  {text.FgRed},
	"release": {text.FgGreen},
	"support": {text.FgMagenta},
}

// BranchType formats a git-flow branch type name in its display color.
// Unknown names are returned as-is.
func BranchType(name string) string {
	c, ok := typeColors[name]
	if !ok {
		return name
	}
	return paint(c, name)
}
