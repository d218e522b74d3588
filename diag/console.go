package diag

import (
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/term"
)

// Config holds console rendering parameters.
type Config struct {
	LineWidth int // maximum width of a rendered record; 0 means unlimited
}

// ConfigFromTerminal is a simple helper for creating a rendering Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's
// width and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil {
			config.LineWidth = 80
		} else {
			if w > 30 {
				config.LineWidth = w
			} else {
				config.LineWidth = 30
			}
		}
	} else {
		config.LineWidth = 0
	}
	tracer().P("format", "console").Infof("setting line width to %d", config.LineWidth)
	return config
}

// PrintConsole renders all recorded diagnostics to stdout. If config is nil,
// a heuristic will create a config from the current terminal's properties
// (if stdout is interactive). Messages longer than the configured line width
// are shortened with a trailing ellipsis.
func (r *Reporter) PrintConsole(config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	if config.LineWidth <= 0 {
		return r.Print(os.Stdout)
	}
	return r.printShortened(os.Stdout, config.LineWidth)
}

func (r *Reporter) printShortened(w io.Writer, width int) error {
	shortened := &Reporter{
		path:     r.path,
		loc:      r.loc,
		clusters: r.clusters,
		colors:   r.colors,
	}
	// prefix length is only known after offset resolution; reserve a fixed
	// share of the line for location and severity
	budget := width - len(r.path) - 24
	if budget < 10 {
		budget = 10
	}
	for _, d := range r.records {
		d.Message = shorten(d.Message, budget)
		shortened.records = append(shortened.records, d)
	}
	return shortened.Print(w)
}

// shorten cuts s to at most max runes, ending in an ellipsis when cut.
func shorten(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := 0
	for i := range s {
		if runes == max-1 {
			return s[:i] + "…"
		}
		runes++
	}
	return s
}
