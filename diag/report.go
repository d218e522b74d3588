package diag

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/npillmayer/linecol"
)

// Severity classifies a diagnostic record.
type Severity int

// Severities, in ascending order of gravity.
const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

// Diagnostic is one finding against a text, positioned by a flat byte
// offset. Offsets are resolved to line/column locations at rendering time.
type Diagnostic struct {
	Offset   uint64
	Severity Severity
	Message  string
}

// Reporter collects diagnostics for one text and renders them with resolved
// line/column locations. The zero value is not usable; create reporters
// with NewReporter.
//
// A Reporter works against any linecol.Locator, staying agnostic about
// whether the client indexed the text eagerly or lazily.
type Reporter struct {
	path     string
	loc      linecol.Locator
	clusters linecol.ClusterCounter
	colors   map[Severity]*color.Color
	records  []Diagnostic
}

// clusterLocator is the optional cluster-aware resolution capability of a
// Locator. Both linecol.Index and *linecol.LazyIndex provide it.
type clusterLocator interface {
	LocateClusters(offset uint64, counter linecol.ClusterCounter) linecol.Location
}

// NewReporter creates a reporter for one text, identified by path in
// rendered records. loc resolves offsets for that text.
func NewReporter(path string, loc linecol.Locator) *Reporter {
	return &Reporter{
		path:   path,
		loc:    loc,
		colors: makeDefaultPalette(),
	}
}

func makeDefaultPalette() map[Severity]*color.Color {
	return map[Severity]*color.Color{
		Warning: color.New(color.FgYellow),
		Error:   color.New(color.FgRed),
	}
}

// SetPalette replaces the severity colors used for rendering. Severities
// missing from the palette render uncolored. A nil palette disables
// coloring entirely.
func (r *Reporter) SetPalette(colors map[Severity]*color.Color) {
	r.colors = colors
}

// CountColumnsInClusters switches rendered columns from byte counting to
// user-perceived-cluster counting, using counter for segmentation. The
// reporter's locator has to support cluster-aware resolution; both
// linecol.Index and *linecol.LazyIndex do.
func (r *Reporter) CountColumnsInClusters(counter linecol.ClusterCounter) {
	if _, ok := r.loc.(clusterLocator); !ok {
		tracer().Errorf("locator of type %T cannot resolve cluster columns", r.loc)
		panic("diag.Reporter: locator does not support cluster-aware resolution")
	}
	r.clusters = counter
}

// Report records a finding at a byte offset into the text. Offsets are not
// resolved (and therefore not range-checked) until rendering.
func (r *Reporter) Report(offset uint64, severity Severity, format string, args ...interface{}) {
	r.records = append(r.records, Diagnostic{
		Offset:   offset,
		Severity: severity,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Count returns the number of recorded diagnostics.
func (r *Reporter) Count() int {
	return len(r.records)
}

// Records returns the recorded diagnostics, ordered by offset. Records with
// equal offsets keep their reporting order.
func (r *Reporter) Records() []Diagnostic {
	out := make([]Diagnostic, len(r.records))
	copy(out, r.records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Offset < out[j].Offset
	})
	return out
}

// Print renders all recorded diagnostics to w, ordered by offset, one
// record per line:
//
//	main.ts:3:14: error: unexpected token '}'
//
// The severity word is colorized according to the reporter's palette when w
// supports it. Print resolves every offset through the reporter's locator;
// an offset beyond the text length trips the locator's contract panic.
func (r *Reporter) Print(w io.Writer) error {
	for _, d := range r.Records() {
		loc := r.resolve(d.Offset)
		if _, err := fmt.Fprintf(w, "%s:%d:%d: ", r.path, loc.Line, loc.Column); err != nil {
			return err
		}
		if c, ok := r.colors[d.Severity]; ok && c != nil {
			if _, err := c.Fprint(w, d.Severity.String()); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, d.Severity.String()); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, ": %s\n", d.Message); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reporter) resolve(offset uint64) linecol.Location {
	if r.clusters != nil {
		return r.loc.(clusterLocator).LocateClusters(offset, r.clusters)
	}
	return r.loc.Locate(offset)
}
