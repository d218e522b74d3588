package graphemes

import (
	"sync"

	"github.com/npillmayer/linecol"
	"github.com/npillmayer/uax/grapheme"
)

var setupGraphemes sync.Once

// Counter counts user-perceived characters (grapheme clusters) in text
// fragments, segmenting them according to Unicode Annex #29. It implements
// linecol.ClusterCounter.
//
// Counter is stateless; all values returned by NewCounter are equivalent and
// safe for concurrent use.
type Counter struct{}

// NewCounter creates a UAX#29 cluster counter. The first call sets up the
// grapheme-class tables for the segmenter.
func NewCounter() Counter {
	setupGraphemes.Do(func() {
		tracer().Infof("setting up UAX#29 grapheme classes")
		grapheme.SetupGraphemeClasses()
	})
	return Counter{}
}

// Clusters returns the number of grapheme clusters in frag. A cluster cut
// off at the end of frag counts as one cluster.
func (Counter) Clusters(frag string) int {
	if frag == "" {
		return 0
	}
	return grapheme.StringFromString(frag).Len()
}

// Locate resolves a byte offset to a location with a cluster-counted column.
// It is a convenience wrapper around Index.LocateClusters with a UAX#29
// counter injected.
func Locate(ix linecol.Index, offset uint64) linecol.Location {
	return ix.LocateClusters(offset, NewCounter())
}
