package linecol

import "sync"

// LazyIndex is an Index whose line-head table is built on the first query
// instead of at construction time.
//
// Lazy construction pays off for clients which create indexes for many texts
// but end up querying only a few of them, like a diagnostics pipeline that
// indexes every input file but reports findings for few. Creating a LazyIndex
// is near-instant; the O(n) scan happens once, on the first query, and is
// memoized for all later queries.
//
// The one-time scan is guarded, so a LazyIndex may be shared between
// goroutines: concurrent first queries build the table exactly once and
// never observe it partially populated.
type LazyIndex struct {
	text string
	once sync.Once
	ix   Index
}

// Lazy creates a line/column index for s which postpones scanning to the
// first query. Use FromString instead unless construction-without-query is a
// measured bottleneck.
func Lazy(s string) *LazyIndex {
	return &LazyIndex{text: s}
}

// Locate resolves a byte offset to its 1-based (line, column) location,
// building the line-head table if this is the first query. See Index.Locate
// for the resolution contract.
func (lx *LazyIndex) Locate(offset uint64) Location {
	return lx.force().Locate(offset)
}

// LocateClusters resolves a byte offset with a cluster-counted column,
// building the line-head table if this is the first query. See
// Index.LocateClusters for the resolution contract.
func (lx *LazyIndex) LocateClusters(offset uint64, counter ClusterCounter) Location {
	return lx.force().LocateClusters(offset, counter)
}

// Text returns the indexed text.
func (lx *LazyIndex) Text() string {
	return lx.text
}

// Len returns the length of the indexed text in bytes. Len does not trigger
// the scan.
func (lx *LazyIndex) Len() uint64 {
	return uint64(len(lx.text))
}

// LineCount returns the total number of lines, building the line-head table
// if necessary.
func (lx *LazyIndex) LineCount() uint64 {
	return lx.force().LineCount()
}

// Force builds the line-head table if it has not been built yet and returns
// the underlying eager Index. Clients holding on to the result skip the
// once-guard on subsequent queries.
func (lx *LazyIndex) Force() Index {
	return lx.force()
}

func (lx *LazyIndex) force() Index {
	lx.once.Do(func() {
		lx.ix = FromString(lx.text)
	})
	return lx.ix
}

var _ Locator = &LazyIndex{}
