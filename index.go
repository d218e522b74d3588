package linecol

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Index is a pre-scanned line/column lookup table over an immutable text.
//
// An index created by
//
//	Index{}
//
// is a valid object and behaves like an index over the empty string.
//
// Index holds a reference to the text it has been built from, not a copy.
// Methods that take positions use 0-based byte offsets; reported lines and
// columns are 1-based.
//
// An Index is immutable after construction and may be shared freely between
// goroutines.
type Index struct {
	text  string
	heads []uint64
}

// Location is a human-readable text position, as used in diagnostic messages.
// Line and Column are 1-based.
type Location struct {
	Line   uint64
	Column uint64
}

// FromString scans s once and creates a line/column index for it.
//
// Every text is valid input, including the empty string, a text without any
// line terminator (a single line) and a text consisting of terminators only.
// Construction cost is O(n) in the length of s.
func FromString(s string) Index {
	heads := scanLineHeads(s)
	T().Debugf("indexed %d line(s) in %d bytes of text", len(heads), len(s))
	return Index{text: s, heads: heads}
}

// scanLineHeads records the byte offset of every line start in s. The table
// is seeded with offset 0: line 1 starts at the start of the text, whatever
// the content. Every '\n' opens a new line at the offset immediately
// following it.
func scanLineHeads(s string) []uint64 {
	heads := make([]uint64, 1, 16)
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			heads = append(heads, uint64(i)+1)
		}
	}
	return heads
}

// Locate resolves a byte offset to its 1-based (line, column) location.
// The column is counted in bytes, the same unit as the offset; see
// LocateClusters for columns in user-perceived characters.
//
//	ix := linecol.FromString("One\nTwo")
//	ix.Locate(0)    // ⇒ (1,1)  'O'
//	ix.Locate(3)    // ⇒ (1,4)  the newline itself
//	ix.Locate(4)    // ⇒ (2,1)  'T'
//	ix.Locate(7)    // ⇒ (2,4)  end of text
//
// offset may equal the text length, denoting the end of the text; it then
// resolves to the last line. Larger offsets violate the precondition and
// cause a panic.
//
// Locate runs in O(log n) in the number of lines.
func (ix Index) Locate(offset uint64) Location {
	line, head := ix.lineAt(offset)
	return Location{Line: line, Column: offset - head + 1}
}

// ClusterCounter counts user-perceived characters (grapheme clusters) in a
// text fragment. It is a capability interface: the root package contains no
// implementation, clients inject one, such as the UAX#29 counter from
// package linecol/graphemes.
type ClusterCounter interface {
	Clusters(frag string) int
}

// LocateClusters resolves a byte offset like Locate, but counts the column
// in user-perceived characters rather than bytes. A multi-codepoint emoji
// or a base letter with combining accents occupies a single column.
//
// The line prefix up to offset is re-segmented on every call, making
// LocateClusters O(log n + k) with k the byte distance from the line start.
// Callers not displaying columns to humans should prefer Locate.
//
// An offset landing inside a cluster counts that cluster as complete: the
// partial cluster contributes one column unit, as if the query had pointed
// just past it.
//
// counter must not be nil; there is no silent fallback to byte counting.
func (ix Index) LocateClusters(offset uint64, counter ClusterCounter) Location {
	assert(counter != nil, "cluster-aware lookup requires a ClusterCounter")
	line, head := ix.lineAt(offset)
	frag := ix.text[head:offset]
	return Location{Line: line, Column: uint64(counter.Clusters(frag)) + 1}
}

// lineAt performs a binary search over the line-head table for the unique
// line whose half-open range [head[L], head[L+1]) contains offset. The final
// line extends to the end of the text inclusive.
func (ix Index) lineAt(offset uint64) (line uint64, head uint64) {
	assert(offset <= uint64(len(ix.text)), "offset exceeds length of indexed text")
	heads := ix.lineHeads()
	var lo, hi uint64 = 0, uint64(len(heads))
	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		if heads[mid] <= offset {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo + 1, heads[lo]
}

// emptyHeads is the line-head table of the empty text, shared by all
// zero-value indexes.
var emptyHeads = []uint64{0}

// lineHeads returns the line-head table, mapping the zero value Index{} to
// the table of the empty text. The table is sorted, strictly increasing and
// never empty.
func (ix Index) lineHeads() []uint64 {
	if ix.heads == nil {
		return emptyHeads
	}
	return ix.heads
}

// Text returns the indexed text.
func (ix Index) Text() string {
	return ix.text
}

// Len returns the length of the indexed text in bytes.
func (ix Index) Len() uint64 {
	return uint64(len(ix.text))
}

// LineCount returns the total number of lines. Even the empty text has one
// (empty) line.
func (ix Index) LineCount() uint64 {
	return uint64(len(ix.lineHeads()))
}

// IsVoid reports whether the indexed text has no bytes.
func (ix Index) IsVoid() bool {
	return len(ix.text) == 0
}

// Locator resolves byte offsets to line/column locations. It is implemented
// by Index and *LazyIndex, letting diagnostic layers stay agnostic about the
// construction-timing policy.
type Locator interface {
	Locate(offset uint64) Location
}

var _ Locator = Index{}
