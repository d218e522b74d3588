/*
Package linecol maps flat text offsets to human-readable line/column locations.

Line/Column Lookup

Tools which analyze text, parsers and linters for example, usually track
positions as flat byte offsets into their input, because offsets are cheap
to carry around and trivial to compare. Humans, on the other hand, read diagnostics in
terms of lines and columns. Package linecol bridges the two: it scans a text
once, caches the starting offset of every line, and afterwards answers an
arbitrary number of offset queries with a binary search over the cached line
heads.

	ix := linecol.FromString("One\nTwo")
	loc := ix.Locate(4)     // ⇒ line 2, column 1

Construction is O(n) in the text length, every query is O(log n) in the
number of lines. An index borrows the text it has been built from (Go strings
are immutable views, no copy is made) and is itself immutable: once built, no
API mutates the line-head table or the text. Clients create one index per
text and query it for every diagnostic they report.

Clients which create many indexes but query only few of them may use
LazyIndex instead, which postpones the scan to the first query and memoizes
the table thereafter.

Columns

Locate counts columns in bytes, the same unit as the query offset. This is
the right choice for machine consumption and for plain ASCII, but a human
looking at a line containing, say, a multi-codepoint emoji perceives fewer
“characters” than there are bytes. For display purposes an index can instead
resolve columns in user-perceived clusters (grapheme clusters in Unicode
parlance), by injecting a ClusterCounter capability. Package
linecol/graphemes provides a counter backed by UAX#29 text segmentation.
Cluster-aware resolution has to re-segment the line prefix on every query and
is therefore O(k) in the distance from the line start, which is why it lives
behind a separate, explicitly named entry point.

Offsets handed to a query must not exceed the text length; violating this
precondition is a bug in the caller's offset bookkeeping and trips a panic
rather than producing a plausible but wrong location.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package linecol

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Error is an error type for the linecol module.
type Error string

func (e Error) Error() string {
	return string(e)
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
