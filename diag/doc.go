/*
Package diag renders diagnostic messages with line/column locations.

It is a thin reporting layer on top of the linecol lookup core: analysis
tools record findings as (offset, severity, message) triples, and the
reporter resolves offsets through a linecol.Locator and prints the familiar

	path:line:column: severity: message

records, optionally colorized per severity.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package diag

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'linecol'
func tracer() tracing.Trace {
	return tracing.Select("linecol")
}
