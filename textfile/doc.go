/*
Package textfile provides API helpers to load UTF-8 text files as indexed
documents.

A Document couples a file's content with its line/column index, ready for
offset queries. Loading may be done synchronously with Load, or in the
background with LoadAsync, which broadcasts the single load result to any
number of waiting goroutines.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'linecol'
func tracer() tracing.Trace {
	return tracing.Select("linecol")
}
