/*
Package graphemes provides user-perceived-character counting for line/column
lookup, backed by UAX#29 text segmentation.

It is the capability implementation behind linecol.ClusterCounter: inject a
Counter into Index.LocateClusters to report columns in grapheme clusters
instead of bytes. Builds that do not need cluster-aware columns simply do not
import this package; the linecol root never degrades a cluster query to byte
counting.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package graphemes

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'linecol'
func tracer() tracing.Trace {
	return tracing.Select("linecol")
}
