// Package segment splits completed narrative text into incrementally
// deliverable chunks.
package segment

import (
	"iter"
	"strings"
)

// delimiter is the sentence boundary chunks are split after.
const delimiter = ". "

// Segments yields the text split after every sentence terminator, in order,
// with the delimiter kept on each piece. Concatenating all pieces reproduces
// the input exactly. The sequence is lazy and finite; a fresh call re-splits
// the same text deterministically.
func Segments(text string) iter.Seq[string] {
	return strings.SplitAfterSeq(text, delimiter)
}
