package pipeline

import (
	"cmp"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Comparator orders category labels, returning <0, 0 or >0.
type Comparator func(a, b string) int

// collators are not safe for concurrent use.
var collators = sync.Pool{
	New: func() any { return collate.New(language.Und) },
}

// Lexical compares labels with the root locale collation.
func Lexical(a, b string) int {
	c := collators.Get().(*collate.Collator)
	defer collators.Put(c)
	return c.CompareString(a, b)
}

// NumericAware sorts numeric labels first and by value, then the rest
// lexically, so "2" comes before "10".
func NumericAware(a, b string) int {
	af, aok := parseFinite(a)
	bf, bok := parseFinite(b)
	switch {
	case aok && bok:
		return cmp.Compare(af, bf)
	case aok:
		return -1
	case bok:
		return 1
	default:
		return Lexical(a, b)
	}
}
