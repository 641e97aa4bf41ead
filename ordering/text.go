package ordering

import (
	"bytes"
	"slices"
	"sync"

	"facette.io/natsort"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// NaturalStrings orders strings the way people expect file names to sort:
// runs of digits compare numerically, so "file2" comes before "file10".
func NaturalStrings() Strategy[string] { //nolint:ireturn
	return Predicate(natsort.Compare)
}

// collationKeys extracts collation sort keys. A collate.Collator is not safe
// for concurrent use, so extraction is serialized.
type collationKeys struct {
	mu       sync.Mutex
	collator *collate.Collator
	buf      collate.Buffer
}

func (c *collationKeys) key(s string) []byte {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.buf.Reset()

	return slices.Clone(c.collator.KeyFromString(&c.buf, s))
}

// Collation orders strings by the collation rules of a language, using the
// collator's binary sort keys as the derived key. Options such as
// collate.IgnoreCase or collate.Numeric are passed through.
//
// The returned strategy may be shared between goroutines.
func Collation(tag language.Tag, opts ...collate.Option) Strategy[string] { //nolint:ireturn
	keys := &collationKeys{collator: collate.New(tag, opts...)}

	return ByKeyFunc(keys.key, bytes.Compare)
}
