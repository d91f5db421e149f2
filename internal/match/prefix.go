package match

import (
	"sort"

	"github.com/armon/go-radix"
)

// PrefixIndex answers "which keys start with this prefix" for one session.
// Each key maps to the catalog positions it occupies.
type PrefixIndex struct {
	tree *radix.Tree
}

// NewPrefixIndex indexes keys by their position in the slice.
func NewPrefixIndex(keys []string) *PrefixIndex {
	tree := radix.New()
	for pos, key := range keys {
		if existing, ok := tree.Get(key); ok {
			positions, _ := existing.([]int)
			tree.Insert(key, append(positions, pos))
			continue
		}
		tree.Insert(key, []int{pos})
	}
	return &PrefixIndex{tree: tree}
}

// Len returns the number of distinct keys.
func (ix *PrefixIndex) Len() int {
	return ix.tree.Len()
}

// Match returns every catalog key starting with prefix, one entry per
// record and in catalog order, exactly as a linear scan would. Keys shared
// by several records appear once per record.
func (ix *PrefixIndex) Match(prefix string) []string {
	type hit struct {
		key string
		pos int
	}

	var hits []hit
	ix.tree.WalkPrefix(prefix, func(key string, v interface{}) bool {
		positions, _ := v.([]int)
		for _, pos := range positions {
			hits = append(hits, hit{key: key, pos: pos})
		}
		return false
	})

	sort.Slice(hits, func(i, j int) bool {
		return hits[i].pos < hits[j].pos
	})

	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.key
	}
	return out
}
