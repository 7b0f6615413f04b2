package augip

import "github.com/augfold/nfold/vecint"

// frontierEntry is one live node of a layer: the residual key that reached
// it, the best prefix weight known for that key, and the path-store index of
// the node holding the last chosen column value on the winning path.
type frontierEntry struct {
	key    vecint.Vector
	weight int64
	node   int
}

// frontier maps residual keys to frontierEntry, keeping insertion order so
// that iteration - and therefore which source produces a tie-breaking
// "first wins" result - is deterministic across runs. A plain Go map's
// randomized iteration order would make that tie-break unreproducible.
type frontier struct {
	entries []frontierEntry
	index   map[uint64][]int
}

func newFrontier() *frontier {
	return &frontier{index: make(map[uint64][]int)}
}

// find returns the entry for key, if present.
func (f *frontier) find(key vecint.Vector) (frontierEntry, bool) {
	h := key.Hash()
	for _, i := range f.index[h] {
		if f.entries[i].key.Equal(key) {
			return f.entries[i], true
		}
	}

	return frontierEntry{}, false
}

// insert adds a brand-new entry for key (the caller must have already
// confirmed key is absent).
func (f *frontier) insert(key vecint.Vector, weight int64, node int) {
	h := key.Hash()
	idx := len(f.entries)
	f.entries = append(f.entries, frontierEntry{key: key, weight: weight, node: node})
	f.index[h] = append(f.index[h], idx)
}

// overwrite replaces the weight/node of the existing entry for key in place,
// preserving its position in the iteration order.
func (f *frontier) overwrite(key vecint.Vector, weight int64, node int) {
	h := key.Hash()
	for _, i := range f.index[h] {
		if f.entries[i].key.Equal(key) {
			f.entries[i].weight = weight
			f.entries[i].node = node

			return
		}
	}
	panic("augip: overwrite: key not present in frontier")
}

// all returns the entries in deterministic insertion order.
func (f *frontier) all() []frontierEntry {
	return f.entries
}

// size reports the number of live entries.
func (f *frontier) size() int {
	return len(f.entries)
}
