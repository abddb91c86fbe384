package taxonomy

import (
	"iter"
)

// Taxonomy is an insert-only collection of entries keyed by identifier.
// It remembers the order of insertion, so iteration is deterministic.
type Taxonomy struct {
	nullMarker string
	entries    map[int]*Entry
	order      []int
}

// New creates an empty Taxonomy. The null marker is used for the fields
// of the synthesized root.
func New(nullMarker string) *Taxonomy {
	return &Taxonomy{
		nullMarker: nullMarker,
		entries:    make(map[int]*Entry),
	}
}

// NullMarker returns the value used for missing data.
func (t *Taxonomy) NullMarker() string {
	return t.nullMarker
}

// Add inserts an entry. It returns false and keeps the existing entry if
// the identifier is already taken.
func (t *Taxonomy) Add(e *Entry) bool {
	if _, ok := t.entries[e.ID]; ok {
		return false
	}
	t.entries[e.ID] = e
	t.order = append(t.order, e.ID)
	return true
}

// Get returns the entry with the given identifier.
func (t *Taxonomy) Get(id int) (*Entry, bool) {
	e, ok := t.entries[id]
	return e, ok
}

// Len returns the number of entries.
func (t *Taxonomy) Len() int {
	return len(t.order)
}

// All iterates over entries in insertion order.
func (t *Taxonomy) All() iter.Seq[*Entry] {
	return func(yield func(*Entry) bool) {
		for _, id := range t.order {
			if !yield(t.entries[id]) {
				return
			}
		}
	}
}

// MarkLeaves sets IsLeaf for every entry and returns the number of
// leaves. An entry is a leaf if its identifier is not a ParentID of any
// entry. It must be called after all entries are added.
func (t *Taxonomy) MarkLeaves() int {
	parents := make(map[int]struct{}, len(t.entries))
	for _, e := range t.entries {
		parents[e.ParentID] = struct{}{}
	}

	var res int
	for _, e := range t.entries {
		_, isParent := parents[e.ID]
		e.IsLeaf = !isParent
		if e.IsLeaf {
			res++
		}
	}
	return res
}

// Ancestor returns the entry with the given identifier. If there is no
// such entry and the identifier is RootID, a root entry is synthesized.
func (t *Taxonomy) Ancestor(id int) (*Entry, bool) {
	if e, ok := t.entries[id]; ok {
		return e, true
	}

	if id == RootID {
		root := NewEntry(RootID, t.nullMarker)
		root.Name = RootName
		return root, true
	}

	return nil, false
}

// Lineage returns the parent and the grandparent of an entry. Missing
// ancestors are nil.
func (t *Taxonomy) Lineage(e *Entry) (parent, grandparent *Entry) {
	if !e.HasParent() {
		return nil, nil
	}

	parent, ok := t.Ancestor(e.ParentID)
	if !ok {
		return nil, nil
	}

	if !parent.HasParent() {
		return parent, nil
	}

	grandparent, ok = t.Ancestor(parent.ParentID)
	if !ok {
		return parent, nil
	}
	return parent, grandparent
}
