// Package taxonomy keeps the terms of a taxonomy in memory and answers
// questions about their hierarchy.
package taxonomy

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

const (
	// NoParentID means the parent of a term is unknown.
	NoParentID = 0

	// RootID is the identifier of the top of the hierarchy. Terms that
	// are subclasses of the top-level taxon class point to it, even if
	// the source has no entry with this identifier.
	RootID = 1

	// RootName is the name of the synthesized root.
	RootName = "root"
)

// Entry is one taxonomic term.
type Entry struct {
	// ID is the taxonomy identifier; it never changes.
	ID int

	// Name is the scientific name.
	Name string

	CommonName string

	Synonym string

	// Mnemonic is a five letter abbreviation of the scientific name.
	//
	// Examples:
	//
	//	MOUSE: Mus musculus
	//	HUMAN: Homo sapiens
	//	FELCA: Felis catus (domestic cat)
	//	CANLF: Canis lupus familiaris (dog)
	Mnemonic string

	// Rank is superkingdom, family, genus, species, etc.
	Rank string

	// IsLeaf is true if no other term has this term as a parent.
	// It is only valid after Taxonomy.MarkLeaves.
	IsLeaf bool

	// ParentID is the identifier of the parent term, NoParentID if
	// unknown, RootID for top-level terms (cellular organisms, viruses,
	// other sequences, unclassified sequences).
	ParentID int

	otherNames map[string]struct{}
}

// NewEntry creates an entry where every text field is set to the given
// null marker.
func NewEntry(id int, nullMarker string) *Entry {
	return &Entry{
		ID:         id,
		Name:       nullMarker,
		CommonName: nullMarker,
		Synonym:    nullMarker,
		Mnemonic:   nullMarker,
		Rank:       nullMarker,
		otherNames: make(map[string]struct{}),
	}
}

// AddOtherName records an alternate name. Blank names are ignored.
func (e *Entry) AddOtherName(name string) {
	if strings.TrimSpace(name) == "" {
		return
	}
	if e.otherNames == nil {
		e.otherNames = make(map[string]struct{})
	}
	e.otherNames[name] = struct{}{}
}

// OtherNames returns alternate names in lexicographic order.
func (e *Entry) OtherNames() []string {
	return slices.Sorted(maps.Keys(e.otherNames))
}

// HasParent is true when the parent of the entry is known.
func (e *Entry) HasParent() bool {
	return e.ParentID > NoParentID
}

// String shows identifier and name.
func (e *Entry) String() string {
	return strconv.Itoa(e.ID) + ": " + e.Name
}
