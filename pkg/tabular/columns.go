// Package tabular projects taxonomy entries into rows of a tab-delimited
// table.
//
// The layout of the taxonomy table is an ordered list of column
// descriptors. Each descriptor knows whether it is enabled for a given
// output configuration and how to compute its value, so the header and
// every row are produced by walking the same list.
package tabular

import (
	"strconv"
	"strings"

	"github.com/gnames/rdftaxon/pkg/config"
	"github.com/gnames/rdftaxon/pkg/taxonomy"
)

// Lineage is an entry together with its resolved ancestors. Parent and
// Grandparent are nil when they are unknown.
type Lineage struct {
	Term        *taxonomy.Entry
	Parent      *taxonomy.Entry
	Grandparent *taxonomy.Entry
}

// Column describes one column of the taxonomy table.
type Column struct {
	// Header is the name of the column in the header line.
	Header string

	// Enabled reports if the column is written for the configuration.
	Enabled func(o config.OutputConfig) bool

	// Value computes the field for a lineage.
	Value func(p *Projector, l Lineage) string
}

// Columns is the complete ordered layout of the taxonomy table.
var Columns = []Column{
	{
		Header:  "Term_PK",
		Enabled: always,
		Value: func(p *Projector, l Lineage) string {
			return strconv.Itoa(l.Term.ID) + p.suffix
		},
	},
	{
		Header:  "Term_Name",
		Enabled: always,
		Value: func(p *Projector, l Lineage) string {
			return p.orNull(l.Term.Name)
		},
	},
	{
		Header:  "Identifier",
		Enabled: always,
		Value: func(_ *Projector, l Lineage) string {
			return strconv.Itoa(l.Term.ID)
		},
	},
	{
		Header:  "Is_Leaf",
		Enabled: always,
		Value: func(_ *Projector, l Lineage) string {
			if l.Term.IsLeaf {
				return "1"
			}
			return "0"
		},
	},
	{
		Header:  "Rank",
		Enabled: func(o config.OutputConfig) bool { return o.WithRank },
		Value: func(p *Projector, l Lineage) string {
			return p.orNull(l.Term.Rank)
		},
	},
	{
		Header:  "Parent_Term_Name",
		Enabled: config.OutputConfig.HasParents,
		Value: func(p *Projector, l Lineage) string {
			return p.name(l.Parent)
		},
	},
	{
		Header:  "Parent_Term_ID",
		Enabled: config.OutputConfig.HasParents,
		Value: func(p *Projector, l Lineage) string {
			return p.id(l.Parent)
		},
	},
	{
		Header:  "Grandparent_Term_Name",
		Enabled: func(o config.OutputConfig) bool { return o.WithGrandparents },
		Value: func(p *Projector, l Lineage) string {
			return p.name(l.Grandparent)
		},
	},
	{
		Header:  "Grandparent_Term_ID",
		Enabled: func(o config.OutputConfig) bool { return o.WithGrandparents },
		Value: func(p *Projector, l Lineage) string {
			return p.id(l.Grandparent)
		},
	},
	{
		Header:  "Common_Name",
		Enabled: func(o config.OutputConfig) bool { return o.WithCommonName },
		Value: func(p *Projector, l Lineage) string {
			return p.orNull(l.Term.CommonName)
		},
	},
	{
		Header:  "Synonym",
		Enabled: func(o config.OutputConfig) bool { return o.WithSynonym },
		Value: func(p *Projector, l Lineage) string {
			return p.orNull(l.Term.Synonym)
		},
	},
	{
		Header:  "Mnemonic",
		Enabled: func(o config.OutputConfig) bool { return o.WithMnemonic },
		Value: func(p *Projector, l Lineage) string {
			return p.orNull(l.Term.Mnemonic)
		},
	},
}

func always(config.OutputConfig) bool { return true }

// Projector builds header and rows of the taxonomy table for one output
// configuration.
type Projector struct {
	null    string
	suffix  string
	columns []Column
}

// NewProjector selects the columns enabled by the output configuration.
func NewProjector(o config.OutputConfig) *Projector {
	res := &Projector{
		null:   o.NullMarker(),
		suffix: strings.TrimSpace(o.PrimaryKeySuffix),
	}
	for _, c := range Columns {
		if c.Enabled(o) {
			res.columns = append(res.columns, c)
		}
	}
	return res
}

// Header returns the names of the enabled columns.
func (p *Projector) Header() []string {
	res := make([]string, len(p.columns))
	for i, c := range p.columns {
		res[i] = c.Header
	}
	return res
}

// Width returns the number of enabled columns.
func (p *Projector) Width() int {
	return len(p.columns)
}

// Row returns the fields of a lineage for the enabled columns.
func (p *Projector) Row(l Lineage) []string {
	res := make([]string, len(p.columns))
	for i, c := range p.columns {
		res[i] = c.Value(p, l)
	}
	return res
}

func (p *Projector) orNull(s string) string {
	if strings.TrimSpace(s) == "" {
		return p.null
	}
	return s
}

func (p *Projector) name(e *taxonomy.Entry) string {
	if e == nil {
		return p.null
	}
	return p.orNull(e.Name)
}

func (p *Projector) id(e *taxonomy.Entry) string {
	if e == nil {
		return p.null
	}
	return strconv.Itoa(e.ID)
}
