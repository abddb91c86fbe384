package tabular_test

import (
	"strings"
	"testing"

	"github.com/gnames/rdftaxon/pkg/config"
	"github.com/gnames/rdftaxon/pkg/tabular"
	"github.com/gnames/rdftaxon/pkg/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func outputConfig(opts ...config.Option) config.OutputConfig {
	cfg := config.New()
	cfg.Update(opts)
	return cfg.Output
}

func humanLineage(null string) tabular.Lineage {
	e := taxonomy.NewEntry(9606, null)
	e.Name = "Homo sapiens"
	e.Rank = "Species"
	e.CommonName = "Human"
	e.Mnemonic = "HUMAN"
	e.ParentID = 9605
	e.IsLeaf = true

	p := taxonomy.NewEntry(9605, null)
	p.Name = "Homo"
	p.ParentID = 207598

	gp := taxonomy.NewEntry(207598, null)
	gp.Name = "Homininae"

	return tabular.Lineage{Term: e, Parent: p, Grandparent: gp}
}

func TestHeaderDefault(t *testing.T) {
	p := tabular.NewProjector(outputConfig())
	assert.Equal(t, []string{
		"Term_PK", "Term_Name", "Identifier", "Is_Leaf", "Rank",
		"Parent_Term_Name", "Parent_Term_ID",
		"Grandparent_Term_Name", "Grandparent_Term_ID",
		"Common_Name", "Synonym", "Mnemonic",
	}, p.Header())
	assert.Equal(t, 12, p.Width())
}

func TestHeaderMinimal(t *testing.T) {
	o := outputConfig(
		config.OptWithRank(false),
		config.OptWithParents(false),
		config.OptWithGrandparents(false),
		config.OptWithCommonName(false),
		config.OptWithSynonym(false),
		config.OptWithMnemonic(false),
	)
	p := tabular.NewProjector(o)
	assert.Equal(t,
		[]string{"Term_PK", "Term_Name", "Identifier", "Is_Leaf"},
		p.Header(),
	)
}

func TestGrandparentsForceParents(t *testing.T) {
	o := outputConfig(
		config.OptWithParents(false),
		config.OptWithGrandparents(true),
	)
	header := tabular.NewProjector(o).Header()
	assert.Contains(t, header, "Parent_Term_Name")
	assert.Contains(t, header, "Parent_Term_ID")
	assert.Contains(t, header, "Grandparent_Term_Name")
	assert.Contains(t, header, "Grandparent_Term_ID")
}

func TestRowDefault(t *testing.T) {
	p := tabular.NewProjector(outputConfig())
	row := p.Row(humanLineage(""))
	assert.Equal(t, []string{
		"9606NEWT1", "Homo sapiens", "9606", "1", "Species",
		"Homo", "9605", "Homininae", "207598",
		"Human", "", "HUMAN",
	}, row)
}

func TestRowMissingAncestors(t *testing.T) {
	tests := []struct {
		name   string
		prep   func(l *tabular.Lineage)
		expect []string
	}{
		{
			name: "no parent",
			prep: func(l *tabular.Lineage) {
				l.Parent = nil
				l.Grandparent = nil
			},
			expect: []string{`\N`, `\N`, `\N`, `\N`},
		},
		{
			name: "no grandparent",
			prep: func(l *tabular.Lineage) {
				l.Grandparent = nil
			},
			expect: []string{"Homo", "9605", `\N`, `\N`},
		},
	}

	o := outputConfig(config.OptPostgres(true))
	p := tabular.NewProjector(o)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := humanLineage(`\N`)
			tt.prep(&l)
			row := p.Row(l)
			require.Len(t, row, p.Width())
			assert.Equal(t, tt.expect, row[5:9])
		})
	}
}

func TestRowPrimaryKeySuffix(t *testing.T) {
	tests := []struct {
		name   string
		suffix string
		pk     string
	}{
		{"default", "NEWT1", "9606NEWT1"},
		{"custom", "UNI", "9606UNI"},
		{"empty", "", "9606"},
		{"whitespace", "   ", "9606"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := outputConfig(config.OptPrimaryKeySuffix(tt.suffix))
			row := tabular.NewProjector(o).Row(humanLineage(""))
			assert.Equal(t, tt.pk, row[0])
		})
	}
}

func TestRowBlankValuesBecomeNull(t *testing.T) {
	o := outputConfig(config.OptPostgres(true))
	l := humanLineage(`\N`)
	l.Term.Name = "  "
	l.Term.Rank = ""
	l.Term.IsLeaf = false
	row := tabular.NewProjector(o).Row(l)
	assert.Equal(t, `\N`, row[1])
	assert.Equal(t, "0", row[3])
	assert.Equal(t, `\N`, row[4])
}

func TestRowWidthInvariant(t *testing.T) {
	lineages := []tabular.Lineage{
		humanLineage(""),
		{Term: taxonomy.NewEntry(1, "")},
		{Term: taxonomy.NewEntry(2, ""), Parent: taxonomy.NewEntry(1, "")},
	}

	// every combination of six toggles and two null markers
	for mask := range 1 << 7 {
		bit := func(i int) bool { return mask&(1<<i) != 0 }
		o := outputConfig(
			config.OptWithRank(bit(0)),
			config.OptWithParents(bit(1)),
			config.OptWithGrandparents(bit(2)),
			config.OptWithCommonName(bit(3)),
			config.OptWithSynonym(bit(4)),
			config.OptWithMnemonic(bit(5)),
			config.OptPostgres(bit(6)),
		)
		p := tabular.NewProjector(o)
		f := tabular.NewFormatter(o)
		width := len(strings.Split(f.Line(p.Header(), p.Width()), "\t"))
		for _, l := range lineages {
			line := f.Line(p.Row(l), p.Width())
			assert.Equal(t, width, len(strings.Split(line, "\t")),
				"mask %07b, line %q", mask, line)
		}
	}
}

func TestFormatterLine(t *testing.T) {
	tests := []struct {
		name     string
		postgres bool
		fields   []string
		width    int
		expected string
	}{
		{
			name:     "plain fields",
			fields:   []string{"a", "b"},
			width:    2,
			expected: "a\tb",
		},
		{
			name:     "no padding without null marker",
			fields:   []string{"a"},
			width:    3,
			expected: "a",
		},
		{
			name:     "padding with null marker",
			postgres: true,
			fields:   []string{"a"},
			width:    3,
			expected: "a\t\\N\t\\N",
		},
		{
			name:     "backslashes doubled in postgres mode",
			postgres: true,
			fields:   []string{`a\b`, `\\`},
			width:    2,
			expected: `a\\b` + "\t" + `\\\\`,
		},
		{
			name:     "null sentinel is not escaped",
			postgres: true,
			fields:   []string{`\N`, `x\N`},
			width:    2,
			expected: `\N` + "\t" + `x\\N`,
		},
		{
			name:     "backslashes kept without postgres",
			fields:   []string{`a\b`},
			width:    1,
			expected: `a\b`,
		},
		{
			name:     "delimiters inside fields are replaced",
			fields:   []string{"a\tb", "c\nd"},
			width:    2,
			expected: "a b\tc d",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tabular.NewFormatter(outputConfig(config.OptPostgres(tt.postgres)))
			assert.Equal(t, tt.expected, f.Line(tt.fields, tt.width))
		})
	}
}

func TestRetainedOtherNames(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "authority year variant dropped",
			input:    []string{"Agromonas", "Agromonas Ohta and Hattori 1985"},
			expected: []string{"Agromonas"},
		},
		{
			name:     "unrelated names kept",
			input:    []string{"House mouse", "Mus musculus"},
			expected: []string{"House mouse", "Mus musculus"},
		},
		{
			name: "year after comma",
			input: []string{
				"Eriophorum crinigerum (A.Gray) Beetle",
				"Eriophorum crinigerum (A.Gray) Beetle, 1942",
			},
			expected: []string{"Eriophorum crinigerum (A.Gray) Beetle"},
		},
		{
			name: "prefix without year kept",
			input: []string{
				"Sarcobium",
				"Sarcobium lyticum",
			},
			expected: []string{"Sarcobium", "Sarcobium lyticum"},
		},
		{
			name:     "year without prefix kept",
			input:    []string{"Abc", "Xyz Smith 1900"},
			expected: []string{"Abc", "Xyz Smith 1900"},
		},
		{
			name:     "year out of range kept",
			input:    []string{"Abc", "Abc Smith 3001"},
			expected: []string{"Abc", "Abc Smith 3001"},
		},
		{
			name:     "compares with last written name",
			input:    []string{"Abc", "Abc Smith 1900", "Abc Smith 1900 emend. 1950"},
			expected: []string{"Abc"},
		},
		{
			name:     "first name is always kept",
			input:    []string{"Abc Smith 1900"},
			expected: []string{"Abc Smith 1900"},
		},
		{
			name:     "empty input",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tabular.RetainedOtherNames(tt.input))
		})
	}
}

func TestOtherNameRows(t *testing.T) {
	e := taxonomy.NewEntry(10090, "")
	e.AddOtherName("Mus musculus")
	e.AddOtherName("House mouse")
	e.AddOtherName("Mus musculus Linnaeus 1758")

	rows := tabular.OtherNameRows(e)
	assert.Equal(t, [][]string{
		{"10090", "House mouse"},
		{"10090", "Mus musculus"},
	}, rows)

	assert.Nil(t, tabular.OtherNameRows(taxonomy.NewEntry(1, "")))
	assert.Equal(t, []string{"Identifier", "Other_Name"}, tabular.OtherNamesHeader)
}
