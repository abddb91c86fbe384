// Package iordf reads the UniProt RDF/XML taxonomy dump into a
// taxonomy.Taxonomy.
//
// The document is consumed as a forward-only stream of XML tokens by an
// explicit state machine, so memory usage depends on the number of terms,
// not on the size of the document. Only a narrow vocabulary is
// recognized:
//
//	<rdf:Description rdf:about="9606">
//	  <rdf:type rdf:resource="http://purl.uniprot.org/core/Taxon"/>
//	  <rank rdf:resource="http://purl.uniprot.org/core/Species"/>
//	  <mnemonic>HUMAN</mnemonic>
//	  <scientificName>Homo sapiens</scientificName>
//	  <commonName>Human</commonName>
//	  <otherName>Home sapiens Linnaeus, 1758</otherName>
//	  <rdfs:subClassOf rdf:resource="9605"/>
//	</rdf:Description>
//
// Elements and attributes are matched by their local names.
package iordf

import (
	"encoding/xml"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	rdftaxon "github.com/gnames/rdftaxon/pkg"
	"github.com/gnames/rdftaxon/pkg/taxonomy"
	"golang.org/x/net/html/charset"
)

// local names of recognized elements and attributes
const (
	elDescription    = "Description"
	elType           = "type"
	elRank           = "rank"
	elMnemonic       = "mnemonic"
	elScientificName = "scientificName"
	elCommonName     = "commonName"
	elSynonym        = "synonym"
	elOtherName      = "otherName"
	elSubClassOf     = "subClassOf"

	attrAbout    = "about"
	attrResource = "resource"
)

// topTaxonClass marks a parent reference to the root of the hierarchy.
// It is matched case-insensitively anywhere in the resource, so both http
// and https schemes work.
const topTaxonClass = "purl.uniprot.org/core/taxon"

// DefaultStatusInterval is the time between two progress messages.
const DefaultStatusInterval = 2 * time.Second

// Parser fills a Taxonomy from an RDF/XML stream.
type Parser struct {
	tax *taxonomy.Taxonomy
	ntf rdftaxon.Notifier

	now            func() time.Time
	statusInterval time.Duration

	state    state
	about    string
	current  *taxonomy.Entry
	blockNum int

	start      time.Time
	lastStatus time.Time

	warnings int
}

// Option configures a Parser.
type Option func(*Parser)

// OptClock sets the source of the current time.
func OptClock(now func() time.Time) Option {
	return func(p *Parser) {
		if now != nil {
			p.now = now
		}
	}
}

// OptStatusInterval sets the time between progress messages.
// Zero or negative interval switches progress messages off.
func OptStatusInterval(d time.Duration) Option {
	return func(p *Parser) {
		p.statusInterval = d
	}
}

// New creates a Parser that adds entries to tax and reports to ntf.
func New(
	tax *taxonomy.Taxonomy,
	ntf rdftaxon.Notifier,
	opts ...Option,
) *Parser {
	res := &Parser{
		tax:            tax,
		ntf:            ntf,
		now:            time.Now,
		statusInterval: DefaultStatusInterval,
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Blocks returns the number of Description blocks seen so far.
func (p *Parser) Blocks() int {
	return p.blockNum
}

// Warnings returns the number of warnings issued so far.
func (p *Parser) Warnings() int {
	return p.warnings
}

// Parse reads the whole stream. Malformed blocks are skipped with a
// warning. An error is returned only if the stream itself cannot be
// read or is not well-formed XML.
func (p *Parser) Parse(r io.Reader) error {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	p.start = p.now()
	p.lastStatus = p.start

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return ParseError(p.blockNum, dec.InputOffset(), err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			err = p.startElement(dec, t)
		case xml.EndElement:
			p.endElement(t)
		}
		if err != nil {
			return ParseError(p.blockNum, dec.InputOffset(), err)
		}
	}

	slog.Info("RDF stream is parsed",
		"blocks", p.blockNum,
		"entries", p.tax.Len(),
		"warnings", p.warnings,
	)
	return nil
}

func (p *Parser) startElement(dec *xml.Decoder, se xml.StartElement) error {
	switch p.state {
	case stateIdle:
		if se.Name.Local == elDescription {
			p.openBlock(se)
		}
	case stateAwaitingType:
		switch se.Name.Local {
		case elDescription:
			p.openBlock(se)
		case elType:
			p.acceptBlock(se)
		}
	case stateInBlock:
		return p.field(dec, se)
	}
	return nil
}

func (p *Parser) endElement(ee xml.EndElement) {
	if p.state != stateInBlock || ee.Name.Local != elDescription {
		return
	}
	p.current = nil
	p.state = stateIdle
	p.progress()
}

// openBlock handles the start of a Description block.
func (p *Parser) openBlock(se xml.StartElement) {
	p.blockNum++
	p.state = stateIdle
	p.about = ""

	if len(se.Attr) == 0 {
		p.warn("rdf:Description %d does not have any attributes; skipping",
			p.blockNum)
		return
	}

	about, ok := attr(se, attrAbout)
	if !ok {
		p.warn("rdf:Description %d does not have attribute rdf:about",
			p.blockNum)
		return
	}

	p.about = about
	p.state = stateAwaitingType
}

// acceptBlock handles the type marker that follows the block opener and
// decides if the block describes a term.
func (p *Parser) acceptBlock(se xml.StartElement) {
	p.state = stateIdle

	if len(se.Attr) == 0 {
		p.warn("rdf:Description %d is not followed by a 'rdf:type' "+
			"element with attributes; skipping", p.blockNum)
		return
	}

	resource, ok := attr(se, attrResource)
	if !ok {
		p.warn("rdf:Description %d, element 'rdf:type' does not have "+
			"attribute rdf:resource", p.blockNum)
		return
	}

	// Strains without official taxonomy identifiers and images
	// (foaf/Image) are not taxonomy terms.
	entryType := afterLastSlash(resource)
	if strings.EqualFold(entryType, "Strain") ||
		strings.EqualFold(entryType, "Image") {
		return
	}

	id, err := strconv.Atoi(strings.TrimSpace(p.about))
	if err != nil {
		p.warn("rdf:Description %d, element 'rdf:about' does not have "+
			"a numeric value: %s; skipping", p.blockNum, p.about)
		return
	}

	entry := taxonomy.NewEntry(id, p.tax.NullMarker())
	if !p.tax.Add(entry) {
		p.warn("rdf:Description %d, identifier %d is already used; "+
			"skipping", p.blockNum, id)
		// the block is consumed, but the entry is not kept
	}

	p.current = entry
	p.state = stateInBlock
}

// field updates the current entry from a child element of the block.
func (p *Parser) field(dec *xml.Decoder, se xml.StartElement) error {
	e := p.current
	switch se.Name.Local {
	case elRank:
		rank, ok := attr(se, attrResource)
		if !ok {
			p.warn("rdf:Description %d, element 'rank' does not have "+
				"attribute 'rdf:resource'", p.blockNum)
			return nil
		}
		e.Rank = afterLastSlash(rank)
	case elMnemonic:
		return readText(dec, &e.Mnemonic)
	case elScientificName:
		return readText(dec, &e.Name)
	case elCommonName:
		return readText(dec, &e.CommonName)
	case elSynonym:
		return readText(dec, &e.Synonym)
	case elOtherName:
		var name string
		if err := readText(dec, &name); err != nil {
			return err
		}
		e.AddOtherName(name)
	case elSubClassOf:
		p.parent(se)
	}
	return nil
}

func (p *Parser) parent(se xml.StartElement) {
	resource, ok := attr(se, attrResource)
	if !ok {
		p.warn("rdf:Description %d does not have attribute 'rdf:resource'",
			p.blockNum)
		return
	}

	// cellular organisms, viruses, other sequences, unclassified
	// sequences are placed directly under the root
	if strings.Contains(strings.ToLower(resource), topTaxonClass) {
		p.current.ParentID = taxonomy.RootID
		return
	}

	id, err := strconv.Atoi(strings.TrimSpace(resource))
	if err != nil {
		p.warn("rdf:Description %d, element 'rdfs:subClassOf' does not "+
			"have a numeric value for the 'rdf:resource' attribute: %s",
			p.blockNum, resource)
		return
	}
	p.current.ParentID = id
}

func (p *Parser) progress() {
	if p.statusInterval <= 0 {
		return
	}
	now := p.now()
	if now.Sub(p.lastStatus) < p.statusInterval {
		return
	}
	p.lastStatus = now
	p.ntf.Status("Processed %s entries; %s",
		commaInt(p.blockNum), elapsed(now.Sub(p.start)))
}

func (p *Parser) warn(format string, args ...any) {
	p.warnings++
	p.ntf.Warning(format, args...)
}

// readText sets the value to the character data of the current element
// and consumes the element up to its end tag.
func readText(dec *xml.Decoder, value *string) error {
	var sb strings.Builder
	depth := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return io.ErrUnexpectedEOF
			}
			return err
		}
		switch t := tok.(type) {
		case xml.CharData:
			if depth == 0 {
				sb.Write(t)
			}
		case xml.StartElement:
			depth++
		case xml.EndElement:
			if depth == 0 {
				*value = sb.String()
				return nil
			}
			depth--
		}
	}
}

// attr finds an attribute by its local name.
func attr(se xml.StartElement, local string) (string, bool) {
	for _, a := range se.Attr {
		if a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

func afterLastSlash(s string) string {
	idx := strings.LastIndexByte(s, '/')
	if idx < 0 {
		return s
	}
	return s[idx+1:]
}
