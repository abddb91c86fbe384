package ioconvert_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/rdftaxon/internal/ioconvert"
	"github.com/gnames/rdftaxon/internal/iotesting"
	"github.com/gnames/rdftaxon/pkg/config"
	"github.com/gnames/rdftaxon/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRDF = "testdata/taxonomy.rdf"

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func gnCode(t *testing.T, err error) gn.ErrorCode {
	t.Helper()
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr), "error should be *gn.Error")
	return gnErr.Code
}

func TestConvertSample(t *testing.T) {
	out := filepath.Join(t.TempDir(), "taxonomy_info.txt")
	cfg := iotesting.GetTestConfig(config.OptOutputPath(out))
	rec := iotesting.NewRecorder()

	err := ioconvert.New(cfg, rec).Convert(sampleRDF)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Term_PK\tTerm_Name\tIdentifier\tIs_Leaf\tRank\t" +
			"Parent_Term_Name\tParent_Term_ID\t" +
			"Grandparent_Term_Name\tGrandparent_Term_ID\t" +
			"Common_Name\tSynonym\tMnemonic",
		"131567NEWT1\tcellular organisms\t131567\t0\t\troot\t1\t\t\t\t\t",
		"9605NEWT1\tHomo\t9605\t0\tGenus\tcellular organisms\t131567\t" +
			"root\t1\thumans\t\t",
		"9606NEWT1\tHomo sapiens\t9606\t1\tSpecies\tHomo\t9605\t" +
			"cellular organisms\t131567\tHuman\t\tHUMAN",
		"10090NEWT1\tMus musculus\t10090\t1\tSpecies\t\t\t\t\t" +
			"Mouse\tMus sp. 129SV\tMOUSE",
	}, readLines(t, out))

	otherNames := filepath.Join(filepath.Dir(out), "taxonomy_info_OtherNames.txt")
	assert.Equal(t, []string{
		"Identifier\tOther_Name",
		"131567\tbiota",
		"9606\tHomo sapiens",
		"9606\tman",
		"10090\thouse mouse",
	}, readLines(t, otherNames))

	assert.True(t, rec.HasStatus("Found 4 taxonomy entries, of which 2 are leaf nodes"))
	assert.True(t, rec.HasStatus("Conversion is complete"))
	require.Len(t, rec.Warnings(), 1)
	assert.Contains(t, rec.Warnings()[0], "unknown")
	assert.Empty(t, rec.Errors())
}

func TestConvertHuman(t *testing.T) {
	dir := t.TempDir()
	input := iotesting.WriteTempFile(t, dir, "human.rdf",
		`<?xml version="1.0" encoding="UTF-8"?>
<rdf:RDF xmlns="http://purl.uniprot.org/core/"
  xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
  xmlns:rdfs="http://www.w3.org/2000/01/rdf-schema#">
<rdf:Description rdf:about="9606">
  <rdf:type rdf:resource="http://purl.uniprot.org/core/Taxon"/>
  <rank rdf:resource="http://purl.uniprot.org/core/Species"/>
  <scientificName>Homo sapiens</scientificName>
  <rdfs:subClassOf rdf:resource="http://purl.uniprot.org/core/Taxon"/>
</rdf:Description>
</rdf:RDF>
`)
	cfg := iotesting.GetTestConfig(
		config.OptWithGrandparents(false),
		config.OptWithCommonName(false),
		config.OptWithSynonym(false),
		config.OptWithMnemonic(false),
		config.OptWithOtherNames(false),
	)

	err := ioconvert.New(cfg, iotesting.NewRecorder()).Convert(input)
	require.NoError(t, err)

	out := filepath.Join(dir, "human_info.txt")
	lines := readLines(t, out)
	require.Len(t, lines, 2)
	assert.Equal(t,
		"9606NEWT1\tHomo sapiens\t9606\t1\tSpecies\troot\t1", lines[1])

	_, err = os.Stat(filepath.Join(dir, "human_info_OtherNames.txt"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestConvertPostgres(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "pg.tsv")
	cfg := iotesting.GetTestConfig(
		config.OptPostgres(true),
		config.OptOutputPath(out),
		config.OptOtherNamesPath(filepath.Join(dir, "names.tsv")),
	)

	err := ioconvert.New(cfg, iotesting.NewRecorder()).Convert(sampleRDF)
	require.NoError(t, err)

	lines := readLines(t, out)
	require.Len(t, lines, 5)
	assert.Equal(t,
		"10090NEWT1\tMus musculus\t10090\t1\tSpecies\t\\N\t\\N\t\\N\t\\N\t"+
			"Mouse\tMus sp. 129SV\tMOUSE",
		lines[4],
	)
	assert.Len(t, readLines(t, filepath.Join(dir, "names.tsv")), 5)
}

func TestConvertOverwriteWarning(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(out, []byte("old\n"), 0644))
	cfg := iotesting.GetTestConfig(
		config.OptOutputPath(out),
		config.OptWithOtherNames(false),
	)
	rec := iotesting.NewRecorder()

	require.NoError(t, ioconvert.New(cfg, rec).Convert(sampleRDF))
	assert.True(t, rec.HasWarning("will be overwritten"))
	assert.Len(t, readLines(t, out), 5)
}

func TestConvertInputErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  gn.ErrorCode
	}{
		{"empty path", "  ", errcode.InputMissingError},
		{"missing file", filepath.Join(t.TempDir(), "none.rdf"), errcode.InputNotFoundError},
		{"directory", t.TempDir(), errcode.InputOpenError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := iotesting.NewRecorder()
			err := ioconvert.New(iotesting.GetTestConfig(), rec).Convert(tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.code, gnCode(t, err))
			require.Len(t, rec.Errors(), 1)
			assert.Empty(t, rec.Statuses())
		})
	}
}

func TestConvertInvalidXML(t *testing.T) {
	dir := t.TempDir()
	input := iotesting.WriteTempFile(t, dir, "bad.rdf",
		"<rdf:RDF><rdf:Description></rdf:RDF>")
	rec := iotesting.NewRecorder()

	err := ioconvert.New(iotesting.GetTestConfig(), rec).Convert(input)
	require.Error(t, err)
	assert.Equal(t, errcode.ParseXMLError, gnCode(t, err))

	_, err = os.Stat(filepath.Join(dir, "bad_info.txt"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestConvertOutputError(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "missing", "out.txt")
	cfg := iotesting.GetTestConfig(config.OptOutputPath(out))
	rec := iotesting.NewRecorder()

	err := ioconvert.New(cfg, rec).Convert(sampleRDF)
	require.Error(t, err)
	assert.Equal(t, errcode.OutputCreateError, gnCode(t, err))
	assert.True(t, rec.HasWarning("Error creating file"))
	assert.False(t, rec.HasStatus("Conversion is complete"))

	_, err = os.Stat(filepath.Join(dir, "missing", "out_OtherNames.txt"))
	assert.Error(t, err)
}

func TestConvertOtherNamesError(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")
	cfg := iotesting.GetTestConfig(
		config.OptOutputPath(out),
		config.OptOtherNamesPath(filepath.Join(dir, "missing", "names.txt")),
	)
	rec := iotesting.NewRecorder()

	err := ioconvert.New(cfg, rec).Convert(sampleRDF)
	require.Error(t, err)
	assert.Equal(t, errcode.OutputCreateError, gnCode(t, err))
	assert.Len(t, readLines(t, out), 5)
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		explicit string
		res      string
	}{
		{"default", "/data/taxonomy.rdf", "", "/data/taxonomy_info.txt"},
		{"no extension", "/data/taxonomy", "", "/data/taxonomy_info.txt"},
		{"relative", "taxonomy.rdf", "", "taxonomy_info.txt"},
		{"explicit", "/data/taxonomy.rdf", "/tmp/out.tsv", "/tmp/out.tsv"},
		{"blank explicit", "/data/taxonomy.rdf", " ", "/data/taxonomy_info.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.res, ioconvert.OutputPath(tt.input, tt.explicit))
		})
	}
}

func TestOtherNamesPath(t *testing.T) {
	assert.Equal(t, "/data/t_info_OtherNames.txt",
		ioconvert.OtherNamesPath("/data/t_info.txt", ""))
	assert.Equal(t, "/data/out_OtherNames",
		ioconvert.OtherNamesPath("/data/out", ""))
	assert.Equal(t, "/tmp/names.txt",
		ioconvert.OtherNamesPath("/data/t_info.txt", "/tmp/names.txt"))
}
