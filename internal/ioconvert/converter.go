// Package ioconvert runs a complete conversion of an RDF taxonomy file
// into tab-delimited tables.
package ioconvert

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gnfmt"
	"github.com/gnames/rdftaxon/internal/iordf"
	"github.com/gnames/rdftaxon/internal/iotsv"
	rdftaxon "github.com/gnames/rdftaxon/pkg"
	"github.com/gnames/rdftaxon/pkg/config"
	"github.com/gnames/rdftaxon/pkg/taxonomy"
)

type converter struct {
	cfg *config.Config
	ntf rdftaxon.Notifier
}

// New creates a Converter for the configuration. Notifications of all
// phases go to ntf.
func New(cfg *config.Config, ntf rdftaxon.Notifier) rdftaxon.Converter {
	return &converter{cfg: cfg, ntf: ntf}
}

// Convert reads the RDF file, builds the taxonomy and writes the tables.
// The other names table is attempted only after the taxonomy table was
// written successfully.
func (c *converter) Convert(inputPath string) error {
	start := time.Now()
	o := c.cfg.Output

	inputPath = strings.TrimSpace(inputPath)
	size, err := c.checkInput(inputPath)
	if err != nil {
		c.ntf.Error(err)
		return err
	}

	outPath := OutputPath(inputPath, c.cfg.OutputPath)
	c.ntf.Status("Input RDF file: <em>%s</em>", inputPath)
	c.ntf.Status("Output file: <em>%s</em>", outPath)
	c.warnOverwrite(outPath)

	slog.Info("Starting conversion",
		"input", inputPath,
		"output", outPath,
		"postgres", o.Postgres,
		"other_names", o.WithOtherNames,
	)

	tax := taxonomy.New(o.NullMarker())
	if err = c.parse(inputPath, size, tax); err != nil {
		c.ntf.Error(err)
		return err
	}

	leaves := tax.MarkLeaves()
	c.ntf.Status("Found %s taxonomy entries, of which %s are leaf nodes",
		humanize.Comma(int64(tax.Len())), humanize.Comma(int64(leaves)))

	c.ntf.Status("Creating <em>%s</em>", outPath)
	if _, err = iotsv.WriteTaxonomy(outPath, tax, o); err != nil {
		c.writeFailed(outPath, err)
		return err
	}

	if o.WithOtherNames {
		onPath := OtherNamesPath(outPath, c.cfg.OtherNamesPath)
		c.warnOverwrite(onPath)
		c.ntf.Status("Creating <em>%s</em>", onPath)
		if _, err = iotsv.WriteOtherNames(onPath, tax, o); err != nil {
			c.writeFailed(onPath, err)
			return err
		}
	}

	c.ntf.Status("Conversion is complete")
	dur := time.Since(start)
	slog.Info("Conversion is complete",
		"entries", tax.Len(),
		"leaves", leaves,
		"duration", gnfmt.TimeString(dur.Seconds()),
	)
	return nil
}

// checkInput makes sure the input is an existing regular file and
// returns its size.
func (c *converter) checkInput(path string) (int64, error) {
	if path == "" {
		return 0, InputMissingError()
	}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, InputNotFoundError(path, err)
	}
	if err != nil {
		return 0, InputOpenError(path, err)
	}
	if info.IsDir() {
		return 0, InputOpenError(path, errors.New("path is a directory"))
	}
	return info.Size(), nil
}

func (c *converter) parse(
	path string,
	size int64,
	tax *taxonomy.Taxonomy,
) error {
	f, err := os.Open(path)
	if err != nil {
		return InputOpenError(path, err)
	}
	defer f.Close()

	var opts []iordf.Option
	withBar := c.cfg.WithProgressBar && !c.cfg.Quiet
	if withBar {
		// the bar replaces periodic status lines
		opts = append(opts, iordf.OptStatusInterval(0))
	}

	r, finish := trackReader(f, size, withBar)
	defer finish()

	p := iordf.New(tax, c.ntf, opts...)
	return p.Parse(r)
}

func (c *converter) warnOverwrite(path string) {
	if fileExists(path) {
		c.ntf.Warning("Existing file <em>%s</em> will be overwritten", path)
	}
}

func (c *converter) writeFailed(path string, err error) {
	c.ntf.Error(err)
	c.ntf.Warning("Error creating file <em>%s</em>", path)
}
