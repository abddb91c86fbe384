// Package iotsv writes taxonomy tables as tab-delimited text files.
package iotsv

import (
	"bufio"
	"log/slog"
	"os"

	"github.com/gnames/rdftaxon/pkg/config"
	"github.com/gnames/rdftaxon/pkg/tabular"
	"github.com/gnames/rdftaxon/pkg/taxonomy"
)

// WriteTaxonomy creates the taxonomy table at path, replacing an existing
// file. It returns the number of data lines written.
func WriteTaxonomy(
	path string,
	tax *taxonomy.Taxonomy,
	o config.OutputConfig,
) (int, error) {
	proj := tabular.NewProjector(o)
	fmtr := tabular.NewFormatter(o)
	width := proj.Width()

	var count int
	err := writeTable(path, func(w *bufio.Writer) error {
		if err := writeLine(w, fmtr.Line(proj.Header(), width)); err != nil {
			return err
		}

		for e := range tax.All() {
			parent, grand := tax.Lineage(e)
			row := proj.Row(tabular.Lineage{
				Term:        e,
				Parent:      parent,
				Grandparent: grand,
			})
			if err := writeLine(w, fmtr.Line(row, width)); err != nil {
				return err
			}
			count++
		}
		return nil
	})
	if err != nil {
		return count, err
	}

	slog.Info("Taxonomy table is written", "path", path, "rows", count)
	return count, nil
}

// WriteOtherNames creates the other names table at path, replacing an
// existing file. It returns the number of data lines written.
func WriteOtherNames(
	path string,
	tax *taxonomy.Taxonomy,
	o config.OutputConfig,
) (int, error) {
	fmtr := tabular.NewFormatter(o)
	width := len(tabular.OtherNamesHeader)

	var count int
	err := writeTable(path, func(w *bufio.Writer) error {
		line := fmtr.Line(tabular.OtherNamesHeader, width)
		if err := writeLine(w, line); err != nil {
			return err
		}

		for e := range tax.All() {
			for _, row := range tabular.OtherNameRows(e) {
				if err := writeLine(w, fmtr.Line(row, width)); err != nil {
					return err
				}
				count++
			}
		}
		return nil
	})
	if err != nil {
		return count, err
	}

	slog.Info("Other names table is written", "path", path, "rows", count)
	return count, nil
}

// writeTable opens path for writing, lets fill write the content and
// closes the file on every exit.
func writeTable(path string, fill func(*bufio.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return OutputCreateError(path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = OutputWriteError(path, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if err = fill(w); err != nil {
		return OutputWriteError(path, err)
	}

	if err = w.Flush(); err != nil {
		return OutputWriteError(path, err)
	}
	return nil
}

func writeLine(w *bufio.Writer, line string) error {
	if _, err := w.WriteString(line); err != nil {
		return err
	}
	return w.WriteByte('\n')
}
