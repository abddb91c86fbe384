package tabular

import (
	"strings"

	"github.com/gnames/gnlib"
	"github.com/gnames/rdftaxon/pkg/config"
)

// Separator divides fields of a line.
const Separator = "\t"

// delimiters would break the column layout if left inside a field.
var delimiters = strings.NewReplacer("\t", " ", "\r\n", " ", "\n", " ", "\r", " ")

// Formatter converts fields into a line of a tab-delimited file.
type Formatter struct {
	null     string
	postgres bool
}

// NewFormatter creates a Formatter for the output configuration.
func NewFormatter(o config.OutputConfig) Formatter {
	return Formatter{null: o.NullMarker(), postgres: o.Postgres}
}

// Line joins fields with tabs. When a null marker is set, the line is
// padded with it up to width fields. In Postgres mode backslashes are
// doubled in every field that is not the null sentinel.
func (f Formatter) Line(fields []string, width int) string {
	res := make([]string, 0, max(width, len(fields)))
	for _, v := range fields {
		res = append(res, f.field(v))
	}

	if f.null != "" {
		for len(res) < width {
			res = append(res, f.null)
		}
	}

	return strings.Join(res, Separator)
}

func (f Formatter) field(s string) string {
	if f.postgres && s == config.PostgresNull {
		return s
	}

	s = gnlib.FixUtf8(s)
	s = delimiters.Replace(s)

	if f.postgres {
		s = strings.ReplaceAll(s, `\`, `\\`)
	}
	return s
}
