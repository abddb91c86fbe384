package iordf

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/rdftaxon/pkg/errcode"
)

// ParseError creates an error for an XML stream that cannot be read
// or is not well-formed.
func ParseError(blockNum int, offset int64, err error) error {
	msg := `Cannot parse RDF/XML taxonomy

<em>Last rdf:Description:</em> %d
<em>Byte offset:</em> %d

<em>Possible causes:</em>
  - File is truncated or corrupted
  - File is not an RDF/XML document`

	vars := []any{blockNum, offset}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ParseXMLError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot parse XML after block %d: %w",
			fn.Name(), blockNum, err),
	}
}
