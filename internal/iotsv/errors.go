package iotsv

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/rdftaxon/pkg/errcode"
)

func OutputCreateError(path string, err error) error {
	msg := "Error creating file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.OutputCreateError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot create %s: %w",
			fn.Name(), path, err),
	}
}

func OutputWriteError(path string, err error) error {
	msg := "Error writing to file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.OutputWriteError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot write to %s: %w",
			fn.Name(), path, err),
	}
}
