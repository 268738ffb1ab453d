package ioextract

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gntaxobox/pkg/errcode"
)

func ExtractReadDumpError(err error) error {
	msg := "Cannot read the dump"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ExtractReadDumpError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: cannot decode dump: %w", fn, err),
	}
}

func ExtractSinkError(title string, err error) error {
	msg := "Cannot write the record of <em>%s</em>"
	vars := []any{title}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ExtractSinkError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot write record: %w", fn, err),
	}
}
