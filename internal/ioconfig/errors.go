package ioconfig

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gntaxobox/pkg/errcode"
)

func ConfigReadError(path string, err error) error {
	msg := "Cannot read config file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ConfigReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read config: %w", fn, err),
	}
}

func ConfigUnmarshalError(path string, err error) error {
	msg := "Config file <em>%s</em> has wrong format"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ConfigUnmarshalError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot unmarshal config: %w", fn, err),
	}
}
