package ioenrich

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gntaxobox/pkg/errcode"
)

func TaxonomyDBOpenError(path string, err error) error {
	msg := "Cannot open taxonomy index <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TaxonomyDBOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot open %s: %w", fn, path, err),
	}
}

func TaxonomyDBSchemaError(path string, err error) error {
	msg := "Cannot create tables of taxonomy index <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TaxonomyDBSchemaError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot create schema: %w", fn, err),
	}
}

func TaxonomyDBQueryError(key string, err error) error {
	msg := "Cannot query taxonomy index for <em>%s</em>"
	vars := []any{key}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TaxonomyDBQueryError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot query %s: %w", fn, key, err),
	}
}

func TaxonomyDBInsertError(err error) error {
	msg := "Cannot save taxonomy entries"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TaxonomyDBInsertError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: cannot insert entries: %w", fn, err),
	}
}

func TaxonomyIngestError(path string, err error) error {
	msg := "Cannot build taxonomy index <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TaxonomyIngestError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot ingest: %w", fn, err),
	}
}
