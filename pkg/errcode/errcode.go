// Package errcode enumerates codes of errors that reach users.
package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	CreateFileError

	// Logging errors
	CreateLogFileError

	// Configuration errors
	ConfigReadError
	ConfigUnmarshalError

	// Taxonomy index errors
	TaxonomyDBOpenError
	TaxonomyDBSchemaError
	TaxonomyDBQueryError
	TaxonomyDBInsertError
	TaxonomyIngestError

	// Extraction errors
	ExtractReadDumpError
	ExtractSinkError
)
