package iofs

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gntaxobox/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	cause := errors.New("permission denied")
	tests := []struct {
		msg  string
		err  error
		code gn.ErrorCode
		path string
		text string
	}{
		{"create dir", CreateDirError("/test/dir", cause), errcode.CreateDirError,
			"/test/dir", "cannot create"},
		{"copy file", CopyFileError("/test/config.yaml", cause), errcode.CopyFileError,
			"/test/config.yaml", "cannot copy"},
		{"read file", ReadFileError("/test/dump.xml", cause), errcode.ReadFileError,
			"/test/dump.xml", "cannot read /test/dump.xml"},
		{"create file", CreateFileError("/test/taxa.jsonl", cause), errcode.CreateFileError,
			"/test/taxa.jsonl", "cannot create /test/taxa.jsonl"},
	}

	for _, v := range tests {
		var gnErr *gn.Error
		require.ErrorAs(t, v.err, &gnErr, v.msg)
		assert.Equal(t, v.code, gnErr.Code, v.msg)
		assert.Contains(t, gnErr.Msg, "%s", v.msg)
		assert.Equal(t, []any{v.path}, gnErr.Vars, v.msg)
		assert.ErrorIs(t, gnErr.Err, cause, v.msg)
		assert.Contains(t, gnErr.Err.Error(), "from ", v.msg)
		assert.Contains(t, gnErr.Err.Error(), v.text, v.msg)
	}
}
