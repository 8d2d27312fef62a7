package iofs

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spinsolve/nmrpath/pkg/errcode"
)

// TestCreateDirError_Structure verifies error structure.
func TestCreateDirError_Structure(t *testing.T) {
	testDir := "/test/config"
	originalErr := errors.New("permission denied")

	err := CreateDirError(testDir, originalErr)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "error should be of type *gn.Error")

	assert.Equal(t, errcode.CreateDirError, gnErr.Code)
	require.Len(t, gnErr.Vars, 1)
	assert.Equal(t, testDir, gnErr.Vars[0])
	assert.ErrorIs(t, gnErr.Err, originalErr,
		"should wrap original error")
}

// TestErrorFunctions_Wrapping verifies every constructor preserves its
// cause and carries its code.
func TestErrorFunctions_Wrapping(t *testing.T) {
	originalErr := errors.New("disk full")

	tests := []struct {
		name  string
		error error
		code  gn.ErrorCode
	}{
		{
			"create dir",
			CreateDirError("/test/dir", originalErr),
			errcode.CreateDirError,
		},
		{
			"copy file",
			CopyFileError("/test/file", originalErr),
			errcode.CopyFileError,
		},
		{
			"read file",
			ReadFileError("/test/file", originalErr),
			errcode.ReadFileError,
		},
		{
			"write file",
			WriteFileError("/test/file", originalErr),
			errcode.WriteFileError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gnErr, ok := tt.error.(*gn.Error)
			require.True(t, ok, "error should be of type *gn.Error")
			assert.Equal(t, tt.code, gnErr.Code)
			assert.ErrorIs(t, gnErr.Err, originalErr)
			// Caller info is baked into the wrapped error.
			assert.Contains(t, gnErr.Err.Error(), "from ")
		})
	}
}
