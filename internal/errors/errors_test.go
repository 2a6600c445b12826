package errors

import (
	"bytes"
	stdErrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocConfError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *DocConfError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(CategoryConfig, SeverityFatal, "configuration invalid"),
			expected: "config (fatal): configuration invalid",
		},
		{
			name:     "error with cause",
			err:      Wrap(fmt.Errorf("file not found"), CategoryConfig, SeverityFatal, "failed to load config"),
			expected: "config (fatal): failed to load config: file not found",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.err.Error())
		})
	}
}

func TestDocConfError_WithContext(t *testing.T) {
	err := New(CategoryDoxygen, SeverityWarning, "doxygen run failed").
		WithContext("command", "doxygen").
		WithContext("dir", "../doxygen")

	require.NotNil(t, err.Context)
	assert.Equal(t, "doxygen", err.Context["command"])
	assert.Equal(t, "../doxygen", err.Context["dir"])
}

func TestTemplateNotFoundUnwrapsToNotExist(t *testing.T) {
	err := TemplateNotFound("Doxyfile.in", fs.ErrNotExist)
	wrapped := fmt.Errorf("configure: %w", err)

	assert.True(t, stdErrors.Is(wrapped, fs.ErrNotExist))
	assert.True(t, IsCategory(wrapped, CategoryFileSystem))
	assert.Equal(t, CategoryFileSystem, GetCategory(wrapped))
}

func TestGetCategoryDefaultsToInternal(t *testing.T) {
	assert.Equal(t, CategoryInternal, GetCategory(fmt.Errorf("plain")))
	assert.False(t, IsCategory(fmt.Errorf("plain"), CategoryConfig))
}

func TestCLIErrorAdapter_ExitCodes(t *testing.T) {
	a := NewCLIErrorAdapter(false, nil)

	cases := map[string]struct {
		err  error
		code int
	}{
		"nil":        {nil, 0},
		"plain":      {fmt.Errorf("boom"), 1},
		"validation": {ValidationFailed("project.name", "empty"), 2},
		"config":     {ConfigInvalid("docconf.yaml", fmt.Errorf("bad yaml")), 7},
		"doxygen":    {DoxygenFailed("doxygen", fmt.Errorf("exit 1")), 8},
		"filesystem": {TemplateNotFound("x", fs.ErrNotExist), 11},
		"internal":   {InternalError("oops", nil), 10},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.code, a.ExitCodeFor(tc.err))
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	quiet := NewCLIErrorAdapter(false, nil)
	loud := NewCLIErrorAdapter(true, nil)

	cfgErr := ConfigExists("docconf.yaml")
	assert.Equal(t, cfgErr.Message, quiet.FormatError(cfgErr))
	assert.Equal(t, cfgErr.Error(), loud.FormatError(cfgErr))

	fsErr := TemplateNotFound("Doxyfile.in", fs.ErrNotExist)
	assert.Equal(t, "filesystem: doxygen template not found", quiet.FormatError(fsErr))

	valErr := ValidationFailed("project.name", "must not be empty")
	assert.Equal(t, "validation failed: project.name must not be empty", quiet.FormatError(valErr))
	assert.Equal(t, "validation failed: project.name must not be empty",
		quiet.FormatError(fmt.Errorf("load docconf.yaml: %w", valErr)))
	assert.Equal(t, "validation failed", quiet.FormatError(New(CategoryValidation, SeverityFatal, "validation failed")))

	assert.Equal(t, "Error: boom", quiet.FormatError(fmt.Errorf("boom")))
	assert.Empty(t, quiet.FormatError(nil))
}

func TestCLIErrorAdapter_HandleError(t *testing.T) {
	var logs, out bytes.Buffer
	a := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(&logs, nil)))
	a.out = &out
	code := -1
	a.exit = func(c int) { code = c }

	a.HandleError(TemplateNotFound("Doxyfile.in", fs.ErrNotExist))

	assert.Equal(t, 11, code)
	assert.Contains(t, out.String(), "doxygen template not found")
	assert.Contains(t, logs.String(), "category=filesystem")
	assert.Contains(t, logs.String(), "path=Doxyfile.in")
}
