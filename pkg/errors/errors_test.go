package errors_test

import (
	"errors"
	"testing"

	pkgerrors "github.com/bodtour/bracketfix/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestFormatError(t *testing.T) {
	t.Run("with file", func(t *testing.T) {
		err := &pkgerrors.FormatError{
			File:    "06-07-2014.json",
			Entries: 20,
		}
		assert.Equal(t, "unrecognized record format in 06-07-2014.json (20 entries scanned)", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrFormatUnknown))
	})

	t.Run("without file", func(t *testing.T) {
		err := pkgerrors.NewFormatError("", 5)
		assert.Equal(t, "unrecognized record format (5 entries scanned)", err.Error())
		assert.True(t, pkgerrors.IsFormatUnknown(err))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewFormatError("x.json", 0)
		wrapped := errors.Join(errors.New("loading tournament"), base)
		assert.True(t, pkgerrors.IsFormatUnknown(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "seed",
			Message: "must be positive",
		}
		assert.Equal(t, "validation failed for field seed: must be positive", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Message: "record has no identity",
		}
		assert.Equal(t, "validation failed: record has no identity", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewValidationError("matchup", 17, "exceeds bracket size")
		assert.Contains(t, err.Error(), "matchup")
		assert.Contains(t, err.Error(), "exceeds bracket size")
	})
}

func TestParseError(t *testing.T) {
	t.Run("with file", func(t *testing.T) {
		base := errors.New("unexpected end of JSON input")
		err := pkgerrors.NewParseError("json", "07-12-2023.json", base.Error(), base)
		assert.Contains(t, err.Error(), "07-12-2023.json")
		assert.Contains(t, err.Error(), "unexpected end of JSON input")
		assert.Equal(t, base, errors.Unwrap(err))
	})

	t.Run("without file", func(t *testing.T) {
		err := pkgerrors.NewParseError("yaml", "", "bad indent", nil)
		assert.Equal(t, "yaml parse error: bad indent", err.Error())
	})
}

func TestIOError(t *testing.T) {
	base := errors.New("permission denied")
	err := pkgerrors.NewIOError("write", "/json/fixed/06-07-2014.json", base)
	assert.Contains(t, err.Error(), "write")
	assert.Contains(t, err.Error(), "/json/fixed/06-07-2014.json")
	assert.Equal(t, base, errors.Unwrap(err))
}

func TestReconcileError(t *testing.T) {
	t.Run("with teams", func(t *testing.T) {
		base := errors.New("no score claims")
		err := pkgerrors.NewReconcileError("06-07-2014", []string{"Ash & Bill", "Cal & Dee"}, base)
		assert.Contains(t, err.Error(), "06-07-2014")
		assert.Contains(t, err.Error(), "Ash & Bill")
		assert.Equal(t, base, errors.Unwrap(err))
	})

	t.Run("without teams", func(t *testing.T) {
		err := pkgerrors.NewReconcileError("06-07-2014", nil, errors.New("boom"))
		assert.Equal(t, "reconcile error for 06-07-2014: boom", err.Error())
	})
}

func TestWrapHelpers(t *testing.T) {
	t.Run("nil errors pass through", func(t *testing.T) {
		require.NoError(t, pkgerrors.WrapIO("read", "file", nil))
		require.NoError(t, pkgerrors.WrapParse("json", "file", nil))
		require.NoError(t, pkgerrors.WrapValidation("field", nil))
	})

	t.Run("wrap IO", func(t *testing.T) {
		err := pkgerrors.WrapIO("copy", "backup/a.json", errors.New("disk full"))
		var ioErr *pkgerrors.IOError
		require.True(t, errors.As(err, &ioErr))
		assert.Equal(t, "copy", ioErr.Operation)
	})

	t.Run("wrap validation", func(t *testing.T) {
		err := pkgerrors.WrapValidation("opponent", errors.New("missing"))
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}
