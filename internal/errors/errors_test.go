package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorMessage(t *testing.T) {
	err := New(CodeParseError, "bad input")
	assert.Equal(t, "bad input", err.Error())
	assert.Equal(t, CodeParseError, GetCode(err))
}

func TestWrapPreservesCode(t *testing.T) {
	inner := ParseError("row 3 malformed")
	wrapped := Wrap(inner, "failed to parse upload")

	assert.Equal(t, CodeParseError, GetCode(wrapped))
	assert.Equal(t, "failed to parse upload: row 3 malformed", wrapped.Error())
	assert.True(t, stderrors.Is(wrapped, inner))
}

func TestWrapForeignError(t *testing.T) {
	inner := fmt.Errorf("disk full")
	wrapped := Wrapf(inner, "failed to write %s", "report")

	assert.Equal(t, CodeInternalError, GetCode(wrapped))
	assert.Equal(t, "failed to write report: disk full", wrapped.Error())
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
}

func TestGetCodeUnknown(t *testing.T) {
	assert.Equal(t, "UNKNOWN", GetCode(fmt.Errorf("plain")))
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, CodeNotFound, GetCode(NotFound("chart")))
	assert.Equal(t, "chart not found", NotFound("chart").Error())
	assert.Equal(t, CodeInvalidInput, GetCode(InvalidInput("empty table")))
	assert.Equal(t, CodeValidationError, GetCode(ValidationError("bad config")))
	assert.Equal(t, CodeConfigInvalid, GetCode(ConfigInvalid("bad port")))
	assert.Equal(t, CodeDatabaseError, GetCode(DatabaseError("down")))
}
