package xkindle_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ygolovnia/xkindle"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := xkindle.Errorf(xkindle.ENOTFOUND, "article %q not found", "test")

	assert.Equal(t, xkindle.ENOTFOUND, xkindle.ErrorCode(err))
	assert.Equal(t, "article \"test\" not found", xkindle.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, xkindle.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, xkindle.ErrorMessage(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, xkindle.EINTERNAL, xkindle.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "An unexpected error occurred.", xkindle.ErrorMessage(errors.New("boom")))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("outer: %w", xkindle.Errorf(xkindle.EINVALID, "bad input"))

	assert.Equal(t, xkindle.EINVALID, xkindle.ErrorCode(err))
	assert.Equal(t, "bad input", xkindle.ErrorMessage(err))
}
