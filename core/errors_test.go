package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = errors.New("sentinel")

func TestWrapErrorKeepsChain(t *testing.T) {
	err := WrapError(errSentinel, EINVALID, "bad input in line %d", 3)
	assert.True(t, errors.Is(err, errSentinel))
	assert.Equal(t, EINVALID, Code(err))
	assert.Equal(t, "bad input in line 3", UserMessage(err))
	assert.Equal(t, "[123] sentinel", err.Error())
}

func TestCodeThroughFmtWrapping(t *testing.T) {
	err := fmt.Errorf("page index.md: %w", ErrorWithCode(errSentinel, EMISSING))
	assert.Equal(t, EMISSING, Code(err))
	assert.Equal(t, "not found", UserMessage(err))
	assert.True(t, errors.Is(err, errSentinel))
}

func TestCodeOfPlainAndNilErrors(t *testing.T) {
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, EINTERNAL, Code(errSentinel))
	assert.Equal(t, "internal error", UserMessage(errSentinel))
}

func TestWrapNilError(t *testing.T) {
	err := WrapError(nil, EIO, "cannot write %s", "x.html")
	assert.Equal(t, "[124] i/o error", err.Error())
	assert.Equal(t, "cannot write x.html", UserMessage(err))
	err = Error(EMISSING, "no such file")
	assert.Equal(t, EMISSING, Code(err))
}
