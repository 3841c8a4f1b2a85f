package markdown

import (
	"errors"
	"testing"

	"github.com/npillmayer/mdsite/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTitle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdsite.markdown")
	defer teardown()
	//
	for _, tc := range []struct {
		md, title string
	}{
		{"# Title\n\nSome **bold** text", "Title"},
		{"intro\n\n  #   Spaced  \n", "Spaced"},
		{"## Sub\n\n# Main", "Main"},
		{"# First\n# Second", "First"},
		{"# Hello\r\n\r\nworld", "Hello"},
	} {
		title, err := ExtractTitle(tc.md)
		require.NoError(t, err, tc.md)
		assert.Equal(t, tc.title, title)
	}
}

func TestExtractTitleWithoutHeading(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdsite.markdown")
	defer teardown()
	//
	for _, md := range []string{"", "no heading", "## only h2", "#NoSpace"} {
		_, err := ExtractTitle(md)
		assert.True(t, errors.Is(err, ErrNoHeading), md)
		assert.Equal(t, core.EINVALID, core.Code(err))
	}
}
