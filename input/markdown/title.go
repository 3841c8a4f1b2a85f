package markdown

import (
	"errors"
	"strings"

	"github.com/npillmayer/mdsite/core"
)

// ErrNoHeading is returned by ExtractTitle for documents without a level-1
// heading.
var ErrNoHeading = errors.New("markdown: no level-1 heading")

// ExtractTitle returns the text of the first level-1 heading, i.e. of the
// first line which, after trimming, starts with "# ".
func ExtractTitle(doc string) (string, error) {
	for _, line := range strings.Split(doc, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(line[2:]), nil
		}
	}
	return "", core.WrapError(ErrNoHeading, core.EINVALID, "document has no '# ' heading")
}
