package headers

import (
	"errors"
	"strings"

	sberrors "github.com/WhileEndless/go-sbnet/pkg/errors"
)

// ErrHeaderNotFound is returned by lookups that find no matching header
var ErrHeaderNotFound = errors.New("header not found")

// ParseBlock parses a header block of "Name: Value" lines separated by '\n'.
// Each line is split on its first colon. A line without a colon makes the
// whole block invalid.
func ParseBlock(block string) (List, error) {
	if block == "" {
		return List{}, nil
	}

	lines := strings.Split(block, "\n")
	entries := make([]Header, 0, len(lines))

	for _, line := range lines {
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			return List{}, sberrors.NewError(sberrors.ErrorTypeMalformedHeader,
				"header line without colon: "+line, "parseBlock", []byte(block))
		}
		entries = append(entries, NewHeader(name, value))
	}

	return List{entries: entries}, nil
}
