package response

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/WhileEndless/go-sbnet/pkg/errors"
	"github.com/WhileEndless/go-sbnet/pkg/headers"
)

// NotFoundStatus is used when the status line carries no numeric code
const NotFoundStatus = 404

// Parse parses raw HTTP response text.
//
// The status line ends at the first '\n' and the header block at the first
// blank line ("\n\n"), or immediately when the status line is followed by an
// empty line. Without a blank line there are no headers and the rest
// of the text is the body. A "\n\r" sequence is read as a plain newline so
// servers that transpose CRLF are tolerated.
func Parse(raw string) (*Response, error) {
	text := strings.ReplaceAll(strings.TrimLeftFunc(raw, unicode.IsSpace), "\n\r", "\n")

	statusLine, rest, ok := strings.Cut(text, "\n")
	if !ok {
		return nil, errors.NewError(errors.ErrorTypeInvalidResponse,
			"invalid HTTP response: no status line terminator", "parse", []byte(raw))
	}

	var headerBlock, body string
	if strings.HasPrefix(rest, "\n") {
		body = rest[1:]
	} else if headerBlock, body, ok = strings.Cut(rest, "\n\n"); !ok {
		headerBlock, body = "", rest
	}

	hs, err := headers.ParseBlock(headerBlock)
	if err != nil {
		return nil, err
	}

	resp := &Response{
		headers: hs,
		body:    body,
		raw:     raw,
	}
	resp.parseStatusLine(statusLine)

	return resp, nil
}

// parseStatusLine splits the status line on single spaces. Only the first
// word of the reason phrase is kept.
func (r *Response) parseStatusLine(line string) {
	parts := strings.Split(strings.TrimRight(line, "\r"), " ")

	r.version = parts[0]
	r.statusCode = NotFoundStatus

	if len(parts) > 1 {
		if code, err := strconv.ParseUint(parts[1], 10, 32); err == nil {
			r.statusCode = int(code)
		}
	}

	if len(parts) > 2 {
		r.reason = parts[2]
	}
}
