package headers

import "strings"

// Header represents a single HTTP header
type Header struct {
	Name  string
	Value string
}

// NewHeader creates a Header with surrounding whitespace removed from both parts
func NewHeader(name, value string) Header {
	return Header{
		Name:  strings.TrimSpace(name),
		Value: strings.TrimSpace(value),
	}
}

// List preserves the order of HTTP headers as they appeared on the wire.
// Duplicates are kept; lookups are case-sensitive and the first match wins.
type List struct {
	entries []Header
}

// NewList creates a List holding the given headers in order
func NewList(hs ...Header) List {
	entries := make([]Header, len(hs))
	copy(entries, hs)
	return List{entries: entries}
}

// Get returns the value of the first header named exactly name
func (l List) Get(name string) (string, bool) {
	for _, h := range l.entries {
		if h.Name == name {
			return h.Value, true
		}
	}
	return "", false
}

// Values returns every value for name in source order
func (l List) Values(name string) []string {
	var values []string
	for _, h := range l.entries {
		if h.Name == name {
			values = append(values, h.Value)
		}
	}
	return values
}

// Has checks if a header named exactly name exists
func (l List) Has(name string) bool {
	_, ok := l.Get(name)
	return ok
}

// All returns a copy of all headers in their original order
func (l List) All() []Header {
	out := make([]Header, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of headers
func (l List) Len() int {
	return len(l.entries)
}
