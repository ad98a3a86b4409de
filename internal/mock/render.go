package mock

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PlaceholderError wraps the failure of one ${rule} placeholder.
type PlaceholderError struct {
	Offset int
	Rule   string
	Err    error
}

func (e *PlaceholderError) Error() string {
	return fmt.Sprintf("placeholder ${%s} at offset %d: %v", e.Rule, e.Offset, e.Err)
}

func (e *PlaceholderError) Unwrap() error { return e.Err }

// Render replaces every ${rule} placeholder in body with a generated value.
func (d *Dispatcher) Render(body string) (string, error) {
	return d.render(body, false)
}

// RenderJSON is Render for JSON documents. A placeholder that is the whole
// content of a string literal, as in "${int|1-9}", is written without the
// quotes when it produces a number or bool. Any other placeholder inside a
// string literal is JSON-escaped.
func (d *Dispatcher) RenderJSON(body string) (string, error) {
	return d.render(body, true)
}

func (d *Dispatcher) render(body string, jsonMode bool) (string, error) {
	var b strings.Builder
	b.Grow(len(body))

	var lit literalState
	i := 0
	for i < len(body) {
		start := strings.Index(body[i:], "${")
		if start < 0 {
			b.WriteString(body[i:])
			break
		}
		start += i
		end := closingBrace(body, start+2)
		if end < 0 {
			b.WriteString(body[i:])
			break
		}
		rule := body[start+2 : end]

		val, err := d.Produce(rule)
		if err != nil {
			return "", &PlaceholderError{Offset: start, Rule: rule, Err: err}
		}

		if jsonMode {
			lit.scan(body, i, start)
		}
		whole := jsonMode && lit.inString && lit.openedAt == start-1 &&
			end+1 < len(body) && body[end+1] == '"'
		switch {
		case whole && isBare(val):
			// drop the surrounding quotes
			b.WriteString(body[i : start-1])
			b.WriteString(FormatValue(val))
			lit.inString = false
			i = end + 2
			continue
		case jsonMode && lit.inString:
			b.WriteString(body[i:start])
			b.WriteString(escapeJSON(FormatValue(val)))
		default:
			b.WriteString(body[i:start])
			b.WriteString(FormatValue(val))
		}
		i = end + 1
	}
	return b.String(), nil
}

// literalState follows JSON string literals across the template text
// between placeholders. Placeholder text itself is never scanned.
type literalState struct {
	inString bool
	escaped  bool
	openedAt int
}

func (s *literalState) scan(body string, from, to int) {
	for j := from; j < to; j++ {
		c := body[j]
		switch {
		case s.escaped:
			s.escaped = false
		case s.inString && c == '\\':
			s.escaped = true
		case c == '"':
			s.inString = !s.inString
			if s.inString {
				s.openedAt = j
			}
		}
	}
}

// Placeholders lists the rules embedded in body, in order.
func Placeholders(body string) []string {
	var rules []string
	i := 0
	for {
		start := strings.Index(body[i:], "${")
		if start < 0 {
			return rules
		}
		start += i
		end := closingBrace(body, start+2)
		if end < 0 {
			return rules
		}
		rules = append(rules, body[start+2:end])
		i = end + 1
	}
}

// closingBrace returns the index of the '}' that closes a placeholder opened
// just before from, honoring nested braces such as regex quantifiers.
func closingBrace(s string, from int) int {
	depth := 0
	for j := from; j < len(s); j++ {
		switch s[j] {
		case '{':
			depth++
		case '}':
			if depth == 0 {
				return j
			}
			depth--
		}
	}
	return -1
}

func isBare(val interface{}) bool {
	switch val.(type) {
	case int, int64, float64, bool:
		return true
	}
	return false
}

func escapeJSON(s string) string {
	data, err := json.Marshal(s)
	if err != nil {
		return s
	}
	return string(data[1 : len(data)-1])
}
