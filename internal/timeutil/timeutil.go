package timeutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

func ParseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, errors.New("empty duration string")
	}

	if dur, err := time.ParseDuration(s); err == nil {
		return dur, nil
	}

	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return 0, fmt.Errorf("invalid duration format: %s", s)
	}

	numStr := s[:len(s)-1]
	unit := s[len(s)-1:]

	num, err := strconv.ParseInt(numStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid duration number: %s", numStr)
	}

	switch unit {
	case "d":
		return time.Duration(num) * 24 * time.Hour, nil
	case "w":
		return time.Duration(num) * 7 * 24 * time.Hour, nil
	default:
		return 0, fmt.Errorf("unknown duration unit: %s", unit)
	}
}

// Bound is a point in time that is either absolute or an offset from "now".
type Bound struct {
	Absolute time.Time
	Offset   time.Duration
	Relative bool
}

// Resolve returns the instant the bound denotes at now.
func (b Bound) Resolve(now time.Time) time.Time {
	if b.Relative {
		return now.Add(b.Offset)
	}
	return b.Absolute
}

// ParseBound accepts RFC3339, a plain date (2006-01-02), "now", or a signed
// offset such as -7d, +2h, -1w.
func ParseBound(s string) (Bound, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Bound{}, errors.New("empty time string")
	}
	if s == "now" {
		return Bound{Relative: true}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return Bound{Absolute: t}, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return Bound{Absolute: t}, nil
	}

	if !strings.HasPrefix(s, "-") && !strings.HasPrefix(s, "+") {
		return Bound{}, fmt.Errorf("relative time must start with + or -: %s", s)
	}

	isNegative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimPrefix(s, "+")

	dur, err := ParseDuration(s)
	if err != nil {
		return Bound{}, err
	}
	if isNegative {
		dur = -dur
	}
	return Bound{Offset: dur, Relative: true}, nil
}

var namedLayouts = map[string]string{
	"rfc3339":  time.RFC3339,
	"rfc3339n": time.RFC3339Nano,
	"date":     time.DateOnly,
	"datetime": time.DateTime,
	"time":     time.TimeOnly,
}

// javaTokens maps date pattern letters, longest first, to Go layout elements.
var javaTokens = []struct{ from, to string }{
	{"yyyy", "2006"}, {"yy", "06"},
	{"MMMM", "January"}, {"MMM", "Jan"}, {"MM", "01"},
	{"dd", "02"}, {"HH", "15"}, {"hh", "03"},
	{"mm", "04"}, {"ss", "05"}, {"SSS", "000"},
	{"a", "PM"}, {"EEEE", "Monday"}, {"EEE", "Mon"},
	{"XXX", "Z07:00"}, {"Z", "-0700"},
}

// Layout resolves a named layout, a Java-style pattern (yyyy-MM-dd HH:mm:ss),
// or a Go layout into a Go layout. The unix and unix_ms names are returned as-is
// and handled by Format.
func Layout(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.New("empty layout")
	}
	if l, ok := namedLayouts[strings.ToLower(name)]; ok {
		return l, nil
	}
	switch strings.ToLower(name) {
	case "unix", "unix_ms":
		return strings.ToLower(name), nil
	}
	if strings.Contains(name, "2006") || strings.Contains(name, "15:04") {
		return name, nil
	}

	var b strings.Builder
	converted := false
	for i := 0; i < len(name); {
		matched := false
		for _, tok := range javaTokens {
			if strings.HasPrefix(name[i:], tok.from) {
				b.WriteString(tok.to)
				i += len(tok.from)
				matched = true
				converted = true
				break
			}
		}
		if !matched {
			b.WriteByte(name[i])
			i++
		}
	}
	if !converted {
		return "", fmt.Errorf("unrecognized layout: %s", name)
	}
	return b.String(), nil
}

// Format renders t with a layout returned by Layout.
func Format(t time.Time, layout string) string {
	switch layout {
	case "unix":
		return strconv.FormatInt(t.Unix(), 10)
	case "unix_ms":
		return strconv.FormatInt(t.UnixMilli(), 10)
	default:
		return t.Format(layout)
	}
}
