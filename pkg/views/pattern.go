package views

import (
	"fmt"
	"net/url"
	"strings"
)

type segment struct {
	literal string
	param   string
}

func (s segment) isParam() bool {
	return s.param != ""
}

// pattern is a compiled route path. The root pattern "/" has no segments.
type pattern struct {
	raw      string
	segments []segment
}

func parsePattern(raw string) (pattern, error) {
	if !strings.HasPrefix(raw, "/") {
		return pattern{}, fmt.Errorf("%w: %q must start with /", ErrInvalidPattern, raw)
	}

	p := pattern{raw: raw}
	trimmed := strings.TrimSuffix(raw[1:], "/")
	if trimmed == "" {
		return p, nil
	}

	seen := make(map[string]bool)
	for part := range strings.SplitSeq(trimmed, "/") {
		if part == "" {
			return pattern{}, fmt.Errorf("%w: %q contains an empty segment", ErrInvalidPattern, raw)
		}

		name, ok := strings.CutPrefix(part, ":")
		if !ok {
			p.segments = append(p.segments, segment{literal: part})
			continue
		}

		if !validParamName(name) {
			return pattern{}, fmt.Errorf("%w: %q has invalid parameter name %q", ErrInvalidPattern, raw, name)
		}
		if seen[name] {
			return pattern{}, fmt.Errorf("%w: %q repeats parameter %q", ErrInvalidPattern, raw, name)
		}
		seen[name] = true
		p.segments = append(p.segments, segment{param: name})
	}

	return p, nil
}

func validParamName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

// shape erases parameter names and folds literal case so that /a/:x and
// /A/:y compare equal.
func (p pattern) shape() string {
	if len(p.segments) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, s := range p.segments {
		b.WriteByte('/')
		if s.isParam() {
			b.WriteByte(':')
		} else {
			b.WriteString(strings.ToLower(s.literal))
		}
	}
	return b.String()
}

func (p pattern) params() []string {
	var names []string
	for _, s := range p.segments {
		if s.isParam() {
			names = append(names, s.param)
		}
	}
	return names
}

// match compares escaped path parts against the pattern and returns the
// unescaped parameter values. Literal segments match case-insensitively;
// parameter values keep their case.
func (p pattern) match(parts []string) (map[string]string, bool) {
	if len(parts) != len(p.segments) {
		return nil, false
	}

	params := make(map[string]string, len(p.segments))
	for i, s := range p.segments {
		if !s.isParam() {
			if !strings.EqualFold(parts[i], s.literal) {
				return nil, false
			}
			continue
		}

		if parts[i] == "" {
			return nil, false
		}
		v, err := url.PathUnescape(parts[i])
		if err != nil {
			return nil, false
		}
		params[s.param] = v
	}

	return params, true
}

func (p pattern) build(params map[string]string) (string, error) {
	if len(p.segments) == 0 {
		return "/", nil
	}

	var b strings.Builder
	for _, s := range p.segments {
		b.WriteByte('/')
		if !s.isParam() {
			b.WriteString(s.literal)
			continue
		}
		v := params[s.param]
		if v == "" {
			return "", fmt.Errorf("%w: %s", ErrMissingParam, s.param)
		}
		b.WriteString(url.PathEscape(v))
	}
	return b.String(), nil
}

// compare orders patterns so that, among patterns with the same segment
// count, a static segment outranks a parameter at the first position where
// they differ.
func compare(a, b pattern) int {
	if len(a.segments) != len(b.segments) {
		return len(a.segments) - len(b.segments)
	}
	for i := range a.segments {
		ap, bp := a.segments[i].isParam(), b.segments[i].isParam()
		switch {
		case ap == bp:
			continue
		case bp:
			return -1
		default:
			return 1
		}
	}
	return 0
}

func splitPath(path string) ([]string, bool) {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		path = "/"
	}
	if !strings.HasPrefix(path, "/") {
		return nil, false
	}
	if len(path) > 1 && !strings.HasSuffix(path, "//") {
		path = strings.TrimSuffix(path, "/")
	}
	if path == "/" {
		return nil, true
	}
	return strings.Split(path[1:], "/"), true
}
