package dom

import (
	"fmt"
	"strings"
)

// Selector is a compiled subset of CSS selectors: tag, #id and .class
// parts, compound selectors, the descendant combinator and comma groups.
// That covers every selector the board controller needs.
type Selector struct {
	groups [][]simple
}

type simple struct {
	tag     string
	id      string
	classes []string
}

// Compile parses a selector like "div.card img, #hand .card".
func Compile(selector string) (Selector, error) {
	var sel Selector
	for _, group := range strings.Split(selector, ",") {
		fields := strings.Fields(group)
		if len(fields) == 0 {
			return Selector{}, fmt.Errorf("empty selector in %q", selector)
		}
		chain := make([]simple, 0, len(fields))
		for _, f := range fields {
			s, err := parseSimple(f)
			if err != nil {
				return Selector{}, err
			}
			chain = append(chain, s)
		}
		sel.groups = append(sel.groups, chain)
	}
	return sel, nil
}

// MustCompile is Compile for selectors known at compile time.
func MustCompile(selector string) Selector {
	sel, err := Compile(selector)
	if err != nil {
		panic(err)
	}
	return sel
}

func parseSimple(s string) (simple, error) {
	var out simple
	rest := s
	for rest != "" {
		switch rest[0] {
		case '.':
			name, tail := splitToken(rest[1:])
			if name == "" {
				return simple{}, fmt.Errorf("malformed selector part %q", s)
			}
			out.classes = append(out.classes, name)
			rest = tail
		case '#':
			name, tail := splitToken(rest[1:])
			if name == "" || out.id != "" {
				return simple{}, fmt.Errorf("malformed selector part %q", s)
			}
			out.id = name
			rest = tail
		default:
			name, tail := splitToken(rest)
			if name == "" || out.tag != "" {
				return simple{}, fmt.Errorf("malformed selector part %q", s)
			}
			out.tag = name
			rest = tail
		}
	}
	return out, nil
}

func splitToken(s string) (token, rest string) {
	for i := range len(s) {
		if s[i] == '.' || s[i] == '#' {
			return s[:i], s[i:]
		}
	}
	return s, ""
}

func (s simple) matches(e *Element) bool {
	if s.tag != "" && e.Tag != s.tag {
		return false
	}
	if s.id != "" && e.Attr("id") != s.id {
		return false
	}
	for _, c := range s.classes {
		if !e.HasClass(c) {
			return false
		}
	}
	return true
}

// Matches reports whether the element matches any group of the selector.
// The last simple selector must match the element itself and the earlier
// ones must match ancestors in order.
func (sel Selector) Matches(e *Element) bool {
	for _, chain := range sel.groups {
		if matchChain(chain, e) {
			return true
		}
	}
	return false
}

func matchChain(chain []simple, e *Element) bool {
	if !chain[len(chain)-1].matches(e) {
		return false
	}
	ancestor := e.Parent()
	for i := len(chain) - 2; i >= 0; i-- {
		for {
			if ancestor == nil {
				return false
			}
			if chain[i].matches(ancestor) {
				ancestor = ancestor.Parent()
				break
			}
			ancestor = ancestor.Parent()
		}
	}
	return true
}
