package framework

import (
	"fmt"
	"regexp"
	"strings"
)

// Filter is a function that can determine whether to run a specific test or not.
type Filter func(*Info) bool

// AcceptAll is the Filter used when none is given.
func AcceptAll(*Info) bool { return true }

// AllOf returns a Filter that accepts a test only if every one of filters does. Nil filters
// are ignored.
func AllOf(filters ...Filter) Filter {
	return func(info *Info) bool {
		for _, f := range filters {
			if f != nil && !f(info) {
				return false
			}
		}
		return true
	}
}

// CategoryFilter accepts tests whose category contains any of the given substrings. With no
// substrings it accepts everything.
func CategoryFilter(substrings ...string) Filter {
	return func(info *Info) bool {
		if len(substrings) == 0 {
			return true
		}
		for _, s := range substrings {
			if strings.Contains(info.Category, s) {
				return true
			}
		}
		return false
	}
}

// RegexFilters selects tests by matching their ID ("category/name") against patterns.
type RegexFilters struct {
	MustMatch    RegexList
	MustNotMatch RegexList
}

func (r RegexFilters) AsFilter(info *Info) bool {
	id := info.ID()
	return (!r.MustMatch.IsDefined() || r.MustMatch.AnyMatch(id)) &&
		!r.MustNotMatch.AnyMatch(id)
}

func (r RegexFilters) IsDefined() bool {
	return r.MustMatch.IsDefined() || r.MustNotMatch.IsDefined()
}

type RegexList struct {
	patterns []*regexp.Regexp
}

func (r RegexList) String() string {
	var ss []string
	for _, p := range r.patterns {
		ss = append(ss, `"`+p.String()+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set is called by the command line parser
func (r *RegexList) Set(value string) error {
	rx, err := regexp.Compile(value)
	if err != nil {
		return fmt.Errorf("invalid regex: %w", err)
	}
	r.patterns = append(r.patterns, rx)
	return nil
}

func (r RegexList) IsDefined() bool {
	return len(r.patterns) != 0
}

func (r RegexList) AnyMatch(s string) bool {
	for _, p := range r.patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}
