package pattern

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Sentinel errors returned by Match and Fields.Offset.
var (
	ErrNoMatch       = errors.New("no candidate format matched")
	ErrFieldOverflow = errors.New("numeric field overflows")
	ErrInvalidOffset = errors.New("invalid UTC offset")
)

// Fragments combined into candidate expressions. Each named group may appear
// at most once per candidate.
const (
	Time           = `(?P<hour>\d{2}):(?P<minute>\d{2}):(?P<second>\d{2})(?:\.(?P<fraction>\d+))?`
	ShortTime      = `(?P<hour>\d{2}):(?P<minute>\d{2})`
	Zone           = `(?P<zone>Z|z|[+-]\d{2}(?::?\d{2})?)`
	Delim          = `[Tt ]`
	Integer        = `(?P<integer>[+-]?\d+)`
	DurationPrefix = `(?P<sign>-)?(?:(?P<days>\d+)\.)?`
)

// Date returns the yyyy<sep>MM<sep>dd fragment.
func Date(sep string) string {
	s := regexp.QuoteMeta(sep)
	return `(?P<year>\d{4})` + s + `(?P<month>\d{2})` + s + `(?P<day>\d{2})`
}

// Optional wraps a fragment so it may be absent.
func Optional(fragment string) string {
	return "(?:" + fragment + ")?"
}

// Candidate is one named, anchored input format.
type Candidate struct {
	Name string
	re   *regexp.Regexp
}

// New compiles expr into a candidate. The expression is anchored at both
// ends; callers pass the bare format.
func New(name, expr string) (Candidate, error) {
	re, err := regexp.Compile("^(?:" + expr + ")$")
	if err != nil {
		return Candidate{}, fmt.Errorf("candidate %s: %w", name, err)
	}
	seen := make(map[string]bool)
	for _, g := range re.SubexpNames() {
		if g == "" {
			continue
		}
		if seen[g] {
			return Candidate{}, fmt.Errorf("candidate %s: group %q appears more than once", name, g)
		}
		seen[g] = true
	}
	return Candidate{Name: name, re: re}, nil
}

// MustNew is like New but panics on error. It is meant for package-level
// candidate tables.
func MustNew(name, expr string) Candidate {
	c, err := New(name, expr)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the anchored expression.
func (c Candidate) String() string {
	if c.re == nil {
		return ""
	}
	return c.re.String()
}

// Match is the result of a successful List.Match.
type Match struct {
	Candidate Candidate
	Fields    Fields
}

// List is an ordered set of candidates, most specific first.
type List []Candidate

// Match returns the first candidate that matches s, with its fields
// extracted. It returns ErrNoMatch when no candidate matches, or
// ErrFieldOverflow when the winning candidate captured a number that does
// not fit. A later candidate is never consulted after an earlier one
// matched.
func (l List) Match(s string) (Match, error) {
	for _, c := range l {
		sub := c.re.FindStringSubmatch(s)
		if sub == nil {
			continue
		}
		f, err := extract(c.re.SubexpNames(), sub)
		if err != nil {
			return Match{}, fmt.Errorf("%s: %w", c.Name, err)
		}
		return Match{Candidate: c, Fields: f}, nil
	}
	return Match{}, ErrNoMatch
}

// Names returns the candidate names in order.
func (l List) Names() []string {
	names := make([]string, len(l))
	for i, c := range l {
		names[i] = c.Name
	}
	return names
}

// Describe renders the candidate names for error messages.
func (l List) Describe() string {
	return strings.Join(l.Names(), ", ")
}
