// Package locale holds the special-value symbol tables used by the numeric
// converters.
//
// A table is resolved once, at startup, from a BCP 47 tag and an optional
// CUE override file, and then passed by value into the converters. Nothing
// in this package reads ambient process state.
package locale

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// Symbols is the text a locale uses for floating-point special values.
type Symbols struct {
	PositiveInfinity string `json:"positive_infinity"`
	NegativeInfinity string `json:"negative_infinity"`
	NaN              string `json:"nan"`
}

// Invariant is the culture-neutral table.
var Invariant = Symbols{
	PositiveInfinity: "Infinity",
	NegativeInfinity: "-Infinity",
	NaN:              "NaN",
}

const (
	infinity      = "∞"
	minusInfinity = "-∞"
	// Swedish and Finnish write the sign with U+2212 MINUS SIGN.
	unicodeMinusInfinity = "\u2212∞"
)

// builtin pairs each supported tag with its table. The first entry is the
// fallback for unmatched tags.
var builtin = []struct {
	tag     language.Tag
	symbols Symbols
}{
	{language.Und, Invariant},
	{language.English, Symbols{infinity, minusInfinity, "NaN"}},
	{language.German, Symbols{infinity, minusInfinity, "NaN"}},
	{language.French, Symbols{infinity, minusInfinity, "NaN"}},
	{language.Swedish, Symbols{infinity, unicodeMinusInfinity, "NaN"}},
	{language.Finnish, Symbols{infinity, unicodeMinusInfinity, "NaN"}},
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(builtin))
	for i, b := range builtin {
		tags[i] = b.tag
	}
	return language.NewMatcher(tags)
}()

// ForTag returns the built-in table that best matches tag, or Invariant
// when nothing matches.
func ForTag(tag language.Tag) Symbols {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Invariant
	}
	return builtin[idx].symbols
}

// ForLocale parses a BCP 47 tag such as "sv-SE" and returns its table. The
// empty string selects Invariant.
func ForLocale(name string) (Symbols, error) {
	if name == "" {
		return Invariant, nil
	}
	tag, err := language.Parse(name)
	if err != nil {
		return Symbols{}, fmt.Errorf("locale %q: %w", name, err)
	}
	return ForTag(tag), nil
}

// Supported returns the tags that have a built-in table, excluding the
// invariant fallback.
func Supported() []language.Tag {
	tags := make([]language.Tag, 0, len(builtin)-1)
	for _, b := range builtin[1:] {
		tags = append(tags, b.tag)
	}
	return tags
}

// Validate checks that every symbol is set and that no two collide.
func (s Symbols) Validate() error {
	if s.PositiveInfinity == "" || s.NegativeInfinity == "" || s.NaN == "" {
		return errors.New("symbol table has empty entries")
	}
	if s.PositiveInfinity == s.NegativeInfinity || s.PositiveInfinity == s.NaN || s.NegativeInfinity == s.NaN {
		return errors.New("symbol table entries must be distinct")
	}
	return nil
}
