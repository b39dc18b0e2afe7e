package locale

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// schema constrains symbol override files. The definition is closed, so
// misspelled fields are rejected rather than ignored.
const schema = `
#Symbols: {
	locale?:            string
	positive_infinity?: string & !=""
	negative_infinity?: string & !=""
	nan?:               string & !=""
}
`

// override is the decoded form of an override file.
type override struct {
	Locale           string  `json:"locale"`
	PositiveInfinity *string `json:"positive_infinity"`
	NegativeInfinity *string `json:"negative_infinity"`
	NaN              *string `json:"nan"`
}

// Load reads a CUE symbol override file. The file may name a base locale
// and replace any of its symbols:
//
//	locale:            "sv"
//	negative_infinity: "-∞"
//
// Fields left out keep the base locale's value.
func Load(path string) (Symbols, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Symbols{}, fmt.Errorf("reading symbols file: %w", err)
	}
	return LoadBytes(path, data)
}

// LoadBytes is Load for in-memory content; filename is used in error
// positions only.
func LoadBytes(filename string, data []byte) (Symbols, error) {
	ctx := cuecontext.New()

	def := ctx.CompileString(schema).LookupPath(cue.ParsePath("#Symbols"))
	if err := def.Err(); err != nil {
		return Symbols{}, fmt.Errorf("compiling symbols schema: %w", err)
	}

	value := ctx.CompileBytes(data, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return Symbols{}, fmt.Errorf("compiling %s: %w", filename, err)
	}

	unified := def.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return Symbols{}, fmt.Errorf("validating %s: %w", filename, err)
	}

	var o override
	if err := unified.Decode(&o); err != nil {
		return Symbols{}, fmt.Errorf("decoding %s: %w", filename, err)
	}

	base, err := ForLocale(o.Locale)
	if err != nil {
		return Symbols{}, err
	}
	if o.PositiveInfinity != nil {
		base.PositiveInfinity = *o.PositiveInfinity
	}
	if o.NegativeInfinity != nil {
		base.NegativeInfinity = *o.NegativeInfinity
	}
	if o.NaN != nil {
		base.NaN = *o.NaN
	}
	if err := base.Validate(); err != nil {
		return Symbols{}, fmt.Errorf("%s: %w", filename, err)
	}
	return base, nil
}

// Resolve picks the process-wide table: the override file when path is
// set, otherwise the built-in table for name.
func Resolve(name, path string) (Symbols, error) {
	if path != "" {
		return Load(path)
	}
	return ForLocale(name)
}
