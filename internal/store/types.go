package store

import (
	"github.com/roach88/wireconv/internal/convert"
	"github.com/roach88/wireconv/internal/locale"
	"github.com/roach88/wireconv/internal/wire"
)

// Vector is one recorded conversion.
type Vector struct {
	ID     string
	Seq    int64
	Target string
	Input  wire.Token

	// Output is the canonical token, or nil when the conversion failed.
	Output wire.Token

	// ErrorKind is set when the conversion failed.
	ErrorKind convert.Kind

	Symbols locale.Symbols
}

// Check is one observation of a stored vector during a verification run.
type Check struct {
	ID        string
	RunID     string
	VectorID  string
	Seq       int64
	Output    wire.Token
	ErrorKind convert.Kind
	Drifted   bool
}

// RunSummary aggregates the checks of one verification run.
type RunSummary struct {
	RunID   string
	Checked int
	Drifted int
	LastSeq int64
}
