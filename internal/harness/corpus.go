package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/wireconv/internal/convert"
	"github.com/roach88/wireconv/internal/locale"
	"github.com/roach88/wireconv/internal/registry"
	"github.com/roach88/wireconv/internal/store"
	"github.com/roach88/wireconv/internal/wire"
)

// Sequencer stamps records with strictly increasing seq values.
// store.Clock and testutil.DeterministicClock both implement it.
type Sequencer interface {
	Next() int64
}

// Corpus records conversion outcomes and re-checks them later.
type Corpus struct {
	store  *store.Store
	ids    store.IDGenerator
	clock  Sequencer
	logger *slog.Logger

	// Registries are built per symbol table on first use.
	registries map[locale.Symbols]*registry.Registry
}

// CorpusOption configures a Corpus.
type CorpusOption func(*Corpus)

// WithIDGenerator overrides the UUIDv7 record ID source.
func WithIDGenerator(g store.IDGenerator) CorpusOption {
	return func(c *Corpus) { c.ids = g }
}

// WithSequencer overrides the clock resumed from the store.
func WithSequencer(s Sequencer) CorpusOption {
	return func(c *Corpus) { c.clock = s }
}

// WithCorpusLogger sets the logger. The default discards everything.
func WithCorpusLogger(l *slog.Logger) CorpusOption {
	return func(c *Corpus) { c.logger = l }
}

// NewCorpus wraps st. Unless overridden, IDs are UUIDv7 and seq resumes
// after the highest value already stored.
func NewCorpus(ctx context.Context, st *store.Store, opts ...CorpusOption) (*Corpus, error) {
	c := &Corpus{
		store:      st,
		ids:        store.UUIDv7Generator{},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		registries: make(map[locale.Symbols]*registry.Registry),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.clock == nil {
		seq, err := st.MaxSeq(ctx)
		if err != nil {
			return nil, fmt.Errorf("resume clock: %w", err)
		}
		c.clock = store.NewClockAt(seq)
	}
	return c, nil
}

func (c *Corpus) registryFor(sym locale.Symbols) *registry.Registry {
	reg, ok := c.registries[sym]
	if !ok {
		reg = registry.New(registry.WithSymbols(sym))
		c.registries[sym] = reg
	}
	return reg
}

// Record converts input for target under sym and stores the outcome. A
// failed conversion is recorded, not returned; the error is reserved for
// storage failures. Reports whether the vector was new.
func (c *Corpus) Record(ctx context.Context, sym locale.Symbols, target registry.Target, input wire.Token) (store.Vector, bool, error) {
	v := store.Vector{
		ID:      c.ids.Generate(),
		Seq:     c.clock.Next(),
		Target:  target.String(),
		Input:   input,
		Symbols: sym,
	}

	output, err := c.registryFor(sym).Canonicalize(target, input)
	if err != nil {
		v.ErrorKind = convert.KindOf(err)
	} else {
		v.Output = output
	}

	inserted, err := c.store.WriteVector(ctx, v)
	if err != nil {
		return store.Vector{}, false, err
	}
	c.logger.Debug("recorded vector",
		"id", v.ID,
		"target", v.Target,
		"input", tokenText(input),
		"error_kind", string(v.ErrorKind),
		"inserted", inserted)
	return v, inserted, nil
}

// Verify re-converts the stored vectors and records one check per vector
// under runID. A non-empty target restricts the run to that target. A
// vector drifts when its output text or error kind differs from what was
// recorded.
func (c *Corpus) Verify(ctx context.Context, runID, target string) (store.RunSummary, error) {
	var (
		vectors []store.Vector
		err     error
	)
	if target == "" {
		vectors, err = c.store.ReadVectors(ctx)
	} else {
		vectors, err = c.store.ReadVectorsForTarget(ctx, target)
	}
	if err != nil {
		return store.RunSummary{}, err
	}
	if len(vectors) == 0 {
		return store.RunSummary{RunID: runID}, nil
	}

	for _, v := range vectors {
		check, err := c.check(v, runID)
		if err != nil {
			return store.RunSummary{}, err
		}
		if check.Drifted {
			c.logger.Warn("vector drifted",
				"id", v.ID,
				"target", v.Target,
				"input", tokenText(v.Input),
				"recorded", describeVector(v.Output, v.ErrorKind),
				"observed", describeVector(check.Output, check.ErrorKind))
		}
		if err := c.store.WriteCheck(ctx, check); err != nil {
			return store.RunSummary{}, err
		}
	}
	return c.store.GetRunSummary(ctx, runID)
}

// Drift pairs a drifted vector with the check that observed it.
type Drift struct {
	Vector store.Vector
	Check  store.Check
}

// Drifted returns the drifted checks of runID with their vectors, in check
// order.
func (c *Corpus) Drifted(ctx context.Context, runID string) ([]Drift, error) {
	checks, err := c.store.ReadChecks(ctx, runID)
	if err != nil {
		return nil, err
	}
	var drifts []Drift
	for _, chk := range checks {
		if !chk.Drifted {
			continue
		}
		v, err := c.store.ReadVector(ctx, chk.VectorID)
		if err != nil {
			return nil, fmt.Errorf("check %s: %w", chk.ID, err)
		}
		drifts = append(drifts, Drift{Vector: v, Check: chk})
	}
	return drifts, nil
}

func (c *Corpus) check(v store.Vector, runID string) (store.Check, error) {
	target, err := registry.ParseTarget(v.Target)
	if err != nil {
		return store.Check{}, fmt.Errorf("vector %s: %w", v.ID, err)
	}

	check := store.Check{
		ID:       c.ids.Generate(),
		RunID:    runID,
		VectorID: v.ID,
		Seq:      c.clock.Next(),
	}
	output, convErr := c.registryFor(v.Symbols).Canonicalize(target, v.Input)
	if convErr != nil {
		check.ErrorKind = convert.KindOf(convErr)
	} else {
		check.Output = output
	}

	switch {
	case v.Output == nil || check.Output == nil:
		check.Drifted = v.Output != check.Output || v.ErrorKind != check.ErrorKind
	default:
		check.Drifted = !sameToken(v.Output, check.Output)
	}
	return check, nil
}

func describeVector(output wire.Token, kind convert.Kind) string {
	if output == nil {
		return "error " + string(kind)
	}
	return tokenText(output)
}
