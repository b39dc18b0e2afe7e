package harness

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/wireconv/internal/convert"
	"github.com/roach88/wireconv/internal/locale"
	"github.com/roach88/wireconv/internal/registry"
	"github.com/roach88/wireconv/internal/store"
	"github.com/roach88/wireconv/internal/testutil"
	"github.com/roach88/wireconv/internal/wire"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "corpus.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func newTestCorpus(t *testing.T, st *store.Store, opts ...CorpusOption) *Corpus {
	t.Helper()
	opts = append([]CorpusOption{
		WithIDGenerator(testutil.NewSequenceIDGenerator("rec")),
		WithSequencer(testutil.NewDeterministicClock()),
	}, opts...)
	c, err := NewCorpus(context.Background(), st, opts...)
	require.NoError(t, err)
	return c
}

func mustTarget(t *testing.T, s string) registry.Target {
	t.Helper()
	target, err := registry.ParseTarget(s)
	require.NoError(t, err)
	return target
}

func TestCorpus_Record(t *testing.T) {
	st := openStore(t)
	c := newTestCorpus(t, st)
	ctx := context.Background()

	v, inserted, err := c.Record(ctx, locale.Invariant, mustTarget(t, "date"), wire.String("2024/01/05"))
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.Equal(t, "rec-000001", v.ID)
	assert.Equal(t, int64(1), v.Seq)
	assert.Equal(t, wire.String("2024-01-05"), v.Output)

	failed, inserted, err := c.Record(ctx, locale.Invariant, mustTarget(t, "date"), wire.Bool(true))
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.Nil(t, failed.Output)
	assert.Equal(t, convert.KindTypeMismatch, failed.ErrorKind)

	_, inserted, err = c.Record(ctx, locale.Invariant, mustTarget(t, "date"), wire.String("2024/01/05"))
	require.NoError(t, err)
	assert.False(t, inserted, "same target, input and symbols is a duplicate")

	vectors, err := st.ReadVectors(ctx)
	require.NoError(t, err)
	assert.Len(t, vectors, 2)
}

func TestCorpus_VerifyClean(t *testing.T) {
	st := openStore(t)
	ctx := context.Background()
	c := newTestCorpus(t, st, WithIDGenerator(testutil.NewSequenceIDGenerator("a")))

	german, err := locale.ForLocale("de")
	require.NoError(t, err)

	_, _, err = c.Record(ctx, locale.Invariant, mustTarget(t, "float64"), wire.String("Infinity"))
	require.NoError(t, err)
	_, _, err = c.Record(ctx, german, mustTarget(t, "float64"), wire.String("∞"))
	require.NoError(t, err)
	_, _, err = c.Record(ctx, locale.Invariant, mustTarget(t, "uuid?"), wire.Null{})
	require.NoError(t, err)

	summary, err := c.Verify(ctx, "run-1", "")
	require.NoError(t, err)
	assert.Equal(t, store.RunSummary{RunID: "run-1", Checked: 3, Drifted: 0, LastSeq: 6}, summary)
}

func TestCorpus_VerifyDetectsDrift(t *testing.T) {
	st := openStore(t)
	ctx := context.Background()

	// A vector recorded by an older build that kept the input text as is.
	stale := store.Vector{
		ID:      "old-1",
		Seq:     1,
		Target:  "date",
		Input:   wire.String("2024/01/05"),
		Output:  wire.String("2024/01/05"),
		Symbols: locale.Invariant,
	}
	_, err := st.WriteVector(ctx, stale)
	require.NoError(t, err)

	// And one that used to fail.
	_, err = st.WriteVector(ctx, store.Vector{
		ID:        "old-2",
		Seq:       2,
		Target:    "duration",
		Input:     wire.Int(5),
		ErrorKind: convert.KindTypeMismatch,
		Symbols:   locale.Invariant,
	})
	require.NoError(t, err)

	var logs bytes.Buffer
	c, err := NewCorpus(ctx, st,
		WithIDGenerator(testutil.NewSequenceIDGenerator("chk")),
		WithCorpusLogger(slog.New(slog.NewTextHandler(&logs, nil))))
	require.NoError(t, err)

	summary, err := c.Verify(ctx, "run-2", "")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Checked)
	assert.Equal(t, 2, summary.Drifted)
	// The resumed clock continues after the stored vectors.
	assert.Equal(t, int64(4), summary.LastSeq)

	drifted, err := c.Drifted(ctx, "run-2")
	require.NoError(t, err)
	require.Len(t, drifted, 2)
	assert.Equal(t, "old-1", drifted[0].Vector.ID)
	assert.Equal(t, wire.String("2024/01/05"), drifted[0].Vector.Output)
	assert.Equal(t, wire.String("2024-01-05"), drifted[0].Check.Output)
	assert.Equal(t, "old-2", drifted[1].Vector.ID)
	assert.Equal(t, convert.KindTypeMismatch, drifted[1].Vector.ErrorKind)

	assert.Contains(t, logs.String(), "vector drifted")
	assert.Contains(t, logs.String(), `observed="\"2024-01-05\""`)
}

func TestCorpus_VerifyEmpty(t *testing.T) {
	c := newTestCorpus(t, openStore(t))

	summary, err := c.Verify(context.Background(), "run-0", "")
	require.NoError(t, err)
	assert.Equal(t, store.RunSummary{RunID: "run-0"}, summary)
}

func TestCorpus_VerifyTarget(t *testing.T) {
	st := openStore(t)
	ctx := context.Background()
	c := newTestCorpus(t, st)

	_, _, err := c.Record(ctx, locale.Invariant, mustTarget(t, "date"), wire.String("2024-01-05"))
	require.NoError(t, err)
	_, _, err = c.Record(ctx, locale.Invariant, mustTarget(t, "clock_time"), wire.String("10:30"))
	require.NoError(t, err)
	_, _, err = c.Record(ctx, locale.Invariant, mustTarget(t, "date"), wire.String("2024-01-06"))
	require.NoError(t, err)

	summary, err := c.Verify(ctx, "run-dates", "date")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Checked)

	checks, err := st.ReadChecks(ctx, "run-dates")
	require.NoError(t, err)
	require.Len(t, checks, 2)
	assert.Equal(t, "rec-000001", checks[0].VectorID)
	assert.Equal(t, "rec-000003", checks[1].VectorID)

	summary, err = c.Verify(ctx, "run-none", "uuid")
	require.NoError(t, err)
	assert.Equal(t, store.RunSummary{RunID: "run-none"}, summary)
}

func TestCorpus_DriftedCleanRun(t *testing.T) {
	st := openStore(t)
	ctx := context.Background()
	c := newTestCorpus(t, st)

	_, _, err := c.Record(ctx, locale.Invariant, mustTarget(t, "uuid"), wire.String("6F9619FF-8B86-D011-B42D-00C04FC964FF"))
	require.NoError(t, err)
	_, err = c.Verify(ctx, "run-1", "")
	require.NoError(t, err)

	drifted, err := c.Drifted(ctx, "run-1")
	require.NoError(t, err)
	assert.Empty(t, drifted)
}
