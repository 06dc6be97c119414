package mapgen_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/pathwalk/config"
	"github.com/katalvlaran/pathwalk/gridgraph"
	"github.com/katalvlaran/pathwalk/mapgen"
	"github.com/katalvlaran/pathwalk/walker"
)

const plan = `
width: 30
height: 18
seed: 99
legend: {1: "=", 2: "~"}
features:
  - name: road
    fill: 1
    start: [0, 9]
    end: [29, 9]
  - name: river
    fill: 2
    count: 3
    exponent: 1
    step_pace: 0.5
    bias: quadratic
`

func mustParse(t *testing.T, doc string) *config.Map {
	t.Helper()
	m, err := config.Parse([]byte(doc))
	require.NoError(t, err)
	return m
}

func TestGenerate_PaintsEveryCopy(t *testing.T) {
	m := mustParse(t, plan)
	res, err := mapgen.Generate(context.Background(), m, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, res.Features, 4)
	require.Equal(t, 30, res.Grid.Width)
	require.Equal(t, 18, res.Grid.Height)

	road := res.Features[0]
	require.Equal(t, "road", road.Name)
	require.Equal(t, gridgraph.Pt(0, 9), road.Start)
	require.Equal(t, gridgraph.Pt(29, 9), road.End)

	ids := make(map[uuid.UUID]struct{})
	for i, rec := range res.Features {
		require.NoError(t, rec.Path.Validate(res.Grid), "record %d", i)
		first, _ := rec.Path.First()
		require.Equal(t, rec.Start, first)
		require.LessOrEqual(t, rec.Stats.Remaining, 1.0)
		require.GreaterOrEqual(t, rec.Attempts, 1)
		ids[rec.ID] = struct{}{}
	}
	require.Len(t, ids, 4, "record IDs must be unique")

	// The last river is painted last, so none of its cells were overwritten.
	last := res.Features[3]
	for _, p := range last.Path {
		v, err := res.Grid.At(p)
		require.NoError(t, err)
		require.Equal(t, 2, v)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := mapgen.Generate(context.Background(), mustParse(t, plan), nil)
	require.NoError(t, err)
	b, err := mapgen.Generate(context.Background(), mustParse(t, plan), nil)
	require.NoError(t, err)

	if diff := cmp.Diff(a.Features, b.Features); diff != "" {
		t.Fatalf("records differ between runs (-a +b):\n%s", diff)
	}
	if diff := cmp.Diff(a.Grid.Cells, b.Grid.Cells); diff != "" {
		t.Fatalf("grids differ between runs (-a +b):\n%s", diff)
	}
	require.Equal(t, a.Render(), b.Render())
}

// TestGenerate_GivesUp uses a ceiling no walk can meet and checks that every
// attempt is logged before the error surfaces.
func TestGenerate_GivesUp(t *testing.T) {
	m := mustParse(t, `
width: 12
height: 12
features:
  - name: doomed
    fill: 1
    max_steps: 2
    retries: 2
    start: [0, 0]
    end: [11, 11]
`)
	core, logs := observer.New(zapcore.DebugLevel)
	_, err := mapgen.Generate(context.Background(), m, zap.New(core))
	require.ErrorIs(t, err, walker.ErrNotConverged)
	require.Equal(t, 3, logs.FilterMessage("walk did not converge, retrying").Len())
}

func TestGenerate_NoRetries(t *testing.T) {
	m := mustParse(t, `
width: 12
height: 12
features:
  - name: doomed
    fill: 1
    max_steps: 2
    retries: 0
    start: [0, 0]
    end: [11, 11]
  - name: skipped
    fill: 2
    count: 0
`)
	core, logs := observer.New(zapcore.DebugLevel)
	_, err := mapgen.Generate(context.Background(), m, zap.New(core))
	require.ErrorIs(t, err, walker.ErrNotConverged)
	require.Equal(t, 1, logs.FilterMessage("walk did not converge, retrying").Len())
}

func TestGenerate_ZeroCountPaintsNothing(t *testing.T) {
	m := mustParse(t, "features:\n  - name: ghost\n    fill: 3\n    count: 0\n")
	res, err := mapgen.Generate(context.Background(), m, nil)
	require.NoError(t, err)
	require.Empty(t, res.Features)
	require.Zero(t, res.Grid.Count(3))
}

// TestGenerate_SharedNamesGetDistinctIDs paints two features with one name.
func TestGenerate_SharedNamesGetDistinctIDs(t *testing.T) {
	m := mustParse(t, "seed: 3\nfeatures:\n  - name: road\n    fill: 1\n  - name: road\n    fill: 2\n")
	res, err := mapgen.Generate(context.Background(), m, nil)
	require.NoError(t, err)
	require.Len(t, res.Features, 2)
	require.NotEqual(t, res.Features[0].ID, res.Features[1].ID)
}

func TestGenerate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := mapgen.Generate(ctx, mustParse(t, plan), nil)
	require.True(t, errors.Is(err, context.Canceled))
}

func TestGenerate_InvalidPlan(t *testing.T) {
	m := &config.Map{Width: -1}
	_, err := mapgen.Generate(context.Background(), m, nil)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

// TestGenerate_HandBuiltPlan applies defaults without touching the caller's plan.
func TestGenerate_HandBuiltPlan(t *testing.T) {
	m := &config.Map{Seed: 5, Features: []config.Feature{{Fill: 4}}}
	res, err := mapgen.Generate(context.Background(), m, nil)
	require.NoError(t, err)
	require.Len(t, res.Features, 1)
	require.Equal(t, config.DefaultWidth, res.Grid.Width)
	require.Zero(t, m.Width)
	require.Nil(t, m.Features[0].Count)
	require.Equal(t, "feature-1", res.Features[0].Name)
}

func TestGenerate_LogsSummary(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	_, err := mapgen.Generate(context.Background(), mustParse(t, plan), zap.New(core))
	require.NoError(t, err)

	entries := logs.FilterMessage("map generated").All()
	require.Len(t, entries, 1)
	require.Equal(t, int64(4), entries[0].ContextMap()["features"])
}
