// Package mapgen paints the features of a config.Map onto a fresh grid.
//
// Each copy of each feature gets its own walker seeded from the plan seed,
// so a plan always renders the same map. A walk that fails to converge is
// retried with a new derived seed (and, for sampled endpoints, new
// endpoints) up to the feature's retry limit.
package mapgen

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathwalk/config"
	"github.com/katalvlaran/pathwalk/gridgraph"
	"github.com/katalvlaran/pathwalk/walker"
)

// Record describes one painted copy of a feature.
type Record struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Fill     int             `json:"fill"`
	Copy     int             `json:"copy"`
	Seed     int64           `json:"seed"`
	Attempts int             `json:"attempts"`
	Start    gridgraph.Point `json:"start"`
	End      gridgraph.Point `json:"end"`
	Path     walker.Path     `json:"path"`
	Stats    walker.Stats    `json:"stats"`
}

// Result is a painted map plus what was painted on it.
type Result struct {
	Grid     *gridgraph.Grid  `json:"-"`
	Legend   gridgraph.Legend `json:"-"`
	Features []Record         `json:"features"`
}

// Render draws the painted map with the plan's legend.
func (r *Result) Render() string {
	return r.Grid.Render(r.Legend)
}

// Generate builds the grid described by m and paints every feature copy in
// plan order; later features overwrite earlier ones where they cross.
// Defaults are applied to a copy of m, which is left unchanged. log may be nil.
//
// Errors: config validation errors, context cancellation (checked before
// each walk), and walker.ErrNotConverged once a copy exhausts its retries.
func Generate(ctx context.Context, m *config.Map, log *zap.Logger) (*Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	plan := *m
	plan.Features = append([]config.Feature(nil), m.Features...)
	plan.ApplyDefaults()
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	grid, err := gridgraph.NewGrid(plan.Height, plan.Width)
	if err != nil {
		return nil, err
	}

	res := &Result{Grid: grid, Legend: plan.GridLegend()}
	var stream uint64
	for _, f := range plan.Features {
		for c := 0; c < f.Copies(); c++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			rec, err := paintCopy(grid, plan.Seed, stream, f, c, log)
			if err != nil {
				return nil, err
			}
			res.Features = append(res.Features, rec)
			stream++
		}
	}
	log.Info("map generated",
		zap.Int("width", plan.Width),
		zap.Int("height", plan.Height),
		zap.Int("features", len(res.Features)))
	return res, nil
}

// paintCopy walks and paints copy c of feature f, retrying on non-convergence.
func paintCopy(grid *gridgraph.Grid, base int64, stream uint64, f config.Feature, c int, log *zap.Logger) (Record, error) {
	log = log.With(zap.String("feature", f.Name), zap.Int("copy", c))
	copySeed := walker.DeriveSeed(base, stream)

	var lastErr error
	for attempt := 0; attempt < f.Attempts(); attempt++ {
		seed := walker.DeriveSeed(copySeed, uint64(attempt))
		opts, err := walkerOptions(f, seed)
		if err != nil {
			return Record{}, fmt.Errorf("mapgen: %s: %w", f.Name, err)
		}
		w, err := walker.New(grid, opts...)
		if err != nil {
			return Record{}, fmt.Errorf("mapgen: %s: %w", f.Name, err)
		}

		path, err := w.Walk()
		if errors.Is(err, walker.ErrNotConverged) {
			log.Warn("walk did not converge, retrying",
				zap.Int("attempt", attempt+1),
				zap.Int("max_steps", w.MaxSteps()),
				zap.Error(err))
			lastErr = err
			continue
		}
		if err != nil {
			return Record{}, fmt.Errorf("mapgen: %s: %w", f.Name, err)
		}
		if err := path.Validate(grid); err != nil {
			return Record{}, fmt.Errorf("mapgen: %s: %w", f.Name, err)
		}
		if err := walker.Paint(path, grid, f.Fill); err != nil {
			return Record{}, fmt.Errorf("mapgen: %s: %w", f.Name, err)
		}

		rec := Record{
			ID:       recordID(base, stream, f.Name, c),
			Name:     f.Name,
			Fill:     f.Fill,
			Copy:     c,
			Seed:     seed,
			Attempts: attempt + 1,
			Start:    w.Start(),
			End:      w.End(),
			Path:     path,
			Stats:    path.Stats(w.End(), w.Exponent()),
		}
		log.Debug("feature painted",
			zap.Stringer("start", rec.Start),
			zap.Stringer("end", rec.End),
			zap.Int("steps", rec.Stats.Steps),
			zap.Int("attempts", rec.Attempts))
		return rec, nil
	}
	return Record{}, fmt.Errorf("mapgen: %s copy %d gave up after %d attempts: %w",
		f.Name, c, f.Attempts(), lastErr)
}

func walkerOptions(f config.Feature, seed int64) ([]walker.Option, error) {
	bias, err := walker.BiasByName(f.Bias)
	if err != nil {
		return nil, err
	}
	opts := []walker.Option{
		walker.WithSeed(seed),
		walker.WithBias(bias),
		walker.WithExponent(f.WalkExponent()),
		walker.WithStepPace(f.WalkPace()),
	}
	if f.Start != nil && f.End != nil {
		opts = append(opts, walker.WithEndpoints(f.Start.Point(), f.End.Point()))
	}
	if f.MaxSteps > 0 {
		opts = append(opts, walker.WithMaxSteps(f.MaxSteps))
	}
	return opts, nil
}

// recordID is stable for a given plan seed and copy position. The stream
// index keeps features that share a name apart.
func recordID(seed int64, stream uint64, name string, c int) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("pathwalk/%d/%d/%s/%d", seed, stream, name, c)))
}
