package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathwalk/gridgraph"
	"github.com/katalvlaran/pathwalk/walker"
)

// pointFlag is an optional "x,y" flag value.
type pointFlag struct {
	p   gridgraph.Point
	set bool
}

func (f *pointFlag) String() string {
	if !f.set {
		return ""
	}
	return fmt.Sprintf("%d,%d", f.p.X, f.p.Y)
}

func (f *pointFlag) Set(s string) error {
	p, err := parsePoint(s)
	if err != nil {
		return err
	}
	f.p, f.set = p, true
	return nil
}

func (f *pointFlag) Type() string { return "x,y" }

func parsePoint(s string) (gridgraph.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return gridgraph.Point{}, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return gridgraph.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return gridgraph.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	return gridgraph.Pt(x, y), nil
}

var (
	walkWidth    int
	walkHeight   int
	walkStart    pointFlag
	walkEnd      pointFlag
	walkExponent float64
	walkPace     float64
	walkBias     string
	walkMaxSteps int
	walkSeed     int64
	walkFill     int
	walkRender   bool
	walkJSON     bool
)

// walkCmd runs a single walk
var walkCmd = &cobra.Command{
	Use:   "walk",
	Short: "Walk one path across an empty grid",
	Long: `Runs one biased random walk and prints the path.

Without --start/--end both endpoints are sampled on two different edges.

Examples:
  pathwalk walk --width 10 --height 10 --start 0,0 --end 9,9 --seed 42
  pathwalk walk --width 40 --height 20 --exponent 1 --pace 0.3 --render`,
	Args: cobra.NoArgs,
	RunE: runWalk,
}

func init() {
	f := walkCmd.Flags()
	f.IntVar(&walkWidth, "width", 10, "grid width")
	f.IntVar(&walkHeight, "height", 10, "grid height")
	f.Var(&walkStart, "start", "start point x,y (sampled when omitted)")
	f.Var(&walkEnd, "end", "end point x,y (sampled when omitted)")
	f.Float64Var(&walkExponent, "exponent", walker.DefaultExponent, "Minkowski distance exponent (2 = Euclidean)")
	f.Float64Var(&walkPace, "pace", walker.DefaultStepPace, "target distance closed per step")
	f.StringVar(&walkBias, "bias", walker.BiasLinear, "bias policy: linear or quadratic")
	f.IntVar(&walkMaxSteps, "max-steps", 0, "convergence ceiling (0 = automatic)")
	f.Int64Var(&walkSeed, "seed", 0, "random seed (0 = fixed default)")
	f.IntVar(&walkFill, "fill", 1, "cell value painted along the path")
	f.BoolVar(&walkRender, "render", false, "print the painted map")
	f.BoolVar(&walkJSON, "json", false, "print the result as JSON")
}

type walkOutput struct {
	Start  gridgraph.Point `json:"start"`
	End    gridgraph.Point `json:"end"`
	Budget int             `json:"budget"`
	Path   walker.Path     `json:"path"`
	Stats  walker.Stats    `json:"stats"`
}

func runWalk(cmd *cobra.Command, args []string) error {
	if walkStart.set != walkEnd.set {
		return fmt.Errorf("--start and --end must be given together")
	}
	grid, err := gridgraph.NewGrid(walkHeight, walkWidth)
	if err != nil {
		return err
	}

	bias, err := walker.BiasByName(walkBias)
	if err != nil {
		return err
	}
	opts := []walker.Option{
		walker.WithSeed(walkSeed),
		walker.WithBias(bias),
		walker.WithExponent(walkExponent),
		walker.WithStepPace(walkPace),
	}
	if walkStart.set {
		opts = append(opts, walker.WithEndpoints(walkStart.p, walkEnd.p))
	}
	if walkMaxSteps != 0 {
		opts = append(opts, walker.WithMaxSteps(walkMaxSteps))
	}
	w, err := walker.New(grid, opts...)
	if err != nil {
		return err
	}

	logger.Debug("walking",
		zap.Stringer("start", w.Start()),
		zap.Stringer("end", w.End()),
		zap.Int("budget", w.TargetSteps()),
		zap.Int("max_steps", w.MaxSteps()))
	path, err := w.Walk()
	if err != nil {
		return err
	}
	if err := walker.Paint(path, grid, walkFill); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	res := walkOutput{
		Start:  w.Start(),
		End:    w.End(),
		Budget: w.TargetSteps(),
		Path:   path,
		Stats:  path.Stats(w.End(), w.Exponent()),
	}
	if walkJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	fmt.Fprintf(out, "start %v end %v budget %d steps %d tortuosity %.2f\n",
		res.Start, res.End, res.Budget, res.Stats.Steps, res.Stats.Tortuosity)
	fmt.Fprintln(out, formatPath(path))
	if walkRender {
		fmt.Fprintln(out, grid.Render(gridgraph.Legend{walkFill: {Rune: '#', Label: "path"}}))
	}
	return nil
}

func formatPath(p walker.Path) string {
	parts := make([]string, len(p))
	for i, pt := range p {
		parts[i] = pt.String()
	}
	return strings.Join(parts, " ")
}
