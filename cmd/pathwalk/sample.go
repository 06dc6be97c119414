package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathwalk/gridgraph"
	"github.com/katalvlaran/pathwalk/walker"
)

var (
	sampleWidth    int
	sampleHeight   int
	sampleSeed     int64
	sampleExponent float64
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Sample a pair of endpoints on two different grid edges",
	Args:  cobra.NoArgs,
	RunE:  runSample,
}

func init() {
	f := sampleCmd.Flags()
	f.IntVar(&sampleWidth, "width", 10, "grid width")
	f.IntVar(&sampleHeight, "height", 10, "grid height")
	f.Int64Var(&sampleSeed, "seed", walker.DefaultSeed, "random seed (0 = fixed default)")
	f.Float64Var(&sampleExponent, "exponent", walker.DefaultExponent, "Minkowski distance exponent")
}

func runSample(cmd *cobra.Command, args []string) error {
	grid, err := gridgraph.NewGrid(sampleHeight, sampleWidth)
	if err != nil {
		return err
	}
	if math.IsNaN(sampleExponent) || sampleExponent <= 0 {
		return fmt.Errorf("%w: got %v", walker.ErrBadExponent, sampleExponent)
	}
	rng := walker.NewRand(sampleSeed)
	start, end, se, ee := walker.SampleEdgePoints(grid, rng, sampleExponent)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "start %v on %s edge\n", start, se)
	fmt.Fprintf(out, "end %v on %s edge\n", end, ee)
	fmt.Fprintf(out, "distance %.3f\n", walker.Distance(start, end, sampleExponent))
	return nil
}
