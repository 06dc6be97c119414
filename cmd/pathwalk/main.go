// Command pathwalk carves winding roads and rivers across terrain grids.
//
//	pathwalk walk --width 20 --height 12 --start 0,0 --end 19,11 --render
//	pathwalk paint --config map.yaml
//	pathwalk sample --width 20 --height 12 --seed 3
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool

	// Logger
	logger = zap.NewNop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pathwalk",
	Short: "Carve winding roads and rivers across grid maps",
	Long: `pathwalk generates plausible, non-straight paths between two points on a
grid using a biased random walk, and paints them onto terrain maps.

Walks wander early and close in on their goal as they use up a step budget
of ceil(distance / step-pace) steps.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(walkCmd, paintCmd, sampleCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
