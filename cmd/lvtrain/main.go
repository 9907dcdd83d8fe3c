// Command lvtrain validates and sorts train compositions.
//
// Usage:
//
//	lvtrain validate locomotive seating sleeping dining freight
//	lvtrain sort -f train.yaml
//	lvtrain generate --count 15 --seed 42 > train.yaml
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
	verbose      bool
	manifestPath string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "lvtrain",
	Short: "Validate and sort train compositions",
	Long: `lvtrain checks trains against the composition rules and rearranges
invalid ones in place.

Cars are given as class names (locomotive, seating, sleeping, dining,
freight) either as arguments or through a YAML manifest (--file).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logger != nil {
			return nil
		}
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
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every car moved by sort")
	rootCmd.PersistentFlags().StringVarP(&manifestPath, "file", "f", "", "read cars from a YAML manifest")

	generateCmd.Flags().IntVarP(&generateCount, "count", "n", 15, "number of cars")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 1, "random seed")
	generateCmd.Flags().BoolVar(&generateNoLoco, "no-locomotives", false, "leave locomotives out")
	generateCmd.Flags().StringVar(&generateName, "name", "", "manifest name")

	rootCmd.AddCommand(validateCmd, sortCmd, generateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
