package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvtrain/car"
	"github.com/katalvlaran/lvtrain/manifest"
	"github.com/katalvlaran/lvtrain/reorder"
	"github.com/katalvlaran/lvtrain/train"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errNoCars is returned when neither arguments nor --file name any car.
var errNoCars = errors.New("no cars given: pass class names or --file")

// validateCmd checks a train against the rules
var validateCmd = &cobra.Command{
	Use:   "validate [class...]",
	Short: "Report whether a train is valid and which rule it breaks",
	Example: `  lvtrain validate locomotive seating freight
  lvtrain validate -f train.yaml`,
	RunE: runValidate,
}

// sortCmd rearranges a train into a valid one
var sortCmd = &cobra.Command{
	Use:   "sort [class...]",
	Short: "Rearrange a train in place and print the result",
	Long: `Sorts the train into the layout

  locomotive, seating…, dining…, sleeping…, freight…, [locomotive]

Every input locomotive is replaced; a rear locomotive is added when the
train has more than ten cars. Trains of one car are left as they are.`,
	RunE: runSort,
}

// loadTrain builds the train from --file or from class-name arguments.
func loadTrain(args []string) (*train.Train, error) {
	if manifestPath != "" {
		if len(args) > 0 {
			return nil, errors.New("--file and class arguments are mutually exclusive")
		}
		m, err := manifest.Load(manifestPath)
		if err != nil {
			return nil, err
		}
		logger.Debug("Loaded manifest", zap.String("path", manifestPath), zap.String("name", m.Name), zap.Int("cars", len(m.Cars)))
		return m.Train()
	}

	if len(args) == 0 {
		return nil, errNoCars
	}
	tr := train.New()
	for i, name := range args {
		c, err := car.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		tr.AddCart(c)
	}
	return tr, nil
}

// runValidate prints the verdict and the first broken rule
func runValidate(cmd *cobra.Command, args []string) error {
	tr, err := loadTrain(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if v := tr.Violation(); v != nil {
		logger.Info("Train rejected",
			zap.Int("cars", tr.Len()),
			zap.Stringer("rule", v.Rule),
			zap.Int("position", v.Position))
		fmt.Fprintf(out, "invalid: %s\n", v.Error())
		return nil
	}

	logger.Info("Train accepted", zap.Int("cars", tr.Len()))
	fmt.Fprintln(out, "valid")
	return nil
}

// runSort sorts the train and prints it before and after
func runSort(cmd *cobra.Command, args []string) error {
	tr, err := loadTrain(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "before: %s valid=%t\n", tr, tr.IsValid())

	tr.Sort(reorder.WithOnMove(func(m reorder.Move) {
		logger.Debug("Car handled",
			zap.Stringer("class", m.Class),
			zap.Int("position", m.Position),
			zap.Stringer("action", m.Action))
	}))

	valid := tr.IsValid()
	logger.Info("Train sorted", zap.Int("cars", tr.Len()), zap.Bool("valid", valid))
	fmt.Fprintf(out, "after:  %s valid=%t\n", tr, valid)
	return nil
}
