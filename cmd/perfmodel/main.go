package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"perfmodel/adapters/text"
	"perfmodel/domain/experiment"
	"perfmodel/internal"
	"perfmodel/internal/config"
	"perfmodel/internal/modeler"
	"perfmodel/internal/testkit"
)

func main() {
	// A missing .env file is fine; the environment still applies.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "perfmodel",
		Short: "Fit closed-form performance models to sparse, noisy measurements",
	}
	rootCmd.AddCommand(
		newModelCmd(),
		newDemoCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newModelCmd() *cobra.Command {
	var useMedian bool

	cmd := &cobra.Command{
		Use:   "model [experiment-file]",
		Short: "Fit a performance model to an experiment file",
		Long: `Fit a performance model to the measurements in a plain-text
experiment file and print the winning function with its quality scores.

Example: perfmodel model runtime.txt --median`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("median") {
				cfg.Modeling.UseMedian = useMedian
			}

			data, err := text.ReadFile(args[0])
			if err != nil {
				return err
			}

			logger := internal.NewDefaultLogger()
			opts := modeler.FromConfig(cfg.Modeling, logger)
			result, err := runSearch(cmd, opts, data.Measurements)
			if err != nil {
				return err
			}
			logger.Info("run %s finished (%d candidates, %d discarded)", result.RunID, result.CandidatesEvaluated, result.CandidatesDiscarded)
			fmt.Print(text.FormatResult(data, result))
			return nil
		},
	}

	cmd.Flags().BoolVar(&useMedian, "median", false, "model the median instead of the mean")
	return cmd
}

func newDemoCmd() *cobra.Command {
	var seed int64
	var noise float64

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the model search on a synthetic experiment",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := internal.NewDefaultLogger()

			gen := testkit.NewGenerator(seed)
			measurements := gen.SingleParameter(func(p float64) float64 {
				return 42 + 0.5*p*p
			}, []float64{8, 16, 32, 64, 128, 256}, 5, noise)

			data := &text.ExperimentData{Registry: experiment.NewRegistry()}
			data.Parameters = []experiment.Parameter{data.Registry.NewParameter("p")}
			data.Metric = data.Registry.NewMetric("time")
			data.Measurements = measurements

			opts := modeler.FromConfig(cfg.Modeling, logger)
			result, err := runSearch(cmd, opts, measurements)
			if err != nil {
				return err
			}
			fmt.Print(text.FormatResult(data, result))
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed for the synthetic data")
	cmd.Flags().Float64Var(&noise, "noise", 0.02, "relative noise magnitude")
	return cmd
}

// runSearch picks the single- or multi-parameter search by coordinate
// dimensionality.
func runSearch(cmd *cobra.Command, opts modeler.Options, measurements []experiment.Measurement) (*modeler.Result, error) {
	if len(measurements) > 0 && measurements[0].Coordinate.Dimensions() > 1 {
		return modeler.NewMultiParameterModeler(opts).Model(cmd.Context(), measurements)
	}
	return modeler.NewSingleParameterModeler(opts).Model(cmd.Context(), measurements)
}
