package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/askiada/go-chain-profile/internal/log"
	"github.com/askiada/go-chain-profile/pkg/chain"
	"github.com/askiada/go-chain-profile/pkg/chain/drawer"
	"github.com/askiada/go-chain-profile/pkg/chain/measure"
	"github.com/askiada/go-chain-profile/pkg/transform"
)

var drawCmd = &cobra.Command{
	Use:   "draw <pattern>",
	Short: "Export a chain as a Graphviz DOT graph",
	Long: `Parses the pattern and writes its chain as a DOT digraph. With --input the chain is executed
--runs times first and the graph is decorated with the measured durations.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		runs, _ := cmd.Flags().GetInt("runs")
		var input *string
		if cmd.Flags().Changed("input") {
			v, _ := cmd.Flags().GetString("input")
			input = &v
		}

		var w io.Writer = cmd.OutOrStdout()
		if output != "" && output != "-" {
			file, err := os.Create(output)
			if err != nil {
				return errors.Wrapf(err, "unable to create file %s", output)
			}
			defer file.Close()
			w = file
		}

		return drawChain(w, chain.Parse(args[0]), input, runs)
	},
}

func drawChain(w io.Writer, c chain.Chain, input *string, runs int) error {
	d := drawer.NewDOTDrawer()
	err := drawer.AddChain(d, c)
	if err != nil {
		return errors.Wrap(err, "unable to add chain to drawer")
	}

	if input != nil {
		msr := measure.NewDefaultMeasure()
		exec, err := chain.NewExecutor(transform.NewDefaultRegistry(), chain.WithExecutionOptions(measure.ChainMeasure(msr)))
		if err != nil {
			return err
		}
		logger := log.WithComponent("draw")
		for i := 0; i < runs; i++ {
			out, err := exec.Execute(c, *input)
			if err != nil {
				logger.Warn("chain execution failed", "run", i, "error", err)
				continue
			}
			logger.Debug("chain executed", "run", i, "output", out)
		}
		err = d.AddMeasure(msr)
		if err != nil {
			return errors.Wrap(err, "unable to add measure")
		}
	}

	return d.Draw(w)
}

func init() {
	drawCmd.Flags().StringP("output", "o", "-", "Output file, - for stdout")
	drawCmd.Flags().String("input", "", "Execute the chain with this input before drawing")
	drawCmd.Flags().Int("runs", 1, "Number of executions when --input is set")
	rootCmd.AddCommand(drawCmd)
}
