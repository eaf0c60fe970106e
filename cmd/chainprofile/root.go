package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/askiada/go-chain-profile/internal/log"
)

var rootCmd = &cobra.Command{
	Use:   "chainprofile",
	Short: "Chainprofile routes values between a handler and an item through transformation chains",
	Long: `Chainprofile runs chain transformation profiles against a stream of events.
A chain is a pattern such as "APPEND:foo∩APPEND:bar∩DUPLICATE" applied from left to right.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, _ := cmd.Flags().GetString("log-level")
		format, _ := cmd.Flags().GetString("log-format")
		log.Setup(level, format)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "json", "Log format (json, text)")
}
