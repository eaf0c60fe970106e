package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/askiada/go-chain-profile/pkg/transform"
)

var transformationsCmd = &cobra.Command{
	Use:   "transformations",
	Short: "List the available transformation types",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range transform.NewDefaultRegistry().Names() {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(transformationsCmd)
}
