package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spigell/hh-evaluator/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:       "validate {evaluation|cheating} FILE",
	Short:     "Check a stored result against the embedded JSON schema",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{string(schemas.KindEvaluation), string(schemas.KindCheating)},
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[1])
		if err != nil {
			return err
		}

		if err := schemas.ValidateJSON(schemas.Kind(args[0]), data); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: valid %s\n", args[1], args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
