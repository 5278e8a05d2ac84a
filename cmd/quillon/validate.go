package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quillon/quillon/internal/templates"
	"github.com/quillon/quillon/internal/validator"
)

var validateCmd = &cobra.Command{
	Use:   "validate [template-dir]",
	Short: "Validate template files",
	Long: `Checks template definitions for authoring problems: duplicate or
unknown question IDs, forward dependencies, broken patterns, body
placeholders without a matching question. With no argument, validates
the built-in catalogue.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		set := templates.Builtin()
		target := "built-in catalogue"

		if len(args) == 1 {
			loaded, err := templates.LoadDir(args[0])
			if err != nil {
				return err
			}
			set = loaded
			target = args[0]
		}

		if err := validator.CheckSet(set); err != nil {
			return err
		}
		fmt.Printf("OK: %d templates valid (%s)\n", len(set), target)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
