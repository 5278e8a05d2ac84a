package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quillon/quillon"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of quillon",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("quillon version %s\n", strings.TrimSpace(quillon.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
