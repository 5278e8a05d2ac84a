package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/quillon/quillon/internal/cli"
	"github.com/quillon/quillon/internal/presentation/tui"
)

var fillCmd = &cobra.Command{
	Use:   "fill <document-id>",
	Short: "Fill a document questionnaire interactively",
	Long: `Walks through the document's questionnaire one question at a time,
validating each answer, and prints the generated document at the end.
Progress is persisted per session; pass --session to resume one.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		logger := newLogger(cmd)
		sessions, err := buildSessions(cmd, logger)
		if err != nil {
			return err
		}

		sessionID, _ := cmd.Flags().GetString("session")
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		tui.PrintBanner()
		flow := cli.NewFlow(engine, sessions, cli.NewSurveyDriver())

		doc, err := flow.Run(cmd.Context(), args[0], sessionID)
		if err != nil {
			if errors.Is(err, cli.ErrAborted) {
				fmt.Printf("Interrompu. Reprenez avec : quillon fill %s --session %s\n", args[0], sessionID)
				return nil
			}
			return err
		}

		if output, _ := cmd.Flags().GetString("output"); output != "" {
			if err := os.WriteFile(output, []byte(doc+"\n"), 0o644); err != nil {
				return err
			}
			fmt.Printf("Document écrit dans %s\n", output)
			return nil
		}

		render := tui.NewRenderer()
		pretty, err := render(doc)
		if err != nil {
			fmt.Println(doc)
			return nil
		}
		fmt.Print(pretty)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fillCmd)
	fillCmd.Flags().String("session", "", "Session ID to resume")
	fillCmd.Flags().StringP("output", "o", "", "Write the document to a file instead of stdout")
	fillCmd.Flags().String("store", "file", "Session backend: memory, file or redis")
	fillCmd.Flags().String("sessions-dir", "", "Directory for file-backed sessions")
	fillCmd.Flags().String("redis-addr", "", "Redis address for the redis backend")
}
