package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/quillon/quillon/pkg/domain"
)

var renderCmd = &cobra.Command{
	Use:   "render <document-id> <answers-file>",
	Short: "Render a document from an answers file",
	Long: `Generates a document non-interactively from a JSON or YAML file
mapping question IDs to answers. Missing required fields are listed on
failure.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := buildEngine(cmd)
		if err != nil {
			return err
		}

		answers, err := readAnswersFile(args[1])
		if err != nil {
			return err
		}

		doc, err := engine.Generate(args[0], answers)
		if err != nil {
			var missing *domain.MissingFieldsError
			if errors.As(err, &missing) {
				fmt.Fprintln(os.Stderr, "Champs obligatoires manquants :")
				for i, id := range missing.Fields {
					fmt.Fprintf(os.Stderr, "  - %s (%s)\n", missing.Labels[i], id)
				}
				os.Exit(1)
			}
			return err
		}

		if output, _ := cmd.Flags().GetString("output"); output != "" {
			return os.WriteFile(output, []byte(doc+"\n"), 0o644)
		}
		fmt.Println(doc)
		return nil
	},
}

func readAnswersFile(path string) (domain.Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	raw := make(map[string]any)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, fmt.Errorf("parse answers file: %w", err)
	}
	return domain.AnswersFromAny(raw), nil
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringP("output", "o", "", "Write the document to a file instead of stdout")
}
