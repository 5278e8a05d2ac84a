package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	mcpAdapter "github.com/quillon/quillon/pkg/adapters/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Exposes the engine as an MCP server so LLM assistants can list
templates, walk questionnaires and generate documents as tool calls.
Runs on stdio by default; pass --sse to serve over HTTP/SSE instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := buildEngine(cmd)
		if err != nil {
			return err
		}

		server := mcpAdapter.NewServer(engine)

		if sse, _ := cmd.Flags().GetBool("sse"); sse {
			port, _ := cmd.Flags().GetInt("port")

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.ServeSSE(ctx, port)
		}

		return server.ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().Bool("sse", false, "Serve over HTTP/SSE instead of stdio")
	mcpCmd.Flags().IntP("port", "p", 8090, "Port for SSE mode")
}
