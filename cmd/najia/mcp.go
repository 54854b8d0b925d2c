package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/najia/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the najia engine as an MCP server, so AI agents can cast and look up
hexagrams as tools.

Supported transports:
- stdio (default): uses standard input/output. Ideal for local process integration.
- sse: uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		transport, _ := cmd.Flags().GetString("transport")
		port := cfg.MCP.Port
		if cmd.Flags().Changed("port") {
			port, _ = cmd.Flags().GetInt("port")
		}

		c, err := newCaster(cmd)
		if err != nil {
			return err
		}
		defer c.close()

		srv := mcp.NewServer(c.engine, mcp.WithLogger(logger))

		switch transport {
		case "stdio":
			// Logs already go to stderr and never corrupt JSON-RPC on stdout.
			logger.Info("starting MCP server (stdio)")
			return srv.ServeStdio()
		case "sse":
			if port == 0 {
				port = 8686
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.ServeSSE(ctx, port)
		default:
			return fmt.Errorf("unknown transport %q (supported: stdio, sse)", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 0, "Port to listen on (only for SSE, default 8686)")
}
