package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/seetoh/coursefinder/internal/config"
	"github.com/seetoh/coursefinder/internal/dataset"
	"github.com/seetoh/coursefinder/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server (stdio transport)",
	Long: `Start the MCP (Model Context Protocol) server using stdio transport.

This allows AI assistants to search and compare courses in the dataset.

Add to Claude Desktop config (~/Library/Application Support/Claude/claude_desktop_config.json):

{
  "mcpServers": {
    "coursefinder": {
      "command": "/path/to/coursefinder",
      "args": ["mcp"]
    }
  }
}`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	paths := cfg.Data.SourcePaths()
	cache := dataset.NewCache(cfg.Cache.TTL(), func() ([]dataset.Course, error) {
		src, err := dataset.LoadSources(paths)
		if err != nil {
			return nil, err
		}
		return dataset.Merge(src), nil
	})

	server := mcp.New(cache, cfg)

	// Handle interrupt
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		cancel()
	}()

	return server.Start(ctx)
}
