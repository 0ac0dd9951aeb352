package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/daymark/internal/fatigue"
	"github.com/claude/daymark/internal/mcp"
	"github.com/claude/daymark/internal/storage"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// The MCP server speaks stdio for use with local assistants. Data comes
// either from Postgres directly (-dsn) or from a remote Daymark server's
// REST API (-server, typically over Tailscale).
func main() {
	serverURL := flag.String("server", "", "Daymark server URL (e.g. https://daymark.tail1234.ts.net)")
	apiKey := flag.String("api-key", os.Getenv("DAYMARK_API_KEY"), "API key for the remote server")
	dsn := flag.String("dsn", "", "Postgres DSN for local mode")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("daymark-mcp", Version)
		return
	}

	// Logs go to stderr; stdout carries the MCP protocol.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var ds mcp.DataSource
	switch {
	case *serverURL != "":
		if *apiKey == "" {
			fmt.Fprintln(os.Stderr, "Error: -api-key (or DAYMARK_API_KEY) is required with -server")
			os.Exit(1)
		}
		ds = mcp.NewHTTPClient(*serverURL, *apiKey)
		log.Info("remote mode", "server", *serverURL)
	case *dsn != "":
		db, err := storage.New(context.Background(), *dsn)
		if err != nil {
			log.Error("failed to connect database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		ds = db
		log.Info("local mode")
	default:
		fmt.Fprintf(os.Stderr, "Usage: daymark-mcp -server <URL> -api-key <key> | -dsn <postgres DSN>\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	s := mcp.New(ds, fatigue.New(), Version, log)
	if err := mcpserver.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
