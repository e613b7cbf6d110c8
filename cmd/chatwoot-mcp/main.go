// ABOUTME: Entry point for the chatwoot-mcp server
// ABOUTME: Exposes the Chatwoot API as MCP tools over stdio or Streamable HTTP

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/fatih/color"

	"github.com/tvplus/chatwoot-mcp/internal/config"
	"github.com/tvplus/chatwoot-mcp/internal/mcp"
	"github.com/tvplus/chatwoot-mcp/internal/tools"
)

const banner = `
       _           _                      _
   ___| |__   __ _| |___      _____  ___ | |_      _ __ ___   ___ _ __
  / __| '_ \ / _' | __\ \ /\ / / _ \/ _ \| __|____| '_ ' _ \ / __| '_ \
 | (__| | | | (_| | |_ \ V  V / (_) | (_) | ||____| | | | | | (__| |_) |
  \___|_| |_|\__,_|\__| \_/\_/ \___/ \___/ \__|   |_| |_| |_|\___| .__/
                                                                 |_|
`

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: chatwoot-mcp <command>")
		fmt.Println()
		fmt.Println("Commands:")
		fmt.Println("  serve      Start the MCP server (stdio or http per MCP_MODE)")
		fmt.Println("  health     Check a running http-mode server")
		fmt.Println("  version    Print the server version")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var err error
	switch os.Args[1] {
	case "serve":
		err = runServe(ctx)
	case "health":
		err = runHealth(ctx)
	case "version":
		fmt.Printf("%s %s\n", mcp.ServerName, mcp.ServerVersion)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServe(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// All logging goes to stderr: in stdio mode stdout carries the protocol
	// stream and must stay clean.
	logger := setupLogger(cfg.Server)

	router, err := tools.NewRouter(cfg, logger)
	if err != nil {
		return fmt.Errorf("building tool router: %w", err)
	}

	server, err := mcp.NewServer(mcp.Config{
		Router:    router,
		Logger:    logger,
		AuthToken: cfg.Server.AuthToken,
	})
	if err != nil {
		return fmt.Errorf("creating MCP server: %w", err)
	}

	if cfg.Server.Mode == "stdio" {
		logger.Info("starting chatwoot-mcp",
			"mode", "stdio",
			"base_url", cfg.Chatwoot.BaseURL,
			"tools", router.Len(),
		)
		return server.RunStdio(ctx)
	}

	printServeBanner(cfg, router.Len())
	logger.Info("starting chatwoot-mcp",
		"mode", "http",
		"port", cfg.Server.Port,
		"base_url", cfg.Chatwoot.BaseURL,
		"tools", router.Len(),
	)
	return server.Run(ctx, cfg.Server.Port)
}

func printServeBanner(cfg *config.Config, toolCount int) {
	cyan := color.New(color.FgCyan)
	gray := color.New(color.FgHiBlack)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	cyan.Print(banner)
	gray.Printf("    version: %s\n\n", mcp.ServerVersion)

	green.Print("    ▶ ")
	fmt.Printf("Chatwoot:  %s\n", cfg.Chatwoot.BaseURL)
	green.Print("    ▶ ")
	fmt.Printf("HTTP:      :%d\n", cfg.Server.Port)
	green.Print("    ▶ ")
	fmt.Printf("Tools:     %d\n", toolCount)

	if cfg.Buckets.SafeMode {
		green.Print("    ▶ ")
		fmt.Print("Safe mode: ")
		yellow.Println("on")
	}
	if cfg.Server.AuthToken == "" {
		yellow.Println("    ! No AUTH_TOKEN set; /mcp is unauthenticated")
	}
	fmt.Println()
}

func runHealth(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	url := fmt.Sprintf("http://localhost:%d/health", cfg.Server.Port)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unhealthy: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	fmt.Println(strings.TrimSpace(string(body)))
	return nil
}

func setupLogger(cfg config.ServerConfig) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = &colorHandler{
			out:   os.Stderr,
			level: level,
		}
	}

	return slog.New(handler)
}

// colorHandler provides colorized log output with thread-safe writes.
type colorHandler struct {
	mu    sync.Mutex
	out   io.Writer
	level slog.Level
	attrs []slog.Attr
}

func (h *colorHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *colorHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var buf strings.Builder

	buf.WriteString(color.HiBlackString(r.Time.Format("15:04:05") + " "))

	switch r.Level {
	case slog.LevelDebug:
		buf.WriteString(color.MagentaString("DBG "))
	case slog.LevelInfo:
		buf.WriteString(color.CyanString("INF "))
	case slog.LevelWarn:
		buf.WriteString(color.YellowString("WRN "))
	case slog.LevelError:
		buf.WriteString(color.New(color.FgRed, color.Bold).Sprint("ERR "))
	default:
		buf.WriteString("??? ")
	}

	buf.WriteString(r.Message)

	for _, a := range h.attrs {
		buf.WriteString(color.HiBlackString(" " + a.Key + "="))
		buf.WriteString(a.Value.String())
	}

	r.Attrs(func(a slog.Attr) bool {
		buf.WriteString(color.HiBlackString(" " + a.Key + "="))
		buf.WriteString(a.Value.String())
		return true
	})

	buf.WriteString("\n")
	_, err := io.WriteString(h.out, buf.String())
	return err
}

func (h *colorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs), len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	newAttrs = append(newAttrs, attrs...)
	return &colorHandler{
		out:   h.out,
		level: h.level,
		attrs: newAttrs,
	}
}

func (h *colorHandler) WithGroup(_ string) slog.Handler {
	return h
}
