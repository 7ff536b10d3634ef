package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/ironsheep/css-resemble-image/internal/config"
	"github.com/ironsheep/css-resemble-image/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// envConfigFile names an HCL config file for server mode.
const envConfigFile = "RESEMBLE_CONFIG"

func main() {
	// Handle --version, --help and subcommands
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("resemble-image %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		case "transform":
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			code := runTransform(ctx, os.Args[2:], os.Stdout, os.Stderr)
			stop()
			os.Exit(code)
		}
	}

	cfg, err := config.Load(os.Getenv(envConfigFile))
	if err != nil {
		fmt.Fprintf(os.Stderr, "resemble-image: %v\n", err)
		os.Exit(1)
	}

	// Log to stderr (stdout is for MCP protocol)
	logger := newLogger(os.Stderr, cfg.LogLevel)
	logger.Debug().
		Str("version", Version).
		Str("built", BuildTime).
		Str("commit", GitCommit).
		Msg("resemble-image MCP server starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	if err := srv.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Fatal().Err(err).Msg("server error")
	}
}

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func printHelp() {
	fmt.Println("resemble-image - rewrite resemble-image() calls into CSS gradients")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  resemble-image                       Run the MCP server on stdin/stdout")
	fmt.Println("  resemble-image transform [flags] FILE...")
	fmt.Println("                                       Rewrite stylesheets")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Transform flags:")
	fmt.Println("  -config FILE     HCL config file")
	fmt.Println("  -o DIR           Write results into DIR instead of stdout")
	fmt.Println("  -j N             Number of files processed at once")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  RESEMBLE_CONFIG=FILE         Config file for server mode")
	fmt.Println("  RESEMBLE_FIDELITY=25%        Default stop spacing")
	fmt.Println("  RESEMBLE_GENERATOR=default   default, simple or complex")
	fmt.Println("  RESEMBLE_DIRECTION=90deg     Gradient direction, empty to omit")
	fmt.Println("  RESEMBLE_BASE_DIR=DIR        Root for relative image paths")
	fmt.Println("  RESEMBLE_TIMEOUT=30s         Remote image fetch timeout")
	fmt.Println("  RESEMBLE_LOG_LEVEL=debug     Enable debug logging")
}
