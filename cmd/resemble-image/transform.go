package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/css-resemble-image/internal/config"
)

// runTransform implements the transform subcommand and returns the process
// exit code.
func runTransform(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("transform", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "HCL config file")
	outDir := fs.String("o", "", "write results into this directory instead of stdout")
	jobs := fs.Int("j", runtime.NumCPU(), "number of files processed at once")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	files := fs.Args()
	if len(files) == 0 {
		fmt.Fprintln(stderr, "transform: no input files")
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "transform: %v\n", err)
		return 1
	}
	logger := newLogger(stderr, cfg.LogLevel)
	ctx = logger.WithContext(ctx)

	if *outDir != "" {
		if err := checkOutputNames(files); err != nil {
			fmt.Fprintf(stderr, "transform: %v\n", err)
			return 2
		}
		if err := os.MkdirAll(*outDir, 0o755); err != nil {
			fmt.Fprintf(stderr, "transform: %v\n", err)
			return 1
		}
	}

	results := make([]string, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(*jobs, 1))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			out, err := transformFile(gctx, cfg, path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if *outDir == "" {
				results[i] = out
				return nil
			}
			dst := filepath.Join(*outDir, filepath.Base(path))
			if err := os.WriteFile(dst, []byte(out), 0o644); err != nil {
				return err
			}
			logger.Info().Str("file", path).Str("output", dst).Msg("transformed")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(stderr, "transform: %v\n", err)
		return 1
	}

	for _, out := range results {
		if _, err := io.WriteString(stdout, out); err != nil {
			fmt.Fprintf(stderr, "transform: %v\n", err)
			return 1
		}
	}
	return 0
}

// checkOutputNames rejects inputs that would land on the same file in the
// output directory.
func checkOutputNames(files []string) error {
	seen := make(map[string]string, len(files))
	for _, path := range files {
		name := filepath.Base(path)
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("%s and %s both write %s", prev, path, name)
		}
		seen[name] = path
	}
	return nil
}

// transformFile rewrites one stylesheet. Relative image paths resolve
// against the stylesheet's directory unless a base dir is configured.
func transformFile(ctx context.Context, cfg config.Config, path string) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if cfg.BaseDir == "" {
		cfg.BaseDir = filepath.Dir(path)
	}

	t, err := cfg.Transformer()
	if err != nil {
		return "", err
	}
	return t.TransformStylesheet(ctx, string(src))
}
