package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hamedhamzeh/annotex"
	"github.com/hamedhamzeh/annotex/internal/config"
	"github.com/hamedhamzeh/annotex/internal/history"
	"github.com/hamedhamzeh/annotex/internal/output"
	"github.com/hamedhamzeh/annotex/internal/types"
)

var (
	flagDest      string
	flagScratch   string
	flagImageExts []string
	flagEXIF      bool
	flagNoHistory bool
	flagHistoryDB string
)

var exploreCmd = &cobra.Command{
	Use:   "explore <archive.zip>",
	Short: "Detect the annotation format of an archive and organize its contents",
	Args:  cobra.ExactArgs(1),
	RunE:  runExplore,
}

func init() {
	exploreCmd.Flags().StringVarP(&flagDest, "dest", "d", "", "Parent directory for the workspace (default: current directory)")
	exploreCmd.Flags().StringVar(&flagScratch, "scratch", "", "Fixed extraction directory (default: unique temp dir)")
	exploreCmd.Flags().StringSliceVar(&flagImageExts, "image-ext", nil, "Additional image extensions (comma-separated, repeatable)")
	exploreCmd.Flags().BoolVar(&flagEXIF, "exif", false, "Record EXIF capture dates in the workspace manifest")
	exploreCmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "Do not record this run in the history database")
	exploreCmd.Flags().StringVar(&flagHistoryDB, "history-db", "", "History database path (default: per-user data dir)")
	rootCmd.AddCommand(exploreCmd)
}

func runExplore(cmd *cobra.Command, args []string) error {
	archivePath := args[0]

	cfg := loadExploreConfig(cmd, archivePath)

	opts := []annotex.Option{}
	if flagDest != "" {
		opts = append(opts, annotex.WithOutputDir(flagDest))
	}
	if flagScratch != "" {
		opts = append(opts, annotex.WithScratchDir(flagScratch))
	}
	exts := append([]string{}, cfg.ImageExtensions...)
	exts = append(exts, flagImageExts...)
	if len(exts) > 0 {
		opts = append(opts, annotex.WithImageExtensions(exts...))
	}
	if flagEXIF || cfg.EXIF {
		opts = append(opts, annotex.WithEXIF(true))
	}

	ctx, cancel := contextWithInterrupt()
	defer cancel()

	result, err := annotex.Explore(ctx, archivePath, opts...)
	if err != nil {
		return fmt.Errorf("explore failed: %w", err)
	}

	if !flagNoHistory && !cfg.NoHistory {
		recordRun(ctx, result)
	}

	return writeReport(cmd, result)
}

// loadExploreConfig merges .annotex.yml settings with CLI flags; flags win.
func loadExploreConfig(cmd *cobra.Command, archivePath string) config.Config {
	cfg, err := config.Load(archivePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	if !cmd.Flags().Changed("format") && cfg.Format != "" {
		flagFormat = cfg.Format
	}
	if !cmd.Flags().Changed("dest") && cfg.OutputDir != "" {
		flagDest = cfg.OutputDir
	}
	return cfg
}

// recordRun appends the summary to the history database. History failures
// are warnings, never fatal.
func recordRun(ctx context.Context, result *types.Result) {
	path := flagHistoryDB
	if path == "" {
		path = history.DefaultPath()
	}
	store, err := history.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: opening history: %v\n", err)
		return
	}
	defer func() { _ = store.Close() }()
	if err := store.Record(ctx, result); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
}

func contextWithInterrupt() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		cancel()
	}()
	return ctx, cancel
}

func writeReport(cmd *cobra.Command, result *types.Result) error {
	output.ToolVersion = Version

	var formatter output.Formatter
	switch strings.ToLower(flagFormat) {
	case "json":
		formatter = &output.JSONFormatter{}
	case "markdown", "md":
		formatter = &output.MarkdownFormatter{}
	default:
		formatter = &output.TerminalFormatter{NoColor: flagNoColor}
	}

	w := cmd.OutOrStdout()
	if flagOutput != "" {
		f, err := os.Create(flagOutput)
		if err != nil {
			return fmt.Errorf("creating report file: %w", err)
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	return formatter.Format(w, result)
}
