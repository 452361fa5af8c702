package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/iudanet/liveclient/internal/client/cli"
	"github.com/iudanet/liveclient/internal/client/iocli"
	"github.com/iudanet/liveclient/internal/config"
	"github.com/iudanet/liveclient/internal/logging"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

var (
	// Global flags
	configPath  string
	pageURL     string
	statePath   string
	journalPath string
	logLevel    string
	logFormat   string

	cfg    *config.Config
	logger *slog.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "liveclient",
	Short: "Headless client for server-driven hlive pages",
	Long: `liveclient loads a server-rendered hlive page, keeps its WebSocket
connection alive and applies the diffs the server pushes to a local
mirror of the document.

Configuration is read from the YAML file given with --config, then from
LIVECLIENT_* environment variables, then from flags.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("url") {
		cfg.URL = pageURL
	}
	if flags.Changed("state") {
		cfg.StatePath = statePath
	}
	if flags.Changed("journal") {
		cfg.JournalPath = journalPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = logFormat
	}

	// логи в stderr, stdout занят выводом команд
	logger, err = logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	slog.SetDefault(logger)

	return nil
}

func newCli() *cli.Cli {
	return cli.New(cfg, iocli.NewStdio(), logger)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to YAML config file")
	rootCmd.PersistentFlags().StringVarP(&pageURL, "url", "u", "", "Page URL (or set LIVECLIENT_URL env)")
	rootCmd.PersistentFlags().StringVar(&statePath, "state", "", "Path to local state database")
	rootCmd.PersistentFlags().StringVar(&journalPath, "journal", "", "Path to frame journal, empty disables it")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", config.DefaultLogFormat, "Log format: auto, text, json")

	rootCmd.AddCommand(connectCmd, replayCmd, tokenCmd, statusCmd, versionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("liveclient\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
