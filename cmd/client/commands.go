package main

import (
	"github.com/spf13/cobra"

	"github.com/iudanet/liveclient/internal/client/cli"
)

var (
	reconnectLimit int
	resumeSession  bool
	prefill        map[string]string

	tokenFile string
)

// connectCmd keeps a page live
var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Load a page and keep it live",
	Long: `Fetch the page, open its WebSocket connection and apply server diffs
until interrupted or until the reconnect limit is exhausted.`,
	RunE: runConnect,
}

// replayCmd rebuilds a journaled run offline
var replayCmd = &cobra.Command{
	Use:   "replay [run-id]",
	Short: "Replay a journaled run and print the resulting document",
	Long: `Load the page recorded at the start of a run and apply its inbound
frames in order without a connection. Without run-id the latest run of
--url is used, or the latest run overall.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReplay,
}

// tokenCmd manages the stored bearer token
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage the bearer token",
}

var tokenSetCmd = &cobra.Command{
	Use:   "set [token]",
	Short: "Store the bearer token",
	Long: `Store the bearer token sent with the page request and the WebSocket
handshake. The token is taken from LIVECLIENT_TOKEN, --file, the argument
or an interactive prompt, in that order.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokenSet,
}

var tokenClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored bearer token",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return newCli().RunTokenClear(cmd.Context())
	},
}

// statusCmd shows local state
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show node id, stored session and token state",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return newCli().RunStatus(cmd.Context())
	},
}

var versionCmd = &cobra.Command{
	Use:               "version",
	Short:             "Show version information",
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	Run: func(*cobra.Command, []string) {
		printVersion()
	},
}

func init() {
	connectCmd.Flags().IntVar(&reconnectLimit, "reconnect-limit", 0, "Reconnect attempts before giving up (default from config)")
	connectCmd.Flags().BoolVar(&resumeSession, "resume", false, "Present the stored session id if the page did not change")
	connectCmd.Flags().StringToStringVar(&prefill, "prefill", nil, "Fill form controls after load, id-or-name=value")

	tokenSetCmd.Flags().StringVarP(&tokenFile, "file", "f", "", "Read the token from file")

	tokenCmd.AddCommand(tokenSetCmd, tokenClearCmd)
}

func runConnect(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	if flags.Changed("reconnect-limit") {
		cfg.ReconnectLimit = reconnectLimit
	}
	if flags.Changed("resume") {
		cfg.ResumeSession = resumeSession
	}
	if len(prefill) > 0 {
		if cfg.Prefill == nil {
			cfg.Prefill = map[string]string{}
		}
		for k, v := range prefill {
			cfg.Prefill[k] = v
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	return newCli().RunConnect(cmd.Context())
}

func runReplay(cmd *cobra.Command, args []string) error {
	runID := ""
	if len(args) == 1 {
		runID = args[0]
	}
	return newCli().RunReplay(cmd.Context(), runID)
}

func runTokenSet(cmd *cobra.Command, args []string) error {
	in := cli.TokenInput{FromFile: tokenFile}
	if len(args) == 1 {
		in.FromArgs = args[0]
	}
	return newCli().RunTokenSet(cmd.Context(), in)
}
