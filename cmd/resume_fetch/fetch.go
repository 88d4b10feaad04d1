package main

import (
	"fmt"
	"time"

	"github.com/jonathan/resume-fetch/internal/config"
	"github.com/jonathan/resume-fetch/internal/fetch"
	"github.com/jonathan/resume-fetch/internal/rendering"
	"github.com/spf13/cobra"
)

var (
	fetchConfigPath string
	fetchServerURL  string
	fetchUsername   string
	fetchPassword   string
	fetchFormat     string
	fetchTimeout    int
	fetchVerbose    bool
)

func init() {
	// Config file flag (processed first)
	rootCmd.Flags().StringVar(&fetchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	rootCmd.Flags().StringVarP(&fetchServerURL, "server", "s", "", "The server URL (or pass it as the only argument)")
	rootCmd.Flags().StringVarP(&fetchUsername, "user", "u", "", "The username given (defaults to RESUME_USERNAME env var)")
	rootCmd.Flags().StringVarP(&fetchPassword, "password", "p", "", "The password for user (defaults to RESUME_PASSWORD env var)")
	rootCmd.Flags().StringVar(&fetchFormat, "format", "", "Output format: text or json (default text)")
	rootCmd.Flags().IntVar(&fetchTimeout, "timeout", 0, "HTTP timeout in seconds (default 30)")
	rootCmd.Flags().BoolVarP(&fetchVerbose, "verbose", "v", false, "Print detailed debug information")
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(args)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
	defer func() { _ = logger.Sync() }()

	opts := fetch.DefaultOptions()
	opts.Username = cfg.Username
	opts.Password = cfg.Password
	opts.Logger = logger
	if cfg.TimeoutSeconds > 0 {
		opts.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	result, err := fetch.Resume(cmd.Context(), cfg.ServerURL, opts)
	if err != nil {
		return fmt.Errorf("failed to fetch resume: %w", err)
	}
	logger.Debugw("rendering resume", "request_id", result.RequestID, "format", cfg.Format)

	return printResume(cmd, result.Body, cfg.Format)
}

// resolveConfig layers environment, config file, flags and the positional URL,
// then validates the result.
func resolveConfig(args []string) (*config.Config, error) {
	flagCfg := config.Config{
		ServerURL:      fetchServerURL,
		Username:       fetchUsername,
		Password:       fetchPassword,
		Format:         fetchFormat,
		TimeoutSeconds: fetchTimeout,
		Verbose:        fetchVerbose,
	}
	if len(args) == 1 {
		if fetchServerURL != "" && fetchServerURL != args[0] {
			return nil, fmt.Errorf("server URL given both as argument (%s) and --server (%s)", args[0], fetchServerURL)
		}
		flagCfg.ServerURL = args[0]
	}

	cfg := flagCfg
	if fetchConfigPath != "" {
		fileCfg, err := config.LoadConfig(fetchConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	envCfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	cfg = cfg.MergeWithDefaults(*envCfg)
	cfg = cfg.MergeWithDefaults(config.Config{Format: rendering.FormatText})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
