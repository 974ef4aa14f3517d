package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/nguyentantai21042004/srt-strip/internal/config"
	"github.com/nguyentantai21042004/srt-strip/internal/logger"
	"github.com/nguyentantai21042004/srt-strip/internal/processor"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath      string
	logLevel        string
	continueOnError bool
}

// newRootCmd builds the command. fs and out are injected so tests can run
// against memory.
func newRootCmd(fs afero.Fs, out io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "srt-strip [file.srt ...]",
		Short: "Convert SubRip subtitles to plain text",
		Long: `srt-strip removes cue numbers, timestamps and markup tags from each
.srt file given, writes the dialogue to a .txt file next to it and deletes
the original. "movie.en.srt" becomes "movie.txt". Other arguments are
ignored. Use -- to end flag parsing when a path starts with a dash:

  srt-strip -- -draft.srt`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, args, opts, fs, out)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to YAML config file")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	cmd.Flags().BoolVar(&opts.continueOnError, "continue-on-error", false, "Keep converting remaining files after a failure")

	return cmd
}

func runRoot(cmd *cobra.Command, args []string, opts *rootOptions, fs afero.Fs, out io.Writer) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log.Debug(ctx, "Config: level=%s format=%s on_error=%s",
		cfg.Logging.Level, cfg.Logging.Format, cfg.Conversion.OnError)

	proc := processor.New(cfg, fs, out, log)
	res := proc.Run(ctx, args)

	if res.Interrupted != nil {
		return fmt.Errorf("interrupted, %d file(s) not processed: %w", len(res.Remaining), res.Interrupted)
	}
	if n := len(res.Failed); n > 0 {
		return fmt.Errorf("%d file(s) failed: %w", n, res.Err())
	}

	return nil
}

// loadConfig reads the optional config file and applies flag overrides
func loadConfig(opts *rootOptions) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if opts.logLevel != "" {
		cfg.Logging.Level = strings.ToLower(opts.logLevel)
	}
	if opts.continueOnError {
		cfg.Conversion.OnError = config.OnErrorContinue
	}

	return cfg, nil
}
