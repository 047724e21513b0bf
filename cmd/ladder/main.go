package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/internal/config"
	"github.com/katalvlaran/wordladder/nearby"
)

// Build-time variables set via ldflags.
var version = "0.1.0"

var (
	flagConfig   string
	flagDict     string
	flagLogLevel string
	flagFmt      string

	cfg *config.Config
	log *logrus.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "ladder",
		Short:   "Find shortest word ladders",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd)
		},
		SilenceUsage: true,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagDict, "dict", "", "Word list, plain text or YAML (env: LADDER_DICT)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (env: LADDER_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&flagFmt, "format", "text", "Output format: text|json")

	rootCmd.AddCommand(newFindCmd())
	rootCmd.AddCommand(newNeighborsCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newComponentsCmd())

	return rootCmd
}

// setup resolves configuration. Flags take precedence over env and file,
// and are merged before validation.
func setup(cmd *cobra.Command) error {
	switch flagFmt {
	case "text", "json":
	default:
		return fmt.Errorf("unknown format %q: want text or json", flagFmt)
	}

	c, err := config.Load(flagConfig, func(c *config.Config) {
		if flagDict != "" {
			c.DictPath = flagDict
		}
		if flagLogLevel != "" {
			c.LogLevel = flagLogLevel
		}
		if f := cmd.Flags().Lookup("addr"); f != nil && f.Changed {
			c.Addr = f.Value.String()
		}
		if f := cmd.Flags().Lookup("max-depth"); f != nil && f.Changed {
			if d, err := strconv.Atoi(f.Value.String()); err == nil {
				c.MaxDepth = d
			}
		}
	})
	if err != nil {
		return err
	}
	cfg = c
	log = cfg.Logger()
	log.SetOutput(os.Stderr)
	return nil
}

// loadProvider loads the configured dictionary and wraps it in a
// neighbor provider.
func loadProvider() (*dictionary.Set, *nearby.Words, error) {
	if cfg.DictPath == "" {
		return nil, nil, fmt.Errorf("no dictionary configured: use --dict or LADDER_DICT")
	}
	dict, err := dictionary.LoadFile(cfg.DictPath)
	if err != nil {
		return nil, nil, err
	}
	log.WithFields(logrus.Fields{"path": cfg.DictPath, "words": dict.Len()}).Debug("dictionary loaded")
	return dict, nearby.New(dict, nearby.WithAlphabet(cfg.Alphabet)), nil
}
