package cmd

import (
	"fmt"

	"github.com/GriffinCanCode/wildcard/internal/config"
	"github.com/GriffinCanCode/wildcard/internal/logging"
	"github.com/GriffinCanCode/wildcard/internal/monitoring"
	"github.com/GriffinCanCode/wildcard/internal/pathset"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootOptions holds the persistent flags.
type rootOptions struct {
	configPath string
	excludes   []string
	ignoreCase bool
	logLevel   string
	metricsOut string
}

// environment is the state shared by every subcommand of one invocation.
type environment struct {
	opts    rootOptions
	cfg     *config.Config
	logger  *logging.Logger
	metrics *monitoring.Metrics
	session *pathset.Session
}

// setup resolves configuration from the environment, the config file and
// the flags, in increasing order of precedence.
func (e *environment) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if e.opts.configPath != "" {
		if cfg, err = config.LoadFile(e.opts.configPath, cfg); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = e.opts.logLevel
	}
	if flags.Changed("ignore-case") {
		cfg.Scan.IgnoreCase = e.opts.ignoreCase
	}
	if flags.Changed("metrics-out") {
		cfg.Metrics.OutputPath = e.opts.metricsOut
	}
	cfg.Scan.DefaultExcludes = append(cfg.Scan.DefaultExcludes, e.opts.excludes...)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(logging.ForMode(cfg.Logging.Development, cfg.Logging.Level))
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	e.cfg = cfg
	e.logger = logger
	e.metrics = monitoring.NewMetrics()
	e.session = pathset.NewSession(
		pathset.WithDefaultExcludes(cfg.Scan.DefaultExcludes...),
		pathset.WithLogger(logger.Logger),
		pathset.WithMetrics(e.metrics),
	)
	return nil
}

// run wraps a command body so that metrics are exported and logs flushed
// whether or not the body fails.
func (e *environment) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd, args)
		if ferr := e.finish(); err == nil {
			err = ferr
		}
		return err
	}
}

func (e *environment) finish() error {
	defer func() { _ = e.logger.Sync() }()

	if e.cfg.Metrics.OutputPath == "" {
		return nil
	}
	if err := e.metrics.WriteTextfile(e.cfg.Metrics.OutputPath); err != nil {
		return err
	}
	e.logger.Debug("metrics written", zap.String("path", e.cfg.Metrics.OutputPath))
	return nil
}

// selectEntries builds a collection from a root and pattern arguments.
func (e *environment) selectEntries(dir string, patterns []string, regex bool) (*pathset.Collection, error) {
	c := e.session.New()

	var err error
	switch {
	case regex:
		err = c.Regex(dir, patterns...)
	case e.cfg.Scan.IgnoreCase:
		err = c.GlobIgnoreCase(dir, patterns...)
	default:
		err = c.Glob(dir, patterns...)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select entries under %s: %w", dir, err)
	}
	return c, nil
}
