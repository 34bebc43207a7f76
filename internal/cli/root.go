// Package cli wires configuration, logging and the house-roads commands.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/oliverbestmann/house-roads/internal/config"
	"github.com/oliverbestmann/house-roads/internal/observability"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// PlayFunc opens the interactive window. It blocks until the window closes.
type PlayFunc func(ctx context.Context, cfg *config.Config, logger *zap.Logger) error

type Options struct {
	// Play runs the interactive visualization for the play command.
	Play PlayFunc

	// Profile starts a CPU profile and returns a function to stop it.
	// The --profile flag is hidden if nil.
	Profile func() (stop func())
}

type app struct {
	opts Options

	v          *viper.Viper
	configPath string
	profile    bool

	cfg         *config.Config
	logger      *zap.Logger
	stopProfile func()
}

// NewRootCommand builds the house-roads command tree. Without a subcommand
// it behaves like play.
func NewRootCommand(opts Options) *cobra.Command {
	a := &app{opts: opts, v: config.New()}

	root := &cobra.Command{
		Use:   "house-roads",
		Short: "Connect houses with the quickest set of roads.",
		Long: `Shows houses and the roads between them. Click a house to grow the minimum
spanning tree of roads from it, one road at a time.`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
		RunE:               a.runPlay,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "config file in yaml format")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("map", "", "map file or http(s) url, the built-in sample if empty")
	flags.BoolVar(&a.profile, "profile", false, "write a cpu profile")

	if opts.Profile == nil {
		_ = flags.MarkHidden("profile")
	}

	_ = a.v.BindPFlag("logger.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("map.source", flags.Lookup("map"))

	root.AddCommand(a.newPlayCmd())
	root.AddCommand(a.newSolveCmd())
	root.AddCommand(a.newGenerateCmd())

	return root
}

// Execute runs the command tree with the given arguments.
func Execute(ctx context.Context, opts Options, args []string) error {
	root := NewRootCommand(opts)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}

	a.cfg = cfg
	a.logger = logger.With(zap.String("command", cmd.Name()))

	if a.profile && a.opts.Profile != nil {
		a.stopProfile = a.opts.Profile()
	}

	return nil
}

func (a *app) teardown(_ *cobra.Command, _ []string) error {
	if a.stopProfile != nil {
		a.stopProfile()
	}

	// stderr can not be synced on all platforms, ignore that
	_ = a.logger.Sync()
	return nil
}

func (a *app) newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Open the window and pick houses with the mouse",
		Args:  cobra.NoArgs,
		RunE:  a.runPlay,
	}
}

func (a *app) runPlay(cmd *cobra.Command, _ []string) error {
	if a.opts.Play == nil {
		return errors.New("play is not available in this build")
	}

	return a.opts.Play(cmd.Context(), a.cfg, a.logger)
}
