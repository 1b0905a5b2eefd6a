// Package cli implements the modeler command-line interface using Cobra.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"modeler/internal/catalog"
	"modeler/internal/config"
	"modeler/internal/memory"
	"modeler/internal/planner"
)

// runtime is the state shared by subcommands after flag and config parsing.
type runtime struct {
	out    io.Writer
	errOut io.Writer

	configPath string
	logLevel   string

	cfg config.Config
	log zerolog.Logger
}

// NewRootCmd constructs the command tree writing results to out and logs to errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	rt := &runtime{out: out, errOut: errOut}
	root := &cobra.Command{
		Use:   "modeler",
		Short: "Pick the smallest SageMaker instance for a model and print its deployment snippet",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	// Persistent flags -> runtime
	root.PersistentFlags().StringVar(&rt.configPath, "config", "", "Config file (.yaml, .json or .toml)")
	root.PersistentFlags().StringVar(&rt.logLevel, "log-level", "", "Log level: debug|info|warn|error (defaults to config or info)")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return rt.setup()
	}

	root.AddCommand(newPlanCmd(rt), newInstancesCmd(rt), newTasksCmd(rt), newServeCmd(rt))
	return root
}

// setup loads the config file (if any), applies defaults and builds the logger.
func (rt *runtime) setup() error {
	if rt.configPath != "" {
		cfg, err := config.Load(rt.configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		rt.cfg = cfg
	}
	if rt.logLevel != "" {
		rt.cfg.LogLevel = rt.logLevel
	}
	rt.cfg.ApplyDefaults()

	lvl, err := zerolog.ParseLevel(strings.ToLower(rt.cfg.LogLevel))
	if err != nil {
		return fmt.Errorf("invalid log level %q", rt.cfg.LogLevel)
	}
	rt.log = zerolog.New(zerolog.ConsoleWriter{Out: rt.errOut, NoColor: true}).
		Level(lvl).With().Timestamp().Logger()
	return nil
}

// catalog loads the configured catalog, or catalogPath when non-empty.
func (rt *runtime) catalog(catalogPath string) (catalog.Catalog, error) {
	if catalogPath == "" {
		catalogPath = rt.cfg.CatalogPath
	}
	return catalog.LoadOverlay(catalogPath)
}

// planner builds a Planner over the resolved catalog. A non-positive
// overhead falls back to the configured one.
func (rt *runtime) planner(catalogPath string, overhead float64) (*planner.Planner, error) {
	cat, err := rt.catalog(catalogPath)
	if err != nil {
		return nil, err
	}
	if overhead <= 0 {
		overhead = rt.cfg.MemoryOverhead
	}
	return planner.New(cat,
		planner.WithEstimator(memory.WithOverhead(overhead)),
		planner.WithLogger(rt.log),
	)
}
