// Package cli implements the reflectkit command line tool: static listings
// of struct fields and accessors for the types of a Go package.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"reflectkit/internal/analyze"
	"reflectkit/internal/common"
)

var (
	ErrAmbiguousType = errors.New("type name is ambiguous")
	ErrNoPackages    = errors.New("no packages matched")
)

type app struct {
	v      *viper.Viper
	cfg    *Config
	logger *zap.Logger
}

// NewRootCommand creates the reflectkit command tree. Every call returns an
// independent tree with its own configuration.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	var cfgFile string

	root := &cobra.Command{
		Use:   "reflectkit",
		Short: "Inspect struct fields and accessors of Go packages",
		Long: `reflectkit loads Go packages without running them and lists what the
runtime introspection of the reflectkit library would see: the fields of a
struct and its embedded ancestors, its getters and setters, and how they pair up.`,
		Example: `  # List every field of PremiumMember, promoted ones included
  reflectkit fields ./internal/fixture PremiumMember --all

  # Getters and setters as YAML
  reflectkit accessors ./internal/fixture Person --format yaml`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cfgFile)
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			_ = a.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default ./reflectkit.yaml)")
	flags.String("format", FormatText, "output format: text or yaml")
	flags.Bool("no-color", false, "disable colored output")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")

	_ = a.v.BindPFlag("format", flags.Lookup("format"))
	_ = a.v.BindPFlag("no_color", flags.Lookup("no-color"))
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))

	root.AddCommand(
		a.newFieldsCommand(),
		a.newAccessorsCommand(),
		a.newBindCommand(),
		a.newTypesCommand(),
	)

	return root
}

func (a *app) init(cfgFile string) error {
	cfg, err := LoadConfig(a.v, cfgFile)
	if err != nil {
		return err
	}

	logger, err := NewLogger(cfg.Log.Level)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	a.logger.Debug("configuration loaded",
		zap.String("file", a.v.ConfigFileUsed()),
		zap.String("format", cfg.Format),
		zap.Strings("ignore", cfg.Ignore),
	)

	return nil
}

func (a *app) load(pattern string) (*analyze.Analyzer, error) {
	analyzer := analyze.NewAnalyzer("")

	graph, err := analyzer.LoadPackages(pattern)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("packages loaded",
		zap.String("pattern", pattern),
		zap.Int("packages", len(graph.Packages)),
		zap.Int("types", len(graph.Types)),
	)

	return analyzer, nil
}

// resolve finds the single loaded type called name.
func (a *app) resolve(analyzer *analyze.Analyzer, name string) (analyze.TypeID, error) {
	ids := analyzer.Graph().Find(name)

	id, ok := common.First(ids)
	if !ok {
		return analyze.TypeID{}, fmt.Errorf("%w: %s", analyze.ErrTypeNotFound, name)
	}
	if len(ids) > 1 {
		return analyze.TypeID{}, fmt.Errorf("%w: %s is declared in %d packages", ErrAmbiguousType, name, len(ids))
	}

	a.logger.Debug("type resolved", zap.Stringer("type", id))

	return id, nil
}
