// Package cli implements the nodegraph command-line interface.
//
// The root command opens the terminal editor. Subcommands inspect the
// node type catalog and the effective configuration. All commands share
// --config, --catalog, --log-file and --verbose (-v).
package cli

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/wesen/nodegraph/internal/config"
	"github.com/wesen/nodegraph/internal/tui"
	"github.com/wesen/nodegraph/pkg/geom"
	"github.com/wesen/nodegraph/pkg/nodeeditor"
	"github.com/wesen/nodegraph/pkg/nodetype"
)

// session is what the root command prepares for every subcommand.
type session struct {
	cfg     *config.Config
	catalog *nodetype.Catalog
	logger  *log.Logger
	close   func() error
}

type rootFlags struct {
	configPath  string
	catalogPath string
	logFile     string
	verbose     bool
}

// NewRootCommand builds the nodegraph command tree.
func NewRootCommand() *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:          "nodegraph",
		Short:        "Edit typed node graphs in the terminal",
		Long:         `nodegraph is a terminal editor for typed dataflow node graphs: add nodes from a catalog, wire outputs to inputs, and undo or copy any edit.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(flags)
			if err != nil {
				return err
			}
			cmd.SetContext(withSession(cmd.Context(), s))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if s := sessionFromContext(cmd.Context()); s != nil {
				return s.close()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEditor(cmd.Context(), sessionFromContext(cmd.Context()))
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	pf.StringVar(&flags.catalogPath, "catalog", "", "node type catalog TOML (default: built-in catalog)")
	pf.StringVar(&flags.logFile, "log-file", "", "append logs to this file (overrides log.file)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newCatalogCmd())
	root.AddCommand(newConfigCmd())
	return root
}

// Execute runs the nodegraph CLI.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func openSession(flags rootFlags) (*session, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	if flags.logFile != "" {
		cfg.Log.File = flags.logFile
	}
	level, err := logLevel(cfg.Log.Level, flags.verbose)
	if err != nil {
		return nil, err
	}
	sink, closeSink, err := openLogSink(cfg.Log.File)
	if err != nil {
		return nil, err
	}
	logger := newLogger(sink, level)

	cat := nodetype.Default()
	if flags.catalogPath != "" {
		if cat, err = nodetype.LoadFile(flags.catalogPath); err != nil {
			_ = closeSink()
			return nil, err
		}
	}
	logger.Debug("session ready",
		"config", flags.configPath, "catalog", flags.catalogPath,
		"node_types", len(cat.NodeTypes()), "value_types", len(cat.ValueTypes()))
	return &session{cfg: cfg, catalog: cat, logger: logger, close: closeSink}, nil
}

// metrics returns the terminal cell size from the config.
func (s *session) metrics() tui.Metrics {
	return tui.Metrics{
		CellW: float64(s.cfg.Terminal.CellWidth),
		CellH: float64(s.cfg.Terminal.CellHeight),
	}
}

// newEditor builds an editor configured from the session.
func (s *session) newEditor() *nodeeditor.Editor {
	ec := s.cfg.Editor
	return nodeeditor.New(s.catalog,
		nodeeditor.WithLogger(s.logger),
		nodeeditor.WithClipboard(tui.NewSystemClipboard(s.logger)),
		nodeeditor.WithZoomSpeed(ec.ZoomSpeed),
		nodeeditor.WithHistory(ec.HistoryDepth, ec.HistoryChunk),
		nodeeditor.WithPasteOffset(geom.V(ec.PasteOffset[0], ec.PasteOffset[1])),
		nodeeditor.WithDebug(ec.Debug),
		tui.MenuMetrics(s.metrics()),
	)
}

func runEditor(ctx context.Context, s *session) error {
	if s == nil {
		return fmt.Errorf("no session")
	}
	ed := s.newEditor()
	s.logger.Info("editor started", "id", ed.ID())
	p := tea.NewProgram(tui.NewModel(ed, s.metrics(), s.logger), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	s.logger.Info("editor closed", "nodes", len(ed.Graph().Nodes()), "history", ed.History().Len())
	return nil
}
