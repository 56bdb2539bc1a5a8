// Package cli implements the contacts command-line interface. Without a
// subcommand it opens the phone book and runs the interactive menu.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/contacts/internal/book"
	"github.com/mesh-intelligence/contacts/internal/console"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

// exitUserError is the process exit code when a command fails.
const exitUserError = 1

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	file      string
	verbose   bool
}

// app is the state shared by the commands of one root command.
type app struct {
	flags  rootFlags
	cfg    types.Config
	logger *zap.Logger
}

// NewRootCmd creates the top-level "contacts" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "contacts",
		Short: "A console phone book for people and organizations",
		Long: "contacts keeps people and organizations in a local JSON file.\n" +
			"Run without a subcommand to add, list, search, edit and delete\n" +
			"records through an interactive menu.",
		Args: cobra.NoArgs,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: a.runShell,
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/contacts)")
	root.PersistentFlags().StringVar(&a.flags.file, "file", "", "phone book file (default: ./phonebook.json)")
	root.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newCountCmd(a))
	root.AddCommand(newListCmd(a))
	root.AddCommand(newSearchCmd(a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
// An interrupt cancels the interactive menu at its next prompt.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(exitUserError)
	}
}

// setup resolves configuration and builds the logger.
func (a *app) setup() error {
	cfg, err := a.resolveConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	a.cfg = cfg
	a.logger = logger
	a.logger.Debug("configuration resolved",
		zap.String("file", cfg.File), zap.String("log_level", cfg.LogLevel))
	return nil
}

// openBook opens the configured phone book. A load failure is reported on
// stderr and the book starts empty; the interactive menu reports it itself.
func (a *app) openBook(cmd *cobra.Command, reportLoadError bool) (*book.Book, error) {
	b, err := book.Open(a.cfg.File, book.WithLogger(a.logger))
	if err != nil {
		return nil, err
	}
	if err := b.LoadError(); err != nil && reportLoadError {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error deserializing contacts: %v\n", err)
	}
	return b, nil
}

func (a *app) runShell(cmd *cobra.Command, args []string) error {
	b, err := a.openBook(cmd, false)
	if err != nil {
		return err
	}
	shell := console.New(b, cmd.InOrStdin(), cmd.OutOrStdout(), console.WithLogger(a.logger))
	return shell.Run(cmd.Context())
}
