package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tasklist/internal/config"
	"tasklist/internal/logging"
	"tasklist/internal/tui"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd        *cobra.Command
	config     *config.Config
	configPath string

	openRepo RepositoryFactory
	confirm  Confirmer
	runUI    UIRunner
}

// RootOption customizes a RootCommand.
type RootOption func(*RootCommand)

// WithRepositoryFactory replaces config.CreateRepository.
func WithRepositoryFactory(f RepositoryFactory) RootOption {
	return func(r *RootCommand) { r.openRepo = f }
}

// WithConfirmer replaces the interactive confirmation prompt.
func WithConfirmer(c Confirmer) RootOption {
	return func(r *RootCommand) { r.confirm = c }
}

// WithUIRunner replaces the interactive list.
func WithUIRunner(u UIRunner) RootOption {
	return func(r *RootCommand) { r.runUI = u }
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(opts ...RootOption) *RootCommand {
	root := &RootCommand{
		openRepo: config.CreateRepository,
		confirm:  huhConfirm,
		runUI:    tui.Run,
	}
	for _, opt := range opts {
		opt(root)
	}

	root.cmd = &cobra.Command{
		Use:   "tasklist",
		Short: "A small persistent task list",
		Long: `tasklist keeps a list of named tasks in a local SQLite database.

Run without a command to open the interactive list.

EXAMPLES:
  tasklist                         # Open the interactive list
  tasklist add Buy milk            # Add a task
  tasklist list                    # Show tasks with their positions
  tasklist rename 2 Walk the dog   # Rename the task at position 2
  tasklist delete 1                # Delete the task at position 1

CONFIGURATION:
  Priority order: command-line flags > environment variables > config file > defaults

    TASKLIST_DATA_DIR                Data directory (default: ~/.tasklist)
    TASKLIST_DB_FILENAME             Database filename (default: tasks.db)
    TASKLIST_DIR_PERMISSIONS         Data directory permissions, octal (default: 0755)
    TASKLIST_DEBUG                   Enable debug logging on stderr
    TASKLIST_TITLE                   Title of the interactive list (default: Tasks)

  The config file is <data dir>/config.yaml unless --config is given.
  dir_permissions is octal there too (0755, 755 and 0o755 are the same).
  "tasklist config --write" saves the effective configuration to it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.loadConfig(cmd)
		},
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.runInteractive(cmd)
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Command exposes the cobra command, mainly for tests.
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// ExecuteContext runs the root command with ctx available to every command.
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()
	flags.String("data-dir", "", "Data directory (overrides TASKLIST_DATA_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TASKLIST_DB_FILENAME)")
	flags.String("config", "", "Config file (default: <data dir>/config.yaml)")
	flags.Bool("debug", false, "Enable debug logging (overrides TASKLIST_DEBUG)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long:  "List all tasks in the order they were added, numbered by position.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withApp(cmd, func(app *App) Command { return NewListCommand(app) }, args)
		},
	}

	addCmd := &cobra.Command{
		Use:   "add <name...>",
		Short: "Add a task",
		Long:  "Add a task. All arguments are joined with spaces to form its name.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withApp(cmd, func(app *App) Command { return NewAddCommand(app) }, args)
		},
	}

	renameCmd := &cobra.Command{
		Use:   "rename <position> <name...>",
		Short: "Rename a task",
		Long:  "Rename the task at the given position, as shown by list.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withApp(cmd, func(app *App) Command { return NewRenameCommand(app) }, args)
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <position>",
		Short: "Delete a task",
		Long:  "Delete the task at the given position, as shown by list. This cannot be undone.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			return r.withApp(cmd, func(app *App) Command { return NewDeleteCommand(app, force) }, args)
		},
	}
	deleteCmd.Flags().BoolP("force", "f", false, "Skip confirmation")

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every task and recreate the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			return r.withApp(cmd, func(app *App) Command { return NewResetCommand(app, force) }, args)
		},
	}
	resetCmd.Flags().BoolP("force", "f", false, "Skip confirmation")

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Show database location, schema version and task count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withApp(cmd, func(app *App) Command { return NewInfoCommand(app) }, args)
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long:  "Print the effective configuration as YAML. With --write, save it to the config file instead.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if write, _ := cmd.Flags().GetBool("write"); write {
				return r.writeConfig(cmd)
			}
			data, err := r.config.YAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	configCmd.Flags().Bool("write", false, "Save the effective configuration to the config file")

	uiCmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive list (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runInteractive(cmd)
		},
	}

	r.cmd.AddCommand(
		listCmd,
		addCmd,
		renameCmd,
		deleteCmd,
		resetCmd,
		infoCmd,
		configCmd,
		uiCmd,
	)
}

// loadConfig builds the configuration from flags, environment and file.
func (r *RootCommand) loadConfig(cmd *cobra.Command) error {
	flags := cmd.Flags()
	overrides := &config.ConfigOverrides{}
	if flags.Changed("data-dir") {
		v, _ := flags.GetString("data-dir")
		overrides.DataDir = &v
	}
	if flags.Changed("db-filename") {
		v, _ := flags.GetString("db-filename")
		overrides.DBFilename = &v
	}
	if flags.Changed("config") {
		v, _ := flags.GetString("config")
		overrides.ConfigPath = &v
	}
	if flags.Changed("debug") {
		v, _ := flags.GetBool("debug")
		overrides.Debug = &v
	}

	loader := config.NewLoader()
	cfg, err := loader.LoadWithOverrides(overrides)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	r.config = cfg
	r.configPath = loader.Path()

	logging.Default().SetDebug(cfg.Application.Debug)
	logging.Debugf("database at %s", cfg.GetDatabasePath())
	return nil
}

func (r *RootCommand) writeConfig(cmd *cobra.Command) error {
	if err := r.config.Save(r.configPath); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", r.configPath)
	return err
}

// withApp opens the store, loads the list and runs the command built by
// newCmd. The store is closed when the command returns.
func (r *RootCommand) withApp(cmd *cobra.Command, newCmd func(*App) Command, args []string) error {
	app, closeApp, err := r.openApp(cmd)
	if err != nil {
		return err
	}
	defer closeApp()
	return newCmd(app).Execute(cmd.Context(), args)
}

func (r *RootCommand) openApp(cmd *cobra.Command) (*App, func(), error) {
	if r.config == nil {
		return nil, nil, fmt.Errorf("configuration not initialized")
	}

	eh := NewErrorHandler()
	repo, err := r.openRepo(r.config)
	if err != nil {
		return nil, nil, eh.Handle("open task list", err)
	}

	app := NewApp(repo, r.config, cmd.OutOrStdout(), r.confirm)
	if _, err := app.tasks.Refresh(cmd.Context()); err != nil {
		repo.Close()
		return nil, nil, eh.Handle("load tasks", err)
	}

	closeApp := func() {
		if err := repo.Close(); err != nil {
			logging.Errorf("closing database: %v", err)
		}
	}
	return app, closeApp, nil
}

func (r *RootCommand) runInteractive(cmd *cobra.Command) error {
	app, closeApp, err := r.openApp(cmd)
	if err != nil {
		return err
	}
	defer closeApp()

	if err := r.runUI(cmd.Context(), app.tasks, r.config.Display.Title); err != nil {
		return app.errors.Handle("run task list", err)
	}
	return nil
}
