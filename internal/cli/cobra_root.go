package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"project-tracker/internal/api"
	"project-tracker/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	api    api.API
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(apiInstance api.API, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		api:    apiInstance,
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "pt",
		Short: "A command-line project time tracking application",
		Long: `Project Tracker (pt) is a command-line application for tracking time
spent on projects and other activities.

EXAMPLES:
  pt project add "Website redesign"        # Register a project
  pt project switch "Website redesign"     # Make it the current project
  pt event start "Wireframes"              # Start an event on the current project
  pt event start "Lunch" --non-project     # Start a non-project event
  pt event stop                            # Complete the most recent active event
  pt report week                           # Weekly report for the current week
  pt report month --month 2026-08          # Monthly report for August 2026
  pt export                                # Export everything to CSV
  pt backup create                         # Snapshot the data file
  pt check                                 # Scan for integrity problems

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  PT_DATA_DIR                              Data directory (default: ~/.pt)
  PT_BACKUP_KEEP                           Backups kept by 'backup clean' (default: 10)
  PT_TIME_DISPLAY_FORMAT                   Time format (default: 2006-01-02 15:04:05)
  PT_VALIDATION_NAME_MIN                   Min name length (default: 1)
  PT_VALIDATION_NAME_MAX                   Max name length (default: 255)
  PT_APP_VERBOSE                           Enable verbose output (default: false)
  PT_DEBUG                                 Enable debug logging

TIME ARGUMENTS:
  Explicit times accept: 2006-01-02T15:04:05Z07:00, "2006-01-02 15:04:05",
  "2006-01-02 15:04", 2006-01-02, or a bare clock time like 15:04 (today).

GETTING HELP:
  pt [command] --help                      # Get help for any specific command`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.getConfigFromFlags()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("data-dir", "", "Data directory (overrides PT_DATA_DIR)")
	flags.Int("backup-keep", 0, "Backups kept by 'backup clean' (overrides PT_BACKUP_KEEP)")
	flags.String("time-format", "", "Time display format (overrides PT_TIME_DISPLAY_FORMAT)")
	flags.Int("name-min-length", 0, "Minimum name length (overrides PT_VALIDATION_NAME_MIN)")
	flags.Int("name-max-length", 0, "Maximum name length (overrides PT_VALIDATION_NAME_MAX)")
	flags.Bool("verbose", false, "Enable verbose output (overrides PT_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	r.cmd.AddCommand(
		r.projectCommand(),
		r.eventCommand(),
		r.reportCommand(),
		r.exportCommand(),
		r.backupCommand(),
		r.checkCommand(),
	)
}

func (r *RootCommand) app() *App {
	return NewApp(r.api, r.config)
}

func (r *RootCommand) projectCommand() *cobra.Command {
	projectCmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
		Long:  "Register, list, switch, update, and remove projects.",
	}

	var description string
	addCmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a new project",
		Long:  "Register a new project. The first project added becomes the current project.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewProjectCommand(r.app()).Add(args[0], description)
		},
	}
	addCmd.Flags().StringVarP(&description, "description", "d", "", "Project description")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		Long:  "List all projects. The current project is marked with an asterisk.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewProjectCommand(r.app()).List()
		},
	}

	switchCmd := &cobra.Command{
		Use:   "switch [name|id]",
		Short: "Switch the current project",
		Long:  "Make the named project current. New events default to the current project.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewProjectCommand(r.app()).Switch(args[0])
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove [name|id]",
		Short: "Remove a project",
		Long: `Remove a project from the registry.

Events linked to the project are kept; reports list their time under
an unknown project.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewProjectCommand(r.app()).Remove(args[0])
		},
	}

	var newName, newDescription string
	updateCmd := &cobra.Command{
		Use:   "update [name|id]",
		Short: "Update a project",
		Long:  "Change a project's name or description.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewProjectCommand(r.app()).Update(args[0], newName, newDescription)
		},
	}
	updateCmd.Flags().StringVar(&newName, "name", "", "New project name")
	updateCmd.Flags().StringVarP(&newDescription, "description", "d", "", "New project description")

	currentCmd := &cobra.Command{
		Use:   "current",
		Short: "Show the current project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewProjectCommand(r.app()).Current()
		},
	}

	projectCmd.AddCommand(addCmd, listCmd, switchCmd, removeCmd, updateCmd, currentCmd)
	return projectCmd
}

func (r *RootCommand) eventCommand() *cobra.Command {
	eventCmd := &cobra.Command{
		Use:   "event",
		Short: "Manage events",
		Long:  "Start, stop, list, update, and delete work events.",
	}

	var startOpts StartOptions
	startCmd := &cobra.Command{
		Use:   "start [title]",
		Short: "Start a new event",
		Long: `Start a new event linked to the current project.

Use --project to link to a different project, or --non-project for
activities outside any project. Use --at to backdate the start time.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewEventCommand(r.app()).Start(args[0], startOpts)
		},
	}
	startCmd.Flags().StringVarP(&startOpts.Description, "description", "d", "", "Event description")
	startCmd.Flags().StringVarP(&startOpts.Project, "project", "p", "", "Project name or id to link the event to")
	startCmd.Flags().BoolVar(&startOpts.NonProject, "non-project", false, "Record a non-project event")
	startCmd.Flags().StringVar(&startOpts.At, "at", "", "Explicit start time")

	var stopAt string
	stopCmd := &cobra.Command{
		Use:   "stop [id]",
		Short: "Complete an event",
		Long: `Complete an event and record its time.

Without an id the most recently started active event is stopped.
Use --at to set an explicit end time.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := ""
			if len(args) == 1 {
				ref = args[0]
			}
			return NewEventCommand(r.app()).Stop(ref, stopAt)
		},
	}
	stopCmd.Flags().StringVar(&stopAt, "at", "", "Explicit end time")

	var filter string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List events",
		Long:  "List events, oldest first. Filter with --filter all|active|completed|non-project.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewEventCommand(r.app()).List(filter)
		},
	}
	listCmd.Flags().StringVarP(&filter, "filter", "f", "all", "Event filter (all, active, completed, non-project)")

	deleteCmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete an event",
		Long:  "Delete an event and its recorded time. This operation cannot be undone.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewEventCommand(r.app()).Delete(args[0])
		},
	}

	var newTitle, newDescription string
	updateCmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update an event",
		Long:  "Change an event's title or description. Times are never changed after the fact.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewEventCommand(r.app()).Update(args[0], newTitle, newDescription)
		},
	}
	updateCmd.Flags().StringVar(&newTitle, "title", "", "New event title")
	updateCmd.Flags().StringVarP(&newDescription, "description", "d", "", "New event description")

	eventCmd.AddCommand(startCmd, stopCmd, listCmd, deleteCmd, updateCmd)
	return eventCmd
}

func (r *RootCommand) reportCommand() *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Generate reports",
		Long:  "Generate weekly, monthly, and efficiency reports from recorded time.",
	}

	var weekDate string
	var weekDetail bool
	weekCmd := &cobra.Command{
		Use:   "week",
		Short: "Weekly report",
		Long:  "Report for the Monday-to-Sunday week containing --date, defaulting to today.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewReportCommand(r.app()).Week(weekDate, weekDetail)
		},
	}
	weekCmd.Flags().StringVar(&weekDate, "date", "", "Any date inside the week to report on")
	weekCmd.Flags().BoolVar(&weekDetail, "detail", false, "Include per-day breakdown and project ranking")

	var month string
	monthCmd := &cobra.Command{
		Use:   "month",
		Short: "Monthly report",
		Long:  "Report for a calendar month given as YYYY-MM, defaulting to the current month.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewReportCommand(r.app()).Month(month)
		},
	}
	monthCmd.Flags().StringVar(&month, "month", "", "Month to report on (YYYY-MM)")

	var from, to string
	efficiencyCmd := &cobra.Command{
		Use:   "efficiency",
		Short: "Efficiency analysis",
		Long:  "Analyze the split between project and non-project time, defaulting to the last 30 days.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewReportCommand(r.app()).Efficiency(from, to)
		},
	}
	efficiencyCmd.Flags().StringVar(&from, "from", "", "Range start")
	efficiencyCmd.Flags().StringVar(&to, "to", "", "Range end")

	reportCmd.AddCommand(weekCmd, monthCmd, efficiencyCmd)
	return reportCmd
}

func (r *RootCommand) exportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export data to CSV",
		Long:  "Write all projects, events, and time records to a CSV file in the data directory.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewStorageCommand(r.app()).Export()
		},
	}
}

func (r *RootCommand) backupCommand() *cobra.Command {
	backupCmd := &cobra.Command{
		Use:   "backup",
		Short: "Manage data backups",
		Long:  "Create, list, restore, and clean timestamped backups of the data file.",
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a backup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewStorageCommand(r.app()).BackupCreate()
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List backups, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewStorageCommand(r.app()).BackupList()
		},
	}

	restoreCmd := &cobra.Command{
		Use:   "restore [name]",
		Short: "Restore a backup",
		Long:  "Replace the current state with a backup's contents and save it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewStorageCommand(r.app()).BackupRestore(args[0])
		},
	}

	var keep int
	cleanCmd := &cobra.Command{
		Use:   "clean",
		Short: "Delete old backups",
		Long:  "Delete old backups, keeping the configured number of most recent ones.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewStorageCommand(r.app()).BackupClean(keep)
		},
	}
	cleanCmd.Flags().IntVar(&keep, "keep", -1, "Number of backups to keep (overrides PT_BACKUP_KEEP)")

	backupCmd.AddCommand(createCmd, listCmd, restoreCmd, cleanCmd)
	return backupCmd
}

func (r *RootCommand) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Scan for integrity problems",
		Long:  "Scan the current state for duplicate ids and dangling references.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewStorageCommand(r.app()).Check()
		},
	}
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	if dataDir, _ := flags.GetString("data-dir"); dataDir != "" {
		r.config.Storage.DataDir = dataDir
	}
	if backupKeep, _ := flags.GetInt("backup-keep"); backupKeep > 0 {
		r.config.Storage.BackupKeep = backupKeep
	}
	if timeFormat, _ := flags.GetString("time-format"); timeFormat != "" {
		r.config.Time.DisplayFormat = timeFormat
	}
	if nameMinLength, _ := flags.GetInt("name-min-length"); nameMinLength > 0 {
		r.config.Validation.NameMinLength = nameMinLength
	}
	if nameMaxLength, _ := flags.GetInt("name-max-length"); nameMaxLength > 0 {
		r.config.Validation.NameMaxLength = nameMaxLength
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return nil
}
