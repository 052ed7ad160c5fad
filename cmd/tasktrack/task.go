package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/akarpov/tasktrack/internal/commands"
	"github.com/akarpov/tasktrack/internal/config"
	"github.com/akarpov/tasktrack/internal/logging"
	"github.com/akarpov/tasktrack/internal/storage"
	"github.com/akarpov/tasktrack/internal/update"
)

func newTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Add, update, view and archive tasks",
	}
	cmd.AddCommand(
		newTaskAddCmd(),
		newTaskUpdateCmd(),
		newTaskViewCmd(),
		newTaskArchiveCmd(),
		newTaskViewArchiveCmd(),
		newTaskStatsCmd(),
		newTaskBrowseCmd(),
	)
	return cmd
}

// openStore resolves configuration and hands the storage path to the
// store. Location discovery stops here; nothing deeper looks at the
// filesystem layout.
func openStore() (*storage.SQLiteStore, error) {
	configPath := cfgFile
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := logging.Init(cfg.Logging); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Storage.Path), 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return storage.Open(cfg.Storage.Path)
}

func runCommand(cmd commands.Command) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	executor := commands.NewExecutor(store)
	result, err := commands.Execute(cmd, executor.Handlers())
	if err != nil {
		return err
	}
	for _, warning := range result.Warnings {
		slog.Warn(warning)
	}
	if result.Message != "" {
		fmt.Println(result.Message)
	}
	return nil
}

func newTaskAddCmd() *cobra.Command {
	args := commands.AddArgs{}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new task",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCommand(commands.Command{Type: commands.TypeAdd, Add: &args})
		},
	}
	cmd.Flags().StringVarP(&args.Project, "project", "p", commands.DefaultProject, "project name")
	cmd.Flags().StringVarP(&args.Description, "task", "t", "", "task description")
	cmd.Flags().StringVarP(&args.DueDate, "due-date", "d", commands.DefaultDueDate(time.Now()), "due date in YYYY-MM-DD form")
	cmd.Flags().BoolVarP(&args.Complete, "complete", "c", false, "create the task already complete")
	_ = cmd.MarkFlagRequired("task")
	return cmd
}

func newTaskUpdateCmd() *cobra.Command {
	args := commands.UpdateArgs{}
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Mark a task complete or delete it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, positional []string) error {
			id, err := parseID(positional[0])
			if err != nil {
				return err
			}
			args.ID = id
			return runCommand(commands.Command{Type: commands.TypeUpdate, Update: &args})
		},
	}
	cmd.Flags().BoolVarP(&args.Complete, "complete", "c", false, "mark the task complete")
	cmd.Flags().BoolVarP(&args.Delete, "delete", "d", false, "delete the task")
	return cmd
}

func newTaskViewCmd() *cobra.Command {
	args := commands.ViewArgs{}
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View active tasks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCommand(commands.Command{Type: commands.TypeView, View: &args})
		},
	}
	cmd.Flags().StringVarP(&args.Project, "project", "p", storage.AllProjects, "view a specific project")
	return cmd
}

func newTaskArchiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "archive <id>",
		Short: "Move a task into the archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, positional []string) error {
			id, err := parseID(positional[0])
			if err != nil {
				return err
			}
			return runCommand(commands.Command{Type: commands.TypeArchive, Archive: &commands.ArchiveArgs{ID: id}})
		},
	}
}

func newTaskViewArchiveCmd() *cobra.Command {
	args := commands.ViewArgs{}
	cmd := &cobra.Command{
		Use:   "view-archive",
		Short: "View archived tasks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCommand(commands.Command{Type: commands.TypeViewArchive, ViewArchive: &args})
		},
	}
	cmd.Flags().StringVarP(&args.Project, "project", "p", storage.AllProjects, "view a specific project")
	return cmd
}

func newTaskStatsCmd() *cobra.Command {
	args := commands.StatsArgs{}
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Count pending or overdue tasks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCommand(commands.Command{Type: commands.TypeStats, Stats: &args})
		},
	}
	cmd.Flags().BoolVarP(&args.Pending, "pending", "p", false, "count pending tasks")
	cmd.Flags().BoolVarP(&args.Overdue, "overdue", "o", false, "count overdue tasks")
	return cmd
}

func newTaskBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse tasks interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			program := tea.NewProgram(update.NewModel(store))
			_, err = program.Run()
			return err
		},
	}
}

func parseID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("task id must be a positive number, got %q", raw)
	}
	return id, nil
}
