package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

var cfgFile string

func main() {
	rootCmd := &cobra.Command{
		Use:   "tasktrack",
		Short: "Project-tagged personal task tracking in one local SQLite file",
		Long: `tasktrack keeps your tasks in a single SQLite file. Add tasks under a
project, mark them complete or delete them, move finished work into a
read-only archive, and query pending or overdue counts.`,
	}
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.tasktrack/config.yaml)")

	rootCmd.AddCommand(
		newTaskCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show tasktrack version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("tasktrack v%s\n", version)
		},
	}
}
