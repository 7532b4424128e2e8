package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"daily-planner/config"
	"daily-planner/internal/assistant"
	"daily-planner/internal/model"
	"daily-planner/internal/planner"
	scheduleRepo "daily-planner/internal/schedule/repository/sqlite"
	"daily-planner/pkg/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var output string

	root := &cobra.Command{
		Use:           "plannerctl",
		Short:         "Inspect daily planner schedules",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&output, "output", "o", outputYAML, "output format: yaml|json")

	root.AddCommand(newPreviewCmd(&output))
	root.AddCommand(newStateCmd(&output))
	return root
}

func newPreviewCmd(output *string) *cobra.Command {
	var tasks []string
	var start, at string
	var breakInterval, breakDuration time.Duration

	cmd := &cobra.Command{
		Use:   "preview --task <name> [--task <name>...]",
		Short: "Build a schedule offline with estimated durations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			names := make([]string, 0, len(tasks))
			for _, t := range tasks {
				if t = strings.TrimSpace(t); t != "" {
					names = append(names, t)
				}
			}
			if len(names) == 0 {
				return errors.New("at least one --task is required")
			}

			startAt, err := parseInstant(start, planner.StartOfNextMinute(time.Now()))
			if err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			resolveAt, err := parseInstant(at, startAt)
			if err != nil {
				return fmt.Errorf("--at: %w", err)
			}

			draft := assistant.FallbackDraft(names)
			planned := make([]model.Task, len(draft.Tasks))
			for i, d := range draft.Tasks {
				planned[i] = model.Task{
					ID:          fmt.Sprintf("task-%d", i+1),
					Name:        d.Name,
					Duration:    d.Duration,
					Priority:    d.Priority,
					Description: d.Description,
				}
			}

			s := planner.BuildTimeline(planned, startAt, planner.Policy{
				BreakInterval: breakInterval,
				BreakDuration: breakDuration,
			})
			p := planner.ResolveProgress(s, resolveAt)

			return render(cmd.OutOrStdout(), *output, newPreviewView(s, p, resolveAt))
		},
	}
	cmd.Flags().StringArrayVarP(&tasks, "task", "t", nil, "task name (repeatable)")
	cmd.Flags().StringVar(&start, "start", "", "schedule start, RFC3339 (default: next whole minute)")
	cmd.Flags().StringVar(&at, "at", "", "instant to resolve progress at, RFC3339 (default: start)")
	cmd.Flags().DurationVar(&breakInterval, "break-interval", planner.DefaultBreakInterval, "work time between breaks")
	cmd.Flags().DurationVar(&breakDuration, "break-duration", planner.DefaultBreakDuration, "length of each break")
	return cmd
}

func newStateCmd(output *string) *cobra.Command {
	var dbPath, configPath string

	cmd := &cobra.Command{
		Use:   "state <user-id>",
		Short: "Print a user's stored record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if configPath != "" {
				cfg, err := config.LoadFile(configPath)
				if err != nil {
					return err
				}
				if !cmd.Flags().Changed("db") {
					dbPath = cfg.Storage.Path
				}
			}

			// Open would create a missing file and report every user as absent.
			if _, err := os.Stat(dbPath); err != nil {
				return fmt.Errorf("state store %s: %w", dbPath, err)
			}

			db, err := scheduleRepo.Open(ctx, dbPath)
			if err != nil {
				return err
			}
			defer db.Close()

			state, err := scheduleRepo.New(db, log.NewNop()).GetState(ctx, args[0])
			if err != nil {
				return err
			}
			if !state.Exists() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "no record for user %s\n", args[0])
				return nil
			}
			return render(cmd.OutOrStdout(), *output, newStateView(state))
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "planner.db", "path to the SQLite state store")
	cmd.Flags().StringVar(&configPath, "config", "", "read the store path from this config file")
	return cmd
}

func parseInstant(raw string, fallback time.Time) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	return time.Parse(time.RFC3339, raw)
}
