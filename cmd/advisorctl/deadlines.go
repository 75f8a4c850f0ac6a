package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"f1-monk/internal/models"
	"f1-monk/internal/service"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func init() {
	var profilePath, nowFlag string
	deadlinesCmd := &cobra.Command{
		Use:   "deadlines",
		Short: "Compute deadlines and reminders for a profile file",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			if nowFlag != "" {
				parsed, err := time.Parse(time.DateOnly, nowFlag)
				if err != nil {
					return fmt.Errorf("--now must be YYYY-MM-DD: %w", err)
				}
				now = parsed
			}
			profile, err := loadProfile(profilePath)
			if err != nil {
				return err
			}
			return runDeadlines(profile, now, os.Stdout)
		},
	}
	deadlinesCmd.Flags().StringVarP(&profilePath, "profile", "p", "", "profile YAML file (required)")
	deadlinesCmd.Flags().StringVar(&nowFlag, "now", "", "evaluation date, YYYY-MM-DD (defaults to today)")
	_ = deadlinesCmd.MarkFlagRequired("profile")
	rootCmd.AddCommand(deadlinesCmd)
}

func loadProfile(path string) (*models.UserProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	profile := models.NewUserProfile("", "", "")
	if err := yaml.Unmarshal(data, profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	return profile, nil
}

func runDeadlines(profile *models.UserProfile, now time.Time, w io.Writer) error {
	deadlines := service.ComputeDeadlines(profile, now)
	if len(deadlines) == 0 {
		_, _ = fmt.Fprintln(w, "No upcoming deadlines.")
		return nil
	}

	for _, d := range deadlines {
		_, _ = fmt.Fprintf(w, "%-11s %5d  %s\n", d.Kind, d.DaysRemaining, d.Message)
	}

	if !profile.NotificationsEnabled {
		return nil
	}
	_, _ = fmt.Fprintln(w)
	for _, n := range service.Synthesize(nil, deadlines, now) {
		_, _ = fmt.Fprintf(w, "[%s] %s: %s\n", n.Priority, n.Title, n.Content)
	}
	return nil
}
