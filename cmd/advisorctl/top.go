package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"f1-monk/internal/models"
	"f1-monk/internal/repository"
	"f1-monk/internal/service"
	"f1-monk/pkg/config"
	"f1-monk/pkg/postgres"

	"github.com/spf13/cobra"
)

func init() {
	var limit int
	topCmd := &cobra.Command{
		Use:   "top",
		Short: "Show the most frequently matched questions from exported analytics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTop(cmd.Context(), limit, os.Stdout)
		},
	}
	topCmd.Flags().IntVarP(&limit, "limit", "n", service.DefaultTopN, "number of questions")
	rootCmd.AddCommand(topCmd)
}

func runTop(ctx context.Context, limit int, w io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := cliLogger()
	db, err := postgres.NewPool(ctx, &cfg.Database, log)
	if err != nil {
		return err
	}
	defer db.Close()

	records, err := repository.NewAnalyticsRepository(db, log).ListAll(ctx)
	if err != nil {
		return err
	}

	tracker := service.NewAnalyticsTracker(time.Now, log)
	tracker.Restore(records)
	printTop(tracker.TopN(limit), w)
	return nil
}

func printTop(top []models.QuestionAnalytics, w io.Writer) {
	if len(top) == 0 {
		_, _ = fmt.Fprintln(w, "No questions recorded yet.")
		return
	}
	for i, a := range top {
		_, _ = fmt.Fprintf(w, "%2d. %-50s %5d  %s  (%s)\n",
			i+1, a.Question, a.Count, a.LastAskedAt.Format(time.DateTime), models.CategoryLabel(a.Category))
	}
}
