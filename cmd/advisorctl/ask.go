package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"f1-monk/internal/repository"
	"f1-monk/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	var seed uint64
	askCmd := &cobra.Command{
		Use:   "ask QUESTION...",
		Short: "Answer questions the way the chat endpoint does",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(cmd.Context(), kbFlag, seed, args, os.Stdout, cliLogger())
		},
	}
	askCmd.Flags().Uint64VarP(&seed, "seed", "s", 1, "random seed for greeting selection")
	rootCmd.AddCommand(askCmd)
}

// runAsk sends each question through one conversation and prints the answers.
func runAsk(ctx context.Context, kbPath string, seed uint64, questions []string, w io.Writer, log *zap.Logger) error {
	knowledge := service.NewKnowledgeBase(log)
	if err := knowledge.LoadFrom(ctx, repository.NewFileKnowledgeProvider(kbPath)); err != nil {
		return err
	}

	tracker := service.NewAnalyticsTracker(time.Now, log)
	classifier := service.NewIntentClassifier(service.NewSeededRand(seed), log)
	conversation := service.NewConversation(service.BuildWelcome(nil, nil), knowledge, classifier, tracker, time.Now, log)

	for _, q := range questions {
		result, err := conversation.Send(q)
		if err != nil {
			_, _ = fmt.Fprintf(w, "> %s\n! %v\n\n", q, err)
			continue
		}
		_, _ = fmt.Fprintf(w, "> %s\n%s\n", q, result.Reply.Text)
		meta := []string{"source=" + string(result.Source)}
		if result.Intent != "" {
			meta = append(meta, "intent="+result.Intent)
		}
		meta = append(meta, fmt.Sprintf("confidence=%.2f", result.Confidence))
		if result.EntryID != 0 {
			meta = append(meta, fmt.Sprintf("entry=%d", result.EntryID))
		}
		_, _ = fmt.Fprintf(w, "[%s]\n\n", strings.Join(meta, " "))
	}
	return nil
}
