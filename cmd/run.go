package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pr1ncegupta/skillpath/internal/app"
	"github.com/pr1ncegupta/skillpath/internal/llm"
	"github.com/pr1ncegupta/skillpath/internal/quizgen"
	"github.com/pr1ncegupta/skillpath/internal/roadmap"
	"github.com/pr1ncegupta/skillpath/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	var opts app.Options
	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Test generation will be unavailable.")
	} else {
		opts.Generator = quizgen.New(provider, quizgen.DefaultConfig())
		opts.RoadmapService = roadmap.NewService(provider, roadmap.DefaultConfig())
	}

	return app.Run(opts)
}
