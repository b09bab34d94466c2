package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quizdeck/quizdeck/internal/app"
	"github.com/quizdeck/quizdeck/internal/quiz"
)

// loadManager reads the quiz document and builds a manager around it.
// Per-question warnings go to stderr; a document-level failure is an error.
func loadManager(cmd *cobra.Command) (*quiz.Manager, string, error) {
	file := resolveQuizFile(cmd)
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, file, fmt.Errorf("read quiz document: %w", err)
	}

	mgr := quiz.NewManager(nil)
	warnings, err := mgr.LoadCatalog(data)
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}
	if err != nil {
		return nil, file, err
	}
	return mgr, file, nil
}

// runApp loads the quiz document and launches the TUI.
func runApp(cmd *cobra.Command) error {
	mgr, file, err := loadManager(cmd)
	if err != nil {
		return err
	}

	return app.Run(app.Options{
		Manager: mgr,
		File:    file,
	})
}
