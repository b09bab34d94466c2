package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// defaultQuizFile is used when neither --file nor QUIZDECK_FILE is set.
const defaultQuizFile = "quiz.json"

var rootCmd = &cobra.Command{
	Use:   "quizdeck",
	Short: "Terminal quiz trainer for lecture questions",
	Long:  "QuizDeck — study multiple-choice lecture questions in the terminal: sequential or random study, timed tests with pass/fail scoring, and keyword search.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("file", "", "Path to the quiz JSON document (overrides QUIZDECK_FILE env var)")

	rootCmd.AddCommand(lecturesCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveQuizFile returns the quiz document path using the --file flag
// (highest priority), then the QUIZDECK_FILE env var, then the default.
func resolveQuizFile(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("file"); p != "" {
		return p
	}
	if p := os.Getenv("QUIZDECK_FILE"); p != "" {
		return p
	}
	return defaultQuizFile
}
