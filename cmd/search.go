package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <keywords...>",
	Short: "Find questions by keywords and show their answers",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, _, err := loadManager(cmd)
		if err != nil {
			return err
		}

		matches, err := mgr.Search(strings.Join(args, " "))
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			fmt.Println("No questions matched.")
			return nil
		}
		for i, m := range matches {
			fmt.Printf("%d. %s\n   %s) %s  [%s, %d keyword(s)]\n",
				i+1, m.Question.Text, m.Question.CorrectKey, m.Answer,
				m.Question.Lecture, m.Score)
		}
		return nil
	},
}
