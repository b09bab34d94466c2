package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var lecturesCmd = &cobra.Command{
	Use:   "lectures",
	Short: "List the lectures in the quiz document",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, _, err := loadManager(cmd)
		if err != nil {
			return err
		}
		for _, info := range mgr.Lectures() {
			fmt.Printf("%-40s %d questions\n", info.Title, info.Count)
		}
		fmt.Printf("\n%d questions total\n", mgr.Size())
		return nil
	},
}
