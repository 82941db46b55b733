package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pr1ncegupta/skillpath/internal/topics"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the built-in topic catalog",
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range topics.Catalog {
			fmt.Printf("%-20s %s\n", t.Name, t.Description)
		}
		fmt.Println()
		fmt.Println("Any free-text topic works too; the catalog is just a starting point.")
	},
}
