package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/karimzidan/devatlas/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the topic catalog from the terminal",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		results := search.FromCatalog().Query(query)
		if len(results) == 0 {
			fmt.Println("No matching topics.")
			return nil
		}
		for _, r := range results {
			fmt.Printf("%-35s %s (%s)\n", r.Title, r.Path, r.Category)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
