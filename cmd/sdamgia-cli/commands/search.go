package commands

import (
	"fmt"

	"github.com/dinaprk/sdamgia-api/lib/serviceutil"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Prints the ids of every problem matching a search query.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient(cmd.Context())
		defer client.Close()

		ids, err := client.Search(cmd.Context(), args[0])
		if err != nil {
			serviceutil.Fatal("search failed", err)
		}
		for _, id := range ids {
			fmt.Println(id)
		}
	},
}
