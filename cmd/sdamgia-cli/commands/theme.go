package commands

import (
	"fmt"
	"strconv"

	"github.com/dinaprk/sdamgia-api/lib/serviceutil"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(themeCmd)
}

var themeCmd = &cobra.Command{
	Use:   "theme <id>",
	Short: "Prints the listing labels of every problem under a theme.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			serviceutil.Fatal("theme id must be a number", err)
		}

		client := newClient(cmd.Context())
		defer client.Close()

		labels, err := client.ThemeProblems(cmd.Context(), id)
		if err != nil {
			serviceutil.Fatal("failed to fetch theme", err)
		}
		for _, label := range labels {
			fmt.Println(label)
		}
	},
}
