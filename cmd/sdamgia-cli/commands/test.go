package commands

import (
	"fmt"
	"strconv"

	"github.com/dinaprk/sdamgia-api/lib/serviceutil"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(testCmd)
}

var testCmd = &cobra.Command{
	Use:   "test <id>",
	Short: "Prints the ids of the problems a generated test consists of.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			serviceutil.Fatal("test id must be a number", err)
		}

		client := newClient(cmd.Context())
		defer client.Close()

		ids, err := client.TestProblems(cmd.Context(), id)
		if err != nil {
			serviceutil.Fatal("failed to fetch test", err)
		}
		for _, id := range ids {
			fmt.Println(id)
		}
	},
}
