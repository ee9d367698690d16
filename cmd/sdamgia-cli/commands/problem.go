package commands

import (
	"strconv"

	"github.com/dinaprk/sdamgia-api/lib/serviceutil"

	"github.com/spf13/cobra"
)

var recognize *bool

func init() {
	recognize = problemCmd.Flags().Bool("recognize", false, "Run formula images through text recognition.")
	rootCmd.AddCommand(problemCmd)
}

var problemCmd = &cobra.Command{
	Use:   "problem <id> [--recognize]",
	Short: "Fetches a problem and prints it as json.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			serviceutil.Fatal("problem id must be a number", err)
		}

		client := newClient(cmd.Context())
		defer client.Close()

		problem, err := client.Problem(cmd.Context(), id, *recognize)
		if err != nil {
			serviceutil.Fatal("failed to fetch problem", err)
		}
		printJson(problem)
	},
}
