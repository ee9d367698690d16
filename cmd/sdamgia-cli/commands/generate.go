package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dinaprk/sdamgia-api/lib/serviceutil"
	"github.com/dinaprk/sdamgia-api/sdamgia"

	"github.com/spf13/cobra"
)

var generateFull *int
var generateTopics *[]string

func init() {
	generateFull = generateCmd.Flags().Int("full", 0, "Take this many problems from every catalog topic.")
	generateTopics = generateCmd.Flags().StringArray("topic", nil, "Take <count> problems from topic <number>, formatted as <number>=<count>.")
	rootCmd.AddCommand(generateCmd)
}

func parseTopicSelection(pairs []string) map[int]int {
	topics := map[int]int{}
	for _, pair := range pairs {
		topicText, countText, found := strings.Cut(pair, "=")
		if !found {
			serviceutil.Fatal(
				"bad topic selection",
				fmt.Errorf("%q is not formatted as <number>=<count>", pair),
			)
		}
		topic, err := strconv.Atoi(topicText)
		if err != nil {
			serviceutil.Fatal("bad topic number", err)
		}
		count, err := strconv.Atoi(countText)
		if err != nil {
			serviceutil.Fatal("bad problem count", err)
		}
		topics[topic] = count
	}
	return topics
}

var generateCmd = &cobra.Command{
	Use:   "generate [--full <count>] [--topic <number>=<count> ...]",
	Short: "Generates a test and prints its id.",
	Args:  cobra.MaximumNArgs(0),
	Run: func(cmd *cobra.Command, args []string) {
		selection := sdamgia.TestSelection{Full: *generateFull}
		if len(*generateTopics) > 0 {
			selection.Topics = parseTopicSelection(*generateTopics)
		}

		client := newClient(cmd.Context())
		defer client.Close()

		id, err := client.GenerateTest(cmd.Context(), selection)
		if err != nil {
			serviceutil.Fatal("failed to generate test", err)
		}
		fmt.Println(id)
	},
}
