package commands

import (
	"fmt"
	"os"

	"github.com/dinaprk/sdamgia-api/lib/serviceutil"
	"github.com/dinaprk/sdamgia-api/sdamgia"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var catalogJson *bool
var catalogMatch *string
var catalogFilter *[]string

func init() {
	catalogJson = catalogCmd.Flags().Bool("json", false, "Print the catalog as json instead of a table.")
	catalogMatch = catalogCmd.Flags().String("match", "", "Print only the topic closest to this name.")
	catalogFilter = catalogCmd.Flags().StringArray("filter", nil, "Keep only topics containing one of these keywords.")
	rootCmd.AddCommand(catalogCmd)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog [--json] [--match <topic name>] [--filter <keyword>]",
	Short: "Prints the topic and category tree of the subject.",
	Args:  cobra.MaximumNArgs(0),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient(cmd.Context())
		defer client.Close()

		catalog, err := client.Catalog(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to fetch catalog", err)
		}

		if len(*catalogFilter) > 0 {
			catalog = sdamgia.FilterCatalog(catalog, *catalogFilter)
		}
		if *catalogMatch != "" {
			entry, ok := sdamgia.MatchTopic(catalog, *catalogMatch)
			if !ok {
				serviceutil.Fatal(
					"no topic matches",
					fmt.Errorf("catalog has no topic similar to %q", *catalogMatch),
				)
			}
			catalog = []sdamgia.CatalogEntry{entry}
		}

		if *catalogJson {
			printJson(catalog)
			return
		}

		t := table.NewWriter()
		t.SetStyle(table.StyleRounded)
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Topic", "Name", "Categories"})
		for _, entry := range catalog {
			t.AppendRow(table.Row{entry.TopicID, entry.TopicName, len(entry.Categories)})
		}
		t.Render()
	},
}
