package commands

import (
	"fmt"
	"strconv"

	"github.com/dinaprk/sdamgia-api/lib/serviceutil"
	"github.com/dinaprk/sdamgia-api/sdamgia"

	"github.com/spf13/cobra"
)

var pdfSolutions *bool
var pdfNums *bool
var pdfAnswers *bool
var pdfKey *bool
var pdfCriteria *bool
var pdfInstruction *bool
var pdfFooter *string
var pdfTitle *string
var pdfLayout *string

func init() {
	pdfSolutions = pdfCmd.Flags().Bool("solutions", false, "Include solutions.")
	pdfNums = pdfCmd.Flags().Bool("nums", false, "Include problem numbers.")
	pdfAnswers = pdfCmd.Flags().Bool("answers", false, "Include answers.")
	pdfKey = pdfCmd.Flags().Bool("key", false, "Include the answer key.")
	pdfCriteria = pdfCmd.Flags().Bool("criteria", false, "Include grading criteria.")
	pdfInstruction = pdfCmd.Flags().Bool("instruction", false, "Include the exam instruction.")
	pdfFooter = pdfCmd.Flags().String("footer", "", "Footer text.")
	pdfTitle = pdfCmd.Flags().String("title", "", "Title text.")
	pdfLayout = pdfCmd.Flags().String("layout", "", "Page layout: h (wide margins), z (large font) or m (landscape).")
	rootCmd.AddCommand(pdfCmd)
}

var pdfCmd = &cobra.Command{
	Use:   "pdf <test-id>",
	Short: "Renders a generated test as a pdf document and prints its url.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			serviceutil.Fatal("test id must be a number", err)
		}

		layout := sdamgia.PDFLayout(*pdfLayout)
		switch layout {
		case sdamgia.PDFLayoutDefault, sdamgia.PDFLayoutWideMargins,
			sdamgia.PDFLayoutLargeFont, sdamgia.PDFLayoutLandscape:
		default:
			serviceutil.Fatal("bad layout", fmt.Errorf("%q is not one of h, z, m", *pdfLayout))
		}

		client := newClient(cmd.Context())
		defer client.Close()

		url, err := client.GeneratePDF(cmd.Context(), id, sdamgia.PDFOptions{
			Solutions:   *pdfSolutions,
			ProblemNums: *pdfNums,
			Answers:     *pdfAnswers,
			AnswerKey:   *pdfKey,
			Criteria:    *pdfCriteria,
			Instruction: *pdfInstruction,
			Footer:      *pdfFooter,
			Title:       *pdfTitle,
			Layout:      layout,
		})
		if err != nil {
			serviceutil.Fatal("failed to generate pdf", err)
		}
		fmt.Println(url)
	},
}
