// Command inspect is a local debugging tool: it decodes a daily-report PDF
// and prints either the raw per-page text or the full extraction result,
// without touching Notion.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/h4mmerjp/nikkeihyou/dto"
	"github.com/h4mmerjp/nikkeihyou/service"
	"github.com/h4mmerjp/nikkeihyou/utils"
)

var (
	strategyFlag string
	allPatients  bool
)

var rootCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Daily report PDF inspector",
	Long:  "Decodes a clinic daily report PDF and dumps extracted text or the parsed result for debugging.",
}

var textCmd = &cobra.Command{
	Use:   "text <pdf>",
	Short: "Print the extracted text of every page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pages, err := decodePages(args[0])
		if err != nil {
			return err
		}
		for i, page := range pages {
			fmt.Printf("--- Page %d/%d ---\n%s\n", i+1, len(pages), page.Text)
		}
		return nil
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse <pdf>",
	Short: "Run the full extraction pipeline and print the result as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pages, err := decodePages(args[0])
		if err != nil {
			return err
		}

		result := utils.ExtractReport(pages, utils.ParseStrategy(strategyFlag))

		if !allPatients && len(result.LineItems) > 5 {
			fmt.Fprintf(os.Stderr, "showing 5 of %d line items (use --all for every item)\n", len(result.LineItems))
			result.LineItems = result.LineItems[:5]
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func decodePages(path string) ([]dto.Page, error) {
	pdfBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pdf file: %w", err)
	}
	return service.NewPDFProcessor().ExtractPages(pdfBytes)
}

func init() {
	parseCmd.Flags().StringVar(&strategyFlag, "strategy", "text", "aggregation strategy: text or table")
	parseCmd.Flags().BoolVar(&allPatients, "all", false, "print every line item instead of the first 5")
	rootCmd.AddCommand(textCmd, parseCmd)
}

func main() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
