package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sahaltools/sahal-ledger/internal/config"
	"github.com/sahaltools/sahal-ledger/internal/extractor"
	"github.com/sahaltools/sahal-ledger/internal/ledger"
	"github.com/sahaltools/sahal-ledger/internal/logger"
	"github.com/sahaltools/sahal-ledger/internal/parser"
	"github.com/sahaltools/sahal-ledger/internal/writer"
)

var (
	topN          int
	includeRaw    bool
	contactsPath  string
	recordsPath   string
	reportPath    string
	unmatchedPath string
	noExports     bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <transcript.txt|transcript.pdf>",
	Short: "Parse a transcript and export the per-contact ledger",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().IntVar(&topN, "top-n", 0, "Entries per ranked view (default from config)")
	analyzeCmd.Flags().BoolVar(&includeRaw, "include-raw", false, "Keep original block text in exports")
	analyzeCmd.Flags().StringVar(&contactsPath, "contacts-csv", "", "Per-contact CSV output path")
	analyzeCmd.Flags().StringVar(&recordsPath, "records-csv", "", "Per-transaction CSV output path")
	analyzeCmd.Flags().StringVar(&reportPath, "json", "", "JSON report output path")
	analyzeCmd.Flags().StringVar(&unmatchedPath, "unmatched", "", "Unmatched blocks output path")
	analyzeCmd.Flags().BoolVar(&noExports, "no-exports", false, "Print the summary only, write no files")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	applyFlagOverrides(&cfg)

	log := logger.New(cfg.LogLevel)
	log.Debug().Strs("rules", parser.RuleNames()).Msg("classification rules loaded")

	inputPath := args[0]
	text, err := extractor.FromFile(inputPath)
	if err != nil {
		return err
	}
	log.Info().Str("file", inputPath).Int("bytes", len(text)).Msg("transcript loaded")

	result := parser.Parse(text)
	log.Info().
		Int("blocks", result.BlockCount).
		Int("transactions", len(result.Transactions)).
		Int("unmatched", len(result.Unmatched)).
		Msg("transcript parsed")

	if len(result.Transactions) == 0 {
		fmt.Println("No transactions found in the transcript.")
		if result.BlockCount > 0 {
			fmt.Printf("%d block(s) did not match any known notification phrase.\n", len(result.Unmatched))
		}
		return nil
	}

	book := ledger.Aggregate(result.Transactions)
	summary := ledger.BuildSummary(book, result.DateRange, cfg.TopN)

	printSummary(summary, len(result.Unmatched))

	if noExports {
		return nil
	}

	cw := &writer.CSVWriter{IncludeRaw: cfg.IncludeRaw}
	if err := cw.WriteContactsFile(cfg.Output.ContactsCSV, book.Contacts()); err != nil {
		return err
	}
	if err := cw.WriteRecordsFile(cfg.Output.RecordsCSV, result.Transactions); err != nil {
		return err
	}
	report := writer.NewReport(summary, book.Contacts(), result.Unmatched)
	if err := writer.WriteJSONFile(cfg.Output.ReportJSON, report); err != nil {
		return err
	}
	if len(result.Unmatched) > 0 {
		if err := writer.WriteUnmatchedFile(cfg.Output.UnmatchedTXT, result.Unmatched); err != nil {
			return err
		}
	}

	fmt.Printf("\nExports written: %s, %s, %s", cfg.Output.ContactsCSV, cfg.Output.RecordsCSV, cfg.Output.ReportJSON)
	if len(result.Unmatched) > 0 {
		fmt.Printf(", %s", cfg.Output.UnmatchedTXT)
	}
	fmt.Println()
	return nil
}

// applyFlagOverrides lets command-line flags win over file and env config.
func applyFlagOverrides(cfg *config.Config) {
	if topN > 0 {
		cfg.TopN = topN
	}
	if includeRaw {
		cfg.IncludeRaw = true
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if contactsPath != "" {
		cfg.Output.ContactsCSV = contactsPath
	}
	if recordsPath != "" {
		cfg.Output.RecordsCSV = recordsPath
	}
	if reportPath != "" {
		cfg.Output.ReportJSON = reportPath
	}
	if unmatchedPath != "" {
		cfg.Output.UnmatchedTXT = unmatchedPath
	}
}

func printSummary(s *ledger.Summary, unmatchedCount int) {
	fmt.Println("SAHAL TRANSACTION ANALYSIS")
	fmt.Printf("  Total transactions: %d\n", s.TotalTransactions)
	fmt.Printf("  Total sent:         $%s\n", s.TotalSent.StringFixed(2))
	fmt.Printf("  Total received:     $%s\n", s.TotalReceived.StringFixed(2))
	fmt.Printf("  Net balance:        $%s\n", s.TotalNet.StringFixed(2))
	fmt.Printf("  Unique contacts:    %d\n", s.UniqueContacts)
	fmt.Printf("  Average amount:     $%s\n", s.AvgTransaction.StringFixed(2))
	fmt.Printf("  Unmatched blocks:   %d\n", unmatchedCount)

	if s.DateRange != nil {
		fmt.Println("\n  Date range:")
		fmt.Printf("    From:  %s\n", s.DateRange.Earliest.Format("January 2, 2006"))
		fmt.Printf("    To:    %s\n", s.DateRange.Latest.Format("January 2, 2006"))
		fmt.Printf("    Span:  %d days (%d dates found)\n", s.DateRange.SpanDays, s.DateRange.DatesFound)
	}

	if len(s.OweMoney) > 0 {
		fmt.Println("\n  You owe:")
		for _, row := range s.OweMoney {
			fmt.Printf("    %s: $%s\n", row.Name, row.Amount.StringFixed(2))
		}
	}
	if len(s.OwedMoney) > 0 {
		fmt.Println("\n  Owed to you:")
		for _, row := range s.OwedMoney {
			fmt.Printf("    %s: $%s\n", row.Name, row.Amount.StringFixed(2))
		}
	}
	if len(s.MostActive) > 0 {
		fmt.Println("\n  Most active:")
		for _, row := range s.MostActive {
			fmt.Printf("    %s: %d transactions (net $%s)\n", row.Name, row.Transactions, row.Net.StringFixed(2))
		}
	}
}
