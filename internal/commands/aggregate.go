package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"monetrix-dashboard/internal/config"
	"monetrix-dashboard/internal/feed"
	"monetrix-dashboard/internal/models"
	"monetrix-dashboard/internal/normalize"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type aggregateOptions struct {
	AccountsPath     string
	TransactionsPath string
	FeedDir          string
	BankDirectory    string
	Lenient          bool
	Dashboard        config.DashboardConfig
}

// aggregateOutput is printed by the aggregate command
type aggregateOutput struct {
	NetWorth decimal.Decimal           `json:"netWorth"`
	Banks    []models.AggregatedBank   `json:"banks"`
	Cashflow []models.MonthlyFlowPoint `json:"cashflow"`
	Skipped  skippedTransactions       `json:"skipped"`
}

type skippedTransactions struct {
	Undated         int `json:"undated"`
	ZeroOrMalformed int `json:"zeroOrMalformed"`
}

func newAggregateCommand() *cobra.Command {
	var opts aggregateOptions

	cmd := &cobra.Command{
		Use:   "aggregate",
		Short: "Print bank groups and the cashflow series for raw feed files",
		Long: "Aggregates either a pair of JSON arrays (--accounts, --transactions) or a\n" +
			"per-bank feed directory (--feed-dir). Nothing is stored.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			setupLogger(os.Stderr, cfg.Server)

			if !cmd.Flags().Changed("locale") {
				opts.Dashboard.Locale = cfg.Dashboard.Locale
			}
			if !cmd.Flags().Changed("timezone") {
				opts.Dashboard.Timezone = cfg.Dashboard.Timezone
			}
			if !cmd.Flags().Changed("months") {
				opts.Dashboard.CashflowMonths = cfg.Dashboard.CashflowMonths
			}
			if !cmd.Flags().Changed("banks") {
				opts.BankDirectory = cfg.Feed.BankDirectoryPath
			}

			return runAggregate(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.AccountsPath, "accounts", "", "JSON array of raw account records")
	cmd.Flags().StringVar(&opts.TransactionsPath, "transactions", "", "JSON array of raw transaction records")
	cmd.Flags().StringVar(&opts.FeedDir, "feed-dir", "", "directory of <bankCode>.json feed files")
	cmd.Flags().StringVar(&opts.BankDirectory, "banks", "", "bank directory YAML used with --feed-dir")
	cmd.Flags().BoolVar(&opts.Lenient, "lenient", false, "skip unreadable bank files instead of failing")
	cmd.Flags().StringVar(&opts.Dashboard.Locale, "locale", "ru", "currency and month label locale (ru, en)")
	cmd.Flags().StringVar(&opts.Dashboard.Timezone, "timezone", "UTC", "calendar used for month buckets")
	cmd.Flags().IntVar(&opts.Dashboard.CashflowMonths, "months", normalize.DefaultMonthCap, "number of recent months to emit")
	cmd.MarkFlagsMutuallyExclusive("feed-dir", "accounts")
	cmd.MarkFlagsMutuallyExclusive("feed-dir", "transactions")

	return cmd
}

func runAggregate(ctx context.Context, opts aggregateOptions, out io.Writer) error {
	normalizer, err := newNormalizer(opts.Dashboard)
	if err != nil {
		return err
	}

	data, err := readAggregateInput(ctx, opts)
	if err != nil {
		return err
	}

	series, stats := normalizer.BucketCashflowWithStats(data.Transactions)
	result := aggregateOutput{
		NetWorth: decimal.Zero,
		Banks:    normalizer.AggregateBanks(data.Accounts),
		Cashflow: series,
		Skipped: skippedTransactions{
			Undated:         stats.Undated,
			ZeroOrMalformed: stats.ZeroOrMalformed,
		},
	}
	for _, bank := range result.Banks {
		result.NetWorth = result.NetWorth.Add(bank.TotalBalance)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(result)
}

func readAggregateInput(ctx context.Context, opts aggregateOptions) (*feed.Data, error) {
	if opts.FeedDir != "" {
		banks, err := config.LoadBankDirectory(opts.BankDirectory)
		if err != nil {
			return nil, err
		}
		loader := feed.NewLoader(banks)
		if opts.Lenient {
			return loader.LoadLenient(ctx, opts.FeedDir)
		}
		return loader.Load(ctx, opts.FeedDir)
	}

	if opts.AccountsPath == "" && opts.TransactionsPath == "" {
		return nil, errors.New("either --feed-dir or at least one of --accounts and --transactions is required")
	}

	accounts, err := readRecordsFile(opts.AccountsPath)
	if err != nil {
		return nil, err
	}
	transactions, err := readRecordsFile(opts.TransactionsPath)
	if err != nil {
		return nil, err
	}
	return &feed.Data{Accounts: accounts, Transactions: transactions}, nil
}

// readRecordsFile decodes a JSON array of records. An empty path yields no
// records.
func readRecordsFile(path string) (models.RawRecords, error) {
	if path == "" {
		return models.RawRecords{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	records, err := models.DecodeRawRecords(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return records, nil
}
