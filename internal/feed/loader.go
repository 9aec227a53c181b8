// Package feed reads per-bank feed files from disk and merges them into one
// client feed ready for snapshotting.
package feed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"monetrix-dashboard/internal/models"

	"golang.org/x/sync/errgroup"
)

const (
	ConsentActive  = "active"
	ConsentUnknown = "unknown"

	defaultConcurrency = 4
)

var (
	ErrIncompleteFeed = errors.New("bank feed is incomplete")
	ErrNoBankFiles    = errors.New("feed directory has no bank files")
)

// Data is one client's merged feed.
type Data struct {
	Accounts     models.RawRecords `json:"accounts"`
	Transactions models.RawRecords `json:"transactions"`
	Consents     models.RawRecords `json:"consents"`
}

// BankNames resolves display names for bank codes.
type BankNames interface {
	Name(code string) (string, bool)
}

// Loader reads a directory of <bankCode>.json files.
type Loader struct {
	banks       BankNames
	concurrency int
	logger      *slog.Logger
}

type LoaderOption func(*Loader)

// WithConcurrency bounds how many bank files are parsed at once.
func WithConcurrency(n int) LoaderOption {
	return func(l *Loader) {
		if n > 0 {
			l.concurrency = n
		}
	}
}

func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

func NewLoader(banks BankNames, opts ...LoaderOption) *Loader {
	l := &Loader{
		banks:       banks,
		concurrency: defaultConcurrency,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// bankFeed is the parsed body of one bank file. consentErr is set when the
// file carries a consentStatus that is not a string.
type bankFeed struct {
	accounts      models.RawRecords
	transactions  models.RawRecords
	consentStatus string
	consentErr    error
}

type bankResult struct {
	bankFeed
	code string
	err  error
}

// Load reads every bank file in dir. Any file that cannot be read or parsed
// fails the whole load with ErrIncompleteFeed.
func (l *Loader) Load(ctx context.Context, dir string) (*Data, error) {
	results, err := l.readAll(ctx, dir)
	if err != nil {
		return nil, err
	}
	for _, res := range results {
		if res.err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrIncompleteFeed, res.code, res.err)
		}
	}
	return l.merge(results), nil
}

// LoadLenient reads every bank file in dir. Banks whose files fail are left
// out of the feed and reported through an error consent record.
func (l *Loader) LoadLenient(ctx context.Context, dir string) (*Data, error) {
	results, err := l.readAll(ctx, dir)
	if err != nil {
		return nil, err
	}
	return l.merge(results), nil
}

func (l *Loader) readAll(ctx context.Context, dir string) ([]bankResult, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list feed directory: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoBankFiles, dir)
	}
	sort.Strings(paths)

	results := make([]bankResult, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = readBankFile(path)
			if results[i].err != nil {
				l.logger.WarnContext(gctx, "bank feed file failed",
					"bank", results[i].code,
					"path", path,
					"error", results[i].err,
				)
			} else if results[i].consentErr != nil {
				l.logger.WarnContext(gctx, "bank feed consent status ignored",
					"bank", results[i].code,
					"path", path,
					"error", results[i].consentErr,
				)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func readBankFile(path string) bankResult {
	code := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	res := bankResult{code: code}

	data, err := os.ReadFile(path)
	if err != nil {
		res.err = err
		return res
	}
	res.bankFeed, res.err = parseBankFeed(data)
	return res
}

// parseBankFeed accepts an object with accounts and transactions lists, an
// object with an items list of accounts, or a bare list of accounts.
// A consentStatus that is not a string is reported as unknown.
func parseBankFeed(data []byte) (bankFeed, error) {
	var parsed bankFeed
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return parsed, errors.New("empty feed file")
	}

	if trimmed[0] == '[' {
		accounts, err := models.DecodeRawRecords(trimmed)
		if err != nil {
			return bankFeed{}, err
		}
		parsed.accounts = accounts
		return parsed, nil
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &body); err != nil {
		return parsed, err
	}

	accountsKey := "accounts"
	if _, ok := body[accountsKey]; !ok {
		accountsKey = "items"
	}
	var err error
	if raw, ok := body[accountsKey]; ok && !isNull(raw) {
		if parsed.accounts, err = models.DecodeRawRecords(raw); err != nil {
			return bankFeed{}, fmt.Errorf("%s: %w", accountsKey, err)
		}
	}
	if raw, ok := body["transactions"]; ok && !isNull(raw) {
		if parsed.transactions, err = models.DecodeRawRecords(raw); err != nil {
			return bankFeed{}, fmt.Errorf("transactions: %w", err)
		}
	}
	if raw, ok := body["consentStatus"]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &parsed.consentStatus); err != nil {
			parsed.consentStatus = ConsentUnknown
			parsed.consentErr = fmt.Errorf("consentStatus: %w", err)
		}
	}
	return parsed, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// merge concatenates bank results in bank code order. Records are copied
// before bank defaults are stamped on them.
func (l *Loader) merge(results []bankResult) *Data {
	sort.Slice(results, func(i, j int) bool { return results[i].code < results[j].code })

	out := &Data{
		Accounts:     models.RawRecords{},
		Transactions: models.RawRecords{},
		Consents:     models.RawRecords{},
	}

	for _, res := range results {
		if res.err != nil {
			out.Consents = append(out.Consents, models.RawRecord{"bank": res.code, "error": res.err.Error()})
			continue
		}

		name, hasName := "", false
		if l.banks != nil {
			name, hasName = l.banks.Name(res.code)
		}

		for _, acc := range res.accounts {
			acc = acc.Clone()
			if acc == nil {
				acc = models.RawRecord{}
			}
			acc.SetDefault("bank", res.code)
			if hasName {
				acc.SetDefault("bankName", name)
			}
			out.Accounts = append(out.Accounts, acc)
		}
		for _, tx := range res.transactions {
			tx = tx.Clone()
			if tx == nil {
				tx = models.RawRecord{}
			}
			tx.SetDefault("bank", res.code)
			out.Transactions = append(out.Transactions, tx)
		}

		status := res.consentStatus
		if status == "" {
			status = ConsentActive
		}
		out.Consents = append(out.Consents, models.RawRecord{"bank": res.code, "status": status})
	}

	return out
}
