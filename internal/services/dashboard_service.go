package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"monetrix-dashboard/internal/models"
	"monetrix-dashboard/internal/normalize"
	"monetrix-dashboard/internal/repositories"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidClientID  = errors.New("client id is required")
	ErrSnapshotNotFound = errors.New("no feed snapshot for client")
	ErrFeedUnavailable  = errors.New("feed store is unavailable")
	ErrInvalidDateRange = errors.New("from date is after to date")
	ErrSnapshotStore    = errors.New("feed snapshot store failed")
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 500

	dayLayout            = "2006-01-02"
	fallbackDepositLabel = "счёте"
)

type DashboardOptions struct {
	DefaultPageLimit int
	MaxPageLimit     int
}

type dashboardService struct {
	snapshotRepo repositories.FeedSnapshotRepositoryInterface
	normalizer   *normalize.Normalizer
	breaker      CircuitBreakerInterface
	metrics      MetricsRecorderInterface
	feedLogger   FeedLoggerInterface
	options      DashboardOptions
	now          func() time.Time
}

func NewDashboardService(
	snapshotRepo repositories.FeedSnapshotRepositoryInterface,
	normalizer *normalize.Normalizer,
	breaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	feedLogger FeedLoggerInterface,
	options DashboardOptions,
) DashboardServiceInterface {
	if normalizer == nil {
		normalizer = normalize.New()
	}
	if options.MaxPageLimit <= 0 {
		options.MaxPageLimit = maxPageLimit
	}
	if options.DefaultPageLimit <= 0 || options.DefaultPageLimit > options.MaxPageLimit {
		options.DefaultPageLimit = min(defaultPageLimit, options.MaxPageLimit)
	}

	return &dashboardService{
		snapshotRepo: snapshotRepo,
		normalizer:   normalizer,
		breaker:      breaker,
		metrics:      metrics,
		feedLogger:   feedLogger,
		options:      options,
		now:          time.Now,
	}
}

func (s *dashboardService) GetBanks(ctx context.Context, clientID string) ([]models.AggregatedBank, error) {
	snapshot, err := s.loadSnapshot(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return s.aggregateBanks(ctx, snapshot), nil
}

func (s *dashboardService) GetCashflow(ctx context.Context, clientID string) ([]models.MonthlyFlowPoint, error) {
	snapshot, err := s.loadSnapshot(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return s.bucketCashflow(ctx, snapshot), nil
}

func (s *dashboardService) GetSummary(ctx context.Context, clientID string) (*models.DashboardSummary, error) {
	snapshot, err := s.loadSnapshot(ctx, clientID)
	if err != nil {
		return nil, err
	}

	summary := &models.DashboardSummary{
		ClientID:       snapshot.ClientID,
		NetWorth:       decimal.Zero,
		Assets:         decimal.Zero,
		Liabilities:    decimal.Zero,
		Budgets:        []models.Budget{},
		Consents:       snapshot.Consents,
		Banks:          s.aggregateBanks(ctx, snapshot),
		CashflowSeries: s.bucketCashflow(ctx, snapshot),
		GeneratedAt:    s.now().UTC().Format(time.RFC3339),
	}

	for _, account := range snapshot.Accounts {
		balance := normalize.ExtractBalance(account)
		summary.NetWorth = summary.NetWorth.Add(balance)
		if balance.IsNegative() {
			summary.Liabilities = summary.Liabilities.Add(balance.Abs())
		} else {
			summary.Assets = summary.Assets.Add(balance)
		}
	}

	income, outcome := sumAmounts(snapshot.Transactions)
	summary.Cashflow = models.CashflowOutlook{
		Next30Days: income.Add(outcome),
		Trend:      decimal.Zero,
	}

	slog.InfoContext(ctx, "dashboard summary generated",
		"client_id", snapshot.ClientID,
		"account_count", len(snapshot.Accounts),
		"transaction_count", len(snapshot.Transactions),
		"net_worth", summary.NetWorth.String())

	return summary, nil
}

func (s *dashboardService) ListTransactions(ctx context.Context, clientID string, filter models.TransactionFilter) (*models.TransactionPage, error) {
	var fromDay, toDay string
	if filter.From != nil {
		fromDay = filter.From.Format(dayLayout)
	}
	if filter.To != nil {
		toDay = filter.To.Format(dayLayout)
	}
	if fromDay != "" && toDay != "" && fromDay > toDay {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidDateRange, fromDay, toDay)
	}

	snapshot, err := s.loadSnapshot(ctx, clientID)
	if err != nil {
		return nil, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = s.options.DefaultPageLimit
	}
	if limit > s.options.MaxPageLimit {
		limit = s.options.MaxPageLimit
	}
	offset := max(filter.Offset, 0)

	matched := make(models.RawRecords, 0, len(snapshot.Transactions))
	for _, tx := range snapshot.Transactions {
		if s.matchTransaction(tx, filter.AccountID, fromDay, toDay) {
			matched = append(matched, tx)
		}
	}

	items := models.RawRecords{}
	if offset < len(matched) {
		items = matched[offset:min(offset+limit, len(matched))]
	}

	return &models.TransactionPage{
		Items: items,
		Pagination: models.Pagination{
			Limit:  limit,
			Offset: offset,
			Total:  int64(len(matched)),
		},
	}, nil
}

func (s *dashboardService) matchTransaction(tx models.RawRecord, accountID, fromDay, toDay string) bool {
	if accountID != "" {
		id, ok := normalize.ResolveText(tx, "accountId")
		if !ok || id != accountID {
			return false
		}
	}
	if fromDay == "" && toDay == "" {
		return true
	}

	date, ok := s.normalizer.ResolveTransactionDate(tx)
	if !ok {
		return false
	}
	day := date.Format(dayLayout)
	if fromDay != "" && day < fromDay {
		return false
	}
	if toDay != "" && day > toDay {
		return false
	}
	return true
}

func (s *dashboardService) GetRecommendations(ctx context.Context, clientID string) ([]models.Recommendation, error) {
	snapshot, err := s.loadSnapshot(ctx, clientID)
	if err != nil {
		return nil, err
	}

	recs := make([]models.Recommendation, 0, 3)

	income, outcome := sumAmounts(snapshot.Transactions)
	if income.Add(outcome).IsNegative() {
		recs = append(recs, models.Recommendation{
			ID:       models.RecommendationCashflow,
			Title:    "Оптимизируйте расходы",
			Message:  "За последние периоды расходы превышают доходы. Проверьте крупные списания и сократите необязательные платежи.",
			Category: "Расходы",
		})
	}

	if top, balance, ok := largestAccount(snapshot.Accounts); ok {
		label, found := normalize.ResolveText(top, "name", "accountType", "bank")
		if !found {
			label = fallbackDepositLabel
		}
		recs = append(recs, models.Recommendation{
			ID:    models.RecommendationDeposit,
			Title: "Разместите излишки ликвидности",
			Message: fmt.Sprintf("На счёте %s скопилось %s, рассмотрите вклад или инвестиции под более высокий процент.",
				label, s.normalizer.FormatCurrency(balance)),
			Category: "Инвестиции",
		})
	}

	banks := make(map[string]struct{}, len(snapshot.Accounts))
	for _, account := range snapshot.Accounts {
		if code, ok := normalize.ResolveText(account, "bank"); ok {
			banks[code] = struct{}{}
		}
	}
	if len(banks) < len(snapshot.Accounts) {
		recs = append(recs, models.Recommendation{
			ID:       models.RecommendationDiversify,
			Title:    "Диверсифицируйте средства",
			Message:  "Некоторые счета сконцентрированы в одном банке. Распределите активы между разными банками для снижения рисков.",
			Category: "Риски",
		})
	}

	if len(recs) == 0 {
		recs = append(recs, models.Recommendation{
			ID:       models.RecommendationDefault,
			Title:    "Данные обновлены",
			Message:  "Система не обнаружила критичных действий. Мониторинг продолжается.",
			Category: "Информация",
		})
	}

	s.metrics.IncrementCounter(MetricAggregationPass, map[string]string{"kind": "recommendations"})
	return recs, nil
}

func (s *dashboardService) loadSnapshot(ctx context.Context, clientID string) (*models.FeedSnapshot, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidClientID
	}

	if s.breaker.IsOpen() {
		s.metrics.IncrementCounter(MetricSnapshotLoad, map[string]string{"status": "rejected"})
		s.feedLogger.LogFeedUnavailable(ctx, clientID, ErrCircuitBreakerOpen.Error())
		return nil, fmt.Errorf("%w: %w", ErrFeedUnavailable, ErrCircuitBreakerOpen)
	}

	snapshot, err := s.snapshotRepo.GetLatestByClientID(ctx, clientID)
	if err != nil {
		if errors.Is(err, repositories.ErrSnapshotNotFound) {
			s.breaker.RecordSuccess()
			s.metrics.IncrementCounter(MetricSnapshotLoad, map[string]string{"status": "not_found"})
			return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, clientID)
		}
		s.breaker.RecordFailure()
		s.metrics.IncrementCounter(MetricSnapshotLoad, map[string]string{"status": "error"})
		slog.ErrorContext(ctx, "failed to load feed snapshot",
			"client_id", clientID,
			"error", err)
		return nil, fmt.Errorf("%w: load: %w", ErrSnapshotStore, err)
	}

	s.breaker.RecordSuccess()
	s.metrics.IncrementCounter(MetricSnapshotLoad, map[string]string{"status": "ok"})
	return snapshot, nil
}

func (s *dashboardService) aggregateBanks(ctx context.Context, snapshot *models.FeedSnapshot) []models.AggregatedBank {
	start := time.Now()
	banks := s.normalizer.AggregateBanks(snapshot.Accounts)
	s.recordPass(ctx, snapshot.ClientID, "banks", len(snapshot.Accounts), time.Since(start))
	return banks
}

func (s *dashboardService) bucketCashflow(ctx context.Context, snapshot *models.FeedSnapshot) []models.MonthlyFlowPoint {
	start := time.Now()
	points, stats := s.normalizer.BucketCashflowWithStats(snapshot.Transactions)
	s.recordPass(ctx, snapshot.ClientID, "cashflow", len(snapshot.Transactions), time.Since(start))

	if stats.Undated > 0 {
		s.metrics.AddCounter(MetricTransactionsSkipped, float64(stats.Undated), map[string]string{"reason": "undated"})
	}
	if stats.ZeroOrMalformed > 0 {
		s.metrics.AddCounter(MetricTransactionsSkipped, float64(stats.ZeroOrMalformed), map[string]string{"reason": "zero_or_malformed"})
	}
	s.feedLogger.LogTransactionsSkipped(ctx, snapshot.ClientID, stats.Undated, stats.ZeroOrMalformed)

	return points
}

func (s *dashboardService) recordPass(ctx context.Context, clientID, kind string, records int, elapsed time.Duration) {
	tags := map[string]string{"kind": kind}
	s.metrics.IncrementCounter(MetricAggregationPass, tags)
	s.metrics.RecordGauge(MetricAggregationRecords, float64(records), tags)
	s.metrics.RecordProcessingTime(MetricAggregationDuration, elapsed)
	s.feedLogger.LogAggregationCompleted(ctx, clientID, kind, records, elapsed.Milliseconds())
}

// sumAmounts splits resolvable transaction amounts into inflow and outflow.
func sumAmounts(transactions models.RawRecords) (income, outcome decimal.Decimal) {
	income, outcome = decimal.Zero, decimal.Zero
	for _, tx := range transactions {
		amount, ok := normalize.ResolveTransactionAmount(tx)
		if !ok {
			continue
		}
		if amount.IsPositive() {
			income = income.Add(amount)
		} else {
			outcome = outcome.Add(amount)
		}
	}
	return income, outcome
}

// largestAccount returns the first account holding the highest balance.
func largestAccount(accounts models.RawRecords) (models.RawRecord, decimal.Decimal, bool) {
	if len(accounts) == 0 {
		return nil, decimal.Zero, false
	}
	top, best := accounts[0], normalize.ExtractBalance(accounts[0])
	for _, account := range accounts[1:] {
		if balance := normalize.ExtractBalance(account); balance.GreaterThan(best) {
			top, best = account, balance
		}
	}
	return top, best, true
}
