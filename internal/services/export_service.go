package services

import (
	"context"
	"fmt"
	"time"

	"monetrix-dashboard/internal/models"

	"github.com/xuri/excelize/v2"
)

const (
	SheetBanks    = "Banks"
	SheetCashflow = "Cashflow"

	defaultSheet = "Sheet1"
	totalLabel   = "Total"
)

var (
	banksHeader    = []interface{}{"Bank", "Account", "Type", "Balance"}
	cashflowHeader = []interface{}{"Month", "Key", "Income", "Outcome"}
)

type exportService struct {
	dashboard DashboardServiceInterface
	metrics   MetricsRecorderInterface
}

func NewExportService(dashboard DashboardServiceInterface, metrics MetricsRecorderInterface) ExportServiceInterface {
	return &exportService{
		dashboard: dashboard,
		metrics:   metrics,
	}
}

// ExportDashboard renders the client's bank groups and cashflow series as
// an XLSX workbook.
func (s *exportService) ExportDashboard(ctx context.Context, clientID string) ([]byte, error) {
	start := time.Now()
	defer func() {
		s.metrics.RecordProcessingTime(MetricExportDuration, time.Since(start))
	}()

	summary, err := s.dashboard.GetSummary(ctx, clientID)
	if err != nil {
		return nil, err
	}

	data, err := buildWorkbook(summary.Banks, summary.CashflowSeries)
	if err != nil {
		s.metrics.IncrementCounter(MetricExportGenerated, map[string]string{"status": "error"})
		return nil, fmt.Errorf("failed to build dashboard export: %w", err)
	}

	s.metrics.IncrementCounter(MetricExportGenerated, map[string]string{"status": "ok"})
	return data, nil
}

func buildWorkbook(banks []models.AggregatedBank, series []models.MonthlyFlowPoint) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, SheetBanks); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(SheetCashflow); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	if err := writeBanksSheet(f, banks, bold); err != nil {
		return nil, err
	}
	if err := writeCashflowSheet(f, series, bold); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeBanksSheet(f *excelize.File, banks []models.AggregatedBank, bold int) error {
	if err := writeRow(f, SheetBanks, 1, banksHeader, bold); err != nil {
		return err
	}

	row := 2
	for _, bank := range banks {
		for _, account := range bank.Accounts {
			values := []interface{}{bank.Name, account.ID, account.Type, account.BalanceValue.InexactFloat64()}
			if err := writeRow(f, SheetBanks, row, values, 0); err != nil {
				return err
			}
			row++
		}
		total := []interface{}{bank.Name, totalLabel, "", bank.TotalBalance.InexactFloat64()}
		if err := writeRow(f, SheetBanks, row, total, bold); err != nil {
			return err
		}
		row++
	}

	return f.SetColWidth(SheetBanks, "A", "D", 24)
}

func writeCashflowSheet(f *excelize.File, series []models.MonthlyFlowPoint, bold int) error {
	if err := writeRow(f, SheetCashflow, 1, cashflowHeader, bold); err != nil {
		return err
	}
	for i, point := range series {
		values := []interface{}{point.Month, point.Key, point.Income, point.Outcome}
		if err := writeRow(f, SheetCashflow, i+2, values, 0); err != nil {
			return err
		}
	}
	return f.SetColWidth(SheetCashflow, "A", "D", 16)
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}, style int) error {
	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, first, &values); err != nil {
		return err
	}
	if style == 0 {
		return nil
	}
	last, err := excelize.CoordinatesToCellName(len(values), row)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, first, last, style)
}
