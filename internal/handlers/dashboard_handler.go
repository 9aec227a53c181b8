package handlers

import (
	"fmt"
	"net/http"

	"monetrix-dashboard/internal/dto"
	apierrors "monetrix-dashboard/internal/errors"
	"monetrix-dashboard/internal/models"
	"monetrix-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DashboardHandler serves the read side of the client dashboard
type DashboardHandler struct {
	dashboardService services.DashboardServiceInterface
	exportService    services.ExportServiceInterface
}

func NewDashboardHandler(
	dashboardService services.DashboardServiceInterface,
	exportService services.ExportServiceInterface,
) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		exportService:    exportService,
	}
}

// bindClient binds and validates the clientId query parameter. An empty
// result means the error response has already been written.
func bindClient(c echo.Context) (string, error) {
	var query dto.ClientQuery
	if err := c.Bind(&query); err != nil {
		return "", SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(query); err != nil {
		return "", SendValidationError(c, err)
	}
	return query.ClientID, nil
}

// GetSummary returns net worth, cashflow outlook, bank groups and the
// monthly cashflow series
//
// Method: GET /api/dashboard/summary?clientId=
//
// Error Responses:
//   - 400: VALIDATION_001 missing or malformed clientId
//   - 404: FEED_001 no snapshot stored for the client
//   - 503: FEED_003 snapshot store unavailable
//   - 500: SYSTEM_001 internal error
func (h *DashboardHandler) GetSummary(c echo.Context) error {
	clientID, err := bindClient(c)
	if clientID == "" {
		return err
	}

	summary, err := h.dashboardService.GetSummary(c.Request().Context(), clientID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: summary})
}

// GetBanks returns the client's accounts grouped by bank
//
// Method: GET /api/dashboard/banks?clientId=
func (h *DashboardHandler) GetBanks(c echo.Context) error {
	clientID, err := bindClient(c)
	if clientID == "" {
		return err
	}

	banks, err := h.dashboardService.GetBanks(c.Request().Context(), clientID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: dto.BanksResponse{Banks: banks}})
}

// GetCashflow returns the most recent monthly income/outcome points
//
// Method: GET /api/dashboard/cashflow?clientId=
func (h *DashboardHandler) GetCashflow(c echo.Context) error {
	clientID, err := bindClient(c)
	if clientID == "" {
		return err
	}

	series, err := h.dashboardService.GetCashflow(c.Request().Context(), clientID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: dto.CashflowResponse{Series: series}})
}

// ListTransactions pages the raw transactions of the latest snapshot
//
// Method: GET /api/dashboard/transactions
//
// Query parameters:
//   - clientId: required
//   - accountId: exact match on the transaction's accountId
//   - from, to: inclusive YYYY-MM-DD bounds
//   - limit, offset: paging, limit is capped by configuration
func (h *DashboardHandler) ListTransactions(c echo.Context) error {
	var query dto.TransactionQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(query); err != nil {
		return SendValidationError(c, err)
	}

	from, err := parseDay(query.From)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails("Invalid from date"))
	}
	to, err := parseDay(query.To)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails("Invalid to date"))
	}

	page, err := h.dashboardService.ListTransactions(c.Request().Context(), query.ClientID, models.TransactionFilter{
		AccountID: query.AccountID,
		From:      from,
		To:        to,
		Limit:     query.Limit,
		Offset:    query.Offset,
	})
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: page})
}

// GetRecommendations returns advisory cards for the client
//
// Method: GET /api/recommendations?clientId=
func (h *DashboardHandler) GetRecommendations(c echo.Context) error {
	clientID, err := bindClient(c)
	if clientID == "" {
		return err
	}

	recs, err := h.dashboardService.GetRecommendations(c.Request().Context(), clientID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: recs})
}

// Export downloads the dashboard as an XLSX workbook
//
// Method: GET /api/dashboard/export?clientId=
func (h *DashboardHandler) Export(c echo.Context) error {
	clientID, err := bindClient(c)
	if clientID == "" {
		return err
	}

	data, err := h.exportService.ExportDashboard(c.Request().Context(), clientID)
	if err != nil {
		return handleServiceError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", "dashboard-"+clientID+".xlsx"))
	return c.Blob(http.StatusOK, xlsxContentType, data)
}
