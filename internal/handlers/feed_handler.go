package handlers

import (
	"encoding/json"
	"net/http"

	"monetrix-dashboard/internal/dto"
	apierrors "monetrix-dashboard/internal/errors"
	"monetrix-dashboard/internal/feed"
	"monetrix-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// FeedHandler accepts merged bank feeds from upstream fetchers
type FeedHandler struct {
	feedService services.FeedServiceInterface
}

func NewFeedHandler(feedService services.FeedServiceInterface) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

// ImportFeed stores a new snapshot for the client
//
// Method: POST /api/feeds/:clientId
//
// Request body: {"accounts": [...], "transactions": [...], "consents": [...]}
// Numbers in the records are kept exactly as sent.
//
// Success Response: 201 Created with dto.ImportFeedResponse
// Error Responses:
//   - 400: VALIDATION_001 invalid clientId, FEED_004 malformed body
//   - 500: SYSTEM_001 snapshot could not be stored
func (h *FeedHandler) ImportFeed(c echo.Context) error {
	req := dto.ImportFeedRequest{ClientID: c.Param("clientId")}

	decoder := json.NewDecoder(c.Request().Body)
	decoder.UseNumber()
	if err := decoder.Decode(&req); err != nil {
		return SendError(c, apierrors.FeedInvalidPayload, apierrors.WithDetails(err.Error()))
	}

	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	snapshot, err := h.feedService.ImportSnapshot(c.Request().Context(), req.ClientID, feed.Data{
		Accounts:     req.Accounts,
		Transactions: req.Transactions,
		Consents:     req.Consents,
	})
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data: dto.ImportFeedResponse{
			SnapshotID:   snapshot.ID.String(),
			ClientID:     snapshot.ClientID,
			Accounts:     len(snapshot.Accounts),
			Transactions: len(snapshot.Transactions),
			FetchedAt:    snapshot.FetchedAt,
		},
		Message: "Feed snapshot stored",
	})
}

// ListClients returns every client with a stored snapshot
//
// Method: GET /api/feeds
func (h *FeedHandler) ListClients(c echo.Context) error {
	clients, err := h.feedService.ListClients(c.Request().Context())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: dto.ClientsResponse{Clients: clients}})
}
