package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"monetrix-dashboard/internal/feed"
	"monetrix-dashboard/internal/models"
	"monetrix-dashboard/internal/services"
	"monetrix-dashboard/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type FeedHandlerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	echo     *echo.Echo
	mockFeed *service_mocks.MockFeedServiceInterface
	handler  *FeedHandler
}

func TestFeedHandlerSuite(t *testing.T) {
	suite.Run(t, new(FeedHandlerTestSuite))
}

func (s *FeedHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.mockFeed = service_mocks.NewMockFeedServiceInterface(s.ctrl)
	s.handler = NewFeedHandler(s.mockFeed)
}

func (s *FeedHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *FeedHandlerTestSuite) newContext(clientID, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/feeds/"+clientID, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetPath("/api/feeds/:clientId")
	c.SetParamNames("clientId")
	c.SetParamValues(clientID)
	return c, rec
}

func (s *FeedHandlerTestSuite) TestImportFeed_Success() {
	clientID := gofakeit.Username()
	snapshotID := uuid.New()
	fetchedAt := time.Date(2024, 4, 2, 10, 0, 0, 0, time.UTC)
	body := `{
		"accounts": [{"accountId": "a1", "bank": "sber", "balance": 10500.55}],
		"transactions": [{"accountId": "a1", "amount": -300, "date": "2024-03-10"}],
		"consents": [{"bank": "sber", "status": "active"}]
	}`
	c, rec := s.newContext(clientID, body)

	s.mockFeed.EXPECT().ImportSnapshot(gomock.Any(), clientID, gomock.Any()).DoAndReturn(
		func(_ context.Context, id string, data feed.Data) (*models.FeedSnapshot, error) {
			s.Require().Len(data.Accounts, 1)
			s.Equal(json.Number("10500.55"), data.Accounts[0]["balance"])
			s.Require().Len(data.Transactions, 1)
			s.Equal(json.Number("-300"), data.Transactions[0]["amount"])
			s.Len(data.Consents, 1)
			return &models.FeedSnapshot{
				ID:           snapshotID,
				ClientID:     id,
				Accounts:     data.Accounts,
				Transactions: data.Transactions,
				Consents:     data.Consents,
				FetchedAt:    fetchedAt,
			}, nil
		})

	s.NoError(s.handler.ImportFeed(c))

	s.Equal(http.StatusCreated, rec.Code)
	var response struct {
		Data    map[string]interface{} `json:"data"`
		Message string                 `json:"message"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(snapshotID.String(), response.Data["snapshotId"])
	s.Equal(clientID, response.Data["clientId"])
	s.Equal(float64(1), response.Data["accounts"])
	s.Equal(float64(1), response.Data["transactions"])
	s.Equal("2024-04-02T10:00:00Z", response.Data["fetchedAt"])
	s.Equal("Feed snapshot stored", response.Message)
}

func (s *FeedHandlerTestSuite) TestImportFeed_BodyCannotOverrideClient() {
	c, rec := s.newContext("client-1", `{"ClientID": "client-2", "accounts": []}`)

	s.mockFeed.EXPECT().ImportSnapshot(gomock.Any(), "client-1", gomock.Any()).
		Return(&models.FeedSnapshot{ID: uuid.New(), ClientID: "client-1"}, nil)

	s.NoError(s.handler.ImportFeed(c))
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *FeedHandlerTestSuite) TestImportFeed_MalformedBody() {
	c, rec := s.newContext("client-1", `{"accounts": [`)

	s.NoError(s.handler.ImportFeed(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("FEED_004", response.Error.Code)
}

func (s *FeedHandlerTestSuite) TestImportFeed_RecordsMustBeObjects() {
	c, rec := s.newContext("client-1", `{"accounts": [1, 2]}`)

	s.NoError(s.handler.ImportFeed(c))

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *FeedHandlerTestSuite) TestImportFeed_InvalidClientID() {
	c, rec := s.newContext("has space", `{"accounts": []}`)

	s.NoError(s.handler.ImportFeed(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("VALIDATION_001", response.Error.Code)
	s.Require().Len(response.Error.Details, 1)
	s.Contains(response.Error.Details[0], "clientId:")
}

func (s *FeedHandlerTestSuite) TestImportFeed_StoreFailure() {
	c, rec := s.newContext("client-1", `{"accounts": []}`)
	s.mockFeed.EXPECT().ImportSnapshot(gomock.Any(), "client-1", gomock.Any()).
		Return(nil, fmt.Errorf("%w: create: %w", services.ErrSnapshotStore, errors.New("insert failed")))

	s.NoError(s.handler.ImportFeed(c))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_002")
	s.NotContains(rec.Body.String(), "insert failed")
}

func (s *FeedHandlerTestSuite) TestListClients() {
	req := httptest.NewRequest(http.MethodGet, "/api/feeds", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	s.mockFeed.EXPECT().ListClients(gomock.Any()).Return([]string{"alpha", "beta"}, nil)

	s.NoError(s.handler.ListClients(c))

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"data": {"clients": ["alpha", "beta"]}}`, rec.Body.String())
}
