package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"monetrix-dashboard/internal/feed"
	"monetrix-dashboard/internal/models"
	"monetrix-dashboard/internal/repositories/repository_mocks"
	"monetrix-dashboard/internal/services"
	"monetrix-dashboard/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type FeedServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	ctrl         *gomock.Controller
	snapshotRepo *repository_mocks.MockFeedSnapshotRepositoryInterface
	loader       *service_mocks.MockFeedLoaderInterface
	metrics      *service_mocks.MockMetricsRecorderInterface
	feedLogger   *service_mocks.MockFeedLoggerInterface
	clientID     string
	data         feed.Data
}

func TestFeedServiceSuite(t *testing.T) {
	suite.Run(t, new(FeedServiceTestSuite))
}

func (s *FeedServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.snapshotRepo = repository_mocks.NewMockFeedSnapshotRepositoryInterface(s.ctrl)
	s.loader = service_mocks.NewMockFeedLoaderInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.feedLogger = service_mocks.NewMockFeedLoggerInterface(s.ctrl)
	s.clientID = gofakeit.Username()

	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordGauge(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()

	s.data = feed.Data{
		Accounts: models.RawRecords{
			{"id": gofakeit.UUID(), "bank": "sber", "balance": gofakeit.Price(0, 10000)},
			{"id": gofakeit.UUID(), "bank": "vtb", "balance": gofakeit.Price(0, 10000)},
		},
		Transactions: models.RawRecords{
			{"date": "2024-03-01", "amount": gofakeit.Price(-500, 500)},
		},
		Consents: models.RawRecords{
			{"bank": "sber", "status": feed.ConsentActive},
			{"bank": "vtb", "status": feed.ConsentActive},
		},
	}
}

func (s *FeedServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *FeedServiceTestSuite) newService(lenient bool) services.FeedServiceInterface {
	return services.NewFeedService(s.snapshotRepo, s.loader, s.metrics, s.feedLogger, lenient)
}

func (s *FeedServiceTestSuite) TestImportSnapshot_Success() {
	var stored *models.FeedSnapshot
	s.snapshotRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, snapshot *models.FeedSnapshot) error {
			stored = snapshot
			return nil
		})
	s.feedLogger.EXPECT().LogSnapshotImported(gomock.Any(), s.clientID, gomock.Any(), 2, 1)

	snapshot, err := s.newService(false).ImportSnapshot(s.ctx, "  "+s.clientID+" ", s.data)

	s.Require().NoError(err)
	s.Same(stored, snapshot)
	s.Equal(s.clientID, snapshot.ClientID)
	s.Len(snapshot.Accounts, 2)
	s.Len(snapshot.Consents, 2)
	s.WithinDuration(time.Now(), snapshot.FetchedAt, time.Minute)
}

func (s *FeedServiceTestSuite) TestImportSnapshot_EmptyClient() {
	snapshot, err := s.newService(false).ImportSnapshot(s.ctx, "", s.data)

	s.Nil(snapshot)
	s.ErrorIs(err, services.ErrInvalidClientID)
}

func (s *FeedServiceTestSuite) TestImportSnapshot_StoreError() {
	dbErr := errors.New("disk full")
	s.snapshotRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dbErr)
	s.feedLogger.EXPECT().LogSnapshotImportFailed(gomock.Any(), s.clientID, dbErr.Error())

	_, err := s.newService(false).ImportSnapshot(s.ctx, s.clientID, s.data)

	s.ErrorIs(err, dbErr)
	s.ErrorIs(err, services.ErrSnapshotStore)
}

func (s *FeedServiceTestSuite) TestImportDirectory_Strict() {
	s.loader.EXPECT().Load(gomock.Any(), "/feeds/client").Return(&s.data, nil)
	s.snapshotRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.feedLogger.EXPECT().LogSnapshotImported(gomock.Any(), s.clientID, gomock.Any(), 2, 1)

	snapshot, err := s.newService(false).ImportDirectory(s.ctx, s.clientID, "/feeds/client")

	s.Require().NoError(err)
	s.Len(snapshot.Transactions, 1)
}

func (s *FeedServiceTestSuite) TestImportDirectory_Lenient() {
	s.loader.EXPECT().LoadLenient(gomock.Any(), "/feeds/client").Return(&s.data, nil)
	s.snapshotRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.feedLogger.EXPECT().LogSnapshotImported(gomock.Any(), s.clientID, gomock.Any(), 2, 1)

	_, err := s.newService(true).ImportDirectory(s.ctx, s.clientID, "/feeds/client")

	s.Require().NoError(err)
}

func (s *FeedServiceTestSuite) TestImportDirectory_IncompleteFeedNotStored() {
	loadErr := errors.Join(feed.ErrIncompleteFeed, errors.New("tbank: unexpected EOF"))
	s.loader.EXPECT().Load(gomock.Any(), "/feeds/client").Return(nil, loadErr)
	s.feedLogger.EXPECT().LogSnapshotImportFailed(gomock.Any(), s.clientID, gomock.Any())

	snapshot, err := s.newService(false).ImportDirectory(s.ctx, s.clientID, "/feeds/client")

	s.Nil(snapshot)
	s.ErrorIs(err, feed.ErrIncompleteFeed)
}

func (s *FeedServiceTestSuite) TestPruneSnapshots() {
	s.snapshotRepo.EXPECT().DeleteOlderThan(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cutoff time.Time) (int64, error) {
			s.WithinDuration(time.Now().Add(-48*time.Hour), cutoff, time.Minute)
			return 3, nil
		})
	s.metrics.EXPECT().AddCounter(services.MetricSnapshotsPruned, float64(3), gomock.Any())
	s.feedLogger.EXPECT().LogSnapshotsPruned(gomock.Any(), int64(3), gomock.Any())

	deleted, err := s.newService(false).PruneSnapshots(s.ctx, 48*time.Hour)

	s.Require().NoError(err)
	s.Equal(int64(3), deleted)
}

func (s *FeedServiceTestSuite) TestPruneSnapshots_InvalidRetention() {
	_, err := s.newService(false).PruneSnapshots(s.ctx, 0)

	s.ErrorIs(err, services.ErrInvalidRetention)
}

func (s *FeedServiceTestSuite) TestPruneSnapshots_StoreError() {
	s.snapshotRepo.EXPECT().DeleteOlderThan(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("locked"))

	deleted, err := s.newService(false).PruneSnapshots(s.ctx, time.Hour)

	s.ErrorIs(err, services.ErrSnapshotStore)
	s.Zero(deleted)
}

func (s *FeedServiceTestSuite) TestListClients() {
	s.snapshotRepo.EXPECT().ListClientIDs(gomock.Any()).Return([]string{"alpha", "beta"}, nil)

	clients, err := s.newService(false).ListClients(s.ctx)

	s.Require().NoError(err)
	s.Equal([]string{"alpha", "beta"}, clients)
}

func (s *FeedServiceTestSuite) TestListClients_EmptyStore() {
	s.snapshotRepo.EXPECT().ListClientIDs(gomock.Any()).Return(nil, nil)

	clients, err := s.newService(false).ListClients(s.ctx)

	s.Require().NoError(err)
	s.NotNil(clients)
	s.Empty(clients)
}

func (s *FeedServiceTestSuite) TestListClients_StoreError() {
	s.snapshotRepo.EXPECT().ListClientIDs(gomock.Any()).Return(nil, errors.New("timeout"))

	_, err := s.newService(false).ListClients(s.ctx)

	s.ErrorIs(err, services.ErrSnapshotStore)
}
