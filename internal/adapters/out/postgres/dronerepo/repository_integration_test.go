package dronerepo_test

import (
	"context"
	"testing"
	"time"

	"dronedelivery/internal/adapters/out/postgres/dronerepo"
	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/ports"
	"dronedelivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// DroneRepositoryIntegrationTestSuite provides integration tests for DroneRepository
// using PostgreSQL containers to verify database persistence behavior.
type DroneRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *dronerepo.GormDroneRepository
	tracker    *MockAggregateTracker
}

func (suite *DroneRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	// TranslateError turns the unique index violation into gorm.ErrDuplicatedKey
	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&dronerepo.DroneDTO{}))
}

func (suite *DroneRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE drones").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = dronerepo.NewGormDroneRepository(suite.db, suite.tracker)
}

func (suite *DroneRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DroneRepositoryIntegrationTestSuite) createTestDrone(serialNumber string) *drone.Drone {
	battery, err := drone.NewBattery(80, 100)
	suite.Require().NoError(err)

	d, err := drone.NewDrone(
		kernel.NewUUID(), kernel.NewUUID(), "DJI FlyCart 30", serialNumber,
		drone.Capacity{WeightKg: 30, VolumeCm3: 70000},
		battery,
		drone.Specifications{MaxSpeedKmh: 80, MaxAltitudeM: 120, RangeKm: 28, FlightTimeMin: 29},
	)
	suite.Require().NoError(err)
	return d
}

func (suite *DroneRepositoryIntegrationTestSuite) TestAdd_ValidDrone_Success() {
	ctx := context.Background()
	d := suite.createTestDrone("FC30-0001")

	suite.tracker.On("TrackAggregate", d.ID(), d).Once()

	err := suite.repository.Add(ctx, d)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Table("drones").Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DroneRepositoryIntegrationTestSuite) TestAdd_DuplicateSerial_Conflict() {
	ctx := context.Background()
	first := suite.createTestDrone("FC30-0001")
	second := suite.createTestDrone("FC30-0001")

	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	err := suite.repository.Add(ctx, second)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)

	var count int64
	suite.Require().NoError(suite.db.Table("drones").Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DroneRepositoryIntegrationTestSuite) TestGet_ExistingDrone_RoundTrip() {
	ctx := context.Background()
	d := suite.createTestDrone("FC30-0001")

	suite.tracker.On("TrackAggregate", d.ID(), d).Once()
	suite.Require().NoError(suite.repository.Add(ctx, d))

	loaded, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)

	suite.True(loaded.IsEqual(d))
	suite.Equal(d.SerialNumber(), loaded.SerialNumber())
	suite.Equal(d.Model(), loaded.Model())
	suite.Equal(d.Status(), loaded.Status())
	suite.Equal(d.Battery().Current(), loaded.Battery().Current())
	suite.Equal(d.Battery().MaxCapacity(), loaded.Battery().MaxCapacity())
	suite.Equal(d.Capacity(), loaded.Capacity())
	suite.Equal(d.Specifications(), loaded.Specifications())
}

func (suite *DroneRepositoryIntegrationTestSuite) TestGet_NonExistentDrone_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DroneRepositoryIntegrationTestSuite) TestUpdate_PersistsChanges() {
	ctx := context.Background()
	d := suite.createTestDrone("FC30-0001")

	suite.tracker.On("TrackAggregate", d.ID(), d).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, d))

	suite.Require().NoError(d.SetBatteryLevel(15))
	suite.Require().NoError(suite.repository.Update(ctx, d))

	loaded, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Equal(15, loaded.Battery().Current())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DroneRepositoryIntegrationTestSuite) TestUpdateIfStatus_StatusMatches_Success() {
	ctx := context.Background()
	d := suite.createTestDrone("FC30-0001")

	suite.tracker.On("TrackAggregate", d.ID(), d).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, d))

	suite.Require().NoError(d.ChangeStatus(drone.Busy))
	err := suite.repository.UpdateIfStatus(ctx, d, drone.Available)
	suite.Require().NoError(err)

	loaded, loadErr := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(loadErr)
	suite.Equal(drone.Busy, loaded.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DroneRepositoryIntegrationTestSuite) TestUpdateIfStatus_StatusChanged_LostRace() {
	ctx := context.Background()
	d := suite.createTestDrone("FC30-0001")

	suite.tracker.On("TrackAggregate", d.ID(), d).Once()
	suite.Require().NoError(suite.repository.Add(ctx, d))

	// A concurrent writer moves the drone to maintenance behind our back.
	suite.Require().NoError(
		suite.db.Exec("UPDATE drones SET status = ? WHERE id = ?",
			int(drone.Maintenance), d.ID().Bytes()).Error)

	suite.Require().NoError(d.ChangeStatus(drone.Busy))
	err := suite.repository.UpdateIfStatus(ctx, d, drone.Available)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, ports.ErrDroneStatusChanged)

	// The stored row must keep the concurrent writer's state.
	loaded, loadErr := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(loadErr)
	suite.Equal(drone.Maintenance, loaded.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DroneRepositoryIntegrationTestSuite) TestGetAllAvailable_FiltersStatusAndShop() {
	ctx := context.Background()

	available := suite.createTestDrone("FC30-0001")
	busy := suite.createTestDrone("FC30-0002")
	suite.Require().NoError(busy.ChangeStatus(drone.Busy))

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, available))
	suite.Require().NoError(suite.repository.Add(ctx, busy))

	all, err := suite.repository.GetAllAvailable(ctx, nil)
	suite.Require().NoError(err)
	suite.Require().Len(all, 1)
	suite.True(all[0].IsEqual(available))

	shopID := available.ShopID()
	scoped, err := suite.repository.GetAllAvailable(ctx, &shopID)
	suite.Require().NoError(err)
	suite.Require().Len(scoped, 1)
	suite.True(scoped[0].IsEqual(available))

	otherShop := kernel.NewUUID()
	none, err := suite.repository.GetAllAvailable(ctx, &otherShop)
	suite.Require().NoError(err)
	suite.Empty(none)
}

func TestDroneRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(DroneRepositoryIntegrationTestSuite))
}
