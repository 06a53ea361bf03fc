package service_test

import (
	"context"
	"testing"
	"time"

	"workforce-scheduler-backend/internal/database/models"
	"workforce-scheduler-backend/internal/repository"
	"workforce-scheduler-backend/internal/service"
	"workforce-scheduler-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// MaterializerTestSuite exercises the expansion pipeline against a real
// database, since idempotency lives in the occurrence index
type MaterializerTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	eventRepo     *repository.EventDefinitionRepository
	taskRepo      *repository.TaskInstanceRepository
	materializer  *service.Materializer
	events        *testutils.EventDefinitionFactory
}

// SetupSuite runs before all tests in the suite
func (suite *MaterializerTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.eventRepo = repository.NewEventDefinitionRepository(suite.baseTestSuite.DB)
	suite.taskRepo = repository.NewTaskInstanceRepository(suite.baseTestSuite.DB)
	suite.materializer = service.NewMaterializer(suite.eventRepo, suite.taskRepo)
	suite.events = testutils.NewEventDefinitionFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *MaterializerTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *MaterializerTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *MaterializerTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *MaterializerTestSuite) weeklyEvent() *models.EventDefinition {
	event := suite.events.WithRecurrence(models.RecurrenceWeekly)
	event.WindowStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.NoError(suite.eventRepo.Create(event))
	return event
}

// TestMaterializeTwiceYieldsOneTask is the core idempotency guarantee:
// re-running a date converges instead of duplicating
func (suite *MaterializerTestSuite) TestMaterializeTwiceYieldsOneTask() {
	event := suite.weeklyEvent()
	date := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	result, err := suite.materializer.Materialize(ctx, event, date)
	suite.NoError(err)
	suite.Equal(service.MaterializationCreated, result)

	result, err = suite.materializer.Materialize(ctx, event, date)
	suite.NoError(err)
	suite.Equal(service.MaterializationAlreadyExists, result)

	tasks, err := suite.taskRepo.GetBySourceEvent(event.ID)
	suite.NoError(err)
	suite.Len(tasks, 1)
	suite.Equal(date, service.DateOnly(tasks[0].OccurrenceDate))
	suite.Equal("08:00", tasks[0].StartTime)
	suite.Equal("10:00", tasks[0].EndTime)
}

// TestMaterializeSkipsNonOccurringDate verifies non-matching dates produce
// nothing
func (suite *MaterializerTestSuite) TestMaterializeSkipsNonOccurringDate() {
	event := suite.weeklyEvent()
	tuesday := time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)

	result, err := suite.materializer.Materialize(context.Background(), event, tuesday)
	suite.NoError(err)
	suite.Equal(service.MaterializationSkipped, result)

	tasks, err := suite.taskRepo.GetBySourceEvent(event.ID)
	suite.NoError(err)
	suite.Empty(tasks)
}

// TestReconcilePreservesOverrides verifies a manager-edited field survives
// re-materialization while unedited fields follow the definition
func (suite *MaterializerTestSuite) TestReconcilePreservesOverrides() {
	event := suite.weeklyEvent()
	date := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	_, err := suite.materializer.Materialize(ctx, event, date)
	suite.NoError(err)

	// Manager renames the task
	task, err := suite.taskRepo.GetByOccurrence(event.ID, date)
	suite.NoError(err)
	task.Title = "Renamed by manager"
	task.MarkOverridden(models.FieldTitle)
	suite.NoError(suite.taskRepo.Update(task))

	// Definition changes both title and package count
	event.Title = "New definition title"
	event.PackageCount = 75
	suite.NoError(suite.eventRepo.Update(event))

	result, err := suite.materializer.Materialize(ctx, event, date)
	suite.NoError(err)
	suite.Equal(service.MaterializationAlreadyExists, result)

	reconciled, err := suite.taskRepo.GetByOccurrence(event.ID, date)
	suite.NoError(err)
	suite.Equal("Renamed by manager", reconciled.Title, "overridden field must not be clobbered")
	suite.Equal(75, reconciled.PackageCount, "unedited field must follow the definition")
}

// TestReconcileNeverTouchesOperationalFields verifies completion and pin
// state survive re-materialization
func (suite *MaterializerTestSuite) TestReconcileNeverTouchesOperationalFields() {
	event := suite.weeklyEvent()
	date := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	_, err := suite.materializer.Materialize(ctx, event, date)
	suite.NoError(err)

	task, err := suite.taskRepo.GetByOccurrence(event.ID, date)
	suite.NoError(err)
	now := time.Now()
	task.IsCompleted = true
	task.CompletedAt = &now
	task.IsPinned = true
	suite.NoError(suite.taskRepo.Update(task))

	_, err = suite.materializer.Materialize(ctx, event, date)
	suite.NoError(err)

	reconciled, err := suite.taskRepo.GetByOccurrence(event.ID, date)
	suite.NoError(err)
	suite.True(reconciled.IsCompleted)
	suite.True(reconciled.IsPinned)
	suite.NotNil(reconciled.CompletedAt)
}

// TestMaterializeDateSummary runs a whole pass and checks the counters
func (suite *MaterializerTestSuite) TestMaterializeDateSummary() {
	monday := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)

	suite.weeklyEvent()

	daily := suite.events.Create()
	suite.NoError(suite.eventRepo.Create(daily))

	weekend := suite.events.WithRecurrence(models.RecurrenceCustom, 0, 6)
	suite.NoError(suite.eventRepo.Create(weekend))

	inactive := suite.events.Inactive()
	suite.NoError(suite.eventRepo.Create(inactive))

	summary, err := suite.materializer.MaterializeDate(context.Background(), monday, "")
	suite.NoError(err)
	suite.Equal(2, summary.Created, "weekly and daily fire on a Monday")
	suite.Equal(2, summary.Skipped, "weekend-only and inactive are skipped")
	suite.Equal(0, summary.AlreadyExists)
	suite.Equal(0, summary.Failed)

	// A second pass converges to already-exists
	summary, err = suite.materializer.MaterializeDate(context.Background(), monday, "")
	suite.NoError(err)
	suite.Equal(0, summary.Created)
	suite.Equal(2, summary.AlreadyExists)
}

// TestMaterializeDateScopedToStore verifies a store-scoped pass leaves other
// stores' definitions untouched
func (suite *MaterializerTestSuite) TestMaterializeDateScopedToStore() {
	monday := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)

	here := suite.events.Create()
	suite.NoError(suite.eventRepo.Create(here))

	elsewhere := suite.events.Create()
	elsewhere.StoreID = "store-099"
	suite.NoError(suite.eventRepo.Create(elsewhere))

	summary, err := suite.materializer.MaterializeDate(context.Background(), monday, "store-001")
	suite.NoError(err)
	suite.Equal(1, summary.Created)

	tasks, err := suite.taskRepo.GetBySourceEvent(elsewhere.ID)
	suite.NoError(err)
	suite.Empty(tasks)
}

// TestMaterializerSuite runs the test suite
func TestMaterializerSuite(t *testing.T) {
	suite.Run(t, new(MaterializerTestSuite))
}
