package repository

import (
	"testing"
	"time"

	"workforce-scheduler-backend/internal/database/models"
	"workforce-scheduler-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TaskInstanceRepositoryTestSuite tests the TaskInstanceRepository
type TaskInstanceRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TaskInstanceRepository
	eventRepo     *EventDefinitionRepository
	events        *testutils.EventDefinitionFactory
	tasks         *testutils.TaskInstanceFactory
}

// SetupSuite runs before all tests in the suite
func (suite *TaskInstanceRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTaskInstanceRepository(suite.baseTestSuite.DB)
	suite.eventRepo = NewEventDefinitionRepository(suite.baseTestSuite.DB)
	suite.events = testutils.NewEventDefinitionFactory()
	suite.tasks = testutils.NewTaskInstanceFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *TaskInstanceRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TaskInstanceRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TaskInstanceRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateConditionalIdempotent verifies the occurrence key is the mutual
// exclusion point: the second insert for the same (event, date) is a no-op
func (suite *TaskInstanceRepositoryTestSuite) TestCreateConditionalIdempotent() {
	event := suite.events.Create()
	suite.NoError(suite.eventRepo.Create(event))
	occurrence := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)

	first := suite.tasks.Generated(event, occurrence)
	created, err := suite.repo.CreateConditional(first)
	suite.NoError(err)
	suite.True(created)

	second := suite.tasks.Generated(event, occurrence)
	created, err = suite.repo.CreateConditional(second)
	suite.NoError(err)
	suite.False(created, "duplicate occurrence must not insert")

	tasks, err := suite.repo.GetBySourceEvent(event.ID)
	suite.NoError(err)
	suite.Len(tasks, 1)
	suite.Equal(first.ID, tasks[0].ID)
}

// TestCreateConditionalDistinctDates verifies different dates insert freely
func (suite *TaskInstanceRepositoryTestSuite) TestCreateConditionalDistinctDates() {
	event := suite.events.Create()
	suite.NoError(suite.eventRepo.Create(event))

	for day := 1; day <= 3; day++ {
		task := suite.tasks.Generated(event, time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC))
		created, err := suite.repo.CreateConditional(task)
		suite.NoError(err)
		suite.True(created)
	}

	tasks, err := suite.repo.GetBySourceEvent(event.ID)
	suite.NoError(err)
	suite.Len(tasks, 3)
}

// TestManualTasksNotConstrained verifies the occurrence index ignores rows
// with no source event
func (suite *TaskInstanceRepositoryTestSuite) TestManualTasksNotConstrained() {
	date := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)

	first := suite.tasks.WithSchedule(date, "08:00", "10:00")
	second := suite.tasks.WithSchedule(date, "08:00", "10:00")

	suite.NoError(suite.repo.Create(first))
	suite.NoError(suite.repo.Create(second), "two manual tasks on the same date must coexist")
}

// TestGetByOccurrence retrieves a generated task by its idempotency key
func (suite *TaskInstanceRepositoryTestSuite) TestGetByOccurrence() {
	event := suite.events.Create()
	suite.NoError(suite.eventRepo.Create(event))
	date := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)

	task := suite.tasks.Generated(event, date)
	_, err := suite.repo.CreateConditional(task)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByOccurrence(event.ID, date)
	suite.NoError(err)
	suite.Equal(task.ID, retrieved.ID)

	_, err = suite.repo.GetByOccurrence(event.ID, date.AddDate(0, 0, 1))
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestGetByDate filters by date and store and orders by start time
func (suite *TaskInstanceRepositoryTestSuite) TestGetByDate() {
	date := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)

	late := suite.tasks.WithSchedule(date, "14:00", "16:00")
	early := suite.tasks.WithSchedule(date, "06:00", "08:00")
	otherDay := suite.tasks.WithSchedule(date.AddDate(0, 0, 1), "06:00", "08:00")
	otherStore := suite.tasks.WithSchedule(date, "09:00", "11:00")
	otherStore.StoreID = "store-099"

	for _, task := range []*models.TaskInstance{late, early, otherDay, otherStore} {
		suite.NoError(suite.repo.Create(task))
	}

	tasks, total, err := suite.repo.GetByDate(date, "store-001", 10, 0)

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(tasks, 2)
	suite.Equal(early.ID, tasks[0].ID, "tasks must be ordered by start time")
	suite.Equal(late.ID, tasks[1].ID)
}

// TestGetIncompleteForDate excludes completed tasks and other dates
func (suite *TaskInstanceRepositoryTestSuite) TestGetIncompleteForDate() {
	date := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)

	open := suite.tasks.WithSchedule(date, "08:00", "10:00")
	done := suite.tasks.WithSchedule(date, "09:00", "11:00")
	done.IsCompleted = true
	yesterday := suite.tasks.WithSchedule(date.AddDate(0, 0, -1), "08:00", "10:00")

	for _, task := range []*models.TaskInstance{open, done, yesterday} {
		suite.NoError(suite.repo.Create(task))
	}

	tasks, err := suite.repo.GetIncompleteForDate(date)

	suite.NoError(err)
	suite.Len(tasks, 1)
	suite.Equal(open.ID, tasks[0].ID)
}

// TestUpdateFields applies partial updates
func (suite *TaskInstanceRepositoryTestSuite) TestUpdateFields() {
	task := suite.tasks.Create()
	suite.NoError(suite.repo.Create(task))

	err := suite.repo.UpdateFields(task.ID, map[string]interface{}{
		"title":         "Updated title",
		"package_count": 99,
	})
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(task.ID)
	suite.NoError(err)
	suite.Equal("Updated title", retrieved.Title)
	suite.Equal(99, retrieved.PackageCount)
	suite.Equal("08:00", retrieved.StartTime, "untouched fields must survive")
}

// TestUpdateFieldsNotFound returns record-not-found for an unknown ID
func (suite *TaskInstanceRepositoryTestSuite) TestUpdateFieldsNotFound() {
	err := suite.repo.UpdateFields(uuid.New(), map[string]interface{}{"title": "x"})

	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestDelete removes a task
func (suite *TaskInstanceRepositoryTestSuite) TestDelete() {
	task := suite.tasks.Create()
	suite.NoError(suite.repo.Create(task))

	suite.NoError(suite.repo.Delete(task.ID))

	_, err := suite.repo.GetByID(task.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)

	suite.Equal(gorm.ErrRecordNotFound, suite.repo.Delete(task.ID))
}

// TestTaskInstanceRepositorySuite runs the test suite
func TestTaskInstanceRepositorySuite(t *testing.T) {
	suite.Run(t, new(TaskInstanceRepositoryTestSuite))
}
