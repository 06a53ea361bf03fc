package service_test

import (
	"testing"
	"time"

	"workforce-scheduler-backend/internal/database/models"
	apperrors "workforce-scheduler-backend/internal/errors"
	"workforce-scheduler-backend/internal/mocks"
	"workforce-scheduler-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// EventServiceUpdateTestSuite covers update semantics that do not need a
// database, driven through repository mocks
type EventServiceUpdateTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *mocks.MockEventDefinitionRepositoryInterface
	mockTaskRepo *mocks.MockTaskInstanceRepositoryInterface
	svc          *service.EventService
}

// SetupTest sets up the test suite
func (suite *EventServiceUpdateTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockEventDefinitionRepositoryInterface(suite.ctrl)
	suite.mockTaskRepo = mocks.NewMockTaskInstanceRepositoryInterface(suite.ctrl)
	suite.svc = service.NewEventService(suite.mockRepo, suite.mockTaskRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *EventServiceUpdateTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *EventServiceUpdateTestSuite) boundedEvent() *models.EventDefinition {
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	return &models.EventDefinition{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		StartTime:       "08:00",
		DurationMinutes: 120,
		RecurrenceKind:  models.RecurrenceDaily,
		WindowStart:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		WindowEnd:       &end,
		Title:           "Morning truck unload",
		ManagerID:       "mgr-001",
		StoreID:         "store-001",
		IsActive:        true,
	}
}

// TestUpdateClearWindowEnd verifies a bounded definition can be reopened:
// the clear flag resets window_end to open-ended, which a nil pointer alone
// (meaning "unchanged") cannot express
func (suite *EventServiceUpdateTestSuite) TestUpdateClearWindowEnd() {
	def := suite.boundedEvent()

	suite.mockRepo.EXPECT().GetByID(def.ID).Return(def, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(updated *models.EventDefinition) error {
		suite.Nil(updated.WindowEnd)
		return nil
	})

	resp, err := suite.svc.Update(def.ID, &service.UpdateEventRequest{ClearWindowEnd: true})
	suite.NoError(err)
	suite.Nil(resp.WindowEnd)
}

// TestUpdateSetAndClearWindowEndRejected verifies the two ways of touching
// window_end cannot be combined in one request
func (suite *EventServiceUpdateTestSuite) TestUpdateSetAndClearWindowEndRejected() {
	def := suite.boundedEvent()
	newEnd := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.EXPECT().GetByID(def.ID).Return(def, nil)

	_, err := suite.svc.Update(def.ID, &service.UpdateEventRequest{
		WindowEnd:      &newEnd,
		ClearWindowEnd: true,
	})
	suite.Error(err)
	suite.True(apperrors.IsValidation(err))
}

// TestUpdateNilWindowEndLeavesItUnchanged verifies the absent-field default
func (suite *EventServiceUpdateTestSuite) TestUpdateNilWindowEndLeavesItUnchanged() {
	def := suite.boundedEvent()

	suite.mockRepo.EXPECT().GetByID(def.ID).Return(def, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(updated *models.EventDefinition) error {
		suite.NotNil(updated.WindowEnd)
		return nil
	})

	title := "Evening truck unload"
	resp, err := suite.svc.Update(def.ID, &service.UpdateEventRequest{Title: &title})
	suite.NoError(err)
	suite.NotNil(resp.WindowEnd)
	suite.Equal(title, resp.Title)
}

// TestEventServiceUpdateSuite runs the test suite
func TestEventServiceUpdateSuite(t *testing.T) {
	suite.Run(t, new(EventServiceUpdateTestSuite))
}
