package handlers_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"workforce-scheduler-backend/internal/api/handlers"
	"workforce-scheduler-backend/internal/mocks"
	"workforce-scheduler-backend/internal/service"
	"workforce-scheduler-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// EngineHandlerTestSuite defines the test suite for EngineHandler
type EngineHandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockEngine *mocks.MockEngineInterface
	handler    *handlers.EngineHandler
	httpSuite  *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *EngineHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockEngine = mocks.NewMockEngineInterface(suite.ctrl)

	// Create handler with mock engine
	suite.handler = handlers.NewEngineHandler(suite.mockEngine)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Register routes
	v1 := suite.httpSuite.Router.Group("/api/v1")
	engine := v1.Group("/engine")
	{
		engine.POST("/materialize", suite.handler.Materialize)
		engine.POST("/evaluate", suite.handler.Evaluate)
	}
}

// TearDownTest cleans up after each test
func (suite *EngineHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestMaterialize tests the Materialize handler
func (suite *EngineHandlerTestSuite) TestMaterialize() {
	suite.T().Run("WithDateParameter", func(t *testing.T) {
		date := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)

		expectedSummary := &service.MaterializationSummary{
			Date:          date,
			Created:       3,
			AlreadyExists: 1,
			Skipped:       2,
		}

		suite.mockEngine.EXPECT().
			GenerateForDate(gomock.Any(), date, "").
			Return(expectedSummary, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/engine/materialize?date=2024-01-08", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.MaterializationSummary
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, 3, response.Created)
		assert.Equal(t, 1, response.AlreadyExists)
	})

	suite.T().Run("WithStoreParameter", func(t *testing.T) {
		suite.mockEngine.EXPECT().
			GenerateForDate(gomock.Any(), gomock.Any(), "store-042").
			Return(&service.MaterializationSummary{}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/engine/materialize?store_id=store-042", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("DefaultsToToday", func(t *testing.T) {
		suite.mockEngine.EXPECT().
			GenerateForDate(gomock.Any(), gomock.Any(), "").
			Return(&service.MaterializationSummary{}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/engine/materialize", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("InvalidDate", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/engine/materialize?date=January+8", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "YYYY-MM-DD")
	})

	suite.T().Run("EngineError", func(t *testing.T) {
		suite.mockEngine.EXPECT().
			GenerateForDate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database connection lost")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/engine/materialize", nil)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}

// TestEvaluate tests the Evaluate handler
func (suite *EngineHandlerTestSuite) TestEvaluate() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockEngine.EXPECT().
			EvaluateNow(gomock.Any()).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/engine/evaluate", nil)

		assert.Equal(t, http.StatusAccepted, recorder.Code)

		var response map[string]interface{}
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "evaluation completed", response["status"])
	})

	suite.T().Run("EngineError", func(t *testing.T) {
		suite.mockEngine.EXPECT().
			EvaluateNow(gomock.Any()).
			Return(errors.New("database connection lost")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/engine/evaluate", nil)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}

// TestEngineHandlerTestSuite runs the test suite
func TestEngineHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EngineHandlerTestSuite))
}
