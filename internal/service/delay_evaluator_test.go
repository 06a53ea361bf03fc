package service_test

import (
	"context"
	"testing"
	"time"

	"workforce-scheduler-backend/internal/config"
	"workforce-scheduler-backend/internal/database/models"
	"workforce-scheduler-backend/internal/repository"
	"workforce-scheduler-backend/internal/service"
	"workforce-scheduler-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// DelayEvaluatorTestSuite drives the lateness state machine against a real
// database: the one-open-alert guarantee is enforced by a partial index
type DelayEvaluatorTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	taskRepo      *repository.TaskInstanceRepository
	alertRepo     *repository.DelayAlertRepository
	notifier      *recordingNotifier
	evaluator     *service.DelayEvaluator
	tasks         *testutils.TaskInstanceFactory
}

// SetupSuite runs before all tests in the suite
func (suite *DelayEvaluatorTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.taskRepo = repository.NewTaskInstanceRepository(suite.baseTestSuite.DB)
	suite.alertRepo = repository.NewDelayAlertRepository(suite.baseTestSuite.DB)
	suite.tasks = testutils.NewTaskInstanceFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *DelayEvaluatorTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *DelayEvaluatorTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.notifier = &recordingNotifier{}
	suite.evaluator = service.NewDelayEvaluator(
		suite.taskRepo, suite.alertRepo, suite.notifier, nil,
		15*time.Minute, 60*time.Minute,
	)
}

// TearDownTest runs after each test
func (suite *DelayEvaluatorTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// openTask creates an incomplete task scheduled 08:00-10:00 on 2024-01-08
func (suite *DelayEvaluatorTestSuite) openTask() *models.TaskInstance {
	task := suite.tasks.WithSchedule(time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), "08:00", "10:00")
	suite.NoError(suite.taskRepo.Create(task))
	return task
}

func (suite *DelayEvaluatorTestSuite) at(hour, minute int) time.Time {
	return time.Date(2024, 1, 8, hour, minute, 0, 0, time.UTC)
}

// TestWarningRaisedOncePastGrace: scheduled end 10:00, grace 15m. 10:20 is
// late, and a second pass five minutes later must not duplicate the alert.
func (suite *DelayEvaluatorTestSuite) TestWarningRaisedOncePastGrace() {
	task := suite.openTask()

	suite.NoError(suite.evaluator.EvaluateTask(task, suite.at(10, 20)))

	alerts, err := suite.alertRepo.GetByTask(task.ID)
	suite.NoError(err)
	suite.Len(alerts, 1)
	suite.Equal(models.AlertSeverityWarning, alerts[0].Severity)
	suite.Len(suite.notifier.events, 1)

	suite.NoError(suite.evaluator.EvaluateTask(task, suite.at(10, 25)))

	alerts, err = suite.alertRepo.GetByTask(task.ID)
	suite.NoError(err)
	suite.Len(alerts, 1, "still-late task must not raise a second alert")
	suite.Len(suite.notifier.events, 1)
}

// TestNoAlertWithinGrace verifies the grace period suppresses alerts
func (suite *DelayEvaluatorTestSuite) TestNoAlertWithinGrace() {
	task := suite.openTask()

	suite.NoError(suite.evaluator.EvaluateTask(task, suite.at(10, 10)))

	alerts, err := suite.alertRepo.GetByTask(task.ID)
	suite.NoError(err)
	suite.Empty(alerts)
}

// TestEscalationSupersedesOpenWarning verifies escalation updates the open
// alert in place rather than inserting a second row
func (suite *DelayEvaluatorTestSuite) TestEscalationSupersedesOpenWarning() {
	task := suite.openTask()

	suite.NoError(suite.evaluator.EvaluateTask(task, suite.at(10, 20)))

	open, err := suite.alertRepo.GetOpenByTask(task.ID)
	suite.NoError(err)
	warningID := open.ID

	// Past 11:00 the lateness crosses the escalation threshold
	suite.NoError(suite.evaluator.EvaluateTask(task, suite.at(11, 30)))

	alerts, err := suite.alertRepo.GetByTask(task.ID)
	suite.NoError(err)
	suite.Len(alerts, 1)
	suite.Equal(warningID, alerts[0].ID, "escalation must reuse the open row")
	suite.Equal(models.AlertSeverityCritical, alerts[0].Severity)
	suite.Len(suite.notifier.events, 2, "escalation is re-notified")
}

// TestAcknowledgedWarningThenEscalation: after the warning is acknowledged a
// later escalation opens a fresh critical alert, not a duplicate warning
func (suite *DelayEvaluatorTestSuite) TestAcknowledgedWarningThenEscalation() {
	task := suite.openTask()

	suite.NoError(suite.evaluator.EvaluateTask(task, suite.at(10, 20)))

	open, err := suite.alertRepo.GetOpenByTask(task.ID)
	suite.NoError(err)
	suite.NoError(suite.alertRepo.Acknowledge(open.ID, "mgr-001", suite.at(10, 30)))

	// Still warning-late: the incident already alerted at warning level
	suite.NoError(suite.evaluator.EvaluateTask(task, suite.at(10, 45)))
	alerts, err := suite.alertRepo.GetByTask(task.ID)
	suite.NoError(err)
	suite.Len(alerts, 1, "no duplicate warning after acknowledgement")

	// Escalation level is news for this incident
	suite.NoError(suite.evaluator.EvaluateTask(task, suite.at(11, 30)))
	alerts, err = suite.alertRepo.GetByTask(task.ID)
	suite.NoError(err)
	suite.Len(alerts, 2)

	fresh, err := suite.alertRepo.GetOpenByTask(task.ID)
	suite.NoError(err)
	suite.Equal(models.AlertSeverityCritical, fresh.Severity)
}

// TestAcknowledgedCriticalEndsIncident: nothing outranks critical, so the
// incident stays quiet after its critical alert is acknowledged
func (suite *DelayEvaluatorTestSuite) TestAcknowledgedCriticalEndsIncident() {
	task := suite.openTask()

	suite.NoError(suite.evaluator.EvaluateTask(task, suite.at(11, 30)))

	open, err := suite.alertRepo.GetOpenByTask(task.ID)
	suite.NoError(err)
	suite.Equal(models.AlertSeverityCritical, open.Severity)
	suite.NoError(suite.alertRepo.Acknowledge(open.ID, "mgr-001", suite.at(11, 35)))

	suite.NoError(suite.evaluator.EvaluateTask(task, suite.at(14, 0)))

	alerts, err := suite.alertRepo.GetByTask(task.ID)
	suite.NoError(err)
	suite.Len(alerts, 1)
}

// TestStartTimeChangeResetsIncident: rescheduling a late task re-anchors its
// incident, so the open alert follows the new start
func (suite *DelayEvaluatorTestSuite) TestStartTimeChangeResetsIncident() {
	task := suite.openTask()

	suite.NoError(suite.evaluator.EvaluateTask(task, suite.at(10, 20)))

	// Manager pushes the task two hours later
	task.StartTime = "10:00"
	task.EndTime = "12:00"
	suite.NoError(suite.taskRepo.Update(task))

	// Late against the new schedule too
	suite.NoError(suite.evaluator.EvaluateTask(task, suite.at(12, 30)))

	alerts, err := suite.alertRepo.GetByTask(task.ID)
	suite.NoError(err)
	suite.Len(alerts, 1, "open alert is re-anchored, not duplicated")
	suite.True(alerts[0].ScheduledStart.Equal(task.ScheduledStart()))
}

// TestCompletedTaskNeverAlerts verifies completion resolves the state machine
func (suite *DelayEvaluatorTestSuite) TestCompletedTaskNeverAlerts() {
	task := suite.openTask()
	now := suite.at(10, 20)
	task.IsCompleted = true
	task.CompletedAt = &now
	suite.NoError(suite.taskRepo.Update(task))

	suite.NoError(suite.evaluator.EvaluateTask(task, suite.at(12, 0)))

	alerts, err := suite.alertRepo.GetByTask(task.ID)
	suite.NoError(err)
	suite.Empty(alerts)
}

// TestEvaluateAllSkipsWhenStoreClosed verifies the store-hours gate
func (suite *DelayEvaluatorTestSuite) TestEvaluateAllSkipsWhenStoreClosed() {
	task := suite.openTask()

	closed := &config.StoreHours{Days: map[string]config.DayHours{
		"monday": {Closed: true},
	}}
	evaluator := service.NewDelayEvaluator(
		suite.taskRepo, suite.alertRepo, suite.notifier, closed,
		15*time.Minute, 60*time.Minute,
	)

	// 2024-01-08 is a Monday
	suite.NoError(evaluator.EvaluateAll(context.Background(), suite.at(10, 20)))

	alerts, err := suite.alertRepo.GetByTask(task.ID)
	suite.NoError(err)
	suite.Empty(alerts)
}

// TestEvaluateAllScansIncompleteTasks verifies the polling pass end to end
func (suite *DelayEvaluatorTestSuite) TestEvaluateAllScansIncompleteTasks() {
	late := suite.openTask()

	onTime := suite.tasks.WithSchedule(time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), "10:30", "12:30")
	suite.NoError(suite.taskRepo.Create(onTime))

	suite.NoError(suite.evaluator.EvaluateAll(context.Background(), suite.at(10, 20)))

	alerts, err := suite.alertRepo.GetByTask(late.ID)
	suite.NoError(err)
	suite.Len(alerts, 1)

	none, err := suite.alertRepo.GetByTask(onTime.ID)
	suite.NoError(err)
	suite.Empty(none)
}

// TestDelayEvaluatorSuite runs the test suite
func TestDelayEvaluatorSuite(t *testing.T) {
	suite.Run(t, new(DelayEvaluatorTestSuite))
}
