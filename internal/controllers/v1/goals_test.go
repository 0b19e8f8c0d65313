package v1_test

import (
	"net/http"

	v1 "github.com/financa-pro/backend/internal/controllers/v1"
	"github.com/financa-pro/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) createTestGoal(editable v1.GoalEditable) v1.GoalResponse {
	if editable.Name == "" {
		editable.Name = "Reserva"
	}
	if editable.Type == "" {
		editable.Type = models.GoalEmergency
	}
	if editable.TargetTotal.IsZero() {
		editable.TargetTotal = decimal.NewFromInt(15000)
	}

	recorder := suite.request(http.MethodPost, "/v1/goals", editable)
	suite.assertHTTPStatus(recorder, http.StatusCreated)

	var response v1.GoalResponse
	suite.decode(recorder, &response)
	return response
}

func (suite *TestSuiteStandard) TestCreateGoal() {
	response := suite.createTestGoal(v1.GoalEditable{Name: "Aposentadoria", Type: models.GoalRetirement})

	assert.NotEmpty(suite.T(), response.Data.ID)
	assert.Equal(suite.T(), models.GoalRetirement, response.Data.Type)
	assert.True(suite.T(), response.Data.CurrentTotal.IsZero())
}

func (suite *TestSuiteStandard) TestCreateGoalInvalid() {
	recorder := suite.request(http.MethodPost, "/v1/goals", v1.GoalEditable{Name: "Reserva", Type: models.GoalEmergency})
	suite.assertHTTPStatus(recorder, http.StatusBadRequest)
	assert.Contains(suite.T(), recorder.Body.String(), "target")
}

func (suite *TestSuiteStandard) TestGetGoalsCarryProgress() {
	goal := suite.createTestGoal(v1.GoalEditable{
		TargetTotal:          decimal.NewFromInt(12000),
		MonthlyTargetPercent: decimal.NewFromInt(15),
	})

	suite.createTestTransaction(v1.TransactionEditable{
		Type:   models.TransactionInvestment,
		GoalID: goal.Data.ID,
		Amount: decimal.NewFromInt(1425),
	})

	recorder := suite.request(http.MethodGet, "/v1/goals?month=2026-08", nil)
	suite.assertHTTPStatus(recorder, http.StatusOK)

	var response v1.GoalListResponse
	suite.decode(recorder, &response)

	require.Len(suite.T(), response.Data, 1)
	progress := response.Data[0].Progress

	// 15% of the 9500 seeded household income is a 1425 target.
	assert.True(suite.T(), progress.MonthlyTarget.Equal(decimal.NewFromInt(1425)))
	assert.True(suite.T(), progress.MonthlyContributed.Equal(decimal.NewFromInt(1425)))
	assert.True(suite.T(), progress.MonthlyProgress.Equal(decimal.NewFromInt(100)))
	assert.True(suite.T(), response.Data[0].CurrentTotal.Equal(decimal.NewFromInt(1425)))
}

func (suite *TestSuiteStandard) TestGetGoalsBadMonth() {
	recorder := suite.request(http.MethodGet, "/v1/goals?month=nope", nil)
	suite.assertHTTPStatus(recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestDeleteGoal() {
	goal := suite.createTestGoal(v1.GoalEditable{})

	recorder := suite.request(http.MethodDelete, "/v1/goals/"+goal.Data.ID, nil)
	suite.assertHTTPStatus(recorder, http.StatusNoContent)

	recorder = suite.request(http.MethodGet, "/v1/goals", nil)
	var response v1.GoalListResponse
	suite.decode(recorder, &response)
	assert.Empty(suite.T(), response.Data)
}

func (suite *TestSuiteStandard) TestPatchGoalProgress() {
	goal := suite.createTestGoal(v1.GoalEditable{})

	recorder := suite.request(http.MethodPatch, "/v1/goals/"+goal.Data.ID+"/progress", v1.GoalProgressPatch{Delta: decimal.NewFromInt(500)})
	suite.assertHTTPStatus(recorder, http.StatusNoContent)

	recorder = suite.request(http.MethodPatch, "/v1/goals/"+goal.Data.ID+"/progress", v1.GoalProgressPatch{Delta: decimal.NewFromInt(-200)})
	suite.assertHTTPStatus(recorder, http.StatusNoContent)

	stored, ok := suite.store.Snapshot().Goal(goal.Data.ID)
	require.True(suite.T(), ok)
	assert.True(suite.T(), stored.CurrentTotal.Equal(decimal.NewFromInt(300)))
}

func (suite *TestSuiteStandard) TestPatchGoalProgressEmptyBody() {
	goal := suite.createTestGoal(v1.GoalEditable{})

	recorder := suite.request(http.MethodPatch, "/v1/goals/"+goal.Data.ID+"/progress", nil)
	suite.assertHTTPStatus(recorder, http.StatusBadRequest)
}
