package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/financa-pro/backend/internal/httputil"
	"github.com/financa-pro/backend/internal/models"
	"github.com/financa-pro/backend/internal/report"
	"github.com/financa-pro/backend/internal/types"
)

func (co Controller) RegisterGoalRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetGoals)
		r.POST("", co.CreateGoal)
	}
	{
		r.OPTIONS("/:id", httputil.OptionsDelete)
		r.DELETE("/:id", co.DeleteGoal)
		r.OPTIONS("/:id/progress", httputil.OptionsPatch)
		r.PATCH("/:id/progress", co.UpdateGoalProgress)
	}
}

// GoalEditable are the fields callers set on a goal.
type GoalEditable struct {
	Name                 string          `json:"name" example:"Reserva"`
	Type                 models.GoalType `json:"type" example:"Reserva de Emergência"`
	TargetTotal          decimal.Decimal `json:"targetTotal" example:"15000"`
	MonthlyTargetPercent decimal.Decimal `json:"monthlyTargetPercent,omitempty" example:"15"`
	Color                string          `json:"color" example:"#10B981"`
}

func (editable GoalEditable) model() models.InvestmentGoal {
	return models.InvestmentGoal{
		Name:                 editable.Name,
		Type:                 editable.Type,
		TargetTotal:          editable.TargetTotal,
		MonthlyTargetPercent: editable.MonthlyTargetPercent,
		Color:                editable.Color,
	}
}

// Goal is the API representation of a goal, enriched with its pacing for
// the requested month.
type Goal struct {
	models.InvestmentGoal
	Progress report.GoalProgress `json:"progress"`
}

type GoalResponse struct {
	Data Goal `json:"data"`
}

type GoalListResponse struct {
	Data []Goal `json:"data"`
}

// GoalProgressPatch adjusts a goal's running total by a delta. Negative
// deltas are allowed, withdrawals are recorded this way.
type GoalProgressPatch struct {
	Delta decimal.Decimal `json:"delta" example:"250"`
}

// @Summary		List goals
// @Description	Returns all goals with their pacing block for the requested month. A goal without a positive monthly target counts as on track.
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalListResponse
// @Failure		400	{object}	httpError
// @Param			month	query	string	false	"Calendar month in YYYY-MM format, defaults to the current month"
// @Router			/v1/goals [get]
func (co Controller) GetGoals(c *gin.Context) {
	month, err := monthFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	snapshot := co.store.Snapshot()

	data := make([]Goal, 0, len(snapshot.Goals))
	for _, goal := range snapshot.Goals {
		data = append(data, Goal{InvestmentGoal: goal, Progress: report.ProgressOfGoal(snapshot, goal, month)})
	}

	c.JSON(http.StatusOK, GoalListResponse{Data: data})
}

// @Summary		Create goal
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		201	{object}	GoalResponse
// @Failure		400	{object}	httpError
// @Param			goal	body	GoalEditable	true	"Goal"
// @Router			/v1/goals [post]
func (co Controller) CreateGoal(c *gin.Context) {
	var editable GoalEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	goal, err := co.store.AddGoal(editable.model())
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	snapshot := co.store.Snapshot()
	c.JSON(http.StatusCreated, GoalResponse{Data: Goal{
		InvestmentGoal: goal,
		Progress:       report.ProgressOfGoal(snapshot, goal, types.MonthOf(time.Now())),
	}})
}

// @Summary		Delete goal
// @Description	Deletes a goal. Transactions referencing it keep their goalId. Unknown ids are a no-op.
// @Tags			Goals
// @Success		204
// @Param			id	path	string	true	"ID of the goal"
// @Router			/v1/goals/{id} [delete]
func (co Controller) DeleteGoal(c *gin.Context) {
	if err := co.store.RemoveGoal(c.Param("id")); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Adjust goal progress
// @Description	Adjusts the goal's running total by the submitted delta, outside the transaction flow. Unknown ids are a no-op.
// @Tags			Goals
// @Accept			json
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id		path	string				true	"ID of the goal"
// @Param			patch	body	GoalProgressPatch	true	"Adjustment"
// @Router			/v1/goals/{id}/progress [patch]
func (co Controller) UpdateGoalProgress(c *gin.Context) {
	var patch GoalProgressPatch
	if err := httputil.BindData(c, &patch); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := co.store.UpdateGoalProgress(c.Param("id"), patch.Delta); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
