package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/financa-pro/backend/internal/export"
	"github.com/financa-pro/backend/internal/httputil"
	"github.com/financa-pro/backend/internal/report"
)

func (co Controller) RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/overview", httputil.OptionsGet)
	r.GET("/overview", co.GetOverview)

	r.OPTIONS("/categories", httputil.OptionsGet)
	r.GET("/categories", co.GetCategoryBreakdown)

	r.OPTIONS("/series", httputil.OptionsGet)
	r.GET("/series", co.GetSeries)

	r.OPTIONS("/orphans", httputil.OptionsGet)
	r.GET("/orphans", co.GetOrphans)

	r.OPTIONS("/totals", httputil.OptionsGet)
	r.GET("/totals", co.GetTotals)

	r.OPTIONS("/export", httputil.OptionsGet)
	r.GET("/export", co.ExportCSV)
}

type OverviewResponse struct {
	Data report.Overview `json:"data"`
}

type CategoryBreakdownResponse struct {
	Data []report.CategoryTotal `json:"data"`
}

type SeriesResponse struct {
	Data []report.MonthSummary `json:"data"`
}

type OrphansResponse struct {
	Data []report.OrphanReference `json:"data"`
}

// @Summary		Monthly overview
// @Description	The dashboard summary for a month: income, expenses, investments, free balance, spending ratio, health score and label, and the overall goal progress.
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	OverviewResponse
// @Failure		400	{object}	httpError
// @Param			month	query	string	false	"Calendar month in YYYY-MM format, defaults to the current month"
// @Router			/v1/reports/overview [get]
func (co Controller) GetOverview(c *gin.Context) {
	month, err := monthFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, OverviewResponse{Data: report.MonthlyOverview(co.store.Snapshot(), month)})
}

// @Summary		Category breakdown
// @Description	The expense total per category for a month. Categories without expenses are left out.
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	CategoryBreakdownResponse
// @Failure		400	{object}	httpError
// @Param			month	query	string	false	"Calendar month in YYYY-MM format, defaults to the current month"
// @Router			/v1/reports/categories [get]
func (co Controller) GetCategoryBreakdown(c *gin.Context) {
	month, err := monthFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, CategoryBreakdownResponse{Data: report.CategoryBreakdown(co.store.Snapshot(), month)})
}

// @Summary		Income and expense series
// @Description	The recorded income and expense totals of the trailing months ending at the requested month, oldest first.
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	SeriesResponse
// @Failure		400	{object}	httpError
// @Param			month	query	string	false	"Last month of the series in YYYY-MM format, defaults to the current month"
// @Param			months	query	int		false	"Number of months, defaults to 6"
// @Router			/v1/reports/series [get]
func (co Controller) GetSeries(c *gin.Context) {
	month, err := monthFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	months := 6
	if value := c.Query("months"); value != "" {
		months, err = strconv.Atoi(value)
		if err != nil || months < 1 {
			c.JSON(http.StatusBadRequest, httpError{Error: "months must be a positive number"})
			return
		}
	}

	c.JSON(http.StatusOK, SeriesResponse{Data: report.Series(co.store.Snapshot(), month, months)})
}

// @Summary		Dangling references
// @Description	Lists transactions referencing members, cards, entities, goals or parents that no longer exist. Deletions never cascade, this report makes the leftovers visible.
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	OrphansResponse
// @Router			/v1/reports/orphans [get]
func (co Controller) GetOrphans(c *gin.Context) {
	c.JSON(http.StatusOK, OrphansResponse{Data: report.Orphans(co.store.Snapshot())})
}

type TotalsResponse struct {
	Data export.Totals `json:"data"`
}

// @Summary		Report totals
// @Description	The incoming and outgoing sums for a month, optionally filtered to one member. Expenses and investments both count as outgoing.
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	TotalsResponse
// @Failure		400	{object}	httpError
// @Param			month	query	string	false	"Calendar month in YYYY-MM format, defaults to the current month"
// @Param			member	query	string	false	"Member id, or 'all' for every member"
// @Router			/v1/reports/totals [get]
func (co Controller) GetTotals(c *gin.Context) {
	month, err := monthFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	filter := export.ReportFilter{Month: month, MemberID: c.Query("member")}
	c.JSON(http.StatusOK, TotalsResponse{Data: export.TotalsOf(co.store.Snapshot(), filter)})
}

// @Summary		Export report
// @Description	Downloads the transactions of a month as a semicolon-separated spreadsheet, optionally filtered to one member.
// @Tags			Reports
// @Produce		text/csv
// @Success		200
// @Failure		400	{object}	httpError
// @Param			month	query	string	false	"Calendar month in YYYY-MM format, defaults to the current month"
// @Param			member	query	string	false	"Member id, or 'all' for every member"
// @Router			/v1/reports/export [get]
func (co Controller) ExportCSV(c *gin.Context) {
	month, err := monthFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	filter := export.ReportFilter{Month: month, MemberID: c.Query("member")}

	data, err := export.CSV(co.store.Snapshot(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.CSVFilename(month)))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
