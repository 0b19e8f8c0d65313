package v1_test

import (
	"net/http"
	"strings"

	v1 "github.com/financa-pro/backend/internal/controllers/v1"
	"github.com/financa-pro/backend/internal/models"
	"github.com/financa-pro/backend/internal/report"
	"github.com/financa-pro/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestOverview() {
	suite.createTestTransaction(v1.TransactionEditable{
		Amount: decimal.NewFromInt(3000),
		Date:   types.NewDate(2026, 8, 10),
	})

	recorder := suite.request(http.MethodGet, "/v1/reports/overview?month=2026-08", nil)
	suite.assertHTTPStatus(recorder, http.StatusOK)

	var response v1.OverviewResponse
	suite.decode(recorder, &response)

	// Seeded incomes are 5000 + 4500.
	assert.True(suite.T(), response.Data.Income.Equal(decimal.NewFromInt(9500)))
	assert.True(suite.T(), response.Data.Expenses.Equal(decimal.NewFromInt(3000)))
	assert.True(suite.T(), response.Data.FreeBalance.Equal(decimal.NewFromInt(6500)))
	assert.Equal(suite.T(), report.HealthExcellent, response.Data.HealthLabel)
}

func (suite *TestSuiteStandard) TestOverviewBadMonth() {
	recorder := suite.request(http.MethodGet, "/v1/reports/overview?month=13-2026", nil)
	suite.assertHTTPStatus(recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoryBreakdown() {
	suite.createTestTransaction(v1.TransactionEditable{Category: models.CategoryLeisure, Amount: decimal.NewFromInt(200), Date: types.NewDate(2026, 8, 3)})
	suite.createTestTransaction(v1.TransactionEditable{Category: models.CategoryFood, Amount: decimal.NewFromInt(450), Date: types.NewDate(2026, 8, 1)})

	recorder := suite.request(http.MethodGet, "/v1/reports/categories?month=2026-08", nil)
	suite.assertHTTPStatus(recorder, http.StatusOK)

	var response v1.CategoryBreakdownResponse
	suite.decode(recorder, &response)

	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), models.CategoryFood, response.Data[0].Category, "enumeration order, not insertion order")
	assert.Equal(suite.T(), models.CategoryLeisure, response.Data[1].Category)
}

func (suite *TestSuiteStandard) TestSeries() {
	suite.createTestTransaction(v1.TransactionEditable{Amount: decimal.NewFromInt(100), Date: types.NewDate(2026, 6, 1)})

	recorder := suite.request(http.MethodGet, "/v1/reports/series?month=2026-08&months=3", nil)
	suite.assertHTTPStatus(recorder, http.StatusOK)

	var response v1.SeriesResponse
	suite.decode(recorder, &response)

	require.Len(suite.T(), response.Data, 3)
	assert.Equal(suite.T(), types.NewMonth(2026, 6), response.Data[0].Month)
	assert.True(suite.T(), response.Data[0].Expense.Equal(decimal.NewFromInt(100)))
}

func (suite *TestSuiteStandard) TestSeriesBadMonths() {
	recorder := suite.request(http.MethodGet, "/v1/reports/series?months=0", nil)
	suite.assertHTTPStatus(recorder, http.StatusBadRequest)

	recorder = suite.request(http.MethodGet, "/v1/reports/series?months=six", nil)
	suite.assertHTTPStatus(recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestOrphansReport() {
	created := suite.createTestTransaction(v1.TransactionEditable{})

	recorder := suite.request(http.MethodGet, "/v1/reports/orphans", nil)
	var response v1.OrphansResponse
	suite.decode(recorder, &response)
	assert.Empty(suite.T(), response.Data)

	// Deleting the member leaves the transaction's reference dangling.
	suite.request(http.MethodDelete, "/v1/members/1", nil)

	recorder = suite.request(http.MethodGet, "/v1/reports/orphans", nil)
	suite.decode(recorder, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), created.Data[0].ID, response.Data[0].TransactionID)
	assert.Equal(suite.T(), "memberId", response.Data[0].Field)
	assert.Equal(suite.T(), "1", response.Data[0].MissingID)
}

func (suite *TestSuiteStandard) TestTotals() {
	suite.createTestTransaction(v1.TransactionEditable{Type: models.TransactionIncome, Category: models.CategoryOther, Amount: decimal.NewFromInt(1000), Date: types.NewDate(2026, 8, 5)})
	suite.createTestTransaction(v1.TransactionEditable{Amount: decimal.NewFromInt(300), Date: types.NewDate(2026, 8, 6)})

	recorder := suite.request(http.MethodGet, "/v1/reports/totals?month=2026-08", nil)
	suite.assertHTTPStatus(recorder, http.StatusOK)

	var response v1.TotalsResponse
	suite.decode(recorder, &response)

	assert.True(suite.T(), response.Data.Incoming.Equal(decimal.NewFromInt(1000)))
	assert.True(suite.T(), response.Data.Outgoing.Equal(decimal.NewFromInt(300)))
}

func (suite *TestSuiteStandard) TestExportCSV() {
	suite.createTestTransaction(v1.TransactionEditable{Description: "Compras", Date: types.NewDate(2026, 8, 15)})

	recorder := suite.request(http.MethodGet, "/v1/reports/export?month=2026-08", nil)
	suite.assertHTTPStatus(recorder, http.StatusOK)

	assert.Contains(suite.T(), recorder.Header().Get("Content-Type"), "text/csv")
	assert.Contains(suite.T(), recorder.Header().Get("Content-Disposition"), "relatorio-financa-pro-2026-8.csv")

	body := recorder.Body.String()
	assert.True(suite.T(), strings.HasPrefix(body, "\uFEFF"))
	assert.Contains(suite.T(), body, "Data;Tipo;Descrição;Categoria;Membro;Pessoa/Empresa;Valor")
	assert.Contains(suite.T(), body, "15/08/2026;DESPESA;Compras;Alimentação;João;N/A;100,00")
}

func (suite *TestSuiteStandard) TestExportCSVMemberFilter() {
	suite.createTestTransaction(v1.TransactionEditable{MemberID: "1", Description: "Dele", Date: types.NewDate(2026, 8, 1)})
	suite.createTestTransaction(v1.TransactionEditable{MemberID: "2", Description: "Dela", Date: types.NewDate(2026, 8, 2)})

	recorder := suite.request(http.MethodGet, "/v1/reports/export?month=2026-08&member=2", nil)
	suite.assertHTTPStatus(recorder, http.StatusOK)

	body := recorder.Body.String()
	assert.NotContains(suite.T(), body, "Dele;")
	assert.Contains(suite.T(), body, "Dela")
}
