package v1_test

import (
	"net/http"

	v1 "github.com/financa-pro/backend/internal/controllers/v1"
	"github.com/financa-pro/backend/internal/models"
	"github.com/financa-pro/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) createTestTransaction(editable v1.TransactionEditable) v1.TransactionCreateResponse {
	if editable.MemberID == "" {
		editable.MemberID = "1"
	}
	if editable.Type == "" {
		editable.Type = models.TransactionExpense
	}
	if editable.PaymentMethod == "" {
		editable.PaymentMethod = models.PaymentPix
	}
	if editable.Category == "" {
		editable.Category = models.CategoryFood
	}
	if editable.Description == "" {
		editable.Description = "Teste"
	}
	if editable.Amount.IsZero() {
		editable.Amount = decimal.NewFromInt(100)
	}
	if editable.Date.IsZero() {
		editable.Date = types.NewDate(2026, 8, 15)
	}

	recorder := suite.request(http.MethodPost, "/v1/transactions", editable)
	suite.assertHTTPStatus(recorder, http.StatusCreated)

	var response v1.TransactionCreateResponse
	suite.decode(recorder, &response)
	return response
}

func (suite *TestSuiteStandard) TestCreateTransaction() {
	response := suite.createTestTransaction(v1.TransactionEditable{Description: "Mercado"})

	require.Len(suite.T(), response.Data, 1)
	assert.NotEmpty(suite.T(), response.Data[0].ID)
	assert.Equal(suite.T(), "Mercado", response.Data[0].Description)
}

func (suite *TestSuiteStandard) TestCreateTransactionInstallments() {
	response := suite.createTestTransaction(v1.TransactionEditable{
		PaymentMethod: models.PaymentCredit,
		Amount:        decimal.NewFromInt(300),
		Installments:  3,
		Date:          types.NewDate(2026, 8, 15),
	})

	require.Len(suite.T(), response.Data, 3, "the full installment family is returned")

	parent := response.Data[0].ID
	assert.Equal(suite.T(), parent+"-2", response.Data[1].ID)
	assert.Equal(suite.T(), parent+"-3", response.Data[2].ID)

	for i, tx := range response.Data {
		assert.Equal(suite.T(), parent, tx.ParentID)
		assert.Equal(suite.T(), i+1, tx.CurrentInstallment)
		assert.True(suite.T(), tx.Amount.Equal(decimal.NewFromInt(100)))
	}

	assert.Equal(suite.T(), types.NewDate(2026, 9, 15), response.Data[1].Date)
	assert.Equal(suite.T(), types.NewDate(2026, 10, 15), response.Data[2].Date)
}

func (suite *TestSuiteStandard) TestCreateTransactionInstallmentsIgnoredForPix() {
	// Installments only apply to credit purchases.
	response := suite.createTestTransaction(v1.TransactionEditable{
		PaymentMethod: models.PaymentPix,
		Amount:        decimal.NewFromInt(300),
		Installments:  3,
	})

	require.Len(suite.T(), response.Data, 1)
	assert.True(suite.T(), response.Data[0].Amount.Equal(decimal.NewFromInt(300)))
}

func (suite *TestSuiteStandard) TestCreateTransactionInvestmentCategory() {
	goal := suite.createTestGoal(v1.GoalEditable{})

	response := suite.createTestTransaction(v1.TransactionEditable{
		Type:     models.TransactionInvestment,
		Category: models.CategoryFood, // submitted category is overridden
		GoalID:   goal.Data.ID,
		Amount:   decimal.NewFromInt(250),
	})

	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), models.CategoryInvestment, response.Data[0].Category)
}

func (suite *TestSuiteStandard) TestCreateTransactionInvalid() {
	recorder := suite.request(http.MethodPost, "/v1/transactions", v1.TransactionEditable{})
	suite.assertHTTPStatus(recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateTransactionBrokenJSON() {
	recorder := suite.request(http.MethodPost, "/v1/transactions", `{ "amount": "broken`)
	suite.assertHTTPStatus(recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetTransactionsFilters() {
	suite.createTestTransaction(v1.TransactionEditable{Description: "Mercado da esquina", Date: types.NewDate(2026, 8, 1)})
	suite.createTestTransaction(v1.TransactionEditable{Description: "Cinema", Category: models.CategoryLeisure, Date: types.NewDate(2026, 8, 2)})
	suite.createTestTransaction(v1.TransactionEditable{Description: "Aluguel antigo", Category: models.CategoryHousing, Date: types.NewDate(2026, 7, 1)})
	suite.createTestTransaction(v1.TransactionEditable{MemberID: "2", Description: "Farmácia", Category: models.CategoryHealth, Date: types.NewDate(2026, 8, 3)})

	tests := []struct {
		query string
		count int
	}{
		{"month=2026-08", 3},
		{"month=2026-07", 1},
		{"month=2026-08&member=2", 1},
		{"month=2026-08&category=Lazer", 1},
		{"month=2026-08&type=RECEITA", 0},
		{"month=2026-08&description=Mercado*", 1},
		{"month=2026-08&description=*a*", 3},
		{"", 4},
	}

	for _, tt := range tests {
		recorder := suite.request(http.MethodGet, "/v1/transactions?"+tt.query, nil)
		suite.assertHTTPStatus(recorder, http.StatusOK)

		var response v1.TransactionListResponse
		suite.decode(recorder, &response)
		assert.Len(suite.T(), response.Data, tt.count, "query %q", tt.query)
	}
}

func (suite *TestSuiteStandard) TestGetTransactionsBadMonth() {
	recorder := suite.request(http.MethodGet, "/v1/transactions?month=August", nil)
	suite.assertHTTPStatus(recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetTransaction() {
	created := suite.createTestTransaction(v1.TransactionEditable{Description: "Mercado"})

	recorder := suite.request(http.MethodGet, "/v1/transactions/"+created.Data[0].ID, nil)
	suite.assertHTTPStatus(recorder, http.StatusOK)

	var response v1.TransactionResponse
	suite.decode(recorder, &response)
	assert.Equal(suite.T(), "Mercado", response.Data.Description)
}

func (suite *TestSuiteStandard) TestGetTransactionNotFound() {
	recorder := suite.request(http.MethodGet, "/v1/transactions/does-not-exist", nil)
	suite.assertHTTPStatus(recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteTransactionKeepsSiblings() {
	created := suite.createTestTransaction(v1.TransactionEditable{
		PaymentMethod: models.PaymentCredit,
		Amount:        decimal.NewFromInt(300),
		Installments:  3,
	})

	recorder := suite.request(http.MethodDelete, "/v1/transactions/"+created.Data[1].ID, nil)
	suite.assertHTTPStatus(recorder, http.StatusNoContent)

	recorder = suite.request(http.MethodGet, "/v1/transactions", nil)
	var response v1.TransactionListResponse
	suite.decode(recorder, &response)
	assert.Len(suite.T(), response.Data, 2)
}

func (suite *TestSuiteStandard) TestDeleteTransactionUnknownIsNoOp() {
	recorder := suite.request(http.MethodDelete, "/v1/transactions/does-not-exist", nil)
	suite.assertHTTPStatus(recorder, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestShareTransaction() {
	created := suite.createTestTransaction(v1.TransactionEditable{Description: "Mercado"})

	recorder := suite.request(http.MethodGet, "/v1/transactions/"+created.Data[0].ID+"/share", nil)
	suite.assertHTTPStatus(recorder, http.StatusOK)

	var response v1.ShareResponse
	suite.decode(recorder, &response)

	assert.Contains(suite.T(), response.Message, "Lançamento Confirmado")
	assert.Contains(suite.T(), response.Message, "Mercado")
	require.Len(suite.T(), response.Links, 1)
	assert.Contains(suite.T(), response.Links[0], "https://wa.me/5541987518610?text=")
}

func (suite *TestSuiteStandard) TestShareTransactionNotFound() {
	recorder := suite.request(http.MethodGet, "/v1/transactions/does-not-exist/share", nil)
	suite.assertHTTPStatus(recorder, http.StatusNotFound)
}
