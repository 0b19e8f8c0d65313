package v1_test

import (
	"net/http"

	v1 "github.com/financa-pro/backend/internal/controllers/v1"
	"github.com/financa-pro/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) createTestMember(editable v1.MemberEditable) v1.MemberResponse {
	if editable.Name == "" {
		editable.Name = "Teste"
	}

	recorder := suite.request(http.MethodPost, "/v1/members", editable)
	suite.assertHTTPStatus(recorder, http.StatusCreated)

	var response v1.MemberResponse
	suite.decode(recorder, &response)
	return response
}

func (suite *TestSuiteStandard) createTestCard(editable v1.CardEditable) v1.CardResponse {
	if editable.Name == "" {
		editable.Name = "Cartão Teste"
	}
	if editable.MemberID == "" {
		editable.MemberID = "1"
	}
	if editable.Type == "" {
		editable.Type = models.CardDebit
	}

	recorder := suite.request(http.MethodPost, "/v1/cards", editable)
	suite.assertHTTPStatus(recorder, http.StatusCreated)

	var response v1.CardResponse
	suite.decode(recorder, &response)
	return response
}

func (suite *TestSuiteStandard) TestGetMembersSeeded() {
	recorder := suite.request(http.MethodGet, "/v1/members", nil)
	suite.assertHTTPStatus(recorder, http.StatusOK)

	var response v1.MemberListResponse
	suite.decode(recorder, &response)

	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "João", response.Data[0].Name)
	assert.Equal(suite.T(), "Maria", response.Data[1].Name)
}

func (suite *TestSuiteStandard) TestCreateMember() {
	response := suite.createTestMember(v1.MemberEditable{Name: "Ana", Income: decimal.NewFromInt(3000)})

	assert.NotEmpty(suite.T(), response.Data.ID)
	assert.Equal(suite.T(), "Ana", response.Data.Name)
}

func (suite *TestSuiteStandard) TestCreateMemberInvalid() {
	recorder := suite.request(http.MethodPost, "/v1/members", v1.MemberEditable{})
	suite.assertHTTPStatus(recorder, http.StatusBadRequest)
	assert.Contains(suite.T(), recorder.Body.String(), "name")
}

func (suite *TestSuiteStandard) TestDeleteMember() {
	response := suite.createTestMember(v1.MemberEditable{Name: "Ana"})

	recorder := suite.request(http.MethodDelete, "/v1/members/"+response.Data.ID, nil)
	suite.assertHTTPStatus(recorder, http.StatusNoContent)

	// Deleting again is a silent no-op.
	recorder = suite.request(http.MethodDelete, "/v1/members/"+response.Data.ID, nil)
	suite.assertHTTPStatus(recorder, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestCardsCarryUsage() {
	card := suite.createTestCard(v1.CardEditable{
		Type:       models.CardCredit,
		Limit:      decimal.NewFromInt(1000),
		ClosingDay: 1,
		DueDay:     10,
	})

	suite.createTestTransaction(v1.TransactionEditable{
		PaymentMethod: models.PaymentCredit,
		CardID:        card.Data.ID,
		Amount:        decimal.NewFromInt(950),
	})

	recorder := suite.request(http.MethodGet, "/v1/cards", nil)
	suite.assertHTTPStatus(recorder, http.StatusOK)

	var response v1.CardListResponse
	suite.decode(recorder, &response)

	require.Len(suite.T(), response.Data, 1)
	usage := response.Data[0].Usage
	assert.True(suite.T(), usage.Used.Equal(decimal.NewFromInt(950)))
	assert.True(suite.T(), usage.Warning)
	assert.True(suite.T(), usage.Critical)
}

func (suite *TestSuiteStandard) TestCreateCardInvalid() {
	recorder := suite.request(http.MethodPost, "/v1/cards", v1.CardEditable{Name: "Nubank", MemberID: "1", Type: models.CardCredit})
	suite.assertHTTPStatus(recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestEntities() {
	recorder := suite.request(http.MethodPost, "/v1/entities", v1.EntityEditable{Name: "Mercado Central", Type: models.EntityCompany})
	suite.assertHTTPStatus(recorder, http.StatusCreated)

	var created v1.EntityResponse
	suite.decode(recorder, &created)
	assert.NotEmpty(suite.T(), created.Data.ID)

	recorder = suite.request(http.MethodGet, "/v1/entities", nil)
	var list v1.EntityListResponse
	suite.decode(recorder, &list)
	assert.Len(suite.T(), list.Data, 1)

	recorder = suite.request(http.MethodDelete, "/v1/entities/"+created.Data.ID, nil)
	suite.assertHTTPStatus(recorder, http.StatusNoContent)
}
