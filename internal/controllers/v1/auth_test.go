package v1_test

import (
	"net/http"

	v1 "github.com/financa-pro/backend/internal/controllers/v1"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestLogin() {
	recorder := suite.request(http.MethodPost, "/v1/login", v1.LoginRequest{Username: "admin", Password: "123"})
	suite.assertHTTPStatus(recorder, http.StatusOK)

	var response v1.UserResponse
	suite.decode(recorder, &response)

	assert.Equal(suite.T(), "ADMIN", response.Data.Username)
	assert.NotContains(suite.T(), recorder.Body.String(), "password", "passwords never leave the API")
}

func (suite *TestSuiteStandard) TestLoginWrongPassword() {
	recorder := suite.request(http.MethodPost, "/v1/login", v1.LoginRequest{Username: "ADMIN", Password: "wrong"})
	suite.assertHTTPStatus(recorder, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestLoginEmptyBody() {
	recorder := suite.request(http.MethodPost, "/v1/login", nil)
	suite.assertHTTPStatus(recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestSession() {
	recorder := suite.request(http.MethodGet, "/v1/session", nil)
	suite.assertHTTPStatus(recorder, http.StatusOK)

	var response v1.SessionResponse
	suite.decode(recorder, &response)
	assert.False(suite.T(), response.Authenticated)
	assert.Nil(suite.T(), response.User)

	suite.request(http.MethodPost, "/v1/login", v1.LoginRequest{Username: "admin", Password: "123"})

	recorder = suite.request(http.MethodGet, "/v1/session", nil)
	suite.decode(recorder, &response)
	assert.True(suite.T(), response.Authenticated)
	assert.Equal(suite.T(), "ADMIN", response.User.Username)
}

func (suite *TestSuiteStandard) TestLogout() {
	suite.request(http.MethodPost, "/v1/login", v1.LoginRequest{Username: "admin", Password: "123"})

	recorder := suite.request(http.MethodPost, "/v1/logout", nil)
	suite.assertHTTPStatus(recorder, http.StatusNoContent)

	var response v1.SessionResponse
	recorder = suite.request(http.MethodGet, "/v1/session", nil)
	suite.decode(recorder, &response)
	assert.False(suite.T(), response.Authenticated)
}

func (suite *TestSuiteStandard) TestUsers() {
	recorder := suite.request(http.MethodPost, "/v1/users", v1.UserEditable{Username: "maria", Name: "Maria", Password: "secret"})
	suite.assertHTTPStatus(recorder, http.StatusCreated)

	var created v1.UserResponse
	suite.decode(recorder, &created)
	assert.NotEmpty(suite.T(), created.Data.ID)

	recorder = suite.request(http.MethodGet, "/v1/users", nil)
	suite.assertHTTPStatus(recorder, http.StatusOK)

	var list v1.UserListResponse
	suite.decode(recorder, &list)
	assert.Len(suite.T(), list.Data, 2)
}

func (suite *TestSuiteStandard) TestCreateUserInvalid() {
	recorder := suite.request(http.MethodPost, "/v1/users", v1.UserEditable{Username: "maria", Name: "Maria"})
	suite.assertHTTPStatus(recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestDeleteUser() {
	recorder := suite.request(http.MethodPost, "/v1/users", v1.UserEditable{Username: "maria", Name: "Maria", Password: "secret"})
	var created v1.UserResponse
	suite.decode(recorder, &created)

	recorder = suite.request(http.MethodDelete, "/v1/users/"+created.Data.ID, nil)
	suite.assertHTTPStatus(recorder, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestDeleteAdminForbidden() {
	recorder := suite.request(http.MethodDelete, "/v1/users/admin", nil)
	suite.assertHTTPStatus(recorder, http.StatusForbidden)
}
