package v1_test

import (
	"net/http"

	v1 "github.com/financa-pro/backend/internal/controllers/v1"
	"github.com/financa-pro/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestThemeDefaultsToDark() {
	recorder := suite.request(http.MethodGet, "/v1/settings/theme", nil)
	suite.assertHTTPStatus(recorder, http.StatusOK)

	var response v1.ThemeResponse
	suite.decode(recorder, &response)
	assert.Equal(suite.T(), models.ThemeDark, response.Data)
}

func (suite *TestSuiteStandard) TestSetTheme() {
	recorder := suite.request(http.MethodPut, "/v1/settings/theme", v1.ThemeRequest{Theme: models.ThemeLight})
	suite.assertHTTPStatus(recorder, http.StatusOK)

	recorder = suite.request(http.MethodGet, "/v1/settings/theme", nil)
	var response v1.ThemeResponse
	suite.decode(recorder, &response)
	assert.Equal(suite.T(), models.ThemeLight, response.Data)
}

func (suite *TestSuiteStandard) TestSetThemeInvalid() {
	recorder := suite.request(http.MethodPut, "/v1/settings/theme", v1.ThemeRequest{Theme: "solarized"})
	suite.assertHTTPStatus(recorder, http.StatusBadRequest)
}
