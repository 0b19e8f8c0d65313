package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/financa-pro/backend/internal/httputil"
	"github.com/financa-pro/backend/internal/models"
)

func (co Controller) RegisterSettingsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/theme", httputil.OptionsGetPut)
	r.GET("/theme", co.GetTheme)
	r.PUT("/theme", co.SetTheme)
}

type ThemeRequest struct {
	Theme models.Theme `json:"theme" example:"dark"`
}

type ThemeResponse struct {
	Data models.Theme `json:"data"`
}

// @Summary		Get theme
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	ThemeResponse
// @Router			/v1/settings/theme [get]
func (co Controller) GetTheme(c *gin.Context) {
	c.JSON(http.StatusOK, ThemeResponse{Data: co.store.Snapshot().Theme})
}

// @Summary		Set theme
// @Tags			Settings
// @Accept			json
// @Produce		json
// @Success		200	{object}	ThemeResponse
// @Failure		400	{object}	httpError
// @Param			theme	body	ThemeRequest	true	"Theme, light or dark"
// @Router			/v1/settings/theme [put]
func (co Controller) SetTheme(c *gin.Context) {
	var request ThemeRequest
	if err := httputil.BindData(c, &request); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := co.store.SetTheme(request.Theme); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ThemeResponse{Data: request.Theme})
}
