package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/financa-pro/backend/internal/httputil"
)

func (co Controller) RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/login", httputil.OptionsPost)
	r.POST("/login", co.Login)
	r.OPTIONS("/logout", httputil.OptionsPost)
	r.POST("/logout", co.Logout)
	r.OPTIONS("/session", httputil.OptionsGet)
	r.GET("/session", co.GetSession)
}

type LoginRequest struct {
	Username string `json:"username" example:"ADMIN"`
	Password string `json:"password"`
}

type SessionResponse struct {
	Authenticated bool  `json:"authenticated"`
	User          *User `json:"user,omitempty"`
}

// @Summary		Log in
// @Description	Matches the username case-insensitively and the password exactly. The error does not reveal which of the two was wrong.
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Param			credentials	body	LoginRequest	true	"Credentials"
// @Router			/v1/login [post]
func (co Controller) Login(c *gin.Context) {
	var request LoginRequest
	if err := httputil.BindData(c, &request); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	user, err := co.store.Login(request.Username, request.Password)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, UserResponse{Data: newUser(user)})
}

// @Summary		Log out
// @Description	Clears the session principal
// @Tags			Auth
// @Success		204
// @Router			/v1/logout [post]
func (co Controller) Logout(c *gin.Context) {
	co.store.Logout()
	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Session
// @Description	Returns the current session principal
// @Tags			Auth
// @Produce		json
// @Success		200	{object}	SessionResponse
// @Router			/v1/session [get]
func (co Controller) GetSession(c *gin.Context) {
	user, ok := co.store.CurrentUser()
	if !ok {
		c.JSON(http.StatusOK, SessionResponse{Authenticated: false})
		return
	}

	resource := newUser(user)
	c.JSON(http.StatusOK, SessionResponse{Authenticated: true, User: &resource})
}
