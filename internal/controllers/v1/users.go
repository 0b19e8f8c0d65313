package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/financa-pro/backend/internal/httputil"
	"github.com/financa-pro/backend/internal/models"
)

func (co Controller) RegisterUserRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetUsers)
		r.POST("", co.CreateUser)
	}
	{
		r.OPTIONS("/:id", httputil.OptionsDelete)
		r.DELETE("/:id", co.DeleteUser)
	}
}

// UserEditable are the fields callers set on an account.
type UserEditable struct {
	Username string `json:"username" example:"maria"`
	Name     string `json:"name" example:"Maria"`
	Password string `json:"password"`
}

func (editable UserEditable) model() models.UserAccount {
	return models.UserAccount{
		Username: editable.Username,
		Name:     editable.Name,
		Password: editable.Password,
	}
}

// User is the API representation of an account. The password is never
// part of it.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

func newUser(user models.UserAccount) User {
	return User{ID: user.ID, Username: user.Username, Name: user.Name}
}

type UserResponse struct {
	Data User `json:"data"`
}

type UserListResponse struct {
	Data []User `json:"data"`
}

// @Summary		List accounts
// @Tags			Users
// @Produce		json
// @Success		200	{object}	UserListResponse
// @Router			/v1/users [get]
func (co Controller) GetUsers(c *gin.Context) {
	snapshot := co.store.Snapshot()

	data := make([]User, 0, len(snapshot.Users))
	for _, user := range snapshot.Users {
		data = append(data, newUser(user))
	}

	c.JSON(http.StatusOK, UserListResponse{Data: data})
}

// @Summary		Create account
// @Tags			Users
// @Accept			json
// @Produce		json
// @Success		201	{object}	UserResponse
// @Failure		400	{object}	httpError
// @Param			user	body	UserEditable	true	"Account"
// @Router			/v1/users [post]
func (co Controller) CreateUser(c *gin.Context) {
	var editable UserEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	user, err := co.store.AddUser(editable.model())
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, UserResponse{Data: newUser(user)})
}

// @Summary		Delete account
// @Description	The reserved admin account cannot be deleted. Any other account can, including the one currently logged in.
// @Tags			Users
// @Success		204
// @Failure		403	{object}	httpError
// @Param			id	path	string	true	"ID of the account"
// @Router			/v1/users/{id} [delete]
func (co Controller) DeleteUser(c *gin.Context) {
	err := co.store.RemoveUser(c.Param("id"))
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
