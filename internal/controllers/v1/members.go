package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/financa-pro/backend/internal/httputil"
	"github.com/financa-pro/backend/internal/models"
)

func (co Controller) RegisterMemberRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetMembers)
		r.POST("", co.CreateMember)
	}
	{
		r.OPTIONS("/:id", httputil.OptionsDelete)
		r.DELETE("/:id", co.DeleteMember)
	}
}

// MemberEditable are the fields callers set on a member.
type MemberEditable struct {
	Name   string          `json:"name" example:"João"`
	Avatar string          `json:"avatar" example:"https://picsum.photos/seed/1/200"`
	Income decimal.Decimal `json:"income" example:"5000"`
}

func (editable MemberEditable) model() models.Member {
	return models.Member{
		Name:   editable.Name,
		Avatar: editable.Avatar,
		Income: editable.Income,
	}
}

type MemberResponse struct {
	Data models.Member `json:"data"`
}

type MemberListResponse struct {
	Data []models.Member `json:"data"`
}

// @Summary		List members
// @Tags			Members
// @Produce		json
// @Success		200	{object}	MemberListResponse
// @Router			/v1/members [get]
func (co Controller) GetMembers(c *gin.Context) {
	c.JSON(http.StatusOK, MemberListResponse{Data: co.store.Snapshot().Members})
}

// @Summary		Create member
// @Tags			Members
// @Accept			json
// @Produce		json
// @Success		201	{object}	MemberResponse
// @Failure		400	{object}	httpError
// @Param			member	body	MemberEditable	true	"Member"
// @Router			/v1/members [post]
func (co Controller) CreateMember(c *gin.Context) {
	var editable MemberEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	member, err := co.store.AddMember(editable.model())
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, MemberResponse{Data: member})
}

// @Summary		Delete member
// @Description	Deletes a member. Transactions and cards referencing the member keep their reference, deletion never cascades.
// @Tags			Members
// @Success		204
// @Param			id	path	string	true	"ID of the member"
// @Router			/v1/members/{id} [delete]
func (co Controller) DeleteMember(c *gin.Context) {
	if err := co.store.RemoveMember(c.Param("id")); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
