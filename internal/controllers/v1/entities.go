package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/financa-pro/backend/internal/httputil"
	"github.com/financa-pro/backend/internal/models"
)

func (co Controller) RegisterEntityRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetEntities)
		r.POST("", co.CreateEntity)
	}
	{
		r.OPTIONS("/:id", httputil.OptionsDelete)
		r.DELETE("/:id", co.DeleteEntity)
	}
}

// EntityEditable are the fields callers set on a contact.
type EntityEditable struct {
	Name     string            `json:"name" example:"Mercado Central"`
	Type     models.EntityType `json:"type" example:"Empresa"`
	Document string            `json:"document,omitempty"`
}

func (editable EntityEditable) model() models.Entity {
	return models.Entity{
		Name:     editable.Name,
		Type:     editable.Type,
		Document: editable.Document,
	}
}

type EntityResponse struct {
	Data models.Entity `json:"data"`
}

type EntityListResponse struct {
	Data []models.Entity `json:"data"`
}

// @Summary		List contacts
// @Tags			Entities
// @Produce		json
// @Success		200	{object}	EntityListResponse
// @Router			/v1/entities [get]
func (co Controller) GetEntities(c *gin.Context) {
	c.JSON(http.StatusOK, EntityListResponse{Data: co.store.Snapshot().Entities})
}

// @Summary		Create contact
// @Tags			Entities
// @Accept			json
// @Produce		json
// @Success		201	{object}	EntityResponse
// @Failure		400	{object}	httpError
// @Param			entity	body	EntityEditable	true	"Contact"
// @Router			/v1/entities [post]
func (co Controller) CreateEntity(c *gin.Context) {
	var editable EntityEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	entity, err := co.store.AddEntity(editable.model())
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, EntityResponse{Data: entity})
}

// @Summary		Delete contact
// @Tags			Entities
// @Success		204
// @Param			id	path	string	true	"ID of the contact"
// @Router			/v1/entities/{id} [delete]
func (co Controller) DeleteEntity(c *gin.Context) {
	if err := co.store.RemoveEntity(c.Param("id")); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
