package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/financa-pro/backend/internal/httputil"
	"github.com/financa-pro/backend/internal/models"
	"github.com/financa-pro/backend/internal/report"
)

func (co Controller) RegisterCardRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetCards)
		r.POST("", co.CreateCard)
	}
	{
		r.OPTIONS("/:id", httputil.OptionsDelete)
		r.DELETE("/:id", co.DeleteCard)
	}
}

// CardEditable are the fields callers set on a card.
type CardEditable struct {
	MemberID   string          `json:"memberId"`
	Type       models.CardType `json:"type" example:"Crédito"`
	Name       string          `json:"name" example:"Nubank Black"`
	LastDigits string          `json:"lastDigits" example:"4242"`
	Limit      decimal.Decimal `json:"limit" example:"1000"`
	ClosingDay int             `json:"closingDay" example:"1"`
	DueDay     int             `json:"dueDay" example:"10"`
	Color      string          `json:"color" example:"#4F46E5"`
}

func (editable CardEditable) model() models.Card {
	return models.Card{
		MemberID:   editable.MemberID,
		Type:       editable.Type,
		Name:       editable.Name,
		LastDigits: editable.LastDigits,
		Limit:      editable.Limit,
		ClosingDay: editable.ClosingDay,
		DueDay:     editable.DueDay,
		Color:      editable.Color,
	}
}

// Card is the API representation of a card, enriched with its usage.
type Card struct {
	models.Card
	Usage report.CardUsage `json:"usage"`
}

type CardResponse struct {
	Data Card `json:"data"`
}

type CardListResponse struct {
	Data []Card `json:"data"`
}

// @Summary		List cards
// @Description	Returns all cards with their usage block. Usage is the all-time linked expense total, the alert flags trip above 80% and 90% of the limit.
// @Tags			Cards
// @Produce		json
// @Success		200	{object}	CardListResponse
// @Router			/v1/cards [get]
func (co Controller) GetCards(c *gin.Context) {
	snapshot := co.store.Snapshot()

	data := make([]Card, 0, len(snapshot.Cards))
	for _, card := range snapshot.Cards {
		data = append(data, Card{Card: card, Usage: report.UsageOfCard(snapshot, card)})
	}

	c.JSON(http.StatusOK, CardListResponse{Data: data})
}

// @Summary		Create card
// @Tags			Cards
// @Accept			json
// @Produce		json
// @Success		201	{object}	CardResponse
// @Failure		400	{object}	httpError
// @Param			card	body	CardEditable	true	"Card"
// @Router			/v1/cards [post]
func (co Controller) CreateCard(c *gin.Context) {
	var editable CardEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	card, err := co.store.AddCard(editable.model())
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, CardResponse{Data: Card{Card: card, Usage: report.UsageOfCard(co.store.Snapshot(), card)}})
}

// @Summary		Delete card
// @Tags			Cards
// @Success		204
// @Param			id	path	string	true	"ID of the card"
// @Router			/v1/cards/{id} [delete]
func (co Controller) DeleteCard(c *gin.Context) {
	if err := co.store.RemoveCard(c.Param("id")); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
