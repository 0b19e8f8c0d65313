package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"

	"github.com/financa-pro/backend/internal/httputil"
	"github.com/financa-pro/backend/internal/models"
	"github.com/financa-pro/backend/internal/notify"
	"github.com/financa-pro/backend/internal/types"
)

func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetTransactions)
		r.POST("", co.CreateTransaction)
	}
	{
		r.OPTIONS("/:id", httputil.OptionsGetDelete)
		r.GET("/:id", co.GetTransaction)
		r.DELETE("/:id", co.DeleteTransaction)
		r.OPTIONS("/:id/share", httputil.OptionsGet)
		r.GET("/:id/share", co.ShareTransaction)
	}
}

// TransactionEditable are the fields callers set on a transaction.
type TransactionEditable struct {
	MemberID      string                 `json:"memberId"`
	EntityID      string                 `json:"entityId,omitempty"`
	CardID        string                 `json:"cardId,omitempty"`
	Type          models.TransactionType `json:"type" example:"DESPESA"`
	PaymentMethod models.PaymentMethod   `json:"paymentMethod" example:"CREDITO"`
	Category      models.Category        `json:"category" example:"Alimentação"`
	Description   string                 `json:"description" example:"Mercado"`
	Amount        decimal.Decimal        `json:"amount" example:"120.50"`
	Date          types.Date             `json:"date" example:"2026-08-15"`
	Installments  int                    `json:"installments,omitempty" example:"3"`
	GoalID        string                 `json:"goalId,omitempty"`
}

func (editable TransactionEditable) model() models.Transaction {
	tx := models.Transaction{
		MemberID:      editable.MemberID,
		EntityID:      editable.EntityID,
		Type:          editable.Type,
		PaymentMethod: editable.PaymentMethod,
		Category:      editable.Category,
		Description:   editable.Description,
		Amount:        editable.Amount,
		Date:          editable.Date,
		GoalID:        editable.GoalID,
	}

	// cardId is only meaningful for card payments, goalId only for
	// investments, installments only for credit purchases.
	if editable.PaymentMethod.UsesCard() {
		tx.CardID = editable.CardID
	}

	if editable.Type != models.TransactionInvestment {
		tx.GoalID = ""
	}

	if editable.PaymentMethod == models.PaymentCredit {
		tx.Installments = editable.Installments
	}

	// Investments always book into the investment category.
	if editable.Type == models.TransactionInvestment {
		tx.Category = models.CategoryInvestment
	}

	return tx
}

type TransactionQueryFilter struct {
	Month       string `form:"month"`       // Calendar month in YYYY-MM format
	MemberID    string `form:"member"`      // Filter by responsible member
	Type        string `form:"type"`        // Filter by transaction type
	Category    string `form:"category"`    // Filter by category
	Description string `form:"description"` // Glob pattern matched against the description
}

type TransactionResponse struct {
	Data models.Transaction `json:"data"`
}

type TransactionListResponse struct {
	Data []models.Transaction `json:"data"`
}

// TransactionCreateResponse carries every record the submission
// produced: the installment family for credit expenses bought in
// installments, a single record otherwise.
type TransactionCreateResponse struct {
	Data []models.Transaction `json:"data"`
}

// @Summary		List transactions
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	httpError
// @Param			month		query	string	false	"Calendar month in YYYY-MM format"
// @Param			member		query	string	false	"Filter by responsible member"
// @Param			type		query	string	false	"Filter by transaction type"
// @Param			category	query	string	false	"Filter by category"
// @Param			description	query	string	false	"Glob pattern matched against the description"
// @Router			/v1/transactions [get]
func (co Controller) GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	var month types.Month
	if filter.Month != "" {
		parsed, err := types.ParseMonth(filter.Month)
		if err != nil {
			c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
			return
		}
		month = parsed
	}

	data := []models.Transaction{}
	for _, tx := range co.store.Snapshot().Transactions {
		if !month.IsZero() && !tx.Date.In(month) {
			continue
		}

		if filter.MemberID != "" && tx.MemberID != filter.MemberID {
			continue
		}

		if filter.Type != "" && string(tx.Type) != filter.Type {
			continue
		}

		if filter.Category != "" && string(tx.Category) != filter.Category {
			continue
		}

		if filter.Description != "" && !glob.Glob(filter.Description, tx.Description) {
			continue
		}

		data = append(data, tx)
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: data})
}

// @Summary		Create transaction
// @Description	Runs the submitted transaction through the ledger. A credit expense with more than one installment is expanded into its installment family; an investment linked to a goal credits the goal with the full submitted amount.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201	{object}	TransactionCreateResponse
// @Failure		400	{object}	httpError
// @Param			transaction	body	TransactionEditable	true	"Transaction"
// @Router			/v1/transactions [post]
func (co Controller) CreateTransaction(c *gin.Context) {
	var editable TransactionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	records, err := co.store.AddTransaction(editable.model())
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, TransactionCreateResponse{Data: records})
}

// @Summary		Get transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		404	{object}	httpError
// @Param			id	path	string	true	"ID of the transaction"
// @Router			/v1/transactions/{id} [get]
func (co Controller) GetTransaction(c *gin.Context) {
	tx, ok := co.store.Snapshot().Transaction(c.Param("id"))
	if !ok {
		c.JSON(status(errResourceNotFound), httpError{Error: errResourceNotFound.Error()})
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: tx})
}

// @Summary		Delete transaction
// @Description	Removes the single record with this id. Installment siblings stay, only the removed record's goal contribution is reversed. Unknown ids are a no-op.
// @Tags			Transactions
// @Success		204
// @Param			id	path	string	true	"ID of the transaction"
// @Router			/v1/transactions/{id} [delete]
func (co Controller) DeleteTransaction(c *gin.Context) {
	if err := co.store.RemoveTransaction(c.Param("id")); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

type ShareResponse struct {
	Message string   `json:"message"`
	Links   []string `json:"links"`
}

// @Summary		Share transaction
// @Description	Returns the pre-filled family notification for a stored transaction and the messaging deep links for the configured numbers
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	ShareResponse
// @Failure		404	{object}	httpError
// @Param			id	path	string	true	"ID of the transaction"
// @Router			/v1/transactions/{id}/share [get]
func (co Controller) ShareTransaction(c *gin.Context) {
	snapshot := co.store.Snapshot()

	tx, ok := snapshot.Transaction(c.Param("id"))
	if !ok {
		c.JSON(status(errResourceNotFound), httpError{Error: errResourceNotFound.Error()})
		return
	}

	text := notify.Message(snapshot, tx)
	c.JSON(http.StatusOK, ShareResponse{
		Message: text,
		Links:   notify.Links(co.notifyNumbers, text),
	})
}
