package models

import (
	"errors"

	"github.com/financa-pro/backend/internal/types"
	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a transaction.
type TransactionType string

const (
	TransactionIncome     TransactionType = "RECEITA"
	TransactionExpense    TransactionType = "DESPESA"
	TransactionInvestment TransactionType = "INVESTIMENTO"
)

// Valid reports whether the transaction type is one of the known values.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionIncome, TransactionExpense, TransactionInvestment:
		return true
	}

	return false
}

// PaymentMethod is the means of payment for a transaction.
type PaymentMethod string

const (
	PaymentCredit   PaymentMethod = "CREDITO"
	PaymentDebit    PaymentMethod = "DEBITO"
	PaymentCash     PaymentMethod = "DINHEIRO"
	PaymentPix      PaymentMethod = "PIX"
	PaymentTransfer PaymentMethod = "TRANSFERÊNCIA"
)

// Valid reports whether the payment method is one of the known values.
func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentCredit, PaymentDebit, PaymentCash, PaymentPix, PaymentTransfer:
		return true
	}

	return false
}

// UsesCard reports whether a cardId is meaningful for this payment method.
func (p PaymentMethod) UsesCard() bool {
	return p == PaymentCredit || p == PaymentDebit
}

// Category classifies a transaction. The enumeration is closed, the
// values are the labels stored in snapshots.
type Category string

const (
	CategoryFood           Category = "Alimentação"
	CategoryLeisure        Category = "Lazer"
	CategoryHousing        Category = "Moradia"
	CategoryTransport      Category = "Transporte"
	CategoryHealth         Category = "Saúde"
	CategoryEducation      Category = "Educação"
	CategoryInvestment     Category = "Investimento"
	CategoryTaxes          Category = "Impostos"
	CategoryFees           Category = "Taxas/Serviços"
	CategorySchoolSupplies Category = "Material Escolar"
	CategoryClothing       Category = "Vestuário"
	CategoryOther          Category = "Outros"
)

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryLeisure,
		CategoryHousing,
		CategoryTransport,
		CategoryHealth,
		CategoryEducation,
		CategoryInvestment,
		CategoryTaxes,
		CategoryFees,
		CategorySchoolSupplies,
		CategoryClothing,
		CategoryOther,
	}
}

// Valid reports whether the category is one of the known values.
func (c Category) Valid() bool {
	for _, category := range Categories() {
		if c == category {
			return true
		}
	}

	return false
}

// Transaction is a dated monetary event.
//
// MemberID, CardID, EntityID, GoalID and ParentID are weak references:
// deleting the referenced resource leaves them dangling on purpose.
type Transaction struct {
	ID                 string          `json:"id"`
	MemberID           string          `json:"memberId"`
	EntityID           string          `json:"entityId,omitempty"`
	CardID             string          `json:"cardId,omitempty"`
	Type               TransactionType `json:"type"`
	PaymentMethod      PaymentMethod   `json:"paymentMethod"`
	Category           Category        `json:"category"`
	Description        string          `json:"description"`
	Amount             decimal.Decimal `json:"amount"`
	Date               types.Date      `json:"date"`
	Installments       int             `json:"installments,omitempty"`
	CurrentInstallment int             `json:"currentInstallment,omitempty"`
	ParentID           string          `json:"parentId,omitempty"`
	GoalID             string          `json:"goalId,omitempty"`
}

var (
	ErrTransactionDescriptionMissing = errors.New("transactions must have a description")
	ErrTransactionAmountNotPositive  = errors.New("transaction amounts must be larger than zero")
	ErrTransactionMemberMissing      = errors.New("transactions must reference a member")
	ErrTransactionTypeInvalid        = errors.New("the specified transaction type is invalid")
	ErrPaymentMethodInvalid          = errors.New("the specified payment method is invalid")
	ErrCategoryInvalid               = errors.New("the specified category is invalid")
)

// Validate checks the transaction as submitted by a caller.
// Amounts are never checked against card limits, goal targets or member
// income, those comparisons are advisory and computed for display only.
func (t Transaction) Validate() error {
	if t.Description == "" {
		return ErrTransactionDescriptionMissing
	}

	if !t.Amount.IsPositive() {
		return ErrTransactionAmountNotPositive
	}

	if t.MemberID == "" {
		return ErrTransactionMemberMissing
	}

	if !t.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	if !t.PaymentMethod.Valid() {
		return ErrPaymentMethodInvalid
	}

	if !t.Category.Valid() {
		return ErrCategoryInvalid
	}

	return nil
}
