package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

// CardType is the kind of a payment card.
type CardType string

const (
	CardCredit CardType = "Crédito"
	CardDebit  CardType = "Débito"
)

// Valid reports whether the card type is one of the known values.
func (t CardType) Valid() bool {
	return t == CardCredit || t == CardDebit
}

// Card is a payment card held by a member.
//
// Limit, ClosingDay and DueDay are only meaningful for credit cards,
// but debit cards may carry them anyway.
type Card struct {
	ID         string          `json:"id"`
	MemberID   string          `json:"memberId"`
	Type       CardType        `json:"type"`
	Name       string          `json:"name"`
	LastDigits string          `json:"lastDigits"`
	Limit      decimal.Decimal `json:"limit"`
	ClosingDay int             `json:"closingDay"`
	DueDay     int             `json:"dueDay"`
	Color      string          `json:"color"`
}

var (
	ErrCardNameMissing   = errors.New("cards must have a name")
	ErrCardMemberMissing = errors.New("cards must reference a member")
	ErrCardTypeInvalid   = errors.New("the specified card type is invalid")
	ErrCardLimitNegative = errors.New("card limits must not be negative")
	ErrCardDayOutOfRange = errors.New("closing and due days must be between 1 and 31")
)

// Validate checks the card as submitted by a caller.
func (c Card) Validate() error {
	if c.Name == "" {
		return ErrCardNameMissing
	}

	if c.MemberID == "" {
		return ErrCardMemberMissing
	}

	if !c.Type.Valid() {
		return ErrCardTypeInvalid
	}

	if c.Limit.IsNegative() {
		return ErrCardLimitNegative
	}

	if c.Type == CardCredit {
		if c.ClosingDay < 1 || c.ClosingDay > 31 || c.DueDay < 1 || c.DueDay > 31 {
			return ErrCardDayOutOfRange
		}
	}

	return nil
}
