package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Member is a household participant with a recurring income baseline.
type Member struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Avatar string          `json:"avatar"`
	Income decimal.Decimal `json:"income"`
}

var (
	ErrMemberNameMissing    = errors.New("members must have a name")
	ErrMemberIncomeNegative = errors.New("member income must not be negative")
)

// Validate checks the member as submitted by a caller.
func (m Member) Validate() error {
	if m.Name == "" {
		return ErrMemberNameMissing
	}

	if m.Income.IsNegative() {
		return ErrMemberIncomeNegative
	}

	return nil
}
