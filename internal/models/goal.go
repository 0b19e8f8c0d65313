package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

// GoalType is the kind of a savings goal.
type GoalType string

const (
	GoalEmergency  GoalType = "Reserva de Emergência"
	GoalObjective  GoalType = "Objetivo/Meta"
	GoalRetirement GoalType = "Aposentadoria"
)

// Valid reports whether the goal type is one of the known values.
func (t GoalType) Valid() bool {
	switch t {
	case GoalEmergency, GoalObjective, GoalRetirement:
		return true
	}

	return false
}

// InvestmentGoal is a savings target.
//
// CurrentTotal is bookkept by the ledger: it is the running sum of the
// investment transactions credited to the goal, maintained incrementally
// rather than recomputed.
type InvestmentGoal struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"name"`
	Type                 GoalType        `json:"type"`
	TargetTotal          decimal.Decimal `json:"targetTotal"`
	CurrentTotal         decimal.Decimal `json:"currentTotal"`
	MonthlyTargetPercent decimal.Decimal `json:"monthlyTargetPercent,omitempty"`
	Color                string          `json:"color"`
}

var (
	ErrGoalNameMissing       = errors.New("goals must have a name")
	ErrGoalTypeInvalid       = errors.New("the specified goal type is invalid")
	ErrGoalTargetNotPositive = errors.New("goal targets must be larger than zero")
	ErrGoalPercentOutOfRange = errors.New("the monthly target percent must be between 0 and 100")
)

// Validate checks the goal as submitted by a caller.
func (g InvestmentGoal) Validate() error {
	if g.Name == "" {
		return ErrGoalNameMissing
	}

	if !g.Type.Valid() {
		return ErrGoalTypeInvalid
	}

	if !g.TargetTotal.IsPositive() {
		return ErrGoalTargetNotPositive
	}

	if g.MonthlyTargetPercent.IsNegative() || g.MonthlyTargetPercent.GreaterThan(decimal.NewFromInt(100)) {
		return ErrGoalPercentOutOfRange
	}

	return nil
}
