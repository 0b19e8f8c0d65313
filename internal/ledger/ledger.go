// Package ledger implements the transaction ledger: installment
// expansion, goal-progress bookkeeping and removal reversal.
//
// All functions are pure. They never mutate their inputs and return the
// new collections, leaving persistence to the caller.
package ledger

import (
	"fmt"
	"slices"

	"github.com/financa-pro/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Add appends the records produced for a submitted transaction.
//
// An expense bought in N > 1 installments becomes a family of N sibling
// records sharing the submitted record's id as parentId: the first
// sibling is the submitted record itself, carrying installment 1, the
// others derive their ids as "<parentId>-<n>" and advance one calendar
// month per step. Each sibling carries amount/N without remainder
// correction, so the family sum can be off from the submitted amount in
// the last decimal places.
//
// An investment referencing a goal credits the goal's running total
// with the full amount as submitted, before any expansion.
func Add(transactions []models.Transaction, goals []models.InvestmentGoal, tx models.Transaction) ([]models.Transaction, []models.InvestmentGoal, error) {
	if err := tx.Validate(); err != nil {
		return transactions, goals, err
	}

	submitted := tx.Amount

	records := []models.Transaction{tx}
	if tx.Installments > 1 && tx.Type == models.TransactionExpense {
		records = expand(tx)
	}

	if tx.Type == models.TransactionInvestment && tx.GoalID != "" {
		goals = UpdateGoalProgress(goals, tx.GoalID, submitted)
	}

	result := make([]models.Transaction, 0, len(transactions)+len(records))
	result = append(result, transactions...)
	result = append(result, records...)

	return result, goals, nil
}

// expand splits an expense into its installment family.
func expand(tx models.Transaction) []models.Transaction {
	count := tx.Installments
	monthly := tx.Amount.Div(decimal.NewFromInt(int64(count)))

	first := tx
	first.Amount = monthly
	first.CurrentInstallment = 1
	first.ParentID = tx.ID

	records := make([]models.Transaction, 0, count)
	records = append(records, first)

	for i := 2; i <= count; i++ {
		sibling := first
		sibling.ID = fmt.Sprintf("%s-%d", tx.ID, i)
		sibling.Date = tx.Date.AddMonths(i - 1)
		sibling.CurrentInstallment = i
		records = append(records, sibling)
	}

	return records
}

// Remove deletes the single record with the given id.
//
// Removal never cascades to installment siblings. If the removed record
// is an investment linked to a goal, only that record's stored amount is
// reversed out of the goal's running total. Unknown ids are a no-op.
func Remove(transactions []models.Transaction, goals []models.InvestmentGoal, id string) ([]models.Transaction, []models.InvestmentGoal) {
	index := slices.IndexFunc(transactions, func(tx models.Transaction) bool {
		return tx.ID == id
	})
	if index < 0 {
		return transactions, goals
	}

	removed := transactions[index]
	if removed.Type == models.TransactionInvestment && removed.GoalID != "" {
		goals = UpdateGoalProgress(goals, removed.GoalID, removed.Amount.Neg())
	}

	result := make([]models.Transaction, 0, len(transactions)-1)
	result = append(result, transactions[:index]...)
	result = append(result, transactions[index+1:]...)

	return result, goals
}

// UpdateGoalProgress adds delta to a goal's running total. It is used by
// Add and Remove and exposed for direct manual adjustments outside the
// transaction flow. Unknown ids are a no-op.
func UpdateGoalProgress(goals []models.InvestmentGoal, id string, delta decimal.Decimal) []models.InvestmentGoal {
	result := make([]models.InvestmentGoal, len(goals))
	for i, goal := range goals {
		if goal.ID == id {
			goal.CurrentTotal = goal.CurrentTotal.Add(delta)
		}
		result[i] = goal
	}

	return result
}
