// Package report computes the derived metrics of the application.
//
// Every function is a pure, read-only query over a snapshot. Nothing in
// this package mutates state or enforces limits: card limits, goal
// targets and incomes are advisory numbers for display.
package report

import (
	"github.com/financa-pro/backend/internal/models"
	"github.com/financa-pro/backend/internal/types"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Health labels, strictly-greater brackets: a score of exactly 40 is
// "Saudável", not "Excelente".
const (
	HealthExcellent = "Excelente"
	HealthHealthy   = "Saudável"
	HealthAlert     = "Alerta"
	HealthCritical  = "Crítico"
)

// MonthlyIncome is the recurring income baseline of all members plus the
// income transactions of the month.
func MonthlyIncome(s models.Snapshot, month types.Month) decimal.Decimal {
	income := HouseholdIncome(s)

	for _, tx := range s.Transactions {
		if tx.Type == models.TransactionIncome && tx.Date.In(month) {
			income = income.Add(tx.Amount)
		}
	}

	return income
}

// HouseholdIncome is the sum of the members' recurring incomes.
func HouseholdIncome(s models.Snapshot) decimal.Decimal {
	income := decimal.Zero
	for _, member := range s.Members {
		income = income.Add(member.Income)
	}

	return income
}

// MonthlyExpenses sums the expense transactions of the month.
func MonthlyExpenses(s models.Snapshot, month types.Month) decimal.Decimal {
	return monthlyTotal(s, month, models.TransactionExpense)
}

// MonthlyInvestments sums the investment transactions of the month.
func MonthlyInvestments(s models.Snapshot, month types.Month) decimal.Decimal {
	return monthlyTotal(s, month, models.TransactionInvestment)
}

func monthlyTotal(s models.Snapshot, month types.Month, kind models.TransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range s.Transactions {
		if tx.Type == kind && tx.Date.In(month) {
			total = total.Add(tx.Amount)
		}
	}

	return total
}

// FreeBalance is income minus expenses minus investments. Can be negative.
func FreeBalance(s models.Snapshot, month types.Month) decimal.Decimal {
	return MonthlyIncome(s, month).
		Sub(MonthlyExpenses(s, month)).
		Sub(MonthlyInvestments(s, month))
}

// SpendingRatio is the share of the monthly income spent on expenses,
// in percent. Zero income yields a ratio of zero.
func SpendingRatio(s models.Snapshot, month types.Month) decimal.Decimal {
	income := MonthlyIncome(s, month)
	if !income.IsPositive() {
		return decimal.Zero
	}

	return MonthlyExpenses(s, month).Div(income).Mul(hundred)
}

// HealthScore maps a spending ratio to a 0-100 score. It is monotonically
// non-increasing in the ratio.
func HealthScore(spendingRatio decimal.Decimal) decimal.Decimal {
	score := hundred.Sub(spendingRatio)
	if score.IsNegative() {
		return decimal.Zero
	}

	if score.GreaterThan(hundred) {
		return hundred
	}

	return score
}

// HealthLabel buckets a health score.
func HealthLabel(score decimal.Decimal) string {
	switch {
	case score.GreaterThan(decimal.NewFromInt(40)):
		return HealthExcellent
	case score.GreaterThan(decimal.NewFromInt(20)):
		return HealthHealthy
	case score.IsPositive():
		return HealthAlert
	default:
		return HealthCritical
	}
}

// Overview is the dashboard summary for a month.
type Overview struct {
	Month         types.Month     `json:"month"`
	Income        decimal.Decimal `json:"income"`
	Expenses      decimal.Decimal `json:"expenses"`
	Investments   decimal.Decimal `json:"investments"`
	FreeBalance   decimal.Decimal `json:"freeBalance"`
	SpendingRatio decimal.Decimal `json:"spendingRatio"`
	HealthScore   decimal.Decimal `json:"healthScore"`
	HealthLabel   string          `json:"healthLabel"`
	GoalProgress  decimal.Decimal `json:"goalProgress"`
}

// MonthlyOverview computes the dashboard summary for a month.
func MonthlyOverview(s models.Snapshot, month types.Month) Overview {
	ratio := SpendingRatio(s, month)
	score := HealthScore(ratio)

	return Overview{
		Month:         month,
		Income:        MonthlyIncome(s, month),
		Expenses:      MonthlyExpenses(s, month),
		Investments:   MonthlyInvestments(s, month),
		FreeBalance:   FreeBalance(s, month),
		SpendingRatio: ratio,
		HealthScore:   score,
		HealthLabel:   HealthLabel(score),
		GoalProgress:  HouseholdGoalProgress(s),
	}
}

// CategoryTotal is the expense total of one category.
type CategoryTotal struct {
	Category models.Category `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// CategoryBreakdown sums the expenses of the month per category, in the
// order of the category enumeration. Categories with a zero total are
// left out.
func CategoryBreakdown(s models.Snapshot, month types.Month) []CategoryTotal {
	totals := make(map[models.Category]decimal.Decimal)
	for _, tx := range s.Transactions {
		if tx.Type == models.TransactionExpense && tx.Date.In(month) {
			totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
		}
	}

	breakdown := make([]CategoryTotal, 0, len(totals))
	for _, category := range models.Categories() {
		total, ok := totals[category]
		if !ok || total.IsZero() {
			continue
		}

		breakdown = append(breakdown, CategoryTotal{Category: category, Total: total})
	}

	return breakdown
}

// MonthSummary is one entry of a trailing series.
type MonthSummary struct {
	Month   types.Month     `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// Series returns the income and expense totals for the trailing months
// number of months ending at (and including) the given month, ordered
// oldest to newest. Member incomes are not part of the series, it
// compares recorded transactions only.
func Series(s models.Snapshot, end types.Month, months int) []MonthSummary {
	series := make([]MonthSummary, 0, months)
	for i := months - 1; i >= 0; i-- {
		month := end.AddDate(0, -i)
		series = append(series, MonthSummary{
			Month:   month,
			Income:  monthlyTotal(s, month, models.TransactionIncome),
			Expense: monthlyTotal(s, month, models.TransactionExpense),
		})
	}

	return series
}

// CardUsage is the outstanding spend linked to a card.
//
// Usage is all-time, not period-scoped: it represents the total linked
// spend and does not subtract payments.
type CardUsage struct {
	Used           decimal.Decimal `json:"used"`
	AvailableLimit decimal.Decimal `json:"availableLimit"`
	UsagePercent   decimal.Decimal `json:"usagePercent"`
	Warning        bool            `json:"warning"`  // usage above 80% of the limit
	Critical       bool            `json:"critical"` // usage above 90%, limit nearly exhausted
}

// UsageOfCard computes the usage block for one card.
func UsageOfCard(s models.Snapshot, card models.Card) CardUsage {
	used := decimal.Zero
	for _, tx := range s.Transactions {
		if tx.CardID == card.ID && tx.Type == models.TransactionExpense {
			used = used.Add(tx.Amount)
		}
	}

	available := card.Limit.Sub(used)
	if available.IsNegative() {
		available = decimal.Zero
	}

	percent := decimal.Zero
	if card.Limit.IsPositive() {
		percent = used.Div(card.Limit).Mul(hundred)
	}

	return CardUsage{
		Used:           used,
		AvailableLimit: available,
		UsagePercent:   percent,
		Warning:        percent.GreaterThan(decimal.NewFromInt(80)),
		Critical:       percent.GreaterThan(decimal.NewFromInt(90)),
	}
}

// GoalProgress is the pacing block for one goal.
type GoalProgress struct {
	TotalProgress      decimal.Decimal `json:"totalProgress"`
	MonthlyTarget      decimal.Decimal `json:"monthlyTarget"`
	MonthlyContributed decimal.Decimal `json:"monthlyContributed"`
	MonthlyProgress    decimal.Decimal `json:"monthlyProgress"`
}

// ProgressOfGoal computes the pacing block for one goal in a month.
//
// The monthly target is the configured percent of the household income
// baseline. Without a target the monthly progress defaults to 100%, the
// goal counts as on track.
func ProgressOfGoal(s models.Snapshot, goal models.InvestmentGoal, month types.Month) GoalProgress {
	total := decimal.Zero
	if goal.TargetTotal.IsPositive() {
		total = goal.CurrentTotal.Div(goal.TargetTotal).Mul(hundred)
	}

	target := HouseholdIncome(s).Mul(goal.MonthlyTargetPercent).Div(hundred)

	contributed := decimal.Zero
	for _, tx := range s.Transactions {
		if tx.Type == models.TransactionInvestment && tx.GoalID == goal.ID && tx.Date.In(month) {
			contributed = contributed.Add(tx.Amount)
		}
	}

	progress := hundred
	if target.IsPositive() {
		progress = contributed.Div(target).Mul(hundred)
	}

	return GoalProgress{
		TotalProgress:      total,
		MonthlyTarget:      target,
		MonthlyContributed: contributed,
		MonthlyProgress:    progress,
	}
}

// HouseholdGoalProgress is the overall goal completion across all goals,
// in percent, guarded for the zero-target case.
func HouseholdGoalProgress(s models.Snapshot) decimal.Decimal {
	target := decimal.Zero
	current := decimal.Zero
	for _, goal := range s.Goals {
		target = target.Add(goal.TargetTotal)
		current = current.Add(goal.CurrentTotal)
	}

	if !target.IsPositive() {
		return decimal.Zero
	}

	return current.Div(target).Mul(hundred)
}
