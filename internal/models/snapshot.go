package models

import "github.com/shopspring/decimal"

// Theme is the persisted UI theme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether the theme is one of the known values.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Snapshot is the aggregate root: everything the application persists.
// Session state (who is logged in) is deliberately not part of it.
type Snapshot struct {
	Members      []Member         `json:"members"`
	Cards        []Card           `json:"cards"`
	Entities     []Entity         `json:"entities"`
	Transactions []Transaction    `json:"transactions"`
	Goals        []InvestmentGoal `json:"goals"`
	Users        []UserAccount    `json:"users"`
	Theme        Theme            `json:"theme"`
}

// DefaultSnapshot returns the state a fresh installation starts with.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Members: []Member{
			{ID: "1", Name: "João", Avatar: "https://picsum.photos/seed/1/200", Income: decimal.NewFromInt(5000)},
			{ID: "2", Name: "Maria", Avatar: "https://picsum.photos/seed/2/200", Income: decimal.NewFromInt(4500)},
		},
		Cards:        []Card{},
		Entities:     []Entity{},
		Transactions: []Transaction{},
		Goals:        []InvestmentGoal{},
		Users:        DefaultUsers(),
		Theme:        ThemeDark,
	}
}

// DefaultUsers returns the reserved admin account. It is also used to
// backfill snapshots written before accounts existed.
func DefaultUsers() []UserAccount {
	return []UserAccount{
		{ID: ReservedAdminID, Username: "ADMIN", Name: "Administrador", Password: "123"},
	}
}

// Member returns the member with the given id.
func (s Snapshot) Member(id string) (Member, bool) {
	for _, member := range s.Members {
		if member.ID == id {
			return member, true
		}
	}

	return Member{}, false
}

// Card returns the card with the given id.
func (s Snapshot) Card(id string) (Card, bool) {
	for _, card := range s.Cards {
		if card.ID == id {
			return card, true
		}
	}

	return Card{}, false
}

// Entity returns the entity with the given id.
func (s Snapshot) Entity(id string) (Entity, bool) {
	for _, entity := range s.Entities {
		if entity.ID == id {
			return entity, true
		}
	}

	return Entity{}, false
}

// Transaction returns the transaction with the given id.
func (s Snapshot) Transaction(id string) (Transaction, bool) {
	for _, transaction := range s.Transactions {
		if transaction.ID == id {
			return transaction, true
		}
	}

	return Transaction{}, false
}

// Goal returns the goal with the given id.
func (s Snapshot) Goal(id string) (InvestmentGoal, bool) {
	for _, goal := range s.Goals {
		if goal.ID == id {
			return goal, true
		}
	}

	return InvestmentGoal{}, false
}

// User returns the account with the given id.
func (s Snapshot) User(id string) (UserAccount, bool) {
	for _, user := range s.Users {
		if user.ID == id {
			return user, true
		}
	}

	return UserAccount{}, false
}
