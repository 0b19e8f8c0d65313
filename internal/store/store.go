// Package store owns the application state.
//
// A Store holds the snapshot collections, applies ledger commands and
// mirrors the full snapshot to its Persister after every change. It is
// the only mutator in the system.
package store

import (
	"errors"
	"slices"
	"sync"

	"github.com/financa-pro/backend/internal/ledger"
	"github.com/financa-pro/backend/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Persister is the persistence port for snapshots.
//
// Save overwrites the full snapshot, Load reads it back (found reports
// whether one exists) and Clear wipes it.
type Persister interface {
	Load() (snapshot models.Snapshot, found bool, err error)
	Save(models.Snapshot) error
	Clear() error
}

var (
	ErrLoginFailed     = errors.New("invalid username or password")
	ErrReservedAccount = errors.New("the reserved admin account cannot be deleted")
	ErrNotLoggedIn     = errors.New("no user is logged in")
	ErrThemeInvalid    = errors.New("the specified theme is invalid")
)

// Store is the state manager.
type Store struct {
	mu        sync.RWMutex
	state     models.Snapshot
	persister Persister

	// Session state, never persisted.
	authenticated bool
	currentUser   models.UserAccount
}

// New returns a store backed by the given persister. A missing snapshot
// seeds the default members and the reserved admin account.
func New(persister Persister) (*Store, error) {
	snapshot, found, err := persister.Load()
	if err != nil {
		return nil, err
	}

	if !found {
		snapshot = models.DefaultSnapshot()
		log.Info().Msg("no snapshot found, seeding defaults")
	}

	// Snapshots written before accounts existed have no users.
	if len(snapshot.Users) == 0 {
		snapshot.Users = models.DefaultUsers()
	}

	return &Store{state: snapshot, persister: persister}, nil
}

// persist mirrors the current state. Callers hold the write lock.
func (s *Store) persist() error {
	return s.persister.Save(s.state)
}

// Snapshot returns a copy of the current state for queries.
func (s *Store) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := s.state
	state.Members = slices.Clone(state.Members)
	state.Cards = slices.Clone(state.Cards)
	state.Entities = slices.Clone(state.Entities)
	state.Transactions = slices.Clone(state.Transactions)
	state.Goals = slices.Clone(state.Goals)
	state.Users = slices.Clone(state.Users)

	return state
}

// AddMember adds a member, assigning an id when none is set.
func (s *Store) AddMember(member models.Member) (models.Member, error) {
	if err := member.Validate(); err != nil {
		return models.Member{}, err
	}

	if member.ID == "" {
		member.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Members = append(slices.Clone(s.state.Members), member)
	return member, s.persist()
}

// RemoveMember removes a member. Transactions and cards referencing the
// member keep their dangling memberId, deletion never cascades.
// Unknown ids are a no-op.
func (s *Store) RemoveMember(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Members = remove(s.state.Members, func(m models.Member) bool { return m.ID == id })
	return s.persist()
}

// AddCard adds a card, assigning an id when none is set.
func (s *Store) AddCard(card models.Card) (models.Card, error) {
	if err := card.Validate(); err != nil {
		return models.Card{}, err
	}

	if card.ID == "" {
		card.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Cards = append(slices.Clone(s.state.Cards), card)
	return card, s.persist()
}

// RemoveCard removes a card. Unknown ids are a no-op.
func (s *Store) RemoveCard(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Cards = remove(s.state.Cards, func(c models.Card) bool { return c.ID == id })
	return s.persist()
}

// AddEntity adds a contact, assigning an id when none is set.
func (s *Store) AddEntity(entity models.Entity) (models.Entity, error) {
	if err := entity.Validate(); err != nil {
		return models.Entity{}, err
	}

	if entity.ID == "" {
		entity.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Entities = append(slices.Clone(s.state.Entities), entity)
	return entity, s.persist()
}

// RemoveEntity removes a contact. Unknown ids are a no-op.
func (s *Store) RemoveEntity(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Entities = remove(s.state.Entities, func(e models.Entity) bool { return e.ID == id })
	return s.persist()
}

// AddGoal adds a goal, assigning an id when none is set.
func (s *Store) AddGoal(goal models.InvestmentGoal) (models.InvestmentGoal, error) {
	if err := goal.Validate(); err != nil {
		return models.InvestmentGoal{}, err
	}

	if goal.ID == "" {
		goal.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Goals = append(slices.Clone(s.state.Goals), goal)
	return goal, s.persist()
}

// RemoveGoal removes a goal. Transactions referencing it keep their
// goalId. Unknown ids are a no-op.
func (s *Store) RemoveGoal(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Goals = remove(s.state.Goals, func(g models.InvestmentGoal) bool { return g.ID == id })
	return s.persist()
}

// AddTransaction runs the submitted transaction through the ledger and
// returns the records that were produced (the installment family for
// credit expenses bought in installments, a single record otherwise).
func (s *Store) AddTransaction(tx models.Transaction) ([]models.Transaction, error) {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.state.Transactions)
	transactions, goals, err := ledger.Add(s.state.Transactions, s.state.Goals, tx)
	if err != nil {
		return nil, err
	}

	s.state.Transactions = transactions
	s.state.Goals = goals

	return transactions[before:], s.persist()
}

// RemoveTransaction removes a single record, reversing its goal
// contribution if it has one. Unknown ids are a no-op.
func (s *Store) RemoveTransaction(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Transactions, s.state.Goals = ledger.Remove(s.state.Transactions, s.state.Goals, id)
	return s.persist()
}

// UpdateGoalProgress manually adjusts a goal's running total by delta,
// outside the transaction flow.
func (s *Store) UpdateGoalProgress(id string, delta decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Goals = ledger.UpdateGoalProgress(s.state.Goals, id, delta)
	return s.persist()
}

// SetTheme stores the theme preference.
func (s *Store) SetTheme(theme models.Theme) error {
	if !theme.Valid() {
		return ErrThemeInvalid
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Theme = theme
	return s.persist()
}

// ReplaceAll overwrites every collection with the given snapshot and
// persists it. Used by the backup restore, which validates first.
func (s *Store) ReplaceAll(snapshot models.Snapshot) error {
	if len(snapshot.Users) == 0 {
		snapshot.Users = models.DefaultUsers()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = snapshot
	return s.persist()
}

// Wipe clears the persisted snapshot and resets the state to the
// defaults. The session is dropped as well.
func (s *Store) Wipe() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persister.Clear(); err != nil {
		return err
	}

	s.state = models.DefaultSnapshot()
	s.authenticated = false
	s.currentUser = models.UserAccount{}

	return nil
}

func remove[T any](collection []T, match func(T) bool) []T {
	result := make([]T, 0, len(collection))
	for _, item := range collection {
		if !match(item) {
			result = append(result, item)
		}
	}

	return result
}
