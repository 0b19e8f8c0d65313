package report

import "github.com/financa-pro/backend/internal/models"

// OrphanReference is a transaction field pointing at a resource that no
// longer exists.
//
// Deleting a member, card, entity or goal never cascades into the
// transactions referencing it. That matches the behavior users rely on:
// the history keeps its rows, they just lose their lookup target. This
// scan makes the dangling ids observable instead of leaving them as an
// accident.
type OrphanReference struct {
	TransactionID string `json:"transactionId"`
	Field         string `json:"field"`
	MissingID     string `json:"missingId"`
}

// Orphans lists every dangling reference in the snapshot.
func Orphans(s models.Snapshot) []OrphanReference {
	orphans := []OrphanReference{}

	for _, tx := range s.Transactions {
		if _, ok := s.Member(tx.MemberID); !ok {
			orphans = append(orphans, OrphanReference{tx.ID, "memberId", tx.MemberID})
		}

		if tx.CardID != "" {
			if _, ok := s.Card(tx.CardID); !ok {
				orphans = append(orphans, OrphanReference{tx.ID, "cardId", tx.CardID})
			}
		}

		if tx.EntityID != "" {
			if _, ok := s.Entity(tx.EntityID); !ok {
				orphans = append(orphans, OrphanReference{tx.ID, "entityId", tx.EntityID})
			}
		}

		if tx.GoalID != "" {
			if _, ok := s.Goal(tx.GoalID); !ok {
				orphans = append(orphans, OrphanReference{tx.ID, "goalId", tx.GoalID})
			}
		}

		if tx.ParentID != "" {
			if _, ok := s.Transaction(tx.ParentID); !ok {
				orphans = append(orphans, OrphanReference{tx.ID, "parentId", tx.ParentID})
			}
		}
	}

	return orphans
}
