package advisor

import (
	"time"

	"github.com/finovahq/finova/internal/domain"
	"github.com/google/uuid"
)

// Session is the explicit per-conversation state owned by the caller.
// There is exactly one active turn at a time, so no locking is needed;
// independent sessions own entirely independent copies.
type Session struct {
	ID        string
	Profile   *domain.UserProfile // nil until intake completes
	Ledger    *domain.ExpenseLedger
	History   []domain.ConversationTurn
	StartedAt time.Time
}

// NewSession creates an empty session with a fresh ID and ledger.
func NewSession() *Session {
	return &Session{
		ID:        uuid.NewString(),
		Ledger:    domain.NewExpenseLedger(),
		StartedAt: time.Now().UTC(),
	}
}

// SetProfile replaces the session profile wholesale.
func (s *Session) SetProfile(p *domain.UserProfile) {
	s.Profile = p
}

// AppendTurn records one message in the session transcript.
func (s *Session) AppendTurn(role domain.Role, content string) {
	s.History = append(s.History, domain.ConversationTurn{
		Role:    role,
		Content: content,
		At:      time.Now().UTC(),
	})
}
