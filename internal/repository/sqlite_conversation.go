package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/finovahq/finova/internal/db"
	"github.com/finovahq/finova/internal/domain"
)

// SQLiteConversationRepo implements ConversationRepo using a SQLite database.
type SQLiteConversationRepo struct {
	db db.DBTX
}

// NewSQLiteConversationRepo creates a new SQLiteConversationRepo.
func NewSQLiteConversationRepo(conn db.DBTX) *SQLiteConversationRepo {
	return &SQLiteConversationRepo{db: conn}
}

func (r *SQLiteConversationRepo) Append(ctx context.Context, sessionID string, turn domain.ConversationTurn) error {
	query := `INSERT INTO conversation_turns (session_id, role, content, at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		sessionID,
		string(turn.Role),
		turn.Content,
		turn.At.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("appending conversation turn: %w", err)
	}
	return nil
}

func (r *SQLiteConversationRepo) List(ctx context.Context, sessionID string) ([]domain.ConversationTurn, error) {
	query := `SELECT role, content, at FROM conversation_turns WHERE session_id = ? ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("loading conversation: %w", err)
	}
	defer rows.Close()

	var turns []domain.ConversationTurn
	for rows.Next() {
		var t domain.ConversationTurn
		var role, at string
		if err := rows.Scan(&role, &t.Content, &at); err != nil {
			return nil, fmt.Errorf("scanning conversation turn: %w", err)
		}
		t.Role = domain.Role(role)
		if ts, err := time.Parse(time.RFC3339Nano, at); err == nil {
			t.At = ts
		}
		turns = append(turns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating conversation turns: %w", err)
	}
	return turns, nil
}
