package repository

import (
	"context"
	"errors"

	"github.com/finovahq/finova/internal/domain"
)

// ErrNotFound indicates the requested row does not exist.
var ErrNotFound = errors.New("not found")

// ProfileRepo stores the single active user profile.
type ProfileRepo interface {
	Get(ctx context.Context) (*domain.UserProfile, error)
	Upsert(ctx context.Context, p *domain.UserProfile) error
	Delete(ctx context.Context) error
}

// ExpenseRepo stores per-category running totals.
type ExpenseRepo interface {
	// Add accumulates amount into the category's running total.
	Add(ctx context.Context, category string, amount float64) error
	// Ledger returns all totals in first-insertion order.
	Ledger(ctx context.Context) (*domain.ExpenseLedger, error)
	Clear(ctx context.Context) error
}

// ConversationRepo stores the append-only session transcript.
type ConversationRepo interface {
	Append(ctx context.Context, sessionID string, turn domain.ConversationTurn) error
	List(ctx context.Context, sessionID string) ([]domain.ConversationTurn, error)
}
