package domain

import "time"

// ConversationTurn is one message in a session transcript.
type ConversationTurn struct {
	Role    Role
	Content string
	At      time.Time
}

// HealthScoreResult is a derived snapshot, recomputed on demand from the
// profile and ledger. It is never stored or cached.
type HealthScoreResult struct {
	Score    float64 // 0..100, rounded to one decimal
	Grade    string  // A..F
	Feedback []string
}
