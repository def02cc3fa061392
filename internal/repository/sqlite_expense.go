package repository

import (
	"context"
	"fmt"

	"github.com/finovahq/finova/internal/db"
	"github.com/finovahq/finova/internal/domain"
)

// SQLiteExpenseRepo implements ExpenseRepo using a SQLite database.
type SQLiteExpenseRepo struct {
	db db.DBTX
}

// NewSQLiteExpenseRepo creates a new SQLiteExpenseRepo.
func NewSQLiteExpenseRepo(conn db.DBTX) *SQLiteExpenseRepo {
	return &SQLiteExpenseRepo{db: conn}
}

func (r *SQLiteExpenseRepo) Add(ctx context.Context, category string, amount float64) error {
	// seq preserves first-insertion order; re-adding keeps the original seq.
	query := `INSERT INTO expenses (category, amount, seq)
		VALUES (?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM expenses))
		ON CONFLICT(category) DO UPDATE SET amount = amount + excluded.amount`
	if _, err := r.db.ExecContext(ctx, query, category, amount); err != nil {
		return fmt.Errorf("adding expense: %w", err)
	}
	return nil
}

func (r *SQLiteExpenseRepo) Ledger(ctx context.Context) (*domain.ExpenseLedger, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT category, amount FROM expenses ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("loading expenses: %w", err)
	}
	defer rows.Close()

	ledger := domain.NewExpenseLedger()
	for rows.Next() {
		var category string
		var amount float64
		if err := rows.Scan(&category, &amount); err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}
		ledger.Add(category, amount)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating expenses: %w", err)
	}
	return ledger, nil
}

func (r *SQLiteExpenseRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM expenses`); err != nil {
		return fmt.Errorf("clearing expenses: %w", err)
	}
	return nil
}
