package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/finovahq/finova/internal/db"
	"github.com/finovahq/finova/internal/domain"
)

// goalSeparator joins financial goals into one column. Goals come from
// short form labels and never contain newlines.
const goalSeparator = "\n"

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context) (*domain.UserProfile, error) {
	query := `SELECT name, age, income, occupation, financial_goals, risk_tolerance,
		savings_amount, monthly_expenses, user_type, created_at
		FROM user_profile WHERE id = 'default'`
	row := r.db.QueryRowContext(ctx, query)

	var p domain.UserProfile
	var goals, risk, userType, createdAt string
	err := row.Scan(
		&p.Name,
		&p.Age,
		&p.Income,
		&p.Occupation,
		&goals,
		&risk,
		&p.SavingsAmount,
		&p.MonthlyExpenses,
		&userType,
		&createdAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user profile: %w", err)
	}

	if goals != "" {
		p.FinancialGoals = strings.Split(goals, goalSeparator)
	}
	p.RiskTolerance = domain.RiskTolerance(risk)
	p.UserType = domain.UserType(userType)
	if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		p.CreatedAt = ts
	}
	return &p, nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.UserProfile) error {
	query := `INSERT OR REPLACE INTO user_profile (id, name, age, income, occupation,
		financial_goals, risk_tolerance, savings_amount, monthly_expenses, user_type, created_at)
		VALUES ('default', ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.Age,
		p.Income,
		p.Occupation,
		strings.Join(p.FinancialGoals, goalSeparator),
		string(p.RiskTolerance),
		p.SavingsAmount,
		p.MonthlyExpenses,
		string(p.UserType),
		p.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("upserting user profile: %w", err)
	}
	return nil
}

func (r *SQLiteProfileRepo) Delete(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM user_profile WHERE id = 'default'`); err != nil {
		return fmt.Errorf("deleting user profile: %w", err)
	}
	return nil
}
