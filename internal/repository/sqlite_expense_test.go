package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finovahq/finova/internal/testutil"
)

func TestExpenseRepo_AddAccumulates(t *testing.T) {
	repo := NewSQLiteExpenseRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, "Food", 100))
	require.NoError(t, repo.Add(ctx, "Food", 50))

	ledger, err := repo.Ledger(ctx)
	require.NoError(t, err)
	assert.Equal(t, 150.0, ledger.Amount("Food"))
	assert.Equal(t, 1, ledger.Len())
}

func TestExpenseRepo_LedgerPreservesInsertionOrder(t *testing.T) {
	repo := NewSQLiteExpenseRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, "Transport", 50))
	require.NoError(t, repo.Add(ctx, "Food", 100))
	require.NoError(t, repo.Add(ctx, "Housing", 1200))
	// Re-adding keeps the original position.
	require.NoError(t, repo.Add(ctx, "Food", 25))

	ledger, err := repo.Ledger(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Transport", "Food", "Housing"}, ledger.Categories())
	assert.Equal(t, 125.0, ledger.Amount("Food"))
}

func TestExpenseRepo_EmptyLedger(t *testing.T) {
	repo := NewSQLiteExpenseRepo(testutil.NewTestDB(t))

	ledger, err := repo.Ledger(context.Background())
	require.NoError(t, err)
	assert.Zero(t, ledger.Len())
}

func TestExpenseRepo_Clear(t *testing.T) {
	repo := NewSQLiteExpenseRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, "Food", 100))
	require.NoError(t, repo.Clear(ctx))

	ledger, err := repo.Ledger(ctx)
	require.NoError(t, err)
	assert.Zero(t, ledger.Len())
}
