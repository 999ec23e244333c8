package transaction_test

import (
	"testing"

	"FutureYako/internal/domain/transaction"
	"FutureYako/internal/pkg"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRecordsNewestFirst(t *testing.T) {
	t.Parallel()

	store := transaction.NewStore()
	store.Record(transaction.Deposit, transaction.CategorySavings, decimal.NewFromInt(100), "salary", nil)
	store.Record(transaction.Withdrawal, transaction.CategoryBill, decimal.NewFromInt(40), " TANESCO ", nil)

	recent := store.Recent(10)
	require.Len(t, recent, 2)
	assert.Equal(t, transaction.Withdrawal, recent[0].Type)
	assert.Equal(t, "TANESCO", recent[0].Description)
	assert.Equal(t, transaction.Deposit, recent[1].Type)
	assert.Equal(t, 2, store.Count())
}

func TestStoreListPaginates(t *testing.T) {
	t.Parallel()

	store := transaction.NewStore()
	for i := 1; i <= 5; i++ {
		store.Record(transaction.Deposit, transaction.CategorySavings, decimal.NewFromInt(int64(i)), "", nil)
	}

	page := store.List(&pkg.PaginationParams{Page: 2, Limit: 2})
	require.Len(t, page.Data, 2)
	assert.True(t, page.Data[0].Amount.Equal(decimal.NewFromInt(3)))
	assert.Equal(t, int64(5), page.Total)
	assert.Equal(t, 3, page.TotalPages)
}

func TestStoreClear(t *testing.T) {
	t.Parallel()

	store := transaction.NewStore()
	store.Record(transaction.Deposit, transaction.CategorySavings, decimal.NewFromInt(1), "", nil)

	store.Clear()

	assert.Zero(t, store.Count())
	assert.Empty(t, store.Recent(5))
}
