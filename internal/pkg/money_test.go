package pkg_test

import (
	"testing"

	"FutureYako/internal/pkg"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{name: "whole amount", amount: decimal.NewFromInt(50000), want: "TZS 50,000"},
		{name: "fraction", amount: decimal.RequireFromString("583.3333333"), want: "TZS 583.33"},
		{name: "zero", amount: decimal.Zero, want: "TZS 0"},
		{name: "rounds up to whole", amount: decimal.RequireFromString("999.999"), want: "TZS 1,000"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, pkg.FormatMoney("TZS", tt.amount))
		})
	}
}

func TestClampZero(t *testing.T) {
	t.Parallel()

	assert.True(t, pkg.ClampZero(decimal.NewFromInt(-5)).IsZero())
	assert.True(t, pkg.ClampZero(decimal.NewFromInt(5)).Equal(decimal.NewFromInt(5)))
}

func TestPaginate(t *testing.T) {
	t.Parallel()

	items := []int{1, 2, 3, 4, 5}

	page := pkg.Paginate(items, &pkg.PaginationParams{Page: 2, Limit: 2})
	assert.Equal(t, []int{3, 4}, page.Data)
	assert.Equal(t, int64(5), page.Total)
	assert.Equal(t, 3, page.TotalPages)

	past := pkg.Paginate(items, &pkg.PaginationParams{Page: 9, Limit: 2})
	assert.Empty(t, past.Data)

	defaults := pkg.Paginate(items, nil)
	assert.Equal(t, 1, defaults.Page)
	assert.Equal(t, 10, defaults.Limit)
	assert.Len(t, defaults.Data, 5)
}

func TestValidatorDecimalTags(t *testing.T) {
	t.Parallel()

	type request struct {
		Amount decimal.Decimal `validate:"gt=0,lte=100"`
		Note   string          `validate:"notblank"`
	}

	assert.NoError(t, pkg.Validator().Struct(request{Amount: decimal.NewFromInt(10), Note: "ok"}))
	assert.Error(t, pkg.Validator().Struct(request{Amount: decimal.Zero, Note: "ok"}))
	assert.Error(t, pkg.Validator().Struct(request{Amount: decimal.NewFromInt(101), Note: "ok"}))
	assert.Error(t, pkg.Validator().Struct(request{Amount: decimal.NewFromInt(1), Note: "   "}))
}
