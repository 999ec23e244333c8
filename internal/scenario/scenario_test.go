package scenario_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	appErrors "FutureYako/internal/errors"
	"FutureYako/internal/scenario"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmounts(t *testing.T) {
	t.Parallel()

	sc, err := scenario.Parse([]byte(`
steps:
  - action: deposit
    amount: 50_000
  - action: deposit
    amount: "1234.56"
  - action: deposit
`))
	require.NoError(t, err)
	require.Len(t, sc.Steps, 3)

	assert.True(t, decimal.NewFromInt(50000).Equal(sc.Steps[0].Amount.Decimal))
	assert.True(t, decimal.RequireFromString("1234.56").Equal(sc.Steps[1].Amount.Decimal))
	assert.True(t, sc.Steps[2].Amount.IsZero())
}

func TestParseJSON(t *testing.T) {
	t.Parallel()

	sc, err := scenario.Parse([]byte(`{"name": "json", "steps": [{"action": "receive", "amount": 250000.5}]}`))
	require.NoError(t, err)

	assert.Equal(t, "json", sc.Name)
	assert.Equal(t, scenario.ActionReceive, sc.Steps[0].Action)
	assert.True(t, decimal.RequireFromString("250000.5").Equal(sc.Steps[0].Amount.Decimal))
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr *appErrors.AppError
	}{
		{
			name:    "invalid amount",
			input:   "steps:\n  - action: deposit\n    amount: lots\n",
			wantErr: appErrors.ErrBadRequest,
		},
		{
			name:    "amount is not a scalar",
			input:   "steps:\n  - action: deposit\n    amount: [1, 2]\n",
			wantErr: appErrors.ErrBadRequest,
		},
		{
			name:    "unknown action",
			input:   "steps:\n  - action: deposit\n  - action: lend\n",
			wantErr: appErrors.ErrUnknownAction,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := scenario.Parse([]byte(tt.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: demo\nsteps:\n  - action: reset\n"), 0o600))

	sc, err := scenario.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", sc.Name)

	_, err = scenario.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}
