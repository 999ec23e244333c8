package goal_test

import (
	"errors"
	"testing"

	"FutureYako/internal/domain/goal"
	appErrors "FutureYako/internal/errors"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createGoal(t *testing.T, r *goal.Registry, name string, allocationType goal.AllocationType, value string) goal.Goal {
	t.Helper()
	g, err := r.Create(goal.CreateRequest{
		Name:            name,
		TargetAmount:    dec("100000"),
		AllocationType:  allocationType,
		AllocationValue: dec(value),
	})
	require.NoError(t, err)
	return g
}

func TestRegistryCreate(t *testing.T) {
	t.Parallel()

	r := goal.NewRegistry()
	g, err := r.Create(goal.CreateRequest{Name: "  School fees ", TargetAmount: dec("500000")})
	require.NoError(t, err)

	assert.Equal(t, "School fees", g.Name)
	assert.Equal(t, goal.DefaultCategory, g.Category)
	assert.Equal(t, goal.AllocationPercentage, g.AllocationType)
	assert.True(t, g.CurrentAmount.IsZero())

	stored, err := r.Get(g.Id)
	require.NoError(t, err)
	assert.Equal(t, g, stored)
}

func TestRegistryCreateValidations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		request goal.CreateRequest
	}{
		{name: "blank name", request: goal.CreateRequest{Name: "   "}},
		{name: "negative target", request: goal.CreateRequest{Name: "x", TargetAmount: dec("-1")}},
		{name: "negative allocation", request: goal.CreateRequest{Name: "x", AllocationValue: dec("-1")}},
		{name: "unknown allocation type", request: goal.CreateRequest{Name: "x", AllocationType: "weekly"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := goal.NewRegistry()
			_, err := r.Create(tt.request)
			require.Error(t, err)

			appErr, ok := appErrors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
			assert.Empty(t, r.Goals())
		})
	}
}

func TestRegistryAllocationSetters(t *testing.T) {
	t.Parallel()

	r := goal.NewRegistry()
	g := createGoal(t, r, "Land", goal.AllocationPercentage, "10")

	updated, err := r.SetAllocationType(g.Id, goal.AllocationFixed)
	require.NoError(t, err)
	assert.Equal(t, goal.AllocationFixed, updated.AllocationType)

	updated, err = r.SetAllocationValue(g.Id, dec("25000"))
	require.NoError(t, err)
	assert.True(t, updated.AllocationValue.Equal(dec("25000")))

	_, err = r.SetAllocationValue(g.Id, dec("-1"))
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
	stored, _ := r.Get(g.Id)
	assert.True(t, stored.AllocationValue.Equal(dec("25000")))

	_, err = r.SetAllocationType(g.Id, "weekly")
	assert.True(t, errors.Is(err, appErrors.ErrValidation))

	_, err = r.SetAllocationValue(ulid.Make(), dec("1"))
	assert.True(t, errors.Is(err, appErrors.ErrGoalNotFound))
}

func TestRegistryUpdate(t *testing.T) {
	t.Parallel()

	r := goal.NewRegistry()
	g := createGoal(t, r, "Land", goal.AllocationPercentage, "10")

	name := "Plot in Dodoma"
	target := dec("2000000")
	updated, err := r.Update(g.Id, goal.Patch{Name: &name, TargetAmount: &target})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	assert.True(t, updated.TargetAmount.Equal(target))

	blank := " "
	_, err = r.Update(g.Id, goal.Patch{Name: &blank})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))

	negative := dec("-5")
	_, err = r.Update(g.Id, goal.Patch{TargetAmount: &negative})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestRegistryFindByNameAndDelete(t *testing.T) {
	t.Parallel()

	r := goal.NewRegistry()
	g := createGoal(t, r, "Wedding", goal.AllocationPercentage, "10")

	found, err := r.FindByName(" wedding ")
	require.NoError(t, err)
	assert.Equal(t, g.Id, found.Id)

	require.NoError(t, r.Delete(g.Id))
	assert.Empty(t, r.Goals())

	err = r.Delete(g.Id)
	assert.True(t, errors.Is(err, appErrors.ErrGoalNotFound))

	_, err = r.FindByName("wedding")
	assert.True(t, errors.Is(err, appErrors.ErrGoalNotFound))
}

func TestRegistryAppliesAllocationEngine(t *testing.T) {
	t.Parallel()

	r := goal.NewRegistry()
	a := createGoal(t, r, "a", goal.AllocationPercentage, "50")
	createGoal(t, r, "b", goal.AllocationPercentage, "50")

	r.Distribute(dec("1000"))
	assertAmount(t, "1000", r.TotalSavings())

	r.DeductFromGoal(a.Id, dec("100"))
	stored, _ := r.Get(a.Id)
	assertAmount(t, "400", stored.CurrentAmount)

	goals := r.DeductFromTotal(dec("600"))
	assert.True(t, goals[0].CurrentAmount.IsZero())
	assertAmount(t, "300", goals[1].CurrentAmount)
	assertAmount(t, "300", r.TotalSavings())
}

func TestRegistryColdStartDeposit(t *testing.T) {
	t.Parallel()

	r := goal.NewRegistry()
	goals := r.Distribute(dec("10000"))

	require.Len(t, goals, 1)
	assert.Equal(t, goal.DefaultGoalName, goals[0].Name)
	assertAmount(t, "10000", r.TotalSavings())
}

func TestRegistrySnapshotsAreIsolated(t *testing.T) {
	t.Parallel()

	r := goal.NewRegistry()
	createGoal(t, r, "a", goal.AllocationPercentage, "50")

	snapshot := r.Goals()
	snapshot[0].CurrentAmount = dec("999")

	assert.True(t, r.TotalSavings().IsZero())
}

func TestRegistrySubscribe(t *testing.T) {
	t.Parallel()

	r := goal.NewRegistry()

	var calls [][]goal.Goal
	unsubscribe := r.Subscribe(func(goals []goal.Goal) {
		calls = append(calls, goals)
	})

	createGoal(t, r, "a", goal.AllocationPercentage, "100")
	r.Distribute(dec("500"))
	r.Distribute(decimal.Zero)
	r.DeductFromTotal(dec("-1"))

	require.Len(t, calls, 2)
	assert.Len(t, calls[0], 1)
	assertAmount(t, "500", calls[1][0].CurrentAmount)

	unsubscribe()
	r.Distribute(dec("500"))
	assert.Len(t, calls, 2)
}

func TestRegistryReset(t *testing.T) {
	t.Parallel()

	r := goal.NewRegistry()
	createGoal(t, r, "a", goal.AllocationPercentage, "100")
	r.Distribute(dec("500"))

	notified := 0
	r.Subscribe(func(goals []goal.Goal) {
		notified++
		assert.Empty(t, goals)
	})

	r.Reset()
	assert.Empty(t, r.Goals())
	assert.True(t, r.TotalSavings().IsZero())
	assert.Equal(t, 1, notified)

	r.Reset()
	assert.Equal(t, 1, notified)
}
