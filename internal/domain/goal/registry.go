package goal

import (
	"sort"
	"strings"
	"sync"
	"time"

	appErrors "FutureYako/internal/errors"
	"FutureYako/internal/logger"
	"FutureYako/internal/pkg"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// Observer receives the goal collection after every mutation.
type Observer func(goals []Goal)

type CreateRequest struct {
	Name            string          `validate:"notblank,max=100"`
	Category        string          `validate:"max=50"`
	TargetAmount    decimal.Decimal `validate:"gte=0"`
	AllocationType  AllocationType  `validate:"omitempty,oneof=percentage fixed"`
	AllocationValue decimal.Decimal `validate:"gte=0"`
}

// Patch updates descriptive fields only; balances change through the
// allocation operations.
type Patch struct {
	Name         *string
	Category     *string
	TargetAmount *decimal.Decimal
}

// Registry owns the goal collection. Reads return copies, so callers work
// on snapshots and observe changes through Subscribe.
type Registry struct {
	mu           sync.RWMutex
	goals        []Goal
	observers    map[int]Observer
	nextObserver int
}

func NewRegistry() *Registry {
	return &Registry{
		observers: make(map[int]Observer),
	}
}

func (r *Registry) Goals() []Goal {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return clone(r.goals)
}

func (r *Registry) Get(id ulid.ULID) (Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := indexOf(r.goals, id)
	if idx < 0 {
		return Goal{}, appErrors.ErrGoalNotFound.WithDetails(map[string]interface{}{"id": id.String()})
	}
	return r.goals[idx], nil
}

// FindByName looks a goal up by name, ignoring case and surrounding spaces.
func (r *Registry) FindByName(name string) (Goal, error) {
	needle := strings.ToLower(strings.TrimSpace(name))

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, g := range r.goals {
		if strings.ToLower(g.Name) == needle {
			return g, nil
		}
	}
	return Goal{}, appErrors.ErrGoalNotFound.WithDetails(map[string]interface{}{"name": name})
}

func (r *Registry) TotalSavings() decimal.Decimal {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Total(r.goals)
}

func (r *Registry) Create(request CreateRequest) (Goal, error) {
	if err := pkg.Validator().Struct(request); err != nil {
		return Goal{}, appErrors.ParseValidationErrors(err)
	}

	allocationType := request.AllocationType
	if allocationType == "" {
		allocationType = AllocationPercentage
	}
	category := strings.TrimSpace(request.Category)
	if category == "" {
		category = DefaultCategory
	}

	now := time.Now()
	entity := Goal{
		Id:              pkg.GenerateULIDObject(),
		Name:            strings.TrimSpace(request.Name),
		Category:        category,
		TargetAmount:    request.TargetAmount,
		CurrentAmount:   decimal.Zero,
		AllocationType:  allocationType,
		AllocationValue: request.AllocationValue,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	r.apply(func(goals []Goal) []Goal {
		return append(clone(goals), entity)
	})

	logger.Debug().
		Str("goal_id", entity.Id.String()).
		Str("name", entity.Name).
		Str("target", entity.TargetAmount.String()).
		Msg("goal created")

	return entity, nil
}

func (r *Registry) Update(id ulid.ULID, patch Patch) (Goal, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return Goal{}, appErrors.NewValidationError("name", "name must not be blank")
	}
	if patch.TargetAmount != nil && patch.TargetAmount.IsNegative() {
		return Goal{}, appErrors.NewValidationError("target_amount", "target amount must not be negative")
	}

	return r.update(id, func(g *Goal) {
		if patch.Name != nil {
			g.Name = strings.TrimSpace(*patch.Name)
		}
		if patch.Category != nil {
			g.Category = strings.TrimSpace(*patch.Category)
		}
		if patch.TargetAmount != nil {
			g.TargetAmount = *patch.TargetAmount
		}
	})
}

func (r *Registry) SetAllocationType(id ulid.ULID, allocationType AllocationType) (Goal, error) {
	if !allocationType.Valid() {
		return Goal{}, appErrors.NewValidationError("allocation_type", "allocation type must be percentage or fixed")
	}
	return r.update(id, func(g *Goal) {
		g.AllocationType = allocationType
	})
}

// SetAllocationValue rejects negative values and leaves the goal untouched.
func (r *Registry) SetAllocationValue(id ulid.ULID, value decimal.Decimal) (Goal, error) {
	if value.IsNegative() {
		return Goal{}, appErrors.NewValidationError("allocation_value", "allocation value must not be negative")
	}
	return r.update(id, func(g *Goal) {
		g.AllocationValue = value
	})
}

func (r *Registry) Delete(id ulid.ULID) error {
	if _, err := r.Get(id); err != nil {
		return err
	}
	r.apply(func(goals []Goal) []Goal {
		out := make([]Goal, 0, len(goals))
		for _, g := range goals {
			if g.Id != id {
				out = append(out, g)
			}
		}
		return out
	})
	return nil
}

func (r *Registry) Distribute(amount decimal.Decimal) []Goal {
	return r.apply(func(goals []Goal) []Goal {
		return Distribute(goals, amount)
	})
}

func (r *Registry) DeductFromGoal(id ulid.ULID, amount decimal.Decimal) []Goal {
	return r.apply(func(goals []Goal) []Goal {
		return DeductFromGoal(goals, id, amount)
	})
}

func (r *Registry) DeductFromTotal(amount decimal.Decimal) []Goal {
	return r.apply(func(goals []Goal) []Goal {
		return DeductFromTotal(goals, amount)
	})
}

// Reset drops every goal.
func (r *Registry) Reset() {
	r.apply(func([]Goal) []Goal {
		return nil
	})
}

// Subscribe registers fn for change notifications and returns a function
// that removes it.
func (r *Registry) Subscribe(fn Observer) func() {
	r.mu.Lock()
	id := r.nextObserver
	r.nextObserver++
	r.observers[id] = fn
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.observers, id)
		r.mu.Unlock()
	}
}

func (r *Registry) update(id ulid.ULID, mutate func(g *Goal)) (Goal, error) {
	var (
		updated Goal
		found   bool
	)
	r.apply(func(goals []Goal) []Goal {
		idx := indexOf(goals, id)
		if idx < 0 {
			return goals
		}
		found = true
		out := clone(goals)
		mutate(&out[idx])
		out[idx].UpdatedAt = time.Now()
		updated = out[idx]
		return out
	})
	if !found {
		return Goal{}, appErrors.ErrGoalNotFound.WithDetails(map[string]interface{}{"id": id.String()})
	}
	return updated, nil
}

// apply swaps in the collection produced by fn and, when fn changed it,
// notifies observers outside the lock in subscription order.
func (r *Registry) apply(fn func(goals []Goal) []Goal) []Goal {
	r.mu.Lock()
	before := r.goals
	r.goals = fn(r.goals)
	snapshot := clone(r.goals)
	if sameSlice(before, r.goals) {
		r.mu.Unlock()
		return snapshot
	}

	ids := make([]int, 0, len(r.observers))
	for id := range r.observers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	observers := make([]Observer, 0, len(ids))
	for _, id := range ids {
		observers = append(observers, r.observers[id])
	}
	r.mu.Unlock()

	for _, observer := range observers {
		observer(clone(snapshot))
	}
	return snapshot
}

func sameSlice(a, b []Goal) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}
