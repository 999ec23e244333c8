package settings

import (
	"sync"

	"FutureYako/config"
	appErrors "FutureYako/internal/errors"
	"FutureYako/internal/logger"
	"FutureYako/internal/pkg"

	"github.com/shopspring/decimal"
)

// Provider holds the current deduction settings. Defaults are what a demo
// reset restores.
type Provider struct {
	mu       sync.RWMutex
	current  Settings
	defaults Settings
}

func NewProvider(defaults Settings) *Provider {
	defaults = normalize(defaults)
	return &Provider{
		current:  defaults,
		defaults: defaults,
	}
}

func DefaultsFromConfig(cfg config.DeductionConfig) Settings {
	return Settings{
		DeductionType:  DeductionType(cfg.Type),
		Amount:         cfg.Amount,
		IsEnabled:      cfg.Enabled,
		DurationMonths: cfg.DurationMonths,
	}
}

func DemoDefaults() Settings {
	return Settings{
		DeductionType:  DeductionPercentage,
		Amount:         decimal.NewFromInt(10),
		IsEnabled:      true,
		DurationMonths: MinDurationMonths,
	}
}

func (p *Provider) Get() Settings {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

func (p *Provider) SetDeductionType(deductionType DeductionType) error {
	if !deductionType.Valid() {
		return appErrors.NewValidationError("deduction_type", "deduction type must be percentage or fixed")
	}
	p.mutate(func(s *Settings) { s.DeductionType = deductionType })
	return nil
}

func (p *Provider) SetAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return appErrors.NewValidationError("amount", "amount must not be negative")
	}
	p.mutate(func(s *Settings) { s.Amount = amount })
	return nil
}

// SetDurationMonths clamps the saving period to the minimum.
func (p *Provider) SetDurationMonths(months int) {
	p.mutate(func(s *Settings) { s.DurationMonths = clampDuration(months) })
}

func (p *Provider) ToggleEnabled() bool {
	var enabled bool
	p.mutate(func(s *Settings) {
		s.IsEnabled = !s.IsEnabled
		enabled = s.IsEnabled
	})
	return enabled
}

// SetAll replaces every field, normalizing missing or out of range values.
func (p *Provider) SetAll(settings Settings) {
	settings = normalize(settings)
	p.mutate(func(s *Settings) { *s = settings })
}

// Onboard stores the deduction chosen during onboarding. Percentages above
// 100 are rejected.
func (p *Provider) Onboard(request OnboardingRequest) error {
	if err := pkg.Validator().Struct(request); err != nil {
		return appErrors.ParseValidationErrors(err)
	}
	if request.DeductionType == DeductionPercentage && request.Amount.GreaterThan(pkg.Hundred) {
		return appErrors.NewValidationError("amount", "percentage cannot exceed 100%")
	}

	p.mutate(func(s *Settings) {
		s.DeductionType = request.DeductionType
		s.Amount = request.Amount
	})
	return nil
}

func (p *Provider) ResetToDemo() {
	p.mu.Lock()
	p.current = p.defaults
	p.mu.Unlock()
}

func (p *Provider) mutate(fn func(s *Settings)) {
	p.mu.Lock()
	fn(&p.current)
	current := p.current
	p.mu.Unlock()

	logger.Debug().
		Str("deduction_type", string(current.DeductionType)).
		Str("amount", current.Amount.String()).
		Bool("enabled", current.IsEnabled).
		Int("duration_months", current.DurationMonths).
		Msg("settings updated")
}

func normalize(s Settings) Settings {
	if !s.DeductionType.Valid() {
		s.DeductionType = DeductionPercentage
	}
	if s.Amount.IsNegative() {
		s.Amount = decimal.Zero
	}
	s.DurationMonths = clampDuration(s.DurationMonths)
	return s
}

func clampDuration(months int) int {
	if months < MinDurationMonths {
		return MinDurationMonths
	}
	return months
}
