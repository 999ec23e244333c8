package scenario

import (
	"fmt"
	"os"
	"strings"

	appErrors "FutureYako/internal/errors"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type Action string

const (
	ActionCreateGoal      Action = "create_goal"
	ActionSetAllocation   Action = "set_allocation"
	ActionDeposit         Action = "deposit"
	ActionReceive         Action = "receive"
	ActionPayBill         Action = "pay_bill"
	ActionInvest          Action = "invest"
	ActionDeductGoal      Action = "deduct_goal"
	ActionDeductTotal     Action = "deduct_total"
	ActionToggleDeduction Action = "toggle_deduction"
	ActionSetDuration     Action = "set_duration"
	ActionReset           Action = "reset"
)

var knownActions = map[Action]struct{}{
	ActionCreateGoal:      {},
	ActionSetAllocation:   {},
	ActionDeposit:         {},
	ActionReceive:         {},
	ActionPayBill:         {},
	ActionInvest:          {},
	ActionDeductGoal:      {},
	ActionDeductTotal:     {},
	ActionToggleDeduction: {},
	ActionSetDuration:     {},
	ActionReset:           {},
}

func (a Action) Valid() bool {
	_, ok := knownActions[a]
	return ok
}

// Amount decodes bare or quoted numbers straight into a decimal, never
// through float64. Underscore digit separators are allowed: 50_000.
type Amount struct {
	decimal.Decimal
}

func (a *Amount) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: amount must be a number", node.Line)
	}
	raw := strings.ReplaceAll(strings.TrimSpace(node.Value), "_", "")
	if raw == "" {
		a.Decimal = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("line %d: invalid amount %q", node.Line, node.Value)
	}
	a.Decimal = d
	return nil
}

type Settings struct {
	DeductionType  string `yaml:"deduction_type"`
	Amount         Amount `yaml:"amount"`
	Enabled        *bool  `yaml:"enabled"`
	DurationMonths int    `yaml:"duration_months"`
}

// Step is one user action. Goals are referenced by name; From names the goal
// a bill or investment is paid from, "total" or empty meaning all savings.
type Step struct {
	Action          Action  `yaml:"action"`
	Goal            string  `yaml:"goal"`
	Category        string  `yaml:"category"`
	Target          Amount  `yaml:"target"`
	AllocationType  string  `yaml:"allocation_type"`
	AllocationValue *Amount `yaml:"allocation_value"`
	Amount          Amount  `yaml:"amount"`
	Biller          string  `yaml:"biller"`
	ReferenceType   string  `yaml:"reference_type"`
	Reference       string  `yaml:"reference"`
	Asset           string  `yaml:"asset"`
	From            string  `yaml:"from"`
	Months          int     `yaml:"months"`
}

type Scenario struct {
	Name     string    `yaml:"name"`
	Settings *Settings `yaml:"settings"`
	Steps    []Step    `yaml:"steps"`
}

// Validate rejects scenarios naming an action the runner does not know.
func (s Scenario) Validate() error {
	for i, step := range s.Steps {
		if !step.Action.Valid() {
			return appErrors.ErrUnknownAction.WithDetails(map[string]interface{}{
				"step":   i + 1,
				"action": string(step.Action),
			})
		}
	}
	return nil
}

// Parse decodes a YAML or JSON scenario.
func Parse(data []byte) (Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scenario{}, appErrors.WrapError(err, appErrors.ErrBadRequest.Code, "Invalid scenario file")
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, appErrors.WrapError(err, appErrors.ErrNotFound.Code, "Scenario file could not be read")
	}
	return Parse(data)
}
