package transaction

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type Types string

const (
	Deposit    Types = "deposit"
	Withdrawal Types = "withdrawal"
)

type Category string

const (
	CategorySavings    Category = "savings"
	CategoryBill       Category = "bill"
	CategoryInvestment Category = "investment"
)

// Transaction is a simulated money movement shown in recent activity. It is
// never persisted.
type Transaction struct {
	Id          ulid.ULID       `json:"id"`
	Type        Types           `json:"type"`
	Category    Category        `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	GoalId      *ulid.ULID      `json:"goalId,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}
