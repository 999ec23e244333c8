package transaction

import (
	"strings"
	"sync"
	"time"

	"FutureYako/internal/pkg"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// Store keeps simulated transactions in memory, newest first.
type Store struct {
	mu           sync.RWMutex
	transactions []Transaction
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Record(txType Types, category Category, amount decimal.Decimal, description string, goalID *ulid.ULID) Transaction {
	tx := Transaction{
		Id:          pkg.GenerateULIDObject(),
		Type:        txType,
		Category:    category,
		Amount:      amount,
		Description: strings.TrimSpace(description),
		GoalId:      goalID,
		CreatedAt:   time.Now(),
	}

	s.mu.Lock()
	s.transactions = append([]Transaction{tx}, s.transactions...)
	s.mu.Unlock()

	return tx
}

func (s *Store) List(pagination *pkg.PaginationParams) *pkg.PaginatedResponse[Transaction] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return pkg.Paginate(s.transactions, pagination)
}

// Recent returns at most limit transactions, newest first.
func (s *Store) Recent(limit int) []Transaction {
	return s.List(&pkg.PaginationParams{Page: 1, Limit: limit}).Data
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.transactions)
}

func (s *Store) Clear() {
	s.mu.Lock()
	s.transactions = nil
	s.mu.Unlock()
}
