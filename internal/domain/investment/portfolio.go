package investment

import (
	"sync"
	"time"

	"FutureYako/internal/pkg"

	"github.com/shopspring/decimal"
)

// Portfolio keeps the holdings bought during a session, newest first.
type Portfolio struct {
	mu       sync.RWMutex
	holdings []Holding
}

func NewPortfolio() *Portfolio {
	return &Portfolio{}
}

func (p *Portfolio) Add(asset Asset, amount decimal.Decimal) Holding {
	units := decimal.Zero
	if asset.Price.IsPositive() {
		units = amount.DivRound(asset.Price, 4)
	}

	holding := Holding{
		Id:             pkg.GenerateULIDObject(),
		AssetId:        asset.Id,
		AssetName:      asset.Name,
		AssetType:      asset.Type,
		InvestedAmount: amount,
		Units:          units,
		CreatedAt:      time.Now(),
	}

	p.mu.Lock()
	p.holdings = append([]Holding{holding}, p.holdings...)
	p.mu.Unlock()

	return holding
}

func (p *Portfolio) Holdings() []Holding {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]Holding, len(p.holdings))
	copy(out, p.holdings)
	return out
}

func (p *Portfolio) TotalInvested() decimal.Decimal {
	p.mu.RLock()
	defer p.mu.RUnlock()

	total := decimal.Zero
	for _, h := range p.holdings {
		total = total.Add(h.InvestedAmount)
	}
	return total
}

// TotalsByType sums the invested amount per asset type.
func (p *Portfolio) TotalsByType() map[Types]decimal.Decimal {
	p.mu.RLock()
	defer p.mu.RUnlock()

	totals := make(map[Types]decimal.Decimal)
	for _, h := range p.holdings {
		totals[h.AssetType] = totals[h.AssetType].Add(h.InvestedAmount)
	}
	return totals
}

func (p *Portfolio) Clear() {
	p.mu.Lock()
	p.holdings = nil
	p.mu.Unlock()
}
