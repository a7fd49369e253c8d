package carteira

import (
	"time"

	"github.com/google/uuid"
)

// Allocation is one line of a contribution, tied to exactly one asset.
//
// The asset's name and class are denormalized here at entry time so history
// stays renderable after the asset is renamed or deleted. During replay the
// class recorded on the line, not the asset's current class, decides the
// accounting model.
//
// For unit-based classes both UnitPrice and UnitQuantity must be set; for
// value-based classes Invested carries the amount and its currency (BRL or
// USD). A nil field means the line was never filled in and contributes zero.
type Allocation struct {
	AssetID      string     `json:"assetId"`
	AssetName    string     `json:"assetName"`
	Class        AssetClass `json:"class"`
	UnitPrice    *Money     `json:"unitPrice,omitempty"`
	UnitQuantity *Quantity  `json:"unitQuantity,omitempty"`
	Invested     *Money     `json:"invested,omitempty"`
}

// Value returns the line's effective contribution in the BRL reporting
// currency: unit price times quantity, or the invested amount converted at
// the fixed rate. Incomplete lines are worth zero.
func (a Allocation) Value() Money {
	switch {
	case a.Class.IsUnitBased():
		if a.UnitPrice == nil || a.UnitQuantity == nil {
			return Money{}
		}
		return a.UnitPrice.Mul(*a.UnitQuantity)
	case a.Class.IsValueBased():
		if a.Invested == nil {
			return Money{}
		}
		return toLocal(*a.Invested)
	}
	return Money{}
}

// TotalOf sums the effective value of a set of allocation lines. The fold is
// commutative: the result does not depend on line order.
func TotalOf(allocations []Allocation) Money {
	total := M(0, CurrencyBRL)
	for _, a := range allocations {
		total = total.Add(a.Value())
	}
	return total
}

// Contribution is one investment round: money allocated across one or more
// assets on a given date. Contributions are immutable once recorded; they can
// only be deleted, and deletion never rewrites an asset's current position.
type Contribution struct {
	ID          string       `json:"id"`
	Date        Date         `json:"date"`
	Planned     Money        `json:"planned"`
	Executed    Money        `json:"executed"`
	Allocations []Allocation `json:"allocations"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// NewContribution records a round. The executed amount is always recomputed
// from the allocation lines; it is never set by the caller.
func NewContribution(on Date, planned Money, allocations []Allocation) Contribution {
	if on.IsZero() {
		on = Today()
	}
	return Contribution{
		ID:          uuid.NewString(),
		Date:        on,
		Planned:     planned,
		Executed:    TotalOf(allocations),
		Allocations: allocations,
		CreatedAt:   time.Now(),
	}
}

// Variance is the planned amount minus what was actually allocated.
func (c Contribution) Variance() Money {
	return c.Planned.Sub(c.Executed)
}
