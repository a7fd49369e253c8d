package carteira

import "github.com/shopspring/decimal"

// USDBRL is the fixed USD to BRL conversion rate applied to value-based
// allocations entered in USD. There is no live rate source; callers may
// override it before recording a contribution.
var USDBRL = decimal.NewFromInt(5)

// Position is the running state of one asset.
//
// Unit-based classes use Quantity and AvgCost; value-based classes use Value
// and CostBasis. The unused pair stays at its zero value. Value and CostBasis
// move in lockstep under current rules, since no independent valuation source
// exists; they are kept apart so one can diverge when such a source is added.
type Position struct {
	Quantity  Quantity `json:"quantity"`
	AvgCost   Money    `json:"avgCost"`
	Value     Money    `json:"value"`
	CostBasis Money    `json:"costBasis"`
}

// MarketValue returns the position's value under the given class's accounting
// model: quantity times average cost for unit-based classes, the accumulated
// value for value-based ones.
func (p Position) MarketValue(class AssetClass) Money {
	if class.IsUnitBased() {
		return p.AvgCost.Mul(p.Quantity)
	}
	return p.Value
}

// ApplyAllocation returns the position after applying one allocation line.
//
// It is pure: inputs are never mutated. An allocation missing the fields its
// class requires is not an error, it models a form the user has not finished
// filling in, and returns the position unchanged.
func ApplyAllocation(p Position, a Allocation) Position {
	switch {
	case a.Class.IsUnitBased():
		if a.UnitPrice == nil || a.UnitQuantity == nil {
			return p
		}
		price, qty := *a.UnitPrice, *a.UnitQuantity
		if p.Quantity.IsZero() {
			// First purchase seeds the average cost directly, which also
			// avoids dividing by a zero total quantity.
			p.AvgCost = price
		} else {
			total := p.AvgCost.Mul(p.Quantity).Add(price.Mul(qty))
			p.AvgCost = total.Div(p.Quantity.Add(qty))
		}
		p.Quantity = p.Quantity.Add(qty)
	case a.Class.IsValueBased():
		if a.Invested == nil {
			return p
		}
		v := toLocal(*a.Invested)
		p.Value = p.Value.Add(v)
		p.CostBasis = p.CostBasis.Add(v)
	}
	return p
}

// toLocal converts an amount to the BRL reporting currency using the fixed
// USDBRL rate. BRL amounts pass through unchanged.
func toLocal(m Money) Money {
	if m.Currency() == CurrencyUSD {
		return M(m.Amount().Mul(USDBRL), CurrencyBRL)
	}
	return M(m.Amount(), CurrencyBRL)
}
