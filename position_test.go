package carteira

import "testing"

func TestApplyAllocation_FirstPurchase(t *testing.T) {
	pos := ApplyAllocation(Position{}, unitAlloc("petr4", Acao, 10, 50))

	if !pos.Quantity.Equal(Q(10)) {
		t.Errorf("Quantity = %v, want 10", pos.Quantity)
	}
	if !pos.AvgCost.Equal(BRL(50)) {
		t.Errorf("AvgCost = %v, want %v", pos.AvgCost, BRL(50))
	}
}

func TestApplyAllocation_WeightedAverage(t *testing.T) {
	pos := Position{Quantity: Q(10), AvgCost: BRL(100)}
	pos = ApplyAllocation(pos, unitAlloc("petr4", Acao, 10, 200))

	if !pos.Quantity.Equal(Q(20)) {
		t.Errorf("Quantity = %v, want 20", pos.Quantity)
	}
	// (10*100 + 10*200) / 20
	if !pos.AvgCost.Equal(BRL(150)) {
		t.Errorf("AvgCost = %v, want %v", pos.AvgCost, BRL(150))
	}
}

func TestApplyAllocation_ValueLocalCurrency(t *testing.T) {
	pos := ApplyAllocation(Position{}, valueAlloc("btc", Cripto, 500, CurrencyBRL))

	if !pos.Value.Equal(BRL(500)) {
		t.Errorf("Value = %v, want %v", pos.Value, BRL(500))
	}
	if !pos.CostBasis.Equal(BRL(500)) {
		t.Errorf("CostBasis = %v, want %v", pos.CostBasis, BRL(500))
	}
}

func TestApplyAllocation_ValueForeignCurrency(t *testing.T) {
	// 100 USD at the fixed 5.0 rate
	pos := ApplyAllocation(Position{}, valueAlloc("voo", ETFGlobal, 100, CurrencyUSD))

	if !pos.Value.Equal(BRL(500)) {
		t.Errorf("Value = %v, want %v", pos.Value, BRL(500))
	}
}

func TestApplyAllocation_IncompleteIsNoOp(t *testing.T) {
	original := Position{Quantity: Q(10), AvgCost: BRL(100)}

	testCases := []struct {
		name  string
		alloc Allocation
	}{
		{
			name:  "price without quantity",
			alloc: Allocation{AssetID: "petr4", Class: Acao, UnitPrice: priceOf(50)},
		},
		{
			name:  "quantity without price",
			alloc: Allocation{AssetID: "petr4", Class: Acao, UnitQuantity: qtyOf(5)},
		},
		{
			name:  "value-based without amount",
			alloc: Allocation{AssetID: "btc", Class: Cripto},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ApplyAllocation(original, tc.alloc)
			if got != original {
				t.Errorf("ApplyAllocation() = %+v, want the position unchanged", got)
			}
			if !tc.alloc.Value().IsZero() {
				t.Errorf("Value() = %v, want zero", tc.alloc.Value())
			}
		})
	}
}

func TestPosition_MarketValue(t *testing.T) {
	unit := Position{Quantity: Q(20), AvgCost: BRL(150)}
	if got := unit.MarketValue(Acao); !got.Equal(BRL(3000)) {
		t.Errorf("unit MarketValue = %v, want %v", got, BRL(3000))
	}

	value := Position{Value: BRL(750), CostBasis: BRL(750)}
	if got := value.MarketValue(Cripto); !got.Equal(BRL(750)) {
		t.Errorf("value MarketValue = %v, want %v", got, BRL(750))
	}
}
