package carteira

// BRL is a helper for tests to create reais money from const
func BRL(v float64) Money { return M(v, CurrencyBRL) }

// USD is a helper for tests to create dollar money from const
func USD(v float64) Money { return M(v, CurrencyUSD) }

// priceOf builds the optional unit-price field of an allocation.
func priceOf(v float64) *Money {
	m := BRL(v)
	return &m
}

// qtyOf builds the optional unit-quantity field of an allocation.
func qtyOf(v float64) *Quantity {
	q := Q(v)
	return &q
}

// investedOf builds the optional invested-amount field of an allocation.
func investedOf(v float64, currency string) *Money {
	m := M(v, currency)
	return &m
}

// unitAlloc builds a complete unit-based allocation line.
func unitAlloc(assetID string, class AssetClass, qty, price float64) Allocation {
	return Allocation{
		AssetID:      assetID,
		AssetName:    assetID,
		Class:        class,
		UnitPrice:    priceOf(price),
		UnitQuantity: qtyOf(qty),
	}
}

// valueAlloc builds a complete value-based allocation line.
func valueAlloc(assetID string, class AssetClass, amount float64, currency string) Allocation {
	return Allocation{
		AssetID:   assetID,
		AssetName: assetID,
		Class:     class,
		Invested:  investedOf(amount, currency),
	}
}
