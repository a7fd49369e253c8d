package cmd

import (
	"strings"
	"testing"

	"github.com/psarmento/carteira"
)

func testAssets() []carteira.Asset {
	return []carteira.Asset{
		{ID: "a1", Name: "PETR4", Class: carteira.Acao},
		{ID: "a2", Name: "IVVB11", Class: carteira.ETFBR},
		{ID: "a3", Name: "VWCE", Class: carteira.ETFGlobal},
		{ID: "a4", Name: "Bitcoin", Class: carteira.Cripto},
	}
}

func TestParseAllocation_UnitBased(t *testing.T) {
	alloc, err := parseAllocation(testAssets(), "PETR4=10x32.50")
	if err != nil {
		t.Fatalf("parseAllocation() failed: %v", err)
	}
	if alloc.AssetID != "a1" || alloc.AssetName != "PETR4" || alloc.Class != carteira.Acao {
		t.Errorf("denormalized fields = %+v", alloc)
	}
	if alloc.UnitQuantity == nil || !alloc.UnitQuantity.Equal(carteira.Q(10)) {
		t.Errorf("quantity = %v, want 10", alloc.UnitQuantity)
	}
	if alloc.UnitPrice == nil || !alloc.UnitPrice.Equal(carteira.M(32.5, carteira.CurrencyBRL)) {
		t.Errorf("price = %v, want R$32,50", alloc.UnitPrice)
	}
	if alloc.Invested != nil {
		t.Errorf("invested = %v, want nil on a unit line", alloc.Invested)
	}
}

func TestParseAllocation_ValueBased(t *testing.T) {
	tests := []struct {
		arg      string
		currency string
		amount   float64
	}{
		{"VWCE=500", carteira.CurrencyBRL, 500},
		{"VWCE=122.5usd", carteira.CurrencyUSD, 122.5},
		{"Bitcoin=100USD", carteira.CurrencyUSD, 100},
	}
	for _, tc := range tests {
		t.Run(tc.arg, func(t *testing.T) {
			alloc, err := parseAllocation(testAssets(), tc.arg)
			if err != nil {
				t.Fatalf("parseAllocation() failed: %v", err)
			}
			if alloc.Invested == nil {
				t.Fatal("invested is nil")
			}
			if got := alloc.Invested.Currency(); got != tc.currency {
				t.Errorf("currency = %q, want %q", got, tc.currency)
			}
			if !alloc.Invested.Equal(carteira.M(tc.amount, tc.currency)) {
				t.Errorf("amount = %s, want %v", alloc.Invested, tc.amount)
			}
			if alloc.UnitQuantity != nil || alloc.UnitPrice != nil {
				t.Errorf("unit fields should be nil on a value line: %+v", alloc)
			}
		})
	}
}

func TestParseAllocation_ResolvesByPrefix(t *testing.T) {
	alloc, err := parseAllocation(testAssets(), "bit=250")
	if err != nil {
		t.Fatalf("parseAllocation() failed: %v", err)
	}
	if alloc.AssetID != "a4" {
		t.Errorf("resolved %q, want Bitcoin", alloc.AssetID)
	}
}

func TestParseAllocation_Errors(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want string
	}{
		{"missing separator", "PETR4", "expected <asset>=<spec>"},
		{"unknown asset", "XPTO=100", "no asset matches"},
		{"unit spec on value asset", "Bitcoin=2x50000", "use <asset>=<amount>"},
		{"value spec on unit asset", "PETR4=500", "use <asset>=<qty>x<price>"},
		{"bad quantity", "PETR4=axb", "invalid quantity"},
		{"bad price", "PETR4=10x", "invalid price"},
		{"bad amount", "VWCE=muito", "invalid amount"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseAllocation(testAssets(), tc.arg)
			if err == nil {
				t.Fatalf("parseAllocation(%q) should fail", tc.arg)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("err = %v, want it to mention %q", err, tc.want)
			}
		})
	}
}
