package carteira

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// The browser predecessor of this tool kept its collections in localStorage
// under these keys; its backup export is a single JSON object holding both.
// Import/Export speak that exact dialect so users can migrate either way.
const (
	backupAssetsKey        = "s2-assets"
	backupContributionsKey = "s2-transactions"
)

type backupAsset struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	Quantity     float64 `json:"quantity"`
	Value        float64 `json:"value"`
	AveragePrice float64 `json:"averagePrice"`
	CreatedAt    string  `json:"createdAt"`
}

type backupItem struct {
	AssetID       string   `json:"assetId"`
	AssetName     string   `json:"assetName"`
	AssetType     string   `json:"assetType"`
	Price         *float64 `json:"price,omitempty"`
	Quantity      *float64 `json:"quantity,omitempty"`
	InvestedValue *float64 `json:"investedValue,omitempty"`
	Currency      string   `json:"currency,omitempty"`
}

type backupInvestment struct {
	ID            string       `json:"id"`
	Date          string       `json:"date"`
	PlannedValue  float64      `json:"plannedValue"`
	ExecutedValue float64      `json:"executedValue"`
	Difference    float64      `json:"difference"`
	Items         []backupItem `json:"items"`
	CreatedAt     string       `json:"createdAt"`
}

// ImportBackup reads a backup document exported by the browser app and
// converts it into native collections.
func ImportBackup(r io.Reader) ([]Asset, []Contribution, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("could not decode backup document: %w", err)
	}

	var rawAssets []backupAsset
	if err := extract(doc, backupAssetsKey, &rawAssets); err != nil {
		return nil, nil, err
	}
	var rawInvestments []backupInvestment
	if err := extract(doc, backupContributionsKey, &rawInvestments); err != nil {
		return nil, nil, err
	}

	assets := make([]Asset, 0, len(rawAssets))
	for _, raw := range rawAssets {
		a, err := raw.toAsset()
		if err != nil {
			return nil, nil, fmt.Errorf("invalid asset %q in backup: %w", raw.Name, err)
		}
		assets = append(assets, a)
	}
	contributions := make([]Contribution, 0, len(rawInvestments))
	for _, raw := range rawInvestments {
		c, err := raw.toContribution()
		if err != nil {
			return nil, nil, fmt.Errorf("invalid contribution %q in backup: %w", raw.ID, err)
		}
		contributions = append(contributions, c)
	}
	return assets, contributions, nil
}

// extract pulls one collection out of the backup document by key and decodes
// it into out.
func extract(doc any, key string, out any) error {
	path := fmt.Sprintf("$[%q]", key)
	val, err := jsonpath.Get(path, doc)
	if err != nil {
		return fmt.Errorf("backup document has no %q collection: %w", key, err)
	}
	raw, err := json.Marshal(val)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("malformed %q collection: %w", key, err)
	}
	return nil
}

func (b backupAsset) toAsset() (Asset, error) {
	class, err := ParseAssetClass(b.Type)
	if err != nil {
		return Asset{}, err
	}
	var pos Position
	if class.IsUnitBased() {
		pos.Quantity = Q(b.Quantity)
		pos.AvgCost = M(b.AveragePrice, CurrencyBRL)
	} else {
		// The browser app reused averagePrice as the accumulated cost basis
		// for value-based assets.
		pos.Value = M(b.Value, CurrencyBRL)
		pos.CostBasis = M(b.AveragePrice, CurrencyBRL)
	}
	return Asset{
		ID:        b.ID,
		Name:      b.Name,
		Class:     class,
		Position:  pos,
		CreatedAt: parseBackupTime(b.CreatedAt),
	}, nil
}

func (b backupInvestment) toContribution() (Contribution, error) {
	on, err := parseBackupDate(b.Date)
	if err != nil {
		return Contribution{}, err
	}
	allocations := make([]Allocation, 0, len(b.Items))
	for _, item := range b.Items {
		a, err := item.toAllocation()
		if err != nil {
			return Contribution{}, err
		}
		allocations = append(allocations, a)
	}
	// The executed amount is restored as exported, not recomputed: the backup
	// is a historical record, not a new round.
	return Contribution{
		ID:          b.ID,
		Date:        on,
		Planned:     M(b.PlannedValue, CurrencyBRL),
		Executed:    M(b.ExecutedValue, CurrencyBRL),
		Allocations: allocations,
		CreatedAt:   parseBackupTime(b.CreatedAt),
	}, nil
}

func (b backupItem) toAllocation() (Allocation, error) {
	class, err := ParseAssetClass(b.AssetType)
	if err != nil {
		return Allocation{}, err
	}
	a := Allocation{
		AssetID:   b.AssetID,
		AssetName: b.AssetName,
		Class:     class,
	}
	if b.Price != nil {
		price := M(*b.Price, CurrencyBRL)
		a.UnitPrice = &price
	}
	if b.Quantity != nil {
		qty := Q(*b.Quantity)
		a.UnitQuantity = &qty
	}
	if b.InvestedValue != nil {
		currency := b.Currency
		if currency == "" {
			currency = CurrencyBRL
		}
		invested := M(*b.InvestedValue, currency)
		a.Invested = &invested
	}
	return a, nil
}

// ExportBackup writes the collections in the browser app's backup dialect so
// the history can be taken back to the web version.
func ExportBackup(w io.Writer, assets []Asset, contributions []Contribution) error {
	rawAssets := make([]backupAsset, 0, len(assets))
	for _, a := range assets {
		rawAssets = append(rawAssets, backupAsset{
			ID:           a.ID,
			Name:         a.Name,
			Type:         string(a.Class),
			Quantity:     a.Position.Quantity.value.InexactFloat64(),
			Value:        a.Position.Value.Amount().InexactFloat64(),
			AveragePrice: backupAvgPrice(a),
			CreatedAt:    a.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	rawInvestments := make([]backupInvestment, 0, len(contributions))
	for _, c := range contributions {
		inv := backupInvestment{
			ID:            c.ID,
			Date:          c.Date.String(),
			PlannedValue:  c.Planned.Amount().InexactFloat64(),
			ExecutedValue: c.Executed.Amount().InexactFloat64(),
			Difference:    c.Variance().Amount().InexactFloat64(),
			CreatedAt:     c.CreatedAt.UTC().Format(time.RFC3339),
		}
		for _, al := range c.Allocations {
			item := backupItem{
				AssetID:   al.AssetID,
				AssetName: al.AssetName,
				AssetType: string(al.Class),
			}
			if al.UnitPrice != nil {
				v := al.UnitPrice.Amount().InexactFloat64()
				item.Price = &v
			}
			if al.UnitQuantity != nil {
				v := al.UnitQuantity.value.InexactFloat64()
				item.Quantity = &v
			}
			if al.Invested != nil {
				v := al.Invested.Amount().InexactFloat64()
				item.InvestedValue = &v
				item.Currency = al.Invested.Currency()
			}
			inv.Items = append(inv.Items, item)
		}
		rawInvestments = append(rawInvestments, inv)
	}

	doc := map[string]any{
		backupAssetsKey:        rawAssets,
		backupContributionsKey: rawInvestments,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func backupAvgPrice(a Asset) float64 {
	if a.Class.IsUnitBased() {
		return a.Position.AvgCost.Amount().InexactFloat64()
	}
	return a.Position.CostBasis.Amount().InexactFloat64()
}

func parseBackupDate(s string) (Date, error) {
	if len(s) >= len(DateFormat) {
		if d, err := ParseDate(s[:len(DateFormat)]); err == nil {
			return d, nil
		}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid backup date %q", s)
	}
	return NewDate(t.Date()), nil
}

func parseBackupTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
