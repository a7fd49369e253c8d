package carteira

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AssetClass is the category of a tracked asset. The class decides the
// accounting model: unit-based classes track (quantity, average cost),
// value-based classes track an accumulated monetary amount.
type AssetClass string

const (
	Acao      AssetClass = "ACAO"   // Brazilian stocks
	FII       AssetClass = "FII"    // real-estate funds
	ETFBR     AssetClass = "ETF_BR" // local exchange-traded funds
	ETFGlobal AssetClass = "ETF_GB" // foreign exchange-traded funds
	Cripto    AssetClass = "CRIPTO" // crypto-assets
)

// AssetClasses returns all classes in canonical display order.
func AssetClasses() []AssetClass {
	return []AssetClass{Acao, FII, ETFBR, ETFGlobal, Cripto}
}

// IsUnitBased reports whether assets of this class are tracked as
// (quantity, average cost per unit).
func (c AssetClass) IsUnitBased() bool {
	return c == Acao || c == FII || c == ETFBR
}

// IsValueBased reports whether assets of this class are tracked as an
// accumulated monetary amount.
func (c AssetClass) IsValueBased() bool {
	return c == ETFGlobal || c == Cripto
}

func (c AssetClass) String() string { return string(c) }

// Label returns the display label for the class.
func (c AssetClass) Label() string {
	switch c {
	case Acao:
		return "Ação"
	case FII:
		return "FIIs"
	case ETFBR:
		return "ETF-BR"
	case ETFGlobal:
		return "ETF-GB"
	case Cripto:
		return "Cripto"
	default:
		return string(c)
	}
}

// ParseAssetClass parses a class from its code or display label, case-insensitively.
func ParseAssetClass(s string) (AssetClass, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ACAO", "AÇÃO", "ACOES", "AÇÕES":
		return Acao, nil
	case "FII", "FIIS":
		return FII, nil
	case "ETF_BR", "ETF-BR", "ETFBR":
		return ETFBR, nil
	case "ETF_GB", "ETF-GB", "ETFGB":
		return ETFGlobal, nil
	case "CRIPTO", "CRYPTO":
		return Cripto, nil
	default:
		return "", fmt.Errorf("unknown asset class: %q", s)
	}
}

// Asset is one tracked holding. Its position is only ever mutated by applying
// contribution allocations; deleting an asset does not rewrite the
// contribution history that references it.
type Asset struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Class     AssetClass `json:"class"`
	Position  Position   `json:"position"`
	CreatedAt time.Time  `json:"createdAt"`
}

// NewAsset creates an asset with a fresh identity and a zero position.
func NewAsset(name string, class AssetClass) (Asset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Asset{}, errors.New("asset name cannot be empty")
	}
	if !class.IsUnitBased() && !class.IsValueBased() {
		return Asset{}, fmt.Errorf("unknown asset class: %q", class)
	}
	return Asset{
		ID:        uuid.NewString(),
		Name:      name,
		Class:     class,
		CreatedAt: time.Now(),
	}, nil
}

// MarketValue returns the current value of the asset under its class's
// accounting model. There is no live pricing: for unit-based assets the
// "current value" is the cost basis, quantity times average cost.
func (a Asset) MarketValue() Money {
	return a.Position.MarketValue(a.Class)
}

// ResolveAsset finds an asset by id, exact name (case-insensitive), or a
// unique prefix of either. It fails when the reference is unknown or ambiguous.
func ResolveAsset(assets []Asset, ref string) (Asset, error) {
	lowered := strings.ToLower(strings.TrimSpace(ref))
	if lowered == "" {
		return Asset{}, errors.New("empty asset reference")
	}
	var matches []Asset
	for _, a := range assets {
		id, name := strings.ToLower(a.ID), strings.ToLower(a.Name)
		if id == lowered || name == lowered {
			return a, nil
		}
		if strings.HasPrefix(id, lowered) || strings.HasPrefix(name, lowered) {
			matches = append(matches, a)
		}
	}
	switch len(matches) {
	case 0:
		return Asset{}, fmt.Errorf("no asset matches %q", ref)
	case 1:
		return matches[0], nil
	default:
		names := make([]string, len(matches))
		for i, a := range matches {
			names[i] = a.Name
		}
		return Asset{}, fmt.Errorf("asset reference %q is ambiguous: %s", ref, strings.Join(names, ", "))
	}
}
