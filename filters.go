package carteira

import (
	"fmt"
	"slices"
	"strings"
)

// AssetSort selects the key used to order asset listings.
type AssetSort int

const (
	AssetsByName AssetSort = iota
	AssetsByValue
	AssetsByCreation
)

// ParseAssetSort parses a sort key name ("name", "value", "created").
func ParseAssetSort(s string) (AssetSort, error) {
	switch strings.ToLower(s) {
	case "name":
		return AssetsByName, nil
	case "value":
		return AssetsByValue, nil
	case "created":
		return AssetsByCreation, nil
	default:
		return 0, fmt.Errorf("unknown asset sort key: %q", s)
	}
}

// FilterAssetsByName returns the assets whose name contains the search term,
// case-insensitively. A blank term matches everything.
func FilterAssetsByName(assets []Asset, term string) []Asset {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return assets
	}
	var out []Asset
	for _, a := range assets {
		if strings.Contains(strings.ToLower(a.Name), term) {
			out = append(out, a)
		}
	}
	return out
}

// FilterAssetsByClass returns the assets of the given class. The empty class
// matches everything.
func FilterAssetsByClass(assets []Asset, class AssetClass) []Asset {
	if class == "" {
		return assets
	}
	var out []Asset
	for _, a := range assets {
		if a.Class == class {
			out = append(out, a)
		}
	}
	return out
}

// SortAssets returns a sorted copy of the assets; the input is left untouched.
func SortAssets(assets []Asset, by AssetSort, descending bool) []Asset {
	sorted := slices.Clone(assets)
	slices.SortStableFunc(sorted, func(a, b Asset) int {
		var c int
		switch by {
		case AssetsByValue:
			c = a.MarketValue().Amount().Cmp(b.MarketValue().Amount())
		case AssetsByCreation:
			c = a.CreatedAt.Compare(b.CreatedAt)
		default:
			c = strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		}
		if descending {
			c = -c
		}
		return c
	})
	return sorted
}

// ContributionSort selects the key used to order contribution listings.
type ContributionSort int

const (
	ContributionsByDate ContributionSort = iota
	ContributionsByExecuted
)

// ParseContributionSort parses a sort key name ("date", "executed").
func ParseContributionSort(s string) (ContributionSort, error) {
	switch strings.ToLower(s) {
	case "date":
		return ContributionsByDate, nil
	case "executed":
		return ContributionsByExecuted, nil
	default:
		return 0, fmt.Errorf("unknown contribution sort key: %q", s)
	}
}

// FilterContributionsByRange keeps the contributions dated within [from, to],
// both inclusive. A zero bound leaves that side open.
func FilterContributionsByRange(list []Contribution, from, to Date) []Contribution {
	if from.IsZero() && to.IsZero() {
		return list
	}
	var out []Contribution
	for _, c := range list {
		if !from.IsZero() && c.Date.Before(from) {
			continue
		}
		if !to.IsZero() && c.Date.After(to) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// SortContributions returns a sorted copy of the contributions; the input is
// left untouched.
func SortContributions(list []Contribution, by ContributionSort, descending bool) []Contribution {
	sorted := slices.Clone(list)
	slices.SortStableFunc(sorted, func(a, b Contribution) int {
		var c int
		switch by {
		case ContributionsByExecuted:
			c = a.Executed.Amount().Cmp(b.Executed.Amount())
		default:
			c = a.Date.Compare(b.Date)
		}
		if descending {
			c = -c
		}
		return c
	})
	return sorted
}
