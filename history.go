package carteira

import (
	"maps"
	"slices"
)

// MonthlySnapshot is the portfolio's valuation at the end of one calendar
// month, bucketed by asset class. Snapshots are derived on demand and never
// persisted: the series is always a full recomputation of history.
type MonthlySnapshot struct {
	Month  MonthKey
	Totals map[AssetClass]Money
	Total  Money
}

// Label returns the snapshot's month in the "Jan/24" display style.
func (s MonthlySnapshot) Label() string { return s.Month.Label() }

// holding is one asset's rolling state during replay. The class is taken from
// the allocations as they are applied, so history keeps valuing under the
// class it was recorded with even if the asset was later re-categorized.
type holding struct {
	class AssetClass
	pos   Position
}

// BuildMonthlySeries replays the full contribution history in chronological
// order and returns one snapshot per calendar month that contains at least
// one contribution, in ascending order.
//
// A month's state starts as a copy of the most recent prior month's ending
// state (carry-forward), or as zero positions for every known asset if it is
// the first month processed. Months without contributions are inherited from
// but never emitted. An allocation referencing an asset absent from the state
// (deleted after the round was recorded) is skipped silently.
func BuildMonthlySeries(assets []Asset, contributions []Contribution) []MonthlySnapshot {
	if len(contributions) == 0 {
		return nil
	}

	// Chronological order, stable: rounds sharing a date keep their input order.
	ordered := slices.Clone(contributions)
	slices.SortStableFunc(ordered, func(a, b Contribution) int {
		return a.Date.Compare(b.Date)
	})

	months := make(map[MonthKey]map[string]holding)
	for _, c := range ordered {
		key := c.Date.Key()
		state, ok := months[key]
		if !ok {
			state = initialState(months, key, assets)
		}
		for _, a := range c.Allocations {
			h, tracked := state[a.AssetID]
			if !tracked {
				continue
			}
			h.class = a.Class
			h.pos = ApplyAllocation(h.pos, a)
			state[a.AssetID] = h
		}
		months[key] = state
	}

	keys := slices.SortedFunc(maps.Keys(months), MonthKey.Compare)
	series := make([]MonthlySnapshot, 0, len(keys))
	for _, key := range keys {
		series = append(series, snapshotOf(key, months[key]))
	}
	return series
}

// initialState builds the working state for a month seen for the first time:
// a copy of the closest prior month if any, zero positions for all known
// assets otherwise. The copy must be deep enough that applying this month's
// allocations cannot alias into a stored prior month; holdings are plain
// values, so copying the map entries is sufficient.
func initialState(months map[MonthKey]map[string]holding, key MonthKey, assets []Asset) map[string]holding {
	var prior MonthKey
	found := false
	for k := range months {
		if !k.Before(key) {
			continue
		}
		if !found || prior.Before(k) {
			prior, found = k, true
		}
	}
	if found {
		return maps.Clone(months[prior])
	}
	state := make(map[string]holding, len(assets))
	for _, a := range assets {
		state[a.ID] = holding{class: a.Class}
	}
	return state
}

// snapshotOf totals one month's ending state per class.
func snapshotOf(key MonthKey, state map[string]holding) MonthlySnapshot {
	snap := MonthlySnapshot{
		Month:  key,
		Totals: make(map[AssetClass]Money, 5),
		Total:  M(0, CurrencyBRL),
	}
	for _, class := range AssetClasses() {
		snap.Totals[class] = M(0, CurrencyBRL)
	}
	for _, h := range state {
		value := h.pos.MarketValue(h.class)
		snap.Totals[h.class] = snap.Totals[h.class].Add(value)
		snap.Total = snap.Total.Add(value)
	}
	return snap
}
