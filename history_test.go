package carteira

import (
	"testing"
	"time"
)

// round builds a recorded contribution for replay tests.
func round(id string, on Date, allocations ...Allocation) Contribution {
	return Contribution{
		ID:          id,
		Date:        on,
		Executed:    TotalOf(allocations),
		Allocations: allocations,
	}
}

func asset(id string, class AssetClass) Asset {
	return Asset{ID: id, Name: id, Class: class}
}

func TestBuildMonthlySeries_Empty(t *testing.T) {
	if got := BuildMonthlySeries([]Asset{asset("petr4", Acao)}, nil); got != nil {
		t.Errorf("BuildMonthlySeries() = %v, want nil", got)
	}
}

func TestBuildMonthlySeries_SingleContribution(t *testing.T) {
	assets := []Asset{asset("petr4", Acao)}
	contributions := []Contribution{
		round("r1", NewDate(2024, time.January, 15), unitAlloc("petr4", Acao, 10, 50)),
	}

	series := BuildMonthlySeries(assets, contributions)
	if len(series) != 1 {
		t.Fatalf("len(series) = %d, want 1", len(series))
	}
	snap := series[0]
	if snap.Month != (MonthKey{Year: 2024, Month: time.January}) {
		t.Errorf("Month = %v, want 2024 January", snap.Month)
	}
	if snap.Label() != "Jan/24" {
		t.Errorf("Label() = %q, want %q", snap.Label(), "Jan/24")
	}
	if !snap.Totals[Acao].Equal(BRL(500)) {
		t.Errorf("Totals[Acao] = %v, want %v", snap.Totals[Acao], BRL(500))
	}
	if !snap.Total.Equal(BRL(500)) {
		t.Errorf("Total = %v, want %v", snap.Total, BRL(500))
	}
}

func TestBuildMonthlySeries_GapMonthsCarryForward(t *testing.T) {
	assets := []Asset{asset("petr4", Acao)}
	contributions := []Contribution{
		round("jan", NewDate(2024, time.January, 10), unitAlloc("petr4", Acao, 10, 50)),
		round("mar", NewDate(2024, time.March, 10), unitAlloc("petr4", Acao, 10, 70)),
	}

	series := BuildMonthlySeries(assets, contributions)
	if len(series) != 2 {
		t.Fatalf("len(series) = %d, want 2 (no snapshot for the empty February)", len(series))
	}

	jan, mar := series[0], series[1]
	if jan.Month.Month != time.January || mar.Month.Month != time.March {
		t.Fatalf("months = %v, %v; want January, March", jan.Month, mar.Month)
	}
	if !jan.Total.Equal(BRL(500)) {
		t.Errorf("January total = %v, want %v", jan.Total, BRL(500))
	}
	// January's 10@50 carried forward, plus March's 10@70: 20 units at avg 60.
	if !mar.Total.Equal(BRL(1200)) {
		t.Errorf("March total = %v, want %v", mar.Total, BRL(1200))
	}
}

func TestBuildMonthlySeries_SameMonthAccumulates(t *testing.T) {
	assets := []Asset{asset("btc", Cripto)}
	contributions := []Contribution{
		round("r1", NewDate(2024, time.May, 5), valueAlloc("btc", Cripto, 300, CurrencyBRL)),
		round("r2", NewDate(2024, time.May, 25), valueAlloc("btc", Cripto, 100, CurrencyUSD)),
	}

	series := BuildMonthlySeries(assets, contributions)
	if len(series) != 1 {
		t.Fatalf("len(series) = %d, want 1", len(series))
	}
	// 300 BRL + 100 USD at the fixed 5.0 rate.
	if !series[0].Totals[Cripto].Equal(BRL(800)) {
		t.Errorf("Totals[Cripto] = %v, want %v", series[0].Totals[Cripto], BRL(800))
	}
}

func TestBuildMonthlySeries_ClassIsolation(t *testing.T) {
	assets := []Asset{asset("petr4", Acao), asset("btc", Cripto)}
	contributions := []Contribution{
		round("jan", NewDate(2024, time.January, 10), unitAlloc("petr4", Acao, 10, 50)),
		round("feb", NewDate(2024, time.February, 10), unitAlloc("petr4", Acao, 10, 50)),
	}

	for _, snap := range BuildMonthlySeries(assets, contributions) {
		for _, class := range []AssetClass{FII, ETFBR, ETFGlobal, Cripto} {
			if !snap.Totals[class].IsZero() {
				t.Errorf("%s Totals[%s] = %v, want zero", snap.Label(), class, snap.Totals[class])
			}
		}
	}
}

func TestBuildMonthlySeries_ChronologicalAcrossYears(t *testing.T) {
	// Includes a month pair ("2023-12" vs "2024-2" vs "2024-10") that a
	// lexicographic key sort would order wrongly.
	assets := []Asset{asset("petr4", Acao)}
	contributions := []Contribution{
		round("c", NewDate(2024, time.October, 1), unitAlloc("petr4", Acao, 1, 10)),
		round("a", NewDate(2023, time.December, 1), unitAlloc("petr4", Acao, 1, 10)),
		round("b", NewDate(2024, time.February, 1), unitAlloc("petr4", Acao, 1, 10)),
	}

	series := BuildMonthlySeries(assets, contributions)
	want := []MonthKey{
		{Year: 2023, Month: time.December},
		{Year: 2024, Month: time.February},
		{Year: 2024, Month: time.October},
	}
	if len(series) != len(want) {
		t.Fatalf("len(series) = %d, want %d", len(series), len(want))
	}
	for i, snap := range series {
		if snap.Month != want[i] {
			t.Errorf("series[%d].Month = %v, want %v", i, snap.Month, want[i])
		}
	}
	// Each month carries the prior position forward: 10, 20, 30.
	for i, total := range []float64{10, 20, 30} {
		if !series[i].Total.Equal(BRL(total)) {
			t.Errorf("series[%d].Total = %v, want %v", i, series[i].Total, BRL(total))
		}
	}
}

func TestBuildMonthlySeries_SkipsDeletedAssets(t *testing.T) {
	// The contribution references an asset that no longer exists; its line is
	// skipped silently instead of crashing the replay.
	assets := []Asset{asset("petr4", Acao)}
	contributions := []Contribution{
		round("r1", NewDate(2024, time.January, 10),
			unitAlloc("petr4", Acao, 10, 50),
			unitAlloc("gone", Acao, 99, 99),
		),
	}

	series := BuildMonthlySeries(assets, contributions)
	if len(series) != 1 {
		t.Fatalf("len(series) = %d, want 1", len(series))
	}
	if !series[0].Total.Equal(BRL(500)) {
		t.Errorf("Total = %v, want %v", series[0].Total, BRL(500))
	}
}

func TestBuildMonthlySeries_DeletionIsNotRetroactive(t *testing.T) {
	assets := []Asset{asset("petr4", Acao)}
	jan := round("jan", NewDate(2024, time.January, 10), unitAlloc("petr4", Acao, 10, 50))
	feb := round("feb", NewDate(2024, time.February, 10), unitAlloc("petr4", Acao, 10, 50))

	full := BuildMonthlySeries(assets, []Contribution{jan, feb})
	if len(full) != 2 || !full[1].Total.Equal(BRL(1000)) {
		t.Fatalf("full series = %+v, want February total %v", full, BRL(1000))
	}

	// Deleting February and replaying removes its effect entirely; replay is
	// always a full recomputation, never an incremental update.
	after := BuildMonthlySeries(assets, []Contribution{jan})
	if len(after) != 1 {
		t.Fatalf("len(after) = %d, want 1", len(after))
	}
	if !after[0].Total.Equal(BRL(500)) {
		t.Errorf("after[0].Total = %v, want %v", after[0].Total, BRL(500))
	}
}

func TestBuildMonthlySeries_UsesRecordedClass(t *testing.T) {
	// The asset was re-categorized after the round was recorded: replay keeps
	// valuing the history under the class recorded on each line.
	assets := []Asset{asset("vnq", ETFGlobal)}
	contributions := []Contribution{
		round("r1", NewDate(2024, time.January, 10), valueAlloc("vnq", Cripto, 100, CurrencyBRL)),
	}

	series := BuildMonthlySeries(assets, contributions)
	if len(series) != 1 {
		t.Fatalf("len(series) = %d, want 1", len(series))
	}
	if !series[0].Totals[Cripto].Equal(BRL(100)) {
		t.Errorf("Totals[Cripto] = %v, want %v", series[0].Totals[Cripto], BRL(100))
	}
	if !series[0].Totals[ETFGlobal].IsZero() {
		t.Errorf("Totals[ETFGlobal] = %v, want zero", series[0].Totals[ETFGlobal])
	}
}

func TestBuildMonthlySeries_EarlierSnapshotsUnaffectedByLaterMonths(t *testing.T) {
	// Guards against aliasing between a month's working copy and the stored
	// prior month state.
	assets := []Asset{asset("btc", Cripto)}
	contributions := []Contribution{
		round("r1", NewDate(2024, time.January, 10), valueAlloc("btc", Cripto, 100, CurrencyBRL)),
		round("r2", NewDate(2024, time.February, 10), valueAlloc("btc", Cripto, 100, CurrencyBRL)),
		round("r3", NewDate(2024, time.March, 10), valueAlloc("btc", Cripto, 100, CurrencyBRL)),
	}

	series := BuildMonthlySeries(assets, contributions)
	for i, total := range []float64{100, 200, 300} {
		if !series[i].Total.Equal(BRL(total)) {
			t.Errorf("series[%d].Total = %v, want %v", i, series[i].Total, BRL(total))
		}
	}
}
