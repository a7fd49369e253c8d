package carteira

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2024-01-15", want: NewDate(2024, time.January, 15)},
		{in: "2024-1-5", want: NewDate(2024, time.January, 5)},
		{in: "not-a-date", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDate(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) expected an error, got %v", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) returned unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDate_String(t *testing.T) {
	d := NewDate(2024, time.March, 5)
	if d.String() != "2024-03-05" {
		t.Errorf("String() = %q, want %q", d.String(), "2024-03-05")
	}
}

func TestDate_Key(t *testing.T) {
	d := NewDate(2024, time.July, 31)
	if d.Key() != (MonthKey{Year: 2024, Month: time.July}) {
		t.Errorf("Key() = %v, want 2024 July", d.Key())
	}
}

func TestMonthKey_Label(t *testing.T) {
	testCases := []struct {
		key  MonthKey
		want string
	}{
		{MonthKey{2024, time.January}, "Jan/24"},
		{MonthKey{2023, time.December}, "Dez/23"},
		{MonthKey{2025, time.February}, "Fev/25"},
		{MonthKey{2024, time.August}, "Ago/24"},
	}
	for _, tc := range testCases {
		if got := tc.key.Label(); got != tc.want {
			t.Errorf("Label(%v) = %q, want %q", tc.key, got, tc.want)
		}
	}
}

func TestMonthKey_Compare(t *testing.T) {
	dec23 := MonthKey{2023, time.December}
	feb24 := MonthKey{2024, time.February}
	oct24 := MonthKey{2024, time.October}

	if dec23.Compare(feb24) != -1 || feb24.Compare(dec23) != 1 {
		t.Error("December 2023 should order before February 2024")
	}
	// A string comparison of "2024-2" and "2024-10" would get this backwards.
	if feb24.Compare(oct24) != -1 {
		t.Error("February 2024 should order before October 2024")
	}
	if oct24.Compare(oct24) != 0 {
		t.Error("a month should compare equal to itself")
	}
	if !dec23.Before(feb24) || feb24.Before(dec23) {
		t.Error("Before() disagrees with Compare()")
	}
}
