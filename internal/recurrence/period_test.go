package recurrence

import (
	"reflect"
	"testing"
	"time"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		name       string
		periodType string
		value      int
		days       string
		want       Period
	}{
		{"daily", "daily", 2, "", Daily{Every: 2}},
		{"daily default value", "daily", 0, "", Daily{Every: 1}},
		{"weekly plain", "weekly", 3, "", Weekly{Every: 3}},
		{
			"weekly with days", "weekly", 1, "monday,wednesday",
			Weekly{Every: 1, Days: []time.Weekday{time.Monday, time.Wednesday}},
		},
		{
			"weekly days trimmed and deduped", "Weekly", 1, " Friday, friday ,nonsense",
			Weekly{Every: 1, Days: []time.Weekday{time.Friday}},
		},
		{"monthly", "monthly", 1, "", Monthly{Every: 1}},
		{"yearly negative value", "yearly", -4, "", Yearly{Every: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePeriod(tt.periodType, tt.value, tt.days)
			if err != nil {
				t.Fatalf("ParsePeriod: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ParsePeriod = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParsePeriodUnknownType(t *testing.T) {
	if _, err := ParsePeriod("fortnightly", 1, ""); err == nil {
		t.Fatalf("expected an error for an unknown period type")
	}
}

func TestParsePeriodOnlyInvalidDays(t *testing.T) {
	// Garbage day names degrade to a plain weekly cadence.
	got, err := ParsePeriod("weekly", 1, "someday,never")
	if err != nil {
		t.Fatalf("ParsePeriod: %v", err)
	}
	w, ok := got.(Weekly)
	if !ok {
		t.Fatalf("ParsePeriod = %#v, want Weekly", got)
	}
	if len(w.Days) != 0 {
		t.Fatalf("unexpected days %v", w.Days)
	}
}
