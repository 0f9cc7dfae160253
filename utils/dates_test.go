// utils/dates_test.go
package utils

import (
	"testing"
	"time"

	"eventhub-backend/apperr"
)

func TestNormalizeDate(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)

	cases := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			"mid-day utc",
			time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC),
			time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"already midnight",
			time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"zoned instant crossing the utc day boundary",
			time.Date(2024, 7, 1, 3, 0, 0, 0, ist), // 2024-06-30T21:30Z
			time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeDate(tc.in)
			if !got.Equal(tc.want) {
				t.Fatalf("NormalizeDate(%v) = %v, want %v", tc.in, got, tc.want)
			}
			if !NormalizeDate(got).Equal(got) {
				t.Fatalf("not idempotent: %v", got)
			}
		})
	}
}

func TestDayRange(t *testing.T) {
	start, end := DayRange(time.Date(2024, 7, 1, 15, 30, 0, 0, time.UTC))
	if !start.Equal(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", start)
	}
	if !end.Equal(time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v", end)
	}
}

func TestParseDate(t *testing.T) {
	if _, err := ParseDate("2024-07-01"); err != nil {
		t.Errorf("calendar date rejected: %v", err)
	}
	if _, err := ParseDate("2024-07-01T10:00:00.000Z"); err != nil {
		t.Errorf("rfc3339 rejected: %v", err)
	}

	for _, bad := range []string{"", "tomorrow", "01/07/2024", "2024-13-40"} {
		if _, err := ParseDate(bad); !apperr.IsKind(err, apperr.Validation) {
			t.Errorf("ParseDate(%q): expected Validation, got %v", bad, err)
		}
	}
}
