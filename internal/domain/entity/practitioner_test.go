package entity

import (
	"testing"
	"time"
)

func TestGenerateSlotCatalogue_ShapeAndTimes(t *testing.T) {
	start := time.Date(2025, 1, 6, 13, 45, 0, 0, time.Local)

	slots := GenerateSlotCatalogue(start)

	if len(slots) != 28 {
		t.Fatalf("expected 28 slots, got %d", len(slots))
	}

	wantHours := []int{9, 11, 14, 16}
	for d := 0; d < 7; d++ {
		for i, hour := range wantHours {
			got := slots[d*len(wantHours)+i]
			wantDay := start.AddDate(0, 0, d)
			if got.Year() != wantDay.Year() || got.Month() != wantDay.Month() || got.Day() != wantDay.Day() {
				t.Fatalf("day %d slot %d: expected date %v, got %v", d, i, wantDay, got)
			}
			if got.Hour() != hour || got.Minute() != 0 {
				t.Fatalf("day %d slot %d: expected %02d:00, got %02d:%02d", d, i, hour, got.Hour(), got.Minute())
			}
		}
	}
}

func TestGenerateSlotCatalogue_StartsOnGivenDay(t *testing.T) {
	// The generation start time's clock must not shift slot times.
	late := time.Date(2025, 1, 6, 23, 59, 0, 0, time.Local)

	slots := GenerateSlotCatalogue(late)

	first := slots[0]
	if first.Day() != 6 || first.Hour() != 9 {
		t.Fatalf("expected first slot on day 6 at 09:00, got %v", first)
	}
}
