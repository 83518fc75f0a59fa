package stats

import (
	"testing"

	"github.com/emrebasar/moodlog/internal/models"
)

func TestBuildReport_Empty(t *testing.T) {
	start := testNow.AddDate(0, 0, -29)
	r := BuildReport(nil, start, testNow)

	if r.PeriodStart != start.Format(models.DateLayout) || r.PeriodEnd != testNow.Format(models.DateLayout) {
		t.Errorf("period = %s..%s, want %s..%s", r.PeriodStart, r.PeriodEnd,
			start.Format(models.DateLayout), testNow.Format(models.DateLayout))
	}
	if r.TotalEntries != 0 || r.AverageMood != 0 {
		t.Errorf("TotalEntries/AverageMood = %d/%v, want 0/0", r.TotalEntries, r.AverageMood)
	}
	if r.MostCommonMood != NoData {
		t.Errorf("MostCommonMood = %q, want %q", r.MostCommonMood, NoData)
	}
	if r.BestDay != "" || r.WorstDay != "" {
		t.Errorf("BestDay/WorstDay = %q/%q, want empty", r.BestDay, r.WorstDay)
	}
	if r.Trend != "stable" {
		t.Errorf("Trend = %q, want stable", r.Trend)
	}
}

func TestBuildReport_BestWorstDays(t *testing.T) {
	entries := []models.MoodEntry{
		entry(t, "2026-03-10", 3, nil),
		entry(t, "2026-03-11", 5, nil),
		entry(t, "2026-03-12", 1, nil),
		entry(t, "2026-03-13", 5, nil), // same score as the 11th; earlier date wins
	}
	start, _ := models.ParseDate("2026-03-10")
	end, _ := models.ParseDate("2026-03-13")

	r := BuildReport(entries, start, end)
	if r.BestDay != "2026-03-11" {
		t.Errorf("BestDay = %q, want 2026-03-11", r.BestDay)
	}
	if r.WorstDay != "2026-03-12" {
		t.Errorf("WorstDay = %q, want 2026-03-12", r.WorstDay)
	}
	if r.TotalEntries != 4 {
		t.Errorf("TotalEntries = %d, want 4", r.TotalEntries)
	}
	if r.AverageMood != 3.5 {
		t.Errorf("AverageMood = %v, want 3.5", r.AverageMood)
	}
	if r.MostCommonMood != "Excellent" {
		t.Errorf("MostCommonMood = %q, want Excellent", r.MostCommonMood)
	}
}
