package stats

import (
	"time"

	"github.com/emrebasar/moodlog/internal/models"
)

// Report is the shareable period summary.
type Report struct {
	PeriodStart    string  `json:"period_start"`
	PeriodEnd      string  `json:"period_end"`
	TotalEntries   int     `json:"total_entries"`
	AverageMood    float64 `json:"average_mood"`
	MostCommonMood string  `json:"most_common_mood"`
	BestDay        string  `json:"best_day"`
	WorstDay       string  `json:"worst_day"`
	Trend          string  `json:"trend"`
}

// BuildReport summarizes the entries of one period. Best and worst day are
// the dates of the highest and lowest mood score; the earliest date wins
// ties. Empty input yields the NoData sentinels.
func BuildReport(entries []models.MoodEntry, start, end time.Time) Report {
	r := Report{
		PeriodStart:    start.Format(models.DateLayout),
		PeriodEnd:      end.Format(models.DateLayout),
		MostCommonMood: NoData,
		Trend:          "stable",
	}
	if len(entries) == 0 {
		return r
	}

	best, worst := entries[0], entries[0]
	for _, e := range entries[1:] {
		if e.MoodScore > best.MoodScore || (e.MoodScore == best.MoodScore && e.DateKey() < best.DateKey()) {
			best = e
		}
		if e.MoodScore < worst.MoodScore || (e.MoodScore == worst.MoodScore && e.DateKey() < worst.DateKey()) {
			worst = e
		}
	}

	freq := map[string]int{}
	for _, e := range entries {
		freq[ScoreLabel(e.MoodScore)]++
	}

	r.TotalEntries = len(entries)
	r.AverageMood = round2(meanScore(entries))
	r.MostCommonMood = mostCommon(freq)
	r.BestDay = best.DateKey()
	r.WorstDay = worst.DateKey()
	r.Trend = classifyTrend(entries)
	return r
}
