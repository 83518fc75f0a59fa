package stats

import (
	"reflect"
	"testing"
	"time"

	"github.com/emrebasar/moodlog/internal/models"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

func entry(t *testing.T, date string, score int, intensity *int) models.MoodEntry {
	t.Helper()
	d, err := models.ParseDate(date)
	if err != nil {
		t.Fatalf("bad test date %q: %v", date, err)
	}
	return models.MoodEntry{
		Date:      d,
		MoodScore: score,
		Intensity: intensity,
	}
}

func daysAgo(n int) string {
	return testNow.AddDate(0, 0, -n).Format(models.DateLayout)
}

func TestAggregate_Empty(t *testing.T) {
	s := Aggregate(nil, testNow)

	if s.TotalEntries != 0 {
		t.Errorf("TotalEntries = %d, want 0", s.TotalEntries)
	}
	if s.CurrentStreak != 0 {
		t.Errorf("CurrentStreak = %d, want 0", s.CurrentStreak)
	}
	if s.AverageIntensity != 0 || s.WeeklyAverage != 0 || s.AverageMood != 0 {
		t.Errorf("averages = %v/%v/%v, want all 0", s.AverageIntensity, s.WeeklyAverage, s.AverageMood)
	}
	if s.MostCommonMood != NoData {
		t.Errorf("MostCommonMood = %q, want %q", s.MostCommonMood, NoData)
	}
	if s.Trend != "stable" {
		t.Errorf("Trend = %q, want stable", s.Trend)
	}
	if len(s.MoodFrequency) != 0 {
		t.Errorf("MoodFrequency = %v, want empty", s.MoodFrequency)
	}
}

func TestAggregate_IntensityExcludesUndefined(t *testing.T) {
	entries := []models.MoodEntry{
		entry(t, daysAgo(0), 3, nil),
		entry(t, daysAgo(1), 3, intPtr(8)),
	}

	s := Aggregate(entries, testNow)
	if s.AverageIntensity != 8 {
		t.Errorf("AverageIntensity = %v, want 8 (nil intensity must not count toward the denominator)", s.AverageIntensity)
	}
}

func TestAggregate_Streak(t *testing.T) {
	// Today, yesterday, then a gap before day 3: streak stops at 2.
	entries := []models.MoodEntry{
		entry(t, daysAgo(0), 4, nil),
		entry(t, daysAgo(1), 3, nil),
		entry(t, daysAgo(3), 5, nil),
	}

	s := Aggregate(entries, testNow)
	if s.CurrentStreak != 2 {
		t.Errorf("CurrentStreak = %d, want 2", s.CurrentStreak)
	}
}

func TestAggregate_StreakNoEntryToday(t *testing.T) {
	entries := []models.MoodEntry{
		entry(t, daysAgo(1), 4, nil),
		entry(t, daysAgo(2), 4, nil),
	}

	s := Aggregate(entries, testNow)
	if s.CurrentStreak != 0 {
		t.Errorf("CurrentStreak = %d, want 0 when today has no entry", s.CurrentStreak)
	}
}

func TestAggregate_TrendImproving(t *testing.T) {
	// Chronological scores 2,2,4,4: halves average 2 and 4.
	entries := []models.MoodEntry{
		entry(t, daysAgo(3), 2, nil),
		entry(t, daysAgo(2), 2, nil),
		entry(t, daysAgo(1), 4, nil),
		entry(t, daysAgo(0), 4, nil),
	}

	s := Aggregate(entries, testNow)
	if s.Trend != "improving" {
		t.Errorf("Trend = %q, want improving", s.Trend)
	}
}

func TestAggregate_TrendDeclining(t *testing.T) {
	entries := []models.MoodEntry{
		entry(t, daysAgo(3), 5, nil),
		entry(t, daysAgo(2), 5, nil),
		entry(t, daysAgo(1), 2, nil),
		entry(t, daysAgo(0), 2, nil),
	}

	s := Aggregate(entries, testNow)
	if s.Trend != "declining" {
		t.Errorf("Trend = %q, want declining", s.Trend)
	}
}

func TestAggregate_TrendInputOrderIrrelevant(t *testing.T) {
	// Same entries as the improving case, delivered newest first.
	entries := []models.MoodEntry{
		entry(t, daysAgo(0), 4, nil),
		entry(t, daysAgo(1), 4, nil),
		entry(t, daysAgo(2), 2, nil),
		entry(t, daysAgo(3), 2, nil),
	}

	s := Aggregate(entries, testNow)
	if s.Trend != "improving" {
		t.Errorf("Trend = %q, want improving regardless of input order", s.Trend)
	}
}

func TestAggregate_TrendFewerThanTwoEntries(t *testing.T) {
	entries := []models.MoodEntry{entry(t, daysAgo(0), 1, nil)}

	if got := Aggregate(entries, testNow).Trend; got != "stable" {
		t.Errorf("Trend = %q, want stable for a single entry", got)
	}
}

func TestAggregate_WeeklyAverageTrailingWindow(t *testing.T) {
	entries := []models.MoodEntry{
		entry(t, daysAgo(1), 3, intPtr(10)),
		entry(t, daysAgo(2), 3, intPtr(6)),
		entry(t, daysAgo(7), 3, intPtr(4)),  // exactly 7 days back: excluded
		entry(t, daysAgo(20), 3, intPtr(2)), // outside the window
	}

	s := Aggregate(entries, testNow)
	if s.WeeklyAverage != 8 {
		t.Errorf("WeeklyAverage = %v, want 8 (the window is the 7 days ending today)", s.WeeklyAverage)
	}
	if s.AverageIntensity != 5.5 {
		t.Errorf("AverageIntensity = %v, want 5.5", s.AverageIntensity)
	}
}

func TestAggregate_FrequencyAndMostCommon(t *testing.T) {
	entries := []models.MoodEntry{
		entry(t, daysAgo(0), 4, nil),
		entry(t, daysAgo(1), 4, nil),
		entry(t, daysAgo(2), 2, nil),
	}

	s := Aggregate(entries, testNow)
	if s.MoodFrequency["Good"] != 2 || s.MoodFrequency["Poor"] != 1 {
		t.Errorf("MoodFrequency = %v, want Good:2 Poor:1", s.MoodFrequency)
	}
	if s.MostCommonMood != "Good" {
		t.Errorf("MostCommonMood = %q, want Good", s.MostCommonMood)
	}
	if s.MoodDistribution[4] != 2 || s.MoodDistribution[2] != 1 {
		t.Errorf("MoodDistribution = %v, want 4:2 2:1", s.MoodDistribution)
	}
}

func TestAggregate_MostCommonTieBreaksLowestScore(t *testing.T) {
	// Poor and Good both occur twice; the lower score wins the tie.
	entries := []models.MoodEntry{
		entry(t, daysAgo(0), 4, nil),
		entry(t, daysAgo(1), 2, nil),
		entry(t, daysAgo(2), 4, nil),
		entry(t, daysAgo(3), 2, nil),
	}

	s := Aggregate(entries, testNow)
	if s.MostCommonMood != "Poor" {
		t.Errorf("MostCommonMood = %q, want Poor (lowest score wins ties)", s.MostCommonMood)
	}
}

func TestAggregate_OutOfRangeScore(t *testing.T) {
	entries := []models.MoodEntry{
		entry(t, daysAgo(0), 0, nil),
		entry(t, daysAgo(1), 9, nil),
	}

	s := Aggregate(entries, testNow)
	if s.MoodFrequency[UnknownLabel] != 2 {
		t.Errorf("MoodFrequency[Unknown] = %d, want 2", s.MoodFrequency[UnknownLabel])
	}
	if s.MostCommonMood != UnknownLabel {
		t.Errorf("MostCommonMood = %q, want %q", s.MostCommonMood, UnknownLabel)
	}
	if len(s.MoodDistribution) != 0 {
		t.Errorf("MoodDistribution = %v, want empty for out-of-range scores", s.MoodDistribution)
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	entries := []models.MoodEntry{
		entry(t, daysAgo(0), 4, intPtr(7)),
		entry(t, daysAgo(1), 2, nil),
		entry(t, daysAgo(5), 3, intPtr(4)),
	}

	first := Aggregate(entries, testNow)
	second := Aggregate(entries, testNow)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Aggregate is not idempotent:\nfirst  = %+v\nsecond = %+v", first, second)
	}
}

func TestScoreLabel_RoundTrip(t *testing.T) {
	for _, label := range []string{"Terrible", "Poor", "Okay", "Good", "Excellent"} {
		score, ok := LabelScore(label)
		if !ok {
			t.Fatalf("LabelScore(%q) not found", label)
		}
		if got := ScoreLabel(score); got != label {
			t.Errorf("ScoreLabel(LabelScore(%q)) = %q", label, got)
		}
	}

	if got := ScoreLabel(0); got != UnknownLabel {
		t.Errorf("ScoreLabel(0) = %q, want %q", got, UnknownLabel)
	}
	if got := ScoreLabel(6); got != UnknownLabel {
		t.Errorf("ScoreLabel(6) = %q, want %q", got, UnknownLabel)
	}
	if _, ok := LabelScore(UnknownLabel); ok {
		t.Errorf("LabelScore(Unknown) should not resolve to a score")
	}
}

func withActivities(t *testing.T, date string, score int, activities ...string) models.MoodEntry {
	t.Helper()
	e := entry(t, date, score, nil)
	e.Activities = models.EncodeTags(activities)
	return e
}

func withEmotions(t *testing.T, date string, score int, emotions ...string) models.MoodEntry {
	t.Helper()
	e := entry(t, date, score, nil)
	e.Emotions = models.EncodeTags(emotions)
	return e
}

func TestCorrelateTags_SingleOccurrenceExcluded(t *testing.T) {
	entries := []models.MoodEntry{
		withActivities(t, daysAgo(0), 5, "Run"),
	}

	rows := CorrelateTags(entries, KindActivities)
	if len(rows) != 0 {
		t.Errorf("got %d rows, want 0 (single-occurrence tags are filtered)", len(rows))
	}
}

func TestCorrelateTags_RankingAndImpact(t *testing.T) {
	entries := []models.MoodEntry{
		withActivities(t, daysAgo(0), 5, "Run", "Read"),
		withActivities(t, daysAgo(1), 5, "Run"),
		withActivities(t, daysAgo(2), 1, "Doomscroll", "Read"),
		withActivities(t, daysAgo(3), 1, "Doomscroll"),
	}
	// Overall average mood = 3.0.

	rows := CorrelateTags(entries, KindActivities)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	if rows[0].Tag != "Run" || rows[0].AverageMood != 5 || rows[0].Impact != "positive" {
		t.Errorf("rows[0] = %+v, want Run avg 5 positive", rows[0])
	}
	if rows[1].Tag != "Read" || rows[1].AverageMood != 3 || rows[1].Impact != "neutral" {
		t.Errorf("rows[1] = %+v, want Read avg 3 neutral", rows[1])
	}
	if rows[2].Tag != "Doomscroll" || rows[2].AverageMood != 1 || rows[2].Impact != "negative" {
		t.Errorf("rows[2] = %+v, want Doomscroll avg 1 negative", rows[2])
	}

	if rows[0].Count != 2 || rows[1].Count != 2 || rows[2].Count != 2 {
		t.Errorf("counts = %d/%d/%d, want all 2", rows[0].Count, rows[1].Count, rows[2].Count)
	}
}

func TestCorrelateTags_Emotions(t *testing.T) {
	entries := []models.MoodEntry{
		withEmotions(t, daysAgo(0), 4, "calm"),
		withEmotions(t, daysAgo(1), 4, "calm"),
		withEmotions(t, daysAgo(2), 2, "anxious"),
	}

	rows := CorrelateTags(entries, KindEmotions)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].Tag != "calm" || rows[0].Count != 2 || rows[0].AverageMood != 4 {
		t.Errorf("rows[0] = %+v, want calm count 2 avg 4", rows[0])
	}
}

func TestCorrelateTags_Empty(t *testing.T) {
	if rows := CorrelateTags(nil, KindActivities); len(rows) != 0 {
		t.Errorf("got %d rows for empty input, want 0", len(rows))
	}
}

func TestCorrelateTags_TieSortsByTagName(t *testing.T) {
	entries := []models.MoodEntry{
		withActivities(t, daysAgo(0), 3, "b", "a"),
		withActivities(t, daysAgo(1), 3, "b", "a"),
	}

	rows := CorrelateTags(entries, KindActivities)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Tag != "a" || rows[1].Tag != "b" {
		t.Errorf("tie order = %q,%q, want a,b", rows[0].Tag, rows[1].Tag)
	}
}
