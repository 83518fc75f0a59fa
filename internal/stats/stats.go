package stats

import (
	"math"
	"sort"
	"time"

	"github.com/emrebasar/moodlog/internal/models"
)

// Thresholds on the 1-5 mood scale. The frontend versions this replaces
// drifted between 0.2 and 0.3 for the trend cutoff; 0.3 is used everywhere
// here.
const (
	TrendThreshold  = 0.3
	ImpactThreshold = 0.3
)

// NoData is reported for categorical fields when there are no entries.
const NoData = "No data"

// UnknownLabel is reported for mood scores outside 1..5.
const UnknownLabel = "Unknown"

// minTagCount filters tags that occur too rarely to rank.
const minTagCount = 2

// maxStreakDays caps the backward streak walk.
const maxStreakDays = 365

var scoreLabels = map[int]string{
	1: "Terrible",
	2: "Poor",
	3: "Okay",
	4: "Good",
	5: "Excellent",
}

// ScoreLabel maps a mood score to its label. Out-of-range scores map to
// UnknownLabel rather than failing.
func ScoreLabel(score int) string {
	if label, ok := scoreLabels[score]; ok {
		return label
	}
	return UnknownLabel
}

// LabelScore is the inverse of ScoreLabel for the five defined labels.
func LabelScore(label string) (int, bool) {
	for score, l := range scoreLabels {
		if l == label {
			return score, true
		}
	}
	return 0, false
}

// Summary is the full derived view over one user's entries. It is
// recomputed from the entry list and never persisted.
type Summary struct {
	TotalEntries     int            `json:"total_entries"`
	CurrentStreak    int            `json:"current_streak"`
	AverageMood      float64        `json:"average_mood"`
	AverageIntensity float64        `json:"average_intensity"`
	WeeklyAverage    float64        `json:"weekly_average"`
	MoodFrequency    map[string]int `json:"mood_frequency"`
	MostCommonMood   string         `json:"most_common_mood"`
	MoodDistribution map[int]int    `json:"mood_distribution"`
	Trend            string         `json:"trend"`
}

// TagCorrelation is one row of the ranked tag table.
type TagCorrelation struct {
	Tag         string  `json:"tag"`
	AverageMood float64 `json:"average_mood"`
	Count       int     `json:"count"`
	Impact      string  `json:"impact"`
}

// TagKind selects which tag set of an entry to correlate.
type TagKind string

const (
	KindActivities TagKind = "activities"
	KindEmotions   TagKind = "emotions"
)

// Aggregate computes the summary for an unordered entry list. It is pure:
// the input is not mutated, and identical input with the same reference
// time yields identical output. Empty input degrades to zeros and the
// NoData sentinel, never an error.
func Aggregate(entries []models.MoodEntry, now time.Time) Summary {
	s := Summary{
		MoodFrequency:    map[string]int{},
		MoodDistribution: map[int]int{},
		MostCommonMood:   NoData,
		Trend:            "stable",
	}
	if len(entries) == 0 {
		return s
	}

	s.TotalEntries = len(entries)
	s.CurrentStreak = currentStreak(entries, now)
	s.AverageMood = round2(meanScore(entries))
	s.AverageIntensity = round1(meanIntensity(entries))
	s.WeeklyAverage = round1(meanIntensity(trailingWeek(entries, now)))
	s.Trend = classifyTrend(entries)

	for _, e := range entries {
		s.MoodFrequency[ScoreLabel(e.MoodScore)]++
		if e.MoodScore >= 1 && e.MoodScore <= 5 {
			s.MoodDistribution[e.MoodScore]++
		}
	}
	s.MostCommonMood = mostCommon(s.MoodFrequency)

	return s
}

// currentStreak counts consecutive calendar days with an entry, walking
// backward from today one day at a time and stopping at the first miss.
// Membership is exact date-string equality, matching the behavior this
// replaces: entries logged with inconsistent timezone-derived date strings
// undercount the streak. Known edge case, kept deliberately.
func currentStreak(entries []models.MoodEntry, now time.Time) int {
	days := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		days[e.DateKey()] = struct{}{}
	}

	streak := 0
	for i := 0; i < maxStreakDays; i++ {
		key := now.AddDate(0, 0, -i).Format(models.DateLayout)
		if _, ok := days[key]; !ok {
			break
		}
		streak++
	}
	return streak
}

// meanIntensity averages intensity over entries that define it. Entries
// without intensity are excluded from the denominator, not treated as zero.
func meanIntensity(entries []models.MoodEntry) float64 {
	sum, n := 0, 0
	for _, e := range entries {
		if e.Intensity == nil {
			continue
		}
		sum += *e.Intensity
		n++
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func meanScore(entries []models.MoodEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	sum := 0
	for _, e := range entries {
		sum += e.MoodScore
	}
	return float64(sum) / float64(len(entries))
}

// trailingWeek filters to entries dated within the trailing 7 days of now.
// The boundary is exclusive: an entry dated exactly 7 days back is out,
// leaving the 7 days ending today.
func trailingWeek(entries []models.MoodEntry, now time.Time) []models.MoodEntry {
	cutoff := now.AddDate(0, 0, -7).Format(models.DateLayout)
	var recent []models.MoodEntry
	for _, e := range entries {
		if e.DateKey() > cutoff {
			recent = append(recent, e)
		}
	}
	return recent
}

// classifyTrend sorts entries by date ascending, splits into two contiguous
// halves (first half floor(n/2) oldest) and compares mean mood scores
// against TrendThreshold. Fewer than 2 entries is stable by definition.
func classifyTrend(entries []models.MoodEntry) string {
	if len(entries) < 2 {
		return "stable"
	}

	ordered := make([]models.MoodEntry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].DateKey() < ordered[j].DateKey()
	})

	mid := len(ordered) / 2
	first := meanScore(ordered[:mid])
	second := meanScore(ordered[mid:])

	switch {
	case second > first+TrendThreshold:
		return "improving"
	case second < first-TrendThreshold:
		return "declining"
	default:
		return "stable"
	}
}

// mostCommon picks the label with the highest count. Ties break toward the
// lowest numeric score so the result does not depend on map iteration
// order; the Unknown bucket loses all ties.
func mostCommon(freq map[string]int) string {
	best, bestCount := NoData, 0
	for score := 1; score <= 5; score++ {
		label := scoreLabels[score]
		if c := freq[label]; c > bestCount {
			best, bestCount = label, c
		}
	}
	if c := freq[UnknownLabel]; c > bestCount {
		best = UnknownLabel
	}
	return best
}

// CorrelateTags ranks each distinct tag of the given kind by the mean mood
// score of the entries carrying it. Tags seen fewer than twice are dropped
// as insufficient samples. Impact compares the tag mean against the overall
// average mood with ImpactThreshold.
func CorrelateTags(entries []models.MoodEntry, kind TagKind) []TagCorrelation {
	type acc struct {
		total int
		count int
	}
	byTag := map[string]*acc{}

	for _, e := range entries {
		var tags []string
		switch kind {
		case KindEmotions:
			tags = e.EmotionList()
		default:
			tags = e.ActivityList()
		}
		for _, tag := range tags {
			a, ok := byTag[tag]
			if !ok {
				a = &acc{}
				byTag[tag] = a
			}
			a.total += e.MoodScore
			a.count++
		}
	}

	overall := meanScore(entries)

	rows := make([]TagCorrelation, 0, len(byTag))
	for tag, a := range byTag {
		if a.count < minTagCount {
			continue
		}
		avg := float64(a.total) / float64(a.count)
		rows = append(rows, TagCorrelation{
			Tag:         tag,
			AverageMood: round2(avg),
			Count:       a.count,
			Impact:      classifyImpact(avg, overall),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].AverageMood != rows[j].AverageMood {
			return rows[i].AverageMood > rows[j].AverageMood
		}
		return rows[i].Tag < rows[j].Tag
	})
	return rows
}

func classifyImpact(avg, overall float64) string {
	diff := avg - overall
	switch {
	case diff > ImpactThreshold:
		return "positive"
	case diff < -ImpactThreshold:
		return "negative"
	default:
		return "neutral"
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
