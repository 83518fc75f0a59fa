package dto

import "github.com/emrebasar/moodlog/internal/models"

// LogMoodRequest creates or overwrites the entry for a date. Date is
// YYYY-MM-DD and defaults to today when empty. Intensity defaults to 5
// when omitted.
type LogMoodRequest struct {
	Date         string   `json:"date"`
	MoodScore    int      `json:"mood_score"`
	Intensity    *int     `json:"intensity"`
	Emotions     []string `json:"emotions"`
	Activities   []string `json:"activities"`
	JournalEntry string   `json:"journal_entry"`
}

// UpdateMoodRequest edits an existing entry by id. Nil fields are left
// unchanged.
type UpdateMoodRequest struct {
	MoodScore    *int      `json:"mood_score"`
	Intensity    *int      `json:"intensity"`
	Emotions     *[]string `json:"emotions"`
	Activities   *[]string `json:"activities"`
	JournalEntry *string   `json:"journal_entry"`
}

type MoodListResponse struct {
	Data   []models.MoodEntry `json:"data"`
	Total  int64              `json:"total"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}
