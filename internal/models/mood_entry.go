package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DateLayout is the wire format for entry dates.
const DateLayout = "2006-01-02"

// MoodEntry is one logged mood per user per calendar date. Logging twice on
// the same date overwrites the existing row (upsert on user_id + date).
// Deletes are hard: a soft-delete tombstone would stay in the unique
// (user_id, date) index and block re-logging that date.
type MoodEntry struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:idx_mood_entries_user_date" json:"user_id"`
	Date         time.Time      `gorm:"type:date;not null;uniqueIndex:idx_mood_entries_user_date" json:"date"`
	MoodScore    int            `gorm:"not null" json:"mood_score"`
	Intensity    *int           `json:"intensity"`
	Emotions     datatypes.JSON `gorm:"type:jsonb" json:"emotions"`
	Activities   datatypes.JSON `gorm:"type:jsonb" json:"activities"`
	JournalEntry string         `gorm:"type:text" json:"journal_entry"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// DateKey returns the entry date as a YYYY-MM-DD string.
func (e *MoodEntry) DateKey() string {
	return e.Date.Format(DateLayout)
}

// EmotionList decodes the emotions jsonb column. Nil or malformed data
// decodes to an empty list.
func (e *MoodEntry) EmotionList() []string {
	return decodeTags(e.Emotions)
}

// ActivityList decodes the activities jsonb column.
func (e *MoodEntry) ActivityList() []string {
	return decodeTags(e.Activities)
}

func decodeTags(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil {
		return nil
	}
	return tags
}

// EncodeTags marshals a tag list for storage in a jsonb column.
func EncodeTags(tags []string) datatypes.JSON {
	if len(tags) == 0 {
		return datatypes.JSON("[]")
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(b)
}
