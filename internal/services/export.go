package services

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/emrebasar/moodlog/internal/models"
	"github.com/google/uuid"
)

// Export returns all of a user's entries encoded as CSV or JSON, oldest
// first, together with the content type.
func (s *MoodService) Export(userID uuid.UUID, format string) ([]byte, string, error) {
	var entries []models.MoodEntry
	err := s.db.Where("user_id = ?", userID).Order("date ASC").Find(&entries).Error
	if err != nil {
		return nil, "", err
	}
	return EncodeEntries(entries, format)
}

// EncodeEntries serializes entries in the requested export format.
func EncodeEntries(entries []models.MoodEntry, format string) ([]byte, string, error) {
	switch strings.ToLower(format) {
	case "csv":
		var buffer bytes.Buffer
		writer := csv.NewWriter(&buffer)

		header := []string{"date", "mood_score", "intensity", "emotions", "activities", "journal_entry"}
		if err := writer.Write(header); err != nil {
			return nil, "", err
		}

		for _, e := range entries {
			intensity := ""
			if e.Intensity != nil {
				intensity = fmt.Sprintf("%d", *e.Intensity)
			}
			row := []string{
				e.DateKey(),
				fmt.Sprintf("%d", e.MoodScore),
				intensity,
				strings.Join(e.EmotionList(), ";"),
				strings.Join(e.ActivityList(), ";"),
				e.JournalEntry,
			}
			if err := writer.Write(row); err != nil {
				return nil, "", err
			}
		}
		writer.Flush()
		if err := writer.Error(); err != nil {
			return nil, "", err
		}
		return buffer.Bytes(), "text/csv", nil

	case "json":
		if entries == nil {
			entries = []models.MoodEntry{}
		}
		data, err := json.Marshal(entries)
		if err != nil {
			return nil, "", err
		}
		return data, "application/json", nil

	default:
		return nil, "", fmt.Errorf("unsupported export format: %s", format)
	}
}
