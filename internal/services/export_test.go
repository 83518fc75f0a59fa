package services

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/emrebasar/moodlog/internal/models"
)

func sampleEntries(t *testing.T) []models.MoodEntry {
	t.Helper()
	d1, _ := models.ParseDate("2026-03-01")
	d2, _ := models.ParseDate("2026-03-02")
	eight := 8
	return []models.MoodEntry{
		{
			Date:       d1,
			MoodScore:  4,
			Intensity:  &eight,
			Emotions:   models.EncodeTags([]string{"calm", "happy"}),
			Activities: models.EncodeTags([]string{"run"}),
		},
		{
			Date:         d2,
			MoodScore:    2,
			Emotions:     models.EncodeTags(nil),
			Activities:   models.EncodeTags(nil),
			JournalEntry: "rough day",
		},
	}
}

func TestEncodeEntries_CSV(t *testing.T) {
	data, contentType, err := EncodeEntries(sampleEntries(t), "csv")
	if err != nil {
		t.Fatalf("EncodeEntries: %v", err)
	}
	if contentType != "text/csv" {
		t.Errorf("content type = %q, want text/csv", contentType)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3 (header + 2 rows):\n%s", len(lines), data)
	}
	if lines[0] != "date,mood_score,intensity,emotions,activities,journal_entry" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "2026-03-01,4,8,calm;happy,run," {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != "2026-03-02,2,,,,rough day" {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestEncodeEntries_JSON(t *testing.T) {
	data, contentType, err := EncodeEntries(sampleEntries(t), "json")
	if err != nil {
		t.Fatalf("EncodeEntries: %v", err)
	}
	if contentType != "application/json" {
		t.Errorf("content type = %q, want application/json", contentType)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("got %d records, want 2", len(decoded))
	}
	if decoded[0]["mood_score"].(float64) != 4 {
		t.Errorf("mood_score = %v, want 4", decoded[0]["mood_score"])
	}
	if decoded[1]["intensity"] != nil {
		t.Errorf("intensity = %v, want null for an entry without one", decoded[1]["intensity"])
	}
}

func TestEncodeEntries_JSONNoEntries(t *testing.T) {
	data, _, err := EncodeEntries(nil, "json")
	if err != nil {
		t.Fatalf("EncodeEntries: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("body = %q, want [] for a user with no entries", data)
	}
}

func TestEncodeEntries_UnsupportedFormat(t *testing.T) {
	if _, _, err := EncodeEntries(nil, "xml"); err == nil {
		t.Error("expected an error for an unsupported format")
	}
}
