package models

import (
	"reflect"
	"sync"
	"testing"

	"gorm.io/datatypes"
	"gorm.io/gorm/schema"
)

// A soft-delete tombstone on mood_entries would keep the deleted row in
// the unique (user_id, date) index: the next log for that date would
// conflict with an invisible row and the post-upsert read would miss it.
// Deleting a day's entry must make that date loggable again, so the model
// must not carry a DeletedAt column.
func TestMoodEntryDeletesAreHard(t *testing.T) {
	s, err := schema.Parse(&MoodEntry{}, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		t.Fatalf("schema.Parse: %v", err)
	}

	if f := s.LookUpField("DeletedAt"); f != nil {
		t.Error("MoodEntry has a DeletedAt field; deletes must be permanent")
	}

	user := s.LookUpField("UserID")
	date := s.LookUpField("Date")
	if user == nil || date == nil {
		t.Fatal("missing UserID or Date field")
	}
	if user.TagSettings["UNIQUEINDEX"] == "" ||
		user.TagSettings["UNIQUEINDEX"] != date.TagSettings["UNIQUEINDEX"] {
		t.Errorf("UserID and Date must share one unique index, got %q and %q",
			user.TagSettings["UNIQUEINDEX"], date.TagSettings["UNIQUEINDEX"])
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-15")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Year() != 2026 || d.Month() != 3 || d.Day() != 15 {
		t.Errorf("got %v, want 2026-03-15", d)
	}

	if _, err := ParseDate("15/03/2026"); err == nil {
		t.Error("ParseDate accepted a non-ISO date")
	}
	if _, err := ParseDate(""); err == nil {
		t.Error("ParseDate accepted an empty string")
	}
}

func TestDateKey(t *testing.T) {
	d, _ := ParseDate("2026-03-05")
	e := MoodEntry{Date: d}
	if got := e.DateKey(); got != "2026-03-05" {
		t.Errorf("DateKey = %q, want 2026-03-05", got)
	}
}

func TestTagRoundTrip(t *testing.T) {
	e := MoodEntry{
		Emotions:   EncodeTags([]string{"calm", "grateful"}),
		Activities: EncodeTags(nil),
	}

	if got := e.EmotionList(); !reflect.DeepEqual(got, []string{"calm", "grateful"}) {
		t.Errorf("EmotionList = %v", got)
	}
	if got := e.ActivityList(); len(got) != 0 {
		t.Errorf("ActivityList = %v, want empty", got)
	}
}

func TestDecodeTagsMalformed(t *testing.T) {
	e := MoodEntry{Emotions: datatypes.JSON(`{"not":"a list"}`)}
	if got := e.EmotionList(); got != nil {
		t.Errorf("EmotionList on malformed data = %v, want nil", got)
	}

	e = MoodEntry{}
	if got := e.EmotionList(); got != nil {
		t.Errorf("EmotionList on nil column = %v, want nil", got)
	}
}
