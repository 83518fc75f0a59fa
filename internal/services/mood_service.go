package services

import (
	"errors"
	"time"

	"github.com/emrebasar/moodlog/internal/dto"
	"github.com/emrebasar/moodlog/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrEntryNotFound = errors.New("mood entry not found")

const defaultIntensity = 5

// MoodService owns all reads and writes of mood entries. It is the single
// mutation entry point; handlers never touch the DB directly.
type MoodService struct {
	db *gorm.DB
}

func NewMoodService(db *gorm.DB) *MoodService {
	return &MoodService{db: db}
}

// LogMood creates or overwrites the entry for a date. At most one entry
// exists per (user, date); logging the same date twice replaces the whole
// record rather than duplicating it.
func (s *MoodService) LogMood(userID uuid.UUID, req *dto.LogMoodRequest) (*models.MoodEntry, error) {
	if req.MoodScore < 1 || req.MoodScore > 5 {
		return nil, errors.New("mood_score must be between 1 and 5")
	}

	intensity := defaultIntensity
	if req.Intensity != nil {
		intensity = *req.Intensity
	}
	if intensity < 1 || intensity > 10 {
		return nil, errors.New("intensity must be between 1 and 10")
	}

	date := time.Now().UTC().Truncate(24 * time.Hour)
	if req.Date != "" {
		parsed, err := models.ParseDate(req.Date)
		if err != nil {
			return nil, errors.New("date must be formatted as YYYY-MM-DD")
		}
		date = parsed
	}

	entry := models.MoodEntry{
		UserID:       userID,
		Date:         date,
		MoodScore:    req.MoodScore,
		Intensity:    &intensity,
		Emotions:     models.EncodeTags(req.Emotions),
		Activities:   models.EncodeTags(req.Activities),
		JournalEntry: req.JournalEntry,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"mood_score", "intensity", "emotions", "activities", "journal_entry", "updated_at",
		}),
	}).Create(&entry).Error
	if err != nil {
		return nil, err
	}

	// Re-read so the caller sees the stored row, not the insert candidate
	// (on conflict the generated id is discarded).
	var saved models.MoodEntry
	if err := s.db.Where("user_id = ? AND date = ?", userID, date).First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

// GetByDate returns the entry for one date.
func (s *MoodService) GetByDate(userID uuid.UUID, date time.Time) (*models.MoodEntry, error) {
	var entry models.MoodEntry
	err := s.db.Where("user_id = ? AND date = ?", userID, date).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// GetToday returns today's entry.
func (s *MoodService) GetToday(userID uuid.UUID) (*models.MoodEntry, error) {
	return s.GetByDate(userID, time.Now().UTC().Truncate(24*time.Hour))
}

// List returns entries newest first with pagination.
func (s *MoodService) List(userID uuid.UUID, limit, offset int) ([]models.MoodEntry, int64, error) {
	var entries []models.MoodEntry
	var total int64

	err := s.db.Model(&models.MoodEntry{}).Where("user_id = ?", userID).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	err = s.db.Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error

	return entries, total, err
}

// ListAll returns every entry for a user, newest first. This is the input
// the stats aggregator consumes.
func (s *MoodService) ListAll(userID uuid.UUID) ([]models.MoodEntry, error) {
	var entries []models.MoodEntry
	err := s.db.Where("user_id = ?", userID).
		Order("date DESC").
		Find(&entries).Error
	return entries, err
}

// ListRange returns entries between two dates inclusive, oldest first.
func (s *MoodService) ListRange(userID uuid.UUID, start, end time.Time) ([]models.MoodEntry, error) {
	var entries []models.MoodEntry
	err := s.db.Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date ASC").
		Find(&entries).Error
	return entries, err
}

// Update edits an existing entry. Nil request fields are left unchanged.
func (s *MoodService) Update(userID, entryID uuid.UUID, req *dto.UpdateMoodRequest) (*models.MoodEntry, error) {
	var entry models.MoodEntry
	if err := s.db.Where("id = ? AND user_id = ?", entryID, userID).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}

	if req.MoodScore != nil {
		if *req.MoodScore < 1 || *req.MoodScore > 5 {
			return nil, errors.New("mood_score must be between 1 and 5")
		}
		entry.MoodScore = *req.MoodScore
	}
	if req.Intensity != nil {
		if *req.Intensity < 1 || *req.Intensity > 10 {
			return nil, errors.New("intensity must be between 1 and 10")
		}
		entry.Intensity = req.Intensity
	}
	if req.Emotions != nil {
		entry.Emotions = models.EncodeTags(*req.Emotions)
	}
	if req.Activities != nil {
		entry.Activities = models.EncodeTags(*req.Activities)
	}
	if req.JournalEntry != nil {
		entry.JournalEntry = *req.JournalEntry
	}

	if err := s.db.Save(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// Delete permanently removes an entry by id. The date becomes loggable
// again immediately.
func (s *MoodService) Delete(userID, entryID uuid.UUID) error {
	result := s.db.Where("id = ? AND user_id = ?", entryID, userID).Delete(&models.MoodEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}
