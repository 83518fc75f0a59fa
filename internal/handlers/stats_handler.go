package handlers

import (
	"strconv"
	"time"

	"github.com/emrebasar/moodlog/internal/dto"
	"github.com/emrebasar/moodlog/internal/middleware"
	"github.com/emrebasar/moodlog/internal/services"
	"github.com/emrebasar/moodlog/internal/stats"
	"github.com/gofiber/fiber/v2"
)

// StatsHandler exposes the derived views over a user's entries. All
// aggregation happens in the stats package over the fetched list; nothing
// here is persisted.
type StatsHandler struct {
	service *services.MoodService
}

func NewStatsHandler(service *services.MoodService) *StatsHandler {
	return &StatsHandler{service: service}
}

// GetStats handles GET /api/moods/stats
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	entries, err := h.service.ListAll(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch entries",
		})
	}

	return c.JSON(stats.Aggregate(entries, time.Now()))
}

// GetCorrelations handles GET /api/moods/correlations?kind=activities|emotions
func (h *StatsHandler) GetCorrelations(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	kind := stats.KindActivities
	switch c.Query("kind", "activities") {
	case "activities":
	case "emotions":
		kind = stats.KindEmotions
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "kind must be 'activities' or 'emotions'",
		})
	}

	entries, err := h.service.ListAll(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch entries",
		})
	}

	return c.JSON(fiber.Map{
		"kind": kind,
		"data": stats.CorrelateTags(entries, kind),
	})
}

// GetReport handles GET /api/moods/report?days=30
func (h *StatsHandler) GetReport(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	days, _ := strconv.Atoi(c.Query("days", "30"))
	if days < 1 {
		days = 1
	}
	if days > 365 {
		days = 365
	}

	end := time.Now().UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -(days - 1))

	entries, err := h.service.ListRange(userID, start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch entries",
		})
	}

	return c.JSON(stats.BuildReport(entries, start, end))
}
