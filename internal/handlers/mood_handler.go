package handlers

import (
	"errors"
	"strconv"

	"github.com/emrebasar/moodlog/internal/dto"
	"github.com/emrebasar/moodlog/internal/middleware"
	"github.com/emrebasar/moodlog/internal/models"
	"github.com/emrebasar/moodlog/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// MoodHandler handles HTTP requests for mood entries.
type MoodHandler struct {
	service *services.MoodService
}

func NewMoodHandler(service *services.MoodService) *MoodHandler {
	return &MoodHandler{service: service}
}

// LogMood handles POST /api/moods
func (h *MoodHandler) LogMood(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.LogMoodRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	entry, err := h.service.LogMood(userID, &req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

// List handles GET /api/moods
func (h *MoodHandler) List(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	limit, _ := strconv.Atoi(c.Query("limit", "30"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	if limit > 100 {
		limit = 100
	}

	entries, total, err := h.service.List(userID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch entries",
		})
	}

	return c.JSON(dto.MoodListResponse{
		Data: entries, Total: total,
		Limit: limit, Offset: offset,
	})
}

// GetToday handles GET /api/moods/today
func (h *MoodHandler) GetToday(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	entry, err := h.service.GetToday(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "No entry for today",
		})
	}

	return c.JSON(entry)
}

// GetByDate handles GET /api/moods/date/:date
func (h *MoodHandler) GetByDate(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	date, err := models.ParseDate(c.Params("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "date must be formatted as YYYY-MM-DD",
		})
	}

	entry, err := h.service.GetByDate(userID, date)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "No entry for that date",
		})
	}

	return c.JSON(entry)
}

// ListRange handles GET /api/moods/range?start=&end=
func (h *MoodHandler) ListRange(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	start, err := models.ParseDate(c.Query("start"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "start must be formatted as YYYY-MM-DD",
		})
	}
	end, err := models.ParseDate(c.Query("end"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "end must be formatted as YYYY-MM-DD",
		})
	}
	if end.Before(start) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "end must not be before start",
		})
	}

	entries, err := h.service.ListRange(userID, start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch entries",
		})
	}

	return c.JSON(fiber.Map{"data": entries})
}

// Update handles PUT /api/moods/:id
func (h *MoodHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	entryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid entry ID",
		})
	}

	var req dto.UpdateMoodRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	entry, err := h.service.Update(userID, entryID, &req)
	if err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(entry)
}

// Delete handles DELETE /api/moods/:id
func (h *MoodHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	entryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid entry ID",
		})
	}

	if err := h.service.Delete(userID, entryID); err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete entry",
		})
	}

	return c.JSON(fiber.Map{"message": "Entry deleted"})
}

// Export handles GET /api/moods/export?format=csv|json
func (h *MoodHandler) Export(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	format := c.Query("format", "json")
	data, contentType, err := h.service.Export(userID, format)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	c.Set("Content-Type", contentType)
	c.Set("Content-Disposition", "attachment; filename=mood_entries."+format)
	return c.Send(data)
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}
