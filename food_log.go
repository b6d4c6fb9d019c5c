package main

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"lg/nutrition-tracker-go-api/internal/nutrition"
	"lg/nutrition-tracker-go-api/internal/storage"
)

// getDailySummary returns the entries, totals, progress and advice for one date.
// GET /api/food-log/daily?date=YYYY-MM-DD (defaults to today).
// Goals and totals are recomputed from the stored profile and log on every call.
func (h *Handler) getDailySummary(c *gin.Context) {
	date, ok := h.queryDate(c)
	if !ok {
		return
	}

	entries, err := h.foodLog.All(c)
	if err != nil {
		slog.Error("Failed to load food log", "error", err)
		apiError(c, http.StatusInternalServerError, "failed to fetch entries")
		return
	}
	profile, err := h.profiles.Get(c)
	if err != nil {
		slog.Error("Failed to load profile", "error", err)
		apiError(c, http.StatusInternalServerError, "failed to fetch profile")
		return
	}

	goals := nutrition.CalculateNutritionGoals(profile)
	summary := nutrition.Summarize(entries, date)

	c.JSON(http.StatusOK, dailySummary{
		Date:     date,
		Label:    nutrition.FormatDateLabel(date, h.now()),
		PrevDate: nutrition.ShiftDate(date, -1),
		NextDate: nutrition.ShiftDate(date, 1),
		Entries:  nutrition.EntriesOn(entries, date),
		Summary:  summary,
		Goals:    goals,
		Progress: nutrition.ProgressOf(summary, goals),
		Advice:   nutrition.Advise(summary, goals),
	})
}

// listFoodEntries returns every logged entry across all dates.
// GET /api/food-log/entries.
func (h *Handler) listFoodEntries(c *gin.Context) {
	entries, err := h.foodLog.All(c)
	if err != nil {
		slog.Error("Failed to load food log", "error", err)
		apiError(c, http.StatusInternalServerError, "failed to fetch entries")
		return
	}
	c.JSON(http.StatusOK, entries)
}

// createFoodEntry appends an entry to the log.
// POST /api/food-log/entries. Name and positive calories are required; date
// defaults to today.
func (h *Handler) createFoodEntry(c *gin.Context) {
	var body createFoodEntryRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := body.validate(); msg != "" {
		foodEntriesRejected.Inc()
		apiError(c, http.StatusBadRequest, msg)
		return
	}

	date := nutrition.Today(h.now())
	if body.Date != "" {
		d, err := nutrition.ParseDate(body.Date)
		if err != nil {
			foodEntriesRejected.Inc()
			apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
		date = d
	}

	entry, ok, err := h.foodLog.Add(c, storage.NewFoodEntry{
		Name:     body.Name,
		Calories: *body.Calories,
		Protein:  body.Protein,
		Carbs:    body.Carbs,
		Fat:      body.Fat,
		Date:     date,
	})
	if err != nil {
		slog.Error("Failed to add food entry", "error", err)
		apiError(c, http.StatusInternalServerError, "failed to create entry")
		return
	}
	if !ok {
		foodEntriesRejected.Inc()
		apiError(c, http.StatusBadRequest, "name and positive calories are required")
		return
	}

	foodEntriesAdded.Inc()
	c.JSON(http.StatusCreated, entry)
}

// validate returns a client-facing message for the first invalid field, or "".
func (r createFoodEntryRequest) validate() string {
	if strings.TrimSpace(r.Name) == "" {
		return "name is required"
	}
	if r.Calories == nil || *r.Calories <= 0 {
		return "calories must be positive"
	}
	macros := []struct {
		field string
		value *float64
	}{{"protein", r.Protein}, {"carbs", r.Carbs}, {"fat", r.Fat}}
	for _, m := range macros {
		if m.value != nil && *m.value < 0 {
			return m.field + " must not be negative"
		}
	}
	return ""
}

// deleteFoodEntry removes an entry by id. Returns 204 on success.
// DELETE /api/food-log/entries/:id.
func (h *Handler) deleteFoodEntry(c *gin.Context) {
	removed, err := h.foodLog.Remove(c, c.Param("id"))
	if err != nil {
		slog.Error("Failed to remove food entry", "error", err)
		apiError(c, http.StatusInternalServerError, "failed to delete entry")
		return
	}
	if !removed {
		apiError(c, http.StatusNotFound, "entry not found")
		return
	}

	foodEntriesRemoved.Inc()
	c.Status(http.StatusNoContent)
}

// shiftDate moves a date by a number of days and labels the result.
// GET /api/dates/shift?date=YYYY-MM-DD&offset=N. Date defaults to today.
func (h *Handler) shiftDate(c *gin.Context) {
	date, ok := h.queryDate(c)
	if !ok {
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		apiError(c, http.StatusBadRequest, "offset must be an integer")
		return
	}

	shifted := nutrition.ShiftDate(date, offset)
	c.JSON(http.StatusOK, dateLabel{Date: shifted, Label: nutrition.FormatDateLabel(shifted, h.now())})
}
