package main

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"lg/nutrition-tracker-go-api/internal/nutrition"
)

// getAdvice runs the advice rules for one date against the current profile.
// GET /api/advice?date=YYYY-MM-DD (defaults to today).
func (h *Handler) getAdvice(c *gin.Context) {
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

	advice := nutrition.Advise(nutrition.Summarize(entries, date), nutrition.CalculateNutritionGoals(profile))
	c.JSON(http.StatusOK, adviceResponse{Date: date, Advice: advice})
}
