package main

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"lg/nutrition-tracker-go-api/internal/nutrition"
)

// getProfile returns the profile with its computed BMR, TDEE and targets.
// GET /api/profile. Defaults are returned when no profile has been saved.
func (h *Handler) getProfile(c *gin.Context) {
	p, err := h.profiles.Get(c)
	if err != nil {
		slog.Error("Failed to load profile", "error", err)
		apiError(c, http.StatusInternalServerError, "failed to fetch profile")
		return
	}
	c.JSON(http.StatusOK, newProfileResponse(p))
}

// putProfile replaces the whole profile.
// PUT /api/profile. Every field is required; invalid enums or non-positive
// measurements are rejected with 400.
func (h *Handler) putProfile(c *gin.Context) {
	var p nutrition.Profile
	if err := c.ShouldBindJSON(&p); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	h.saveProfile(c, p)
}

// patchProfile updates only the provided profile fields.
// PATCH /api/profile. Pointer fields distinguish "not provided" from zero; the
// merged profile must still validate.
func (h *Handler) patchProfile(c *gin.Context) {
	var body patchProfileRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.profiles.Get(c)
	if err != nil {
		slog.Error("Failed to load profile", "error", err)
		apiError(c, http.StatusInternalServerError, "failed to fetch profile")
		return
	}
	if !body.apply(&p) {
		apiError(c, http.StatusBadRequest, "no fields to update")
		return
	}
	h.saveProfile(c, p)
}

// saveProfile persists p and responds with the recomputed targets.
func (h *Handler) saveProfile(c *gin.Context, p nutrition.Profile) {
	if err := h.profiles.Set(c, p); err != nil {
		if errors.Is(err, nutrition.ErrInvalidProfile) {
			apiError(c, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("Failed to save profile", "error", err)
		apiError(c, http.StatusInternalServerError, "failed to update profile")
		return
	}
	c.JSON(http.StatusOK, newProfileResponse(p))
}
