package main

import "lg/nutrition-tracker-go-api/internal/nutrition"

/* ─── Responses ──────────────────────────────────────────────────────── */

// profileResponse is the profile plus every target derived from it. The
// derived fields are recomputed on each request and never stored.
type profileResponse struct {
	Profile     nutrition.Profile        `json:"profile"`
	BMR         int                      `json:"bmr"`
	TDEE        int                      `json:"tdee"`
	CalorieGoal int                      `json:"calorie_goal"`
	Goals       nutrition.NutritionGoals `json:"goals"`
	MacroSplit  nutrition.MacroSplit     `json:"macro_split"`
}

func newProfileResponse(p nutrition.Profile) profileResponse {
	goals := nutrition.CalculateNutritionGoals(p)
	return profileResponse{
		Profile:     p,
		BMR:         nutrition.CalculateBMR(p),
		TDEE:        nutrition.CalculateTDEE(p),
		CalorieGoal: goals.Calories,
		Goals:       goals,
		MacroSplit:  nutrition.MacroSplitOf(goals),
	}
}

// dailySummary is the response shape for GET /api/food-log/daily.
// Includes the day's entries, navigation dates, totals, progress and advice.
type dailySummary struct {
	Date     nutrition.DateOnly       `json:"date"`
	Label    string                   `json:"label"`
	PrevDate nutrition.DateOnly       `json:"prev_date"`
	NextDate nutrition.DateOnly       `json:"next_date"`
	Entries  []nutrition.FoodEntry    `json:"entries"`
	Summary  nutrition.DailySummary   `json:"summary"`
	Goals    nutrition.NutritionGoals `json:"goals"`
	Progress nutrition.MacroProgress  `json:"progress"`
	Advice   []nutrition.Advice       `json:"advice"`
}

// adviceResponse is the response shape for GET /api/advice.
type adviceResponse struct {
	Date   nutrition.DateOnly `json:"date"`
	Advice []nutrition.Advice `json:"advice"`
}

// dateLabel is a date with its display label, returned by GET /api/dates/shift.
type dateLabel struct {
	Date  nutrition.DateOnly `json:"date"`
	Label string             `json:"label"`
}

/* ─── Requests ───────────────────────────────────────────────────────── */

// createFoodEntryRequest is the request body for POST /api/food-log/entries.
// Macros are optional and default to 0; date defaults to today.
type createFoodEntryRequest struct {
	Name     string   `json:"name"`
	Calories *float64 `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fat      *float64 `json:"fat"`
	Date     string   `json:"date"`
}

// patchProfileRequest is the request body for PATCH /api/profile.
// All fields are pointers; only non-nil fields are applied.
type patchProfileRequest struct {
	Name          *string                  `json:"name"`
	Age           *int                     `json:"age"`
	Gender        *nutrition.Gender        `json:"gender"`
	Weight        *float64                 `json:"weight"`
	Height        *float64                 `json:"height"`
	ActivityLevel *nutrition.ActivityLevel `json:"activityLevel"`
	Goal          *nutrition.Goal          `json:"goal"`
}

// apply copies the provided fields onto p and reports whether any were set.
func (r patchProfileRequest) apply(p *nutrition.Profile) bool {
	changed := false
	if r.Name != nil {
		p.Name, changed = *r.Name, true
	}
	if r.Age != nil {
		p.Age, changed = *r.Age, true
	}
	if r.Gender != nil {
		p.Gender, changed = *r.Gender, true
	}
	if r.Weight != nil {
		p.Weight, changed = *r.Weight, true
	}
	if r.Height != nil {
		p.Height, changed = *r.Height, true
	}
	if r.ActivityLevel != nil {
		p.ActivityLevel, changed = *r.ActivityLevel, true
	}
	if r.Goal != nil {
		p.Goal, changed = *r.Goal, true
	}
	return changed
}
