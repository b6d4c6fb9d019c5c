package main

import (
	"net/http"
	"testing"

	"lg/nutrition-tracker-go-api/internal/nutrition"
)

func TestGetProfile_Defaults(t *testing.T) {
	router := setupTestRouter()
	w := doRequest(router, "GET", "/api/profile", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp profileResponse
	decode(t, w, &resp)
	if resp.Profile != nutrition.DefaultProfile() {
		t.Errorf("profile = %+v, want defaults", resp.Profile)
	}
	if resp.BMR != 1452 || resp.TDEE != 2251 || resp.CalorieGoal != 2251 {
		t.Errorf("bmr/tdee/goal = %d/%d/%d, want 1452/2251/2251", resp.BMR, resp.TDEE, resp.CalorieGoal)
	}
	want := nutrition.NutritionGoals{Calories: 2251, Protein: 112, Carbs: 310, Fat: 63}
	if resp.Goals != want {
		t.Errorf("goals = %+v, want %+v", resp.Goals, want)
	}
	if resp.MacroSplit.Protein <= 0 || resp.MacroSplit.Carbs <= 0 || resp.MacroSplit.Fat <= 0 {
		t.Errorf("macro split = %+v, want positive shares", resp.MacroSplit)
	}
}

func TestPutProfile(t *testing.T) {
	router := setupTestRouter()
	body := `{"name":"Sam","age":30,"gender":"male","weight":70,"height":170,"activityLevel":"moderate","goal":"gain"}`
	w := doRequest(router, "PUT", "/api/profile", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp profileResponse
	decode(t, w, &resp)
	// male BMR 1618, TDEE round(1618*1.55) = 2508, gain +500
	if resp.BMR != 1618 || resp.TDEE != 2508 || resp.CalorieGoal != 3008 {
		t.Errorf("bmr/tdee/goal = %d/%d/%d, want 1618/2508/3008", resp.BMR, resp.TDEE, resp.CalorieGoal)
	}
	if resp.Goals.Protein != 154 {
		t.Errorf("protein = %d, want 154", resp.Goals.Protein)
	}

	// The saved profile is what GET returns next.
	w = doRequest(router, "GET", "/api/profile", "")
	decode(t, w, &resp)
	if resp.Profile.Name != "Sam" || resp.Profile.Goal != nutrition.Gain {
		t.Errorf("profile after PUT = %+v", resp.Profile)
	}
}

func TestPutProfile_Invalid(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"malformed JSON", `{"name":`},
		{"unknown activity level", `{"age":30,"gender":"male","weight":70,"height":170,"activityLevel":"very_active","goal":"gain"}`},
		{"unknown gender", `{"age":30,"gender":"x","weight":70,"height":170,"activityLevel":"light","goal":"gain"}`},
		{"missing weight", `{"age":30,"gender":"male","height":170,"activityLevel":"light","goal":"gain"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := setupTestRouter()
			w := doRequest(router, "PUT", "/api/profile", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}

			// Nothing was saved: defaults still come back.
			var resp profileResponse
			decode(t, doRequest(router, "GET", "/api/profile", ""), &resp)
			if resp.Profile != nutrition.DefaultProfile() {
				t.Errorf("profile changed after rejected PUT: %+v", resp.Profile)
			}
		})
	}
}

func TestPatchProfile(t *testing.T) {
	router := setupTestRouter()
	w := doRequest(router, "PATCH", "/api/profile", `{"goal":"lose","name":"Alex"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp profileResponse
	decode(t, w, &resp)
	if resp.CalorieGoal != 1751 {
		t.Errorf("calorie goal = %d, want 1751", resp.CalorieGoal)
	}
	if resp.Profile.Name != "Alex" || resp.Profile.Weight != 70 {
		t.Errorf("profile = %+v, want name Alex and untouched weight", resp.Profile)
	}
}

func TestPatchProfile_Rejects(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"no fields", `{}`},
		{"zero age", `{"age":0}`},
		{"unknown goal", `{"goal":"bulk"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(setupTestRouter(), "PATCH", "/api/profile", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}
