package nutrition

// FoodEntry is one logged food. Entries are immutable once created.
type FoodEntry struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Calories float64  `json:"calories"`
	Protein  float64  `json:"protein"`
	Carbs    float64  `json:"carbs"`
	Fat      float64  `json:"fat"`
	Date     DateOnly `json:"date"`
}

// DailySummary is the total intake for one calendar day.
type DailySummary struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// EntriesOn returns the entries logged on date, keeping their original order.
func EntriesOn(entries []FoodEntry, date DateOnly) []FoodEntry {
	out := []FoodEntry{}
	for _, e := range entries {
		if e.Date.SameDay(date) {
			out = append(out, e)
		}
	}
	return out
}

// Summarize sums calories and macros over the entries logged on date.
func Summarize(entries []FoodEntry, date DateOnly) DailySummary {
	var s DailySummary
	for _, e := range entries {
		if !e.Date.SameDay(date) {
			continue
		}
		s.Calories += e.Calories
		s.Protein += e.Protein
		s.Carbs += e.Carbs
		s.Fat += e.Fat
	}
	return s
}

// NutrientProgress compares one consumed total against its target.
type NutrientProgress struct {
	Consumed float64 `json:"consumed"`
	Goal     float64 `json:"goal"`
	Percent  float64 `json:"percent"`
}

// MacroProgress is the day's intake measured against the goals.
type MacroProgress struct {
	Calories          NutrientProgress `json:"calories"`
	Protein           NutrientProgress `json:"protein"`
	Carbs             NutrientProgress `json:"carbs"`
	Fat               NutrientProgress `json:"fat"`
	RemainingCalories float64          `json:"remaining_calories"`
}

// ProgressOf reports consumption as a percentage of each goal. A goal of zero
// or less reports 0% rather than dividing by it.
func ProgressOf(s DailySummary, g NutritionGoals) MacroProgress {
	np := func(consumed float64, goal int) NutrientProgress {
		return NutrientProgress{Consumed: consumed, Goal: float64(goal), Percent: percent(consumed, float64(goal))}
	}
	return MacroProgress{
		Calories:          np(s.Calories, g.Calories),
		Protein:           np(s.Protein, g.Protein),
		Carbs:             np(s.Carbs, g.Carbs),
		Fat:               np(s.Fat, g.Fat),
		RemainingCalories: float64(g.Calories) - s.Calories,
	}
}
