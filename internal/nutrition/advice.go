package nutrition

// AdviceKind identifies which rule produced a piece of advice.
type AdviceKind string

const (
	AdviceOverCalories  AdviceKind = "over_calories"
	AdviceUnderCalories AdviceKind = "under_calories"
	AdviceLowProtein    AdviceKind = "low_protein"
	AdviceFatReached    AdviceKind = "fat_reached"
	AdviceOnTrack       AdviceKind = "on_track"
)

// Advice is one canned message shown under the daily summary.
type Advice struct {
	Kind    AdviceKind `json:"kind"`
	Message string     `json:"message"`
}

var adviceMessages = map[AdviceKind]string{
	AdviceOverCalories:  "You're over your calorie goal for today. Consider a lighter meal or some extra activity.",
	AdviceUnderCalories: "You're well under your calorie goal. Make sure you eat enough to fuel your day.",
	AdviceLowProtein:    "Your protein intake is low. Try adding lean meat, eggs or legumes to your next meal.",
	AdviceFatReached:    "You've reached your fat target for today. Favor lower-fat foods for the rest of the day.",
	AdviceOnTrack:       "Great job! You're on track with your nutrition goals today.",
}

// overCaloriesMargin is how far past the calorie goal intake may go before warning.
const overCaloriesMargin = 200

func advice(k AdviceKind) Advice {
	return Advice{Kind: k, Message: adviceMessages[k]}
}

// Advise applies the threshold rules in a fixed order. The two calorie rules
// are exclusive; the protein and fat rules apply independently. When nothing
// fires the result is a single on-track message.
func Advise(s DailySummary, g NutritionGoals) []Advice {
	var out []Advice
	goalCalories := float64(g.Calories)
	remaining := goalCalories - s.Calories

	if remaining < -overCaloriesMargin {
		out = append(out, advice(AdviceOverCalories))
	} else if remaining > 0.5*goalCalories {
		out = append(out, advice(AdviceUnderCalories))
	}
	if s.Protein < 0.6*float64(g.Protein) && s.Calories > 0.5*goalCalories {
		out = append(out, advice(AdviceLowProtein))
	}
	if s.Fat > float64(g.Fat) {
		out = append(out, advice(AdviceFatReached))
	}

	if len(out) == 0 {
		out = append(out, advice(AdviceOnTrack))
	}
	return out
}
