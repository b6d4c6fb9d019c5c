package nutrition

import "math"

// Calories per gram of each macronutrient.
const (
	proteinKcalPerGram = 4
	carbsKcalPerGram   = 4
	fatKcalPerGram     = 9
)

// fatShareOfCalories is the fraction of the calorie goal reserved for fat.
const fatShareOfCalories = 0.25

// goalAdjustment is the daily calorie surplus (gain) or deficit (lose).
const goalAdjustment = 500

// activityMultipliers maps activity levels to their TDEE multiplier.
// This is also the source of truth for valid levels in Profile.Validate.
var activityMultipliers = map[ActivityLevel]float64{
	Sedentary:  1.2,
	Light:      1.375,
	Moderate:   1.55,
	Active:     1.725,
	VeryActive: 1.9,
}

// NutritionGoals are the daily targets derived from a Profile. Macros are in grams.
type NutritionGoals struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// CalculateBMR returns basal metabolic rate in kcal/day via Mifflin-St Jeor.
// Anything other than female uses the male constant.
func CalculateBMR(p Profile) int {
	bmr := 10*p.Weight + 6.25*p.Height - 5*float64(p.Age)
	if p.Gender == Female {
		bmr -= 161
	} else {
		bmr += 5
	}
	return int(math.Round(bmr))
}

// CalculateTDEE scales the rounded BMR by the activity multiplier.
// An unvalidated, unknown activity level yields 0.
func CalculateTDEE(p Profile) int {
	return int(math.Round(float64(CalculateBMR(p)) * activityMultipliers[p.ActivityLevel]))
}

// CalculateCalorieGoal adjusts TDEE by 500 kcal in the direction of the goal.
func CalculateCalorieGoal(p Profile) int {
	tdee := CalculateTDEE(p)
	switch p.Goal {
	case Lose:
		return tdee - goalAdjustment
	case Gain:
		return tdee + goalAdjustment
	default:
		return tdee
	}
}

// proteinPerKg is grams of protein per kg of body weight for a goal.
func proteinPerKg(g Goal) float64 {
	switch g {
	case Gain:
		return 2.2
	case Lose:
		return 2.0
	default:
		return 1.6
	}
}

// CalculateNutritionGoals derives calorie and macro targets from the profile.
//
// Carbs fill whatever the protein and fat targets leave. Protein calories come
// from the rounded gram target while fat calories stay unrounded; the carb
// target is not clamped and goes negative for extreme profiles.
func CalculateNutritionGoals(p Profile) NutritionGoals {
	calories := CalculateCalorieGoal(p)
	protein := int(math.Round(p.Weight * proteinPerKg(p.Goal)))
	fatCalories := fatShareOfCalories * float64(calories)
	carbs := (float64(calories) - float64(protein*proteinKcalPerGram) - fatCalories) / carbsKcalPerGram
	return NutritionGoals{
		Calories: calories,
		Protein:  protein,
		Carbs:    int(math.Round(carbs)),
		Fat:      int(math.Round(fatCalories / fatKcalPerGram)),
	}
}

// MacroSplit is the percentage of the calorie goal each macro target accounts for.
type MacroSplit struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// MacroSplitOf reports each macro target as a share of the calorie goal.
// A zero calorie goal gives all zeros.
func MacroSplitOf(g NutritionGoals) MacroSplit {
	cal := float64(g.Calories)
	return MacroSplit{
		Protein: percent(float64(g.Protein*proteinKcalPerGram), cal),
		Carbs:   percent(float64(g.Carbs*carbsKcalPerGram), cal),
		Fat:     percent(float64(g.Fat*fatKcalPerGram), cal),
	}
}

// percent returns part/whole*100, or 0 when whole is not positive.
func percent(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return part / whole * 100
}
