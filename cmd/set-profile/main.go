// CLI tool to write the nutrition profile to the configured store.
// Prompts for each field, showing the saved value as the default.
// Usage: go run ./cmd/set-profile
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"lg/nutrition-tracker-go-api/internal/config"
	"lg/nutrition-tracker-go-api/internal/nutrition"
	"lg/nutrition-tracker-go-api/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	kv, err := cfg.OpenKV(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to open storage: %v\n", err)
		os.Exit(1)
	}
	defer kv.Close()

	profiles := storage.NewProfileStore(kv)
	current, err := profiles.Get(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading profile: %v\n", err)
		os.Exit(1)
	}

	p, err := readProfile(bufio.NewReader(os.Stdin), os.Stdout, current)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading profile: %v\n", err)
		os.Exit(1)
	}
	if err := profiles.Set(ctx, p); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving profile: %v\n", err)
		os.Exit(1)
	}

	goals := nutrition.CalculateNutritionGoals(p)
	fmt.Printf("\nProfile saved!\n")
	fmt.Printf("  BMR:      %d kcal\n", nutrition.CalculateBMR(p))
	fmt.Printf("  TDEE:     %d kcal\n", nutrition.CalculateTDEE(p))
	fmt.Printf("  Calories: %d kcal\n", goals.Calories)
	fmt.Printf("  Protein:  %d g\n", goals.Protein)
	fmt.Printf("  Carbs:    %d g\n", goals.Carbs)
	fmt.Printf("  Fat:      %d g\n", goals.Fat)
}

// readProfile prompts for every field on w and reads answers from r. An empty
// answer keeps the value from current.
func readProfile(r *bufio.Reader, w io.Writer, current nutrition.Profile) (nutrition.Profile, error) {
	p := current
	ask := func(label, def string) string {
		fmt.Fprintf(w, "%s [%s]: ", label, def)
		line, _ := r.ReadString('\n')
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
		return def
	}

	p.Name = ask("Name", p.Name)

	age, err := strconv.Atoi(ask("Age", strconv.Itoa(p.Age)))
	if err != nil {
		return p, fmt.Errorf("age: %w", err)
	}
	p.Age = age

	p.Gender = nutrition.Gender(ask("Gender (male/female)", string(p.Gender)))

	if p.Weight, err = strconv.ParseFloat(ask("Weight (kg)", formatFloat(p.Weight)), 64); err != nil {
		return p, fmt.Errorf("weight: %w", err)
	}
	if p.Height, err = strconv.ParseFloat(ask("Height (cm)", formatFloat(p.Height)), 64); err != nil {
		return p, fmt.Errorf("height: %w", err)
	}

	p.ActivityLevel = nutrition.ActivityLevel(ask("Activity (sedentary/light/moderate/active/veryActive)", string(p.ActivityLevel)))
	p.Goal = nutrition.Goal(ask("Goal (lose/maintain/gain)", string(p.Goal)))

	return p, p.Validate()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
