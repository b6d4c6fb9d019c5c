// Package nutrition holds the energy model, daily aggregation and advice rules.
// Everything here is pure: no I/O, no clocks except those passed in.
package nutrition

import (
	"errors"
	"fmt"
)

// ErrInvalidProfile is wrapped by Profile.Validate for any enum or range violation.
var ErrInvalidProfile = errors.New("invalid profile")

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

type ActivityLevel string

const (
	Sedentary  ActivityLevel = "sedentary"
	Light      ActivityLevel = "light"
	Moderate   ActivityLevel = "moderate"
	Active     ActivityLevel = "active"
	VeryActive ActivityLevel = "veryActive"
)

type Goal string

const (
	Lose     Goal = "lose"
	Maintain Goal = "maintain"
	Gain     Goal = "gain"
)

// Profile is the single user record that every target is derived from.
// Weight is in kg, height in cm.
type Profile struct {
	Name          string        `json:"name"`
	Age           int           `json:"age"`
	Gender        Gender        `json:"gender"`
	Weight        float64       `json:"weight"`
	Height        float64       `json:"height"`
	ActivityLevel ActivityLevel `json:"activityLevel"`
	Goal          Goal          `json:"goal"`
}

// DefaultProfile is restored whenever no usable profile has been saved.
func DefaultProfile() Profile {
	return Profile{
		Age:           30,
		Gender:        Female,
		Weight:        70,
		Height:        170,
		ActivityLevel: Moderate,
		Goal:          Maintain,
	}
}

// Validate checks the enum fields and that age, weight and height are positive.
// The energy model assumes a profile that passed this check.
func (p Profile) Validate() error {
	if p.Age <= 0 {
		return fmt.Errorf("%w: age must be positive", ErrInvalidProfile)
	}
	if p.Weight <= 0 {
		return fmt.Errorf("%w: weight must be positive", ErrInvalidProfile)
	}
	if p.Height <= 0 {
		return fmt.Errorf("%w: height must be positive", ErrInvalidProfile)
	}
	if p.Gender != Male && p.Gender != Female {
		return fmt.Errorf("%w: gender must be one of: male, female", ErrInvalidProfile)
	}
	if _, ok := activityMultipliers[p.ActivityLevel]; !ok {
		return fmt.Errorf("%w: activityLevel must be one of: sedentary, light, moderate, active, veryActive", ErrInvalidProfile)
	}
	switch p.Goal {
	case Lose, Maintain, Gain:
	default:
		return fmt.Errorf("%w: goal must be one of: lose, maintain, gain", ErrInvalidProfile)
	}
	return nil
}
