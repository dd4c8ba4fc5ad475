// Package plans holds the built-in workout plans served when the model
// cannot produce a usable answer.
package plans

import "strings"

// Category identifies one of the canned plans
type Category int

const (
	General Category = iota
	Beginner
	CardioWeightLoss
	Strength
	HomeBodyweight
)

// String returns the category name used in logs and metrics
func (c Category) String() string {
	switch c {
	case Beginner:
		return "beginner"
	case CardioWeightLoss:
		return "cardio"
	case Strength:
		return "strength"
	case HomeBodyweight:
		return "home"
	default:
		return "general"
	}
}

type rule struct {
	category Category
	keywords []string
}

// rules are checked in order and the first match wins, so "beginner strength"
// resolves to Beginner. Do not reorder.
var rules = []rule{
	{Beginner, []string{"beginner", "start", "new"}},
	{CardioWeightLoss, []string{"cardio", "weight loss", "fat burn"}},
	{Strength, []string{"strength", "muscle", "build", "tone"}},
	{HomeBodyweight, []string{"home", "no gym", "bodyweight"}},
}

// Categorize maps a prompt to a plan category by keyword matching
func Categorize(prompt string) Category {
	lower := strings.ToLower(prompt)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.category
			}
		}
	}
	return General
}

// Select returns the canned plan for a prompt. It never fails and always
// returns the same text for the same prompt.
func Select(prompt string) string {
	return Plan(Categorize(prompt))
}

// Plan returns the plan text for a category
func Plan(c Category) string {
	switch c {
	case Beginner:
		return beginnerPlan
	case CardioWeightLoss:
		return cardioPlan
	case Strength:
		return strengthPlan
	case HomeBodyweight:
		return homePlan
	default:
		return generalPlan
	}
}
