package plans

import (
	"strings"
	"testing"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		prompt   string
		expected Category
	}{
		{"I'm a beginner", Beginner},
		{"where do I start?", Beginner},
		{"new to the gym", Beginner},
		{"beginner strength training", Beginner}, // first match wins
		{"cardio please", CardioWeightLoss},
		{"I want WEIGHT LOSS", CardioWeightLoss},
		{"fat burn circuit", CardioWeightLoss},
		{"strength block", Strength},
		{"gain muscle", Strength},
		{"tone my arms", Strength},
		{"cardio for muscle", CardioWeightLoss},
		{"workout at home", HomeBodyweight},
		{"no gym available", HomeBodyweight},
		{"bodyweight only", HomeBodyweight},
		{"legs day", General},
		{"", General},
	}

	for _, tt := range tests {
		if got := Categorize(tt.prompt); got != tt.expected {
			t.Errorf("Categorize(%q) = %s, want %s", tt.prompt, got, tt.expected)
		}
	}
}

func TestSelectDeterministic(t *testing.T) {
	prompts := []string{"beginner", "cardio", "strength", "home", "yoga flow", "   "}
	for _, p := range prompts {
		first := Select(p)
		second := Select(p)
		if first != second {
			t.Errorf("Select(%q) not deterministic", p)
		}
		if strings.TrimSpace(first) == "" {
			t.Errorf("Select(%q) returned empty plan", p)
		}
	}
}

func TestSelectPrecedence(t *testing.T) {
	if Select("beginner strength training") != Plan(Beginner) {
		t.Error("expected beginner plan for mixed beginner/strength prompt")
	}
	if Select("beginner strength training") == Plan(Strength) {
		t.Error("strength plan must not win over beginner")
	}
}

func TestPlansAreStructured(t *testing.T) {
	for _, c := range []Category{General, Beginner, CardioWeightLoss, Strength, HomeBodyweight} {
		text := Plan(c)
		for _, section := range []string{"WARM-UP", "COOL-DOWN"} {
			if !strings.Contains(text, section) {
				t.Errorf("%s plan missing %s section", c, section)
			}
		}
		if len(text) < 50 {
			t.Errorf("%s plan too short: %d", c, len(text))
		}
	}
}

func TestPlansAreDistinct(t *testing.T) {
	seen := make(map[string]Category)
	for _, c := range []Category{General, Beginner, CardioWeightLoss, Strength, HomeBodyweight} {
		if prev, ok := seen[Plan(c)]; ok {
			t.Errorf("%s and %s share the same plan text", prev, c)
		}
		seen[Plan(c)] = c
	}
}
