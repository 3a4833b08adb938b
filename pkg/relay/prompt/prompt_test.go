package prompt

import (
	"strings"
	"testing"
)

func TestScriptTokenBudget(t *testing.T) {
	tests := []struct {
		name   string
		length int
		want   int
	}{
		{name: "zero length clamps to minimum", length: 0, want: 256},
		{name: "small length clamps to minimum", length: 100, want: 256},
		{name: "exact minimum boundary", length: 192, want: 256},
		{name: "default length", length: 400, want: 533},
		{name: "exact maximum boundary", length: 1500, want: 2000},
		{name: "huge length clamps to maximum", length: 100000, want: 2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScriptTokenBudget(tt.length); got != tt.want {
				t.Errorf("ScriptTokenBudget(%d) = %d, want %d", tt.length, got, tt.want)
			}
		})
	}
}

func TestStyleAnalysisUserTurn(t *testing.T) {
	_, user := StyleAnalysis([]string{"A", "B"})

	want := "Sample 1:\nA\n\nSample 2:\nB"
	if user != want {
		t.Errorf("user turn = %q, want %q", user, want)
	}
}

func TestStyleAnalysisSystemPrompt(t *testing.T) {
	system, _ := StyleAnalysis([]string{"anything"})

	for _, marker := range []string{"Master Style", "Voice Overview"} {
		if !strings.Contains(system, marker) {
			t.Errorf("system prompt missing %q", marker)
		}
	}
}

func TestScriptUserTurn(t *testing.T) {
	tests := []struct {
		name         string
		styleSummary string
		theme        string
		want         string
	}{
		{
			name:         "without theme",
			styleSummary: "calm and warm",
			want:         "calm and warm",
		},
		{
			name:         "with theme",
			styleSummary: "calm and warm",
			theme:        "ocean waves",
			want:         "Theme: ocean waves\n\ncalm and warm",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, user := Script(tt.styleSummary, tt.theme, 400, 6)
			if user != tt.want {
				t.Errorf("user turn = %q, want %q", user, tt.want)
			}
		})
	}
}

func TestScriptIntensityClamped(t *testing.T) {
	tests := []struct {
		name      string
		intensity int
		want      string
	}{
		{name: "below range", intensity: -3, want: "intensity 1 "},
		{name: "above range", intensity: 99, want: "intensity 10 "},
		{name: "in range", intensity: 7, want: "intensity 7 "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			system, _ := Script("summary", "", 400, tt.intensity)
			if !strings.Contains(system, tt.want) {
				t.Errorf("system prompt does not contain %q:\n%s", tt.want, system)
			}
		})
	}
}

func TestScriptSystemPromptStructure(t *testing.T) {
	system, _ := Script("summary", "", 800, 5)

	if !strings.Contains(system, "approximately 800 words") {
		t.Errorf("system prompt missing word target:\n%s", system)
	}
	for _, phase := range []string{"induction", "deepening", "exit"} {
		if !strings.Contains(strings.ToLower(system), phase) {
			t.Errorf("system prompt missing %q phase", phase)
		}
	}
}
