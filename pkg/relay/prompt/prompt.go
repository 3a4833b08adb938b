// Package prompt builds the system and user turns for the style-analysis
// and script-generation endpoints, along with their generation parameters.
package prompt

import (
	"fmt"
	"math"
	"strings"
)

// Fixed generation parameters for style analysis.
const (
	StyleMaxTokens   = 600
	StyleTemperature = 0.5
)

// ScriptTemperature is the fixed sampling temperature for script generation.
const ScriptTemperature = 0.7

// Token budget bounds for script generation.
const (
	minScriptTokens = 256
	maxScriptTokens = 2000

	// wordsPerToken is the heuristic used to convert a requested word count
	// into a token budget.
	wordsPerToken = 0.75
)

const styleSystemPrompt = `You are a meticulous literary style analyst. Study the writing samples provided by the user and produce two sections:

1. "Master Style" — a bullet list capturing the author's voice: diction, rhythm, pacing, sentence structure, imagery, and recurring devices.
2. "Voice Overview" — a short paragraph summarizing how the author sounds and what makes the voice distinctive.

Base every observation strictly on the samples. Do not invent traits the samples do not support.`

// StyleAnalysis returns the system and user turns for a style-analysis
// request. Samples are concatenated into the user turn as enumerated
// "Sample N:" blocks separated by blank lines.
func StyleAnalysis(samples []string) (system, user string) {
	var b strings.Builder
	for i, sample := range samples {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "Sample %d:\n%s", i+1, sample)
	}
	return styleSystemPrompt, b.String()
}

// Script returns the system and user turns for a script-generation request.
// Intensity runs from 1 (light relaxation) to 10 (profound trance); values
// outside that range are clamped.
func Script(styleSummary, theme string, length, intensity int) (system, user string) {
	if intensity < 1 {
		intensity = 1
	}
	if intensity > 10 {
		intensity = 10
	}

	system = fmt.Sprintf(`You are an experienced hypnotherapy script writer. Write a complete hypnosis script of approximately %d words at intensity %d on a scale of 1 (light relaxation) to 10 (profound trance).

Structure the script in four phases:
1. A gentle induction that settles attention and breath.
2. A deepening phase appropriate to the requested intensity.
3. A main body developing the session's theme.
4. A gentle exit returning the listener to full, refreshed awareness.

Write in the narrator's voice described by the style summary in the user message. Output only the script text.`, length, intensity)

	var b strings.Builder
	if theme != "" {
		fmt.Fprintf(&b, "Theme: %s\n\n", theme)
	}
	b.WriteString(styleSummary)
	return system, b.String()
}

// ScriptTokenBudget converts a requested word length into an upstream token
// budget, assuming roughly 0.75 words per token and bounding the result to
// a sane range.
func ScriptTokenBudget(length int) int {
	budget := int(math.Round(float64(length) / wordsPerToken))
	if budget < minScriptTokens {
		return minScriptTokens
	}
	if budget > maxScriptTokens {
		return maxScriptTokens
	}
	return budget
}
