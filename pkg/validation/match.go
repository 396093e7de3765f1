// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"
)

// MatchValidator collects warning-level checks over the caller-supplied match
// situation. Hard invariants are enforced separately before simulation; these
// checks flag values that are legal but usually indicate a data-entry mistake.
type MatchValidator struct {
	CurrentLead           int
	WicketsInHand         int
	ExtensionRunRate      float64
	ExtensionWicketChance float64
	PitchBowlingFactor    float64
	SessionsRemaining     int
	RainChanceBySession   []float64
}

// ValidateAll validates the match situation and returns warnings.
func (mv *MatchValidator) ValidateAll() []string {
	var warnings []string

	if mv.CurrentLead <= 0 {
		warnings = append(warnings, fmt.Sprintf("Current lead is %d - the declaration question normally arises only when ahead", mv.CurrentLead))
	}

	if mv.WicketsInHand == 0 {
		warnings = append(warnings, "No wickets in hand - the innings cannot be extended, only an immediate declaration is possible")
	}

	if mv.ExtensionRunRate > 6 {
		warnings = append(warnings, fmt.Sprintf("Extension run rate %.1f is unusually high for a late-innings push", mv.ExtensionRunRate))
	}

	if mv.ExtensionWicketChance > 0.5 {
		warnings = append(warnings, fmt.Sprintf("Extension wicket chance %.2f implies losing a wicket most overs", mv.ExtensionWicketChance))
	}

	if mv.PitchBowlingFactor > 2 {
		warnings = append(warnings, fmt.Sprintf("Pitch bowling factor %.2f is outside the usual range", mv.PitchBowlingFactor))
	}

	if len(mv.RainChanceBySession) > mv.SessionsRemaining {
		extra := len(mv.RainChanceBySession) - mv.SessionsRemaining
		warnings = append(warnings, fmt.Sprintf("%d rain chance entries beyond the remaining sessions will be ignored", extra))
	}

	return warnings
}
