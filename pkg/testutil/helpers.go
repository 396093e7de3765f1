// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/crickwise/declare-forecast/internal/evaluator"
)

// FindOption finds the outcome for a given declaration-overs value in the
// ranked results slice. Returns a pointer to the outcome if found, nil
// otherwise.
func FindOption(options []evaluator.OptionOutcome, declareAfterOvers int) *evaluator.OptionOutcome {
	for i := range options {
		if options[i].DeclareAfterOvers == declareAfterOvers {
			return &options[i]
		}
	}
	return nil
}
