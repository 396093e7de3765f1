// Package match defines the immutable match situation supplied by the caller
// for one evaluation, along with its input validation.
package match

import (
	"errors"
	"fmt"

	"github.com/crickwise/declare-forecast/pkg/constants"
)

// ErrInvalidInput marks a validation failure for caller-supplied match data.
// Validation runs before any trials so a partial simulation is never reported.
var ErrInvalidInput = errors.New("invalid input")

// Context holds the full match situation for one evaluation. It is treated as
// immutable once handed to the evaluator and is discarded after the ranked
// option list is returned.
type Context struct {
	// Ground is a free-form ground identifier used in output and logs.
	Ground string

	// PresetKey selects the ground preset; unrecognized keys resolve to the
	// neutral preset.
	PresetKey string

	// OversPerSession is the nominal overs bowled in a full session.
	OversPerSession int

	// SessionsRemaining counts the sessions left in the match, including the
	// current (possibly partial) one.
	SessionsRemaining int

	// OversLeftThisSession is the remainder of the current session.
	OversLeftThisSession int

	// CurrentLead is the batting side's lead in runs; it is the baseline of
	// any eventual chase target.
	CurrentLead int

	// WicketsInHand is how many wickets the batting side still holds (0-10).
	WicketsInHand int

	// ExtensionRunRate is the assumed runs per over while batting on.
	ExtensionRunRate float64

	// ExtensionWicketChance is the assumed per-over wicket probability while
	// batting on.
	ExtensionWicketChance float64

	// OppositionBatting rates the chasing side's batting strength.
	OppositionBatting float64

	// OwnBowling rates the declaring side's bowling strength.
	OwnBowling float64

	// PitchBowlingFactor is a ratio; values above 1 favor the bowling side.
	PitchBowlingFactor float64

	// RainChanceBySession gives, per remaining session, the probability of a
	// rain event. Index 0 is the current session. Length must be at least
	// SessionsRemaining.
	RainChanceBySession []float64

	// RiskAppetite is a scalar in [0, 2]; lower values penalize losing harder
	// when ranking options.
	RiskAppetite float64
}

// Validate checks the invariants required before any simulation runs. It
// fails fast with an ErrInvalidInput-wrapped error rather than silently
// substituting defaults.
func (c Context) Validate() error {
	if c.OversPerSession <= 0 {
		return fmt.Errorf("%w: overs per session must be positive, got %d", ErrInvalidInput, c.OversPerSession)
	}
	if c.SessionsRemaining < 1 {
		return fmt.Errorf("%w: at least one session must remain, got %d", ErrInvalidInput, c.SessionsRemaining)
	}
	if c.OversLeftThisSession < 0 {
		return fmt.Errorf("%w: overs left this session cannot be negative, got %d", ErrInvalidInput, c.OversLeftThisSession)
	}
	if c.WicketsInHand < 0 || c.WicketsInHand > constants.MaxWicketsInHand {
		return fmt.Errorf("%w: wickets in hand must be in [0, %d], got %d", ErrInvalidInput, constants.MaxWicketsInHand, c.WicketsInHand)
	}
	if c.ExtensionRunRate < 0 {
		return fmt.Errorf("%w: extension run rate cannot be negative, got %v", ErrInvalidInput, c.ExtensionRunRate)
	}
	if c.ExtensionWicketChance < 0 || c.ExtensionWicketChance > 1 {
		return fmt.Errorf("%w: extension wicket chance must be in [0, 1], got %v", ErrInvalidInput, c.ExtensionWicketChance)
	}
	if c.OppositionBatting <= 0 {
		return fmt.Errorf("%w: opposition batting strength must be positive, got %v", ErrInvalidInput, c.OppositionBatting)
	}
	if c.OwnBowling <= 0 {
		return fmt.Errorf("%w: own bowling strength must be positive, got %v", ErrInvalidInput, c.OwnBowling)
	}
	if c.PitchBowlingFactor <= 0 {
		return fmt.Errorf("%w: pitch bowling factor must be positive, got %v", ErrInvalidInput, c.PitchBowlingFactor)
	}
	if len(c.RainChanceBySession) < c.SessionsRemaining {
		return fmt.Errorf("%w: rain chances cover %d sessions but %d remain", ErrInvalidInput, len(c.RainChanceBySession), c.SessionsRemaining)
	}
	for i, chance := range c.RainChanceBySession {
		if chance < 0 || chance > 1 {
			return fmt.Errorf("%w: rain chance for session %d must be in [0, 1], got %v", ErrInvalidInput, i, chance)
		}
	}
	if c.RiskAppetite < 0 || c.RiskAppetite > constants.MaxRiskAppetite {
		return fmt.Errorf("%w: risk appetite must be in [0, %v], got %v", ErrInvalidInput, constants.MaxRiskAppetite, c.RiskAppetite)
	}
	return nil
}

// MaxDeclarationOvers is the largest K the batting side can bat on for: the
// lesser of the sweep cap and the overs physically available (current session
// remainder plus full future sessions).
func (c Context) MaxDeclarationOvers() int {
	available := c.OversLeftThisSession + (c.SessionsRemaining-1)*c.OversPerSession
	if available < constants.MaxDeclarationOvers {
		return available
	}
	return constants.MaxDeclarationOvers
}
