// Package extension simulates the batting side continuing its innings for a
// fixed number of overs before declaring.
package extension

import (
	"github.com/crickwise/declare-forecast/pkg/constants"
	"github.com/crickwise/declare-forecast/pkg/mathutil"
	"github.com/crickwise/declare-forecast/pkg/sampler"
)

// State tracks a single trial's innings. The transition to StateAllOut is the
// only way a trial ends before its allotted overs run out.
type State int

const (
	// StateBatting is the normal over-by-over accumulation state.
	StateBatting State = iota

	// StateAllOut means the side has lost its last wicket; one final partial
	// over of runs is banked and the trial ends.
	StateAllOut
)

// Result aggregates the extension trials for one declaration option. The mean
// run total becomes the expected addition to the lead; no distribution is
// carried forward.
type Result struct {
	MeanRuns    float64
	MeanWickets float64
}

// Simulate runs independent trials of batting on for the given number of
// overs and returns the mean runs added and wickets lost. With zero overs the
// result is exactly zero on both counts.
func Simulate(s *sampler.Sampler, runRate, wicketChance float64, wicketsInHand, overs, trials int) Result {
	if overs <= 0 || trials <= 0 {
		return Result{}
	}
	// With no wickets in hand there is no innings left to extend.
	if wicketsInHand <= 0 {
		return Result{}
	}

	totalRuns := 0
	totalWickets := 0
	for trial := 0; trial < trials; trial++ {
		runs, wickets := simulateTrial(s, runRate, wicketChance, wicketsInHand, overs)
		totalRuns += runs
		totalWickets += wickets
	}

	return Result{
		MeanRuns:    float64(totalRuns) / float64(trials),
		MeanWickets: float64(totalWickets) / float64(trials),
	}
}

// simulateTrial plays out one extension of up to the given overs. The wicket
// draw precedes the run draw each over; reaching the side's last wicket moves
// the trial to StateAllOut, which still banks one partial over of runs before
// ending the innings.
func simulateTrial(s *sampler.Sampler, runRate, wicketChance float64, wicketsInHand, overs int) (int, int) {
	state := StateBatting
	runs := 0
	wickets := 0

	for over := 0; over < overs && state == StateBatting; over++ {
		if s.Float64() < wicketChance {
			wickets++
			if wickets >= wicketsInHand {
				state = StateAllOut
			}
		}

		overMean := s.Gauss(runRate, constants.ExtensionRateStdDev)
		runs += mathutil.RoundRuns(s.Gauss(overMean, constants.ExtensionOverStdDev))
	}

	return runs, wickets
}
