// Package chase simulates the opposing side's pursuit of a fixed target over
// a stochastic number of available overs. Every trial terminates in exactly
// one of three outcomes: the target is reached, the side is bowled out, or
// time expires.
package chase

import (
	"math"

	"github.com/crickwise/declare-forecast/internal/ground"
	"github.com/crickwise/declare-forecast/internal/match"
	"github.com/crickwise/declare-forecast/pkg/constants"
	"github.com/crickwise/declare-forecast/pkg/mathutil"
	"github.com/crickwise/declare-forecast/pkg/sampler"
)

// Outcome is the terminal state of one chase trial, named from the declaring
// side's point of view.
type Outcome int

const (
	// OutcomeWin means the chasing side was bowled out short of the target.
	OutcomeWin Outcome = iota

	// OutcomeDraw means the overs ran out with the chase incomplete.
	OutcomeDraw

	// OutcomeLoss means the chasing side reached the target.
	OutcomeLoss
)

// SimResult aggregates the trials for one declaration option. Probabilities
// are trial-count fractions; ExpectedMargin is the mean of target minus runs,
// so positive values favor the declaring side.
type SimResult struct {
	WinP           float64
	DrawP          float64
	LossP          float64
	ExpectedMargin float64
}

// Params fixes everything a chase simulation needs beyond its sampler. The
// initial hazard values are already scaled and clamped.
type Params struct {
	Target               float64
	DeclareAfterOvers    int
	OversLeftThisSession int
	OversPerSession      int
	SessionsRemaining    int
	RainChanceBySession  []float64
	RunRate              float64
	WicketProbability    float64
}

// ParamsFor derives chase parameters from the match situation. The baseline
// hazard is scaled by the bowling/batting strength ratio, the ground preset,
// and the pitch factor, then clamped to realistic bounds.
func ParamsFor(ctx match.Context, preset ground.Preset, target float64, declareAfter int) Params {
	strengthRatio := ctx.OwnBowling / ctx.OppositionBatting

	wicketProb := constants.BaseWicketProbability * strengthRatio * preset.WicketHelp * ctx.PitchBowlingFactor
	wicketProb = mathutil.Clamp(wicketProb, constants.MinWicketProbability, constants.MaxWicketProbability)

	runRate := constants.BaseChaseRunRate / strengthRatio * preset.ChaseEase / ctx.PitchBowlingFactor
	runRate = mathutil.Clamp(runRate, constants.MinChaseRunRate, constants.MaxChaseRunRate)

	return Params{
		Target:               target,
		DeclareAfterOvers:    declareAfter,
		OversLeftThisSession: ctx.OversLeftThisSession,
		OversPerSession:      ctx.OversPerSession,
		SessionsRemaining:    ctx.SessionsRemaining,
		RainChanceBySession:  ctx.RainChanceBySession,
		RunRate:              runRate,
		WicketProbability:    wicketProb,
	}
}

// Simulate runs independent chase trials and aggregates their outcomes. The
// available overs are resampled per trial, so weather attrition varies across
// trials rather than being fixed once per option.
func Simulate(s *sampler.Sampler, p Params, trials int) SimResult {
	if trials <= 0 {
		return SimResult{}
	}

	wins := 0
	draws := 0
	losses := 0
	marginSum := 0.0

	for trial := 0; trial < trials; trial++ {
		available := availableOvers(s, p)
		outcome, margin := simulateTrial(s, p.Target, available, p.RunRate, p.WicketProbability)
		switch outcome {
		case OutcomeWin:
			wins++
		case OutcomeDraw:
			draws++
		case OutcomeLoss:
			losses++
		}
		marginSum += margin
	}

	n := float64(trials)
	return SimResult{
		WinP:           float64(wins) / n,
		DrawP:          float64(draws) / n,
		LossP:          float64(losses) / n,
		ExpectedMargin: marginSum / n,
	}
}

// availableOvers samples the overs the chasing side gets in one trial: the
// current session's remainder after the extension, plus each fully remaining
// session reduced by any rain event.
func availableOvers(s *sampler.Sampler, p Params) float64 {
	remainder := p.OversLeftThisSession - p.DeclareAfterOvers
	if remainder < 0 {
		remainder = 0
	}
	total := float64(remainder)

	for session := 1; session < p.SessionsRemaining; session++ {
		overs := float64(p.OversPerSession)
		if session < len(p.RainChanceBySession) && s.Float64() < p.RainChanceBySession[session] {
			lost := constants.MinRainLossFraction +
				(constants.MaxRainLossFraction-constants.MinRainLossFraction)*s.Float64()
			overs *= 1 - lost
		}
		total += overs
	}

	return total
}

// simulateTrial plays out a single chase over-by-over. Termination is checked
// in a fixed order after each over's update: target reached, then all out,
// then time expired. The draw check fires at over index
// floor(availableOvers)-1 even though the loop bound admits one more index
// when availableOvers is fractional, so the final partial over is never
// played; that asymmetry is intentional and left in place.
func simulateTrial(s *sampler.Sampler, target, availableOvers, runRate, wicketProb float64) (Outcome, float64) {
	runs := 0
	wickets := 0
	rate := runRate
	hazard := wicketProb
	drawBoundary := math.Floor(availableOvers) - 1

	for over := 0; float64(over) < availableOvers; over++ {
		if over > 0 && over%constants.WearInterval == 0 {
			rate = mathutil.Max(constants.WearRateFloor, rate*constants.WearRateDecay)
			hazard = mathutil.Min(constants.WicketProbabilityCeiling, hazard+constants.WearHazardStep)
		}

		oversRemaining := availableOvers - float64(over)
		required := (target - float64(runs)) / oversRemaining
		pressure := 0.0
		if required > rate {
			pressure = mathutil.Min(constants.MaxPressureBonus, required-rate)
		}

		runs += mathutil.RoundRuns(s.Gauss(rate+pressure, constants.ChaseOverStdDev))

		if s.Float64() < hazard {
			wickets++
			hazard = mathutil.Min(constants.WicketProbabilityCeiling, hazard+constants.WicketHazardStep)
		}

		if float64(runs) >= target {
			return OutcomeLoss, target - float64(runs)
		}
		if wickets >= constants.MaxWicketsInHand {
			return OutcomeWin, target - float64(runs)
		}
		if float64(over) >= drawBoundary {
			return OutcomeDraw, target - float64(runs)
		}
	}

	// No overs were available at all; the match peters out untouched.
	return OutcomeDraw, target - float64(runs)
}
