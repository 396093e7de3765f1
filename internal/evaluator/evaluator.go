// Package evaluator sweeps the feasible declaration timings, simulates each
// one, and ranks the options by a risk-weighted utility.
package evaluator

import (
	"fmt"
	"math"
	"sort"

	"github.com/crickwise/declare-forecast/internal/chase"
	"github.com/crickwise/declare-forecast/internal/extension"
	"github.com/crickwise/declare-forecast/internal/ground"
	"github.com/crickwise/declare-forecast/internal/match"
	"github.com/crickwise/declare-forecast/pkg/constants"
	"github.com/crickwise/declare-forecast/pkg/sampler"
	"go.uber.org/zap"
)

// OptionOutcome describes one declaration timing after simulation. The slice
// returned by Evaluate is sorted descending by Utility; ties keep ascending
// declaration-overs order because the sweep starts at zero.
type OptionOutcome struct {
	chase.SimResult

	// Label is a human-readable declaration timing.
	Label string

	// DeclareAfterOvers is K, the overs batted on before declaring.
	DeclareAfterOvers int

	// ExpectAddedRuns is the mean runs added while batting on.
	ExpectAddedRuns float64

	// ExpectWicketsLost is the mean wickets lost while batting on.
	ExpectWicketsLost float64

	// MeanTarget is the chase target implied by the expected added runs.
	MeanTarget float64

	// Utility is the ranking score: winWeight*winP - lossWeight*lossP.
	Utility float64
}

// LossWeight maps risk appetite to the utility penalty on losing. Lower
// appetite penalizes losses harder.
func LossWeight(riskAppetite float64) float64 {
	switch {
	case riskAppetite < 1:
		return constants.LossWeightConservative
	case riskAppetite < 1.5:
		return constants.LossWeightBalanced
	default:
		return constants.LossWeightAggressive
	}
}

// Evaluate sweeps K from zero to the feasible maximum, simulating the
// extension and then the chase for each option, and returns the options
// ranked by utility together with the resolved ground preset. All validation
// happens before any trials run. Every entity is created fresh per call;
// nothing persists across evaluations.
func Evaluate(logger *zap.Logger, ctx match.Context, presets map[string]ground.Preset, trials int, seed int64) ([]OptionOutcome, ground.Preset, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := ctx.Validate(); err != nil {
		return nil, ground.Preset{}, err
	}
	if trials <= 0 {
		return nil, ground.Preset{}, fmt.Errorf("%w: trial count must be positive, got %d", match.ErrInvalidInput, trials)
	}

	preset, known := ground.Resolve(presets, ctx.PresetKey)
	if !known {
		logger.Warn("unknown ground preset key, using neutral preset",
			zap.String("op", "evaluator.Evaluate"),
			zap.String("presetKey", ctx.PresetKey),
		)
	}

	maxOvers := ctx.MaxDeclarationOvers()
	lossWeight := LossWeight(ctx.RiskAppetite)
	options := make([]OptionOutcome, 0, maxOvers+1)

	for k := 0; k <= maxOvers; k++ {
		// Each phase owns a fresh generator derived from the scenario seed so
		// results are reproducible and options are independent.
		extSampler := sampler.New(seed + int64(2*k))
		ext := extension.Simulate(extSampler, ctx.ExtensionRunRate, ctx.ExtensionWicketChance, ctx.WicketsInHand, k, trials)

		target := float64(ctx.CurrentLead) + math.Round(ext.MeanRuns)

		chaseSampler := sampler.New(seed + int64(2*k+1))
		params := chase.ParamsFor(ctx, preset, target, k)
		result := chase.Simulate(chaseSampler, params, trials)

		option := OptionOutcome{
			SimResult:         result,
			Label:             optionLabel(k),
			DeclareAfterOvers: k,
			ExpectAddedRuns:   ext.MeanRuns,
			ExpectWicketsLost: ext.MeanWickets,
			MeanTarget:        target,
			Utility:           constants.WinWeight*result.WinP - lossWeight*result.LossP,
		}
		options = append(options, option)

		logger.Debug("evaluated declaration option",
			zap.String("op", "evaluator.Evaluate"),
			zap.Int("declareAfterOvers", k),
			zap.Float64("meanTarget", option.MeanTarget),
			zap.Float64("winP", option.WinP),
			zap.Float64("drawP", option.DrawP),
			zap.Float64("lossP", option.LossP),
		)
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Utility > options[j].Utility
	})

	logger.Info("ranked declaration options",
		zap.String("op", "evaluator.Evaluate"),
		zap.Int("options", len(options)),
		zap.Int("trialsPerOption", trials),
		zap.String("preset", preset.Name),
		zap.Int("recommendedOvers", options[0].DeclareAfterOvers),
	)

	return options, preset, nil
}

func optionLabel(overs int) string {
	if overs == 0 {
		return "declare now"
	}
	if overs == 1 {
		return "bat on 1 over"
	}
	return fmt.Sprintf("bat on %d overs", overs)
}
