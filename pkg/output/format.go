// Package output provides utilities for formatting and displaying ranked
// declaration options.
package output

import (
	"fmt"
	"strings"

	"github.com/crickwise/declare-forecast/internal/evaluator"
	"github.com/crickwise/declare-forecast/internal/ground"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(options []evaluator.OptionOutcome, preset ground.Preset) {
	p := message.NewPrinter(language.English)
	fmt.Printf("--- Declaration options for %s ---\n", preset.Name)
	fmt.Printf("Option            | Win   | Draw  | Loss  | Target | Margin  | Utility\n")
	fmt.Printf("______            | ___   | ____  | ____  | ______ | ______  | _______\n")
	for _, option := range options {
		_, _ = p.Printf("%-17s | %.3f | %.3f | %.3f | %6.0f | %+7.1f | %+.3f\n",
			option.Label, option.WinP, option.DrawP, option.LossP,
			option.MeanTarget, option.ExpectedMargin, option.Utility)
	}
	if len(options) > 0 {
		fmt.Printf("\nRecommendation: %s (win %.1f%%, loss %.1f%%)\n",
			options[0].Label, options[0].WinP*100, options[0].LossP*100)
	}
	if len(options) > 1 {
		fmt.Printf("Runner-up: %s\n", options[1].Label)
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(options []evaluator.OptionOutcome) {
	fmt.Printf(`"label","declareAfterOvers","winP","drawP","lossP","expectAddedRuns","expectWicketsLost","meanTarget","expectedMargin","utility"`)
	fmt.Printf("\n")
	for _, option := range options {
		fmt.Printf(`"%s","%d","%.4f","%.4f","%.4f","%.2f","%.2f","%.0f","%.2f","%.4f"`,
			strings.ReplaceAll(option.Label, `"`, `""`), option.DeclareAfterOvers,
			option.WinP, option.DrawP, option.LossP,
			option.ExpectAddedRuns, option.ExpectWicketsLost,
			option.MeanTarget, option.ExpectedMargin, option.Utility)
		fmt.Printf("\n")
	}
}
