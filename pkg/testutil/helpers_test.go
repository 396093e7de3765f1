package testutil

import (
	"testing"

	"github.com/crickwise/declare-forecast/internal/evaluator"
)

func TestFindOption(t *testing.T) {
	options := []evaluator.OptionOutcome{
		{Label: "declare now", DeclareAfterOvers: 0, Utility: 0.4},
		{Label: "bat on 5 overs", DeclareAfterOvers: 5, Utility: 0.5},
	}

	found := FindOption(options, 5)
	if found == nil {
		t.Fatalf("FindOption(5) = nil, expected a match")
	}
	if found.Label != "bat on 5 overs" {
		t.Errorf("FindOption(5).Label = %q, expected bat on 5 overs", found.Label)
	}

	if missing := FindOption(options, 9); missing != nil {
		t.Errorf("FindOption(9) = %+v, expected nil", missing)
	}

	if missing := FindOption(nil, 0); missing != nil {
		t.Errorf("FindOption(nil, 0) = %+v, expected nil", missing)
	}
}
