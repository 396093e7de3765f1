package output

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/crickwise/declare-forecast/internal/chase"
	"github.com/crickwise/declare-forecast/internal/evaluator"
	"github.com/crickwise/declare-forecast/internal/ground"
)

func testOptions() []evaluator.OptionOutcome {
	return []evaluator.OptionOutcome{
		{
			SimResult: chase.SimResult{
				WinP:           0.62,
				DrawP:          0.30,
				LossP:          0.08,
				ExpectedMargin: 74.5,
			},
			Label:             "bat on 4 overs",
			DeclareAfterOvers: 4,
			ExpectAddedRuns:   15.2,
			ExpectWicketsLost: 0.3,
			MeanTarget:        265,
			Utility:           0.524,
		},
		{
			SimResult: chase.SimResult{
				WinP:           0.55,
				DrawP:          0.38,
				LossP:          0.07,
				ExpectedMargin: 81.0,
			},
			Label:             "declare now",
			DeclareAfterOvers: 0,
			ExpectAddedRuns:   0,
			ExpectWicketsLost: 0,
			MeanTarget:        250,
			Utility:           0.466,
		},
	}
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func TestPrettyFormat(t *testing.T) {
	out := captureStdout(t, func() {
		PrettyFormat(testOptions(), ground.Neutral())
	})

	if !strings.Contains(out, "--- Declaration options for Neutral venue ---") {
		t.Errorf("PrettyFormat missing header")
	}
	if !strings.Contains(out, "bat on 4 overs") {
		t.Errorf("PrettyFormat missing option label")
	}
	if !strings.Contains(out, "Recommendation: bat on 4 overs") {
		t.Errorf("PrettyFormat missing recommendation line")
	}
	if !strings.Contains(out, "Runner-up: declare now") {
		t.Errorf("PrettyFormat missing runner-up line")
	}
}

func TestPrettyFormatSingleOption(t *testing.T) {
	out := captureStdout(t, func() {
		PrettyFormat(testOptions()[:1], ground.Neutral())
	})

	if strings.Contains(out, "Runner-up") {
		t.Errorf("PrettyFormat printed a runner-up with only one option")
	}
}

func TestCsvFormat(t *testing.T) {
	out := captureStdout(t, func() {
		CsvFormat(testOptions())
	})

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("CsvFormat produced %d lines, expected header plus 2 rows", len(lines))
	}
	if !strings.Contains(lines[0], `"label"`) || !strings.Contains(lines[0], `"utility"`) {
		t.Errorf("CsvFormat header = %q, missing expected columns", lines[0])
	}
	if !strings.Contains(lines[1], `"bat on 4 overs"`) {
		t.Errorf("CsvFormat first row = %q, expected the top-ranked option", lines[1])
	}
}
