package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/crickwise/declare-forecast/pkg/constants"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	path := writeConfigFile(t, `
match:
  ground: "Lord's"
  presetKey: lords
  oversPerSession: 30
  sessionsRemaining: 3
  oversLeftThisSession: 24
  currentLead: 250
  wicketsInHand: 6
  extensionRunRate: 3.8
  extensionWicketChance: 0.08
  oppositionBatting: 50
  ownBowling: 50
  pitchBowlingFactor: 1.0
  rainChanceBySession: [0.0, 0.1, 0.2]
  riskAppetite: 1.0
simulation:
  trials: 5000
  seed: 42
logging:
  level: debug
output:
  format: csv
`)

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Match.Ground != "Lord's" {
		t.Errorf("Match.Ground = %q, expected Lord's", conf.Match.Ground)
	}
	if conf.Match.CurrentLead != 250 {
		t.Errorf("Match.CurrentLead = %d, expected 250", conf.Match.CurrentLead)
	}
	if len(conf.Match.RainChanceBySession) != 3 {
		t.Errorf("len(RainChanceBySession) = %d, expected 3", len(conf.Match.RainChanceBySession))
	}
	if conf.Simulation.Trials != 5000 {
		t.Errorf("Simulation.Trials = %d, expected 5000", conf.Simulation.Trials)
	}
	if conf.Simulation.Seed != 42 {
		t.Errorf("Simulation.Seed = %d, expected 42", conf.Simulation.Seed)
	}
	if conf.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, expected debug", conf.Logging.Level)
	}
	if conf.Output.Format != constants.OutputFormatCSV {
		t.Errorf("Output.Format = %q, expected csv", conf.Output.Format)
	}
}

func TestLoadConfigurationDefaults(t *testing.T) {
	path := writeConfigFile(t, `
match:
  oversPerSession: 30
  sessionsRemaining: 2
  oversLeftThisSession: 10
  currentLead: 100
  wicketsInHand: 4
  extensionRunRate: 3.0
  extensionWicketChance: 0.1
  oppositionBatting: 50
  ownBowling: 50
  rainChanceBySession: [0.0, 0.0]
  riskAppetite: 1.0
`)

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Simulation.Trials != constants.DefaultTrials {
		t.Errorf("Simulation.Trials = %d, expected default %d", conf.Simulation.Trials, constants.DefaultTrials)
	}
	if conf.Simulation.Seed != constants.DefaultSeed {
		t.Errorf("Simulation.Seed = %d, expected default %d", conf.Simulation.Seed, constants.DefaultSeed)
	}
	if conf.Match.PitchBowlingFactor != 1.0 {
		t.Errorf("Match.PitchBowlingFactor = %v, expected default 1.0", conf.Match.PitchBowlingFactor)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	_, err := LoadConfiguration(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Errorf("LoadConfiguration() = nil error for a missing file, expected an error")
	}
}

func TestMatchContextConversion(t *testing.T) {
	conf := Configuration{
		Match: MatchConfig{
			Ground:                "Galle",
			PresetKey:             "galle",
			OversPerSession:       30,
			SessionsRemaining:     2,
			OversLeftThisSession:  12,
			CurrentLead:           180,
			WicketsInHand:         5,
			ExtensionRunRate:      4.0,
			ExtensionWicketChance: 0.12,
			OppositionBatting:     55,
			OwnBowling:            60,
			PitchBowlingFactor:    1.2,
			RainChanceBySession:   []float64{0.0, 0.3},
			RiskAppetite:          0.5,
		},
	}

	ctx := conf.MatchContext()
	if ctx.Ground != "Galle" || ctx.PresetKey != "galle" {
		t.Errorf("MatchContext() ground fields = %q/%q, expected Galle/galle", ctx.Ground, ctx.PresetKey)
	}
	if ctx.CurrentLead != 180 || ctx.WicketsInHand != 5 {
		t.Errorf("MatchContext() lead/wickets = %d/%d, expected 180/5", ctx.CurrentLead, ctx.WicketsInHand)
	}
	if err := ctx.Validate(); err != nil {
		t.Errorf("converted context failed validation: %v", err)
	}
}

func TestValidateConfigurationWarnings(t *testing.T) {
	conf := Configuration{
		Match: MatchConfig{
			CurrentLead:           -20,
			WicketsInHand:         0,
			ExtensionRunRate:      7.5,
			ExtensionWicketChance: 0.6,
			PitchBowlingFactor:    1.0,
			SessionsRemaining:     2,
			RainChanceBySession:   []float64{0.1, 0.1, 0.1, 0.1},
		},
	}

	warnings := conf.ValidateConfiguration()
	if len(warnings) == 0 {
		t.Fatalf("ValidateConfiguration() returned no warnings for a suspicious config")
	}

	joined := strings.Join(warnings, "\n")
	for _, fragment := range []string{"lead", "wickets", "run rate", "wicket chance", "ignored"} {
		if !strings.Contains(strings.ToLower(joined), fragment) {
			t.Errorf("warnings missing mention of %q:\n%s", fragment, joined)
		}
	}
}
