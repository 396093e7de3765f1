// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/crickwise/declare-forecast/internal/match"
	"github.com/crickwise/declare-forecast/pkg/constants"
	"github.com/crickwise/declare-forecast/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for declare-forecast.
type Configuration struct {
	Match      MatchConfig
	Simulation SimulationConfig
	Logging    LoggingConfig `yaml:"logging,omitempty"`
	Output     OutputConfig  `yaml:"output,omitempty"`
}

// MatchConfig mirrors the match situation as written in the config file.
type MatchConfig struct {
	Ground                string
	PresetKey             string
	OversPerSession       int
	SessionsRemaining     int
	OversLeftThisSession  int
	CurrentLead           int
	WicketsInHand         int
	ExtensionRunRate      float64
	ExtensionWicketChance float64
	OppositionBatting     float64
	OwnBowling            float64
	PitchBowlingFactor    float64
	RainChanceBySession   []float64
	RiskAppetite          float64
}

// SimulationConfig holds the evaluation parameters.
type SimulationConfig struct {
	Trials int
	Seed   int64
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.ApplyDefaults()

	return &configuration, nil
}

// ApplyDefaults fills the evaluation parameters a config file may omit.
func (c *Configuration) ApplyDefaults() {
	if c.Simulation.Trials == 0 {
		c.Simulation.Trials = constants.DefaultTrials
	}
	if c.Simulation.Seed == 0 {
		c.Simulation.Seed = constants.DefaultSeed
	}
	if c.Match.PitchBowlingFactor == 0 {
		c.Match.PitchBowlingFactor = 1.0
	}
}

// MatchContext converts the loaded match section into the evaluator's input
// record.
func (c *Configuration) MatchContext() match.Context {
	return match.Context{
		Ground:                c.Match.Ground,
		PresetKey:             c.Match.PresetKey,
		OversPerSession:       c.Match.OversPerSession,
		SessionsRemaining:     c.Match.SessionsRemaining,
		OversLeftThisSession:  c.Match.OversLeftThisSession,
		CurrentLead:           c.Match.CurrentLead,
		WicketsInHand:         c.Match.WicketsInHand,
		ExtensionRunRate:      c.Match.ExtensionRunRate,
		ExtensionWicketChance: c.Match.ExtensionWicketChance,
		OppositionBatting:     c.Match.OppositionBatting,
		OwnBowling:            c.Match.OwnBowling,
		PitchBowlingFactor:    c.Match.PitchBowlingFactor,
		RainChanceBySession:   c.Match.RainChanceBySession,
		RiskAppetite:          c.Match.RiskAppetite,
	}
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Hard errors are raised later by the evaluator's own
// validation, before any trials run.
func (c *Configuration) ValidateConfiguration() []string {
	validator := validation.MatchValidator{
		CurrentLead:           c.Match.CurrentLead,
		WicketsInHand:         c.Match.WicketsInHand,
		ExtensionRunRate:      c.Match.ExtensionRunRate,
		ExtensionWicketChance: c.Match.ExtensionWicketChance,
		PitchBowlingFactor:    c.Match.PitchBowlingFactor,
		SessionsRemaining:     c.Match.SessionsRemaining,
		RainChanceBySession:   c.Match.RainChanceBySession,
	}
	return validator.ValidateAll()
}
