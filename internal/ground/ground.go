// Package ground defines ground presets and their lookup. Presets are passed
// into the evaluator as an injected map so tests can substitute fixtures.
package ground

// Preset adjusts the chase hazard for a venue's character. WicketHelp above 1
// makes wickets more likely; ChaseEase above 1 makes scoring easier.
type Preset struct {
	Name       string
	WicketHelp float64
	ChaseEase  float64
}

// NeutralKey is the preset key for a venue with no adjustment.
const NeutralKey = "neutral"

// Neutral returns the preset applied when no venue adjustment is wanted or a
// key is unrecognized.
func Neutral() Preset {
	return Preset{Name: "Neutral venue", WicketHelp: 1.0, ChaseEase: 1.0}
}

// DefaultPresets returns the built-in venue table.
func DefaultPresets() map[string]Preset {
	return map[string]Preset{
		NeutralKey:   Neutral(),
		"lords":      {Name: "Lord's", WicketHelp: 1.1, ChaseEase: 0.95},
		"headingley": {Name: "Headingley", WicketHelp: 1.15, ChaseEase: 0.9},
		"mcg":        {Name: "Melbourne Cricket Ground", WicketHelp: 0.95, ChaseEase: 1.0},
		"perth":      {Name: "Perth Stadium", WicketHelp: 1.2, ChaseEase: 0.9},
		"galle":      {Name: "Galle International Stadium", WicketHelp: 1.25, ChaseEase: 0.85},
		"wankhede":   {Name: "Wankhede Stadium", WicketHelp: 1.05, ChaseEase: 1.1},
	}
}

// Resolve looks up a preset by key, falling back to the neutral preset. The
// boolean reports whether the key was recognized so callers can surface the
// fallback instead of masking a typo.
func Resolve(presets map[string]Preset, key string) (Preset, bool) {
	if preset, ok := presets[key]; ok {
		return preset, true
	}
	return Neutral(), false
}
