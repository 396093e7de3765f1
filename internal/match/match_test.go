package match

import (
	"errors"
	"testing"
)

func validContext() Context {
	return Context{
		Ground:                "Lord's",
		PresetKey:             "lords",
		OversPerSession:       30,
		SessionsRemaining:     3,
		OversLeftThisSession:  24,
		CurrentLead:           250,
		WicketsInHand:         6,
		ExtensionRunRate:      3.8,
		ExtensionWicketChance: 0.08,
		OppositionBatting:     50,
		OwnBowling:            50,
		PitchBowlingFactor:    1.0,
		RainChanceBySession:   []float64{0.0, 0.1, 0.2},
		RiskAppetite:          1.0,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Context)
		expectError bool
	}{
		{
			name:        "Valid context",
			mutate:      func(c *Context) {},
			expectError: false,
		},
		{
			name:        "Zero overs per session",
			mutate:      func(c *Context) { c.OversPerSession = 0 },
			expectError: true,
		},
		{
			name:        "No sessions remaining",
			mutate:      func(c *Context) { c.SessionsRemaining = 0 },
			expectError: true,
		},
		{
			name:        "Negative overs left",
			mutate:      func(c *Context) { c.OversLeftThisSession = -1 },
			expectError: true,
		},
		{
			name:        "Too many wickets in hand",
			mutate:      func(c *Context) { c.WicketsInHand = 11 },
			expectError: true,
		},
		{
			name:        "Negative wickets in hand",
			mutate:      func(c *Context) { c.WicketsInHand = -1 },
			expectError: true,
		},
		{
			name:        "Negative extension run rate",
			mutate:      func(c *Context) { c.ExtensionRunRate = -0.5 },
			expectError: true,
		},
		{
			name:        "Extension wicket chance above one",
			mutate:      func(c *Context) { c.ExtensionWicketChance = 1.5 },
			expectError: true,
		},
		{
			name:        "Zero opposition batting strength",
			mutate:      func(c *Context) { c.OppositionBatting = 0 },
			expectError: true,
		},
		{
			name:        "Zero own bowling strength",
			mutate:      func(c *Context) { c.OwnBowling = 0 },
			expectError: true,
		},
		{
			name:        "Zero pitch factor",
			mutate:      func(c *Context) { c.PitchBowlingFactor = 0 },
			expectError: true,
		},
		{
			name:        "Rain sequence shorter than sessions",
			mutate:      func(c *Context) { c.RainChanceBySession = []float64{0.1} },
			expectError: true,
		},
		{
			name:        "Rain chance above one",
			mutate:      func(c *Context) { c.RainChanceBySession = []float64{0.1, 1.2, 0.1} },
			expectError: true,
		},
		{
			name:        "Risk appetite above bound",
			mutate:      func(c *Context) { c.RiskAppetite = 2.5 },
			expectError: true,
		},
		{
			name:        "Negative risk appetite",
			mutate:      func(c *Context) { c.RiskAppetite = -0.1 },
			expectError: true,
		},
		{
			name: "Zero overs edge case is valid",
			mutate: func(c *Context) {
				c.OversLeftThisSession = 0
				c.SessionsRemaining = 1
				c.RainChanceBySession = []float64{0.0}
			},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := validContext()
			tt.mutate(&ctx)
			err := ctx.Validate()
			if tt.expectError {
				if err == nil {
					t.Fatalf("Validate() = nil, expected error")
				}
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("Validate() error = %v, expected to wrap ErrInvalidInput", err)
				}
			} else if err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
		})
	}
}

func TestMaxDeclarationOvers(t *testing.T) {
	tests := []struct {
		name                 string
		oversLeftThisSession int
		sessionsRemaining    int
		oversPerSession      int
		expected             int
	}{
		{
			name:                 "Capped by sweep limit",
			oversLeftThisSession: 24,
			sessionsRemaining:    3,
			oversPerSession:      30,
			expected:             30,
		},
		{
			name:                 "Limited by physical overs",
			oversLeftThisSession: 10,
			sessionsRemaining:    1,
			oversPerSession:      30,
			expected:             10,
		},
		{
			name:                 "Zero overs available",
			oversLeftThisSession: 0,
			sessionsRemaining:    1,
			oversPerSession:      30,
			expected:             0,
		},
		{
			name:                 "One future session",
			oversLeftThisSession: 5,
			sessionsRemaining:    2,
			oversPerSession:      20,
			expected:             25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := Context{
				OversLeftThisSession: tt.oversLeftThisSession,
				SessionsRemaining:    tt.sessionsRemaining,
				OversPerSession:      tt.oversPerSession,
			}
			if got := ctx.MaxDeclarationOvers(); got != tt.expected {
				t.Errorf("MaxDeclarationOvers() = %d, expected %d", got, tt.expected)
			}
		})
	}
}
