// Package constants provides shared constants for the declare-forecast application.
package constants

// Declaration sweep constants
const (
	// MaxDeclarationOvers caps how long the batting side may bat on before declaring
	MaxDeclarationOvers = 30

	// DefaultTrials is the number of Monte Carlo trials per declaration option
	DefaultTrials = 4000

	// DefaultSeed is the scenario seed used when none is configured
	DefaultSeed int64 = 1
)

// Extension model constants
const (
	// ExtensionRateStdDev is the spread of the per-over mean run rate while batting on
	ExtensionRateStdDev = 0.8

	// ExtensionOverStdDev is the spread of runs within a single extension over
	ExtensionOverStdDev = 1.0
)

// Chase model constants
const (
	// BaseChaseRunRate is the unscaled runs-per-over rate for the chasing side
	BaseChaseRunRate = 3.0

	// BaseWicketProbability is the unscaled per-over chance of a wicket falling
	BaseWicketProbability = 0.07

	// MinWicketProbability and MaxWicketProbability bound the initial hazard
	MinWicketProbability = 0.03
	MaxWicketProbability = 0.2

	// WicketProbabilityCeiling bounds the hazard after in-innings escalation
	WicketProbabilityCeiling = 0.25

	// MinChaseRunRate and MaxChaseRunRate bound the initial scoring rate
	MinChaseRunRate = 1.5
	MaxChaseRunRate = 4.5

	// ChaseOverStdDev is the spread of runs within a single chase over
	ChaseOverStdDev = 1.25

	// MaxPressureBonus caps the urgency adjustment when behind the required rate
	MaxPressureBonus = 0.8

	// WearInterval is the over interval at which ball and pitch wear applies
	WearInterval = 20

	// WearRateDecay is the multiplicative run-rate decay applied per wear interval
	WearRateDecay = 0.98

	// WearRateFloor is the lowest the decayed run rate may fall
	WearRateFloor = 1.2

	// WearHazardStep is the additive hazard increase per wear interval
	WearHazardStep = 0.03

	// WicketHazardStep is the additive hazard increase after each wicket
	WicketHazardStep = 0.02
)

// Weather constants
const (
	// MinRainLossFraction and MaxRainLossFraction bound the share of a session
	// lost when a rain event occurs
	MinRainLossFraction = 0.2
	MaxRainLossFraction = 0.8
)

// Utility weighting constants
const (
	// WinWeight is the fixed utility weight on win probability
	WinWeight = 1.0

	// LossWeightConservative applies when risk appetite is below 1
	LossWeightConservative = 2.0

	// LossWeightBalanced applies when risk appetite is in [1, 1.5)
	LossWeightBalanced = 1.2

	// LossWeightAggressive applies when risk appetite is 1.5 or above
	LossWeightAggressive = 0.8
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)

// Validation constants
const (
	// ProbabilityTolerance is the tolerance for probability comparisons
	ProbabilityTolerance = 1e-9

	// MaxWicketsInHand is the most wickets a batting side can hold
	MaxWicketsInHand = 10

	// MaxRiskAppetite bounds the caller-supplied risk appetite scalar
	MaxRiskAppetite = 2.0
)
