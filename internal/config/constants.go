package config

// Config file location
const (
	AppName        = "artspace"
	ConfigFileName = "config.yaml"
)

// Environment variable names
const (
	EnvConfigPath = "ARTSPACE_CONFIG"
	EnvDebug      = "ARTSPACE_DEBUG"
)

// DefaultLogFile is used when debugging is enabled without a configured log file
const DefaultLogFile = "artspace-debug.log"

// UI element sizes
const (
	MinWidth      = 24
	MinHeight     = 16
	MaxCardWidth  = 48
	ButtonGap     = 2
	SidePadding   = 4
	HelpWrapWidth = 60
)

// Animation configuration
const (
	IndicatorFPS       = 60
	IndicatorFrequency = 8.0
	IndicatorDamping   = 0.8
	IndicatorEpsilon   = 0.01
)
