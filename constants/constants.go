package constants

import (
	"os"
	"strings"
)

func GetOutputDir() string {
	path := os.Getenv("OUTPUT_DIR")
	if path != "" {
		return path
	}
	return "./out"
}

func GetArchiveEndpoint() string {
	return os.Getenv("ARCHIVE_ENDPOINT")
}

func GetArchiveTable() string {
	table := os.Getenv("ARCHIVE_TABLE")
	if table != "" {
		return table
	}
	return "motifgen-generations"
}

const (
	DefaultTicksPerBeat    = 480
	DefaultBeatsPerMeasure = 4
	DefaultNumMeasures     = 8
	DefaultKey             = "C_major"
	DefaultForm            = "aaba"
	RandomStyle            = "random"

	MelodyVelocity        = 64
	AccompanimentVelocity = 40

	MinPitch = 0
	MaxPitch = 127
)

// NOTE: motif and progression defaults come from the first version of the tool
var DefaultMotif = "(64, 480), (62, 240), (60, 720), (62, 480)"

var DefaultChords = "C, G, Am, Em, F, C, F, G"

func GetSentryDSN() string {
	return os.Getenv("SENTRY_DSN")
}

// GetLogLevel is "info" unless LOG_LEVEL says otherwise.
func GetLogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		return strings.ToLower(level)
	}
	return "info"
}

func GetEnvironment() string {
	env := os.Getenv("ENVIRONMENT")
	if env != "" {
		return env
	}
	return "development"
}
