package log

import "os"

const (
	// ModeProduction selects the production encoder config. Any other mode is
	// treated as development.
	ModeProduction = "production"

	EncodingJSON    = "json"
	EncodingConsole = "console"
)

var stderr = os.Stderr
