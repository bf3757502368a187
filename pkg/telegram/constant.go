package telegram

import "time"

const (
	// DefaultBaseURL is the Bot API host.
	DefaultBaseURL = "https://api.telegram.org"

	// DefaultTimeout bounds a call whose context has no deadline.
	DefaultTimeout = 30 * time.Second

	// methodURLTemplate is base URL, API key, method.
	methodURLTemplate = "%s/bot%s/%s"

	// fileURLTemplate is base URL, API key, server-side file path.
	fileURLTemplate = "%s/file/bot%s/%s"

	maxCallbackDataBytes   = 64
	maxSwitchPMParamBytes  = 64
	maxInlineResultIDBytes = 64
	maxInlineResults       = 50
)
