package common

const (
	// Configuration errors
	ERROR_CONFIG_NOT_FOUND   = "Configuration file not found: %s"
	SUGGESTION_CREATE_CONFIG = "Create config file: helperkit config init --config %s"

	// Environment
	ENV_CONFIG_PATH = "HELPERKIT_CONFIG"
	ENV_DEBUG       = "HELPERKIT_DEBUG"
)
