package cli

const (
	CLI_NAME = "helperkit"

	FLAG_CONFIG   = "config"
	FLAG_VERBOSE  = "verbose"
	FLAG_JSON     = "json"
	FLAG_ENDPOINT = "endpoint"
	FLAG_USERS    = "users"
	FLAG_STRATEGY = "strategy"
	FLAG_FORCE    = "force"

	ERROR_UNKNOWN_VALUE = "unknown"
)
