package config

import "helperkit/internal/common"

const (
	DefaultConfigDir  = ".helperkit"
	DefaultConfigName = "config.yaml"

	DefaultFetchTimeout = common.DEFAULT_REQUEST_TIMEOUT
	DefaultLogLevel     = "info"
)
