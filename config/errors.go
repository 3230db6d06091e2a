package config

import "errors"

var (
	// ErrEmptyPath is returned for an empty config file path.
	ErrEmptyPath = errors.New("config: empty config path")

	// ErrUnsupportedFormat is returned for formats other than YAML and JSON.
	ErrUnsupportedFormat = errors.New("config: unsupported config format")

	// ErrParseFailed wraps parser errors.
	ErrParseFailed = errors.New("config: failed to parse config")

	// ErrInvalid wraps validation errors.
	ErrInvalid = errors.New("config: invalid config")
)
