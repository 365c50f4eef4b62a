package settings

import "errors"

// Errors returned by the settings sources while loading their mappings.
var (
	// ErrConfigFileNotFound indicates that a path handed to the JSON source
	// does not exist or is not a regular file. The wrapped error names the
	// settings class, the path, and its 1-based position in the path list.
	ErrConfigFileNotFound = errors.New("config file not found or not a regular file")
	// ErrInvalidConfigPath indicates that the json_config_path init argument
	// is neither a string nor a list of strings.
	ErrInvalidConfigPath = errors.New("invalid json config path value")
	// ErrUnknownEncoding indicates that the configured text encoding is not a
	// registered IANA charset name.
	ErrUnknownEncoding = errors.New("unknown text encoding")
)
