package trello

import (
	"fmt"
	"strings"
)

// ConfigError is returned when the client cannot be constructed because
// required configuration is missing.
type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing Trello credentials: please set %s environment variables", strings.Join(e.Missing, " and "))
}

// RemoteAPIError is returned when the Trello API responded with a non-2xx status.
type RemoteAPIError struct {
	StatusCode int
	Message    string
}

func (e *RemoteAPIError) Error() string {
	return fmt.Sprintf("trello API error: %d - %s", e.StatusCode, e.Message)
}

// NetworkError is returned when no response was received from the API.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
