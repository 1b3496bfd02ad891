// Package domain defines the core domain models and business logic entities.
package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidEndpointFormat indicates that an endpoint string is missing the ':' host/port separator.
	ErrInvalidEndpointFormat = errors.New("invalid endpoint format, expected host:port")

	// ErrInvalidPort indicates that the port part of an endpoint is not a base-10 integer.
	ErrInvalidPort = errors.New("invalid port number")
)

// Endpoint represents a validated host:port TCP destination value object.
type Endpoint struct {
	host string
	port int
}

// ParseEndpoint creates a new Endpoint from a "host:port" string.
// The string is split on the first ':'; the host is otherwise opaque
// (dotted-decimal IPv4 or a resolvable name).
func ParseEndpoint(s string) (Endpoint, error) {
	trimmed := strings.TrimSpace(s)

	host, portText, found := strings.Cut(trimmed, ":")
	if !found {
		return Endpoint{}, fmt.Errorf("%w: %s", ErrInvalidEndpointFormat, s)
	}

	port, err := strconv.Atoi(portText)
	if err != nil {
		return Endpoint{}, fmt.Errorf("%w: %q", ErrInvalidPort, portText)
	}

	return Endpoint{host: host, port: port}, nil
}

// Host returns the host part of the endpoint.
func (e Endpoint) Host() string {
	return e.host
}

// Port returns the port part of the endpoint.
func (e Endpoint) Port() int {
	return e.port
}

// Address returns the dialable "host:port" representation of the endpoint.
func (e Endpoint) Address() string {
	return e.host + ":" + strconv.Itoa(e.port)
}

// IsZero checks if the Endpoint is the zero value.
func (e Endpoint) IsZero() bool {
	return e.host == "" && e.port == 0
}

// Equals checks if two Endpoint objects are equal.
func (e Endpoint) Equals(other Endpoint) bool {
	return e.host == other.host && e.port == other.port
}
