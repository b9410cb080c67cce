package validate

import (
	"fmt"
	"net"
	"strconv"
)

// Endpoint is a validated gateway address. Host may be a DNS name or an IP
// address.
type Endpoint struct {
	Host string `validate:"required,hostname_rfc1123|ip"`
	Port int    `validate:"required,min=1,max=65535"`
}

// String returns the endpoint in "host:port" form.
func (e Endpoint) String() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

// ParseEndpoint parses and validates a "host:port" gateway address.
//
// The unroutable wildcard address 0.0.0.0 is rejected since a client cannot
// connect to it.
func ParseEndpoint(addr string) (*Endpoint, error) {
	if addr == "" {
		return nil, fmt.Errorf("endpoint cannot be empty")
	}

	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint format '%s': %w", addr, err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid port '%s': %w", portStr, err)
	}

	ep := &Endpoint{Host: host, Port: port}
	if err := Struct(ep); err != nil {
		return nil, fmt.Errorf("invalid endpoint '%s': %w", addr, err)
	}

	if host == "0.0.0.0" || host == "::" {
		return nil, fmt.Errorf("unroutable endpoint '%s' - use 127.0.0.1 or a specific address", addr)
	}

	return ep, nil
}
