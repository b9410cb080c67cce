package validate

import (
	"strings"
	"testing"
)

// Test cases for ParseEndpoint function
func TestParseEndpoint(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedHost string
		expectedPort int
	}{
		{
			name:         "valid IPv4 endpoint",
			input:        "10.0.0.4:19080",
			expectedHost: "10.0.0.4",
			expectedPort: 19080,
		},
		{
			name:         "valid hostname endpoint",
			input:        "mycluster.westus.cloudapp.example:19080",
			expectedHost: "mycluster.westus.cloudapp.example",
			expectedPort: 19080,
		},
		{
			name:         "valid IPv6 endpoint",
			input:        "[fe80::1]:19080",
			expectedHost: "fe80::1",
			expectedPort: 19080,
		},
		{
			name:        "empty endpoint",
			input:       "",
			expectError: true,
		},
		{
			name:        "missing port",
			input:       "10.0.0.4",
			expectError: true,
		},
		{
			name:        "port zero",
			input:       "10.0.0.4:0",
			expectError: true,
		},
		{
			name:        "port too high",
			input:       "10.0.0.4:70000",
			expectError: true,
		},
		{
			name:        "port not a number",
			input:       "10.0.0.4:http",
			expectError: true,
		},
		{
			name:        "unroutable wildcard",
			input:       "0.0.0.0:19080",
			expectError: true,
		},
		{
			name:        "hostname with underscore",
			input:       "bad_host:19080",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ep, err := ParseEndpoint(tt.input)

			if tt.expectError {
				if err == nil {
					t.Errorf("ParseEndpoint(%q) expected error, got %+v", tt.input, ep)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseEndpoint(%q) unexpected error: %v", tt.input, err)
			}
			if ep.Host != tt.expectedHost {
				t.Errorf("Host = %q, want %q", ep.Host, tt.expectedHost)
			}
			if ep.Port != tt.expectedPort {
				t.Errorf("Port = %d, want %d", ep.Port, tt.expectedPort)
			}
		})
	}
}

func TestEndpointString(t *testing.T) {
	ep := Endpoint{Host: "fe80::1", Port: 19080}
	if got := ep.String(); got != "[fe80::1]:19080" {
		t.Errorf("String() = %q, want %q", got, "[fe80::1]:19080")
	}
}

// Test cases for FabricName function
func TestFabricName(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
	}{
		{"application", "fabric:/VotingApp", false},
		{"service", "fabric:/VotingApp/VotingWeb", false},
		{"empty", "", true},
		{"missing scheme", "VotingApp", true},
		{"scheme only", "fabric:/", true},
		{"trailing slash", "fabric:/VotingApp/", true},
		{"double slash", "fabric:/VotingApp//Web", true},
		{"whitespace", "fabric:/Voting App", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FabricName(tt.input, "application")
			if (err != nil) != tt.expectError {
				t.Errorf("FabricName(%q) error = %v, expectError %v", tt.input, err, tt.expectError)
			}
		})
	}
}

func TestNodeName(t *testing.T) {
	if err := NodeName("_Node_0"); err != nil {
		t.Errorf("NodeName(_Node_0) unexpected error: %v", err)
	}
	for _, bad := range []string{"", "node/0", "node 0"} {
		if err := NodeName(bad); err == nil {
			t.Errorf("NodeName(%q) expected error", bad)
		}
	}
}

type sizedValue struct {
	Value string `validate:"maxbytes=4"`
	Count int    `validate:"min=1"`
}

// TestStruct tests the custom maxbytes rule and flattened error messages
func TestStruct(t *testing.T) {
	if err := Struct(sizedValue{Value: "abcd", Count: 1}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	// Three runes but six bytes
	err := Struct(sizedValue{Value: "éèê", Count: 0})
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "Value must be at most 4 bytes") {
		t.Errorf("missing maxbytes message in %q", msg)
	}
	if !strings.Contains(msg, "Count must be at least 1") {
		t.Errorf("missing min message in %q", msg)
	}
}

func TestPartitionID(t *testing.T) {
	if err := PartitionID("2d3c3f6e-8c43-4b1c-9b2a-6f1f0d2f6a11"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	for _, bad := range []string{"", "partition-1", "2d3c3f6e-8c43"} {
		if err := PartitionID(bad); err == nil {
			t.Errorf("PartitionID(%q) expected error", bad)
		}
	}
}
