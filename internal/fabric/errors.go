package fabric

import "fmt"

// GatewayError is a failure reported by the cluster gateway.
type GatewayError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"Code"`
	Message    string `json:"Message"`
}

func (e *GatewayError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("gateway returned status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Gateway error codes the CLI reacts to.
const (
	ErrCodeNodeNotFound        = "FABRIC_E_NODE_NOT_FOUND"
	ErrCodeApplicationNotFound = "FABRIC_E_APPLICATION_NOT_FOUND"
	ErrCodeServiceNotFound     = "FABRIC_E_SERVICE_DOES_NOT_EXIST"
	ErrCodePartitionNotFound   = "FABRIC_E_PARTITION_NOT_FOUND"
	ErrCodeInvalidOperation    = "FABRIC_E_INVALID_OPERATION"
	ErrCodeTimeout             = "FABRIC_E_TIMEOUT"
)
