// Package config provides configuration management for the fabricctl CLI.
//
// Flag values are bound directly into the package-level structs below by
// the commands package. Global settings are additionally layered through
// viper so they can come from a config file or the environment.
//
// PRECEDENCE (highest first):
//  1. Command-line flags
//  2. FABRICCTL_* environment variables (FABRICCTL_ENDPOINT, FABRICCTL_LOG_LEVEL, ...)
//  3. The config file ($HOME/.fabricctl/config.yaml, or --config)
//  4. Flag defaults
package config

import (
	"time"

	"github.com/concave-dev/fabricctl/internal/version"
)

const (
	DefaultEndpoint = "127.0.0.1:19080" // Default gateway address (routable)
	DefaultScheme   = "http"
	DefaultTimeout  = 300 // Seconds, matches the gateway's default operation timeout
	DefaultOutput   = "table"
	DefaultLogLevel = "ERROR"
)

// Version returns the current fabricctl CLI version from the centralized version package
var Version = version.FabricctlVersion

// Global holds the global CLI configuration
var Global struct {
	Endpoint   string // Gateway address (host:port)
	Scheme     string // Gateway scheme: http, https
	LogLevel   string // Log level for CLI operations
	LogFile    string // Rotating log file; empty logs to the terminal
	Timeout    int    // Operation timeout in seconds
	Verbose    bool   // Show verbose output
	Output     string // Output format: table, json, yaml
	ConfigFile string // Explicit config file path
	Force      bool   // Skip confirmation prompts
	WhatIf     bool   // Describe mutations without performing them
}

// Paging holds the paging flags shared by listing commands
var Paging struct {
	SinglePage        bool
	ContinuationToken string
	MaxResults        int64
}

// Node holds the node command configuration
var Node struct {
	Name         string // Filter node ls by name
	StatusFilter string // Filter node ls by status
	Intent       string // Deactivation intent for node disable
	InstanceID   string // Node instance ID for start/stop transitions
	OperationID  string // Client-chosen transition operation ID
	StopDuration int    // Stop duration in seconds
}

// App holds the app command configuration
var App struct {
	Name              string
	TypeName          string
	ExcludeParameters bool
	ForceRemove       bool
}

// Service holds the service command configuration
var Service struct {
	Application string
	Name        string
	TypeName    string
	ForceRemove bool
}

// Partition holds the partition command configuration
var Partition struct {
	Service     string
	PartitionID string
}

// Replica holds the replica command configuration
var Replica struct {
	PartitionID string
	ReplicaID   int64
}

// Health holds the health query configuration. The int64 filters are the
// legacy numeric forms; the string filters are the typed forms.
var Health struct {
	EventsHealthStateFilter               int64
	NodesHealthStateFilter                int64
	ApplicationsHealthStateFilter         int64
	ServicesHealthStateFilter             int64
	PartitionsHealthStateFilter           int64
	ReplicasHealthStateFilter             int64
	DeployedApplicationsHealthStateFilter int64

	EventsFilter               string
	NodesFilter                string
	ApplicationsFilter         string
	ServicesFilter             string
	PartitionsFilter           string
	ReplicasFilter             string
	DeployedApplicationsFilter string

	ConsiderWarningAsError                  bool
	MaxPercentUnhealthyNodes                int
	MaxPercentUnhealthyApplications         int
	MaxPercentUnhealthyDeployedApplications int
	MaxPercentUnhealthyServices             int
	MaxPercentUnhealthyPartitionsPerService int
	MaxPercentUnhealthyReplicasPerPartition int

	ExcludeHealthStatistics                  bool
	IncludeSystemApplicationHealthStatistics bool
}

// HealthReport holds the health report configuration
var HealthReport struct {
	Node        string
	Application string
	Service     string
	PartitionID string
	ReplicaID   int64
	InstanceID  int64

	SourceID          string
	Property          string
	HealthState       string
	Description       string
	TTL               time.Duration
	SequenceNumber    int64
	RemoveWhenExpired bool
	Immediate         bool
}

// Repair holds the repair command configuration
var Repair struct {
	TaskIDPrefix string
	States       []string
	Executor     string

	TaskID      string
	Description string
	NodeAction  string
	Nodes       []string

	Version       int64
	ResultStatus  string
	ResultCode    int64
	ResultDetails string
	RequestAbort  bool
}

// Chaos holds the chaos command configuration
var Chaos struct {
	TimeToRun                 time.Duration
	MaxClusterStabilization   time.Duration
	MaxConcurrentFaults       int64
	EnableMoveReplicaFaults   bool
	WaitTimeBetweenFaults     time.Duration
	WaitTimeBetweenIterations time.Duration

	ConsiderWarningAsError          bool
	MaxPercentUnhealthyNodes        int
	MaxPercentUnhealthyApplications int
	Context                         map[string]string

	StartTime string // RFC 3339
	EndTime   string // RFC 3339
}

// Secret holds the secret command configuration
var Secret struct {
	IncludeValue bool
	Version      string
	Value        string
	ValueFile    string
}
