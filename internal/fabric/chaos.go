package fabric

import "time"

// Chaos parameter defaults applied when the operator leaves a value unset.
const (
	DefaultChaosMaxClusterStabilization = 60 * time.Second
	DefaultChaosMaxConcurrentFaults     = 1
	DefaultChaosWaitTimeBetweenIter     = 30 * time.Second
	DefaultChaosTimeToRun               = 10 * time.Minute
)

// ChaosClusterHealthPolicy bounds how unhealthy the cluster may become while
// chaos is running.
type ChaosClusterHealthPolicy struct {
	ConsiderWarningAsError          bool `json:"ConsiderWarningAsError"`
	MaxPercentUnhealthyNodes        int  `json:"MaxPercentUnhealthyNodes" validate:"min=0,max=100"`
	MaxPercentUnhealthyApplications int  `json:"MaxPercentUnhealthyApplications" validate:"min=0,max=100"`
}

// ChaosParameters describes one chaos run.
type ChaosParameters struct {
	TimeToRun                 time.Duration             `json:"-" validate:"gt=0"`
	MaxClusterStabilization   time.Duration             `json:"-" validate:"gt=0"`
	MaxConcurrentFaults       int64                     `json:"MaxConcurrentFaults" validate:"min=1"`
	EnableMoveReplicaFaults   bool                      `json:"EnableMoveReplicaFaults"`
	WaitTimeBetweenFaults     time.Duration             `json:"-" validate:"min=0"`
	WaitTimeBetweenIterations time.Duration             `json:"-" validate:"min=0"`
	ClusterHealthPolicy       *ChaosClusterHealthPolicy `json:"ClusterHealthPolicy,omitempty"`
	Context                   map[string]string         `json:"Context,omitempty"`
}

// ChaosDescription reports whether chaos is running and with which
// parameters.
type ChaosDescription struct {
	Status          string           `json:"Status"`
	ScheduleStatus  string           `json:"ScheduleStatus"`
	ChaosParameters *ChaosParameters `json:"ChaosParameters,omitempty"`
}

// ChaosEventsQuery selects chaos events in a time window.
type ChaosEventsQuery struct {
	PageQuery
	StartTime time.Time
	EndTime   time.Time
}

// ChaosEvent is one event recorded by the chaos engine.
type ChaosEvent struct {
	Kind          string    `json:"Kind"`
	TimeStampUtc  time.Time `json:"TimeStampUtc"`
	Reason        string    `json:"Reason,omitempty"`
	Faults        []string  `json:"Faults,omitempty"`
	ValidationMsg string    `json:"ValidationFailedMessage,omitempty"`
}
