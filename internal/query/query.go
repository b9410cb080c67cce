// Package query implements the read-only listing commands for nodes,
// application types, applications, services, partitions and replicas.
//
// Every listing is a paged query driven by command.List. Node, application
// type, application and service listings honor a single-page request and
// report the continuation token for the next call. Partition and replica
// listings always drain.
package query
