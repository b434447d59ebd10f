package forkdb

import "time"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics records fork graph activity.
	Metrics interface {
		ObserveAttach(err error, started time.Time)
		ObserveEvicted(store string, count int)
		ObserveStoreSize(store string, size int)
		ObserveHead(height uint64)
		ObserveDivergence(err error, depthA, depthB int, started time.Time)
	}
)

// Store labels used in logs and metrics.
const (
	StoreLinked  = "linked"
	StoreStaging = "staging"
)

// Stats is a point-in-time summary of a ForkGraph.
type Stats struct {
	Linked     int
	Staging    int
	HeadHeight uint64
	HasHead    bool
}
