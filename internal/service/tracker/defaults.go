package tracker

import "time"

const (
	defaultPollInterval      = 5 * time.Second
	defaultBootstrapDepth    = 100
	defaultBatchSize         = 100
	defaultWorkerCount       = 8
	defaultRPCRate           = 50
	defaultMaxAncestorWalk   = 100
	defaultRejectedCacheSize = 1024
)
