// Package appinfo keeps process-wide counters for the stats endpoint.
package appinfo

import (
	"sync/atomic"
	"time"
)

var (
	StartTime time.Time

	LoginSuccesses atomic.Int64
	LoginFailures  atomic.Int64
	ViewerMoves    atomic.Int64
)

// RecordLogin: Called after every credential check that reached the verifier
func RecordLogin(ok bool) {
	if ok {
		LoginSuccesses.Add(1)
		return
	}
	LoginFailures.Add(1)
}

// RecordViewerMove: Called when a viewer or carousel transition changed state
func RecordViewerMove() {
	ViewerMoves.Add(1)
}

// Snapshot is the JSON shape served by the stats endpoint.
type Snapshot struct {
	Uptime         string `json:"uptime"`
	LoginSuccesses int64  `json:"login_successes"`
	LoginFailures  int64  `json:"login_failures"`
	ViewerMoves    int64  `json:"viewer_moves"`
}

func Current() Snapshot {
	uptime := time.Duration(0)
	if !StartTime.IsZero() {
		uptime = time.Since(StartTime).Round(time.Second)
	}
	return Snapshot{
		Uptime:         uptime.String(),
		LoginSuccesses: LoginSuccesses.Load(),
		LoginFailures:  LoginFailures.Load(),
		ViewerMoves:    ViewerMoves.Load(),
	}
}
