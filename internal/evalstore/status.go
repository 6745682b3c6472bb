package evalstore

import (
	"fmt"
	"time"
)

// Status summarizes the run store for diagnostics output.
type Status struct {
	Backend     string    `json:"backend"`
	Connected   bool      `json:"connected"`
	TotalRuns   int64     `json:"total_runs"`
	LastRunID   int64     `json:"last_run_id"`
	LastRunTime time.Time `json:"last_run_time"`
}

// PrintRunStatus prints run store status information.
func PrintRunStatus(status Status) {
	fmt.Printf("Store Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Total Runs: %d\n", status.TotalRuns)
	if status.TotalRuns > 0 {
		fmt.Printf("Last Run ID: %d\n", status.LastRunID)
		fmt.Printf("Last Run: %s\n", status.LastRunTime.Format("2006-01-02 15:04:05"))
	}
}
