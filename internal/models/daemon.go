package models

import "time"

// Daemon run modes.
const (
	DaemonModeTray     = "tray"
	DaemonModeHeadless = "headless"
)

// DaemonInfo represents the running daemon's process information.
// This corresponds to ~/.redshiftbar/daemon.yaml.
type DaemonInfo struct {
	Version   int       `yaml:"version"`
	PID       int       `yaml:"pid"`
	Mode      string    `yaml:"mode"`
	StartedAt time.Time `yaml:"started_at"`
}

// NewDaemonInfo creates a new daemon info with current values.
func NewDaemonInfo(pid int, mode string) *DaemonInfo {
	return &DaemonInfo{
		Version:   1,
		PID:       pid,
		Mode:      mode,
		StartedAt: time.Now().UTC(),
	}
}
