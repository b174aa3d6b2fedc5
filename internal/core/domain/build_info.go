package domain

import "time"

// BuildInfo records the last successful run of a build target.
type BuildInfo struct {
	TaskName   string    `json:"task_name,omitzero"`
	InputHash  string    `json:"input_hash,omitzero"`
	OutputHash string    `json:"output_hash,omitzero"`
	Timestamp  time.Time `json:"timestamp,omitzero"`
}
