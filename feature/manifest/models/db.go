package models

import "time"

// Run statuses recorded in the history table.
const (
	RunStatusSucceeded = "succeeded"
	RunStatusSkipped   = "skipped"
	RunStatusFailed    = "failed"
)

// ManifestRun is one pipeline execution recorded in the history database.
type ManifestRun struct {
	ID              uint      `gorm:"column:id;primaryKey" json:"id"`
	RemoteVersion   string    `gorm:"column:remote_version;size:128;index" json:"remote_version"`
	PreviousVersion string    `gorm:"column:previous_version;size:128" json:"previous_version"`
	Status          string    `gorm:"column:status;size:16;index" json:"status"`
	FailedStage     string    `gorm:"column:failed_stage;size:32" json:"failed_stage,omitempty"`
	Error           string    `gorm:"column:error;type:text" json:"error,omitempty"`
	TableEntries    int       `gorm:"column:table_entries" json:"table_entries"`
	Weapons         int       `gorm:"column:weapons" json:"weapons"`
	Plugs           int       `gorm:"column:plugs" json:"plugs"`
	StartedAt       time.Time `gorm:"column:started_at" json:"started_at"`
	FinishedAt      time.Time `gorm:"column:finished_at" json:"finished_at"`
}

// TableName pins the history table name.
func (ManifestRun) TableName() string {
	return "manifest_runs"
}
