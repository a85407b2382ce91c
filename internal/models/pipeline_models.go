package models

import "time"

// StageStatus is the per-stage outcome recorded in a PipelineResult.
type StageStatus string

const (
	StageOK       StageStatus = "ok"
	StageDegraded StageStatus = "degraded"
	StageFailed   StageStatus = "failed"
)

// StageReport carries one status per pipeline stage up to delivery.
type StageReport struct {
	Collect StageStatus `json:"collect"`
	Analyze StageStatus `json:"analyze"`
	Brief   StageStatus `json:"brief"`
}

// PipelineResult is the single aggregate handed to the delivery boundary.
// Headlines and Games may be empty; Briefing may be the fallback narrative.
type PipelineResult struct {
	RunID     string      `json:"run_id"`
	Date      time.Time   `json:"date"`
	Headlines []Headline  `json:"headlines"`
	Games     []Game      `json:"games"`
	Briefing  string      `json:"briefing"`
	Stages    StageReport `json:"stages"`
}
