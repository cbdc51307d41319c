// Package models defines the shared data types used across the triage
// pipeline: alerts, tool calls, iteration records, and session DTOs.
package models

import "time"

// Alert is the immutable input to the triage pipeline.
// Created at ingestion, read-only thereafter.
type Alert struct {
	AlertType   string         `json:"alert_type"`
	Severity    string         `json:"severity,omitempty"`
	Environment string         `json:"environment,omitempty"`
	RunbookURL  string         `json:"runbook,omitempty"`
	Data        map[string]any `json:"data,omitempty"`
}

// SessionStatus enumerates the lifecycle states of an alert session.
// Transitions are monotonic: pending → in_progress → {completed, failed}.
type SessionStatus string

const (
	StatusPending    SessionStatus = "pending"
	StatusInProgress SessionStatus = "in_progress"
	StatusCompleted  SessionStatus = "completed"
	StatusFailed     SessionStatus = "failed"
)

// Terminal reports whether the status is a terminal state.
func (s SessionStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// NowUS returns the current time as microseconds since the Unix epoch.
// All audit timestamps use this representation.
func NowUS() int64 {
	return time.Now().UnixMicro()
}
