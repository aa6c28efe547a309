package model

// RunStatus is the state of the transcription run owned by a session.
type RunStatus string

const (
	RunIdle       RunStatus = "idle"
	RunProcessing RunStatus = "processing"
	RunCompleted  RunStatus = "completed"
	RunError      RunStatus = "error"
)
